package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
)

// GetSystemSlots handles GET /systems/:id/slots?date=YYYY-MM-DD.
// Returns the generated 30-minute slot list for the system on that day.
func (s *Server) GetSystemSlots(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}
	systemID := c.Param("id")

	date := c.Query("date")
	if date == "" {
		invalidRequest(c, "date query parameter is required")
		return
	}
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, APIError{
			Code:    apperrors.CodeInvalidDate,
			Message: "date must be formatted YYYY-MM-DD",
		})
		return
	}

	if _, err := s.client.System.Get(c.Request.Context(), systemID); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeSystemNotFound,
				Message: "system not found",
			})
			return
		}
		respondError(c, err)
		return
	}

	slots, err := s.slotService.SlotsForDay(c.Request.Context(), systemID, dayStart, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"system_id": systemID,
		"date":      date,
		"slots":     slots,
	})
}
