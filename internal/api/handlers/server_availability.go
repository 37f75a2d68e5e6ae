package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entavail "crewcycle.io/crewcycle/ent/availability"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
)

// CreateAvailabilityRequest is one interviewer availability window.
type CreateAvailabilityRequest struct {
	SystemID string    `json:"system_id" binding:"required"`
	StartAt  time.Time `json:"start_at" binding:"required"`
	EndAt    time.Time `json:"end_at" binding:"required"`
}

// CreateAvailability handles POST /availability. Interviewers publish their
// own windows only; staff role required.
func (s *Server) CreateAvailability(c *gin.Context) {
	actor, _, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !isStaff(actor) {
		forbidden(c)
		return
	}

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "system_id, start_at and end_at are required")
		return
	}
	if !req.EndAt.After(req.StartAt) {
		c.JSON(http.StatusUnprocessableEntity, APIError{
			Code:    apperrors.CodeInvalidWindow,
			Message: "availability end must be after its start",
		})
		return
	}

	av, err := s.client.Availability.Create().
		SetID(generateID()).
		SetUserID(actor.ID).
		SetSystemID(req.SystemID).
		SetStartAt(req.StartAt.Truncate(time.Minute)).
		SetEndAt(req.EndAt.Truncate(time.Minute)).
		Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAvailabilityInfo(av))
}

// ListAvailability handles GET /availability?system=&date=.
func (s *Server) ListAvailability(c *gin.Context) {
	actor, _, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !isStaff(actor) {
		forbidden(c)
		return
	}

	q := s.client.Availability.Query().Order(ent.Asc(entavail.FieldStartAt))
	if systemID := c.Query("system"); systemID != "" {
		q = q.Where(entavail.SystemIDEQ(systemID))
	}
	if date := c.Query("date"); date != "" {
		dayStart, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, APIError{
				Code:    apperrors.CodeInvalidDate,
				Message: "date must be formatted YYYY-MM-DD",
			})
			return
		}
		dayEnd := dayStart.Add(24 * time.Hour)
		q = q.Where(
			entavail.StartAtLT(dayEnd),
			entavail.EndAtGT(dayStart),
		)
	}

	rows, err := q.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]AvailabilityInfo, 0, len(rows))
	for _, av := range rows {
		out = append(out, toAvailabilityInfo(av))
	}
	c.JSON(http.StatusOK, gin.H{"availability": out})
}

// DeleteAvailability handles DELETE /availability/:id. Owners remove their
// own windows; admins remove any.
func (s *Server) DeleteAvailability(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	allowed, err := s.evaluator.CanAccessAvailability(c.Request.Context(), actor, perms, id, rbac.ActionDelete)
	if err != nil {
		respondError(c, err)
		return
	}
	if !allowed {
		av, err := s.client.Availability.Get(c.Request.Context(), id)
		if err != nil || av == nil {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeAvailabilityNotFound,
				Message: "availability window not found",
			})
			return
		}
		forbidden(c)
		return
	}

	if err := s.client.Availability.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeAvailabilityNotFound,
				Message: "availability window not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
