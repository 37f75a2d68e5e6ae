package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entnotif "crewcycle.io/crewcycle/ent/notification"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
)

// ListNotifications handles GET /notifications. Callers only ever see their
// own inbox.
func (s *Server) ListNotifications(c *gin.Context) {
	actor, _, ok := s.mustActor(c)
	if !ok {
		return
	}

	q := s.client.Notification.Query().
		Where(entnotif.UserIDEQ(actor.ID)).
		Order(ent.Desc(entnotif.FieldCreatedAt))
	if c.Query("unread") == "true" {
		q = q.Where(entnotif.ReadEQ(false))
	}

	rows, err := q.Limit(200).All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]NotificationInfo, 0, len(rows))
	for _, n := range rows {
		out = append(out, toNotificationInfo(n))
	}
	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

// MarkNotificationRead handles PATCH /notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	actor, _, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	n, err := s.client.Notification.Query().
		Where(
			entnotif.IDEQ(id),
			entnotif.UserIDEQ(actor.ID),
		).
		Only(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, APIError{
			Code:    apperrors.CodeInvalidRequest,
			Message: "notification not found",
		})
		return
	}

	updated, err := s.client.Notification.UpdateOneID(n.ID).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNotificationInfo(updated))
}
