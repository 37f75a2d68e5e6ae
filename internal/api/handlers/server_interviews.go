package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entapp "crewcycle.io/crewcycle/ent/application"
	entiv "crewcycle.io/crewcycle/ent/interview"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
	"crewcycle.io/crewcycle/internal/usecase"
)

// BookInterviewRequest is the booking payload.
type BookInterviewRequest struct {
	ApplicationID string    `json:"application_id" binding:"required"`
	SystemID      string    `json:"system_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	Location      string    `json:"location"`
}

// BookInterview handles POST /interviews. The use case enforces the ordered
// precondition chain; this handler only shapes the transport.
func (s *Server) BookInterview(c *gin.Context) {
	actor, _, ok := s.mustActor(c)
	if !ok {
		return
	}

	var req BookInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "application_id, system_id and scheduled_at are required")
		return
	}

	out, err := s.bookUC.Execute(c.Request.Context(), usecase.BookInterviewInput{
		ActorID:       actor.ID,
		ApplicationID: req.ApplicationID,
		SystemID:      req.SystemID,
		ScheduledAt:   req.ScheduledAt,
		Location:      req.Location,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// ListInterviews handles GET /interviews, scope-filtered like applications.
func (s *Server) ListInterviews(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}

	q := s.client.Interview.Query().Order(ent.Asc(entiv.FieldScheduledAt))
	if systemID := c.Query("system"); systemID != "" {
		q = q.Where(entiv.SystemIDEQ(systemID))
	}

	switch {
	case perms.Allows(rbac.ResourceAll, rbac.ActionRead):
		// Unfiltered.
	case actor.TeamID != "" && perms.Allows(rbac.TeamResource(actor.TeamID), rbac.ActionRead):
		q = q.Where(entiv.HasApplicationWith(entapp.TeamIDEQ(actor.TeamID)))
	case actor.SystemID != "" && perms.Allows(rbac.SystemResource(actor.SystemID), rbac.ActionRead):
		q = q.Where(entiv.SystemIDEQ(actor.SystemID))
	default:
		q = q.Where(entiv.HasApplicationWith(entapp.UserIDEQ(actor.ID)))
	}

	interviews, err := q.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]InterviewInfo, 0, len(interviews))
	for _, iv := range interviews {
		out = append(out, toInterviewInfo(iv))
	}
	c.JSON(http.StatusOK, gin.H{"interviews": out})
}

// GetInterview handles GET /interviews/:id.
func (s *Server) GetInterview(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	allowed, err := s.evaluator.CanAccessInterview(c.Request.Context(), actor, perms, id, rbac.ActionRead)
	if err != nil {
		respondError(c, err)
		return
	}

	iv, err := s.client.Interview.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeInterviewNotFound,
				Message: "interview not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	if !allowed {
		forbidden(c)
		return
	}
	c.JSON(http.StatusOK, toInterviewInfo(iv))
}

// UpdateInterviewRequest carries the only mutable interview fields. The
// scheduled time is immutable; re-booking means cancel and book again.
type UpdateInterviewRequest struct {
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
	Location *string `json:"location"`
}

// UpdateInterview handles PATCH /interviews/:id. Staff with system or team
// scope annotate and close out interviews; the owning applicant may only
// cancel.
func (s *Server) UpdateInterview(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "malformed update payload")
		return
	}

	allowed, err := s.evaluator.CanAccessInterview(c.Request.Context(), actor, perms, id, rbac.ActionUpdate)
	if err != nil {
		respondError(c, err)
		return
	}
	if !allowed {
		forbidden(c)
		return
	}

	// Outcomes and annotations are staff operations.
	if !isStaff(actor) {
		cancelOnly := req.Notes == nil && req.Location == nil &&
			req.Status != nil && entiv.Status(*req.Status) == entiv.StatusCANCELLED
		if !cancelOnly {
			forbidden(c)
			return
		}
	}

	upd := s.client.Interview.UpdateOneID(id)
	if req.Notes != nil {
		upd.SetNotes(*req.Notes)
	}
	if req.Status != nil {
		switch entiv.Status(*req.Status) {
		case entiv.StatusSCHEDULED, entiv.StatusCOMPLETED, entiv.StatusCANCELLED, entiv.StatusNO_SHOW:
			upd.SetStatus(entiv.Status(*req.Status))
		default:
			invalidRequest(c, "unknown interview status")
			return
		}
	}
	if req.Location != nil {
		upd.SetLocation(*req.Location)
	}

	iv, err := upd.Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeInterviewNotFound,
				Message: "interview not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInterviewInfo(iv))
}
