package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entapp "crewcycle.io/crewcycle/ent/application"
	entcycle "crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/schema"
	"crewcycle.io/crewcycle/internal/cycle"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
)

// maxSystemPreferences caps the ranked system choices per application.
const maxSystemPreferences = 3

// CreateApplicationRequest is the applicant submission payload.
type CreateApplicationRequest struct {
	CycleID           string                 `json:"cycle_id" binding:"required"`
	TeamID            string                 `json:"team_id" binding:"required"`
	SystemPreferences []string               `json:"system_preferences"`
	Data              map[string]interface{} `json:"data"`
}

// CreateApplication handles POST /applications. Only possible while the
// cycle sits in its application stage.
func (s *Server) CreateApplication(c *gin.Context) {
	actor, _, ok := s.mustActor(c)
	if !ok {
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "cycle_id and team_id are required")
		return
	}
	if len(req.SystemPreferences) > maxSystemPreferences {
		c.JSON(http.StatusUnprocessableEntity, APIError{
			Code:    apperrors.CodeTooManyChoices,
			Message: "at most three ranked system preferences are allowed",
		})
		return
	}

	cy, err := s.client.ApplicationCycle.Get(c.Request.Context(), req.CycleID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeCycleNotFound,
				Message: "cycle not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	if cy.Stage != entcycle.StageAPPLICATION {
		c.JSON(http.StatusConflict, APIError{
			Code:    apperrors.CodeStageClosed,
			Message: "the cycle is not accepting applications right now",
		})
		return
	}

	data := req.Data
	if data == nil {
		data = map[string]interface{}{}
	}
	if len(req.SystemPreferences) > 0 {
		data["system_preferences"] = req.SystemPreferences
	}

	create := s.client.Application.Create().
		SetID(generateID()).
		SetUserID(actor.ID).
		SetTeamID(req.TeamID).
		SetCycleID(req.CycleID).
		SetData(data)
	if len(req.SystemPreferences) > 0 {
		create.SetSystemID(req.SystemPreferences[0])
	}

	app, err := create.Save(c.Request.Context())
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeDuplicateBooking,
				Message: "you already have an application in this cycle",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toApplicationInfo(app, false))
}

// ListApplications handles GET /applications, scope-filtered: applicants see
// their own, staff see what their permission set reaches.
func (s *Server) ListApplications(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}

	q := s.client.Application.Query().Order(ent.Desc(entapp.FieldCreatedAt))
	if cycleID := c.Query("cycle"); cycleID != "" {
		q = q.Where(entapp.CycleIDEQ(cycleID))
	}

	staffView := false
	switch {
	case perms.Allows(rbac.ResourceAll, rbac.ActionRead):
		staffView = true
	case actor.TeamID != "" && perms.Allows(rbac.TeamResource(actor.TeamID), rbac.ActionRead):
		staffView = true
		q = q.Where(entapp.TeamIDEQ(actor.TeamID))
	default:
		q = q.Where(entapp.UserIDEQ(actor.ID))
	}

	apps, err := q.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]ApplicationInfo, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationInfo(app, staffView))
	}
	c.JSON(http.StatusOK, gin.H{"applications": out})
}

// GetApplication handles GET /applications/:id.
func (s *Server) GetApplication(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	allowed, err := s.evaluator.CanAccessApplication(c.Request.Context(), actor, perms, id, rbac.ActionRead)
	if err != nil {
		respondError(c, err)
		return
	}

	app, err := s.client.Application.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeApplicationNotFound,
				Message: "application not found",
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

	c.JSON(http.StatusOK, toApplicationInfo(app, canSeeInternal(actor, perms, app.TeamID)))
}

// UpdateApplicationRequest carries the mutable application fields. Owners
// edit draft fields; staff edit status and internal fields.
type UpdateApplicationRequest struct {
	Data              map[string]interface{} `json:"data"`
	SystemPreferences []string               `json:"system_preferences"`
	Status            *string                `json:"status"`
	InternalStatus    *string                `json:"internal_status"`
	InternalDecision  *string                `json:"internal_decision"`
	Reviews           []schema.SystemReview  `json:"reviews"`

	// AdminOverride permits internal status regression; admins only.
	AdminOverride bool `json:"admin_override"`
}

// UpdateApplication handles PATCH /applications/:id.
func (s *Server) UpdateApplication(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "malformed update payload")
		return
	}

	app, err := s.client.Application.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeApplicationNotFound,
				Message: "application not found",
			})
			return
		}
		respondError(c, err)
		return
	}

	isOwner := app.UserID == actor.ID
	isTeamStaff := canSeeInternal(actor, perms, app.TeamID)
	wantsStaffFields := req.Status != nil || req.InternalStatus != nil ||
		req.InternalDecision != nil || req.Reviews != nil

	if wantsStaffFields && !isTeamStaff {
		forbidden(c)
		return
	}
	if !wantsStaffFields && !isOwner && !isTeamStaff {
		forbidden(c)
		return
	}
	// Applicant edits are limited to the draft phase.
	if isOwner && !isTeamStaff && (req.Data != nil || req.SystemPreferences != nil) &&
		app.Status != entapp.StatusDRAFT && app.Status != entapp.StatusSUBMITTED {
		c.JSON(http.StatusConflict, APIError{
			Code:    apperrors.CodeStageClosed,
			Message: "the application can no longer be edited",
		})
		return
	}
	if len(req.SystemPreferences) > maxSystemPreferences {
		c.JSON(http.StatusUnprocessableEntity, APIError{
			Code:    apperrors.CodeTooManyChoices,
			Message: "at most three ranked system preferences are allowed",
		})
		return
	}

	upd := s.client.Application.UpdateOneID(id)
	if req.Data != nil {
		data := req.Data
		if req.SystemPreferences != nil {
			data["system_preferences"] = req.SystemPreferences
		}
		upd.SetData(data)
	} else if req.SystemPreferences != nil {
		data := app.Data
		if data == nil {
			data = map[string]interface{}{}
		}
		data["system_preferences"] = req.SystemPreferences
		upd.SetData(data)
	}
	if len(req.SystemPreferences) > 0 {
		upd.SetSystemID(req.SystemPreferences[0])
	}
	if req.Status != nil {
		upd.SetStatus(entapp.Status(*req.Status))
	}
	if req.InternalStatus != nil {
		target := cycle.Stage(*req.InternalStatus)
		if !target.Valid() {
			invalidRequest(c, "unknown internal status")
			return
		}
		current := cycle.Stage(app.InternalStatus.String())
		if target.Before(current) {
			// Regression needs the explicit admin override.
			if !req.AdminOverride || !perms.Allows(rbac.ResourceAll, rbac.ActionUpdate) {
				c.JSON(http.StatusConflict, APIError{
					Code:    apperrors.CodeStageRegression,
					Message: "internal status cannot move backwards without an admin override",
				})
				return
			}
		}
		upd.SetInternalStatus(entapp.InternalStatus(target))
	}
	if req.InternalDecision != nil {
		upd.SetInternalDecision(*req.InternalDecision)
	}
	if req.Reviews != nil {
		upd.SetReviews(req.Reviews)
	}

	updated, err := upd.Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Status != nil && *req.Status != app.Status.String() && s.notifier != nil && !isOwner {
		s.notifier.OnApplicationStatusChanged(c.Request.Context(), updated.ID, updated.UserID, *req.Status)
	}

	c.JSON(http.StatusOK, toApplicationInfo(updated, isTeamStaff))
}

// AdvanceApplication handles POST /applications/:id/advance. Staff move an
// application to its next stage relative to the cycle.
func (s *Server) AdvanceApplication(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	app, err := s.client.Application.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeApplicationNotFound,
				Message: "application not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	if !canSeeInternal(actor, perms, app.TeamID) {
		forbidden(c)
		return
	}

	cy, err := s.client.ApplicationCycle.Get(c.Request.Context(), app.CycleID)
	if err != nil {
		respondError(c, err)
		return
	}

	next := cycle.Advance(cycle.Stage(cy.Stage.String()), cycle.Stage(app.InternalStatus.String()))
	updated, err := s.client.Application.UpdateOneID(id).
		SetInternalStatus(entapp.InternalStatus(next)).
		Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if s.audit != nil {
		_ = s.audit.LogAction(c.Request.Context(), "application.advance", "application", id, actor.ID,
			map[string]interface{}{
				"from": app.InternalStatus.String(),
				"to":   string(next),
			})
	}
	c.JSON(http.StatusOK, toApplicationInfo(updated, true))
}

// DeleteApplication handles DELETE /applications/:id. Admin only.
func (s *Server) DeleteApplication(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceAll, rbac.ActionDelete) {
		forbidden(c)
		return
	}
	id := c.Param("id")

	if err := s.client.Application.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeApplicationNotFound,
				Message: "application not found",
			})
			return
		}
		respondError(c, err)
		return
	}

	if s.audit != nil {
		_ = s.audit.LogAction(c.Request.Context(), "application.delete", "application", id, actor.ID, nil)
	}
	c.Status(http.StatusNoContent)
}
