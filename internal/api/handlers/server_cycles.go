package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entcycle "crewcycle.io/crewcycle/ent/applicationcycle"
	entstage "crewcycle.io/crewcycle/ent/cyclestage"
	"crewcycle.io/crewcycle/internal/cycle"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
)

// CreateCycleRequest is the cycle creation payload. Stage windows must lie
// inside the cycle bounds.
type CreateCycleRequest struct {
	Name      string        `json:"name" binding:"required"`
	StartDate time.Time     `json:"start_date" binding:"required"`
	EndDate   time.Time     `json:"end_date" binding:"required"`
	Stages    []StageWindow `json:"stages" binding:"required"`
}

// CreateCycle handles POST /cycles. Admin only.
func (s *Server) CreateCycle(c *gin.Context) {
	_, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceAll, rbac.ActionCreate) {
		forbidden(c)
		return
	}

	var req CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "name, start_date, end_date and stages are required")
		return
	}
	if !req.StartDate.Before(req.EndDate) {
		c.JSON(http.StatusUnprocessableEntity, APIError{
			Code:    apperrors.CodeInvalidWindow,
			Message: "cycle end date must be after start date",
		})
		return
	}
	for _, st := range req.Stages {
		if !cycle.Stage(st.Stage).Valid() {
			invalidRequest(c, "unknown stage "+st.Stage)
			return
		}
		if !st.StartDate.Before(st.EndDate) ||
			st.StartDate.Before(req.StartDate) || st.EndDate.After(req.EndDate) {
			c.JSON(http.StatusUnprocessableEntity, APIError{
				Code:    apperrors.CodeInvalidWindow,
				Message: "stage windows must lie inside the cycle bounds",
			})
			return
		}
	}

	cycleID := generateID()
	tx, err := s.client.Tx(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	created, err := tx.ApplicationCycle.Create().
		SetID(cycleID).
		SetName(req.Name).
		SetStartDate(req.StartDate).
		SetEndDate(req.EndDate).
		Save(c.Request.Context())
	if err == nil {
		for _, st := range req.Stages {
			_, err = tx.CycleStage.Create().
				SetID(generateID()).
				SetStage(entstage.Stage(st.Stage)).
				SetStartDate(st.StartDate).
				SetEndDate(st.EndDate).
				SetCycleID(cycleID).
				Save(c.Request.Context())
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeNameExists,
				Message: "a cycle with this name or a duplicate stage window exists",
			})
			return
		}
		respondError(c, err)
		return
	}
	if err := tx.Commit(); err != nil {
		respondError(c, err)
		return
	}

	info := toCycleInfo(created)
	info.Stages = req.Stages
	c.JSON(http.StatusCreated, info)
}

// ListCycles handles GET /cycles.
func (s *Server) ListCycles(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}

	cycles, err := s.client.ApplicationCycle.Query().
		WithStages(func(q *ent.CycleStageQuery) {
			q.Order(ent.Asc(entstage.FieldStartDate))
		}).
		Order(ent.Desc(entcycle.FieldStartDate)).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]CycleInfo, 0, len(cycles))
	for _, cy := range cycles {
		out = append(out, toCycleInfo(cy))
	}
	c.JSON(http.StatusOK, gin.H{"cycles": out})
}

// GetActiveCycle handles GET /cycles/active: the cycle whose bounds contain
// the current time.
func (s *Server) GetActiveCycle(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}

	now := time.Now().UTC()
	cy, err := s.client.ApplicationCycle.Query().
		Where(
			entcycle.StartDateLTE(now),
			entcycle.EndDateGTE(now),
		).
		WithStages(func(q *ent.CycleStageQuery) {
			q.Order(ent.Asc(entstage.FieldStartDate))
		}).
		First(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeCycleNotFound,
				Message: "no active cycle",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCycleInfo(cy))
}

// GetCycle handles GET /cycles/:id.
func (s *Server) GetCycle(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}

	cy, err := s.client.ApplicationCycle.Query().
		Where(entcycle.IDEQ(c.Param("id"))).
		WithStages(func(q *ent.CycleStageQuery) {
			q.Order(ent.Asc(entstage.FieldStartDate))
		}).
		Only(c.Request.Context())
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
	c.JSON(http.StatusOK, toCycleInfo(cy))
}

// UpdateCycleRequest carries the admin stage override. Override true allows
// any stage value including regressions; otherwise only the single permitted
// forward step is accepted.
type UpdateCycleRequest struct {
	Stage    *string    `json:"stage"`
	Override bool       `json:"override"`
	EndDate  *time.Time `json:"end_date"`
}

// UpdateCycle handles PATCH /cycles/:id. Admin only; this is the escape
// hatch around the transition table.
func (s *Server) UpdateCycle(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceAll, rbac.ActionUpdate) {
		forbidden(c)
		return
	}
	id := c.Param("id")

	var req UpdateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "malformed update payload")
		return
	}

	cy, err := s.client.ApplicationCycle.Get(c.Request.Context(), id)
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

	upd := s.client.ApplicationCycle.UpdateOneID(id)
	if req.Stage != nil {
		target := cycle.Stage(*req.Stage)
		if !target.Valid() {
			invalidRequest(c, "unknown stage")
			return
		}
		current := cycle.Stage(cy.Stage.String())
		if !req.Override && !cycle.CanTransition(current, target) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeStageRegression,
				Message: "transition not permitted without override",
			})
			return
		}
		upd.SetStage(entcycle.Stage(target))
	}
	if req.EndDate != nil {
		upd.SetEndDate(*req.EndDate)
	}

	updated, err := upd.Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Stage != nil && s.audit != nil {
		_ = s.audit.LogCycleOverride(c.Request.Context(), id, actor.ID, cy.Stage.String(), *req.Stage)
	}
	c.JSON(http.StatusOK, toCycleInfo(updated))
}
