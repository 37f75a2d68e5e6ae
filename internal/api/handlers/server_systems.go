package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entsystem "crewcycle.io/crewcycle/ent/system"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
)

// CreateSystemRequest is the system creation payload.
type CreateSystemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TeamID      string `json:"team_id" binding:"required"`
}

// CreateSystem handles POST /systems. Requires the any-grant on the owning
// team, held by that team's management and admins.
func (s *Server) CreateSystem(c *gin.Context) {
	_, perms, ok := s.mustActor(c)
	if !ok {
		return
	}

	var req CreateSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "name and team_id are required")
		return
	}

	if !canManageTeam(perms, req.TeamID, rbac.ActionCreate) {
		forbidden(c)
		return
	}

	sys, err := s.client.System.Create().
		SetID(generateID()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetTeamID(req.TeamID).
		Save(c.Request.Context())
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeNameExists,
				Message: "a system with this name already exists in the team",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSystemInfo(sys))
}

// ListSystems handles GET /systems, optionally filtered by team.
func (s *Server) ListSystems(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}

	q := s.client.System.Query().Order(ent.Asc(entsystem.FieldName))
	if teamID := c.Query("team"); teamID != "" {
		q = q.Where(entsystem.TeamIDEQ(teamID))
	}

	systems, err := q.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]SystemInfo, 0, len(systems))
	for _, sys := range systems {
		out = append(out, toSystemInfo(sys))
	}
	c.JSON(http.StatusOK, gin.H{"systems": out})
}

// GetSystem handles GET /systems/:id.
func (s *Server) GetSystem(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}

	sys, err := s.client.System.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
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
	c.JSON(http.StatusOK, toSystemInfo(sys))
}

// UpdateSystemRequest carries mutable system fields.
type UpdateSystemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateSystem handles PATCH /systems/:id. System leaders update their own
// system; team management and admins update any.
func (s *Server) UpdateSystem(c *gin.Context) {
	_, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if !canManageSystem(perms, id, rbac.ActionUpdate) {
		forbidden(c)
		return
	}

	var req UpdateSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "malformed update payload")
		return
	}

	upd := s.client.System.UpdateOneID(id)
	if req.Name != nil {
		upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}

	sys, err := upd.Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeSystemNotFound,
				Message: "system not found",
			})
			return
		}
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeNameExists,
				Message: "a system with this name already exists in the team",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSystemInfo(sys))
}

// DeleteSystem handles DELETE /systems/:id. Requires the delete grant on the
// system, held by team management (system wildcard) and admins.
func (s *Server) DeleteSystem(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if !canManageSystem(perms, id, rbac.ActionDelete) {
		forbidden(c)
		return
	}

	if err := s.client.System.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
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

	if s.audit != nil {
		_ = s.audit.LogAction(c.Request.Context(), "system.delete", "system", id, actor.ID, nil)
	}
	c.Status(http.StatusNoContent)
}
