package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entteam "crewcycle.io/crewcycle/ent/team"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
)

// CreateTeamRequest is the team creation payload.
type CreateTeamRequest struct {
	Name                           string `json:"name" binding:"required"`
	Description                    string `json:"description"`
	AllowsMultipleSystemInterviews bool   `json:"allows_multiple_system_interviews"`
}

// CreateTeam handles POST /teams. Admin only.
func (s *Server) CreateTeam(c *gin.Context) {
	_, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceAll, rbac.ActionCreate) {
		forbidden(c)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "name is required")
		return
	}

	t, err := s.client.Team.Create().
		SetID(generateID()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetAllowsMultipleSystemInterviews(req.AllowsMultipleSystemInterviews).
		Save(c.Request.Context())
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeNameExists,
				Message: "a team with this name already exists",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTeamInfo(t))
}

// ListTeams handles GET /teams. Every authenticated user sees the team list;
// staff-only details stay out of the team view.
func (s *Server) ListTeams(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}

	teams, err := s.client.Team.Query().
		Order(ent.Asc(entteam.FieldName)).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]TeamInfo, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamInfo(t))
	}
	c.JSON(http.StatusOK, gin.H{"teams": out})
}

// GetTeam handles GET /teams/:id.
func (s *Server) GetTeam(c *gin.Context) {
	if _, _, ok := s.mustActor(c); !ok {
		return
	}

	t, err := s.client.Team.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeTeamNotFound,
				Message: "team not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTeamInfo(t))
}

// UpdateTeamRequest carries mutable team fields.
type UpdateTeamRequest struct {
	Name                           *string `json:"name"`
	Description                    *string `json:"description"`
	AllowsMultipleSystemInterviews *bool   `json:"allows_multiple_system_interviews"`
}

// UpdateTeam handles PATCH /teams/:id. Team management of the own team or
// admin.
func (s *Server) UpdateTeam(c *gin.Context) {
	_, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if !canManageTeam(perms, id, rbac.ActionUpdate) {
		forbidden(c)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "malformed update payload")
		return
	}

	upd := s.client.Team.UpdateOneID(id)
	if req.Name != nil {
		upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.AllowsMultipleSystemInterviews != nil {
		upd.SetAllowsMultipleSystemInterviews(*req.AllowsMultipleSystemInterviews)
	}

	t, err := upd.Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeTeamNotFound,
				Message: "team not found",
			})
			return
		}
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeNameExists,
				Message: "a team with this name already exists",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTeamInfo(t))
}

// DeleteTeam handles DELETE /teams/:id. Admin only.
func (s *Server) DeleteTeam(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceAll, rbac.ActionDelete) {
		forbidden(c)
		return
	}
	id := c.Param("id")

	if err := s.client.Team.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeTeamNotFound,
				Message: "team not found",
			})
			return
		}
		respondError(c, err)
		return
	}

	if s.audit != nil {
		_ = s.audit.LogAction(c.Request.Context(), "team.delete", "team", id, actor.ID, nil)
	}
	c.Status(http.StatusNoContent)
}
