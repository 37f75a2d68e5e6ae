package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	entuser "crewcycle.io/crewcycle/ent/user"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
)

// ListUsers handles GET /users. Requires the people-directory read grant,
// held by every staff role.
func (s *Server) ListUsers(c *gin.Context) {
	_, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceUsers, rbac.ActionRead) {
		forbidden(c)
		return
	}

	q := s.client.User.Query().Order(ent.Asc(entuser.FieldUsername))
	if role := c.Query("role"); role != "" {
		q = q.Where(entuser.RoleEQ(entuser.Role(role)))
	}
	if teamID := c.Query("team"); teamID != "" {
		q = q.Where(entuser.TeamIDEQ(teamID))
	}

	users, err := q.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, toUserInfo(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// GetUser handles GET /users/:id. Self always allowed; otherwise the
// directory grant is required.
func (s *Server) GetUser(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if id != actor.ID && !perms.Allows(rbac.ResourceUsers, rbac.ActionRead) {
		forbidden(c)
		return
	}

	u, err := s.client.User.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeUserNotFound,
				Message: "user not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserInfo(u))
}

// UpdateUserRequest carries the mutable user fields. Nil means unchanged.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
	Role        *string `json:"role"`
	TeamID      *string `json:"team_id"`
	SystemID    *string `json:"system_id"`
	Enabled     *bool   `json:"enabled"`
}

// UpdateUser handles PATCH /users/:id. Profile fields are self-updatable.
// Role and affiliation changes need an actor at least as privileged as both
// the user's current role and the requested one.
func (s *Server) UpdateUser(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "malformed update payload")
		return
	}

	target, err := s.client.User.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeUserNotFound,
				Message: "user not found",
			})
			return
		}
		respondError(c, err)
		return
	}

	wantsPrivileged := req.Role != nil || req.TeamID != nil || req.SystemID != nil || req.Enabled != nil
	selfUpdate := perms.Allows(rbac.UserResource(id), rbac.ActionUpdate)

	if wantsPrivileged {
		if !perms.Allows(rbac.ResourceAll, rbac.ActionUpdate) && !s.canAssignRoles(actor, target, req.Role) {
			forbidden(c)
			return
		}
	} else if !selfUpdate && !perms.Allows(rbac.ResourceAll, rbac.ActionUpdate) {
		forbidden(c)
		return
	}

	upd := s.client.User.UpdateOneID(id)
	if req.DisplayName != nil {
		upd.SetDisplayName(*req.DisplayName)
	}
	if req.Email != nil {
		upd.SetEmail(*req.Email)
	}
	if req.Role != nil {
		if !rbac.Role(*req.Role).Valid() {
			invalidRequest(c, "unknown role")
			return
		}
		upd.SetRole(entuser.Role(*req.Role))
	}
	if req.TeamID != nil {
		if *req.TeamID == "" {
			upd.ClearTeamID()
		} else {
			upd.SetTeamID(*req.TeamID)
		}
	}
	if req.SystemID != nil {
		if *req.SystemID == "" {
			upd.ClearSystemID()
		} else {
			upd.SetSystemID(*req.SystemID)
		}
	}
	if req.Enabled != nil {
		upd.SetEnabled(*req.Enabled)
	}

	updated, err := upd.Save(c.Request.Context())
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeNameExists,
				Message: "email is already taken",
			})
			return
		}
		respondError(c, err)
		return
	}

	if req.Role != nil && s.audit != nil {
		_ = s.audit.LogRoleChange(c.Request.Context(), id, actor.ID, target.Role.String(), *req.Role)
	}

	c.JSON(http.StatusOK, toUserInfo(updated))
}

// DeleteUser handles DELETE /users/:id. Admin only.
func (s *Server) DeleteUser(c *gin.Context) {
	actor, perms, ok := s.mustActor(c)
	if !ok {
		return
	}
	if !perms.Allows(rbac.ResourceAll, rbac.ActionDelete) {
		forbidden(c)
		return
	}
	id := c.Param("id")

	if err := s.client.User.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{
				Code:    apperrors.CodeUserNotFound,
				Message: "user not found",
			})
			return
		}
		respondError(c, err)
		return
	}

	if s.audit != nil {
		_ = s.audit.LogAction(c.Request.Context(), "user.delete", "user", id, actor.ID, nil)
	}
	c.Status(http.StatusNoContent)
}

// canAssignRoles checks the role mutation rule: the actor must be at least
// as privileged as the target's current role, and as the requested role.
func (s *Server) canAssignRoles(actor rbac.Actor, target *ent.User, newRole *string) bool {
	if !rbac.IsAtLeast(actor.Role, rbac.RoleTeamManagement) {
		return false
	}
	if !rbac.IsAtLeast(actor.Role, rbac.Role(target.Role.String())) {
		return false
	}
	if newRole != nil && !rbac.IsAtLeast(actor.Role, rbac.Role(*newRole)) {
		return false
	}
	return true
}
