package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/rbac"
)

const (
	ctxKeyActor       = "actor"
	ctxKeyPermissions = "permissions"
)

// LoadActor re-reads the authenticated user from the database and derives a
// fresh permission set. Permissions are never cached: a role or affiliation
// change takes effect on the very next request.
func LoadActor(client *ent.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c.Request.Context())
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeNotAuthenticated,
				"message": "authentication required",
			})
			return
		}

		u, err := client.User.Get(c.Request.Context(), userID)
		if err != nil {
			if ent.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"code":    apperrors.CodeNotAuthenticated,
					"message": "account no longer exists",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    apperrors.CodeInternal,
				"message": "failed to load account",
			})
			return
		}
		if !u.Enabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    apperrors.CodeForbidden,
				"message": "account is disabled",
			})
			return
		}

		actor := rbac.ActorFromUser(u)
		c.Set(ctxKeyActor, actor)
		c.Set(ctxKeyPermissions, rbac.BuildPermissions(actor))

		c.Next()
	}
}

// GetActor returns the actor stored by LoadActor.
func GetActor(c *gin.Context) (rbac.Actor, bool) {
	v, exists := c.Get(ctxKeyActor)
	if !exists {
		return rbac.Actor{}, false
	}
	actor, ok := v.(rbac.Actor)
	return actor, ok
}

// GetPermissions returns the permission set stored by LoadActor.
func GetPermissions(c *gin.Context) (rbac.PermissionSet, bool) {
	v, exists := c.Get(ctxKeyPermissions)
	if !exists {
		return nil, false
	}
	perms, ok := v.(rbac.PermissionSet)
	return perms, ok
}

// RequireRole aborts unless the actor holds at least the required role.
func RequireRole(required rbac.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    apperrors.CodeForbidden,
				"message": "no actor in context",
			})
			return
		}
		if !rbac.IsAtLeast(actor.Role, required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    apperrors.CodeForbidden,
				"message": "insufficient role",
			})
			return
		}
		c.Next()
	}
}
