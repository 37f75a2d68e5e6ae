package handlers

import (
	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/internal/rbac"
)

// isUniqueViolation reports whether an ent error is a constraint violation.
func isUniqueViolation(err error) bool {
	return ent.IsConstraintError(err)
}

// isStaff reports whether the actor holds any staff role.
func isStaff(actor rbac.Actor) bool {
	return rbac.IsAtLeast(actor.Role, rbac.RoleMember)
}

// canSeeInternal reports whether the actor may see staff-only application
// fields (internal status, decision, reviews).
func canSeeInternal(actor rbac.Actor, perms rbac.PermissionSet, teamID string) bool {
	if teamID != "" && perms.Allows(rbac.TeamResource(teamID), rbac.ActionRead) {
		return true
	}
	return perms.Allows(rbac.ResourceAll, rbac.ActionRead)
}

// canManageTeam reports whether the actor may mutate a team's resources.
func canManageTeam(perms rbac.PermissionSet, teamID string, action rbac.Action) bool {
	return perms.Allows(rbac.TeamResource(teamID), action)
}

// canManageSystem reports whether the actor may mutate a system.
func canManageSystem(perms rbac.PermissionSet, systemID string, action rbac.Action) bool {
	return perms.Allows(rbac.SystemResource(systemID), action)
}
