package rbac

import "fmt"

// Resource keys used in permission sets. Dynamic resources (applications,
// interviews, availabilities) are resolved to these static keys first.
const (
	// ResourceAll is the universal wildcard held by administrators.
	ResourceAll = "*"
	// ResourceSystemWildcard covers every system.
	ResourceSystemWildcard = "system:*"
	// ResourceUsers is the people directory.
	ResourceUsers = "users"
)

// TeamResource returns the permission key for a team.
func TeamResource(teamID string) string {
	return fmt.Sprintf("team:%s", teamID)
}

// SystemResource returns the permission key for a system.
func SystemResource(systemID string) string {
	return fmt.Sprintf("system:%s", systemID)
}

// UserResource returns the permission key for a user record.
func UserResource(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

// scope names where a grant applies relative to the actor's affiliations.
type scope int

const (
	scopeEverything scope = iota
	scopeOwnTeam
	scopeOwnSystem
	scopeSystemWildcard
	scopeUsers
)

// grant is one row of the declarative policy table.
type grant struct {
	scope  scope
	action Action
}

// policyTable is the single role→grant table shared by every module.
// Grants are cumulative: a role receives its own rows plus every row of the
// roles below it. Self-scoped permissions are handled separately in
// BuildPermissions because they attach to identity, not role.
var policyTable = map[Role][]grant{
	RoleApplicant: {},
	RoleMember: {
		{scopeOwnTeam, ActionRead},
		{scopeOwnSystem, ActionRead},
		{scopeUsers, ActionRead},
	},
	RoleSystemLeader: {
		{scopeOwnTeam, ActionRead},
		{scopeOwnSystem, ActionUpdate},
	},
	RoleTeamManagement: {
		{scopeOwnTeam, ActionAny},
		{scopeSystemWildcard, ActionAny},
	},
	RoleAdmin: {
		{scopeEverything, ActionAny},
	},
}

// PermissionSet maps a resource key (or wildcard) to the maximum action
// granted on it. Sets are cheap to build and must be rebuilt per request.
type PermissionSet map[string]Action

// BuildPermissions derives the actor's permission set from role and
// affiliations. Pure function of the actor record; no side effects.
func BuildPermissions(actor Actor) PermissionSet {
	set := make(PermissionSet)

	actorRank, ok := roleRank[actor.Role]
	if !ok {
		actorRank = -1
	}

	// Role-monotonic grants: apply every row at or below the actor's rank.
	for _, role := range Roles {
		if roleRank[role] > actorRank {
			break
		}
		for _, g := range policyTable[role] {
			key, ok := resolveScope(actor, g.scope)
			if !ok {
				continue
			}
			if existing, found := set[key]; found {
				set[key] = maxAction(existing, g.action)
			} else {
				set[key] = g.action
			}
		}
	}

	// Self-scoped: every actor may update its own record. Identity equality,
	// not role, so never inherited.
	if actor.ID != "" {
		key := UserResource(actor.ID)
		if existing, found := set[key]; found {
			set[key] = maxAction(existing, ActionUpdate)
		} else {
			set[key] = ActionUpdate
		}
	}

	return set
}

// resolveScope turns a grant scope into a concrete resource key for the actor.
// Affiliation-scoped grants vanish when the actor lacks the affiliation.
func resolveScope(actor Actor, s scope) (string, bool) {
	switch s {
	case scopeEverything:
		return ResourceAll, true
	case scopeOwnTeam:
		if actor.TeamID == "" {
			return "", false
		}
		return TeamResource(actor.TeamID), true
	case scopeOwnSystem:
		if actor.SystemID == "" {
			return "", false
		}
		return SystemResource(actor.SystemID), true
	case scopeSystemWildcard:
		return ResourceSystemWildcard, true
	case scopeUsers:
		return ResourceUsers, true
	default:
		return "", false
	}
}

// Allows reports whether the set grants the requested action on the resource.
// A stored action satisfies any requested action of equal or lower privilege.
func (p PermissionSet) Allows(resource string, action Action) bool {
	if stored, ok := p[resource]; ok && stored.Satisfies(action) {
		return true
	}
	// System entries fall back to the system wildcard.
	if len(resource) > 7 && resource[:7] == "system:" && resource != ResourceSystemWildcard {
		if stored, ok := p[ResourceSystemWildcard]; ok && stored.Satisfies(action) {
			return true
		}
	}
	if stored, ok := p[ResourceAll]; ok && stored.Satisfies(action) {
		return true
	}
	return false
}
