// Package rbac implements the role policy and access evaluator.
//
// Permissions are derived from a single declarative policy table and are
// recomputed per request. They are never cached: a role or affiliation change
// must take effect on the next request.
package rbac

// Role is the five-level role hierarchy, totally ordered:
// APPLICANT < MEMBER < SYSTEM_LEADER < TEAM_MANAGEMENT < ADMIN.
type Role string

const (
	RoleApplicant      Role = "APPLICANT"
	RoleMember         Role = "MEMBER"
	RoleSystemLeader   Role = "SYSTEM_LEADER"
	RoleTeamManagement Role = "TEAM_MANAGEMENT"
	RoleAdmin          Role = "ADMIN"
)

// roleRank maps roles to their position in the hierarchy.
var roleRank = map[Role]int{
	RoleApplicant:      0,
	RoleMember:         1,
	RoleSystemLeader:   2,
	RoleTeamManagement: 3,
	RoleAdmin:          4,
}

// Roles lists all roles in ascending order of privilege.
var Roles = []Role{
	RoleApplicant,
	RoleMember,
	RoleSystemLeader,
	RoleTeamManagement,
	RoleAdmin,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// IsAtLeast reports whether actor holds at least the required role.
// Reflexive and transitive over the fixed ordering; unknown roles never satisfy
// anything.
func IsAtLeast(actor, required Role) bool {
	ar, ok := roleRank[actor]
	if !ok {
		return false
	}
	rr, ok := roleRank[required]
	if !ok {
		return false
	}
	return ar >= rr
}

// Action is the permission action order: read < update < create < delete < any.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
	ActionAny    Action = "any"
)

var actionRank = map[Action]int{
	ActionRead:   0,
	ActionUpdate: 1,
	ActionCreate: 2,
	ActionDelete: 3,
	ActionAny:    4,
}

// Satisfies reports whether a stored action covers a requested one.
func (a Action) Satisfies(requested Action) bool {
	sr, ok := actionRank[a]
	if !ok {
		return false
	}
	rr, ok := actionRank[requested]
	if !ok {
		return false
	}
	return sr >= rr
}

// maxAction returns the more privileged of two actions.
func maxAction(a, b Action) Action {
	if actionRank[a] >= actionRank[b] {
		return a
	}
	return b
}

// Actor is the authenticated identity the evaluator works with.
// It mirrors the identity contract: id, role, optional team and system.
type Actor struct {
	ID       string
	Role     Role
	TeamID   string
	SystemID string
}
