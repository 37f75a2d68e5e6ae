package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPermissionsAdmin(t *testing.T) {
	perms := BuildPermissions(Actor{ID: "u1", Role: RoleAdmin})

	assert.True(t, perms.Allows(ResourceAll, ActionAny))
	assert.True(t, perms.Allows(TeamResource("t1"), ActionDelete))
	assert.True(t, perms.Allows(SystemResource("s1"), ActionCreate))
	assert.True(t, perms.Allows(ResourceUsers, ActionUpdate))
}

func TestBuildPermissionsTeamManagement(t *testing.T) {
	perms := BuildPermissions(Actor{ID: "u1", Role: RoleTeamManagement, TeamID: "t1"})

	assert.True(t, perms.Allows(TeamResource("t1"), ActionAny))
	assert.True(t, perms.Allows(SystemResource("s9"), ActionDelete), "system wildcard covers every system")
	assert.True(t, perms.Allows(ResourceUsers, ActionRead))
	assert.False(t, perms.Allows(TeamResource("t2"), ActionRead), "other teams stay invisible")
	assert.False(t, perms.Allows(ResourceUsers, ActionUpdate))
}

func TestBuildPermissionsSystemLeader(t *testing.T) {
	perms := BuildPermissions(Actor{ID: "u1", Role: RoleSystemLeader, TeamID: "t1", SystemID: "s1"})

	assert.True(t, perms.Allows(TeamResource("t1"), ActionRead))
	assert.True(t, perms.Allows(SystemResource("s1"), ActionUpdate))
	assert.False(t, perms.Allows(SystemResource("s1"), ActionDelete))
	assert.False(t, perms.Allows(SystemResource("s2"), ActionRead))
	assert.True(t, perms.Allows(ResourceUsers, ActionRead), "inherited from member")
}

func TestBuildPermissionsMember(t *testing.T) {
	perms := BuildPermissions(Actor{ID: "u1", Role: RoleMember, TeamID: "t1", SystemID: "s1"})

	assert.True(t, perms.Allows(TeamResource("t1"), ActionRead))
	assert.True(t, perms.Allows(SystemResource("s1"), ActionRead))
	assert.False(t, perms.Allows(SystemResource("s1"), ActionUpdate))
	assert.False(t, perms.Allows(TeamResource("t1"), ActionUpdate))
}

func TestBuildPermissionsApplicant(t *testing.T) {
	perms := BuildPermissions(Actor{ID: "u1", Role: RoleApplicant})

	assert.False(t, perms.Allows(ResourceUsers, ActionRead))
	assert.False(t, perms.Allows(TeamResource("t1"), ActionRead))
	assert.True(t, perms.Allows(UserResource("u1"), ActionUpdate), "everyone updates their own record")
	assert.False(t, perms.Allows(UserResource("u2"), ActionRead))
}

// Permissions must be monotonic in role for everything except the self scope.
func TestBuildPermissionsRoleMonotonic(t *testing.T) {
	resources := []string{
		TeamResource("t1"),
		SystemResource("s1"),
		ResourceUsers,
	}
	actions := []Action{ActionRead, ActionUpdate, ActionCreate, ActionDelete}

	for i := 0; i < len(Roles)-1; i++ {
		lower := BuildPermissions(Actor{ID: "u1", Role: Roles[i], TeamID: "t1", SystemID: "s1"})
		higher := BuildPermissions(Actor{ID: "u1", Role: Roles[i+1], TeamID: "t1", SystemID: "s1"})
		for _, res := range resources {
			for _, act := range actions {
				if lower.Allows(res, act) {
					assert.True(t, higher.Allows(res, act),
						"%s allows %s on %s but %s does not", Roles[i], act, res, Roles[i+1])
				}
			}
		}
	}
}

func TestBuildPermissionsWithoutAffiliations(t *testing.T) {
	perms := BuildPermissions(Actor{ID: "u1", Role: RoleMember})

	assert.False(t, perms.Allows(TeamResource("t1"), ActionRead), "no team means no team grant")
	assert.True(t, perms.Allows(ResourceUsers, ActionRead))
}

func TestAllowsUnknownResource(t *testing.T) {
	perms := BuildPermissions(Actor{ID: "u1", Role: RoleMember, TeamID: "t1"})
	assert.False(t, perms.Allows("cluster:x", ActionRead))
}
