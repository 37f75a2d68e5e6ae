package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAtLeastReflexive(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, IsAtLeast(r, r), "role %s should satisfy itself", r)
	}
}

func TestIsAtLeastTransitive(t *testing.T) {
	for _, a := range Roles {
		for _, b := range Roles {
			for _, c := range Roles {
				if IsAtLeast(a, b) && IsAtLeast(b, c) {
					assert.True(t, IsAtLeast(a, c),
						"%s >= %s and %s >= %s but %s < %s", a, b, b, c, a, c)
				}
			}
		}
	}
}

func TestIsAtLeastOrdering(t *testing.T) {
	assert.True(t, IsAtLeast(RoleAdmin, RoleApplicant))
	assert.True(t, IsAtLeast(RoleTeamManagement, RoleSystemLeader))
	assert.False(t, IsAtLeast(RoleApplicant, RoleMember))
	assert.False(t, IsAtLeast(RoleSystemLeader, RoleTeamManagement))
}

func TestIsAtLeastUnknownRole(t *testing.T) {
	assert.False(t, IsAtLeast(Role("SUPERUSER"), RoleApplicant))
	assert.False(t, IsAtLeast(RoleAdmin, Role("SUPERUSER")))
}

func TestActionSatisfies(t *testing.T) {
	assert.True(t, ActionAny.Satisfies(ActionDelete))
	assert.True(t, ActionUpdate.Satisfies(ActionRead))
	assert.True(t, ActionRead.Satisfies(ActionRead))
	assert.False(t, ActionRead.Satisfies(ActionUpdate))
	assert.False(t, ActionCreate.Satisfies(ActionDelete))
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
}
