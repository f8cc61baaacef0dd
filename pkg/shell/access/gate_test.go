package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/aggregates/user"
	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

var (
	viewDashboard = &permission.Permission{
		ID:       uuid.New(),
		Name:     "Dashboard.Read",
		Resource: "dashboard",
		Action:   permission.ActionRead,
	}
	manageTeam = &permission.Permission{
		ID:       uuid.New(),
		Name:     "Team.Manage",
		Resource: "team",
		Action:   permission.ActionManage,
	}
)

func employee() user.User {
	return user.New("worker@fieldsuite.test", "Worker", user.RoleEmployee,
		user.WithPermissions(viewDashboard))
}

func TestEvaluate_Resolving(t *testing.T) {
	state := Evaluate(SessionContext{IsLoading: true}, types.Section{ID: "jobs"})
	assert.Equal(t, Resolving, state)
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	state := Evaluate(SessionContext{}, types.Section{ID: "jobs"})
	assert.Equal(t, Unauthenticated, state)

	// An authenticated flag without a user still gates.
	state = Evaluate(SessionContext{IsAuthenticated: true}, types.Section{ID: "jobs"})
	assert.Equal(t, Unauthenticated, state)
}

func TestEvaluate_ForbiddenOnMissingPermission(t *testing.T) {
	section := types.Section{
		ID:          "team",
		Permissions: []*permission.Permission{manageTeam},
	}
	session := SessionContext{IsAuthenticated: true, User: employee()}

	assert.Equal(t, Forbidden, Evaluate(session, section))
}

func TestEvaluate_AuthorizedOnIntersection(t *testing.T) {
	section := types.Section{
		ID:          "dashboard",
		Permissions: []*permission.Permission{viewDashboard},
	}
	session := SessionContext{IsAuthenticated: true, User: employee()}

	assert.Equal(t, Authorized, Evaluate(session, section))
}

func TestEvaluate_UnrestrictedSectionAdmitsAnyUser(t *testing.T) {
	session := SessionContext{IsAuthenticated: true, User: employee()}

	assert.Equal(t, Authorized, Evaluate(session, types.Section{ID: "home"}))
}

func TestCanAccess_UniversalRolesBypassEverything(t *testing.T) {
	section := types.Section{
		ID:          "team",
		Permissions: []*permission.Permission{manageTeam},
	}

	owner := user.New("owner@fieldsuite.test", "Owner", user.RoleOwner)
	admin := user.New("admin@fieldsuite.test", "Admin", user.RoleAdmin)

	assert.True(t, CanAccess(owner, section))
	assert.True(t, CanAccess(admin, section))
	assert.False(t, CanAccess(employee(), section))
}

func TestCanAccess_NilUser(t *testing.T) {
	section := types.Section{
		ID:          "team",
		Permissions: []*permission.Permission{manageTeam},
	}

	assert.False(t, CanAccess(nil, section))
	assert.True(t, CanAccess(nil, types.Section{ID: "home"}))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "resolving", Resolving.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
	assert.Equal(t, "forbidden", Forbidden.String())
	assert.Equal(t, "authorized", Authorized.String())
}
