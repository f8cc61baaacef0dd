package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/aggregates/user"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
)

func TestAuthService_LoginAndResolve(t *testing.T) {
	svc := NewAuthService()

	sess, u, err := svc.Login("manager@fieldsuite.io", "any")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, user.RoleManager, u.Role())

	gotSess, gotUser, err := svc.Resolve(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, gotSess.Token)
	assert.Equal(t, u.ID(), gotUser.ID())
}

func TestAuthService_LoginRejectsUnknownAndEmptyPassword(t *testing.T) {
	svc := NewAuthService()

	_, _, err := svc.Login("nobody@fieldsuite.io", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("owner@fieldsuite.io", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginNormalizesEmail(t *testing.T) {
	svc := NewAuthService()

	_, u, err := svc.Login("  Owner@FieldSuite.io ", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.RoleOwner, u.Role())
}

func TestAuthService_LogoutInvalidatesSession(t *testing.T) {
	svc := NewAuthService()
	sess, _, err := svc.Login("employee@fieldsuite.io", "pw")
	require.NoError(t, err)

	svc.Logout(sess.Token)

	_, _, err = svc.Resolve(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_ExpiredSessionEvicted(t *testing.T) {
	svc := NewAuthService()
	sess, _, err := svc.Login("employee@fieldsuite.io", "pw")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(sessionTTL + time.Minute) }

	_, _, err = svc.Resolve(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_MarkerConsumedOnce(t *testing.T) {
	svc := NewAuthService()
	sess, _, err := svc.Login("admin@fieldsuite.io", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.SetMarker(sess.Token, "tenant"))
	assert.Equal(t, "tenant", svc.ConsumeMarker(sess.Token))
	assert.Equal(t, "", svc.ConsumeMarker(sess.Token))
}

func TestAuthService_DemoPermissionSets(t *testing.T) {
	svc := NewAuthService()

	_, employee, err := svc.Login("employee@fieldsuite.io", "pw")
	require.NoError(t, err)
	assert.True(t, employee.Can(permissions.DashboardView))
	assert.False(t, employee.Can(permissions.TeamManage))

	_, manager, err := svc.Login("manager@fieldsuite.io", "pw")
	require.NoError(t, err)
	assert.True(t, manager.Can(permissions.TeamManage))
	assert.False(t, manager.Can(permissions.SettingsManage))
}
