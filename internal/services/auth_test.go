package services

import (
	"context"
	"testing"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SeededAdmin_ReturnsMatchingSession(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	session, err := a.Login(ctx, "admin", "amen")
	require.NoError(t, err)

	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.Equal(t, "Senior Pastor (Admin)", session.Name)
	assert.Equal(t, models.StatusApproved, session.Status)
	assert.Len(t, session.Token, 64)
	assert.Regexp(t, "^[0-9a-f]+$", session.Token)
}

func TestLogin_MintsFreshTokenEachTime(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	first, err := a.Login(ctx, "admin", "amen")
	require.NoError(t, err)
	second, err := a.Login(ctx, "admin", "amen")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestLogin_UsernameIsCaseInsensitive(t *testing.T) {
	a := newTestAuthService(t)

	session, err := a.Login(context.Background(), "ADMIN", "amen")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
}

func TestLogin_WrongPassword_InvalidCredentials(t *testing.T) {
	a := newTestAuthService(t)

	_, err := a.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownUser_InvalidCredentials(t *testing.T) {
	a := newTestAuthService(t)

	_, err := a.Login(context.Background(), "nobody", "amen")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_PersistsSession(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	session, err := a.Login(ctx, "pastor", "amen")
	require.NoError(t, err)

	current := a.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, session.Token, current.Token)
	assert.Equal(t, "pastor", current.Username)
}

func TestRegister_CreatesPendingPastor(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, "John.Doe", "secret", "John Doe", "GRACE"))

	// Pending account cannot log in even with correct credentials.
	_, err := a.Login(ctx, "john.doe", "secret")
	require.ErrorIs(t, err, common.ErrPendingApproval)

	pending, err := a.PendingUsers(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "john.doe", pending[0].Username)
	assert.Equal(t, models.RolePastor, pending[0].Role)
	assert.Equal(t, models.StatusPending, pending[0].Status)
}

func TestRegister_DoesNotCreateSession(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, "newcomer", "pw", "New Comer", "GRACE"))
	assert.Nil(t, a.CurrentUser(ctx))
}

func TestRegister_InvalidMinistryCode_NoMutation(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	err := a.Register(ctx, "john.doe", "secret", "John Doe", "WRONG")
	require.ErrorIs(t, err, common.ErrInvalidMinistryCode)

	pending, err := a.PendingUsers(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRegister_DuplicateUsername_AnyCase(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, "john.doe", "secret", "John Doe", "GRACE"))

	err := a.Register(ctx, "JOHN.DOE", "other", "Impostor", "GRACE")
	require.ErrorIs(t, err, common.ErrUsernameTaken)

	// Seed names are taken too.
	err = a.Register(ctx, "Admin", "x", "X", "GRACE")
	require.ErrorIs(t, err, common.ErrUsernameTaken)

	pending, err := a.PendingUsers(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "John Doe", pending[0].Name)
}

func TestApprovalFlow_RegisterApproveLogin(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, "john.doe", "secret", "John Doe", "GRACE"))

	_, err := a.Login(ctx, "john.doe", "secret")
	require.ErrorIs(t, err, common.ErrPendingApproval)

	require.NoError(t, a.ApproveUser(ctx, models.RoleAdmin, "john.doe"))

	session, err := a.Login(ctx, "john.doe", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RolePastor, session.Role)
	assert.Equal(t, models.StatusApproved, session.Status)
}

func TestRejectedUser_CannotLogin(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, "john.doe", "secret", "John Doe", "GRACE"))
	require.NoError(t, a.RejectUser(ctx, models.RoleAdmin, "john.doe"))

	_, err := a.Login(ctx, "john.doe", "secret")
	require.ErrorIs(t, err, common.ErrAccountDisabled)

	// The username stays taken.
	err = a.Register(ctx, "john.doe", "again", "John Doe", "GRACE")
	require.ErrorIs(t, err, common.ErrUsernameTaken)
}

func TestAdminOps_RequireAdminRole(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, "john.doe", "secret", "John Doe", "GRACE"))

	_, err := a.PendingUsers(ctx, models.RolePastor)
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	err = a.ApproveUser(ctx, models.RolePastor, "john.doe")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	err = a.RejectUser(ctx, "", "john.doe")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	// Nothing changed.
	_, err = a.Login(ctx, "john.doe", "secret")
	require.ErrorIs(t, err, common.ErrPendingApproval)
}

func TestApproveUser_UnknownUsername_IsNoop(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, a.ApproveUser(ctx, models.RoleAdmin, "ghost"))
	require.NoError(t, a.RejectUser(ctx, models.RoleAdmin, "ghost"))
}

func TestLogout_RemovesSession_AndIsIdempotent(t *testing.T) {
	a := newTestAuthService(t)
	ctx := context.Background()

	_, err := a.Login(ctx, "admin", "amen")
	require.NoError(t, err)
	require.NotNil(t, a.CurrentUser(ctx))

	require.NoError(t, a.Logout(ctx))
	assert.Nil(t, a.CurrentUser(ctx))

	// No active session: still a no-op.
	require.NoError(t, a.Logout(ctx))
	assert.Nil(t, a.CurrentUser(ctx))
}

func TestCurrentUser_NoSession_ReturnsNil(t *testing.T) {
	a := newTestAuthService(t)
	assert.Nil(t, a.CurrentUser(context.Background()))
}
