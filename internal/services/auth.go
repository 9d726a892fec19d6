// Package services contains the application services layered on the
// persistence gateway: the identity/approval registry and the content
// registries for prayers, videos and the stream schedule.
package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// Record keys owned by the identity registry. The user collection is synced
// through the gateway; the session is local-only.
const (
	usersKey   = "gracegather_users_db"
	sessionKey = "gracegather_auth_session"
)

// nowFn is a test seam for time.Now.
var nowFn = time.Now

// AuthService is the identity and approval registry.
//
// Accounts are created PENDING by self-registration and must be approved by
// an admin before login succeeds. Rejection is terminal. Admin operations
// verify the acting role inside the registry rather than trusting the
// caller.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, username, password, name, ministryCode string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.Session
	PendingUsers(ctx context.Context, actingRole string) ([]models.User, error)
	ApproveUser(ctx context.Context, actingRole, username string) error
	RejectUser(ctx context.Context, actingRole, username string) error
}

type authService struct {
	gw           *gateway.Gateway
	ministryCode string
	seed         []models.User
}

// NewAuthService constructs the registry. The ministry code and seed
// accounts come from configuration so tests can replace them.
func NewAuthService(gw *gateway.Gateway, ministryCode string, seed []models.User) AuthService {
	return &authService{gw: gw, ministryCode: ministryCode, seed: seed}
}

// seedCollection builds the default user collection from the configured
// seed accounts, keyed by normalized username.
func (a *authService) seedCollection() map[string]models.User {
	users := make(map[string]models.User, len(a.seed))
	for _, u := range a.seed {
		u.Username = strings.ToLower(u.Username)
		users[u.Username] = u
	}
	return users
}

func (a *authService) loadUsers(ctx context.Context) map[string]models.User {
	users := a.seedCollection()
	a.gw.Load(ctx, usersKey, &users)
	return users
}

func (a *authService) saveUsers(ctx context.Context, users map[string]models.User) error {
	_, err := a.gw.Save(ctx, usersKey, users)
	return err
}

// Login authenticates username/password against the user collection.
//
// Credentials are compared exactly; on a match the account status gates the
// result: PENDING fails with ErrPendingApproval, REJECTED with
// ErrAccountDisabled, and APPROVED yields a freshly tokened session that is
// persisted locally (never mirrored).
func (a *authService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	users := a.loadUsers(ctx)

	u, ok := users[strings.ToLower(username)]
	if !ok || u.Password != password {
		return nil, common.ErrInvalidCredentials
	}

	switch u.Status {
	case models.StatusPending:
		return nil, common.ErrPendingApproval
	case models.StatusRejected:
		return nil, common.ErrAccountDisabled
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}
	session := &models.Session{
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
		Status:   u.Status,
		Token:    token,
	}
	if err := a.gw.SaveLocal(ctx, sessionKey, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Register creates a new PENDING pastor account. It never creates a
// session: registration and login are decoupled by the approval gate.
func (a *authService) Register(ctx context.Context, username, password, name, ministryCode string) error {
	if ministryCode != a.ministryCode {
		return common.ErrInvalidMinistryCode
	}

	users := a.loadUsers(ctx)
	normalized := strings.ToLower(username)

	if _, exists := users[normalized]; exists {
		return common.ErrUsernameTaken
	}

	users[normalized] = models.User{
		Username: normalized,
		Password: password,
		Role:     models.RolePastor,
		Name:     name,
		Status:   models.StatusPending,
		JoinedAt: nowFn().UTC(),
	}
	return a.saveUsers(ctx, users)
}

// Logout removes the local session record. Calling it with no active
// session is a no-op.
func (a *authService) Logout(ctx context.Context) error {
	return a.gw.DeleteLocal(ctx, sessionKey)
}

// CurrentUser returns the locally stored session, or nil when none exists
// or the stored record is unreadable.
func (a *authService) CurrentUser(ctx context.Context) *models.Session {
	var s models.Session
	if !a.gw.LoadLocal(ctx, sessionKey, &s) {
		return nil
	}
	return &s
}

// PendingUsers lists accounts awaiting review, sorted by username. Only an
// admin acting role may call it.
func (a *authService) PendingUsers(ctx context.Context, actingRole string) ([]models.User, error) {
	if actingRole != models.RoleAdmin {
		return nil, common.ErrorUnauthorized
	}

	users := a.loadUsers(ctx)
	pending := make([]models.User, 0)
	for _, u := range users {
		if u.Status == models.StatusPending {
			pending = append(pending, u)
		}
	}
	sortUsersByName(pending)
	return pending, nil
}

// ApproveUser transitions an account to APPROVED. Unknown usernames are a
// no-op, not an error.
func (a *authService) ApproveUser(ctx context.Context, actingRole, username string) error {
	return a.setStatus(ctx, actingRole, username, models.StatusApproved)
}

// RejectUser transitions an account to REJECTED, permanently blocking
// login. Unknown usernames are a no-op.
func (a *authService) RejectUser(ctx context.Context, actingRole, username string) error {
	return a.setStatus(ctx, actingRole, username, models.StatusRejected)
}

func (a *authService) setStatus(ctx context.Context, actingRole, username, status string) error {
	if actingRole != models.RoleAdmin {
		return common.ErrorUnauthorized
	}

	users := a.loadUsers(ctx)
	normalized := strings.ToLower(username)

	u, ok := users[normalized]
	if !ok {
		return nil
	}
	u.Status = status
	users[normalized] = u
	return a.saveUsers(ctx, users)
}

func sortUsersByName(users []models.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
}
