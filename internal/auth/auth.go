package auth

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nonabeauty/storeadmin/internal/domain"
	"github.com/nonabeauty/storeadmin/internal/store"
)

const (
	// DefaultAdminPassword seeds the credential hash on first boot.
	// Operators are expected to change it immediately.
	DefaultAdminPassword = "admin123"

	defaultAdminEmail = "admin@nonabeauty.com"
)

// Manager owns the session/auth state machine: anonymous or
// authenticated as admin or user. It is passed explicitly to everything
// that needs authorization; there is no global session.
type Manager struct {
	store *store.Storage
}

func NewManager(st *store.Storage) *Manager {
	return &Manager{store: st}
}

// Result reports a login attempt. Reason is human-readable and only set
// on rejection.
type Result struct {
	OK     bool   `json:"ok"`
	Role   string `json:"role,omitempty"`
	Email  string `json:"email,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// EnsureAdminPassword seeds the bcrypt hash of the default password
// when no credential is stored yet.
func (m *Manager) EnsureAdminPassword() {
	if m.store.GetString(domain.KeyAdminPW) != "" {
		return
	}
	if err := m.ChangeAdminPassword(DefaultAdminPassword); err != nil {
		zap.L().Error("failed to seed admin credential", zap.Error(err))
		return
	}
	zap.L().Info("initialized default admin credential")
}

// Login runs a single synchronous attempt, no retry or backoff.
//
// Admin logins verify the password against the stored bcrypt hash; the
// email is informational and defaults when blank. User logins accept
// any non-empty email/password pair and lazily create the per-email
// profile record.
func (m *Manager) Login(role, email, password string) Result {
	email = strings.TrimSpace(email)
	if role == "" {
		role = domain.RoleUser
	}

	if role == domain.RoleAdmin {
		hash := m.store.GetString(domain.KeyAdminPW)
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return Result{Reason: "invalid admin password"}
		}
		if email == "" {
			email = defaultAdminEmail
		}
		m.store.SetString(domain.KeyUserType, domain.RoleAdmin)
		m.store.SetString(domain.KeyUserEmail, email)
		return Result{OK: true, Role: domain.RoleAdmin, Email: email}
	}

	if email == "" || password == "" {
		return Result{Reason: "please provide email and password"}
	}
	m.store.SetString(domain.KeyUserType, domain.RoleUser)
	m.store.SetString(domain.KeyUserEmail, email)
	m.store.EnsureProfile(email)
	return Result{OK: true, Role: domain.RoleUser, Email: email}
}

// Logout unconditionally returns to anonymous
func (m *Manager) Logout() {
	m.store.SetString(domain.KeyUserType, "")
	m.store.SetString(domain.KeyUserEmail, "")
}

// Current reads the persisted session fields
func (m *Manager) Current() domain.Session {
	return domain.Session{
		Role:  m.store.GetString(domain.KeyUserType),
		Email: m.store.GetString(domain.KeyUserEmail),
	}
}

// ChangeAdminPassword rewrites the stored credential hash. Sessions
// already established stay valid.
func (m *Manager) ChangeAdminPassword(newPassword string) error {
	if newPassword == "" {
		return errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}
	m.store.SetString(domain.KeyAdminPW, string(hash))
	return nil
}
