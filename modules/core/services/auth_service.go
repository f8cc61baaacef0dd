package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/aggregates/user"
	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/session"
	"github.com/fieldsuite/fieldsuite/modules/core/permissions"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

const sessionTTL = 24 * time.Hour

// AuthService authenticates against a fixed in-memory directory of demo
// accounts and keeps active sessions in memory. There is no real identity
// backend; the directory exists so every role and permission combination
// the shell distinguishes can be exercised.
type AuthService struct {
	mu       sync.RWMutex
	users    map[string]user.User
	sessions map[string]*session.Session
	now      func() time.Time
}

func NewAuthService() *AuthService {
	s := &AuthService{
		users:    make(map[string]user.User),
		sessions: make(map[string]*session.Session),
		now:      time.Now,
	}
	for _, u := range demoUsers() {
		s.users[u.Email()] = u
	}
	return s
}

func demoUsers() []user.User {
	return []user.User{
		user.New("owner@fieldsuite.io", "Olivia Reed", user.RoleOwner),
		user.New("admin@fieldsuite.io", "Andre Silva", user.RoleAdmin,
			user.WithUILanguage(user.UILanguageES)),
		user.New("manager@fieldsuite.io", "Maya Chen", user.RoleManager,
			user.WithPermissions(
				permissions.DashboardView,
				permissions.CustomerRead,
				permissions.CustomerManage,
				permissions.JobRead,
				permissions.JobManage,
				permissions.EstimateRead,
				permissions.EstimateManage,
				permissions.InvoiceRead,
				permissions.TeamRead,
				permissions.TeamManage,
				permissions.ReportView,
				permissions.AssistantUse,
				permissions.InboxRead,
			)),
		user.New("employee@fieldsuite.io", "Eli Novak", user.RoleEmployee,
			user.WithPermissions(
				permissions.DashboardView,
				permissions.JobRead,
				permissions.InboxRead,
			)),
	}
}

// Login validates the email against the demo directory. Any non-empty
// password is accepted; the accounts are demo fixtures, not real identities.
func (s *AuthService) Login(email, password string) (*session.Session, user.User, error) {
	if password == "" {
		return nil, nil, ErrInvalidCredentials
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}
	token := newToken()
	now := s.now()
	sess := &session.Session{
		Token:     token,
		UserID:    u.ID(),
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	s.sessions[token] = sess
	return sess, u, nil
}

func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Resolve implements middleware.SessionResolver. Expired sessions are
// evicted on sight.
func (s *AuthService) Resolve(token string) (*session.Session, user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, token)
		return nil, nil, ErrSessionNotFound
	}
	u, err := s.userByID(sess)
	if err != nil {
		return nil, nil, err
	}
	return sess, u, nil
}

func (s *AuthService) userByID(sess *session.Session) (user.User, error) {
	for _, u := range s.users {
		if u.ID() == sess.UserID {
			return u, nil
		}
	}
	return nil, errors.Wrapf(ErrSessionNotFound, "user %s", sess.UserID)
}

// SetMarker tags the session with a platform session kind. The marker is a
// transient flag consumed once by the shell composer.
func (s *AuthService) SetMarker(token, marker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	sess.Marker = marker
	return nil
}

// ConsumeMarker returns the session's marker and clears it, so a marker
// set at an entry point influences exactly one composition.
func (s *AuthService) ConsumeMarker(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok || sess.Marker == "" {
		return ""
	}
	marker := sess.Marker
	sess.Marker = ""
	return marker
}

func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
