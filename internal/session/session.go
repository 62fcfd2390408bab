package session

import (
	"context"
	"sync"

	"github.com/crcs-platform/campusctl/internal/log"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// AuthService is the credential-exchange surface the store delegates to.
// It is implemented by the platform client; the store never builds HTTP
// requests itself.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*types.AuthResponse, error)
	Signup(ctx context.Context, req types.SignupRequest) (*types.AuthResponse, error)
	Logout(ctx context.Context) error

	// ErrorMessage renders any failure from the service as a single
	// human-readable string. Total: never panics, always non-empty.
	ErrorMessage(err error) string
}

// Session is a read-only snapshot of the current authentication state.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *types.UserInfo
	IsLoading    bool
	LastError    string
}

// IsAuthenticated reports whether the snapshot holds a usable identity.
// True only when both the access token and the user are present.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != "" && s.User != nil
}

// Store is the single source of truth for "who is logged in".
//
// All mutation goes through BeginAuthAttempt, CommitAuth, UpdateTokens,
// ClearSession, SetError, and ClearError; everything else is read-only.
// The store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	keychain *Keychain
	svc      AuthService
	logger   *log.Logger

	accessToken  string
	refreshToken string
	user         *types.UserInfo
	isLoading    bool
	lastError    string
}

// NewStore creates a session store backed by the given keychain.
// Bind must be called before Login, Signup, or Logout are used.
func NewStore(keychain *Keychain, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		keychain: keychain,
		logger:   logger,
	}
}

// Bind attaches the auth service. Done after construction because the
// platform client in turn reads credentials from this store.
func (s *Store) Bind(svc AuthService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.svc = svc
}

// Rehydrate loads durable state into memory. Called once at startup.
//
// Both the access token and the user must be present to come up
// authenticated; anything partial or corrupt silently resolves to an empty
// session. Rehydrate never fails.
func (s *Store) Rehydrate() {
	access, refresh, user := s.keychain.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	if access == "" || user == nil {
		if access != "" || refresh != "" || user != nil {
			s.logger.Debug("partial session state on disk, starting unauthenticated")
		}
		s.accessToken = ""
		s.refreshToken = ""
		s.user = nil
		return
	}

	s.accessToken = access
	s.refreshToken = refresh
	s.user = user
	s.logger.Debug("session rehydrated", "user", user.UserID, "role", string(user.Role))
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		User:         copyUser(s.user),
		IsLoading:    s.isLoading,
		LastError:    s.lastError,
	}
}

// IsAuthenticated reports whether a token and user are both present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != "" && s.user != nil
}

// User returns a copy of the current user identity, or nil.
func (s *Store) User() *types.UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

// LastError returns the message from the most recent failed auth operation.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// IsLoading reports whether an auth operation is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// HasRole reports whether the current user's role is in the given set.
// False when nobody is logged in. Advisory only: the server is the
// authority, this just decides which affordances to surface.
func (s *Store) HasRole(roles ...types.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if s.user.Role == r {
			return true
		}
	}
	return false
}

// AccessToken returns the current access token, or "".
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// BeginAuthAttempt marks an auth operation as in flight and clears the
// previous error.
func (s *Store) BeginAuthAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = true
	s.lastError = ""
}

// CommitAuth installs a fresh credential set and identity, in memory and
// durably. A keychain failure does not roll back the in-memory session;
// it is returned so callers can warn that the login will not survive the
// process.
func (s *Store) CommitAuth(access, refresh string, user *types.UserInfo) error {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.user = copyUser(user)
	s.isLoading = false
	s.lastError = ""
	s.mu.Unlock()

	return s.keychain.Save(access, refresh, user)
}

// UpdateTokens rotates the token pair while keeping the current user.
// Used by the request pipeline after a successful refresh.
func (s *Store) UpdateTokens(access, refresh string) error {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()

	return s.keychain.SaveTokens(access, refresh)
}

// ClearSession wipes in-memory and durable state unconditionally.
func (s *Store) ClearSession() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.isLoading = false
	s.mu.Unlock()

	if err := s.keychain.Clear(); err != nil {
		s.logger.WithError(err).Warn("failed to clear durable session state")
	}
}

// SetError records the outcome of a failed auth operation.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.lastError = msg
}

// ClearError resets the last error. Idempotent.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// Login exchanges credentials for a session via the auth service.
//
// On success the new session is committed and persisted. On failure the
// existing session is left untouched, the rendered message lands in
// LastError, and the original error is returned to the caller.
func (s *Store) Login(ctx context.Context, email, password string) error {
	svc := s.service()
	s.BeginAuthAttempt()

	res, err := svc.Login(ctx, email, password)
	if err != nil {
		s.SetError(svc.ErrorMessage(err))
		return err
	}

	if err := s.CommitAuth(res.Token, res.RefreshToken, res.User); err != nil {
		s.logger.WithError(err).Warn("session will not survive this process")
	}
	return nil
}

// Signup creates an account and logs in. Same contract as Login.
func (s *Store) Signup(ctx context.Context, email, password, name string, role types.Role) error {
	svc := s.service()
	s.BeginAuthAttempt()

	res, err := svc.Signup(ctx, types.SignupRequest{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
	})
	if err != nil {
		s.SetError(svc.ErrorMessage(err))
		return err
	}

	if err := s.CommitAuth(res.Token, res.RefreshToken, res.User); err != nil {
		s.logger.WithError(err).Warn("session will not survive this process")
	}
	return nil
}

// Logout notifies the server best-effort, then clears all session state.
// A failed server notification is logged and swallowed; local state is
// cleared regardless.
func (s *Store) Logout(ctx context.Context) {
	if svc := s.service(); svc != nil {
		if err := svc.Logout(ctx); err != nil {
			s.logger.WithError(err).Debug("logout notification failed, clearing local session anyway")
		}
	}
	s.ClearSession()
}

func (s *Store) service() AuthService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.svc
}

func copyUser(u *types.UserInfo) *types.UserInfo {
	if u == nil {
		return nil
	}
	c := *u
	if u.Name != nil {
		name := *u.Name
		c.Name = &name
	}
	return &c
}
