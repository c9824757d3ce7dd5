package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/ports"
	"github.com/bnema/storefront-cli/internal/validation"
	"github.com/golang-jwt/jwt/v5"
)

const CredentialKey = "cx_token"

// SessionState is the in-memory session. Only the credential is persisted.
type SessionState struct {
	Identity   *domain.User
	Credential string
}

func (s SessionState) Authenticated() bool {
	return s.Identity != nil
}

type signInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Session owns the signed-in identity and its bearer credential. Guards
// answer DecisionPending until Initialize, Login or Logout completes.
type Session struct {
	api     ports.CommerceAPI
	storage ports.LocalStorage
	clock   ports.Clock
	logger  *slog.Logger

	mu    sync.RWMutex
	state SessionState

	initOnce  sync.Once
	readyOnce sync.Once
	ready     chan struct{}
}

func NewSession(api ports.CommerceAPI, storage ports.LocalStorage, clock ports.Clock, logger *slog.Logger) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		api:     api,
		storage: storage,
		clock:   clock,
		logger:  logger,
		ready:   make(chan struct{}),
	}
}

// Initialize restores the session from the persisted credential. Any
// failure clears the credential and leaves the session unauthenticated;
// nothing is returned to the caller. Only the first call does work.
func (s *Session) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer s.markReady()

		credential, found, err := s.storage.Get(ctx, CredentialKey)
		if err != nil {
			s.logger.Warn("read stored credential", slog.String("error", err.Error()))
			s.discardCredential(ctx)
			return
		}
		credential = strings.TrimSpace(credential)
		if !found || credential == "" {
			return
		}

		if credentialExpired(credential, s.clock.Now()) {
			s.logger.Info("stored credential expired, signing out")
			s.discardCredential(ctx)
			return
		}

		s.api.SetCredential(credential)
		user, err := s.api.Me(ctx)
		if err != nil {
			s.logger.Warn("validate stored credential", slog.String("error", err.Error()))
			s.discardCredential(ctx)
			return
		}

		s.setState(SessionState{Identity: &user, Credential: credential})
	})
}

// Login persists credential, attaches it to the API client and marks the
// session authenticated as user. On a persistence error nothing changes.
func (s *Session) Login(ctx context.Context, user domain.User, credential string) error {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return fmt.Errorf("login: %w: empty credential", domain.ErrInvalidInput)
	}

	if err := s.storage.Set(ctx, CredentialKey, credential); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	s.api.SetCredential(credential)
	s.setState(SessionState{Identity: &user, Credential: credential})
	s.markReady()

	return nil
}

// SignIn validates the input locally, exchanges it for a credential and
// logs in.
func (s *Session) SignIn(ctx context.Context, email string, password string) (domain.User, error) {
	input := signInInput{Email: strings.TrimSpace(email), Password: password}
	if err := validation.Struct(input); err != nil {
		return domain.User{}, fmt.Errorf("sign in: %w", err)
	}

	user, credential, err := s.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("sign in: %w", err)
	}

	if err := s.Login(ctx, user, credential); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Logout forgets the identity and credential. The session ends even when
// deleting the stored credential fails; that error is returned.
func (s *Session) Logout(ctx context.Context) error {
	s.api.ClearCredential()
	s.setState(SessionState{})
	s.markReady()

	if err := s.storage.Remove(ctx, CredentialKey); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	return nil
}

// Profile fetches the signed-in user's profile from the API.
func (s *Session) Profile(ctx context.Context) (domain.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load profile: %w", err)
	}
	return user, nil
}

func (s *Session) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Identity == nil {
		return domain.User{}, false
	}
	return *s.state.Identity, true
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready is closed once the session state is settled.
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

func (s *Session) discardCredential(ctx context.Context) {
	s.api.ClearCredential()
	s.setState(SessionState{})
	if err := s.storage.Remove(ctx, CredentialKey); err != nil {
		s.logger.Warn("delete rejected credential", slog.String("error", err.Error()))
	}
}

// credentialExpired reports whether credential is a JWT whose exp is not
// after now. Opaque tokens and tokens without exp are left to the server.
func credentialExpired(credential string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(credential, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}

	return !claims.ExpiresAt.After(now)
}
