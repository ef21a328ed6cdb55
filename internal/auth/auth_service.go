package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	autherrors "go-roster/internal/auth/errors"
	"go-roster/internal/shared/apperror"
	"go-roster/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultLoginDelay = 500 * time.Millisecond

// Service is the session gate. It moves between Unauthenticated and
// Authenticated and has no terminal state.
type Service interface {
	// Login accepts any password for any email containing "@". There is no
	// credential check.
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (AuthResponse, error)
	State() State
	CurrentUserID() (string, bool)
}

type ServiceOption func(*service)

func WithLoginDelay(d time.Duration) ServiceOption {
	return func(s *service) { s.delay = d }
}

// WithSleep replaces the function used to wait out the login delay.
func WithSleep(sleep func(time.Duration)) ServiceOption {
	return func(s *service) { s.sleep = sleep }
}

func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("auth.service")
		}
	}
}

type service struct {
	repo   SessionRepository
	delay  time.Duration
	sleep  func(time.Duration)
	logger *zap.Logger

	mu   sync.RWMutex
	user *SessionUser
}

// NewService starts the gate in the state implied by the persisted marker.
func NewService(ctx context.Context, repo SessionRepository, opts ...ServiceOption) (Service, error) {
	s := &service{
		repo:   repo,
		delay:  DefaultLoginDelay,
		sleep:  time.Sleep,
		logger: zap.L().Named("auth.service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	user, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.user = user
	s.logger.Debug("session gate started", zap.Stringer("state", s.State()))
	return s, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if email == "" || password == "" {
		log.Warn("login rejected", zap.String("reason", "missing fields"))
		return AuthResponse{}, autherrors.ErrLoginMissingFields
	}
	if !strings.Contains(email, "@") {
		log.Warn("login rejected", zap.String("reason", "invalid email"))
		return AuthResponse{}, autherrors.ErrLoginInvalidEmail
	}

	// simulated authentication round trip; it is not cancellable
	s.sleep(s.delay)

	user := SessionUser{
		ID:    "user_" + uuid.NewString(),
		Email: email,
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// a started login completes even if the caller has gone away
	if err := s.repo.Set(context.WithoutCancel(ctx), user); err != nil {
		log.Error("persist session failed", zap.Error(err))
		return AuthResponse{}, apperror.Internal(err)
	}
	s.user = &user

	log.Info("login success", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return toResponse(user), nil
}

// Logout always ends in Unauthenticated, even if clearing the persisted
// marker fails.
func (s *service) Logout(ctx context.Context) error {
	log := contextutil.GetLogger(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.repo.Clear(ctx); err != nil {
		log.Error("clear session failed", zap.Error(err))
		return apperror.Internal(err)
	}
	log.Info("logout success")
	return nil
}

func (s *service) Me(ctx context.Context) (AuthResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return AuthResponse{}, autherrors.ErrUnauthenticated
	}
	return toResponse(*s.user), nil
}

func (s *service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

func (s *service) CurrentUserID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return "", false
	}
	return s.user.ID, true
}
