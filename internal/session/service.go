package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
	"github.com/storemate/storemate-cli/pkg/logger"
)

// Authenticator is the slice of the remote client the session needs.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*api.User, string, error)
	Logout(ctx context.Context) error
	SetSessionCookie(cookie string)
}

// Service owns the sign-in lifecycle: authenticating, persisting the
// session, and gating operations that need one.
type Service struct {
	store Store
	auth  Authenticator
	log   *logger.Logger
}

// NewService builds a session service over a store and the remote
// authenticator.
func NewService(store Store, auth Authenticator, log *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session requires a store")
	}
	if auth == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session requires an authenticator")
	}
	return &Service{store: store, auth: auth, log: log}, nil
}

// SignIn authenticates against the remote service and persists the
// issued session. Sign-in failures are distinguished by status: a 401
// is a wrong password, a 404 an unknown account.
func (s *Service) SignIn(ctx context.Context, email, password string) (*State, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	user, cookie, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			switch typed.Status() {
			case http.StatusUnauthorized:
				return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "wrong password").WithStatus(typed.Status())
			case http.StatusNotFound:
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no account with that email").WithStatus(typed.Status())
			}
		}
		return nil, err
	}

	state := &State{User: user, Token: cookie, SignedInAt: time.Now()}
	if err := s.store.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// SignOut ends the session. The local reset is authoritative: it
// happens first and its result stands even if the remote logout fails.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	if err := s.auth.Logout(ctx); err != nil {
		if s.log != nil {
			s.log.Warn(s.log.WithField(ctx, "error", err.Error()), "remote logout failed, local session already cleared")
		}
	}
	return nil
}

// Expire drops the local session without a remote call. The auth
// expired hook uses it when the service answers 401.
func (s *Service) Expire() {
	if err := s.store.Clear(); err != nil && s.log != nil {
		ctx := s.log.WithField(context.Background(), "error", err.Error())
		s.log.Warn(ctx, "clear expired session failed")
	}
	s.auth.SetSessionCookie("")
}

// Current returns the persisted session, or nil when anonymous.
func (s *Service) Current() (*State, error) {
	return s.store.Load()
}

// Guard fails with an auth error unless a session exists. Commands
// that need the remote service call it before doing anything.
func (s *Service) Guard() (*State, error) {
	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in first")
	}
	return state, nil
}
