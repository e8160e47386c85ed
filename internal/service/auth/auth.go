// internal/service/auth/auth.go

// Package auth drives the session store around the upstream auth calls. It
// is the only code that invokes login/logout transitions, and it owns the
// durable expiry marker's lifecycle: written on successful login, deleted on
// logout, never touched otherwise.
package auth

import (
	"context"
	"errors"
	"time"

	authdto "crmdesk-console/internal/domain/auth"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/localstate"
	xerrors "crmdesk-console/internal/pkg/errors"
	"crmdesk-console/internal/session"

	"go.uber.org/zap"
)

type Service struct {
	api        *crmapi.Client
	store      *session.Store
	state      *localstate.State
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewService(
	api *crmapi.Client,
	store *session.Store,
	state *localstate.State,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		api:        api,
		store:      store,
		state:      state,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login runs the full login flow: start transition, upstream call, then
// success or failure transition. On success the expiry marker is written from
// the token's exp claim. On failure the session is reset with the upstream's
// message; the caller decides what to show.
func (s *Service) Login(ctx context.Context, req authdto.LoginRequest) (session.Session, error) {
	s.store.LoginStart()

	res, err := s.api.Login(ctx, req)
	if err != nil {
		// A failed re-login discards any existing session, marker included.
		s.store.LoginFailure(userMessage(err, "login failed"))
		if derr := s.state.DeleteTokenExpiry(); derr != nil {
			s.logger.Error("failed to delete expiry marker", zap.Error(derr))
		}
		s.logger.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		return s.store.Snapshot(), err
	}

	s.store.LoginSuccess(res)
	expiry := crmapi.TokenExpiry(res.Token, time.Now(), s.sessionTTL)
	if err := s.state.SetTokenExpiry(expiry); err != nil {
		s.logger.Error("failed to persist expiry marker", zap.Error(err))
	}
	s.logger.Info("user logged in",
		zap.Int64("user_id", res.User.ID),
		zap.String("role", res.User.RoleName),
		zap.Time("token_expiry", expiry),
	)
	return s.store.Snapshot(), nil
}

// Logout clears all durable session storage and resets the session.
// Idempotent; logging out while anonymous is a no-op.
func (s *Service) Logout() error {
	err := s.state.Clear()
	s.store.Logout()
	if err != nil {
		s.logger.Error("failed to clear durable session state", zap.Error(err))
		return xerrors.Wrap(err, "failed to clear session state")
	}
	s.logger.Info("user logged out")
	return nil
}

// Register creates an account upstream. It only ever moves the registration
// axis; an existing authenticated session is untouched either way.
func (s *Service) Register(ctx context.Context, req authdto.RegisterRequest) (session.Session, error) {
	s.store.RegisterStart()

	msg, err := s.api.Register(ctx, req)
	if err != nil {
		s.store.RegisterFailure(userMessage(err, "registration failed"))
		s.logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
		return s.store.Snapshot(), err
	}

	s.store.RegisterSuccess(msg)
	s.logger.Info("registration submitted", zap.String("email", req.Email))
	return s.store.Snapshot(), nil
}

// RefreshProfile re-fetches the authenticated user from the upstream and
// replaces every profile field in the session. Used when the console suspects
// its copy is stale, e.g. after a long disconnect from the event stream.
func (s *Service) RefreshProfile(ctx context.Context) (session.Session, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.Warn("profile refresh failed", zap.Error(err))
		return s.store.Snapshot(), err
	}
	s.store.UpdateUser(&session.UserPatch{
		Email:     &user.Email,
		FullName:  &user.FullName,
		Phone:     &user.Phone,
		AvatarURL: &user.AvatarURL,
		RoleName:  &user.RoleName,
	})
	return s.store.Snapshot(), nil
}

// UpdateProfile patches the profile upstream and merges the confirmed fields
// into the session user.
func (s *Service) UpdateProfile(ctx context.Context, req authdto.UpdateProfileRequest) (session.Session, error) {
	patch, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		s.logger.Warn("profile update failed", zap.Error(err))
		return s.store.Snapshot(), err
	}
	s.store.UpdateUser(patch)
	return s.store.Snapshot(), nil
}

// userMessage extracts the upstream's human-readable message for display,
// falling back when the failure was local (network, decode).
func userMessage(err error, fallback string) string {
	var apiErr *crmapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return fallback
}
