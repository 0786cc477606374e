package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/store"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
)

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, mapAdapterError(err)
	}

	a.persistSession(ctx)
	if err = a.sessions.SaveLastEmail(ctx, a.adapter.BaseURL(), req.Email); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("failed to remember login email")
	}

	user := resp.User
	if user == nil {
		// login answered without a user, ask for it
		if user, err = a.Me(ctx); err != nil {
			if errors.Is(err, ErrSessionExpired) {
				// the cookie set by /login was not accepted
				return nil, err
			}
			a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("failed to fetch user after login, dashboard will load it")
			return nil, nil
		}
	}

	return user, nil
}

func (a *clientAuthService) Register(ctx context.Context, form models.RegistrationForm) (string, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return "", err
	}

	resp, err := a.adapter.Register(ctx, form.Request())
	if err != nil {
		return "", mapAdapterError(err)
	}

	return resp.Message, nil
}

func (a *clientAuthService) ResetPassword(ctx context.Context, form models.PasswordResetForm) (string, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return "", err
	}

	resp, err := a.adapter.ResetPassword(ctx, form.Request())
	if err != nil {
		return "", mapAdapterError(err)
	}

	return resp.Message, nil
}

func (a *clientAuthService) Me(ctx context.Context) (*models.User, error) {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	err := a.adapter.Logout(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Logout").Msg("server logout failed, dropping local session anyway")
	}

	a.adapter.SetCookies(nil)
	if clearErr := a.sessions.Clear(ctx, a.adapter.BaseURL()); clearErr != nil {
		a.logger.Err(clearErr).Str("func", "clientAuthService.Logout").Msg("failed to clear local session")
		return fmt.Errorf("clear local session: %w", clearErr)
	}

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (*models.User, error) {
	cookies, err := a.sessions.LoadCookies(ctx, a.adapter.BaseURL())
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return nil, ErrNoStoredSession
	}
	if err != nil {
		return nil, fmt.Errorf("load stored session: %w", err)
	}

	a.adapter.SetCookies(cookies)

	user, err := a.Me(ctx)
	if errors.Is(err, ErrSessionExpired) || (err == nil && user == nil) {
		a.adapter.SetCookies(nil)
		if clearErr := a.sessions.Clear(ctx, a.adapter.BaseURL()); clearErr != nil {
			a.logger.Err(clearErr).Str("func", "clientAuthService.RestoreSession").Msg("failed to clear stale session")
		}
		return nil, ErrNoStoredSession
	}
	if err != nil {
		return nil, err
	}

	// the backend may have refreshed the cookie
	a.persistSession(ctx)
	return user, nil
}

func (a *clientAuthService) LastEmail(ctx context.Context) string {
	email, err := a.sessions.LastEmail(ctx, a.adapter.BaseURL())
	if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		a.logger.Err(err).Str("func", "clientAuthService.LastEmail").Msg("failed to read last email")
	}
	return email
}

// persistSession saves the adapter's current cookies. Failures are only
// logged.
func (a *clientAuthService) persistSession(ctx context.Context) {
	if err := a.sessions.SaveCookies(ctx, a.adapter.BaseURL(), a.adapter.Cookies()); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.persistSession").Msg("failed to save session cookies")
	}
}
