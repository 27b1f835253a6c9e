// Package auth owns the sign-in lifecycle against the remote backend:
// credential exchange, token refresh and the persisted session that
// every page load consults. Passwords are never stored or verified here;
// they pass through to the backend untouched.
package auth

import (
	"context"
	"encoding/json"
	"time"

	apperrors "hawamoni/internal/errors"
	"hawamoni/internal/models"
	"hawamoni/internal/repositories"
	"hawamoni/internal/services/proxy"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Service interface {
	// Login exchanges credentials with the backend. On a 2xx response a
	// session is created and returned; on any other status the backend
	// result is returned untouched for the handler to forward.
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, *proxy.Result, error)

	// Register forwards the registration payload unchanged.
	Register(ctx context.Context, body []byte) (*proxy.Result, error)

	// Refresh exchanges the stored refresh token for a new pair and
	// updates the session in place.
	Refresh(ctx context.Context, sessionID string) (*models.TokenPair, error)

	// Logout clears the stored session atomically.
	Logout(ctx context.Context, sessionID string) error

	// Current loads the session and reports whether its access token is
	// still valid against wall-clock time.
	Current(ctx context.Context, sessionID string) (*models.Session, bool, error)
}

type service struct {
	backend  *proxy.Client
	sessions repositories.SessionStore
	now      func() time.Time
}

func NewService(backend *proxy.Client, sessions repositories.SessionStore) Service {
	return &service{
		backend:  backend,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *service) Login(ctx context.Context, req models.LoginRequest) (*models.Session, *proxy.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.backend.Login(ctx, body)
	if err != nil {
		return nil, nil, err
	}
	if !res.OK() {
		return nil, res, nil
	}

	var pair models.TokenPair
	if err := json.Unmarshal(res.Body, &pair); err != nil {
		return nil, nil, apperrors.ErrBackendUnreachable.WithCause(err)
	}

	session := models.Session{
		ID:           uuid.NewString(),
		Email:        req.Email,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return &session, res, nil
}

func (s *service) Register(ctx context.Context, body []byte) (*proxy.Result, error) {
	return s.backend.Register(ctx, body)
}

func (s *service) Refresh(ctx context.Context, sessionID string) (*models.TokenPair, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]string{"refresh_token": session.RefreshToken})
	if err != nil {
		return nil, err
	}
	res, err := s.backend.Refresh(ctx, body)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, apperrors.ErrSessionNotFound
	}

	var pair models.TokenPair
	if err := json.Unmarshal(res.Body, &pair); err != nil {
		return nil, apperrors.ErrBackendUnreachable.WithCause(err)
	}

	session.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		session.RefreshToken = pair.RefreshToken
	}
	if err := s.sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

func (s *service) Current(ctx context.Context, sessionID string) (*models.Session, bool, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	return session, s.tokenValid(session.AccessToken), nil
}

// tokenValid checks the access token's expiry claim without verifying
// the signature; the backend is the authority, this only decides whether
// a refresh is needed before calling it.
func (s *service) tokenValid(token string) bool {
	if token == "" {
		return false
	}
	var claims models.UserClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.After(s.now())
}
