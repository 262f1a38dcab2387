package service

import (
	"context"
	"log/slog"

	"github.com/preciosa-app/backend/internal/auth"
	"github.com/preciosa-app/backend/internal/models"
)

// IdentitySnapshots persists the last-logged-in identity, mirroring the
// current-user snapshot kept by the original client. Optional; best-effort.
type IdentitySnapshots interface {
	SaveCurrentIdentity(ctx context.Context, identity models.Identity) error
}

// AuthService wraps the authentication boundary: registration and login,
// producing the signed session token and the stable identity the simulation
// core partitions by. Authenticator errors pass through untouched.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	snapshots     IdentitySnapshots
	logger        *slog.Logger
}

// Session is the result of a successful registration or login.
type Session struct {
	Token    string
	Identity models.Identity
	Email    string
}

// NewAuthService creates a new authentication service. snapshots may be nil
// when no local snapshot slot is available.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, snapshots IdentitySnapshots, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		snapshots:     snapshots,
		logger:        logger,
	}
}

// Register creates a new user account and returns a fresh session.
func (s *AuthService) Register(ctx context.Context, email, displayName, password string) (*Session, error) {
	if email == "" || displayName == "" {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Register(ctx, email, displayName, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.snapshotIdentity(ctx, user.Identity())
	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return &Session{Token: token, Identity: user.Identity(), Email: user.Email}, nil
}

// Login authenticates a user and returns a fresh session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.snapshotIdentity(ctx, user.Identity())
	s.logger.Info("User logged in", "user_id", user.ID, "email", user.Email)
	return &Session{Token: token, Identity: user.Identity(), Email: user.Email}, nil
}

// snapshotIdentity records the identity in the local snapshot slot. A failed
// snapshot never fails the login.
func (s *AuthService) snapshotIdentity(ctx context.Context, identity models.Identity) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveCurrentIdentity(ctx, identity); err != nil {
		s.logger.Warn("Failed to snapshot identity", "identity", identity.ID, "error", err)
	}
}
