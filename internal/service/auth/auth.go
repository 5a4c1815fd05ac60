// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"time"

	"skadeportal-service/internal/domain/auth"
	xerrors "skadeportal-service/internal/pkg/errors"
	"skadeportal-service/internal/pkg/jwt"
	"skadeportal-service/internal/pkg/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Repository is the user lookup the auth service needs.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*auth.User, error)
	FindByID(ctx context.Context, id string) (*auth.User, error)
}

// AuthService signs staff in and out and validates tokens on every request.
type AuthService struct {
	repo     Repository
	tokens   *jwt.Manager
	sessions *session.Manager
	logger   *zap.Logger
}

func NewAuthService(repo Repository, tokens *jwt.Manager, sessions *session.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies credentials, issues a token and creates the session.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	token, jti, expiresAt, err := s.tokens.Generate(user.ID, user.TenantID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	sess := &session.Data{
		JTI:       jti,
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Email:     user.Email,
		LoginAt:   time.Now(),
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("company_id", user.TenantID),
	)

	return &auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User: auth.UserInfo{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			TenantID: user.TenantID,
		},
	}, nil
}

// Logout invalidates the session behind the presented token.
func (s *AuthService) Logout(ctx context.Context, userID, jti string) error {
	if err := s.sessions.Invalidate(ctx, userID, jti); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	s.logger.Info("user logged out", zap.String("user_id", userID))
	return nil
}

// ValidateToken checks the token signature, the live session, and that the
// user still exists. A user whose row is gone is force-signed-out: all their
// sessions are invalidated and the request is rejected.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*jwt.PortalClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, xerrors.ErrSessionExpired
	}

	if _, err := s.sessions.Get(ctx, claims.UserID, claims.ID); err != nil {
		return nil, xerrors.ErrSessionExpired
	}

	if _, err := s.repo.FindByID(ctx, claims.UserID); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			if err := s.sessions.InvalidateAll(ctx, claims.UserID); err != nil {
				s.logger.Error("failed to invalidate sessions for removed user",
					zap.String("user_id", claims.UserID),
					zap.Error(err),
				)
			}
			return nil, xerrors.ErrUserGone
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	return claims, nil
}
