package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/jewelry-store/internal/auth"
	"github.com/spec-kit/jewelry-store/internal/config"
	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/repository"
	apperrors "github.com/spec-kit/jewelry-store/pkg/util"
)

// AuthService coordinates admin sign-in and session issuance.
type AuthService struct {
	admins   repository.AdminRepository
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, admins repository.AdminRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		admins:   admins,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL()),
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates an admin and issues a session token. Every failure mode
// surfaces the same unauthorized error so callers cannot probe which accounts
// exist. The plaintext password is never logged.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if !admin.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	loginAt := s.now()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID, loginAt); err != nil {
		// session issuance should not fail on a bookkeeping write
		s.logger.Warn("failed to record last login", zap.String("admin_id", admin.ID), zap.Error(err))
	} else {
		admin.LastLoginAt = &loginAt
	}

	token, exp, err := s.tokenMgr.Generate(admin)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return admin, token, exp, nil
}

// TokenManager exposes the underlying token manager for gate usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
