package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/jewelry-store/internal/auth"
	"github.com/spec-kit/jewelry-store/internal/config"
	"github.com/spec-kit/jewelry-store/internal/domain"
	apperrors "github.com/spec-kit/jewelry-store/pkg/util"
)

func authTestConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", SessionTTLMinutes: 60, BcryptCost: bcrypt.MinCost}
}

func seedAdmin(t *testing.T, active bool) *domain.Admin {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Admin{
		ID:           "adm-1",
		Email:        "julia@example.com",
		Name:         "Julia",
		PasswordHash: hash,
		Role:         domain.AdminRoleSuperAdmin,
		Active:       active,
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeAdminRepo(seedAdmin(t, true))
	svc := NewAuthService(authTestConfig(), repo, zap.NewNop())

	admin, token, exp, err := svc.Login(context.Background(), "julia@example.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, "adm-1", admin.ID)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	require.Equal(t, "adm-1", claims.AdminID())
	require.Equal(t, domain.AdminRoleSuperAdmin, claims.Role)
}

func TestLoginRecordsLastLogin(t *testing.T) {
	repo := newFakeAdminRepo(seedAdmin(t, true))
	svc := NewAuthService(authTestConfig(), repo, zap.NewNop())

	admin, _, _, err := svc.Login(context.Background(), "julia@example.com", "correct-horse")
	require.NoError(t, err)

	require.Contains(t, repo.lastLogins, "adm-1")
	require.NotNil(t, admin.LastLoginAt)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAdminRepo(seedAdmin(t, true), seedInactiveAdmin(t))
	svc := NewAuthService(authTestConfig(), repo, zap.NewNop())

	cases := map[string][2]string{
		"unknown email":    {"ghost@example.com", "correct-horse"},
		"wrong password":   {"julia@example.com", "wrong"},
		"inactive account": {"retired@example.com", "correct-horse"},
	}
	for name, creds := range cases {
		_, _, _, err := svc.Login(context.Background(), creds[0], creds[1])
		require.Error(t, err, name)

		domainErr := apperrors.ToDomainError(err)
		require.Equal(t, "UNAUTHORIZED", domainErr.Code, name)
		require.Equal(t, "invalid credentials", domainErr.Message, name)
	}
}

func seedInactiveAdmin(t *testing.T) *domain.Admin {
	t.Helper()
	admin := seedAdmin(t, false)
	admin.ID = "adm-2"
	admin.Email = "retired@example.com"
	return admin
}
