// Command createadmin bootstraps an admin account so the panel has someone
// to sign in as. Usage:
//
//	createadmin -email admin@example.com -name "Store Admin" -password secret [-role SUPER_ADMIN]
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/jewelry-store/internal/auth"
	"github.com/spec-kit/jewelry-store/internal/config"
	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/observability"
	"github.com/spec-kit/jewelry-store/internal/persistence"
	"github.com/spec-kit/jewelry-store/internal/repository"
)

func main() {
	email := flag.String("email", "", "admin email")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "plaintext password, hashed before storage")
	role := flag.String("role", string(domain.AdminRoleAdmin), "ADMIN or SUPER_ADMIN")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		log.Fatal("email, name and password are required")
	}
	adminRole := domain.AdminRole(*role)
	if adminRole != domain.AdminRoleAdmin && adminRole != domain.AdminRoleSuperAdmin {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	hash, err := auth.HashPassword(*password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := &domain.Admin{
		Email:        *email,
		Name:         *name,
		PasswordHash: hash,
		Role:         adminRole,
		Active:       true,
	}
	if err := repository.NewAdminRepository(pg.PoolHandle()).Create(ctx, admin); err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.String("id", admin.ID), zap.String("email", admin.Email))
}
