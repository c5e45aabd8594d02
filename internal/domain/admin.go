package domain

import "time"

// AdminRole enumerates back-office operator roles.
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "ADMIN"
	AdminRoleSuperAdmin AdminRole = "SUPER_ADMIN"
)

// Admin models a back-office account able to sign in to the admin panel.
type Admin struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         AdminRole
	Active       bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
