package dto

import (
	"time"

	"github.com/spec-kit/jewelry-store/internal/domain"
)

// AdminLoginRequest payload for admin sign-in.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminResponse is the admin profile returned on login.
type AdminResponse struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	Role        domain.AdminRole `json:"role"`
	LastLoginAt *time.Time       `json:"last_login_at,omitempty"`
}

// AdminFromDomain maps the domain model, dropping the password hash.
func AdminFromDomain(admin *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:          admin.ID,
		Email:       admin.Email,
		Name:        admin.Name,
		Role:        admin.Role,
		LastLoginAt: admin.LastLoginAt,
	}
}
