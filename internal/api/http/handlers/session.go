package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jewelry-store/internal/auth"
	apperrors "github.com/spec-kit/jewelry-store/pkg/util"
)

// requireSession re-verifies the session cookie inside the handler, even when
// the edge gate already ran. Missing and invalid tokens are reported
// identically and nothing touches the store on failure.
func requireSession(c *fiber.Ctx, gate *auth.SessionGate) (*auth.Claims, error) {
	claims, err := gate.Authenticate(c)
	if err != nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return claims, nil
}
