package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jewelry-store/internal/auth"
)

// PagesHandler serves the admin shell routes the session gate fronts. The
// actual panel UI is rendered by the storefront frontend; these endpoints
// exist so gate pass-through lands on real handlers.
type PagesHandler struct{}

// NewPagesHandler constructs handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Dashboard handles GET /admin. Only reachable with a valid session.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	claims, _ := auth.ClaimsFromContext(c)
	resp := fiber.Map{"page": "dashboard"}
	if claims != nil {
		resp["admin"] = fiber.Map{"id": claims.AdminID(), "email": claims.Email, "role": claims.Role}
	}
	return c.JSON(resp)
}

// Login handles GET /admin/login. The gate already bounced callers that hold
// a valid session.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login"})
}
