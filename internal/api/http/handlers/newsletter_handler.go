package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jewelry-store/internal/api/dto"
	"github.com/spec-kit/jewelry-store/internal/service"
)

// NewsletterHandler exposes public newsletter opt-in/opt-out.
type NewsletterHandler struct {
	newsletter *service.NewsletterService
}

// NewNewsletterHandler constructs handler.
func NewNewsletterHandler(newsletter *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	email, err := parseEmail(c)
	if err != nil {
		return err
	}

	if _, err := h.newsletter.Subscribe(c.UserContext(), email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "subscribed"})
}

// Unsubscribe handles POST /api/newsletter/unsubscribe.
func (h *NewsletterHandler) Unsubscribe(c *fiber.Ctx) error {
	email, err := parseEmail(c)
	if err != nil {
		return err
	}

	if err := h.newsletter.Unsubscribe(c.UserContext(), email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "unsubscribed"})
}

func parseEmail(c *fiber.Ctx) (string, error) {
	var req dto.NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return "", fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return "", fiber.NewError(http.StatusBadRequest, "email required")
	}
	return email, nil
}
