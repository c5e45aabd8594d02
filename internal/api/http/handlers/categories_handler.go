package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jewelry-store/internal/api/dto"
	"github.com/spec-kit/jewelry-store/internal/auth"
	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/service"
)

// CategoriesHandler exposes admin category management.
type CategoriesHandler struct {
	catalog *service.CatalogService
	gate    *auth.SessionGate
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(catalog *service.CatalogService, gate *auth.SessionGate) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog, gate: gate}
}

// List handles GET /api/admin/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	if _, err := requireSession(c, h.gate); err != nil {
		return err
	}

	categories, err := h.catalog.ListCategories(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, dto.CategoryFromDomain(&categories[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/admin/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	if _, err := requireSession(c, h.gate); err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	created, err := h.catalog.CreateCategory(c.UserContext(), &domain.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CategoryFromDomain(created)})
}

// Update handles PUT /api/admin/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	if _, err := requireSession(c, h.gate); err != nil {
		return err
	}

	cat, err := h.catalog.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != "" {
		cat.Name = req.Name
	}
	if req.Slug != "" {
		cat.Slug = req.Slug
	}
	cat.Description = req.Description
	cat.ImageURL = req.ImageURL

	updated, err := h.catalog.UpdateCategory(c.UserContext(), cat)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CategoryFromDomain(updated)})
}

// Delete handles DELETE /api/admin/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if _, err := requireSession(c, h.gate); err != nil {
		return err
	}

	if err := h.catalog.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
