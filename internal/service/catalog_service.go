package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/repository"
	apperrors "github.com/spec-kit/jewelry-store/pkg/util"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// CatalogService manages the category catalog behind the admin panel.
type CatalogService struct {
	categories repository.CategoryRepository
}

// NewCatalogService builds the service.
func NewCatalogService(categories repository.CategoryRepository) *CatalogService {
	return &CatalogService{categories: categories}
}

// ListCategories returns all categories ordered by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// GetCategory looks up a single category.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("category", map[string]any{"id": id})
	}
	return cat, err
}

// CreateCategory adds a category, deriving the slug from the name when absent.
func (s *CatalogService) CreateCategory(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	if cat.Slug == "" {
		cat.Slug = Slugify(cat.Name)
	}

	if existing, err := s.categories.GetBySlug(ctx, cat.Slug); err == nil && existing != nil {
		return nil, apperrors.NewConflict("category slug already in use", map[string]any{"slug": cat.Slug})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory applies partial updates to an existing category.
func (s *CatalogService) UpdateCategory(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	if err := s.categories.Update(ctx, cat); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category", map[string]any{"id": cat.ID})
		}
		return nil, err
	}
	return cat, nil
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("category", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// Slugify normalizes a name into a URL slug.
func Slugify(name string) string {
	slug := slugInvalidChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
