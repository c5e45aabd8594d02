package dto

import "github.com/spec-kit/jewelry-store/internal/domain"

// CategoryRequest payload for create/update.
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CategoryResponse is the wire shape for a category.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CategoryFromDomain maps the domain model.
func CategoryFromDomain(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Slug:        cat.Slug,
		Description: cat.Description,
		ImageURL:    cat.ImageURL,
	}
}
