package domain

import "time"

// Category is a storefront product grouping managed from the admin panel.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
