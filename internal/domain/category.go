package domain

import (
	"context"
	"time"
)

// Category groups events. Names are free text and looked up case-insensitively.
// swagger:model Category
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryRepository defines storage for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	// FindByName returns the first category whose name contains name,
	// ignoring case, or ErrNotFound.
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

// CategoryService defines category management for the filter UI and admin flow.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}
