package blog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryCount pairs a category with how many posts carry it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Repository is the persistence gateway for blog posts.
type Repository interface {
	// Create returns a Conflict error on a duplicate slug.
	Create(ctx context.Context, p *BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	// Update returns a Conflict error on a duplicate slug.
	Update(ctx context.Context, p *BlogPost) error
	// Delete is an idempotent no-op when the row does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every post, newest first.
	List(ctx context.Context) ([]*BlogPost, error)
	// Paginate returns one 1-indexed page, newest first, with the
	// page-independent total for the category filter.
	Paginate(ctx context.Context, page, pageSize int, category string) ([]*BlogPost, int, error)
	// CategoryCounts returns post counts per non-empty category.
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
}
