package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence gateway for services.
type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	Update(ctx context.Context, s *Service) error
	// Delete is an idempotent no-op when the row does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns services ordered by name. activeOnly restricts to
	// publicly visible rows.
	List(ctx context.Context, activeOnly bool) ([]*Service, error)
}
