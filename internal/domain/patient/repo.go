package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence gateway for patients.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	// Delete is a hard delete and an idempotent no-op when the row does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns patients ordered by full_name.
	List(ctx context.Context) ([]*Patient, error)
}
