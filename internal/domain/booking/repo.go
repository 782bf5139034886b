package booking

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence gateway for appointments.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	// Delete is an idempotent no-op when the row does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns appointments ordered by preferred_date ascending.
	// An empty status returns every row.
	List(ctx context.Context, status Status) ([]*Appointment, error)
}
