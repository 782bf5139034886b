package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Service maps to the service table. A treatment offering shown on the
// public site when is_active is true.
type Service struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Category    *string   `db:"category" json:"category,omitempty"`
	Price       float64   `db:"price" json:"price"`
	IconName    *string   `db:"icon_name" json:"icon_name,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
