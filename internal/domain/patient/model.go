package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Deletion is permanent; there is
// no soft-delete flag.
type Patient struct {
	ID               uuid.UUID `db:"id" json:"id"`
	FullName         string    `db:"full_name" json:"full_name"`
	DOB              *string   `db:"dob" json:"dob,omitempty"`
	Gender           *string   `db:"gender" json:"gender,omitempty"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Email            *string   `db:"email" json:"email,omitempty"`
	Address          *string   `db:"address" json:"address,omitempty"`
	EmergencyContact *string   `db:"emergency_contact" json:"emergency_contact,omitempty"`
	MedicalHistory   *string   `db:"medical_history" json:"medical_history,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
