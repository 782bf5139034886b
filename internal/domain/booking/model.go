package booking

import (
	"time"

	"github.com/google/uuid"
)

// Status is the appointment lifecycle state.
type Status string

const (
	StatusPending           Status = "pending"
	StatusConfirmed         Status = "confirmed"
	StatusCancelled         Status = "cancelled"
	StatusReschedulePending Status = "reschedule_pending"
	// StatusCompleted is a valid stored state with no transition into it
	// yet; kept so historical rows remain readable.
	StatusCompleted Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusPending: true, StatusConfirmed: true, StatusCancelled: true,
	StatusReschedulePending: true, StatusCompleted: true,
}

// Date and time-of-day layouts used by the booking form.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment maps to the appointment table. Dates and times are kept
// as form-entered text; view builders skip values that do not parse.
// proposed_date/proposed_time are set iff status is reschedule_pending.
type Appointment struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	Email         string     `db:"email" json:"email"`
	ServiceID     *uuid.UUID `db:"service_id" json:"service_id,omitempty"`
	PreferredDate string     `db:"preferred_date" json:"preferred_date"`
	PreferredTime *string    `db:"preferred_time" json:"preferred_time,omitempty"`
	ProposedDate  *string    `db:"proposed_date" json:"proposed_date,omitempty"`
	ProposedTime  *string    `db:"proposed_time" json:"proposed_time,omitempty"`
	Message       *string    `db:"message" json:"message,omitempty"`
	Status        Status     `db:"status" json:"status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// PreferredInstant combines preferred_date and preferred_time into a
// local instant. A missing time means start of day. ok is false when
// the date does not parse.
func (a *Appointment) PreferredInstant(loc *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(DateLayout, a.PreferredDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	if a.PreferredTime == nil {
		return day, true
	}
	tod, err := time.Parse(TimeLayout, *a.PreferredTime)
	if err != nil {
		return day, true
	}
	return day.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute), true
}
