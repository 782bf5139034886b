package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luminadental/clinic/internal/platform/apperr"
	"github.com/luminadental/clinic/internal/platform/notify"
)

// Service owns the appointment lifecycle. Every transition persists
// first and notifies after; notification failures never roll back.
type Service struct {
	repo     Repository
	notifier *notify.Notifier
}

func NewService(repo Repository, notifier *notify.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// SubmitBooking accepts a public booking request. Status is forced to
// pending regardless of input.
func (s *Service) SubmitBooking(ctx context.Context, a *Appointment) error {
	if strings.TrimSpace(a.FirstName) == "" {
		return apperr.Validation("first_name is required")
	}
	if strings.TrimSpace(a.LastName) == "" {
		return apperr.Validation("last_name is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return apperr.Validation("email is required")
	}
	if !validDate(a.PreferredDate) {
		return apperr.Validation("preferred_date must be YYYY-MM-DD")
	}
	if a.PreferredTime != nil && !validTime(*a.PreferredTime) {
		return apperr.Validation("preferred_time must be HH:MM")
	}

	a.Status = StatusPending
	a.ProposedDate = nil
	a.ProposedTime = nil

	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Event{Type: notify.EventNewBooking, Payload: a})
	return nil
}

// Confirm moves a pending appointment to confirmed.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.resolvePending(ctx, id, StatusConfirmed)
}

// Reject moves a pending appointment to cancelled.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.resolvePending(ctx, id, StatusCancelled)
}

func (s *Service) resolvePending(ctx context.Context, id uuid.UUID, next Status) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusPending {
		return nil, apperr.InvalidState("appointment is %s, only pending appointments can be resolved", a.Status)
	}

	a.Status = next
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.Event{Type: notify.EventStatusUpdate, Payload: a})
	return a, nil
}

// ProposeReschedule records a proposed date/time and moves the
// appointment to reschedule_pending. Re-proposing overwrites the
// previous proposal.
func (s *Service) ProposeReschedule(ctx context.Context, id uuid.UUID, newDate, newTime string) (*Appointment, error) {
	if !validDate(newDate) {
		return nil, apperr.Validation("new_date must be YYYY-MM-DD")
	}
	if newTime != "" && !validTime(newTime) {
		return nil, apperr.Validation("new_time must be HH:MM")
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch a.Status {
	case StatusPending, StatusConfirmed, StatusReschedulePending:
	default:
		return nil, apperr.InvalidState("appointment is %s, cannot propose a reschedule", a.Status)
	}

	a.ProposedDate = &newDate
	a.ProposedTime = nil
	if newTime != "" {
		a.ProposedTime = &newTime
	}
	a.Status = StatusReschedulePending

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.Event{Type: notify.EventRescheduleProposed, Payload: a})
	return a, nil
}

// GetRescheduleProposal loads the appointment behind a reschedule link.
// The same state rules as ConfirmReschedule apply, without mutating.
func (s *Service) GetRescheduleProposal(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, apperr.InvalidState("reschedule link is invalid or expired")
		}
		return nil, err
	}
	if a.Status == StatusConfirmed && a.ProposedDate == nil {
		return nil, apperr.ErrAlreadyConfirmed
	}
	if a.Status != StatusReschedulePending || a.ProposedDate == nil {
		return nil, apperr.InvalidState("reschedule link is invalid or expired")
	}
	return a, nil
}

// ConfirmReschedule applies the proposed date/time. Only an
// appointment in reschedule_pending with a recorded proposal can be
// confirmed; a confirmed appointment with no proposal reports
// already-confirmed without mutating anything.
func (s *Service) ConfirmReschedule(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := s.GetRescheduleProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	a.PreferredDate = *a.ProposedDate
	a.PreferredTime = a.ProposedTime
	a.ProposedDate = nil
	a.ProposedTime = nil
	a.Status = StatusConfirmed

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.Event{Type: notify.EventRescheduleConfirmed, Payload: a})
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status Status) ([]*Appointment, error) {
	if status != "" && !validStatuses[status] {
		return nil, apperr.Validation("invalid status filter: %s", status)
	}
	return s.repo.List(ctx, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
