package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luminadental/clinic/internal/platform/apperr"
	"github.com/luminadental/clinic/internal/platform/notify"
)

type mockRepo struct {
	appts map[uuid.UUID]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{appts: make(map[uuid.UUID]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	copied := *a
	m.appts[a.ID] = &copied
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, apperr.NotFound("appointment %s not found", id)
	}
	copied := *a
	return &copied, nil
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	if _, ok := m.appts[a.ID]; !ok {
		return apperr.NotFound("appointment %s not found", a.ID)
	}
	copied := *a
	m.appts[a.ID] = &copied
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.appts, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, status Status) ([]*Appointment, error) {
	var result []*Appointment
	for _, a := range m.appts {
		if status != "" && a.Status != status {
			continue
		}
		copied := *a
		result = append(result, &copied)
	}
	return result, nil
}

// recordingSink captures every delivered event.
type recordingSink struct {
	events []notify.Event
}

func (r *recordingSink) Send(_ context.Context, event notify.Event) error {
	r.events = append(r.events, event)
	return nil
}

func setup(t *testing.T) (*Service, *mockRepo, *recordingSink) {
	t.Helper()
	repo := newMockRepo()
	sink := &recordingSink{}
	svc := NewService(repo, notify.NewNotifier(sink, zerolog.Nop()))
	return svc, repo, sink
}

func submit(t *testing.T, svc *Service) *Appointment {
	t.Helper()
	a := &Appointment{
		FirstName:     "Ana",
		LastName:      "Silva",
		Email:         "ana@example.com",
		PreferredDate: "2026-09-15",
	}
	if err := svc.SubmitBooking(context.Background(), a); err != nil {
		t.Fatalf("submitting booking: %v", err)
	}
	return a
}

func strPtr(s string) *string { return &s }

func TestSubmitBooking_ForcesPendingAndNotifiesOnce(t *testing.T) {
	svc, repo, sink := setup(t)

	a := &Appointment{
		FirstName:     "Ana",
		LastName:      "Silva",
		Email:         "ana@example.com",
		PreferredDate: "2026-09-15",
		Status:        StatusConfirmed, // client-supplied status is ignored
		ProposedDate:  strPtr("2026-09-20"),
	}
	if err := svc.SubmitBooking(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.appts[a.ID]
	if stored.Status != StatusPending {
		t.Fatalf("expected pending, got %s", stored.Status)
	}
	if stored.ProposedDate != nil || stored.ProposedTime != nil {
		t.Fatal("proposed fields must be clear on a fresh booking")
	}
	if len(sink.events) != 1 || sink.events[0].Type != notify.EventNewBooking {
		t.Fatalf("expected one NEW_BOOKING event, got %v", sink.events)
	}
}

func TestSubmitBooking_ValidationFailures(t *testing.T) {
	svc, _, sink := setup(t)

	cases := []struct {
		name string
		appt Appointment
	}{
		{"missing first name", Appointment{LastName: "S", Email: "a@b.c", PreferredDate: "2026-09-15"}},
		{"missing last name", Appointment{FirstName: "A", Email: "a@b.c", PreferredDate: "2026-09-15"}},
		{"missing email", Appointment{FirstName: "A", LastName: "S", PreferredDate: "2026-09-15"}},
		{"bad date", Appointment{FirstName: "A", LastName: "S", Email: "a@b.c", PreferredDate: "15/09/2026"}},
		{"bad time", Appointment{FirstName: "A", LastName: "S", Email: "a@b.c", PreferredDate: "2026-09-15", PreferredTime: strPtr("9am")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appt := tc.appt
			err := svc.SubmitBooking(context.Background(), &appt)
			if apperr.CodeOf(err) != apperr.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if len(sink.events) != 0 {
		t.Fatalf("no events expected for rejected bookings, got %v", sink.events)
	}
}

func TestConfirm_OnlyFromPending(t *testing.T) {
	svc, repo, sink := setup(t)
	a := submit(t, svc)

	got, err := svc.Confirm(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got.Status)
	}
	if repo.appts[a.ID].Status != StatusConfirmed {
		t.Fatal("confirmation not persisted")
	}

	// second confirm must fail without another event
	before := len(sink.events)
	if _, err := svc.Confirm(context.Background(), a.ID); apperr.CodeOf(err) != apperr.CodeInvalidState {
		t.Fatalf("expected invalid state, got %v", err)
	}
	if len(sink.events) != before {
		t.Fatal("failed transition must not notify")
	}
}

func TestReject_MovesToCancelled(t *testing.T) {
	svc, repo, sink := setup(t)
	a := submit(t, svc)

	if _, err := svc.Reject(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.appts[a.ID].Status != StatusCancelled {
		t.Fatal("rejection not persisted")
	}

	last := sink.events[len(sink.events)-1]
	if last.Type != notify.EventStatusUpdate {
		t.Fatalf("expected STATUS_UPDATE, got %s", last.Type)
	}

	// cancelled appointments cannot be confirmed
	if _, err := svc.Confirm(context.Background(), a.ID); apperr.CodeOf(err) != apperr.CodeInvalidState {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestProposeReschedule_SetsProposalAndStatus(t *testing.T) {
	svc, repo, sink := setup(t)
	a := submit(t, svc)

	got, err := svc.ProposeReschedule(context.Background(), a.ID, "2026-09-20", "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != StatusReschedulePending {
		t.Fatalf("expected reschedule_pending, got %s", got.Status)
	}
	stored := repo.appts[a.ID]
	if stored.ProposedDate == nil || *stored.ProposedDate != "2026-09-20" {
		t.Fatalf("proposed date not persisted: %v", stored.ProposedDate)
	}
	if stored.ProposedTime == nil || *stored.ProposedTime != "14:30" {
		t.Fatalf("proposed time not persisted: %v", stored.ProposedTime)
	}

	last := sink.events[len(sink.events)-1]
	if last.Type != notify.EventRescheduleProposed {
		t.Fatalf("expected RESCHEDULE_PROPOSED, got %s", last.Type)
	}
}

func TestProposeReschedule_ReproposalOverwrites(t *testing.T) {
	svc, repo, _ := setup(t)
	a := submit(t, svc)

	if _, err := svc.ProposeReschedule(context.Background(), a.ID, "2026-09-20", "14:30"); err != nil {
		t.Fatalf("first proposal: %v", err)
	}
	if _, err := svc.ProposeReschedule(context.Background(), a.ID, "2026-09-22", ""); err != nil {
		t.Fatalf("second proposal: %v", err)
	}

	stored := repo.appts[a.ID]
	if *stored.ProposedDate != "2026-09-22" {
		t.Fatalf("expected overwritten proposal, got %s", *stored.ProposedDate)
	}
	if stored.ProposedTime != nil {
		t.Fatal("omitted time must clear the previous proposed time")
	}
	if stored.Status != StatusReschedulePending {
		t.Fatalf("expected reschedule_pending, got %s", stored.Status)
	}
}

func TestProposeReschedule_RejectedFromCancelled(t *testing.T) {
	svc, _, _ := setup(t)
	a := submit(t, svc)
	if _, err := svc.Reject(context.Background(), a.ID); err != nil {
		t.Fatalf("rejecting: %v", err)
	}

	_, err := svc.ProposeReschedule(context.Background(), a.ID, "2026-09-20", "")
	if apperr.CodeOf(err) != apperr.CodeInvalidState {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestConfirmReschedule_AppliesProposal(t *testing.T) {
	svc, repo, sink := setup(t)
	a := submit(t, svc)
	if _, err := svc.ProposeReschedule(context.Background(), a.ID, "2026-09-20", "14:30"); err != nil {
		t.Fatalf("proposing: %v", err)
	}

	got, err := svc.ConfirmReschedule(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got.Status)
	}

	stored := repo.appts[a.ID]
	if stored.PreferredDate != "2026-09-20" {
		t.Fatalf("preferred date not replaced: %s", stored.PreferredDate)
	}
	if stored.PreferredTime == nil || *stored.PreferredTime != "14:30" {
		t.Fatalf("preferred time not replaced: %v", stored.PreferredTime)
	}
	if stored.ProposedDate != nil || stored.ProposedTime != nil {
		t.Fatal("proposal must be cleared after confirmation")
	}

	last := sink.events[len(sink.events)-1]
	if last.Type != notify.EventRescheduleConfirmed {
		t.Fatalf("expected RESCHEDULE_CONFIRMED, got %s", last.Type)
	}
}

func TestConfirmReschedule_AlreadyConfirmed(t *testing.T) {
	svc, repo, sink := setup(t)
	a := submit(t, svc)
	if _, err := svc.ProposeReschedule(context.Background(), a.ID, "2026-09-20", ""); err != nil {
		t.Fatalf("proposing: %v", err)
	}
	if _, err := svc.ConfirmReschedule(context.Background(), a.ID); err != nil {
		t.Fatalf("first confirm: %v", err)
	}

	before := len(sink.events)
	updatedAt := repo.appts[a.ID].UpdatedAt

	_, err := svc.ConfirmReschedule(context.Background(), a.ID)
	if apperr.CodeOf(err) != apperr.CodeAlreadyConfirmed {
		t.Fatalf("expected already confirmed, got %v", err)
	}
	if len(sink.events) != before {
		t.Fatal("already-confirmed must not notify")
	}
	if !repo.appts[a.ID].UpdatedAt.Equal(updatedAt) {
		t.Fatal("already-confirmed must not mutate the record")
	}
}

func TestConfirmReschedule_UnknownIDIsInvalid(t *testing.T) {
	svc, _, sink := setup(t)

	_, err := svc.ConfirmReschedule(context.Background(), uuid.New())
	if apperr.CodeOf(err) != apperr.CodeInvalidState {
		t.Fatalf("expected invalid state for unknown id, got %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatal("no events expected")
	}
}

func TestConfirmReschedule_PendingWithoutProposalIsInvalid(t *testing.T) {
	svc, _, _ := setup(t)
	a := submit(t, svc)

	_, err := svc.ConfirmReschedule(context.Background(), a.ID)
	if apperr.CodeOf(err) != apperr.CodeInvalidState {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestNotificationFailureDoesNotBlockTransition(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, notify.NewNotifier(failSink{}, zerolog.Nop()))

	a := &Appointment{
		FirstName:     "Ana",
		LastName:      "Silva",
		Email:         "ana@example.com",
		PreferredDate: "2026-09-15",
	}
	if err := svc.SubmitBooking(context.Background(), a); err != nil {
		t.Fatalf("booking must succeed despite sink failure: %v", err)
	}
	if repo.appts[a.ID] == nil {
		t.Fatal("booking not persisted")
	}
}

type failSink struct{}

func (failSink) Send(context.Context, notify.Event) error {
	return context.DeadlineExceeded
}

func TestList_RejectsUnknownStatusFilter(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.List(context.Background(), Status("weird"))
	if apperr.CodeOf(err) != apperr.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDelete_MissingIsNoOp(t *testing.T) {
	svc, _, _ := setup(t)
	if err := svc.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}
