//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"careops/internal/domain/automation"
	"careops/internal/domain/booking"
	"careops/internal/pkg/clock"
	"careops/internal/pkg/config"
	"careops/internal/worker"
	commandsmock "careops/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type schedulerMocks struct {
	scheduleStore *commandsmock.MockScheduleStore
	contactStore  *commandsmock.MockContactStore
	logStore      *commandsmock.MockLogStore
	formStore     *commandsmock.MockFormStore
	conversations *commandsmock.MockConversationStore
	engine        *commandsmock.MockAutomationCommands
}

var schedulerNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func newScheduler(t *testing.T) (*worker.Scheduler, schedulerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := schedulerMocks{
		scheduleStore: commandsmock.NewMockScheduleStore(ctrl),
		contactStore:  commandsmock.NewMockContactStore(ctrl),
		logStore:      commandsmock.NewMockLogStore(ctrl),
		formStore:     commandsmock.NewMockFormStore(ctrl),
		conversations: commandsmock.NewMockConversationStore(ctrl),
		engine:        commandsmock.NewMockAutomationCommands(ctrl),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := worker.NewScheduler(
		m.scheduleStore, m.contactStore, m.logStore, m.formStore, m.conversations,
		m.engine, clock.NewMockClock(schedulerNow), config.NewTestConfig(), logger,
	)
	return s, m
}

func upcomingBooking() booking.Reservation {
	contactID := uuid.New()
	return booking.Reservation{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		ContactID: &contactID,
		StartsAt:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		Status:    booking.StatusConfirmed,
	}
}

func expectNoFormReminders(m schedulerMocks) {
	m.logStore.EXPECT().
		FindStaleFormDistributions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
}

func TestScheduler_Tick_FiresBookingReminder(t *testing.T) {
	s, m := newScheduler(t)

	res := upcomingBooking()
	contact := &booking.Contact{ID: *res.ContactID, FullName: "Maya Lin", Email: "maya@example.com", Phone: "+4915123456789"}

	var firedPayload automation.Payload
	m.scheduleStore.EXPECT().
		ConfirmedStartingBetween(gomock.Any(), schedulerNow, schedulerNow.Add(24*time.Hour)).
		Return([]booking.Reservation{res}, nil)
	m.contactStore.EXPECT().
		FindByID(gomock.Any(), *res.ContactID, res.TenantID).
		Return(contact, nil)
	m.conversations.EXPECT().
		IsPaused(gomock.Any(), res.TenantID, contact.ID).
		Return(false, nil)
	m.engine.EXPECT().
		Fire(gomock.Any(), res.TenantID, automation.TriggerBookingReminder, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, payload automation.Payload) ([]automation.LogEntry, error) {
			firedPayload = payload
			return []automation.LogEntry{}, nil
		})
	m.scheduleStore.EXPECT().
		UpdateBookingMetadata(gomock.Any(), res.ID, res.TenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, metadata map[string]any) error {
			assert.Equal(t, true, metadata[booking.MetadataReminderSent])
			return nil
		})
	expectNoFormReminders(m)

	s.Tick(context.Background())

	require.NotNil(t, firedPayload)
	assert.Equal(t, "March 10, 2026", firedPayload.String(automation.PayloadBookingDate))
	assert.Equal(t, "02:00 PM", firedPayload.String(automation.PayloadBookingTime))
	assert.Equal(t, "maya@example.com", firedPayload.String(automation.PayloadContactEmail))
	assert.Equal(t, res.ID.String(), firedPayload.String(automation.PayloadBookingID))
}

func TestScheduler_Tick_SkipsAlreadyRemindedBooking(t *testing.T) {
	s, m := newScheduler(t)

	res := upcomingBooking()
	res.MarkReminderSent(schedulerNow.Add(-time.Hour))

	m.scheduleStore.EXPECT().
		ConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.Reservation{res}, nil)
	expectNoFormReminders(m)

	// No contact lookup, no fire, no metadata write.
	s.Tick(context.Background())
}

func TestScheduler_Tick_SkipsPausedContact(t *testing.T) {
	s, m := newScheduler(t)

	res := upcomingBooking()
	contact := &booking.Contact{ID: *res.ContactID, FullName: "Maya Lin", Email: "maya@example.com"}

	m.scheduleStore.EXPECT().
		ConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.Reservation{res}, nil)
	m.contactStore.EXPECT().
		FindByID(gomock.Any(), *res.ContactID, res.TenantID).
		Return(contact, nil)
	m.conversations.EXPECT().
		IsPaused(gomock.Any(), res.TenantID, contact.ID).
		Return(true, nil)
	expectNoFormReminders(m)

	s.Tick(context.Background())
}

func TestScheduler_Tick_SkipsBookingWithoutEmail(t *testing.T) {
	s, m := newScheduler(t)

	res := upcomingBooking()
	contact := &booking.Contact{ID: *res.ContactID, FullName: "Maya Lin"}

	m.scheduleStore.EXPECT().
		ConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.Reservation{res}, nil)
	m.contactStore.EXPECT().
		FindByID(gomock.Any(), *res.ContactID, res.TenantID).
		Return(contact, nil)
	expectNoFormReminders(m)

	s.Tick(context.Background())
}

func staleDistribution(formID, contactID uuid.UUID) automation.LogEntry {
	return automation.LogEntry{
		ID:       uuid.New(),
		RuleID:   uuid.New(),
		TenantID: uuid.New(),
		Status:   automation.LogSuccess,
		TriggerPayload: automation.Payload{
			automation.PayloadContactID:    contactID.String(),
			automation.PayloadContactName:  "Sam",
			automation.PayloadContactEmail: "sam@example.com",
		},
		ActionResult: map[string]any{
			automation.ResultStatus:    automation.ResultStatusSent,
			automation.ResultFormID:    formID.String(),
			automation.ResultFormTitle: "New Client Intake",
		},
		ExecutedAt: schedulerNow.Add(-48 * time.Hour),
	}
}

func TestScheduler_Tick_FiresPendingFormReminder(t *testing.T) {
	s, m := newScheduler(t)

	formID := uuid.New()
	contactID := uuid.New()
	entry := staleDistribution(formID, contactID)

	var firedPayload automation.Payload
	m.scheduleStore.EXPECT().
		ConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.logStore.EXPECT().
		FindStaleFormDistributions(gomock.Any(), schedulerNow.Add(-24*time.Hour), gomock.Any()).
		Return([]automation.LogEntry{entry}, nil)
	m.formStore.EXPECT().
		HasSubmission(gomock.Any(), formID, contactID).
		Return(false, nil)
	m.conversations.EXPECT().
		IsPaused(gomock.Any(), entry.TenantID, contactID).
		Return(false, nil)
	m.engine.EXPECT().
		Fire(gomock.Any(), entry.TenantID, automation.TriggerFormSubmitted, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, payload automation.Payload) ([]automation.LogEntry, error) {
			firedPayload = payload
			return []automation.LogEntry{}, nil
		})
	m.logStore.EXPECT().
		MarkFormReminderSent(gomock.Any(), entry.ID).
		Return(nil)

	s.Tick(context.Background())

	require.NotNil(t, firedPayload)
	assert.True(t, firedPayload.IsReminder())
	assert.Equal(t, "New Client Intake", firedPayload.String(automation.PayloadFormTitle))
	assert.Contains(t, firedPayload.String(automation.PayloadFormURL), "/f/"+formID.String())
}

func TestScheduler_Tick_SkipsSubmittedForm(t *testing.T) {
	s, m := newScheduler(t)

	formID := uuid.New()
	contactID := uuid.New()
	entry := staleDistribution(formID, contactID)

	m.scheduleStore.EXPECT().
		ConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.logStore.EXPECT().
		FindStaleFormDistributions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]automation.LogEntry{entry}, nil)
	m.formStore.EXPECT().
		HasSubmission(gomock.Any(), formID, contactID).
		Return(true, nil)

	// No fire, no marker write.
	s.Tick(context.Background())
}

func TestScheduler_StartStopIdempotent(t *testing.T) {
	s, m := newScheduler(t)

	// The loop may or may not tick before Stop; allow any number of scans.
	m.scheduleStore.EXPECT().
		ConfirmedStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	m.logStore.EXPECT().
		FindStaleFormDistributions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}
