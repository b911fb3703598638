package commands

import (
	"context"
	"time"

	"careops/internal/domain/automation"
	"careops/internal/domain/booking"
	"careops/internal/domain/schedule"

	"github.com/google/uuid"
)

// ScheduleStore reads business hours and bookings and writes reservation
// status/metadata with writes conditioned on (id, tenantID).
type ScheduleStore interface {
	FindBooking(ctx context.Context, id, tenantID uuid.UUID) (*booking.Reservation, error)
	UpdateBookingStatus(ctx context.Context, id, tenantID uuid.UUID, status booking.Status, notes *string) (*booking.Reservation, error)
	UpdateBookingMetadata(ctx context.Context, id, tenantID uuid.UUID, metadata map[string]any) error
	SetBookingCalendarEvent(ctx context.Context, id, tenantID uuid.UUID, eventID *string) error
	BusinessHours(ctx context.Context, tenantID uuid.UUID, dayOfWeek int) ([]schedule.BusinessHoursBlock, error)
	BookingsOnDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]booking.Reservation, error)
	ConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]booking.Reservation, error)
}

// ContactStore resolves the reduced contact projection used for calendar
// attendees and message targets.
type ContactStore interface {
	FindByID(ctx context.Context, id, tenantID uuid.UUID) (*booking.Contact, error)
}

// RuleStore reads active rules by (tenant, trigger) and writes seeded rules.
type RuleStore interface {
	FindActiveByTrigger(ctx context.Context, tenantID uuid.UUID, trigger string) ([]automation.Rule, error)
	Create(ctx context.Context, rule *automation.Rule) error
}

// LogStore appends to the automation audit trail and serves the scheduler's
// stale form-distribution scan.
type LogStore interface {
	Append(ctx context.Context, entry *automation.LogEntry) error
	FindStaleFormDistributions(ctx context.Context, olderThan time.Time, limit int) ([]automation.LogEntry, error)
	MarkFormReminderSent(ctx context.Context, logID uuid.UUID) error
}

// FormRef is the reduced form projection needed for distribution.
type FormRef struct {
	ID    uuid.UUID
	Title string
}

type FormStore interface {
	ActiveForms(ctx context.Context, tenantID uuid.UUID, limit int) ([]FormRef, error)
	HasSubmission(ctx context.Context, formID, contactID uuid.UUID) (bool, error)
}

// ConversationStore is the cooperative automation-pause gate. Pausing is a
// per-conversation flag set when a human operator takes over.
type ConversationStore interface {
	IsPaused(ctx context.Context, tenantID, contactID uuid.UUID) (bool, error)
	Pause(ctx context.Context, conversationID, tenantID uuid.UUID) error
}

// MessagingChannel is a point-to-point outbound channel (email, WhatsApp).
// Subject is ignored by channels without one.
type MessagingChannel interface {
	Send(ctx context.Context, target, subject, body string) error
}

// NotificationChannel delivers internal notifications to the tenant's staff.
type NotificationChannel interface {
	Notify(ctx context.Context, tenantID uuid.UUID, message string) error
}

// CalendarChannel syncs reservations to the tenant's external calendar.
// CreateEvent returns "" and DeleteEvent returns false, both without error,
// when the tenant has no connected calendar.
type CalendarChannel interface {
	CreateEvent(ctx context.Context, tenantID uuid.UUID, summary, description string, start, end time.Time, attendeeEmail string) (string, error)
	DeleteEvent(ctx context.Context, tenantID uuid.UUID, eventID string) (bool, error)
}

// InboxRecorder mirrors outgoing automation email into the unified inbox so
// it shows up as a conversation. Best-effort collaborator.
type InboxRecorder interface {
	RecordOutgoing(ctx context.Context, tenantID uuid.UUID, contactEmail, contactName, subject, body string) error
}
