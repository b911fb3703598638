package booking

import (
	"time"

	"github.com/google/uuid"
)

// MetadataReminderSent marks a reservation whose 24h reminder has already
// been fired. Written by the scheduler right after a successful fire; a short
// double-send window is accepted over distributed locking.
const (
	MetadataReminderSent   = "reminder_sent"
	MetadataReminderSentAt = "reminder_sent_at"
)

// Reservation is a booked appointment. Status changes only through the
// state machine; cancellation is a status, never a row deletion.
type Reservation struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	ContactID   *uuid.UUID
	ServiceID   *uuid.UUID
	StartsAt    time.Time
	EndsAt      time.Time
	Status      Status
	Notes       string
	Metadata    map[string]any
	GCalEventID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReminderSent reports whether the reminder marker is present in metadata.
func (r *Reservation) ReminderSent() bool {
	if r.Metadata == nil {
		return false
	}
	sent, ok := r.Metadata[MetadataReminderSent].(bool)
	return ok && sent
}

// MarkReminderSent records the reminder marker. The caller persists the
// metadata afterwards.
func (r *Reservation) MarkReminderSent(at time.Time) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]any)
	}
	r.Metadata[MetadataReminderSent] = true
	r.Metadata[MetadataReminderSentAt] = at.Format(time.RFC3339)
}

// Window validity is enforced at creation by the excluded CRUD layer;
// the core only assumes StartsAt < EndsAt strictly.
func (r *Reservation) Duration() time.Duration {
	return r.EndsAt.Sub(r.StartsAt)
}

// Contact is the reduced contact projection the state machine and the
// trigger engine need (calendar attendee, message targets).
type Contact struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Phone    string
}
