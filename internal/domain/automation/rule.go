package automation

import (
	"time"

	"github.com/google/uuid"
)

// Well-known trigger names. The vocabulary is open: tenants may configure
// rules on trigger names not listed here.
const (
	TriggerNewLead          = "new_lead"
	TriggerBookingConfirmed = "booking_confirmed"
	TriggerBookingCancelled = "booking_cancelled"
	TriggerBookingReminder  = "booking_reminder"
	TriggerMessageReceived  = "message_received"
	TriggerFormSubmitted    = "form_submitted"
	TriggerInventoryLow     = "inventory_low"
)

// ActionConfig keys used by the dispatcher.
const (
	ConfigSubject    = "subject"
	ConfigBody       = "body"
	ConfigMessage    = "message"
	ConfigTemplate   = "template"
	ConfigIsReminder = "is_reminder"
)

// Rule is a tenant-configured (trigger, action, config) tuple.
type Rule struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Trigger   string
	Action    string
	Config    map[string]any
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfigString reads a string value from the action configuration, returning
// "" when the key is missing or not a string.
func (r *Rule) ConfigString(key string) string {
	s, _ := r.Config[key].(string)
	return s
}

// ReminderOnly reports whether the rule only accepts reminder-flavored
// events. Ordinary events must not re-trigger reminder rules.
func (r *Rule) ReminderOnly() bool {
	flag, ok := r.Config[ConfigIsReminder].(bool)
	return ok && flag
}
