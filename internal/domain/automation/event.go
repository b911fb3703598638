package automation

import (
	"strings"

	"github.com/google/uuid"
)

// Payload keys. Keys starting with "_" carry engine context; they are
// available to actions but stripped before logging.
const (
	PayloadContactID      = "contact_id"
	PayloadContactName    = "contact_name"
	PayloadContactEmail   = "contact_email"
	PayloadContactPhone   = "contact_phone"
	PayloadConversationID = "conversation_id"
	PayloadBookingID      = "booking_id"
	PayloadBookingDate    = "booking_date"
	PayloadBookingTime    = "booking_time"
	PayloadFormTitle      = "form_title"
	PayloadFormURL        = "form_url"

	payloadTenantID   = "_tenant_id"
	payloadIsReminder = "_is_reminder"
)

// Payload is the key-value description of a trigger event.
type Payload map[string]any

func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// TenantID returns the internal tenant marker, if attached.
func (p Payload) TenantID() (uuid.UUID, bool) {
	s, ok := p[payloadTenantID].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (p Payload) WithTenantID(id uuid.UUID) Payload {
	p[payloadTenantID] = id.String()
	return p
}

// IsReminder reports whether this event was synthesized by the scheduler as
// a reminder refire.
func (p Payload) IsReminder() bool {
	flag, ok := p[payloadIsReminder].(bool)
	return ok && flag
}

func (p Payload) AsReminder() Payload {
	p[payloadIsReminder] = true
	return p
}

// Sanitized returns a copy with every internal key removed, safe for the
// audit log.
func (p Payload) Sanitized() Payload {
	clean := make(Payload, len(p))
	for k, v := range p {
		if strings.HasPrefix(k, "_") {
			continue
		}
		clean[k] = v
	}
	return clean
}
