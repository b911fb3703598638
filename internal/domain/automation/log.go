package automation

import (
	"time"

	"github.com/google/uuid"
)

// LogStatus is the recorded outcome of one rule execution.
type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogFailure LogStatus = "failure"
	LogSkipped LogStatus = "skipped"
)

// Action result keys recorded in LogEntry.ActionResult.
const (
	ResultStatus    = "status"
	ResultReason    = "reason"
	ResultMessage   = "message"
	ResultSubject   = "subject"
	ResultRecipient = "to"
	ResultFormID    = "form_id"
	ResultFormTitle = "form_title"
)

// Action result status values.
const (
	ResultStatusSent     = "sent"
	ResultStatusNotified = "notified"
	ResultStatusPaused   = "paused"
	ResultStatusSkipped  = "skipped"
)

// LogEntry is one row of the write-once automation audit trail. The trigger
// payload is stored sanitized (internal keys stripped).
type LogEntry struct {
	ID             uuid.UUID
	RuleID         uuid.UUID
	TenantID       uuid.UUID
	Status         LogStatus
	TriggerPayload Payload
	ActionResult   map[string]any
	Error          *string
	ExecutedAt     time.Time
}

// ResultString reads a string from the action result map.
func (l *LogEntry) ResultString(key string) string {
	s, _ := l.ActionResult[key].(string)
	return s
}
