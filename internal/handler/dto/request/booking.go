package request

import (
	"strings"

	"github.com/google/uuid"
)

type TransitionBookingRequest struct {
	TenantID uuid.UUID `json:"tenant_id" binding:"required"`
	From     string    `json:"from" binding:"required"`
	To       string    `json:"to" binding:"required"`
	Notes    *string   `json:"notes,omitempty"`
}

func (r TransitionBookingRequest) GetNotes() *string {
	if r.Notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
