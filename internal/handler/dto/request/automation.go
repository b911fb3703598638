package request

import (
	"github.com/google/uuid"
)

type FireAutomationRequest struct {
	TenantID uuid.UUID      `json:"tenant_id" binding:"required"`
	Trigger  string         `json:"trigger" binding:"required"`
	Payload  map[string]any `json:"payload,omitempty"`
}

type SeedRulesRequest struct {
	TenantID uuid.UUID `json:"tenant_id" binding:"required"`
}
