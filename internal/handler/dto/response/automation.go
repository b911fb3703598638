package response

import (
	"time"

	"careops/internal/domain/automation"

	"github.com/google/uuid"
)

type AutomationLogResponse struct {
	ID           uuid.UUID      `json:"id"`
	RuleID       uuid.UUID      `json:"ruleId"`
	Status       string         `json:"status"`
	ActionResult map[string]any `json:"actionResult,omitempty"`
	Error        *string        `json:"error,omitempty"`
	ExecutedAt   time.Time      `json:"executedAt"`
}

type FireAutomationResponse struct {
	Executions []AutomationLogResponse `json:"executions"`
}

type SeedRulesResponse struct {
	Created int `json:"created"`
}

func FromLogEntries(entries []automation.LogEntry) *FireAutomationResponse {
	executions := make([]AutomationLogResponse, len(entries))
	for i, entry := range entries {
		executions[i] = AutomationLogResponse{
			ID:           entry.ID,
			RuleID:       entry.RuleID,
			Status:       string(entry.Status),
			ActionResult: entry.ActionResult,
			Error:        entry.Error,
			ExecutedAt:   entry.ExecutedAt,
		}
	}
	return &FireAutomationResponse{Executions: executions}
}
