package api

import (
	"net/http"

	reqdto "careops/internal/handler/dto/request"
	resdto "careops/internal/handler/dto/response"
	"careops/internal/handler/httperr"
	"careops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AutomationHandler struct {
	automationCommands commands.AutomationCommands
}

func NewAutomationHandler(automationCommands commands.AutomationCommands) *AutomationHandler {
	return &AutomationHandler{
		automationCommands: automationCommands,
	}
}

// Fire runs every active rule bound to the trigger and returns one execution
// record per rule. A trigger with no matching rules returns an empty list.
func (h *AutomationHandler) Fire(c *gin.Context) {
	var req reqdto.FireAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	entries, err := h.automationCommands.Fire(c.Request.Context(), req.TenantID, req.Trigger, req.Payload)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLogEntries(entries))
}

// SeedRules installs the default rule set for a tenant.
func (h *AutomationHandler) SeedRules(c *gin.Context) {
	var req reqdto.SeedRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.automationCommands.SeedDefaultRules(c.Request.Context(), req.TenantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.SeedRulesResponse{Created: created})
}
