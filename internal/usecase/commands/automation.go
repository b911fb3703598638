package commands

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"careops/internal/domain/automation"
	"careops/internal/pkg/config"
	"careops/internal/pkg/retry"
	"careops/internal/pkg/template"

	"github.com/google/uuid"
)

// AutomationCommands is the rule-based trigger engine. Fire never returns a
// hard failure for downstream action problems: callers receive the outcome
// log and inspect individual entries.
type AutomationCommands interface {
	Fire(ctx context.Context, tenantID uuid.UUID, trigger string, payload automation.Payload) ([]automation.LogEntry, error)
	SeedDefaultRules(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type automationEngine struct {
	ruleStore     RuleStore
	logStore      LogStore
	formStore     FormStore
	conversations ConversationStore
	email         MessagingChannel
	whatsapp      MessagingChannel
	notifier      NotificationChannel
	inbox         InboxRecorder
	executor      *retry.Executor
	channelsCfg   config.ChannelsConfig
	logger        *slog.Logger
}

type EngineChannels struct {
	Email    MessagingChannel
	WhatsApp MessagingChannel
	Notifier NotificationChannel
	Inbox    InboxRecorder
}

func NewAutomationCommands(
	ruleStore RuleStore,
	logStore LogStore,
	formStore FormStore,
	conversations ConversationStore,
	channels EngineChannels,
	executor *retry.Executor,
	cfg config.Config,
	logger *slog.Logger,
) AutomationCommands {
	return &automationEngine{
		ruleStore:     ruleStore,
		logStore:      logStore,
		formStore:     formStore,
		conversations: conversations,
		email:         channels.Email,
		whatsapp:      channels.WhatsApp,
		notifier:      channels.Notifier,
		inbox:         channels.Inbox,
		executor:      executor,
		channelsCfg:   cfg.Channels,
		logger:        logger,
	}
}

// Fire matches the trigger against the tenant's active rules and executes
// each one in isolation, appending an audit row per execution. An empty
// result means the pause gate held or no rules matched.
func (e *automationEngine) Fire(ctx context.Context, tenantID uuid.UUID, trigger string, payload automation.Payload) ([]automation.LogEntry, error) {
	if payload == nil {
		payload = automation.Payload{}
	}

	if contactID, err := uuid.Parse(payload.String(automation.PayloadContactID)); err == nil {
		paused, gateErr := e.conversations.IsPaused(ctx, tenantID, contactID)
		if gateErr != nil {
			// The gate is cooperative; on lookup failure rules still run.
			e.logger.Warn("pause gate lookup failed", "tenant_id", tenantID, "contact_id", contactID, "error", gateErr)
		} else if paused {
			e.logger.Info("automation paused for contact, skipping trigger",
				"tenant_id", tenantID, "contact_id", contactID, "trigger", trigger)
			return []automation.LogEntry{}, nil
		}
	}

	rules, err := e.ruleStore.FindActiveByTrigger(ctx, tenantID, trigger)
	if err != nil {
		return nil, err
	}

	payload = payload.WithTenantID(tenantID)

	results := make([]automation.LogEntry, 0, len(rules))
	for _, rule := range rules {
		if rule.ReminderOnly() && !payload.IsReminder() {
			continue
		}

		actionResult, status, execErr := e.executeRule(ctx, &rule, payload)

		entry := automation.LogEntry{
			ID:             uuid.New(),
			RuleID:         rule.ID,
			TenantID:       tenantID,
			Status:         status,
			TriggerPayload: payload.Sanitized(),
			ActionResult:   actionResult,
		}
		if execErr != nil {
			msg := execErr.Error()
			entry.Error = &msg
			e.logger.Error("automation rule failed", "rule", rule.Name, "trigger", trigger, "error", execErr)
		}

		if logErr := e.logStore.Append(ctx, &entry); logErr != nil {
			e.logger.Error("failed to append automation log", "rule", rule.Name, "error", logErr)
		}
		results = append(results, entry)
	}

	return results, nil
}

// SeedDefaultRules installs the starter rule set for a new tenant.
func (e *automationEngine) SeedDefaultRules(ctx context.Context, tenantID uuid.UUID) (int, error) {
	created := 0
	for _, seed := range automation.DefaultRules() {
		rule := &automation.Rule{
			ID:       uuid.New(),
			TenantID: tenantID,
			Name:     seed.Name,
			Trigger:  seed.Trigger,
			Action:   seed.Action.String(),
			Config:   seed.Config,
			Active:   true,
		}
		if err := e.ruleStore.Create(ctx, rule); err != nil {
			return created, err
		}
		created++
	}
	e.logger.Info("seeded default automation rules", "tenant_id", tenantID, "count", created)
	return created, nil
}

func (e *automationEngine) executeRule(ctx context.Context, rule *automation.Rule, payload automation.Payload) (map[string]any, automation.LogStatus, error) {
	switch automation.ParseAction(rule.Action) {
	case automation.ActionSendEmail:
		return e.actionSendEmail(ctx, rule, payload)
	case automation.ActionSendWhatsApp:
		return e.actionSendWhatsApp(ctx, rule, payload)
	case automation.ActionSendNotification, automation.ActionNotifyOwner:
		return e.actionNotify(ctx, rule, payload)
	case automation.ActionDistributeForm:
		return e.actionDistributeForm(ctx, rule, payload)
	case automation.ActionPauseAutomation:
		return e.actionPauseAutomation(ctx, rule, payload)
	default:
		e.logger.Warn("unknown automation action", "action", rule.Action, "rule", rule.Name)
		return skippedResult("unknown action: " + rule.Action), automation.LogSkipped, nil
	}
}

func (e *automationEngine) actionSendEmail(ctx context.Context, rule *automation.Rule, payload automation.Payload) (map[string]any, automation.LogStatus, error) {
	toEmail := payload.String(automation.PayloadContactEmail)
	if toEmail == "" {
		return skippedResult("no contact_email in payload"), automation.LogSkipped, nil
	}

	subject := template.Render(rule.ConfigString(automation.ConfigSubject), payload)
	body := template.Render(rule.ConfigString(automation.ConfigBody), payload)

	if err := e.executor.Do(ctx, "send_email", func(ctx context.Context) error {
		return e.email.Send(ctx, toEmail, subject, body)
	}); err != nil {
		return map[string]any{automation.ResultStatus: "error"}, automation.LogFailure, err
	}

	e.recordInInbox(ctx, payload, toEmail, subject, body)

	return map[string]any{
		automation.ResultStatus:    automation.ResultStatusSent,
		automation.ResultSubject:   subject,
		automation.ResultRecipient: toEmail,
	}, automation.LogSuccess, nil
}

func (e *automationEngine) actionSendWhatsApp(ctx context.Context, rule *automation.Rule, payload automation.Payload) (map[string]any, automation.LogStatus, error) {
	body := rule.ConfigString(automation.ConfigBody)
	if body == "" {
		body = rule.ConfigString(automation.ConfigMessage)
	}
	message := template.Render(body, payload)

	phone := normalizePhone(payload.String(automation.PayloadContactPhone))
	if phone == "" {
		return skippedResult("no usable contact_phone in payload"), automation.LogSkipped, nil
	}

	if err := e.executor.Do(ctx, "send_whatsapp", func(ctx context.Context) error {
		return e.whatsapp.Send(ctx, phone, "", message)
	}); err != nil {
		return map[string]any{automation.ResultStatus: "error"}, automation.LogFailure, err
	}

	return map[string]any{
		automation.ResultStatus:    automation.ResultStatusSent,
		automation.ResultRecipient: phone,
	}, automation.LogSuccess, nil
}

func (e *automationEngine) actionNotify(ctx context.Context, rule *automation.Rule, payload automation.Payload) (map[string]any, automation.LogStatus, error) {
	message := template.Render(rule.ConfigString(automation.ConfigMessage), payload)

	tenantID, _ := payload.TenantID()
	if err := e.notifier.Notify(ctx, tenantID, message); err != nil {
		return map[string]any{automation.ResultStatus: "error"}, automation.LogFailure, err
	}

	return map[string]any{
		automation.ResultStatus:  automation.ResultStatusNotified,
		automation.ResultMessage: message,
	}, automation.LogSuccess, nil
}

func (e *automationEngine) actionDistributeForm(ctx context.Context, rule *automation.Rule, payload automation.Payload) (map[string]any, automation.LogStatus, error) {
	toEmail := payload.String(automation.PayloadContactEmail)
	if toEmail == "" {
		return skippedResult("no contact_email in payload"), automation.LogSkipped, nil
	}

	tenantID, ok := payload.TenantID()
	if !ok {
		return skippedResult("no tenant context"), automation.LogSkipped, nil
	}

	forms, err := e.formStore.ActiveForms(ctx, tenantID, 5)
	if err != nil {
		return map[string]any{automation.ResultStatus: "error"}, automation.LogFailure, err
	}
	form := pickForm(forms, rule.ConfigString(automation.ConfigTemplate))
	if form == nil {
		return skippedResult("no active forms"), automation.LogSkipped, nil
	}

	formURL := strings.TrimRight(e.channelsCfg.FormBaseURL, "/") + "/f/" + form.ID.String()
	contactName := payload.String(automation.PayloadContactName)
	message := template.Render(rule.ConfigString(automation.ConfigMessage), payload)

	subject := "Please complete: " + form.Title
	body := message + "\n\n" + form.Title + ": " + formURL
	if contactName != "" {
		body = "Hi " + contactName + ", " + body
	}

	if err := e.executor.Do(ctx, "distribute_form", func(ctx context.Context) error {
		return e.email.Send(ctx, toEmail, subject, body)
	}); err != nil {
		return map[string]any{automation.ResultStatus: "error"}, automation.LogFailure, err
	}

	return map[string]any{
		automation.ResultStatus:    automation.ResultStatusSent,
		automation.ResultRecipient: toEmail,
		automation.ResultFormID:    form.ID.String(),
		automation.ResultFormTitle: form.Title,
	}, automation.LogSuccess, nil
}

func (e *automationEngine) actionPauseAutomation(ctx context.Context, _ *automation.Rule, payload automation.Payload) (map[string]any, automation.LogStatus, error) {
	tenantID, ok := payload.TenantID()
	conversationID, parseErr := uuid.Parse(payload.String(automation.PayloadConversationID))
	if !ok || parseErr != nil {
		return skippedResult("no conversation reference"), automation.LogSkipped, nil
	}

	if err := e.conversations.Pause(ctx, conversationID, tenantID); err != nil {
		return map[string]any{automation.ResultStatus: "error"}, automation.LogFailure, err
	}

	e.logger.Info("automation paused for conversation", "conversation_id", conversationID, "tenant_id", tenantID)
	return map[string]any{
		automation.ResultStatus:          automation.ResultStatusPaused,
		automation.PayloadConversationID: conversationID.String(),
	}, automation.LogSuccess, nil
}

// recordInInbox mirrors a sent automation email into the unified inbox.
// Best-effort: failures are logged, never surfaced.
func (e *automationEngine) recordInInbox(ctx context.Context, payload automation.Payload, toEmail, subject, body string) {
	tenantID, ok := payload.TenantID()
	if !ok {
		return
	}
	contactName := payload.String(automation.PayloadContactName)
	if contactName == "" {
		contactName = strings.SplitN(toEmail, "@", 2)[0]
	}
	if err := e.inbox.RecordOutgoing(ctx, tenantID, toEmail, contactName, subject, body); err != nil {
		e.logger.Warn("failed to record outgoing email in inbox", "to", toEmail, "error", err)
	}
}

func pickForm(forms []FormRef, templateHint string) *FormRef {
	if len(forms) == 0 {
		return nil
	}
	if templateHint != "" {
		hint := strings.ToLower(templateHint)
		for i := range forms {
			if strings.Contains(strings.ToLower(forms[i].Title), hint) {
				return &forms[i]
			}
		}
	}
	return &forms[0]
}

// normalizePhone strips everything but digits, keeping a leading plus.
// Returns "" when fewer than 7 digits remain.
func normalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if unicode.IsDigit(r) || (i == 0 && r == '+') {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if len(strings.TrimPrefix(normalized, "+")) < 7 {
		return ""
	}
	return normalized
}

func skippedResult(reason string) map[string]any {
	return map[string]any{
		automation.ResultStatus: automation.ResultStatusSkipped,
		automation.ResultReason: reason,
	}
}
