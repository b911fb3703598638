//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"careops/internal/domain/automation"
	"careops/internal/pkg/config"
	"careops/internal/pkg/retry"
	"careops/internal/usecase/commands"
	commandsmock "careops/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type engineMocks struct {
	ruleStore     *commandsmock.MockRuleStore
	logStore      *commandsmock.MockLogStore
	formStore     *commandsmock.MockFormStore
	conversations *commandsmock.MockConversationStore
	email         *commandsmock.MockMessagingChannel
	whatsapp      *commandsmock.MockMessagingChannel
	notifier      *commandsmock.MockNotificationChannel
	inbox         *commandsmock.MockInboxRecorder
}

func newAutomationEngine(t *testing.T) (commands.AutomationCommands, engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := engineMocks{
		ruleStore:     commandsmock.NewMockRuleStore(ctrl),
		logStore:      commandsmock.NewMockLogStore(ctrl),
		formStore:     commandsmock.NewMockFormStore(ctrl),
		conversations: commandsmock.NewMockConversationStore(ctrl),
		email:         commandsmock.NewMockMessagingChannel(ctrl),
		whatsapp:      commandsmock.NewMockMessagingChannel(ctrl),
		notifier:      commandsmock.NewMockNotificationChannel(ctrl),
		inbox:         commandsmock.NewMockInboxRecorder(ctrl),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewTestConfig()
	executor := retry.NewExecutor(cfg.Automation, logger)

	uc := commands.NewAutomationCommands(
		m.ruleStore, m.logStore, m.formStore, m.conversations,
		commands.EngineChannels{Email: m.email, WhatsApp: m.whatsapp, Notifier: m.notifier, Inbox: m.inbox},
		executor, cfg, logger,
	)
	return uc, m
}

func emailRule(tenantID uuid.UUID) automation.Rule {
	return automation.Rule{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Welcome New Leads",
		Trigger:  automation.TriggerNewLead,
		Action:   automation.ActionSendEmail.String(),
		Config: map[string]any{
			automation.ConfigSubject: "Welcome {{contact_name}}!",
			automation.ConfigBody:    "Hi {{contact_name}}, thanks for reaching out.",
		},
		Active: true,
	}
}

func TestAutomationEngine_Fire_NoRules(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return(nil, nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{})

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAutomationEngine_Fire_PausedContactSkipsEverything(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()
	contactID := uuid.New()

	m.conversations.EXPECT().
		IsPaused(gomock.Any(), tenantID, contactID).
		Return(true, nil)

	// No rule lookup, no channel traffic, no log rows when the gate holds.
	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{
		automation.PayloadContactID: contactID.String(),
	})

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAutomationEngine_Fire_PauseGateFailureStillRuns(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()
	contactID := uuid.New()

	m.conversations.EXPECT().
		IsPaused(gomock.Any(), tenantID, contactID).
		Return(false, errors.New("conversations table unavailable"))
	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return(nil, nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{
		automation.PayloadContactID: contactID.String(),
	})

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAutomationEngine_Fire_SendEmailRendersTemplates(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()
	rule := emailRule(tenantID)

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return([]automation.Rule{rule}, nil)
	m.email.EXPECT().
		Send(gomock.Any(), "sam@example.com", "Welcome Sam!", "Hi Sam, thanks for reaching out.").
		Return(nil)
	m.inbox.EXPECT().
		RecordOutgoing(gomock.Any(), tenantID, "sam@example.com", "Sam", "Welcome Sam!", gomock.Any()).
		Return(nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{
		automation.PayloadContactName:  "Sam",
		automation.PayloadContactEmail: "sam@example.com",
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.LogSuccess, entries[0].Status)
	assert.Equal(t, automation.ResultStatusSent, entries[0].ResultString(automation.ResultStatus))
	assert.Equal(t, "Welcome Sam!", entries[0].ResultString(automation.ResultSubject))
}

func TestAutomationEngine_Fire_SendEmailMissingAddressSkips(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()
	rule := emailRule(tenantID)

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return([]automation.Rule{rule}, nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{
		automation.PayloadContactName: "Sam",
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.LogSkipped, entries[0].Status)
	assert.Equal(t, "no contact_email in payload", entries[0].ResultString(automation.ResultReason))
}

func TestAutomationEngine_Fire_ChannelFailureRecordedPerRule(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()
	rule := emailRule(tenantID)

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return([]automation.Rule{rule}, nil)
	m.email.EXPECT().
		Send(gomock.Any(), "sam@example.com", gomock.Any(), gomock.Any()).
		Return(errors.New("mail relay returned 502")).
		Times(3)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{
		automation.PayloadContactEmail: "sam@example.com",
	})

	// A failed rule is an audit row, not a Fire error.
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.LogFailure, entries[0].Status)
	require.NotNil(t, entries[0].Error)
	assert.Contains(t, *entries[0].Error, "mail relay returned 502")
}

func TestAutomationEngine_Fire_ReminderOnlyRuleIgnoresOrdinaryEvents(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()

	reminderRule := automation.Rule{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Pending Form Reminder",
		Trigger:  automation.TriggerFormSubmitted,
		Action:   automation.ActionSendEmail.String(),
		Config: map[string]any{
			automation.ConfigSubject:    "Reminder: {{form_title}}",
			automation.ConfigBody:       "Please complete {{form_title}}: {{form_url}}",
			automation.ConfigIsReminder: true,
		},
		Active: true,
	}

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerFormSubmitted).
		Return([]automation.Rule{reminderRule}, nil).
		Times(2)

	// Ordinary event: the reminder-only rule must not fire.
	entries, err := uc.Fire(ctx, tenantID, automation.TriggerFormSubmitted, automation.Payload{
		automation.PayloadContactEmail: "sam@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Reminder-flavored event: same rule fires.
	m.email.EXPECT().
		Send(gomock.Any(), "sam@example.com", gomock.Any(), gomock.Any()).
		Return(nil)
	m.inbox.EXPECT().
		RecordOutgoing(gomock.Any(), tenantID, "sam@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err = uc.Fire(ctx, tenantID, automation.TriggerFormSubmitted, automation.Payload{
		automation.PayloadContactEmail: "sam@example.com",
	}.AsReminder())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.LogSuccess, entries[0].Status)
}

func TestAutomationEngine_Fire_SanitizesInternalKeysInLog(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()
	rule := emailRule(tenantID)

	var logged *automation.LogEntry
	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return([]automation.Rule{rule}, nil)
	m.email.EXPECT().
		Send(gomock.Any(), "sam@example.com", gomock.Any(), gomock.Any()).
		Return(nil)
	m.inbox.EXPECT().
		RecordOutgoing(gomock.Any(), tenantID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *automation.LogEntry) error {
			logged = entry
			return nil
		})

	_, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{
		automation.PayloadContactEmail: "sam@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, logged)
	assert.NotContains(t, logged.TriggerPayload, "_tenant_id")
	assert.Contains(t, logged.TriggerPayload, automation.PayloadContactEmail)
}

func TestAutomationEngine_Fire_WhatsAppNormalizesPhone(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()

	rule := automation.Rule{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Booking Confirmation Message",
		Trigger:  automation.TriggerBookingConfirmed,
		Action:   automation.ActionSendWhatsApp.String(),
		Config: map[string]any{
			automation.ConfigMessage: "See you on {{booking_date}}!",
		},
		Active: true,
	}

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerBookingConfirmed).
		Return([]automation.Rule{rule}, nil)
	m.whatsapp.EXPECT().
		Send(gomock.Any(), "+4915123456789", "", "See you on March 10, 2026!").
		Return(nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerBookingConfirmed, automation.Payload{
		automation.PayloadContactPhone: "+49 (151) 234-567 89",
		automation.PayloadBookingDate:  "March 10, 2026",
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.LogSuccess, entries[0].Status)
}

func TestAutomationEngine_Fire_NotifyOwner(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()

	rule := automation.Rule{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Low Stock Alert",
		Trigger:  automation.TriggerInventoryLow,
		Action:   automation.ActionNotifyOwner.String(),
		Config: map[string]any{
			automation.ConfigMessage: "Low stock: {{item_name}} ({{quantity}} left)",
		},
		Active: true,
	}

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerInventoryLow).
		Return([]automation.Rule{rule}, nil)
	m.notifier.EXPECT().
		Notify(gomock.Any(), tenantID, "Low stock: Gloves (2 left)").
		Return(nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerInventoryLow, automation.Payload{
		"item_name": "Gloves",
		"quantity":  2,
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.ResultStatusNotified, entries[0].ResultString(automation.ResultStatus))
}

func TestAutomationEngine_Fire_DistributeFormPicksByTemplateHint(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()

	rule := automation.Rule{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Send Intake Form",
		Trigger:  automation.TriggerNewLead,
		Action:   automation.ActionDistributeForm.String(),
		Config: map[string]any{
			automation.ConfigMessage:  "Please fill out our intake form.",
			automation.ConfigTemplate: "intake",
		},
		Active: true,
	}
	forms := []commands.FormRef{
		{ID: uuid.New(), Title: "Feedback Survey"},
		{ID: uuid.New(), Title: "New Client Intake"},
	}

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return([]automation.Rule{rule}, nil)
	m.formStore.EXPECT().
		ActiveForms(gomock.Any(), tenantID, 5).
		Return(forms, nil)
	m.email.EXPECT().
		Send(gomock.Any(), "sam@example.com", "Please complete: New Client Intake", gomock.Any()).
		Return(nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{
		automation.PayloadContactEmail: "sam@example.com",
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, forms[1].ID.String(), entries[0].ResultString(automation.ResultFormID))
}

func TestAutomationEngine_Fire_PauseAutomation(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()
	conversationID := uuid.New()

	rule := automation.Rule{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Staff Reply Pause",
		Trigger:  automation.TriggerMessageReceived,
		Action:   automation.ActionPauseAutomation.String(),
		Config:   map[string]any{"is_system_rule": true},
		Active:   true,
	}

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerMessageReceived).
		Return([]automation.Rule{rule}, nil)
	m.conversations.EXPECT().
		Pause(gomock.Any(), conversationID, tenantID).
		Return(nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerMessageReceived, automation.Payload{
		automation.PayloadConversationID: conversationID.String(),
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.ResultStatusPaused, entries[0].ResultString(automation.ResultStatus))
}

func TestAutomationEngine_Fire_UnknownActionSkips(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()

	rule := automation.Rule{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Experimental",
		Trigger:  automation.TriggerNewLead,
		Action:   "launch_rocket",
		Active:   true,
	}

	m.ruleStore.EXPECT().
		FindActiveByTrigger(gomock.Any(), tenantID, automation.TriggerNewLead).
		Return([]automation.Rule{rule}, nil)
	m.logStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := uc.Fire(ctx, tenantID, automation.TriggerNewLead, automation.Payload{})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, automation.LogSkipped, entries[0].Status)
	assert.Contains(t, entries[0].ResultString(automation.ResultReason), "launch_rocket")
}

func TestAutomationEngine_SeedDefaultRules(t *testing.T) {
	ctx := context.Background()
	uc, m := newAutomationEngine(t)
	tenantID := uuid.New()

	var seeded []*automation.Rule
	m.ruleStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rule *automation.Rule) error {
			seeded = append(seeded, rule)
			return nil
		}).
		Times(len(automation.DefaultRules()))

	created, err := uc.SeedDefaultRules(ctx, tenantID)

	require.NoError(t, err)
	assert.Equal(t, len(automation.DefaultRules()), created)
	for _, rule := range seeded {
		assert.Equal(t, tenantID, rule.TenantID)
		assert.True(t, rule.Active)
		assert.NotEqual(t, uuid.Nil, rule.ID)
	}
}
