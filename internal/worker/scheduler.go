// Package worker hosts the background automation scheduler: a single
// recurring loop that promotes time-based conditions (an appointment
// approaching, a form left incomplete) into trigger events.
package worker

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"careops/internal/domain/automation"
	"careops/internal/pkg/clock"
	"careops/internal/pkg/config"
	"careops/internal/usecase/commands"

	"github.com/google/uuid"
)

const (
	bookingDateFormat = "January 02, 2006"
	bookingTimeFormat = "03:04 PM"

	formScanLimit = 50
)

// Scheduler is an explicitly owned background worker. Start launches the
// loop; Stop cancels it and waits for the in-flight tick to finish. A tick's
// failure never terminates the loop.
type Scheduler struct {
	scheduleStore commands.ScheduleStore
	contactStore  commands.ContactStore
	logStore      commands.LogStore
	formStore     commands.FormStore
	conversations commands.ConversationStore
	engine        commands.AutomationCommands
	clock         clock.Clock
	cfg           config.AutomationConfig
	formBaseURL   string
	logger        *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(
	scheduleStore commands.ScheduleStore,
	contactStore commands.ContactStore,
	logStore commands.LogStore,
	formStore commands.FormStore,
	conversations commands.ConversationStore,
	engine commands.AutomationCommands,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		scheduleStore: scheduleStore,
		contactStore:  contactStore,
		logStore:      logStore,
		formStore:     formStore,
		conversations: conversations,
		engine:        engine,
		clock:         clk,
		cfg:           cfg.Automation,
		formBaseURL:   strings.TrimRight(cfg.Channels.FormBaseURL, "/"),
		logger:        logger,
	}
}

// Start begins the scheduler loop. Calling Start on a running scheduler is a
// no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.run(ctx)
	s.logger.Info("automation scheduler started", "interval", s.cfg.SchedulerInterval)
}

// Stop cancels the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("automation scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.SchedulerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one scheduler pass. Exposed so the fx lifecycle and tests can
// drive the scheduler without waiting on the ticker.
func (s *Scheduler) Tick(ctx context.Context) {
	if err := s.checkBookingReminders(ctx); err != nil {
		s.logger.Error("booking reminder scan failed", "error", err)
	}
	if err := s.checkPendingFormReminders(ctx); err != nil {
		s.logger.Error("pending form reminder scan failed", "error", err)
	}
}

// checkBookingReminders fires booking_reminder for confirmed reservations
// starting inside the reminder window that have not been reminded yet, then
// writes the metadata marker to prevent refiring.
func (s *Scheduler) checkBookingReminders(ctx context.Context) error {
	now := s.clock.Now()

	upcoming, err := s.scheduleStore.ConfirmedStartingBetween(ctx, now, now.Add(s.cfg.ReminderWindow))
	if err != nil {
		return err
	}

	for _, res := range upcoming {
		if res.ReminderSent() {
			continue
		}
		if res.ContactID == nil {
			continue
		}

		contact, err := s.contactStore.FindByID(ctx, *res.ContactID, res.TenantID)
		if err != nil {
			s.logger.Warn("reminder contact lookup failed", "booking_id", res.ID, "error", err)
			continue
		}
		if contact.Email == "" {
			continue
		}

		if s.isPaused(ctx, res.TenantID, contact.ID) {
			s.logger.Info("skipping reminder, automation paused", "booking_id", res.ID, "contact", contact.FullName)
			continue
		}

		payload := automation.Payload{
			automation.PayloadContactID:    contact.ID.String(),
			automation.PayloadContactName:  contact.FullName,
			automation.PayloadContactEmail: contact.Email,
			automation.PayloadContactPhone: contact.Phone,
			automation.PayloadBookingID:    res.ID.String(),
			automation.PayloadBookingDate:  res.StartsAt.UTC().Format(bookingDateFormat),
			automation.PayloadBookingTime:  res.StartsAt.UTC().Format(bookingTimeFormat),
		}

		if _, err := s.engine.Fire(ctx, res.TenantID, automation.TriggerBookingReminder, payload); err != nil {
			s.logger.Error("booking reminder fire failed", "booking_id", res.ID, "error", err)
			continue
		}

		// Marker written right after a successful fire; a second tick in
		// the gap can at most double-send once.
		res.MarkReminderSent(now)
		if err := s.scheduleStore.UpdateBookingMetadata(ctx, res.ID, res.TenantID, res.Metadata); err != nil {
			s.logger.Error("failed to persist reminder marker", "booking_id", res.ID, "error", err)
			continue
		}

		s.logger.Info("booking reminder sent", "booking_id", res.ID, "contact", contact.FullName)
	}

	return nil
}

// checkPendingFormReminders refires form_submitted (flagged as a reminder,
// so only reminder-only rules accept it) for stale form distributions whose
// contact has not submitted the form.
func (s *Scheduler) checkPendingFormReminders(ctx context.Context) error {
	cutoff := s.clock.Now().Add(-s.cfg.FormReminderAfter)

	entries, err := s.logStore.FindStaleFormDistributions(ctx, cutoff, formScanLimit)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		formID, err := uuid.Parse(entry.ResultString(automation.ResultFormID))
		if err != nil {
			continue
		}
		contactEmail := entry.TriggerPayload.String(automation.PayloadContactEmail)
		if contactEmail == "" {
			continue
		}

		contactID, hasContact := parseContactID(entry.TriggerPayload)
		if hasContact {
			submitted, err := s.formStore.HasSubmission(ctx, formID, contactID)
			if err != nil {
				s.logger.Warn("form submission check failed", "form_id", formID, "error", err)
				continue
			}
			if submitted {
				continue
			}
			if s.isPaused(ctx, entry.TenantID, contactID) {
				continue
			}
		}

		formTitle := entry.ResultString(automation.ResultFormTitle)
		payload := automation.Payload{
			automation.PayloadContactName:  entry.TriggerPayload.String(automation.PayloadContactName),
			automation.PayloadContactEmail: contactEmail,
			automation.PayloadFormTitle:    formTitle,
			automation.PayloadFormURL:      s.formBaseURL + "/f/" + formID.String(),
		}.AsReminder()
		if hasContact {
			payload[automation.PayloadContactID] = contactID.String()
		}

		if _, err := s.engine.Fire(ctx, entry.TenantID, automation.TriggerFormSubmitted, payload); err != nil {
			s.logger.Error("form reminder fire failed", "log_id", entry.ID, "error", err)
			continue
		}

		if err := s.logStore.MarkFormReminderSent(ctx, entry.ID); err != nil {
			s.logger.Error("failed to mark form reminder", "log_id", entry.ID, "error", err)
			continue
		}

		s.logger.Info("pending form reminder sent", "form_title", formTitle, "to", contactEmail)
	}

	return nil
}

func (s *Scheduler) isPaused(ctx context.Context, tenantID, contactID uuid.UUID) bool {
	paused, err := s.conversations.IsPaused(ctx, tenantID, contactID)
	if err != nil {
		// Cooperative gate: proceed on lookup failure.
		return false
	}
	return paused
}

func parseContactID(payload automation.Payload) (uuid.UUID, bool) {
	id, err := uuid.Parse(payload.String(automation.PayloadContactID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
