package commands

import (
	"context"
	"fmt"
	"log/slog"

	"careops/internal/domain/booking"
	"careops/internal/infra"
	"careops/internal/pkg/errs"
	"careops/internal/pkg/retry"

	"github.com/google/uuid"
)

type TransitionParams struct {
	BookingID uuid.UUID
	TenantID  uuid.UUID
	From      booking.Status
	To        booking.Status
	Notes     *string
}

type TransitionResult struct {
	Booking     *booking.Reservation
	SideEffects booking.SideEffects
}

// BookingCommands executes validated booking lifecycle transitions.
type BookingCommands interface {
	Transition(ctx context.Context, params TransitionParams) (*TransitionResult, error)
}

type bookingCommandsImpl struct {
	scheduleStore ScheduleStore
	contactStore  ContactStore
	calendar      CalendarChannel
	notifier      NotificationChannel
	executor      *retry.Executor
	logger        *slog.Logger
}

func NewBookingCommands(
	scheduleStore ScheduleStore,
	contactStore ContactStore,
	calendar CalendarChannel,
	notifier NotificationChannel,
	executor *retry.Executor,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		scheduleStore: scheduleStore,
		contactStore:  contactStore,
		calendar:      calendar,
		notifier:      notifier,
		executor:      executor,
		logger:        logger,
	}
}

// Transition validates the status change against the transition table,
// persists it scoped by (id, tenantID), then dispatches transition-specific
// side effects. Side-effect failures are recorded in the outcome map and
// never roll back the committed status.
func (b *bookingCommandsImpl) Transition(ctx context.Context, params TransitionParams) (*TransitionResult, error) {
	if err := booking.ValidateTransition(params.From, params.To); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	updated, err := b.scheduleStore.UpdateBookingStatus(ctx, params.BookingID, params.TenantID, params.To, params.Notes)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	effects := b.executeSideEffects(ctx, updated, params.To)

	b.logger.Info("booking transition executed",
		"booking_id", params.BookingID,
		"tenant_id", params.TenantID,
		"from", params.From,
		"to", params.To,
	)

	return &TransitionResult{Booking: updated, SideEffects: effects}, nil
}

func (b *bookingCommandsImpl) executeSideEffects(ctx context.Context, res *booking.Reservation, to booking.Status) booking.SideEffects {
	effects := booking.SideEffects{}

	switch to {
	case booking.StatusConfirmed:
		effects[booking.EffectGCalSync] = b.syncCalendarEvent(ctx, res)
		effects[booking.EffectConfirmationNotification] = b.queueNotification(ctx, res,
			fmt.Sprintf("Booking %s confirmed for %s", res.ID, res.StartsAt.Format("Jan 02 15:04")))

	case booking.StatusCompleted:
		// Post-visit follow-up (feedback form distribution) is reserved here.
		// Inventory deduction happens at creation time, not on completion:
		// stock must be reserved the instant a service is booked.
		effects[booking.EffectFollowUp] = booking.EffectSkippedWith("follow_up_not_configured")

	case booking.StatusCancelled:
		effects[booking.EffectGCalDelete] = b.deleteCalendarEvent(ctx, res)
		effects[booking.EffectCancellationNotification] = b.queueNotification(ctx, res,
			fmt.Sprintf("Booking %s was cancelled", res.ID))

	case booking.StatusNoShow:
		effects[booking.EffectNoShowNotification] = b.queueNotification(ctx, res,
			fmt.Sprintf("No-show recorded for booking %s", res.ID))
	}

	return effects
}

func (b *bookingCommandsImpl) syncCalendarEvent(ctx context.Context, res *booking.Reservation) booking.EffectResult {
	contactName, contactEmail := b.lookupContact(ctx, res)

	summary := "Booking"
	if contactName != "" {
		summary = "Booking: " + contactName
	}

	var eventID string
	err := b.executor.Do(ctx, "gcal_create_event", func(ctx context.Context) error {
		var callErr error
		eventID, callErr = b.calendar.CreateEvent(ctx, res.TenantID, summary, res.Notes, res.StartsAt, res.EndsAt, contactEmail)
		return callErr
	})
	if err != nil {
		b.logger.Error("calendar event creation failed", "booking_id", res.ID, "error", err)
		return booking.EffectFailedWith(err)
	}
	if eventID == "" {
		return booking.EffectSkippedWith("gcal_not_connected")
	}

	if err := b.scheduleStore.SetBookingCalendarEvent(ctx, res.ID, res.TenantID, &eventID); err != nil {
		// Event exists remotely but the reference write failed; surface both.
		b.logger.Error("failed to persist calendar event reference", "booking_id", res.ID, "error", err)
		return booking.EffectResult{Status: booking.EffectFailed, Reason: "event created but reference not persisted", EventID: eventID}
	}
	res.GCalEventID = &eventID

	return booking.EffectResult{Status: booking.EffectCreated, EventID: eventID}
}

func (b *bookingCommandsImpl) deleteCalendarEvent(ctx context.Context, res *booking.Reservation) booking.EffectResult {
	if res.GCalEventID == nil || *res.GCalEventID == "" {
		return booking.EffectSkippedWith("no_gcal_event_id")
	}
	eventID := *res.GCalEventID

	var deleted bool
	err := b.executor.Do(ctx, "gcal_delete_event", func(ctx context.Context) error {
		var callErr error
		deleted, callErr = b.calendar.DeleteEvent(ctx, res.TenantID, eventID)
		return callErr
	})
	if err != nil {
		b.logger.Error("calendar event deletion failed", "booking_id", res.ID, "error", err)
		return booking.EffectFailedWith(err)
	}
	if !deleted {
		return booking.EffectSkippedWith("gcal_not_connected")
	}

	if err := b.scheduleStore.SetBookingCalendarEvent(ctx, res.ID, res.TenantID, nil); err != nil {
		b.logger.Warn("failed to clear calendar event reference", "booking_id", res.ID, "error", err)
	}
	res.GCalEventID = nil

	return booking.EffectResult{Status: booking.EffectDeleted, EventID: eventID}
}

func (b *bookingCommandsImpl) queueNotification(ctx context.Context, res *booking.Reservation, message string) booking.EffectResult {
	if err := b.notifier.Notify(ctx, res.TenantID, message); err != nil {
		b.logger.Error("notification queue failed", "booking_id", res.ID, "error", err)
		return booking.EffectFailedWith(err)
	}
	return booking.EffectOK(booking.EffectQueued)
}

func (b *bookingCommandsImpl) lookupContact(ctx context.Context, res *booking.Reservation) (name, email string) {
	if res.ContactID == nil {
		return "", ""
	}
	contact, err := b.contactStore.FindByID(ctx, *res.ContactID, res.TenantID)
	if err != nil {
		// Degrade to an attendee-less calendar event.
		b.logger.Warn("contact lookup failed", "booking_id", res.ID, "contact_id", *res.ContactID, "error", err)
		return "", ""
	}
	return contact.FullName, contact.Email
}
