package queries

import (
	"context"
	"time"

	"careops/internal/domain/booking"
	"careops/internal/domain/schedule"
	"careops/internal/pkg/clock"
	"careops/internal/pkg/config"
	"careops/internal/pkg/errs"

	"github.com/google/uuid"
)

// ScheduleReadStore is the read-only schedule/booking collaborator the slot
// calculator depends on.
type ScheduleReadStore interface {
	BusinessHours(ctx context.Context, tenantID uuid.UUID, dayOfWeek int) ([]schedule.BusinessHoursBlock, error)
	BookingsOnDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]booking.Reservation, error)
}

// SlotQueries computes open booking slots for a tenant and date.
type SlotQueries interface {
	ComputeSlots(ctx context.Context, tenantID uuid.UUID, date time.Time, durationMinutes int) ([]SlotView, error)
}

type slotQueriesImpl struct {
	store           ScheduleReadStore
	clock           clock.Clock
	defaultDuration int
}

func NewSlotQueries(store ScheduleReadStore, clk clock.Clock, cfg config.Config) SlotQueries {
	return &slotQueriesImpl{
		store:           store,
		clock:           clk,
		defaultDuration: cfg.Automation.DefaultSlotMinutes,
	}
}

// ComputeSlots walks each open business-hours block for the date in
// fixed-duration increments. A candidate is kept when it fits inside the
// block, does not start before "now", and does not overlap any non-cancelled
// reservation (half-open intervals: back-to-back bookings are allowed).
// Pure read: no side effects.
func (q *slotQueriesImpl) ComputeSlots(ctx context.Context, tenantID uuid.UUID, date time.Time, durationMinutes int) ([]SlotView, error) {
	if durationMinutes <= 0 {
		durationMinutes = q.defaultDuration
	}
	if durationMinutes <= 0 {
		return nil, errs.ErrInvalidSlotDuration
	}
	duration := time.Duration(durationMinutes) * time.Minute

	day := schedule.WeekdayIndex(date.UTC().Weekday())

	blocks, err := q.store.BusinessHours(ctx, tenantID, day)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		// No configured rows: weekends stay closed, weekdays get the
		// default 09:00-17:00 policy.
		block, open := schedule.DefaultBlock(day)
		if !open {
			return []SlotView{}, nil
		}
		blocks = []schedule.BusinessHoursBlock{block}
	}

	existing, err := q.store.BookingsOnDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	slots := []SlotView{}

	for _, block := range blocks {
		if !block.IsOpen {
			continue
		}
		open, close_, err := block.Bounds(date)
		if err != nil {
			return nil, err
		}

		for start := open; !start.Add(duration).After(close_); start = start.Add(duration) {
			candidate := schedule.Slot{StartsAt: start, EndsAt: start.Add(duration)}

			if candidate.StartsAt.Before(now) {
				continue
			}
			if overlapsAny(candidate, existing) {
				continue
			}
			slots = append(slots, SlotView{StartsAt: candidate.StartsAt, EndsAt: candidate.EndsAt})
		}
	}

	return slots, nil
}

func overlapsAny(candidate schedule.Slot, existing []booking.Reservation) bool {
	for _, res := range existing {
		if res.Status == booking.StatusCancelled {
			continue
		}
		if candidate.Overlaps(res.StartsAt, res.EndsAt) {
			return true
		}
	}
	return false
}
