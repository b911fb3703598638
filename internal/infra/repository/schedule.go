package repository

import (
	"context"
	"encoding/json"
	"time"

	"careops/internal/domain/booking"
	"careops/internal/domain/schedule"
	"careops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, tenant_id, contact_id, service_id, starts_at, ends_at, status, notes, metadata, gcal_event_id, created_at, updated_at`

// ScheduleRepository reads business hours and bookings and performs the
// conditioned reservation writes the state machine and scheduler need.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) FindBooking(ctx context.Context, id, tenantID uuid.UUID) (*booking.Reservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)

	res, err := scanBooking(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return res, nil
}

// UpdateBookingStatus persists the new status (and notes when supplied)
// scoped by (id, tenantID). Zero matched rows is a NOT_FOUND.
func (r *ScheduleRepository) UpdateBookingStatus(ctx context.Context, id, tenantID uuid.UUID, status booking.Status, notes *string) (*booking.Reservation, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE bookings
		SET status = $3,
		    notes = COALESCE($4, notes),
		    updated_at = now()
		WHERE id = $1 AND tenant_id = $2
		RETURNING `+bookingColumns,
		id, tenantID, status.String(), notes,
	)

	res, err := scanBooking(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found for status update", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}
	return res, nil
}

func (r *ScheduleRepository) UpdateBookingMetadata(ctx context.Context, id, tenantID uuid.UUID, metadata map[string]any) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking metadata", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET metadata = $3, updated_at = now()
		WHERE id = $1 AND tenant_id = $2`,
		id, tenantID, raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking metadata", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found for metadata update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) SetBookingCalendarEvent(ctx context.Context, id, tenantID uuid.UUID, eventID *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET gcal_event_id = $3, updated_at = now()
		WHERE id = $1 AND tenant_id = $2`,
		id, tenantID, eventID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set booking calendar event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found for calendar event update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) BusinessHours(ctx context.Context, tenantID uuid.UUID, dayOfWeek int) ([]schedule.BusinessHoursBlock, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT day_of_week, open_time, close_time, is_open
		FROM business_hours
		WHERE tenant_id = $1 AND day_of_week = $2`,
		tenantID, dayOfWeek,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query business hours", err)
	}
	defer rows.Close()

	var blocks []schedule.BusinessHoursBlock
	for rows.Next() {
		var b schedule.BusinessHoursBlock
		if err := rows.Scan(&b.DayOfWeek, &b.Open, &b.Close, &b.IsOpen); err != nil {
			return nil, infra.WrapRepoErr("failed to scan business hours row", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read business hours rows", err)
	}
	return blocks, nil
}

// BookingsOnDate returns the tenant's non-cancelled bookings starting on the
// given UTC calendar date, ordered by start time.
func (r *ScheduleRepository) BookingsOnDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]booking.Reservation, error) {
	y, m, d := date.UTC().Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE tenant_id = $1
		  AND starts_at >= $2 AND starts_at < $3
		  AND status <> $4
		ORDER BY starts_at`,
		tenantID, dayStart, dayEnd, booking.StatusCancelled.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings for date", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ConfirmedStartingBetween serves the reminder scan across all tenants.
func (r *ScheduleRepository) ConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]booking.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE status = $1
		  AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at`,
		booking.StatusConfirmed.String(), from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query upcoming confirmed bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]booking.Reservation, error) {
	var result []booking.Reservation
	for rows.Next() {
		res, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Reservation, error) {
	var (
		res      booking.Reservation
		status   string
		notes    *string
		metadata []byte
	)
	err := row.Scan(
		&res.ID, &res.TenantID, &res.ContactID, &res.ServiceID,
		&res.StartsAt, &res.EndsAt, &status, &notes, &metadata,
		&res.GCalEventID, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Status = booking.Status(status)
	if notes != nil {
		res.Notes = *notes
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &res.Metadata); err != nil {
			return nil, err
		}
	}
	return &res, nil
}
