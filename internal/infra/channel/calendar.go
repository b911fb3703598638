package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"careops/internal/infra"
	"careops/internal/pkg/config"
	"careops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarChannel syncs reservations to the tenant's Google Calendar. The
// per-tenant connection (access token and calendar id) lives in the
// calendar_integrations table; a tenant without a row simply has no calendar
// connected, which is a normal state rather than an error.
type CalendarChannel struct {
	pool    *pgxpool.Pool
	baseURL string
	client  *http.Client
}

func NewCalendarChannel(pool *pgxpool.Pool, cfg config.ChannelsConfig) *CalendarChannel {
	return &CalendarChannel{
		pool:    pool,
		baseURL: cfg.CalendarAPIURL,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type calendarConnection struct {
	AccessToken string
	CalendarID  string
}

func (c *CalendarChannel) connection(ctx context.Context, tenantID uuid.UUID) (*calendarConnection, error) {
	var conn calendarConnection
	err := c.pool.QueryRow(ctx, `
		SELECT access_token, calendar_id
		FROM calendar_integrations
		WHERE tenant_id = $1 AND is_active = true`,
		tenantID,
	).Scan(&conn.AccessToken, &conn.CalendarID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load calendar integration", err)
	}
	return &conn, nil
}

type calendarEventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type calendarAttendee struct {
	Email string `json:"email"`
}

type calendarEvent struct {
	Summary     string             `json:"summary"`
	Description string             `json:"description,omitempty"`
	Start       calendarEventTime  `json:"start"`
	End         calendarEventTime  `json:"end"`
	Attendees   []calendarAttendee `json:"attendees,omitempty"`
}

// CreateEvent inserts the reservation into the tenant's calendar and returns
// the external event id, or "" without error when no calendar is connected.
func (c *CalendarChannel) CreateEvent(ctx context.Context, tenantID uuid.UUID, summary, description string, start, end time.Time, attendeeEmail string) (string, error) {
	conn, err := c.connection(ctx, tenantID)
	if err != nil {
		return "", err
	}
	if conn == nil {
		return "", nil
	}

	event := calendarEvent{
		Summary:     summary,
		Description: description,
		Start:       calendarEventTime{DateTime: start.UTC().Format(time.RFC3339), TimeZone: "UTC"},
		End:         calendarEventTime{DateTime: end.UTC().Format(time.RFC3339), TimeZone: "UTC"},
	}
	if attendeeEmail != "" {
		event.Attendees = []calendarAttendee{{Email: attendeeEmail}}
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode calendar event")
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(conn.CalendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build calendar request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+conn.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "calendar request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.Newf("calendar API returned %d: %s", resp.StatusCode, string(detail))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", errs.Wrap(err, "failed to decode calendar response")
	}
	return created.ID, nil
}

// DeleteEvent removes the event from the tenant's calendar. It returns false
// without error when no calendar is connected, and treats an already-gone
// event as deleted.
func (c *CalendarChannel) DeleteEvent(ctx context.Context, tenantID uuid.UUID, eventID string) (bool, error) {
	conn, err := c.connection(ctx, tenantID)
	if err != nil {
		return false, err
	}
	if conn == nil {
		return false, nil
	}

	endpoint := fmt.Sprintf(
		"%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(conn.CalendarID), url.PathEscape(eventID),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return false, errs.Wrap(err, "failed to build calendar delete request")
	}
	req.Header.Set("Authorization", "Bearer "+conn.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errs.Wrap(err, "calendar delete request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return true, nil
	}
	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, errs.Newf("calendar API returned %d: %s", resp.StatusCode, string(detail))
	}
	return true, nil
}
