package schedule

import (
	"time"

	"careops/internal/pkg/errs"
)

// Day-of-week convention: Monday=0 .. Sunday=6, matching the stored
// business_hours rows.
const (
	daySaturday = 5
	timeLayout  = "15:04"
)

// BusinessHoursBlock is one tenant's opening block for a weekday. Open and
// Close are "HH:MM" wall-clock strings in UTC.
type BusinessHoursBlock struct {
	DayOfWeek int
	Open      string
	Close     string
	IsOpen    bool
}

// WeekdayIndex converts Go's Sunday-based weekday to the Monday=0 convention.
func WeekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// IsWeekend reports whether a Monday=0 day index falls on Saturday or Sunday.
func IsWeekend(day int) bool {
	return day >= daySaturday
}

// DefaultBlock is the fallback policy applied when a tenant has no
// configured rows for a weekday: open 09:00-17:00 Monday through Friday,
// closed on weekends.
func DefaultBlock(day int) (BusinessHoursBlock, bool) {
	if IsWeekend(day) {
		return BusinessHoursBlock{}, false
	}
	return BusinessHoursBlock{DayOfWeek: day, Open: "09:00", Close: "17:00", IsOpen: true}, true
}

// Bounds resolves the block's open and close instants on the given calendar
// date.
func (b BusinessHoursBlock) Bounds(date time.Time) (open, close_ time.Time, err error) {
	openClock, err := time.Parse(timeLayout, b.Open)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid open time")
	}
	closeClock, err := time.Parse(timeLayout, b.Close)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid close time")
	}

	y, m, d := date.UTC().Date()
	open = time.Date(y, m, d, openClock.Hour(), openClock.Minute(), 0, 0, time.UTC)
	close_ = time.Date(y, m, d, closeClock.Hour(), closeClock.Minute(), 0, 0, time.UTC)
	return open, close_, nil
}

// Slot is one open booking window.
type Slot struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// Overlaps applies the half-open interval test: back-to-back bookings do not
// overlap.
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.StartsAt.Before(end) && s.EndsAt.After(start)
}
