//go:build unit

package booking_test

import (
	"testing"
	"time"

	"careops/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestReservation_ReminderMarker(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("unset metadata means not reminded", func(t *testing.T) {
		r := &booking.Reservation{}
		assert.False(t, r.ReminderSent())
	})

	t.Run("marker round trip", func(t *testing.T) {
		r := &booking.Reservation{}
		r.MarkReminderSent(now)

		assert.True(t, r.ReminderSent())
		assert.Equal(t, now.Format(time.RFC3339), r.Metadata[booking.MetadataReminderSentAt])
	})

	t.Run("non-boolean marker value is ignored", func(t *testing.T) {
		r := &booking.Reservation{Metadata: map[string]any{booking.MetadataReminderSent: "yes"}}
		assert.False(t, r.ReminderSent())
	})
}
