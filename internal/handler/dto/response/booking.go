package response

import (
	"time"

	"careops/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID   `json:"id"`
	TenantID    uuid.UUID   `json:"tenantId"`
	ContactID   *uuid.UUID  `json:"contactId,omitempty"`
	ServiceID   *uuid.UUID  `json:"serviceId,omitempty"`
	StartsAt    time.Time   `json:"startsAt"`
	EndsAt      time.Time   `json:"endsAt"`
	Status      string      `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	GCalEventID *string     `json:"gcalEventId,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type TransitionResponse struct {
	Booking     *BookingResponse              `json:"booking"`
	SideEffects map[string]SideEffectResponse `json:"sideEffects"`
}

type SideEffectResponse struct {
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	EventID string `json:"eventId,omitempty"`
}

func FromBooking(res *booking.Reservation) *BookingResponse {
	return &BookingResponse{
		ID:          res.ID,
		TenantID:    res.TenantID,
		ContactID:   res.ContactID,
		ServiceID:   res.ServiceID,
		StartsAt:    res.StartsAt,
		EndsAt:      res.EndsAt,
		Status:      res.Status.String(),
		Notes:       res.Notes,
		GCalEventID: res.GCalEventID,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}

func FromTransition(res *booking.Reservation, effects booking.SideEffects) *TransitionResponse {
	out := make(map[string]SideEffectResponse, len(effects))
	for key, effect := range effects {
		out[key] = SideEffectResponse{
			Status:  string(effect.Status),
			Reason:  effect.Reason,
			EventID: effect.EventID,
		}
	}
	return &TransitionResponse{
		Booking:     FromBooking(res),
		SideEffects: out,
	}
}
