package response

import (
	"time"

	"careops/internal/usecase/queries"
)

type SlotResponse struct {
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

type SlotListResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlots(date time.Time, slots []queries.SlotView) *SlotListResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{StartsAt: s.StartsAt, EndsAt: s.EndsAt}
	}
	return &SlotListResponse{
		Date:  date.Format("2006-01-02"),
		Slots: out,
	}
}
