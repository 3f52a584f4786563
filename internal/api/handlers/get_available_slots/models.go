package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/monnas-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date        string   `json:"date"`
	Available   []string `json:"available"`
	Booked      []string `json:"booked"`
	FullyBooked bool     `json:"fullyBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		Date:        resp.Date.String(),
		Available:   timeStrings(resp.Available),
		Booked:      timeStrings(resp.Booked),
		FullyBooked: resp.FullyBooked,
	}
}

func timeStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Normalize().String())
	}
	return out
}
