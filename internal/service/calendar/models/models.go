package models

import (
	"github.com/m04kA/monnas-booking/internal/domain"
	reservationModels "github.com/m04kA/monnas-booking/internal/service/reservations/models"
)

// CalendarResponse сетка месяца для административного календаря
type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []DayResponse `json:"days"`
	Stats StatsResponse `json:"stats"`
}

// DayResponse ячейка календаря
type DayResponse struct {
	Date         string                                  `json:"date"`
	InMonth      bool                                    `json:"inMonth"`
	IsToday      bool                                    `json:"isToday"`
	Reservations []reservationModels.ReservationResponse `json:"reservations"`
}

// StatsResponse статистика месяца
type StatsResponse struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

// FromDomainGrid конвертирует сетку в DTO
func FromDomainGrid(grid domain.CalendarGrid) *CalendarResponse {
	resp := &CalendarResponse{
		Year:  grid.Year,
		Month: int(grid.Month),
		Days:  make([]DayResponse, 0, len(grid.Days)),
		Stats: StatsResponse{
			Total:     grid.Stats.Total,
			Confirmed: grid.Stats.Confirmed,
			Pending:   grid.Stats.Pending,
		},
	}

	for _, day := range grid.Days {
		list := reservationModels.FromDomainReservationList(day.Reservations)
		resp.Days = append(resp.Days, DayResponse{
			Date:         day.Date.String(),
			InMonth:      day.InMonth,
			IsToday:      day.IsToday,
			Reservations: list.Reservations,
		})
	}
	return resp
}
