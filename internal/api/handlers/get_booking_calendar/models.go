package get_booking_calendar

import (
	getBookingCalendar "github.com/m04kA/monnas-booking/internal/usecase/get_booking_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []DayResponse `json:"days"`
}

// DayResponse ячейка календаря публичной страницы
type DayResponse struct {
	Date           string   `json:"date"`
	InMonth        bool     `json:"inMonth"`
	IsToday        bool     `json:"isToday"`
	Booked         []string `json:"booked"`
	AvailableCount int      `json:"availableCount"`
	FullyBooked    bool     `json:"fullyBooked"`
	Selectable     bool     `json:"selectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		booked := make([]string, 0, len(d.Booked))
		for _, t := range d.Booked {
			booked = append(booked, t.Normalize().String())
		}
		days = append(days, DayResponse{
			Date:           d.Date.String(),
			InMonth:        d.InMonth,
			IsToday:        d.IsToday,
			Booked:         booked,
			AvailableCount: d.AvailableCount,
			FullyBooked:    d.FullyBooked,
			Selectable:     d.Selectable,
		})
	}
	return &CalendarResponse{Year: resp.Year, Month: resp.Month, Days: days}
}
