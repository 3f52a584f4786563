package get_booking_calendar

import "github.com/m04kA/monnas-booking/pkg/types"

// Request модель запроса месячного календаря публичной страницы
type Request struct {
	Year  int
	Month int
}

// Response сетка из 42 дней с занятостью каждого дня
type Response struct {
	Year  int
	Month int
	Days  []Day
}

// Day ячейка календаря
type Day struct {
	Date           types.Date
	InMonth        bool
	IsToday        bool
	Booked         []types.TimeString
	AvailableCount int
	FullyBooked    bool
	Selectable     bool // false для прошедших и полностью занятых дней
}
