package get_booking_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном годе или месяце
	ErrInvalidMonth = errors.New("get_booking_calendar: invalid year or month")
)
