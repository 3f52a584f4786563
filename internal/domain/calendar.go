package domain

import (
	"time"

	"github.com/m04kA/monnas-booking/pkg/types"
)

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date         types.Date
	InMonth      bool
	IsToday      bool
	Reservations []*Reservation
}

// MonthStats counts the reservations of the in-month cells
type MonthStats struct {
	Total     int
	Confirmed int
	Pending   int
}

// CalendarGrid is a six-week month view starting on a Sunday
type CalendarGrid struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
	Stats MonthStats
}

// GridRange returns the first and last date of the 42-cell grid of the month
func GridRange(year int, month time.Month) (types.Date, types.Date) {
	first := types.NewDate(year, month, 1)
	start := first.AddDays(-int(first.Weekday()))
	return start, start.AddDays(CalendarGridDays - 1)
}

// BuildCalendarGrid lays out the month in exactly 42 cells starting on the Sunday on or before the 1st
// Cells outside the month are flagged but still carry their reservations
func BuildCalendarGrid(year int, month time.Month, reservations []*Reservation, today types.Date) CalendarGrid {
	start, _ := GridRange(year, month)

	byDate := make(map[types.Date][]*Reservation, len(reservations))
	for _, r := range reservations {
		if r == nil {
			continue
		}
		byDate[r.SelectedDate] = append(byDate[r.SelectedDate], r)
	}

	grid := CalendarGrid{
		Year:  year,
		Month: month,
		Days:  make([]CalendarDay, 0, CalendarGridDays),
	}

	for i := 0; i < CalendarGridDays; i++ {
		d := start.AddDays(i)
		day := CalendarDay{
			Date:         d,
			InMonth:      d.SameMonth(year, month),
			IsToday:      d == today,
			Reservations: byDate[d],
		}
		if day.Reservations == nil {
			day.Reservations = []*Reservation{}
		}

		if day.InMonth {
			for _, r := range day.Reservations {
				grid.Stats.Total++
				switch r.Status {
				case StatusConfirmed:
					grid.Stats.Confirmed++
				case StatusPending:
					grid.Stats.Pending++
				}
			}
		}

		grid.Days = append(grid.Days, day)
	}

	return grid
}
