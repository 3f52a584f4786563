package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/pkg/types"
)

func TestBuildCalendarGrid_Cardinality(t *testing.T) {
	for year := 2024; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildCalendarGrid(year, month, nil, types.Date{})

			require.Len(t, grid.Days, CalendarGridDays, "%d-%02d", year, month)
			assert.Equal(t, time.Sunday, grid.Days[0].Date.Weekday(), "%d-%02d", year, month)
			assert.False(t, grid.Days[0].Date.After(types.NewDate(year, month, 1)))

			inMonth := 0
			for i, day := range grid.Days {
				if day.InMonth {
					inMonth++
				}
				if i > 0 {
					assert.Equal(t, grid.Days[i-1].Date.AddDays(1), day.Date)
				}
			}
			assert.Equal(t, types.NewDate(year, month+1, 0).Day, inMonth, "%d-%02d", year, month)
		}
	}
}

func TestBuildCalendarGrid_MonthStartingOnSunday(t *testing.T) {
	// 1 June 2025 is a Sunday
	grid := BuildCalendarGrid(2025, time.June, nil, types.Date{})

	assert.Equal(t, "2025-06-01", grid.Days[0].Date.String())
	assert.True(t, grid.Days[0].InMonth)
	assert.Equal(t, "2025-07-12", grid.Days[41].Date.String())
}

func TestBuildCalendarGrid_ReservationsAndStats(t *testing.T) {
	today := types.Date{Year: 2025, Month: time.March, Day: 10}
	outside := types.Date{Year: 2025, Month: time.February, Day: 28}

	reservations := []*Reservation{
		reservationAt(1, today, "09:00", StatusPending),
		reservationAt(2, today, "10:00", StatusConfirmed),
		reservationAt(3, today.AddDays(1), "11:00", StatusConfirmed),
		reservationAt(4, outside, "09:00", StatusPending),
	}

	grid := BuildCalendarGrid(2025, time.March, reservations, today)

	assert.Equal(t, MonthStats{Total: 3, Confirmed: 2, Pending: 1}, grid.Stats)

	var todayCell, outsideCell *CalendarDay
	for i := range grid.Days {
		switch grid.Days[i].Date {
		case today:
			todayCell = &grid.Days[i]
		case outside:
			outsideCell = &grid.Days[i]
		}
	}

	require.NotNil(t, todayCell)
	assert.True(t, todayCell.IsToday)
	assert.Len(t, todayCell.Reservations, 2)

	require.NotNil(t, outsideCell)
	assert.False(t, outsideCell.InMonth)
	assert.Len(t, outsideCell.Reservations, 1)
}

func TestGridRange(t *testing.T) {
	from, to := GridRange(2025, time.March)

	assert.Equal(t, "2025-02-23", from.String())
	assert.Equal(t, "2025-04-05", to.String())
	assert.Equal(t, CalendarGridDays-1, from.DaysUntil(to))
}
