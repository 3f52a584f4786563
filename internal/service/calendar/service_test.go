package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubRepo struct {
	reservations []*domain.Reservation
	err          error
	filter       domain.ReservationsFilter
}

func (r *stubRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	r.filter = filter
	return r.reservations, r.err
}

func TestService_Month(t *testing.T) {
	today := types.NewDate(2025, time.March, 10)
	repo := &stubRepo{reservations: []*domain.Reservation{
		{ID: 1, SelectedDate: today, SelectedTime: "09:00", Status: domain.StatusPending},
		{ID: 2, SelectedDate: today, SelectedTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 3, SelectedDate: types.NewDate(2025, time.April, 2), SelectedTime: "10:00", Status: domain.StatusConfirmed},
	}}

	svc := NewService(repo, time.UTC, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)}

	got, err := svc.Month(context.Background(), 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, "2025-02-23", repo.filter.DateFrom.String())
	assert.Equal(t, "2025-04-05", repo.filter.DateTo.String())

	require.Len(t, got.Days, domain.CalendarGridDays)
	assert.Equal(t, 2, got.Stats.Total)
	assert.Equal(t, 1, got.Stats.Confirmed)
	assert.Equal(t, 1, got.Stats.Pending)

	var todayCells, april int
	for _, day := range got.Days {
		if day.IsToday {
			todayCells++
			assert.Equal(t, "2025-03-10", day.Date)
			assert.Len(t, day.Reservations, 2)
		}
		if day.Date == "2025-04-02" {
			april++
			assert.False(t, day.InMonth)
			assert.Len(t, day.Reservations, 1)
		}
		assert.NotNil(t, day.Reservations)
	}
	assert.Equal(t, 1, todayCells)
	assert.Equal(t, 1, april)
}

func TestService_MonthErrors(t *testing.T) {
	svc := NewService(&stubRepo{}, time.UTC, nopLogger{})

	_, err := svc.Month(context.Background(), 2025, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	svc = NewService(&stubRepo{err: errors.New("down")}, time.UTC, nopLogger{})
	_, err = svc.Month(context.Background(), 2025, 3)
	assert.ErrorIs(t, err, ErrInternal)
}
