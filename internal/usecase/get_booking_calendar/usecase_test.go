package get_booking_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/usecase/get_booking_calendar/mocks"
	"github.com/m04kA/monnas-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type UseCaseTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	occupancy *mocks.MockOccupancyIndex
	clock     *mocks.MockTimeProvider
	uc        *UseCase
}

func TestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(UseCaseTestSuite))
}

var rules = domain.ChannelRules{
	Slots:  domain.SlotCatalog{"09:00", "10:00"},
	Policy: domain.PolicyPendingOnly,
}

func (s *UseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.occupancy = mocks.NewMockOccupancyIndex(s.ctrl)
	s.clock = mocks.NewMockTimeProvider(s.ctrl)
	s.uc = NewUseCase(s.occupancy, rules, time.UTC, nopLogger{})
	s.uc.timeProvider = s.clock
}

func (s *UseCaseTestSuite) TestExecute() {
	today := types.NewDate(2025, time.March, 10)
	full := today.AddDays(1)
	partial := today.AddDays(2)

	index := domain.BuildOccupancyIndex([]domain.OccupiedSlot{
		{ReservationID: 1, Date: full, Time: "09:00"},
		{ReservationID: 2, Date: full, Time: "10:00"},
		{ReservationID: 3, Date: partial, Time: "10:00"},
	}, nil)

	from, to := domain.GridRange(2025, time.March)
	s.clock.EXPECT().Now().Return(time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))
	s.occupancy.EXPECT().Index(gomock.Any(), from, to, domain.PolicyPendingOnly, (*int64)(nil)).Return(index)

	resp, err := s.uc.Execute(context.Background(), &Request{Year: 2025, Month: 3})
	s.Require().NoError(err)
	s.Require().Len(resp.Days, domain.CalendarGridDays)

	cells := make(map[types.Date]Day, len(resp.Days))
	for _, d := range resp.Days {
		cells[d.Date] = d
	}

	s.True(cells[today].IsToday)
	s.True(cells[today].Selectable)
	s.Equal(2, cells[today].AvailableCount)

	s.True(cells[full].FullyBooked)
	s.False(cells[full].Selectable)
	s.Equal([]types.TimeString{"09:00", "10:00"}, cells[full].Booked)

	s.False(cells[partial].FullyBooked)
	s.True(cells[partial].Selectable)
	s.Equal(1, cells[partial].AvailableCount)

	yesterday := cells[today.AddDays(-1)]
	s.False(yesterday.Selectable, "past days are not selectable")

	s.False(cells[from].InMonth)
	s.True(cells[types.NewDate(2025, time.March, 1)].InMonth)
}

func (s *UseCaseTestSuite) TestInvalidMonth() {
	for _, req := range []*Request{{Year: 2025, Month: 0}, {Year: 2025, Month: 13}, {Year: 1900, Month: 1}} {
		_, err := s.uc.Execute(context.Background(), req)
		s.ErrorIs(err, ErrInvalidMonth)
	}
}
