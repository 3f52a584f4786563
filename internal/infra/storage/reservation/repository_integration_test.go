//go:build integration

package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/ptr"
	"github.com/m04kA/monnas-booking/pkg/simpletxmanager"
	"github.com/m04kA/monnas-booking/pkg/types"
)

const (
	testUser     = "monnas"
	testPassword = "monnas"
	testDB       = "monnas"
)

type RepositorySuite struct {
	suite.Suite
	container testcontainers.Container
	db        *sql.DB
	repo      *Repository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			testUser, testPassword, host, port.Port(), testDB)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			Cmd:        []string{"postgres", "-c", "fsync=off"},
			WaitingFor: wait.ForSQL("5432/tcp", "postgres", dsn).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	s.Require().NoError(err)

	s.db, err = sql.Open("postgres", dsn(host, port))
	s.Require().NoError(err)

	migration, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "0001_reservations.sql"))
	s.Require().NoError(err)
	_, err = s.db.ExecContext(ctx, string(migration))
	s.Require().NoError(err)

	s.repo = NewRepository(s.db)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.container.Terminate(ctx)
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.db.Exec("TRUNCATE reservations RESTART IDENTITY")
	s.Require().NoError(err)
}

func (s *RepositorySuite) newReservation(name string, d types.Date, t types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	created, err := s.repo.Create(context.Background(), &domain.Reservation{
		ClientName:       name,
		ClientEmail:      ptr.Ptr(name + "@mail.com"),
		ClientPhone:      "2494" + string(t[:2]) + string(t[3:]),
		SelectedDate:     d,
		SelectedTime:     t,
		SelectedServices: []string{"cosmetologia", "masajes"},
		Status:           status,
	})
	s.Require().NoError(err)
	return created
}

func (s *RepositorySuite) TestCreateAndGet() {
	d := types.NewDate(2025, time.March, 10)
	created := s.newReservation("Lucía", d, "09:30", domain.StatusPending)

	s.NotZero(created.ID)
	s.False(created.CreatedAt.IsZero())

	got, err := s.repo.GetByID(context.Background(), created.ID)
	s.Require().NoError(err)
	s.Equal("Lucía", got.ClientName)
	s.Equal(d, got.SelectedDate)
	s.Equal(types.TimeString("09:30"), got.SelectedTime)
	s.Equal([]string{"cosmetologia", "masajes"}, got.SelectedServices)
	s.Equal(domain.StatusPending, got.Status)
	s.Nil(got.Comments)

	_, err = s.repo.GetByID(context.Background(), 999)
	s.ErrorIs(err, ErrReservationNotFound)
}

func (s *RepositorySuite) TestListFilters() {
	ctx := context.Background()
	d := types.NewDate(2025, time.March, 10)

	first := s.newReservation("Lucía", d, "10:00", domain.StatusPending)
	s.newReservation("Martina", d, "09:00", domain.StatusConfirmed)
	s.newReservation("Sofía", d.AddDays(1), "09:00", domain.StatusPending)

	all, err := s.repo.List(ctx, domain.ReservationsFilter{})
	s.Require().NoError(err)
	s.Len(all, 3)

	day, err := s.repo.List(ctx, domain.ReservationsFilter{DateFrom: &d, DateTo: &d})
	s.Require().NoError(err)
	s.Require().Len(day, 2)
	s.Equal("Martina", day[0].ClientName)

	pending, err := s.repo.List(ctx, domain.ReservationsFilter{
		DateFrom: &d,
		DateTo:   &d,
		Statuses: domain.PolicyPendingOnly.Statuses(),
	})
	s.Require().NoError(err)
	s.Len(pending, 1)

	excluded, err := s.repo.List(ctx, domain.ReservationsFilter{DateFrom: &d, DateTo: &d, ExcludeID: &first.ID})
	s.Require().NoError(err)
	s.Len(excluded, 1)

	found, err := s.repo.List(ctx, domain.ReservationsFilter{Search: "sofía"})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("Sofía", found[0].ClientName)

	none, err := s.repo.List(ctx, domain.ReservationsFilter{Search: "%"})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RepositorySuite) TestUpdateAndStatus() {
	ctx := context.Background()
	d := types.NewDate(2025, time.March, 10)
	created := s.newReservation("Lucía", d, "10:00", domain.StatusPending)

	created.SelectedTime = "11:00"
	created.Comments = ptr.Ptr("Primera visita")
	updated, err := s.repo.Update(ctx, created)
	s.Require().NoError(err)
	s.False(updated.UpdatedAt.Before(updated.CreatedAt))

	s.Require().NoError(s.repo.UpdateStatus(ctx, created.ID, domain.StatusConfirmed))

	got, err := s.repo.GetByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(types.TimeString("11:00"), got.SelectedTime)
	s.Equal(domain.StatusConfirmed, got.Status)
	s.Equal("Primera visita", *got.Comments)

	s.ErrorIs(s.repo.UpdateStatus(ctx, 999, domain.StatusConfirmed), ErrReservationNotFound)
	s.ErrorIs(s.repo.UpdateStatus(ctx, created.ID, "cancelled"), ErrInvalidStatus)

	_, err = s.repo.Update(ctx, &domain.Reservation{ID: 999, ClientName: "x", ClientPhone: "1", SelectedDate: d, SelectedTime: "09:00", Status: domain.StatusPending})
	s.ErrorIs(err, ErrReservationNotFound)
}

func (s *RepositorySuite) TestDelete() {
	ctx := context.Background()
	created := s.newReservation("Lucía", types.NewDate(2025, time.March, 10), "10:00", domain.StatusPending)

	s.Require().NoError(s.repo.Delete(ctx, created.ID))
	s.ErrorIs(s.repo.Delete(ctx, created.ID), ErrReservationNotFound)
}

func (s *RepositorySuite) TestListInsideTransaction() {
	ctx := context.Background()
	d := types.NewDate(2025, time.March, 10)
	s.newReservation("Lucía", d, "10:00", domain.StatusPending)

	tm := simpletxmanager.NewTransactionManager(s.db)
	err := tm.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.List(txCtx, domain.ReservationsFilter{DateFrom: &d, DateTo: &d})
		if err != nil {
			return err
		}
		require.Len(s.T(), existing, 1)

		_, err = s.repo.Create(txCtx, &domain.Reservation{
			ClientName:   "Martina",
			ClientPhone:  "2494111111",
			SelectedDate: d,
			SelectedTime: "11:00",
			Status:       domain.StatusConfirmed,
		})
		return err
	})
	s.Require().NoError(err)

	all, err := s.repo.List(ctx, domain.ReservationsFilter{DateFrom: &d, DateTo: &d})
	s.Require().NoError(err)
	s.Len(all, 2)
}
