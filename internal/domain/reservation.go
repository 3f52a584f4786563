package domain

import (
	"strings"
	"time"

	"github.com/m04kA/monnas-booking/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
)

// IsValid reports whether the status is one of the known statuses
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Reservation is a single client booking of one slot on one date
type Reservation struct {
	ID               int64
	ClientName       string
	ClientEmail      *string
	ClientPhone      string
	SelectedDate     types.Date
	SelectedTime     types.TimeString
	SelectedServices []string
	Comments         *string
	Status           ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the reservation still awaits confirmation
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsConfirmed returns true if the reservation has been confirmed by the studio
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// StartsAt returns the moment the reservation starts in the studio time zone
func (r *Reservation) StartsAt(loc *time.Location) (time.Time, error) {
	return r.SelectedTime.On(r.SelectedDate, loc)
}

// ClientKey identifies a client by name and phone
func (r *Reservation) ClientKey() string {
	return strings.TrimSpace(r.ClientName) + "-" + strings.TrimSpace(r.ClientPhone)
}

// ReservationsFilter narrows reservation listings
type ReservationsFilter struct {
	DateFrom  *types.Date         // inclusive, nil = unbounded
	DateTo    *types.Date         // inclusive, nil = unbounded
	Statuses  []ReservationStatus // empty = any status
	ExcludeID *int64              // skip this reservation (edit flows)
	Search    string              // matches client name, phone or email

	NewestFirst bool // order by creation time, newest first
}

// SingleDay reports whether the filter selects exactly one date
func (f ReservationsFilter) SingleDay() bool {
	return f.DateFrom != nil && f.DateTo != nil && *f.DateFrom == *f.DateTo
}
