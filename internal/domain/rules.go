package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ErrInvalidReservation is returned when a reservation fails write validation
var ErrInvalidReservation = errors.New("invalid reservation")

// ChannelRules are the slot catalog and occupancy policy used by one booking channel
type ChannelRules struct {
	Slots  SlotCatalog
	Policy OccupancyPolicy
}

// BookingRules holds the rules of both channels
type BookingRules struct {
	Public ChannelRules
	Admin  ChannelRules
}

// DefaultBookingRules reproduces the studio's observed behavior
func DefaultBookingRules() BookingRules {
	return BookingRules{
		Public: ChannelRules{Slots: DefaultPublicSlots, Policy: DefaultPublicPolicy},
		Admin:  ChannelRules{Slots: DefaultAdminSlots, Policy: DefaultAdminPolicy},
	}
}

// For returns the rules of the channel; unknown channels get the public rules
func (b BookingRules) For(ch Channel) ChannelRules {
	if ch == ChannelAdmin {
		return b.Admin
	}
	return b.Public
}

// WritableSlots is the catalog a write through the channel is validated against.
// Admin writes accept both grids so reservations made on the public page stay editable.
func (b BookingRules) WritableSlots(ch Channel) SlotCatalog {
	if ch == ChannelAdmin {
		return b.Admin.Slots.Union(b.Public.Slots)
	}
	return b.Public.Slots
}

// Normalize trims text fields, drops empty optionals and normalizes the time
func (r *Reservation) Normalize() {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientPhone = strings.TrimSpace(r.ClientPhone)
	r.ClientEmail = trimOptional(r.ClientEmail)
	r.Comments = trimOptional(r.Comments)
	r.SelectedTime = r.SelectedTime.Normalize()

	services := make([]string, 0, len(r.SelectedServices))
	seen := make(map[string]struct{}, len(r.SelectedServices))
	for _, id := range r.SelectedServices {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		services = append(services, id)
	}
	r.SelectedServices = services
}

// ValidateReservation checks a normalized reservation before it is written through the channel.
// Public writes only accept services offered on the public page; admin writes accept any catalog service.
func ValidateReservation(r *Reservation, slots SlotCatalog, services *ServiceCatalog, ch Channel) error {
	switch {
	case strings.TrimSpace(r.ClientName) == "":
		return fmt.Errorf("%w: clientName is required", ErrInvalidReservation)
	case len([]rune(r.ClientName)) > MaxClientNameLength:
		return fmt.Errorf("%w: clientName is longer than %d characters", ErrInvalidReservation, MaxClientNameLength)
	case strings.TrimSpace(r.ClientPhone) == "":
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidReservation)
	case len(r.ClientPhone) > MaxPhoneLength:
		return fmt.Errorf("%w: clientPhone is longer than %d characters", ErrInvalidReservation, MaxPhoneLength)
	case r.Comments != nil && len([]rune(*r.Comments)) > MaxCommentsLength:
		return fmt.Errorf("%w: comments are longer than %d characters", ErrInvalidReservation, MaxCommentsLength)
	}

	if r.ClientEmail != nil {
		if len(*r.ClientEmail) > MaxEmailLength {
			return fmt.Errorf("%w: clientEmail is longer than %d characters", ErrInvalidReservation, MaxEmailLength)
		}
		if _, err := mail.ParseAddress(*r.ClientEmail); err != nil {
			return fmt.Errorf("%w: clientEmail is not a valid address", ErrInvalidReservation)
		}
	}

	if len(r.SelectedServices) == 0 {
		return fmt.Errorf("%w: at least one service must be selected", ErrInvalidReservation)
	}
	for _, id := range r.SelectedServices {
		svc, ok := services.Get(id)
		if !ok {
			return fmt.Errorf("%w: unknown service %q", ErrInvalidReservation, id)
		}
		if ch == ChannelPublic && !svc.OfferedOn(ChannelPublic) {
			return fmt.Errorf("%w: service %q is not offered online", ErrInvalidReservation, id)
		}
	}

	if r.SelectedDate.IsZero() {
		return fmt.Errorf("%w: selectedDate is required", ErrInvalidReservation)
	}
	if r.SelectedTime.IsZero() {
		return fmt.Errorf("%w: selectedTime is required", ErrInvalidReservation)
	}
	if err := r.SelectedTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReservation, err)
	}
	if !slots.Contains(r.SelectedTime) {
		return fmt.Errorf("%w: time %s is not offered", ErrInvalidReservation, r.SelectedTime)
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidReservation, r.Status)
	}

	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
