package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/pkg/ptr"
	"github.com/m04kA/monnas-booking/pkg/types"
)

func validDraft() *Reservation {
	return &Reservation{
		ClientName:       "  Lucía Gómez ",
		ClientPhone:      " 2494 555 010 ",
		ClientEmail:      ptr.Ptr(" "),
		SelectedDate:     march10,
		SelectedTime:     "09:30:00",
		SelectedServices: []string{"cosmetologia", " cosmetologia", ""},
		Comments:         ptr.Ptr(" primera vez "),
		Status:           StatusPending,
	}
}

func TestReservation_Normalize(t *testing.T) {
	r := validDraft()
	r.Normalize()

	assert.Equal(t, "Lucía Gómez", r.ClientName)
	assert.Equal(t, "2494 555 010", r.ClientPhone)
	assert.Nil(t, r.ClientEmail)
	assert.Equal(t, "primera vez", *r.Comments)
	assert.Equal(t, types.TimeString("09:30"), r.SelectedTime)
	assert.Equal(t, []string{"cosmetologia"}, r.SelectedServices)
}

func TestValidateReservation(t *testing.T) {
	rules := DefaultBookingRules()
	services := NewServiceCatalog(DefaultServices)

	tests := []struct {
		name    string
		mutate  func(r *Reservation)
		channel Channel
		wantErr bool
	}{
		{name: "valid public", mutate: func(*Reservation) {}, channel: ChannelPublic},
		{name: "blank name", mutate: func(r *Reservation) { r.ClientName = "  " }, channel: ChannelPublic, wantErr: true},
		{name: "blank phone", mutate: func(r *Reservation) { r.ClientPhone = "\t " }, channel: ChannelPublic, wantErr: true},
		{name: "no services", mutate: func(r *Reservation) { r.SelectedServices = nil }, channel: ChannelPublic, wantErr: true},
		{name: "unknown service", mutate: func(r *Reservation) { r.SelectedServices = []string{"botox"} }, channel: ChannelPublic, wantErr: true},
		{name: "admin-only service online", mutate: func(r *Reservation) { r.SelectedServices = []string{"masajes"} }, channel: ChannelPublic, wantErr: true},
		{name: "admin-only service in panel", mutate: func(r *Reservation) { r.SelectedServices = []string{"masajes"} }, channel: ChannelAdmin},
		{name: "no date", mutate: func(r *Reservation) { r.SelectedDate = types.Date{} }, channel: ChannelPublic, wantErr: true},
		{name: "no time", mutate: func(r *Reservation) { r.SelectedTime = "" }, channel: ChannelPublic, wantErr: true},
		{name: "time outside public grid", mutate: func(r *Reservation) { r.SelectedTime = "19:00" }, channel: ChannelPublic, wantErr: true},
		{name: "admin accepts public grid", mutate: func(r *Reservation) { r.SelectedTime = "09:30" }, channel: ChannelAdmin},
		{name: "admin accepts own grid", mutate: func(r *Reservation) { r.SelectedTime = "20:00" }, channel: ChannelAdmin},
		{name: "bad email", mutate: func(r *Reservation) { r.ClientEmail = ptr.Ptr("not-an-email") }, channel: ChannelPublic, wantErr: true},
		{name: "good email", mutate: func(r *Reservation) { r.ClientEmail = ptr.Ptr("lucia@example.com") }, channel: ChannelPublic},
		{name: "unknown status", mutate: func(r *Reservation) { r.Status = "cancelled" }, channel: ChannelAdmin, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validDraft()
			r.Normalize()
			tt.mutate(r)

			err := ValidateReservation(r, rules.WritableSlots(tt.channel), services, tt.channel)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidReservation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRules(t *testing.T) {
	rules := DefaultBookingRules()

	assert.Equal(t, PolicyPendingOnly, rules.For(ChannelPublic).Policy)
	assert.Equal(t, PolicyAllStatuses, rules.For(ChannelAdmin).Policy)
	assert.Len(t, rules.WritableSlots(ChannelPublic), len(DefaultPublicSlots))
	assert.Len(t, rules.WritableSlots(ChannelAdmin), 18)
}
