package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/pkg/types"
)

func TestGenerateNotifications(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	settings := DefaultNotificationSettings()

	fresh := clientReservation(1, "Ana", "111", types.NewDate(2025, time.March, 14), "10:00", StatusPending, "cosmetologia")
	fresh.CreatedAt = now.Add(-2 * time.Hour)

	soon := clientReservation(2, "Bea", "222", march10, "09:28", StatusConfirmed, "cosmetologia")
	soon.CreatedAt = now.Add(-48 * time.Hour)

	tomorrow := clientReservation(3, "Caro", "333", march10.AddDays(1), "08:30:00", StatusConfirmed, "masajes")
	tomorrow.CreatedAt = now.Add(-72 * time.Hour)

	late := clientReservation(4, "Dora", "444", march10, "08:30", StatusPending, "tricologia")
	late.CreatedAt = now.Add(-30 * time.Hour)

	lateConfirmed := clientReservation(5, "Eva", "555", march10, "08:00", StatusConfirmed, "tricologia")
	lateConfirmed.CreatedAt = now.Add(-30 * time.Hour)

	got := GenerateNotifications([]*Reservation{fresh, soon, tomorrow, late, lateConfirmed, fresh, nil}, settings, now, time.UTC)

	ids := make([]string, 0, len(got))
	for _, n := range got {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"reminder-2", "late-4", "upcoming-3", "new-1"}, ids)

	require.Len(t, got, 4)
	assert.Equal(t, "Cita con Bea en 28 minutos", got[0].Message)
	assert.Equal(t, "La cita con Dora debía ser a las 08:30", got[1].Message)
	assert.Equal(t, "Tienes una cita con Caro a las 08:30", got[2].Message)
	assert.Equal(t, NotificationUpcoming, got[2].Type)
	assert.Equal(t, "Ana ha reservado para 2025-03-14 a las 10:00", got[3].Message)
	assert.Equal(t, fresh.CreatedAt, got[3].Timestamp)
}

func TestGenerateNotifications_SettingsSwitches(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	r := clientReservation(1, "Ana", "111", march10, "09:30", StatusPending, "cosmetologia")
	r.CreatedAt = now.Add(-time.Hour)

	settings := DefaultNotificationSettings()
	settings.NewReservations = false
	settings.UpcomingReminders = false

	assert.Empty(t, GenerateNotifications([]*Reservation{r}, settings, now, time.UTC))

	settings.UpcomingReminders = true
	got := GenerateNotifications([]*Reservation{r}, settings, now, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, NotificationReminder, got[0].Type)
}

func TestReminderBand(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	settings := DefaultNotificationSettings()

	tests := []struct {
		slot types.TimeString
		want bool
	}{
		{slot: "09:31", want: false},
		{slot: "09:30", want: true},
		{slot: "09:26", want: true},
		{slot: "09:25", want: false},
		{slot: "09:00", want: false},
	}

	for _, tt := range tests {
		r := clientReservation(1, "Ana", "111", march10, tt.slot, StatusConfirmed, "cosmetologia")
		got := GenerateNotifications([]*Reservation{r}, settings, now, time.UTC)
		assert.Equal(t, tt.want, len(got) == 1, "slot %s", tt.slot)
	}
}

func TestDueReminders(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	settings := DefaultNotificationSettings()

	due := clientReservation(1, "Ana", "111", march10, "09:30", StatusConfirmed, "cosmetologia")
	notYet := clientReservation(2, "Bea", "222", march10, "09:31", StatusPending, "cosmetologia")

	assert.Equal(t, []*Reservation{due}, DueReminders([]*Reservation{due, notYet}, settings, now, time.UTC))

	settings.Enabled = false
	assert.Empty(t, DueReminders([]*Reservation{due}, settings, now, time.UTC))
}

func TestNotificationSettings_Validate(t *testing.T) {
	s := DefaultNotificationSettings()
	assert.NoError(t, s.Validate())

	s.ReminderMinutes = 0
	assert.Error(t, s.Validate())

	s.ReminderMinutes = 24*60 + 1
	assert.Error(t, s.Validate())
}
