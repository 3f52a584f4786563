package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// NotificationType is the kind of admin notification
type NotificationType string

const (
	NotificationNew      NotificationType = "new"
	NotificationReminder NotificationType = "reminder"
	NotificationUpcoming NotificationType = "upcoming"
	NotificationLate     NotificationType = "late"
)

// NotificationPriority orders notifications, higher first
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// Rank returns the sort weight of the priority
func (p NotificationPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Notification is an alert derived from the reservation snapshot
type Notification struct {
	ID            string
	Type          NotificationType
	Priority      NotificationPriority
	Title         string
	Message       string
	ReservationID int64
	Timestamp     time.Time
}

// NotificationSettings are the admin's notification preferences
type NotificationSettings struct {
	Enabled           bool `json:"enabled"`
	NewReservations   bool `json:"newReservations"`
	UpcomingReminders bool `json:"upcomingReminders"`
	ReminderMinutes   int  `json:"reminderMinutes"`
	Sound             bool `json:"sound"`
	Desktop           bool `json:"desktop"`
}

// DefaultNotificationSettings returns the settings used until the admin saves their own
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:           true,
		NewReservations:   true,
		UpcomingReminders: true,
		ReminderMinutes:   DefaultReminderMinutes,
		Sound:             true,
		Desktop:           false,
	}
}

// Validate checks the reminder lead time
func (s NotificationSettings) Validate() error {
	if s.ReminderMinutes < 1 || s.ReminderMinutes > UpcomingWindowMinutesTo {
		return fmt.Errorf("reminderMinutes must be within 1..%d, got %d", UpcomingWindowMinutesTo, s.ReminderMinutes)
	}
	return nil
}

// MinutesUntil returns whole minutes from now to the reservation start, rounded down.
// ok is false when the stored time cannot be parsed.
func MinutesUntil(r *Reservation, now time.Time, loc *time.Location) (minutes int, ok bool) {
	start, err := r.StartsAt(loc)
	if err != nil {
		return 0, false
	}
	return int(math.Floor(start.Sub(now).Minutes())), true
}

// GenerateNotifications derives admin alerts from a reservation snapshot.
// Results are unique by ID, ordered by priority and then by timestamp, newest first.
func GenerateNotifications(reservations []*Reservation, settings NotificationSettings, now time.Time, loc *time.Location) []Notification {
	result := make([]Notification, 0)
	seen := make(map[string]struct{})

	add := func(n Notification) {
		if _, ok := seen[n.ID]; ok {
			return
		}
		seen[n.ID] = struct{}{}
		result = append(result, n)
	}

	for _, r := range reservations {
		if r == nil {
			continue
		}

		if settings.NewReservations && !r.CreatedAt.IsZero() &&
			now.Sub(r.CreatedAt) <= NewReservationWindowHours*time.Hour {
			add(Notification{
				ID:            fmt.Sprintf("new-%d", r.ID),
				Type:          NotificationNew,
				Priority:      PriorityMedium,
				Title:         "Nueva Reserva",
				Message:       fmt.Sprintf("%s ha reservado para %s a las %s", r.ClientName, r.SelectedDate, r.SelectedTime.Normalize()),
				ReservationID: r.ID,
				Timestamp:     r.CreatedAt,
			})
		}

		minutes, ok := MinutesUntil(r, now, loc)
		if !ok {
			continue
		}

		if settings.UpcomingReminders && minutes > 0 {
			if minutes <= settings.ReminderMinutes && minutes > settings.ReminderMinutes-ReminderBandMinutes {
				add(Notification{
					ID:            fmt.Sprintf("reminder-%d", r.ID),
					Type:          NotificationReminder,
					Priority:      PriorityHigh,
					Title:         "Recordatorio de Cita",
					Message:       ReminderMessage(r, minutes),
					ReservationID: r.ID,
					Timestamp:     now,
				})
			}
			if minutes <= UpcomingWindowMinutesTo && minutes > UpcomingWindowMinutesFrom {
				add(Notification{
					ID:            fmt.Sprintf("upcoming-%d", r.ID),
					Type:          NotificationUpcoming,
					Priority:      PriorityMedium,
					Title:         "Cita de Hoy",
					Message:       fmt.Sprintf("Tienes una cita con %s a las %s", r.ClientName, r.SelectedTime.Normalize()),
					ReservationID: r.ID,
					Timestamp:     now,
				})
			}
		}

		if minutes < -LateThresholdMinutes && r.IsPending() {
			add(Notification{
				ID:            fmt.Sprintf("late-%d", r.ID),
				Type:          NotificationLate,
				Priority:      PriorityHigh,
				Title:         "Cita Atrasada",
				Message:       fmt.Sprintf("La cita con %s debía ser a las %s", r.ClientName, r.SelectedTime.Normalize()),
				ReservationID: r.ID,
				Timestamp:     now,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		return a.Timestamp.After(b.Timestamp)
	})
	return result
}

// DueReminders returns the reservations starting exactly settings.ReminderMinutes from now.
// Nothing is due while notifications are disabled.
func DueReminders(reservations []*Reservation, settings NotificationSettings, now time.Time, loc *time.Location) []*Reservation {
	if !settings.Enabled {
		return nil
	}
	var due []*Reservation
	for _, r := range reservations {
		if r == nil {
			continue
		}
		if minutes, ok := MinutesUntil(r, now, loc); ok && minutes == settings.ReminderMinutes {
			due = append(due, r)
		}
	}
	return due
}

// ReminderMessage is the body of a reminder for a reservation starting in the given minutes
func ReminderMessage(r *Reservation, minutes int) string {
	return fmt.Sprintf("Cita con %s en %d minutos", r.ClientName, minutes)
}
