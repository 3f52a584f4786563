package models

import (
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// NotificationResponse уведомление администратора
type NotificationResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Priority      string    `json:"priority"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	ReservationID int64     `json:"reservationId"`
	Timestamp     time.Time `json:"timestamp"`
}

// NotificationListResponse список уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	HighPriority  int                    `json:"highPriority"`
}

// Settings настройки уведомлений в запросах и ответах
type Settings struct {
	Enabled           bool `json:"enabled"`
	NewReservations   bool `json:"newReservations"`
	UpcomingReminders bool `json:"upcomingReminders"`
	ReminderMinutes   int  `json:"reminderMinutes"`
	Sound             bool `json:"sound"`
	Desktop           bool `json:"desktop"`
}

// ToDomain конвертирует настройки в доменную модель
func (s Settings) ToDomain() domain.NotificationSettings {
	return domain.NotificationSettings{
		Enabled:           s.Enabled,
		NewReservations:   s.NewReservations,
		UpcomingReminders: s.UpcomingReminders,
		ReminderMinutes:   s.ReminderMinutes,
		Sound:             s.Sound,
		Desktop:           s.Desktop,
	}
}

// FromDomainSettings конвертирует доменные настройки в ответ
func FromDomainSettings(s domain.NotificationSettings) *Settings {
	return &Settings{
		Enabled:           s.Enabled,
		NewReservations:   s.NewReservations,
		UpcomingReminders: s.UpcomingReminders,
		ReminderMinutes:   s.ReminderMinutes,
		Sound:             s.Sound,
		Desktop:           s.Desktop,
	}
}

// FromDomainNotifications конвертирует список уведомлений в ответ
func FromDomainNotifications(list []domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(list)),
		Total:         len(list),
	}
	for _, n := range list {
		if n.Priority == domain.PriorityHigh {
			resp.HighPriority++
		}
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:            n.ID,
			Type:          string(n.Type),
			Priority:      string(n.Priority),
			Title:         n.Title,
			Message:       n.Message,
			ReservationID: n.ReservationID,
			Timestamp:     n.Timestamp,
		})
	}
	return resp
}
