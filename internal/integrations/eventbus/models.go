package eventbus

import "time"

// Имена очередей событий
const (
	QueueReservationCreated  = "reservation.created"
	QueueReservationReminder = "reservation.reminder"
)

// ReservationCreated событие о сохраненном бронировании
type ReservationCreated struct {
	ReservationID int64     `json:"reservation_id"`
	Channel       string    `json:"channel"`
	Status        string    `json:"status"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Services      []string  `json:"services"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReservationReminder событие о приближающемся визите
type ReservationReminder struct {
	ReservationID int64     `json:"reservation_id"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	MinutesBefore int       `json:"minutes_before"`
	RaisedAt      time.Time `json:"raised_at"`
}
