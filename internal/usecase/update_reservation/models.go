package update_reservation

import (
	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// Request модель запроса на редактирование бронирования администратором
type Request struct {
	ID          int64
	ClientName  string
	ClientPhone string
	ClientEmail *string
	Date        types.Date
	Time        types.TimeString
	Services    []string
	Comments    *string
	Status      domain.ReservationStatus // пусто = оставить текущий
}

// Response модель ответа с сохраненным бронированием
type Response struct {
	Reservation *domain.Reservation
}
