package get_available_slots

import (
	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date      types.Date     // Дата для получения слотов
	Channel   domain.Channel // Канал: публичная страница или панель администратора
	ExcludeID *int64         // ID редактируемого бронирования (только для администратора)
}

// Response разбиение каталога слотов на свободные и занятые
type Response struct {
	Date        types.Date
	Available   []types.TimeString
	Booked      []types.TimeString
	FullyBooked bool
}
