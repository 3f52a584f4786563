package create_reservation

import (
	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Channel     domain.Channel   // Канал: публичная страница (pending) или панель администратора (confirmed)
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	ClientEmail *string          // Email (опционально)
	Date        types.Date       // Дата визита
	Time        types.TimeString // Время визита из каталога слотов канала
	Services    []string         // ID выбранных услуг
	Comments    *string          // Комментарий (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	WhatsAppURL *string // Ссылка для отправки бронирования в WhatsApp (только публичный канал)
}
