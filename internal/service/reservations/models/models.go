package models

import (
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// Request модели

// ListRequest фильтры списка бронирований администратора
type ListRequest struct {
	Search string  // Поиск по имени, телефону или email
	Status *string // pending | confirmed
	Date   *string // YYYY-MM-DD
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID               int64     `json:"id"`
	ClientName       string    `json:"clientName"`
	ClientEmail      *string   `json:"clientEmail,omitempty"`
	ClientPhone      string    `json:"clientPhone"`
	SelectedDate     string    `json:"selectedDate"` // "2025-03-10"
	SelectedTime     string    `json:"selectedTime"` // "09:30"
	SelectedServices []string  `json:"selectedServices"`
	Comments         *string   `json:"comments,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	services := r.SelectedServices
	if services == nil {
		services = []string{}
	}

	return &ReservationResponse{
		ID:               r.ID,
		ClientName:       r.ClientName,
		ClientEmail:      r.ClientEmail,
		ClientPhone:      r.ClientPhone,
		SelectedDate:     r.SelectedDate.String(),
		SelectedTime:     r.SelectedTime.Normalize().String(),
		SelectedServices: services,
		Comments:         r.Comments,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		if r == nil {
			continue
		}
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	resp.Total = len(resp.Reservations)
	return resp
}
