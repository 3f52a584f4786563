package models

import (
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// weekdayLabels подписи дней недели для графика тренда, начиная с воскресенья
var weekdayLabels = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// DashboardResponse ответ дашборда
type DashboardResponse struct {
	TotalReservations int                      `json:"totalReservations"`
	TodayReservations int                      `json:"todayReservations"`
	WeekReservations  int                      `json:"weekReservations"`
	MonthReservations int                      `json:"monthReservations"`
	PendingCount      int                      `json:"pendingCount"`
	ConfirmedCount    int                      `json:"confirmedCount"`
	ConfirmedRate     float64                  `json:"confirmedRate"`
	PopularServices   []ServiceUsageResponse   `json:"popularServices"`
	BusyHours         []HourLoadResponse       `json:"busyHours"`
	WeeklyTrend       []WeekdayResponse        `json:"weeklyTrend"`
	Revenue           RevenueResponse          `json:"revenue"`
	TopClients        []ClientActivityResponse `json:"topClients"`
}

// ServiceUsageResponse популярность услуги
type ServiceUsageResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// HourLoadResponse загрузка по часу
type HourLoadResponse struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// WeekdayResponse количество бронирований в день недели
type WeekdayResponse struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// RevenueResponse выручка по подтвержденным бронированиям за 30 дней
type RevenueResponse struct {
	ThisMonth    int64   `json:"thisMonth"`
	AverageDaily float64 `json:"averageDaily"`
}

// ClientActivityResponse активность клиента
type ClientActivityResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Count int    `json:"count"`
}

// ClientResponse профиль клиента
type ClientResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Phone                string   `json:"phone"`
	Email                *string  `json:"email,omitempty"`
	TotalReservations    int      `json:"totalReservations"`
	ConfirmedCount       int      `json:"confirmedReservations"`
	TotalSpent           int64    `json:"totalSpent"`
	FavoriteServices     []string `json:"favoriteServices"`
	FirstVisit           string   `json:"firstVisit"`
	LastVisit            string   `json:"lastVisit"`
	AverageMonthlyVisits float64  `json:"averageMonthlyVisits"`
	LoyaltyLevel         string   `json:"loyaltyLevel"`
}

// ClientStatsResponse сводка по клиентской базе
type ClientStatsResponse struct {
	TotalClients         int     `json:"totalClients"`
	NewThisMonth         int     `json:"newThisMonth"`
	VIPClients           int     `json:"vipClients"`
	AverageLifetimeValue float64 `json:"averageLifetimeValue"`
}

// ClientListResponse список клиентов со сводкой
type ClientListResponse struct {
	Clients []ClientResponse    `json:"clients"`
	Stats   ClientStatsResponse `json:"stats"`
}

// FromDomainDashboard конвертирует статистику дашборда в ответ
func FromDomainDashboard(s domain.DashboardStats) *DashboardResponse {
	resp := &DashboardResponse{
		TotalReservations: s.Total,
		TodayReservations: s.Today,
		WeekReservations:  s.Week,
		MonthReservations: s.Month,
		PendingCount:      s.Pending,
		ConfirmedCount:    s.Confirmed,
		ConfirmedRate:     s.ConfirmedRate,
		PopularServices:   make([]ServiceUsageResponse, 0, len(s.PopularServices)),
		BusyHours:         make([]HourLoadResponse, 0, len(s.BusyHours)),
		WeeklyTrend:       make([]WeekdayResponse, 0, len(s.WeeklyTrend)),
		Revenue: RevenueResponse{
			ThisMonth:    s.MonthlyRevenue,
			AverageDaily: s.AverageDaily,
		},
		TopClients: make([]ClientActivityResponse, 0, len(s.TopClients)),
	}

	for _, u := range s.PopularServices {
		resp.PopularServices = append(resp.PopularServices, ServiceUsageResponse{
			ID:         u.ID,
			Name:       u.Name,
			Count:      u.Count,
			Percentage: u.Percentage,
		})
	}
	for _, h := range s.BusyHours {
		resp.BusyHours = append(resp.BusyHours, HourLoadResponse{Hour: h.Hour, Count: h.Count})
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		resp.WeeklyTrend = append(resp.WeeklyTrend, WeekdayResponse{Day: weekdayLabels[day], Count: s.WeeklyTrend[day]})
	}
	for _, c := range s.TopClients {
		resp.TopClients = append(resp.TopClients, ClientActivityResponse{Name: c.Name, Phone: c.Phone, Count: c.Count})
	}

	return resp
}

// FromDomainClients конвертирует профили клиентов и сводку в ответ
func FromDomainClients(profiles []domain.ClientProfile, stats domain.ClientStats) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(profiles)),
		Stats: ClientStatsResponse{
			TotalClients:         stats.TotalClients,
			NewThisMonth:         stats.NewThisMonth,
			VIPClients:           stats.VIPClients,
			AverageLifetimeValue: stats.AverageLifetimeValue,
		},
	}

	for _, p := range profiles {
		favorites := p.FavoriteServices
		if favorites == nil {
			favorites = []string{}
		}
		resp.Clients = append(resp.Clients, ClientResponse{
			ID:                   p.Key,
			Name:                 p.Name,
			Phone:                p.Phone,
			Email:                p.Email,
			TotalReservations:    p.TotalReservations,
			ConfirmedCount:       p.ConfirmedCount,
			TotalSpent:           p.TotalSpent,
			FavoriteServices:     favorites,
			FirstVisit:           p.FirstVisit.String(),
			LastVisit:            p.LastVisit.String(),
			AverageMonthlyVisits: p.AverageMonthlyVisits,
			LoyaltyLevel:         string(p.Loyalty),
		})
	}

	return resp
}
