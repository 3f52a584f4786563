package domain

import (
	"sort"

	"github.com/m04kA/monnas-booking/pkg/types"
)

// Dashboard windows and list sizes
const (
	WeekWindowDays      = 7
	MonthWindowDays     = 30
	YearWindowDays      = 365
	TopServicesLimit    = 5
	BusyHoursLimit      = 6
	TopClientsLimit     = 5
	FavoriteServicesMax = 3
)

// ServiceUsage counts how often a service was requested
type ServiceUsage struct {
	ID         string
	Name       string
	Count      int
	Percentage float64 // share of reservations that include the service
}

// HourLoad counts reservations starting within one hour
type HourLoad struct {
	Hour  string // "HH:00"
	Count int
}

// ClientActivity counts reservations of one client
type ClientActivity struct {
	Name  string
	Phone string
	Count int
}

// DashboardStats aggregates reservations for the admin dashboard
type DashboardStats struct {
	Total     int
	Today     int
	Week      int
	Month     int
	Pending   int
	Confirmed int

	ConfirmedRate   float64 // percent
	PopularServices []ServiceUsage
	BusyHours       []HourLoad
	WeeklyTrend     [7]int // indexed by time.Weekday
	MonthlyRevenue  int64
	AverageDaily    float64
	TopClients      []ClientActivity
}

// ComputeDashboard aggregates the given reservations as seen on today
func ComputeDashboard(reservations []*Reservation, services *ServiceCatalog, today types.Date) DashboardStats {
	var stats DashboardStats

	weekAgo := today.AddDays(-WeekWindowDays)
	monthAgo := today.AddDays(-MonthWindowDays)

	serviceCount := make(map[string]int)
	hourCount := make(map[string]int)
	clients := make(map[string]*ClientActivity)

	for _, r := range reservations {
		if r == nil {
			continue
		}
		stats.Total++

		if r.SelectedDate == today {
			stats.Today++
		}
		if !r.SelectedDate.Before(weekAgo) {
			stats.Week++
		}
		inMonth := !r.SelectedDate.Before(monthAgo)
		if inMonth {
			stats.Month++
		}

		switch r.Status {
		case StatusConfirmed:
			stats.Confirmed++
			if inMonth {
				stats.MonthlyRevenue += services.Total(r.SelectedServices)
			}
		case StatusPending:
			stats.Pending++
		}

		for _, id := range r.SelectedServices {
			serviceCount[id]++
		}
		hourCount[r.SelectedTime.Hour()]++
		stats.WeeklyTrend[r.SelectedDate.Weekday()]++

		key := r.ClientKey()
		if c, ok := clients[key]; ok {
			c.Count++
		} else {
			clients[key] = &ClientActivity{Name: r.ClientName, Phone: r.ClientPhone, Count: 1}
		}
	}

	if stats.Total > 0 {
		stats.ConfirmedRate = float64(stats.Confirmed) / float64(stats.Total) * 100
	}
	stats.AverageDaily = float64(stats.MonthlyRevenue) / MonthWindowDays

	stats.PopularServices = make([]ServiceUsage, 0, len(serviceCount))
	for id, count := range serviceCount {
		stats.PopularServices = append(stats.PopularServices, ServiceUsage{
			ID:         id,
			Name:       services.Name(id),
			Count:      count,
			Percentage: float64(count) / float64(stats.Total) * 100,
		})
	}
	sort.Slice(stats.PopularServices, func(i, j int) bool {
		a, b := stats.PopularServices[i], stats.PopularServices[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})
	stats.PopularServices = limit(stats.PopularServices, TopServicesLimit)

	stats.BusyHours = make([]HourLoad, 0, len(hourCount))
	for hour, count := range hourCount {
		stats.BusyHours = append(stats.BusyHours, HourLoad{Hour: hour, Count: count})
	}
	sort.Slice(stats.BusyHours, func(i, j int) bool {
		a, b := stats.BusyHours[i], stats.BusyHours[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Hour < b.Hour
	})
	stats.BusyHours = limit(stats.BusyHours, BusyHoursLimit)

	stats.TopClients = make([]ClientActivity, 0, len(clients))
	for _, c := range clients {
		stats.TopClients = append(stats.TopClients, *c)
	}
	sort.Slice(stats.TopClients, func(i, j int) bool {
		a, b := stats.TopClients[i], stats.TopClients[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Phone < b.Phone
	})
	stats.TopClients = limit(stats.TopClients, TopClientsLimit)

	return stats
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
