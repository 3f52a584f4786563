package domain

import (
	"math"
	"sort"
	"strings"

	"github.com/m04kA/monnas-booking/pkg/types"
)

// LoyaltyLevel segments clients by visits and spend
type LoyaltyLevel string

const (
	LoyaltyNew     LoyaltyLevel = "nuevo"
	LoyaltyRegular LoyaltyLevel = "regular"
	LoyaltyVIP     LoyaltyLevel = "vip"
	LoyaltyDiamond LoyaltyLevel = "diamante"
	loyaltyUnknown LoyaltyLevel = ""
)

// Loyalty thresholds: a level is reached by reservation count or by total spend
const (
	DiamondMinReservations = 20
	DiamondMinSpent        = 1_000_000
	VIPMinReservations     = 10
	VIPMinSpent            = 500_000
	RegularMinReservations = 3
	RegularMinSpent        = 150_000
)

// ParseLoyaltyLevel validates a level coming from a query string
func ParseLoyaltyLevel(s string) (LoyaltyLevel, bool) {
	switch l := LoyaltyLevel(s); l {
	case LoyaltyNew, LoyaltyRegular, LoyaltyVIP, LoyaltyDiamond:
		return l, true
	default:
		return loyaltyUnknown, false
	}
}

// LoyaltyFor returns the level for the given reservation count and spend
func LoyaltyFor(totalReservations int, totalSpent int64) LoyaltyLevel {
	switch {
	case totalReservations >= DiamondMinReservations || totalSpent >= DiamondMinSpent:
		return LoyaltyDiamond
	case totalReservations >= VIPMinReservations || totalSpent >= VIPMinSpent:
		return LoyaltyVIP
	case totalReservations >= RegularMinReservations || totalSpent >= RegularMinSpent:
		return LoyaltyRegular
	default:
		return LoyaltyNew
	}
}

// IsVIP reports whether the level counts as VIP in statistics
func (l LoyaltyLevel) IsVIP() bool {
	return l == LoyaltyVIP || l == LoyaltyDiamond
}

// ClientProfile aggregates the reservations of one client
type ClientProfile struct {
	Key                  string
	Name                 string
	Phone                string
	Email                *string
	TotalReservations    int
	ConfirmedCount       int
	TotalSpent           int64
	FavoriteServices     []string
	FirstVisit           types.Date
	LastVisit            types.Date
	AverageMonthlyVisits float64
	Loyalty              LoyaltyLevel
}

// ClientStats summarizes the client base
type ClientStats struct {
	TotalClients         int
	NewThisMonth         int
	VIPClients           int
	AverageLifetimeValue float64
}

// BuildClientProfiles groups reservations by client (name and phone).
// Spend counts confirmed reservations only. Result is sorted by spend, highest first.
func BuildClientProfiles(reservations []*Reservation, services *ServiceCatalog) []ClientProfile {
	byKey := make(map[string]*ClientProfile)
	serviceCount := make(map[string]map[string]int)
	order := make([]string, 0)

	for _, r := range reservations {
		if r == nil {
			continue
		}
		key := r.ClientKey()
		p, ok := byKey[key]
		if !ok {
			p = &ClientProfile{
				Key:        key,
				Name:       r.ClientName,
				Phone:      r.ClientPhone,
				Email:      r.ClientEmail,
				FirstVisit: r.SelectedDate,
				LastVisit:  r.SelectedDate,
			}
			byKey[key] = p
			serviceCount[key] = make(map[string]int)
			order = append(order, key)
		}

		p.TotalReservations++
		if p.Email == nil && r.ClientEmail != nil {
			p.Email = r.ClientEmail
		}
		if r.IsConfirmed() {
			p.ConfirmedCount++
			p.TotalSpent += services.Total(r.SelectedServices)
		}
		if r.SelectedDate.After(p.LastVisit) {
			p.LastVisit = r.SelectedDate
		}
		if r.SelectedDate.Before(p.FirstVisit) {
			p.FirstVisit = r.SelectedDate
		}
		for _, id := range r.SelectedServices {
			serviceCount[key][services.Name(id)]++
		}
	}

	profiles := make([]ClientProfile, 0, len(byKey))
	for _, key := range order {
		p := byKey[key]
		p.FavoriteServices = favoriteServices(serviceCount[key])
		p.AverageMonthlyVisits = averageMonthlyVisits(p.ConfirmedCount, p.FirstVisit, p.LastVisit)
		p.Loyalty = LoyaltyFor(p.TotalReservations, p.TotalSpent)
		profiles = append(profiles, *p)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalSpent > profiles[j].TotalSpent
	})
	return profiles
}

// SummarizeClients computes aggregate figures; new clients are those whose first visit falls in today's month
func SummarizeClients(profiles []ClientProfile, today types.Date) ClientStats {
	stats := ClientStats{TotalClients: len(profiles)}

	var spent int64
	for _, p := range profiles {
		if p.FirstVisit.SameMonth(today.Year, today.Month) {
			stats.NewThisMonth++
		}
		if p.Loyalty.IsVIP() {
			stats.VIPClients++
		}
		spent += p.TotalSpent
	}
	if len(profiles) > 0 {
		stats.AverageLifetimeValue = float64(spent) / float64(len(profiles))
	}
	return stats
}

// Matches reports whether the profile matches a free-text search on name, phone or email
func (p ClientProfile) Matches(search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(p.Phone, search) {
		return true
	}
	return p.Email != nil && strings.Contains(strings.ToLower(*p.Email), needle)
}

func favoriteServices(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	return limit(names, FavoriteServicesMax)
}

// averageMonthlyVisits divides confirmed visits by the span in 30-day months (at least one), one decimal
func averageMonthlyVisits(confirmed int, first, last types.Date) float64 {
	months := int(math.Round(float64(first.DaysUntil(last)) / 30))
	if months < 1 {
		months = 1
	}
	return math.Round(float64(confirmed)/float64(months)*10) / 10
}
