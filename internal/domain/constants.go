package domain

// Channel identifies where a reservation is made from
type Channel string

const (
	ChannelPublic Channel = "public"
	ChannelAdmin  Channel = "admin"
)

// IsValid reports whether the channel is known
func (c Channel) IsValid() bool {
	return c == ChannelPublic || c == ChannelAdmin
}

// InitialStatus is the status assigned to reservations created through the channel
func (c Channel) InitialStatus() ReservationStatus {
	if c == ChannelAdmin {
		return StatusConfirmed
	}
	return StatusPending
}

// OccupancyPolicy decides which reservation statuses block a slot
type OccupancyPolicy string

const (
	// PolicyPendingOnly treats only pending reservations as occupying
	PolicyPendingOnly OccupancyPolicy = "pending_only"
	// PolicyAllStatuses treats every stored reservation as occupying
	PolicyAllStatuses OccupancyPolicy = "all_statuses"
)

// IsValid reports whether the policy is known
func (p OccupancyPolicy) IsValid() bool {
	return p == PolicyPendingOnly || p == PolicyAllStatuses
}

// Statuses returns the statuses that occupy a slot under the policy
func (p OccupancyPolicy) Statuses() []ReservationStatus {
	if p == PolicyPendingOnly {
		return []ReservationStatus{StatusPending}
	}
	return []ReservationStatus{StatusPending, StatusConfirmed}
}

// Occupies reports whether a reservation with the status blocks its slot
func (p OccupancyPolicy) Occupies(status ReservationStatus) bool {
	for _, s := range p.Statuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Default booking policies per channel
const (
	DefaultPublicPolicy = PolicyPendingOnly
	DefaultAdminPolicy  = PolicyAllStatuses
)

// Notification defaults
const (
	DefaultReminderMinutes      = 30
	NotificationWindowDays      = 7
	NewReservationWindowHours   = 24
	LateThresholdMinutes        = 15
	ReminderBandMinutes         = 5
	UpcomingWindowMinutesFrom   = 23 * 60
	UpcomingWindowMinutesTo     = 24 * 60
	DefaultSessionLifetimeHours = 24
)

// Calendar constants
const (
	CalendarGridDays = 42
)

// Business validation constants
const (
	MaxClientNameLength = 120
	MaxPhoneLength      = 40
	MaxEmailLength      = 254
	MaxCommentsLength   = 1000
)

// DefaultPublicSlots is the half-hour grid offered on the public booking page
var DefaultPublicSlots = SlotCatalog{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30", "18:00", "18:30",
}

// DefaultAdminSlots is the hourly grid offered in the admin panel
var DefaultAdminSlots = SlotCatalog{
	"09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// DefaultServices is the studio service catalog
var DefaultServices = []Service{
	{ID: "cosmetologia", Name: "Cosmetología", Price: 45000, Channels: []Channel{ChannelPublic, ChannelAdmin}},
	{ID: "cejas-pestanas", Name: "Cejas & Pestañas", Price: 25000, Channels: []Channel{ChannelPublic, ChannelAdmin}},
	{ID: "tricologia", Name: "Tricología Facial", Price: 60000, Channels: []Channel{ChannelPublic, ChannelAdmin}},
	{ID: "depilacion-laser", Name: "Depilación Láser", Price: 80000, Channels: []Channel{ChannelPublic, ChannelAdmin}},
	{ID: "cuidados-personalizados", Name: "Cuidados Personalizados", Price: 55000, Channels: []Channel{ChannelPublic, ChannelAdmin}},
	{ID: "masajes", Name: "Masajes", Price: 40000, Channels: []Channel{ChannelAdmin}},
	{ID: "consulta", Name: "Consulta", Price: 0, Channels: []Channel{ChannelPublic}},
}
