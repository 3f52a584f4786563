package domain

import (
	"sort"

	"github.com/m04kA/monnas-booking/pkg/types"
)

// OccupiedSlot is a stored reservation reduced to what availability needs
type OccupiedSlot struct {
	ReservationID int64            `json:"id"`
	Date          types.Date       `json:"date"`
	Time          types.TimeString `json:"time"`
}

// OccupiedSlotsFrom keeps the reservations that occupy their slot under the policy
func OccupiedSlotsFrom(reservations []*Reservation, policy OccupancyPolicy) []OccupiedSlot {
	out := make([]OccupiedSlot, 0, len(reservations))
	for _, r := range reservations {
		if r == nil || !policy.Occupies(r.Status) {
			continue
		}
		out = append(out, OccupiedSlot{
			ReservationID: r.ID,
			Date:          r.SelectedDate,
			Time:          r.SelectedTime.Normalize(),
		})
	}
	return out
}

// OccupancyIndex maps a date to the ordered, de-duplicated occupied start times
type OccupancyIndex map[types.Date][]types.TimeString

// BuildOccupancyIndex groups occupied slots by date, skipping excludeID when set
func BuildOccupancyIndex(slots []OccupiedSlot, excludeID *int64) OccupancyIndex {
	idx := make(OccupancyIndex)
	seen := make(map[types.Date]map[types.TimeString]struct{})

	for _, s := range slots {
		if excludeID != nil && s.ReservationID == *excludeID {
			continue
		}
		t := s.Time.Normalize()
		if seen[s.Date] == nil {
			seen[s.Date] = make(map[types.TimeString]struct{})
		}
		if _, ok := seen[s.Date][t]; ok {
			continue
		}
		seen[s.Date][t] = struct{}{}
		idx[s.Date] = append(idx[s.Date], t)
	}

	for d := range idx {
		times := idx[d]
		sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })
	}
	return idx
}

// Occupied returns the occupied times of the date
func (idx OccupancyIndex) Occupied(d types.Date) []types.TimeString {
	return idx[d]
}

// SlotPartition splits a slot catalog for one date
// Available and Booked are disjoint and together equal the catalog, both in catalog order
type SlotPartition struct {
	Date        types.Date
	Available   []types.TimeString
	Booked      []types.TimeString
	FullyBooked bool
}

// Evaluate partitions the catalog for the date
// A slot is available iff it is not occupied; the date is fully booked iff nothing is available
func (idx OccupancyIndex) Evaluate(d types.Date, catalog SlotCatalog) SlotPartition {
	occupied := make(map[types.TimeString]struct{}, len(idx[d]))
	for _, t := range idx[d] {
		occupied[t.Normalize()] = struct{}{}
	}

	p := SlotPartition{
		Date:      d,
		Available: make([]types.TimeString, 0, len(catalog)),
		Booked:    make([]types.TimeString, 0, len(occupied)),
	}
	for _, slot := range catalog {
		if _, ok := occupied[slot.Normalize()]; ok {
			p.Booked = append(p.Booked, slot)
			continue
		}
		p.Available = append(p.Available, slot)
	}
	p.FullyBooked = len(p.Available) == 0
	return p
}

// IsAvailable reports whether the time is a free catalog slot of the partition
func (p SlotPartition) IsAvailable(t types.TimeString) bool {
	t = t.Normalize()
	for _, slot := range p.Available {
		if slot.Normalize() == t {
			return true
		}
	}
	return false
}

// EvaluateSlots is the single availability check shared by every booking surface
func EvaluateSlots(
	existing []*Reservation,
	catalog SlotCatalog,
	date types.Date,
	excludeID *int64,
	policy OccupancyPolicy,
) SlotPartition {
	idx := BuildOccupancyIndex(OccupiedSlotsFrom(existing, policy), excludeID)
	return idx.Evaluate(date, catalog)
}
