package domain

import (
	"fmt"
	"sort"

	"github.com/m04kA/monnas-booking/pkg/types"
)

// SlotCatalog is the ordered list of bookable start times of a day
type SlotCatalog []types.TimeString

// Contains reports whether the time is one of the catalog slots
func (c SlotCatalog) Contains(t types.TimeString) bool {
	t = t.Normalize()
	for _, slot := range c {
		if slot == t {
			return true
		}
	}
	return false
}

// Union returns the sorted catalog containing the slots of both catalogs
func (c SlotCatalog) Union(other SlotCatalog) SlotCatalog {
	seen := make(map[types.TimeString]struct{}, len(c)+len(other))
	out := make(SlotCatalog, 0, len(c)+len(other))
	for _, list := range []SlotCatalog{c, other} {
		for _, slot := range list {
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out
}

// Validate checks that every slot is a well-formed, unique HH:MM value
func (c SlotCatalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("slot catalog is empty")
	}
	seen := make(map[types.TimeString]struct{}, len(c))
	for _, slot := range c {
		if err := slot.Validate(); err != nil {
			return err
		}
		if _, ok := seen[slot]; ok {
			return fmt.Errorf("duplicate slot %s", slot)
		}
		seen[slot] = struct{}{}
	}
	return nil
}

// Service is a studio service a client can request
type Service struct {
	ID       string
	Name     string
	Price    int64 // ARS, 0 when the price is agreed in person
	Channels []Channel
}

// OfferedOn reports whether the service can be requested through the channel
func (s Service) OfferedOn(ch Channel) bool {
	for _, c := range s.Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// ServiceCatalog indexes services by id, preserving catalog order
type ServiceCatalog struct {
	services []Service
	byID     map[string]Service
}

// NewServiceCatalog builds a catalog; later duplicates override earlier entries
func NewServiceCatalog(services []Service) *ServiceCatalog {
	c := &ServiceCatalog{byID: make(map[string]Service, len(services))}
	for _, s := range services {
		if _, ok := c.byID[s.ID]; !ok {
			c.services = append(c.services, s)
		} else {
			for i := range c.services {
				if c.services[i].ID == s.ID {
					c.services[i] = s
				}
			}
		}
		c.byID[s.ID] = s
	}
	return c
}

// Get returns the service by id
func (c *ServiceCatalog) Get(id string) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// All returns every service in catalog order
func (c *ServiceCatalog) All() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// ForChannel returns the services offered on the channel in catalog order
func (c *ServiceCatalog) ForChannel(ch Channel) []Service {
	out := make([]Service, 0, len(c.services))
	for _, s := range c.services {
		if s.OfferedOn(ch) {
			out = append(out, s)
		}
	}
	return out
}

// Name returns the display name of the service, or the id when unknown
func (c *ServiceCatalog) Name(id string) string {
	if s, ok := c.byID[id]; ok {
		return s.Name
	}
	return id
}

// Total sums the prices of the given services; unknown ids count as zero
func (c *ServiceCatalog) Total(ids []string) int64 {
	var total int64
	for _, id := range ids {
		total += c.byID[id].Price
	}
	return total
}
