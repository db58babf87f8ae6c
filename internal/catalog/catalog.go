package catalog

import "strings"

// Catalog is the read-only reference dataset: destinations grouped by mood
// plus per-region stay tiers and dining guides. Built once at startup and
// shared by reference across all requests; nothing here is mutated after
// load, which is what makes concurrent use safe.
type Catalog struct {
	destinations map[Mood][]Destination
	stays        map[string]StayTiers
	dining       map[string]DiningGuide
	regionOrder  []string
}

func New() *Catalog {
	return &Catalog{
		destinations: moodDestinations,
		stays:        regionStays,
		dining:       regionDining,
		regionOrder:  regionOrder,
	}
}

// DestinationsForMood returns the curated list for mood, falling back to the
// happy list for anything outside the closed set.
func (c *Catalog) DestinationsForMood(mood Mood) []Destination {
	if list, ok := c.destinations[mood]; ok {
		return list
	}
	return c.destinations[MoodHappy]
}

// FindDestination looks a destination up by exact name across every mood
// list. Names are unique within the catalog.
func (c *Catalog) FindDestination(name string) (Destination, bool) {
	for _, mood := range MoodOrder {
		for _, dest := range c.destinations[mood] {
			if dest.Name == name {
				return dest, true
			}
		}
	}
	return Destination{}, false
}

// StayAndDining resolves the stay tiers and dining guide for a destination
// name by case-insensitive substring match in either direction against the
// region keys. The first matching region wins. When nothing matches, the
// generic defaults are returned and matched is false so callers can tell
// which branch fired.
func (c *Catalog) StayAndDining(destinationName string) (stays StayTiers, dining DiningGuide, matched bool) {
	lower := strings.ToLower(destinationName)
	for _, region := range c.regionOrder {
		regionLower := strings.ToLower(region)
		if strings.Contains(lower, regionLower) || strings.Contains(regionLower, lower) {
			return c.stays[region], c.dining[region], true
		}
	}
	return defaultStays, defaultDining, false
}
