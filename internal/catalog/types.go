package catalog

// Mood is one of the six closed categories driving destination filtering.
type Mood string

const (
	MoodCalm        Mood = "calm"
	MoodExcited     Mood = "excited"
	MoodRomantic    Mood = "romantic"
	MoodAdventurous Mood = "adventurous"
	MoodStressed    Mood = "stressed"
	MoodHappy       Mood = "happy"
)

// MoodOrder fixes the enumeration order for scoring and tie-breaking.
// Classification iterates this slice, never a map.
var MoodOrder = []Mood{
	MoodCalm,
	MoodExcited,
	MoodRomantic,
	MoodAdventurous,
	MoodStressed,
	MoodHappy,
}

// Valid reports whether m is one of the six known moods.
func (m Mood) Valid() bool {
	for _, known := range MoodOrder {
		if m == known {
			return true
		}
	}
	return false
}

// Destination is an immutable catalog record. Budget keeps the original
// display form ("₹8,000-15,000 per day"); numeric parsing is the planner's
// concern.
type Destination struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BestTime    string   `json:"best_time"`
	Budget      string   `json:"budget"`
	Attractions []string `json:"attractions"`
	Food        []string `json:"food"`
}

// StayTiers groups hotel names for a region by price tier.
type StayTiers struct {
	Luxury   []string
	MidRange []string
	Budget   []string
}

// DiningGuide groups restaurant names for a region. Every region carries the
// three common categories plus one region-specific specialty category.
type DiningGuide struct {
	FineDining    []string
	LocalCuisine  []string
	StreetFood    []string
	SpecialtyName string
	Specialty     []string
}

// Categories returns the guide's restaurant lists in a fixed order so that
// pooled sampling is deterministic for a given random source.
func (g DiningGuide) Categories() [][]string {
	return [][]string{g.FineDining, g.LocalCuisine, g.StreetFood, g.Specialty}
}
