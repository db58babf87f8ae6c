package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"moodtrip/internal/catalog"
	"moodtrip/internal/models/response_models"
	"moodtrip/pkg/utils"
)

const (
	// Savings tiers: medium keeps 75% of the budget, high keeps 25%.
	mediumKeepPercent = 75
	highKeepPercent   = 25
)

var mediumBaseTips = tierTips{
	accommodation: []string{
		"Stay in budget hotels, hostels, or homestays instead of luxury resorts",
		"Book accommodations slightly outside city center for better rates",
		"Look for properties with free breakfast included",
		"Use platforms like OYO, FabHotels for affordable verified stays",
		"Consider shared accommodations or dormitories for solo travel",
	},
	food: []string{
		"Try local street food and small eateries - they're authentic and affordable",
		"Visit local markets for fresh, cheap produce and snacks",
		"Avoid hotel restaurants and tourist areas for dining",
		"Pack some snacks and water to avoid expensive tourist spot prices",
		"Look for local 'thali' restaurants for complete, affordable meals",
	},
	transport: []string{
		"Use public transportation (buses, trains) instead of private taxis",
		"Book train tickets well in advance for better prices",
		"Consider shared rides or carpooling options",
		"Walk or rent bicycles for short distances",
		"Use government bus services instead of private luxury buses",
	},
	activity: []string{
		"Visit free attractions like public parks, temples, and beaches",
		"Look for group discounts for paid attractions",
		"Choose nature-based activities over expensive adventure sports",
		"Visit during off-peak hours for potential discounts",
		"Explore local festivals and cultural events (usually free)",
	},
}

var highBaseTips = tierTips{
	accommodation: []string{
		"Stay in dormitories, youth hostels, or Couchsurfing (free accommodation)",
		"Camp outdoors where permitted (bring your own tent)",
		"Stay with locals through homestay networks (very affordable)",
		"Look for work-exchange programs (accommodation for work)",
		"Consider railway retiring rooms or dharamshalas (religious guesthouses)",
		"Sleep in train sleeper class for long journeys (saves hotel cost)",
	},
	food: []string{
		"Eat only at local street vendors and roadside dhabas (₹20-50 per meal)",
		"Buy groceries and cook your own meals when possible",
		"Drink only tap water or carry your own water bottle",
		"Skip restaurants entirely - eat where locals eat",
		"Look for community kitchens (langar) at religious places (free food)",
		"Carry dry snacks, biscuits, and instant noodles for meals",
	},
	transport: []string{
		"Use only government buses and local trains (cheapest option)",
		"Hitchhike when safe and legal (free transportation)",
		"Walk long distances instead of taking transport",
		"Use bicycle rentals for local travel (₹50-100 per day)",
		"Travel in general/sleeper class only",
		"Share auto-rickshaws with other passengers",
	},
	activity: []string{
		"Only visit free attractions - temples, parks, beaches, viewpoints",
		"Skip all paid activities and adventure sports entirely",
		"Use free walking tours or explore on your own",
		"Visit during free entry days at museums and monuments",
		"Enjoy nature-based free activities like hiking and photography",
		"Participate in local festivals and cultural events (usually free)",
	},
}

// Post-optimization travel tips appended after the summary lines.
var appliedOptimizationTips = map[string][]string{
	"high": {
		"Stay in budget hostels, dormitories, or dharamshalas for maximum savings",
		"Eat primarily at street food stalls and local community kitchens",
		"Use only public transportation - buses and trains",
		"Visit free attractions like temples, parks, and natural viewpoints",
		"Carry your own water bottle and snacks to save money",
		"Look for free cultural events and festivals during your visit",
	},
	"medium": {
		"Mix of budget hotels and hostels for comfortable yet affordable stays",
		"Eat at local restaurants and street food for authentic, budget-friendly meals",
		"Use public transport with occasional auto-rickshaw for convenience",
		"Focus on low-cost attractions and free cultural sites",
		"Shop at local markets for better prices on souvenirs",
		"Ask locals for hidden gems and free activity recommendations",
	},
}

type tierTips struct {
	accommodation []string
	food          []string
	transport     []string
	activity      []string
}

func (t tierTips) clone() tierTips {
	return tierTips{
		accommodation: append([]string(nil), t.accommodation...),
		food:          append([]string(nil), t.food...),
		transport:     append([]string(nil), t.transport...),
		activity:      append([]string(nil), t.activity...),
	}
}

type OptimizerService interface {
	Suggest(destination string, duration int, currentBudget string) response_models.OptimizationResult
	Apply(plan *response_models.ItineraryPlan, destination string, level string)
}

type optimizerService struct {
	catalog *catalog.Catalog
	newRand func() *rand.Rand
}

func NewOptimizerService(cat *catalog.Catalog) OptimizerService {
	return &optimizerService{catalog: cat, newRand: defaultRand}
}

// Suggest produces medium and high savings proposals for a trip without
// touching any saved plan. The budget string accepts the same formats the
// destination catalog uses; unparseable input falls back to a flat default.
func (s *optimizerService) Suggest(destination string, duration int, currentBudget string) response_models.OptimizationResult {
	currentAmount := utils.DefaultTripBudget
	if daily, ok := utils.ParseDailyBudget(currentBudget); ok {
		currentAmount = daily * duration
	}

	mediumAmount := currentAmount * mediumKeepPercent / 100
	highAmount := currentAmount * highKeepPercent / 100

	medium := mediumBaseTips.clone()
	high := highBaseTips.clone()
	applyRegionTips(destination, &medium, &high)

	return response_models.OptimizationResult{
		OriginalBudget: utils.FormatRupees(currentAmount),
		Medium: response_models.TierSuggestion{
			OptimizedBudget:   utils.FormatRupees(mediumAmount),
			Savings:           utils.FormatRupees(currentAmount - mediumAmount),
			SavingsPercentage: fmt.Sprintf("%d%%", 100-mediumKeepPercent),
			AccommodationTips: medium.accommodation,
			FoodTips:          medium.food,
			TransportTips:     medium.transport,
			ActivityTips:      medium.activity,
		},
		High: response_models.TierSuggestion{
			OptimizedBudget:   utils.FormatRupees(highAmount),
			Savings:           utils.FormatRupees(currentAmount - highAmount),
			SavingsPercentage: fmt.Sprintf("%d%%", 100-highKeepPercent),
			AccommodationTips: high.accommodation,
			FoodTips:          high.food,
			TransportTips:     high.transport,
			ActivityTips:      high.activity,
		},
	}
}

// Region-flavored advice. Every matching region contributes, and matching is
// a plain substring check against the destination name.
func applyRegionTips(destination string, medium *tierTips, high *tierTips) {
	if strings.Contains(destination, "Goa") {
		medium.accommodation = append(medium.accommodation, "Stay in North Goa for budget options, avoid South Goa luxury resorts")
		medium.food = append(medium.food, "Eat at local Goan tavernas instead of beach shacks")
		medium.activity = append(medium.activity, "Enjoy free beaches instead of paying for water sports initially")

		high.accommodation = append(high.accommodation, "Stay in beach huts or local fisherman's houses")
		high.food = append(high.food, "Buy fresh fish from fishermen and cook at beach huts")
		high.activity = append(high.activity, "Stick to free beach activities, avoid all paid water sports")
	}
	if strings.Contains(destination, "Kerala") {
		medium.accommodation = append(medium.accommodation, "Choose traditional homestays over luxury houseboats")
		medium.food = append(medium.food, "Try local toddy shops for authentic, cheap Kerala food")
		medium.transport = append(medium.transport, "Use KSRTC buses - they're reliable and very affordable")

		high.accommodation = append(high.accommodation, "Stay with local families or in basic dormitories")
		high.food = append(high.food, "Eat only at local homes or community meals")
		high.transport = append(high.transport, "Use local buses and walk along backwaters")
	}
	if strings.Contains(destination, "Rajasthan") {
		medium.accommodation = append(medium.accommodation, "Stay in heritage havelis instead of palace hotels")
		medium.food = append(medium.food, "Visit local dhabas for authentic Rajasthani food")
		medium.activity = append(medium.activity, "Many forts have nominal entry fees compared to private guided tours")

		high.accommodation = append(high.accommodation, "Stay in dharamshalas near temples or basic guesthouses")
		high.food = append(high.food, "Eat at roadside dhabas and local households only")
		high.activity = append(high.activity, "Visit only free viewpoints and temples, skip paid monuments")
	}
	if strings.Contains(destination, "Himachal") || strings.Contains(destination, "Manali") {
		medium.accommodation = append(medium.accommodation, "Book mountain homestays instead of resort properties")
		medium.food = append(medium.food, "Try local 'dham' community meals - authentic and very affordable")
		medium.activity = append(medium.activity, "Enjoy natural hot springs and hiking trails (free activities)")

		high.accommodation = append(high.accommodation, "Camp outdoors or stay in basic mountain huts")
		high.food = append(high.food, "Cook your own meals with local groceries")
		high.activity = append(high.activity, "Only do free trekking and visit natural attractions")
	}
}

// Apply rewrites a plan in place for the requested savings level: cheaper
// accommodation, a budget-focused restaurant pool, a reduced budget, and
// replacement travel tips. Applying again compounds on the already reduced
// budget.
func (s *optimizerService) Apply(plan *response_models.ItineraryPlan, destination string, level string) {
	stays, dining, _ := s.catalog.StayAndDining(destination)
	rng := s.newRand()

	var selectedHotel, hotelType string
	var selectedRestaurants []string
	if level == "high" {
		selectedHotel = "Budget Hostel"
		if len(stays.Budget) > 0 {
			selectedHotel = stays.Budget[rng.Intn(len(stays.Budget))]
		}
		hotelType = "Budget Accommodation"

		selectedRestaurants = append(selectedRestaurants, firstN(dining.StreetFood, 4)...)
		selectedRestaurants = append(selectedRestaurants, firstN(dining.LocalCuisine, 2)...)
		if len(selectedRestaurants) == 0 {
			selectedRestaurants = []string{"Local Street Food Stall", "Budget Local Eatery", "Roadside Dhaba", "Community Kitchen"}
		}
	} else {
		available := append(append([]string(nil), stays.Budget...), stays.MidRange...)
		selectedHotel = "Budget Hotel"
		if len(available) > 0 {
			selectedHotel = available[rng.Intn(len(available))]
		}
		hotelType = "Budget/Mid-range Hotel"

		selectedRestaurants = append(selectedRestaurants, firstN(dining.LocalCuisine, 3)...)
		selectedRestaurants = append(selectedRestaurants, firstN(dining.StreetFood, 3)...)
		if len(selectedRestaurants) == 0 {
			selectedRestaurants = []string{"Local Restaurant", "Traditional Eatery", "Budget Dining", "Street Food Vendor"}
		}
	}

	originalAmount, ok := utils.ParseRupees(plan.EstimatedBudget)
	if !ok {
		originalAmount = utils.DefaultTripBudget
	}

	var optimizedAmount, savingsPercent int
	var selectedTier, focus string
	if level == "high" {
		optimizedAmount = originalAmount * highKeepPercent / 100
		savingsPercent = 100 - highKeepPercent
		selectedTier = "budget"
		focus = "street food & local eateries"
	} else {
		optimizedAmount = originalAmount * mediumKeepPercent / 100
		savingsPercent = 100 - mediumKeepPercent
		selectedTier = "budget/mid-range"
		focus = "local cuisine & budget dining"
	}
	savingsAmount := originalAmount - optimizedAmount

	plan.AccommodationRecommendations = response_models.AccommodationSummary{
		PrimaryHotel:      selectedHotel,
		OptimizationLevel: level,
		BudgetOptions:     firstN(stays.Budget, 3),
		SelectedTier:      selectedTier,
	}
	plan.DiningRecommendations = response_models.DiningSummary{
		FeaturedRestaurants: firstN(selectedRestaurants, 6),
		OptimizationLevel:   level,
		Focus:               focus,
	}

	plan.EstimatedBudget = utils.FormatRupees(optimizedAmount)
	plan.OptimizationApplied = &response_models.OptimizationApplied{
		Level:             level,
		OriginalBudget:    utils.FormatRupees(originalAmount),
		OptimizedBudget:   utils.FormatRupees(optimizedAmount),
		Savings:           utils.FormatRupees(savingsAmount),
		SavingsPercentage: fmt.Sprintf("%d%%", savingsPercent),
	}

	for d := range plan.Days {
		day := &plan.Days[d]
		day.Accommodation.Name = selectedHotel
		day.Accommodation.Type = hotelType

		for a := range day.Activities {
			activity := &day.Activities[a]

			if activity.Hotel != "" {
				oldHotel := activity.Hotel
				activity.Hotel = selectedHotel
				activity.Description = strings.ReplaceAll(activity.Description, oldHotel, selectedHotel)
			}

			if activity.Restaurant != "" {
				newRestaurant := selectedRestaurants[titleHash(activity.Title)%uint32(len(selectedRestaurants))]
				oldRestaurant := activity.Restaurant

				activity.Restaurant = newRestaurant
				activity.Title = strings.ReplaceAll(activity.Title, oldRestaurant, newRestaurant)
				activity.Description = strings.ReplaceAll(activity.Description, oldRestaurant, newRestaurant)
			}
		}
	}

	plan.TravelTips = append([]string{
		fmt.Sprintf("Budget optimized for %d%% savings (%s)", savingsPercent, utils.FormatRupees(savingsAmount)),
		fmt.Sprintf("Accommodation: %s (%s)", selectedHotel, hotelType),
		fmt.Sprintf("Dining focus: %s", focus),
	}, appliedOptimizationTips[level]...)
}

func titleHash(title string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(title))
	return h.Sum32()
}
