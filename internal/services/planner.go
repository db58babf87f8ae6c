package services

import (
	"fmt"
	"math/rand"

	"moodtrip/internal/catalog"
	"moodtrip/internal/models/response_models"
	"moodtrip/pkg/utils"
)

// Budget split across spend categories, applied with integer truncation.
const (
	accommodationShare = 40
	foodShare          = 30
	transportShare     = 20
	activitiesShare    = 10
)

var fallbackRestaurants = []string{"Local Restaurant", "Traditional Eatery", "Regional Cuisine Restaurant"}

// buildPlan synthesizes a full day-by-day itinerary for a destination. Day 1
// is always the arrival template and the last day (when duration > 1) the
// departure template; days in between cycle through the destination's
// attractions and food spots.
func buildPlan(cat *catalog.Catalog, rng *rand.Rand, dest catalog.Destination, duration int) response_models.ItineraryPlan {
	dailyBudget, ok := utils.ParseDailyBudget(dest.Budget)
	if !ok {
		dailyBudget = utils.DefaultDailyBudget
	}

	stays, dining, _ := cat.StayAndDining(dest.Name)

	selectedHotel := "Comfort Hotel"
	if len(stays.MidRange) > 0 {
		selectedHotel = stays.MidRange[rng.Intn(len(stays.MidRange))]
	}

	var pool []string
	for _, category := range dining.Categories() {
		pool = append(pool, sampleStrings(rng, category, 2)...)
	}
	if len(pool) == 0 {
		pool = append(pool, fallbackRestaurants...)
	}

	days := make([]response_models.DayPlan, 0, duration)
	for day := 1; day <= duration; day++ {
		switch {
		case day == 1:
			days = append(days, arrivalDay(dest, selectedHotel, pool))
		case day == duration:
			days = append(days, departureDay(day, dest, selectedHotel, pool))
		default:
			days = append(days, explorationDay(day, dest, selectedHotel, pool))
		}
	}

	totalBudget := dailyBudget * duration
	breakdown := response_models.BudgetBreakdown{
		Accommodation:  totalBudget * accommodationShare / 100,
		Food:           totalBudget * foodShare / 100,
		Transportation: totalBudget * transportShare / 100,
		Activities:     totalBudget * activitiesShare / 100,
		Total:          totalBudget,
	}

	return response_models.ItineraryPlan{
		Destination:     dest.Name,
		Duration:        duration,
		BudgetRange:     dest.Budget,
		EstimatedBudget: utils.FormatRupees(totalBudget),
		BudgetBreakdown: breakdown,
		BestTime:        dest.BestTime,
		Days:            days,
		AccommodationRecommendations: response_models.AccommodationSummary{
			PrimaryHotel:    selectedHotel,
			BudgetOptions:   firstN(stays.Budget, 3),
			MidRangeOptions: firstN(stays.MidRange, 3),
			LuxuryOptions:   firstN(stays.Luxury, 3),
		},
		DiningRecommendations: response_models.DiningSummary{
			FeaturedRestaurants: firstN(pool, 6),
			FineDining:          firstN(dining.FineDining, 3),
			LocalCuisine:        firstN(dining.LocalCuisine, 3),
			StreetFood:          firstN(dining.StreetFood, 3),
		},
		TravelTips: []string{
			fmt.Sprintf("Best time to visit: %s", dest.BestTime),
			fmt.Sprintf("Estimated budget: %s for %d days", utils.FormatRupees(totalBudget), duration),
			fmt.Sprintf("Recommended accommodation: %s (Mid-range option)", selectedHotel),
			"Book accommodations in advance during peak season",
			"Try local transportation for authentic experience",
			"Keep some cash handy for local vendors and street food",
			"Respect local customs and traditions",
			"Don't forget to try the recommended local restaurants!",
			"Ask hotel staff for additional local restaurant recommendations",
		},
	}
}

func arrivalDay(dest catalog.Destination, hotel string, pool []string) response_models.DayPlan {
	lunch := elementOr(pool, 0, "Local Restaurant")
	dinner := elementOr(pool, 1, "Traditional Eatery")
	firstFood := elementOr(dest.Food, 0, "local specialties")
	secondFood := elementOr(dest.Food, 1, "regional specialties")
	firstAttraction := elementOr(dest.Attractions, 0, "City Center")
	firstAttractionDesc := elementOr(dest.Attractions, 0, "main attractions")

	activities := []response_models.Activity{
		{
			Time:        "10:00 AM",
			Title:       "Arrival & Check-in",
			Description: fmt.Sprintf("Arrive at destination, check into %s, freshen up and get oriented", hotel),
			Tags:        []string{"Travel", "Accommodation"},
			Hotel:       hotel,
		},
		{
			Time:        "12:00 PM",
			Title:       fmt.Sprintf("Lunch at %s", lunch),
			Description: fmt.Sprintf("Welcome lunch at %s - try %s and authentic regional flavors", lunch, firstFood),
			Tags:        []string{"Food", "Culture"},
			Restaurant:  lunch,
		},
		{
			Time:        "2:00 PM",
			Title:       fmt.Sprintf("Visit %s", firstAttraction),
			Description: fmt.Sprintf("Explore the famous %s, take photos, learn about local history and culture", firstAttractionDesc),
			Tags:        []string{"Sightseeing", "Photography"},
		},
		{
			Time:        "5:00 PM",
			Title:       "Evening Walk & Local Shopping",
			Description: "Leisurely walk around the area, interact with locals, shop for souvenirs and local handicrafts",
			Tags:        []string{"Walking", "Shopping"},
		},
		{
			Time:        "7:30 PM",
			Title:       fmt.Sprintf("Dinner at %s", dinner),
			Description: fmt.Sprintf("Evening dinner at %s featuring %s, experience authentic local dining culture", dinner, secondFood),
			Tags:        []string{"Food", "Culture"},
			Restaurant:  dinner,
		},
	}

	return response_models.DayPlan{
		Day:        1,
		Title:      fmt.Sprintf("Arrival Day - Welcome to %s", dest.Name),
		Activities: activities,
		Accommodation: response_models.Accommodation{
			Name: hotel,
			Type: "Mid-range Hotel",
		},
	}
}

func departureDay(day int, dest catalog.Destination, hotel string, pool []string) response_models.DayPlan {
	checkoutRestaurant := "Local Farewell Restaurant"
	if len(pool) > 0 {
		checkoutRestaurant = pool[(day-1)%len(pool)]
	}

	finalAttraction := "Local Market"
	finalAttractionDesc := "nearby attractions"
	if len(dest.Attractions) > 1 {
		finalAttraction = dest.Attractions[len(dest.Attractions)-1]
		finalAttractionDesc = finalAttraction
	}

	activities := []response_models.Activity{
		{
			Time:        "8:00 AM",
			Title:       "Early Morning Leisure",
			Description: fmt.Sprintf("Final peaceful moments at %s, pack essentials, prepare for departure", hotel),
			Tags:        []string{"Relaxation", "Travel"},
			Hotel:       hotel,
		},
		{
			Time:        "10:00 AM",
			Title:       fmt.Sprintf("Final Visit - %s", finalAttraction),
			Description: fmt.Sprintf("Last exploration of %s, capture final memorable photos", finalAttractionDesc),
			Tags:        []string{"Sightseeing", "Photography"},
		},
		{
			Time:        "12:00 PM",
			Title:       fmt.Sprintf("Check-out & Farewell Lunch at %s", checkoutRestaurant),
			Description: fmt.Sprintf("Hotel check-out from %s, final local meal at %s, gather belongings and memories", hotel, checkoutRestaurant),
			Tags:        []string{"Travel", "Food"},
			Hotel:       hotel,
			Restaurant:  checkoutRestaurant,
		},
		{
			Time:        "2:00 PM",
			Title:       "Last-minute Shopping & Souvenirs",
			Description: "Buy souvenirs, local handicrafts, gifts for family and friends, final local market exploration",
			Tags:        []string{"Shopping", "Souvenirs"},
		},
		{
			Time:        "4:00 PM",
			Title:       "Departure Journey",
			Description: "Head to airport/station, bid farewell to this beautiful destination with wonderful memories",
			Tags:        []string{"Travel", "Departure"},
		},
	}

	return response_models.DayPlan{
		Day:        day,
		Title:      fmt.Sprintf("Departure Day - Farewell %s", dest.Name),
		Activities: activities,
		Accommodation: response_models.Accommodation{
			Name:     hotel,
			Type:     "Mid-range Hotel",
			Checkout: true,
		},
	}
}

func explorationDay(day int, dest catalog.Destination, hotel string, pool []string) response_models.DayPlan {
	attraction := "Local Attractions"
	if len(dest.Attractions) > 0 {
		attraction = dest.Attractions[(day-1)%len(dest.Attractions)]
	}
	food := "local cuisine"
	if len(dest.Food) > 0 {
		food = dest.Food[(day-1)%len(dest.Food)]
	}

	lunch := fmt.Sprintf("Local %s Restaurant", food)
	dinner := "Traditional Evening Restaurant"
	if len(pool) > 0 {
		lunch = pool[(day-1)*2%len(pool)]
		dinner = pool[((day-1)*2+1)%len(pool)]
	}

	activities := []response_models.Activity{
		{
			Time:        "9:00 AM",
			Title:       fmt.Sprintf("Morning at %s", attraction),
			Description: fmt.Sprintf("Explore %s, learn about its fascinating history and cultural significance", attraction),
			Tags:        []string{"Sightseeing", "Culture"},
		},
		{
			Time:        "11:30 AM",
			Title:       "Photography & Hidden Gems",
			Description: fmt.Sprintf("Capture beautiful moments at %s, explore hidden gems and secret spots around the area", attraction),
			Tags:        []string{"Photography", "Exploration"},
		},
		{
			Time:        "1:00 PM",
			Title:       fmt.Sprintf("Lunch at %s", lunch),
			Description: fmt.Sprintf("Enjoy delicious %s at %s, experience authentic local flavors and traditional cooking styles", food, lunch),
			Tags:        []string{"Food", "Culture"},
			Restaurant:  lunch,
		},
		{
			Time:        "3:00 PM",
			Title:       "Afternoon Adventure & Personal Time",
			Description: "Free time for personal exploration, shopping for local crafts, or relaxation as per your preference",
			Tags:        []string{"Free Time", "Flexible"},
		},
		{
			Time:        "6:00 PM",
			Title:       "Evening Relaxation & Sunset Views",
			Description: "Unwind at scenic spots, enjoy beautiful sunset views, interact with friendly locals, cultural immersion experience",
			Tags:        []string{"Relaxation", "Culture"},
		},
		{
			Time:        "8:00 PM",
			Title:       fmt.Sprintf("Dinner at %s & Night Experience", dinner),
			Description: fmt.Sprintf("Traditional dinner at %s, experience local nightlife, cultural performances and entertainment if available", dinner),
			Tags:        []string{"Food", "Entertainment"},
			Restaurant:  dinner,
		},
	}

	return response_models.DayPlan{
		Day:        day,
		Title:      fmt.Sprintf("Day %d - Exploring %s", day, attraction),
		Activities: activities,
		Accommodation: response_models.Accommodation{
			Name: hotel,
			Type: "Mid-range Hotel",
		},
	}
}

// sampleStrings picks up to n distinct elements in random order.
func sampleStrings(rng *rand.Rand, list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	if n == 0 {
		return nil
	}
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(list))[:n] {
		picked = append(picked, list[idx])
	}
	return picked
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func elementOr(list []string, idx int, fallback string) string {
	if idx < len(list) {
		return list[idx]
	}
	return fallback
}
