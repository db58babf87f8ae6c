package catalog

// Curated destination lists per mood. Loaded once at process start and never
// mutated afterwards; every caller receives the same backing slices.
var moodDestinations = map[Mood][]Destination{
	MoodCalm: {
		{
			Name:        "Kerala Backwaters",
			Description: "Serene houseboat experiences in Alleppey",
			BestTime:    "October to March",
			Budget:      "₹8,000-15,000 per day",
			Attractions: []string{"Houseboat cruise", "Kumarakom Bird Sanctuary", "Vembanad Lake"},
			Food:        []string{"Fish curry", "Appam", "Karimeen fry"},
		},
		{
			Name:        "Coorg, Karnataka",
			Description: "Coffee plantations and misty hills",
			BestTime:    "October to March",
			Budget:      "₹5,000-10,000 per day",
			Attractions: []string{"Coffee plantations", "Abbey Falls", "Raja's Seat"},
			Food:        []string{"Pandi curry", "Bamboo shoot curry", "Coorg coffee"},
		},
		{
			Name:        "Rishikesh, Uttarakhand",
			Description: "Yoga capital with Ganges views",
			BestTime:    "September to November, March to April",
			Budget:      "₹3,000-8,000 per day",
			Attractions: []string{"Laxman Jhula", "Beatles Ashram", "Ganges Aarti"},
			Food:        []string{"Chole bhature", "Aloo puri", "Lassi"},
		},
	},
	MoodExcited: {
		{
			Name:        "Goa",
			Description: "Beaches, nightlife, and Portuguese heritage",
			BestTime:    "November to February",
			Budget:      "₹4,000-12,000 per day",
			Attractions: []string{"Baga Beach", "Dudhsagar Falls", "Old Goa Churches"},
			Food:        []string{"Fish curry rice", "Bebinca", "Feni"},
		},
		{
			Name:        "Manali, Himachal Pradesh",
			Description: "Adventure sports and mountain views",
			BestTime:    "May to October",
			Budget:      "₹5,000-10,000 per day",
			Attractions: []string{"Rohtang Pass", "Solang Valley", "Hadimba Temple"},
			Food:        []string{"Dham", "Trout fish", "Apple-based dishes"},
		},
		{
			Name:        "Rann of Kutch, Gujarat",
			Description: "White salt desert and cultural festivals",
			BestTime:    "November to February",
			Budget:      "₹6,000-15,000 per day",
			Attractions: []string{"White Rann", "Kutch Festival", "Wild Ass Sanctuary"},
			Food:        []string{"Gujarati thali", "Kutchi dabeli", "Khaman"},
		},
	},
	MoodRomantic: {
		{
			Name:        "Udaipur, Rajasthan",
			Description: "City of lakes and royal palaces",
			BestTime:    "September to March",
			Budget:      "₹8,000-20,000 per day",
			Attractions: []string{"Lake Pichola", "City Palace", "Jag Mandir"},
			Food:        []string{"Dal baati churma", "Laal maas", "Ghewar"},
		},
		{
			Name:        "Ooty, Tamil Nadu",
			Description: "Hill station with tea gardens",
			BestTime:    "April to June, September to November",
			Budget:      "₹4,000-10,000 per day",
			Attractions: []string{"Botanical Gardens", "Ooty Lake", "Tea Museum"},
			Food:        []string{"South Indian breakfast", "Ooty chocolate", "Nilgiri tea"},
		},
		{
			Name:        "Alleppey, Kerala",
			Description: "Venice of the East with backwaters",
			BestTime:    "October to March",
			Budget:      "₹10,000-25,000 per day",
			Attractions: []string{"Backwater cruise", "Alappuzha Beach", "Marari Beach"},
			Food:        []string{"Karimeen curry", "Appam", "Coconut-based dishes"},
		},
	},
	MoodAdventurous: {
		{
			Name:        "Leh-Ladakh, Jammu & Kashmir",
			Description: "High-altitude desert with stunning landscapes",
			BestTime:    "June to September",
			Budget:      "₹8,000-18,000 per day",
			Attractions: []string{"Pangong Lake", "Nubra Valley", "Magnetic Hill"},
			Food:        []string{"Thukpa", "Momos", "Butter tea"},
		},
		{
			Name:        "Spiti Valley, Himachal Pradesh",
			Description: "Cold desert mountain valley",
			BestTime:    "May to October",
			Budget:      "₹6,000-12,000 per day",
			Attractions: []string{"Key Monastery", "Chandratal Lake", "Pin Valley"},
			Food:        []string{"Tibetan cuisine", "Yak cheese", "Local barley dishes"},
		},
		{
			Name:        "Rishikesh, Uttarakhand",
			Description: "Adventure sports and river rafting",
			BestTime:    "September to November, March to May",
			Budget:      "₹4,000-10,000 per day",
			Attractions: []string{"River rafting", "Bungee jumping", "Trekking trails"},
			Food:        []string{"North Indian vegetarian", "Street food", "Organic cafe food"},
		},
	},
	MoodStressed: {
		{
			Name:        "Munnar, Kerala",
			Description: "Tea plantations and cool climate",
			BestTime:    "September to March",
			Budget:      "₹5,000-12,000 per day",
			Attractions: []string{"Tea gardens", "Mattupetty Dam", "Eravikulam National Park"},
			Food:        []string{"Kerala cuisine", "Tea", "Spice-based dishes"},
		},
		{
			Name:        "Dharamshala, Himachal Pradesh",
			Description: "Peaceful hill station with Tibetan culture",
			BestTime:    "March to June, September to December",
			Budget:      "₹3,000-8,000 per day",
			Attractions: []string{"McLeod Ganj", "Bhagsu Waterfall", "Norbulingka Institute"},
			Food:        []string{"Tibetan cuisine", "Momos", "Thukpa"},
		},
		{
			Name:        "Pushkar, Rajasthan",
			Description: "Sacred town with serene lake",
			BestTime:    "October to March",
			Budget:      "₹3,000-7,000 per day",
			Attractions: []string{"Pushkar Lake", "Brahma Temple", "Camel safari"},
			Food:        []string{"Rajasthani vegetarian", "Malpua", "Lassi"},
		},
	},
	MoodHappy: {
		{
			Name:        "Mumbai, Maharashtra",
			Description: "City of dreams with vibrant culture",
			BestTime:    "November to February",
			Budget:      "₹5,000-15,000 per day",
			Attractions: []string{"Marine Drive", "Gateway of India", "Bollywood studios"},
			Food:        []string{"Vada pav", "Pav bhaji", "Street food"},
		},
		{
			Name:        "Jaipur, Rajasthan",
			Description: "Pink City with royal heritage",
			BestTime:    "October to March",
			Budget:      "₹4,000-12,000 per day",
			Attractions: []string{"Hawa Mahal", "Amber Fort", "City Palace"},
			Food:        []string{"Dal baati churma", "Ghewar", "Rajasthani thali"},
		},
		{
			Name:        "Hampi, Karnataka",
			Description: "Ancient ruins and historical significance",
			BestTime:    "October to February",
			Budget:      "₹2,500-6,000 per day",
			Attractions: []string{"Virupaksha Temple", "Stone Chariot", "Hippie Island"},
			Food:        []string{"South Indian meals", "Coconut-based dishes", "Local Karnataka cuisine"},
		},
	},
}
