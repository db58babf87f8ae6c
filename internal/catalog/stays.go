package catalog

// Region keys for the stay/dining tables. Destination names are matched
// against these by case-insensitive substring in either direction, first
// match wins, so the slice order is part of the contract.
var regionOrder = []string{
	"Goa",
	"Kerala",
	"Rajasthan",
	"Himachal Pradesh",
	"Karnataka",
	"Maharashtra",
	"Tamil Nadu",
}

var regionStays = map[string]StayTiers{
	"Goa": {
		Luxury:   []string{"Taj Exotica Resort & Spa", "The Leela Goa", "Grand Hyatt Goa"},
		MidRange: []string{"Novotel Goa Resort & Spa", "Holiday Inn Resort Goa", "Radisson Blu Resort Goa"},
		Budget:   []string{"OYO Hotels Goa", "Zostel Goa", "Backpacker Panda Goa"},
	},
	"Kerala": {
		Luxury:   []string{"Kumarakom Lake Resort", "Taj Green Cove Resort & Spa", "The Leela Kovalam"},
		MidRange: []string{"Fragrant Nature Backwater Resort", "Spice Village CGH Earth", "Casino Hotel Kochi"},
		Budget:   []string{"Kochi Backpackers", "Zostel Vashisht", "Green Woods Bethlehem"},
	},
	"Rajasthan": {
		Luxury:   []string{"Taj Lake Palace Udaipur", "The Oberoi Udaivilas", "Rambagh Palace Jaipur"},
		MidRange: []string{"Hotel Haveli Inn Pal", "Umaid Bhawan Palace", "Tree of Life Resort & Spa"},
		Budget:   []string{"Zostel Jaipur", "Moustache Hostel Jaipur", "Backpacker Panda Jaipur"},
	},
	"Himachal Pradesh": {
		Luxury:   []string{"The Oberoi Cecil Shimla", "Wildflower Hall Shimla", "Fortune Park Dalhousie"},
		MidRange: []string{"Hotel Snow Valley Resorts", "Apple Country Resort Manali", "Hotel Hilltop Shimla"},
		Budget:   []string{"Zostel Manali", "Backpacker Panda Kasol", "The Hosteller Manali"},
	},
	"Karnataka": {
		Luxury:   []string{"Taj West End Bangalore", "The Serai Bandipur", "Evolve Back Coorg"},
		MidRange: []string{"Club Mahindra Coorg", "Hotel Mayura Hoysala", "The Gateway Hotel KR Road"},
		Budget:   []string{"Zostel Bangalore", "Backpacker Panda Hampi", "Gokarna International Beach Resort"},
	},
	"Maharashtra": {
		Luxury:   []string{"The Taj Mahal Palace Mumbai", "JW Marriott Mumbai", "The St. Regis Mumbai"},
		MidRange: []string{"Hotel Sahyadri Pune", "Lemon Tree Hotel Mumbai", "The Pride Hotel Pune"},
		Budget:   []string{"Zostel Mumbai", "Backpacker Panda Lonavala", "YMCA Mumbai"},
	},
	"Tamil Nadu": {
		Luxury:   []string{"Taj Fisherman's Cove Chennai", "The Leela Palace Chennai", "Fortune Resort Bay Island"},
		MidRange: []string{"Hotel Sangam Thanjavur", "GRT Grand Chennai", "Sterling Yelagiri"},
		Budget:   []string{"Zostel Pondicherry", "Backpacker Panda Kodaikanal", "Hotel Saravana Bhavan Lodge"},
	},
}

var regionDining = map[string]DiningGuide{
	"Goa": {
		FineDining:    []string{"Thalassa", "La Plage", "Bomra's"},
		LocalCuisine:  []string{"Vinayak Family Restaurant", "Mum's Kitchen", "Fish Curry Rice"},
		StreetFood:    []string{"Goa Bhel", "Bebinca Cafe", "Cafe Chocolatti"},
		SpecialtyName: "beach_shacks",
		Specialty:     []string{"Curlies Beach Shack", "Shiva Valley", "Anjuna Beach Restaurant"},
	},
	"Kerala": {
		FineDining:    []string{"Dhe Puttu", "Casino Hotel Restaurant", "The Rice Boat"},
		LocalCuisine:  []string{"Saravana Bhavan", "Aryaas Restaurant", "Hotel Rahmath"},
		StreetFood:    []string{"Kozhikode Biryani Stall", "Ernakulam Food Street", "Kochi Spice Market"},
		SpecialtyName: "backwater_dining",
		Specialty:     []string{"Backwater Ripples", "Lake Palace Restaurant", "Coconut Lagoon"},
	},
	"Rajasthan": {
		FineDining:    []string{"1135 AD Restaurant", "Ambrai Restaurant", "Handi Restaurant"},
		LocalCuisine:  []string{"Chokhi Dhani", "Laxmi Misthan Bhandar", "Rawat Mishtan Bhandar"},
		StreetFood:    []string{"Johri Bazaar Food Street", "Bapu Bazaar", "Clock Tower Market"},
		SpecialtyName: "rooftop_dining",
		Specialty:     []string{"Upre Restaurant", "Sky Deck Lounge", "Sunset Terrace"},
	},
	"Himachal Pradesh": {
		FineDining:    []string{"The Restaurant at Wildflower Hall", "Eighteen71 Cookhouse & Bar", "Wake & Bake Cafe"},
		LocalCuisine:  []string{"Sher-e-Punjab", "Johnson Cafe", "Cafe 1947"},
		StreetFood:    []string{"Mall Road Food Stalls", "Manali Market", "Old Manali Cafes"},
		SpecialtyName: "mountain_cafes",
		Specialty:     []string{"Moon Dance Cafe", "German Bakery Kasol", "Evergreen Cafe"},
	},
	"Karnataka": {
		FineDining:    []string{"Karavalli", "Toit Brewpub", "The Only Place"},
		LocalCuisine:  []string{"MTR Restaurant", "Vidyarthi Bhavan", "Brahmin's Coffee Bar"},
		StreetFood:    []string{"VV Puram Food Street", "Commercial Street Eateries", "Russell Market"},
		SpecialtyName: "coastal_cuisine",
		Specialty:     []string{"Gokarna Beach Restaurants", "Udupi Krishna Bhavan", "Fisherman's Wharf"},
	},
	"Maharashtra": {
		FineDining:    []string{"Trishna", "The Table", "Indigo Delicatessen"},
		LocalCuisine:  []string{"Britannia & Co.", "Cafe Madras", "Hotel Goodluck"},
		StreetFood:    []string{"Mohammed Ali Road", "Juhu Beach Chaat", "Crawford Market"},
		SpecialtyName: "hill_station",
		Specialty:     []string{"Hotel Chandralok Lonavala", "Rama Krishna Restaurant", "German Bakery Pune"},
	},
	"Tamil Nadu": {
		FineDining:    []string{"Dakshin Restaurant", "Benjarong", "Peshawri"},
		LocalCuisine:  []string{"Murugan Idli Shop", "Saravana Bhavan", "Hotel Junior Kuppanna"},
		StreetFood:    []string{"Marina Beach Food Stalls", "T Nagar Food Street", "Pondy Bazaar"},
		SpecialtyName: "temple_food",
		Specialty:     []string{"Annapoorna Restaurant", "Amma Unavagam", "Krishna Sweets"},
	},
}

// Generic fallbacks for destinations outside the curated regions.
var defaultStays = StayTiers{
	Luxury:   []string{"Premium Heritage Hotel", "Luxury Resort & Spa", "Grand Palace Hotel"},
	MidRange: []string{"Comfort Inn Hotel", "Best Western Hotel", "Holiday Resort"},
	Budget:   []string{"OYO Hotels", "Budget Backpacker Hostel", "Economy Lodge"},
}

var defaultDining = DiningGuide{
	FineDining:    []string{"Premium Fine Dining Restaurant", "Luxury Multi-Cuisine Restaurant"},
	LocalCuisine:  []string{"Local Traditional Restaurant", "Authentic Regional Cuisine"},
	StreetFood:    []string{"Local Food Street", "Traditional Market Eateries"},
	SpecialtyName: "cafes",
	Specialty:     []string{"Local Coffee House", "Traditional Tea Stall"},
}
