package models

// TripPlan is the validated, structured itinerary returned by the
// generation service. Field names mirror the response schema exactly;
// the schema and this struct must never drift apart.
type TripPlan struct {
	Destination         string          `json:"destination"`
	Duration            string          `json:"duration"`
	Summary             string          `json:"summary"`
	BestMonthAnalysis   string          `json:"best_month_analysis"`
	Itinerary           []ItineraryDay  `json:"itinerary"`
	Budget              BudgetBreakdown `json:"budget"`
	Hotels              []Hotel         `json:"hotels"`
	PlacesToVisit       []Place         `json:"places_to_visit"`
	FoodRecommendations []string        `json:"food_recommendations"`
	PackingList         []string        `json:"packing_list"`
	TravelTips          []string        `json:"travel_tips"`
}

// ItineraryDay is one day of the plan. Day is 1-based and must match the
// day's position in the itinerary slice.
type ItineraryDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
	Meals      Meals    `json:"meals"`
}

type Meals struct {
	Lunch  string `json:"lunch"`
	Dinner string `json:"dinner"`
}

// BudgetBreakdown carries the five spending categories plus the total as
// reported by the generation service. Total is displayed as received and
// never recomputed from the categories.
type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
	Misc           float64 `json:"misc"`
	Currency       string  `json:"currency"`
	Total          float64 `json:"total"`
}

type Hotel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
}

type Place struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
