package render

import "tripweaver/internal/app/models"

// SummaryListLimit is how many packing list, travel tip and food
// recommendation entries the result screen shows before collapsing the
// rest behind a "+N more" indicator. Export always uses the full lists.
const SummaryListLimit = 6

// RenderedView is the display-technology independent projection of a
// TripPlan: the visual sections in render order, ready for a template,
// a JSON client or the PDF exporter.
type RenderedView struct {
	Destination       string         `json:"destination"`
	Duration          string         `json:"duration"`
	Summary           string         `json:"summary"`
	BestMonthAnalysis string         `json:"best_month_analysis"`
	Itinerary         []DayBlock     `json:"itinerary"`
	Budget            BudgetSection  `json:"budget"`
	Hotels            []HotelCard    `json:"hotels"`
	Places            []PlaceCard    `json:"places"`
	Food              TruncatedList  `json:"food_recommendations"`
	Packing           TruncatedList  `json:"packing_list"`
	Tips              TruncatedList  `json:"travel_tips"`
}

type DayBlock struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
	Lunch      string   `json:"lunch"`
	Dinner     string   `json:"dinner"`
}

// BudgetSection drives the proportional budget chart. Total and Currency
// are echoed exactly as received; the segment percentages are derived
// from the category sum, not from Total, so an inconsistent Total from
// the service still renders.
type BudgetSection struct {
	Segments []ChartSegment `json:"segments"`
	Total    float64        `json:"total"`
	Currency string         `json:"currency"`
}

// ChartSegment is one category slice. Percent is the share of the
// category sum, 0 when every category is 0.
type ChartSegment struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type HotelCard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
}

type PlaceCard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TruncatedList is a summary prefix of a full list. Items holds at most
// SummaryListLimit entries and MoreCount the hidden remainder.
type TruncatedList struct {
	Items     []string `json:"items"`
	Full      []string `json:"full"`
	MoreCount int      `json:"more_count"`
}

// Render projects a validated TripPlan into its visual sections. It is
// pure and total: the same plan always yields the same view, and a plan
// that passed the generation boundary's validation can never fail here.
func Render(plan *models.TripPlan) *RenderedView {
	view := &RenderedView{
		Destination:       plan.Destination,
		Duration:          plan.Duration,
		Summary:           plan.Summary,
		BestMonthAnalysis: plan.BestMonthAnalysis,
		Itinerary:         make([]DayBlock, 0, len(plan.Itinerary)),
		Budget:            budgetSection(plan.Budget),
		Hotels:            make([]HotelCard, 0, len(plan.Hotels)),
		Places:            make([]PlaceCard, 0, len(plan.PlacesToVisit)),
		Food:              truncate(plan.FoodRecommendations),
		Packing:           truncate(plan.PackingList),
		Tips:              truncate(plan.TravelTips),
	}

	for _, day := range plan.Itinerary {
		view.Itinerary = append(view.Itinerary, DayBlock{
			Day:        day.Day,
			Title:      day.Title,
			Activities: append([]string(nil), day.Activities...),
			Lunch:      day.Meals.Lunch,
			Dinner:     day.Meals.Dinner,
		})
	}
	for _, hotel := range plan.Hotels {
		view.Hotels = append(view.Hotels, HotelCard(hotel))
	}
	for _, place := range plan.PlacesToVisit {
		view.Places = append(view.Places, PlaceCard(place))
	}

	return view
}

func budgetSection(b models.BudgetBreakdown) BudgetSection {
	segments := []ChartSegment{
		{Label: "Accommodation", Value: b.Accommodation},
		{Label: "Food", Value: b.Food},
		{Label: "Transportation", Value: b.Transportation},
		{Label: "Activities", Value: b.Activities},
		{Label: "Misc", Value: b.Misc},
	}

	var sum float64
	for _, seg := range segments {
		sum += seg.Value
	}
	// All-zero breakdown renders a neutral chart: five segments at 0%.
	if sum > 0 {
		for i := range segments {
			segments[i].Percent = segments[i].Value / sum * 100
		}
	}

	return BudgetSection{
		Segments: segments,
		Total:    b.Total,
		Currency: b.Currency,
	}
}

func truncate(items []string) TruncatedList {
	full := append([]string(nil), items...)
	list := TruncatedList{Full: full}
	if len(full) > SummaryListLimit {
		list.Items = full[:SummaryListLimit]
		list.MoreCount = len(full) - SummaryListLimit
	} else {
		list.Items = full
	}
	return list
}
