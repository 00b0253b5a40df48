package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/app/models"
)

func fixturePlan() *models.TripPlan {
	return &models.TripPlan{
		Destination:       "Lisbon",
		Duration:          "4 Days",
		Summary:           "Hills, tiles and pastel de nata.",
		BestMonthAnalysis: "May has mild weather and fewer crowds.",
		Itinerary: []models.ItineraryDay{
			{Day: 1, Title: "Alfama", Activities: []string{"Castle", "Fado show"}, Meals: models.Meals{Lunch: "Tasca", Dinner: "Marisqueira"}},
			{Day: 2, Title: "Belém", Activities: []string{"Monastery"}, Meals: models.Meals{Lunch: "Pastéis", Dinner: "Ramiro"}},
		},
		Budget: models.BudgetBreakdown{
			Accommodation:  400,
			Food:           300,
			Transportation: 100,
			Activities:     150,
			Misc:           50,
			Currency:       "EUR",
			Total:          1000,
		},
		Hotels:              []models.Hotel{{Name: "Casa do Bairro", Description: "Small guesthouse.", PriceRange: "80-120 EUR"}},
		PlacesToVisit:       []models.Place{{Name: "LX Factory", Description: "Creative hub under the bridge."}},
		FoodRecommendations: []string{"Bacalhau", "Bifana", "Ginjinha"},
		PackingList:         []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		TravelTips:          []string{"Validate transit tickets"},
	}
}

func TestRender_Deterministic(t *testing.T) {
	plan := fixturePlan()
	first := Render(plan)
	second := Render(plan)
	assert.Equal(t, first, second, "same plan must yield structurally identical views")
}

func TestRender_Itinerary(t *testing.T) {
	view := Render(fixturePlan())

	require.Len(t, view.Itinerary, 2)
	assert.Equal(t, 1, view.Itinerary[0].Day)
	assert.Equal(t, "Alfama", view.Itinerary[0].Title)
	assert.Equal(t, []string{"Castle", "Fado show"}, view.Itinerary[0].Activities)
	assert.Equal(t, "Tasca", view.Itinerary[0].Lunch)
	assert.Equal(t, "Marisqueira", view.Itinerary[0].Dinner)
}

func TestRender_Budget(t *testing.T) {
	t.Run("segments are proportional and ordered", func(t *testing.T) {
		view := Render(fixturePlan())
		section := view.Budget

		require.Len(t, section.Segments, 5)
		labels := make([]string, 0, 5)
		var percentSum float64
		for _, seg := range section.Segments {
			labels = append(labels, seg.Label)
			percentSum += seg.Percent
		}
		assert.Equal(t, []string{"Accommodation", "Food", "Transportation", "Activities", "Misc"}, labels)
		assert.InDelta(t, 100, percentSum, 0.001)
		assert.InDelta(t, 40, section.Segments[0].Percent, 0.001)
		assert.Equal(t, "EUR", section.Currency)
	})

	t.Run("total is echoed as received even when inconsistent", func(t *testing.T) {
		plan := fixturePlan()
		plan.Budget.Total = 999999
		view := Render(plan)
		assert.Equal(t, float64(999999), view.Budget.Total)
	})

	t.Run("zero category is kept", func(t *testing.T) {
		plan := fixturePlan()
		plan.Budget.Misc = 0
		view := Render(plan)
		require.Len(t, view.Budget.Segments, 5)
		assert.Equal(t, "Misc", view.Budget.Segments[4].Label)
		assert.Zero(t, view.Budget.Segments[4].Percent)
	})

	t.Run("all-zero breakdown renders a neutral chart", func(t *testing.T) {
		plan := fixturePlan()
		plan.Budget = models.BudgetBreakdown{Currency: "EUR"}
		view := Render(plan)
		require.Len(t, view.Budget.Segments, 5)
		for _, seg := range view.Budget.Segments {
			assert.Zero(t, seg.Value)
			assert.Zero(t, seg.Percent)
		}
	})
}

func TestRender_Truncation(t *testing.T) {
	t.Run("long list shows limit items plus remainder", func(t *testing.T) {
		view := Render(fixturePlan())

		assert.Len(t, view.Packing.Items, SummaryListLimit)
		assert.Equal(t, 2, view.Packing.MoreCount)
		assert.Len(t, view.Packing.Full, 8, "export path keeps the full list")
	})

	t.Run("short list is untouched", func(t *testing.T) {
		view := Render(fixturePlan())

		assert.Equal(t, []string{"Validate transit tickets"}, view.Tips.Items)
		assert.Zero(t, view.Tips.MoreCount)
	})

	t.Run("boundary list of exactly limit items has no remainder", func(t *testing.T) {
		plan := fixturePlan()
		plan.PackingList = plan.PackingList[:SummaryListLimit]
		view := Render(plan)

		assert.Len(t, view.Packing.Items, SummaryListLimit)
		assert.Zero(t, view.Packing.MoreCount)
	})

	t.Run("truncation law holds across sizes", func(t *testing.T) {
		for n := 0; n <= 10; n++ {
			plan := fixturePlan()
			plan.TravelTips = nil
			for i := 0; i < n; i++ {
				plan.TravelTips = append(plan.TravelTips, fmt.Sprintf("tip %d", i))
			}
			view := Render(plan)

			wantShown := n
			if wantShown > SummaryListLimit {
				wantShown = SummaryListLimit
			}
			assert.Len(t, view.Tips.Items, wantShown, "n=%d", n)
			assert.Equal(t, n-wantShown, view.Tips.MoreCount, "n=%d", n)
			assert.Len(t, view.Tips.Full, n, "n=%d", n)
		}
	})
}

func TestRender_Cards(t *testing.T) {
	view := Render(fixturePlan())

	require.Len(t, view.Hotels, 1)
	assert.Equal(t, "Casa do Bairro", view.Hotels[0].Name)
	assert.Equal(t, "80-120 EUR", view.Hotels[0].PriceRange)

	require.Len(t, view.Places, 1)
	assert.Equal(t, "LX Factory", view.Places[0].Name)
}
