package planner

import (
	"fmt"
	"strings"

	"tripweaver/internal/app/models"
)

// buildPrompt composes the natural-language instruction for one
// submission. The structural shape of the answer is carried by the
// response schema, not by the prompt.
func buildPrompt(prefs models.TripPreferences) string {
	interests := "general sightseeing"
	if len(prefs.Interests) > 0 {
		interests = strings.Join(prefs.Interests, ", ")
	}

	return fmt.Sprintf(`Create a %d-day %s style trip to %s in %s.
Interests: %s.

Return STRICT JSON.
- Currency: use the destination's local currency code.
- Budget: realistic numbers for the current year, covering accommodation, food, transportation, activities and misc.
- Itinerary: one entry per day with a detailed and logical flow, plus lunch and dinner suggestions.
- Hotels: a few suggestions matching the %s budget tier, each with a price range.
- best_month_analysis: compare %s against the ideal time to visit %s.
- Include places to visit, food recommendations, a packing list and travel tips.`,
		prefs.Days, prefs.Budget, prefs.Destination, prefs.Month,
		interests,
		prefs.Budget,
		prefs.Month, prefs.Destination)
}
