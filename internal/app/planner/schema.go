package planner

import "google.golang.org/genai"

// tripPlanSchema is the structural contract imposed on the generation
// service. It is sent with every request as the response schema and is
// the single source of truth for the shape of models.TripPlan: the two
// must be kept in lockstep.
var tripPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"destination":         {Type: genai.TypeString},
		"duration":            {Type: genai.TypeString},
		"summary":             {Type: genai.TypeString},
		"best_month_analysis": {Type: genai.TypeString},
		"itinerary": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":        {Type: genai.TypeInteger},
					"title":      {Type: genai.TypeString},
					"activities": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"meals": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"lunch":  {Type: genai.TypeString},
							"dinner": {Type: genai.TypeString},
						},
					},
				},
				Required: []string{"day", "title", "activities", "meals"},
			},
		},
		"budget": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"accommodation":  {Type: genai.TypeNumber},
				"food":           {Type: genai.TypeNumber},
				"transportation": {Type: genai.TypeNumber},
				"activities":     {Type: genai.TypeNumber},
				"misc":           {Type: genai.TypeNumber},
				"currency":       {Type: genai.TypeString},
				"total":          {Type: genai.TypeNumber},
			},
			Required: []string{"accommodation", "food", "transportation", "activities", "misc", "currency", "total"},
		},
		"hotels": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"price_range": {Type: genai.TypeString},
				},
				Required: []string{"name", "description", "price_range"},
			},
		},
		"places_to_visit": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
				},
				Required: []string{"name", "description"},
			},
		},
		"food_recommendations": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"packing_list":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"travel_tips":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{
		"destination", "duration", "summary", "best_month_analysis",
		"itinerary", "budget", "hotels", "places_to_visit",
		"food_recommendations", "packing_list", "travel_tips",
	},
}

// PlanSchema returns the response schema for trip plan generation.
func PlanSchema() *genai.Schema {
	return tripPlanSchema
}
