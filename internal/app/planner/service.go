package planner

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"tripweaver/internal/app/models"
	"tripweaver/internal/app/observability/metrics"
)

// defaultTemperature balances variety against structural reliability.
const defaultTemperature = 0.7

// Service turns validated trip preferences into a validated TripPlan by
// issuing exactly one request to the generation service per call. Calls
// are independent; nothing is cached between them.
type Service struct {
	gen    Generator
	logger *zap.Logger
}

func NewService(gen Generator, logger *zap.Logger) *Service {
	return &Service{
		gen:    gen,
		logger: logger,
	}
}

// GeneratePlan validates prefs, issues the single generation request and
// returns a TripPlan that satisfies every structural invariant, or a
// classified error. A plan that fails validation is never returned.
func (s *Service) GeneratePlan(ctx context.Context, prefs models.TripPreferences) (*models.TripPlan, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	prompt := buildPrompt(prefs)
	start := time.Now()

	raw, err := s.gen.GenerateStructured(ctx, prompt, PlanSchema(), defaultTemperature)
	s.recordGeneration(ctx, err, time.Since(start))
	if err != nil {
		s.logger.Error("plan generation request failed",
			zap.String("destination", prefs.Destination),
			zap.Error(err))
		return nil, err
	}

	plan, err := parsePlan(raw)
	if err != nil {
		s.logger.Warn("plan generation returned malformed response",
			zap.String("destination", prefs.Destination),
			zap.Int("response_length", len(raw)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("plan generated",
		zap.String("destination", plan.Destination),
		zap.Int("itinerary_days", len(plan.Itinerary)),
		zap.Duration("duration", time.Since(start)))
	return plan, nil
}

func (s *Service) recordGeneration(ctx context.Context, err error, elapsed time.Duration) {
	m := metrics.Get()
	if m == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, models.ErrMissingAPIKey):
		outcome = "missing_credential"
	case errors.Is(err, models.ErrServiceUnavailable):
		outcome = "service_unavailable"
	case err != nil:
		outcome = "error"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.GenerationsTotal.Add(ctx, 1, attrs)
	m.GenerationDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// parsePlan normalizes and parses the raw response text, then checks the
// structural invariants the renderer relies on.
func parsePlan(raw string) (*models.TripPlan, error) {
	cleaned := cleanJSONResponse(raw)
	if cleaned == "" {
		return nil, errors.Wrap(models.ErrInvalidResponse, "empty response body")
	}

	var plan models.TripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, errors.Wrapf(models.ErrInvalidResponse, "parsing response: %v", err)
	}

	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// cleanJSONResponse removes markdown code blocks and cleans up the JSON
// response. The service may wrap its answer in fences despite the schema
// constraint, so this runs ahead of parsing on every response.
func cleanJSONResponse(response string) string {
	cleaned := strings.ReplaceAll(response, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	return strings.TrimSpace(cleaned)
}

func validatePlan(plan *models.TripPlan) error {
	if plan.Destination == "" {
		return errors.Wrap(models.ErrInvalidResponse, "missing destination")
	}
	if plan.Summary == "" {
		return errors.Wrap(models.ErrInvalidResponse, "missing summary")
	}
	if len(plan.Itinerary) == 0 {
		return errors.Wrap(models.ErrInvalidResponse, "empty itinerary")
	}
	for i, day := range plan.Itinerary {
		if day.Day != i+1 {
			return errors.Wrapf(models.ErrInvalidResponse, "itinerary entry %d has day %d, want %d", i, day.Day, i+1)
		}
		if len(day.Activities) == 0 {
			return errors.Wrapf(models.ErrInvalidResponse, "day %d has no activities", day.Day)
		}
	}
	if plan.Budget.Currency == "" {
		return errors.Wrap(models.ErrInvalidResponse, "missing budget currency")
	}
	for _, category := range []struct {
		name  string
		value float64
	}{
		{"accommodation", plan.Budget.Accommodation},
		{"food", plan.Budget.Food},
		{"transportation", plan.Budget.Transportation},
		{"activities", plan.Budget.Activities},
		{"misc", plan.Budget.Misc},
		{"total", plan.Budget.Total},
	} {
		if math.IsNaN(category.value) || math.IsInf(category.value, 0) {
			return errors.Wrapf(models.ErrInvalidResponse, "budget %s is not finite", category.name)
		}
		if category.value < 0 {
			return errors.Wrapf(models.ErrInvalidResponse, "budget %s is negative", category.name)
		}
	}
	return nil
}
