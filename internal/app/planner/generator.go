package planner

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"tripweaver/internal/app/models"
	"tripweaver/internal/pkg/config"
)

const tracerName = "GenerativeAI"

// Generator is the narrow seam to the generation service: one prompt, one
// structural constraint, one text response. Tests substitute canned
// implementations so the pipeline is exercised without a network path.
type Generator interface {
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, temperature float32) (string, error)
}

// GeminiGenerator issues a single schema-constrained request to the
// Gemini API per call. It keeps no state between calls.
type GeminiGenerator struct {
	apiKey string
	model  string
}

func NewGeminiGenerator(cfg config.GeminiConfig) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (g *GeminiGenerator) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, temperature float32) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "GenerateStructured", trace.WithAttributes(
		attribute.String("prompt.length", fmt.Sprintf("%d", len(prompt))),
		attribute.String("model", g.model),
	))
	defer span.End()

	// Local precondition, checked before any client is constructed so a
	// missing credential never produces an outbound call.
	if g.apiKey == "" {
		span.SetStatus(codes.Error, "API key not set")
		return "", models.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return "", errors.Wrapf(models.ErrServiceUnavailable, "creating client: %v", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", errors.Wrapf(models.ErrServiceUnavailable, "generate content: %v", err)
	}

	responseText := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(responseText)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return responseText, nil
}
