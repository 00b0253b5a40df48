package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/pkg/errors"

	"tripweaver/internal/app/models"
	"tripweaver/internal/app/render"
)

const (
	pageMargin  = 15.0
	lineHeight  = 6.0
	titleSize   = 18.0
	sectionSize = 13.0
	bodySize    = 10.0
)

// PDF serializes a rendered plan into a paginated A4 document. The
// document always uses a light background and dark text regardless of
// the on-screen theme, since it targets print. The full untruncated
// lists are used, never the summary prefixes.
func PDF(view *render.RenderedView) ([]byte, error) {
	if view == nil || view.Destination == "" {
		return nil, errors.Wrap(models.ErrExportUnavailable, "no rendered view to capture")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	pdf.AddPage()
	pdf.SetTextColor(30, 30, 30)

	pdf.SetFont("Arial", "B", titleSize)
	pdf.MultiCell(contentWidth, 9, tr(fmt.Sprintf("Trip to %s", view.Destination)), "", "L", false)
	pdf.SetFont("Arial", "I", bodySize)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(contentWidth, lineHeight, tr(view.Duration), "", "L", false)
	pdf.Ln(2)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Arial", "", bodySize)
	pdf.MultiCell(contentWidth, lineHeight, tr(view.Summary), "", "L", false)

	if view.BestMonthAnalysis != "" {
		sectionTitle(pdf, tr, "When to Go")
		pdf.MultiCell(contentWidth, lineHeight, tr(view.BestMonthAnalysis), "", "L", false)
	}

	sectionTitle(pdf, tr, "Itinerary")
	for _, day := range view.Itinerary {
		pdf.SetFont("Arial", "B", bodySize+1)
		pdf.MultiCell(contentWidth, lineHeight, tr(fmt.Sprintf("Day %d: %s", day.Day, day.Title)), "", "L", false)
		pdf.SetFont("Arial", "", bodySize)
		for _, activity := range day.Activities {
			pdf.MultiCell(contentWidth, lineHeight, tr("  - "+activity), "", "L", false)
		}
		pdf.MultiCell(contentWidth, lineHeight, tr(fmt.Sprintf("  Lunch: %s", day.Lunch)), "", "L", false)
		pdf.MultiCell(contentWidth, lineHeight, tr(fmt.Sprintf("  Dinner: %s", day.Dinner)), "", "L", false)
		pdf.Ln(1)
	}

	sectionTitle(pdf, tr, "Budget")
	for _, seg := range view.Budget.Segments {
		pdf.MultiCell(contentWidth, lineHeight,
			tr(fmt.Sprintf("%s: %.0f %s (%.0f%%)", seg.Label, seg.Value, view.Budget.Currency, seg.Percent)),
			"", "L", false)
	}
	pdf.SetFont("Arial", "B", bodySize)
	pdf.MultiCell(contentWidth, lineHeight,
		tr(fmt.Sprintf("Total: %.0f %s", view.Budget.Total, view.Budget.Currency)), "", "L", false)
	pdf.SetFont("Arial", "", bodySize)

	if len(view.Hotels) > 0 {
		sectionTitle(pdf, tr, "Hotels")
		for _, hotel := range view.Hotels {
			pdf.SetFont("Arial", "B", bodySize)
			pdf.MultiCell(contentWidth, lineHeight, tr(fmt.Sprintf("%s (%s)", hotel.Name, hotel.PriceRange)), "", "L", false)
			pdf.SetFont("Arial", "", bodySize)
			pdf.MultiCell(contentWidth, lineHeight, tr(hotel.Description), "", "L", false)
			pdf.Ln(1)
		}
	}

	if len(view.Places) > 0 {
		sectionTitle(pdf, tr, "Places to Visit")
		for _, place := range view.Places {
			pdf.SetFont("Arial", "B", bodySize)
			pdf.MultiCell(contentWidth, lineHeight, tr(place.Name), "", "L", false)
			pdf.SetFont("Arial", "", bodySize)
			pdf.MultiCell(contentWidth, lineHeight, tr(place.Description), "", "L", false)
			pdf.Ln(1)
		}
	}

	bulletSection(pdf, tr, contentWidth, "Food Recommendations", view.Food.Full)
	bulletSection(pdf, tr, contentWidth, "Packing List", view.Packing.Full)
	bulletSection(pdf, tr, contentWidth, "Travel Tips", view.Tips.Full)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrapf(models.ErrExportUnavailable, "writing document: %v", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the download name from the destination.
func Filename(destination string) string {
	slug := strings.ToLower(strings.TrimSpace(destination))
	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = "plan"
	}
	return "trip-" + name + ".pdf"
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", sectionSize)
	pdf.SetTextColor(20, 60, 120)
	pdf.MultiCell(0, 8, tr(title), "", "L", false)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Arial", "", bodySize)
}

func bulletSection(pdf *gofpdf.Fpdf, tr func(string) string, width float64, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sectionTitle(pdf, tr, title)
	for _, item := range items {
		pdf.MultiCell(width, lineHeight, tr("  - "+item), "", "L", false)
	}
}
