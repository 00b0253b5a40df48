package models

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BudgetTier is the traveller's spending style.
type BudgetTier string

const (
	BudgetTierBudget   BudgetTier = "Budget"
	BudgetTierStandard BudgetTier = "Standard"
	BudgetTierLuxury   BudgetTier = "Luxury"
)

const (
	MinTripDays = 1
	MaxTripDays = 30
)

func (t BudgetTier) Valid() bool {
	switch t {
	case BudgetTierBudget, BudgetTierStandard, BudgetTierLuxury:
		return true
	}
	return false
}

var validMonths = map[string]struct{}{
	"January": {}, "February": {}, "March": {}, "April": {},
	"May": {}, "June": {}, "July": {}, "August": {},
	"September": {}, "October": {}, "November": {}, "December": {},
}

var monthTitle = cases.Title(language.English)

// TripPreferences captures one form submission. A new value is bound per
// submission and is not mutated after Normalize.
type TripPreferences struct {
	Destination string     `json:"destination" binding:"required"`
	Days        int        `json:"days" binding:"required"`
	Budget      BudgetTier `json:"budget" binding:"required"`
	Interests   []string   `json:"interests"`
	Month       string     `json:"month" binding:"required"`
}

// Normalize trims free-text fields and title-cases the month so that
// "april" and "APRIL" are accepted.
func (p *TripPreferences) Normalize() {
	p.Destination = strings.TrimSpace(p.Destination)
	p.Month = monthTitle.String(strings.ToLower(strings.TrimSpace(p.Month)))
	for i, interest := range p.Interests {
		p.Interests[i] = strings.TrimSpace(interest)
	}
}

// Validate reports the first violated constraint, wrapped in ErrValidation.
func (p *TripPreferences) Validate() error {
	if p.Destination == "" {
		return errors.Wrap(ErrValidation, "destination is required")
	}
	if p.Days < MinTripDays || p.Days > MaxTripDays {
		return errors.Wrapf(ErrValidation, "days must be between %d and %d", MinTripDays, MaxTripDays)
	}
	if !p.Budget.Valid() {
		return errors.Wrapf(ErrValidation, "unknown budget tier %q", p.Budget)
	}
	if _, ok := validMonths[p.Month]; !ok {
		return errors.Wrapf(ErrValidation, "unknown month %q", p.Month)
	}
	return nil
}
