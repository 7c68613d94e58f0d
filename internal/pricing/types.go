package pricing

import (
	"time"

	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/shopspring/decimal"
)

// MealSelection is the customer's order as priced. It is never mutated by
// the calculator.
type MealSelection struct {
	PlanID           string
	IncludeBreakfast bool
	MainMeals        int
	Snacks           int
	Days             []time.Time
	DurationWeeks    calendar.DurationWeeks
	PromoCode        string
}

// ItemsPerDay is the number of meal items delivered each selected day.
func (s MealSelection) ItemsPerDay() int {
	items := s.MainMeals + s.Snacks
	if s.IncludeBreakfast {
		items++
	}
	return items
}

// mealTypes counts distinct meal types (breakfast and main meals).
func (s MealSelection) mealTypes() int {
	if s.IncludeBreakfast {
		return s.MainMeals + 1
	}
	return s.MainMeals
}

// PlanRate is a catalog entry used to derive the per-day price.
type PlanRate struct {
	PlanID     string
	Name       string
	BaseRate   decimal.Decimal
	Multiplier decimal.Decimal
}

// PricePerDay returns the rounded per-item daily price of the plan.
func (r PlanRate) PricePerDay() decimal.Decimal {
	return round2(r.BaseRate.Mul(r.Multiplier))
}

// AdminOverride is an operator adjustment applied after all other
// discounts. At most one of Percent and Price may be set.
type AdminOverride struct {
	Percent *decimal.Decimal
	Price   *decimal.Decimal
	Reason  string
}

// DiscountKind identifies a discount layer.
type DiscountKind string

const (
	DiscountVolume   DiscountKind = "volume"
	DiscountDuration DiscountKind = "duration"
	DiscountSeasonal DiscountKind = "seasonal"
	DiscountAdmin    DiscountKind = "admin"
)

// Discount is one applied discount layer. Percent is zero for admin
// price replacements.
type Discount struct {
	Kind    DiscountKind
	Percent decimal.Decimal
	Amount  decimal.Decimal
	Reason  string
}

// PriceBreakdown is the full itemized price of a selection.
// FinalTotal = Subtotal - TotalDiscount and is never negative.
type PriceBreakdown struct {
	PlanID       string
	PricePerDay  decimal.Decimal
	PricePerWeek decimal.NullDecimal
	ItemsPerDay  int
	SelectedDays int
	TotalItems   int
	TotalWeeks   int
	Subtotal     decimal.Decimal

	VolumeDiscount   decimal.Decimal
	DurationDiscount decimal.Decimal
	SeasonalDiscount decimal.Decimal
	AdminDiscount    decimal.Decimal

	// Discounts lists the applied layers in display order.
	Discounts     []Discount
	TotalDiscount decimal.Decimal
	FinalTotal    decimal.Decimal
}

// WeeklyPrice spreads the final total evenly over the subscription weeks.
func (b PriceBreakdown) WeeklyPrice() decimal.Decimal {
	if b.TotalWeeks <= 0 {
		return b.FinalTotal
	}
	return round2(b.FinalTotal.Div(decimal.NewFromInt(int64(b.TotalWeeks))))
}

// PricingError reports a selection that cannot be priced.
type PricingError struct {
	Reason string
}

func (e *PricingError) Error() string {
	return "cannot price this selection: " + e.Reason
}

func invalid(reason string) error {
	return &PricingError{Reason: reason}
}
