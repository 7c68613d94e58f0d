// Package pricing turns a meal selection into an itemized price breakdown.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lumiforge/mealsub-backend/internal/calendar"
	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/logger"
	"github.com/lumiforge/mealsub-backend/internal/validation"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	week    = decimal.NewFromInt(7)
)

type volumeTier struct {
	minItems int
	percent  decimal.Decimal
}

// Checked top-down, first match wins.
var volumeTiers = []volumeTier{
	{minItems: 60, percent: decimal.NewFromInt(10)},
	{minItems: 40, percent: decimal.NewFromInt(7)},
	{minItems: 20, percent: decimal.NewFromInt(5)},
}

var durationPercents = map[calendar.DurationWeeks]decimal.Decimal{
	calendar.OneWeek:   decimal.Zero,
	calendar.TwoWeeks:  decimal.NewFromInt(5),
	calendar.FourWeeks: decimal.NewFromInt(10),
}

// Catalog resolves plan rates and promo-code percentages.
// PlanRate returns app_errors.ErrPlanNotFound for unknown plans.
// PromoPercent returns zero for unknown or inactive codes.
type Catalog interface {
	PlanRate(ctx context.Context, planID string) (PlanRate, error)
	PromoPercent(ctx context.Context, code string) (decimal.Decimal, error)
}

// Calculator prices selections against a catalog.
type Calculator struct {
	catalog Catalog
}

func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Quote resolves the plan and promo code and prices the selection.
// A promo lookup failure never fails the quote; the seasonal discount is
// dropped instead.
func (c *Calculator) Quote(ctx context.Context, sel MealSelection, override *AdminOverride) (PriceBreakdown, error) {
	rate, err := c.catalog.PlanRate(ctx, sel.PlanID)
	if err != nil {
		if errors.Is(err, app_errors.ErrPlanNotFound) {
			return PriceBreakdown{}, invalid(fmt.Sprintf("unknown plan %q", sel.PlanID))
		}
		return PriceBreakdown{}, fmt.Errorf("failed to resolve plan: %w", err)
	}

	promo := decimal.Zero
	if strings.TrimSpace(sel.PromoCode) != "" {
		promo, err = c.catalog.PromoPercent(ctx, sel.PromoCode)
		if err != nil {
			logger.FromContext(ctx).Warn("Promo code lookup failed, ignoring code",
				"promo_code", sel.PromoCode,
				"error", err,
			)
			promo = decimal.Zero
		}
	}

	return Calculate(sel, rate, promo, override)
}

// Calculate prices the selection. It is pure: the same inputs always
// produce the same breakdown, and nothing is returned on error.
func Calculate(sel MealSelection, rate PlanRate, promoPercent decimal.Decimal, override *AdminOverride) (PriceBreakdown, error) {
	if err := validateSelection(sel); err != nil {
		return PriceBreakdown{}, err
	}
	if !rate.BaseRate.IsPositive() || !rate.Multiplier.IsPositive() {
		return PriceBreakdown{}, invalid("invalid selection")
	}
	if err := validateOverride(override); err != nil {
		return PriceBreakdown{}, err
	}

	selectedDays := len(calendar.Normalize(sel.Days))
	itemsPerDay := sel.ItemsPerDay()
	totalItems := selectedDays * itemsPerDay
	pricePerDay := rate.PricePerDay()
	subtotal := round2(pricePerDay.Mul(decimal.NewFromInt(int64(totalItems))))

	b := PriceBreakdown{
		PlanID:       sel.PlanID,
		PricePerDay:  pricePerDay,
		ItemsPerDay:  itemsPerDay,
		SelectedDays: selectedDays,
		TotalItems:   totalItems,
		TotalWeeks:   int(sel.DurationWeeks),
		Subtotal:     subtotal,
	}
	// Longer subscriptions have irregular weeks, only the aggregate is shown.
	if sel.DurationWeeks == calendar.OneWeek {
		b.PricePerWeek = decimal.NewNullDecimal(round2(pricePerDay.Mul(week)))
	}

	if override != nil && override.Price != nil {
		price := round2(*override.Price)
		if price.GreaterThan(subtotal) {
			return PriceBreakdown{}, invalid("override price exceeds subtotal")
		}
		b.AdminDiscount = subtotal.Sub(price)
		b.TotalDiscount = b.AdminDiscount
		b.FinalTotal = price
		if b.AdminDiscount.IsPositive() {
			b.Discounts = []Discount{{Kind: DiscountAdmin, Amount: b.AdminDiscount, Reason: override.Reason}}
		}
		return b, nil
	}

	layers := []Discount{
		{Kind: DiscountVolume, Percent: volumePercent(totalItems), Reason: fmt.Sprintf("%d items", totalItems)},
		{Kind: DiscountDuration, Percent: durationPercents[sel.DurationWeeks], Reason: fmt.Sprintf("%d-week subscription", sel.DurationWeeks)},
		{Kind: DiscountSeasonal, Percent: clampPercent(promoPercent), Reason: "promo " + validation.NormalizePromoCode(sel.PromoCode)},
	}
	if override != nil && override.Percent != nil {
		layers = append(layers, Discount{Kind: DiscountAdmin, Percent: *override.Percent, Reason: override.Reason})
	}

	for i := range layers {
		layers[i].Amount = round2(subtotal.Mul(layers[i].Percent).Div(hundred))
		switch layers[i].Kind {
		case DiscountVolume:
			b.VolumeDiscount = layers[i].Amount
		case DiscountDuration:
			b.DurationDiscount = layers[i].Amount
		case DiscountSeasonal:
			b.SeasonalDiscount = layers[i].Amount
		case DiscountAdmin:
			b.AdminDiscount = layers[i].Amount
		}
	}

	b.Discounts = lo.Filter(layers, func(d Discount, _ int) bool {
		return d.Amount.IsPositive()
	})

	sum := decimal.Sum(decimal.Zero, lo.Map(layers, func(d Discount, _ int) decimal.Decimal { return d.Amount })...)
	b.TotalDiscount = decimal.Min(subtotal, sum)
	b.FinalTotal = round2(decimal.Max(decimal.Zero, subtotal.Sub(b.TotalDiscount)))

	return b, nil
}

// DecimalFromFloat converts a client-supplied number, rejecting NaN and
// infinities.
func DecimalFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, invalid("invalid selection")
	}
	return decimal.NewFromFloat(f), nil
}

func validateSelection(sel MealSelection) error {
	switch {
	case sel.MainMeals < 0 || sel.Snacks < 0:
		return invalid("invalid selection")
	case strings.TrimSpace(sel.PlanID) == "":
		return invalid("plan is required")
	case !sel.DurationWeeks.Valid():
		return invalid("duration must be 1, 2 or 4 weeks")
	case sel.MainMeals < 1 || sel.MainMeals > 2:
		return invalid("main meals must be 1 or 2")
	case sel.Snacks > 2:
		return invalid("snacks must be between 0 and 2")
	case sel.mealTypes() < 2:
		return invalid("choose at least two meal types")
	case len(calendar.Normalize(sel.Days)) < 3:
		return invalid("at least 3 delivery days are required")
	}
	return nil
}

func validateOverride(o *AdminOverride) error {
	if o == nil {
		return nil
	}
	if o.Percent != nil && o.Price != nil {
		return invalid("override must set either a percent or a price")
	}
	if o.Percent != nil && (o.Percent.IsNegative() || o.Percent.GreaterThan(hundred)) {
		return invalid("override percent must be between 0 and 100")
	}
	if o.Price != nil && o.Price.IsNegative() {
		return invalid("invalid selection")
	}
	return nil
}

func volumePercent(totalItems int) decimal.Decimal {
	for _, tier := range volumeTiers {
		if totalItems >= tier.minItems {
			return tier.percent
		}
	}
	return decimal.Zero
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	return decimal.Min(hundred, decimal.Max(decimal.Zero, p))
}

// round2 rounds half away from zero, which is half-up for prices.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
