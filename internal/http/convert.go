package http

import (
	"fmt"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/schedule"
	"github.com/lumiforge/mealsub-backend/internal/subscription"
	"github.com/lumiforge/mealsub-backend/internal/validation"
	"github.com/samber/lo"
)

func parseDays(raw []string) ([]time.Time, error) {
	days := make([]time.Time, 0, len(raw))
	for i, s := range raw {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, validation.Errors{{Field: fmt.Sprintf("days[%d]", i), Message: "must be a date in format 2006-01-02"}}
		}
		days = append(days, d)
	}
	return days, nil
}

func toSelection(req models.MealSelectionRequest) (pricing.MealSelection, error) {
	days, err := parseDays(req.Days)
	if err != nil {
		return pricing.MealSelection{}, err
	}
	return pricing.MealSelection{
		PlanID:           req.PlanID,
		IncludeBreakfast: req.IncludeBreakfast,
		MainMeals:        req.MainMeals,
		Snacks:           req.Snacks,
		Days:             days,
		DurationWeeks:    calendar.DurationWeeks(req.DurationWeeks),
		PromoCode:        req.PromoCode,
	}, nil
}

func toOverride(req *models.AdminOverrideRequest) (*pricing.AdminOverride, error) {
	if req == nil {
		return nil, nil
	}
	o := &pricing.AdminOverride{Reason: req.Reason}
	if req.Percent != nil {
		p, err := pricing.DecimalFromFloat(*req.Percent)
		if err != nil {
			return nil, err
		}
		o.Percent = &p
	}
	if req.Price != nil {
		p, err := pricing.DecimalFromFloat(*req.Price)
		if err != nil {
			return nil, err
		}
		o.Price = &p
	}
	return o, nil
}

func toBreakdownResponse(b pricing.PriceBreakdown) *models.PriceBreakdownResponse {
	resp := &models.PriceBreakdownResponse{
		PlanID:           b.PlanID,
		PricePerDay:      b.PricePerDay.InexactFloat64(),
		ItemsPerDay:      b.ItemsPerDay,
		SelectedDays:     b.SelectedDays,
		TotalItems:       b.TotalItems,
		TotalWeeks:       b.TotalWeeks,
		Subtotal:         b.Subtotal.InexactFloat64(),
		VolumeDiscount:   b.VolumeDiscount.InexactFloat64(),
		DurationDiscount: b.DurationDiscount.InexactFloat64(),
		SeasonalDiscount: b.SeasonalDiscount.InexactFloat64(),
		AdminDiscount:    b.AdminDiscount.InexactFloat64(),
		TotalDiscount:    b.TotalDiscount.InexactFloat64(),
		FinalTotal:       b.FinalTotal.InexactFloat64(),
		WeeklyPrice:      b.WeeklyPrice().InexactFloat64(),
		Discounts: lo.Map(b.Discounts, func(d pricing.Discount, _ int) models.DiscountResponse {
			return models.DiscountResponse{
				Kind:    string(d.Kind),
				Percent: d.Percent.InexactFloat64(),
				Amount:  d.Amount.InexactFloat64(),
				Reason:  d.Reason,
			}
		}),
	}
	if b.PricePerWeek.Valid {
		perWeek := b.PricePerWeek.Decimal.InexactFloat64()
		resp.PricePerWeek = &perWeek
	}
	return resp
}

func toDayErrors(errs []calendar.ValidationError) []models.DayError {
	return lo.Map(errs, func(e calendar.ValidationError, _ int) models.DayError {
		return models.DayError{Code: e.Code, Week: e.Week, Message: e.Message}
	})
}

func formatDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func toSubscriptionResponse(s *subscription.Subscription) *models.SubscriptionResponse {
	return &models.SubscriptionResponse{
		SubscriptionID:  s.ID,
		CustomerID:      s.CustomerID,
		PlanID:          s.PlanID,
		Status:          string(s.Status()),
		Frequency:       s.Frequency,
		DurationWeeks:   int(s.DurationWeeks),
		WeeklyPrice:     s.WeeklyPrice.InexactFloat64(),
		StartDate:       s.StartDate.Format(time.DateOnly),
		NextBillingDate: s.NextBillingDate.Format(time.DateOnly),
		PauseCount:      s.PauseCount,
		PausedAt:        s.PausedAt,
		PausedUntil:     formatDay(s.PausedUntil),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toDeliveryResponses(deliveries []schedule.Delivery) []models.DeliveryResponse {
	return lo.Map(deliveries, func(d schedule.Delivery, _ int) models.DeliveryResponse {
		return models.DeliveryResponse{
			DeliveryID:  d.ID,
			Date:        d.Date.Format(time.DateOnly),
			Status:      string(d.Status),
			CompletedAt: d.CompletedAt,
		}
	})
}

func toScheduleResponse(p *schedule.Projection) *models.ScheduleResponse {
	return &models.ScheduleResponse{
		SubscriptionID:   p.SubscriptionID,
		Deliveries:       toDeliveryResponses(p.Deliveries),
		Total:            p.Total,
		Completed:        p.Completed,
		Pending:          p.Pending,
		NextDeliveryDate: formatDay(p.NextDeliveryDate),
		CanPause:         p.CanPause,
		PauseEligibleAt:  p.PauseEligibleAt,
	}
}
