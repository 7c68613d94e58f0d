package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/logger"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/validation"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
	"github.com/shopspring/decimal"
)

// Базовые тарифы, если план отсутствует в базе
var defaultPlans = map[string]pricing.PlanRate{
	"weight-loss": {PlanID: "weight-loss", Name: "Weight Loss", BaseRate: decimal.NewFromInt(30000), Multiplier: decimal.NewFromInt(1)},
	"balanced":    {PlanID: "balanced", Name: "Balanced", BaseRate: decimal.NewFromInt(28000), Multiplier: decimal.NewFromInt(1)},
	"muscle-gain": {PlanID: "muscle-gain", Name: "Muscle Gain", BaseRate: decimal.NewFromInt(32000), Multiplier: decimal.RequireFromString("1.15")},
	"keto":        {PlanID: "keto", Name: "Keto", BaseRate: decimal.NewFromInt(35000), Multiplier: decimal.RequireFromString("1.10")},
}

var defaultPromoCodes = map[string]decimal.Decimal{
	"WELCOME10": decimal.NewFromInt(10),
	"RAMADAN15": decimal.NewFromInt(15),
}

// Service реализует справочник планов и промокодов
type Service struct {
	db  ydb.Database
	now func() time.Time
}

// NewService создает новый catalog сервис
func NewService(db ydb.Database) *Service {
	return &Service{
		db:  db,
		now: time.Now,
	}
}

// PlanRate возвращает тариф плана
func (s *Service) PlanRate(ctx context.Context, planID string) (pricing.PlanRate, error) {
	plan, err := s.db.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, app_errors.ErrPlanNotFound) {
			if rate, ok := defaultPlans[planID]; ok {
				return rate, nil
			}
		}
		return pricing.PlanRate{}, err
	}
	if !plan.IsActive {
		return pricing.PlanRate{}, app_errors.ErrPlanNotFound
	}

	return toRate(plan)
}

// PromoPercent возвращает процент скидки промокода.
// Неизвестный, неактивный или истекший код дает нулевую скидку.
func (s *Service) PromoPercent(ctx context.Context, code string) (decimal.Decimal, error) {
	normalized, err := validation.ValidatePromoCode(code, "promo_code")
	if err != nil {
		return decimal.Zero, nil
	}

	promo, err := s.db.GetPromoCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, app_errors.ErrPromoCodeNotFound) {
			return defaultPromoCodes[normalized], nil
		}
		return decimal.Zero, err
	}

	if !promo.IsActive || (promo.ValidUntil != nil && s.now().After(*promo.ValidUntil)) {
		logger.FromContext(ctx).Info("Promo code is not redeemable", "promo_code", normalized)
		return decimal.Zero, nil
	}

	percent, err := decimal.NewFromString(promo.Percent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percent for promo code %s: %w", normalized, err)
	}
	return percent, nil
}

// GetAllPlans возвращает список всех активных планов
func (s *Service) GetAllPlans(ctx context.Context) ([]*models.PlanResponse, error) {
	plans, err := s.db.GetAllPlans(ctx)
	if err != nil {
		return nil, err
	}

	rates := make([]pricing.PlanRate, 0, len(plans))
	for _, plan := range plans {
		if !plan.IsActive {
			continue
		}
		rate, err := toRate(plan)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	if len(plans) == 0 {
		for _, rate := range defaultPlans {
			rates = append(rates, rate)
		}
		sort.Slice(rates, func(i, j int) bool { return rates[i].PlanID < rates[j].PlanID })
	}

	response := make([]*models.PlanResponse, 0, len(rates))
	for _, rate := range rates {
		response = append(response, &models.PlanResponse{
			PlanID:      rate.PlanID,
			Name:        rate.Name,
			BaseRate:    rate.BaseRate.InexactFloat64(),
			Multiplier:  rate.Multiplier.InexactFloat64(),
			PricePerDay: rate.PricePerDay().InexactFloat64(),
		})
	}

	return response, nil
}

func toRate(plan *ydb.Plan) (pricing.PlanRate, error) {
	base, err := decimal.NewFromString(plan.BaseRate)
	if err != nil {
		return pricing.PlanRate{}, fmt.Errorf("invalid base rate for plan %s: %w", plan.PlanID, err)
	}
	multiplier, err := decimal.NewFromString(plan.Multiplier)
	if err != nil {
		return pricing.PlanRate{}, fmt.Errorf("invalid multiplier for plan %s: %w", plan.PlanID, err)
	}
	return pricing.PlanRate{
		PlanID:     plan.PlanID,
		Name:       plan.Name,
		BaseRate:   base,
		Multiplier: multiplier,
	}, nil
}
