package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
	ydbmocks "github.com/lumiforge/mealsub-backend/internal/ydb/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalog() (*Service, *ydbmocks.Database) {
	mockDB := new(ydbmocks.Database)
	service := NewService(mockDB)
	service.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return service, mockDB
}

func TestService_PlanRate_FromDatabase(t *testing.T) {
	service, mockDB := setupCatalog()
	ctx := context.Background()

	mockDB.On("GetPlanByID", ctx, "keto").Return(&ydb.Plan{
		PlanID:     "keto",
		Name:       "Keto",
		BaseRate:   "36000",
		Multiplier: "1.10",
		IsActive:   true,
	}, nil)

	rate, err := service.PlanRate(ctx, "keto")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(36000).Equal(rate.BaseRate))
	assert.True(t, decimal.NewFromInt(39600).Equal(rate.PricePerDay()))
	mockDB.AssertExpectations(t)
}

func TestService_PlanRate_FallsBackToDefaults(t *testing.T) {
	service, mockDB := setupCatalog()
	ctx := context.Background()

	mockDB.On("GetPlanByID", ctx, "muscle-gain").Return(nil, app_errors.ErrPlanNotFound)
	mockDB.On("GetPlanByID", ctx, "paleo").Return(nil, app_errors.ErrPlanNotFound)

	rate, err := service.PlanRate(ctx, "muscle-gain")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(36800).Equal(rate.PricePerDay()))

	_, err = service.PlanRate(ctx, "paleo")
	assert.ErrorIs(t, err, app_errors.ErrPlanNotFound)

	mockDB.AssertExpectations(t)
}

func TestService_PlanRate_InactivePlan(t *testing.T) {
	service, mockDB := setupCatalog()
	ctx := context.Background()

	mockDB.On("GetPlanByID", ctx, "balanced").Return(&ydb.Plan{PlanID: "balanced", BaseRate: "28000", Multiplier: "1", IsActive: false}, nil)

	_, err := service.PlanRate(ctx, "balanced")

	assert.ErrorIs(t, err, app_errors.ErrPlanNotFound)
}

func TestService_PromoPercent(t *testing.T) {
	ctx := context.Background()
	past := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		code  string
		setup func(m *ydbmocks.Database)
		want  int64
	}{
		{
			name: "active code",
			code: " spring20 ",
			setup: func(m *ydbmocks.Database) {
				m.On("GetPromoCode", ctx, "SPRING20").Return(&ydb.PromoCode{Code: "SPRING20", Percent: "20", IsActive: true}, nil)
			},
			want: 20,
		},
		{
			name: "expired code",
			code: "OLD5",
			setup: func(m *ydbmocks.Database) {
				m.On("GetPromoCode", ctx, "OLD5").Return(&ydb.PromoCode{Code: "OLD5", Percent: "5", IsActive: true, ValidUntil: &past}, nil)
			},
			want: 0,
		},
		{
			name: "inactive code",
			code: "OFF50",
			setup: func(m *ydbmocks.Database) {
				m.On("GetPromoCode", ctx, "OFF50").Return(&ydb.PromoCode{Code: "OFF50", Percent: "50", IsActive: false}, nil)
			},
			want: 0,
		},
		{
			name: "default code not stored",
			code: "welcome10",
			setup: func(m *ydbmocks.Database) {
				m.On("GetPromoCode", ctx, "WELCOME10").Return(nil, app_errors.ErrPromoCodeNotFound)
			},
			want: 10,
		},
		{
			name: "unknown code",
			code: "NOSUCHCODE",
			setup: func(m *ydbmocks.Database) {
				m.On("GetPromoCode", ctx, "NOSUCHCODE").Return(nil, app_errors.ErrPromoCodeNotFound)
			},
			want: 0,
		},
		{
			name:  "malformed code skips lookup",
			code:  "!!",
			setup: func(m *ydbmocks.Database) {},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockDB := setupCatalog()
			tt.setup(mockDB)

			got, err := service.PromoPercent(ctx, tt.code)

			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
			mockDB.AssertExpectations(t)
		})
	}
}

func TestService_PromoPercent_DatabaseError(t *testing.T) {
	service, mockDB := setupCatalog()
	ctx := context.Background()

	mockDB.On("GetPromoCode", ctx, "WELCOME10").Return(nil, errors.New("connection refused"))

	_, err := service.PromoPercent(ctx, "WELCOME10")

	assert.Error(t, err)
}

func TestService_GetAllPlans(t *testing.T) {
	service, mockDB := setupCatalog()
	ctx := context.Background()

	mockDB.On("GetAllPlans", ctx).Return([]*ydb.Plan{
		{PlanID: "balanced", Name: "Balanced", BaseRate: "28000", Multiplier: "1.00", IsActive: true},
		{PlanID: "legacy", Name: "Legacy", BaseRate: "10000", Multiplier: "1.00", IsActive: false},
	}, nil)

	plans, err := service.GetAllPlans(ctx)

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "balanced", plans[0].PlanID)
	assert.Equal(t, 28000.0, plans[0].PricePerDay)
	mockDB.AssertExpectations(t)
}

func TestService_GetAllPlans_EmptyTableUsesDefaults(t *testing.T) {
	service, mockDB := setupCatalog()
	ctx := context.Background()

	mockDB.On("GetAllPlans", ctx).Return([]*ydb.Plan{}, nil)

	plans, err := service.GetAllPlans(ctx)

	require.NoError(t, err)
	require.Len(t, plans, 4)
	assert.Equal(t, "balanced", plans[0].PlanID)
	assert.Equal(t, "weight-loss", plans[3].PlanID)
}
