package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/audit"
	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/lumiforge/mealsub-backend/internal/catalog"
	"github.com/lumiforge/mealsub-backend/internal/config"
	"github.com/lumiforge/mealsub-backend/internal/email"
	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/jwt"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/order"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/rbac"
	storagemocks "github.com/lumiforge/mealsub-backend/internal/storage/mocks"
	"github.com/lumiforge/mealsub-backend/internal/subscription"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
	ydbmocks "github.com/lumiforge/mealsub-backend/internal/ydb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  http.Handler
	db      *ydbmocks.Database
	storage *storagemocks.StorageProvider
	jwt     *jwt.JWTManager
}

func setupTestRouter() *testEnv {
	mockDB := new(ydbmocks.Database)
	mockStorage := new(storagemocks.StorageProvider)

	// История пишется синхронно, но ее ошибки не влияют на ответ
	mockDB.On("CreateSubscriptionHistory", mock.Anything, mock.Anything).Return(nil).Maybe()

	emailClient := email.NewClient(&config.Config{})
	auditService := audit.NewService(mockDB, nil)
	catalogService := catalog.NewService(mockDB)
	calculator := pricing.NewCalculator(catalogService)
	subscriptions := subscription.NewService(mockDB, emailClient, auditService, subscription.DefaultPolicy())
	orders := order.NewService(mockDB, mockStorage, calculator, subscriptions, emailClient, auditService)

	jwtManager := jwt.NewJWTManager(&config.Config{JWTSecretKey: "secret"})

	server := NewServer(catalogService, calculator, subscriptions, orders, auditService, rbac.NewRBAC())
	return &testEnv{
		router:  SetupRouter(server, jwtManager),
		db:      mockDB,
		storage: mockStorage,
		jwt:     jwtManager,
	}
}

func (e *testEnv) token(t *testing.T, userID string, role rbac.Role) string {
	t.Helper()
	token, err := e.jwt.GenerateToken(userID, userID+"@example.com", string(role))
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// subscriptionRow возвращает активную подписку с одной ожидающей доставкой через десять дней
func subscriptionRow(customerID string, pauseCount int32) (*ydb.Subscription, []*ydb.Delivery) {
	today := calendar.Day(time.Now())
	row := &ydb.Subscription{
		SubscriptionID:  "sub-1",
		CustomerID:      customerID,
		ContactEmail:    customerID + "@example.com",
		PlanID:          "balanced",
		Status:          string(subscription.StatusActive),
		Frequency:       subscription.FrequencyWeekly,
		DurationWeeks:   1,
		WeeklyPrice:     "84000.00",
		StartDate:       today.AddDate(0, 0, -2),
		NextBillingDate: today.AddDate(0, 0, 5),
		PauseCount:      pauseCount,
		Version:         2,
		CreatedAt:       today.AddDate(0, 0, -5),
		UpdatedAt:       today.AddDate(0, 0, -5),
	}
	deliveries := []*ydb.Delivery{
		{DeliveryID: "d-1", SubscriptionID: "sub-1", ScheduledDate: today.AddDate(0, 0, -2), Status: "completed"},
		{DeliveryID: "d-2", SubscriptionID: "sub-1", ScheduledDate: today.AddDate(0, 0, 10), Status: "pending"},
	}
	return row, deliveries
}

func (e *testEnv) expectSubscription(row *ydb.Subscription, deliveries []*ydb.Delivery) {
	e.db.On("GetSubscriptionByID", mock.Anything, row.SubscriptionID).Return(row, nil)
	e.db.On("GetDeliveriesBySubscription", mock.Anything, row.SubscriptionID).Return(deliveries, nil)
}

const quoteBody = `{"plan_id":"weight-loss","main_meals":2,"days":["2026-10-20","2026-10-21","2026-10-22"],"duration_weeks":1}`

func TestHandler_Health(t *testing.T) {
	env := setupTestRouter()

	w := env.do("GET", "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHandler_OpenAPI(t *testing.T) {
	env := setupTestRouter()

	w := env.do("GET", "/openapi.json", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/subscriptions/{id}/pause")
}

func TestHandler_ListPlans_FallsBackToDefaults(t *testing.T) {
	env := setupTestRouter()
	env.db.On("GetAllPlans", mock.Anything).Return([]*ydb.Plan{}, nil)

	w := env.do("GET", "/api/v1/plans", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var plans []models.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	assert.Len(t, plans, 4)
}

func TestHandler_Quote_InvalidJSON(t *testing.T) {
	env := setupTestRouter()

	w := env.do("POST", "/api/v1/pricing/quote", `{"plan_id": "keto"`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}

func TestHandler_Quote_InvalidContentType(t *testing.T) {
	env := setupTestRouter()

	req := httptest.NewRequest("POST", "/api/v1/pricing/quote", strings.NewReader(quoteBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestHandler_Quote(t *testing.T) {
	env := setupTestRouter()
	env.db.On("GetPlanByID", mock.Anything, "weight-loss").Return(nil, app_errors.ErrPlanNotFound)

	w := env.do("POST", "/api/v1/pricing/quote", quoteBody, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.PriceBreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.TotalItems)
	assert.InDelta(t, 180000, resp.Subtotal, 0.001)
	assert.InDelta(t, 180000, resp.FinalTotal, 0.001)
	require.NotNil(t, resp.PricePerWeek)
	assert.InDelta(t, 210000, *resp.PricePerWeek, 0.001)
}

func TestHandler_Quote_MultiWeekHasNoWeeklyPrice(t *testing.T) {
	env := setupTestRouter()
	env.db.On("GetPlanByID", mock.Anything, "weight-loss").Return(nil, app_errors.ErrPlanNotFound)

	body := `{"plan_id":"weight-loss","main_meals":2,"days":["2026-10-20","2026-10-21","2026-10-22","2026-10-27","2026-10-28","2026-10-29"],"duration_weeks":2}`
	w := env.do("POST", "/api/v1/pricing/quote", body, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.PriceBreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.TotalItems)
	assert.Nil(t, resp.PricePerWeek)
}

func TestHandler_Quote_ValidationFailure(t *testing.T) {
	env := setupTestRouter()

	body := `{"plan_id":"weight-loss","main_meals":2,"days":["2026-10-20"],"duration_weeks":3}`
	w := env.do("POST", "/api/v1/pricing/quote", body, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "duration_weeks", resp.Errors[0].Field)
}

func TestHandler_Quote_UnpriceableSelection(t *testing.T) {
	env := setupTestRouter()
	env.db.On("GetPlanByID", mock.Anything, "weight-loss").Return(nil, app_errors.ErrPlanNotFound)

	body := `{"plan_id":"weight-loss","main_meals":1,"days":["2026-10-20","2026-10-21","2026-10-22"],"duration_weeks":1}`
	w := env.do("POST", "/api/v1/pricing/quote", body, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "choose at least two meal types", decodeError(t, w).Reason)
}

func TestHandler_Quote_Override(t *testing.T) {
	body := `{"plan_id":"weight-loss","main_meals":2,"days":["2026-10-20","2026-10-21","2026-10-22"],"duration_weeks":1,` +
		`"admin_override":{"percent":50,"reason":"loyal customer"}}`

	t.Run("anonymous", func(t *testing.T) {
		env := setupTestRouter()
		w := env.do("POST", "/api/v1/pricing/quote", body, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("customer", func(t *testing.T) {
		env := setupTestRouter()
		w := env.do("POST", "/api/v1/pricing/quote", body, env.token(t, "cust-1", rbac.RoleCustomer))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin", func(t *testing.T) {
		env := setupTestRouter()
		env.db.On("GetPlanByID", mock.Anything, "weight-loss").Return(nil, app_errors.ErrPlanNotFound)

		w := env.do("POST", "/api/v1/pricing/quote", body, env.token(t, "admin-1", rbac.RoleAdmin))

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.PriceBreakdownResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, 90000, resp.AdminDiscount, 0.001)
		assert.InDelta(t, 90000, resp.FinalTotal, 0.001)
	})
}

func TestHandler_Quote_InvalidToken(t *testing.T) {
	env := setupTestRouter()

	w := env.do("POST", "/api/v1/pricing/quote", quoteBody, "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ValidateCalendar(t *testing.T) {
	env := setupTestRouter()

	body := `{"days":["2026-10-20","2026-10-21"],"duration_weeks":1}`
	w := env.do("POST", "/api/v1/calendar/validate", body, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ValidateDaysResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, calendar.CodeMinDays, resp.Errors[0].Code)
}

func TestHandler_ValidateCalendar_EmptySelection(t *testing.T) {
	env := setupTestRouter()

	w := env.do("POST", "/api/v1/calendar/validate", `{"days":[],"duration_weeks":1}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ValidateDaysResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, calendar.CodeMinDays, resp.Errors[0].Code)
}

func TestHandler_ValidateCalendar_BadDate(t *testing.T) {
	env := setupTestRouter()

	body := `{"days":["20-10-2026"],"duration_weeks":1}`
	w := env.do("POST", "/api/v1/calendar/validate", body, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_GetHorizon(t *testing.T) {
	env := setupTestRouter()

	w := env.do("GET", "/api/v1/calendar/horizon?duration_weeks=2", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.HorizonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.DurationWeeks)
	assert.NotEmpty(t, resp.From)
	assert.NotEmpty(t, resp.To)

	w = env.do("GET", "/api/v1/calendar/horizon?duration_weeks=3", "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_PlaceOrder_Unauthorized(t *testing.T) {
	env := setupTestRouter()

	w := env.do("POST", "/api/v1/orders", quoteBody, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_PlaceOrder_ForOtherCustomerForbidden(t *testing.T) {
	env := setupTestRouter()

	body := `{"plan_id":"weight-loss","main_meals":2,"days":["2026-10-20","2026-10-21","2026-10-22"],"duration_weeks":1,"customer_id":"cust-2"}`
	w := env.do("POST", "/api/v1/orders", body, env.token(t, "cust-1", rbac.RoleCustomer))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_PlaceOrder_InvalidDays(t *testing.T) {
	env := setupTestRouter()

	body := `{"plan_id":"weight-loss","main_meals":2,"days":["2020-01-07","2020-01-08","2020-01-09"],"duration_weeks":1}`
	w := env.do("POST", "/api/v1/orders", body, env.token(t, "cust-1", rbac.RoleCustomer))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "selected days are not valid", resp.Message)
	assert.NotEmpty(t, resp.Errors)
	env.db.AssertNotCalled(t, "SaveSubscriptionTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetSubscription(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.expectSubscription(row, deliveries)

	w := env.do("GET", "/api/v1/subscriptions/sub-1", "", env.token(t, "cust-1", rbac.RoleCustomer))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SubscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sub-1", resp.SubscriptionID)
	assert.Equal(t, "active", resp.Status)
	assert.InDelta(t, 84000, resp.WeeklyPrice, 0.001)
}

func TestHandler_GetSubscription_Access(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		role     rbac.Role
		expected int
	}{
		{name: "other customer", userID: "cust-2", role: rbac.RoleCustomer, expected: http.StatusForbidden},
		{name: "admin", userID: "admin-1", role: rbac.RoleAdmin, expected: http.StatusOK},
		{name: "courier", userID: "courier-1", role: rbac.RoleCourier, expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestRouter()
			row, deliveries := subscriptionRow("cust-1", 0)
			env.expectSubscription(row, deliveries)

			w := env.do("GET", "/api/v1/subscriptions/sub-1", "", env.token(t, tt.userID, tt.role))

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestHandler_GetSubscription_NotFound(t *testing.T) {
	env := setupTestRouter()
	env.db.On("GetSubscriptionByID", mock.Anything, "missing").Return(nil, app_errors.ErrSubscriptionNotFound)

	w := env.do("GET", "/api/v1/subscriptions/missing", "", env.token(t, "cust-1", rbac.RoleCustomer))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetSchedule(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.expectSubscription(row, deliveries)

	w := env.do("GET", "/api/v1/subscriptions/sub-1/schedule", "", env.token(t, "cust-1", rbac.RoleCustomer))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Completed)
	assert.Equal(t, 1, resp.Pending)
	require.NotNil(t, resp.NextDeliveryDate)
	assert.Equal(t, deliveries[1].ScheduledDate.Format(time.DateOnly), *resp.NextDeliveryDate)
	assert.True(t, resp.CanPause)
}

func TestHandler_PauseSubscription_SecondPauseRefused(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 1)
	env.expectSubscription(row, deliveries)

	w := env.do("POST", "/api/v1/subscriptions/sub-1/pause", `{"duration_days":7}`, env.token(t, "cust-1", rbac.RoleCustomer))

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, subscription.CodeAlreadyPaused, resp.Error)
	env.db.AssertNotCalled(t, "SaveSubscriptionTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_PauseSubscription(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.expectSubscription(row, deliveries)
	env.db.On("SaveSubscriptionTx", mock.Anything,
		mock.MatchedBy(func(s *ydb.Subscription) bool {
			return s.Status == string(subscription.StatusPaused) && s.PauseCount == 1
		}),
		mock.Anything,
	).Run(func(args mock.Arguments) {
		args.Get(1).(*ydb.Subscription).Version = 3
	}).Return(nil)

	w := env.do("POST", "/api/v1/subscriptions/sub-1/pause", `{"duration_days":14}`, env.token(t, "cust-1", rbac.RoleCustomer))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SubscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "paused", resp.Status)
	require.NotNil(t, resp.PausedUntil)
	assert.Equal(t, deliveries[1].ScheduledDate.AddDate(0, 0, 14).Format(time.DateOnly), *resp.PausedUntil)
}

func TestHandler_PauseSubscription_InvalidDuration(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.expectSubscription(row, deliveries)

	w := env.do("POST", "/api/v1/subscriptions/sub-1/pause", `{"duration_days":10}`, env.token(t, "cust-1", rbac.RoleCustomer))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, subscription.CodeInvalidPauseDuration, decodeError(t, w).Error)
}

func TestHandler_ResumeSubscription_NotPaused(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.expectSubscription(row, deliveries)

	w := env.do("POST", "/api/v1/subscriptions/sub-1/resume", "", env.token(t, "cust-1", rbac.RoleCustomer))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, subscription.CodeNotPaused, decodeError(t, w).Error)
}

func TestHandler_CancelSubscription(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.expectSubscription(row, deliveries)
	env.db.On("SaveSubscriptionTx", mock.Anything,
		mock.MatchedBy(func(s *ydb.Subscription) bool { return s.Status == string(subscription.StatusCanceled) }),
		mock.MatchedBy(func(d []*ydb.Delivery) bool {
			return len(d) == 2 && d[0].Status == "completed" && d[1].Status == "skipped"
		}),
	).Return(nil)

	w := env.do("POST", "/api/v1/subscriptions/sub-1/cancel", "", env.token(t, "cust-1", rbac.RoleCustomer))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"canceled"`)
}

func TestHandler_GetSubscriptionHistory(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.expectSubscription(row, deliveries)
	env.db.On("GetSubscriptionHistory", mock.Anything, "sub-1").Return([]*ydb.SubscriptionHistory{
		{HistoryID: "h-1", SubscriptionID: "sub-1", EventType: string(models.HistorySubscriptionCreated), Details: "{}", ChangedAt: time.Now()},
	}, nil)

	w := env.do("GET", "/api/v1/subscriptions/sub-1/history", "", env.token(t, "cust-1", rbac.RoleCustomer))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "h-1")
}

func TestHandler_CompleteDelivery_RequiresPermission(t *testing.T) {
	env := setupTestRouter()

	w := env.do("POST", "/api/v1/admin/deliveries/d-2/complete", "", env.token(t, "cust-1", rbac.RoleCustomer))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CompleteDelivery(t *testing.T) {
	env := setupTestRouter()
	row, deliveries := subscriptionRow("cust-1", 0)
	env.db.On("GetDeliveryByID", mock.Anything, "d-2").Return(deliveries[1], nil)
	env.expectSubscription(row, deliveries)
	env.db.On("SaveSubscriptionTx", mock.Anything, mock.Anything,
		mock.MatchedBy(func(d []*ydb.Delivery) bool { return len(d) == 2 && d[1].Status == "completed" }),
	).Return(nil)

	w := env.do("POST", "/api/v1/admin/deliveries/d-2/complete", "", env.token(t, "courier-1", rbac.RoleCourier))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.DeliveryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "d-2", resp.DeliveryID)
	assert.Equal(t, "completed", resp.Status)
	assert.NotNil(t, resp.CompletedAt)
}

func TestHandler_RunExpirySweep(t *testing.T) {
	env := setupTestRouter()
	env.db.On("ListSubscriptionsByStatus", mock.Anything, mock.Anything).Return([]*ydb.Subscription{}, nil)

	w := env.do("POST", "/api/v1/admin/subscriptions/expire", "", env.token(t, "admin-1", rbac.RoleAdmin))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ExpireSweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Expired)
	assert.Empty(t, resp.Error)
}

func TestHandler_GetOrder(t *testing.T) {
	env := setupTestRouter()
	env.db.On("GetOrderByID", mock.Anything, "ord-1").Return(&ydb.Order{
		OrderID:        "ord-1",
		SubscriptionID: "sub-1",
		CustomerID:     "cust-1",
		PlanID:         "balanced",
		FinalTotal:     "84000.00",
		DocumentKey:    "orders/ord-1.json",
		CreatedAt:      time.Now(),
	}, nil)
	env.storage.On("GeneratePresignedDownloadURL", mock.Anything, "orders/ord-1.json", mock.Anything).Return("https://example.com/ord-1", nil)

	w := env.do("GET", "/api/v1/orders/ord-1", "", env.token(t, "cust-1", rbac.RoleCustomer))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://example.com/ord-1")

	w = env.do("GET", "/api/v1/orders/ord-1", "", env.token(t, "cust-2", rbac.RoleCustomer))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetOrderDocument(t *testing.T) {
	env := setupTestRouter()
	env.db.On("GetOrderByID", mock.Anything, "ord-1").Return(&ydb.Order{
		OrderID:     "ord-1",
		CustomerID:  "cust-1",
		DocumentKey: "orders/ord-1.json",
	}, nil)
	env.storage.On("GetObject", mock.Anything, "orders/ord-1.json").
		Return([]byte(`{"order_id":"ord-1","customer_id":"cust-1","plan_id":"balanced","final_total":"84000"}`), nil)

	w := env.do("GET", "/api/v1/orders/ord-1/document", "", env.token(t, "cust-1", rbac.RoleCustomer))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plan_id":"balanced"`)

	w = env.do("GET", "/api/v1/orders/ord-1/document", "", env.token(t, "cust-2", rbac.RoleCustomer))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do("GET", "/api/v1/orders/ord-1/document", "", env.token(t, "admin-1", rbac.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}
