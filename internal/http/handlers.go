package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/audit"
	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/lumiforge/mealsub-backend/internal/catalog"
	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/jwt"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/order"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/rbac"
	"github.com/lumiforge/mealsub-backend/internal/subscription"
	"github.com/lumiforge/mealsub-backend/internal/validation"
)

// Server represents HTTP server
type Server struct {
	catalog       *catalog.Service
	calculator    *pricing.Calculator
	subscriptions *subscription.Service
	orders        *order.Service
	history       *audit.Service
	rbac          *rbac.RBAC
	now           func() time.Time
}

// NewServer creates a new HTTP server
func NewServer(
	catalogService *catalog.Service,
	calculator *pricing.Calculator,
	subscriptions *subscription.Service,
	orders *order.Service,
	history *audit.Service,
	rbacManager *rbac.RBAC,
) *Server {
	return &Server{
		catalog:       catalogService,
		calculator:    calculator,
		subscriptions: subscriptions,
		orders:        orders,
		history:       history,
		rbac:          rbacManager,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

// decodeRequest decodes the JSON body and runs struct validation
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return false
	}
	if err := validation.Struct(req); err != nil {
		s.writeServiceError(w, r, err)
		return false
	}
	return true
}

func (s *Server) can(claims *jwt.Claims, permission rbac.Permission) bool {
	if claims == nil || !s.rbac.IsValidRole(rbac.Role(claims.Role)) {
		return false
	}
	return s.rbac.CheckPermissionWithRole(rbac.Role(claims.Role), permission)
}

// Health handles health check
// @Summary		Health check
// @Description	Liveness probe
// @Tags		health
// @Produce	json
// @Success	200	{object}	HealthResponse
// @Router		/health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// ListPlans handles plan catalog listing
// @Summary		List meal plans
// @Tags		catalog
// @Produce	json
// @Success	200	{array}		models.PlanResponse
// @Failure	500	{object}	ErrorResponse
// @Router		/api/v1/plans [get]
func (s *Server) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.catalog.GetAllPlans(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plans)
}

// ValidateCalendar handles delivery day validation
// @Summary		Validate selected delivery days
// @Description	Checks minimum days, minimum weeks and per-week minimums for the duration. Rule failures are returned as data.
// @Tags		calendar
// @Accept		json
// @Produce	json
// @Param		request	body		models.ValidateDaysRequest	true	"Selected days"
// @Success	200		{object}	models.ValidateDaysResponse
// @Failure	400		{object}	ErrorResponse
// @Failure	422		{object}	ErrorResponse
// @Router		/api/v1/calendar/validate [post]
func (s *Server) ValidateCalendar(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateDaysRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	days, err := parseDays(req.Days)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	errs := calendar.Validate(days, calendar.DurationWeeks(req.DurationWeeks))
	s.writeJSON(w, http.StatusOK, models.ValidateDaysResponse{
		Valid:  len(errs) == 0,
		Errors: toDayErrors(errs),
	})
}

// GetHorizon handles the selectable date window
// @Summary		Selectable delivery dates
// @Tags		calendar
// @Produce	json
// @Param		duration_weeks	query		int	true	"Subscription duration (1, 2 or 4)"
// @Success	200				{object}	models.HorizonResponse
// @Failure	422				{object}	ErrorResponse
// @Router		/api/v1/calendar/horizon [get]
func (s *Server) GetHorizon(w http.ResponseWriter, r *http.Request) {
	weeks, err := strconv.Atoi(r.URL.Query().Get("duration_weeks"))
	if err != nil {
		s.writeServiceError(w, r, validation.ValidationError{Field: "duration_weeks", Message: "must be a number"})
		return
	}

	window, err := calendar.Horizon(calendar.DurationWeeks(weeks), s.now())
	if err != nil {
		s.writeServiceError(w, r, validation.ValidationError{Field: "duration_weeks", Message: "must be one of: 1 2 4"})
		return
	}

	s.writeJSON(w, http.StatusOK, models.HorizonResponse{
		DurationWeeks: weeks,
		From:          window.From.Format(time.DateOnly),
		To:            window.To.Format(time.DateOnly),
	})
}

// Quote handles pricing requests
// @Summary		Price a meal selection
// @Description	Returns the itemized price with layered discounts. An admin override requires the admin role.
// @Tags		pricing
// @Accept		json
// @Produce	json
// @Param		request	body		models.QuoteRequest	true	"Selection"
// @Success	200		{object}	models.PriceBreakdownResponse
// @Failure	400		{object}	ErrorResponse
// @Failure	403		{object}	ErrorResponse
// @Failure	422		{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/pricing/quote [post]
func (s *Server) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	claims, _ := GetUserClaims(r)
	if req.Override != nil && !s.can(claims, rbac.PermissionPricingOverride) {
		s.writeServiceError(w, r, app_errors.ErrAccessDenied)
		return
	}

	sel, err := toSelection(req.MealSelectionRequest)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	override, err := toOverride(req.Override)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	breakdown, err := s.calculator.Quote(r.Context(), sel, override)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toBreakdownResponse(breakdown))
}

// PlaceOrder handles order submission
// @Summary		Place an order
// @Description	Validates the days, prices the selection, opens the subscription and hands the order to the order service
// @Tags		orders
// @Accept		json
// @Produce	json
// @Param		request	body		models.PlaceOrderRequest	true	"Order"
// @Success	201		{object}	models.PlaceOrderResponse
// @Failure	400		{object}	ErrorResponse
// @Failure	401		{object}	ErrorResponse
// @Failure	403		{object}	ErrorResponse
// @Failure	422		{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/orders [post]
func (s *Server) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetUserClaims(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req models.PlaceOrderRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	customerID := claims.UserID
	if req.CustomerID != "" && req.CustomerID != claims.UserID {
		if !s.can(claims, rbac.PermissionSubscriptionManage) {
			s.writeServiceError(w, r, app_errors.ErrAccessDenied)
			return
		}
		customerID = req.CustomerID
	}
	if req.Override != nil && !s.can(claims, rbac.PermissionPricingOverride) {
		s.writeServiceError(w, r, app_errors.ErrAccessDenied)
		return
	}

	contactEmail := req.ContactEmail
	if contactEmail == "" && customerID == claims.UserID {
		contactEmail = claims.Email
	}

	sel, err := toSelection(req.MealSelectionRequest)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	override, err := toOverride(req.Override)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	result, err := s.orders.Place(r.Context(), order.Request{
		CustomerID:   customerID,
		ContactEmail: contactEmail,
		Selection:    sel,
		Override:     override,
		ActorID:      claims.UserID,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, models.PlaceOrderResponse{
		OrderID:      result.OrderID,
		Subscription: toSubscriptionResponse(result.Subscription),
		Deliveries:   toDeliveryResponses(result.Deliveries),
		Price:        toBreakdownResponse(result.Breakdown),
	})
}

// GetOrder handles order lookup
// @Summary		Get an order
// @Tags		orders
// @Produce	json
// @Param		id	path		string	true	"Order ID"
// @Success	200	{object}	models.OrderResponse
// @Failure	403	{object}	ErrorResponse
// @Failure	404	{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/orders/{id} [get]
func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetUserClaims(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	resp, err := s.orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if resp.CustomerID != claims.UserID && !s.can(claims, rbac.PermissionSubscriptionManage) {
		s.writeServiceError(w, r, app_errors.ErrAccessDenied)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetOrderDocument handles the order document download
// @Summary		Get an order document
// @Description	The document handed to the order service, read back from object storage
// @Tags		orders
// @Produce	json
// @Param		id	path		string	true	"Order ID"
// @Success	200	{object}	order.Document
// @Failure	403	{object}	ErrorResponse
// @Failure	404	{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/orders/{id}/document [get]
func (s *Server) GetOrderDocument(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetUserClaims(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	doc, err := s.orders.Document(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if doc.CustomerID != claims.UserID && !s.can(claims, rbac.PermissionSubscriptionManage) {
		s.writeServiceError(w, r, app_errors.ErrAccessDenied)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}
