package http

import (
	"net/http"

	"github.com/lumiforge/mealsub-backend/docs"
	"github.com/lumiforge/mealsub-backend/internal/jwt"
	"github.com/lumiforge/mealsub-backend/internal/rbac"
)

// SetupRouter creates and configures HTTP router
func SetupRouter(server *Server, jwtManager jwt.TokenManager) http.Handler {
	mux := http.NewServeMux()

	base := []func(http.Handler) http.Handler{CORSMiddleware, RequestIDMiddleware, LoggingMiddleware}
	public := func(extra ...func(http.Handler) http.Handler) []func(http.Handler) http.Handler {
		return append(append([]func(http.Handler) http.Handler{}, base...), extra...)
	}
	optionalAuth := func(next http.Handler) http.Handler {
		return OptionalAuthMiddleware(jwtManager, next)
	}
	requireAuth := func(next http.Handler) http.Handler {
		return AuthMiddleware(jwtManager, next)
	}
	permitted := func(permission rbac.Permission) func(http.Handler) http.Handler {
		return RequirePermission(server.rbac, permission)
	}

	// Health check endpoint (no auth required)
	mux.Handle("GET /health", chainMiddleware(server.Health))

	// OpenAPI documentation endpoint (no auth required)
	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
	})

	// Catalog and calendar (no auth required)
	mux.Handle("GET /api/v1/plans", chainMiddleware(server.ListPlans, public()...))
	mux.Handle("POST /api/v1/calendar/validate", chainMiddleware(server.ValidateCalendar, public(ContentTypeMiddleware)...))
	mux.Handle("GET /api/v1/calendar/horizon", chainMiddleware(server.GetHorizon, public()...))

	// Pricing: anonymous quotes, overrides need an admin token
	mux.Handle("POST /api/v1/pricing/quote", chainMiddleware(server.Quote, public(ContentTypeMiddleware, optionalAuth)...))

	// Orders
	mux.Handle("POST /api/v1/orders", chainMiddleware(server.PlaceOrder, public(ContentTypeMiddleware, requireAuth, permitted(rbac.PermissionOrderPlace))...))
	mux.Handle("GET /api/v1/orders/{id}", chainMiddleware(server.GetOrder, public(requireAuth)...))
	mux.Handle("GET /api/v1/orders/{id}/document", chainMiddleware(server.GetOrderDocument, public(requireAuth)...))

	// Subscriptions
	mux.Handle("GET /api/v1/subscriptions/{id}", chainMiddleware(server.GetSubscription, public(requireAuth)...))
	mux.Handle("GET /api/v1/subscriptions/{id}/schedule", chainMiddleware(server.GetSchedule, public(requireAuth)...))
	mux.Handle("GET /api/v1/subscriptions/{id}/history", chainMiddleware(server.GetSubscriptionHistory, public(requireAuth)...))
	mux.Handle("POST /api/v1/subscriptions/{id}/pause", chainMiddleware(server.PauseSubscription, public(ContentTypeMiddleware, requireAuth)...))
	mux.Handle("POST /api/v1/subscriptions/{id}/resume", chainMiddleware(server.ResumeSubscription, public(requireAuth)...))
	mux.Handle("POST /api/v1/subscriptions/{id}/cancel", chainMiddleware(server.CancelSubscription, public(requireAuth)...))

	// Admin routes
	mux.Handle("POST /api/v1/admin/deliveries/{id}/complete", chainMiddleware(server.CompleteDelivery, public(requireAuth, permitted(rbac.PermissionDeliveryFulfill))...))
	mux.Handle("POST /api/v1/admin/subscriptions/expire", chainMiddleware(server.RunExpirySweep, public(requireAuth, permitted(rbac.PermissionSubscriptionExpire))...))

	return mux
}

// chainMiddleware applies multiple middleware to a handler function
func chainMiddleware(handler http.HandlerFunc, middleware ...func(http.Handler) http.Handler) http.HandlerFunc {
	h := http.Handler(handler)
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}
