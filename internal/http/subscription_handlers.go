package http

import (
	"net/http"

	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/rbac"
	"github.com/lumiforge/mealsub-backend/internal/schedule"
	"github.com/lumiforge/mealsub-backend/internal/subscription"
)

// authorizeSubscription loads the subscription from the path and checks
// that the caller owns it or may manage any subscription
func (s *Server) authorizeSubscription(w http.ResponseWriter, r *http.Request, permission rbac.Permission) (*subscription.Subscription, bool) {
	claims, ok := GetUserClaims(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}
	if !s.can(claims, permission) {
		s.writeServiceError(w, r, app_errors.ErrAccessDenied)
		return nil, false
	}

	sub, err := s.subscriptions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return nil, false
	}
	if sub.CustomerID != claims.UserID && !s.can(claims, rbac.PermissionSubscriptionManage) {
		s.writeServiceError(w, r, app_errors.ErrAccessDenied)
		return nil, false
	}
	return sub, true
}

// GetSubscription handles subscription lookup
// @Summary		Get a subscription
// @Tags		subscriptions
// @Produce	json
// @Param		id	path		string	true	"Subscription ID"
// @Success	200	{object}	models.SubscriptionResponse
// @Failure	403	{object}	ErrorResponse
// @Failure	404	{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/subscriptions/{id} [get]
func (s *Server) GetSubscription(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.authorizeSubscription(w, r, rbac.PermissionSubscriptionView)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

// GetSchedule handles the delivery schedule projection
// @Summary		Delivery schedule
// @Description	Completed and pending deliveries, next delivery date and pause eligibility
// @Tags		subscriptions
// @Produce	json
// @Param		id	path		string	true	"Subscription ID"
// @Success	200	{object}	models.ScheduleResponse
// @Failure	403	{object}	ErrorResponse
// @Failure	404	{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/subscriptions/{id}/schedule [get]
func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.authorizeSubscription(w, r, rbac.PermissionSubscriptionView)
	if !ok {
		return
	}

	projection, err := s.subscriptions.Schedule(r.Context(), sub.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toScheduleResponse(projection))
}

// PauseSubscription handles pause requests
// @Summary		Pause a subscription
// @Description	Pauses for 7, 14 or 21 days; pending deliveries move by the same number of days
// @Tags		subscriptions
// @Accept		json
// @Produce	json
// @Param		id		path		string				true	"Subscription ID"
// @Param		request	body		models.PauseRequest	true	"Pause duration"
// @Success	200		{object}	models.SubscriptionResponse
// @Failure	409		{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/subscriptions/{id}/pause [post]
func (s *Server) PauseSubscription(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.authorizeSubscription(w, r, rbac.PermissionSubscriptionPause)
	if !ok {
		return
	}
	var req models.PauseRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	claims, _ := GetUserClaims(r)
	paused, err := s.subscriptions.Pause(r.Context(), sub.ID, req.DurationDays, claims.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSubscriptionResponse(paused))
}

// ResumeSubscription handles resume requests
// @Summary		Resume a subscription
// @Description	Without resume_date deliveries continue from the earliest allowed date (48 hours notice)
// @Tags		subscriptions
// @Accept		json
// @Produce	json
// @Param		id		path		string					true	"Subscription ID"
// @Param		request	body		models.ResumeRequest	false	"Explicit resume date"
// @Success	200		{object}	models.ResumeResponse
// @Failure	409		{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/subscriptions/{id}/resume [post]
func (s *Server) ResumeSubscription(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.authorizeSubscription(w, r, rbac.PermissionSubscriptionPause)
	if !ok {
		return
	}
	var req models.ResumeRequest
	if r.ContentLength != 0 && !s.decodeRequest(w, r, &req) {
		return
	}

	claims, _ := GetUserClaims(r)
	result, err := s.subscriptions.Resume(r.Context(), sub.ID, req.ResumeDate, claims.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, models.ResumeResponse{
		Subscription:     toSubscriptionResponse(result.Subscription),
		ResumeAt:         result.ResumeAt,
		ShiftDays:        result.ShiftDays,
		NextDeliveryDate: formatDay(result.NextDeliveryDate),
	})
}

// CancelSubscription handles cancellation
// @Summary		Cancel a subscription
// @Tags		subscriptions
// @Produce	json
// @Param		id	path		string	true	"Subscription ID"
// @Success	200	{object}	models.SubscriptionResponse
// @Failure	409	{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/subscriptions/{id}/cancel [post]
func (s *Server) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.authorizeSubscription(w, r, rbac.PermissionSubscriptionEnd)
	if !ok {
		return
	}

	claims, _ := GetUserClaims(r)
	canceled, err := s.subscriptions.Cancel(r.Context(), sub.ID, claims.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSubscriptionResponse(canceled))
}

// GetSubscriptionHistory handles the audit trail lookup
// @Summary		Subscription history
// @Tags		subscriptions
// @Produce	json
// @Param		id	path		string	true	"Subscription ID"
// @Success	200	{array}		models.HistoryEntry
// @Failure	403	{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/subscriptions/{id}/history [get]
func (s *Server) GetSubscriptionHistory(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.authorizeSubscription(w, r, rbac.PermissionSubscriptionView)
	if !ok {
		return
	}

	entries, err := s.history.ListHistory(r.Context(), sub.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

// CompleteDelivery handles the fulfillment event
// @Summary		Mark a delivery completed
// @Tags		admin
// @Produce	json
// @Param		id	path		string	true	"Delivery ID"
// @Success	200	{object}	models.DeliveryResponse
// @Failure	404	{object}	ErrorResponse
// @Failure	409	{object}	ErrorResponse
// @Security	BearerAuth
// @Router		/api/v1/admin/deliveries/{id}/complete [post]
func (s *Server) CompleteDelivery(w http.ResponseWriter, r *http.Request) {
	claims, _ := GetUserClaims(r)

	delivery, err := s.subscriptions.MarkDelivered(r.Context(), r.PathValue("id"), claims.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDeliveryResponses([]schedule.Delivery{*delivery})[0])
}

// RunExpirySweep handles a manual expiry sweep
// @Summary		Expire finished subscriptions now
// @Tags		admin
// @Produce	json
// @Success	200	{object}	models.ExpireSweepResponse
// @Security	BearerAuth
// @Router		/api/v1/admin/subscriptions/expire [post]
func (s *Server) RunExpirySweep(w http.ResponseWriter, r *http.Request) {
	expired, err := s.subscriptions.ExpireDue(r.Context())
	resp := models.ExpireSweepResponse{Expired: expired}
	if err != nil {
		resp.Error = err.Error()
	}
	s.writeJSON(w, http.StatusOK, resp)
}
