package http

import (
	"errors"
	"net/http"

	"github.com/lumiforge/mealsub-backend/internal/calendar"
	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/logger"
	"github.com/lumiforge/mealsub-backend/internal/order"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/subscription"
	"github.com/lumiforge/mealsub-backend/internal/validation"
	"github.com/samber/lo"
)

// writeServiceError maps domain and storage errors to HTTP responses
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		fieldErrs     validation.Errors
		fieldErr      validation.ValidationError
		pricingErr    *pricing.PricingError
		pauseErr      *subscription.PauseError
		resumeErr     *subscription.ResumeError
		transitionErr *subscription.TransitionError
	)

	switch {
	case errors.As(err, &fieldErrs):
		s.writeValidationErrors(w, fieldErrs)
	case errors.As(err, &fieldErr):
		s.writeValidationErrors(w, validation.Errors{fieldErr})
	case errors.As(err, &pricingErr):
		s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   http.StatusText(http.StatusUnprocessableEntity),
			Message: "cannot price this selection",
			Reason:  pricingErr.Reason,
			Code:    http.StatusUnprocessableEntity,
		})
	case errors.As(err, &pauseErr):
		s.writeJSON(w, http.StatusConflict, ErrorResponse{
			Error:      pauseErr.Code,
			Message:    pauseErr.Error(),
			Reason:     pauseErr.Reason,
			EligibleAt: pauseErr.EligibleAt,
			Code:       http.StatusConflict,
		})
	case errors.As(err, &resumeErr):
		s.writeJSON(w, http.StatusConflict, ErrorResponse{
			Error:   resumeErr.Code,
			Message: resumeErr.Error(),
			Reason:  resumeErr.Reason,
			Code:    http.StatusConflict,
		})
	case errors.As(err, &transitionErr):
		s.writeError(w, http.StatusConflict, transitionErr.Error())
	case errors.Is(err, app_errors.ErrConcurrentModification),
		errors.Is(err, app_errors.ErrSubscriptionNotActive),
		errors.Is(err, app_errors.ErrDeliveryNotPending),
		errors.Is(err, app_errors.ErrSubscriptionExists):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, app_errors.ErrSubscriptionNotFound),
		errors.Is(err, app_errors.ErrDeliveryNotFound),
		errors.Is(err, app_errors.ErrOrderNotFound),
		errors.Is(err, app_errors.ErrPlanNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app_errors.ErrAccessDenied):
		s.writeError(w, http.StatusForbidden, err.Error())
	default:
		if invalid, ok := order.IsInvalidDays(err); ok {
			s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:   http.StatusText(http.StatusUnprocessableEntity),
				Message: "selected days are not valid",
				Code:    http.StatusUnprocessableEntity,
				Errors: lo.Map(invalid.Errors, func(e calendar.ValidationError, _ int) FieldError {
					return FieldError{Field: "days", Code: e.Code, Week: e.Week, Message: e.Message}
				}),
			})
			return
		}
		logger.FromContext(r.Context()).Error("Request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) writeValidationErrors(w http.ResponseWriter, errs validation.Errors) {
	s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   http.StatusText(http.StatusUnprocessableEntity),
		Message: "request validation failed",
		Code:    http.StatusUnprocessableEntity,
		Errors: lo.Map(errs, func(e validation.ValidationError, _ int) FieldError {
			return FieldError{Field: e.Field, Message: e.Message}
		}),
	})
}
