package models

import "time"

// SubscriptionResponse represents subscription information
// @Description	Subscription state
type SubscriptionResponse struct {
	SubscriptionID  string     `json:"subscription_id"`
	CustomerID      string     `json:"customer_id"`
	PlanID          string     `json:"plan_id"`
	Status          string     `json:"status"`
	Frequency       string     `json:"frequency"`
	DurationWeeks   int        `json:"duration_weeks"`
	WeeklyPrice     float64    `json:"weekly_price"`
	StartDate       string     `json:"start_date"`
	NextBillingDate string     `json:"next_billing_date"`
	PauseCount      int        `json:"pause_count"`
	PausedAt        *time.Time `json:"paused_at,omitempty"`
	PausedUntil     *string    `json:"paused_until,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DeliveryResponse represents one scheduled delivery
type DeliveryResponse struct {
	DeliveryID  string     `json:"delivery_id"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ScheduleResponse represents the delivery schedule of a subscription
// @Description	Delivery schedule projection
type ScheduleResponse struct {
	SubscriptionID   string             `json:"subscription_id"`
	Deliveries       []DeliveryResponse `json:"deliveries"`
	Total            int                `json:"total"`
	Completed        int                `json:"completed"`
	Pending          int                `json:"pending"`
	NextDeliveryDate *string            `json:"next_delivery_date"`
	CanPause         bool               `json:"can_pause"`
	PauseEligibleAt  *time.Time         `json:"pause_eligible_at,omitempty"`
}

// PauseRequest represents a pause request
// @Description	Pause duration in days (7, 14 or 21)
type PauseRequest struct {
	DurationDays int `json:"duration_days" validate:"required"`
}

// ResumeRequest represents a resume request; without resume_date the
// schedule continues from the earliest allowed date
// @Description	Optional explicit resume instant (RFC 3339)
type ResumeRequest struct {
	ResumeDate *time.Time `json:"resume_date,omitempty"`
}

// ResumeResponse represents the outcome of a resume
// @Description	Resumed subscription and the new schedule start
type ResumeResponse struct {
	Subscription     *SubscriptionResponse `json:"subscription"`
	ResumeAt         time.Time             `json:"resume_at"`
	ShiftDays        int                   `json:"shift_days"`
	NextDeliveryDate *string               `json:"next_delivery_date"`
}

// ExpireSweepResponse reports a manual expiry sweep
type ExpireSweepResponse struct {
	Expired int    `json:"expired"`
	Error   string `json:"error,omitempty"`
}
