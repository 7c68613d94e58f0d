package subscription

import (
	"fmt"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/lumiforge/mealsub-backend/internal/schedule"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
	"github.com/shopspring/decimal"
)

// FrequencyWeekly is the only billing frequency currently sold.
const FrequencyWeekly = "weekly"

// Subscription is a customer's recurring meal delivery. Its status only
// changes through transition, so illegal moves are rejected in one place.
type Subscription struct {
	ID              string
	CustomerID      string
	ContactEmail    string
	PlanID          string
	Frequency       string
	DurationWeeks   calendar.DurationWeeks
	WeeklyPrice     decimal.Decimal
	StartDate       time.Time
	NextBillingDate time.Time
	PauseCount      int
	PausedAt        *time.Time
	PausedUntil     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	status  Status
	version int64
}

// Status returns the current lifecycle state.
func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) transition(to Status) error {
	if !CanTransition(s.status, to) {
		return &TransitionError{From: s.status, To: to}
	}
	s.status = to
	return nil
}

func fromRow(row *ydb.Subscription) (*Subscription, error) {
	status, err := ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(row.WeeklyPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid weekly price for subscription %s: %w", row.SubscriptionID, err)
	}

	return &Subscription{
		ID:              row.SubscriptionID,
		CustomerID:      row.CustomerID,
		ContactEmail:    row.ContactEmail,
		PlanID:          row.PlanID,
		Frequency:       row.Frequency,
		DurationWeeks:   calendar.DurationWeeks(row.DurationWeeks),
		WeeklyPrice:     price,
		StartDate:       calendar.Day(row.StartDate),
		NextBillingDate: calendar.Day(row.NextBillingDate),
		PauseCount:      int(row.PauseCount),
		PausedAt:        row.PausedAt,
		PausedUntil:     row.PausedUntil,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		status:          status,
		version:         row.Version,
	}, nil
}

func (s *Subscription) toRow() *ydb.Subscription {
	return &ydb.Subscription{
		SubscriptionID:  s.ID,
		CustomerID:      s.CustomerID,
		ContactEmail:    s.ContactEmail,
		PlanID:          s.PlanID,
		Status:          string(s.status),
		Frequency:       s.Frequency,
		DurationWeeks:   int32(s.DurationWeeks),
		WeeklyPrice:     s.WeeklyPrice.StringFixed(2),
		StartDate:       s.StartDate,
		NextBillingDate: s.NextBillingDate,
		PauseCount:      int32(s.PauseCount),
		PausedAt:        s.PausedAt,
		PausedUntil:     s.PausedUntil,
		Version:         s.version,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func deliveryFromRow(row *ydb.Delivery) schedule.Delivery {
	return schedule.Delivery{
		ID:          row.DeliveryID,
		Date:        calendar.Day(row.ScheduledDate),
		Status:      schedule.DeliveryStatus(row.Status),
		CompletedAt: row.CompletedAt,
	}
}

func deliveryToRow(subscriptionID string, d schedule.Delivery) *ydb.Delivery {
	return &ydb.Delivery{
		DeliveryID:     d.ID,
		SubscriptionID: subscriptionID,
		ScheduledDate:  d.Date,
		Status:         string(d.Status),
		CompletedAt:    d.CompletedAt,
	}
}
