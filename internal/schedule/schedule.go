// Package schedule holds delivery records and the read-only projection of
// a subscription's schedule.
package schedule

import (
	"slices"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/samber/lo"
)

// DeliveryStatus is the fulfillment state of one delivery.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusCompleted DeliveryStatus = "completed"
	StatusSkipped   DeliveryStatus = "skipped"
)

// Delivery is one scheduled delivery day. Date is a civil date at
// midnight UTC.
type Delivery struct {
	ID          string
	Date        time.Time
	Status      DeliveryStatus
	CompletedAt *time.Time
}

func (d Delivery) IsPending() bool {
	return d.Status == StatusPending
}

// PauseWindow tells whether a pause may be requested now. EligibleAt is
// set when pausing is blocked only by the notice period.
type PauseWindow struct {
	CanPause   bool
	EligibleAt *time.Time
}

// Projection summarizes a subscription's schedule. Skipped deliveries are
// left out of every field.
type Projection struct {
	SubscriptionID   string
	Deliveries       []Delivery
	Total            int
	Completed        int
	Pending          int
	NextDeliveryDate *time.Time
	CanPause         bool
	PauseEligibleAt  *time.Time
}

// Sorted returns a copy of the deliveries ordered by date.
func Sorted(deliveries []Delivery) []Delivery {
	out := slices.Clone(deliveries)
	slices.SortStableFunc(out, func(a, b Delivery) int { return a.Date.Compare(b.Date) })
	return out
}

// NextPending returns the earliest pending delivery date.
func NextPending(deliveries []Delivery) (time.Time, bool) {
	pending := lo.Filter(deliveries, func(d Delivery, _ int) bool { return d.IsPending() })
	if len(pending) == 0 {
		return time.Time{}, false
	}
	return lo.MinBy(pending, func(a, b Delivery) bool { return a.Date.Before(b.Date) }).Date, true
}

// LastDate returns the latest non-skipped delivery date.
func LastDate(deliveries []Delivery) (time.Time, bool) {
	active := lo.Reject(deliveries, func(d Delivery, _ int) bool { return d.Status == StatusSkipped })
	if len(active) == 0 {
		return time.Time{}, false
	}
	return lo.MaxBy(active, func(a, b Delivery) bool { return a.Date.After(b.Date) }).Date, true
}

// ShiftPending moves every pending delivery by days. Completed and
// skipped deliveries keep their dates.
func ShiftPending(deliveries []Delivery, days int) []Delivery {
	return lo.Map(deliveries, func(d Delivery, _ int) Delivery {
		if d.IsPending() {
			d.Date = calendar.Day(d.Date).AddDate(0, 0, days)
		}
		return d
	})
}

// SkipPending marks every pending delivery as skipped.
func SkipPending(deliveries []Delivery) []Delivery {
	return lo.Map(deliveries, func(d Delivery, _ int) Delivery {
		if d.IsPending() {
			d.Status = StatusSkipped
		}
		return d
	})
}

// Project builds the schedule view from the stored deliveries and the
// pause window computed for the subscription.
func Project(subscriptionID string, deliveries []Delivery, window PauseWindow) Projection {
	visible := lo.Reject(Sorted(deliveries), func(d Delivery, _ int) bool {
		return d.Status == StatusSkipped
	})

	p := Projection{
		SubscriptionID:  subscriptionID,
		Deliveries:      visible,
		Completed:       lo.CountBy(visible, func(d Delivery) bool { return d.Status == StatusCompleted }),
		Pending:         lo.CountBy(visible, func(d Delivery) bool { return d.IsPending() }),
		CanPause:        window.CanPause,
		PauseEligibleAt: window.EligibleAt,
	}
	p.Total = p.Completed + p.Pending

	if next, ok := NextPending(visible); ok {
		p.NextDeliveryDate = &next
	}
	return p
}
