package subscription

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/lumiforge/mealsub-backend/internal/schedule"
)

// Policy holds the pause and resume rules.
type Policy struct {
	PauseNotice    time.Duration
	ResumeNotice   time.Duration
	PauseDurations []int
	MaxPauses      int
}

func DefaultPolicy() Policy {
	return Policy{
		PauseNotice:    72 * time.Hour,
		ResumeNotice:   48 * time.Hour,
		PauseDurations: []int{7, 14, 21},
		MaxPauses:      1,
	}
}

// AllowsPauseDuration reports whether days is an offered pause length.
func (p Policy) AllowsPauseDuration(days int) bool {
	return slices.Contains(p.PauseDurations, days)
}

// PauseWindow reports whether the subscription may be paused at now.
func (p Policy) PauseWindow(sub *Subscription, deliveries []schedule.Delivery, now time.Time) schedule.PauseWindow {
	window, _ := p.checkPause(sub, deliveries, now)
	return window
}

func (p Policy) checkPause(sub *Subscription, deliveries []schedule.Delivery, now time.Time) (schedule.PauseWindow, *PauseError) {
	if sub.status != StatusActive {
		return schedule.PauseWindow{}, &PauseError{Code: CodeNotActive, Reason: "subscription is not active"}
	}
	if sub.PauseCount >= p.MaxPauses {
		return schedule.PauseWindow{}, &PauseError{Code: CodeAlreadyPaused, Reason: "already paused once"}
	}

	next, ok := schedule.NextPending(deliveries)
	if !ok {
		return schedule.PauseWindow{}, &PauseError{Code: CodeNoPendingDeliveries, Reason: "no pending deliveries"}
	}

	// The eligible instant may already be in the past when the next
	// delivery is closer than the notice period.
	eligibleAt := next.Add(-p.PauseNotice)
	if now.After(eligibleAt) {
		return schedule.PauseWindow{EligibleAt: &eligibleAt}, &PauseError{
			Code:       CodeTooCloseToDelivery,
			Reason:     "too close to next delivery",
			EligibleAt: &eligibleAt,
		}
	}

	return schedule.PauseWindow{CanPause: true}, nil
}

// resumePlan decides when deliveries restart and how many days pending
// deliveries move.
func (p Policy) resumePlan(sub *Subscription, deliveries []schedule.Delivery, now time.Time, requested *time.Time) (time.Time, int, *ResumeError) {
	if sub.status != StatusPaused {
		return time.Time{}, 0, &ResumeError{Code: CodeNotPaused, Reason: "subscription is not paused"}
	}

	floor := now.Add(p.ResumeNotice)
	next, hasPending := schedule.NextPending(deliveries)

	if requested != nil {
		// Доставки переносятся на начало дня, поэтому сравниваем дни
		earliest := ceilDay(floor)
		if calendar.Day(*requested).Before(earliest) {
			reason := fmt.Sprintf("resume date must be at least %d hours from now (%s or later)",
				int(p.ResumeNotice.Hours()), earliest.Format(time.DateOnly))
			return time.Time{}, 0, &ResumeError{Code: CodeResumeTooSoon, Reason: reason}
		}
		if !hasPending {
			return *requested, 0, nil
		}
		return *requested, daysBetween(next, calendar.Day(*requested)), nil
	}

	if !hasPending {
		return floor, 0, nil
	}
	if !next.Before(floor) {
		return next, 0, nil
	}
	return floor, daysBetween(next, ceilDay(floor)), nil
}

func ceilDay(t time.Time) time.Time {
	day := calendar.Day(t)
	if day.Before(t) {
		return day.AddDate(0, 0, 1)
	}
	return day
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(calendar.Day(to).Sub(calendar.Day(from)).Hours() / 24))
}
