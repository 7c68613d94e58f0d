// Package calendar validates customer-selected delivery days.
package calendar

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
)

// DurationWeeks is the length of a subscription in weeks.
type DurationWeeks int

const (
	OneWeek   DurationWeeks = 1
	TwoWeeks  DurationWeeks = 2
	FourWeeks DurationWeeks = 4
)

// Valid reports whether d is one of the sold durations.
func (d DurationWeeks) Valid() bool {
	return d == OneWeek || d == TwoWeeks || d == FourWeeks
}

// Days returns the nominal length of the subscription in days.
func (d DurationWeeks) Days() int {
	return int(d) * 7
}

// Error codes returned in ValidationError.Code.
const (
	CodeInvalidDuration = "invalid_duration"
	CodeMinDays         = "min_days"
	CodeMinWeeks        = "min_weeks"
	CodeWeekMinDays     = "week_min_days"
	CodeBeforeToday     = "before_today"
	CodeOutsideHorizon  = "outside_horizon"
)

// ValidationError describes one broken selection rule. Week is the
// 1-based chronological week number for per-week rules, 0 otherwise.
type ValidationError struct {
	Code    string `json:"code"`
	Week    int    `json:"week,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

type rule struct {
	minDays        int
	minWeeks       int
	minDaysPerWeek int
}

var rules = map[DurationWeeks]rule{
	OneWeek:   {minDays: 3},
	TwoWeeks:  {minDays: 6, minWeeks: 2, minDaysPerWeek: 2},
	FourWeeks: {minDays: 10, minWeeks: 4, minDaysPerWeek: 2},
}

// Week is one ISO calendar week of a selection.
type Week struct {
	Start time.Time
	Days  []time.Time
}

// Day truncates t to its civil date, expressed as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	day := Day(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Normalize deduplicates the selection by civil date and sorts it.
func Normalize(selected []time.Time) []time.Time {
	days := lo.Uniq(lo.Map(selected, func(t time.Time, _ int) time.Time {
		return Day(t)
	}))
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	return days
}

// GroupByWeek groups the normalized selection into ISO weeks in
// chronological order.
func GroupByWeek(selected []time.Time) []Week {
	days := Normalize(selected)
	grouped := lo.GroupBy(days, WeekStart)

	starts := lo.Keys(grouped)
	slices.SortFunc(starts, func(a, b time.Time) int { return a.Compare(b) })

	return lo.Map(starts, func(start time.Time, _ int) Week {
		return Week{Start: start, Days: grouped[start]}
	})
}

// Validate checks the selected days against the rules for the duration.
// It never fails; broken rules are returned as data and an empty result
// means the selection is acceptable. Horizon bounds are not checked here.
func Validate(selected []time.Time, duration DurationWeeks) []ValidationError {
	r, ok := rules[duration]
	if !ok {
		return []ValidationError{{
			Code:    CodeInvalidDuration,
			Message: fmt.Sprintf("duration must be 1, 2 or 4 weeks, got %d", duration),
		}}
	}

	weeks := GroupByWeek(selected)
	total := lo.SumBy(weeks, func(w Week) int { return len(w.Days) })

	var errs []ValidationError
	if total < r.minDays {
		errs = append(errs, ValidationError{
			Code:    CodeMinDays,
			Message: fmt.Sprintf("select at least %d days, got %d", r.minDays, total),
		})
	}
	if len(weeks) < r.minWeeks {
		errs = append(errs, ValidationError{
			Code:    CodeMinWeeks,
			Message: fmt.Sprintf("select days in at least %d different weeks, got %d", r.minWeeks, len(weeks)),
		})
	}

	// Weeks after the first must each carry enough days; only the first
	// offending week is reported.
	if r.minDaysPerWeek > 0 {
		last := min(r.minWeeks, len(weeks))
		for i := 1; i < last; i++ {
			if len(weeks[i].Days) < r.minDaysPerWeek {
				errs = append(errs, ValidationError{
					Code:    CodeWeekMinDays,
					Week:    i + 1,
					Message: fmt.Sprintf("week %d needs at least %d days, got %d", i+1, r.minDaysPerWeek, len(weeks[i].Days)),
				})
				break
			}
		}
	}

	return errs
}
