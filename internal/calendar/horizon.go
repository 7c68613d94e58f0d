package calendar

import (
	"fmt"
	"time"
)

// Selectable horizon in calendar weeks for each duration. Every duration
// gets one extra week of buffer for the storefront calendar. These are a
// product decision, not derived from the duration.
const (
	OneWeekHorizonWeeks  = 2
	TwoWeekHorizonWeeks  = 3
	FourWeekHorizonWeeks = 5
)

var horizonWeeks = map[DurationWeeks]int{
	OneWeek:   OneWeekHorizonWeeks,
	TwoWeeks:  TwoWeekHorizonWeeks,
	FourWeeks: FourWeekHorizonWeeks,
}

// Window is an inclusive range of selectable civil dates.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether the civil date of t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	day := Day(t)
	return !day.Before(w.From) && !day.After(w.To)
}

// Horizon returns the dates a customer may pick for the given duration,
// starting today.
func Horizon(duration DurationWeeks, today time.Time) (Window, error) {
	weeks, ok := horizonWeeks[duration]
	if !ok {
		return Window{}, fmt.Errorf("unsupported duration: %d weeks", duration)
	}
	from := Day(today)
	return Window{From: from, To: from.AddDate(0, 0, weeks*7)}, nil
}

// CheckHorizon reports selected days that fall before today or past the
// duration's horizon, one error per offending date.
func CheckHorizon(selected []time.Time, duration DurationWeeks, today time.Time) []ValidationError {
	window, err := Horizon(duration, today)
	if err != nil {
		return []ValidationError{{Code: CodeInvalidDuration, Message: err.Error()}}
	}

	var errs []ValidationError
	for _, day := range Normalize(selected) {
		switch {
		case day.Before(window.From):
			errs = append(errs, ValidationError{
				Code:    CodeBeforeToday,
				Message: fmt.Sprintf("%s is in the past", day.Format(time.DateOnly)),
			})
		case day.After(window.To):
			errs = append(errs, ValidationError{
				Code:    CodeOutsideHorizon,
				Message: fmt.Sprintf("%s is after the last selectable day %s", day.Format(time.DateOnly), window.To.Format(time.DateOnly)),
			})
		}
	}
	return errs
}
