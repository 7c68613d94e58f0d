package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is the start of an ISO week.
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func days(offsets ...int) []time.Time {
	out := make([]time.Time, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, monday.AddDate(0, 0, o))
	}
	return out
}

func codes(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func TestValidate_OneWeek(t *testing.T) {
	tests := []struct {
		name    string
		days    []time.Time
		wantErr bool
	}{
		{"empty", nil, true},
		{"two days", days(0, 1), true},
		{"three days", days(0, 2, 4), false},
		{"three days across weeks", days(5, 6, 7), false},
		{"duplicates collapse", append(days(0, 1), days(1)...), true},
		{"seven days", days(0, 1, 2, 3, 4, 5, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.days, OneWeek)
			if tt.wantErr {
				assert.Equal(t, []string{CodeMinDays}, codes(errs))
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidate_TwoWeeks(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, Validate(days(0, 1, 2, 3, 7, 8), TwoWeeks))
	})

	t.Run("six days in one week", func(t *testing.T) {
		errs := Validate(days(0, 1, 2, 3, 4, 5), TwoWeeks)
		assert.Equal(t, []string{CodeMinWeeks}, codes(errs))
	})

	t.Run("second week has one day", func(t *testing.T) {
		errs := Validate(days(0, 1, 2, 3, 4, 7), TwoWeeks)
		require.Len(t, errs, 1)
		assert.Equal(t, CodeWeekMinDays, errs[0].Code)
		assert.Equal(t, 2, errs[0].Week)
	})

	t.Run("too few days", func(t *testing.T) {
		errs := Validate(days(0, 1, 7, 8), TwoWeeks)
		assert.Equal(t, []string{CodeMinDays}, codes(errs))
	})
}

func TestValidate_FourWeeks(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, Validate(days(0, 1, 2, 7, 8, 14, 15, 21, 22, 23), FourWeeks))
	})

	t.Run("week two short is reported first", func(t *testing.T) {
		// weeks: 3, 1, 3, 3
		errs := Validate(days(0, 1, 2, 7, 14, 15, 16, 21, 22, 23), FourWeeks)
		require.Len(t, errs, 1)
		assert.Equal(t, CodeWeekMinDays, errs[0].Code)
		assert.Equal(t, 2, errs[0].Week)
	})

	t.Run("only first failing week is reported", func(t *testing.T) {
		// weeks: 5, 2, 1, 1
		errs := Validate(days(0, 1, 2, 3, 4, 7, 8, 14, 21), FourWeeks)
		assert.Equal(t, []string{CodeMinDays, CodeWeekMinDays}, codes(errs))
		assert.Equal(t, 3, errs[1].Week)
	})

	t.Run("three weeks", func(t *testing.T) {
		errs := Validate(days(0, 1, 2, 3, 7, 8, 9, 14, 15, 16), FourWeeks)
		assert.Equal(t, []string{CodeMinWeeks}, codes(errs))
	})

	t.Run("gap weeks are not counted", func(t *testing.T) {
		// weeks present: 0, 2, 3, 4 (week 1 empty), chronological order is kept
		errs := Validate(days(0, 1, 2, 14, 15, 21, 22, 28, 29, 30), FourWeeks)
		assert.Empty(t, errs)
	})
}

func TestValidate_InvalidDuration(t *testing.T) {
	errs := Validate(days(0, 1, 2), DurationWeeks(3))
	assert.Equal(t, []string{CodeInvalidDuration}, codes(errs))
}

func TestValidate_Deterministic(t *testing.T) {
	selection := days(22, 0, 7, 1, 8, 15, 14, 21, 2, 23)
	reversed := make([]time.Time, len(selection))
	for i, d := range selection {
		reversed[len(selection)-1-i] = d
	}

	assert.Equal(t, Validate(selection, FourWeeks), Validate(reversed, FourWeeks))
}

func TestGroupByWeek(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	selection := []time.Time{
		time.Date(2026, 10, 26, 9, 0, 0, 0, loc),
		time.Date(2026, 10, 25, 23, 0, 0, 0, time.UTC), // Sunday
		time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC),
	}

	weeks := GroupByWeek(selection)

	require.Len(t, weeks, 2)
	assert.Equal(t, monday, weeks[0].Start)
	assert.Len(t, weeks[0].Days, 2)
	assert.Equal(t, monday.AddDate(0, 0, 7), weeks[1].Start)
	assert.Len(t, weeks[1].Days, 1)
}

func TestHorizon(t *testing.T) {
	today := time.Date(2026, 10, 21, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		duration DurationWeeks
		wantTo   time.Time
	}{
		{OneWeek, time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC)},
		{TwoWeeks, time.Date(2026, 11, 11, 0, 0, 0, 0, time.UTC)},
		{FourWeeks, time.Date(2026, 11, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		window, err := Horizon(tt.duration, today)
		require.NoError(t, err)
		assert.Equal(t, Day(today), window.From)
		assert.Equal(t, tt.wantTo, window.To)
	}

	_, err := Horizon(DurationWeeks(5), today)
	assert.Error(t, err)
}

func TestCheckHorizon(t *testing.T) {
	today := monday.Add(10 * time.Hour)

	errs := CheckHorizon(days(-1, 0, 3, 14, 15), OneWeek, today)

	assert.Equal(t, []string{CodeBeforeToday, CodeOutsideHorizon}, codes(errs))
	assert.Empty(t, CheckHorizon(days(0, 7, 14), OneWeek, today))
}
