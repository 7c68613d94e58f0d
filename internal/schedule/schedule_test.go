package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return base.AddDate(0, 0, offset)
}

func sample() []Delivery {
	return []Delivery{
		{ID: "d4", Date: day(9), Status: StatusPending},
		{ID: "d1", Date: day(0), Status: StatusCompleted},
		{ID: "d3", Date: day(7), Status: StatusSkipped},
		{ID: "d2", Date: day(2), Status: StatusPending},
	}
}

func TestProject(t *testing.T) {
	eligible := day(-1)

	p := Project("sub-1", sample(), PauseWindow{CanPause: false, EligibleAt: &eligible})

	assert.Equal(t, "sub-1", p.SubscriptionID)
	require.Len(t, p.Deliveries, 3)
	assert.Equal(t, []string{"d1", "d2", "d4"}, []string{p.Deliveries[0].ID, p.Deliveries[1].ID, p.Deliveries[2].ID})
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 1, p.Completed)
	assert.Equal(t, 2, p.Pending)
	require.NotNil(t, p.NextDeliveryDate)
	assert.Equal(t, day(2), *p.NextDeliveryDate)
	assert.False(t, p.CanPause)
	assert.Equal(t, &eligible, p.PauseEligibleAt)
}

func TestProject_NoPending(t *testing.T) {
	deliveries := []Delivery{
		{ID: "d1", Date: day(0), Status: StatusCompleted},
		{ID: "d2", Date: day(1), Status: StatusSkipped},
	}

	p := Project("sub-1", deliveries, PauseWindow{})

	assert.Nil(t, p.NextDeliveryDate)
	assert.Equal(t, 1, p.Total)
	assert.Equal(t, p.Completed+p.Pending, p.Total)
}

func TestShiftPending(t *testing.T) {
	shifted := ShiftPending(sample(), 7)

	assert.Equal(t, day(16), shifted[0].Date)
	assert.Equal(t, day(0), shifted[1].Date)
	assert.Equal(t, day(7), shifted[2].Date)
	assert.Equal(t, day(9), shifted[3].Date)

	// input untouched
	assert.Equal(t, day(9), sample()[0].Date)
}

func TestSkipPending(t *testing.T) {
	skipped := SkipPending(sample())

	for _, d := range skipped {
		assert.NotEqual(t, StatusPending, d.Status)
	}
	assert.Equal(t, StatusCompleted, skipped[1].Status)
}

func TestNextPendingAndLastDate(t *testing.T) {
	next, ok := NextPending(sample())
	require.True(t, ok)
	assert.Equal(t, day(2), next)

	last, ok := LastDate(sample())
	require.True(t, ok)
	assert.Equal(t, day(9), last)

	_, ok = NextPending(nil)
	assert.False(t, ok)
	_, ok = LastDate([]Delivery{{Date: day(3), Status: StatusSkipped}})
	assert.False(t, ok)
}
