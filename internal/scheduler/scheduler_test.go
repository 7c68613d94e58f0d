package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweeperStub struct {
	calls atomic.Int32
	err   error
}

func (s *sweeperStub) ExpireDue(ctx context.Context) (int, error) {
	s.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("sweep must run with a deadline")
	}
	return 2, s.err
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New("every day", &sweeperStub{}, nil)

	assert.Error(t, err)
}

func TestScheduler_Run(t *testing.T) {
	sweeper := &sweeperStub{}
	s, err := New("0 3 * * *", sweeper, nil)
	require.NoError(t, err)

	s.Run()
	sweeper.err = errors.New("partial failure")
	s.Run()

	assert.Equal(t, int32(2), sweeper.calls.Load())
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := New("@every 1h", &sweeperStub{}, nil)
	require.NoError(t, err)

	s.Start()
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}
