package scheduler

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"go_5_flashcard_review/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduler_SweepsPeriodically(t *testing.T) {
	sweeper := mocks.NewSessionService(t)
	var calls atomic.Int32
	sweeper.On("SweepExpired", mock.Anything).
		Run(func(args mock.Arguments) { calls.Add(1) }).
		Return(1)

	s := New(sweeper, 20*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 10*time.Millisecond)
}

func TestScheduler_InvalidInterval(t *testing.T) {
	s := New(mocks.NewSessionService(t), 0, nil)
	assert.Error(t, s.Start())
}
