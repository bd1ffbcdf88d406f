package delay_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoworks/process-repo-action/cmd/action/internal/delay"
)

func TestTimerWaiter(t *testing.T) {
	t.Parallel()

	t.Run("Elapses", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := delay.NewTimerWaiter().Wait(t.Context(), 50)
		require.NoError(t, err, "wait should complete")

		assert.GreaterOrEqual(
			t,
			time.Since(start),
			50*time.Millisecond,
			"must not resume early",
		)
	})

	t.Run("Zero", func(t *testing.T) {
		t.Parallel()

		err := delay.NewTimerWaiter().Wait(t.Context(), 0)
		require.NoError(t, err, "zero delay should complete immediately")
	})

	t.Run("Canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := delay.NewTimerWaiter().Wait(ctx, 60000)
		require.ErrorIs(t, err, context.Canceled, "canceled context should interrupt the wait")
	})
}
