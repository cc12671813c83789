package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts outcomes from concurrent rollouts", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 400)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddRollout(Outcome(j % 3))
				}
			}()
		}
		wg.Wait()

		got := c.Complete()
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 400, got.Rounds)
		require.Equal(t, 400, got.Rollouts)
		require.Equal(t, 136, got.Draws)
		require.Equal(t, 132, got.Wins)
		require.Equal(t, 132, got.Losses)
	})

	t.Run("start resets previous counts", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddRollout(Win)
		c.Start(1, 1)

		require.Zero(t, c.Complete().Rollouts)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, 10)
		c.AddRollout(Loss)
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
