package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownClampsToZero(t *testing.T) {
	cd := StartCountdown(100*time.Millisecond, 10*time.Millisecond)

	var samples []float64
	expired := 0
	for tick := range cd.Ticks() {
		samples = append(samples, tick.Remaining)
		if tick.Expired {
			expired++
		}
	}

	require.NotEmpty(t, samples)
	for _, s := range samples {
		assert.GreaterOrEqual(t, s, 0.0, "remaining time must never go negative")
	}
	assert.Equal(t, 0.0, samples[len(samples)-1], "terminal sample must be exactly zero")
	assert.Equal(t, 1, expired, "expiry must be signaled exactly once")
}

func TestCountdownSamplesDecrease(t *testing.T) {
	cd := StartCountdown(50*time.Millisecond, 10*time.Millisecond)

	prev := 999.0
	for tick := range cd.Ticks() {
		assert.Less(t, tick.Remaining, prev)
		prev = tick.Remaining
	}
}

func TestCountdownStop(t *testing.T) {
	cd := StartCountdown(10*time.Second, 10*time.Millisecond)

	// Read a couple of ticks, then cancel mid-round.
	<-cd.Ticks()
	<-cd.Ticks()
	cd.Stop()
	cd.Stop() // idempotent

	deadline := time.After(time.Second)
	for {
		select {
		case tick, ok := <-cd.Ticks():
			if !ok {
				return // channel closed, no expiry leaked
			}
			require.False(t, tick.Expired, "a stopped countdown must not report expiry")
		case <-deadline:
			t.Fatal("countdown did not shut down after Stop")
		}
	}
}
