package game

import (
	"sync"
	"time"
)

// Tick is one countdown sample. Remaining is never negative; the terminal
// sample carries Remaining == 0 and Expired == true, delivered exactly once.
type Tick struct {
	Remaining float64
	Expired   bool
}

// Countdown runs a single round's timer. Every round gets its own Countdown
// with its own channel; a stopped countdown closes its channel, so a stale
// tick from round i can never be mistaken for a tick of round i+1.
type Countdown struct {
	ticks chan Tick
	stop  chan struct{}
	once  sync.Once
}

// StartCountdown begins counting down from duration, emitting a sample every
// interval. The caller must either drain Ticks until it closes or call Stop.
func StartCountdown(duration, interval time.Duration) *Countdown {
	c := &Countdown{
		ticks: make(chan Tick),
		stop:  make(chan struct{}),
	}
	go c.run(duration, interval)
	return c
}

// Ticks returns the sample channel. It closes after the expired tick or after
// Stop takes effect.
func (c *Countdown) Ticks() <-chan Tick {
	return c.ticks
}

// Stop cancels the countdown. Safe to call more than once; after it returns
// no further tick is delivered (an in-flight send is abandoned).
func (c *Countdown) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Countdown) run(duration, interval time.Duration) {
	defer close(c.ticks)

	remaining := duration.Seconds()
	step := interval.Seconds()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			remaining -= step
			// Clamp so float drift never emits a negative sample and the
			// terminal sample is exactly zero.
			if remaining < step/2 {
				remaining = 0
			}
			tick := Tick{Remaining: remaining, Expired: remaining == 0}
			select {
			case c.ticks <- tick:
			case <-c.stop:
				return
			}
			if tick.Expired {
				return
			}
		}
	}
}
