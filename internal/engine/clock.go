package engine

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock is deterministic and test-friendly.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// DailySeed derives the shared seed for a calendar day as
// year*10000 + zero-based month*100 + day.
func DailySeed(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month()-1)*100 + int64(t.Day())
}

// SoloPractice returns a practice config seeded from the clock.
func SoloPractice(numSuits int, clock Clock) Config {
	if clock == nil {
		clock = RealClock{}
	}
	return NewConfig(ModeSoloPractice, numSuits, clock.Now().UnixMilli())
}

// DailyGrind returns the config every player gets on the given day.
func DailyGrind(numSuits int, day time.Time) Config {
	return NewConfig(ModeDailyGrind, numSuits, DailySeed(day))
}
