package engine_test

import (
	"testing"

	"github.com/nexivibe/spider/internal/bots"
	"github.com/nexivibe/spider/internal/engine/sim"
)

func TestSelfPlayManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		suits := int(seed%6) + 1
		if _, err := sim.RunSelfPlay(seed, suits, bots.NewRandom(seed), 400); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	}
}

func TestAutoBotSelfPlay(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		sum, err := sim.RunSelfPlay(seed, 1, bots.NewAuto(), 600)
		if err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
		if sum.Ended && sum.Result.CompletedSuits > sum.Result.RequiredSuits() {
			t.Fatalf("seed %d completed %d suits", seed, sum.Result.CompletedSuits)
		}
	}
}

func FuzzSelfPlay(f *testing.F) {
	f.Add(int64(1), 1)
	f.Add(int64(42), 4)
	f.Add(int64(20250211), 6)
	f.Fuzz(func(t *testing.T, seed int64, suits int) {
		if _, err := sim.RunSelfPlay(seed, suits, bots.NewRandom(seed), 300); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	})
}
