package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeckSizesAndRuns(t *testing.T) {
	for suits := 1; suits <= MaxSuits; suits++ {
		deck := BuildDeck(suits)
		require.Len(t, deck, TotalCards(suits), "suits=%d", suits)

		perSuit := map[Suit]int{}
		for _, c := range deck {
			assert.False(t, c.FaceUp)
			assert.Less(t, int(c.Suit), suits)
			perSuit[c.Suit]++
		}
		for s, n := range perSuit {
			assert.Zero(t, n%suitLength, "suit %v must hold whole runs, got %d", s, n)
		}
	}
}

func TestBuildDeckSpreadsUnevenRuns(t *testing.T) {
	perSuit := map[Suit]int{}
	for _, c := range BuildDeck(3) {
		perSuit[c.Suit]++
	}
	assert.Equal(t, map[Suit]int{SuitSpades: 39, SuitHearts: 39, SuitDiamonds: 26}, perSuit)
}

func TestDealDeterministic(t *testing.T) {
	cfg := NewConfig(ModeSoloPractice, 4, 42)
	g1 := Deal(cfg)
	g2 := Deal(cfg)
	assert.Equal(t, g1, g2)

	g3 := Deal(NewConfig(ModeSoloPractice, 4, 43))
	assert.NotEqual(t, g1.Tableaus, g3.Tableaus)
}

func TestDealModeDoesNotAffectLayout(t *testing.T) {
	solo := Deal(NewConfig(ModeSoloPractice, 2, 7))
	daily := Deal(NewConfig(ModeDailyGrind, 2, 7))
	assert.Equal(t, solo, daily)
}

func TestDealLayout(t *testing.T) {
	for suits := 1; suits <= MaxSuits; suits++ {
		g := Deal(NewConfig(ModeSoloPractice, suits, 1))
		dealt := 0
		for col, cards := range g.Tableaus {
			want := 5
			if col < 4 {
				want = 6
			}
			require.Len(t, cards, want, "column %d", col)
			for i, c := range cards {
				assert.Equal(t, i == len(cards)-1, c.FaceUp, "column %d card %d", col, i)
			}
			dealt += len(cards)
		}
		assert.Equal(t, 54, dealt)
		assert.Len(t, g.Stock, TotalCards(suits)-54)
		for _, c := range g.Stock {
			assert.False(t, c.FaceUp)
		}
		assert.Equal(t, StartingScore, g.Score)
		assert.Zero(t, g.CompletedSuits)
		assert.Zero(t, g.TotalMoves)
	}
}

func TestDealFillsColumnsInOrderAndStockKeepsDeckOrder(t *testing.T) {
	cfg := NewConfig(ModeSoloPractice, 2, 99)
	deck := Shuffle(BuildDeck(cfg.NumSuits), cfg.Seed)
	g := Deal(cfg)

	idx := 0
	for col := 0; col < Columns; col++ {
		for _, c := range g.Tableaus[col] {
			assert.True(t, c.Same(deck[idx]), "column %d", col)
			idx++
		}
	}
	for i, c := range g.Stock {
		assert.True(t, c.Same(deck[idx+i]))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	deck := BuildDeck(1)
	shuffled := Shuffle(deck, 5)
	require.Len(t, shuffled, len(deck))
	assert.ElementsMatch(t, deck, shuffled)
	assert.NotEqual(t, deck, shuffled)
	assert.Equal(t, BuildDeck(1), deck, "input must not be mutated")
}

func TestDailySeed(t *testing.T) {
	day := time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, int64(20260918), DailySeed(day))

	cfg := DailyGrind(9, day)
	assert.Equal(t, ModeDailyGrind, cfg.Mode)
	assert.Equal(t, 6, cfg.NumSuits)
	assert.Equal(t, int64(20260918), cfg.Seed)
}

func TestSoloPracticeSeedsFromClock(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := SoloPractice(2, NewFakeClock(now))
	assert.Equal(t, ModeSoloPractice, cfg.Mode)
	assert.Equal(t, now.UnixMilli(), cfg.Seed)
}
