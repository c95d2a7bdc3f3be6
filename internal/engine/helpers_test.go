package engine

import (
	"testing"
	"time"
)

func up(s Suit, r Rank) Card   { return Card{Suit: s, Rank: r, FaceUp: true} }
func down(s Suit, r Rank) Card { return Card{Suit: s, Rank: r} }

// descending returns face-up cards of suit s from hi down to lo.
func descending(s Suit, hi, lo Rank) []Card {
	out := []Card{}
	for r := hi; r >= lo; r-- {
		out = append(out, up(s, r))
	}
	return out
}

func newTestGame(t *testing.T, numSuits int, seed int64) (*Game, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
	g := NewGame(NewConfig(ModeSoloPractice, numSuits, seed), WithClock(clock))
	return g, clock
}

// setBoard replaces the dealt board and resets history to it. Columns left
// nil in cols get a single face-up filler so dealing is not blocked.
func setBoard(g *Game, cols map[int][]Card, stock []Card) {
	var s GameState
	for i := 0; i < Columns; i++ {
		if c, ok := cols[i]; ok {
			s.Tableaus[i] = append([]Card(nil), c...)
			continue
		}
		s.Tableaus[i] = []Card{up(SuitClubs, RankKing)}
	}
	s.Stock = append([]Card(nil), stock...)
	s.Score = g.state.Score
	s.TotalMoves = g.state.TotalMoves
	s.CompletedSuits = g.state.CompletedSuits
	g.state = s
	g.history = history{}
	g.history.push(g.state)
}
