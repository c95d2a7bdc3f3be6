package engine

import "fmt"

// CheckInvariants verifies the structural rules every reachable board
// satisfies. A non-nil error is an engine bug, not a user mistake.
func CheckInvariants(g *Game) error {
	s := g.state
	if total := s.cardsInPlay() + suitLength*s.CompletedSuits; total != g.cfg.TotalCards() {
		return fmt.Errorf("card count mismatch: %d != %d", total, g.cfg.TotalCards())
	}
	if s.CompletedSuits < 0 || s.CompletedSuits > g.cfg.RequiredSuits() {
		return fmt.Errorf("completed suits out of range: %d", s.CompletedSuits)
	}
	if g.history.len() == 0 {
		return fmt.Errorf("undo history is empty")
	}

	for i, col := range s.Tableaus {
		seenUp := false
		for j, c := range col {
			if c.FaceUp {
				seenUp = true
				continue
			}
			if seenUp {
				return fmt.Errorf("column %d: face-down card at %d above a face-up card", i, j)
			}
		}
		if len(col) > 0 && !col[len(col)-1].FaceUp {
			return fmt.Errorf("column %d: top card is face-down", i)
		}
	}
	for i, c := range s.Stock {
		if c.FaceUp {
			return fmt.Errorf("stock card %d is face-up", i)
		}
	}

	type key struct {
		suit Suit
		rank Rank
	}
	limit := map[key]int{}
	for _, c := range BuildDeck(g.cfg.NumSuits) {
		limit[key{c.Suit, c.Rank}]++
	}
	seen := map[key]int{}
	count := func(c Card) error {
		k := key{c.Suit, c.Rank}
		seen[k]++
		if seen[k] > limit[k] {
			return fmt.Errorf("too many copies of %s%s: %d > %d", c.Rank, c.Suit, seen[k], limit[k])
		}
		return nil
	}
	for _, col := range s.Tableaus {
		for _, c := range col {
			if err := count(c); err != nil {
				return err
			}
		}
	}
	for _, c := range s.Stock {
		if err := count(c); err != nil {
			return err
		}
	}

	want := StartingScore +
		PointsPerMove*s.TotalMoves +
		PointsPerUndo*g.undos +
		PointsPerCompletedSuit*s.CompletedSuits
	if s.Score != want {
		return fmt.Errorf("score drift: %d != %d", s.Score, want)
	}
	return nil
}
