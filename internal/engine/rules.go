package engine

const (
	StartingScore          = 500
	PointsPerMove          = -1
	PointsPerUndo          = -10
	PointsPerCompletedSuit = 100
)

// TotalCards returns the deck size for a suit count: 104 up to four suits,
// 130 for five and 156 for six.
func TotalCards(numSuits int) int {
	switch n := ClampSuits(numSuits); {
	case n <= 4:
		return 104
	case n == 5:
		return 130
	default:
		return 156
	}
}

// RequiredSuits returns how many completed suits win the game.
func RequiredSuits(numSuits int) int {
	switch n := ClampSuits(numSuits); {
	case n <= 4:
		return 8
	case n == 5:
		return 10
	default:
		return 12
	}
}

// ValidRun returns column[start:] if it is a face-up, same-suit run
// descending by one. Any break in the tail rejects the whole run.
func ValidRun(column []Card, start int) ([]Card, bool) {
	if start < 0 || start >= len(column) {
		return nil, false
	}
	if !column[start].FaceUp {
		return nil, false
	}
	for i := start + 1; i < len(column); i++ {
		prev, c := column[i-1], column[i]
		if !c.FaceUp || c.Suit != prev.Suit || c.Rank != prev.Rank-1 {
			return nil, false
		}
	}
	return append([]Card(nil), column[start:]...), true
}

// CanDrop reports whether a run whose base card is top may land on target.
// Suit does not matter here.
func CanDrop(target []Card, top Card) bool {
	if len(target) == 0 {
		return true
	}
	return target[len(target)-1].Rank == top.Rank+1
}

// completesSuit reports whether the last 13 cards of column run K..A in
// one suit, all face-up. Only the tail is examined.
func completesSuit(column []Card) bool {
	if len(column) < suitLength {
		return false
	}
	start := len(column) - suitLength
	suit := column[start].Suit
	for i := 0; i < suitLength; i++ {
		c := column[start+i]
		if !c.FaceUp || c.Suit != suit || c.Rank != RankKing-Rank(i) {
			return false
		}
	}
	return true
}

// revealTop turns the last card of column face-up. It reports whether a
// card was actually flipped.
func revealTop(column []Card) bool {
	if len(column) == 0 || column[len(column)-1].FaceUp {
		return false
	}
	column[len(column)-1].FaceUp = true
	return true
}

// collectSuit removes a completed suit from the tail of column col, if any,
// and scores it.
func collectSuit(g *GameState, col int) bool {
	if !completesSuit(g.Tableaus[col]) {
		return false
	}
	g.Tableaus[col] = g.Tableaus[col][:len(g.Tableaus[col])-suitLength]
	revealTop(g.Tableaus[col])
	g.CompletedSuits++
	g.Score += PointsPerCompletedSuit
	return true
}
