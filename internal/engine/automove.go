package engine

// targetRule is one entry of the auto-move ranking. Lower priority wins.
type targetRule struct {
	priority int
	name     string
	matches  func(base Card, target []Card) bool
}

var autoMoveRules = []targetRule{
	{
		priority: 1,
		name:     "same-suit",
		matches: func(base Card, target []Card) bool {
			if len(target) == 0 {
				return false
			}
			top := target[len(target)-1]
			return top.Rank == base.Rank+1 && top.Suit == base.Suit
		},
	},
	{
		priority: 2,
		name:     "off-suit",
		matches: func(base Card, target []Card) bool {
			if len(target) == 0 {
				return false
			}
			top := target[len(target)-1]
			return top.Rank == base.Rank+1 && top.Suit != base.Suit
		},
	},
	{
		priority: 3,
		name:     "empty",
		matches: func(_ Card, target []Card) bool {
			return len(target) == 0
		},
	},
}

// rankTarget returns the best priority any rule gives target, or false if
// no rule matches.
func rankTarget(base Card, target []Card) (int, bool) {
	best := 0
	for _, r := range autoMoveRules {
		if !r.matches(base, target) {
			continue
		}
		if best == 0 || r.priority < best {
			best = r.priority
		}
	}
	return best, best > 0
}

// bestAutoMoveTarget scans every column except src in index order. Ties
// keep the earliest column.
func bestAutoMoveTarget(g GameState, src int, base Card) (int, bool) {
	bestCol, bestPriority := -1, 0
	for col := 0; col < Columns; col++ {
		if col == src {
			continue
		}
		p, ok := rankTarget(base, g.Tableaus[col])
		if !ok {
			continue
		}
		if bestCol < 0 || p < bestPriority {
			bestCol, bestPriority = col, p
		}
	}
	return bestCol, bestCol >= 0
}
