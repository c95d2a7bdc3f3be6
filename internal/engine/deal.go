package engine

import "math/rand"

const suitLength = 13

// BuildDeck returns the unshuffled deck for numSuits, all cards face-down.
// The deck holds TotalCards/13 whole A..K runs spread over the suits in
// suit order; when the runs do not divide evenly the earlier suits get one
// extra run each. Three suits therefore get 39/39/26 cards rather than 26
// each with the remainder dropped, which keeps every deck at TotalCards.
func BuildDeck(numSuits int) []Card {
	numSuits = ClampSuits(numSuits)
	runs := TotalCards(numSuits) / suitLength
	deck := make([]Card, 0, runs*suitLength)
	for s := 0; s < numSuits; s++ {
		perSuit := runs / numSuits
		if s < runs%numSuits {
			perSuit++
		}
		for n := 0; n < perSuit; n++ {
			for r := RankAce; r <= RankKing; r++ {
				deck = append(deck, Card{Suit: Suit(s), Rank: r})
			}
		}
	}
	return deck
}

// Shuffle returns a permuted copy of deck. The seed is the only entropy
// source, so equal seeds give equal orders.
func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func columnDealSize(col int) int {
	if col < 4 {
		return 6
	}
	return 5
}

// Deal lays out a fresh board for cfg. Columns are filled one at a time
// and only the last card of each is turned up; the rest of the deck, in
// deck order, becomes the stock.
func Deal(cfg Config) GameState {
	deck := Shuffle(BuildDeck(cfg.NumSuits), cfg.Seed)

	var g GameState
	idx := 0
	for col := 0; col < Columns; col++ {
		n := columnDealSize(col)
		if idx+n > len(deck) {
			panic("invalid deal configuration: deck too small")
		}
		g.Tableaus[col] = append([]Card(nil), deck[idx:idx+n]...)
		g.Tableaus[col][n-1].FaceUp = true
		idx += n
	}
	g.Stock = append([]Card(nil), deck[idx:]...)
	g.Score = StartingScore
	return g
}
