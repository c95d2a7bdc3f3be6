package engine

import "fmt"

// Suit identifies one of the six fixed suit variants. The order of the
// constants is the order suits are drawn into a deck.
type Suit int

type Rank int

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitDiamonds
	SuitClubs
	SuitHorseshoes
	SuitBalls
)

// MaxSuits is the number of distinct suit variants.
const MaxSuits = 6

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// Columns is the number of tableau columns.
const Columns = 10

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "S"
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	case SuitHorseshoes:
		return "O"
	case SuitBalls:
		return "B"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		if r > RankAce && r < RankJack {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card is a single card. Only FaceUp ever changes after deck construction.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

func (c Card) String() string {
	if !c.FaceUp {
		return fmt.Sprintf("(%s%s)", c.Rank.String(), c.Suit.String())
	}
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// Same reports gameplay equality: suit and rank, ignoring orientation.
func (c Card) Same(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

type Mode int

const (
	ModeSoloPractice Mode = iota
	ModeDailyGrind
)

func (m Mode) String() string {
	switch m {
	case ModeSoloPractice:
		return "solo"
	case ModeDailyGrind:
		return "daily"
	default:
		return "unknown"
	}
}

// Config fixes everything needed to reproduce a deal.
type Config struct {
	Mode     Mode
	NumSuits int
	Seed     int64
}

// NewConfig clamps numSuits into [1, MaxSuits].
func NewConfig(mode Mode, numSuits int, seed int64) Config {
	return Config{Mode: mode, NumSuits: ClampSuits(numSuits), Seed: seed}
}

func ClampSuits(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxSuits {
		return MaxSuits
	}
	return n
}

// RequiredSuits is the number of completed suits needed to win.
func (c Config) RequiredSuits() int {
	return RequiredSuits(c.NumSuits)
}

// TotalCards is the deck size for this configuration.
func (c Config) TotalCards() int {
	return TotalCards(c.NumSuits)
}

// GameState is the mutable board. It doubles as the undo snapshot unit, so
// every copy handed out or stored must go through Clone.
type GameState struct {
	Tableaus       [Columns][]Card
	Stock          []Card
	CompletedSuits int
	Score          int
	TotalMoves     int
}

// Clone returns a copy that shares no slices with s.
func (s GameState) Clone() GameState {
	out := GameState{
		CompletedSuits: s.CompletedSuits,
		Score:          s.Score,
		TotalMoves:     s.TotalMoves,
		Stock:          append([]Card(nil), s.Stock...),
	}
	for i := range s.Tableaus {
		out.Tableaus[i] = append([]Card(nil), s.Tableaus[i]...)
	}
	return out
}

func (s GameState) cardsInPlay() int {
	total := len(s.Stock)
	for _, col := range s.Tableaus {
		total += len(col)
	}
	return total
}

func (s GameState) hasEmptyColumn() bool {
	for _, col := range s.Tableaus {
		if len(col) == 0 {
			return true
		}
	}
	return false
}
