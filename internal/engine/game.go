package engine

import "time"

// Game owns one board and its undo history. It is not safe for concurrent
// use; callers serialize intents themselves.
type Game struct {
	cfg     Config
	state   GameState
	history history
	undos   int

	clock   Clock
	started time.Time
	strict  bool

	result *GameResult
	prior  *GameResult
}

type Option func(*Game)

func WithClock(c Clock) Option {
	return func(g *Game) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithStrictInvariants makes every mutation panic on an invariant breach.
func WithStrictInvariants() Option {
	return func(g *Game) { g.strict = true }
}

// WithPriorResult attaches the result of an earlier attempt at the same deal.
func WithPriorResult(r GameResult) Option {
	return func(g *Game) {
		prior := r
		g.prior = &prior
	}
}

// NewGame deals a fresh board. The deal depends only on NumSuits and Seed.
func NewGame(cfg Config, opts ...Option) *Game {
	cfg = NewConfig(cfg.Mode, cfg.NumSuits, cfg.Seed)
	g := &Game{cfg: cfg, clock: RealClock{}}
	for _, opt := range opts {
		opt(g)
	}
	g.state = Deal(cfg)
	g.started = g.clock.Now()
	g.history.push(g.state)
	g.verify()
	return g
}

// ResumeGame continues from a board taken with Snapshot. The board becomes
// the undo floor, the undo count starts at zero, and the clock starts now.
// Boards that break the invariants are rejected.
func ResumeGame(cfg Config, state GameState, opts ...Option) (*Game, error) {
	cfg = NewConfig(cfg.Mode, cfg.NumSuits, cfg.Seed)
	g := &Game{cfg: cfg, clock: RealClock{}}
	for _, opt := range opts {
		opt(g)
	}
	g.state = state.Clone()
	g.started = g.clock.Now()
	g.history.push(g.state)
	if err := CheckInvariants(g); err != nil {
		return nil, err
	}
	if g.state.CompletedSuits >= cfg.RequiredSuits() {
		g.finish(OutcomeWon)
	}
	return g, nil
}

// Retry deals the same config again. A finished game's result becomes the
// new game's prior result.
func (g *Game) Retry() *Game {
	opts := []Option{WithClock(g.clock)}
	if g.strict {
		opts = append(opts, WithStrictInvariants())
	}
	if g.result != nil {
		opts = append(opts, WithPriorResult(*g.result))
	} else if g.prior != nil {
		opts = append(opts, WithPriorResult(*g.prior))
	}
	return NewGame(g.cfg, opts...)
}

func (g *Game) Config() Config {
	return g.cfg
}

// Result returns the terminal result once the game is won or aborted.
func (g *Game) Result() (GameResult, bool) {
	if g.result == nil {
		return GameResult{}, false
	}
	return *g.result, true
}

func (g *Game) PriorResult() (GameResult, bool) {
	if g.prior == nil {
		return GameResult{}, false
	}
	return *g.prior, true
}

func (g *Game) Over() bool {
	return g.result != nil
}

func (g *Game) CanUndo() bool {
	return g.result == nil && g.history.canUndo()
}

func (g *Game) CanDeal() bool {
	return g.result == nil && len(g.state.Stock) > 0 && !g.state.hasEmptyColumn()
}

// StateView is a read-only copy of the board plus counters.
type StateView struct {
	Config         Config
	Columns        [Columns][]Card
	StockSize      int
	CompletedSuits int
	RequiredSuits  int
	Score          int
	TotalMoves     int
	TotalUndos     int
	CanUndo        bool
	CanDeal        bool
	Over           bool
}

func (g *Game) CurrentState() StateView {
	v := StateView{
		Config:         g.cfg,
		StockSize:      len(g.state.Stock),
		CompletedSuits: g.state.CompletedSuits,
		RequiredSuits:  g.cfg.RequiredSuits(),
		Score:          g.state.Score,
		TotalMoves:     g.state.TotalMoves,
		TotalUndos:     g.undos,
		CanUndo:        g.CanUndo(),
		CanDeal:        g.CanDeal(),
		Over:           g.Over(),
	}
	for i, col := range g.state.Tableaus {
		v.Columns[i] = append([]Card(nil), col...)
	}
	return v
}

// Snapshot returns a deep copy of the live board.
func (g *Game) Snapshot() GameState {
	return g.state.Clone()
}

func (g *Game) finish(o Outcome) {
	elapsed := g.clock.Now().Sub(g.started).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	g.result = &GameResult{
		Config:         g.cfg,
		Outcome:        o,
		Score:          g.state.Score,
		Moves:          g.state.TotalMoves,
		Undos:          g.undos,
		ElapsedSeconds: elapsed,
		CompletedSuits: g.state.CompletedSuits,
	}
}

func (g *Game) verify() {
	if !g.strict {
		return
	}
	if err := CheckInvariants(g); err != nil {
		panic(err)
	}
}
