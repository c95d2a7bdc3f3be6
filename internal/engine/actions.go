package engine

import "errors"

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrDealBlocked      = errors.New("cannot deal while a column is empty")
	ErrStockEmpty       = errors.New("stock is empty")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNoAutoMoveTarget = errors.New("no auto-move target")
	ErrGameOver         = errors.New("game is over")
	ErrUnknownAction    = errors.New("unknown action type")
)

type ActionType int

const (
	ActionMove ActionType = iota
	ActionDeal
	ActionUndo
	ActionAutoMove
	ActionAbort
)

func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionDeal:
		return "deal"
	case ActionUndo:
		return "undo"
	case ActionAutoMove:
		return "auto_move"
	case ActionAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Action is one intent. From/Index address a run for moves and auto-moves;
// To is the target column of a move.
type Action struct {
	Type  ActionType
	From  int
	Index int
	To    int
}

// Apply runs a on g. A non-nil error means nothing changed.
func Apply(g *Game, a Action) error {
	switch a.Type {
	case ActionMove:
		return g.move(a.From, a.Index, a.To)
	case ActionDeal:
		return g.deal()
	case ActionUndo:
		return g.undo()
	case ActionAutoMove:
		return g.autoMove(a.From, a.Index)
	case ActionAbort:
		_, err := g.abort()
		return err
	default:
		return ErrUnknownAction
	}
}

// LegalActions lists every move, auto-move, deal and undo that would
// currently succeed, in column order. Abort is always available while the
// game runs and is not listed.
func LegalActions(g *Game) []Action {
	if g.Over() {
		return nil
	}
	var out []Action
	for src := 0; src < Columns; src++ {
		col := g.state.Tableaus[src]
		for idx := range col {
			run, ok := ValidRun(col, idx)
			if !ok {
				continue
			}
			for dst := 0; dst < Columns; dst++ {
				if dst != src && CanDrop(g.state.Tableaus[dst], run[0]) {
					out = append(out, Action{Type: ActionMove, From: src, Index: idx, To: dst})
				}
			}
			if _, ok := bestAutoMoveTarget(g.state, src, run[0]); ok {
				out = append(out, Action{Type: ActionAutoMove, From: src, Index: idx})
			}
		}
	}
	if g.CanDeal() {
		out = append(out, Action{Type: ActionDeal})
	}
	if g.CanUndo() {
		out = append(out, Action{Type: ActionUndo})
	}
	return out
}

func (g *Game) RequestMove(src, start, dst int) bool {
	return g.move(src, start, dst) == nil
}

func (g *Game) RequestDeal() bool {
	return g.deal() == nil
}

func (g *Game) RequestUndo() bool {
	return g.undo() == nil
}

func (g *Game) RequestAutoMove(col, start int) bool {
	return g.autoMove(col, start) == nil
}

// RequestAbort ends a running game. On a finished game it returns the
// existing result and false.
func (g *Game) RequestAbort() (GameResult, bool) {
	r, err := g.abort()
	return r, err == nil
}

func validColumn(col int) bool {
	return col >= 0 && col < Columns
}

func (g *Game) move(src, start, dst int) error {
	if g.Over() {
		return ErrGameOver
	}
	if !validColumn(src) || !validColumn(dst) || src == dst {
		return ErrIllegalMove
	}
	run, ok := ValidRun(g.state.Tableaus[src], start)
	if !ok || !CanDrop(g.state.Tableaus[dst], run[0]) {
		return ErrIllegalMove
	}

	g.history.push(g.state)
	g.state.Tableaus[dst] = append(g.state.Tableaus[dst], run...)
	g.state.Tableaus[src] = g.state.Tableaus[src][:start]
	revealTop(g.state.Tableaus[src])
	g.state.TotalMoves++
	g.state.Score += PointsPerMove

	collectSuit(&g.state, dst)
	g.settle()
	return nil
}

func (g *Game) deal() error {
	if g.Over() {
		return ErrGameOver
	}
	if len(g.state.Stock) == 0 {
		return ErrStockEmpty
	}
	if g.state.hasEmptyColumn() {
		return ErrDealBlocked
	}

	g.history.push(g.state)
	for col := 0; col < Columns && len(g.state.Stock) > 0; col++ {
		last := len(g.state.Stock) - 1
		c := g.state.Stock[last]
		g.state.Stock = g.state.Stock[:last]
		c.FaceUp = true
		g.state.Tableaus[col] = append(g.state.Tableaus[col], c)
	}
	g.state.TotalMoves++
	g.state.Score += PointsPerMove

	for col := 0; col < Columns; col++ {
		collectSuit(&g.state, col)
	}
	g.settle()
	return nil
}

func (g *Game) undo() error {
	if g.Over() {
		return ErrGameOver
	}
	prev, ok := g.history.pop()
	if !ok {
		return ErrNothingToUndo
	}
	cur := g.state
	g.state = prev
	// Penalties already paid stay paid; suits put back lose their bonus.
	g.state.Score = cur.Score + PointsPerMove + PointsPerUndo -
		PointsPerCompletedSuit*(cur.CompletedSuits-prev.CompletedSuits)
	g.state.TotalMoves = cur.TotalMoves + 1
	g.undos++
	g.verify()
	return nil
}

func (g *Game) autoMove(col, start int) error {
	if g.Over() {
		return ErrGameOver
	}
	if !validColumn(col) {
		return ErrIllegalMove
	}
	run, ok := ValidRun(g.state.Tableaus[col], start)
	if !ok {
		return ErrIllegalMove
	}
	dst, ok := bestAutoMoveTarget(g.state, col, run[0])
	if !ok {
		return ErrNoAutoMoveTarget
	}
	return g.move(col, start, dst)
}

func (g *Game) abort() (GameResult, error) {
	if g.result != nil {
		return *g.result, ErrGameOver
	}
	g.finish(OutcomeAborted)
	return *g.result, nil
}

// settle declares a win once enough suits are complete, then checks
// invariants.
func (g *Game) settle() {
	if g.state.CompletedSuits >= g.cfg.RequiredSuits() {
		g.finish(OutcomeWon)
	}
	g.verify()
}
