package engine

import "fmt"

type Outcome int

const (
	OutcomeWon Outcome = iota
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// GameResult is the terminal record of one game.
type GameResult struct {
	Config         Config
	Outcome        Outcome
	Score          int
	Moves          int
	Undos          int
	ElapsedSeconds float64
	CompletedSuits int
}

func (r GameResult) RequiredSuits() int {
	return r.Config.RequiredSuits()
}

// FormattedTime renders the elapsed time as m:ss.
func (r GameResult) FormattedTime() string {
	total := int(r.ElapsedSeconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ResultDelta is current minus prior for every reported stat.
type ResultDelta struct {
	Score          int
	Moves          int
	Undos          int
	ElapsedSeconds float64
	CompletedSuits int
}

// Compare diffs a retry against the attempt before it.
func Compare(current, prior GameResult) ResultDelta {
	return ResultDelta{
		Score:          current.Score - prior.Score,
		Moves:          current.Moves - prior.Moves,
		Undos:          current.Undos - prior.Undos,
		ElapsedSeconds: current.ElapsedSeconds - prior.ElapsedSeconds,
		CompletedSuits: current.CompletedSuits - prior.CompletedSuits,
	}
}
