package server

import "github.com/nexivibe/spider/internal/engine"

type GameView struct {
	SessionID      string      `json:"sessionId"`
	Mode           string      `json:"mode"`
	Suits          int         `json:"suits"`
	Seed           int64       `json:"seed"`
	Columns        [][]CardDTO `json:"columns"`
	StockSize      int         `json:"stockSize"`
	DealsLeft      int         `json:"dealsLeft"`
	CompletedSuits int         `json:"completedSuits"`
	RequiredSuits  int         `json:"requiredSuits"`
	Score          int         `json:"score"`
	Moves          int         `json:"moves"`
	Undos          int         `json:"undos"`
	CanUndo        bool        `json:"canUndo"`
	CanDeal        bool        `json:"canDeal"`
	Over           bool        `json:"over"`
}

type ResultView struct {
	Outcome        string  `json:"outcome"`
	Mode           string  `json:"mode"`
	Suits          int     `json:"suits"`
	Seed           int64   `json:"seed"`
	Score          int     `json:"score"`
	Moves          int     `json:"moves"`
	Undos          int     `json:"undos"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	Time           string  `json:"time"`
	CompletedSuits int     `json:"completedSuits"`
	RequiredSuits  int     `json:"requiredSuits"`
}

type DeltaView struct {
	Score          int     `json:"score"`
	Moves          int     `json:"moves"`
	Undos          int     `json:"undos"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	CompletedSuits int     `json:"completedSuits"`
}

func BuildGameView(v engine.StateView, sessionID string) *GameView {
	columns := make([][]CardDTO, 0, len(v.Columns))
	for _, col := range v.Columns {
		cards := make([]CardDTO, 0, len(col))
		for _, c := range col {
			cards = append(cards, cardToDTO(c))
		}
		columns = append(columns, cards)
	}
	return &GameView{
		SessionID:      sessionID,
		Mode:           v.Config.Mode.String(),
		Suits:          v.Config.NumSuits,
		Seed:           v.Config.Seed,
		Columns:        columns,
		StockSize:      v.StockSize,
		DealsLeft:      (v.StockSize + engine.Columns - 1) / engine.Columns,
		CompletedSuits: v.CompletedSuits,
		RequiredSuits:  v.RequiredSuits,
		Score:          v.Score,
		Moves:          v.TotalMoves,
		Undos:          v.TotalUndos,
		CanUndo:        v.CanUndo,
		CanDeal:        v.CanDeal,
		Over:           v.Over,
	}
}

func BuildResultView(r engine.GameResult) *ResultView {
	return &ResultView{
		Outcome:        r.Outcome.String(),
		Mode:           r.Config.Mode.String(),
		Suits:          r.Config.NumSuits,
		Seed:           r.Config.Seed,
		Score:          r.Score,
		Moves:          r.Moves,
		Undos:          r.Undos,
		ElapsedSeconds: r.ElapsedSeconds,
		Time:           r.FormattedTime(),
		CompletedSuits: r.CompletedSuits,
		RequiredSuits:  r.RequiredSuits(),
	}
}

func BuildDeltaView(d engine.ResultDelta) *DeltaView {
	return &DeltaView{
		Score:          d.Score,
		Moves:          d.Moves,
		Undos:          d.Undos,
		ElapsedSeconds: d.ElapsedSeconds,
		CompletedSuits: d.CompletedSuits,
	}
}
