package server

import "github.com/nexivibe/spider/internal/engine"

const suitLength = 13

type EventPayload struct {
	From    *int   `json:"from,omitempty"`
	To      *int   `json:"to,omitempty"`
	Column  *int   `json:"column,omitempty"`
	Count   int    `json:"count,omitempty"`
	Outcome string `json:"outcome,omitempty"`
}

func intPtr(v int) *int {
	return &v
}

// buildEvents describes what an applied action did by diffing the board
// column by column.
func buildEvents(prev engine.StateView, next engine.StateView, action engine.Action) []Event {
	events := []Event{}
	var added [engine.Columns]int

	switch action.Type {
	case engine.ActionMove, engine.ActionAutoMove:
		to := action.To
		if action.Type == engine.ActionAutoMove {
			to = changedColumn(prev, next, action.From)
		}
		count := len(prev.Columns[action.From]) - action.Index
		events = append(events, Event{Type: "moved", Data: EventPayload{
			From:  intPtr(action.From),
			To:    intPtr(to),
			Count: count,
		}})
		added[action.From] = -count
		if to >= 0 {
			added[to] = count
		}
	case engine.ActionDeal:
		dealt := prev.StockSize - next.StockSize
		events = append(events, Event{Type: "dealt", Data: EventPayload{Count: dealt}})
		for i := 0; i < dealt && i < engine.Columns; i++ {
			added[i] = 1
		}
	case engine.ActionUndo:
		events = append(events, Event{Type: "undone"})
	}

	if action.Type != engine.ActionUndo {
		if next.CompletedSuits > prev.CompletedSuits {
			for i := range next.Columns {
				if len(next.Columns[i]) == len(prev.Columns[i])+added[i]-suitLength {
					events = append(events, Event{Type: "suit_completed", Data: EventPayload{Column: intPtr(i)}})
				}
			}
		}
		for i := range next.Columns {
			if revealed(prev.Columns[i], next.Columns[i]) {
				events = append(events, Event{Type: "card_revealed", Data: EventPayload{Column: intPtr(i)}})
			}
		}
	}

	if next.Over && !prev.Over {
		if action.Type == engine.ActionAbort {
			events = append(events, Event{Type: "game_aborted", Data: EventPayload{Outcome: engine.OutcomeAborted.String()}})
		} else {
			events = append(events, Event{Type: "game_won", Data: EventPayload{Outcome: engine.OutcomeWon.String()}})
		}
	}
	return events
}

// revealed reports whether the top card of next sat face-down at the same
// position in prev.
func revealed(prev, next []engine.Card) bool {
	top := len(next) - 1
	return top >= 0 && top < len(prev) && !prev[top].FaceUp && next[top].FaceUp
}

// changedColumn finds the column other than src whose length changed.
func changedColumn(prev, next engine.StateView, src int) int {
	for i := range next.Columns {
		if i != src && len(next.Columns[i]) != len(prev.Columns[i]) {
			return i
		}
	}
	return -1
}
