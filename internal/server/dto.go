package server

import (
	"errors"

	"github.com/nexivibe/spider/internal/engine"
)

// CardDTO carries suit and rank only for face-up cards.
type CardDTO struct {
	Suit   string `json:"suit,omitempty"`
	Rank   string `json:"rank,omitempty"`
	FaceUp bool   `json:"faceUp"`
}

type ActionDTO struct {
	Type  string `json:"type"`
	From  int    `json:"from,omitempty"`
	Index int    `json:"index,omitempty"`
	To    int    `json:"to,omitempty"`
}

type ConfigDTO struct {
	Mode  string `json:"mode,omitempty"`
	Suits int    `json:"suits,omitempty"`
	Seed  *int64 `json:"seed,omitempty"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "move":
		return engine.Action{Type: engine.ActionMove, From: a.From, Index: a.Index, To: a.To}, nil
	case "deal":
		return engine.Action{Type: engine.ActionDeal}, nil
	case "undo":
		return engine.Action{Type: engine.ActionUndo}, nil
	case "auto_move":
		return engine.Action{Type: engine.ActionAutoMove, From: a.From, Index: a.Index}, nil
	case "abort":
		return engine.Action{Type: engine.ActionAbort}, nil
	default:
		return engine.Action{}, errors.New("unknown action type")
	}
}

func cardToDTO(c engine.Card) CardDTO {
	if !c.FaceUp {
		return CardDTO{}
	}
	return CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String(), FaceUp: true}
}
