package bots

import (
	"math/rand"

	"github.com/nexivibe/spider/internal/engine"
)

// Bot picks the next intent for a running game. Bots drive the simulator;
// they never look at face-down cards.
type Bot interface {
	ChooseAction(g *engine.Game) engine.Action
}

// RandomBot plays a uniformly random legal intent.
type RandomBot struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *RandomBot {
	return &RandomBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) ChooseAction(g *engine.Game) engine.Action {
	legal := engine.LegalActions(g)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionAbort}
	}
	return legal[b.RNG.Intn(len(legal))]
}

// AutoBot only ever double-clicks: it takes the first run the engine's
// auto-move would place, deals when no run moves, and gives up otherwise.
// Runs that would uncover a face-down card go first.
type AutoBot struct{}

func NewAuto() *AutoBot {
	return &AutoBot{}
}

func (b *AutoBot) ChooseAction(g *engine.Game) engine.Action {
	legal := engine.LegalActions(g)
	view := g.CurrentState()

	var fallback *engine.Action
	for i := range legal {
		a := legal[i]
		if a.Type != engine.ActionAutoMove {
			continue
		}
		if revealsCard(view, a) {
			return a
		}
		if fallback == nil && a.Index > 0 {
			fallback = &a
		}
	}
	for _, a := range legal {
		if a.Type == engine.ActionDeal {
			return a
		}
	}
	if fallback != nil {
		return *fallback
	}
	return engine.Action{Type: engine.ActionAbort}
}

func revealsCard(view engine.StateView, a engine.Action) bool {
	if a.Index == 0 {
		return false
	}
	return !view.Columns[a.From][a.Index-1].FaceUp
}
