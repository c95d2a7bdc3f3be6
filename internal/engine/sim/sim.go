package sim

import (
	"fmt"
	"reflect"
	"time"

	"github.com/nexivibe/spider/internal/bots"
	"github.com/nexivibe/spider/internal/engine"
)

type ActionRecord struct {
	Step  int
	Score int
	A     engine.Action
}

// Summary describes how a self-play game ended.
type Summary struct {
	Steps  int
	Result engine.GameResult
	Ended  bool
}

// RunSelfPlay plays one game of numSuits with bot until it ends or
// maxSteps intents have been applied, checking invariants after each one.
func RunSelfPlay(seed int64, numSuits int, bot bots.Bot, maxSteps int) (Summary, error) {
	cfg := engine.NewConfig(engine.ModeSoloPractice, numSuits, seed)
	clock := engine.NewFakeClock(time.Unix(0, 0))
	g := engine.NewGame(cfg, engine.WithClock(clock))

	records := []ActionRecord{}
	var history []engine.GameState
	for step := 0; step < maxSteps; step++ {
		if g.Over() {
			r, _ := g.Result()
			return Summary{Steps: step, Result: r, Ended: true}, nil
		}
		action := bot.ChooseAction(g)
		before := g.Snapshot()
		if err := engine.Apply(g, action); err != nil {
			if !reflect.DeepEqual(before, g.Snapshot()) {
				return Summary{}, failure(seed, step, records, fmt.Sprintf("rejected %v changed state", action.Type))
			}
			return Summary{}, failure(seed, step, records, fmt.Sprintf("apply error: %v", err))
		}
		clock.Advance(time.Second)
		records = append(records, ActionRecord{Step: step, Score: g.CurrentState().Score, A: action})

		if err := engine.CheckInvariants(g); err != nil {
			return Summary{}, failure(seed, step, records, err.Error())
		}
		switch action.Type {
		case engine.ActionMove, engine.ActionAutoMove, engine.ActionDeal:
			history = append(history, before)
		case engine.ActionUndo:
			if len(history) == 0 {
				return Summary{}, failure(seed, step, records, "undo with no recorded move")
			}
			want := history[len(history)-1]
			history = history[:len(history)-1]
			if err := sameBoard(want, g.Snapshot()); err != nil {
				return Summary{}, failure(seed, step, records, err.Error())
			}
		}
	}
	return Summary{Steps: maxSteps}, nil
}

// sameBoard compares cards and suit count; score and move counters are
// expected to differ after an undo.
func sameBoard(want, got engine.GameState) error {
	if !reflect.DeepEqual(want.Tableaus, got.Tableaus) {
		return fmt.Errorf("undo did not restore tableaus")
	}
	if !reflect.DeepEqual(want.Stock, got.Stock) {
		return fmt.Errorf("undo did not restore stock")
	}
	if want.CompletedSuits != got.CompletedSuits {
		return fmt.Errorf("undo did not restore completed suits: %d != %d", got.CompletedSuits, want.CompletedSuits)
	}
	return nil
}

func failure(seed int64, step int, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[s%d score=%d] %v %+v\n", r.Step, r.Score, r.A.Type, r.A)
	}
	return fmt.Errorf("seed=%d step=%d reason=%s\nlast actions:\n%s", seed, step, reason, log)
}
