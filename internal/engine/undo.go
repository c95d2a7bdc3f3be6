package engine

// history is the undo stack. The first entry is the post-deal board and is
// never popped.
type history struct {
	entries []GameState
}

func (h *history) push(s GameState) {
	h.entries = append(h.entries, s.Clone())
}

func (h *history) canUndo() bool {
	return len(h.entries) > 1
}

func (h *history) pop() (GameState, bool) {
	if !h.canUndo() {
		return GameState{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = GameState{}
	h.entries = h.entries[:len(h.entries)-1]
	return last.Clone(), true
}

func (h *history) len() int {
	return len(h.entries)
}
