package board

const fiftyMoveLimit = 100

// state captures the information we need to reason about repetitions and draws.
type state struct {
	key    Key
	rule50 int
}

// history is the per-position stack of states reached since the root FEN.
// Apply pushes, the matching undo pops.
type history struct {
	states []state
}

func newHistory(key Key, rule50 int) history {
	h := history{states: make([]state, 0, 64)}
	h.push(key, rule50)
	return h
}

func (h *history) push(key Key, rule50 int) {
	h.states = append(h.states, state{key: key, rule50: rule50})
}

func (h *history) pop() {
	if len(h.states) <= 1 {
		panic("board: undo without matching apply")
	}
	h.states = h.states[:len(h.states)-1]
}

func (h *history) depth() int { return len(h.states) - 1 }

func (h *history) current() state { return h.states[len(h.states)-1] }

// drawStatus reports FiftyMoveRule or Repetition for the current state, or Ongoing.
func (h *history) drawStatus() Status {
	curr := h.current()
	if curr.rule50 >= fiftyMoveLimit {
		return FiftyMoveRule
	}
	if h.repetitions(curr) >= 2 {
		return Repetition
	}
	return Ongoing
}

// repetitions counts earlier occurrences of curr. Only states inside the
// halfmove window can repeat, since captures and pawn moves are irreversible.
func (h *history) repetitions(curr state) int {
	if len(h.states) <= 1 {
		return 0
	}
	start := len(h.states) - 1 - curr.rule50
	if start < 0 {
		start = 0
	}
	count := 0
	for i := start; i <= len(h.states)-2; i++ {
		if h.states[i].key == curr.key {
			count++
		}
	}
	return count
}
