package tui

import "github.com/vovakirdan/tui-asteroids/internal/core"

// defaultHoldTicks is how long a steering or thrust press lasts. Terminals
// report key repeats, not releases, so a held key is a stream of presses
// and a key counts as down until its last press ages out.
const defaultHoldTicks = 6

// heldInput turns key presses into per-tick input frames. Steering and
// thrust stay down for a few ticks after each press; every other action
// is delivered once, on the next tick.
type heldInput struct {
	hold    int
	tick    int
	until   map[core.Action]int
	pending core.InputFrame
}

func newHeldInput(hold int) *heldInput {
	if hold <= 0 {
		hold = defaultHoldTicks
	}
	return &heldInput{
		hold:    hold,
		until:   make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

func continuous(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionThrust
}

// Press records a key press.
func (h *heldInput) Press(a core.Action) {
	if continuous(a) {
		// Opposite turns replace each other rather than cancelling.
		switch a {
		case core.ActionLeft:
			delete(h.until, core.ActionRight)
		case core.ActionRight:
			delete(h.until, core.ActionLeft)
		}
		h.until[a] = h.tick + h.hold
		return
	}
	h.pending.Set(a)
}

// Next returns the frame for the coming tick and advances one tick.
func (h *heldInput) Next() core.InputFrame {
	frame := h.pending.Clone()
	for a, until := range h.until {
		if h.tick < until {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	h.pending.Clear()
	h.tick++
	return frame
}

// Reset drops everything held or pending.
func (h *heldInput) Reset() {
	clear(h.until)
	h.pending.Clear()
}
