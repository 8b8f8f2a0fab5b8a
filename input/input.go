package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// Action is a frontend-level command decoded from a key event
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
)

// Handler translates tcell key events into the simulation's input snapshot
//
// Terminals deliver key repeats but no release events, so held movement
// keys are modeled as a deadline: every press or repeat extends the hold,
// and the key reads as released once the deadline passes
type Handler struct {
	res *engine.InputResource

	leftUntil  time.Time
	rightUntil time.Time
	walkUntil  time.Time
}

// NewHandler creates a handler writing into the given input resource
func NewHandler(res *engine.InputResource) *Handler {
	return &Handler{res: res}
}

// HandleKey decodes one key event, updating hold deadlines and
// edge-triggered controls, and returns any frontend action
func (h *Handler) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return ActionQuit
	}
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}

	deadline := now.Add(parameter.InputKeyHoldDuration)

	switch ev.Rune() {
	case 'a':
		h.leftUntil = deadline
	case 'd':
		h.rightUntil = deadline

	// Shifted movement walks instead of running
	case 'A':
		h.leftUntil = deadline
		h.walkUntil = deadline
	case 'D':
		h.rightUntil = deadline
		h.walkUntil = deadline

	case ' ', 'w':
		h.res.Jump = true
	case 'j':
		h.res.Punch = true
	case 'k':
		h.res.Kick = true

	case 'r':
		return ActionRestart
	case 'q':
		return ActionQuit
	}

	return ActionNone
}

// Apply refreshes the held controls from their deadlines
// Call once per tick before stepping the simulation
func (h *Handler) Apply(now time.Time) {
	h.res.Left = now.Before(h.leftUntil)
	h.res.Right = now.Before(h.rightUntil)
	h.res.Walk = now.Before(h.walkUntil)
}

// Reset releases every control, used on round restart
func (h *Handler) Reset() {
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
	h.walkUntil = time.Time{}
	*h.res = engine.InputResource{}
}
