package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/parameter"
)

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHeldKeyDecay(t *testing.T) {
	res := &engine.InputResource{}
	h := NewHandler(res)
	now := time.Now()

	h.HandleKey(keyEvent('a'), now)
	h.Apply(now)
	if !res.Left {
		t.Errorf("Expected left held right after press")
	}

	h.Apply(now.Add(parameter.InputKeyHoldDuration / 2))
	if !res.Left {
		t.Errorf("Expected left still held inside hold window")
	}

	h.Apply(now.Add(parameter.InputKeyHoldDuration + time.Millisecond))
	if res.Left {
		t.Errorf("Expected left released after hold window")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	res := &engine.InputResource{}
	h := NewHandler(res)
	now := time.Now()

	h.HandleKey(keyEvent('d'), now)
	later := now.Add(parameter.InputKeyHoldDuration / 2)
	h.HandleKey(keyEvent('d'), later)

	h.Apply(now.Add(parameter.InputKeyHoldDuration + time.Millisecond))
	if !res.Right {
		t.Errorf("Expected repeat to extend the hold window")
	}
}

func TestShiftedMovementWalks(t *testing.T) {
	res := &engine.InputResource{}
	h := NewHandler(res)
	now := time.Now()

	h.HandleKey(keyEvent('A'), now)
	h.Apply(now)

	if !res.Left || !res.Walk {
		t.Errorf("Expected shifted press to hold left with walk modifier, got %+v", res)
	}
}

func TestEdgeTriggeredControls(t *testing.T) {
	res := &engine.InputResource{}
	h := NewHandler(res)
	now := time.Now()

	h.HandleKey(keyEvent(' '), now)
	h.HandleKey(keyEvent('j'), now)
	h.HandleKey(keyEvent('k'), now)

	if !res.Jump || !res.Punch || !res.Kick {
		t.Errorf("Expected all edge controls set, got %+v", res)
	}
}

func TestActions(t *testing.T) {
	res := &engine.InputResource{}
	h := NewHandler(res)
	now := time.Now()

	if got := h.HandleKey(keyEvent('r'), now); got != ActionRestart {
		t.Errorf("Expected restart action, got %v", got)
	}
	if got := h.HandleKey(keyEvent('q'), now); got != ActionQuit {
		t.Errorf("Expected quit action, got %v", got)
	}
	if got := h.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now); got != ActionQuit {
		t.Errorf("Expected quit on escape, got %v", got)
	}
	if got := h.HandleKey(keyEvent('x'), now); got != ActionNone {
		t.Errorf("Expected no action for unbound key, got %v", got)
	}
}

func TestReset(t *testing.T) {
	res := &engine.InputResource{}
	h := NewHandler(res)
	now := time.Now()

	h.HandleKey(keyEvent('a'), now)
	h.HandleKey(keyEvent('j'), now)
	h.Apply(now)

	h.Reset()

	if res.Left || res.Punch {
		t.Errorf("Expected all controls released after reset, got %+v", res)
	}

	h.Apply(now)
	if res.Left {
		t.Errorf("Expected hold deadlines cleared by reset")
	}
}
