package tui

import (
	"time"

	"github.com/vovakirdan/rollhigh/internal/core"
)

// HeldKeys turns key presses into held state. Terminals report a press and
// then auto-repeats while the key stays down, but never the release, so a
// key counts as held for a window after each event: a longer one after a
// fresh press to bridge the auto-repeat delay, a short one after repeats.
type HeldKeys struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold windows.
func NewHeldKeys(initial, repeat time.Duration) *HeldKeys {
	return &HeldKeys{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a key event at now. It reports whether the press is fresh,
// that is the key was not already held.
func (h *HeldKeys) Press(a core.Action, now time.Time) bool {
	fresh := !h.Held(a, now)
	if fresh {
		h.until[a] = now.Add(h.initial)
	} else {
		h.until[a] = now.Add(h.repeat)
	}
	return fresh
}

// Tap records a one-shot key event at now and reports whether it is fresh.
// Only the short repeat window applies, so auto-repeats of a held key are
// absorbed while a real second press soon after the first still counts.
func (h *HeldKeys) Tap(a core.Action, now time.Time) bool {
	fresh := !h.Held(a, now)
	h.until[a] = now.Add(h.repeat)
	return fresh
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Frame returns the held movement actions at now.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a := range h.until {
		if a.IsMovement() && h.Held(a, now) {
			f.Set(a)
		}
	}
	return f
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.until)
}
