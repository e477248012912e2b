package tui

import (
	"time"

	"github.com/vovakirdan/shield-duel/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
const DefaultHoldWindow = 180 * time.Millisecond

type heldKey struct {
	player core.PlayerID
	action core.Action
}

// HeldKeys approximates key-up events for terminals, which only report
// presses and auto-repeats. A key is held until window has passed since its
// last press; the end of that window is its release.
type HeldKeys struct {
	window time.Duration
	until  map[heldKey]time.Time
}

// NewHeldKeys creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	h := &HeldKeys{until: make(map[heldKey]time.Time)}
	h.SetWindow(window)
	return h
}

// Window returns the current hold window.
func (h *HeldKeys) Window() time.Duration {
	return h.window
}

// SetWindow changes the hold window for future presses.
func (h *HeldKeys) SetWindow(window time.Duration) {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	h.window = window
}

// Press records a press (or auto-repeat) of action by player at now.
func (h *HeldKeys) Press(player core.PlayerID, action core.Action, now time.Time) {
	h.until[heldKey{player, action}] = now.Add(h.window)
}

// Held reports whether the action is held at now.
func (h *HeldKeys) Held(player core.PlayerID, action core.Action, now time.Time) bool {
	t, ok := h.until[heldKey{player, action}]
	return ok && now.Before(t)
}

// Frame samples every held action at now and forgets released ones.
func (h *HeldKeys) Frame(now time.Time) core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for k, t := range h.until {
		if !now.Before(t) {
			delete(h.until, k)
			continue
		}
		frame.Press(k.player, k.action)
	}
	return frame
}

// Release drops every held key.
func (h *HeldKeys) Release() {
	clear(h.until)
}
