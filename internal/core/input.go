package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W / Up arrow - move up
	ActionDown           // S / Down arrow - move down
	ActionLeft           // A / Left arrow - move left
	ActionRight          // D / Right arrow - move right
	ActionFire           // Space / Enter - fire a projectile
	ActionShield         // Q / M - hold shield
	ActionPause          // P - pause/unpause
	ActionConfirm        // Enter - confirm selection in menu, start match
	ActionBack           // Escape - go back to menu
	ActionRestart        // R key - rematch after game over
	ActionQuit           // Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionShield:
		return "Shield"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PlayerID identifies one of the two actors in a match.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Other returns the opposing player.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// InputFrame represents the input state for a single player during one simulation tick.
// Movement, fire and shield are level-triggered: present while the key is held.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// MultiInputFrame contains input from both players for a single tick.
// The platform fills it from the keyboard; in solo mode Player2's frame is
// ignored by the simulation because the opponent policy drives that actor.
type MultiInputFrame struct {
	// ByPlayer maps player IDs to their input frames.
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Press marks an action as active for the given player.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	frame := m.Player(id)
	frame.Set(a)
	m.SetPlayer(id, frame)
}

// Player1 returns the input frame for Player 1 (convenience method).
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Player2 returns the input frame for Player 2 (convenience method).
func (m MultiInputFrame) Player2() InputFrame {
	return m.Player(Player2)
}

// Any reports whether any player has the action active.
func (m MultiInputFrame) Any(a Action) bool {
	for _, frame := range m.ByPlayer {
		if frame.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}
