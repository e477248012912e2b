package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shield-duel/internal/core"
)

// KeyMap defines the in-match key bindings.
type KeyMap struct {
	P1Up     key.Binding
	P1Down   key.Binding
	P1Left   key.Binding
	P1Right  key.Binding
	P1Fire   key.Binding
	P1Shield key.Binding

	P2Up     key.Binding
	P2Down   key.Binding
	P2Left   key.Binding
	P2Right  key.Binding
	P2Fire   key.Binding
	P2Shield key.Binding

	Start   key.Binding
	Pause   key.Binding
	Rematch key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings: WASD/Space/Q for player 1,
// arrows/Enter/M for player 2.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up:     key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w", "up")),
		P1Down:   key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "down")),
		P1Left:   key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "left")),
		P1Right:  key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "right")),
		P1Fire:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "fire")),
		P1Shield: key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "shield")),

		P2Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		P2Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		P2Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		P2Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		P2Fire:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fire")),
		P2Shield: key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("m", "shield")),

		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Pause:   key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "pause")),
		Rematch: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "rematch")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Rematch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P1Left, k.P1Right, k.P1Fire, k.P1Shield},
		{k.P2Up, k.P2Down, k.P2Left, k.P2Right, k.P2Fire, k.P2Shield},
		{k.Start, k.Pause, k.Rematch, k.Back, k.Quit},
	}
}

// playerBinding ties a binding to the player action it produces.
type playerBinding struct {
	binding *key.Binding
	player  core.PlayerID
	action  core.Action
}

func (k *KeyMap) playerBindings() []playerBinding {
	return []playerBinding{
		{&k.P1Up, core.Player1, core.ActionUp},
		{&k.P1Down, core.Player1, core.ActionDown},
		{&k.P1Left, core.Player1, core.ActionLeft},
		{&k.P1Right, core.Player1, core.ActionRight},
		{&k.P1Fire, core.Player1, core.ActionFire},
		{&k.P1Shield, core.Player1, core.ActionShield},
		{&k.P2Up, core.Player2, core.ActionUp},
		{&k.P2Down, core.Player2, core.ActionDown},
		{&k.P2Left, core.Player2, core.ActionLeft},
		{&k.P2Right, core.Player2, core.ActionRight},
		{&k.P2Fire, core.Player2, core.ActionFire},
		{&k.P2Shield, core.Player2, core.ActionShield},
	}
}

// PlayerAction maps a key to a player action.
// Returns ok=false if the key is not a player control.
func (k KeyMap) PlayerAction(msg tea.KeyMsg) (player core.PlayerID, action core.Action, ok bool) {
	for _, pb := range k.playerBindings() {
		if key.Matches(msg, *pb.binding) {
			return pb.player, pb.action, true
		}
	}
	return 0, core.ActionNone, false
}
