package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shield-duel/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapPlayerAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		player core.PlayerID
		action core.Action
	}{
		{"w", runeKey('w'), core.Player1, core.ActionUp},
		{"S uppercase", runeKey('S'), core.Player1, core.ActionDown},
		{"a", runeKey('a'), core.Player1, core.ActionLeft},
		{"d", runeKey('d'), core.Player1, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Player1, core.ActionFire},
		{"q", runeKey('q'), core.Player1, core.ActionShield},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.Player2, core.ActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.Player2, core.ActionDown},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.Player2, core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.Player2, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Player2, core.ActionFire},
		{"m", runeKey('m'), core.Player2, core.ActionShield},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player, action, ok := km.PlayerAction(tc.msg)
			if !ok {
				t.Fatalf("PlayerAction(%q) not mapped", tc.msg.String())
			}
			if player != tc.player || action != tc.action {
				t.Errorf("PlayerAction(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), player, action, tc.player, tc.action)
			}
		})
	}
}

func TestKeyMapUnmapped(t *testing.T) {
	km := DefaultKeyMap()
	for _, r := range []rune{'p', 'r', 'x', '1'} {
		if _, _, ok := km.PlayerAction(runeKey(r)); ok {
			t.Errorf("%q should not be a player control", r)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	groups := km.FullHelp()
	if len(groups) != 3 || len(groups[0]) != 6 || len(groups[1]) != 6 {
		t.Errorf("FullHelp should list both players' six controls, got %d groups", len(groups))
	}
}
