package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shield-duel/internal/games/duel"
	"github.com/vovakirdan/shield-duel/internal/storage"
)

const nameLimit = 12

// Selection is what the setup menu produced.
type Selection struct {
	Mode   duel.Mode
	P1Name string
	P2Name string
}

// HUD returns the labels for the match screen.
func (s Selection) HUD() duel.HUD {
	return duel.HUD{P1Name: s.P1Name, P2Name: s.P2Name}
}

type setupField int

const (
	fieldMode setupField = iota
	fieldP1
	fieldP2
	fieldStart
	fieldCount
)

// SetupKeyMap defines the key bindings for the setup menu.
type SetupKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Toggle}, {k.Confirm, k.Quit}}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("S-tab/↑", "prev")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "mode")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// SetupModel is the Bubble Tea model for choosing mode and player names.
type SetupModel struct {
	mode  duel.Mode
	p1    textinput.Model
	p2    textinput.Model
	focus setupField
	keys  SetupKeyMap
	help  help.Model
	lg    *lipgloss.Renderer

	width  int
	height int

	selected *Selection
	quitting bool
}

// NewSetupModel creates a setup menu prefilled from prefs.
func NewSetupModel(prefs storage.Preferences, lg *lipgloss.Renderer, width, height int) SetupModel {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	mode, err := duel.ParseMode(prefs.Mode)
	if err != nil {
		mode = duel.ModeDuo
	}

	m := SetupModel{
		mode:   mode,
		p1:     newNameInput("Player 1", prefs.P1Name),
		p2:     newNameInput("Player 2", prefs.P2Name),
		focus:  fieldStart,
		keys:   DefaultSetupKeyMap(),
		help:   help.New(),
		lg:     lg,
		width:  width,
		height: height,
	}
	return m
}

func newNameInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = nameLimit
	ti.Width = nameLimit + 1
	ti.Prompt = ""
	ti.SetValue(value)
	return ti
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the setup menu.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m.updateInputs(msg)
}

// handleKey processes keyboard input for menu navigation.
func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Toggle) && m.focus == fieldMode:
		if m.mode == duel.ModeDuo {
			m.mode = duel.ModeSolo
		} else {
			m.mode = duel.ModeDuo
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		sel := m.Current()
		m.selected = &sel
		return m, nil
	}

	return m.updateInputs(msg)
}

// moveFocus cycles focus, skipping the P2 name in solo mode.
func (m *SetupModel) moveFocus(delta int) tea.Cmd {
	next := m.focus
	for {
		next = (next + setupField(delta) + fieldCount) % fieldCount
		if next != fieldP2 || m.mode == duel.ModeDuo {
			break
		}
	}
	m.focus = next

	m.p1.Blur()
	m.p2.Blur()
	switch m.focus {
	case fieldP1:
		return m.p1.Focus()
	case fieldP2:
		return m.p2.Focus()
	}
	return nil
}

// updateInputs forwards a message to the focused name field.
func (m SetupModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldP1:
		m.p1, cmd = m.p1.Update(msg)
	case fieldP2:
		m.p2, cmd = m.p2.Update(msg)
	}
	return m, cmd
}

// Current returns the selection as currently shown, with names cleaned up.
func (m SetupModel) Current() Selection {
	sel := Selection{
		Mode:   m.mode,
		P1Name: cleanName(m.p1.Value(), "Player 1"),
		P2Name: cleanName(m.p2.Value(), "Player 2"),
	}
	return sel
}

func cleanName(s, fallback string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return fallback
	}
	return s
}

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.lg.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle := m.lg.NewStyle().Width(10)
	activeStyle := m.lg.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := m.lg.NewStyle().Foreground(lipgloss.Color("241"))

	cursor := func(f setupField) string {
		if m.focus == f {
			return activeStyle.Render("> ")
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S H I E L D   D U E L"), m.width))
	b.WriteString("\n\n")

	rows := make([]string, 0, int(fieldCount))

	modeText := "< duo >"
	if m.mode == duel.ModeSolo {
		modeText = "< solo vs computer >"
	}
	rows = append(rows, cursor(fieldMode)+labelStyle.Render("Mode")+modeText)

	rows = append(rows, cursor(fieldP1)+labelStyle.Render("Player 1")+m.p1.View())
	if m.mode == duel.ModeSolo {
		rows = append(rows, "  "+labelStyle.Render("Player 2")+dimStyle.Render("Computer"))
	} else {
		rows = append(rows, cursor(fieldP2)+labelStyle.Render("Player 2")+m.p2.View())
	}

	rows = append(rows, "")
	rows = append(rows, cursor(fieldStart)+button("Start duel", m.focus == fieldStart, activeStyle))

	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	for _, line := range strings.Split(block, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func button(label string, active bool, style lipgloss.Style) string {
	text := fmt.Sprintf("[ %s ]", label)
	if active {
		return style.Render(text)
	}
	return text
}

// Selected returns the confirmed selection, or nil if none yet.
func (m SetupModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, measuring visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
