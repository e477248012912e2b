package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shield-duel/internal/audio"
	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
	"github.com/vovakirdan/shield-duel/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Config   config.DuelConfig
	Runtime  core.RuntimeConfig
	Profile  string
	Store    *storage.Store       // optional
	Prefs    *storage.Preferences // overrides stored preferences when set
	SkipMenu bool                 // start the first match without the setup menu
	Audio    audio.Player
	Watcher  *config.Watcher
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

type sessionScreen int

const (
	screenSetup sessionScreen = iota
	screenGame
)

// SessionModel manages the full session flow: setup -> duel -> setup.
// This is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	prefs    storage.Preferences
	screen   sessionScreen
	setup    SetupModel
	game     *GameModel
	renderer *ScreenRenderer
	quitting bool
}

// NewSessionModel creates a session, loading preferences for the profile.
func NewSessionModel(opts SessionOptions) SessionModel {
	opts.Runtime = opts.Runtime.Normalize()
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}

	prefs := storage.DefaultPreferences(opts.Profile)
	if opts.Store != nil {
		loaded, _, err := opts.Store.LoadPreferences(opts.Profile)
		if err != nil {
			opts.Logger.Warn("could not load preferences", "profile", opts.Profile, "error", err)
		} else {
			prefs = loaded
		}
	}
	if opts.Prefs != nil {
		prefs = *opts.Prefs
		prefs.Profile = opts.Profile
	}

	m := SessionModel{
		opts:     opts,
		prefs:    prefs,
		screen:   screenSetup,
		renderer: NewScreenRenderer(opts.Renderer),
	}
	m.setup = NewSetupModel(prefs, opts.Renderer, opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	if opts.SkipMenu {
		m.startGame(m.setup.Current())
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.screen == screenGame {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates when in the setup menu.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks from a finished match may still be in flight
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if sel := m.setup.Selected(); sel != nil {
		m.savePreferences(*sel)
		m.startGame(*sel)
		return m, m.game.Init()
	}

	return m, cmd
}

// startGame switches to a fresh match for sel.
func (m *SessionModel) startGame(sel Selection) {
	gm := NewGameModel(MatchOptions{
		Config:   m.opts.Config,
		Runtime:  m.opts.Runtime,
		Mode:     sel.Mode,
		HUD:      sel.HUD(),
		Audio:    m.opts.Audio,
		Watcher:  m.opts.Watcher,
		Logger:   m.opts.Logger,
		Renderer: m.renderer,
	})
	m.game = &gm
	m.screen = screenGame
}

// savePreferences stores the setup choices. Failures are logged and ignored.
func (m *SessionModel) savePreferences(sel Selection) {
	m.prefs.Mode = sel.Mode.String()
	m.prefs.P1Name = sel.P1Name
	m.prefs.P2Name = sel.P2Name
	if m.opts.Store == nil {
		return
	}
	if err := m.opts.Store.SavePreferences(m.prefs); err != nil {
		m.opts.Logger.Warn("could not save preferences", "profile", m.opts.Profile, "error", err)
	}
}

// updateGame handles updates when a match is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		// Keep tuning that was hot-reloaded during the match
		m.opts.Config = m.game.Game().Config()
		m.game = nil
		m.screen = screenSetup
		m.setup = NewSetupModel(m.prefs, m.opts.Renderer, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.setup.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.screen == screenGame {
		return m.game.View()
	}
	return m.setup.View()
}

// Preferences returns the session's current preferences.
func (m SessionModel) Preferences() storage.Preferences {
	return m.prefs
}

// Run starts a local session in the alternate screen.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
