package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shield-duel/internal/audio"
	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
	"github.com/vovakirdan/shield-duel/internal/games/duel"
)

// MatchOptions configures a GameModel.
type MatchOptions struct {
	Config   config.DuelConfig
	Runtime  core.RuntimeConfig
	Mode     duel.Mode
	HUD      duel.HUD
	Audio    audio.Player    // optional, defaults to audio.Nop
	Watcher  *config.Watcher // optional, hot-reloads tuning
	Logger   *log.Logger     // optional
	Renderer *ScreenRenderer // optional
	Now      func() time.Time
}

// GameModel runs one duel inside Bubble Tea. Key presses feed a held-key
// tracker; every tick samples it into an input frame and advances the game.
type GameModel struct {
	id       int64
	game     *duel.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	runtime  core.RuntimeConfig
	hud      duel.HUD
	keys     KeyMap
	held     *HeldKeys
	pulse    core.MultiInputFrame // one-tick actions such as pause
	audio    audio.Player
	watcher  *config.Watcher
	logger   *log.Logger
	now      func() time.Time
	snap     duel.Snapshot

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a match in the Idle phase.
func NewGameModel(opts MatchOptions) GameModel {
	runtime := opts.Runtime.Normalize()
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	game := duel.New(opts.Config, opts.Mode)
	return GameModel{
		id:       nextMatchID(),
		game:     game,
		screen:   core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		renderer: opts.Renderer,
		runtime:  runtime,
		hud:      opts.HUD,
		keys:     DefaultKeyMap(),
		held:     NewHeldKeys(opts.Config.HoldWindow()),
		pulse:    core.NewMultiInputFrame(),
		audio:    opts.Audio,
		watcher:  opts.Watcher,
		logger:   opts.Logger,
		now:      opts.Now,
		snap:     game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate, m.id)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.runtime.TickRate, m.id)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.audio.StopMusic()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.audio.StopMusic()
		m.game.Reset()
		m.held.Release()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Start) && m.game.Phase() == duel.PhaseIdle:
		m.game.Start()
		m.snap = m.game.Snapshot()
		return m, nil

	case key.Matches(msg, m.keys.Rematch):
		if m.game.Rematch() {
			m.held.Release()
			m.snap = m.game.Snapshot()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.pulse.Press(core.Player1, core.ActionPause)
		return m, nil
	}

	if player, action, ok := m.keys.PlayerAction(msg); ok {
		m.held.Press(player, action, m.now())
	}
	return m, nil
}

// step advances the simulation by one tick and reacts to its events.
func (m *GameModel) step() {
	m.drainWatcher()

	in := m.held.Frame(m.now())
	for id, frame := range m.pulse.ByPlayer {
		for a, on := range frame.Actions {
			if on {
				in.Press(id, a)
			}
		}
	}
	m.pulse.Clear()

	prev := m.snap.Phase
	m.snap = m.game.Tick(in, tickInterval(m.runtime.TickRate))
	m.react(prev)
}

// react maps tick events and phase changes to audio cues.
func (m *GameModel) react(prev duel.Phase) {
	for _, ev := range m.snap.Events {
		switch ev.Kind {
		case duel.EventFired:
			m.audio.PlayFire()
		case duel.EventHit:
			m.audio.PlayHit()
		case duel.EventShieldBroken:
			m.audio.PlayShieldBreak()
		case duel.EventMatchStarted:
			m.audio.StartMusic()
		case duel.EventMatchOver:
			m.audio.StopMusic()
			m.logger.Debug("match over", "outcome", m.snap.Banner, "score1", m.snap.Score1, "score2", m.snap.Score2)
		}
	}

	switch {
	case prev == duel.PhaseRunning && m.snap.Phase == duel.PhasePaused:
		m.audio.StopMusic()
	case prev == duel.PhasePaused && m.snap.Phase == duel.PhaseRunning:
		m.audio.StartMusic()
	}
}

// drainWatcher applies reloaded tuning without blocking the tick.
func (m *GameModel) drainWatcher() {
	if m.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-m.watcher.Configs:
			if !ok {
				m.watcher = nil
				return
			}
			m.game.SetConfig(cfg)
			m.held.SetWindow(cfg.HoldWindow())
			m.logger.Info("config reloaded", "path", m.watcher.Path(), "phase", m.game.Phase())
		case err, ok := <-m.watcher.Errors:
			if !ok {
				m.watcher = nil
				return
			}
			m.logger.Warn("config reload failed", "error", err)
		default:
			return
		}
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	duel.Render(m.screen, m.snap, m.hud)
	return m.renderer.Render(m.screen)
}

// Snapshot returns the state after the last tick.
func (m GameModel) Snapshot() duel.Snapshot {
	return m.snap
}

// Game returns the underlying simulation.
func (m GameModel) Game() *duel.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the setup menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
