package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
	"github.com/vovakirdan/shield-duel/internal/games/duel"
)

// recorder counts audio cues.
type recorder struct {
	fire, hit, shieldBreak, start, stop int
}

func (r *recorder) PlayFire()        { r.fire++ }
func (r *recorder) PlayHit()         { r.hit++ }
func (r *recorder) PlayShieldBreak() { r.shieldBreak++ }
func (r *recorder) StartMusic()      { r.start++ }
func (r *recorder) StopMusic()       { r.stop++ }

// fastConfig skips the countdown and hold so a match runs after three ticks.
func fastConfig() config.DuelConfig {
	cfg := config.DefaultDuelConfig()
	cfg.Intro.CountdownMS = 0
	cfg.Intro.HoldMS = 0
	cfg.Intro.DropSpeed = 1000
	return cfg
}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

type harness struct {
	t     *testing.T
	m     GameModel
	clock *testClock
	audio *recorder
}

func newHarness(t *testing.T, cfg config.DuelConfig, mode duel.Mode) *harness {
	t.Helper()
	clock := &testClock{t: time.Unix(1000, 0)}
	rec := &recorder{}
	m := NewGameModel(MatchOptions{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Mode:    mode,
		HUD:     duel.HUD{P1Name: "Ann", P2Name: "Bob"},
		Audio:   rec,
		Now:     clock.now,
	})
	return &harness{t: t, m: m, clock: clock, audio: rec}
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, _ := h.m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.m = gm
}

func (h *harness) tick(n int) {
	h.t.Helper()
	for i := 0; i < n; i++ {
		h.clock.t = h.clock.t.Add(16 * time.Millisecond)
		h.send(TickMsg{ID: h.m.id, Time: h.clock.t})
	}
}

func (h *harness) start() {
	h.t.Helper()
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.tick(3)
	if h.m.Snapshot().Phase != duel.PhaseRunning {
		h.t.Fatalf("phase = %v after intro, expected Running", h.m.Snapshot().Phase)
	}
}

func TestGameModelStartsOnEnter(t *testing.T) {
	h := newHarness(t, fastConfig(), duel.ModeDuo)

	if h.m.Snapshot().Phase != duel.PhaseIdle {
		t.Fatalf("new model phase = %v, expected Idle", h.m.Snapshot().Phase)
	}

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if h.m.Snapshot().Phase != duel.PhaseDropping {
		t.Fatalf("phase = %v after Enter, expected Dropping", h.m.Snapshot().Phase)
	}

	h.tick(3)
	if h.m.Snapshot().Phase != duel.PhaseRunning {
		t.Fatalf("phase = %v, expected Running", h.m.Snapshot().Phase)
	}
	if h.audio.start != 1 {
		t.Errorf("music started %d times, expected 1", h.audio.start)
	}
}

func TestGameModelFireCue(t *testing.T) {
	h := newHarness(t, fastConfig(), duel.ModeDuo)
	h.start()

	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.tick(1)
	if h.audio.fire != 1 {
		t.Fatalf("fire cues = %d, expected 1", h.audio.fire)
	}
	if len(h.m.Snapshot().Projectiles) != 1 {
		t.Errorf("expected 1 projectile, got %d", len(h.m.Snapshot().Projectiles))
	}

	// Still held: no second shot
	h.tick(5)
	if h.audio.fire != 1 {
		t.Errorf("holding fire should not repeat, got %d cues", h.audio.fire)
	}
}

func TestGameModelPausePulse(t *testing.T) {
	h := newHarness(t, fastConfig(), duel.ModeDuo)
	h.start()

	h.send(runeKey('p'))
	h.tick(1)
	if h.m.Snapshot().Phase != duel.PhasePaused {
		t.Fatalf("phase = %v, expected Paused", h.m.Snapshot().Phase)
	}
	if h.audio.stop != 1 {
		t.Errorf("music should stop on pause, stop=%d", h.audio.stop)
	}

	// Pulse lasts one tick only
	h.tick(3)
	if h.m.Snapshot().Phase != duel.PhasePaused {
		t.Fatal("pause should not toggle again without a new press")
	}

	h.send(runeKey('p'))
	h.tick(1)
	if h.m.Snapshot().Phase != duel.PhaseRunning {
		t.Fatalf("phase = %v, expected Running after resume", h.m.Snapshot().Phase)
	}
	if h.audio.start != 2 {
		t.Errorf("music should restart on resume, start=%d", h.audio.start)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	h := newHarness(t, fastConfig(), duel.ModeDuo)
	h.start()

	before := h.m.Snapshot().Tick
	h.send(TickMsg{ID: h.m.id + 1000, Time: h.clock.t})
	if h.m.Snapshot().Tick != before {
		t.Error("tick for another match should be ignored")
	}
}

func TestGameModelMatchOverAndRematch(t *testing.T) {
	cfg := fastConfig()
	cfg.Actor.MaxHealth = 10
	h := newHarness(t, cfg, duel.ModeDuo)
	h.start()

	// Player 1 faces right toward player 2 on the same row
	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 200 && h.m.Snapshot().Phase == duel.PhaseRunning; i++ {
		h.tick(1)
	}

	snap := h.m.Snapshot()
	if snap.Phase != duel.PhaseOver {
		t.Fatalf("phase = %v, expected Over", snap.Phase)
	}
	if snap.Outcome != duel.OutcomePlayer1 || snap.Score1 != 1 {
		t.Errorf("outcome = %v score1 = %d", snap.Outcome, snap.Score1)
	}
	if h.audio.hit != 1 || h.audio.stop != 1 {
		t.Errorf("expected one hit cue and music stop, got hit=%d stop=%d", h.audio.hit, h.audio.stop)
	}

	// Rematch returns to Idle with scores kept
	h.send(runeKey('r'))
	if h.m.Snapshot().Phase != duel.PhaseIdle || h.m.Snapshot().Score1 != 1 {
		t.Errorf("after rematch phase=%v score1=%d", h.m.Snapshot().Phase, h.m.Snapshot().Score1)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	h := newHarness(t, fastConfig(), duel.ModeSolo)
	h.start()

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.m.BackToMenu() {
		t.Error("Esc should request the menu")
	}
	if h.m.Game().Phase() != duel.PhaseIdle {
		t.Error("leaving the match should reset it")
	}

	h2 := newHarness(t, fastConfig(), duel.ModeDuo)
	h2.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !h2.m.IsQuitting() {
		t.Error("Ctrl+C should quit")
	}
	if h2.m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelViewRendersArena(t *testing.T) {
	h := newHarness(t, fastConfig(), duel.ModeDuo)
	if h.m.View() == "" {
		t.Error("View should render the idle arena")
	}
}
