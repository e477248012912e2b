package duel

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
)

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name             string
		health1, health2 int
		want             Outcome
		wantBanner       string
	}{
		{"both alive", 50, 50, OutcomeNone, ""},
		{"draw", 0, 0, OutcomeDraw, "It's a draw!"},
		{"player 2 wins", 0, 40, OutcomePlayer2, "Player 2 wins!"},
		{"player 1 wins", 40, 0, OutcomePlayer1, "Player 1 wins!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveOutcome(tc.health1, tc.health2)
			if got != tc.want {
				t.Errorf("resolveOutcome(%d, %d) = %v, expected %v", tc.health1, tc.health2, got, tc.want)
			}
			if got.Banner() != tc.wantBanner {
				t.Errorf("Banner() = %q, expected %q", got.Banner(), tc.wantBanner)
			}
		})
	}
}

func TestTerminalCheckScores(t *testing.T) {
	tests := []struct {
		name             string
		health1, health2 int
		wantScore1       int
		wantScore2       int
		wantWinner       core.PlayerID
	}{
		{"draw leaves scores", 0, 0, 0, 0, 0},
		{"player 2 survives", 0, 30, 0, 1, core.Player2},
		{"player 1 survives", 30, 0, 1, 0, core.Player1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := runningGame(ModeDuo, 100, 300, 600, 300)
			g.actors[0].Health = tc.health1
			g.actors[1].Health = tc.health2

			snap := g.Tick(core.NewMultiInputFrame(), frame)

			if snap.Phase != PhaseOver {
				t.Fatalf("phase = %v, expected over", snap.Phase)
			}
			if snap.Score1 != tc.wantScore1 || snap.Score2 != tc.wantScore2 {
				t.Errorf("scores = %d:%d, expected %d:%d", snap.Score1, snap.Score2, tc.wantScore1, tc.wantScore2)
			}
			if countEvents(snap, EventMatchOver, tc.wantWinner) != 1 {
				t.Errorf("events = %v, expected one match-over for %d", snap.Events, tc.wantWinner)
			}
		})
	}
}

func TestLethalHitEndsMatch(t *testing.T) {
	g := runningGame(ModeDuo, 100, 300, 160, 300)
	g.actors[1].Health = 10

	snap := g.Tick(input(core.Player1, core.ActionFire), frame)

	if snap.Actors[1].Health != 0 {
		t.Fatalf("player 2 health = %d, expected 0", snap.Actors[1].Health)
	}
	if snap.Phase != PhaseOver || snap.Outcome != OutcomePlayer1 {
		t.Fatalf("phase/outcome = %v/%v, expected over/player 1", snap.Phase, snap.Outcome)
	}
	if snap.Score1 != 1 || snap.Score2 != 0 {
		t.Errorf("scores = %d:%d, expected 1:0", snap.Score1, snap.Score2)
	}
	if snap.Banner != "Player 1 wins!" {
		t.Errorf("banner = %q", snap.Banner)
	}

	// Nothing moves once the match is over
	before := snap.Actors
	snap = g.Tick(input(core.Player1, core.ActionRight), frame)
	if snap.Actors != before {
		t.Error("actors changed after the match ended")
	}
	if snap.Score1 != 1 {
		t.Error("score must only be counted once")
	}
}

func TestPauseToggleOnPressEdge(t *testing.T) {
	g := runningGame(ModeDuo, 100, 100, 600, 500)
	pause := input(core.Player1, core.ActionPause)
	pauseAndMove := input(core.Player1, core.ActionPause, core.ActionRight)
	move := input(core.Player1, core.ActionRight)

	if snap := g.Tick(pause, frame); snap.Phase != PhasePaused {
		t.Fatalf("phase = %v, expected paused", snap.Phase)
	}

	// Held pause does not toggle again, and nothing moves
	snap := g.Tick(pauseAndMove, frame)
	if snap.Phase != PhasePaused {
		t.Fatalf("holding pause should not resume, phase = %v", snap.Phase)
	}
	snap = g.Tick(move, frame)
	if snap.Actors[0].X != 100 {
		t.Errorf("actor moved while paused, x = %v", snap.Actors[0].X)
	}

	// Player 2 can resume too
	snap = g.Tick(input(core.Player2, core.ActionPause), frame)
	if snap.Phase != PhaseRunning {
		t.Fatalf("phase = %v, expected running", snap.Phase)
	}
	snap = g.Tick(move, frame)
	if snap.Actors[0].X != 105 {
		t.Errorf("x = %v, expected movement to resume", snap.Actors[0].X)
	}
}

func TestPauseFreezesProjectilesAndTimers(t *testing.T) {
	g := runningGame(ModeDuo, 100, 100, 600, 500)
	g.Tick(input(core.Player1, core.ActionFire), frame)
	shot := g.projectiles[0]
	clock := g.now

	g.TogglePause()
	for i := 0; i < 5; i++ {
		g.Tick(core.NewMultiInputFrame(), time.Second)
	}

	if g.projectiles[0] != shot {
		t.Error("projectile advanced while paused")
	}
	if g.now != clock {
		t.Errorf("clock advanced while paused: %v -> %v", clock, g.now)
	}
}

func TestLifecycle(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	g := New(cfg, ModeDuo)
	empty := core.NewMultiInputFrame()

	if g.Phase() != PhaseIdle {
		t.Fatalf("new game phase = %v, expected idle", g.Phase())
	}
	if g.Rematch() || g.TogglePause() {
		t.Error("rematch and pause should be ignored while idle")
	}

	// Idle ticks change nothing
	if snap := g.Tick(input(core.Player1, core.ActionRight, core.ActionFire), frame); snap.Actors[0].X != 100 || len(snap.Projectiles) != 0 {
		t.Error("idle tick should not move or fire")
	}

	if !g.Start() {
		t.Fatal("Start() from idle should succeed")
	}
	if g.Start() {
		t.Error("Start() twice should be ignored")
	}
	if g.SetMode(ModeSolo) {
		t.Error("mode change outside idle should be ignored")
	}

	// Countdown shows whole seconds
	snap := g.Tick(empty, 100*time.Millisecond)
	if snap.Phase != PhaseDropping || snap.IntroStage != IntroCountdown || snap.Countdown != 3 {
		t.Fatalf("after first intro tick: phase %v stage %v countdown %d", snap.Phase, snap.IntroStage, snap.Countdown)
	}

	started := 0
	sawHolding := false
	for i := 0; i < 1000 && g.Phase() == PhaseDropping; i++ {
		snap = g.Tick(empty, 100*time.Millisecond)
		started += countEvents(snap, EventMatchStarted, 0)
		if snap.IntroStage == IntroHolding {
			sawHolding = true
		}
	}
	if snap.Phase != PhaseRunning || started != 1 || !sawHolding {
		t.Fatalf("intro ended in %v with %d start events (holding seen: %v)", snap.Phase, started, sawHolding)
	}
	for _, a := range snap.Actors {
		if a.Y != cfg.Intro.DropTargetY {
			t.Errorf("player %d landed at y=%v, expected %v", a.ID, a.Y, cfg.Intro.DropTargetY)
		}
	}

	// Finish the match and rematch
	g.actors[0].Health = 0
	snap = g.Tick(empty, frame)
	if snap.Phase != PhaseOver || snap.Score2 != 1 {
		t.Fatalf("phase %v score2 %d, expected over with player 2 scoring", snap.Phase, snap.Score2)
	}
	g.projectiles = append(g.projectiles, Projectile{X: 10, Y: 10})

	if !g.Rematch() {
		t.Fatal("Rematch() from over should succeed")
	}
	snap = g.Snapshot()
	if snap.Phase != PhaseIdle || snap.Outcome != OutcomeNone {
		t.Errorf("after rematch: phase %v outcome %v", snap.Phase, snap.Outcome)
	}
	if snap.Score2 != 1 {
		t.Errorf("scores should survive a rematch, score2 = %d", snap.Score2)
	}
	if len(snap.Projectiles) != 0 {
		t.Error("rematch should clear projectiles")
	}
	p1 := snap.Actors[0]
	if p1.Health != 100 || p1.Shield != 100 || p1.X != 100 || p1.Y != 0 || !p1.CanFire {
		t.Errorf("player 1 not restored: %+v", p1)
	}

	if !g.SetMode(ModeSolo) || g.Mode() != ModeSolo {
		t.Error("mode change while idle should succeed")
	}
}

func TestSetConfigAppliesOnReset(t *testing.T) {
	g := runningGame(ModeDuo, 100, 300, 600, 300)
	cfg := config.DefaultDuelConfig()
	cfg.Actor.Speed = 8

	g.SetConfig(cfg)
	g.Tick(input(core.Player1, core.ActionRight), frame)
	if g.actors[0].X != 105 {
		t.Errorf("new tuning applied mid-match, x = %v", g.actors[0].X)
	}

	g.Reset()
	if g.Config().Actor.Speed != 8 {
		t.Error("pending tuning should apply on reset")
	}

	// While idle the config applies immediately
	cfg.Spawn.Player1.X = 50
	g.SetConfig(cfg)
	if g.actors[0].X != 50 {
		t.Errorf("idle SetConfig should respawn actors, x = %v", g.actors[0].X)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same inputs must produce the same state
	inputs := make([]core.MultiInputFrame, 400)
	for i := range inputs {
		in := core.NewMultiInputFrame()
		if i%7 < 4 {
			in.Press(core.Player1, core.ActionRight)
		}
		if i%11 == 0 {
			in.Press(core.Player1, core.ActionFire)
		}
		if i%5 == 0 {
			in.Press(core.Player1, core.ActionDown)
		}
		inputs[i] = in
	}

	run := func() Snapshot {
		g := runningGame(ModeSolo, 100, 300, 600, 300)
		var snap Snapshot
		for _, in := range inputs {
			snap = g.Tick(in, frame)
		}
		return snap
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick == 0 {
		t.Error("expected ticks to be counted")
	}
}

func TestModeAndPhaseNames(t *testing.T) {
	for _, s := range []string{"duo", "solo"} {
		m, err := ParseMode(s)
		if err != nil || m.String() != s {
			t.Errorf("ParseMode(%q) = %v, %v", s, m, err)
		}
	}
	if _, err := ParseMode("trio"); err == nil || !strings.Contains(err.Error(), "trio") {
		t.Errorf("ParseMode(trio) error = %v", err)
	}
	if PhasePaused.String() != "paused" || EventShieldBroken.String() != "shield-broken" {
		t.Error("unexpected names")
	}
}
