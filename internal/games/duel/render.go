package duel

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/shield-duel/internal/core"
)

// Visual characters for rendering
const (
	ActorChar      = '█'
	ProjectileChar = '•'
	ShieldLeft     = '['
	ShieldRight    = ']'
	BrokenChar     = '*'
	BarFull        = '█'
	BarEmpty       = '░'
	FireReady      = '●'
	FireCooling    = '○'
)

// Minimum screen size the arena can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 12
)

const (
	hudRows   = 3 // names, health, shield
	arenaTop  = hudRows
	barLength = 10
)

// HUD carries presentation-only labels the simulation does not know about.
type HUD struct {
	P1Name string
	P2Name string
}

// Names returns the display names, filling in defaults.
func (h HUD) Names(mode Mode) (string, string) {
	p1, p2 := h.P1Name, h.P2Name
	if p1 == "" {
		p1 = "Player 1"
	}
	if mode == ModeSolo {
		p2 = "Computer"
	} else if p2 == "" {
		p2 = "Player 2"
	}
	return p1, p2
}

// Render draws a snapshot onto dst: status bars on top, the arena box,
// a controls line at the bottom and an overlay for the current phase.
func Render(dst *core.Screen, snap Snapshot, hud HUD) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	p1Name, p2Name := hud.Names(snap.Mode)
	drawHUD(dst, snap, p1Name, p2Name)

	arena := core.NewRect(0, arenaTop, w, h-arenaTop-1)
	dst.DrawBoxColored(arena, core.ColorWall)
	inner := core.NewRect(arena.X+1, arena.Y+1, arena.W-2, arena.H-2)
	v := viewport{inner: inner, arenaW: snap.ArenaW, arenaH: snap.ArenaH}

	for _, p := range snap.Projectiles {
		cx, cy := v.point(p.X+p.W/2, p.Y+p.H/2)
		dst.SetColored(cx, cy, ProjectileChar, core.ProjectileColor(p.Owner))
	}
	for _, a := range snap.Actors {
		drawActor(dst, v, a)
	}

	drawControls(dst, snap.Mode)

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "SHIELD DUEL", "Press Enter to start")
	case PhaseDropping:
		switch snap.IntroStage {
		case IntroCountdown:
			drawCenteredMessage(dst, fmt.Sprintf("%d", snap.Countdown), "Get ready")
		case IntroHolding:
			drawCenteredMessage(dst, p1Name+" vs "+p2Name, "Fight!")
		}
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseOver:
		drawCenteredMessage(dst, snap.Banner,
			fmt.Sprintf("%d - %d  |  R rematch  Esc menu", snap.Score1, snap.Score2))
	}
}

// viewport maps arena units to screen cells inside the arena box.
type viewport struct {
	inner          core.Rect
	arenaW, arenaH float64
}

func (v viewport) col(x float64) int {
	c := v.inner.X + int(x*float64(v.inner.W)/v.arenaW)
	return core.Clamp(c, v.inner.X, v.inner.Right()-1)
}

func (v viewport) row(y float64) int {
	r := v.inner.Y + int(y*float64(v.inner.H)/v.arenaH)
	return core.Clamp(r, v.inner.Y, v.inner.Bottom()-1)
}

func (v viewport) point(x, y float64) (int, int) {
	return v.col(x), v.row(y)
}

// rect maps a box to cells, at least one cell in each dimension.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func drawActor(dst *core.Screen, v viewport, a ActorState) {
	r := v.rect(a.Box())
	dst.DrawRectColored(r, ActorChar, core.ActorColor(a.ID))

	cx, cy := r.X+r.W/2, r.Y+r.H/2
	dst.SetColored(cx, cy, facingArrow(a.Facing), core.ColorBrightWhite)

	midY := r.Y + r.H/2
	switch {
	case a.ShieldBroken:
		dst.SetColored(r.X-1, midY, BrokenChar, core.ColorShieldBroken)
		dst.SetColored(r.Right(), midY, BrokenChar, core.ColorShieldBroken)
	case a.ShieldActive && a.Shield > 0:
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColored(r.X-1, y, ShieldLeft, core.ColorShieldUp)
			dst.SetColored(r.Right(), y, ShieldRight, core.ColorShieldUp)
		}
	}
}

func facingArrow(d Direction) rune {
	switch d {
	case DirUp:
		return '▲'
	case DirDown:
		return '▼'
	case DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

func drawHUD(dst *core.Screen, snap Snapshot, p1Name, p2Name string) {
	w := dst.Width()
	p1, p2 := snap.Actors[0], snap.Actors[1]

	// Names with fire-gate indicator
	dst.DrawTextColored(1, 0, p1Name, core.ColorPlayer1)
	dst.SetColored(len([]rune(p1Name))+2, 0, gateRune(p1.CanFire), core.ColorBrightWhite)
	right := w - 1 - len([]rune(p2Name))
	dst.DrawTextColored(right, 0, p2Name, core.ColorPlayer2)
	dst.SetColored(right-2, 0, gateRune(p2.CanFire), core.ColorBrightWhite)

	dst.DrawTextCentered(0, fmt.Sprintf("%d : %d", snap.Score1, snap.Score2))

	// Health and shield bars
	shieldColor := func(a ActorState) core.Color {
		switch {
		case a.ShieldBroken:
			return core.ColorShieldBroken
		case a.Shield == 0:
			return core.ColorGray
		default:
			return core.ColorShieldUp
		}
	}

	hp1 := bar("HP", p1.Health, p1.MaxHealth)
	sh1 := bar("SH", p1.Shield, p1.MaxShield)
	dst.DrawTextColored(1, 1, hp1, core.ColorHealth)
	dst.DrawTextColored(1, 2, sh1, shieldColor(p1))

	hp2 := bar("HP", p2.Health, p2.MaxHealth)
	sh2 := bar("SH", p2.Shield, p2.MaxShield)
	dst.DrawTextColored(w-1-len([]rune(hp2)), 1, hp2, core.ColorHealth)
	dst.DrawTextColored(w-1-len([]rune(sh2)), 2, sh2, shieldColor(p2))
}

func gateRune(open bool) rune {
	if open {
		return FireReady
	}
	return FireCooling
}

// bar formats "HP ██████░░░░ 60".
func bar(label string, value, maxValue int) string {
	filled := 0
	if maxValue > 0 {
		filled = core.Clamp(value*barLength/maxValue, 0, barLength)
	}
	return fmt.Sprintf("%s %s%s %3d", label,
		strings.Repeat(string(BarFull), filled),
		strings.Repeat(string(BarEmpty), barLength-filled),
		value)
}

func drawControls(dst *core.Screen, mode Mode) {
	left := "P1 WASD move  Space fire  Q shield"
	right := "P2 arrows  Enter fire  M shield"
	if mode == ModeSolo {
		right = "P2 AI controlled"
	}

	y := dst.Height() - 1
	w := dst.Width()
	leftLen, rightLen := len([]rune(left)), len([]rune(right))
	if leftLen+rightLen+3 > w {
		dst.DrawText(1, y, "P pause  Esc menu")
		return
	}
	dst.DrawTextColored(1, y, left, core.ColorGray)
	dst.DrawTextColored(w-1-rightLen, y, right, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
