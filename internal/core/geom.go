// Package core provides fundamental types and utilities for the duel.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in playfield units.
// Actors and projectiles move in real-valued coordinates, so collision
// is tested on Box rather than on the cell-based Rect.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Overlaps reports whether b and other overlap once other is inflated by
// margin on every side. Boxes closer than margin count as touching.
// A zero margin is plain strict AABB overlap (shared edges do not overlap).
func (b Box) Overlaps(other Box, margin float64) bool {
	return b.X < other.Right()+margin &&
		b.Right() > other.X-margin &&
		b.Y < other.Bottom()+margin &&
		b.Bottom() > other.Y-margin
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
