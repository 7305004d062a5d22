// Package core provides fundamental types and utilities shared by the game
// logic and its frontends. It contains no UI dependencies to keep game logic
// pure and testable.
package core

import "math"

// Rect is an axis-aligned area of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// LaneToCell converts a lane-normalized coordinate to a cell index on an
// axis of the given size. Values are floored so that 1.0 maps one past the
// last cell.
func LaneToCell(v float64, cells int) int {
	return int(math.Floor(v * float64(cells)))
}

// LaneRect converts a lane-normalized rectangle to cells, clipping it to a
// screen of w×h. The returned rect may be empty.
func LaneRect(x0, y0, x1, y1 float64, w, h int) Rect {
	cx0 := Clamp(LaneToCell(x0, w), 0, w)
	cy0 := Clamp(LaneToCell(y0, h), 0, h)
	cx1 := Clamp(int(math.Ceil(x1*float64(w))), 0, w)
	cy1 := Clamp(int(math.Ceil(y1*float64(h))), 0, h)
	return NewRect(cx0, cy0, max(0, cx1-cx0), max(0, cy1-cy0))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
