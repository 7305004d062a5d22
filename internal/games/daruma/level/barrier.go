// Package level implements the scrolling barrier field: barrier geometry,
// procedural generation of the barrier window, and the plane's hit test.
//
// Coordinates are lane-normalized. x runs from 0 (left edge) to 1 (right
// edge); y runs from 0 (top edge) to 1 (bottom edge) and barriers travel
// upward, so their YPos decreases as the level scrolls.
package level

// BarrierType selects which side(s) of a barrier row are solid.
type BarrierType int

const (
	Left  BarrierType = iota // Solid from the left edge to GapOffset
	Right                    // Solid from GapOffset to the right edge
	Slit                     // Solid except for a hole starting at GapOffset
)

// String returns the barrier type name.
func (t BarrierType) String() string {
	switch t {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Slit:
		return "Slit"
	default:
		return "Unknown"
	}
}

// Barrier is one horizontal row of wall. Only YPos changes after creation.
//
// Wall edges are solid: Left blocks x <= GapOffset, Right blocks
// x >= GapOffset, and a Slit is open only strictly inside
// (GapOffset, GapOffset+HoleWidth).
type Barrier struct {
	Type      BarrierType
	GapOffset float64
	HoleWidth float64
	Height    float64
	YPos      float64
}

// Solid reports whether horizontal position x is inside the wall.
func (b Barrier) Solid(x float64) bool {
	switch b.Type {
	case Left:
		return x <= b.GapOffset
	case Right:
		return x >= b.GapOffset
	case Slit:
		return !(b.GapOffset < x && x < b.GapOffset+b.HoleWidth)
	default:
		return false
	}
}

// Spans reports whether vertical position y lies strictly inside the row.
func (b Barrier) Spans(y float64) bool {
	return b.YPos < y && y < b.YPos+b.Height
}

// Hit reports whether a point at (x, y) collides with this barrier.
func (b Barrier) Hit(x, y float64) bool {
	return b.Solid(x) && b.Spans(y)
}

// IsVisible reports whether any part of the barrier is still below the top edge.
func (b Barrier) IsVisible() bool {
	return b.YPos > -b.Height
}

// Open returns the open horizontal interval (lo, hi) of the row.
func (b Barrier) Open() (lo, hi float64) {
	switch b.Type {
	case Left:
		return b.GapOffset, 1
	case Right:
		return 0, b.GapOffset
	default:
		return b.GapOffset, b.GapOffset + b.HoleWidth
	}
}

// Bottom returns the y coordinate of the barrier's lower edge.
func (b Barrier) Bottom() float64 {
	return b.YPos + b.Height
}
