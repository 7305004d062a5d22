package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestLaneToCell(t *testing.T) {
	tests := []struct {
		v        float64
		cells    int
		expected int
	}{
		{0, 80, 0},
		{0.5, 80, 40},
		{0.1, 80, 8},
		{0.999, 80, 79},
		{1, 80, 80},
		{-0.05, 80, -4},
	}

	for _, tc := range tests {
		if got := LaneToCell(tc.v, tc.cells); got != tc.expected {
			t.Errorf("LaneToCell(%g, %d) = %d, expected %d", tc.v, tc.cells, got, tc.expected)
		}
	}
}

func TestLaneRect(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		expected       Rect
	}{
		{"full lane", 0, 0, 1, 1, NewRect(0, 0, 40, 20)},
		{"left wall", 0, 0, 0.1, 1, NewRect(0, 0, 4, 20)},
		{"partial row rounds outward", 0.5, 0.22, 1, 0.31, NewRect(20, 4, 20, 3)},
		{"clipped above", 0, -0.5, 1, 0.1, NewRect(0, 0, 40, 2)},
		{"entirely below", 0, 1.5, 1, 1.6, NewRect(0, 20, 40, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LaneRect(tc.x0, tc.y0, tc.x1, tc.y1, 40, 20)
			if got != tc.expected {
				t.Errorf("LaneRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
