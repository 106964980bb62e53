package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "player standing next to enemy",
			a:        NewRect(100, 440, 50, 60),
			b:        NewRect(150, 465, 40, 35),
			expected: false,
		},
		{
			name:     "player landing on enemy",
			a:        NewRect(100, 420, 50, 60),
			b:        NewRect(120, 465, 40, 35),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectF(t *testing.T) {
	r := RectF(100.9, 439.2, 50, 60)
	if r != NewRect(100, 439, 50, 60) {
		t.Errorf("RectF truncation = %+v", r)
	}
	neg := RectF(-0.5, 0, 40, 35)
	if neg.X != 0 {
		t.Errorf("RectF should truncate toward zero, got X=%d", neg.X)
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, m, expected float64
	}{
		{0, 50, 0},
		{55, 50, 5},
		{100, 50, 0},
		{-5, 50, 45},
	}
	for _, tc := range tests {
		if got := Mod(tc.x, tc.m); got != tc.expected {
			t.Errorf("Mod(%v, %v) = %v, expected %v", tc.x, tc.m, got, tc.expected)
		}
	}
}
