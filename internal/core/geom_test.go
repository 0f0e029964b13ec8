package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
		empty    bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 5, 5),
		},
		{
			name:  "non-overlapping horizontal",
			a:     NewRect(0, 0, 10, 10),
			b:     NewRect(15, 0, 10, 10),
			empty: true,
		},
		{
			name:  "adjacent vertical (no overlap)",
			a:     NewRect(0, 0, 10, 10),
			b:     NewRect(0, 10, 10, 10),
			empty: true,
		},
		{
			name:     "contained",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(2, 3, 4, 2),
			expected: NewRect(2, 3, 4, 2),
		},
		{
			name:     "negative origin clipped",
			a:        NewRect(-5, -5, 10, 10),
			b:        NewRect(0, 0, 80, 24),
			expected: NewRect(0, 0, 5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if tt.empty {
				if !got.Empty() {
					t.Errorf("Intersect() = %+v, expected empty", got)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // top-left corner
		{14, 14, true},  // bottom-right inside
		{15, 15, false}, // just outside
		{9, 10, false},  // left of rect
		{12, 12, true},  // center
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectFromFloat(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		expected   Rect
	}{
		{"whole cells", 1, 2, 3, 4, NewRect(1, 2, 3, 4)},
		{"fractional origin", 1.5, 0.5, 2, 1, NewRect(1, 0, 2, 1)},
		{"sub-cell width", 0.2, 0, 0.5, 1, NewRect(0, 0, 0, 1)},
		{"negative origin", -1.5, 0, 3, 1, NewRect(-2, 0, 3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectFromFloat(tt.x, tt.y, tt.w, tt.h); got != tt.expected {
				t.Errorf("RectFromFloat() = %+v, expected %+v", got, tt.expected)
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

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %v, expected 0", got)
	}
}
