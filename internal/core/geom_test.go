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
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{MinX: -500, MaxX: 500, MinY: -340, MaxY: 340}

	tests := []struct {
		name     string
		in, want Vec2
	}{
		{"inside", Vec2{10, -20}, Vec2{10, -20}},
		{"left of field", Vec2{-900, 0}, Vec2{-500, 0}},
		{"above field", Vec2{0, 341}, Vec2{0, 340}},
		{"corner", Vec2{1e6, -1e6}, Vec2{500, -340}},
		{"on edge", Vec2{500, 340}, Vec2{500, 340}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Clamp(tc.in)
			if got != tc.want {
				t.Errorf("Clamp(%v) = %v, expected %v", tc.in, got, tc.want)
			}
			if again := b.Clamp(got); again != got {
				t.Errorf("Clamp is not idempotent: %v then %v", got, again)
			}
			if !b.Contains(got) {
				t.Errorf("clamped point %v should be inside bounds", got)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := Box{Center: Vec2{0, 0}, W: 10, H: 10}

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"same spot", Box{Center: Vec2{0, 0}, W: 2, H: 2}, true},
		{"partial", Box{Center: Vec2{8, 0}, W: 10, H: 10}, true},
		{"touching edges", Box{Center: Vec2{10, 0}, W: 10, H: 10}, false},
		{"far away", Box{Center: Vec2{100, 100}, W: 10, H: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
