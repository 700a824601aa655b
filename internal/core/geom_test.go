package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},   // Top-left corner
		{3, 3, true},   // Bottom-right inside
		{4, 4, false},  // Just outside
		{0, 0, false},  // Before the rect
		{2, 2, true},   // Center
		{1, 4, false},  // Below
		{-1, 2, false}, // Negative
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should return value when in range")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should return min when below range")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should return max when above range")
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 {
		t.Error("Abs failed")
	}
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}
