package blocks

import "testing"

func TestBasePoints(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 600},
		{4, 1000},
		{5, 1300},
		{6, 1600},
		{10, 2800},
	}
	for _, tt := range tests {
		if got := BasePoints(tt.lines); got != tt.want {
			t.Errorf("BasePoints(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestComboMultiplier(t *testing.T) {
	tests := []struct {
		combo int
		want  float64
	}{
		{1, 1.0},
		{2, 1.5},
		{3, 2.0},
		{5, 3.0},
		{15, 8.0},
		{16, 8.0},
		{100, 8.0},
	}
	for _, tt := range tests {
		if got := ComboMultiplier(tt.combo); got != tt.want {
			t.Errorf("ComboMultiplier(%d) = %v, want %v", tt.combo, got, tt.want)
		}
	}
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name  string
		lines int
		combo int
		want  int
	}{
		{"single line no combo", 1, 0, 100},
		{"single line first combo", 1, 1, 100},
		{"two lines combo 2", 2, 2, 450},
		{"three lines combo 3", 3, 3, 1200},
		{"one line capped combo", 1, 20, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clear := LineClearResult{TotalLines: tt.lines}
			res := CalculateScore(clear, tt.combo)
			if res.Points != tt.want {
				t.Errorf("Points = %d, want %d", res.Points, tt.want)
			}
		})
	}
}

func TestCalculateScoreBreakdown(t *testing.T) {
	res := CalculateScore(LineClearResult{TotalLines: 2}, 2)
	if res.BasePoints != 300 {
		t.Errorf("BasePoints = %d, want 300", res.BasePoints)
	}
	if res.Multiplier != 1.5 {
		t.Errorf("Multiplier = %v, want 1.5", res.Multiplier)
	}
}

func TestPlacementPoints(t *testing.T) {
	for _, s := range Shapes() {
		if got := PlacementPoints(s.CellCount()); got != s.CellCount() {
			t.Errorf("%s: PlacementPoints = %d, want %d", s.Name, got, s.CellCount())
		}
	}
}
