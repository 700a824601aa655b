package blocks

import "math"

// Scoring constants. Base points grow with simultaneous lines; combos
// multiply them up to a hard cap.
const (
	extraLinePoints = 300 // per line beyond the table
	comboStep       = 0.5 // multiplier gained per consecutive clear
	comboCap        = 8.0 // multiplier ceiling, reached at combo 15
)

// basePointsTable maps simultaneous line counts 1..4 to base points.
var basePointsTable = map[int]int{
	1: 100,
	2: 300,
	3: 600,
	4: 1000,
}

// ScoreResult breaks a clear's score into its parts.
type ScoreResult struct {
	Points     int
	BasePoints int
	Multiplier float64
}

// BasePoints returns the base points for clearing lineCount lines at
// once. Counts above 4 extrapolate linearly past the table.
func BasePoints(lineCount int) int {
	if lineCount <= 0 {
		return 0
	}
	if pts, ok := basePointsTable[lineCount]; ok {
		return pts
	}
	return basePointsTable[4] + (lineCount-4)*extraLinePoints
}

// ComboMultiplier returns the score multiplier for the given consecutive
// clear count: 1.0 at combo 1, +0.5 per combo, capped at 8.0 (reached
// exactly at combo 15).
func ComboMultiplier(comboCount int) float64 {
	m := 1.0 + float64(comboCount-1)*comboStep
	if m > comboCap {
		return comboCap
	}
	return m
}

// CalculateScore computes the points awarded for a clear at the given
// combo count. A combo of zero means no active combo: multiplier 1.
func CalculateScore(clear LineClearResult, comboCount int) ScoreResult {
	base := BasePoints(clear.TotalLines)
	multiplier := 1.0
	if comboCount > 0 {
		multiplier = ComboMultiplier(comboCount)
	}
	return ScoreResult{
		Points:     int(math.Floor(float64(base) * multiplier)),
		BasePoints: base,
		Multiplier: multiplier,
	}
}

// PlacementPoints returns the points earned just for placing a block:
// one per occupied cell, independent of any clear.
func PlacementPoints(cellCount int) int {
	return cellCount
}
