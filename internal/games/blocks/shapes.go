// Package blocks implements the 8x8 block-placement puzzle: drop
// polyomino-shaped blocks onto the board, clear full rows and columns,
// chain clears for combo multipliers. The package is UI-agnostic and
// deterministic under a fixed seed.
package blocks

// Pos is an integer board position or shape-cell offset (row, col).
type Pos struct {
	Row, Col int
}

// Tier groups shapes by complexity. Generation mixes tiers differently
// as the score grows.
type Tier int

const (
	TierSimple Tier = iota
	TierMedium
	TierComplex
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierSimple:
		return "simple"
	case TierMedium:
		return "medium"
	case TierComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Shape is a rectangular boolean occupancy matrix with at least one
// occupied cell. Shapes are immutable catalog entries; the largest is
// 5x1, 1x5 or 3x3.
type Shape struct {
	Name   string
	Tier   Tier
	Weight float64

	rows  int
	cols  int
	cells []Pos // occupied offsets, row-major order
}

// newShape builds a shape from string art: '#' marks an occupied cell,
// '.' an empty one. Rows must be equal length. Panics on malformed art;
// shapes are compile-time catalog data, not runtime input.
func newShape(name string, tier Tier, weight float64, art ...string) Shape {
	if len(art) == 0 {
		panic("blocks: shape " + name + " has no rows")
	}
	s := Shape{
		Name:   name,
		Tier:   tier,
		Weight: weight,
		rows:   len(art),
		cols:   len(art[0]),
	}
	for r, row := range art {
		if len(row) != s.cols {
			panic("blocks: shape " + name + " has ragged rows")
		}
		for c, ch := range row {
			if ch == '#' {
				s.cells = append(s.cells, Pos{Row: r, Col: c})
			}
		}
	}
	if len(s.cells) == 0 {
		panic("blocks: shape " + name + " has no occupied cells")
	}
	return s
}

// Dimensions returns the shape's bounding box as (rows, cols).
func (s Shape) Dimensions() (rows, cols int) {
	return s.rows, s.cols
}

// Cells returns the occupied cell offsets in row-major order.
// The returned slice is a copy; callers may modify it freely.
func (s Shape) Cells() []Pos {
	out := make([]Pos, len(s.cells))
	copy(out, s.cells)
	return out
}

// CellCount returns the number of occupied cells.
func (s Shape) CellCount() int {
	return len(s.cells)
}

// The fixed shape library. Weights default to 1.0; the lone 1x1 and the
// 3x3 block are deliberately rarer.
var shapeLibrary = []Shape{
	// Simple tier
	newShape("single", TierSimple, 0.3,
		"#"),
	newShape("duo_h", TierSimple, 1.0,
		"##"),
	newShape("duo_v", TierSimple, 1.0,
		"#",
		"#"),
	newShape("trio_h", TierSimple, 1.0,
		"###"),
	newShape("trio_v", TierSimple, 1.0,
		"#",
		"#",
		"#"),
	newShape("square_2", TierSimple, 1.0,
		"##",
		"##"),

	// Medium tier
	newShape("quad_h", TierMedium, 1.0,
		"####"),
	newShape("quad_v", TierMedium, 1.0,
		"#",
		"#",
		"#",
		"#"),
	newShape("elbow_nw", TierMedium, 1.0,
		"##",
		"#."),
	newShape("elbow_ne", TierMedium, 1.0,
		"##",
		".#"),
	newShape("elbow_sw", TierMedium, 1.0,
		"#.",
		"##"),
	newShape("elbow_se", TierMedium, 1.0,
		".#",
		"##"),
	newShape("tee_up", TierMedium, 1.0,
		".#.",
		"###"),
	newShape("tee_down", TierMedium, 1.0,
		"###",
		".#."),

	// Complex tier
	newShape("quint_h", TierComplex, 1.0,
		"#####"),
	newShape("quint_v", TierComplex, 1.0,
		"#",
		"#",
		"#",
		"#",
		"#"),
	newShape("hook_nw", TierComplex, 1.0,
		"###",
		"#..",
		"#.."),
	newShape("hook_ne", TierComplex, 1.0,
		"###",
		"..#",
		"..#"),
	newShape("hook_sw", TierComplex, 1.0,
		"#..",
		"#..",
		"###"),
	newShape("hook_se", TierComplex, 1.0,
		"..#",
		"..#",
		"###"),
	newShape("zig_s", TierComplex, 1.0,
		".##",
		"##."),
	newShape("zig_z", TierComplex, 1.0,
		"##.",
		".##"),
	newShape("square_3", TierComplex, 0.1,
		"###",
		"###",
		"###"),
}

// Shapes returns the full shape library.
func Shapes() []Shape {
	out := make([]Shape, len(shapeLibrary))
	copy(out, shapeLibrary)
	return out
}

// ShapeByName looks up a shape in the library. Returns the shape and
// whether it exists; useful for tests and tools.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range shapeLibrary {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}
