package blocks

// GridSize is the fixed board dimension; the board never changes size.
const GridSize = 8

// InventorySize is the number of block slots the player holds.
const InventorySize = 3

// CellColor identifies the occupant of a board cell. Zero means empty.
type CellColor uint8

const (
	CellEmpty CellColor = iota
	CellRed
	CellGreen
	CellYellow
	CellBlue
	CellMagenta
	CellCyan
)

// PaletteSize is the number of block colors.
const PaletteSize = 6

// Grid is the 8x8 occupancy board. It is a value type: placement and
// line clears return a new grid, never mutating the receiver, so grids
// never alias across turns.
type Grid [GridSize][GridSize]CellColor

// Block is a generated playing piece. It lives in an inventory slot
// until consumed by placement.
type Block struct {
	ID    int64
	Shape Shape
	Color CellColor
}

// LineClearResult lists the fully occupied rows and columns found in a
// scan. A row and an intersecting column can both be counted; TotalLines
// is their combined count and is not capped.
type LineClearResult struct {
	Rows       []int
	Cols       []int
	TotalLines int
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// Cell returns the occupant of (row, col), or CellEmpty when out of bounds.
func (g Grid) Cell(row, col int) CellColor {
	if !InBounds(row, col) {
		return CellEmpty
	}
	return g[row][col]
}

// CanPlace reports whether every occupied cell of the block's shape,
// anchored at the given position, lands on an empty in-bounds cell.
// Partial overlap is never allowed.
func (g Grid) CanPlace(b Block, at Pos) bool {
	for _, cell := range b.Shape.cells {
		row := at.Row + cell.Row
		col := at.Col + cell.Col
		if !InBounds(row, col) {
			return false
		}
		if g[row][col] != CellEmpty {
			return false
		}
	}
	return true
}

// Place returns a new grid with the block's cells set to its color.
// Callers must have confirmed CanPlace first.
func (g Grid) Place(b Block, at Pos) Grid {
	out := g
	for _, cell := range b.Shape.cells {
		out[at.Row+cell.Row][at.Col+cell.Col] = b.Color
	}
	return out
}

// LineClears scans all 8 rows and all 8 columns independently for full
// occupancy and returns the indices of both.
func (g Grid) LineClears() LineClearResult {
	var res LineClearResult

	for row := 0; row < GridSize; row++ {
		full := true
		for col := 0; col < GridSize; col++ {
			if g[row][col] == CellEmpty {
				full = false
				break
			}
		}
		if full {
			res.Rows = append(res.Rows, row)
		}
	}

	for col := 0; col < GridSize; col++ {
		full := true
		for row := 0; row < GridSize; row++ {
			if g[row][col] == CellEmpty {
				full = false
				break
			}
		}
		if full {
			res.Cols = append(res.Cols, col)
		}
	}

	res.TotalLines = len(res.Rows) + len(res.Cols)
	return res
}

// CellsToClear returns the deduplicated union of all cells belonging to
// the listed rows and columns, in row-major order.
func CellsToClear(res LineClearResult) []Pos {
	inRow := make(map[int]bool, len(res.Rows))
	for _, r := range res.Rows {
		inRow[r] = true
	}
	inCol := make(map[int]bool, len(res.Cols))
	for _, c := range res.Cols {
		inCol[c] = true
	}

	var cells []Pos
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if inRow[row] || inCol[col] {
				cells = append(cells, Pos{Row: row, Col: col})
			}
		}
	}
	return cells
}

// ClearLines returns a new grid with exactly the listed rows and columns
// reset to empty; every other cell is preserved.
func (g Grid) ClearLines(res LineClearResult) Grid {
	out := g
	for _, cell := range CellsToClear(res) {
		out[cell.Row][cell.Col] = CellEmpty
	}
	return out
}

// PredictClears simulates placing the block and returns the line clears
// the placement would produce. Non-authoritative preview only; the
// receiver is never modified.
func (g Grid) PredictClears(b Block, at Pos) LineClearResult {
	return g.Place(b, at).LineClears()
}

// CanPlaceAny reports whether any non-empty inventory slot fits anywhere
// on the board. All 64 origins are tested per block; returns true on the
// first fit found.
func (g Grid) CanPlaceAny(inventory [InventorySize]*Block) bool {
	for _, b := range inventory {
		if b == nil {
			continue
		}
		for row := 0; row < GridSize; row++ {
			for col := 0; col < GridSize; col++ {
				if g.CanPlace(*b, Pos{Row: row, Col: col}) {
					return true
				}
			}
		}
	}
	return false
}

// IsGameOver reports whether the game is stuck: every slot holds a block
// and none of them fits anywhere. An empty slot means a refill is
// imminent and may open moves, so the game is not over yet.
func (g Grid) IsGameOver(inventory [InventorySize]*Block) bool {
	for _, b := range inventory {
		if b == nil {
			return false
		}
	}
	return !g.CanPlaceAny(inventory)
}
