package blocks

import (
	"fmt"

	"github.com/nkarpov/tui-blocks/internal/core"
)

// Screen layout: board on the left, inventory panel to its right.
const (
	boardOffsetX = 2
	boardOffsetY = 3
	cellWidth    = 2 // board cells are two runes wide to look square
	panelGap     = 4

	minScreenW = 48
	minScreenH = 16
)

// cellColors maps board occupants to screen colors.
var cellColors = map[CellColor]core.Color{
	CellRed:     core.ColorRed,
	CellGreen:   core.ColorGreen,
	CellYellow:  core.ColorYellow,
	CellBlue:    core.ColorBlue,
	CellMagenta: core.ColorMagenta,
	CellCyan:    core.ColorCyan,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.machine == nil {
		return
	}
	snap := g.machine.Snapshot()

	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst, snap)
	g.renderInventory(dst, snap)
	g.renderHelp(dst, snap)

	switch {
	case snap.IsGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d · press R to restart", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Block Puzzle   Score: %d  Best: %d", snap.Score, snap.HighScore)
	if snap.Combo > 1 {
		hud += fmt.Sprintf("  Combo: x%.1f", ComboMultiplier(snap.Combo))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the 8x8 grid, the clear flash, and the drag ghost.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	boxW := GridSize*cellWidth + 2
	boxH := GridSize + 2
	dst.DrawBox(core.NewRect(boardOffsetX, boardOffsetY, boxW, boxH))

	flashing := g.flashCells(snap)

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			x := boardOffsetX + 1 + col*cellWidth
			y := boardOffsetY + 1 + row

			if flashing[Pos{Row: row, Col: col}] {
				g.drawCell(dst, x, y, '░', core.ColorBrightWhite)
				continue
			}

			if c := snap.Grid.Cell(row, col); c != CellEmpty {
				g.drawCell(dst, x, y, '█', cellColors[c])
			} else {
				dst.SetColored(x, y, '·', core.ColorGray)
				dst.Set(x+1, y, ' ')
			}
		}
	}

	g.renderGhost(dst, snap)
}

// flashCells returns the cells the clear animation is currently hiding.
// Flashes on and off every few ticks while the machine waits in the
// clearing state.
func (g *Game) flashCells(snap Snapshot) map[Pos]bool {
	cells := make(map[Pos]bool)
	if !snap.IsClearing || snap.Pending == nil {
		return cells
	}
	if (g.clearTicks/5)%2 == 1 {
		return cells // Off phase: show the already-cleared grid
	}
	for _, p := range CellsToClear(*snap.Pending) {
		cells[p] = true
	}
	return cells
}

// renderGhost draws the held block at the cursor with validity feedback,
// plus the lines the drop would complete.
func (g *Game) renderGhost(dst *core.Screen, snap Snapshot) {
	if !snap.IsDragging || snap.Drag == nil || snap.Inventory[snap.Drag.Slot] == nil {
		return
	}
	block := *snap.Inventory[snap.Drag.Slot]

	// Highlight rows/columns the drop would clear.
	if snap.Drag.Valid {
		predicted := g.machine.PredictSlotClears(snap.Drag.Slot, g.cursor)
		for _, p := range CellsToClear(predicted) {
			if snap.Grid.Cell(p.Row, p.Col) == CellEmpty {
				continue
			}
			x := boardOffsetX + 1 + p.Col*cellWidth
			y := boardOffsetY + 1 + p.Row
			g.drawCell(dst, x, y, '▓', core.ColorBrightYellow)
		}
	}

	ghostColor := core.ColorBrightRed
	if snap.Drag.Valid {
		ghostColor = cellColors[block.Color]
	}
	for _, cell := range block.Shape.Cells() {
		row := g.cursor.Row + cell.Row
		col := g.cursor.Col + cell.Col
		if !InBounds(row, col) {
			continue
		}
		x := boardOffsetX + 1 + col*cellWidth
		y := boardOffsetY + 1 + row
		g.drawCell(dst, x, y, '▒', ghostColor)
	}
}

// renderInventory draws the three block slots beside the board.
func (g *Game) renderInventory(dst *core.Screen, snap Snapshot) {
	panelX := boardOffsetX + GridSize*cellWidth + 2 + panelGap
	dst.DrawText(panelX, boardOffsetY, "Blocks:")

	y := boardOffsetY + 1
	for i, b := range snap.Inventory {
		marker := ' '
		if snap.IsDragging && snap.Drag != nil && snap.Drag.Slot == i {
			marker = '>'
		}
		dst.Set(panelX, y, marker)
		dst.DrawText(panelX+1, y, fmt.Sprintf("[%d]", i+1))

		if b == nil {
			dst.DrawTextColored(panelX+5, y, "--", core.ColorGray)
			y += 2
			continue
		}

		rows, _ := b.Shape.Dimensions()
		for _, cell := range b.Shape.Cells() {
			x := panelX + 5 + cell.Col*cellWidth
			g.drawCell(dst, x, y+cell.Row, '█', cellColors[b.Color])
		}
		y += rows + 1
	}
}

// renderHelp draws the key hints under the board.
func (g *Game) renderHelp(dst *core.Screen, snap Snapshot) {
	y := boardOffsetY + GridSize + 3
	if snap.IsDragging {
		dst.DrawTextColored(boardOffsetX, y, "arrows move · enter drop · esc cancel", core.ColorGray)
	} else {
		dst.DrawTextColored(boardOffsetX, y, "1-3/tab pick a block · p pause · q quit", core.ColorGray)
	}
}

// drawCell paints one board cell (two runes wide).
func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	drawCenteredText(dst, line1, boxY+1)
	drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
