package blocks

import (
	"testing"
)

func newTestMachine(seed int64) *Machine {
	return NewMachine(newTestCatalog(seed))
}

// setInventory replaces the machine's inventory with the named shapes.
// nil entries stay empty.
func setInventory(t *testing.T, m *Machine, names ...string) {
	t.Helper()
	var inv [InventorySize]*Block
	for i, name := range names {
		if name == "" {
			continue
		}
		b := Block{ID: int64(100 + i), Shape: mustShape(t, name), Color: CellRed}
		inv[i] = &b
	}
	m.ctx.Inventory = inv
}

func TestNewMachineStartsIdleWithFullInventory(t *testing.T) {
	m := newTestMachine(1)
	if m.State() != StateIdle {
		t.Fatalf("state = %v, want idle", m.State())
	}
	for i, b := range m.Snapshot().Inventory {
		if b == nil {
			t.Errorf("slot %d empty at start", i)
		}
	}
}

func TestDragLifecycle(t *testing.T) {
	m := newTestMachine(1)

	m.Dispatch(DragStart(0))
	if m.State() != StateDragging {
		t.Fatalf("state after DragStart = %v, want dragging", m.State())
	}

	m.Dispatch(DragUpdate(Pos{Row: 4, Col: 2}, true))
	snap := m.Snapshot()
	if snap.Drag == nil || !snap.Drag.HasTarget || snap.Drag.Target != (Pos{Row: 4, Col: 2}) {
		t.Fatalf("drag target not recorded: %+v", snap.Drag)
	}

	m.Dispatch(DragCancel())
	snap = m.Snapshot()
	if m.State() != StateIdle || snap.Drag != nil {
		t.Fatalf("cancel did not return to idle: state=%v drag=%+v", m.State(), snap.Drag)
	}
	if snap.Inventory[0] == nil {
		t.Error("cancel consumed the block")
	}
}

func TestDragStartRejectsEmptyOrBadSlot(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "single", "", "single")

	m.Dispatch(DragStart(1))
	if m.State() != StateIdle {
		t.Errorf("drag of empty slot accepted")
	}

	m.Dispatch(DragStart(-1))
	if m.State() != StateIdle {
		t.Errorf("drag of negative slot accepted")
	}
	m.Dispatch(DragStart(InventorySize))
	if m.State() != StateIdle {
		t.Errorf("drag of out-of-range slot accepted")
	}
}

func TestRejectedDropLeavesEverythingUntouched(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "trio_h", "single", "single")
	before := m.Snapshot()

	m.Dispatch(DragStart(0))
	m.Dispatch(DropBlock(Pos{Row: 0, Col: 6})) // trio overflows right edge

	after := m.Snapshot()
	if m.State() != StateIdle {
		t.Fatalf("state = %v, want idle", m.State())
	}
	if after.Score != before.Score {
		t.Errorf("score changed on rejected drop: %d -> %d", before.Score, after.Score)
	}
	if after.Inventory[0] == nil {
		t.Error("rejected drop consumed the block")
	}
	if after.Grid != before.Grid {
		t.Error("rejected drop modified the grid")
	}
}

func TestPlacementWithoutClear(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "square_2", "single", "single")
	m.ctx.Combo = 3 // pretend a streak is running

	m.Dispatch(DragStart(0))
	m.Dispatch(DropBlock(Pos{Row: 2, Col: 2}))

	snap := m.Snapshot()
	if m.State() != StateIdle {
		t.Fatalf("state = %v, want idle", m.State())
	}
	if snap.Score != 4 {
		t.Errorf("score = %d, want 4 placement points", snap.Score)
	}
	if snap.Combo != 0 {
		t.Errorf("combo = %d, want reset to 0", snap.Combo)
	}
	if snap.Inventory[0] != nil {
		t.Error("placed block still in its slot")
	}
	if snap.Grid.Cell(2, 2) == CellEmpty || snap.Grid.Cell(3, 3) == CellEmpty {
		t.Error("grid missing placed cells")
	}
}

func TestPlacementCompletingRowScoresAndClears(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "single", "single", "single")
	m.ctx.Grid = fillRow(Grid{}, 3, CellGreen, 7)

	m.Dispatch(DragStart(0))
	m.Dispatch(DropBlock(Pos{Row: 3, Col: 7}))

	snap := m.Snapshot()
	if m.State() != StateClearing {
		t.Fatalf("state = %v, want clearing", m.State())
	}
	// 1 placement point + 100 base at combo 1.
	if snap.Score != 101 {
		t.Errorf("score = %d, want 101", snap.Score)
	}
	if snap.Combo != 1 {
		t.Errorf("combo = %d, want 1", snap.Combo)
	}
	if snap.Pending == nil || snap.Pending.TotalLines != 1 {
		t.Fatalf("pending = %+v, want one row", snap.Pending)
	}
	// The grid clears immediately; Pending only drives the animation.
	if snap.Grid.Cell(3, 0) != CellEmpty {
		t.Error("cleared row still occupied during animation")
	}

	m.Dispatch(ClearComplete())
	snap = m.Snapshot()
	if m.State() != StateIdle {
		t.Fatalf("state after ClearComplete = %v, want idle", m.State())
	}
	if snap.Pending != nil {
		t.Error("pending survived ClearComplete")
	}
}

func TestConsecutiveClearsGrowCombo(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "single", "single", "single")

	// First clear: row 3.
	m.ctx.Grid = fillRow(Grid{}, 3, CellGreen, 7)
	m.Dispatch(DragStart(0))
	m.Dispatch(DropBlock(Pos{Row: 3, Col: 7}))
	m.Dispatch(ClearComplete())

	scoreAfterFirst := m.Snapshot().Score // 101

	// Second clear in a row: combo 2 multiplies the base by 1.5.
	m.ctx.Grid = fillRow(m.ctx.Grid, 5, CellBlue, 2)
	m.Dispatch(DragStart(1))
	m.Dispatch(DropBlock(Pos{Row: 5, Col: 2}))

	snap := m.Snapshot()
	if snap.Combo != 2 {
		t.Fatalf("combo = %d, want 2", snap.Combo)
	}
	if want := scoreAfterFirst + 1 + 150; snap.Score != want {
		t.Errorf("score = %d, want %d", snap.Score, want)
	}
}

func TestClearCompleteIgnoredOutsideClearing(t *testing.T) {
	m := newTestMachine(1)
	before := m.Snapshot()

	m.Dispatch(ClearComplete())

	after := m.Snapshot()
	if m.State() != StateIdle || after.Score != before.Score {
		t.Error("ClearComplete outside clearing changed the machine")
	}
}

func TestInventoryRefillsWhenSpent(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "single", "single", "single")

	targets := []Pos{{0, 0}, {0, 2}, {0, 4}}
	for slot, at := range targets {
		m.Dispatch(DragStart(slot))
		m.Dispatch(DropBlock(at))
	}

	snap := m.Snapshot()
	if m.State() != StateIdle {
		t.Fatalf("state = %v, want idle", m.State())
	}
	for i, b := range snap.Inventory {
		if b == nil {
			t.Errorf("slot %d not refilled", i)
		}
	}
}

// stuckGrid returns a checkerboard: no empty cell has an empty neighbor,
// so nothing bigger than a single fits.
func stuckGrid() Grid {
	var g Grid
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if (row+col)%2 == 0 {
				g[row][col] = CellMagenta
			}
		}
	}
	return g
}

func TestGameOverWhenNothingFits(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "duo_h", "duo_v", "square_2")
	m.ctx.Grid = stuckGrid()
	m.ctx.Score = 777

	// Re-run the post-placement check against the doctored state.
	m.state = StateCheckingGameOver
	m.settle()

	snap := m.Snapshot()
	if m.State() != StateGameOver {
		t.Fatalf("state = %v, want gameOver", m.State())
	}
	if snap.HighScore != 777 {
		t.Errorf("high score = %d, want 777", snap.HighScore)
	}
}

func TestGameOverKeepsHigherExistingRecord(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "duo_h", "duo_v", "square_2")
	m.ctx.Grid = stuckGrid()
	m.ctx.Score = 300
	m.ctx.HighScore = 900

	m.state = StateCheckingGameOver
	m.settle()

	if got := m.Snapshot().HighScore; got != 900 {
		t.Errorf("high score = %d, want 900 preserved", got)
	}
}

func TestRestartResetsGamePreservingHighScore(t *testing.T) {
	m := newTestMachine(1)
	setInventory(t, m, "duo_h", "duo_v", "square_2")
	m.ctx.Grid = stuckGrid()
	m.ctx.Score = 500
	m.state = StateCheckingGameOver
	m.settle()

	m.Dispatch(Restart())

	snap := m.Snapshot()
	if m.State() != StateIdle {
		t.Fatalf("state = %v, want idle", m.State())
	}
	if snap.Score != 0 || snap.Combo != 0 {
		t.Errorf("score/combo not reset: %d/%d", snap.Score, snap.Combo)
	}
	if snap.HighScore != 500 {
		t.Errorf("high score = %d, want 500 carried over", snap.HighScore)
	}
	if snap.Grid != (Grid{}) {
		t.Error("grid not emptied")
	}
	for i, b := range snap.Inventory {
		if b == nil {
			t.Errorf("slot %d empty after restart", i)
		}
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestMachine(1)
	m.ctx.Score = 50

	m.Dispatch(Restart())

	if got := m.Snapshot().Score; got != 50 {
		t.Errorf("mid-game restart reset the score to %d", got)
	}
}

func TestLoadHighScoreOnlyWhenSettled(t *testing.T) {
	m := newTestMachine(1)

	m.Dispatch(LoadHighScore(1234))
	if got := m.Snapshot().HighScore; got != 1234 {
		t.Fatalf("high score = %d, want 1234", got)
	}

	m.Dispatch(DragStart(0))
	m.Dispatch(LoadHighScore(9))
	if got := m.Snapshot().HighScore; got != 1234 {
		t.Errorf("high score overwritten mid-drag: %d", got)
	}
}

func TestSnapshotDoesNotAliasMachineState(t *testing.T) {
	m := newTestMachine(1)
	snap := m.Snapshot()

	if snap.Inventory[0] == nil {
		t.Fatal("expected a block in slot 0")
	}
	snap.Inventory[0].Color = CellCyan
	snap.Grid[0][0] = CellRed

	fresh := m.Snapshot()
	if fresh.Grid.Cell(0, 0) != CellEmpty {
		t.Error("mutating a snapshot grid leaked into the machine")
	}
	if fresh.Inventory[0].Color == CellCyan && m.ctx.Inventory[0].Color == CellCyan {
		t.Error("mutating a snapshot block leaked into the machine")
	}
}
