package blocks

// Snapshot is a read-only copy of the machine's state and context,
// produced after every accepted event. It is the only interface
// collaborators get; nothing reachable through it aliases the machine's
// own context.
type Snapshot struct {
	State     State
	Grid      Grid
	Inventory [InventorySize]*Block
	Score     int
	HighScore int
	Combo     int
	Drag      *DragState
	Pending   *LineClearResult

	IsDragging bool
	IsClearing bool
	IsGameOver bool
}

// Snapshot returns the current read-only snapshot.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:      m.state,
		Grid:       m.ctx.Grid,
		Score:      m.ctx.Score,
		HighScore:  m.ctx.HighScore,
		Combo:      m.ctx.Combo,
		IsDragging: m.state == StateDragging,
		IsClearing: m.state == StateClearing,
		IsGameOver: m.state == StateGameOver,
	}

	for i, b := range m.ctx.Inventory {
		if b != nil {
			blockCopy := *b
			snap.Inventory[i] = &blockCopy
		}
	}

	if m.ctx.Drag != nil {
		dragCopy := *m.ctx.Drag
		snap.Drag = &dragCopy
	}

	if m.ctx.Pending != nil {
		pendingCopy := LineClearResult{
			Rows:       append([]int(nil), m.ctx.Pending.Rows...),
			Cols:       append([]int(nil), m.ctx.Pending.Cols...),
			TotalLines: m.ctx.Pending.TotalLines,
		}
		snap.Pending = &pendingCopy
	}

	return snap
}
