package blocks

// State is the controller's position in the turn lifecycle.
type State int

const (
	StateIdle State = iota
	StateDragging
	StatePlacing
	StateClearing
	StateCheckingGameOver
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StatePlacing:
		return "placing"
	case StateClearing:
		return "clearing"
	case StateCheckingGameOver:
		return "checkingGameOver"
	case StateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// EventKind identifies an externally delivered event.
type EventKind int

const (
	EventDragStart EventKind = iota
	EventDragUpdate
	EventDragCancel
	EventDropBlock
	EventClearComplete
	EventRestart
	EventLoadHighScore
)

// Event is an external input to the machine. Only the fields relevant to
// the kind are meaningful.
type Event struct {
	Kind   EventKind
	Slot   int  // EventDragStart
	Target Pos  // EventDragUpdate, EventDropBlock
	Valid  bool // EventDragUpdate
	Score  int  // EventLoadHighScore
}

// DragStart picks up the block in the given inventory slot.
func DragStart(slot int) Event {
	return Event{Kind: EventDragStart, Slot: slot}
}

// DragUpdate moves the in-progress drag to a new target position.
// Valid carries the caller's placement-validity feedback; the grid is
// not touched.
func DragUpdate(target Pos, valid bool) Event {
	return Event{Kind: EventDragUpdate, Target: target, Valid: valid}
}

// DragCancel abandons the in-progress drag.
func DragCancel() Event {
	return Event{Kind: EventDragCancel}
}

// DropBlock attempts to commit the dragged block at the target position.
func DropBlock(target Pos) Event {
	return Event{Kind: EventDropBlock, Target: target}
}

// ClearComplete signals that the presentation finished animating the
// pending clear.
func ClearComplete() Event {
	return Event{Kind: EventClearComplete}
}

// Restart begins a fresh game, preserving the high score.
func Restart() Event {
	return Event{Kind: EventRestart}
}

// LoadHighScore seeds the high score from the persistence layer.
func LoadHighScore(score int) Event {
	return Event{Kind: EventLoadHighScore, Score: score}
}

// DragState tracks an in-progress drag. It exists only while the machine
// is in StateDragging.
type DragState struct {
	Slot      int
	Target    Pos
	HasTarget bool
	Valid     bool
}

// Context is the authoritative mutable game state. It is owned and
// mutated exclusively by the Machine; collaborators read snapshots.
type Context struct {
	Grid      Grid
	Inventory [InventorySize]*Block
	Score     int
	HighScore int
	Combo     int
	Drag      *DragState
	Pending   *LineClearResult
}

// Machine sequences the turn lifecycle: drag, validate, place, clear,
// continue or game over, refill. Every transition is total; a rejected
// drop and the terminal game-over state are normal outcomes, not errors.
//
// Processing is strictly sequential: one dispatched event runs to
// completion, including all chained automatic transitions, before the
// next is accepted.
type Machine struct {
	state   State
	ctx     Context
	catalog *Catalog
}

// NewMachine creates a machine in the idle state with a fresh grid and a
// fresh three-block inventory generated at score zero.
func NewMachine(catalog *Catalog) *Machine {
	m := &Machine{
		state:   StateIdle,
		catalog: catalog,
	}
	m.ctx = Context{
		Inventory: catalog.GenerateInventory(),
	}
	m.settle()
	return m
}

// State returns the machine's current state.
func (m *Machine) State() State {
	return m.state
}

// Dispatch processes one external event to completion, including any
// chained automatic transitions. Events undefined for the current state
// leave state and context unchanged.
func (m *Machine) Dispatch(ev Event) {
	m.state, m.ctx = reduce(m.state, m.ctx, ev, m.catalog)
	m.settle()
}

// CanPlaceBlockAt reports whether the block fits at the position on the
// current grid. Pure query; safe to call repeatedly during a drag.
func (m *Machine) CanPlaceBlockAt(b Block, at Pos) bool {
	return m.ctx.Grid.CanPlace(b, at)
}

// CanPlaceSlotAt is CanPlaceBlockAt for an inventory slot. Empty or
// out-of-range slots never fit.
func (m *Machine) CanPlaceSlotAt(slot int, at Pos) bool {
	if slot < 0 || slot >= InventorySize || m.ctx.Inventory[slot] == nil {
		return false
	}
	return m.ctx.Grid.CanPlace(*m.ctx.Inventory[slot], at)
}

// PredictSlotClears returns the clears that dropping the slot's block at
// the position would produce. Preview only; empty result for empty slots.
func (m *Machine) PredictSlotClears(slot int, at Pos) LineClearResult {
	if slot < 0 || slot >= InventorySize || m.ctx.Inventory[slot] == nil {
		return LineClearResult{}
	}
	return m.ctx.Grid.PredictClears(*m.ctx.Inventory[slot], at)
}

// reduce applies one external event. It is a pure function of
// (state, context, event) aside from the injected block generator, which
// only runs during restart.
func reduce(s State, ctx Context, ev Event, catalog *Catalog) (State, Context) {
	switch ev.Kind {
	case EventDragStart:
		if s != StateIdle {
			return s, ctx
		}
		if ev.Slot < 0 || ev.Slot >= InventorySize || ctx.Inventory[ev.Slot] == nil {
			return s, ctx
		}
		ctx.Drag = &DragState{Slot: ev.Slot}
		return StateDragging, ctx

	case EventDragUpdate:
		if s != StateDragging || ctx.Drag == nil {
			return s, ctx
		}
		drag := *ctx.Drag
		drag.Target = ev.Target
		drag.HasTarget = true
		drag.Valid = ev.Valid
		ctx.Drag = &drag
		return s, ctx

	case EventDragCancel:
		if s != StateDragging {
			return s, ctx
		}
		ctx.Drag = nil
		return StateIdle, ctx

	case EventDropBlock:
		if s != StateDragging || ctx.Drag == nil {
			return s, ctx
		}
		block := ctx.Inventory[ctx.Drag.Slot]
		if block == nil || !ctx.Grid.CanPlace(*block, ev.Target) {
			// Rejected drop: back to idle, nothing mutated.
			ctx.Drag = nil
			return StateIdle, ctx
		}
		ctx.Grid = ctx.Grid.Place(*block, ev.Target)
		ctx.Inventory[ctx.Drag.Slot] = nil
		ctx.Score += PlacementPoints(block.Shape.CellCount())
		if clears := ctx.Grid.LineClears(); clears.TotalLines > 0 {
			ctx.Pending = &clears
		} else {
			ctx.Pending = nil
		}
		ctx.Drag = nil
		return StatePlacing, ctx

	case EventClearComplete:
		if s != StateClearing {
			return s, ctx
		}
		ctx.Pending = nil
		return StateCheckingGameOver, ctx

	case EventRestart:
		if s != StateGameOver {
			return s, ctx
		}
		high := ctx.HighScore
		ctx = Context{
			Inventory: catalog.GenerateInventory(),
			HighScore: high,
		}
		return StateIdle, ctx

	case EventLoadHighScore:
		if s != StateIdle && s != StateGameOver {
			return s, ctx
		}
		ctx.HighScore = ev.Score
		return s, ctx

	default:
		return s, ctx
	}
}

// settle drives the machine through zero-input transitions until no more
// apply: idle's auto-refill, placing's immediate advance, and the
// game-over check chain.
func (m *Machine) settle() {
	for {
		s, ctx, changed := autoStep(m.state, m.ctx, m.catalog)
		if !changed {
			return
		}
		m.state, m.ctx = s, ctx
	}
}

// autoStep applies one automatic transition, if any applies to the
// current state.
func autoStep(s State, ctx Context, catalog *Catalog) (State, Context, bool) {
	switch s {
	case StateIdle:
		// Entering idle with a fully spent inventory triggers a refill
		// scaled to the current score before further input is accepted.
		if inventoryEmpty(ctx.Inventory) {
			ctx.Inventory = catalog.Refill(ctx.Score)
			return s, ctx, true
		}
		return s, ctx, false

	case StatePlacing:
		if ctx.Pending != nil {
			// Clear commits immediately and authoritatively; only the
			// transition onward waits for the presentation's signal.
			// Scoring uses the combo value as it stands after this
			// clear is counted.
			ctx.Combo++
			ctx.Grid = ctx.Grid.ClearLines(*ctx.Pending)
			ctx.Score += CalculateScore(*ctx.Pending, ctx.Combo).Points
			// Pending stays set so the presentation can look up the
			// cells to animate; ClearComplete discards it.
			return StateClearing, ctx, true
		}
		ctx.Combo = 0
		return StateCheckingGameOver, ctx, true

	case StateCheckingGameOver:
		if inventoryEmpty(ctx.Inventory) {
			ctx.Inventory = catalog.Refill(ctx.Score)
			return s, ctx, true
		}
		if ctx.Grid.CanPlaceAny(ctx.Inventory) {
			return StateIdle, ctx, true
		}
		if ctx.Score > ctx.HighScore {
			ctx.HighScore = ctx.Score
		}
		return StateGameOver, ctx, true

	default:
		return s, ctx, false
	}
}

// inventoryEmpty reports whether every slot is spent.
func inventoryEmpty(inv [InventorySize]*Block) bool {
	for _, b := range inv {
		if b != nil {
			return false
		}
	}
	return true
}
