package blocks

import (
	"math/rand"

	"github.com/nkarpov/tui-blocks/internal/config"
	"github.com/nkarpov/tui-blocks/internal/core"
	"github.com/nkarpov/tui-blocks/internal/registry"
)

// Package-level variables for config/difficulty, set by the CLI before
// the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game adapts the block puzzle machine to the platform's Game interface.
// It owns the keyboard-driven stand-in for dragging: picking a slot
// starts a drag, cursor moves update it, enter drops, esc cancels. The
// clear animation runs here and feeds the machine its completion signal.
type Game struct {
	cfg     config.BlocksConfig
	rng     *rand.Rand
	machine *Machine
	tick    uint64

	cursor     Pos
	heldSlot   int
	clearTicks int
	seedHigh   int

	// Screen dimensions
	screenW int
	screenH int

	// Platform state flags
	paused   bool
	tooSmall bool
}

// New creates a new block puzzle game.
func New() *Game {
	return &Game{heldSlot: -1}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Block Puzzle"
}

// SeedHighScore injects the persisted high score. Safe to call before or
// after Reset.
func (g *Game) SeedHighScore(score int) {
	g.seedHigh = score
	if g.machine != nil {
		g.machine.Dispatch(LoadHighScore(score))
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadBlocks(configPath)
	if err != nil {
		loaded = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&loaded, difficultyPreset)
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.machine = NewMachine(NewCatalog(g.rng, SequenceIDs(), g.cfg.Generation))
	if g.seedHigh > 0 {
		g.machine.Dispatch(LoadHighScore(g.seedHigh))
	}

	g.tick = 0
	g.cursor = Pos{Row: GridSize / 2, Col: GridSize / 2}
	g.heldSlot = -1
	g.clearTicks = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board plus side panel.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	snap := g.machine.Snapshot()

	// Handle restart
	if in.Has(core.ActionRestart) && snap.IsGameOver {
		g.machine.Dispatch(Restart())
		g.cursor = Pos{Row: GridSize / 2, Col: GridSize / 2}
		g.heldSlot = -1
		g.clearTicks = 0
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !snap.IsGameOver {
		g.paused = !g.paused
	}
	if g.paused || snap.IsGameOver {
		return core.StepResult{State: g.State()}
	}

	switch g.machine.State() {
	case StateClearing:
		g.clearTicks++
		if g.clearTicks >= g.cfg.Animation.ClearTicks {
			g.clearTicks = 0
			g.machine.Dispatch(ClearComplete())
		}

	case StateIdle:
		if slot, ok := g.pickedSlot(in, -1); ok {
			g.startDrag(slot)
		}

	case StateDragging:
		g.stepDragging(in)
	}

	return core.StepResult{State: g.State()}
}

// stepDragging handles input while a block is held.
func (g *Game) stepDragging(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.machine.Dispatch(DragCancel())
		g.heldSlot = -1
		return
	}

	// Switching to another slot cancels the current drag first.
	if slot, ok := g.pickedSlot(in, g.heldSlot); ok && slot != g.heldSlot {
		g.machine.Dispatch(DragCancel())
		g.startDrag(slot)
		return
	}

	moved := false
	if in.Has(core.ActionUp) {
		g.cursor.Row--
		moved = true
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row++
		moved = true
	}
	if in.Has(core.ActionLeft) {
		g.cursor.Col--
		moved = true
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col++
		moved = true
	}
	if moved {
		g.cursor.Row = core.Clamp(g.cursor.Row, 0, GridSize-1)
		g.cursor.Col = core.Clamp(g.cursor.Col, 0, GridSize-1)
		g.sendDragUpdate()
	}

	if in.Has(core.ActionConfirm) {
		g.machine.Dispatch(DropBlock(g.cursor))
		if g.machine.State() != StateDragging {
			g.heldSlot = -1
		}
	}
}

// startDrag picks up the given slot and reports the cursor as the
// initial drag target.
func (g *Game) startDrag(slot int) {
	g.machine.Dispatch(DragStart(slot))
	if g.machine.State() == StateDragging {
		g.heldSlot = slot
		g.sendDragUpdate()
	}
}

// sendDragUpdate feeds the machine the cursor position and its validity.
func (g *Game) sendDragUpdate() {
	valid := g.machine.CanPlaceSlotAt(g.heldSlot, g.cursor)
	g.machine.Dispatch(DragUpdate(g.cursor, valid))
}

// pickedSlot resolves slot-selection input to an occupied inventory
// slot. Cycle starts after the given slot.
func (g *Game) pickedSlot(in core.InputFrame, after int) (int, bool) {
	snap := g.machine.Snapshot()

	direct := -1
	switch {
	case in.Has(core.ActionSlot1):
		direct = 0
	case in.Has(core.ActionSlot2):
		direct = 1
	case in.Has(core.ActionSlot3):
		direct = 2
	}
	if direct >= 0 {
		if snap.Inventory[direct] == nil {
			return 0, false
		}
		return direct, true
	}

	if in.Has(core.ActionCycle) {
		for i := 1; i <= InventorySize; i++ {
			slot := ((after + i) % InventorySize + InventorySize) % InventorySize
			if snap.Inventory[slot] != nil {
				return slot, true
			}
		}
	}

	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	snap := g.machine.Snapshot()
	return core.GameState{
		Score:     snap.Score,
		HighScore: snap.HighScore,
		GameOver:  snap.IsGameOver,
		Paused:    g.paused || g.tooSmall,
	}
}
