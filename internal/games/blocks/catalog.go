package blocks

import (
	"math/rand"

	"github.com/nkarpov/tui-blocks/internal/config"
)

// Catalog generates blocks from the fixed shape library. The RNG and the
// id source are injected so generation is deterministic under a fixed
// seed and ids never depend on hidden global state.
type Catalog struct {
	rng    *rand.Rand
	nextID func() int64
	gen    config.GenerationConfig

	byTier [3][]Shape
}

// SequenceIDs returns a monotonic block id source starting at 1.
func SequenceIDs() func() int64 {
	var n int64
	return func() int64 {
		n++
		return n
	}
}

// NewCatalog creates a catalog drawing from the full shape library.
func NewCatalog(rng *rand.Rand, nextID func() int64, gen config.GenerationConfig) *Catalog {
	c := &Catalog{
		rng:    rng,
		nextID: nextID,
		gen:    gen,
	}
	for _, s := range shapeLibrary {
		c.byTier[s.Tier] = append(c.byTier[s.Tier], s)
	}
	return c
}

// GenerateBlock produces a fresh block scaled to the current score:
// low scores draw mostly simple shapes, high scores favor complex ones.
// The block gets a fresh unique id and a uniformly random color.
// Never fails.
func (c *Catalog) GenerateBlock(score int) Block {
	pool := c.byTier[c.pickTier(score)]
	return Block{
		ID:    c.nextID(),
		Shape: c.pickWeighted(pool),
		Color: CellColor(1 + c.rng.Intn(PaletteSize)),
	}
}

// GenerateInventory produces a full starting inventory, generated as if
// the score were zero.
func (c *Catalog) GenerateInventory() [InventorySize]*Block {
	var inv [InventorySize]*Block
	for i := range inv {
		b := c.GenerateBlock(0)
		inv[i] = &b
	}
	return inv
}

// Refill produces a full inventory scaled to the given score.
func (c *Catalog) Refill(score int) [InventorySize]*Block {
	var inv [InventorySize]*Block
	for i := range inv {
		b := c.GenerateBlock(score)
		inv[i] = &b
	}
	return inv
}

// pickTier selects a shape tier using the score band's mix.
func (c *Catalog) pickTier(score int) Tier {
	mix := c.gen.TierMix(score)
	roll := c.rng.Float64()
	switch {
	case roll < mix[0]:
		return TierSimple
	case roll < mix[0]+mix[1]:
		return TierMedium
	default:
		return TierComplex
	}
}

// pickWeighted performs weighted random selection within a shape pool.
func (c *Catalog) pickWeighted(pool []Shape) Shape {
	total := 0.0
	for _, s := range pool {
		total += s.Weight
	}

	roll := c.rng.Float64() * total
	for _, s := range pool {
		roll -= s.Weight
		if roll < 0 {
			return s
		}
	}
	// Float round-off can leave roll at exactly zero after the loop.
	return pool[len(pool)-1]
}
