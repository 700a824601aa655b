package blocks

import (
	"math/rand"
	"testing"

	"github.com/nkarpov/tui-blocks/internal/config"
)

func newTestCatalog(seed int64) *Catalog {
	gen := config.DefaultBlocksConfig().Generation
	return NewCatalog(rand.New(rand.NewSource(seed)), SequenceIDs(), gen)
}

func TestGenerateBlockValid(t *testing.T) {
	c := newTestCatalog(42)
	for i := 0; i < 200; i++ {
		b := c.GenerateBlock(i * 50)
		if b.ID <= 0 {
			t.Fatalf("block %d has non-positive id %d", i, b.ID)
		}
		if b.Color < CellRed || b.Color > CellCyan {
			t.Fatalf("block %d has color %d outside palette", i, b.Color)
		}
		if b.Shape.CellCount() == 0 {
			t.Fatalf("block %d has empty shape", i)
		}
	}
}

func TestGenerateBlockIDsMonotonic(t *testing.T) {
	c := newTestCatalog(1)
	var last int64
	for i := 0; i < 50; i++ {
		b := c.GenerateBlock(0)
		if b.ID <= last {
			t.Fatalf("id %d not greater than previous %d", b.ID, last)
		}
		last = b.ID
	}
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	a := newTestCatalog(7)
	b := newTestCatalog(7)
	for i := 0; i < 100; i++ {
		score := i * 37
		ba, bb := a.GenerateBlock(score), b.GenerateBlock(score)
		if ba.Shape.Name != bb.Shape.Name || ba.Color != bb.Color || ba.ID != bb.ID {
			t.Fatalf("sequence diverged at %d: %v/%v vs %v/%v",
				i, ba.Shape.Name, ba.Color, bb.Shape.Name, bb.Color)
		}
	}
}

func TestRefillFillsAllSlots(t *testing.T) {
	c := newTestCatalog(3)
	inv := c.Refill(1200)
	for i, b := range inv {
		if b == nil {
			t.Fatalf("slot %d empty after refill", i)
		}
	}

	// All three ids must be distinct.
	if inv[0].ID == inv[1].ID || inv[1].ID == inv[2].ID || inv[0].ID == inv[2].ID {
		t.Errorf("refill produced duplicate ids: %d %d %d", inv[0].ID, inv[1].ID, inv[2].ID)
	}
}

func TestTierMixShiftsWithScore(t *testing.T) {
	c := newTestCatalog(99)

	countComplex := func(score, n int) int {
		complex := 0
		for i := 0; i < n; i++ {
			if c.GenerateBlock(score).Shape.Tier == TierComplex {
				complex++
			}
		}
		return complex
	}

	low := countComplex(0, 1000)
	high := countComplex(5000, 1000)
	if high <= low {
		t.Errorf("complex share did not grow with score: %d at 0 vs %d at 5000", low, high)
	}
}

func TestFixedGenerationIgnoresScore(t *testing.T) {
	gen := config.DefaultBlocksConfig().Generation
	gen.Fixed = true

	for _, score := range []int{0, 400, 2000, 10000} {
		if band := gen.Band(score); band != 0 {
			t.Errorf("fixed generation band at score %d = %d, want 0", score, band)
		}
	}
}
