package pm4state_test

import (
	"math/rand/v2"
	"testing"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/ctxroll"
	"pm4dbg/internal/pm4state"
	"pm4dbg/internal/regs"
)

// Context register writes built with or without packed pairs read back
// through the roll analyzer's register file.
func TestRoundTripThroughAnalyzer(t *testing.T) {
	for _, family := range []amd.Family{amd.Vega10, amd.Navi21, amd.Navi31} {
		info := amd.NewDeviceInfo(family)
		t.Run(family.String(), func(t *testing.T) {
			var offsets []uint32
			known := make(map[uint32]bool)
			for _, r := range regs.Builtin().Registers(info.GfxLevel, info.Family) {
				if amd.SpaceOf(r.Offset) == amd.SpaceContext && (r.Offset-amd.ContextRegOffset)/4 < ctxroll.NumContextRegs {
					offsets = append(offsets, r.Offset)
					known[r.Offset] = true
				}
			}
			if len(offsets) == 0 {
				t.Fatal("no context registers in the catalog")
			}

			rng := rand.New(rand.NewPCG(uint64(family), 3))
			for i := 0; i < 500; i++ {
				b := pm4state.NewBuilder(info, nil)
				want := make(map[uint32]uint32)
				prev := uint32(0)
				for n := 1 + rng.IntN(40); n > 0; n-- {
					off := offsets[rng.IntN(len(offsets))]
					if prev != 0 && rng.IntN(3) == 0 && known[prev+4] {
						off = prev + 4
					}
					v := rng.Uint32()
					if err := b.SetReg(off, v); err != nil {
						t.Fatalf("SetReg(0x%05x): %v", off, err)
					}
					want[off] = v
					prev = off
				}

				a := ctxroll.NewAnalyzer(ctxroll.Config{GfxLevel: info.GfxLevel, Family: info.Family})
				if err := a.Analyze(b.Dwords()); err != nil {
					t.Fatalf("sequence %d: %v", i, err)
				}
				file := a.Registers()
				for rel, got := range file.Regs {
					off := amd.ContextRegOffset + uint32(rel)*4
					if got != want[off] {
						t.Fatalf("sequence %d: 0x%05x = 0x%x, want 0x%x", i, off, got, want[off])
					}
				}
			}
		})
	}
}
