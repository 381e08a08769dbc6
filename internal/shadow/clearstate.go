// Package shadow describes how the CP shadows register state in memory:
// the per-generation shadowed ranges, the CLEAR_STATE default values and the
// preamble IB that enables shadowing for a new context.
package shadow

import (
	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
)

// RegSeq is a run of consecutive context registers starting at the byte
// offset Offset.
type RegSeq struct {
	Offset uint32
	Values []uint32
}

// End returns the byte offset past the run.
func (s RegSeq) End() uint32 {
	return s.Offset + uint32(len(s.Values))*4
}

// ClearStateTable returns the context register defaults CLEAR_STATE loads on
// a generation. GFX10.3 and GFX11 have their own tables; GFX11.5 shares the
// GFX11 one. Callers must not modify the returned runs.
func ClearStateTable(level amd.GfxLevel) ([]RegSeq, error) {
	switch level {
	case amd.Gfx9:
		return gfx9ClearState, nil
	case amd.Gfx10:
		return gfx10ClearState, nil
	case amd.Gfx103:
		return gfx103ClearState, nil
	case amd.Gfx11, amd.Gfx115:
		return gfx11ClearState, nil
	}
	return nil, common.Errorf(amd.ErrUnsupportedGfx, amd.NoIdx, "no CLEAR_STATE table for %s", level)
}

// RegPair is one extra register write applied after the defaults.
type RegPair struct {
	Offset uint32
	Value  uint32
}

const regPaScTileSteeringOverride = 0x2835c

// EmulateClearState replays CLEAR_STATE through emit: the generation table,
// then PA_SC_TILE_STEERING_OVERRIDE on GFX10+, then extra in order. The
// tables load the override as zero; the second write carries the chip value.
func EmulateClearState(info amd.DeviceInfo, extra []RegPair, emit func(offset uint32, values []uint32) error) error {
	table, err := ClearStateTable(info.GfxLevel)
	if err != nil {
		return err
	}
	for _, s := range table {
		if err := emit(s.Offset, s.Values); err != nil {
			return err
		}
	}
	if info.GfxLevel >= amd.Gfx10 {
		if err := emit(regPaScTileSteeringOverride, []uint32{info.PaScTileSteeringOverride}); err != nil {
			return err
		}
	}
	for _, p := range extra {
		if err := emit(p.Offset, []uint32{p.Value}); err != nil {
			return err
		}
	}
	return nil
}
