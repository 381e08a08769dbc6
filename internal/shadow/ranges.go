package shadow

import (
	"fmt"
	"io"
	"sort"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/regs"
)

// RangeType selects one LOAD_*_REG class of shadowed registers.
type RangeType int

const (
	RangeUconfig RangeType = iota
	RangeContext
	RangeSh
	RangeCSSh
	NumRangeTypes
)

func (t RangeType) String() string {
	switch t {
	case RangeUconfig:
		return "UCONFIG"
	case RangeContext:
		return "CONTEXT"
	case RangeSh:
		return "SH"
	case RangeCSSh:
		return "CS_SH"
	}
	return fmt.Sprintf("RangeType(%d)", int(t))
}

// Space returns the register space the range type lives in.
func (t RangeType) Space() amd.RegSpace {
	switch t {
	case RangeUconfig:
		return amd.SpaceUconfig
	case RangeContext:
		return amd.SpaceContext
	case RangeSh, RangeCSSh:
		return amd.SpaceSh
	}
	return amd.SpaceNone
}

// Range is a block of shadowed registers. Offset is an absolute byte offset
// and Size is in bytes.
type Range struct {
	Offset uint32
	Size   uint32
}

func (r Range) End() uint32 { return r.Offset + r.Size }

func (r Range) Contains(offset uint32) bool {
	return offset >= r.Offset && offset < r.End()
}

func span(start, end uint32) Range { return Range{Offset: start, Size: end - start} }

// rangeSet holds the shadowed ranges of one generation, indexed by type.
type rangeSet [NumRangeTypes][]Range

var gfx9Ranges = rangeSet{
	RangeUconfig: {
		span(0x300fc, 0x30100), // CP_STRMOUT_CNTL
		span(0x301ec, 0x301f0), // CP_COHER_START_DELAY
		span(0x30904, 0x3090c), // VGT_GSVS_RING_SIZE, VGT_PRIMITIVE_TYPE
		span(0x30920, 0x30930), // VGT_MAX_VTX_INDX..VGT_MULTI_PRIM_IB_RESET_EN
		span(0x30934, 0x30948), // VGT_NUM_INSTANCES..VGT_TF_MEMORY_BASE_HI
		span(0x30960, 0x30964), // IA_MULTI_VGT_PARAM
		span(0x30968, 0x3096c), // VGT_INSTANCE_BASE_ID
		span(0x30e00, 0x30e08), // TA_CS_BC_BASE_ADDR
	},
	RangeContext: {
		span(0x28000, 0x28088),
		span(0x281e8, 0x2835c),
		span(0x2840c, 0x28410),
		span(0x28414, 0x2861c),
		span(0x28644, 0x28718),
		span(0x28754, 0x287c0),
		span(0x287cc, 0x287d0), // CS_COPY_STATE
		span(0x287d4, 0x287e4),
		span(0x287e4, 0x287f4), // VGT_DMA_BASE_HI..VGT_DRAW_INITIATOR
		span(0x28800, 0x28838),
		span(0x28a00, 0x28a10),
		span(0x28a18, 0x28a20),
		span(0x28a40, 0x28a70),
		span(0x28a84, 0x28a88),
		span(0x28a8c, 0x28a90),
		span(0x28a94, 0x28ad8),
		span(0x28ae0, 0x28ae8),
		span(0x28af0, 0x28af8),
		span(0x28b00, 0x28b08),
		span(0x28b28, 0x28b34),
		span(0x28b38, 0x28e40),
	},
	RangeSh: {
		span(0xb01c, 0xb0b0), // PS
		span(0xb11c, 0xb1b0), // VS
		span(0xb21c, 0xb2b0), // GS
		span(0xb31c, 0xb3b0), // ES
		span(0xb41c, 0xb4b0), // HS
		span(0xb51c, 0xb5b0), // LS
	},
	RangeCSSh: {
		span(0xb810, 0xb828),
		span(0xb830, 0xb838),
		span(0xb848, 0xb850),
		span(0xb854, 0xb858),
		span(0xb860, 0xb864),
		span(0xb878, 0xb87c),
		span(0xb900, 0xb940),
	},
}

// Raven2 and Renoir also shadow the shader checksum registers.
var gfx9Raven2Ranges = rangeSet{
	RangeUconfig: gfx9Ranges[RangeUconfig],
	RangeContext: gfx9Ranges[RangeContext],
	RangeSh: {
		span(0xb018, 0xb0b0),
		span(0xb118, 0xb1b0),
		span(0xb218, 0xb2b0),
		span(0xb318, 0xb3b0),
		span(0xb418, 0xb4b0),
		span(0xb518, 0xb5b0),
	},
	RangeCSSh: {
		span(0xb810, 0xb828),
		span(0xb830, 0xb838),
		span(0xb848, 0xb850),
		span(0xb854, 0xb858),
		span(0xb860, 0xb864),
		span(0xb878, 0xb87c),
		span(0xb8a8, 0xb8ac), // COMPUTE_SHADER_CHKSUM
		span(0xb900, 0xb940),
	},
}

var gfx10Sh = []Range{
	span(0xb004, 0xb008), // SPI_SHADER_PGM_RSRC4_PS
	span(0xb018, 0xb0b0),
	span(0xb104, 0xb108), // SPI_SHADER_PGM_RSRC4_VS
	span(0xb118, 0xb1b0),
	span(0xb204, 0xb210),
	span(0xb218, 0xb2b0),
	span(0xb320, 0xb328), // SPI_SHADER_PGM_LO_ES, SPI_SHADER_PGM_HI_ES
	span(0xb404, 0xb410),
	span(0xb418, 0xb4b0),
	span(0xb520, 0xb528), // SPI_SHADER_PGM_LO_LS, SPI_SHADER_PGM_HI_LS
}

var gfx10CSSh = []Range{
	span(0xb810, 0xb828),
	span(0xb82c, 0xb838),
	span(0xb848, 0xb850),
	span(0xb854, 0xb858),
	span(0xb860, 0xb864),
	span(0xb878, 0xb87c),
	span(0xb890, 0xb8a4), // COMPUTE_USER_ACCUM_0..COMPUTE_PGM_RSRC3
	span(0xb8a8, 0xb8ac),
	span(0xb900, 0xb940),
}

var gfx10Ranges = rangeSet{
	RangeUconfig: {
		span(0x300fc, 0x30100),
		span(0x301ec, 0x301f0),
		span(0x30904, 0x3090c),
		span(0x30920, 0x30930),
		span(0x30934, 0x30948),
		span(0x30964, 0x3096c),
		span(0x3096c, 0x30984), // from GE_CNTL
		span(0x3098c, 0x30990),
		span(0x30e00, 0x30e08),
	},
	RangeContext: {
		span(0x28000, 0x28088),
		span(0x281e8, 0x28360),
		span(0x2840c, 0x28414),
		span(0x28414, 0x2861c),
		span(0x28644, 0x28718),
		span(0x28754, 0x287a0),
		span(0x287d4, 0x287e4),
		span(0x287fc, 0x28844),
		span(0x28a00, 0x28a10),
		span(0x28a18, 0x28a20),
		span(0x28a40, 0x28a70),
		span(0x28a84, 0x28a88),
		span(0x28a8c, 0x28a90),
		span(0x28a98, 0x28a9c),
		span(0x28aac, 0x28ab8),
		span(0x28abc, 0x28b08),
		span(0x28b28, 0x28b34),
		span(0x28b38, 0x28f00),
	},
	RangeSh:   gfx10Sh,
	RangeCSSh: gfx10CSSh,
}

var gfx103Uconfig = []Range{
	span(0x300fc, 0x30100),
	span(0x301ec, 0x301f0),
	span(0x30904, 0x3090c),
	span(0x30920, 0x30930),
	span(0x30934, 0x30948),
	span(0x30964, 0x3096c),
	span(0x3096c, 0x30990),
	span(0x30e00, 0x30e08),
}

var gfx103Context = []Range{
	span(0x28000, 0x28088),
	span(0x281e8, 0x28360),
	span(0x283d0, 0x28400), // VRS
	span(0x2840c, 0x28414),
	span(0x28414, 0x2861c),
	span(0x28644, 0x28718),
	span(0x28754, 0x287a0),
	span(0x287d4, 0x287e4),
	span(0x287fc, 0x2884c),
	span(0x28a00, 0x28a10),
	span(0x28a18, 0x28a20),
	span(0x28a40, 0x28a70),
	span(0x28a84, 0x28a88),
	span(0x28a8c, 0x28a90),
	span(0x28a98, 0x28a9c),
	span(0x28aac, 0x28ab8),
	span(0x28abc, 0x28b08),
	span(0x28b28, 0x28b34),
	span(0x28b38, 0x28f00),
}

var gfx103CSSh = append(append([]Range(nil), gfx10CSSh...), span(0xb9f4, 0xb9f8)) // COMPUTE_DISPATCH_TUNNEL

var gfx103Ranges = rangeSet{
	RangeUconfig: gfx103Uconfig,
	RangeContext: gfx103Context,
	RangeSh:      gfx10Sh,
	RangeCSSh:    gfx103CSSh,
}

var gfx11Ranges = rangeSet{
	RangeUconfig: {
		span(0x300fc, 0x30100),
		span(0x301ec, 0x301f0),
		span(0x30908, 0x3090c),
		span(0x30920, 0x30930),
		span(0x30934, 0x30948),
		span(0x30964, 0x3096c),
		span(0x3096c, 0x30990),
		span(0x30e00, 0x30e08),
	},
	RangeContext: {
		span(0x28000, 0x28088),
		span(0x281e8, 0x28360),
		span(0x283d0, 0x28400),
		span(0x2840c, 0x28414),
		span(0x28414, 0x2861c),
		span(0x28644, 0x28718),
		span(0x28754, 0x287a4), // through SX_PS_DOWNCONVERT_CONTROL
		span(0x287d4, 0x287e4),
		span(0x287fc, 0x2884c),
		span(0x28a00, 0x28a10),
		span(0x28a18, 0x28a20),
		span(0x28a40, 0x28a70),
		span(0x28a84, 0x28a88),
		span(0x28a8c, 0x28a90),
		span(0x28a98, 0x28a9c),
		span(0x28aac, 0x28ab8),
		span(0x28abc, 0x28b08),
		span(0x28b28, 0x28b34),
		span(0x28b38, 0x28f00),
	},
	// No VS stage.
	RangeSh: {
		span(0xb004, 0xb008),
		span(0xb018, 0xb0b0),
		span(0xb204, 0xb210),
		span(0xb218, 0xb2b0),
		span(0xb320, 0xb328),
		span(0xb404, 0xb410),
		span(0xb418, 0xb4b0),
		span(0xb520, 0xb528),
	},
	RangeCSSh: gfx103CSSh,
}

func rangesFor(level amd.GfxLevel, family amd.Family) *rangeSet {
	switch level {
	case amd.Gfx9:
		if family == amd.Raven2 || family == amd.Renoir {
			return &gfx9Raven2Ranges
		}
		return &gfx9Ranges
	case amd.Gfx10:
		return &gfx10Ranges
	case amd.Gfx103:
		return &gfx103Ranges
	case amd.Gfx11, amd.Gfx115:
		return &gfx11Ranges
	}
	return nil
}

// Ranges returns the shadowed ranges of one type, sorted by offset. Chips
// older than GFX9 do not shadow registers and get nil. Raven2 and Renoir
// shadow more SH registers than the other GFX9 chips.
func Ranges(level amd.GfxLevel, family amd.Family, t RangeType) []Range {
	set := rangesFor(level, family)
	if set == nil || t < 0 || t >= NumRangeTypes {
		return nil
	}
	return set[t]
}

// IsShadowed reports whether a register is in any shadowed range.
func IsShadowed(level amd.GfxLevel, family amd.Family, offset uint32) bool {
	for t := RangeType(0); t < NumRangeTypes; t++ {
		for _, r := range Ranges(level, family, t) {
			if r.Contains(offset) {
				return true
			}
		}
	}
	return false
}

// Enumerator lists every register a catalog knows for a chip.
type Enumerator interface {
	Registers(level amd.GfxLevel, family amd.Family) []*regs.Register
}

// CheckCoverage compares the ranges with a catalog. Missing holds the
// offsets of SH, CONTEXT and UCONFIG registers no range covers, duplicated
// those covered by more than one range. Both are sorted.
func CheckCoverage(cat Enumerator, level amd.GfxLevel, family amd.Family) (missing, duplicated []uint32) {
	for _, reg := range cat.Registers(level, family) {
		switch amd.SpaceOf(reg.Offset) {
		case amd.SpaceSh, amd.SpaceContext, amd.SpaceUconfig:
		default:
			continue
		}
		n := 0
		for t := RangeType(0); t < NumRangeTypes; t++ {
			for _, r := range Ranges(level, family, t) {
				if r.Contains(reg.Offset) {
					n++
				}
			}
		}
		switch {
		case n == 0:
			missing = append(missing, reg.Offset)
		case n > 1:
			duplicated = append(duplicated, reg.Offset)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	sort.Slice(duplicated, func(i, j int) bool { return duplicated[i] < duplicated[j] })
	return missing, duplicated
}

// WriteNonShadowed lists the catalog registers that are not shadowed, one
// "NAME (0xoffset)" per line.
func WriteNonShadowed(w io.Writer, cat Enumerator, level amd.GfxLevel, family amd.Family) error {
	missing, _ := CheckCoverage(cat, level, family)
	if len(missing) == 0 {
		return nil
	}
	names := make(map[uint32]string)
	for _, reg := range cat.Registers(level, family) {
		names[reg.Offset] = reg.Name
	}
	if _, err := fmt.Fprintf(w, "%d registers are not shadowed on %s:\n", len(missing), level); err != nil {
		return err
	}
	for _, off := range missing {
		if _, err := fmt.Fprintf(w, "    %s (0x%05x)\n", names[off], off); err != nil {
			return err
		}
	}
	return nil
}
