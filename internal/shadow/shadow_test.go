package shadow

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
	"pm4dbg/internal/ibparse"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/regs"
)

type chip struct {
	level  amd.GfxLevel
	family amd.Family
}

var chips = []chip{
	{amd.Gfx9, amd.Vega10},
	{amd.Gfx10, amd.Navi10},
	{amd.Gfx103, amd.Navi21},
	{amd.Gfx11, amd.Navi31},
}

func lookup(table []RegSeq, offset uint32) (uint32, bool) {
	for _, s := range table {
		if offset >= s.Offset && offset < s.End() {
			return s.Values[(offset-s.Offset)/4], true
		}
	}
	return 0, false
}

func tableValue(t *testing.T, table []RegSeq, offset uint32) uint32 {
	t.Helper()
	v, ok := lookup(table, offset)
	if !ok {
		t.Fatalf("0x%05x is not in the table", offset)
	}
	return v
}

type packet struct {
	op      pm4.Opcode
	payload []uint32
}

func split(t *testing.T, words []uint32) []packet {
	t.Helper()
	var out []packet
	for cur := 0; cur < len(words); {
		h := pm4.DecodeHeader(words[cur])
		end := cur + h.Dwords()
		if h.Type != pm4.Type3 || end > len(words) {
			t.Fatalf("bad packet at dword %d: %s", cur, h)
		}
		out = append(out, packet{op: h.Opcode, payload: words[cur+1 : end]})
		cur = end
	}
	return out
}

func opcodes(pkts []packet) []pm4.Opcode {
	out := make([]pm4.Opcode, len(pkts))
	for i, p := range pkts {
		out[i] = p.op
	}
	return out
}

func TestClearStateTable(t *testing.T) {
	for _, c := range chips {
		t.Run(c.level.String(), func(t *testing.T) {
			table, err := ClearStateTable(c.level)
			if err != nil {
				t.Fatal(err)
			}
			ranges := Ranges(c.level, c.family, RangeContext)
			for _, s := range table {
				inside := false
				for _, r := range ranges {
					if s.Offset >= r.Offset && s.End() <= r.End() {
						inside = true
					}
				}
				if !inside {
					t.Errorf("run 0x%05x..0x%05x is not inside a shadowed context range", s.Offset, s.End())
				}
			}

			checks := map[uint32]uint32{
				0x28034: 0x40004000,
				0x28204: 0x80000000,
				0x28230: 0xaa99aaaa,
				0x282d4: 0x3f800000,
				0x2834c: 0x3f800000,
				0x286d8: 0x2,
				0x28808: 0xcc0010,
				0x28814: 0x4,
				0x28a54: 0x100,
				0x28a5c: 0x2,
				0x28be4: 0x5,
				0x28bf4: 0x3f800000,
				0x28c38: 0xffffffff,
				0x28c44: 0x3,
				0x28c60: 0,
			}
			for off, want := range checks {
				if got := tableValue(t, table, off); got != want {
					t.Errorf("0x%05x = 0x%08x, want 0x%08x", off, got, want)
				}
			}
		})
	}

	t.Run("vrs override only on gfx10.3+", func(t *testing.T) {
		has := func(level amd.GfxLevel) bool {
			table, _ := ClearStateTable(level)
			for _, s := range table {
				if s.Offset == 0x283d0 {
					return true
				}
			}
			return false
		}
		if has(amd.Gfx10) || !has(amd.Gfx103) || !has(amd.Gfx115) {
			t.Error("PA_SC_VRS_OVERRIDE_CNTL run on the wrong generations")
		}
	})

	t.Run("gfx8 has no table", func(t *testing.T) {
		if _, err := ClearStateTable(amd.Gfx8); common.ErrCode(err) != amd.ErrUnsupportedGfx {
			t.Errorf("got %v", err)
		}
	})
}

func TestClearStateGenerations(t *testing.T) {
	count := func(level amd.GfxLevel) int {
		table, err := ClearStateTable(level)
		if err != nil {
			t.Fatal(err)
		}
		n := 0
		for _, s := range table {
			n += len(s.Values)
		}
		return n
	}
	got := map[amd.GfxLevel]int{}
	for _, l := range []amd.GfxLevel{amd.Gfx9, amd.Gfx10, amd.Gfx103, amd.Gfx11, amd.Gfx115} {
		got[l] = count(l)
	}
	want := map[amd.GfxLevel]int{amd.Gfx9: 596, amd.Gfx10: 641, amd.Gfx103: 655, amd.Gfx11: 656, amd.Gfx115: 656}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("registers per table (-want +got):\n%s", diff)
	}

	tests := []struct {
		name   string
		level  amd.GfxLevel
		offset uint32
		want   uint32
		loaded bool
	}{
		{"gfx9 mrt epitch", amd.Gfx9, 0x287a0, 0, true},
		{"gfx10 has no mrt epitch", amd.Gfx10, 0x287a0, 0, false},
		{"gfx11 sx downconvert control", amd.Gfx11, 0x287a0, 0, true},
		{"gfx9 has no tile steering", amd.Gfx9, 0x2835c, 0, false},
		{"gfx10 tile steering", amd.Gfx10, 0x2835c, 0, true},
		{"gfx9 color control in old block", amd.Gfx9, 0x28808, 0xcc0010, true},
		{"gfx10 max output per subgroup", amd.Gfx10, 0x287fc, 0, true},
		{"gfx9 has no max output per subgroup", amd.Gfx9, 0x287fc, 0, false},
		{"gfx10 has no vrs cntl", amd.Gfx10, 0x28848, 0, false},
		{"gfx10.3 vrs cntl", amd.Gfx103, 0x28848, 0, true},
		{"gfx9 strmout config", amd.Gfx9, 0x28b94, 0, true},
		{"gfx10 skips strmout config", amd.Gfx10, 0x28b94, 0, false},
		{"gfx10.3 vertex reuse", amd.Gfx103, 0x28c58, 0x1e, true},
		{"gfx11 vertex reuse slot", amd.Gfx11, 0x28c58, 0, true},
		{"gfx9 has no base ext block", amd.Gfx9, 0x28e40, 0, false},
		{"gfx10 base ext block", amd.Gfx10, 0x28efc, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, _ := ClearStateTable(tc.level)
			v, ok := lookup(table, tc.offset)
			if ok != tc.loaded || v != tc.want {
				t.Errorf("0x%05x = 0x%x loaded %v, want 0x%x loaded %v", tc.offset, v, ok, tc.want, tc.loaded)
			}
		})
	}
}

func TestEmulateClearState(t *testing.T) {
	info := amd.NewDeviceInfo(amd.Navi21)
	info.PaScTileSteeringOverride = 0x123
	extra := []RegPair{{0x28000, 0x7}}

	var last []uint32
	var offsets []uint32
	err := EmulateClearState(info, extra, func(offset uint32, values []uint32) error {
		offsets = append(offsets, offset)
		last = values
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	table, _ := ClearStateTable(amd.Gfx103)
	if len(offsets) != len(table)+2 {
		t.Fatalf("%d emits, want %d", len(offsets), len(table)+2)
	}
	if offsets[len(table)] != 0x2835c {
		t.Errorf("tile steering override emitted at 0x%05x", offsets[len(table)])
	}
	if offsets[len(offsets)-1] != 0x28000 || last[0] != 0x7 {
		t.Errorf("extra pair emitted as 0x%05x = %v", offsets[len(offsets)-1], last)
	}

	// GFX9 has no tile steering override.
	n := 0
	err = EmulateClearState(amd.NewDeviceInfo(amd.Vega10), nil, func(uint32, []uint32) error {
		n++
		return nil
	})
	table9, _ := ClearStateTable(amd.Gfx9)
	if err != nil || n != len(table9) {
		t.Errorf("gfx9: %d emits, err %v", n, err)
	}
}

func TestRanges(t *testing.T) {
	for _, c := range append([]chip{{amd.Gfx9, amd.Raven2}}, chips...) {
		for rt := RangeType(0); rt < NumRangeTypes; rt++ {
			t.Run(c.family.String()+"/"+rt.String(), func(t *testing.T) {
				ranges := Ranges(c.level, c.family, rt)
				if len(ranges) == 0 {
					t.Fatal("no ranges")
				}
				for i, r := range ranges {
					if amd.SpaceOf(r.Offset) != rt.Space() || amd.SpaceOf(r.End()-4) != rt.Space() {
						t.Errorf("range 0x%05x+0x%x outside %s", r.Offset, r.Size, rt.Space())
					}
					if r.Size == 0 || r.Size%4 != 0 {
						t.Errorf("range 0x%05x size 0x%x", r.Offset, r.Size)
					}
					if i > 0 && ranges[i-1].End() > r.Offset {
						t.Errorf("range 0x%05x overlaps or is out of order", r.Offset)
					}
				}
			})
		}
	}

	if Ranges(amd.Gfx8, amd.Tonga, RangeContext) != nil {
		t.Error("gfx8 has shadow ranges")
	}
}

func TestRangesPerGeneration(t *testing.T) {
	tests := []struct {
		name string
		a, b chip
		rt   RangeType
		same bool
	}{
		{"gfx9 and gfx10 context differ", chip{amd.Gfx9, amd.Vega10}, chip{amd.Gfx10, amd.Navi10}, RangeContext, false},
		{"gfx10 and gfx10.3 context differ", chip{amd.Gfx10, amd.Navi10}, chip{amd.Gfx103, amd.Navi21}, RangeContext, false},
		{"gfx10 and gfx10.3 share sh", chip{amd.Gfx10, amd.Navi10}, chip{amd.Gfx103, amd.Navi21}, RangeSh, true},
		{"gfx10.3 and gfx11 sh differ", chip{amd.Gfx103, amd.Navi21}, chip{amd.Gfx11, amd.Navi31}, RangeSh, false},
		{"gfx10.3 and gfx11 uconfig differ", chip{amd.Gfx103, amd.Navi21}, chip{amd.Gfx11, amd.Navi31}, RangeUconfig, false},
		{"gfx11 and gfx11.5 match", chip{amd.Gfx11, amd.Navi31}, chip{amd.Gfx115, amd.Gfx1150}, RangeContext, true},
		{"raven2 sh differs from vega10", chip{amd.Gfx9, amd.Vega10}, chip{amd.Gfx9, amd.Raven2}, RangeSh, false},
		{"raven2 cs sh differs from vega10", chip{amd.Gfx9, amd.Vega10}, chip{amd.Gfx9, amd.Raven2}, RangeCSSh, false},
		{"raven2 context matches vega10", chip{amd.Gfx9, amd.Vega10}, chip{amd.Gfx9, amd.Raven2}, RangeContext, true},
		{"renoir matches raven2", chip{amd.Gfx9, amd.Renoir}, chip{amd.Gfx9, amd.Raven2}, RangeSh, true},
		{"raven matches vega10", chip{amd.Gfx9, amd.Raven}, chip{amd.Gfx9, amd.Vega10}, RangeSh, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diff := cmp.Diff(Ranges(tc.a.level, tc.a.family, tc.rt), Ranges(tc.b.level, tc.b.family, tc.rt))
			if (diff == "") != tc.same {
				t.Errorf("same = %v, want %v:\n%s", diff == "", tc.same, diff)
			}
		})
	}
}

func TestCoverage(t *testing.T) {
	// Dispatch dimensions, per-SE CU masks, draw index state and the GRBM
	// selector are written per submission and never shadowed.
	var (
		compute = []uint32{0xb800, 0xb804, 0xb808, 0xb80c, 0xb858, 0xb85c}
		uconfig = []uint32{0x30800, 0x3090c, 0x30930, 0x30a00, 0x30a04, 0x31100}
		vgtDMA  = []uint32{0x287e4, 0x287e8, 0x287f0}
	)
	join := func(parts ...[]uint32) []uint32 {
		var out []uint32
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}

	tests := []struct {
		chip    chip
		missing []uint32
	}{
		{chip{amd.Gfx9, amd.Vega10}, join(compute, uconfig)},
		{chip{amd.Gfx9, amd.Raven2}, join(compute, uconfig)},
		{chip{amd.Gfx10, amd.Navi10}, join(compute, vgtDMA, uconfig)},
		{chip{amd.Gfx103, amd.Navi21}, join(compute, vgtDMA, uconfig)},
		{chip{amd.Gfx11, amd.Navi31}, join(compute, vgtDMA, uconfig)},
	}
	for _, tc := range tests {
		t.Run(tc.chip.family.String(), func(t *testing.T) {
			missing, dup := CheckCoverage(regs.Builtin(), tc.chip.level, tc.chip.family)
			if diff := cmp.Diff(tc.missing, missing); diff != "" {
				t.Errorf("registers not shadowed (-want +got):\n%s", diff)
			}
			if len(dup) != 0 {
				t.Errorf("registers shadowed twice: %x", dup)
			}
		})
	}
}

type fakeCatalog []*regs.Register

func (f fakeCatalog) Registers(amd.GfxLevel, amd.Family) []*regs.Register { return f }

func TestCoverageGaps(t *testing.T) {
	cat := fakeCatalog{
		{Name: "DB_RENDER_CONTROL", Offset: 0x28000},
		{Name: "GAP_B", Offset: 0x28094},
		{Name: "GAP_A", Offset: 0x28090},
		{Name: "GRBM_STATUS", Offset: 0x8010},
		{Name: "SPI_SHADER_PGM_RSRC4_PS", Offset: 0xb004},
	}
	missing, dup := CheckCoverage(cat, amd.Gfx9, amd.Vega10)
	if diff := cmp.Diff([]uint32{0xb004, 0x28090, 0x28094}, missing); diff != "" {
		t.Errorf("missing (-want +got):\n%s", diff)
	}
	if len(dup) != 0 {
		t.Errorf("duplicated %x", dup)
	}

	var buf bytes.Buffer
	if err := WriteNonShadowed(&buf, cat, amd.Gfx10, amd.Navi10); err != nil {
		t.Fatal(err)
	}
	want := "2 registers are not shadowed on GFX10:\n" +
		"    GAP_A (0x28090)\n" +
		"    GAP_B (0x28094)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("report (-want +got):\n%s", diff)
	}
}

func TestIsShadowed(t *testing.T) {
	tests := []struct {
		level  amd.GfxLevel
		family amd.Family
		offset uint32
		want   bool
	}{
		{amd.Gfx10, amd.Navi10, 0x28000, true},
		{amd.Gfx10, amd.Navi10, 0x2835c, true},
		{amd.Gfx9, amd.Vega10, 0x2835c, false},
		{amd.Gfx9, amd.Vega10, 0x287f0, true},
		{amd.Gfx10, amd.Navi10, 0x287f0, false},
		{amd.Gfx10, amd.Navi10, 0x3096c, true},
		{amd.Gfx9, amd.Vega10, 0x3096c, false},
		{amd.Gfx103, amd.Navi21, 0x30904, true},
		{amd.Gfx11, amd.Navi31, 0x30904, false},
		{amd.Gfx103, amd.Navi21, 0xb120, true},
		{amd.Gfx11, amd.Navi31, 0xb120, false},
		{amd.Gfx11, amd.Navi31, 0xb810, true},
		{amd.Gfx11, amd.Navi31, 0xb804, false},
		{amd.Gfx9, amd.Vega10, 0xb018, false},
		{amd.Gfx9, amd.Raven2, 0xb018, true},
		{amd.Gfx9, amd.Renoir, 0xb8a8, true},
		{amd.Gfx11, amd.Navi31, 0x8010, false},
		{amd.Gfx8, amd.Tonga, 0x28000, false},
	}
	for _, tc := range tests {
		if got := IsShadowed(tc.level, tc.family, tc.offset); got != tc.want {
			t.Errorf("IsShadowed(%s, %s, 0x%05x) = %v", tc.level, tc.family, tc.offset, got)
		}
	}
}

func TestBuildPreamble(t *testing.T) {
	const va = 0x100000

	loads := []pm4.Opcode{pm4.OpLoadUconfigReg, pm4.OpLoadContextReg, pm4.OpLoadShReg, pm4.OpLoadShReg}
	tests := []struct {
		name  string
		info  func() amd.DeviceInfo
		want  []pm4.Opcode
		cache pm4.Opcode
	}{
		{
			name: "gfx9",
			info: func() amd.DeviceInfo { return amd.NewDeviceInfo(amd.Vega10) },
			want: append([]pm4.Opcode{pm4.OpEventWrite, pm4.OpEventWrite, pm4.OpEventWrite,
				pm4.OpAcquireMem, pm4.OpPFPSyncME, pm4.OpContextControl}, loads...),
		},
		{
			name: "gfx10",
			info: func() amd.DeviceInfo { return amd.NewDeviceInfo(amd.Navi10) },
			want: append([]pm4.Opcode{pm4.OpEventWrite, pm4.OpEventWrite, pm4.OpEventWrite,
				pm4.OpAcquireMem, pm4.OpPFPSyncME, pm4.OpContextControl}, loads...),
		},
		{
			name: "gfx11",
			info: func() amd.DeviceInfo { return amd.NewDeviceInfo(amd.Navi31) },
			want: append([]pm4.Opcode{pm4.OpEventWrite, pm4.OpEventWrite, pm4.OpEventWrite,
				pm4.OpReleaseMem, pm4.OpAcquireMem, pm4.OpContextControl}, loads...),
		},
		{
			name: "firmware shadowing without dpbb",
			info: func() amd.DeviceInfo {
				info := amd.NewDeviceInfo(amd.Navi31)
				info.HasFWBasedShadowing = true
				info.DPBBAllowed = false
				return info
			},
			want: []pm4.Opcode{pm4.OpEventWrite, pm4.OpEventWrite,
				pm4.OpReleaseMem, pm4.OpAcquireMem, pm4.OpContextControl},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info()
			preamble, _, err := InitShadowing(info, va)
			if err != nil {
				t.Fatal(err)
			}
			pkts := split(t, preamble)
			if diff := cmp.Diff(tc.want, opcodes(pkts)); diff != "" {
				t.Fatalf("packets (-want +got):\n%s", diff)
			}

			if _, err := ibparse.ParseString(ibparse.Config{GfxLevel: info.GfxLevel, Family: info.Family}, preamble); err != nil {
				t.Errorf("preamble does not disassemble: %v", err)
			}

			for _, p := range pkts {
				switch p.op {
				case pm4.OpAcquireMem:
					if info.GfxLevel >= amd.Gfx11 && !pm4.IsPWSAcquire(info.GfxLevel, p.payload) {
						t.Error("gfx11 ACQUIRE_MEM without PWS")
					}
				case pm4.OpLoadContextReg:
					addr := uint64(p.payload[0]) | uint64(p.payload[1])<<32
					if addr != va+uint64(amd.ShadowedContextRegOffset) {
						t.Errorf("LOAD_CONTEXT_REG address 0x%x", addr)
					}
					ranges := Ranges(info.GfxLevel, info.Family, RangeContext)
					if len(p.payload) != 2+2*len(ranges) {
						t.Fatalf("LOAD_CONTEXT_REG with %d payload dwords", len(p.payload))
					}
					if p.payload[2] != 0 || p.payload[3] != 34 {
						t.Errorf("first context range %d+%d", p.payload[2], p.payload[3])
					}
				case pm4.OpLoadUconfigReg:
					addr := uint64(p.payload[0]) | uint64(p.payload[1])<<32
					if addr != va+uint64(amd.ShadowedUconfigRegOffset) {
						t.Errorf("LOAD_UCONFIG_REG address 0x%x", addr)
					}
				}
			}
		})
	}
}

func TestBuildPreambleErrors(t *testing.T) {
	if _, _, err := InitShadowing(amd.NewDeviceInfo(amd.Navi10), 0x1080); common.ErrCode(err) != amd.ErrInvalidParamVal {
		t.Errorf("unaligned shadow buffer: %v", err)
	}
	if _, _, err := InitShadowing(amd.NewDeviceInfo(amd.Tonga), 0x1000); common.ErrCode(err) != amd.ErrUnsupportedGfx {
		t.Errorf("gfx8: %v", err)
	}
}

func TestInitShadowingClearState(t *testing.T) {
	info := amd.NewDeviceInfo(amd.Navi10)
	info.PaScTileSteeringOverride = 0x55
	_, cs, err := InitShadowing(info, 0x100000)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[uint32]uint32)
	for _, p := range split(t, cs) {
		if p.op != pm4.OpSetContextReg {
			t.Fatalf("clear state IB carries %s", p.op)
		}
		base := amd.SpaceContext.Base() + p.payload[0]*4
		for i, v := range p.payload[1:] {
			got[base+uint32(i)*4] = v
		}
	}

	table, _ := ClearStateTable(amd.Gfx10)
	want := make(map[uint32]uint32)
	for _, s := range table {
		for i, v := range s.Values {
			want[s.Offset+uint32(i)*4] = v
		}
	}
	want[0x2835c] = 0x55
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clear state registers (-want +got):\n%s", diff)
	}
}
