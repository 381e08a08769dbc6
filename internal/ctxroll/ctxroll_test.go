package ctxroll

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/shadow"
)

func pkt(op pm4.Opcode, payload ...uint32) []uint32 {
	return append([]uint32{pm4.Pkt3(op, len(payload)-1, false)}, payload...)
}

func stream(pkts ...[]uint32) []uint32 {
	var out []uint32
	for _, p := range pkts {
		out = append(out, p...)
	}
	return out
}

func setCtx(rel uint32, values ...uint32) []uint32 {
	return pkt(pm4.OpSetContextReg, append([]uint32{rel}, values...)...)
}

var draw = pkt(pm4.OpDrawIndexAuto, 3, 2)

func analyzer(level amd.GfxLevel, family amd.Family) *Analyzer {
	return NewAnalyzer(Config{GfxLevel: level, Family: family})
}

func describeAll(a *Analyzer) []string {
	var out []string
	for i := range a.Rolls() {
		out = append(out, a.Describe(&a.Rolls()[i].Deltas))
	}
	return out
}

func TestAnalyze(t *testing.T) {
	pws := pm4.AcquireMemPWSDw(pm4.PWSStageCPME, pm4.PWSCounterTS, 0)

	tests := []struct {
		name   string
		level  amd.GfxLevel
		family amd.Family
		words  []uint32
		want   []string
	}{
		{
			name:  "write after draw rolls",
			words: stream(setCtx(0, 5), draw, setCtx(0, 9)),
			want:  []string{"DB_RENDER_CONTROL(0xc)"},
		},
		{
			name:  "writes without a draw stay in one context",
			words: stream(setCtx(0, 5), setCtx(1, 1), setCtx(0, 9)),
		},
		{
			name:  "unchanged register is listed with an empty mask",
			words: stream(setCtx(0, 1), draw, setCtx(0, 2), draw, setCtx(0, 2)),
			want:  []string{"DB_RENDER_CONTROL(0x3)", "DB_RENDER_CONTROL(0x0)"},
		},
		{
			name: "pairs and packed pairs",
			words: stream(
				pkt(pm4.OpSetContextRegPairs, 0, 1, 1, 7),
				draw,
				pkt(pm4.OpSetContextRegPairsPacked, 2, 0|1<<16, 2, 8),
			),
			want: []string{"DB_RENDER_CONTROL(0x3) DB_COUNT_CONTROL(0xf)"},
		},
		{
			name:  "dispatch marks the context busy",
			words: stream(setCtx(0, 1), pkt(pm4.OpDispatchDirect, 1, 1, 1, 1), setCtx(0, 3)),
			want:  []string{"DB_RENDER_CONTROL(0x2)"},
		},
		{
			name:  "unknown register prints as hex",
			words: stream(setCtx(0x3ff, 1), draw, setCtx(0x3ff, 2)),
			want:  []string{"0x28ffc(0x3)"},
		},
		{
			name:  "wait idles and drops the open context",
			words: stream(setCtx(0, 1), draw, setCtx(0, 2), draw,
				pkt(pm4.OpWaitRegMem, 0, 0, 0, 0, 0, 0),
				setCtx(0, 3), draw, setCtx(0, 4)),
			want: []string{"DB_RENDER_CONTROL(0x7)"},
		},
		{
			name:  "ps partial flush idles",
			words: stream(setCtx(0, 1), draw, setCtx(0, 2), draw,
				pkt(pm4.OpEventWrite, pm4.EventWriteDw(pm4.EventPSPartialFlush, 4)),
				setCtx(0, 3)),
		},
		{
			name:  "other events do not idle",
			words: stream(setCtx(0, 1), draw,
				pkt(pm4.OpEventWrite, pm4.EventWriteDw(pm4.EventVGTFlush, 0)),
				setCtx(0, 2)),
			want: []string{"DB_RENDER_CONTROL(0x3)"},
		},
		{
			name:  "acquire mem rolls and annotates",
			words: stream(setCtx(0, 1), draw, pkt(pm4.OpAcquireMem, 0, 0xffffffff, 0, 0, 0, 0xa, 0), setCtx(0, 2)),
			want:  []string{"ACQUIRE_MEM DB_RENDER_CONTROL(0x3)"},
		},
		{
			name:   "pws acquire mem idles on gfx11",
			level:  amd.Gfx11,
			family: amd.Navi31,
			words:  stream(setCtx(0, 1), draw, setCtx(0, 2), draw,
				pkt(pm4.OpAcquireMem, pws, 0xffffffff, 0x01ffffff, 0, 0, pm4.AcquireMemPWSEna, 0),
				setCtx(0, 3)),
		},
		{
			name:   "legacy acquire mem still rolls on gfx11",
			level:  amd.Gfx11,
			family: amd.Navi31,
			words:  stream(setCtx(0, 1), draw, pkt(pm4.OpAcquireMem, 0, 0xffffffff, 0x01ffffff, 0, 0, 0xa, 0), setCtx(0, 2)),
			want:   []string{"ACQUIRE_MEM DB_RENDER_CONTROL(0x3)"},
		},
		{
			name:   "pws stage word alone does not select pws on gfx11",
			level:  amd.Gfx11,
			family: amd.Navi31,
			words:  stream(setCtx(0, 1), draw, pkt(pm4.OpAcquireMem, pws, 0xffffffff, 0x01ffffff, 0, 0, 0xa, 0), setCtx(0, 2)),
			want:   []string{"ACQUIRE_MEM DB_RENDER_CONTROL(0x3)"},
		},
		{
			name:  "pws layout means nothing before gfx11",
			words: stream(setCtx(0, 1), draw, pkt(pm4.OpAcquireMem, pws, 0xffffffff, 0x01ffffff, 0, 0, pm4.AcquireMemPWSEna, 0), setCtx(0, 2)),
			want:  []string{"ACQUIRE_MEM DB_RENDER_CONTROL(0x3)"},
		},
		{
			name:  "indirect buffer ends the analysis",
			words: stream(setCtx(0, 1), draw, pkt(pm4.OpIndirectBuffer, 0x1000, 0, pm4.IBControl(4, false)), setCtx(0, 2)),
		},
		{
			name:  "nops are skipped",
			words: stream(setCtx(0, 1), draw, []uint32{pm4.Type2Nop, pm4.NopPad}, pkt(pm4.OpNop, 0), setCtx(0, 2)),
			want:  []string{"DB_RENDER_CONTROL(0x3)"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.level == amd.GfxUnknown {
				tc.level, tc.family = amd.Gfx10, amd.Navi10
			}
			a := analyzer(tc.level, tc.family)
			if err := a.Analyze(tc.words); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, describeAll(a)); diff != "" {
				t.Errorf("rolls (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteRolls(t *testing.T) {
	a := analyzer(amd.Gfx10, amd.Navi10)
	if err := a.Analyze(stream(setCtx(0, 5), draw, setCtx(0, 9))); err != nil {
		t.Fatal(err)
	}
	rolls := a.Rolls()
	if len(rolls) != 1 || rolls[0].ChangedMasks[0] != 0xc || rolls[0].NumWritten() != 1 {
		t.Fatalf("rolls %+v", rolls)
	}

	var buf bytes.Buffer
	if err := a.WriteRolls(&buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("roll 0 @6: DB_RENDER_CONTROL(0xc)\n", buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestDeterministic(t *testing.T) {
	words := stream(setCtx(0, 1, 2, 3), draw, setCtx(1, 5), draw, setCtx(0, 7), draw, setCtx(2, 9))

	a := analyzer(amd.Gfx103, amd.Navi21)
	if err := a.Analyze(words); err != nil {
		t.Fatal(err)
	}
	first := append([]Roll(nil), a.Rolls()...)

	b := analyzer(amd.Gfx103, amd.Navi21)
	if err := b.Analyze(words); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, b.Rolls()); diff != "" {
		t.Errorf("second analyzer differs (-first +second):\n%s", diff)
	}

	a.Reset()
	if err := a.Analyze(words); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, a.Rolls()); diff != "" {
		t.Errorf("after Reset (-first +second):\n%s", diff)
	}
}

func TestSummary(t *testing.T) {
	words := stream(
		setCtx(0, 1), draw,
		setCtx(0, 2), draw,
		setCtx(0, 1), draw,
		setCtx(0, 2), draw,
		setCtx(0, 1), setCtx(1, 7),
	)
	a := analyzer(amd.Gfx10, amd.Navi10)
	if err := a.Analyze(words); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := a.WriteSummary(&buf); err != nil {
		t.Fatal(err)
	}
	want := "4 context rolls, 2 unique\n" +
		"     3  DB_RENDER_CONTROL(0x3)\n" +
		"     1  DB_RENDER_CONTROL(0x3) DB_COUNT_CONTROL(0x7)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("summary (-want +got):\n%s", diff)
	}
}

func TestClearState(t *testing.T) {
	a := analyzer(amd.Gfx10, amd.Navi10)
	words := stream(setCtx(0, 1), draw, pkt(pm4.OpClearState, 0))
	if err := a.Analyze(words); err != nil {
		t.Fatal(err)
	}
	rolls := a.Rolls()
	if len(rolls) != 1 {
		t.Fatalf("%d rolls, want 1", len(rolls))
	}

	table, err := shadow.ClearStateTable(amd.Gfx10)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, s := range table {
		n += len(s.Values)
	}
	d := rolls[0].Deltas
	if d.NumWritten() != n {
		t.Errorf("%d registers written, table has %d", d.NumWritten(), n)
	}
	if d.ChangedMasks[0] != 1 {
		t.Errorf("DB_RENDER_CONTROL mask 0x%x", d.ChangedMasks[0])
	}
	if d.ChangedMasks[0x34/4] != 0x40004000 {
		t.Errorf("PA_SC_SCREEN_SCISSOR_BR mask 0x%x", d.ChangedMasks[0x34/4])
	}
	if regs := a.Registers(); regs.Regs[0] != 0 || regs.Regs[0x34/4] != 0x40004000 {
		t.Errorf("register file not reset to defaults")
	}

	// No table before GFX9: logged, not fatal.
	old := analyzer(amd.Gfx8, amd.Tonga)
	if err := old.Analyze(stream(pkt(pm4.OpClearState, 0))); err != nil {
		t.Errorf("gfx8 CLEAR_STATE: %v", err)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		code  amd.Err
	}{
		{"context reg rmw", pkt(pm4.OpContextRegRMW, 0, 0xff, 1), amd.ErrUnsupportedPkt},
		{"indirect buffer si", pkt(pm4.OpIndirectBufferSI, 0, 0, 4), amd.ErrUnsupportedPkt},
		{"surface sync", pkt(pm4.OpSurfaceSync, 0, 0, 0, 0xa), amd.ErrUnsupportedPkt},
		{"type 0 header", []uint32{0x00001234, 0}, amd.ErrInvalidPktHdr},
		{"overrun", setCtx(0, 1, 2)[:3], amd.ErrIBOverrun},
		{"register file overflow", setCtx(0x3ff, 1, 2), amd.ErrRegFileOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := analyzer(amd.Gfx10, amd.Navi10).Analyze(tc.words)
			var e *common.Error
			if !errors.As(err, &e) {
				t.Fatalf("error %v is not a *common.Error", err)
			}
			if e.Code != tc.code || !e.Fatal() {
				t.Errorf("got %v, want fatal %v", e, tc.code)
			}
		})
	}
}
