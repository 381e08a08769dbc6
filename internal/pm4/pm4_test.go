package pm4

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
)

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want Header
	}{
		{
			name: "SET_CONTEXT_REG two payload dwords",
			word: 0xc0016900,
			want: Header{Type: Type3, Count: 2, Opcode: OpSetContextReg},
		},
		{
			name: "predicated draw",
			word: 0xc0012d01,
			want: Header{Type: Type3, Count: 2, Opcode: OpDrawIndexAuto, Predicate: true},
		},
		{
			name: "compute shader type and reset filter cam",
			word: 0xc003b906,
			want: Header{Type: Type3, Count: 4, Opcode: OpSetContextRegPairsPacked, ShaderType: 1, ResetFilterCam: true},
		},
		{
			name: "type 2 nop",
			word: Type2Nop,
			want: Header{Type: Type2, Count: 1},
		},
		{
			name: "nop pad",
			word: NopPad,
			want: Header{Type: Type3, Count: 0x4000, Opcode: OpNop},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeHeader(tc.word)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DecodeHeader(0x%08x) mismatch (-want +got):\n%s", tc.word, diff)
			}
		})
	}
}

func TestEncodeHeaderRoundTrip(t *testing.T) {
	headers := []Header{
		{Type: Type3, Count: 1, Opcode: OpNop},
		{Type: Type3, Count: 2, Opcode: OpSetContextReg},
		{Type: Type3, Count: 0x4000, Opcode: OpSetShReg},
		{Type: Type3, Count: 7, Opcode: OpAcquireMem, Predicate: true},
		{Type: Type3, Count: 5, Opcode: OpSetShRegPairsPacked, ResetFilterCam: true},
		{Type: Type3, Count: 3, Opcode: OpDispatchDirect, ShaderType: 1},
	}

	for _, h := range headers {
		w, err := EncodeHeader(h)
		if err != nil {
			t.Fatalf("EncodeHeader(%v): %v", h, err)
		}
		if got := DecodeHeader(w); got != h {
			t.Errorf("round trip of %v gave %v", h, got)
		}
	}
}

func TestEncodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		h    Header
	}{
		{"opcode 255", Header{Count: 1, Opcode: OpInvalid}},
		{"no payload", Header{Count: 0, Opcode: OpNop}},
		{"count too large", Header{Count: 0x4001, Opcode: OpNop}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EncodeHeader(tc.h)
			if common.ErrCode(err) != amd.ErrInvalidPktHdr {
				t.Errorf("expected ErrInvalidPktHdr, got %v", err)
			}
		})
	}
}

func TestPkt3(t *testing.T) {
	if got := Pkt3(OpSetContextReg, 1, false); got != 0xc0016900 {
		t.Errorf("Pkt3 = 0x%08x", got)
	}
	if got := Pkt3(OpNop, 0x3fff, false); got != NopPad {
		t.Errorf("Pkt3 nop pad = 0x%08x", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value uint32
		bits  int
		want  string
	}{
		{0, 32, "0"},
		{9, 32, "9"},
		{10, 32, "10 (0x0000000a)"},
		{12, 4, "12 (0xc)"},
		{32768, 32, "32768 (0x00008000)"},
		{0x3f800000, 32, "1.0f (0x3f800000)"},
		{0xbf800000, 32, "-1.0f (0xbf800000)"},
		{0x3f000000, 32, "0.5f (0x3f000000)"},
		{0x40490fdb, 32, "0x40490fdb"},
		{0x47c35000, 32, "0x47c35000"},
		{0x7fc00000, 32, "0x7fc00000"},
		{0xffffffff, 32, "0xffffffff"},
		{0x40004000, 32, "0x40004000"},
	}

	for _, tc := range tests {
		if got := FormatValue(tc.value, tc.bits); got != tc.want {
			t.Errorf("FormatValue(0x%x, %d) = %q, want %q", tc.value, tc.bits, got, tc.want)
		}
	}
}

func TestOpcodeClassification(t *testing.T) {
	tests := []struct {
		op       Opcode
		draw     bool
		dispatch bool
		space    amd.RegSpace
	}{
		{OpDrawIndexAuto, true, false, amd.SpaceNone},
		{OpDrawIndexIndirectMulti, true, false, amd.SpaceNone},
		{OpDispatchDirect, false, true, amd.SpaceNone},
		{OpSetContextReg, false, false, amd.SpaceContext},
		{OpSetContextRegPairsPacked, false, false, amd.SpaceContext},
		{OpSetShRegPairsPackedN, false, false, amd.SpaceSh},
		{OpLoadUconfigReg, false, false, amd.SpaceUconfig},
		{OpSetConfigReg, false, false, amd.SpaceConfig},
	}

	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			if tc.op.IsDraw() != tc.draw {
				t.Errorf("IsDraw() = %v", tc.op.IsDraw())
			}
			if tc.op.IsDispatch() != tc.dispatch {
				t.Errorf("IsDispatch() = %v", tc.op.IsDispatch())
			}
			if SetRegSpace(tc.op) != tc.space {
				t.Errorf("SetRegSpace() = %v", SetRegSpace(tc.op))
			}
		})
	}

	if Opcode(0x01).String() != "UNKNOWN(0x01)" {
		t.Errorf("unknown opcode name %q", Opcode(0x01).String())
	}
	if OpSetShRegPairsPacked.PairsPackedToRegular() != OpSetShReg {
		t.Error("packed SH should map to SET_SH_REG")
	}
}

func TestPayloadFields(t *testing.T) {
	dw := EventWriteDw(EventVSPartialFlush, 4)
	if GetEventType(dw) != EventVSPartialFlush || GetEventIndex(dw) != 4 {
		t.Errorf("event dword 0x%x", dw)
	}
	if EventPSPartialFlush.String() != "PS_PARTIAL_FLUSH" {
		t.Errorf("event name %q", EventPSPartialFlush.String())
	}

	pws := AcquireMemPWSDw(PWSStageCPME, PWSCounterTS, 0)
	if GetPWSStage(pws) != PWSStageCPME {
		t.Errorf("stage %d", GetPWSStage(pws))
	}
	acquires := []struct {
		name    string
		level   amd.GfxLevel
		payload []uint32
		want    bool
	}{
		{"pws on gfx11", amd.Gfx11, []uint32{pws, 0xffffffff, 0x01ffffff, 0, 0, AcquireMemPWSEna, 0}, true},
		{"pws before gfx11", amd.Gfx103, []uint32{pws, 0xffffffff, 0x01ffffff, 0, 0, AcquireMemPWSEna, 0}, false},
		{"legacy on gfx11", amd.Gfx11, []uint32{0, 0xffffffff, 0x01ffffff, 0, 0, 0xa, 0}, false},
		{"short payload", amd.Gfx11, []uint32{pws, 0xffffffff}, false},
	}
	for _, tc := range acquires {
		if got := IsPWSAcquire(tc.level, tc.payload); got != tc.want {
			t.Errorf("%s: IsPWSAcquire = %v", tc.name, got)
		}
	}

	c := IBControl(0x40, true)
	if c&IBSizeMask != 0x40 || c&IBChain == 0 {
		t.Errorf("ib control 0x%x", c)
	}
}
