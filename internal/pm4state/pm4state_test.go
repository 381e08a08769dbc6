package pm4state

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/regs"
)

type write struct{ offset, value uint32 }

// replay decodes a builder stream into the final register values and checks
// that every packet header matches its payload.
func replay(t *testing.T, words []uint32) map[uint32]uint32 {
	t.Helper()
	out := make(map[uint32]uint32)
	for cur := 0; cur < len(words); {
		h := pm4.DecodeHeader(words[cur])
		if h.Type != pm4.Type3 {
			t.Fatalf("dword %d: type %d header 0x%08x", cur, h.Type, words[cur])
		}
		end := cur + h.Dwords()
		if end > len(words) {
			t.Fatalf("dword %d: %s overruns the stream", cur, h.Opcode)
		}
		payload := words[cur+1 : end]
		space := pm4.SetRegSpace(h.Opcode)
		switch {
		case h.Opcode.IsPairsPacked():
			if !h.ResetFilterCam {
				t.Errorf("dword %d: packed header without reset_filter_cam", cur)
			}
			if int(payload[0])*3 != (len(payload)-1)*2 {
				t.Errorf("dword %d: register count %d for %d payload dwords", cur, payload[0], len(payload))
			}
			for i := 1; i+2 < len(payload); i += 3 {
				out[space.Base()+(payload[i]&0xffff)*4] = payload[i+1]
				out[space.Base()+(payload[i]>>16)*4] = payload[i+2]
			}
		case space != amd.SpaceNone:
			base := space.Base() + (payload[0]&0xffff)*4
			for i, v := range payload[1:] {
				out[base+uint32(i)*4] = v
			}
		}
		cur = end
	}
	return out
}

func build(t *testing.T, info amd.DeviceInfo, writes []write) *Builder {
	t.Helper()
	b := NewBuilder(info, nil)
	for _, w := range writes {
		if err := b.SetReg(w.offset, w.value); err != nil {
			t.Fatalf("SetReg(0x%05x): %v", w.offset, err)
		}
	}
	return b
}

func expect(writes []write) map[uint32]uint32 {
	out := make(map[uint32]uint32)
	for _, w := range writes {
		out[w.offset] = w.value
	}
	return out
}

func packedHdr(op pm4.Opcode, payload int) uint32 {
	return pm4.Pkt3(op, payload-1, false) | pm4.ResetFilterCam
}

func TestSetRegEncoding(t *testing.T) {
	navi10 := amd.NewDeviceInfo(amd.Navi10)
	navi31 := amd.NewDeviceInfo(amd.Navi31)

	tests := []struct {
		name   string
		info   amd.DeviceInfo
		writes []write
		want   []uint32
	}{
		{
			name:   "consecutive context registers merge",
			info:   navi10,
			writes: []write{{0x28000, 1}, {0x28004, 2}, {0x28010, 3}},
			want: []uint32{
				pm4.Pkt3(pm4.OpSetContextReg, 2, false), 0, 1, 2,
				pm4.Pkt3(pm4.OpSetContextReg, 1, false), 4, 3,
			},
		},
		{
			name:   "space change starts a packet",
			info:   navi10,
			writes: []write{{0xb804, 7}, {0x30934, 2}},
			want: []uint32{
				pm4.Pkt3(pm4.OpSetShReg, 1, false), 0x201, 7,
				pm4.Pkt3(pm4.OpSetUconfigReg, 1, false), 0x24d, 2,
			},
		},
		{
			name:   "packed pair",
			info:   navi31,
			writes: []write{{0x28000, 1}, {0x28010, 3}},
			want:   []uint32{packedHdr(pm4.OpSetContextRegPairsPacked, 4), 2, 0 | 4<<16, 1, 3},
		},
		{
			name:   "odd count is padded with the first register",
			info:   navi31,
			writes: []write{{0x28000, 1}, {0x28010, 3}, {0x28020, 5}},
			want: []uint32{
				packedHdr(pm4.OpSetContextRegPairsPacked, 7), 4,
				0 | 4<<16, 1, 3,
				8 | 0<<16, 5, 1,
			},
		},
		{
			name:   "consecutive packed registers become plain",
			info:   navi31,
			writes: []write{{0xb830, 0x100}, {0xb834, 0x1}},
			want:   []uint32{pm4.Pkt3(pm4.OpSetShReg, 2, false), 0x20c, 0x100, 0x1},
		},
		{
			name:   "single packed register becomes plain",
			info:   navi31,
			writes: []write{{0x28000, 9}},
			want:   []uint32{pm4.Pkt3(pm4.OpSetContextReg, 1, false), 0, 9},
		},
		{
			name:   "config registers are never packed",
			info:   navi31,
			writes: []write{{0x8010, 1}, {0x8014, 2}},
			want:   []uint32{pm4.Pkt3(pm4.OpSetConfigReg, 2, false), 4, 1, 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := build(t, tc.info, tc.writes)
			got := b.Dwords()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("stream mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(expect(tc.writes), replay(t, got)); diff != "" {
				t.Errorf("replay mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPackedRepeatedRegister(t *testing.T) {
	writes := []write{{0x28000, 1}, {0x28010, 2}, {0x28000, 3}}
	b := build(t, amd.NewDeviceInfo(amd.Navi31), writes)
	got := b.Dwords()

	want := []uint32{
		packedHdr(pm4.OpSetContextRegPairsPacked, 4), 2, 0 | 4<<16, 1, 2,
		pm4.Pkt3(pm4.OpSetContextReg, 1, false), 0, 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
	if v := replay(t, got)[0x28000]; v != 3 {
		t.Errorf("DB_RENDER_CONTROL replays as %d, want 3", v)
	}
}

func TestPackedMatchesPlain(t *testing.T) {
	writes := []write{
		{0x28000, 0x11}, {0x28010, 0x22}, {0x28014, 0x33}, {0x28200, 0x44},
		{0xb020, 0x100}, {0xb028, 0x55}, {0xb02c, 0x66},
		{0x28204, 0x77}, {0x28204, 0x78}, {0x30934, 1},
	}
	packed := amd.NewDeviceInfo(amd.Navi31)
	plain := packed
	plain.HasSetContextPairsPacked = false
	plain.HasSetShPairsPacked = false

	a := build(t, packed, writes).Dwords()
	b := build(t, plain, writes).Dwords()
	if diff := cmp.Diff(replay(t, b), replay(t, a)); diff != "" {
		t.Errorf("packed replay differs from plain (-plain +packed):\n%s", diff)
	}
	if diff := cmp.Diff(expect(writes), replay(t, a)); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}
}

// randomWrites mixes random catalog registers with contiguous runs and
// rewrites of registers already in the sequence.
func randomWrites(rng *rand.Rand, offsets []uint32, known map[uint32]bool) []write {
	n := 1 + rng.IntN(40)
	out := make([]write, 0, n)
	for len(out) < n {
		switch k := rng.IntN(4); {
		case k == 0 && len(out) > 0:
			out = append(out, write{out[rng.IntN(len(out))].offset, rng.Uint32()})
		case k == 1 && len(out) > 0 && known[out[len(out)-1].offset+4]:
			out = append(out, write{out[len(out)-1].offset + 4, rng.Uint32()})
		default:
			out = append(out, write{offsets[rng.IntN(len(offsets))], rng.Uint32()})
		}
	}
	return out
}

func TestPackedMatchesPlainRandom(t *testing.T) {
	packed := amd.NewDeviceInfo(amd.Navi31)
	plain := packed
	plain.HasSetContextPairsPacked = false
	plain.HasSetShPairsPacked = false

	var offsets []uint32
	known := make(map[uint32]bool)
	for _, r := range regs.Builtin().Registers(packed.GfxLevel, packed.Family) {
		if amd.SpaceOf(r.Offset) != amd.SpaceNone {
			offsets = append(offsets, r.Offset)
			known[r.Offset] = true
		}
	}

	rng := rand.New(rand.NewPCG(0x5eed, 11))
	for i := 0; i < 2000; i++ {
		writes := randomWrites(rng, offsets, known)
		a := build(t, packed, writes).Dwords()
		b := build(t, plain, writes).Dwords()
		if diff := cmp.Diff(replay(t, b), replay(t, a)); diff != "" {
			t.Fatalf("sequence %d %x: packed replay differs from plain (-plain +packed):\n%s", i, writes, diff)
		}
		if diff := cmp.Diff(expect(writes), replay(t, a)); diff != "" {
			t.Fatalf("sequence %d %x: replay mismatch (-want +got):\n%s", i, writes, diff)
		}
	}
}

func TestSetRegErrors(t *testing.T) {
	tests := []struct {
		name   string
		offset uint32
		code   amd.Err
	}{
		{"outside every space", 0x1000, amd.ErrInvalidRegOffset},
		{"unaligned", 0x28002, amd.ErrInvalidRegOffset},
		{"unknown context register", 0x28ffc, amd.ErrUnknownRegister},
		{"gfx10 register on gfx9", 0xb004, amd.ErrUnknownRegister},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder(amd.NewDeviceInfo(amd.Vega10), nil)
			err := b.SetReg(tc.offset, 1)
			var e *common.Error
			if !errors.As(err, &e) {
				t.Fatalf("SetReg error %v is not a *common.Error", err)
			}
			if e.Code != tc.code || !e.Fatal() {
				t.Errorf("got code %v fatal %v, want %v fatal", e.Code, e.Fatal(), tc.code)
			}
			if b.NumDwords() != 0 {
				t.Errorf("failed write emitted %d dwords", b.NumDwords())
			}
		})
	}
}

func TestSetRegIdx3(t *testing.T) {
	b := NewBuilder(amd.NewDeviceInfo(amd.Navi10), nil)
	if err := b.SetRegIdx3(0xb004, 0x5); err != nil {
		t.Fatal(err)
	}
	if err := b.SetRegIdx3(0x30934, 0x2); err != nil {
		t.Fatal(err)
	}
	want := []uint32{
		pm4.Pkt3(pm4.OpSetShRegIndex, 1, false), pm4.SetRegDw(1, 3), 0x5,
		pm4.Pkt3(pm4.OpSetUconfigRegIndex, 1, false), pm4.SetRegDw(0x24d, 3), 0x2,
	}
	if diff := cmp.Diff(want, b.Dwords()); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestCmdAndSeq(t *testing.T) {
	b := NewBuilder(amd.NewDeviceInfo(amd.Navi10), nil)
	if err := b.SetReg(0x28000, 1); err != nil {
		t.Fatal(err)
	}
	b.Cmd(pm4.Pkt3(pm4.OpDrawIndexAuto, 1, false), 3, 2)
	if err := b.SetReg(0x28004, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.SetContextRegSeq(0x28ff8, []uint32{7, 8}); err != nil {
		t.Fatal(err)
	}
	if err := b.SetContextRegSeq(0x2fffc, []uint32{1, 2}); common.ErrCode(err) != amd.ErrInvalidRegOffset {
		t.Errorf("run past the context space: %v", err)
	}

	want := []uint32{
		pm4.Pkt3(pm4.OpSetContextReg, 1, false), 0, 1,
		pm4.Pkt3(pm4.OpDrawIndexAuto, 1, false), 3, 2,
		pm4.Pkt3(pm4.OpSetContextReg, 1, false), 1, 2,
		pm4.Pkt3(pm4.OpSetContextReg, 2, false), 0x3fe, 7, 8,
	}
	got := b.Dwords()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}

	b.Reset()
	if b.NumDwords() != 0 {
		t.Errorf("Reset left %d dwords", b.NumDwords())
	}
}

func TestResetWithOpenPackedPacket(t *testing.T) {
	b := build(t, amd.NewDeviceInfo(amd.Navi31), []write{{0x28000, 1}, {0x28010, 2}})
	b.Reset()
	b2 := build(t, amd.NewDeviceInfo(amd.Navi31), []write{{0x28004, 5}})
	if err := b.SetReg(0x28004, 5); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(b2.Dwords(), b.Dwords()); diff != "" {
		t.Errorf("stream after Reset (-want +got):\n%s", diff)
	}
}

func TestShaderBinary(t *testing.T) {
	tests := []struct {
		name  string
		info  amd.DeviceInfo
		stage Stage
		want  []uint32
	}{
		{
			name:  "pixel shader",
			info:  amd.NewDeviceInfo(amd.Navi10),
			stage: StagePS,
			want: []uint32{
				pm4.Pkt3(pm4.OpSetShReg, 4, false), 0x8, 0x123456, 0x1, 0xaa, 0xbb,
				pm4.Pkt3(pm4.OpSetShReg, 2, false), 0xd, 0xc0, 0xc1,
			},
		},
		{
			name:  "compute shader on a packed chip",
			info:  amd.NewDeviceInfo(amd.Navi31),
			stage: StageCS,
			want: []uint32{
				packedHdr(pm4.OpSetShRegPairsPacked, 7), 4,
				0x20c | 0x20d<<16, 0x123456, 0x1,
				0x212 | 0x213<<16, 0xaa, 0xbb,
				pm4.Pkt3(pm4.OpSetShReg, 2, false), 0x241, 0xc0, 0xc1,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewShaderBinary(tc.info, nil, tc.stage, []byte{0x00, 0x00, 0x81, 0xbf})
			if err != nil {
				t.Fatal(err)
			}
			if err := s.SetProgramAddress(0x0100_1234_5600); err != nil {
				t.Fatal(err)
			}
			if err := s.SetRsrc(0xaa, 0xbb); err != nil {
				t.Fatal(err)
			}
			// Close the packed packet so user data lands in a new one.
			s.PM4.Finalize()
			if err := s.SetUserData(1, 0xc0, 0xc1); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, s.Dwords()); diff != "" {
				t.Errorf("stream mismatch (-want +got):\n%s", diff)
			}
			if s.VA != 0x0100_1234_5600 {
				t.Errorf("VA = 0x%x", s.VA)
			}
		})
	}
}

func TestShaderBinaryErrors(t *testing.T) {
	if _, err := NewShaderBinary(amd.NewDeviceInfo(amd.Tonga), nil, StageGS, nil); common.ErrCode(err) != amd.ErrUnsupportedGfx {
		t.Errorf("GS on gfx8: %v", err)
	}
	s, err := NewShaderBinary(amd.NewDeviceInfo(amd.Navi10), nil, StagePS, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetProgramAddress(0x1001); common.ErrCode(err) != amd.ErrInvalidParamVal {
		t.Errorf("unaligned address: %v", err)
	}
}
