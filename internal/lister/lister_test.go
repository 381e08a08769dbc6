package lister

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/regs"
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

// writeIB stores words as a little endian dword file.
func writeIB(t *testing.T, name string, words []uint32) string {
	t.Helper()
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, cfg Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg.OutputWriter = &out
	if cfg.Family == amd.FamilyUnknown {
		cfg.Family = amd.Navi10
	}
	err := Run(cfg)
	return out.String(), err
}

var shRegs = pkt(pm4.OpSetShReg, 0x201, 7, 32)

const shRegsText = "SET_SH_REG:\n" +
	"        COMPUTE_DIM_X <- 7\n" +
	"        COMPUTE_DIM_Y <- 32 (0x00000020)\n"

func TestRun(t *testing.T) {
	out, err := run(t, Config{Files: []string{writeIB(t, "ib.bin", shRegs)}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(shRegsText, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSeveralFiles(t *testing.T) {
	a := writeIB(t, "a.bin", shRegs)
	b := writeIB(t, "b.bin", []uint32{pm4.NopPad})
	out, err := run(t, Config{Files: []string{a, b}})
	if err != nil {
		t.Fatal(err)
	}
	want := "==== " + a + " (4 dwords) ====\n" + shRegsText +
		"==== " + b + " (1 dwords) ====\nNOP:\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMappedIB(t *testing.T) {
	inner := writeIB(t, "inner.bin", shRegs)
	outer := writeIB(t, "outer.bin", pkt(pm4.OpIndirectBuffer, 0x10000, 0, pm4.IBControl(uint32(len(shRegs)), false)))

	out, err := run(t, Config{
		Files: []string{outer},
		Maps:  []Mapping{{VA: 0x10000, Path: inner}},
		Tree:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{">------ nested begin ------", "    SET_SH_REG:\n", "COMPUTE_DIM_X <- 7", "command buffer", "IB va=0x10000"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}

	out, err = run(t, Config{Files: []string{outer}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "IB at 0x10000 (4 dwords) is not mapped") {
		t.Errorf("unmapped IB output:\n%s", out)
	}
}

func TestRunRollsAndStats(t *testing.T) {
	words := stream(
		pkt(pm4.OpSetContextReg, 0, 5),
		pkt(pm4.OpDrawIndexAuto, 3, 2),
		pkt(pm4.OpSetContextReg, 0, 9),
	)
	file := writeIB(t, "rolls.bin", words)

	out, err := run(t, Config{Files: []string{file}, Rolls: true, RollDetails: true, Stats: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"Packet counts:", "roll 0 @6: DB_RENDER_CONTROL(0xc)\n", "1 context rolls, 1 unique\n"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}

	// Roll analysis only applies to the graphics queue.
	out, err = run(t, Config{Files: []string{file}, Rolls: true, IP: amd.IPCompute})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "context rolls") {
		t.Errorf("compute IB analyzed for rolls:\n%s", out)
	}
}

func TestRunRaw(t *testing.T) {
	out, err := run(t, Config{Files: []string{writeIB(t, "ib.bin", shRegs)}, Raw: true})
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("Index      0; %08x 00000201 00000007 00000020\n", shRegs[0]) + shRegsText
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	corrupt := writeIB(t, "corrupt.bin", []uint32{0, pm4.NopPad})
	out, err := run(t, Config{Files: []string{corrupt}})
	if common.ErrCode(err) != amd.ErrInvalidPktHdr {
		t.Errorf("corrupt IB: %v", err)
	}
	if strings.Contains(out, "NOP") {
		t.Errorf("parsing continued after a framing error:\n%s", out)
	}

	if _, err := run(t, Config{Files: []string{filepath.Join(t.TempDir(), "missing.bin")}}); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := run(t, Config{Maps: []Mapping{{VA: 0x1000, Path: "/does/not/exist"}}}); err == nil {
		t.Error("missing mapped file accepted")
	}
	if _, err := run(t, Config{Family: amd.Family(-1)}); err == nil {
		t.Error("unknown family accepted")
	}
}

func TestPrintShadowRegs(t *testing.T) {
	cat, err := regs.LoadINI(strings.NewReader("[DB_RENDER_CONTROL]\noffset = 0x28000\n[SPARE_CONTEXT]\noffset = 0x28ff0\n"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := run(t, Config{Family: amd.Navi21, Catalog: cat, PrintShadowRegs: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "1 registers are not shadowed on GFX10_3:\n    SPARE_CONTEXT (0x28ff0)\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMapping(t *testing.T) {
	tests := []struct {
		in      string
		want    Mapping
		wantErr bool
	}{
		{in: "0x1000=ib.bin", want: Mapping{VA: 0x1000, Path: "ib.bin"}},
		{in: "FFFF0000=/tmp/a=b", want: Mapping{VA: 0xffff0000, Path: "/tmp/a=b"}},
		{in: "ib.bin", wantErr: true},
		{in: "0x1000=", wantErr: true},
		{in: "zz=ib.bin", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMapping(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMapping(%q) error = %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
