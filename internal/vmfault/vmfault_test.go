package vmfault

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pm4dbg/internal/amd"
)

const bootLog = `[    1.000100] amdgpu 0000:03:00.0: amdgpu: SMU is initialized successfully!
[   12.500000] amdgpu 0000:03:00.0: amdgpu:   VM_CONTEXT1_PROTECTION_FAULT_ADDR   0x00000111
`

const gfx8Log = bootLog + `[   20.000001] amdgpu 0000:03:00.0: GPU fault detected: 146 0x0c080c0c
[   20.000002] amdgpu 0000:03:00.0:   VM_CONTEXT1_PROTECTION_FAULT_ADDR   0x00101234
[   20.000003] amdgpu 0000:03:00.0:   VM_CONTEXT1_PROTECTION_FAULT_STATUS 0x080c000c
`

const gfx10Log = bootLog + `[  30.25] amdgpu 0000:03:00.0: amdgpu: [gfxhub] page fault (src_id:0 ring:24 vmid:3 pasid:32769)
no timestamp GCVM_L2_PROTECTION_FAULT_ADDR 0xdead000
[  30.26] amdgpu 0000:03:00.0: amdgpu:   in page starting at address 0x0000800100200000 from client 0x1b (UTCL2)
[  30.27] amdgpu 0000:03:00.0: amdgpu: GCVM_L2_PROTECTION_FAULT_STATUS:0x00301031
`

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		level amd.GfxLevel
		log   string
		want  Fault
	}{
		{
			name:  "gfx8 page number",
			level: amd.Gfx8,
			log:   gfx8Log,
			want: Fault{
				Addr:      0x101234000,
				Timestamp: 20000002,
				Line:      "[   20.000002] amdgpu 0000:03:00.0:   VM_CONTEXT1_PROTECTION_FAULT_ADDR   0x00101234",
			},
		},
		{
			name:  "gfx10 byte address",
			level: amd.Gfx103,
			log:   gfx10Log,
			want: Fault{
				Addr:      0x800100200000,
				Timestamp: 30260000,
				Line:      "[  30.26] amdgpu 0000:03:00.0: amdgpu:   in page starting at address 0x0000800100200000 from client 0x1b (UTCL2)",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			if _, found, err := s.Scan(strings.NewReader(bootLog), tt.level); err != nil || found {
				t.Fatalf("priming scan reported a fault: %v %v", found, err)
			}
			got, found, err := s.Scan(strings.NewReader(tt.log), tt.level)
			if err != nil || !found {
				t.Fatalf("Scan() = %v, %v", found, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
			}

			// Everything has been seen now.
			if _, found, _ := s.Scan(strings.NewReader(tt.log), tt.level); found {
				t.Error("fault reported twice")
			}
		})
	}
}

func TestScanIgnoresOtherGenerationMarker(t *testing.T) {
	var s State
	s.Scan(strings.NewReader(""), amd.Gfx9)
	if _, found, _ := s.Scan(strings.NewReader(gfx8Log), amd.Gfx9); found {
		t.Error("gfx9 scan matched a pre-gfx9 fault line")
	}
}

func TestStatesAreIndependent(t *testing.T) {
	var a, b State
	a.Scan(strings.NewReader(""), amd.Gfx8)
	b.Scan(strings.NewReader(""), amd.Gfx8)
	if _, found, _ := a.Scan(strings.NewReader(gfx8Log), amd.Gfx8); !found {
		t.Fatal("a missed the fault")
	}
	if _, found, _ := b.Scan(strings.NewReader(gfx8Log), amd.Gfx8); !found {
		t.Error("b missed the fault already seen by a")
	}
}

func TestTimestamp(t *testing.T) {
	for in, want := range map[string]uint64{
		"[    5.1] x":         5100000,
		"[12345.123456] x":    12345123456,
		"[ 1.1234567] x":      1123456,
		"no timestamp at all": 0,
	} {
		got, _ := timestamp(in)
		if got != want {
			t.Errorf("timestamp(%q) = %d, want %d", in, got, want)
		}
	}
}
