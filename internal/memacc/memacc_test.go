package memacc

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func seq(base uint32, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = base + uint32(i)
	}
	return out
}

func TestOverlapRegions(t *testing.T) {
	m := NewMapper()
	if err := m.AddAccessor(NewBufferAccessor(0x1000, seq(0, 64))); err != nil {
		t.Fatalf("first accessor: %v", err)
	}

	tests := []struct {
		name    string
		va      uint64
		n       int
		overlap bool
	}{
		{"same start", 0x1000, 4, true},
		{"inside", 0x1010, 4, true},
		{"straddles end", 0x10fc, 4, true},
		{"straddles start", 0xff8, 4, true},
		{"after", 0x1100, 4, false},
		{"before", 0xf00, 64, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := m.AddAccessor(NewBufferAccessor(tc.va, seq(0, tc.n)))
			if got := errors.Is(err, ErrMemAccOverlap); got != tc.overlap {
				t.Errorf("overlap = %v, err %v", got, err)
			}
		})
	}
}

func TestMapperReads(t *testing.T) {
	m := NewMapper()
	lo := NewBufferAccessor(0x10000, seq(0x100, 16))
	hi := NewBufferAccessor(0x20000, seq(0x200, 8))
	for _, a := range []Accessor{hi, lo} {
		if err := m.AddAccessor(a); err != nil {
			t.Fatal(err)
		}
	}

	got, err := m.ReadDwords(0x10008, 4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint32{0x102, 0x103, 0x104, 0x105}, got); diff != "" {
		t.Errorf("read mismatch (-want +got):\n%s", diff)
	}

	short, _ := m.ReadDwords(0x20018, 8)
	if len(short) != 2 {
		t.Errorf("short read returned %d dwords", len(short))
	}

	cb := m.Callback()
	if _, ok := cb(0x20018, 8); ok {
		t.Error("callback accepted a truncated IB")
	}
	if words, ok := cb(0x20000, 8); !ok || words[7] != 0x207 {
		t.Errorf("callback read %v %v", words, ok)
	}
	if _, ok := cb(0x30000, 1); ok {
		t.Error("callback resolved an unmapped VA")
	}

	if !m.RemoveAccessor(lo) || m.RemoveAccessor(lo) {
		t.Error("RemoveAccessor")
	}
	if len(m.Accessors()) != 1 {
		t.Errorf("accessors left: %d", len(m.Accessors()))
	}
}

func TestCallbackAccessor(t *testing.T) {
	var calls int
	acc := NewCallbackAccessor(0x4000, 0x40ff, func(ctx any, va uint64, ndw uint32) ([]uint32, error) {
		calls++
		return seq(uint32(va), int(ndw)), nil
	}, nil)

	got, err := acc.Read(0x40f8, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || calls != 1 {
		t.Errorf("got %d dwords in %d calls", len(got), calls)
	}
	if got, _ := acc.Read(0x5000, 1); got != nil {
		t.Error("out of range read returned data")
	}
}

func TestFileAccessor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ib.bin")
	data := make([]byte, 16)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(data[i*4:], 0xc0001000+uint32(i))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fa, err := NewFileAccessor(path, 0x800000)
	if err != nil {
		t.Fatal(err)
	}
	if fa.EndAddr() != 0x80000f {
		t.Errorf("end 0x%x", fa.EndAddr())
	}
	got, err := fa.Read(0x800004, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint32{0xc0001001, 0xc0001002}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if _, err := NewFileAccessor(path, 0x800002); !errors.Is(err, ErrUnaligned) {
		t.Errorf("unaligned VA: %v", err)
	}
	if _, err := NewFileAccessor(filepath.Join(dir, "missing"), 0); err == nil {
		t.Error("missing file accepted")
	}
}

func TestDwordsFromBytes(t *testing.T) {
	got := DwordsFromBytes([]byte{0x00, 0x00, 0x00, 0x80, 0x01, 0x02, 0x03, 0x04, 0xff})
	if diff := cmp.Diff([]uint32{0x80000000, 0x04030201}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
