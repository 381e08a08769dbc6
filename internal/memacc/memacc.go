// Package memacc resolves GPU virtual addresses to command buffer contents
// so that indirect buffers referenced from a stream can be followed.
package memacc

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrMemAccOverlap = errors.New("memory accessor overlap")
	ErrUnaligned     = errors.New("address or size not dword aligned")
	ErrEmpty         = errors.New("empty memory range")
)

// Accessor exposes dwords mapped at a GPU virtual address range.
type Accessor interface {
	StartAddr() uint64
	// EndAddr is the last byte address of the range, inclusive.
	EndAddr() uint64
	// Read returns up to ndw dwords starting at va. A short read means the
	// range ended.
	Read(va uint64, ndw uint32) ([]uint32, error)
	String() string
}

// BaseAccessor provides the common range bookkeeping.
type BaseAccessor struct {
	startAddr uint64
	endAddr   uint64
}

func (b *BaseAccessor) StartAddr() uint64 { return b.startAddr }
func (b *BaseAccessor) EndAddr() uint64   { return b.endAddr }

func (b *BaseAccessor) InRange(va uint64) bool {
	return va >= b.startAddr && va <= b.endAddr
}

// DwordsInRange clips a request to the end of the range.
func (b *BaseAccessor) DwordsInRange(va uint64, ndw uint32) uint32 {
	if !b.InRange(va) {
		return 0
	}
	avail := (b.endAddr - va + 1) / 4
	if uint64(ndw) > avail {
		return uint32(avail)
	}
	return ndw
}

// -----------------------------------------------------------------------------
// Buffer Accessor
// -----------------------------------------------------------------------------

type BufferAccessor struct {
	BaseAccessor
	words []uint32
}

func NewBufferAccessor(va uint64, words []uint32) *BufferAccessor {
	return &BufferAccessor{
		BaseAccessor: BaseAccessor{
			startAddr: va,
			endAddr:   va + uint64(len(words))*4 - 1,
		},
		words: words,
	}
}

func (b *BufferAccessor) Read(va uint64, ndw uint32) ([]uint32, error) {
	if va%4 != 0 {
		return nil, ErrUnaligned
	}
	n := b.DwordsInRange(va, ndw)
	if n == 0 {
		return nil, nil
	}
	idx := (va - b.startAddr) / 4
	return b.words[idx : idx+uint64(n)], nil
}

func (b *BufferAccessor) String() string {
	return fmt.Sprintf("BuffAcc; Range::0x%x:%x; %d dwords", b.startAddr, b.endAddr, len(b.words))
}

// -----------------------------------------------------------------------------
// Callback Accessor
// -----------------------------------------------------------------------------

// CallbackFn returns the dwords at va, or nil when the address is not
// backed.
type CallbackFn func(ctx any, va uint64, ndw uint32) ([]uint32, error)

type CallbackAccessor struct {
	BaseAccessor
	fn  CallbackFn
	ctx any
}

func NewCallbackAccessor(startAddr, endAddr uint64, fn CallbackFn, ctx any) *CallbackAccessor {
	return &CallbackAccessor{
		BaseAccessor: BaseAccessor{startAddr: startAddr, endAddr: endAddr},
		fn:           fn,
		ctx:          ctx,
	}
}

func (c *CallbackAccessor) Read(va uint64, ndw uint32) ([]uint32, error) {
	n := c.DwordsInRange(va, ndw)
	if n == 0 || c.fn == nil {
		return nil, nil
	}
	return c.fn(c.ctx, va, n)
}

func (c *CallbackAccessor) String() string {
	return fmt.Sprintf("CBAcc; Range::0x%x:%x", c.startAddr, c.endAddr)
}

// -----------------------------------------------------------------------------
// File Accessor
// -----------------------------------------------------------------------------

// FileAccessor maps a file of little endian dwords at a VA. The file is
// read on first access.
type FileAccessor struct {
	BufferAccessor
	filePath string
	once     sync.Once
	err      error
}

func NewFileAccessor(path string, va uint64) (*FileAccessor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "map %s", path)
	}
	if info.Size() < 4 {
		return nil, errors.Wrapf(ErrEmpty, "map %s", path)
	}
	if info.Size()%4 != 0 || va%4 != 0 {
		return nil, errors.Wrapf(ErrUnaligned, "map %s at 0x%x", path, va)
	}
	return &FileAccessor{
		BufferAccessor: BufferAccessor{
			BaseAccessor: BaseAccessor{
				startAddr: va,
				endAddr:   va + uint64(info.Size()) - 1,
			},
		},
		filePath: path,
	}, nil
}

func (f *FileAccessor) Read(va uint64, ndw uint32) ([]uint32, error) {
	f.once.Do(func() {
		var data []byte
		data, f.err = os.ReadFile(f.filePath)
		if f.err == nil {
			f.words = DwordsFromBytes(data)
		}
	})
	if f.err != nil {
		return nil, errors.Wrapf(f.err, "read %s", f.filePath)
	}
	return f.BufferAccessor.Read(va, ndw)
}

func (f *FileAccessor) String() string {
	return fmt.Sprintf("FileAcc; Range::0x%x:%x; Filename=%s", f.startAddr, f.endAddr, f.filePath)
}

// DwordsFromBytes decodes little endian dwords. Trailing bytes that do not
// fill a dword are dropped.
func DwordsFromBytes(data []byte) []uint32 {
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return words
}
