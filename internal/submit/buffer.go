package submit

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"pm4dbg/internal/amd"
)

// Usage flags of a buffer in a command stream.
type Usage uint32

const (
	UsageRead Usage = 1 << iota
	UsageWrite
	// UsageSynchronized makes the submission wait for the newest use of
	// the buffer on every other queue.
	UsageSynchronized
)

// Buffer is a GPU buffer object. The sequence number bookkeeping is
// guarded by the Winsys fence lock.
type Buffer struct {
	VA   uint64
	Size uint64

	seqNoValid uint32 // bit per IP
	seqNo      [amd.NumIPTypes]uint64

	sparse   bool
	commitMu sync.Mutex
	backing  []*Buffer
}

func NewBuffer(va, size uint64) *Buffer {
	return &Buffer{VA: va, Size: size}
}

// NewSparseBuffer returns a buffer whose memory is provided by committed
// backing buffers.
func NewSparseBuffer(va, size uint64) *Buffer {
	return &Buffer{VA: va, Size: size, sparse: true}
}

func (b *Buffer) Sparse() bool { return b.sparse }

// Commit attaches a backing buffer to a sparse buffer.
func (b *Buffer) Commit(backing *Buffer) error {
	if !b.sparse {
		return errors.Errorf("buffer at 0x%x is not sparse", b.VA)
	}
	b.commitMu.Lock()
	defer b.commitMu.Unlock()
	b.backing = append(b.backing, backing)
	return nil
}

// Uncommit detaches a backing buffer.
func (b *Buffer) Uncommit(backing *Buffer) {
	b.commitMu.Lock()
	defer b.commitMu.Unlock()
	for i, bb := range b.backing {
		if bb == backing {
			b.backing = append(b.backing[:i], b.backing[i+1:]...)
			return
		}
	}
}

func (b *Buffer) backingBuffers() []*Buffer {
	b.commitMu.Lock()
	defer b.commitMu.Unlock()
	return append([]*Buffer(nil), b.backing...)
}

func (b *Buffer) String() string {
	return fmt.Sprintf("bo va=0x%x size=0x%x", b.VA, b.Size)
}
