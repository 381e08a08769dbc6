package submit

import (
	"github.com/pkg/errors"

	"pm4dbg/internal/amd"
)

// FlushFlags control Flush.
type FlushFlags uint32

const (
	// FlushAsync returns once the submission is queued instead of waiting
	// for the kernel call.
	FlushAsync FlushFlags = 1 << iota
)

type bufferUsage struct {
	buf   *Buffer
	usage Usage
}

// CommandStream records one IB and the buffers it uses. It is not safe for
// concurrent use.
type CommandStream struct {
	ws  *Winsys
	ctx *Context
	ip  amd.IPType

	ib      []uint32
	buffers []bufferUsage
	index   map[*Buffer]int

	nextFence *Fence
	last      *job
}

// NewCommandStream returns an empty command stream for ip on ctx.
func (ws *Winsys) NewCommandStream(ctx *Context, ip amd.IPType) (*CommandStream, error) {
	if ip < 0 || ip >= amd.NumIPTypes {
		return nil, errors.Errorf("submit: invalid IP %d", ip)
	}
	return &CommandStream{ws: ws, ctx: ctx, ip: ip, index: make(map[*Buffer]int)}, nil
}

func (cs *CommandStream) IP() amd.IPType { return cs.ip }

// Emit appends dwords to the IB.
func (cs *CommandStream) Emit(words ...uint32) {
	cs.ib = append(cs.ib, words...)
}

func (cs *CommandStream) NumDwords() int { return len(cs.ib) }

// AddBuffer records that the IB uses b. Repeated calls merge the usage.
func (cs *CommandStream) AddBuffer(b *Buffer, usage Usage) {
	if i, ok := cs.index[b]; ok {
		cs.buffers[i].usage |= usage
		return
	}
	cs.index[b] = len(cs.buffers)
	cs.buffers = append(cs.buffers, bufferUsage{buf: b, usage: usage})
}

// GetNextFence returns the fence the next Flush will signal. The caller
// owns the returned reference.
func (cs *CommandStream) GetNextFence() (*Fence, error) {
	if cs.nextFence == nil {
		f, err := newFence(cs.ws, cs.ctx, cs.ip)
		if err != nil {
			return nil, errors.Wrap(err, "create fence")
		}
		cs.nextFence = f
	}
	return cs.nextFence.Reference(), nil
}

// Flush submits the recorded IB and starts a new one. The returned fence
// reference belongs to the caller. An empty IB submits nothing and returns
// a nil fence. Without FlushAsync the call waits for the kernel submission
// and returns its error.
func (cs *CommandStream) Flush(flags FlushFlags) (*Fence, error) {
	if len(cs.ib) == 0 {
		return nil, nil
	}

	f := cs.nextFence
	if f == nil {
		var err error
		if f, err = newFence(cs.ws, cs.ctx, cs.ip); err != nil {
			return nil, errors.Wrap(err, "create fence")
		}
	}
	cs.nextFence = nil

	j := &job{
		ctx:     cs.ctx,
		ip:      cs.ip,
		ib:      cs.ib,
		buffers: cs.buffers,
		fence:   f,
		done:    make(chan struct{}),
	}
	ret := f.Reference()
	if err := cs.ws.enqueue(j); err != nil {
		f.Release()
		ret.Release()
		return nil, err
	}
	cs.last = j

	cs.ib = nil
	cs.buffers = nil
	cs.index = make(map[*Buffer]int)

	if flags&FlushAsync != 0 {
		return ret, nil
	}
	<-j.done
	return ret, j.err
}

// SyncFlush waits until the last flushed IB has been handed to the kernel
// and returns its submission error.
func (cs *CommandStream) SyncFlush() error {
	if cs.last == nil {
		return nil
	}
	<-cs.last.done
	return cs.last.err
}
