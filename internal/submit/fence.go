package submit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/xid"

	"pm4dbg/common"
	"pm4dbg/internal/amd"
)

// Fence tracks the completion of one submission. It is reference counted;
// the last Release destroys its syncobj.
type Fence struct {
	ID xid.ID

	ws      *Winsys
	ctx     *Context
	ip      amd.IPType
	syncobj uint32
	refs    atomic.Int32

	// Set by the worker before submitted is closed.
	seqNo     uint64 // ring sequence number
	kernelSeq uint64
	err       error

	submitOnce sync.Once
	submitted  chan struct{}
	signalled  atomic.Bool

	userFence *atomic.Uint64
}

func newFence(ws *Winsys, ctx *Context, ip amd.IPType) (*Fence, error) {
	h, err := ws.kernel.CreateSyncobj()
	if err != nil {
		return nil, err
	}
	f := &Fence{
		ID:        xid.New(),
		ws:        ws,
		ctx:       ctx,
		ip:        ip,
		syncobj:   h,
		submitted: make(chan struct{}),
		userFence: &ctx.userFences[ip],
	}
	f.refs.Store(1)
	return f, nil
}

// Reference takes a reference and returns f.
func (f *Fence) Reference() *Fence {
	f.refs.Add(1)
	return f
}

// Release drops a reference.
func (f *Fence) Release() {
	switch n := f.refs.Add(-1); {
	case n == 0:
		if err := f.ws.kernel.DestroySyncobj(f.syncobj); err != nil {
			f.ws.log.Logf(common.SeverityWarning, "destroy syncobj %d: %v", f.syncobj, err)
		}
	case n < 0:
		panic("submit: fence released too many times")
	}
}

func (f *Fence) IP() amd.IPType  { return f.ip }
func (f *Fence) Syncobj() uint32 { return f.syncobj }

// SeqNo returns the ring sequence number, 0 before submission.
func (f *Fence) SeqNo() uint64 {
	if !f.Submitted() {
		return 0
	}
	return f.seqNo
}

// Err returns the submission error, if any.
func (f *Fence) Err() error {
	if !f.Submitted() {
		return nil
	}
	return f.err
}

func (f *Fence) Submitted() bool {
	select {
	case <-f.submitted:
		return true
	default:
		return false
	}
}

func (f *Fence) Signalled() bool { return f.signalled.Load() }

func (f *Fence) markSubmitted() {
	f.submitOnce.Do(func() { close(f.submitted) })
}

// signal marks the fence done without asking the kernel. Failed
// submissions are signalled this way so waiters never hang.
func (f *Fence) signal() {
	f.signalled.Store(true)
}

// Wait waits for the fence. A zero timeout only polls; Infinite waits
// until the fence signals or ctx is done.
func (f *Fence) Wait(ctx context.Context, timeout time.Duration) (bool, error) {
	if f.signalled.Load() {
		return true, nil
	}

	var deadline <-chan time.Time
	start := time.Now()
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		deadline = t.C
	}

	if timeout == 0 {
		if !f.Submitted() {
			return false, nil
		}
	} else {
		select {
		case <-f.submitted:
		case <-deadline:
			return false, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	if f.signalled.Load() {
		return true, nil
	}

	if f.userFence != nil && f.userFence.Load() >= f.kernelSeq {
		f.signal()
		return true, nil
	}

	remaining := timeout
	if timeout > 0 {
		remaining -= time.Since(start)
		if remaining < 0 {
			remaining = 0
		}
	}
	done, err := f.ws.kernel.QueryFence(ctx, f.ip, f.kernelSeq, remaining)
	if err != nil {
		return false, err
	}
	if done {
		f.signal()
	}
	return done, nil
}
