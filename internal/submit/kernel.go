// Package submit queues command buffers for the kernel driver. It keeps the
// per-queue fence ring, computes the fence dependencies of each submission
// and runs the kernel calls on a worker goroutine.
package submit

import (
	"context"
	"sync/atomic"
	"time"

	"pm4dbg/internal/amd"
)

// Infinite is the timeout that never expires.
const Infinite time.Duration = -1

// Dependency asks the kernel to wait for a submission on another queue.
type Dependency struct {
	IP    amd.IPType
	SeqNo uint64 // kernel sequence number
}

// SubmitRequest is one kernel submission.
type SubmitRequest struct {
	ContextID string
	IP        amd.IPType
	IB        []uint32
	Buffers   []*Buffer
	Deps      []Dependency
	Syncobj   uint32

	// UserFence is written with the kernel sequence number when the IB
	// completes.
	UserFence *atomic.Uint64
}

// Kernel is the driver interface the queue submits through. Errors are
// unix errno values where the kernel returns one.
type Kernel interface {
	Submit(ctx context.Context, req *SubmitRequest) (uint64, error)
	QueryFence(ctx context.Context, ip amd.IPType, seqNo uint64, timeout time.Duration) (bool, error)
	CreateSyncobj() (uint32, error)
	DestroySyncobj(handle uint32) error
}
