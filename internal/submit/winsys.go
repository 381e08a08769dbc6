package submit

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"golang.org/x/sys/unix"

	"pm4dbg/common"
	"pm4dbg/internal/amd"
	"pm4dbg/internal/config"
	"pm4dbg/internal/ctxroll"
	"pm4dbg/internal/vmfault"
)

// RingSize is the number of in-flight fences tracked per queue. A new
// submission waits for the fence RingSize submissions older than itself.
const RingSize = 32

const enomemRetryDelay = time.Millisecond

// Config for a Winsys.
type Config struct {
	Info   amd.DeviceInfo
	Kernel Kernel
	Logger common.Logger

	// RollLogPath, when set, appends the context rolls of every submitted
	// GFX IB to this file.
	RollLogPath string

	// KernelLog, when set, is scanned for a GPU page fault every time a
	// submission is rejected. vmfault.Dmesg reads the real log.
	KernelLog func(ctx context.Context) (io.Reader, error)
}

// ApplyEnv fills the settings left unset from the environment
// configuration.
func (c *Config) ApplyEnv(env config.Config) {
	if c.RollLogPath == "" {
		c.RollLogPath = env.RollLogPath
	}
	if c.Logger == nil {
		c.Logger = common.NewPrefixLogger(os.Stdout, os.Stderr, "amdgpu: ", env.LogLevel)
	}
}

type queue struct {
	latestSeqNo uint64
	fences      [RingSize]*Fence
	lastCtx     *Context
}

// Winsys owns the submission queues of one device.
type Winsys struct {
	info   amd.DeviceInfo
	kernel Kernel
	log    common.Logger

	// fenceMu guards the queues and the buffer sequence numbers. It is
	// never held across a kernel call or a fence wait.
	fenceMu sync.Mutex
	queues  [amd.NumIPTypes]queue

	// sendMu orders job sends against closing the channel.
	sendMu sync.RWMutex
	jobs   chan *job
	closed bool
	wg     sync.WaitGroup

	rollMu  sync.Mutex
	rollLog io.WriteCloser

	kernelLog func(ctx context.Context) (io.Reader, error)
	faults    vmfault.State
}

// NewWinsys starts the submission worker.
func NewWinsys(cfg Config) (*Winsys, error) {
	if cfg.Kernel == nil {
		return nil, errors.New("submit: no kernel interface")
	}
	ws := &Winsys{
		info:   cfg.Info,
		kernel: cfg.Kernel,
		log:    common.OrNoOp(cfg.Logger),
		jobs:   make(chan *job, RingSize),

		kernelLog: cfg.KernelLog,
	}
	if cfg.RollLogPath != "" {
		f, err := os.OpenFile(cfg.RollLogPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "open roll log")
		}
		ws.rollLog = f
	}
	if ws.kernelLog != nil {
		// Prime the fault scanner so older faults are not blamed on us.
		ws.checkVMFault()
	}

	ws.wg.Add(1)
	go ws.worker()
	return ws, nil
}

// Close waits for queued submissions and stops the worker. Fences still
// referenced stay valid for Wait.
func (ws *Winsys) Close() error {
	ws.sendMu.Lock()
	if ws.closed {
		ws.sendMu.Unlock()
		return nil
	}
	ws.closed = true
	close(ws.jobs)
	ws.sendMu.Unlock()
	ws.wg.Wait()

	ws.fenceMu.Lock()
	for i := range ws.queues {
		for j, f := range ws.queues[i].fences {
			if f != nil {
				f.Release()
				ws.queues[i].fences[j] = nil
			}
		}
	}
	ws.fenceMu.Unlock()

	if ws.rollLog != nil {
		return errors.Wrap(ws.rollLog.Close(), "close roll log")
	}
	return nil
}

// Context is a kernel submission context. Once the kernel rejects a
// submission the context is lost for good.
type Context struct {
	ID xid.ID

	lost    atomic.Bool
	lostErr atomic.Value // error

	userFences [amd.NumIPTypes]atomic.Uint64
}

func (ws *Winsys) NewContext() *Context {
	return &Context{ID: xid.New()}
}

func (c *Context) Lost() bool { return c.lost.Load() }

// Err returns the error that lost the context.
func (c *Context) Err() error {
	if err, ok := c.lostErr.Load().(error); ok {
		return err
	}
	return nil
}

func (c *Context) markLost(err error) {
	if c.lost.CompareAndSwap(false, true) {
		c.lostErr.Store(err)
	}
}

type job struct {
	ctx     *Context
	ip      amd.IPType
	ib      []uint32
	buffers []bufferUsage
	fence   *Fence
	done    chan struct{}
	err     error
}

// enqueue blocks while the ring is full. The worker keeps draining, so a
// pending Close only waits for the send to land.
func (ws *Winsys) enqueue(j *job) error {
	ws.sendMu.RLock()
	defer ws.sendMu.RUnlock()
	if ws.closed {
		return errors.New("submit: winsys closed")
	}
	ws.jobs <- j
	return nil
}

func (ws *Winsys) worker() {
	defer ws.wg.Done()
	for j := range ws.jobs {
		ws.run(j)
	}
}

func (ws *Winsys) run(j *job) {
	defer close(j.done)
	f := j.fence
	defer f.Release() // the job's reference

	req := ws.prepare(j)

	var err error
	if j.ctx.Lost() {
		err = errors.Wrapf(unix.ECANCELED, "context %s is lost", j.ctx.ID)
	} else {
		var seq uint64
		for {
			seq, err = ws.kernel.Submit(context.Background(), req)
			if !errors.Is(err, unix.ENOMEM) {
				break
			}
			time.Sleep(enomemRetryDelay)
		}
		if err != nil {
			j.ctx.markLost(err)
			ws.log.Logf(common.SeverityError, "%s submission on context %s rejected, context lost: %v", j.ip, j.ctx.ID, err)
			err = errors.Wrapf(err, "%s submission", j.ip)
			if fault, ok := ws.checkVMFault(); ok {
				err = errors.Wrapf(err, "VM fault at 0x%x", fault.Addr)
			}
		} else {
			f.kernelSeq = seq
		}
	}

	f.err = err
	if err != nil {
		f.signal()
	}
	f.markSubmitted()
	j.err = err

	if err == nil && j.ip == amd.IPGFX && ws.rollLog != nil {
		ws.logRolls(j, f)
	}
}

// prepare assigns the ring sequence number and computes the dependencies
// under the fence lock.
func (ws *Winsys) prepare(j *job) *SubmitRequest {
	ws.fenceMu.Lock()
	defer ws.fenceMu.Unlock()

	q := &ws.queues[j.ip]
	next := q.latestSeqNo + 1
	slot := &q.fences[next%RingSize]

	// The slot still holds the submission RingSize older than this one.
	// Wait for it with the lock released. Only this goroutine moves the
	// queue forward, so the slot is unchanged afterwards.
	if old := *slot; old != nil && !old.Signalled() {
		old.Reference()
		ws.fenceMu.Unlock()
		if _, err := old.Wait(context.Background(), Infinite); err != nil {
			ws.log.Logf(common.SeverityWarning, "waiting for ring slot: %v", err)
		}
		old.Release()
		ws.fenceMu.Lock()
	}

	var deps [amd.NumIPTypes]uint64
	addDep := func(ip amd.IPType, seq uint64) {
		dq := &ws.queues[ip]
		if seq == 0 || dq.latestSeqNo-seq >= RingSize {
			// Never submitted, or so old its slot was already waited for.
			return
		}
		df := dq.fences[seq%RingSize]
		if df == nil || df.Signalled() || df.kernelSeq == 0 {
			return
		}
		if seq > deps[ip] {
			deps[ip] = seq
		}
	}

	if ws.info.NumQueues[j.ip] > 1 || q.lastCtx != j.ctx {
		addDep(j.ip, q.latestSeqNo)
	}

	var bos []*Buffer
	for _, u := range j.buffers {
		b := u.buf
		if u.usage&UsageSynchronized != 0 {
			for ip := amd.IPType(0); ip < amd.NumIPTypes; ip++ {
				if ip != j.ip && b.seqNoValid&(1<<ip) != 0 {
					addDep(ip, b.seqNo[ip])
				}
			}
		}
		b.seqNo[j.ip] = next
		b.seqNoValid |= 1 << j.ip

		bos = append(bos, b)
		if b.sparse {
			bos = append(bos, b.backingBuffers()...)
		}
	}

	if old := *slot; old != nil {
		old.Release()
	}
	*slot = j.fence.Reference()
	j.fence.seqNo = next
	q.latestSeqNo = next
	q.lastCtx = j.ctx

	req := &SubmitRequest{
		ContextID: j.ctx.ID.String(),
		IP:        j.ip,
		IB:        j.ib,
		Buffers:   bos,
		Syncobj:   j.fence.syncobj,
		UserFence: &j.ctx.userFences[j.ip],
	}
	for ip, seq := range deps {
		if seq == 0 {
			continue
		}
		req.Deps = append(req.Deps, Dependency{IP: amd.IPType(ip), SeqNo: ws.queues[ip].fences[seq%RingSize].kernelSeq})
	}
	sort.Slice(req.Deps, func(a, b int) bool { return req.Deps[a].IP < req.Deps[b].IP })
	return req
}

func (ws *Winsys) logRolls(j *job, f *Fence) {
	a := ctxroll.NewAnalyzer(ctxroll.Config{GfxLevel: ws.info.GfxLevel, Family: ws.info.Family, Logger: ws.log})
	err := a.Analyze(j.ib)

	ws.rollMu.Lock()
	defer ws.rollMu.Unlock()
	fmt.Fprintf(ws.rollLog, "context %s seq %d: %d dwords\n", j.ctx.ID, f.seqNo, len(j.ib))
	if err != nil {
		fmt.Fprintf(ws.rollLog, "  analysis stopped: %v\n", err)
	}
	if err := a.WriteSummary(ws.rollLog); err != nil {
		ws.log.Logf(common.SeverityWarning, "roll log: %v", err)
	}
}

func (ws *Winsys) checkVMFault() (vmfault.Fault, bool) {
	if ws.kernelLog == nil {
		return vmfault.Fault{}, false
	}
	r, err := ws.kernelLog(context.Background())
	if err != nil {
		ws.log.Logf(common.SeverityWarning, "kernel log: %v", err)
		return vmfault.Fault{}, false
	}
	fault, found, err := ws.faults.Scan(r, ws.info.GfxLevel)
	if err != nil {
		ws.log.Logf(common.SeverityWarning, "kernel log: %v", err)
		return vmfault.Fault{}, false
	}
	if found {
		ws.log.Logf(common.SeverityError, "VM fault at 0x%x: %s", fault.Addr, fault.Line)
	}
	return fault, found
}
