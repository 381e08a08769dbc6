package submit

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"pm4dbg/common"
	"pm4dbg/internal/amd"
	"pm4dbg/internal/config"
	"pm4dbg/internal/pm4"
)

// fakeKernel completes submissions when told to, or immediately with auto.
type fakeKernel struct {
	mu   sync.Mutex
	cond *sync.Cond

	auto      bool
	seq       [amd.NumIPTypes]uint64
	completed [amd.NumIPTypes]uint64
	reqs      []*SubmitRequest
	calls     int
	errs      []error // returned by the next Submit calls, in order

	nextSyncobj uint32
	syncobjs    map[uint32]bool
}

func newFakeKernel(auto bool) *fakeKernel {
	k := &fakeKernel{auto: auto, syncobjs: make(map[uint32]bool)}
	k.cond = sync.NewCond(&k.mu)
	return k
}

func (k *fakeKernel) Submit(_ context.Context, req *SubmitRequest) (uint64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.calls++
	if len(k.errs) > 0 {
		err := k.errs[0]
		k.errs = k.errs[1:]
		return 0, err
	}
	k.seq[req.IP]++
	seq := k.seq[req.IP]
	k.reqs = append(k.reqs, req)
	if k.auto {
		k.completed[req.IP] = seq
		req.UserFence.Store(seq)
	}
	return seq, nil
}

func (k *fakeKernel) QueryFence(ctx context.Context, ip amd.IPType, seq uint64, timeout time.Duration) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	expired := false
	if timeout > 0 {
		t := time.AfterFunc(timeout, func() {
			k.mu.Lock()
			expired = true
			k.mu.Unlock()
			k.cond.Broadcast()
		})
		defer t.Stop()
	}
	for k.completed[ip] < seq {
		if timeout == 0 || expired {
			return false, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		k.cond.Wait()
	}
	return true, nil
}

func (k *fakeKernel) CreateSyncobj() (uint32, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.nextSyncobj++
	k.syncobjs[k.nextSyncobj] = true
	return k.nextSyncobj, nil
}

func (k *fakeKernel) DestroySyncobj(h uint32) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.syncobjs[h] {
		return errors.Errorf("syncobj %d destroyed twice", h)
	}
	delete(k.syncobjs, h)
	return nil
}

// complete signals every submission on ip up to kernel seq.
func (k *fakeKernel) complete(ip amd.IPType, seq uint64) {
	k.mu.Lock()
	k.completed[ip] = seq
	for _, r := range k.reqs {
		if r.IP == ip {
			r.UserFence.Store(seq)
		}
	}
	k.mu.Unlock()
	k.cond.Broadcast()
}

func (k *fakeKernel) lastDeps() []Dependency {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.reqs[len(k.reqs)-1].Deps
}

func (k *fakeKernel) numCalls() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.calls
}

func newWinsys(t *testing.T, k Kernel) *Winsys {
	t.Helper()
	ws, err := NewWinsys(Config{Info: amd.NewDeviceInfo(amd.Navi21), Kernel: k})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func flush(t *testing.T, ws *Winsys, ctx *Context, ip amd.IPType, bufs ...bufferUsage) *Fence {
	t.Helper()
	cs, err := ws.NewCommandStream(ctx, ip)
	if err != nil {
		t.Fatal(err)
	}
	cs.Emit(pm4.Pkt3(pm4.OpNop, 0, false), 0)
	for _, b := range bufs {
		cs.AddBuffer(b.buf, b.usage)
	}
	f, err := cs.Flush(0)
	if err != nil {
		t.Fatalf("flush: %v", err)
	}
	t.Cleanup(f.Release)
	return f
}

func TestFlushAndWait(t *testing.T) {
	k := newFakeKernel(true)
	ws := newWinsys(t, k)
	ctx := ws.NewContext()

	f := flush(t, ws, ctx, amd.IPGFX)
	if f.SeqNo() != 1 || !f.Submitted() {
		t.Errorf("seq %d submitted %v", f.SeqNo(), f.Submitted())
	}
	ok, err := f.Wait(context.Background(), Infinite)
	if err != nil || !ok {
		t.Errorf("Wait = %v, %v", ok, err)
	}

	flush(t, ws, ctx, amd.IPGFX)
	if deps := k.lastDeps(); len(deps) != 0 {
		t.Errorf("same context on a single queue got deps %v", deps)
	}
}

func TestEmptyFlush(t *testing.T) {
	ws := newWinsys(t, newFakeKernel(true))
	cs, _ := ws.NewCommandStream(ws.NewContext(), amd.IPGFX)
	f, err := cs.Flush(0)
	if f != nil || err != nil {
		t.Errorf("empty flush = %v, %v", f, err)
	}
	if _, err := ws.NewCommandStream(ws.NewContext(), amd.NumIPTypes); err == nil {
		t.Error("invalid IP accepted")
	}
}

func TestPollWait(t *testing.T) {
	k := newFakeKernel(false)
	ws := newWinsys(t, k)
	f := flush(t, ws, ws.NewContext(), amd.IPGFX)

	if ok, _ := f.Wait(context.Background(), 0); ok {
		t.Error("pending fence polled as signalled")
	}
	if ok, _ := f.Wait(context.Background(), 10*time.Millisecond); ok {
		t.Error("pending fence signalled after timeout")
	}
	k.complete(amd.IPGFX, 1)
	if ok, _ := f.Wait(context.Background(), 0); !ok {
		t.Error("completed fence not signalled")
	}
}

func TestDependencies(t *testing.T) {
	t.Run("context switch on one queue", func(t *testing.T) {
		k := newFakeKernel(false)
		ws := newWinsys(t, k)
		a, b := ws.NewContext(), ws.NewContext()

		flush(t, ws, a, amd.IPGFX)
		flush(t, ws, b, amd.IPGFX)
		if diff := cmp.Diff([]Dependency{{IP: amd.IPGFX, SeqNo: 1}}, k.lastDeps()); diff != "" {
			t.Errorf("deps (-want +got):\n%s", diff)
		}
		flush(t, ws, b, amd.IPGFX)
		if deps := k.lastDeps(); len(deps) != 0 {
			t.Errorf("same context got deps %v", deps)
		}
	})

	t.Run("multi queue ip always depends on the previous job", func(t *testing.T) {
		k := newFakeKernel(false)
		ws := newWinsys(t, k)
		ctx := ws.NewContext()

		flush(t, ws, ctx, amd.IPCompute)
		flush(t, ws, ctx, amd.IPCompute)
		if diff := cmp.Diff([]Dependency{{IP: amd.IPCompute, SeqNo: 1}}, k.lastDeps()); diff != "" {
			t.Errorf("deps (-want +got):\n%s", diff)
		}
	})

	t.Run("synchronized buffers coalesce per queue", func(t *testing.T) {
		k := newFakeKernel(false)
		ws := newWinsys(t, k)
		ctx := ws.NewContext()
		b1, b2 := NewBuffer(0x1000, 0x1000), NewBuffer(0x2000, 0x1000)

		flush(t, ws, ctx, amd.IPGFX, bufferUsage{b1, UsageWrite})
		flush(t, ws, ctx, amd.IPGFX, bufferUsage{b2, UsageWrite})
		flush(t, ws, ctx, amd.IPSDMA, bufferUsage{b1, UsageRead | UsageSynchronized}, bufferUsage{b2, UsageRead | UsageSynchronized})
		if diff := cmp.Diff([]Dependency{{IP: amd.IPGFX, SeqNo: 2}}, k.lastDeps()); diff != "" {
			t.Errorf("deps (-want +got):\n%s", diff)
		}
	})

	t.Run("unsynchronized buffers add nothing", func(t *testing.T) {
		k := newFakeKernel(false)
		ws := newWinsys(t, k)
		ctx := ws.NewContext()
		b := NewBuffer(0x1000, 0x1000)

		flush(t, ws, ctx, amd.IPGFX, bufferUsage{b, UsageWrite})
		flush(t, ws, ctx, amd.IPSDMA, bufferUsage{b, UsageRead})
		if deps := k.lastDeps(); len(deps) != 0 {
			t.Errorf("deps %v", deps)
		}
	})

	t.Run("signalled fences are skipped", func(t *testing.T) {
		k := newFakeKernel(false)
		ws := newWinsys(t, k)
		ctx := ws.NewContext()
		b := NewBuffer(0x1000, 0x1000)

		f := flush(t, ws, ctx, amd.IPGFX, bufferUsage{b, UsageWrite})
		k.complete(amd.IPGFX, 1)
		if ok, _ := f.Wait(context.Background(), Infinite); !ok {
			t.Fatal("fence not signalled")
		}
		flush(t, ws, ctx, amd.IPSDMA, bufferUsage{b, UsageRead | UsageSynchronized})
		if deps := k.lastDeps(); len(deps) != 0 {
			t.Errorf("deps %v", deps)
		}
	})
}

func TestSparseBacking(t *testing.T) {
	k := newFakeKernel(true)
	ws := newWinsys(t, k)
	sparse := NewSparseBuffer(0x100000, 0x100000)
	backing := NewBuffer(0x900000, 0x10000)
	if err := sparse.Commit(backing); err != nil {
		t.Fatal(err)
	}
	if err := backing.Commit(sparse); err == nil {
		t.Error("commit into a plain buffer accepted")
	}

	flush(t, ws, ws.NewContext(), amd.IPGFX, bufferUsage{sparse, UsageRead})
	k.mu.Lock()
	got := k.reqs[0].Buffers
	k.mu.Unlock()
	if len(got) != 2 || got[0] != sparse || got[1] != backing {
		t.Errorf("buffer list %v", got)
	}

	sparse.Uncommit(backing)
	if len(sparse.backingBuffers()) != 0 {
		t.Error("Uncommit kept the backing buffer")
	}
}

func TestLostContext(t *testing.T) {
	k := newFakeKernel(true)
	k.errs = []error{unix.EINVAL}
	ws := newWinsys(t, k)
	ctx := ws.NewContext()

	cs, _ := ws.NewCommandStream(ctx, amd.IPGFX)
	cs.Emit(0xffff1000)
	f, err := cs.Flush(0)
	if !errors.Is(err, unix.EINVAL) {
		t.Fatalf("flush error %v", err)
	}
	defer f.Release()
	if !ctx.Lost() || !errors.Is(ctx.Err(), unix.EINVAL) {
		t.Errorf("context not lost: %v", ctx.Err())
	}
	if !f.Signalled() || !errors.Is(f.Err(), unix.EINVAL) {
		t.Error("failed submission fence not signalled")
	}

	cs.Emit(0xffff1000)
	f2, err := cs.Flush(0)
	if !errors.Is(err, unix.ECANCELED) {
		t.Errorf("flush on lost context: %v", err)
	}
	defer f2.Release()
	if n := k.numCalls(); n != 1 {
		t.Errorf("kernel called %d times", n)
	}
}

func TestENOMEMRetry(t *testing.T) {
	k := newFakeKernel(true)
	k.errs = []error{unix.ENOMEM, unix.ENOMEM}
	ws := newWinsys(t, k)
	ctx := ws.NewContext()

	f := flush(t, ws, ctx, amd.IPGFX)
	if f.Err() != nil || ctx.Lost() {
		t.Errorf("err %v lost %v", f.Err(), ctx.Lost())
	}
	if n := k.numCalls(); n != 3 {
		t.Errorf("kernel called %d times, want 3", n)
	}
}

func TestRingBackpressure(t *testing.T) {
	k := newFakeKernel(false)
	ws := newWinsys(t, k)
	ctx := ws.NewContext()

	for i := 0; i < RingSize; i++ {
		flush(t, ws, ctx, amd.IPGFX)
	}

	done := make(chan *Fence)
	go func() {
		cs, _ := ws.NewCommandStream(ctx, amd.IPGFX)
		cs.Emit(0xffff1000)
		f, _ := cs.Flush(0)
		done <- f
	}()

	select {
	case <-done:
		t.Fatal("flush past the ring did not wait for the oldest fence")
	case <-time.After(50 * time.Millisecond):
	}

	k.complete(amd.IPGFX, 1)
	select {
	case f := <-done:
		if f.SeqNo() != RingSize+1 {
			t.Errorf("seq %d", f.SeqNo())
		}
		f.Release()
	case <-time.After(5 * time.Second):
		t.Fatal("flush still blocked after the oldest fence signalled")
	}
}

func TestFenceRefcount(t *testing.T) {
	k := newFakeKernel(true)
	ws, err := NewWinsys(Config{Info: amd.NewDeviceInfo(amd.Navi21), Kernel: k})
	if err != nil {
		t.Fatal(err)
	}
	cs, _ := ws.NewCommandStream(ws.NewContext(), amd.IPGFX)

	next, err := cs.GetNextFence()
	if err != nil {
		t.Fatal(err)
	}
	cs.Emit(0xffff1000)
	f, err := cs.Flush(FlushAsync)
	if err != nil {
		t.Fatal(err)
	}
	if f != next {
		t.Error("Flush returned a different fence than GetNextFence")
	}
	if err := cs.SyncFlush(); err != nil {
		t.Fatal(err)
	}
	if err := ws.Close(); err != nil {
		t.Fatal(err)
	}

	f.Release()
	k.mu.Lock()
	alive := len(k.syncobjs)
	k.mu.Unlock()
	if alive != 1 {
		t.Fatalf("%d syncobjs alive with one reference left", alive)
	}
	next.Release()
	k.mu.Lock()
	alive = len(k.syncobjs)
	k.mu.Unlock()
	if alive != 0 {
		t.Errorf("%d syncobjs alive after the last release", alive)
	}
}

func TestFlushDuringClose(t *testing.T) {
	k := newFakeKernel(true)
	ws, err := NewWinsys(Config{Info: amd.NewDeviceInfo(amd.Navi21), Kernel: k})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cs, _ := ws.NewCommandStream(ws.NewContext(), amd.IPGFX)
			<-start
			for n := 0; n < 50; n++ {
				cs.Emit(0xffff1000)
				f, err := cs.Flush(FlushAsync)
				if err != nil {
					if !strings.Contains(err.Error(), "winsys closed") {
						t.Errorf("flush error %v", err)
					}
					return
				}
				f.Release()
			}
		}()
	}
	close(start)
	if err := ws.Close(); err != nil {
		t.Error(err)
	}
	wg.Wait()

	cs, _ := ws.NewCommandStream(ws.NewContext(), amd.IPGFX)
	cs.Emit(0xffff1000)
	if f, err := cs.Flush(0); f != nil || err == nil {
		t.Errorf("flush after Close = %v, %v", f, err)
	}
}

func TestRollLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.log")
	k := newFakeKernel(true)
	ws, err := NewWinsys(Config{Info: amd.NewDeviceInfo(amd.Navi21), Kernel: k, RollLogPath: path})
	if err != nil {
		t.Fatal(err)
	}
	cs, _ := ws.NewCommandStream(ws.NewContext(), amd.IPGFX)
	cs.Emit(pm4.Pkt3(pm4.OpSetContextReg, 1, false), 0, 5)
	cs.Emit(pm4.Pkt3(pm4.OpDrawIndexAuto, 1, false), 3, 2)
	cs.Emit(pm4.Pkt3(pm4.OpSetContextReg, 1, false), 0, 9)
	f, err := cs.Flush(0)
	if err != nil {
		t.Fatal(err)
	}
	f.Release()

	// Compute IBs are not analyzed.
	ccs, _ := ws.NewCommandStream(ws.NewContext(), amd.IPCompute)
	ccs.Emit(0xffff1000)
	if f, err = ccs.Flush(0); err != nil {
		t.Fatal(err)
	}
	f.Release()

	if err := ws.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	log := string(data)
	if strings.Count(log, " dwords\n") != 1 {
		t.Errorf("expected one IB in the log:\n%s", log)
	}
	if !strings.Contains(log, "1 context rolls, 1 unique") || !strings.Contains(log, "DB_RENDER_CONTROL(0xc)") {
		t.Errorf("roll log:\n%s", log)
	}
}

func TestRejectedSubmissionReportsVMFault(t *testing.T) {
	logs := []string{
		"[    1.000000] amdgpu: old fault in page starting at address 0x0000000000001000\n",
		"[    1.000000] amdgpu: old fault in page starting at address 0x0000000000001000\n" +
			"[    9.500000] amdgpu:   in page starting at address 0x0000800000200000 from client 0x1b\n",
	}
	var mu sync.Mutex
	kernelLog := func(context.Context) (io.Reader, error) {
		mu.Lock()
		defer mu.Unlock()
		s := logs[0]
		if len(logs) > 1 {
			logs = logs[1:]
		}
		return strings.NewReader(s), nil
	}

	k := newFakeKernel(true)
	k.errs = []error{unix.EFAULT}
	ws, err := NewWinsys(Config{Info: amd.NewDeviceInfo(amd.Navi21), Kernel: k, KernelLog: kernelLog})
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	cs, _ := ws.NewCommandStream(ws.NewContext(), amd.IPGFX)
	cs.Emit(0xffff1000)
	f, err := cs.Flush(0)
	defer f.Release()
	if !errors.Is(err, unix.EFAULT) {
		t.Fatalf("flush error %v", err)
	}
	if !strings.Contains(err.Error(), "VM fault at 0x800000200000") {
		t.Errorf("error does not name the fault: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := config.NewConfig()
	env.RollLogPath = "/tmp/env-rolls"

	var cfg Config
	cfg.ApplyEnv(env)
	if cfg.RollLogPath != "/tmp/env-rolls" || cfg.Logger == nil {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}

	cfg = Config{RollLogPath: "/tmp/explicit", Logger: common.NewNoOpLogger()}
	cfg.ApplyEnv(env)
	if cfg.RollLogPath != "/tmp/explicit" {
		t.Errorf("explicit roll log replaced by %q", cfg.RollLogPath)
	}
	if _, ok := cfg.Logger.(*common.NoOpLogger); !ok {
		t.Errorf("explicit logger replaced by %T", cfg.Logger)
	}
}
