// Package ctxroll finds context rolls in a GFX command buffer: points where
// context register writes land while the current context is still in use
// by a draw, forcing the CP to switch to a new hardware context.
package ctxroll

import (
	"math/bits"

	"pm4dbg/common"
	"pm4dbg/internal/amd"
	icommon "pm4dbg/internal/common"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/regs"
	"pm4dbg/internal/shadow"
)

// NumContextRegs is the size of the tracked context register file.
const NumContextRegs = 1024

// RegisterFile is a snapshot of the context registers.
type RegisterFile struct {
	Regs [NumContextRegs]uint32
}

// Deltas is what changed during one context: the registers written, the
// bits that changed in each, and whether an ACQUIRE_MEM ended the previous
// context. Deltas is comparable so identical rolls can be grouped.
type Deltas struct {
	Written      [NumContextRegs / 64]uint64
	ChangedMasks [NumContextRegs]uint32
	AcquireMem   bool
}

func (d *Deltas) set(i int) { d.Written[i/64] |= 1 << (i % 64) }
func (d *Deltas) IsWritten(i int) bool { return d.Written[i/64]&(1<<(i%64)) != 0 }

// NumWritten returns the number of distinct registers written.
func (d *Deltas) NumWritten() int {
	n := 0
	for _, w := range d.Written {
		n += bits.OnesCount64(w)
	}
	return n
}

// Roll is one reported context. Start is the dword index of the packet
// that opened it.
type Roll struct {
	Deltas
	Start int
}

// Config for the analyzer.
type Config struct {
	GfxLevel amd.GfxLevel
	Family   amd.Family
	Catalog  regs.Catalog
	Logger   common.Logger
}

// batch is the context being filled by register writes. The first batch
// after the start of a buffer or an idle point describes state already
// resident on the GPU and is never reported.
type batch struct {
	Roll
	report bool
}

// Analyzer replays a command buffer and collects context rolls.
type Analyzer struct {
	cfg Config
	cat regs.Catalog
	log common.Logger

	cur    RegisterFile
	open   *batch
	busy   bool
	primed bool

	rolls []Roll
}

func NewAnalyzer(cfg Config) *Analyzer {
	a := &Analyzer{cfg: cfg, cat: cfg.Catalog, log: common.OrNoOp(cfg.Logger)}
	if a.cat == nil {
		a.cat = regs.Builtin()
	}
	return a
}

// Rolls returns the rolls recorded so far.
func (a *Analyzer) Rolls() []Roll {
	return a.rolls
}

// Reset forgets recorded rolls and the register state.
func (a *Analyzer) Reset() {
	a.cur = RegisterFile{}
	a.open = nil
	a.busy = false
	a.primed = false
	a.rolls = nil
}

// Registers returns the current register file.
func (a *Analyzer) Registers() RegisterFile {
	return a.cur
}

// Analyze replays words. Each call starts from an idle pipeline; the
// register file carries over from previous calls. Framing errors and
// packets that make roll counting unreliable are fatal.
func (a *Analyzer) Analyze(words []uint32) error {
	a.idle()

	cur := 0
	for cur < len(words) {
		hdr := words[cur]
		h := pm4.DecodeHeader(hdr)
		if h.Type == pm4.Type2 || hdr == pm4.NopPad {
			cur++
			continue
		}
		if h.Type != pm4.Type3 {
			return icommon.Errorf(amd.ErrInvalidPktHdr, cur, "type %d packet header 0x%08x", h.Type, hdr)
		}
		end := cur + h.Dwords()
		if end > len(words) {
			return icommon.Errorf(amd.ErrIBOverrun, cur, "%s needs %d dwords, %d left", h.Opcode, h.Dwords(), len(words)-cur)
		}

		stop, err := a.packet(h, cur, words[cur+1:end])
		if err != nil {
			return err
		}
		if stop {
			break
		}
		cur = end
	}
	a.commit()
	return nil
}

func (a *Analyzer) packet(h pm4.Header, idx int, payload []uint32) (bool, error) {
	op := h.Opcode
	switch {
	case op == pm4.OpSetContextReg:
		if len(payload) < 1 {
			return false, icommon.Errorf(amd.ErrPktCountTooLow, idx, "%s without register offset", op)
		}
		base := payload[0] & 0xffff
		for i, v := range payload[1:] {
			if err := a.setReg(idx, base+uint32(i), v); err != nil {
				return false, err
			}
		}
	case op == pm4.OpSetContextRegPairs:
		for i := 0; i+1 < len(payload); i += 2 {
			if err := a.setReg(idx, payload[i]&0xffff, payload[i+1]); err != nil {
				return false, err
			}
		}
	case op == pm4.OpSetContextRegPairsPacked:
		if len(payload) < 1 {
			return false, icommon.Errorf(amd.ErrPktCountTooLow, idx, "%s without register count", op)
		}
		for i := 1; i+2 < len(payload); i += 3 {
			if err := a.setReg(idx, payload[i]&0xffff, payload[i+1]); err != nil {
				return false, err
			}
			if err := a.setReg(idx, payload[i]>>16, payload[i+2]); err != nil {
				return false, err
			}
		}

	case op == pm4.OpClearState:
		a.roll(idx)
		seqs, err := shadow.ClearStateTable(a.cfg.GfxLevel)
		if err != nil {
			a.log.Logf(common.SeverityWarning, "CLEAR_STATE at dword %d: no default table for %s", idx, a.cfg.GfxLevel)
			break
		}
		for _, seq := range seqs {
			rel := (seq.Offset - amd.ContextRegOffset) / 4
			for i, v := range seq.Values {
				if err := a.setReg(idx, rel+uint32(i), v); err != nil {
					return false, err
				}
			}
		}

	case op == pm4.OpAcquireMem:
		if pm4.IsPWSAcquire(a.cfg.GfxLevel, payload) {
			a.idle()
			break
		}
		a.roll(idx)
		a.open.AcquireMem = true
	case op == pm4.OpWaitRegMem:
		a.idle()
	case op == pm4.OpEventWrite:
		if len(payload) > 0 && pm4.GetEventType(payload[0]) == pm4.EventPSPartialFlush {
			a.idle()
		}

	case op.IsDraw() || op.IsDispatch():
		a.busy = true

	case op == pm4.OpIndirectBuffer:
		// Chained and nested IBs cannot be told apart reliably here.
		return true, nil
	case op == pm4.OpContextRegRMW, op == pm4.OpIndirectBufferSI, op == pm4.OpSurfaceSync:
		return false, icommon.Errorf(amd.ErrUnsupportedPkt, idx, "%s is not supported by the context roll analyzer", op)
	}
	return false, nil
}

// roll starts a new context if the current one is busy, and makes sure a
// batch is open.
func (a *Analyzer) roll(idx int) {
	if a.busy {
		a.commit()
		a.busy = false
	}
	if a.open == nil {
		a.open = &batch{Roll: Roll{Start: idx}, report: a.primed}
		a.primed = true
	}
}

func (a *Analyzer) setReg(idx int, rel, value uint32) error {
	if rel >= NumContextRegs {
		return icommon.Errorf(amd.ErrRegFileOverflow, idx, "context register 0x%05x outside the tracked file",
			amd.ContextRegOffset+rel*4)
	}
	a.roll(idx)
	a.open.ChangedMasks[rel] |= a.cur.Regs[rel] ^ value
	a.open.set(int(rel))
	a.cur.Regs[rel] = value
	return nil
}

func (a *Analyzer) commit() {
	if a.open != nil && a.open.report {
		a.rolls = append(a.rolls, a.open.Roll)
	}
	a.open = nil
}

// idle marks the pipeline drained. The open batch is dropped and the next
// write starts from known state.
func (a *Analyzer) idle() {
	a.open = nil
	a.busy = false
	a.primed = false
}
