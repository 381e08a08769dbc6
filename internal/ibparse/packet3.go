package ibparse

import (
	"fmt"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/printers"
	"pm4dbg/internal/regs"
)

// packet is a bounded reader over one packet payload. Reads past the end
// return zero and still advance pos, so over-consumption is visible after
// the formatter returns.
type packet struct {
	hdr     pm4.Header
	idx     int
	payload []uint32
	pos     int
}

func (k *packet) next() uint32 {
	var v uint32
	if k.pos < len(k.payload) {
		v = k.payload[k.pos]
	}
	k.pos++
	return v
}

func (k *packet) peek(i int) uint32 {
	if k.pos+i < len(k.payload) {
		return k.payload[k.pos+i]
	}
	return 0
}

func (k *packet) remaining() int {
	if n := len(k.payload) - k.pos; n > 0 {
		return n
	}
	return 0
}

const (
	traceMagic     uint32 = 0xcafe0000
	traceMagicMask uint32 = 0xffff0000
)

var (
	acquireMemGfx9 = []uint32{
		regs.PktCoherCntl, regs.PktCoherSize, regs.PktCoherSizeHi,
		regs.PktCoherBase, regs.PktCoherBaseHi, regs.PktPollInterval,
	}
	acquireMemGfx10 = append(append([]uint32{}, acquireMemGfx9...), regs.PktGCRCntl)
	acquireMemPWS   = []uint32{
		regs.PktAcquireMemPWS, regs.PktCoherSize, regs.PktCoherSizeHi,
		regs.PktCoherBase, regs.PktCoherBaseHi, regs.PktAcquireMemPWSEna, regs.PktGCRCntl,
	}
	releaseMemLayout = []uint32{
		regs.PktReleaseMemOp, regs.PktReleaseMemSel, regs.PktAddressLo, regs.PktAddressHi,
		regs.PktDataLo, regs.PktDataHi, regs.PktIntCtxID,
	}
)

const (
	regVGTDrawInitiator    uint32 = 0x0287f0
	regVGTIndexType        uint32 = 0x03090c
	regVGTNumInstances     uint32 = 0x030934
	regComputeDimX         uint32 = 0x00b804
	regComputeDispatchInit uint32 = 0x00b800
)

// layout prints as many fields of a fixed layout as the header allows.
// A zero offset consumes the dword without printing it.
func (p *Parser) layout(k *packet, offsets []uint32) {
	for _, off := range offsets {
		if k.remaining() == 0 {
			return
		}
		v := k.next()
		if off != 0 {
			p.reg(off, v)
		}
	}
}

// formatPacket3 prints the payload of one type-3 packet. Fixed layouts
// read their full size; a header that is too short shows up as
// over-consumption in the caller.
func (p *Parser) formatPacket3(b *ib, k *packet, depth int) (*ib, error) {
	op := k.hdr.Opcode
	level := p.cfg.GfxLevel

	switch op {
	case pm4.OpSetConfigReg, pm4.OpSetContextReg, pm4.OpSetShReg, pm4.OpSetUconfigReg,
		pm4.OpSetShRegIndex, pm4.OpSetUconfigRegIndex:
		p.setReg(k, pm4.SetRegSpace(op).Base())
	case pm4.OpSetContextRegPairs, pm4.OpSetShRegPairs:
		base := pm4.SetRegSpace(op).Base()
		for k.remaining() >= 2 {
			off := base + (k.next()&0xffff)<<2
			p.reg(off, k.next())
		}
	case pm4.OpSetContextRegPairsPacked, pm4.OpSetShRegPairsPacked, pm4.OpSetShRegPairsPackedN:
		p.setRegPairsPacked(k, pm4.SetRegSpace(op).Base())

	case pm4.OpAcquireMem:
		switch {
		case pm4.IsPWSAcquire(level, k.payload):
			p.layout(k, acquireMemPWS)
		case level >= amd.Gfx10:
			p.layout(k, acquireMemGfx10)
		default:
			p.layout(k, acquireMemGfx9)
		}
	case pm4.OpReleaseMem:
		p.layout(k, releaseMemLayout)
	case pm4.OpEventWrite:
		p.reg(regs.PktEventCntl, k.next())
		if k.remaining() >= 2 {
			p.reg(regs.PktAddressLo, k.next())
			p.reg(regs.PktAddressHi, k.next())
		}
	case pm4.OpEventWriteEOP:
		p.reg(regs.PktEventCntl, k.next())
		p.reg(regs.PktAddressLo, k.next())
		p.reg(regs.PktAddressHi, k.next())
		p.reg(regs.PktDataLo, k.next())
		p.reg(regs.PktDataHi, k.next())

	case pm4.OpWriteData:
		p.writeData(k)
	case pm4.OpCopyData:
		p.reg(regs.PktCopyDataControl, k.next())
		p.reg(regs.PktSrcAddrLo, k.next())
		p.reg(regs.PktSrcAddrHi, k.next())
		p.reg(regs.PktDstAddrLo, k.next())
		p.reg(regs.PktDstAddrHi, k.next())
	case pm4.OpWaitRegMem:
		p.reg(regs.PktWaitRegMemControl, k.next())
		p.reg(regs.PktPollAddressLo, k.next())
		p.reg(regs.PktPollAddressHi, k.next())
		p.reg(regs.PktReference, k.next())
		p.reg(regs.PktMask, k.next())
		p.reg(regs.PktPollInterval, k.next())

	case pm4.OpDrawIndexAuto:
		p.reg(regs.PktIndexCount, k.next())
		p.reg(regVGTDrawInitiator, k.next())
	case pm4.OpDrawIndex2:
		p.reg(regs.PktIndexBufferSize, k.next())
		p.reg(regs.PktIndexBaseLo, k.next())
		p.reg(regs.PktIndexBaseHi, k.next())
		p.reg(regs.PktIndexCount, k.next())
		p.reg(regVGTDrawInitiator, k.next())
	case pm4.OpDrawIndexOffset2:
		p.reg(regs.PktIndexBufferSize, k.next())
		p.named("INDEX_OFFSET", k.next())
		p.reg(regs.PktIndexCount, k.next())
		p.reg(regVGTDrawInitiator, k.next())
	case pm4.OpIndexType:
		p.reg(regVGTIndexType, k.next())
	case pm4.OpNumInstances:
		p.reg(regVGTNumInstances, k.next())
	case pm4.OpIndexBase:
		p.reg(regs.PktIndexBaseLo, k.next())
		p.reg(regs.PktIndexBaseHi, k.next())
	case pm4.OpIndexBufferSize:
		p.reg(regs.PktIndexBufferSize, k.next())

	case pm4.OpDispatchDirect:
		for i := uint32(0); i < 3; i++ {
			p.reg(regComputeDimX+4*i, k.next())
		}
		p.reg(regComputeDispatchInit, k.next())
	case pm4.OpDispatchIndirect:
		p.named("DATA_OFFSET", k.next())
		p.reg(regComputeDispatchInit, k.next())

	case pm4.OpContextControl:
		p.reg(regs.PktLoadControl, k.next())
		p.reg(regs.PktShadowControl, k.next())
	case pm4.OpClearState, pm4.OpPFPSyncME:
		// dummy dword
		k.next()

	case pm4.OpCPDMA:
		p.layout(k, []uint32{regs.PktCPDMAWord0, regs.PktCPDMAWord1, regs.PktCPDMAWord2,
			regs.PktCPDMAWord3, regs.PktCPDMACommand})
	case pm4.OpDMAData:
		p.layout(k, []uint32{regs.PktDMADataWord0, regs.PktSrcAddrLo, regs.PktSrcAddrHi,
			regs.PktDstAddrLo, regs.PktDstAddrHi, regs.PktCPDMACommand})

	case pm4.OpLoadConfigReg, pm4.OpLoadContextReg, pm4.OpLoadShReg, pm4.OpLoadUconfigReg:
		p.loadReg(k, pm4.SetRegSpace(op).Base())

	case pm4.OpIndirectBuffer:
		return p.indirectBuffer(b, k, depth)

	case pm4.OpNop:
		p.nop(b, k)

	default:
		// Unknown or undecoded packets print their payload raw.
	}
	return nil, nil
}

func (p *Parser) setReg(k *packet, base uint32) {
	dw := k.next()
	off := base + (dw&0xffff)<<2
	if index := dw >> 28; index != 0 {
		p.out.Linef(pktIndent, "INDEX = %d", index)
	}
	for k.remaining() > 0 {
		p.reg(off, k.next())
		off += 4
	}
}

func (p *Parser) setRegPairsPacked(k *packet, base uint32) {
	p.out.Linef(pktIndent, "REG_COUNT = %d", k.next())
	for k.remaining() >= 3 {
		offs := k.next()
		p.reg(base+(offs&0xffff)<<2, k.next())
		p.reg(base+(offs>>16)<<2, k.next())
	}
}

func (p *Parser) writeData(k *packet) {
	ctl := k.next()
	p.reg(regs.PktWriteDataControl, ctl)
	lo, hi := k.next(), k.next()
	p.reg(regs.PktDstAddrLo, lo)
	p.reg(regs.PktDstAddrHi, hi)

	if pm4.GetWriteDataDstSel(ctl) == pm4.DstSelMemMappedRegister {
		// DST_ADDR_LO is a dword register index
		off := lo << 2
		for k.remaining() > 0 {
			p.reg(off, k.next())
			off += 4
		}
		return
	}
	for k.remaining() > 0 {
		p.out.Linef(pktIndent, "0x%08x", k.next())
	}
}

func (p *Parser) loadReg(k *packet, base uint32) {
	p.reg(regs.PktLoadAddressLo, k.next())
	p.reg(regs.PktLoadAddressHi, k.next())
	for k.remaining() >= 2 {
		start := base + (k.next()&0xffff)<<2
		n := k.next() & 0x3fff
		name := regs.RegisterName(p.cat, p.cfg.GfxLevel, p.cfg.Family, start)
		p.out.Linef(pktIndent, "%s, %d dwords", p.out.Wrap(printers.ColorYellow, name), n)
	}
}

// TracePointState tells where a trace point sits relative to the last id
// the CP reached.
type TracePointState int

const (
	TraceReached TracePointState = iota
	TraceLastReached
	TraceFirstNotReached
	TraceNotReached
)

// TraceState classifies trace point id against the reached id.
func TraceState(id, reached uint32) TracePointState {
	switch {
	case id < reached:
		return TraceReached
	case id == reached:
		return TraceLastReached
	case id == reached+1:
		return TraceFirstNotReached
	}
	return TraceNotReached
}

func (s TracePointState) String() string {
	switch s {
	case TraceReached:
		return "This trace point was reached by the CP."
	case TraceLastReached:
		return "!!!!! This is the last trace point that was reached by the CP !!!!!"
	case TraceFirstNotReached:
		return "!!!!! This is the first trace point that was NOT reached by the CP !!!!!"
	}
	return "!!!!! This trace point was NOT reached by the CP !!!!!"
}

func (p *Parser) nop(b *ib, k *packet) {
	if len(k.payload) != 1 || k.payload[0]&traceMagicMask != traceMagic {
		return
	}
	id := k.next() &^ traceMagicMask
	p.out.Linef(pktIndent, "%s", p.out.Wrap(printers.ColorRed, fmt.Sprintf("Trace point ID: %d", id)))
	if len(b.traceIDs) == 0 {
		return
	}
	b.lastTrace = int64(id)
	state := TraceState(id, b.traceIDs[0])
	color := printers.ColorRed
	if state == TraceReached {
		color = printers.ColorGreen
	}
	p.out.Linef(pktIndent, "%s", p.out.Wrap(color, state.String()))
}

// remainingTraceIDs is the id list for an IB reached from b. The CP only
// got there if b reached its own last id.
func (b *ib) remainingTraceIDs() []uint32 {
	if len(b.traceIDs) > 0 && b.lastTrace == int64(b.traceIDs[0]) {
		return b.traceIDs[1:]
	}
	return nil
}

// indirectBuffer prints the IB pointer and follows it when the address
// callback can resolve it.
func (p *Parser) indirectBuffer(b *ib, k *packet, depth int) (*ib, error) {
	lo, hi, ctl := k.next(), k.next(), k.next()
	p.reg(regs.PktIBBaseLo, lo)
	p.reg(regs.PktIBBaseHi, hi)
	p.reg(regs.PktIBControl, ctl)

	if p.cfg.AddrCallback == nil {
		return nil, nil
	}
	va := uint64(hi&0xffff)<<32 | uint64(lo&^3)
	size := ctl & pm4.IBSizeMask
	words, ok := p.cfg.AddrCallback(va, size)
	if !ok {
		p.out.Linef(pktIndent, "%s", p.out.Wrap(printers.ColorRed, fmt.Sprintf("IB at 0x%x (%d dwords) is not mapped", va, size)))
		return nil, nil
	}

	if ctl&pm4.IBChain != 0 {
		return &ib{words: words, va: va, traceIDs: b.remainingTraceIDs()}, nil
	}
	if depth+1 >= maxNestDepth {
		p.errorLine("IB nesting deeper than %d, not following 0x%x", maxNestDepth, va)
		return nil, nil
	}

	nested := newIB(words, va, nil)
	nested.kind = "nested"
	nested.parent = b.node
	nested.traceIDs = b.remainingTraceIDs()

	p.out.Linef(0, "%s", nestedBegin)
	p.out.Indent()
	err := p.parseIB(nested, depth+1)
	p.out.Dedent()
	p.out.Linef(0, "%s", nestedEnd)
	return nil, err
}
