// Package pm4state builds PM4 register state streams. Consecutive register
// writes are merged into as few SET_*_REG packets as possible.
package pm4state

import (
	"fmt"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/regs"
)

// Builder accumulates PM4 dwords. It is not safe for concurrent use; a
// command buffer has a single writer.
type Builder struct {
	info amd.DeviceInfo
	cat  regs.Catalog

	pm4 []uint32

	lastPM4    int // index of the open packet header, -1 when closed
	lastOpcode pm4.Opcode
	lastReg    uint32 // dword offset relative to the space base
	lastIdx    uint32

	// packedIsPadded is set when the last packed group repeats the first
	// register of the packet to keep the register count even.
	packedIsPadded bool
}

// NewBuilder returns a builder for a device. A nil catalog uses
// regs.Builtin().
func NewBuilder(info amd.DeviceInfo, cat regs.Catalog) *Builder {
	if cat == nil {
		cat = regs.Builtin()
	}
	return &Builder{info: info, cat: cat, lastPM4: -1, lastOpcode: pm4.OpInvalid}
}

// Info returns the device the builder targets.
func (b *Builder) Info() amd.DeviceInfo { return b.info }

// Reset empties the stream.
func (b *Builder) Reset() {
	b.lastPM4 = -1
	b.closePacket()
	b.pm4 = b.pm4[:0]
}

// NumDwords returns the current stream length.
func (b *Builder) NumDwords() int { return len(b.pm4) }

// Cmd appends a complete raw packet.
func (b *Builder) Cmd(words ...uint32) {
	b.closePacket()
	b.pm4 = append(b.pm4, words...)
}

// SetReg writes a register, choosing the packet by address space.
func (b *Builder) SetReg(offset, value uint32) error {
	space, err := b.checkReg(offset)
	if err != nil {
		return err
	}
	op := pm4.SetRegOpcode(space)
	switch {
	case space == amd.SpaceContext && b.info.HasSetContextPairsPacked:
		op = pm4.OpSetContextRegPairsPacked
	case space == amd.SpaceSh && b.info.HasSetShPairsPacked:
		op = pm4.OpSetShRegPairsPacked
	}
	b.setReg(op, space.RelDwords(offset), value, 0)
	return nil
}

// SetRegIdx3 writes a register that needs index 3 (SH registers with
// per-SE masks on GFX10+, UCONFIG registers on GFX9+). Older chips and
// other spaces fall back to SetReg.
func (b *Builder) SetRegIdx3(offset, value uint32) error {
	space, err := b.checkReg(offset)
	if err != nil {
		return err
	}
	switch {
	case space == amd.SpaceSh && b.info.GfxLevel >= amd.Gfx10:
		b.setReg(pm4.OpSetShRegIndex, space.RelDwords(offset), value, 3)
	case space == amd.SpaceUconfig && b.info.GfxLevel >= amd.Gfx9:
		b.setReg(pm4.OpSetUconfigRegIndex, space.RelDwords(offset), value, 3)
	default:
		return b.SetReg(offset, value)
	}
	return nil
}

// SetContextRegSeq emits one SET_CONTEXT_REG packet for a run of registers.
// The run may span registers the catalog does not describe, as the CLEAR_STATE
// tables do.
func (b *Builder) SetContextRegSeq(offset uint32, values []uint32) error {
	if len(values) == 0 {
		return nil
	}
	last := offset + uint32(len(values)-1)*4
	if amd.SpaceOf(offset) != amd.SpaceContext || amd.SpaceOf(last) != amd.SpaceContext || offset%4 != 0 {
		return common.Errorf(amd.ErrInvalidRegOffset, amd.NoIdx,
			"context register run 0x%05x..0x%05x outside the context space", offset, last)
	}
	b.Cmd(pm4.Pkt3(pm4.OpSetContextReg, len(values), false), amd.SpaceContext.RelDwords(offset))
	b.pm4 = append(b.pm4, values...)
	return nil
}

func (b *Builder) checkReg(offset uint32) (amd.RegSpace, error) {
	space := amd.SpaceOf(offset)
	if space == amd.SpaceNone || offset%4 != 0 {
		return space, common.Errorf(amd.ErrInvalidRegOffset, amd.NoIdx, "register offset 0x%05x", offset)
	}
	if b.cat.FindRegister(b.info.GfxLevel, b.info.Family, offset) == nil {
		return space, common.Errorf(amd.ErrUnknownRegister, amd.NoIdx, "register 0x%05x is not known on %s",
			offset, b.info.GfxLevel)
	}
	return space, nil
}

func (b *Builder) setReg(op pm4.Opcode, reg, value, idx uint32) {
	if op.IsPairsPacked() {
		b.setRegPacked(op, reg, value)
		return
	}

	if op != b.lastOpcode || reg != b.lastReg+1 || idx != b.lastIdx {
		b.begin(op)
		b.pm4 = append(b.pm4, pm4.SetRegDw(reg, idx))
	}
	b.lastReg = reg
	b.lastIdx = idx
	b.pm4 = append(b.pm4, value)
	b.end()
}

// setRegPacked appends to a packed pairs packet. Groups are
// (reg0 | reg1<<16, value0, value1). An odd register count is padded by
// writing the packet's first register again; the next write replaces the
// pad.
func (b *Builder) setRegPacked(op pm4.Opcode, reg, value uint32) {
	if op != b.lastOpcode || b.packedHas(reg) {
		b.begin(op)
		b.pm4 = append(b.pm4, 0) // register count, set by end()
	}
	b.lastReg = reg
	b.lastIdx = 0

	if b.packedIsPadded {
		// The last group is (first | first<<16, v, firstValue).
		n := len(b.pm4)
		b.pm4[n-3] = b.pm4[n-3]&0xffff | reg<<16
		b.pm4[n-1] = value
		b.packedIsPadded = false
	} else {
		first, firstValue := reg, value
		if len(b.pm4)-b.lastPM4 > 2 {
			first = b.pm4[b.lastPM4+2] & 0xffff
			firstValue = b.pm4[b.lastPM4+3]
		}
		b.pm4 = append(b.pm4, reg|first<<16, value, firstValue)
		b.packedIsPadded = true
	}
	b.end()
}

// packedHas reports whether the open packed packet already writes reg. A
// repeated register starts a new packet so the pad never replays a stale
// value.
func (b *Builder) packedHas(reg uint32) bool {
	if b.lastPM4 < 0 || !b.lastOpcode.IsPairsPacked() {
		return false
	}
	for _, r := range b.packedRegs() {
		if r == reg {
			return true
		}
	}
	return false
}

// packedRegs lists the registers of the open packed packet, pad excluded.
func (b *Builder) packedRegs() []uint32 {
	var out []uint32
	for i := b.lastPM4 + 2; i+2 < len(b.pm4); i += 3 {
		out = append(out, b.pm4[i]&0xffff, b.pm4[i]>>16)
	}
	if b.packedIsPadded && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}

func (b *Builder) begin(op pm4.Opcode) {
	b.closePacket()
	b.lastPM4 = len(b.pm4)
	b.lastOpcode = op
	b.pm4 = append(b.pm4, 0) // header, set by end()
}

// end rewrites the open packet header for the current length.
func (b *Builder) end() {
	count := len(b.pm4) - b.lastPM4 - 2
	hdr := pm4.Pkt3(b.lastOpcode, count, false)
	if b.lastOpcode.IsPairsPacked() {
		hdr |= pm4.ResetFilterCam
		b.pm4[b.lastPM4+1] = uint32(len(b.packedRegs()))
		if b.packedIsPadded {
			b.pm4[b.lastPM4+1]++
		}
	}
	b.pm4[b.lastPM4] = hdr
}

// closePacket ends register merging. A packed packet whose registers are
// strictly consecutive is rewritten as the shorter plain SET_*_REG form.
func (b *Builder) closePacket() {
	if b.lastPM4 >= 0 && b.lastOpcode.IsPairsPacked() {
		b.compactPacked()
	}
	b.lastPM4 = -1
	b.lastOpcode = pm4.OpInvalid
	b.lastReg = 0
	b.lastIdx = 0
	b.packedIsPadded = false
}

func (b *Builder) compactPacked() {
	regsInPkt := b.packedRegs()
	for i := 1; i < len(regsInPkt); i++ {
		if regsInPkt[i] != regsInPkt[i-1]+1 {
			return
		}
	}

	values := make([]uint32, 0, len(regsInPkt))
	for i := b.lastPM4 + 2; i+2 < len(b.pm4); i += 3 {
		values = append(values, b.pm4[i+1], b.pm4[i+2])
	}
	values = values[:len(regsInPkt)]

	op := b.lastOpcode.PairsPackedToRegular()
	b.pm4 = append(b.pm4[:b.lastPM4],
		pm4.Pkt3(op, len(values), false), pm4.SetRegDw(regsInPkt[0], 0))
	b.pm4 = append(b.pm4, values...)
}

// Finalize closes the open packet. It is called by Dwords and may be
// called at any time; later writes start a new packet.
func (b *Builder) Finalize() {
	b.closePacket()
}

// Dwords finalizes the stream and returns a copy of it.
func (b *Builder) Dwords() []uint32 {
	b.Finalize()
	return append([]uint32(nil), b.pm4...)
}

func (b *Builder) String() string {
	return fmt.Sprintf("pm4state %s: %d dwords", b.info.GfxLevel, len(b.pm4))
}
