package pm4

import (
	"fmt"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
)

// Packet types carried in header bits [31:30].
const (
	Type0 = 0
	Type2 = 2
	Type3 = 3
)

const (
	// Type2Nop is the one dword type-2 filler packet.
	Type2Nop uint32 = 0x80000000
	// NopPad is a type-3 NOP with the maximum count field, which the CP
	// treats as a one dword packet.
	NopPad uint32 = 0xffff1000

	maxCountField = 0x3fff
)

// Header is the decoded form of a packet header dword.
type Header struct {
	Type           uint8
	Count          int // payload dwords following the header
	Opcode         Opcode
	Predicate      bool
	ShaderType     uint8
	ResetFilterCam bool
}

// DecodeHeader splits a header dword into its bitfields. The count field is
// stored as payload-1 and is returned as the real payload size.
func DecodeHeader(word uint32) Header {
	return Header{
		Type:           uint8(word >> 30),
		Count:          int((word>>16)&maxCountField) + 1,
		Opcode:         Opcode((word >> 8) & 0xff),
		Predicate:      word&1 != 0,
		ShaderType:     uint8((word >> 1) & 1),
		ResetFilterCam: (word>>2)&1 != 0,
	}
}

// EncodeHeader is the inverse of DecodeHeader for type-3 packets.
func EncodeHeader(h Header) (uint32, error) {
	if h.Opcode > 254 {
		return 0, common.NewErrorMsg(amd.ErrSevError, amd.ErrInvalidPktHdr,
			fmt.Sprintf("opcode 0x%x out of range", uint8(h.Opcode)))
	}
	if h.Count < 1 || h.Count-1 > maxCountField {
		return 0, common.NewErrorMsg(amd.ErrSevError, amd.ErrInvalidPktHdr,
			fmt.Sprintf("payload count %d out of range", h.Count))
	}
	w := Pkt3(h.Opcode, h.Count-1, h.Predicate)
	w |= uint32(h.ShaderType&1) << 1
	if h.ResetFilterCam {
		w |= ResetFilterCam
	}
	return w, nil
}

// ResetFilterCam is header bit 2. SET_*_PAIRS packets on the gfx queue
// must set it.
const ResetFilterCam uint32 = 1 << 2

// ShaderTypeCompute is header bit 1.
const ShaderTypeCompute uint32 = 1 << 1

// Pkt3 builds a type-3 header. count is payload dwords minus one. The caller
// guarantees the ranges.
func Pkt3(op Opcode, count int, predicate bool) uint32 {
	w := uint32(Type3)<<30 | (uint32(count)&maxCountField)<<16 | uint32(op)<<8
	if predicate {
		w |= 1
	}
	return w
}

// Dwords returns the total packet length including the header.
func (h Header) Dwords() int {
	if h.Type == Type2 {
		return 1
	}
	return h.Count + 1
}

func (h Header) String() string {
	if h.Type == Type2 {
		return "PKT2 NOP"
	}
	s := fmt.Sprintf("PKT%d %s count=%d", h.Type, h.Opcode, h.Count)
	if h.Predicate {
		s += " (predicate)"
	}
	if h.ResetFilterCam {
		s += " (reset_filter_cam)"
	}
	return s
}
