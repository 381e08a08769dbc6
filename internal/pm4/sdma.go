package pm4

import "fmt"

// SDMAOpcode is bits [7:0] of an SDMA packet header.
type SDMAOpcode uint8

const (
	SDMAOpNop            SDMAOpcode = 0
	SDMAOpCopy           SDMAOpcode = 1
	SDMAOpWrite          SDMAOpcode = 2
	SDMAOpIndirectBuffer SDMAOpcode = 4
	SDMAOpFence          SDMAOpcode = 5
	SDMAOpTrap           SDMAOpcode = 6
	SDMAOpSemaphore      SDMAOpcode = 7
	SDMAOpPollRegMem     SDMAOpcode = 8
	SDMAOpCondExec       SDMAOpcode = 9
	SDMAOpAtomic         SDMAOpcode = 10
	SDMAOpConstantFill   SDMAOpcode = 11
	SDMAOpTimestamp      SDMAOpcode = 13
	SDMAOpSRBMWrite      SDMAOpcode = 14
	SDMAOpGCR            SDMAOpcode = 17
)

// Copy sub-opcodes, header bits [15:8].
const (
	SDMACopyLinear          = 0
	SDMACopyTiled           = 1
	SDMACopySOA             = 3
	SDMACopyLinearSubWindow = 4
	SDMACopyTiledSubWindow  = 5
	SDMACopyT2TSubWindow    = 6
)

var sdmaNames = map[SDMAOpcode]string{
	SDMAOpNop:            "NOP",
	SDMAOpCopy:           "COPY",
	SDMAOpWrite:          "WRITE",
	SDMAOpIndirectBuffer: "INDIRECT_BUFFER",
	SDMAOpFence:          "FENCE",
	SDMAOpTrap:           "TRAP",
	SDMAOpSemaphore:      "SEMAPHORE",
	SDMAOpPollRegMem:     "POLL_REGMEM",
	SDMAOpCondExec:       "COND_EXE",
	SDMAOpAtomic:         "ATOMIC",
	SDMAOpConstantFill:   "CONSTANT_FILL",
	SDMAOpTimestamp:      "TIMESTAMP",
	SDMAOpSRBMWrite:      "SRBM_WRITE",
	SDMAOpGCR:            "GCR",
}

func (op SDMAOpcode) String() string {
	if n, ok := sdmaNames[op]; ok {
		return n
	}
	return fmt.Sprintf("SDMA_UNKNOWN(0x%02x)", uint8(op))
}

// SDMAHeader builds an SDMA packet header.
func SDMAHeader(op SDMAOpcode, subOp uint32, extra uint32) uint32 {
	return uint32(op) | (subOp&0xff)<<8 | (extra&0xffff)<<16
}

func GetSDMAOpcode(dw uint32) SDMAOpcode { return SDMAOpcode(dw & 0xff) }
func GetSDMASubOp(dw uint32) uint32      { return (dw >> 8) & 0xff }

// SDMA NOP carries its payload count in header bits [29:16].
func GetSDMANopCount(dw uint32) int { return int((dw >> 16) & 0x3fff) }

// SDMA tiled copies use bit 31 of the header for the copy direction.
const SDMATiledDetile uint32 = 1 << 31
