package pm4

import (
	"fmt"
	"strings"

	"pm4dbg/internal/amd"
)

// Opcode is a type-3 packet opcode, header bits [15:8].
type Opcode uint8

const (
	OpNop                          Opcode = 0x10
	OpSetBase                      Opcode = 0x11
	OpClearState                   Opcode = 0x12
	OpIndexBufferSize              Opcode = 0x13
	OpDispatchDirect               Opcode = 0x15
	OpDispatchIndirect             Opcode = 0x16
	OpAtomicMem                    Opcode = 0x1e
	OpOcclusionQuery               Opcode = 0x1f
	OpSetPredication               Opcode = 0x20
	OpCondExec                     Opcode = 0x22
	OpPredExec                     Opcode = 0x23
	OpDrawIndirect                 Opcode = 0x24
	OpDrawIndexIndirect            Opcode = 0x25
	OpIndexBase                    Opcode = 0x26
	OpDrawIndex2                   Opcode = 0x27
	OpContextControl               Opcode = 0x28
	OpIndexType                    Opcode = 0x2a
	OpDrawIndirectMulti            Opcode = 0x2c
	OpDrawIndexAuto                Opcode = 0x2d
	OpNumInstances                 Opcode = 0x2f
	OpDrawIndexMultiAuto           Opcode = 0x30
	OpIndirectBufferSI             Opcode = 0x33
	OpStrmoutBufferUpdate          Opcode = 0x34
	OpDrawIndexOffset2             Opcode = 0x35
	OpWriteData                    Opcode = 0x37
	OpDrawIndexIndirectMulti       Opcode = 0x38
	OpMemSemaphore                 Opcode = 0x39
	OpWaitRegMem                   Opcode = 0x3c
	OpIndirectBuffer               Opcode = 0x3f
	OpCopyData                     Opcode = 0x40
	OpCPDMA                        Opcode = 0x41
	OpPFPSyncME                    Opcode = 0x42
	OpSurfaceSync                  Opcode = 0x43
	OpCondWrite                    Opcode = 0x45
	OpEventWrite                   Opcode = 0x46
	OpEventWriteEOP                Opcode = 0x47
	OpEventWriteEOS                Opcode = 0x48
	OpReleaseMem                   Opcode = 0x49
	OpPreambleCntl                 Opcode = 0x4a
	OpDMAData                      Opcode = 0x50
	OpContextRegRMW                Opcode = 0x51
	OpAcquireMem                   Opcode = 0x58
	OpRewind                       Opcode = 0x59
	OpLoadUconfigReg               Opcode = 0x5e
	OpLoadShReg                    Opcode = 0x5f
	OpLoadConfigReg                Opcode = 0x60
	OpLoadContextReg               Opcode = 0x61
	OpSetConfigReg                 Opcode = 0x68
	OpSetContextReg                Opcode = 0x69
	OpSetContextRegIndirect        Opcode = 0x73
	OpSetShReg                     Opcode = 0x76
	OpSetShRegOffset               Opcode = 0x77
	OpSetUconfigReg                Opcode = 0x79
	OpSetUconfigRegIndex           Opcode = 0x7a
	OpIncrementCECounter           Opcode = 0x84
	OpIncrementDECounter           Opcode = 0x85
	OpWaitOnCECounter              Opcode = 0x86
	OpSetShRegIndex                Opcode = 0x9b
	OpDispatchMeshIndirectMulti    Opcode = 0x9d
	OpDispatchTaskMeshGFX          Opcode = 0x9e
	OpLoadContextRegIndex          Opcode = 0x9f
	OpDispatchTaskMeshDirectACE    Opcode = 0xa9
	OpDispatchTaskMeshIndirectMACE Opcode = 0xaa
	OpSetContextRegPairs           Opcode = 0xb8
	OpSetContextRegPairsPacked     Opcode = 0xb9
	OpSetShRegPairs                Opcode = 0xba
	OpSetShRegPairsPacked          Opcode = 0xbb
	OpSetShRegPairsPackedN         Opcode = 0xbd

	// OpInvalid is never emitted. Builders use it to mark that no packet is
	// open.
	OpInvalid Opcode = 0xff
)

var opcodeNames = map[Opcode]string{
	OpNop:                          "NOP",
	OpSetBase:                      "SET_BASE",
	OpClearState:                   "CLEAR_STATE",
	OpIndexBufferSize:              "INDEX_BUFFER_SIZE",
	OpDispatchDirect:               "DISPATCH_DIRECT",
	OpDispatchIndirect:             "DISPATCH_INDIRECT",
	OpAtomicMem:                    "ATOMIC_MEM",
	OpOcclusionQuery:               "OCCLUSION_QUERY",
	OpSetPredication:               "SET_PREDICATION",
	OpCondExec:                     "COND_EXEC",
	OpPredExec:                     "PRED_EXEC",
	OpDrawIndirect:                 "DRAW_INDIRECT",
	OpDrawIndexIndirect:            "DRAW_INDEX_INDIRECT",
	OpIndexBase:                    "INDEX_BASE",
	OpDrawIndex2:                   "DRAW_INDEX_2",
	OpContextControl:               "CONTEXT_CONTROL",
	OpIndexType:                    "INDEX_TYPE",
	OpDrawIndirectMulti:            "DRAW_INDIRECT_MULTI",
	OpDrawIndexAuto:                "DRAW_INDEX_AUTO",
	OpNumInstances:                 "NUM_INSTANCES",
	OpDrawIndexMultiAuto:           "DRAW_INDEX_MULTI_AUTO",
	OpIndirectBufferSI:             "INDIRECT_BUFFER_SI",
	OpStrmoutBufferUpdate:          "STRMOUT_BUFFER_UPDATE",
	OpDrawIndexOffset2:             "DRAW_INDEX_OFFSET_2",
	OpWriteData:                    "WRITE_DATA",
	OpDrawIndexIndirectMulti:       "DRAW_INDEX_INDIRECT_MULTI",
	OpMemSemaphore:                 "MEM_SEMAPHORE",
	OpWaitRegMem:                   "WAIT_REG_MEM",
	OpIndirectBuffer:               "INDIRECT_BUFFER",
	OpCopyData:                     "COPY_DATA",
	OpCPDMA:                        "CP_DMA",
	OpPFPSyncME:                    "PFP_SYNC_ME",
	OpSurfaceSync:                  "SURFACE_SYNC",
	OpCondWrite:                    "COND_WRITE",
	OpEventWrite:                   "EVENT_WRITE",
	OpEventWriteEOP:                "EVENT_WRITE_EOP",
	OpEventWriteEOS:                "EVENT_WRITE_EOS",
	OpReleaseMem:                   "RELEASE_MEM",
	OpPreambleCntl:                 "PREAMBLE_CNTL",
	OpDMAData:                      "DMA_DATA",
	OpContextRegRMW:                "CONTEXT_REG_RMW",
	OpAcquireMem:                   "ACQUIRE_MEM",
	OpRewind:                       "REWIND",
	OpLoadUconfigReg:               "LOAD_UCONFIG_REG",
	OpLoadShReg:                    "LOAD_SH_REG",
	OpLoadConfigReg:                "LOAD_CONFIG_REG",
	OpLoadContextReg:               "LOAD_CONTEXT_REG",
	OpSetConfigReg:                 "SET_CONFIG_REG",
	OpSetContextReg:                "SET_CONTEXT_REG",
	OpSetContextRegIndirect:        "SET_CONTEXT_REG_INDIRECT",
	OpSetShReg:                     "SET_SH_REG",
	OpSetShRegOffset:               "SET_SH_REG_OFFSET",
	OpSetUconfigReg:                "SET_UCONFIG_REG",
	OpSetUconfigRegIndex:           "SET_UCONFIG_REG_INDEX",
	OpIncrementCECounter:           "INCREMENT_CE_COUNTER",
	OpIncrementDECounter:           "INCREMENT_DE_COUNTER",
	OpWaitOnCECounter:              "WAIT_ON_CE_COUNTER",
	OpSetShRegIndex:                "SET_SH_REG_INDEX",
	OpDispatchMeshIndirectMulti:    "DISPATCH_MESH_INDIRECT_MULTI",
	OpDispatchTaskMeshGFX:          "DISPATCH_TASKMESH_GFX",
	OpLoadContextRegIndex:          "LOAD_CONTEXT_REG_INDEX",
	OpDispatchTaskMeshDirectACE:    "DISPATCH_TASKMESH_DIRECT_ACE",
	OpDispatchTaskMeshIndirectMACE: "DISPATCH_TASKMESH_INDIRECT_MULTI_ACE",
	OpSetContextRegPairs:           "SET_CONTEXT_REG_PAIRS",
	OpSetContextRegPairsPacked:     "SET_CONTEXT_REG_PAIRS_PACKED",
	OpSetShRegPairs:                "SET_SH_REG_PAIRS",
	OpSetShRegPairsPacked:          "SET_SH_REG_PAIRS_PACKED",
	OpSetShRegPairsPackedN:         "SET_SH_REG_PAIRS_PACKED_N",
}

// Name returns the packet name, or "" for unknown opcodes.
func (op Opcode) Name() string {
	return opcodeNames[op]
}

func (op Opcode) String() string {
	if n, ok := opcodeNames[op]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", uint8(op))
}

// Known reports whether op is in the opcode table.
func (op Opcode) Known() bool {
	_, ok := opcodeNames[op]
	return ok
}

// IsDraw reports whether the packet launches vertex work.
func (op Opcode) IsDraw() bool {
	return strings.HasPrefix(op.Name(), "DRAW_") || op == OpDispatchTaskMeshGFX ||
		op == OpDispatchMeshIndirectMulti
}

// IsDispatch reports whether the packet launches compute work.
func (op Opcode) IsDispatch() bool {
	switch op {
	case OpDispatchDirect, OpDispatchIndirect, OpDispatchTaskMeshDirectACE, OpDispatchTaskMeshIndirectMACE:
		return true
	}
	return false
}

// IsPairs reports the unpacked SET_*_PAIRS opcodes.
func (op Opcode) IsPairs() bool {
	return op == OpSetContextRegPairs || op == OpSetShRegPairs
}

// IsPairsPacked reports the SET_*_PAIRS_PACKED opcodes.
func (op Opcode) IsPairsPacked() bool {
	return op == OpSetContextRegPairsPacked || op == OpSetShRegPairsPacked || op == OpSetShRegPairsPackedN
}

// PairsPackedToRegular maps a packed pairs opcode to its plain form.
func (op Opcode) PairsPackedToRegular() Opcode {
	if op == OpSetContextRegPairsPacked {
		return OpSetContextReg
	}
	return OpSetShReg
}

// SetRegOpcode returns the plain SET_*_REG opcode for a register space.
func SetRegOpcode(s amd.RegSpace) Opcode {
	switch s {
	case amd.SpaceConfig:
		return OpSetConfigReg
	case amd.SpaceSh:
		return OpSetShReg
	case amd.SpaceContext:
		return OpSetContextReg
	case amd.SpaceUconfig:
		return OpSetUconfigReg
	}
	return OpInvalid
}

// SetRegSpace returns the register space written by a SET_* or LOAD_*
// opcode, or SpaceNone.
func SetRegSpace(op Opcode) amd.RegSpace {
	switch op {
	case OpSetConfigReg, OpLoadConfigReg:
		return amd.SpaceConfig
	case OpSetShReg, OpSetShRegIndex, OpSetShRegPairs, OpSetShRegPairsPacked, OpSetShRegPairsPackedN, OpLoadShReg:
		return amd.SpaceSh
	case OpSetContextReg, OpSetContextRegPairs, OpSetContextRegPairsPacked, OpLoadContextReg:
		return amd.SpaceContext
	case OpSetUconfigReg, OpSetUconfigRegIndex, OpLoadUconfigReg:
		return amd.SpaceUconfig
	}
	return amd.SpaceNone
}
