package pm4

import (
	"fmt"

	"pm4dbg/internal/amd"
)

// EventType is the VGT event written by EVENT_WRITE and RELEASE_MEM.
type EventType uint32

const (
	EventCacheFlushTS          EventType = 0x04
	EventContextDone           EventType = 0x05
	EventCacheFlush            EventType = 0x06
	EventCSPartialFlush        EventType = 0x07
	EventVGTStreamoutSync      EventType = 0x08
	EventVGTStreamoutReset     EventType = 0x0a
	EventEndOfPipeIncrDE       EventType = 0x0b
	EventEndOfPipeIBEnd        EventType = 0x0c
	EventRstPixCnt             EventType = 0x0d
	EventBreakBatch            EventType = 0x0e
	EventVSPartialFlush        EventType = 0x0f
	EventPSPartialFlush        EventType = 0x10
	EventFlushHSOutput         EventType = 0x11
	EventFlushDFSM             EventType = 0x12
	EventCacheFlushAndInvTS    EventType = 0x14
	EventZPassDone             EventType = 0x15
	EventCacheFlushAndInv      EventType = 0x16
	EventPerfcounterStart      EventType = 0x17
	EventPerfcounterStop       EventType = 0x18
	EventPipelinestatStart     EventType = 0x19
	EventPipelinestatStop      EventType = 0x1a
	EventPerfcounterSample     EventType = 0x1b
	EventSamplePipelinestat    EventType = 0x1e
	EventSOVGTStreamoutFlush   EventType = 0x1f
	EventSampleStreamoutStats  EventType = 0x20
	EventResetVtxCnt           EventType = 0x21
	EventVGTFlush              EventType = 0x24
	EventSCSendDBVPZ           EventType = 0x27
	EventBottomOfPipeTS        EventType = 0x28
	EventDBCacheFlushAndInv    EventType = 0x2a
	EventFlushAndInvDBDataTS   EventType = 0x2b
	EventFlushAndInvDBMeta     EventType = 0x2c
	EventFlushAndInvCBDataTS   EventType = 0x2d
	EventFlushAndInvCBMeta     EventType = 0x2e
	EventCSDone                EventType = 0x2f
	EventPSDone                EventType = 0x30
	EventFlushAndInvCBPixelDat EventType = 0x31
	EventThreadTraceStart      EventType = 0x33
	EventThreadTraceStop       EventType = 0x34
	EventThreadTraceFinish     EventType = 0x37
	EventPixelPipeStatControl  EventType = 0x38
)

var eventNames = map[EventType]string{
	EventCacheFlushTS:          "CACHE_FLUSH_TS",
	EventContextDone:           "CONTEXT_DONE",
	EventCacheFlush:            "CACHE_FLUSH",
	EventCSPartialFlush:        "CS_PARTIAL_FLUSH",
	EventVGTStreamoutSync:      "VGT_STREAMOUT_SYNC",
	EventVGTStreamoutReset:     "VGT_STREAMOUT_RESET",
	EventEndOfPipeIncrDE:       "END_OF_PIPE_INCR_DE",
	EventEndOfPipeIBEnd:        "END_OF_PIPE_IB_END",
	EventRstPixCnt:             "RST_PIX_CNT",
	EventBreakBatch:            "BREAK_BATCH",
	EventVSPartialFlush:        "VS_PARTIAL_FLUSH",
	EventPSPartialFlush:        "PS_PARTIAL_FLUSH",
	EventFlushHSOutput:         "FLUSH_HS_OUTPUT",
	EventFlushDFSM:             "FLUSH_DFSM",
	EventCacheFlushAndInvTS:    "CACHE_FLUSH_AND_INV_TS_EVENT",
	EventZPassDone:             "ZPASS_DONE",
	EventCacheFlushAndInv:      "CACHE_FLUSH_AND_INV_EVENT",
	EventPerfcounterStart:      "PERFCOUNTER_START",
	EventPerfcounterStop:       "PERFCOUNTER_STOP",
	EventPipelinestatStart:     "PIPELINESTAT_START",
	EventPipelinestatStop:      "PIPELINESTAT_STOP",
	EventPerfcounterSample:     "PERFCOUNTER_SAMPLE",
	EventSamplePipelinestat:    "SAMPLE_PIPELINESTAT",
	EventSOVGTStreamoutFlush:   "SO_VGTSTREAMOUT_FLUSH",
	EventSampleStreamoutStats:  "SAMPLE_STREAMOUTSTATS",
	EventResetVtxCnt:           "RESET_VTX_CNT",
	EventVGTFlush:              "VGT_FLUSH",
	EventSCSendDBVPZ:           "SC_SEND_DB_VPZ",
	EventBottomOfPipeTS:        "BOTTOM_OF_PIPE_TS",
	EventDBCacheFlushAndInv:    "DB_CACHE_FLUSH_AND_INV",
	EventFlushAndInvDBDataTS:   "FLUSH_AND_INV_DB_DATA_TS",
	EventFlushAndInvDBMeta:     "FLUSH_AND_INV_DB_META",
	EventFlushAndInvCBDataTS:   "FLUSH_AND_INV_CB_DATA_TS",
	EventFlushAndInvCBMeta:     "FLUSH_AND_INV_CB_META",
	EventCSDone:                "CS_DONE",
	EventPSDone:                "PS_DONE",
	EventFlushAndInvCBPixelDat: "FLUSH_AND_INV_CB_PIXEL_DATA",
	EventThreadTraceStart:      "THREAD_TRACE_START",
	EventThreadTraceStop:       "THREAD_TRACE_STOP",
	EventThreadTraceFinish:     "THREAD_TRACE_FINISH",
	EventPixelPipeStatControl:  "PIXEL_PIPE_STAT_CONTROL",
}

func (e EventType) String() string {
	if n, ok := eventNames[e]; ok {
		return n
	}
	return fmt.Sprintf("EVENT_0x%02x", uint32(e))
}

// EVENT_WRITE / RELEASE_MEM dword 1.
func EventWriteDw(t EventType, index uint32) uint32 {
	return uint32(t)&0x3f | (index&0xf)<<8
}

func GetEventType(dw uint32) EventType { return EventType(dw & 0x3f) }
func GetEventIndex(dw uint32) uint32   { return (dw >> 8) & 0xf }

// RELEASE_MEM dword 1 on GFX11 also carries the PWS enable.
const ReleaseMemPWSEnable uint32 = 1 << 31

// ACQUIRE_MEM on GFX11 PWS layout: dword 1 holds the stage, counter and
// ENA2 bits, dword 6 holds PWS_ENA in place of the poll interval.
const (
	AcquireMemPWSEna2 uint32 = 1 << 17
	AcquireMemPWSEna  uint32 = 1 << 31

	PWSStageCPPFP     = 0
	PWSStageCPME      = 1
	PWSStagePreShader = 2
	PWSStagePreDepth  = 3
	PWSStagePrePixel  = 4
	PWSStagePreColor  = 5

	PWSCounterTS = 0
	PWSCounterPS = 1
	PWSCounterCS = 2
)

func AcquireMemPWSDw(stage, counter, count uint32) uint32 {
	return (stage&7)<<11 | (counter&3)<<14 | AcquireMemPWSEna2 | (count&0x3f)<<18
}

func GetPWSStage(dw uint32) uint32   { return (dw >> 11) & 7 }
func GetPWSCounter(dw uint32) uint32 { return (dw >> 14) & 3 }
func GetPWSCount(dw uint32) uint32   { return (dw >> 18) & 0x3f }

// IsPWSAcquire reports whether an ACQUIRE_MEM payload uses the GFX11 PWS
// layout. The header count still decides the packet length.
func IsPWSAcquire(level amd.GfxLevel, payload []uint32) bool {
	return level >= amd.Gfx11 && len(payload) > 5 && payload[5]&AcquireMemPWSEna != 0
}

// GCR_CNTL (ACQUIRE_MEM dword 7 on GFX10+).
const (
	GLIInvNop       = 0
	GLIInvAll       = 1
	GLIInvRange     = 2
	GLIInvFirstLast = 3

	GCRSeqParallel = 0
	GCRSeqForward  = 1
	GCRSeqReverse  = 2
)

func GCRGLIInv(x uint32) uint32 { return x & 3 }
func GCRSeq(x uint32) uint32    { return (x & 3) << 16 }

const (
	GCRGLMWb      uint32 = 1 << 4
	GCRGLMInv     uint32 = 1 << 5
	GCRGLKWb      uint32 = 1 << 6
	GCRGLKInv     uint32 = 1 << 7
	GCRGLVInv     uint32 = 1 << 8
	GCRGL1Inv     uint32 = 1 << 9
	GCRGL2Us      uint32 = 1 << 10
	GCRGL2Discard uint32 = 1 << 13
	GCRGL2Inv     uint32 = 1 << 14
	GCRGL2Wb      uint32 = 1 << 15
)

// CP_COHER_CNTL (ACQUIRE_MEM dword 1 before GFX10, SURFACE_SYNC).
const (
	CoherTCNCActionEna     uint32 = 1 << 3
	CoherTCWCActionEna     uint32 = 1 << 4
	CoherTCInvMetadataEna  uint32 = 1 << 5
	CoherTCL1VolActionEna  uint32 = 1 << 15
	CoherTCWBActionEna     uint32 = 1 << 18
	CoherTCL1ActionEna     uint32 = 1 << 22
	CoherTCActionEna       uint32 = 1 << 23
	CoherCBActionEna       uint32 = 1 << 25
	CoherDBActionEna       uint32 = 1 << 26
	CoherSHKCacheActionEna uint32 = 1 << 27
	CoherSHKCacheVolEna    uint32 = 1 << 28
	CoherSHICacheActionEna uint32 = 1 << 29
	CoherSHKCacheWBEna     uint32 = 1 << 30
)

// CONTEXT_CONTROL dwords.
const (
	CC0LoadGlobalConfig      uint32 = 1 << 0
	CC0LoadPerContextState   uint32 = 1 << 1
	CC0LoadGlobalUconfig     uint32 = 1 << 15
	CC0LoadGfxShRegs         uint32 = 1 << 16
	CC0LoadCSShRegs          uint32 = 1 << 24
	CC0LoadCERAM             uint32 = 1 << 28
	CC0UpdateLoadEnables     uint32 = 1 << 31
	CC1ShadowGlobalConfig    uint32 = 1 << 0
	CC1ShadowPerContextState uint32 = 1 << 1
	CC1ShadowGlobalUconfig   uint32 = 1 << 15
	CC1ShadowGfxShRegs       uint32 = 1 << 16
	CC1ShadowCSShRegs        uint32 = 1 << 24
	CC1UpdateShadowEnables   uint32 = 1 << 31
)

// INDIRECT_BUFFER control dword.
const (
	IBSizeMask uint32 = 0xfffff
	IBChain    uint32 = 1 << 20
	IBPreEna   uint32 = 1 << 21
	IBValid    uint32 = 1 << 23
)

func IBControl(sizeDw uint32, chain bool) uint32 {
	c := sizeDw&IBSizeMask | IBValid
	if chain {
		c |= IBChain
	}
	return c
}

// WAIT_REG_MEM dword 1.
const (
	WaitRegMemAlways       = 0
	WaitRegMemLess         = 1
	WaitRegMemLessEqual    = 2
	WaitRegMemEqual        = 3
	WaitRegMemNotEqual     = 4
	WaitRegMemGreaterEqual = 5
	WaitRegMemGreater      = 6

	WaitRegMemMemSpace uint32 = 1 << 4
	WaitRegMemPFP      uint32 = 1 << 8
)

// WRITE_DATA / COPY_DATA selectors.
const (
	DstSelMemMappedRegister = 0
	DstSelMemGRBM           = 1
	DstSelTCL2              = 2
	DstSelGDS               = 3
	DstSelReserved          = 4
	DstSelMemAsync          = 5

	EngineME  = 0
	EnginePFP = 1
	EngineCE  = 2
)

func WriteDataControl(dstSel, engine uint32, wrConfirm bool) uint32 {
	c := (dstSel&0xf)<<8 | (engine&3)<<30
	if wrConfirm {
		c |= 1 << 20
	}
	return c
}

func GetWriteDataDstSel(dw uint32) uint32 { return (dw >> 8) & 0xf }
func GetWriteDataEngine(dw uint32) uint32 { return (dw >> 30) & 3 }

// SET_*_REG first payload dword.
func SetRegDw(relDwords, index uint32) uint32 {
	return relDwords&0xffff | (index&0xf)<<28
}
