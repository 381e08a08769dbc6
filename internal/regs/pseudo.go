package regs

// Pseudo registers name packet payload dwords so that the disassembler can
// print them with the same field decoding as real registers. They live
// below the CONFIG space and never reach the hardware.
const (
	PktIBBaseLo          uint32 = 0x1000
	PktIBBaseHi          uint32 = 0x1004
	PktIBControl         uint32 = 0x1008
	PktWriteDataControl  uint32 = 0x1010
	PktDstAddrLo         uint32 = 0x1014
	PktDstAddrHi         uint32 = 0x1018
	PktCopyDataControl   uint32 = 0x101c
	PktSrcAddrLo         uint32 = 0x1020
	PktSrcAddrHi         uint32 = 0x1024
	PktWaitRegMemControl uint32 = 0x1030
	PktPollAddressLo     uint32 = 0x1034
	PktPollAddressHi     uint32 = 0x1038
	PktReference         uint32 = 0x103c
	PktMask              uint32 = 0x1040
	PktPollInterval      uint32 = 0x1044
	PktCoherCntl         uint32 = 0x1050
	PktCoherSize         uint32 = 0x1054
	PktCoherSizeHi       uint32 = 0x1058
	PktCoherBase         uint32 = 0x105c
	PktCoherBaseHi       uint32 = 0x1060
	PktGCRCntl           uint32 = 0x1064
	PktAcquireMemPWS     uint32 = 0x1068
	PktAcquireMemPWSEna  uint32 = 0x106c
	PktReleaseMemOp      uint32 = 0x1070
	PktReleaseMemSel     uint32 = 0x1074
	PktAddressLo         uint32 = 0x1078
	PktAddressHi         uint32 = 0x107c
	PktDataLo            uint32 = 0x1080
	PktDataHi            uint32 = 0x1084
	PktIntCtxID          uint32 = 0x1088
	PktLoadControl       uint32 = 0x1090
	PktShadowControl     uint32 = 0x1094
	PktCPDMAWord0        uint32 = 0x10a0
	PktCPDMAWord1        uint32 = 0x10a4
	PktCPDMAWord2        uint32 = 0x10a8
	PktCPDMAWord3        uint32 = 0x10ac
	PktCPDMACommand      uint32 = 0x10b0
	PktDMADataWord0      uint32 = 0x10c0
	PktIndexBaseLo       uint32 = 0x10d0
	PktIndexBaseHi       uint32 = 0x10d4
	PktIndexBufferSize   uint32 = 0x10d8
	PktIndexCount        uint32 = 0x10dc
	PktLoadAddressLo     uint32 = 0x10e0
	PktLoadAddressHi     uint32 = 0x10e4
	PktLoadRegOffset     uint32 = 0x10e8
	PktLoadNumDwords     uint32 = 0x10ec
	PktEventCntl         uint32 = 0x10f0
)

var (
	dstSels    = []string{"REG", "MEM_GRBM", "TC_L2", "GDS", "RESERVED", "MEM"}
	engineSels = []string{"ME", "PFP", "CE"}
)

func pseudoRegs() []entry {
	return []entry{
		all(r("IB_BASE_LO", PktIBBaseLo)),
		all(r("IB_BASE_HI", PktIBBaseHi)),
		all(r("IB_CONTROL", PktIBControl,
			f("IB_SIZE", 0xfffff),
			f("CHAIN", 0x100000),
			f("PRE_ENA", 0x200000),
			f("VALID", 0x800000),
			f("CACHE_POLICY", 0x30000000))),
		all(r("CONTROL", PktWriteDataControl,
			f("WR_ONE_ADDR", 0x10000),
			f("WR_CONFIRM", 0x100000),
			f("DST_SEL", 0xf00, dstSels...),
			f("ENGINE_SEL", 0xc0000000, engineSels...))),
		all(r("DST_ADDR_LO", PktDstAddrLo)),
		all(r("DST_ADDR_HI", PktDstAddrHi)),
		all(r("CONTROL", PktCopyDataControl,
			f("SRC_SEL", 0xf, "REG", "SRC_MEM", "TC_L2", "GDS", "PERF", "IMM", "", "", "", "TIMESTAMP"),
			f("DST_SEL", 0xf00, dstSels...),
			f("COUNT_SEL", 0x10000),
			f("WR_CONFIRM", 0x100000),
			f("ENGINE_SEL", 0xc0000000, engineSels...))),
		all(r("SRC_ADDR_LO", PktSrcAddrLo)),
		all(r("SRC_ADDR_HI", PktSrcAddrHi)),
		all(r("WAIT_REG_MEM_CONTROL", PktWaitRegMemControl,
			f("FUNCTION", 0x7, "ALWAYS", "LESS", "LESS_EQUAL", "EQUAL", "NOT_EQUAL", "GREATER_EQUAL", "GREATER"),
			f("MEM_SPACE", 0x30, "REGISTER", "MEMORY"),
			f("ENGINE", 0x100, engineSels...))),
		all(r("POLL_ADDRESS_LO", PktPollAddressLo)),
		all(r("POLL_ADDRESS_HI", PktPollAddressHi)),
		all(r("REFERENCE", PktReference)),
		all(r("MASK", PktMask)),
		all(r("POLL_INTERVAL", PktPollInterval, f("POLL_INTERVAL", 0xffff))),
		all(r("CP_COHER_CNTL", PktCoherCntl,
			f("TC_NC_ACTION_ENA", 0x8),
			f("TC_WC_ACTION_ENA", 0x10),
			f("TC_INV_METADATA_ACTION_ENA", 0x20),
			f("TCL1_VOL_ACTION_ENA", 0x8000),
			f("TC_WB_ACTION_ENA", 0x40000),
			f("TCL1_ACTION_ENA", 0x400000),
			f("TC_ACTION_ENA", 0x800000),
			f("CB_ACTION_ENA", 0x2000000),
			f("DB_ACTION_ENA", 0x4000000),
			f("SH_KCACHE_ACTION_ENA", 0x8000000),
			f("SH_KCACHE_VOL_ACTION_ENA", 0x10000000),
			f("SH_ICACHE_ACTION_ENA", 0x20000000),
			f("SH_KCACHE_WB_ACTION_ENA", 0x40000000))),
		all(r("CP_COHER_SIZE", PktCoherSize)),
		all(r("CP_COHER_SIZE_HI", PktCoherSizeHi, f("COHER_SIZE_HI_256B", 0xff))),
		all(r("CP_COHER_BASE", PktCoherBase)),
		all(r("CP_COHER_BASE_HI", PktCoherBaseHi, f("COHER_BASE_HI_256B", 0xff))),
		all(r("GCR_CNTL", PktGCRCntl,
			f("GLI_INV", 0x3, "NOP", "ALL", "RANGE", "FIRST_LAST"),
			f("GL1_RANGE", 0xc),
			f("GLM_WB", 0x10),
			f("GLM_INV", 0x20),
			f("GLK_WB", 0x40),
			f("GLK_INV", 0x80),
			f("GLV_INV", 0x100),
			f("GL1_INV", 0x200),
			f("GL2_US", 0x400),
			f("GL2_RANGE", 0x1800),
			f("GL2_DISCARD", 0x2000),
			f("GL2_INV", 0x4000),
			f("GL2_WB", 0x8000),
			f("SEQ", 0x30000, "PARALLEL", "FORWARD", "REVERSE"))),
		all(r("ACQUIRE_MEM_PWS_1", PktAcquireMemPWS,
			f("PWS_STAGE_SEL", 0x3800, "CP_PFP", "CP_ME", "PRE_SHADER", "PRE_DEPTH", "PRE_PIX_SHADER", "PRE_COLOR"),
			f("PWS_COUNTER_SEL", 0xc000, "TS_SELECT", "PS_SELECT", "CS_SELECT"),
			f("PWS_ENA2", 0x20000),
			f("PWS_COUNT", 0xfc0000))),
		all(r("ACQUIRE_MEM_PWS_6", PktAcquireMemPWSEna,
			f("PWS_ENA", 0x80000000))),
		all(r("RELEASE_MEM_OP", PktReleaseMemOp,
			f("EVENT_TYPE", 0x3f),
			f("EVENT_INDEX", 0xf00),
			f("GCR_CNTL", 0x1fff000),
			f("PWS_ENABLE", 0x80000000))),
		all(r("RELEASE_MEM_SEL", PktReleaseMemSel,
			f("DST_SEL", 0x30000, "MEM", "TC_L2"),
			f("INT_SEL", 0x7000000, "NONE", "SEND_INT", "", "SEND_INT_ON_CONFIRM", "", "", "SEND_DATA_AFTER_WR_CONFIRM"),
			f("DATA_SEL", 0xe0000000, "NONE", "SEND_32BIT_LOW", "SEND_64BIT_DATA", "SEND_GPU_CLOCK_COUNTER", "SEND_CP_PERFCOUNTER_HI_LO", "STORE_GDS_DATA_TO_MEMORY"))),
		all(r("ADDRESS_LO", PktAddressLo)),
		all(r("ADDRESS_HI", PktAddressHi)),
		all(r("DATA_LO", PktDataLo)),
		all(r("DATA_HI", PktDataHi)),
		all(r("INT_CTXID", PktIntCtxID)),
		all(r("LOAD_CONTROL", PktLoadControl,
			f("LOAD_GLOBAL_CONFIG", 0x1),
			f("LOAD_PER_CONTEXT_STATE", 0x2),
			f("LOAD_GLOBAL_UCONFIG", 0x8000),
			f("LOAD_GFX_SH_REGS", 0x10000),
			f("LOAD_CS_SH_REGS", 0x1000000),
			f("LOAD_CE_RAM", 0x10000000),
			f("UPDATE_LOAD_ENABLES", 0x80000000))),
		all(r("SHADOW_CONTROL", PktShadowControl,
			f("SHADOW_GLOBAL_CONFIG", 0x1),
			f("SHADOW_PER_CONTEXT_STATE", 0x2),
			f("SHADOW_GLOBAL_UCONFIG", 0x8000),
			f("SHADOW_GFX_SH_REGS", 0x10000),
			f("SHADOW_CS_SH_REGS", 0x1000000),
			f("UPDATE_SHADOW_ENABLES", 0x80000000))),
		all(r("CP_DMA_WORD0", PktCPDMAWord0)),
		all(r("CP_DMA_WORD1", PktCPDMAWord1, f("SRC_ADDR_HI", 0xffff), f("ENGINE", 0x8000000), f("SRC_SEL", 0x60000000), f("CP_SYNC", 0x80000000))),
		all(r("CP_DMA_WORD2", PktCPDMAWord2)),
		all(r("CP_DMA_WORD3", PktCPDMAWord3, f("DST_ADDR_HI", 0xffff), f("DST_SEL", 0x300000))),
		all(r("COMMAND", PktCPDMACommand,
			f("BYTE_COUNT", 0x1fffff),
			f("DIS_WC", 0x200000),
			f("SRC_SWAP", 0xc00000),
			f("DST_SWAP", 0x3000000),
			f("SAS", 0x4000000),
			f("DAS", 0x8000000),
			f("SAIC", 0x10000000),
			f("DAIC", 0x20000000),
			f("RAW_WAIT", 0x40000000))),
		all(r("DMA_DATA_WORD0", PktDMADataWord0,
			f("ENGINE_SEL", 0x1),
			f("SRC_CACHE_POLICY", 0x6000),
			f("DST_SEL", 0x300000, "DST_ADDR", "GDS", "", "DST_ADDR_TC_L2"),
			f("DST_CACHE_POLICY", 0x6000000),
			f("SRC_SEL", 0x60000000, "SRC_ADDR", "GDS", "DATA", "SRC_ADDR_TC_L2"),
			f("CP_SYNC", 0x80000000))),
		all(r("INDEX_BASE_LO", PktIndexBaseLo)),
		all(r("INDEX_BASE_HI", PktIndexBaseHi)),
		all(r("INDEX_BUFFER_SIZE", PktIndexBufferSize)),
		all(r("INDEX_COUNT", PktIndexCount)),
		all(r("LOAD_ADDRESS_LO", PktLoadAddressLo)),
		all(r("LOAD_ADDRESS_HI", PktLoadAddressHi)),
		all(r("REG_OFFSET", PktLoadRegOffset, f("REG_OFFSET", 0xffff))),
		all(r("NUM_DWORDS", PktLoadNumDwords, f("NUM_DWORDS", 0x3fff))),
		all(r("EVENT_CNTL", PktEventCntl,
			f("EVENT_TYPE", 0x3f),
			f("EVENT_INDEX", 0xf00),
			f("OFFLOAD_ENABLE", 0x40000000))),
	}
}
