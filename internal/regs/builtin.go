package regs

import (
	"fmt"
	"sync"

	"pm4dbg/internal/amd"
)

func r(name string, offset uint32, fields ...Field) Register {
	return Register{Name: name, Offset: offset, Fields: fields}
}

func f(name string, mask uint32, values ...string) Field {
	return Field{Name: name, Mask: mask, Values: values}
}

func all(reg Register) entry {
	return entry{minLevel: amd.Gfx6, maxLevel: amd.Gfx115, reg: reg}
}

func since(l amd.GfxLevel, reg Register) entry {
	return entry{minLevel: l, maxLevel: amd.Gfx115, reg: reg}
}

func between(lo, hi amd.GfxLevel, reg Register) entry {
	return entry{minLevel: lo, maxLevel: hi, reg: reg}
}

var (
	builtinOnce  sync.Once
	builtinTable *Table
)

// Builtin returns the compiled-in register table. It covers the registers
// the tools in this module emit or track, not whole register databases;
// LoadINI reads complete tables.
func Builtin() *Table {
	builtinOnce.Do(func() {
		var entries []entry
		entries = append(entries, contextRegs()...)
		entries = append(entries, shRegs()...)
		entries = append(entries, uconfigRegs()...)
		entries = append(entries, configRegs()...)
		entries = append(entries, pseudoRegs()...)
		builtinTable = newTable(entries)
	})
	return builtinTable
}

var (
	compareFuncs = []string{"FRAG_NEVER", "FRAG_LESS", "FRAG_EQUAL", "FRAG_LEQUAL", "FRAG_GREATER", "FRAG_NOTEQUAL", "FRAG_GEQUAL", "FRAG_ALWAYS"}
	spiFormats   = []string{"SPI_SHADER_ZERO", "SPI_SHADER_32_R", "SPI_SHADER_32_GR", "SPI_SHADER_32_AR", "SPI_SHADER_FP16_ABGR",
		"SPI_SHADER_UNORM16_ABGR", "SPI_SHADER_SNORM16_ABGR", "SPI_SHADER_UINT16_ABGR", "SPI_SHADER_SINT16_ABGR", "SPI_SHADER_32_ABGR"}
	blendOps  = []string{"BLEND_ZERO", "BLEND_ONE", "BLEND_SRC_COLOR", "BLEND_ONE_MINUS_SRC_COLOR", "BLEND_SRC_ALPHA", "BLEND_ONE_MINUS_SRC_ALPHA"}
	combFcns  = []string{"COMB_DST_PLUS_SRC", "COMB_SRC_MINUS_DST", "COMB_MIN_DST_SRC", "COMB_MAX_DST_SRC", "COMB_DST_MINUS_SRC"}
	primTypes = []string{"DI_PT_NONE", "DI_PT_POINTLIST", "DI_PT_LINELIST", "DI_PT_LINESTRIP", "DI_PT_TRILIST", "DI_PT_TRIFAN", "DI_PT_TRISTRIP",
		"", "", "", "DI_PT_LINELIST_ADJ", "DI_PT_LINESTRIP_ADJ", "DI_PT_TRILIST_ADJ", "DI_PT_TRISTRIP_ADJ", "", "",
		"", "DI_PT_RECTLIST", "DI_PT_LINELOOP", "DI_PT_QUADLIST", "DI_PT_QUADSTRIP", "DI_PT_POLYGON"}
)

func psInputEna(name string, offset uint32) Register {
	return r(name, offset,
		f("PERSP_SAMPLE_ENA", 0x1),
		f("PERSP_CENTER_ENA", 0x2),
		f("PERSP_CENTROID_ENA", 0x4),
		f("PERSP_PULL_MODEL_ENA", 0x8),
		f("LINEAR_SAMPLE_ENA", 0x10),
		f("LINEAR_CENTER_ENA", 0x20),
		f("LINEAR_CENTROID_ENA", 0x40),
		f("LINE_STIPPLE_TEX_ENA", 0x80),
		f("POS_X_FLOAT_ENA", 0x100),
		f("POS_Y_FLOAT_ENA", 0x200),
		f("POS_Z_FLOAT_ENA", 0x400),
		f("POS_W_FLOAT_ENA", 0x800),
		f("FRONT_FACE_ENA", 0x1000),
		f("ANCILLARY_ENA", 0x2000),
		f("SAMPLE_COVERAGE_ENA", 0x4000),
		f("POS_FIXED_PT_ENA", 0x8000))
}

func scissor(name string, offset uint32, x, y string) Register {
	return r(name, offset, f(x, 0x7fff), f(y, 0x7fff0000))
}

func contextRegs() []entry {
	return []entry{
		all(r("DB_RENDER_CONTROL", 0x028000,
			f("DEPTH_CLEAR_ENABLE", 0x1),
			f("STENCIL_CLEAR_ENABLE", 0x2),
			f("DEPTH_COPY", 0x4),
			f("STENCIL_COPY", 0x8),
			f("RESUMMARIZE_ENABLE", 0x10),
			f("STENCIL_COMPRESS_DISABLE", 0x20),
			f("DEPTH_COMPRESS_DISABLE", 0x40),
			f("COPY_CENTROID", 0x80),
			f("COPY_SAMPLE", 0xf00))),
		all(r("DB_COUNT_CONTROL", 0x028004,
			f("ZPASS_INCREMENT_DISABLE", 0x1),
			f("PERFECT_ZPASS_COUNTS", 0x2),
			f("SAMPLE_RATE", 0x70))),
		all(r("DB_DEPTH_VIEW", 0x028008, f("SLICE_START", 0x7ff), f("SLICE_MAX", 0xffe000))),
		all(r("DB_RENDER_OVERRIDE", 0x02800c,
			f("FORCE_HIZ_ENABLE", 0x3),
			f("FORCE_HIS_ENABLE0", 0xc),
			f("FORCE_HIS_ENABLE1", 0x30),
			f("FORCE_SHADER_Z_ORDER", 0x40),
			f("FAST_Z_DISABLE", 0x80),
			f("FAST_STENCIL_DISABLE", 0x100),
			f("NOOP_CULL_DISABLE", 0x200),
			f("FORCE_COLOR_KILL", 0x400))),
		all(r("DB_RENDER_OVERRIDE2", 0x028010)),
		all(r("DB_HTILE_DATA_BASE", 0x028014)),
		all(r("DB_DEPTH_BOUNDS_MIN", 0x028020)),
		all(r("DB_DEPTH_BOUNDS_MAX", 0x028024)),
		all(r("DB_STENCIL_CLEAR", 0x028028, f("CLEAR", 0xff))),
		all(r("DB_DEPTH_CLEAR", 0x02802c)),
		all(r("PA_SC_SCREEN_SCISSOR_TL", 0x028030, f("TL_X", 0xffff), f("TL_Y", 0xffff0000))),
		all(r("PA_SC_SCREEN_SCISSOR_BR", 0x028034, f("BR_X", 0xffff), f("BR_Y", 0xffff0000))),
		since(amd.Gfx9, r("DB_Z_INFO", 0x028040,
			f("FORMAT", 0x3, "Z_INVALID", "Z_16", "", "Z_32_FLOAT"),
			f("NUM_SAMPLES", 0xc),
			f("SW_MODE", 0x1f0),
			f("TILE_SURFACE_ENABLE", 0x20000000))),
		since(amd.Gfx9, r("DB_STENCIL_INFO", 0x028044,
			f("FORMAT", 0x1, "STENCIL_INVALID", "STENCIL_8"),
			f("SW_MODE", 0x1f0))),
		all(r("TA_BC_BASE_ADDR", 0x028080)),
		all(r("TA_BC_BASE_ADDR_HI", 0x028084, f("ADDRESS", 0xff))),
		all(r("PA_SC_WINDOW_OFFSET", 0x028200, f("WINDOW_X_OFFSET", 0xffff), f("WINDOW_Y_OFFSET", 0xffff0000))),
		all(r("PA_SC_WINDOW_SCISSOR_TL", 0x028204,
			f("TL_X", 0x7fff),
			f("TL_Y", 0x7fff0000),
			f("WINDOW_OFFSET_DISABLE", 0x80000000))),
		all(scissor("PA_SC_WINDOW_SCISSOR_BR", 0x028208, "BR_X", "BR_Y")),
		all(r("PA_SC_CLIPRECT_RULE", 0x02820c, f("CLIP_RULE", 0xffff))),
		all(r("PA_SC_EDGERULE", 0x028230)),
		all(r("PA_SU_HARDWARE_SCREEN_OFFSET", 0x028234,
			f("HW_SCREEN_OFFSET_X", 0x1ff),
			f("HW_SCREEN_OFFSET_Y", 0x1ff0000))),
		all(r("CB_TARGET_MASK", 0x028238,
			f("TARGET0_ENABLE", 0xf),
			f("TARGET1_ENABLE", 0xf0),
			f("TARGET2_ENABLE", 0xf00),
			f("TARGET3_ENABLE", 0xf000),
			f("TARGET4_ENABLE", 0xf0000),
			f("TARGET5_ENABLE", 0xf00000),
			f("TARGET6_ENABLE", 0xf000000),
			f("TARGET7_ENABLE", 0xf0000000))),
		all(r("CB_SHADER_MASK", 0x02823c,
			f("OUTPUT0_ENABLE", 0xf),
			f("OUTPUT1_ENABLE", 0xf0),
			f("OUTPUT2_ENABLE", 0xf00),
			f("OUTPUT3_ENABLE", 0xf000),
			f("OUTPUT4_ENABLE", 0xf0000),
			f("OUTPUT5_ENABLE", 0xf00000),
			f("OUTPUT6_ENABLE", 0xf000000),
			f("OUTPUT7_ENABLE", 0xf0000000))),
		all(scissor("PA_SC_GENERIC_SCISSOR_TL", 0x028240, "TL_X", "TL_Y")),
		all(scissor("PA_SC_GENERIC_SCISSOR_BR", 0x028244, "BR_X", "BR_Y")),
		all(scissor("PA_SC_VPORT_SCISSOR_0_TL", 0x028250, "TL_X", "TL_Y")),
		all(scissor("PA_SC_VPORT_SCISSOR_0_BR", 0x028254, "BR_X", "BR_Y")),
		all(r("PA_SC_VPORT_ZMIN_0", 0x0282d0)),
		all(r("PA_SC_VPORT_ZMAX_0", 0x0282d4)),
		since(amd.Gfx10, r("PA_SC_TILE_STEERING_OVERRIDE", 0x02835c,
			f("ENABLE", 0x1),
			f("NUM_SE", 0x6),
			f("NUM_RB_PER_SE", 0x60),
			f("NUM_PACKER_PER_SC", 0x3000000))),
		since(amd.Gfx103, r("PA_SC_VRS_OVERRIDE_CNTL", 0x0283d0,
			f("VRS_OVERRIDE_RATE_COMBINER_MODE", 0x7),
			f("VRS_RATE", 0xf0),
			f("VRS_SURFACE_ENABLE", 0x1000))),
		all(r("VGT_MULTI_PRIM_IB_RESET_INDX", 0x02840c)),
		all(r("CB_BLEND_RED", 0x028414)),
		all(r("CB_BLEND_GREEN", 0x028418)),
		all(r("CB_BLEND_BLUE", 0x02841c)),
		all(r("CB_BLEND_ALPHA", 0x028420)),
		all(r("DB_STENCIL_CONTROL", 0x02842c,
			f("STENCILFAIL", 0xf),
			f("STENCILZPASS", 0xf0),
			f("STENCILZFAIL", 0xf00),
			f("STENCILFAIL_BF", 0xf000),
			f("STENCILZPASS_BF", 0xf0000),
			f("STENCILZFAIL_BF", 0xf00000))),
		all(r("DB_STENCILREFMASK", 0x028430,
			f("STENCILTESTVAL", 0xff),
			f("STENCILMASK", 0xff00),
			f("STENCILWRITEMASK", 0xff0000),
			f("STENCILOPVAL", 0xff000000))),
		all(r("DB_STENCILREFMASK_BF", 0x028434,
			f("STENCILTESTVAL_BF", 0xff),
			f("STENCILMASK_BF", 0xff00),
			f("STENCILWRITEMASK_BF", 0xff0000),
			f("STENCILOPVAL_BF", 0xff000000))),
		all(r("PA_CL_VPORT_XSCALE", 0x02843c)),
		all(r("PA_CL_VPORT_XOFFSET", 0x028440)),
		all(r("PA_CL_VPORT_YSCALE", 0x028444)),
		all(r("PA_CL_VPORT_YOFFSET", 0x028448)),
		all(r("PA_CL_VPORT_ZSCALE", 0x02844c)),
		all(r("PA_CL_VPORT_ZOFFSET", 0x028450)),
		all(r("PA_CL_UCP_0_X", 0x0285bc)),
		all(r("SPI_PS_INPUT_CNTL_0", 0x028644,
			f("OFFSET", 0x3f),
			f("DEFAULT_VAL", 0x300),
			f("FLAT_SHADE", 0x400))),
		all(r("SPI_VS_OUT_CONFIG", 0x0286c4, f("VS_EXPORT_COUNT", 0x3e))),
		all(psInputEna("SPI_PS_INPUT_ENA", 0x0286cc)),
		all(psInputEna("SPI_PS_INPUT_ADDR", 0x0286d0)),
		all(r("SPI_PS_IN_CONTROL", 0x0286d8, f("NUM_INTERP", 0x3f), f("PARAM_GEN", 0x40))),
		all(r("SPI_BARYC_CNTL", 0x0286e0,
			f("POS_FLOAT_LOCATION", 0x3),
			f("POS_FLOAT_ULC", 0x10),
			f("FRONT_FACE_ALL_BITS", 0x1000000))),
		all(r("SPI_TMPRING_SIZE", 0x0286e8, f("WAVES", 0xfff), f("WAVESIZE", 0x1fff000))),
		all(r("SPI_SHADER_POS_FORMAT", 0x02870c,
			f("POS0_EXPORT_FORMAT", 0xf, spiFormats...),
			f("POS1_EXPORT_FORMAT", 0xf0, spiFormats...))),
		all(r("SPI_SHADER_Z_FORMAT", 0x028710, f("Z_EXPORT_FORMAT", 0xf, spiFormats...))),
		all(r("SPI_SHADER_COL_FORMAT", 0x028714,
			f("COL0_EXPORT_FORMAT", 0xf, spiFormats...),
			f("COL1_EXPORT_FORMAT", 0xf0, spiFormats...),
			f("COL2_EXPORT_FORMAT", 0xf00, spiFormats...),
			f("COL3_EXPORT_FORMAT", 0xf000, spiFormats...))),
		all(r("SX_PS_DOWNCONVERT", 0x028754)),
		all(r("SX_BLEND_OPT_EPSILON", 0x028758)),
		all(r("CB_BLEND0_CONTROL", 0x028780,
			f("COLOR_SRCBLEND", 0x1f, blendOps...),
			f("COLOR_COMB_FCN", 0xe0, combFcns...),
			f("COLOR_DESTBLEND", 0x1f00, blendOps...),
			f("ALPHA_SRCBLEND", 0x1f0000, blendOps...),
			f("ALPHA_COMB_FCN", 0xe00000, combFcns...),
			f("ALPHA_DESTBLEND", 0x1f000000, blendOps...),
			f("SEPARATE_ALPHA_BLEND", 0x20000000),
			f("ENABLE", 0x40000000),
			f("DISABLE_ROP3", 0x80000000))),
		all(r("PA_CL_POINT_SIZE", 0x0287dc)),
		all(r("VGT_DMA_BASE_HI", 0x0287e4, f("BASE_ADDR", 0xffff))),
		all(r("VGT_DMA_BASE", 0x0287e8)),
		all(r("VGT_DRAW_INITIATOR", 0x0287f0,
			f("SOURCE_SELECT", 0x3, "DI_SRC_SEL_DMA", "DI_SRC_SEL_IMMEDIATE", "DI_SRC_SEL_AUTO_INDEX", "DI_SRC_SEL_RESERVED"),
			f("MAJOR_MODE", 0xc, "DI_MAJOR_MODE_0", "DI_MAJOR_MODE_1"),
			f("NOT_EOP", 0x20),
			f("USE_OPAQUE", 0x40))),
		all(r("DB_DEPTH_CONTROL", 0x028800,
			f("STENCIL_ENABLE", 0x1),
			f("Z_ENABLE", 0x2),
			f("Z_WRITE_ENABLE", 0x4),
			f("DEPTH_BOUNDS_ENABLE", 0x8),
			f("ZFUNC", 0x70, compareFuncs...),
			f("BACKFACE_ENABLE", 0x80),
			f("STENCILFUNC", 0x700, compareFuncs...),
			f("STENCILFUNC_BF", 0x700000, compareFuncs...))),
		all(r("DB_EQAA", 0x028804,
			f("MAX_ANCHOR_SAMPLES", 0x7),
			f("PS_ITER_SAMPLES", 0x70),
			f("MASK_EXPORT_NUM_SAMPLES", 0x700),
			f("ALPHA_TO_MASK_NUM_SAMPLES", 0x7000))),
		all(r("CB_COLOR_CONTROL", 0x028808,
			f("DISABLE_DUAL_QUAD", 0x1),
			f("DEGAMMA_ENABLE", 0x8),
			f("MODE", 0x70, "CB_DISABLE", "CB_NORMAL", "CB_ELIMINATE_FAST_CLEAR", "CB_RESOLVE", "", "CB_FMASK_DECOMPRESS", "CB_DCC_DECOMPRESS"),
			f("ROP3", 0xff0000))),
		all(r("DB_SHADER_CONTROL", 0x02880c,
			f("Z_EXPORT_ENABLE", 0x1),
			f("STENCIL_TEST_VAL_EXPORT_ENABLE", 0x2),
			f("STENCIL_OP_VAL_EXPORT_ENABLE", 0x4),
			f("Z_ORDER", 0x30, "LATE_Z", "EARLY_Z_THEN_LATE_Z", "RE_Z", "EARLY_Z_THEN_RE_Z"),
			f("KILL_ENABLE", 0x40),
			f("COVERAGE_TO_MASK_ENABLE", 0x80),
			f("MASK_EXPORT_ENABLE", 0x100),
			f("EXEC_ON_HIER_FAIL", 0x200),
			f("EXEC_ON_NOOP", 0x400),
			f("ALPHA_TO_MASK_DISABLE", 0x800),
			f("DEPTH_BEFORE_SHADER", 0x1000),
			f("CONSERVATIVE_Z_EXPORT", 0x6000))),
		all(r("PA_CL_CLIP_CNTL", 0x028810,
			f("UCP_ENA_0", 0x1),
			f("UCP_ENA_1", 0x2),
			f("UCP_ENA_2", 0x4),
			f("UCP_ENA_3", 0x8),
			f("UCP_ENA_4", 0x10),
			f("UCP_ENA_5", 0x20),
			f("PS_UCP_Y_SCALE_NEG", 0x2000),
			f("PS_UCP_MODE", 0xc000),
			f("CLIP_DISABLE", 0x10000),
			f("UCP_CULL_ONLY_ENA", 0x20000),
			f("BOUNDARY_EDGE_FLAG_ENA", 0x40000),
			f("DX_CLIP_SPACE_DEF", 0x80000),
			f("DIS_CLIP_ERR_DETECT", 0x100000),
			f("VTX_KILL_OR", 0x200000),
			f("DX_RASTERIZATION_KILL", 0x400000),
			f("DX_LINEAR_ATTR_CLIP_ENA", 0x1000000),
			f("VTE_VPORT_PROVOKE_DISABLE", 0x2000000),
			f("ZCLIP_NEAR_DISABLE", 0x4000000),
			f("ZCLIP_FAR_DISABLE", 0x8000000))),
		all(r("PA_SU_SC_MODE_CNTL", 0x028814,
			f("CULL_FRONT", 0x1),
			f("CULL_BACK", 0x2),
			f("FACE", 0x4),
			f("POLY_MODE", 0x18, "X_DISABLE_POLY_MODE", "X_DUAL_MODE"),
			f("POLYMODE_FRONT_PTYPE", 0xe0, "X_DRAW_POINTS", "X_DRAW_LINES", "X_DRAW_TRIANGLES"),
			f("POLYMODE_BACK_PTYPE", 0x700, "X_DRAW_POINTS", "X_DRAW_LINES", "X_DRAW_TRIANGLES"),
			f("POLY_OFFSET_FRONT_ENABLE", 0x800),
			f("POLY_OFFSET_BACK_ENABLE", 0x1000),
			f("POLY_OFFSET_PARA_ENABLE", 0x2000),
			f("VTX_WINDOW_OFFSET_ENABLE", 0x10000),
			f("PROVOKING_VTX_LAST", 0x80000),
			f("PERSP_CORR_DIS", 0x100000),
			f("MULTI_PRIM_IB_ENA", 0x200000))),
		all(r("PA_CL_VTE_CNTL", 0x028818,
			f("VPORT_X_SCALE_ENA", 0x1),
			f("VPORT_X_OFFSET_ENA", 0x2),
			f("VPORT_Y_SCALE_ENA", 0x4),
			f("VPORT_Y_OFFSET_ENA", 0x8),
			f("VPORT_Z_SCALE_ENA", 0x10),
			f("VPORT_Z_OFFSET_ENA", 0x20),
			f("VTX_XY_FMT", 0x100),
			f("VTX_Z_FMT", 0x200),
			f("VTX_W0_FMT", 0x400),
			f("PERFCOUNTER_REF", 0x800))),
		all(r("PA_CL_VS_OUT_CNTL", 0x02881c,
			f("CLIP_DIST_ENA_0", 0x1),
			f("CULL_DIST_ENA_0", 0x100),
			f("USE_VTX_POINT_SIZE", 0x10000),
			f("USE_VTX_EDGE_FLAG", 0x20000),
			f("USE_VTX_RENDER_TARGET_INDX", 0x40000),
			f("USE_VTX_VIEWPORT_INDX", 0x80000),
			f("VS_OUT_MISC_VEC_ENA", 0x200000))),
		all(r("PA_CL_NANINF_CNTL", 0x028820)),
		all(r("VGT_GS_MODE", 0x028a40, f("MODE", 0x7), f("ONCHIP", 0x600000))),
		all(r("PA_SU_POINT_SIZE", 0x028a00, f("HEIGHT", 0xffff), f("WIDTH", 0xffff0000))),
		all(r("PA_SU_POINT_MINMAX", 0x028a04, f("MIN_SIZE", 0xffff), f("MAX_SIZE", 0xffff0000))),
		all(r("PA_SU_LINE_CNTL", 0x028a08, f("WIDTH", 0xffff))),
		all(r("PA_SC_LINE_STIPPLE", 0x028a0c,
			f("LINE_PATTERN", 0xffff),
			f("REPEAT_COUNT", 0xff0000),
			f("PATTERN_BIT_ORDER", 0x10000000),
			f("AUTO_RESET_CNTL", 0x60000000))),
		all(r("PA_SC_MODE_CNTL_0", 0x028a48,
			f("MSAA_ENABLE", 0x1),
			f("VPORT_SCISSOR_ENABLE", 0x2),
			f("LINE_STIPPLE_ENABLE", 0x4),
			f("SEND_UNLIT_STILES_TO_PKR", 0x8))),
		all(r("PA_SC_MODE_CNTL_1", 0x028a4c)),
		all(r("VGT_GS_PER_VS", 0x028a5c, f("GS_PER_VS", 0x7ff))),
		all(r("VGT_PRIMITIVEID_EN", 0x028a84, f("PRIMITIVEID_EN", 0x1), f("DISABLE_RESET_ON_EOI", 0x2))),
		all(r("VGT_PRIMITIVEID_RESET", 0x028a8c)),
		all(r("VGT_ESGS_RING_ITEMSIZE", 0x028aac, f("ITEMSIZE", 0x7fff))),
		all(r("DB_HTILE_SURFACE", 0x028abc,
			f("FULL_CACHE", 0x2),
			f("DST_OUTSIDE_ZERO_TO_ONE", 0x10000),
			f("PIPE_ALIGNED", 0x40000))),
		all(r("VGT_STRMOUT_BUFFER_SIZE_0", 0x028ad0)),
		all(r("VGT_STRMOUT_VTX_STRIDE_0", 0x028ad4, f("STRIDE", 0x3ff))),
		all(r("VGT_GS_MAX_VERT_OUT", 0x028b38, f("MAX_VERT_OUT", 0x7ff))),
		all(r("VGT_SHADER_STAGES_EN", 0x028b54,
			f("LS_EN", 0x3),
			f("HS_EN", 0x4),
			f("ES_EN", 0x18),
			f("GS_EN", 0x20),
			f("VS_EN", 0xc0),
			f("PRIMGEN_EN", 0x2000))),
		all(r("VGT_LS_HS_CONFIG", 0x028b58,
			f("NUM_PATCHES", 0xff),
			f("HS_NUM_INPUT_CP", 0x3f00),
			f("HS_NUM_OUTPUT_CP", 0xfc000))),
		all(r("VGT_TF_PARAM", 0x028b6c, f("TYPE", 0x3), f("PARTITIONING", 0x1c), f("TOPOLOGY", 0xe0))),
		all(r("DB_ALPHA_TO_MASK", 0x028b70, f("ALPHA_TO_MASK_ENABLE", 0x1))),
		all(r("PA_SU_POLY_OFFSET_DB_FMT_CNTL", 0x028b78, f("POLY_OFFSET_NEG_NUM_DB_BITS", 0xff), f("POLY_OFFSET_DB_IS_FLOAT_FMT", 0x100))),
		all(r("PA_SU_POLY_OFFSET_CLAMP", 0x028b7c)),
		all(r("PA_SU_POLY_OFFSET_FRONT_SCALE", 0x028b80)),
		all(r("PA_SU_POLY_OFFSET_FRONT_OFFSET", 0x028b84)),
		all(r("PA_SU_POLY_OFFSET_BACK_SCALE", 0x028b88)),
		all(r("PA_SU_POLY_OFFSET_BACK_OFFSET", 0x028b8c)),
		all(r("VGT_GS_INSTANCE_CNT", 0x028b90, f("ENABLE", 0x1), f("CNT", 0x1fc))),
		all(r("VGT_STRMOUT_CONFIG", 0x028b94, f("STREAMOUT_0_EN", 0x1), f("RAST_STREAM", 0x70))),
		all(r("VGT_STRMOUT_BUFFER_CONFIG", 0x028b98, f("STREAM_0_BUFFER_EN", 0xf))),
		all(r("PA_SC_CENTROID_PRIORITY_0", 0x028bd4)),
		all(r("PA_SC_LINE_CNTL", 0x028bdc,
			f("EXPAND_LINE_WIDTH", 0x200),
			f("LAST_PIXEL", 0x400),
			f("PERPENDICULAR_ENDCAP_ENA", 0x800),
			f("DX10_DIAMOND_TEST_ENA", 0x1000))),
		all(r("PA_SC_AA_CONFIG", 0x028be0,
			f("MSAA_NUM_SAMPLES", 0x7),
			f("AA_MASK_CENTROID_DTMN", 0x10),
			f("MAX_SAMPLE_DIST", 0x1e000),
			f("MSAA_EXPOSED_SAMPLES", 0x700000),
			f("DETAIL_TO_EXPOSED_MODE", 0x3000000))),
		all(r("PA_SU_VTX_CNTL", 0x028be4, f("PIX_CENTER", 0x1), f("ROUND_MODE", 0x6), f("QUANT_MODE", 0x38))),
		all(r("PA_CL_GB_VERT_CLIP_ADJ", 0x028be8)),
		all(r("PA_CL_GB_VERT_DISC_ADJ", 0x028bec)),
		all(r("PA_CL_GB_HORZ_CLIP_ADJ", 0x028bf0)),
		all(r("PA_CL_GB_HORZ_DISC_ADJ", 0x028bf4)),
		all(r("PA_SC_AA_MASK_X0Y0_X1Y0", 0x028c38)),
		since(amd.Gfx9, r("PA_SC_BINNER_CNTL_0", 0x028c44,
			f("BINNING_MODE", 0x3),
			f("BIN_SIZE_X", 0x4),
			f("BIN_SIZE_Y", 0x8),
			f("CONTEXT_STATES_PER_BIN", 0x1c00000))),
		all(r("CB_COLOR0_BASE", 0x028c60)),
		all(r("CB_COLOR0_VIEW", 0x028c6c, f("SLICE_START", 0x7ff), f("SLICE_MAX", 0xffe000))),
		all(r("CB_COLOR0_INFO", 0x028c70,
			f("ENDIAN", 0x3),
			f("FORMAT", 0x7c),
			f("NUMBER_TYPE", 0x700),
			f("COMP_SWAP", 0x1800),
			f("BLEND_CLAMP", 0x8000),
			f("BLEND_BYPASS", 0x10000))),
		all(r("CB_COLOR0_ATTRIB", 0x028c74)),
		between(amd.Gfx6, amd.Gfx103, r("CB_COLOR0_CMASK", 0x028c7c)),
		all(r("CB_COLOR0_DCC_BASE", 0x028c94)),
		since(amd.Gfx10, r("CB_COLOR0_BASE_EXT", 0x028e40, f("BASE_256B", 0xff))),
		since(amd.Gfx10, r("CB_COLOR0_ATTRIB2", 0x028ec0, f("MIP0_HEIGHT", 0x3fff), f("MIP0_WIDTH", 0xfffc000), f("MAX_MIP", 0xf0000000))),
		since(amd.Gfx10, r("CB_COLOR0_ATTRIB3", 0x028ee0, f("MIP0_DEPTH", 0x1fff))),
	}
}

func pgmRsrc1(name string, offset uint32) Register {
	return r(name, offset,
		f("VGPRS", 0x3f),
		f("SGPRS", 0x3c0),
		f("PRIORITY", 0xc00),
		f("FLOAT_MODE", 0xff000),
		f("PRIV", 0x100000),
		f("DX10_CLAMP", 0x200000),
		f("IEEE_MODE", 0x800000),
		f("FP16_OVFL", 0x20000000))
}

func userData(prefix string, base uint32, n int) []entry {
	out := make([]entry, n)
	for i := 0; i < n; i++ {
		out[i] = all(r(fmt.Sprintf("%s_%d", prefix, i), base+uint32(i)*4))
	}
	return out
}

func shRegs() []entry {
	out := []entry{
		since(amd.Gfx10, r("SPI_SHADER_PGM_RSRC4_PS", 0x00b004,
			f("CU_EN", 0xffff),
			f("INST_PREF_SIZE", 0x3f0000))),
		since(amd.Gfx10, r("SPI_SHADER_PGM_CHKSUM_PS", 0x00b018)),
		all(r("SPI_SHADER_PGM_RSRC3_PS", 0x00b01c, f("CU_EN", 0xffff), f("WAVE_LIMIT", 0x3f0000))),
		all(r("SPI_SHADER_PGM_LO_PS", 0x00b020)),
		all(r("SPI_SHADER_PGM_HI_PS", 0x00b024, f("MEM_BASE", 0xff))),
		all(pgmRsrc1("SPI_SHADER_PGM_RSRC1_PS", 0x00b028)),
		all(r("SPI_SHADER_PGM_RSRC2_PS", 0x00b02c,
			f("SCRATCH_EN", 0x1),
			f("USER_SGPR", 0x3e),
			f("TRAP_PRESENT", 0x40),
			f("WAVE_CNT_EN", 0x80),
			f("EXTRA_LDS_SIZE", 0xff00),
			f("EXCP_EN", 0x1ff0000))),
	}
	out = append(out, userData("SPI_SHADER_USER_DATA_PS", 0x00b030, 4)...)
	out = append(out,
		between(amd.Gfx6, amd.Gfx103, r("SPI_SHADER_PGM_LO_VS", 0x00b120)),
		between(amd.Gfx6, amd.Gfx103, r("SPI_SHADER_PGM_HI_VS", 0x00b124, f("MEM_BASE", 0xff))),
		since(amd.Gfx10, r("SPI_SHADER_PGM_RSRC4_GS", 0x00b204, f("CU_EN", 0xffff))),
		since(amd.Gfx9, r("SPI_SHADER_PGM_RSRC3_GS", 0x00b21c, f("CU_EN", 0xffff), f("WAVE_LIMIT", 0x3f0000))),
		since(amd.Gfx9, r("SPI_SHADER_PGM_LO_GS", 0x00b220)),
		since(amd.Gfx9, r("SPI_SHADER_PGM_HI_GS", 0x00b224, f("MEM_BASE", 0xff))),
		since(amd.Gfx9, pgmRsrc1("SPI_SHADER_PGM_RSRC1_GS", 0x00b228)),
		since(amd.Gfx9, r("SPI_SHADER_PGM_RSRC2_GS", 0x00b22c,
			f("SCRATCH_EN", 0x1),
			f("USER_SGPR", 0x3e),
			f("TRAP_PRESENT", 0x40),
			f("EXCP_EN", 0x1ff80),
			f("ES_VGPR_COMP_CNT", 0x60000),
			f("OC_LDS_EN", 0x80000),
			f("LDS_SIZE", 0xff00000))),
		since(amd.Gfx9, r("SPI_SHADER_USER_DATA_GS_0", 0x00b230)),
		since(amd.Gfx9, r("SPI_SHADER_PGM_LO_ES", 0x00b320)),
		since(amd.Gfx9, r("SPI_SHADER_PGM_RSRC3_HS", 0x00b41c, f("CU_EN", 0xffff), f("WAVE_LIMIT", 0x3f0000))),
		since(amd.Gfx9, r("SPI_SHADER_PGM_LO_HS", 0x00b420)),
		since(amd.Gfx9, r("SPI_SHADER_USER_DATA_HS_0", 0x00b430)),
		since(amd.Gfx9, r("SPI_SHADER_PGM_LO_LS", 0x00b520)),
	)

	// Compute.
	out = append(out,
		all(r("COMPUTE_DISPATCH_INITIATOR", 0x00b800,
			f("COMPUTE_SHADER_EN", 0x1),
			f("PARTIAL_TG_EN", 0x2),
			f("FORCE_START_AT_000", 0x4),
			f("ORDERED_APPEND_ENBL", 0x8),
			f("ORDERED_APPEND_MODE", 0x10),
			f("USE_THREAD_DIMENSIONS", 0x20),
			f("ORDER_MODE", 0x40),
			f("SCALAR_L1_INV_VOL", 0x400),
			f("VECTOR_L1_INV_VOL", 0x800),
			f("TUNNEL_ENABLE", 0x2000),
			f("RESTORE", 0x4000),
			f("CS_W32_EN", 0x8000))),
		all(r("COMPUTE_DIM_X", 0x00b804)),
		all(r("COMPUTE_DIM_Y", 0x00b808)),
		all(r("COMPUTE_DIM_Z", 0x00b80c)),
		all(r("COMPUTE_START_X", 0x00b810)),
		all(r("COMPUTE_START_Y", 0x00b814)),
		all(r("COMPUTE_START_Z", 0x00b818)),
		all(r("COMPUTE_NUM_THREAD_X", 0x00b81c, f("NUM_THREAD_FULL", 0xffff), f("NUM_THREAD_PARTIAL", 0xffff0000))),
		all(r("COMPUTE_NUM_THREAD_Y", 0x00b820, f("NUM_THREAD_FULL", 0xffff), f("NUM_THREAD_PARTIAL", 0xffff0000))),
		all(r("COMPUTE_NUM_THREAD_Z", 0x00b824, f("NUM_THREAD_FULL", 0xffff), f("NUM_THREAD_PARTIAL", 0xffff0000))),
		all(r("COMPUTE_PGM_LO", 0x00b830)),
		all(r("COMPUTE_PGM_HI", 0x00b834, f("DATA", 0xff))),
		all(r("COMPUTE_PGM_RSRC1", 0x00b848,
			f("VGPRS", 0x3f),
			f("SGPRS", 0x3c0),
			f("PRIORITY", 0xc00),
			f("FLOAT_MODE", 0xff000),
			f("PRIV", 0x100000),
			f("DX10_CLAMP", 0x200000),
			f("IEEE_MODE", 0x800000),
			f("BULKY", 0x1000000),
			f("FP16_OVFL", 0x4000000),
			f("WGP_MODE", 0x20000000),
			f("MEM_ORDERED", 0x40000000),
			f("FWD_PROGRESS", 0x80000000))),
		all(r("COMPUTE_PGM_RSRC2", 0x00b84c,
			f("SCRATCH_EN", 0x1),
			f("USER_SGPR", 0x3e),
			f("TRAP_PRESENT", 0x40),
			f("TGID_X_EN", 0x80),
			f("TGID_Y_EN", 0x100),
			f("TGID_Z_EN", 0x200),
			f("TG_SIZE_EN", 0x400),
			f("TIDIG_COMP_CNT", 0x1800),
			f("EXCP_EN_MSB", 0x6000),
			f("LDS_SIZE", 0xff8000),
			f("EXCP_EN", 0x7f000000))),
		all(r("COMPUTE_RESOURCE_LIMITS", 0x00b854,
			f("WAVES_PER_SH", 0x3ff),
			f("TG_PER_CU", 0xf000),
			f("LOCK_THRESHOLD", 0x3f0000),
			f("SIMD_DEST_CNTL", 0x400000),
			f("FORCE_SIMD_DIST", 0x800000),
			f("CU_GROUP_COUNT", 0x7000000))),
		all(r("COMPUTE_STATIC_THREAD_MGMT_SE0", 0x00b858, f("SH0_CU_EN", 0xffff), f("SH1_CU_EN", 0xffff0000))),
		all(r("COMPUTE_STATIC_THREAD_MGMT_SE1", 0x00b85c, f("SH0_CU_EN", 0xffff), f("SH1_CU_EN", 0xffff0000))),
		all(r("COMPUTE_TMPRING_SIZE", 0x00b860, f("WAVES", 0xfff), f("WAVESIZE", 0x1fff000))),
		all(r("COMPUTE_THREAD_TRACE_ENABLE", 0x00b878, f("THREAD_TRACE_ENABLE", 0x1))),
		since(amd.Gfx10, r("COMPUTE_USER_ACCUM_0", 0x00b890)),
		since(amd.Gfx10, r("COMPUTE_PGM_RSRC3", 0x00b8a0, f("SHARED_VGPR_CNT", 0xf))),
		since(amd.Gfx10, r("COMPUTE_SHADER_CHKSUM", 0x00b8a8)),
	)
	out = append(out, userData("COMPUTE_USER_DATA", 0x00b900, 16)...)
	out = append(out, since(amd.Gfx103, r("COMPUTE_DISPATCH_TUNNEL", 0x00b9f4, f("OFF_DELAY", 0x3ff), f("IMMEDIATE", 0x400))))
	return out
}

func uconfigRegs() []entry {
	return []entry{
		since(amd.Gfx9, r("CP_STRMOUT_CNTL", 0x0300fc, f("OFFSET_UPDATE_DONE", 0x1))),
		since(amd.Gfx9, r("CP_COHER_START_DELAY", 0x0301ec, f("START_DELAY_COUNT", 0x3f))),
		all(r("GRBM_GFX_INDEX", 0x030800,
			f("INSTANCE_INDEX", 0xff),
			f("SH_INDEX", 0xff00),
			f("SE_INDEX", 0xff0000),
			f("SH_BROADCAST_WRITES", 0x20000000),
			f("INSTANCE_BROADCAST_WRITES", 0x40000000),
			f("SE_BROADCAST_WRITES", 0x80000000))),
		between(amd.Gfx9, amd.Gfx103, r("VGT_GSVS_RING_SIZE", 0x030904)),
		all(r("VGT_PRIMITIVE_TYPE", 0x030908, f("PRIM_TYPE", 0x3f, primTypes...))),
		all(r("VGT_INDEX_TYPE", 0x03090c,
			f("INDEX_TYPE", 0x3, "VGT_INDEX_16", "VGT_INDEX_32", "VGT_INDEX_8"),
			f("PRIMGEN_EN", 0x100))),
		since(amd.Gfx9, r("VGT_MULTI_PRIM_IB_RESET_EN", 0x03092c, f("RESET_EN", 0x1), f("MATCH_ALL_BITS", 0x2))),
		all(r("VGT_NUM_INDICES", 0x030930)),
		all(r("VGT_NUM_INSTANCES", 0x030934)),
		all(r("VGT_TF_RING_SIZE", 0x030938, f("SIZE", 0xffff))),
		all(r("VGT_HS_OFFCHIP_PARAM", 0x03093c, f("OFFCHIP_BUFFERING", 0x3ff), f("OFFCHIP_GRANULARITY", 0x600))),
		all(r("VGT_TF_MEMORY_BASE", 0x030940)),
		since(amd.Gfx9, r("VGT_TF_MEMORY_BASE_HI", 0x030944, f("BASE_HI", 0xff))),
		between(amd.Gfx9, amd.Gfx9, r("IA_MULTI_VGT_PARAM", 0x030960,
			f("PRIMGROUP_SIZE", 0xffff),
			f("PARTIAL_VS_WAVE_ON", 0x10000),
			f("SWITCH_ON_EOP", 0x20000),
			f("PARTIAL_ES_WAVE_ON", 0x40000),
			f("SWITCH_ON_EOI", 0x80000),
			f("WD_SWITCH_ON_EOP", 0x100000),
			f("EN_INST_OPT_BASIC", 0x200000),
			f("EN_INST_OPT_ADV", 0x400000))),
		since(amd.Gfx9, r("VGT_INSTANCE_BASE_ID", 0x030968)),
		since(amd.Gfx10, r("GE_CNTL", 0x03096c,
			f("PRIM_GRP_SIZE", 0x1ff),
			f("VERT_GRP_SIZE", 0x3fe00),
			f("BREAK_WAVE_AT_EOI", 0x40000),
			f("PACKET_TO_ONE_PA", 0x80000))),
		all(r("PA_SU_LINE_STIPPLE_VALUE", 0x030a00, f("LINE_STIPPLE_VALUE", 0xffffff))),
		all(r("PA_SC_LINE_STIPPLE_STATE", 0x030a04, f("CURRENT_PTR", 0xf), f("CURRENT_COUNT", 0xff00))),
		since(amd.Gfx9, r("SPI_CONFIG_CNTL", 0x031100,
			f("GPR_WRITE_PRIORITY", 0x1fffff),
			f("EXP_PRIORITY_ORDER", 0xe00000),
			f("ENABLE_SQG_TOP_EVENTS", 0x1000000),
			f("ENABLE_SQG_BOP_EVENTS", 0x2000000))),
		since(amd.Gfx9, r("TA_CS_BC_BASE_ADDR", 0x030e00)),
	}
}

func configRegs() []entry {
	return []entry{
		all(r("GRBM_STATUS", 0x008010,
			f("ME0PIPE0_CMDFIFO_AVAIL", 0xf),
			f("RSMU_RQ_PENDING", 0x20),
			f("ME0PIPE0_CF_RQ_PENDING", 0x80),
			f("ME0PIPE0_PF_RQ_PENDING", 0x100),
			f("GDS_DMA_RQ_PENDING", 0x200),
			f("DB_CLEAN", 0x1000),
			f("CB_CLEAN", 0x2000),
			f("TA_BUSY", 0x4000),
			f("GDS_BUSY", 0x8000),
			f("SPI_BUSY", 0x400000),
			f("CP_BUSY", 0x20000000),
			f("CP_COHERENCY_BUSY", 0x10000000),
			f("GUI_ACTIVE", 0x80000000))),
		all(r("GRBM_STATUS_SE0", 0x008014,
			f("DB_CLEAN", 0x2),
			f("CB_CLEAN", 0x4),
			f("BCI_BUSY", 0x400000),
			f("VGT_BUSY", 0x800000),
			f("PA_BUSY", 0x1000000),
			f("TA_BUSY", 0x2000000),
			f("SX_BUSY", 0x4000000),
			f("SPI_BUSY", 0x8000000),
			f("SC_BUSY", 0x20000000),
			f("DB_BUSY", 0x40000000),
			f("CB_BUSY", 0x80000000))),
		all(r("VGT_VTX_VECT_EJECT_REG", 0x0088b0, f("PRIM_COUNT", 0x3ff))),
		all(r("PA_CL_ENHANCE", 0x008a14,
			f("CLIP_VTX_REORDER_ENA", 0x1),
			f("NUM_CLIP_SEQ", 0x6))),
		all(r("PA_SC_ENHANCE", 0x008bf0)),
	}
}
