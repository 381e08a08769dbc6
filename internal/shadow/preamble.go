package shadow

import (
	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/pm4state"
)

// Shadow buffer addresses must allow the CP's 256-byte aligned loads.
const shadowAlign = 256

var loadOpcodes = [NumRangeTypes]pm4.Opcode{
	RangeUconfig: pm4.OpLoadUconfigReg,
	RangeContext: pm4.OpLoadContextReg,
	RangeSh:      pm4.OpLoadShReg,
	RangeCSSh:    pm4.OpLoadShReg,
}

func spaceShadowOffset(s amd.RegSpace) uint64 {
	switch s {
	case amd.SpaceUconfig:
		return uint64(amd.ShadowedUconfigRegOffset)
	case amd.SpaceContext:
		return uint64(amd.ShadowedContextRegOffset)
	}
	return uint64(amd.ShadowedShRegOffset)
}

func fullCacheInvalidate() uint32 {
	return pm4.GCRGLIInv(pm4.GLIInvAll) | pm4.GCRGLKInv | pm4.GCRGLVInv | pm4.GCRGL1Inv |
		pm4.GCRGL2Inv | pm4.GCRGL2Wb | pm4.GCRGLMInv | pm4.GCRGLMWb | pm4.GCRSeq(pm4.GCRSeqForward)
}

// BuildPreamble appends the packets that idle the pipeline, flush caches,
// enable register shadowing and load the shadowed state from shadowVA.
func BuildPreamble(info amd.DeviceInfo, shadowVA uint64, b *pm4state.Builder) error {
	if info.GfxLevel < amd.Gfx9 {
		return common.Errorf(amd.ErrUnsupportedGfx, amd.NoIdx, "register shadowing on %s", info.GfxLevel)
	}
	if shadowVA%shadowAlign != 0 {
		return common.Errorf(amd.ErrInvalidParamVal, amd.NoIdx, "shadow buffer 0x%x is not %d-byte aligned",
			shadowVA, shadowAlign)
	}

	if info.DPBBAllowed {
		b.Cmd(pm4.Pkt3(pm4.OpEventWrite, 0, false), pm4.EventWriteDw(pm4.EventBreakBatch, 0))
	}
	b.Cmd(pm4.Pkt3(pm4.OpEventWrite, 0, false), pm4.EventWriteDw(pm4.EventVSPartialFlush, 4))
	b.Cmd(pm4.Pkt3(pm4.OpEventWrite, 0, false), pm4.EventWriteDw(pm4.EventVGTFlush, 0))

	switch {
	case info.GfxLevel >= amd.Gfx11:
		// Wait for everything before the preamble with a pixel wait sync.
		b.Cmd(pm4.Pkt3(pm4.OpReleaseMem, 6, false),
			pm4.EventWriteDw(pm4.EventBottomOfPipeTS, 5)|pm4.ReleaseMemPWSEnable,
			0, 0, 0, 0, 0, 0)
		b.Cmd(pm4.Pkt3(pm4.OpAcquireMem, 6, false),
			pm4.AcquireMemPWSDw(pm4.PWSStageCPME, pm4.PWSCounterTS, 0),
			0xffffffff, 0x01ffffff, 0, 0,
			pm4.AcquireMemPWSEna,
			fullCacheInvalidate())
	case info.GfxLevel >= amd.Gfx10:
		b.Cmd(pm4.Pkt3(pm4.OpAcquireMem, 6, false),
			0, 0xffffffff, 0xffffff, 0, 0, 0xa, fullCacheInvalidate())
		b.Cmd(pm4.Pkt3(pm4.OpPFPSyncME, 0, false), 0)
	default:
		coher := pm4.CoherSHICacheActionEna | pm4.CoherSHKCacheActionEna |
			pm4.CoherTCActionEna | pm4.CoherTCL1ActionEna | pm4.CoherTCWBActionEna
		b.Cmd(pm4.Pkt3(pm4.OpAcquireMem, 5, false),
			coher, 0xffffffff, 0xffffff, 0, 0, 0xa)
		b.Cmd(pm4.Pkt3(pm4.OpPFPSyncME, 0, false), 0)
	}

	b.Cmd(pm4.Pkt3(pm4.OpContextControl, 1, false),
		pm4.CC0UpdateLoadEnables|pm4.CC0LoadPerContextState|pm4.CC0LoadCSShRegs|
			pm4.CC0LoadGfxShRegs|pm4.CC0LoadGlobalUconfig,
		pm4.CC1UpdateShadowEnables|pm4.CC1ShadowPerContextState|pm4.CC1ShadowCSShRegs|
			pm4.CC1ShadowGfxShRegs|pm4.CC1ShadowGlobalUconfig)

	if info.HasFWBasedShadowing {
		return nil
	}
	for t := RangeType(0); t < NumRangeTypes; t++ {
		ranges := Ranges(info.GfxLevel, info.Family, t)
		if len(ranges) == 0 {
			continue
		}
		space := t.Space()
		va := shadowVA + spaceShadowOffset(space)
		words := []uint32{pm4.Pkt3(loadOpcodes[t], 1+2*len(ranges), false), uint32(va), uint32(va >> 32)}
		for _, r := range ranges {
			words = append(words, space.RelDwords(r.Offset), r.Size/4)
		}
		b.Cmd(words...)
	}
	return nil
}

// InitShadowing builds the two IBs a new context runs once: the preamble
// that turns shadowing on and the IB that writes the CLEAR_STATE defaults
// into the shadowed context registers.
func InitShadowing(info amd.DeviceInfo, shadowVA uint64) (preamble, clearState []uint32, err error) {
	b := pm4state.NewBuilder(info, nil)
	if err := BuildPreamble(info, shadowVA, b); err != nil {
		return nil, nil, err
	}
	preamble = b.Dwords()

	b.Reset()
	err = EmulateClearState(info, nil, func(offset uint32, values []uint32) error {
		return b.SetContextRegSeq(offset, values)
	})
	if err != nil {
		return nil, nil, err
	}
	return preamble, b.Dwords(), nil
}
