package pm4state

import (
	"fmt"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
	"pm4dbg/internal/regs"
)

// Stage is the hardware shader stage a binary runs on.
type Stage int

const (
	StagePS Stage = iota
	StageGS
	StageCS
)

func (s Stage) String() string {
	switch s {
	case StagePS:
		return "PS"
	case StageGS:
		return "GS"
	case StageCS:
		return "CS"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

type stageRegs struct {
	pgmLo, pgmHi, rsrc1, rsrc2, userData uint32
	minLevel                             amd.GfxLevel
}

var stageTable = map[Stage]stageRegs{
	StagePS: {pgmLo: 0xb020, pgmHi: 0xb024, rsrc1: 0xb028, rsrc2: 0xb02c, userData: 0xb030},
	StageGS: {pgmLo: 0xb220, pgmHi: 0xb224, rsrc1: 0xb228, rsrc2: 0xb22c, userData: 0xb230, minLevel: amd.Gfx9},
	StageCS: {pgmLo: 0xb830, pgmHi: 0xb834, rsrc1: 0xb848, rsrc2: 0xb84c, userData: 0xb900},
}

// ShaderBinary is a compiled shader plus the register state that binds it.
type ShaderBinary struct {
	Stage Stage
	Code  []byte
	VA    uint64

	// PM4 holds the SH register writes for the shader.
	PM4 *Builder
}

// NewShaderBinary returns a binary for stage with an empty state stream.
func NewShaderBinary(info amd.DeviceInfo, cat regs.Catalog, stage Stage, code []byte) (*ShaderBinary, error) {
	sr, ok := stageTable[stage]
	if !ok {
		return nil, common.Errorf(amd.ErrInvalidParamVal, amd.NoIdx, "shader stage %s", stage)
	}
	if info.GfxLevel < sr.minLevel {
		return nil, common.Errorf(amd.ErrUnsupportedGfx, amd.NoIdx, "%s stage registers on %s", stage, info.GfxLevel)
	}
	return &ShaderBinary{Stage: stage, Code: code, PM4: NewBuilder(info, cat)}, nil
}

// SetProgramAddress writes SPI_SHADER_PGM_LO/HI (COMPUTE_PGM_LO/HI for
// compute). The address must be 256-byte aligned.
func (s *ShaderBinary) SetProgramAddress(va uint64) error {
	if va&0xff != 0 {
		return common.Errorf(amd.ErrInvalidParamVal, amd.NoIdx, "shader address 0x%x is not 256-byte aligned", va)
	}
	sr := stageTable[s.Stage]
	s.VA = va
	if err := s.PM4.SetReg(sr.pgmLo, uint32(va>>8)); err != nil {
		return err
	}
	return s.PM4.SetReg(sr.pgmHi, uint32(va>>40)&0xff)
}

func (s *ShaderBinary) SetRsrc(rsrc1, rsrc2 uint32) error {
	sr := stageTable[s.Stage]
	if err := s.PM4.SetReg(sr.rsrc1, rsrc1); err != nil {
		return err
	}
	return s.PM4.SetReg(sr.rsrc2, rsrc2)
}

// SetUserData writes consecutive user SGPRs starting at slot.
func (s *ShaderBinary) SetUserData(slot int, values ...uint32) error {
	sr := stageTable[s.Stage]
	for i, v := range values {
		if err := s.PM4.SetReg(sr.userData+uint32(slot+i)*4, v); err != nil {
			return err
		}
	}
	return nil
}

// Dwords returns the finalized state stream.
func (s *ShaderBinary) Dwords() []uint32 {
	return s.PM4.Dwords()
}
