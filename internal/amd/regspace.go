package amd

// Register address spaces. Offsets are absolute byte offsets.
const (
	ConfigRegOffset  uint32 = 0x00008000
	ConfigRegEnd     uint32 = 0x0000B000
	ShRegOffset      uint32 = 0x0000B000
	ShRegEnd         uint32 = 0x0000C000
	ContextRegOffset uint32 = 0x00028000
	ContextRegEnd    uint32 = 0x00030000
	UconfigRegOffset uint32 = 0x00030000
	UconfigRegEnd    uint32 = 0x00040000

	ConfigRegSpaceSize  = ConfigRegEnd - ConfigRegOffset
	ShRegSpaceSize      = ShRegEnd - ShRegOffset
	ContextRegSpaceSize = ContextRegEnd - ContextRegOffset
	UconfigRegSpaceSize = UconfigRegEnd - UconfigRegOffset
)

// Shadow buffer layout: SH, then CONTEXT, then UCONFIG.
const (
	ShadowedShRegOffset      uint32 = 0
	ShadowedContextRegOffset uint32 = ShRegSpaceSize
	ShadowedUconfigRegOffset uint32 = ShRegSpaceSize + ContextRegSpaceSize
	ShadowedRegBufferSize    uint32 = ShRegSpaceSize + ContextRegSpaceSize + UconfigRegSpaceSize
)

// RegSpace is one of the four register address spaces.
type RegSpace int

const (
	SpaceNone RegSpace = iota
	SpaceConfig
	SpaceSh
	SpaceContext
	SpaceUconfig
)

func (s RegSpace) String() string {
	switch s {
	case SpaceConfig:
		return "CONFIG"
	case SpaceSh:
		return "SH"
	case SpaceContext:
		return "CONTEXT"
	case SpaceUconfig:
		return "UCONFIG"
	default:
		return "NONE"
	}
}

// Base returns the first byte offset of the space.
func (s RegSpace) Base() uint32 {
	switch s {
	case SpaceConfig:
		return ConfigRegOffset
	case SpaceSh:
		return ShRegOffset
	case SpaceContext:
		return ContextRegOffset
	case SpaceUconfig:
		return UconfigRegOffset
	}
	return 0
}

// End returns the first byte offset past the space.
func (s RegSpace) End() uint32 {
	switch s {
	case SpaceConfig:
		return ConfigRegEnd
	case SpaceSh:
		return ShRegEnd
	case SpaceContext:
		return ContextRegEnd
	case SpaceUconfig:
		return UconfigRegEnd
	}
	return 0
}

// SpaceOf returns the address space an absolute offset belongs to.
func SpaceOf(offset uint32) RegSpace {
	switch {
	case offset >= ConfigRegOffset && offset < ConfigRegEnd:
		return SpaceConfig
	case offset >= ShRegOffset && offset < ShRegEnd:
		return SpaceSh
	case offset >= ContextRegOffset && offset < ContextRegEnd:
		return SpaceContext
	case offset >= UconfigRegOffset && offset < UconfigRegEnd:
		return SpaceUconfig
	}
	return SpaceNone
}

// RelDwords converts an absolute offset into a dword offset relative to its
// space base, as encoded in SET_*_REG packets.
func (s RegSpace) RelDwords(offset uint32) uint32 {
	return (offset - s.Base()) / 4
}
