package amd

import (
	"fmt"
	"strings"
)

// GfxLevel identifies a graphics IP generation.
type GfxLevel int

const (
	GfxUnknown GfxLevel = iota
	Gfx6
	Gfx7
	Gfx8
	Gfx9
	Gfx10
	Gfx103
	Gfx11
	Gfx115
)

func (l GfxLevel) String() string {
	switch l {
	case Gfx6:
		return "GFX6"
	case Gfx7:
		return "GFX7"
	case Gfx8:
		return "GFX8"
	case Gfx9:
		return "GFX9"
	case Gfx10:
		return "GFX10"
	case Gfx103:
		return "GFX10_3"
	case Gfx11:
		return "GFX11"
	case Gfx115:
		return "GFX11_5"
	default:
		return "GFX_UNKNOWN"
	}
}

// Family identifies a GPU chip.
type Family int

const (
	FamilyUnknown Family = iota
	Tahiti
	Pitcairn
	Verde
	Oland
	Hainan
	Bonaire
	Kaveri
	Kabini
	Hawaii
	Tonga
	Iceland
	Carrizo
	Fiji
	Stoney
	Polaris10
	Polaris11
	Polaris12
	VegaM
	Vega10
	Vega12
	Vega20
	Raven
	Raven2
	Renoir
	Arcturus
	Aldebaran
	Navi10
	Navi12
	Navi14
	Navi21
	Navi22
	Navi23
	Navi24
	VanGogh
	Rembrandt
	Raphael
	Mendocino
	Navi31
	Navi32
	Navi33
	Gfx1103R1
	Gfx1103R2
	Gfx1150
	Gfx1151
	familyLast
)

type familyDesc struct {
	name  string
	level GfxLevel
	dgpu  bool
}

var familyTable = [familyLast]familyDesc{
	FamilyUnknown: {"unknown", GfxUnknown, false},
	Tahiti:        {"tahiti", Gfx6, true},
	Pitcairn:      {"pitcairn", Gfx6, true},
	Verde:         {"verde", Gfx6, true},
	Oland:         {"oland", Gfx6, true},
	Hainan:        {"hainan", Gfx6, true},
	Bonaire:       {"bonaire", Gfx7, true},
	Kaveri:        {"kaveri", Gfx7, false},
	Kabini:        {"kabini", Gfx7, false},
	Hawaii:        {"hawaii", Gfx7, true},
	Tonga:         {"tonga", Gfx8, true},
	Iceland:       {"iceland", Gfx8, true},
	Carrizo:       {"carrizo", Gfx8, false},
	Fiji:          {"fiji", Gfx8, true},
	Stoney:        {"stoney", Gfx8, false},
	Polaris10:     {"polaris10", Gfx8, true},
	Polaris11:     {"polaris11", Gfx8, true},
	Polaris12:     {"polaris12", Gfx8, true},
	VegaM:         {"vegam", Gfx8, true},
	Vega10:        {"vega10", Gfx9, true},
	Vega12:        {"vega12", Gfx9, true},
	Vega20:        {"vega20", Gfx9, true},
	Raven:         {"raven", Gfx9, false},
	Raven2:        {"raven2", Gfx9, false},
	Renoir:        {"renoir", Gfx9, false},
	Arcturus:      {"arcturus", Gfx9, true},
	Aldebaran:     {"aldebaran", Gfx9, true},
	Navi10:        {"navi10", Gfx10, true},
	Navi12:        {"navi12", Gfx10, true},
	Navi14:        {"navi14", Gfx10, true},
	Navi21:        {"navi21", Gfx103, true},
	Navi22:        {"navi22", Gfx103, true},
	Navi23:        {"navi23", Gfx103, true},
	Navi24:        {"navi24", Gfx103, true},
	VanGogh:       {"vangogh", Gfx103, false},
	Rembrandt:     {"rembrandt", Gfx103, false},
	Raphael:       {"raphael", Gfx103, false},
	Mendocino:     {"mendocino", Gfx103, false},
	Navi31:        {"navi31", Gfx11, true},
	Navi32:        {"navi32", Gfx11, true},
	Navi33:        {"navi33", Gfx11, true},
	Gfx1103R1:     {"gfx1103_r1", Gfx11, false},
	Gfx1103R2:     {"gfx1103_r2", Gfx11, false},
	Gfx1150:       {"gfx1150", Gfx115, false},
	Gfx1151:       {"gfx1151", Gfx115, false},
}

func (f Family) String() string {
	if f < 0 || f >= familyLast {
		return "unknown"
	}
	return familyTable[f].name
}

// GfxLevel returns the graphics generation of the chip.
func (f Family) GfxLevel() GfxLevel {
	if f < 0 || f >= familyLast {
		return GfxUnknown
	}
	return familyTable[f].level
}

// Dedicated reports whether the chip is a discrete GPU.
func (f Family) Dedicated() bool {
	if f < 0 || f >= familyLast {
		return false
	}
	return familyTable[f].dgpu
}

// FamilyByName looks a chip up by its lower case name, e.g. "navi21".
func FamilyByName(name string) (Family, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f := Tahiti; f < familyLast; f++ {
		if familyTable[f].name == name {
			return f, true
		}
	}
	return FamilyUnknown, false
}

// FamilyNames lists every known chip name, in generation order.
func FamilyNames() []string {
	names := make([]string, 0, familyLast-1)
	for f := Tahiti; f < familyLast; f++ {
		names = append(names, familyTable[f].name)
	}
	return names
}

// IPType selects the hardware engine a command buffer is built for.
type IPType int

const (
	IPGFX IPType = iota
	IPCompute
	IPSDMA
	NumIPTypes
)

func (ip IPType) String() string {
	switch ip {
	case IPGFX:
		return "gfx"
	case IPCompute:
		return "compute"
	case IPSDMA:
		return "sdma"
	default:
		return fmt.Sprintf("ip(%d)", int(ip))
	}
}

// ParseIPType converts a command line IP name.
func ParseIPType(s string) (IPType, bool) {
	switch strings.ToLower(s) {
	case "gfx", "":
		return IPGFX, true
	case "compute", "comp":
		return IPCompute, true
	case "sdma", "dma":
		return IPSDMA, true
	}
	return IPGFX, false
}

// DeviceInfo holds the subset of GPU capabilities used by the command
// stream builders and the submission layer.
type DeviceInfo struct {
	GfxLevel GfxLevel
	Family   Family

	HasSetContextPairsPacked bool
	HasSetShPairsPacked      bool
	HasFWBasedShadowing      bool
	DPBBAllowed              bool

	// Measured per chip at init time.
	PaScTileSteeringOverride uint32

	NumQueues [NumIPTypes]int
}

// NewDeviceInfo returns the default capabilities of a chip.
func NewDeviceInfo(f Family) DeviceInfo {
	info := DeviceInfo{
		GfxLevel: f.GfxLevel(),
		Family:   f,
	}
	info.NumQueues[IPGFX] = 1
	info.NumQueues[IPCompute] = 4
	info.NumQueues[IPSDMA] = 2
	if info.GfxLevel >= Gfx9 {
		info.DPBBAllowed = true
	}
	if info.GfxLevel >= Gfx11 && f.Dedicated() {
		info.HasSetContextPairsPacked = true
		info.HasSetShPairsPacked = true
	}
	return info
}
