package printers

import "strings"

// ANSI colors used by the disassembler.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[1;32m"
	ColorYellow = "\033[1;33m"
	ColorCyan   = "\033[1;36m"
	ColorPurple = "\033[1;35m"
)

// Colorizer wraps text in color escapes when enabled.
type Colorizer struct {
	Enabled bool
}

func (c Colorizer) Wrap(color, s string) string {
	if !c.Enabled {
		return s
	}
	return color + s + ColorReset
}

// StripColor removes the escapes this package emits.
func StripColor(s string) string {
	for _, c := range []string{ColorReset, ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorPurple} {
		s = strings.ReplaceAll(s, c, "")
	}
	return s
}
