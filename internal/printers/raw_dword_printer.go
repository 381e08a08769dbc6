package printers

import (
	"fmt"
	"io"
	"strings"
)

// RawDwordPrinter dumps command buffer dwords as hex, eight per line.
type RawDwordPrinter struct {
	ItemPrinter
}

func NewRawDwordPrinter(writer io.Writer) *RawDwordPrinter {
	return &RawDwordPrinter{
		ItemPrinter: *NewItemPrinter(writer),
	}
}

// PrintDwords dumps words; index is the dword index of words[0].
func (p *RawDwordPrinter) PrintDwords(index int, words []uint32) {
	if p.IsMuted() {
		return
	}
	for start := 0; start < len(words); start += 8 {
		end := min(start+8, len(words))
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Index%7d; ", index+start))
		for _, w := range words[start:end] {
			sb.WriteString(fmt.Sprintf("%08x ", w))
		}
		p.Linef(0, "%s", strings.TrimRight(sb.String(), " "))
	}
}
