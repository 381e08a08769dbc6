package printers

import (
	"fmt"
	"io"
	"strings"

	"pm4dbg/common"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4

// ItemPrinter writes indented lines. The nesting depth is explicit state
// so nested IBs are indented as they are printed.
type ItemPrinter struct {
	Colorizer
	writer io.Writer
	errLog common.Logger
	depth  int
	muted  bool
}

// NewItemPrinter constructs an ItemPrinter using the given io.Writer.
func NewItemPrinter(writer io.Writer) *ItemPrinter {
	return &ItemPrinter{
		writer: writer,
	}
}

// SetMessageLogger sets the optional logger that receives a copy of every
// line at debug level.
func (p *ItemPrinter) SetMessageLogger(logger common.Logger) {
	p.errLog = logger
}

// ItemPrintLine writes msg as is.
func (p *ItemPrinter) ItemPrintLine(msg string) {
	if p.muted {
		return
	}
	if p.writer != nil {
		fmt.Fprint(p.writer, msg)
	}
	if p.errLog != nil {
		p.errLog.Debug(strings.TrimRight(msg, "\n"))
	}
}

// Linef writes one line prefixed with the current indentation plus extra
// spaces.
func (p *ItemPrinter) Linef(extra int, format string, args ...any) {
	pad := strings.Repeat(" ", p.depth*IndentWidth+extra)
	p.ItemPrintLine(pad + fmt.Sprintf(format, args...) + "\n")
}

func (p *ItemPrinter) Indent() { p.depth++ }

func (p *ItemPrinter) Dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *ItemPrinter) Depth() int { return p.depth }

// SetMute sets the printer to mute (avoids output).
func (p *ItemPrinter) SetMute(mute bool) { p.muted = mute }

// IsMuted returns true if the printer is muted.
func (p *ItemPrinter) IsMuted() bool { return p.muted }
