package printers

import (
	"bytes"
	"strings"
	"testing"

	"pm4dbg/common"
)

func TestItemPrinter(t *testing.T) {
	var buf, logBuf bytes.Buffer
	p := NewItemPrinter(&buf)
	p.SetMessageLogger(common.NewStdLoggerWithWriter(&logBuf, &logBuf, common.SeverityDebug))

	p.Linef(0, "top")
	p.Indent()
	p.Linef(2, "nested %d", 1)
	p.Dedent()
	p.Dedent()
	p.Linef(0, "back")

	want := "top\n      nested 1\nback\n"
	if buf.String() != want {
		t.Errorf("output %q, want %q", buf.String(), want)
	}
	if !strings.Contains(logBuf.String(), "nested 1") {
		t.Errorf("logger did not receive lines: %q", logBuf.String())
	}

	buf.Reset()
	p.SetMute(true)
	if !p.IsMuted() {
		t.Error("expected muted")
	}
	p.Linef(0, "hidden")
	if buf.Len() != 0 {
		t.Errorf("muted printer wrote %q", buf.String())
	}
}

func TestColorizer(t *testing.T) {
	off := Colorizer{}
	if off.Wrap(ColorRed, "x") != "x" {
		t.Error("disabled colorizer changed text")
	}
	on := Colorizer{Enabled: true}
	s := on.Wrap(ColorCyan, "NOP")
	if s != ColorCyan+"NOP"+ColorReset {
		t.Errorf("wrapped %q", s)
	}
	if StripColor(s) != "NOP" {
		t.Errorf("StripColor(%q) = %q", s, StripColor(s))
	}
}

func TestRawDwordPrinter(t *testing.T) {
	var buf bytes.Buffer
	rp := NewRawDwordPrinter(&buf)

	words := make([]uint32, 10)
	for i := range words {
		words[i] = 0xc0000000 | uint32(i)
	}
	rp.PrintDwords(16, words)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "Index     16; c0000000 c0000001 c0000002 c0000003 c0000004 c0000005 c0000006 c0000007" {
		t.Errorf("line 0 %q", lines[0])
	}
	if lines[1] != "Index     24; c0000008 c0000009" {
		t.Errorf("line 1 %q", lines[1])
	}
}

func TestStatsPrinter(t *testing.T) {
	var buf bytes.Buffer
	sp := NewStatsPrinter(&buf)
	for _, n := range []string{"NOP", "SET_CONTEXT_REG", "SET_CONTEXT_REG", "DRAW_INDEX_AUTO"} {
		sp.Count(n)
	}
	if sp.Total() != 4 || sp.CountOf("SET_CONTEXT_REG") != 2 {
		t.Errorf("total %d, set %d", sp.Total(), sp.CountOf("SET_CONTEXT_REG"))
	}
	sp.PrintStats()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "SET_CONTEXT_REG") {
		t.Errorf("most frequent first, got %q", lines[1])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "DRAW_INDEX_AUTO") {
		t.Errorf("ties sorted by name, got %q", lines[2])
	}
}
