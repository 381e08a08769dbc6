package ctxroll

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/regs"
)

// Describe renders the deltas as "NAME(0xmask)" items in offset order,
// prefixed by ACQUIRE_MEM when the context started with one.
func (a *Analyzer) Describe(d *Deltas) string {
	var items []string
	if d.AcquireMem {
		items = append(items, "ACQUIRE_MEM")
	}
	for i := 0; i < NumContextRegs; i++ {
		if !d.IsWritten(i) {
			continue
		}
		offset := amd.ContextRegOffset + uint32(i)*4
		name := regs.RegisterName(a.cat, a.cfg.GfxLevel, a.cfg.Family, offset)
		items = append(items, fmt.Sprintf("%s(0x%x)", name, d.ChangedMasks[i]))
	}
	return strings.Join(items, " ")
}

// WriteRolls prints one line per recorded roll.
func (a *Analyzer) WriteRolls(w io.Writer) error {
	for i := range a.rolls {
		if _, err := fmt.Fprintf(w, "roll %d @%d: %s\n", i, a.rolls[i].Start, a.Describe(&a.rolls[i].Deltas)); err != nil {
			return err
		}
	}
	return nil
}

// SummaryEntry is a distinct roll and how often it was seen.
type SummaryEntry struct {
	Deltas *Deltas
	Count  int
}

// Summary groups identical rolls, most frequent first. Ties keep first
// occurrence order.
func (a *Analyzer) Summary() []SummaryEntry {
	index := make(map[Deltas]int)
	var out []SummaryEntry
	for i := range a.rolls {
		d := &a.rolls[i].Deltas
		if j, ok := index[*d]; ok {
			out[j].Count++
			continue
		}
		index[*d] = len(out)
		out = append(out, SummaryEntry{Deltas: d, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// WriteSummary prints the grouped rolls with their occurrence counts.
func (a *Analyzer) WriteSummary(w io.Writer) error {
	sum := a.Summary()
	if _, err := fmt.Fprintf(w, "%d context rolls, %d unique\n", len(a.rolls), len(sum)); err != nil {
		return err
	}
	for _, e := range sum {
		if _, err := fmt.Fprintf(w, "%6d  %s\n", e.Count, a.Describe(e.Deltas)); err != nil {
			return err
		}
	}
	return nil
}
