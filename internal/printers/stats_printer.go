package printers

import (
	"io"
	"sort"
)

// StatsPrinter counts packets by name and prints the totals.
type StatsPrinter struct {
	ItemPrinter
	counts map[string]int
	total  int
}

func NewStatsPrinter(writer io.Writer) *StatsPrinter {
	return &StatsPrinter{
		ItemPrinter: *NewItemPrinter(writer),
		counts:      make(map[string]int),
	}
}

// Count records one packet.
func (p *StatsPrinter) Count(name string) {
	p.counts[name]++
	p.total++
}

func (p *StatsPrinter) Total() int { return p.total }

func (p *StatsPrinter) CountOf(name string) int { return p.counts[name] }

// PrintStats writes the counts, most frequent first.
func (p *StatsPrinter) PrintStats() {
	names := make([]string, 0, len(p.counts))
	for n := range p.counts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if p.counts[names[i]] != p.counts[names[j]] {
			return p.counts[names[i]] > p.counts[names[j]]
		}
		return names[i] < names[j]
	})

	p.Linef(0, "Packet counts:")
	for _, n := range names {
		p.Linef(IndentWidth, "%-32s %d", n, p.counts[n])
	}
	p.Linef(IndentWidth, "%-32s %d", "TOTAL", p.total)
}
