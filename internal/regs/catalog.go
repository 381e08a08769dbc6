// Package regs is the register catalog: register names and field layouts
// keyed by byte offset, per gfx generation.
package regs

import (
	"fmt"
	"sort"

	"pm4dbg/internal/amd"
)

// Field is a bitfield of a register. Values, when present, names the field
// values starting at 0; empty strings mark unnamed values.
type Field struct {
	Name   string
	Mask   uint32
	Values []string
}

// Shift returns the position of the lowest mask bit.
func (f Field) Shift() uint {
	if f.Mask == 0 {
		return 0
	}
	s := uint(0)
	for f.Mask&(1<<s) == 0 {
		s++
	}
	return s
}

// Get extracts the field value from a register value.
func (f Field) Get(value uint32) uint32 {
	return (value & f.Mask) >> f.Shift()
}

// ValueName returns the symbolic name of v, or "".
func (f Field) ValueName(v uint32) string {
	if int(v) < len(f.Values) {
		return f.Values[v]
	}
	return ""
}

// Register describes one register.
type Register struct {
	Name   string
	Offset uint32
	Fields []Field
}

// Catalog looks registers up by offset.
type Catalog interface {
	FindRegister(level amd.GfxLevel, family amd.Family, offset uint32) *Register
}

type entry struct {
	minLevel amd.GfxLevel
	maxLevel amd.GfxLevel
	families []amd.Family // empty means every family
	reg      Register
}

func (e *entry) matches(level amd.GfxLevel, family amd.Family) bool {
	if level < e.minLevel || level > e.maxLevel {
		return false
	}
	if len(e.families) == 0 {
		return true
	}
	for _, f := range e.families {
		if f == family {
			return true
		}
	}
	return false
}

// Table is an immutable Catalog built from level-ranged entries.
type Table struct {
	byOffset map[uint32][]*entry
	offsets  []uint32
}

func newTable(entries []entry) *Table {
	t := &Table{byOffset: make(map[uint32][]*entry)}
	for i := range entries {
		e := &entries[i]
		if _, seen := t.byOffset[e.reg.Offset]; !seen {
			t.offsets = append(t.offsets, e.reg.Offset)
		}
		t.byOffset[e.reg.Offset] = append(t.byOffset[e.reg.Offset], e)
	}
	sort.Slice(t.offsets, func(i, j int) bool { return t.offsets[i] < t.offsets[j] })
	return t
}

// FindRegister implements Catalog. The last matching entry wins so that
// family specific entries can follow the generic one.
func (t *Table) FindRegister(level amd.GfxLevel, family amd.Family, offset uint32) *Register {
	var found *Register
	for _, e := range t.byOffset[offset] {
		if e.matches(level, family) {
			found = &e.reg
		}
	}
	return found
}

// Registers returns every register visible for a chip, sorted by offset.
func (t *Table) Registers(level amd.GfxLevel, family amd.Family) []*Register {
	var out []*Register
	for _, off := range t.offsets {
		if r := t.FindRegister(level, family, off); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	n := 0
	for _, es := range t.byOffset {
		n += len(es)
	}
	return n
}

// RegisterName returns the register name, or the offset as hex when the
// catalog does not know it.
func RegisterName(cat Catalog, level amd.GfxLevel, family amd.Family, offset uint32) string {
	if cat != nil {
		if r := cat.FindRegister(level, family, offset); r != nil {
			return r.Name
		}
	}
	return fmt.Sprintf("0x%05x", offset)
}
