package regs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pm4dbg/internal/amd"
	"pm4dbg/internal/common"
)

// iniSection keeps keys in file order; field order decides print order.
type iniSection struct {
	name string
	line int
	keys []string
	vals map[string]string
}

// parseINI splits an INI stream into sections. A section header that
// repeats starts a new section, so one register can have several level
// ranged entries.
func parseINI(r io.Reader) ([]*iniSection, error) {
	var sections []*iniSection
	var cur *iniSection
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			cur = &iniSection{
				name: strings.TrimSpace(line[1 : len(line)-1]),
				line: lineNo,
				vals: make(map[string]string),
			}
			sections = append(sections, cur)
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected key = value", lineNo)
		}
		if cur == nil {
			return nil, errors.Errorf("line %d: key outside of a register section", lineNo)
		}
		key := strings.TrimSpace(parts[0])
		if _, dup := cur.vals[key]; !dup {
			cur.keys = append(cur.keys, key)
		}
		cur.vals[key] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading register table")
	}
	return sections, nil
}

// LoadINI reads a register table. Each section describes one register:
//
//	[DB_DEPTH_CONTROL]
//	offset = 0x028800
//	levels = gfx9-gfx11
//	families = navi21,navi22
//	field.ZFUNC = 0x70
//	values.ZFUNC = FRAG_NEVER,FRAG_LESS
//
// levels accepts a single level, "lo-hi" or "lo-" and defaults to every
// level. families is optional.
func LoadINI(r io.Reader) (*Table, error) {
	sections, err := parseINI(r)
	if err != nil {
		return nil, catalogErr(err)
	}

	entries := make([]entry, 0, len(sections))
	for _, s := range sections {
		e, err := sectionEntry(s)
		if err != nil {
			return nil, catalogErr(errors.Wrapf(err, "register %s (line %d)", s.name, s.line))
		}
		entries = append(entries, e)
	}
	return newTable(entries), nil
}

func catalogErr(err error) error {
	return errors.Wrap(common.NewErrorMsg(amd.ErrSevError, amd.ErrCatalogParse, err.Error()), "load register table")
}

func sectionEntry(s *iniSection) (entry, error) {
	e := entry{minLevel: amd.Gfx6, maxLevel: amd.Gfx115, reg: Register{Name: s.name}}

	off, ok := s.vals["offset"]
	if !ok {
		return e, errors.New("missing offset")
	}
	v, err := strconv.ParseUint(off, 0, 32)
	if err != nil {
		return e, errors.Wrap(err, "bad offset")
	}
	e.reg.Offset = uint32(v)

	if lv, ok := s.vals["levels"]; ok {
		if e.minLevel, e.maxLevel, err = parseLevelRange(lv); err != nil {
			return e, err
		}
	}

	if fams, ok := s.vals["families"]; ok {
		for _, name := range strings.Split(fams, ",") {
			fam, ok := amd.FamilyByName(name)
			if !ok {
				return e, errors.Errorf("unknown family %q", strings.TrimSpace(name))
			}
			e.families = append(e.families, fam)
		}
	}

	for _, key := range s.keys {
		name, ok := strings.CutPrefix(key, "field.")
		if !ok {
			continue
		}
		mask, err := strconv.ParseUint(s.vals[key], 0, 32)
		if err != nil {
			return e, errors.Wrapf(err, "bad mask for field %s", name)
		}
		fld := Field{Name: name, Mask: uint32(mask)}
		if vals, ok := s.vals["values."+name]; ok {
			for _, v := range strings.Split(vals, ",") {
				fld.Values = append(fld.Values, strings.TrimSpace(v))
			}
		}
		e.reg.Fields = append(e.reg.Fields, fld)
	}
	return e, nil
}

// ParseGfxLevel accepts "gfx9", "GFX10_3", "gfx103" and similar spellings.
func ParseGfxLevel(s string) (amd.GfxLevel, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), ".", "_"))
	switch norm {
	case "GFX103":
		norm = "GFX10_3"
	case "GFX115":
		norm = "GFX11_5"
	}
	for l := amd.Gfx6; l <= amd.Gfx115; l++ {
		if l.String() == norm {
			return l, nil
		}
	}
	return amd.GfxUnknown, errors.Errorf("unknown gfx level %q", s)
}

func parseLevelRange(s string) (amd.GfxLevel, amd.GfxLevel, error) {
	lo, hi, isRange := strings.Cut(s, "-")
	first, err := ParseGfxLevel(lo)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return first, first, nil
	}
	last := amd.Gfx115
	if strings.TrimSpace(hi) != "" {
		if last, err = ParseGfxLevel(hi); err != nil {
			return 0, 0, err
		}
	}
	if last < first {
		return 0, 0, errors.Errorf("empty level range %q", s)
	}
	return first, last, nil
}
