// Package ibparse disassembles PM4 and SDMA command buffers into text.
package ibparse

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/xlab/treeprint"

	"pm4dbg/common"
	"pm4dbg/internal/amd"
	icommon "pm4dbg/internal/common"
	"pm4dbg/internal/memacc"
	"pm4dbg/internal/pm4"
	"pm4dbg/internal/printers"
	"pm4dbg/internal/regs"
)

// Config selects how a command buffer is decoded.
type Config struct {
	GfxLevel amd.GfxLevel
	Family   amd.Family
	IP       amd.IPType

	// TraceIDs holds, per IB nesting level, the last trace point id the CP
	// reported. Empty disables trace point annotation.
	TraceIDs []uint32

	// AddrCallback resolves INDIRECT_BUFFER targets. Nil means IBs are not
	// followed.
	AddrCallback memacc.AddrCallback

	// Catalog defaults to regs.Builtin().
	Catalog regs.Catalog
	Color   bool
	Logger  common.Logger

	// Stats, when set, counts every decoded packet by name.
	Stats *printers.StatsPrinter
}

const (
	pktIndent = 8

	// maxNestDepth bounds IB recursion. Hardware supports two levels; the
	// extra room is for captures that replay an IB2 from another IB2.
	maxNestDepth = 8
	// maxChain bounds the number of chained IBs followed from one level.
	maxChain = 4096

	nestedBegin = ">------ nested begin ------"
	nestedEnd   = "<------ nested end ------"
)

// Parser walks a command buffer and writes its disassembly.
type Parser struct {
	cfg Config
	cat regs.Catalog
	log common.Logger
	out *printers.ItemPrinter

	tree treeprint.Tree
}

// ib is the cursor state of one indirect buffer level.
type ib struct {
	words []uint32
	va    uint64
	cur   int

	traceIDs  []uint32
	lastTrace int64 // -1 until a trace point is seen

	packets int
	node    treeprint.Tree
	parent  treeprint.Tree
	kind    string
}

func newIB(words []uint32, va uint64, traceIDs []uint32) *ib {
	return &ib{words: words, va: va, traceIDs: traceIDs, lastTrace: -1}
}

func NewParser(cfg Config) *Parser {
	p := &Parser{cfg: cfg, cat: cfg.Catalog, log: common.OrNoOp(cfg.Logger)}
	if p.cat == nil {
		p.cat = regs.Builtin()
	}
	return p
}

// Parse disassembles words to w. A framing error stops the walk and is
// returned after it has been printed inline.
func (p *Parser) Parse(w io.Writer, words []uint32) error {
	p.out = printers.NewItemPrinter(w)
	p.out.Colorizer.Enabled = p.cfg.Color
	root := newIB(words, 0, p.cfg.TraceIDs)
	root.kind = "root"
	if p.tree != nil {
		root.parent = p.tree
	}
	err := p.parseIB(root, 0)
	if err != nil {
		p.log.Error(err)
	}
	return err
}

// ParseString is Parse into a string.
func ParseString(cfg Config, words []uint32) (string, error) {
	var sb strings.Builder
	err := NewParser(cfg).Parse(&sb, words)
	return sb.String(), err
}

func (p *Parser) parseIB(b *ib, depth int) error {
	p.beginNode(b)
	defer p.endNode(b)

	if p.cfg.IP == amd.IPSDMA {
		return p.parseSDMA(b, depth)
	}

	chained := 0
	for b.cur < len(b.words) {
		hdrWord := b.words[b.cur]
		h := pm4.DecodeHeader(hdrWord)

		switch {
		case h.Type == pm4.Type2:
			p.packetName("NOP (type 2)", false)
			p.count("NOP (type 2)")
			b.cur++
			b.packets++
		case h.Type != pm4.Type3:
			return p.fail(b, amd.ErrInvalidPktHdr, b.cur, "type %d packet header 0x%08x", h.Type, hdrWord)
		case hdrWord == pm4.NopPad:
			p.packetName(pm4.OpNop.String(), false)
			p.count(pm4.OpNop.String())
			b.cur++
			b.packets++
		default:
			next, err := p.parsePacket3(b, h, depth)
			if err != nil {
				return err
			}
			if next == nil {
				continue
			}
			if chained++; chained > maxChain {
				p.errorLine("too many chained IBs, stopping at 0x%x", next.va)
				return nil
			}
			p.endNode(b)
			b.words, b.va, b.cur = next.words, next.va, 0
			b.traceIDs, b.lastTrace = next.traceIDs, -1
			b.packets = 0
			b.kind = "chain"
			p.beginNode(b)
		}
	}
	return nil
}

// parsePacket3 prints one type-3 packet. A non-nil ib is the target of a
// chained INDIRECT_BUFFER that replaces the current one.
func (p *Parser) parsePacket3(b *ib, h pm4.Header, depth int) (*ib, error) {
	first := b.cur
	end := first + h.Dwords()
	if end > len(b.words) {
		return nil, p.fail(b, amd.ErrIBOverrun, first, "%s needs %d dwords, %d left in IB",
			h.Opcode, h.Dwords(), len(b.words)-first)
	}

	k := &packet{hdr: h, idx: first, payload: b.words[first+1 : end]}
	p.packetName(h.Opcode.String(), h.Predicate)
	p.count(h.Opcode.String())
	b.packets++

	next, err := p.formatPacket3(b, k, depth)
	if err != nil {
		return nil, err
	}
	if k.pos > len(k.payload) {
		return nil, p.fail(b, amd.ErrPktCountTooLow, first, "%s read %d payload dwords, header has %d",
			h.Opcode, k.pos, len(k.payload))
	}
	for ; k.pos < len(k.payload); k.pos++ {
		p.out.Linef(pktIndent, "0x%08x", k.payload[k.pos])
	}
	b.cur = end
	return next, nil
}

func (p *Parser) fail(b *ib, code amd.Err, idx int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	p.errorLine("%s at dword %d", msg, idx)
	if b.node != nil {
		b.node.AddNode("error: " + msg)
	}
	return icommon.Errorf(code, idx, "%s", msg)
}

func (p *Parser) errorLine(format string, args ...any) {
	p.out.Linef(0, "%s", p.out.Wrap(printers.ColorRed, fmt.Sprintf(format, args...)))
}

func (p *Parser) packetName(name string, predicate bool) {
	if predicate {
		name += " (predicate)"
	}
	color := printers.ColorCyan
	if strings.HasPrefix(name, "UNKNOWN") {
		color = printers.ColorRed
	}
	p.out.Linef(0, "%s:", p.out.Wrap(color, name))
}

func (p *Parser) count(name string) {
	if p.cfg.Stats != nil {
		p.cfg.Stats.Count(name)
	}
}

// reg prints a register value, one field per line when the catalog knows
// the layout.
func (p *Parser) reg(offset, value uint32) {
	p.regMasked(offset, value, ^uint32(0))
}

func (p *Parser) regMasked(offset, value, mask uint32) {
	r := p.cat.FindRegister(p.cfg.GfxLevel, p.cfg.Family, offset)
	if r == nil {
		name := p.out.Wrap(printers.ColorYellow, fmt.Sprintf("0x%05x", offset))
		p.out.Linef(pktIndent, "%s <- 0x%08x", name, value)
		return
	}
	name := p.out.Wrap(printers.ColorYellow, r.Name)
	if len(r.Fields) == 0 {
		p.out.Linef(pktIndent, "%s <- %s", name, pm4.FormatValue(value, 32))
		return
	}

	first := true
	for _, fld := range r.Fields {
		if fld.Mask&mask == 0 {
			continue
		}
		text := fld.Name + " = " + fieldValue(fld, value)
		if first {
			p.out.Linef(pktIndent, "%s <- %s", name, text)
			first = false
		} else {
			p.out.Linef(pktIndent+len(r.Name)+4, "%s", text)
		}
	}
}

func fieldValue(fld regs.Field, value uint32) string {
	v := fld.Get(value)
	if n := fld.ValueName(v); n != "" {
		return n
	}
	if fld.Name == "EVENT_TYPE" {
		return pm4.EventType(v).String()
	}
	return pm4.FormatValue(v, bits.OnesCount32(fld.Mask))
}

// named prints a payload dword that has no register description.
func (p *Parser) named(name string, value uint32) {
	p.out.Linef(pktIndent, "%s <- %s", p.out.Wrap(printers.ColorYellow, name), pm4.FormatValue(value, 32))
}

func (p *Parser) beginNode(b *ib) {
	if b.parent == nil {
		return
	}
	b.node = b.parent.AddMetaBranch(b.kind, "")
}

func (p *Parser) endNode(b *ib) {
	if b.node == nil {
		return
	}
	b.node.SetValue(fmt.Sprintf("IB va=0x%x dwords=%d packets=%d", b.va, len(b.words), b.packets))
	b.node = nil
}
