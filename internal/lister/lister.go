// Package lister implements the ib_parser processing loop.
package lister

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pm4dbg/common"
	"pm4dbg/internal/amd"
	"pm4dbg/internal/ctxroll"
	"pm4dbg/internal/ibparse"
	"pm4dbg/internal/memacc"
	"pm4dbg/internal/printers"
	"pm4dbg/internal/regs"
	"pm4dbg/internal/shadow"
)

// Mapping places a file of dwords at a GPU VA so INDIRECT_BUFFER packets
// pointing into it can be followed.
type Mapping struct {
	VA   uint64
	Path string
}

// ParseMapping parses "va=file", with va in hex (0x prefix optional).
func ParseMapping(s string) (Mapping, error) {
	va, path, ok := strings.Cut(s, "=")
	if !ok || path == "" {
		return Mapping{}, errors.Errorf("mapping %q: want va=file", s)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(va), "0x"), 16, 64)
	if err != nil {
		return Mapping{}, errors.Wrapf(err, "mapping %q", s)
	}
	return Mapping{VA: v, Path: path}, nil
}

// Config mirrors the ib_parser command line.
type Config struct {
	Family   amd.Family
	IP       amd.IPType
	Files    []string
	TraceIDs []uint32
	Maps     []Mapping

	Raw         bool // hex dump each buffer before its disassembly
	Tree        bool // print the IB hierarchy after each file
	Rolls       bool // print the context roll summary of GFX buffers
	RollDetails bool // also list every roll with its dword index
	Stats       bool // print packet counts
	Color       bool

	// PrintShadowRegs lists the registers outside the shadowed ranges
	// before anything else.
	PrintShadowRegs bool

	// Catalog defaults to regs.Builtin().
	Catalog      regs.Catalog
	OutputWriter io.Writer
	Logger       common.Logger
}

// Run disassembles every file in order. It stops at the first file that
// cannot be read or whose framing is corrupt.
func Run(cfg Config) error {
	w := cfg.OutputWriter
	if w == nil {
		w = os.Stdout
	}
	if cfg.Catalog == nil {
		cfg.Catalog = regs.Builtin()
	}
	log := common.OrNoOp(cfg.Logger)
	level := cfg.Family.GfxLevel()
	if level == amd.GfxUnknown {
		return errors.Errorf("unknown GPU family %v", cfg.Family)
	}

	if cfg.PrintShadowRegs {
		if level < amd.Gfx9 {
			log.Logf(common.SeverityWarning, "register shadowing is not supported on %s", level)
		} else if en, ok := cfg.Catalog.(shadow.Enumerator); ok {
			if err := shadow.WriteNonShadowed(w, en, level, cfg.Family); err != nil {
				return err
			}
		}
	}

	mapper := memacc.NewMapper()
	for _, m := range cfg.Maps {
		acc, err := memacc.NewFileAccessor(m.Path, m.VA)
		if err != nil {
			return err
		}
		if err := mapper.AddAccessor(acc); err != nil {
			return err
		}
		log.Logf(common.SeverityInfo, "mapped %s", acc)
	}

	pcfg := ibparse.Config{
		GfxLevel:     level,
		Family:       cfg.Family,
		IP:           cfg.IP,
		TraceIDs:     cfg.TraceIDs,
		AddrCallback: mapper.Callback(),
		Catalog:      cfg.Catalog,
		Color:        cfg.Color,
		Logger:       log,
	}

	for _, file := range cfg.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrap(err, "read IB")
		}
		if len(data)%4 != 0 {
			log.Logf(common.SeverityWarning, "%s: %d trailing bytes ignored", file, len(data)%4)
		}
		words := memacc.DwordsFromBytes(data)
		if len(cfg.Files) > 1 {
			fmt.Fprintf(w, "==== %s (%d dwords) ====\n", file, len(words))
		}
		if err := listIB(w, cfg, pcfg, words); err != nil {
			return errors.Wrap(err, file)
		}
	}
	return nil
}

func listIB(w io.Writer, cfg Config, pcfg ibparse.Config, words []uint32) error {
	if cfg.Raw {
		printers.NewRawDwordPrinter(w).PrintDwords(0, words)
	}

	var stats *printers.StatsPrinter
	if cfg.Stats {
		stats = printers.NewStatsPrinter(w)
		pcfg.Stats = stats
	}
	if err := ibparse.NewParser(pcfg).Parse(w, words); err != nil {
		return err
	}
	if stats != nil {
		stats.PrintStats()
	}

	if cfg.Tree {
		fmt.Fprint(w, ibparse.BuildTree(words, pcfg).String())
	}

	if cfg.Rolls && cfg.IP == amd.IPGFX {
		a := ctxroll.NewAnalyzer(ctxroll.Config{
			GfxLevel: pcfg.GfxLevel,
			Family:   cfg.Family,
			Catalog:  cfg.Catalog,
			Logger:   pcfg.Logger,
		})
		if err := a.Analyze(words); err != nil {
			return errors.Wrap(err, "context rolls")
		}
		if cfg.RollDetails {
			if err := a.WriteRolls(w); err != nil {
				return err
			}
		}
		return a.WriteSummary(w)
	}
	return nil
}
