// Program ib_parser disassembles raw PM4 and SDMA command buffers.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"pm4dbg/common"
	"pm4dbg/internal/amd"
	"pm4dbg/internal/config"
	"pm4dbg/internal/lister"
	"pm4dbg/internal/regs"
)

type options struct {
	ip              string
	traceIDs        []uint
	maps            []string
	regsFile        string
	logLevel        string
	raw             bool
	tree            bool
	rolls           bool
	rollDetails     bool
	stats           bool
	color           bool
	printShadowRegs bool
}

func newRoot(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "ib_parser <gpu-name> <ib-file>...",
		Short: "ib_parser prints the packets of AMD GPU command buffers.",
		Example: `  ib_parser navi21 ib.bin
  ib_parser --ip sdma navi10 sdma.bin
  ib_parser --map 0x800000100000=ib2.bin --tree vega10 ib.bin`,
		Args:          cobra.MinimumNArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.FromEnv(getenv)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("color") {
				opts.color = env.Color
			}
			if !cmd.Flags().Changed("print-shadow-regs") {
				opts.printShadowRegs = env.PrintShadowRegs
			}
			if !cmd.Flags().Changed("log-level") {
				opts.logLevel = env.LogLevel.String()
			}
			cfg, err := opts.listerConfig(args, stdout, stderr)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return lister.Run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ip, "ip", "gfx", "engine the buffers were built for: gfx, compute or sdma")
	f.UintSliceVar(&opts.traceIDs, "trace-id", nil, "last trace point reached, one per IB level")
	f.StringArrayVar(&opts.maps, "map", nil, "map a dword file at a GPU VA, as va=file")
	f.StringVar(&opts.regsFile, "regs", "", "register table in INI format instead of the built-in one")
	f.StringVar(&opts.logLevel, "log-level", "warning", "debug, info, warning or error")
	f.BoolVar(&opts.raw, "raw", false, "hex dump each buffer before disassembling it")
	f.BoolVar(&opts.tree, "tree", false, "print the IB hierarchy")
	f.BoolVar(&opts.rolls, "rolls", false, "print the context rolls of GFX buffers")
	f.BoolVar(&opts.rollDetails, "roll-details", false, "with --rolls, list every roll")
	f.BoolVar(&opts.stats, "stats", false, "print packet counts")
	f.BoolVar(&opts.color, "color", true, "colorize the output")
	f.BoolVar(&opts.printShadowRegs, "print-shadow-regs", false, "list the registers that are not shadowed")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func (o *options) listerConfig(args []string, stdout, stderr io.Writer) (lister.Config, error) {
	family, ok := amd.FamilyByName(args[0])
	if !ok || family == amd.FamilyUnknown {
		return lister.Config{}, errors.Errorf("unknown GPU %q, expected one of: %s", args[0], strings.Join(amd.FamilyNames(), ", "))
	}
	ip, ok := amd.ParseIPType(o.ip)
	if !ok {
		return lister.Config{}, errors.Errorf("unknown IP %q", o.ip)
	}
	level, err := common.ParseSeverity(o.logLevel)
	if err != nil {
		return lister.Config{}, err
	}

	cfg := lister.Config{
		Family:          family,
		IP:              ip,
		Files:           args[1:],
		Raw:             o.raw,
		Tree:            o.tree,
		Rolls:           o.rolls,
		RollDetails:     o.rollDetails,
		Stats:           o.stats,
		Color:           o.color,
		PrintShadowRegs: o.printShadowRegs,
		OutputWriter:    stdout,
		Logger:          common.NewPrefixLogger(stderr, stderr, "ib_parser: ", level),
	}
	for _, id := range o.traceIDs {
		cfg.TraceIDs = append(cfg.TraceIDs, uint32(id))
	}
	for _, s := range o.maps {
		m, err := lister.ParseMapping(s)
		if err != nil {
			return lister.Config{}, err
		}
		cfg.Maps = append(cfg.Maps, m)
	}
	if o.regsFile != "" {
		f, err := os.Open(o.regsFile)
		if err != nil {
			return lister.Config{}, errors.Wrap(err, "register table")
		}
		defer f.Close()
		if cfg.Catalog, err = regs.LoadINI(f); err != nil {
			return lister.Config{}, err
		}
	}
	return cfg, nil
}

func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	if err := newRoot(out, os.Stderr, os.Getenv).Execute(); err != nil {
		out.Flush()
		fmt.Fprintf(os.Stderr, "ib_parser: %v\n", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
