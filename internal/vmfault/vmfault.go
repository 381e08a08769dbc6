// Package vmfault finds GPU page faults in the kernel log.
package vmfault

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"pm4dbg/internal/amd"
)

var (
	timestampRe = regexp.MustCompile(`^\[\s*(\d+)\.(\d+)\]`)
	hexRe       = regexp.MustCompile(`0x([0-9a-fA-F]+)`)
)

const (
	// Before GFX9 the register holds a 4 KiB page number.
	gfx6Marker = "VM_CONTEXT1_PROTECTION_FAULT_ADDR"

	// GFX9 and later print the byte address of the faulting page.
	gfx9Marker     = "GCVM_L2_PROTECTION_FAULT_ADDR"
	gfx9PageMarker = "in page starting at address"
)

// Fault is one reported page fault.
type Fault struct {
	Addr      uint64
	Timestamp uint64 // microseconds since boot
	Line      string
}

// State remembers how far the log has been read. The first Scan only
// records the newest timestamp so faults older than the caller are not
// reported.
type State struct {
	mu     sync.Mutex
	primed bool
	last   uint64
}

// Scan reads kernel log lines from r and returns the first fault newer than
// the previous Scan. Lines without a timestamp are ignored.
func (s *State) Scan(r io.Reader, level amd.GfxLevel) (Fault, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		fault  Fault
		found  bool
		newest = s.last
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		ts, ok := timestamp(line)
		if !ok || ts <= s.last {
			continue
		}
		if ts > newest {
			newest = ts
		}
		if !s.primed || found {
			continue
		}
		if addr, ok := faultAddr(line, level); ok {
			fault = Fault{Addr: addr, Timestamp: ts, Line: strings.TrimSpace(line)}
			found = true
		}
	}
	if err := sc.Err(); err != nil {
		return Fault{}, false, errors.Wrap(err, "read kernel log")
	}
	s.last = newest
	s.primed = true
	return fault, found, nil
}

func timestamp(line string) (uint64, bool) {
	m := timestampRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	sec, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	frac := m[2]
	if len(frac) > 6 {
		frac = frac[:6]
	}
	for len(frac) < 6 {
		frac += "0"
	}
	usec, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, false
	}
	return sec*1000000 + usec, true
}

func faultAddr(line string, level amd.GfxLevel) (uint64, bool) {
	var markers []string
	shift := uint(0)
	if level >= amd.Gfx9 {
		markers = []string{gfx9Marker, gfx9PageMarker}
	} else {
		markers = []string{gfx6Marker}
		shift = 12
	}
	for _, m := range markers {
		i := strings.Index(line, m)
		if i < 0 {
			continue
		}
		h := hexRe.FindStringSubmatch(line[i+len(m):])
		if h == nil {
			return 0, false
		}
		v, err := strconv.ParseUint(h[1], 16, 64)
		if err != nil {
			return 0, false
		}
		return v << shift, true
	}
	return 0, false
}

// Dmesg returns the current kernel log.
func Dmesg(ctx context.Context) (io.Reader, error) {
	out, err := exec.CommandContext(ctx, "dmesg").Output()
	if err != nil {
		return nil, errors.Wrap(err, "dmesg")
	}
	return bytes.NewReader(out), nil
}
