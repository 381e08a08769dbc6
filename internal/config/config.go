// Package config reads the tool and driver settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"pm4dbg/common"
)

// Environment variable names.
const (
	EnvRolls           = "AMD_ROLLS"
	EnvColor           = "AMD_COLOR"
	EnvPrintShadowRegs = "AMD_PRINT_SHADOW_REGS"
	EnvLogLevel        = "AMD_LOG_LEVEL"
)

// Config holds the settings shared by the CLI and the submission layer.
type Config struct {
	// RollLogPath receives the context roll summary of every submitted GFX
	// IB. Empty disables roll logging.
	RollLogPath string

	// Color enables ANSI colors in the disassembly.
	Color bool

	// PrintShadowRegs dumps the registers not covered by the shadowing
	// ranges once, when shadowing is first set up.
	PrintShadowRegs bool

	LogLevel common.Severity
}

// NewConfig returns the defaults.
func NewConfig() Config {
	return Config{
		Color:    true,
		LogLevel: common.SeverityWarning,
	}
}

// FromEnv applies the environment on top of the defaults. getenv is
// os.Getenv outside of tests.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := NewConfig()
	cfg.RollLogPath = strings.TrimSpace(getenv(EnvRolls))
	cfg.Color = boolOption(getenv(EnvColor), cfg.Color)
	cfg.PrintShadowRegs = boolOption(getenv(EnvPrintShadowRegs), cfg.PrintShadowRegs)

	if s := getenv(EnvLogLevel); s != "" {
		sev, err := common.ParseSeverity(s)
		if err != nil {
			return cfg, errors.Wrap(err, EnvLogLevel)
		}
		cfg.LogLevel = sev
	}
	return cfg, nil
}

// boolOption follows the driver convention: unset keeps the default, a
// false-like word disables and anything else enables.
func boolOption(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def
	case "0", "n", "no", "f", "false", "off":
		return false
	}
	return true
}
