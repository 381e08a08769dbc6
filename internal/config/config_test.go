package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pm4dbg/common"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: NewConfig(),
		},
		{
			name: "roll log and shadow dump",
			env:  map[string]string{EnvRolls: " /tmp/rolls.txt ", EnvPrintShadowRegs: "1"},
			want: Config{RollLogPath: "/tmp/rolls.txt", Color: true, PrintShadowRegs: true, LogLevel: common.SeverityWarning},
		},
		{
			name: "color off",
			env:  map[string]string{EnvColor: "No"},
			want: Config{Color: false, LogLevel: common.SeverityWarning},
		},
		{
			name: "any other word enables",
			env:  map[string]string{EnvColor: "always", EnvPrintShadowRegs: "yes"},
			want: Config{Color: true, PrintShadowRegs: true, LogLevel: common.SeverityWarning},
		},
		{
			name: "log level",
			env:  map[string]string{EnvLogLevel: "debug"},
			want: Config{Color: true, LogLevel: common.SeverityDebug},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEnv(env(tt.env))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromEnv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromEnvBadLevel(t *testing.T) {
	if _, err := FromEnv(env(map[string]string{EnvLogLevel: "loud"})); err == nil {
		t.Error("unknown log level accepted")
	}
}
