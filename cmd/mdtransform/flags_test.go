package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"

	"github.com/teamup/mdtransform/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"-m", "@alice,bob",
		"--mention", "carol",
		"--mention-cs", "Dave",
		"--highlight", "deploy",
		"-s", `"release notes, v2"`,
		"--search", "fix*",
		"-f", "json",
		"--style", "compact",
		"--style-dir", "/styles",
		"-o", "out",
		"-w", "3",
		"--verify",
		"-c", "team",
		"--log-level", "warn",
		"--no-color",
		"a.md", "-",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if diff := cmp.Diff([]string{"a.md", "-"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	wantKeys := keyFlags{
		mentions:   []string{"@alice", "bob", "carol"},
		mentionsCS: []string{"Dave"},
		highlights: []string{"deploy"},
		search:     []string{`"release notes, v2"`, "fix*"},
	}
	if diff := cmp.Diff(wantKeys, flags.keys, cmp.AllowUnexported(keyFlags{})); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	wantOutput := outputFlags{format: "json", style: "compact", styleDir: "/styles", dir: "out"}
	if flags.output != wantOutput {
		t.Errorf("output = %+v, want %+v", flags.output, wantOutput)
	}
	if flags.workers != 3 || !flags.verify {
		t.Errorf("workers = %d, verify = %v", flags.workers, flags.verify)
	}
	wantCommon := commonFlags{config: "team", logLevel: "warn", noColor: true}
	if flags.common != wantCommon {
		t.Errorf("common = %+v, want %+v", flags.common, wantCommon)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"workers not a number", []string{"--workers", "many"}},
		{"missing value", []string{"--format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := parseFlags(tt.args); err == nil {
				t.Errorf("parseFlags(%v) expected error", tt.args)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseFlags(--help) error = %v, want flag.ErrHelp", err)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Mentions: []config.KeyConfig{{Key: "@alice"}},
		Search:   []string{"lunch"},
		Output:   config.OutputConfig{Format: "tree", Style: "default", Dir: "cfg-out"},
		Workers:  2,
	}
	flags := &cliFlags{
		keys: keyFlags{
			mentions:   []string{"bob"},
			mentionsCS: []string{"Carol"},
			highlights: []string{"deploy"},
			search:     []string{"fix*"},
		},
		output:  outputFlags{format: "html", dir: "flag-out"},
		workers: 6,
		verify:  true,
	}

	mergeFlags(flags, cfg)

	want := &config.Config{
		Mentions: []config.KeyConfig{
			{Key: "@alice"},
			{Key: "bob"},
			{Key: "Carol", CaseSensitive: true},
		},
		Highlights: []config.KeyConfig{{Key: "deploy"}},
		Search:     []string{"lunch", "fix*"},
		Output:     config.OutputConfig{Format: "html", Style: "default", Dir: "flag-out"},
		Workers:    6,
		Verify:     true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("merged config mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFlags_UnsetFlagsKeepConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Output:  config.OutputConfig{Format: "json", StyleDir: "/styles"},
		Workers: 4,
		Verify:  true,
	}
	want := *cfg

	mergeFlags(&cliFlags{}, cfg)

	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Errorf("config changed by empty flags (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestResolveLogLevel
// ---------------------------------------------------------------------------

func TestResolveLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		common commonFlags
		env    string
		want   string
	}{
		{name: "default", want: "info"},
		{name: "env", env: "warn", want: "warn"},
		{name: "flag over env", common: commonFlags{logLevel: "error"}, env: "warn", want: "error"},
		{name: "verbose", common: commonFlags{verbose: true, logLevel: "warn"}, want: "debug"},
		{name: "quiet wins", common: commonFlags{quiet: true, verbose: true}, want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveLogLevel(&cliFlags{common: tt.common}, &envConfig{LogLevel: tt.env})
			if got != tt.want {
				t.Errorf("resolveLogLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := newLogger(nil, "loud", false)
	if !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("newLogger(loud) error = %v, want ErrInvalidFlag", err)
	}
}
