// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"dnacode-core/practicality"
	"dnacode/internal/clibase"
	"dnacode/internal/config"
	"dnacode/internal/engine"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestEncodeWithLiterals(t *testing.T) {
	o := mustParse(t, "--encode", "text", "Hi", "there", "--output", "json")
	if o.Mode != engine.EncodeText {
		t.Fatalf("mode=%v", o.Mode)
	}
	if len(o.Literals) != 2 || o.Literals[0] != "Hi" || o.Literals[1] != "there" {
		t.Fatalf("literals=%v", o.Literals)
	}
	if o.Output != "json" {
		t.Fatalf("output=%q", o.Output)
	}
}

func TestShortModeAliases(t *testing.T) {
	if o := mustParse(t, "-d", "hex", "ATCC"); o.Mode != engine.DecodeHex {
		t.Fatalf("-d hex → %v", o.Mode)
	}
	if o := mustParse(t, "-a", "ACGT"); o.Mode != engine.Analyze {
		t.Fatalf("-a → %v", o.Mode)
	}
	if o := mustParse(t, "-e", "bin", "0101"); o.Mode != engine.EncodeBinary {
		t.Fatalf("-e bin → %v", o.Mode)
	}
}

func TestDecodeFromSequences(t *testing.T) {
	o := mustParse(t, "--decode", "binary", "--sequences", "ref.fa", "-s", "more.fa")
	if len(o.SeqFiles) != 2 || len(o.Literals) != 0 {
		t.Fatalf("bad parse %+v", o)
	}
}

func TestModeErrors(t *testing.T) {
	cases := [][]string{
		{"ACGT"},
		{"--encode", "text", "--analyze", "Hi"},
		{"--encode", "base64", "Hi"},
		{"--decode", "text"},
		{"--encode", "text", "--sequences", "x.fa"},
		{"--analyze", "--gc-low", "90", "--gc-high", "10", "ACGT"},
	}
	for _, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestHelpExamplesVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h: %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("--examples: %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("--version: %+v %v", o, err)
	}
}

func TestApplyConfig_ExplicitFlagsWin(t *testing.T) {
	o := mustParse(t, "--analyze", "--gc-low", "30", "ACGT")
	cfg := config.Config{
		Thresholds: practicality.Thresholds{HomopolymerRun: 5, GCLow: 25, GCHigh: 70, PalindromeWindow: 8},
		Output:     "jsonl",
	}
	if err := o.ApplyConfig(cfg); err != nil {
		t.Fatal(err)
	}
	want := practicality.Thresholds{HomopolymerRun: 5, GCLow: 30, GCHigh: 70, PalindromeWindow: 8}
	if o.Thresholds != want {
		t.Fatalf("thresholds=%+v want %+v", o.Thresholds, want)
	}
	if o.Output != "jsonl" {
		t.Fatalf("output=%q", o.Output)
	}
}

func TestApplyConfig_RevalidatesMergedThresholds(t *testing.T) {
	o := mustParse(t, "--analyze", "--gc-high", "15", "ACGT")
	err := o.ApplyConfig(config.Config{
		Thresholds: practicality.Thresholds{HomopolymerRun: 4, GCLow: 20, GCHigh: 80, PalindromeWindow: 6},
		Output:     "text",
	})
	if err == nil {
		t.Fatal("gc-low from config above explicit gc-high should fail")
	}
}

func TestApplyConfig_GCBoundsSplitAcrossConfigAndFlags(t *testing.T) {
	o := mustParse(t, "--analyze", "--gc-high", "15", "ACGT")
	err := o.ApplyConfig(config.Config{
		Thresholds: practicality.Thresholds{HomopolymerRun: 4, GCLow: 5, GCHigh: 80, PalindromeWindow: 6},
		Output:     "text",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if o.Thresholds.GCLow != 5 || o.Thresholds.GCHigh != 15 {
		t.Fatalf("thresholds=%+v", o.Thresholds)
	}
}

func TestExplicitThresholdRanges(t *testing.T) {
	for _, args := range [][]string{
		{"--analyze", "--homopolymer-run", "-1", "ACGT"},
		{"--analyze", "--palindrome-window", "-2", "ACGT"},
		{"--analyze", "--gc-low", "-5", "ACGT"},
		{"--analyze", "--gc-high", "101", "ACGT"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestUsageListsModes(t *testing.T) {
	fs := NewFlagSet("dnacode")
	_, _ = ParseArgs(fs, []string{"-h"})
	var out bytes.Buffer
	fs.SetOutput(&out)
	fs.Usage()
	for _, want := range []string{"--encode format", "--analyze", "--gc-low float          Flag GC% below this [20]"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestPrintExamples(t *testing.T) {
	var out bytes.Buffer
	PrintExamples(&out)
	if !strings.Contains(out.String(), "dnacode --encode text Hi") {
		t.Fatalf("examples: %s", out.String())
	}
}
