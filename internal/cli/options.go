// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"dnacode-core/practicality"
	"dnacode/internal/clibase"
	"dnacode/internal/cliutil"
	"dnacode/internal/config"
	"dnacode/internal/engine"
)

// Options holds all dnacode flags and arguments.
type Options struct {
	clibase.Common

	Mode     engine.Mode
	Literals []string // positional payloads, one record each

	Thresholds practicality.Thresholds
}

// NewFlagSet returns a FlagSet with the dnacode usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --encode binary|hex|text [options] INPUT...\n", name)
		_, _ = fmt.Fprintf(out, "  %s --decode binary|hex|text [options] (SEQUENCE... | --sequences reads.fa)\n", name)
		_, _ = fmt.Fprintf(out, "  %s --analyze [options] (SEQUENCE... | --sequences reads.fa)\n", name)

		_, _ = fmt.Fprintln(out, "\nMode (exactly one):")
		_, _ = fmt.Fprintln(out, "  -e, --encode format         Encode binary | hex | text into nucleotides")
		_, _ = fmt.Fprintln(out, "  -d, --decode format         Decode nucleotides into binary | hex | text")
		_, _ = fmt.Fprintln(out, "  -a, --analyze               Flag practicality issues in nucleotide sequences")

		_, _ = fmt.Fprintln(out, "\nAnalysis:")
		_, _ = fmt.Fprintf(out, "      --homopolymer-run int   Flag runs of N identical bases (0=off) [%s]\n", def("homopolymer-run"))
		_, _ = fmt.Fprintf(out, "      --gc-low float          Flag GC%% below this [%s]\n", def("gc-low"))
		_, _ = fmt.Fprintf(out, "      --gc-high float         Flag GC%% above this [%s]\n", def("gc-high"))
		_, _ = fmt.Fprintf(out, "      --palindrome-window int Reverse-complement palindrome length (0=off) [%s]\n", def("palindrome-window"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for dnacode.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "dnacode", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Encode data as DNA (2 bits per base: A=00 T=01 C=10 G=11).")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  dnacode --encode text Hi                 # TACATCCT")
		_, _ = fmt.Fprintln(w, "  dnacode --encode hex 0x1A                # ATCC")
		_, _ = fmt.Fprintln(w, "  dnacode --decode binary TA               # 0100")
		_, _ = fmt.Fprintln(w, "  dnacode --decode text --sequences reads.fa.gz --output jsonl")
		_, _ = fmt.Fprintln(w, "  dnacode --analyze --pretty AAAAGGCGCC")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples, analyze bool
	var encode, decode string

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&encode, "encode", "", "encode format: binary | hex | text")
	fs.StringVar(&encode, "e", "", "alias of --encode")
	fs.StringVar(&decode, "decode", "", "decode format: binary | hex | text")
	fs.StringVar(&decode, "d", "", "alias of --decode")
	fs.BoolVar(&analyze, "analyze", false, "analyze practicality [false]")
	fs.BoolVar(&analyze, "a", false, "alias of --analyze")

	d := practicality.DefaultThresholds
	fs.IntVar(&o.Thresholds.HomopolymerRun, "homopolymer-run", d.HomopolymerRun, "homopolymer run length to flag")
	fs.Float64Var(&o.Thresholds.GCLow, "gc-low", d.GCLow, "flag GC% below this")
	fs.Float64Var(&o.Thresholds.GCHigh, "gc-high", d.GCHigh, "flag GC% above this")
	fs.IntVar(&o.Thresholds.PalindromeWindow, "palindrome-window", d.PalindromeWindow, "palindrome length to search")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if err := clibase.AfterParse(fs, &o.Common, noHeader); err != nil {
		return o, err
	}

	modes := 0
	if encode != "" {
		modes++
		f, err := engine.ParseFormat(encode)
		if err != nil {
			return o, fmt.Errorf("--encode: %w", err)
		}
		o.Mode = engine.EncodeMode(f)
	}
	if decode != "" {
		modes++
		f, err := engine.ParseFormat(decode)
		if err != nil {
			return o, fmt.Errorf("--decode: %w", err)
		}
		o.Mode = engine.DecodeMode(f)
	}
	if analyze {
		modes++
		o.Mode = engine.Analyze
	}
	switch {
	case modes == 0:
		return o, errors.New("provide one of --encode, --decode or --analyze")
	case modes > 1:
		return o, errors.New("--encode, --decode and --analyze are mutually exclusive")
	}

	o.Literals = posArgs
	if o.Mode.IsEncode() && len(o.SeqFiles) > 0 {
		return o, errors.New("--sequences is only supported with --decode or --analyze")
	}
	if len(o.Literals) == 0 && len(o.SeqFiles) == 0 {
		return o, errors.New("provide at least one INPUT or --sequences file")
	}
	return o, validateExplicitThresholds(o.Thresholds, o.Explicit)
}

// ApplyConfig fills options left unset on the command line from cfg.
func (o *Options) ApplyConfig(cfg config.Config) error {
	o.Common.ApplyConfig(cfg)
	if !o.Explicit["homopolymer-run"] {
		o.Thresholds.HomopolymerRun = cfg.Thresholds.HomopolymerRun
	}
	if !o.Explicit["gc-low"] {
		o.Thresholds.GCLow = cfg.Thresholds.GCLow
	}
	if !o.Explicit["gc-high"] {
		o.Thresholds.GCHigh = cfg.Thresholds.GCHigh
	}
	if !o.Explicit["palindrome-window"] {
		o.Thresholds.PalindromeWindow = cfg.Thresholds.PalindromeWindow
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	return validateThresholds(o.Thresholds)
}

// validateExplicitThresholds checks only the thresholds given on the command
// line. Unset ones may still come from the config file, so the GC ordering is
// checked here only when both bounds were passed.
func validateExplicitThresholds(th practicality.Thresholds, explicit map[string]bool) error {
	if (explicit["homopolymer-run"] && th.HomopolymerRun < 0) || (explicit["palindrome-window"] && th.PalindromeWindow < 0) {
		return errors.New("--homopolymer-run and --palindrome-window must be ≥ 0")
	}
	if (explicit["gc-low"] && th.GCLow < 0) || (explicit["gc-high"] && th.GCHigh > 100) ||
		(explicit["gc-low"] && explicit["gc-high"] && th.GCLow > th.GCHigh) {
		return fmt.Errorf("GC thresholds must satisfy 0 ≤ --gc-low ≤ --gc-high ≤ 100 (got %g, %g)", th.GCLow, th.GCHigh)
	}
	return nil
}

func validateThresholds(th practicality.Thresholds) error {
	if th.HomopolymerRun < 0 || th.PalindromeWindow < 0 {
		return errors.New("--homopolymer-run and --palindrome-window must be ≥ 0")
	}
	if th.GCLow < 0 || th.GCHigh > 100 || th.GCLow > th.GCHigh {
		return fmt.Errorf("GC thresholds must satisfy 0 ≤ --gc-low ≤ --gc-high ≤ 100 (got %g, %g)", th.GCLow, th.GCHigh)
	}
	return nil
}
