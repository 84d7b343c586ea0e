// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"dnacode/internal/cliutil"
	"dnacode/internal/config"
)

// Common holds CLI fields shared by dnacode and dnacode-shell.
type Common struct {
	// Input
	SeqFiles []string
	Config   string

	// Performance
	Threads int

	// Output
	Output       string // text|json|jsonl|fasta
	Pretty       bool
	Sort         bool
	Header       bool
	FailExitCode int
	Progress     bool

	// Misc
	Quiet   bool
	Version bool

	// Explicit records the flags given on the command line (canonical names),
	// so config values only fill what the user left unset.
	Explicit map[string]bool
}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// aliases maps short flags onto the canonical name tracked in Explicit.
var aliases = map[string]string{
	"s": "sequences",
	"t": "threads",
	"o": "output",
	"q": "quiet",
	"v": "version",
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Inputs
	seqVal := &sliceValue{dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.StringVar(&c.Config, "config", "", "config file (yaml|toml|json) [user config dir]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | json | jsonl | fasta [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "pretty bit-pair/base block (text) [false]")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.FailExitCode, "fail-exit-code", 1, "exit code when any record fails [1]")
	fs.BoolVar(&c.Progress, "progress", false, "progress bar over sequence files on stderr [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, records explicit flags and expands globs in
// --sequences, then runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool) error {
	c.Header = !*noHeader
	c.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if canon, ok := aliases[name]; ok {
			name = canon
		}
		c.Explicit[name] = true
	})

	if len(c.SeqFiles) > 0 {
		exp, err := cliutil.ExpandPaths(c.SeqFiles)
		if err != nil {
			return err
		}
		c.SeqFiles = exp
	}
	return Validate(c)
}

// ApplyConfig fills every option the user did not set explicitly from cfg.
func (c *Common) ApplyConfig(cfg config.Config) {
	if !c.Explicit["output"] && cfg.Output != "" {
		c.Output = cfg.Output
	}
	if !c.Explicit["threads"] {
		c.Threads = cfg.Threads
	}
	if !c.Explicit["quiet"] && cfg.Quiet {
		c.Quiet = true
	}
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case "text", "json", "jsonl", "fasta":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.FailExitCode < 0 || c.FailExitCode > 255 {
		return errors.New("--fail-exit-code must be between 0 and 255")
	}
	return nil
}
