package shell

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"dnacode/internal/config"
	"dnacode/internal/version"
)

// NewFlagSet returns the dnacode-shell FlagSet with its usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: interactive DNA encoder/decoder

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// RunContext is the dnacode-shell entry point reading answers from os.Stdin.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWithInput(ctx, argv, os.Stdin, stdout, stderr)
}

// RunWithInput parses argv, loads configuration and runs the menu over in.
func RunWithInput(ctx context.Context, argv []string, in io.Reader, stdout, stderr io.Writer) int {
	fs := NewFlagSet("dnacode-shell")
	fs.SetOutput(stderr)

	var (
		cfgPath     string
		quiet, help bool
		showVersion bool
	)
	fs.StringVar(&cfgPath, "config", "", "config file (yaml|toml|json) [user config dir]")
	fs.BoolVar(&quiet, "quiet", false, "hide warnings and advisories [false]")
	fs.BoolVar(&quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&showVersion, "version", false, "print version and exit [false]")
	fs.BoolVar(&showVersion, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if help {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}
	if showVersion {
		fmt.Fprintf(stdout, "dnacode-shell version %s\n", version.Version)
		return 0
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	explicitQuiet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "quiet" || f.Name == "q" {
			explicitQuiet = true
		}
	})
	if !explicitQuiet {
		quiet = cfg.Quiet
	}

	err = Run(ctx, in, stdout, Config{Thresholds: cfg.Thresholds, Quiet: quiet})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		fmt.Fprintln(stderr, err)
		return 3
	}
}
