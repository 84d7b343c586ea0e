// Package shell is the interactive menu front end: pick an operation and a
// format, type a payload, read the result. It drives the same engine as the
// batch CLI.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dnacode-core/codec"
	"dnacode-core/nucleotide"
	"dnacode-core/practicality"
	"dnacode/internal/engine"
	"dnacode/internal/strandid"
)

const (
	menuMain = `
What would you like to do?
1. Encode to DNA (binary, hex or text into nucleotides)
2. Decode from DNA (nucleotides back into binary, hex or text)
3. Analyze a DNA sequence (is it practical to synthesize?)
4. Exit
`
	menuFormat = `
%s
1. Binary (0s and 1s)
2. Hexadecimal (0-9, A-F)
3. Text (letters, digits, symbols)
`
	msgRetry   = "That wasn't one of the options. Try again."
	msgGoodbye = "Goodbye!"
)

// Config tunes a session.
type Config struct {
	Thresholds practicality.Thresholds
	Quiet      bool // hide codec warnings and advisories
}

// Shell is one interactive session.
type Shell struct {
	eng   *engine.Engine
	p     *prompter
	out   io.Writer
	quiet bool
	n     int // records processed, used for result IDs
}

// Run drives the menu loop until the user exits, input ends, or ctx is
// cancelled. End of input is a normal exit (nil error).
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	s := &Shell{
		eng:   engine.New(engine.Config{Thresholds: cfg.Thresholds}),
		p:     newPrompter(ctx, in, out),
		out:   out,
		quiet: cfg.Quiet,
	}
	defer s.p.close()

	fmt.Fprintln(out, "DNA Encoder/Decoder")
	fmt.Fprintln(out, "===================")
	fmt.Fprintln(out, "Convert between DNA and other formats.")

	err := s.loop()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, msgGoodbye)
		return nil
	}
	return err
}

func (s *Shell) loop() error {
	for {
		fmt.Fprint(s.out, menuMain)
		choice, err := s.p.ask("\nEnter your choice (1-4): ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			err = s.encode()
		case "2":
			err = s.decode()
		case "3":
			err = s.analyze()
		case "4":
			fmt.Fprintln(s.out, msgGoodbye)
			return nil
		default:
			fmt.Fprintln(s.out, msgRetry)
		}
		if err != nil {
			return err
		}
	}
}

// chooseFormat shows the format submenu. ok is false after an invalid choice.
func (s *Shell) chooseFormat(title string) (f engine.Format, ok bool, err error) {
	fmt.Fprintf(s.out, menuFormat, title)
	choice, err := s.p.ask("\nEnter your choice (1-3): ")
	if err != nil {
		return 0, false, err
	}
	switch strings.TrimSpace(choice) {
	case "1":
		return engine.FormatBinary, true, nil
	case "2":
		return engine.FormatHex, true, nil
	case "3":
		return engine.FormatText, true, nil
	}
	fmt.Fprintln(s.out, msgRetry)
	return 0, false, nil
}

var encodePrompts = map[engine.Format]string{
	engine.FormatBinary: "Type your binary string (0s and 1s): ",
	engine.FormatHex:    "Type your hexadecimal string (0-9, A-F): ",
	engine.FormatText:   "Type your text message: ",
}

func (s *Shell) encode() error {
	f, ok, err := s.chooseFormat("What kind of data are you starting with?")
	if err != nil || !ok {
		return err
	}
	payload, err := s.p.ask(encodePrompts[f])
	if err != nil {
		return err
	}
	r := s.run(engine.EncodeMode(f), payload)
	s.warn(r.Warnings)
	if r.Err != nil {
		s.fail(r.Err)
		return nil
	}
	if f == engine.FormatText {
		fmt.Fprintf(s.out, "Binary representation: %s\n", r.Bits)
	}
	fmt.Fprintf(s.out, "DNA sequence: %s\n", r.Output)
	fmt.Fprintf(s.out, "Strand ID: %s\n", strandid.CID(r.Strand))
	return nil
}

var decodeLabels = map[engine.Format]string{
	engine.FormatBinary: "Binary",
	engine.FormatHex:    "Hexadecimal",
	engine.FormatText:   "Decoded text",
}

func (s *Shell) decode() error {
	f, ok, err := s.chooseFormat("What do you want to convert your DNA back into?")
	if err != nil || !ok {
		return err
	}
	seq, err := s.p.ask("Type in your DNA sequence (A, T, C, G): ")
	if err != nil {
		return err
	}
	seq = engine.NormalizeStrand(seq)
	if !nucleotide.IsDNA(seq) && !s.quiet {
		fmt.Fprintln(s.out, "Warning: the sequence has letters other than A, T, C and G; the result may be unreliable.")
	}
	r := s.run(engine.DecodeMode(f), seq)
	s.warn(r.Warnings)
	if r.Err != nil {
		s.fail(r.Err)
		return nil
	}
	fmt.Fprintf(s.out, "%s: %s\n", decodeLabels[f], r.Output)
	return nil
}

func (s *Shell) analyze() error {
	seq, err := s.p.ask("Type in the DNA sequence you want to analyze: ")
	if err != nil {
		return err
	}
	r := s.run(engine.Analyze, seq)
	fmt.Fprintf(s.out, "Length: %d nt, GC content: %.1f%%\n", r.Stats.Length, r.Stats.GCPercent)
	if len(r.Issues) == 0 {
		fmt.Fprintln(s.out, "\nGood news! This sequence looks practical from a biological perspective.")
		return nil
	}
	fmt.Fprintln(s.out, "\nHeads up! Potential issues with this sequence:")
	for _, is := range r.Issues {
		fmt.Fprintf(s.out, "- %s\n", is.Message)
	}
	return nil
}

func (s *Shell) run(m engine.Mode, input string) engine.Result {
	s.n++
	return s.eng.Run(m, engine.Record{ID: fmt.Sprintf("shell_%d", s.n), Index: s.n - 1, Input: input})
}

func (s *Shell) warn(ws []codec.Warning) {
	if s.quiet {
		return
	}
	for _, w := range ws {
		fmt.Fprintf(s.out, "Warning: %s\n", w)
	}
}

func (s *Shell) fail(err error) { fmt.Fprintf(s.out, "Error: %v\n", err) }
