package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"dnacode-core/practicality"
)

func session(t *testing.T, input string, cfg Config) string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(input), &out, cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n---\n%s", w, out)
		}
	}
}

func TestEncodeText(t *testing.T) {
	out := session(t, "1\n3\nHi\n4\n", Config{})
	mustContain(t, out,
		"Binary representation: 0100100001101001",
		"DNA sequence: TACATCCT",
		"Strand ID: bafkrei",
		msgGoodbye,
	)
}

func TestEncodeBinaryOddWarns(t *testing.T) {
	out := session(t, "1\n1\n011\n4\n", Config{})
	mustContain(t, out, "Warning: odd number of bits", "DNA sequence: TC")
	quiet := session(t, "1\n1\n011\n4\n", Config{Quiet: true})
	if strings.Contains(quiet, "Warning:") {
		t.Fatalf("quiet session printed warnings:\n%s", quiet)
	}
}

func TestEncodeHexError(t *testing.T) {
	out := session(t, "1\n2\n0xZZ\n4\n", Config{})
	mustContain(t, out, "Error: ")
	if strings.Contains(out, "DNA sequence:") {
		t.Fatalf("failed encode should not print a sequence:\n%s", out)
	}
}

func TestDecodeFormats(t *testing.T) {
	out := session(t, "2\n1\nta\n2\n2\nATCC\n2\n3\nTACATCCT\n4\n", Config{})
	mustContain(t, out, "Binary: 0100", "Hexadecimal: 0x1a", "Decoded text: Hi")
}

func TestDecodeAdvisoryForNonATCG(t *testing.T) {
	out := session(t, "2\n1\nTXA\n4\n", Config{})
	mustContain(t, out,
		"letters other than A, T, C and G",
		`Warning: invalid symbol "X" at 2; replaced with A (00)`,
		"Binary: 010000",
	)
}

func TestAnalyze(t *testing.T) {
	out := session(t, "3\nAAAAGGCGCC\n3\nATCGGATCAG\n4\n", Config{Thresholds: practicality.DefaultThresholds})
	mustContain(t, out,
		"Heads up!",
		"- Contains AAAA which may cause replication issues",
		"- Contains palindromic sequence GGCGCC which may form secondary structures",
		"Good news!",
	)
}

func TestAnalyzeUsesThresholds(t *testing.T) {
	th := practicality.DefaultThresholds
	th.HomopolymerRun = 0
	out := session(t, "3\nATCGGAAAAC\n4\n", Config{Thresholds: th})
	if strings.Contains(out, "replication issues") {
		t.Fatalf("homopolymer check should be disabled:\n%s", out)
	}
}

func TestInvalidChoicesRePrompt(t *testing.T) {
	out := session(t, "9\n1\n7\n2\n5\n4\n", Config{})
	if n := strings.Count(out, msgRetry); n != 3 {
		t.Fatalf("want 3 retries, got %d\n%s", n, out)
	}
	if n := strings.Count(out, "What would you like to do?"); n != 4 {
		t.Fatalf("main menu should be shown 4 times, got %d", n)
	}
}

func TestEOFEndsGracefully(t *testing.T) {
	for _, in := range []string{"", "1\n", "1\n3\n", "2\n1\n", "3\n"} {
		out := session(t, in, Config{})
		if !strings.HasSuffix(out, msgGoodbye+"\n") {
			t.Errorf("input %q: no goodbye\n%s", in, out)
		}
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	if err := Run(ctx, pr, &out, Config{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
