// internal/output/fasta_test.go
package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"dnacode/internal/engine"
)

func TestWriteFASTA(t *testing.T) {
	buf := &bytes.Buffer{}
	list := []engine.Result{
		engine.New(engine.DefaultConfig()).Run(engine.EncodeText, engine.Record{ID: "input_1", Input: "Hi"}),
		{ID: "bad", Mode: engine.EncodeHex, Err: errors.New("boom")},
	}
	if err := WriteFASTA(buf, list); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, ">input_1 mode=encode-text len=8 cid=bafkrei") || !strings.Contains(out, "\nTACATCCT\n") {
		t.Fatalf("unexpected FASTA output: %s", out)
	}
	if strings.Contains(out, ">bad") {
		t.Fatalf("failed results must be skipped: %s", out)
	}
}

func TestStreamFASTA(t *testing.T) {
	buf := &bytes.Buffer{}
	ch := make(chan engine.Result, 2)
	ch <- engine.Result{ID: "a", Mode: engine.Analyze, Strand: "ACGT"}
	ch <- engine.Result{ID: "empty", Mode: engine.Analyze}
	close(ch)
	if err := StreamFASTA(buf, ch); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), ">") != 1 {
		t.Fatalf("want one record, got %q", buf.String())
	}
}
