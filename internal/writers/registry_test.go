package writers

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestUnknownResultFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartResultWriter(&b, "nope-format", false, false, false, 1)
	close(in) // no payload; writer should error out immediately on dispatch
	err := <-done
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown result format") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestBuiltinFormatsRegistered(t *testing.T) {
	for _, f := range []string{"text", "json", "jsonl", "fasta"} {
		if _, ok := ResultWriters[f]; !ok {
			t.Errorf("format %q not registered", f)
		}
	}
}

func TestRegisterResult_LastWins(t *testing.T) {
	const f = "test-last-wins"
	defer delete(ResultWriters, f)
	RegisterResult(f, func(w io.Writer, _ interface{}) error { _, err := io.WriteString(w, "one"); return err })
	RegisterResult(f, func(w io.Writer, _ interface{}) error { _, err := io.WriteString(w, "two"); return err })
	var b bytes.Buffer
	if err := WriteResult(f, &b, nil); err != nil {
		t.Fatal(err)
	}
	if b.String() != "two" {
		t.Fatalf("got %q", b.String())
	}
}
