package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiles_DisabledIsNoop(t *testing.T) {
	var buf bytes.Buffer
	f := NewFiles(&buf, 3, false)
	if f != nil {
		t.Fatalf("disabled bar should be nil")
	}
	// nil receiver must be safe
	f.Done("a.fa")
	f.Finish()
	if f.Count() != 0 || buf.Len() != 0 {
		t.Fatalf("nil bar produced output or counts")
	}
	if NewFiles(&buf, 0, true) != nil {
		t.Fatalf("zero total should disable the bar")
	}
}

func TestFiles_CountsAndFinishes(t *testing.T) {
	var buf bytes.Buffer
	f := NewFiles(&buf, 2, true)
	if f == nil {
		t.Fatal("expected bar")
	}
	f.Done("/tmp/a.fa")
	f.Done("/tmp/b.fa.gz")
	if f.Count() != 2 {
		t.Fatalf("count=%d", f.Count())
	}
	f.Finish()
	if !strings.Contains(buf.String(), "files ") {
		t.Fatalf("bar output missing prefix: %q", buf.String())
	}
}
