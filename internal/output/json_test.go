// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"dnacode/internal/engine"
	"dnacode/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	eng := engine.New(engine.DefaultConfig())
	buf := &bytes.Buffer{}
	list := []engine.Result{
		eng.Run(engine.DecodeHex, engine.Record{ID: "s1", Input: "atcc"}),
		eng.Run(engine.Analyze, engine.Record{ID: "s2", Input: "AAAAAAAAAA"}),
		eng.Run(engine.EncodeHex, engine.Record{ID: "s3", Input: "zz"}),
	}
	if err := WriteJSON(buf, list); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.ResultV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 3 {
		t.Fatalf("json round-trip failed: %v %v", err, got)
	}
	if got[0].Mode != "decode-hex" || got[0].Output != "0x1a" || got[0].Bits != "00011010" || got[0].StrandCID == "" {
		t.Fatalf("unexpected decode record %+v", got[0])
	}
	if got[0].Practical != nil {
		t.Fatalf("practical is analyze-only")
	}
	if got[1].Practical == nil || *got[1].Practical || len(got[1].Issues) == 0 || got[1].Issues[0].Kind != "homopolymer" {
		t.Fatalf("unexpected analyze record %+v", got[1])
	}
	if got[2].Error == "" || got[2].Output != "" {
		t.Fatalf("unexpected failed record %+v", got[2])
	}
}

func TestToAPIResultWarnings(t *testing.T) {
	r := engine.New(engine.DefaultConfig()).Run(engine.DecodeBinary, engine.Record{ID: "x", Input: "TXG"})
	v := ToAPIResult(r)
	if len(v.Warnings) != 2 || v.Warnings[0].Code != "invalid_symbol" || v.Warnings[1].Code != "maybe_padded" {
		t.Fatalf("unexpected warnings %+v", v.Warnings)
	}
	if v.Warnings[0].Message == "" {
		t.Fatalf("warnings need a message")
	}
}

func TestGCPercentRounded(t *testing.T) {
	r := engine.New(engine.DefaultConfig()).Run(engine.Analyze, engine.Record{Input: "GAAAATTTTTAT"})
	if v := ToAPIResult(r); v.GCPercent != 8.3 {
		t.Fatalf("gc_percent = %v, want 8.3", v.GCPercent)
	}
}
