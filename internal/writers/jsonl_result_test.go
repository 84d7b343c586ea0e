package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"dnacode/internal/engine"
	"dnacode/pkg/api"
)

func TestResultJSONL_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartResultJSONLWriter(&buf, 2)
	feed(in, sampleResults())
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	var n int
	for sc.Scan() {
		n++
		var v api.ResultV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestResultJSONL_WriterErrorDoesNotBlockProducer(t *testing.T) {
	in, done := StartResultWriter(failWriter{}, "jsonl", false, false, false, 1)
	e := engine.New(engine.DefaultConfig())
	// Far more than the pooled buffer so the flush error surfaces mid-stream.
	for i := 0; i < 5000; i++ {
		in <- e.Run(engine.EncodeText, engine.Record{ID: "x", Input: "some longer text payload to fill the buffer"})
	}
	close(in)
	if err := <-done; err == nil {
		t.Fatalf("expected write error")
	}
}
