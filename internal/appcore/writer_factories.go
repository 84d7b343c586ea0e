package appcore

import (
	"io"

	"dnacode/internal/engine"
	"dnacode/internal/output"
	"dnacode/internal/writers"
)

// ResultWriterFactory starts the registered writer for Format.
type ResultWriterFactory struct {
	Format string
	Sort   bool
	Header bool
	Pretty bool
}

func NewResultWriterFactory(format string, sort, header, pretty bool) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Sort: sort, Header: header, Pretty: pretty}
}

// EchoWarnings reports whether per-record warnings should go to stderr.
// JSON/JSONL carry them in the payload; TSV only carries their codes.
func (w ResultWriterFactory) EchoWarnings() bool {
	return w.Format == output.FormatText || w.Format == output.FormatFASTA
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Sort, w.Header, w.Pretty, bufSize)
}
