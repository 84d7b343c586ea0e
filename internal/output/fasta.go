package output

import (
	"fmt"
	"io"

	"dnacode/internal/engine"
	"dnacode/internal/strandid"
)

func writeRecord(w io.Writer, r engine.Result) error {
	_, err := fmt.Fprintf(
		w,
		">%s mode=%s len=%d cid=%s\n%s\n",
		r.ID, r.Mode, r.Stats.Length, strandid.CID(r.Strand), r.Strand,
	)
	return err
}

// StreamFASTA streams the strand of every successful result as a FASTA record.
func StreamFASTA(w io.Writer, in <-chan engine.Result) error {
	for r := range in {
		if r.Strand == "" || r.Err != nil {
			continue
		}
		if err := writeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of results as FASTA records to the writer.
func WriteFASTA(w io.Writer, list []engine.Result) error {
	for _, r := range list {
		if r.Strand == "" || r.Err != nil {
			continue
		}
		if err := writeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}
