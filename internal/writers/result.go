package writers

import (
	"io"

	"dnacode/internal/common"
	"dnacode/internal/engine"
	"dnacode/internal/output"
	"dnacode/internal/pretty"
)

type resultArgs struct {
	Sort   bool
	Header bool
	Pretty bool
	Opt    pretty.Options
	In     <-chan engine.Result
}

func drainResults(ch <-chan engine.Result) []engine.Result {
	list := make([]engine.Result, 0, 128)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func (a resultArgs) render(r engine.Result) string { return pretty.RenderResultWithOptions(r, a.Opt) }

func init() {
	// JSON array
	RegisterResult(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(resultArgs)
		list := drainResults(args.In)
		if args.Sort {
			common.SortResults(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming
	RegisterResult(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(resultArgs)
		if args.Sort {
			list := drainResults(args.In)
			common.SortResults(list)
			return pumpJSONL(w, func(yield func(engine.Result) bool) {
				for _, r := range list {
					if !yield(r) {
						return
					}
				}
			})
		}
		return pumpJSONL(w, func(yield func(engine.Result) bool) {
			for r := range args.In {
				if !yield(r) {
					return
				}
			}
		})
	})

	// FASTA
	RegisterResult(output.FormatFASTA, func(w io.Writer, payload interface{}) error {
		args := payload.(resultArgs)
		if args.Sort {
			list := drainResults(args.In)
			common.SortResults(list)
			return output.WriteFASTA(w, list)
		}
		return output.StreamFASTA(w, args.In)
	})

	// TSV (+ optional pretty blocks)
	RegisterResult(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(resultArgs)
		if args.Sort {
			list := drainResults(args.In)
			common.SortResults(list)
			return output.WriteTextWithRenderer(w, list, args.Header, args.Pretty, args.render)
		}
		return output.StreamTextWithRenderer(w, args.In, args.Header, args.Pretty, args.render)
	})
}

// StartResultWriter spins up a writer goroutine for engine.Result items.
// (Convenience wrapper using pretty.DefaultOptions)
func StartResultWriter(out io.Writer, format string, sort, header, prettyMode bool, bufSize int) (chan<- engine.Result, <-chan error) {
	return StartResultWriterWithPrettyOptions(out, format, sort, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartResultWriterWithPrettyOptions allows customizing the pretty renderer.
func StartResultWriterWithPrettyOptions(out io.Writer, format string, sort, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := WriteResult(format, out, resultArgs{
			Sort:   sort,
			Header: header,
			Pretty: prettyMode,
			Opt:    popt,
			In:     in,
		})
		if err != nil {
			// Unblock the producer so it can finish closing the channel.
			for range in {
			}
		}
		errCh <- err
	}()

	return in, errCh
}
