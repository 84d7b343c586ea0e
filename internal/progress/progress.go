// Package progress reports how many sequence files a batch run has consumed.
package progress

import (
	"io"
	"path/filepath"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// Files is a file-count progress bar. The zero value and a nil *Files are
// valid no-ops so callers need not branch on --progress.
type Files struct {
	bar *pb.ProgressBar
}

// NewFiles starts a bar over total files writing to w. It returns nil when
// disabled or when there is nothing to track.
func NewFiles(w io.Writer, total int, enabled bool) *Files {
	if !enabled || total <= 0 || w == nil {
		return nil
	}
	bar := pb.New(total)
	bar.Output = w
	bar.ShowSpeed = false
	bar.ShowTimeLeft = false
	bar.ShowFinalTime = true
	bar.SetMaxWidth(80)
	bar.Prefix("files ")
	bar.Start()
	return &Files{bar: bar}
}

// Done marks path as fully consumed.
func (f *Files) Done(path string) {
	if f == nil || f.bar == nil {
		return
	}
	f.bar.Postfix(" " + filepath.Base(path))
	f.bar.Increment()
}

// Finish draws the final state and releases the refresh goroutine.
func (f *Files) Finish() {
	if f == nil || f.bar == nil {
		return
	}
	f.bar.Finish()
}

// Count returns the number of files marked done so far.
func (f *Files) Count() int64 {
	if f == nil || f.bar == nil {
		return 0
	}
	return f.bar.Get()
}
