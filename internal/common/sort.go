// internal/common/sort.go
package common

import (
	"sort"

	"dnacode/internal/engine"
)

// LessResult defines a stable order for results (for --sort): source file,
// then position in that source, then ID, then mode.
func LessResult(a, b engine.Result) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.Index != b.Index {
		return a.Index < b.Index
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Mode < b.Mode
}

func SortResults(rs []engine.Result) {
	sort.SliceStable(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
