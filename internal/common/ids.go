// internal/common/ids.go
package common

import (
	"strconv"
	"strings"
)

// InputID names the n-th (1-based) positional input.
func InputID(n int) string { return "input_" + strconv.Itoa(n) }

// HeaderID returns the record ID of a FASTA header line: the first
// whitespace-delimited token after '>'. Empty headers fall back to
// "record_<n>" (1-based).
func HeaderID(header string, n int) string {
	h := strings.TrimSpace(strings.TrimPrefix(header, ">"))
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	if h == "" {
		return "record_" + strconv.Itoa(n)
	}
	return h
}
