// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"dnacode-core/codec"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WarnRecord prints every codec warning of one record, prefixed by its ID.
func WarnRecord(dst io.Writer, quiet bool, id string, ws []codec.Warning) {
	for _, w := range ws {
		Warnf(dst, quiet, "%s: %s", id, w)
	}
}
