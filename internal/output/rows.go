// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"dnacode/internal/engine"
)

// cellEscaper keeps every value on one TSV line.
var cellEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

func Cell(s string) string { return cellEscaper.Replace(s) }

// WarningCodesCSV joins warning codes in report order.
func WarningCodesCSV(r engine.Result) string {
	if len(r.Warnings) == 0 {
		return ""
	}
	ss := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		ss[i] = string(w.Code)
	}
	return strings.Join(ss, ",")
}

// IssueList joins issue messages in report order.
func IssueList(r engine.Result) string {
	if len(r.Issues) == 0 {
		return ""
	}
	ss := make([]string, len(r.Issues))
	for i, is := range r.Issues {
		ss[i] = is.Message
	}
	return strings.Join(ss, "; ")
}

func errString(r engine.Result) string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// FormatRowTSV returns the base columns (no trailing newline).
func FormatRowTSV(r engine.Result) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%d\t%.1f\t%s\t%s\t%s",
		Cell(r.SourceFile), Cell(r.ID), r.Mode,
		Cell(r.Input), Cell(r.Output),
		r.Stats.Length, r.Stats.GCPercent,
		WarningCodesCSV(r), Cell(IssueList(r)), Cell(errString(r)),
	)
}
