// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one conversion or analysis.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	ID         string  `json:"id"`
	SourceFile string  `json:"source_file,omitempty"`
	Mode       string  `json:"mode"` // "encode-text" | "decode-hex" | "analyze" | ...
	Input      string  `json:"input"`
	Output     string  `json:"output,omitempty"`
	Bits       string  `json:"bits,omitempty"`
	StrandCID  string  `json:"strand_cid,omitempty"`
	Length     int     `json:"length"`
	GCPercent  float64 `json:"gc_percent"`

	Warnings []WarningV1 `json:"warnings,omitempty"`
	Issues   []IssueV1   `json:"issues,omitempty"`
	// Practical is set for "analyze" only.
	Practical *bool  `json:"practical,omitempty"`
	Error     string `json:"error,omitempty"`
}

// WarningV1 is an advisory attached to a successful (or failed) result.
type WarningV1 struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IssueV1 is one practicality finding, in report order.
type IssueV1 struct {
	Kind      string  `json:"kind"` // "homopolymer" | "low_gc" | "high_gc" | "palindrome"
	Motif     string  `json:"motif,omitempty"`
	GCPercent float64 `json:"gc_percent,omitempty"`
	Message   string  `json:"message"`
}
