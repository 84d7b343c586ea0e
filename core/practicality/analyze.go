// core/practicality/analyze.go
package practicality

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"dnacode-core/nucleotide"
)

// IssueKind classifies a practicality finding.
type IssueKind string

const (
	IssueHomopolymer IssueKind = "homopolymer"
	IssueLowGC       IssueKind = "low_gc"
	IssueHighGC      IssueKind = "high_gc"
	IssuePalindrome  IssueKind = "palindrome"
)

// Issue is one finding. Motif is the offending run or palindrome; GCPercent is
// set for the GC kinds.
type Issue struct {
	Kind      IssueKind
	Motif     string
	GCPercent float64
	Message   string
}

func (i Issue) String() string { return i.Message }

// Thresholds tunes the checks. A run length or window of 0 disables that check.
type Thresholds struct {
	HomopolymerRun   int     // repeats that make a run
	GCLow            float64 // percent; below is flagged
	GCHigh           float64 // percent; above is flagged
	PalindromeWindow int     // window length for the reverse-complement scan
}

var DefaultThresholds = Thresholds{
	HomopolymerRun:   4,
	GCLow:            20,
	GCHigh:           80,
	PalindromeWindow: 6,
}

// Analyze runs the homopolymer, GC content and palindrome checks, in that
// order, with DefaultThresholds. An empty result means the sequence looks practical.
func Analyze(seq string) []Issue { return AnalyzeWith(seq, DefaultThresholds) }

// AnalyzeWith is Analyze with explicit thresholds.
func AnalyzeWith(seq string, th Thresholds) []Issue {
	var issues []Issue
	issues = append(issues, homopolymers(seq, th.HomopolymerRun)...)
	if is, ok := gcIssue(seq, th); ok {
		issues = append(issues, is)
	}
	if is, ok := firstPalindrome(seq, th.PalindromeWindow); ok {
		issues = append(issues, is)
	}
	return issues
}

func homopolymers(seq string, run int) []Issue {
	if run <= 0 {
		return nil
	}
	var out []Issue
	for _, base := range nucleotide.Order {
		motif := strings.Repeat(string(base), run)
		if strings.Contains(seq, motif) {
			out = append(out, Issue{
				Kind:    IssueHomopolymer,
				Motif:   motif,
				Message: fmt.Sprintf("Contains %s which may cause replication issues", motif),
			})
		}
	}
	return out
}

// GCPercent returns 100*(G+C)/len(seq), counting symbols; 0 for an empty sequence.
func GCPercent(seq string) float64 {
	n := utf8.RuneCountInString(seq)
	if n == 0 {
		return 0
	}
	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	return 100 * float64(gc) / float64(n)
}

func gcIssue(seq string, th Thresholds) (Issue, bool) {
	pct := GCPercent(seq)
	switch {
	case pct < th.GCLow:
		return Issue{
			Kind:      IssueLowGC,
			GCPercent: pct,
			Message:   fmt.Sprintf("Low GC content (%.1f%%) may reduce stability", pct),
		}, true
	case pct > th.GCHigh:
		return Issue{
			Kind:      IssueHighGC,
			GCPercent: pct,
			Message:   fmt.Sprintf("High GC content (%.1f%%) may be difficult to replicate", pct),
		}, true
	}
	return Issue{}, false
}

// firstPalindrome reports the leftmost window equal to its own reverse complement.
func firstPalindrome(seq string, window int) (Issue, bool) {
	if window <= 0 {
		return Issue{}, false
	}
	r := []rune(seq)
	for i := 0; i+window <= len(r); i++ {
		segment := string(r[i : i+window])
		if segment == nucleotide.RevComp(segment) {
			return Issue{
				Kind:    IssuePalindrome,
				Motif:   segment,
				Message: fmt.Sprintf("Contains palindromic sequence %s which may form secondary structures", segment),
			}, true
		}
	}
	return Issue{}, false
}

// Stats summarizes a sequence for reporting alongside its issues.
type Stats struct {
	Length    int
	GCPercent float64
}

func Summarize(seq string) Stats {
	return Stats{Length: utf8.RuneCountInString(seq), GCPercent: GCPercent(seq)}
}
