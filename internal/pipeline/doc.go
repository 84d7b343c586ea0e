// Package pipeline fans records (literal inputs and FASTA entries) out to a
// pool of workers running one engine Mode, and calls a visit callback with
// every Result.
//
// The only contract to implement is Runner (Run). This keeps the pipeline
// swappable and testable.
package pipeline
