// Package bulknormalize fans thermal-image normalization out over a bounded
// worker pool: it curates (input, output) file pairs, processes each file
// independently, tolerates per-file failures, and reports throughput while
// the batch runs.
package bulknormalize

import "time"

// FileTask is one unit of batch work: a source image, the path its normalized
// counterpart will be written to, and its position in the curated list.
type FileTask struct {
	InputPath  string
	OutputPath string
	Index      int
}

// BatchSummary is the terminal state of a batch. Succeeded < Total is a
// normal outcome, not an error.
type BatchSummary struct {
	Total     int
	Succeeded int

	// Wall-clock time each task took, in completion order.
	Durations []time.Duration
}
