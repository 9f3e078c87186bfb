package bulknormalize

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"cloud.google.com/go/storage"
	"github.com/coldcam/thermnorm"
	"github.com/montanaflynn/stats"
)

// DefaultConcurrency leaves one CPU free for the coordinator and the OS.
func DefaultConcurrency() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}

	return 1
}

type outcome struct {
	ok      bool
	elapsed time.Duration
}

// RunBatch processes every task on a worker pool of the given size (<= 0
// selects DefaultConcurrency) and aggregates the per-task outcomes. Failed
// tasks are logged and counted; they never abort the batch.
func RunBatch(tasks []FileTask, depth thermnorm.BitDepth, concurrency int, client *storage.Client) BatchSummary {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency()
	}

	progress := NewProgress(len(tasks))

	summary := BatchSummary{
		Total:     len(tasks),
		Durations: make([]time.Duration, 0, len(tasks)),
	}

	results := make(chan outcome, concurrency)
	doneListening := make(chan struct{})
	go func() {
		defer func() { doneListening <- struct{}{} }()
		// Serialize aggregation so workers never touch the summary directly.
		for res := range results {
			if res.ok {
				summary.Succeeded++
			}
			summary.Durations = append(summary.Durations, res.elapsed)
		}
	}()

	// Will block after `concurrency` simultaneous goroutines are running
	sem := make(chan struct{}, concurrency)

	for _, task := range tasks {
		sem <- struct{}{}

		go func(task FileTask) {
			// Be sure to permit unblocking once we finish
			defer func() { <-sem }()

			start := time.Now()
			err := ProcessOneFile(task, depth, client, progress)
			if err != nil {
				log.Println(err.Error(), "Skipping file...")
			}

			results <- outcome{ok: err == nil, elapsed: time.Since(start)}
		}(task)
	}

	// Make sure we finish all the workers before we exit, otherwise we'll
	// lose the last `concurrency` outcomes.
	for i := 0; i < cap(sem); i++ {
		sem <- struct{}{}
	}

	// Close the results channel and make sure we are done listening
	close(results)
	<-doneListening

	return summary
}

// DurationStats reports the mean and median per-file conversion time in
// seconds.
func (s BatchSummary) DurationStats() (mean, median float64, err error) {
	secs := make([]float64, 0, len(s.Durations))
	for _, d := range s.Durations {
		secs = append(secs, d.Seconds())
	}

	data := stats.LoadRawData(secs)
	if data.Len() < 1 {
		return 0, 0, fmt.Errorf("no task durations were recorded")
	}

	if mean, err = data.Mean(); err != nil {
		return 0, 0, err
	}
	if median, err = data.Median(); err != nil {
		return 0, 0, err
	}

	return mean, median, nil
}
