package bulknormalize

import (
	"log"
	"sync"
	"time"
)

// DefaultReportInterval is the number of tasks between throughput reports.
const DefaultReportInterval = 1000

// Progress emits periodic throughput lines with a time-remaining estimate.
// The last-report timestamp is the only state shared between workers; Mark
// reads and advances it under the mutex.
type Progress struct {
	m        sync.Mutex
	last     time.Time
	total    int
	interval int
}

func NewProgress(total int) *Progress {
	return &Progress{
		last:     time.Now(),
		total:    total,
		interval: DefaultReportInterval,
	}
}

// Mark records that the task at index is starting. Once per reporting
// interval it logs the elapsed time since the previous report and estimates
// the time remaining from it.
func (p *Progress) Mark(index int) {
	if index%p.interval != 0 {
		return
	}

	p.m.Lock()
	defer p.m.Unlock()

	now := time.Now()
	elapsed := now.Sub(p.last)
	remaining := time.Duration(float64(elapsed) * float64(p.total-index) / float64(p.interval))

	log.Printf("%d of %d -- %.2f sec. Time remaining: %s\n", index, p.total, elapsed.Seconds(), remaining)

	p.last = now
}
