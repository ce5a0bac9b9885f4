package cubemap

import (
	"math"
	"sync"
)

// Progress statuses.
const (
	StatusProgress = "progress"
	StatusComplete = "complete"
)

// ProgressEvent reports conversion progress.
type ProgressEvent struct {
	// Status is StatusProgress or StatusComplete.
	Status string

	// Progress is the completed share of rows in percent, 0 to 100.
	Progress int
}

// ProgressFunc receives progress events. Calls are serialized and, within
// one conversion, Progress never decreases. The callback runs on a worker
// goroutine and should return quickly.
type ProgressFunc func(ProgressEvent)

// progressTracker counts completed rows across workers. A nil tracker is
// valid and reports nothing.
type progressTracker struct {
	mu    sync.Mutex
	fn    ProgressFunc
	total int
	every int
	done  int
}

func newProgressTracker(fn ProgressFunc, total, every int) *progressTracker {
	if fn == nil {
		return nil
	}
	return &progressTracker{fn: fn, total: total, every: max(every, 1)}
}

// rowDone records one completed row and emits an event every t.every rows.
func (t *progressTracker) rowDone() {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.done++
	if t.done%t.every == 0 {
		pct := int(math.Round(float64(t.done) / float64(t.total) * 100))
		t.fn(ProgressEvent{Status: StatusProgress, Progress: pct})
	}
}

// complete emits the final event.
func (t *progressTracker) complete() {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.fn(ProgressEvent{Status: StatusComplete, Progress: 100})
}
