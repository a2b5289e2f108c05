package password

import (
	"sync"
	"time"

	"wathiq/internal/models"
)

// Debouncer schedules password evaluation after a quiet period so that
// rapid successive inputs are not all evaluated. Each Submit supersedes any
// pending one; only the result for the latest submitted password is ever
// committed.
type Debouncer struct {
	mu        sync.Mutex
	evaluator *Evaluator
	delay     time.Duration
	gen       uint64
	timer     *time.Timer
}

// NewDebouncer creates a debouncer over an evaluator. A zero delay defaults
// to 300ms.
func NewDebouncer(evaluator *Evaluator, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}
	return &Debouncer{
		evaluator: evaluator,
		delay:     delay,
	}
}

// Submit schedules evaluation of a password. If another Submit arrives
// before the quiet period elapses, the pending evaluation is cancelled.
// commit runs only when this submission is still the latest at completion.
func (d *Debouncer) Submit(pw string, commit func(*models.PasswordAnalysisResult, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		result, err := d.evaluator.Evaluate(pw)

		d.mu.Lock()
		stale := gen != d.gen
		d.mu.Unlock()
		if stale {
			return
		}
		commit(result, err)
	})
}

// Cancel discards any pending evaluation
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
