/*
recompute.go - Bulk re-derivation of stored accounting

PURPOSE:
  The "recalculate all records" operation: re-derives every
  DailyAccounting from its raw shift inputs. Because each record is a pure
  function of its own shift and the profile, the map is embarrassingly
  parallel; this runs it with a bounded worker pool.

GUARANTEES:
  - Results come back index-aligned with the input, regardless of which
    worker computed them.
  - One bad record does not abort the batch; its error is carried in its
    slot so the caller can report it per record, as the original bulk
    recompute did.
  - Idempotent: running twice over the same inputs yields identical output.

  Snapshot consistency (no record mutated mid-batch) is the record
  store's responsibility, not the engine's.

SEE ALSO:
  - accountant.go: The per-record computation
*/
package engine

import (
	"context"
	"sync"
)

// DefaultRecomputeWorkers is the pool size used when the caller passes a
// non-positive worker count.
const DefaultRecomputeWorkers = 8

// RecomputeResult is the outcome for one input slot.
type RecomputeResult struct {
	Index      int
	Accounting DailyAccounting
	Err        error
}

// RecomputeAll re-derives the accounting of every shift concurrently.
// The returned slice is index-aligned with shifts. The context cancels
// scheduling of remaining work; already-started records still finish.
func (a *Accountant) RecomputeAll(ctx context.Context, shifts []Shift, profile *Profile, workers int) []RecomputeResult {
	results := make([]RecomputeResult, len(shifts))
	if len(shifts) == 0 {
		return results
	}
	if workers <= 0 {
		workers = DefaultRecomputeWorkers
	}
	if workers > len(shifts) {
		workers = len(shifts)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				acc, err := a.Account(shifts[i], profile)
				results[i] = RecomputeResult{Index: i, Accounting: acc, Err: err}
			}
		}()
	}

	for i := range shifts {
		select {
		case <-ctx.Done():
			// Mark unscheduled slots with the cancellation cause.
			for j := i; j < len(shifts); j++ {
				results[j] = RecomputeResult{Index: j, Err: ctx.Err()}
			}
			close(indices)
			wg.Wait()
			return results
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()
	return results
}
