package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	ai "github.com/spetersoncode/vertexlm"
)

// KeyedLimiter hands out one weighted semaphore per resource key, so all
// callers sharing a key share one concurrency budget. The budget is fixed
// by the first caller for a given key; later limits are ignored.
type KeyedLimiter struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

// NewKeyedLimiter creates an empty limiter.
func NewKeyedLimiter() *KeyedLimiter {
	return &KeyedLimiter{sems: make(map[string]*semaphore.Weighted)}
}

func (l *KeyedLimiter) get(key string, limit int) *semaphore.Weighted {
	if limit < 1 {
		limit = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	sem, ok := l.sems[key]
	if !ok {
		sem = semaphore.NewWeighted(int64(limit))
		l.sems[key] = sem
	}
	return sem
}

// Map applies fn to every item concurrently, holding at most limit
// in-flight calls for the given resource key across all Map calls sharing
// the limiter. Results are returned in item order.
//
// Every item is attempted: one item's failure does not cancel its
// siblings, and fn is never retried. If any item fails, Map returns a
// *vertexlm.BatchError carrying each item's error at its position.
func Map[I, O any](ctx context.Context, limiter *KeyedLimiter, key string, limit int, items []I, fn func(context.Context, I) (O, error)) ([]O, error) {
	results := make([]O, len(items))
	errs := make([]error, len(items))
	sem := limiter.get(key, limit)

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item I) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				errs[i] = err
				return
			}
			defer sem.Release(1)
			results[i], errs[i] = fn(ctx, item)
		}(i, item)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, &ai.BatchError{Errs: errs}
		}
	}
	return results, nil
}
