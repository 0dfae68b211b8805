package bench

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// RunAll measures every task at every configured size, fanning the tasks out
// over a bounded pool of worker goroutines. Each worker claims the next
// unclaimed task, runs it over all sizes, and moves on. A panicking task is
// reported as an error without taking the other workers down. RunAll closes
// the Progress broadcast before returning.
func (r *Runner) RunAll(tasks []Task, rec Recorder) error {
	defer r.broadcaster().Close()
	if len(tasks) == 0 {
		return nil
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}
	tracer().Infof("running %d tasks on %d workers", len(tasks), workers)

	var (
		next atomic.Int64
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(tasks) {
					return
				}
				if err := r.runTask(tasks[i], rec); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (r *Runner) runTask(task Task, rec Recorder) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("bench: task %s panicked: %v", task.Name, p)
		}
	}()
	for _, size := range r.sizes() {
		if err := r.RunSet(task, size, rec); err != nil {
			return err
		}
	}
	return nil
}
