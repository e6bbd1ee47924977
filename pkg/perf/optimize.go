// Package perf provides performance budgets, regression checks and a
// bounded worker pool for the dashboard's rendering paths.
package perf

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNilTask is the error reported for a task without a Run function.
var ErrNilTask = errors.New("perf: nil task")

// Task is one job for Batch.
type Task[T any] struct {
	// ID names the job in its result.
	ID string

	// Run produces the job's value.
	Run func() (T, error)
}

// Result is the outcome of one Task.
type Result[T any] struct {
	ID    string
	Value T
	Err   error
}

// Batch runs tasks on up to maxWorkers goroutines and returns their results
// in input order. A task that panics yields an error result instead of
// crashing the batch.
//
// If maxWorkers <= 0, it defaults to 1 (serial execution).
func Batch[T any](tasks []Task[T], maxWorkers int) []Result[T] {
	if len(tasks) == 0 {
		return []Result[T]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[T], len(tasks))

	if maxWorkers == 1 {
		for i, t := range tasks {
			results[i] = pfSafeRun(t)
		}
		return results
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for i, t := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = pfSafeRun(t)
		}()
	}

	wg.Wait()
	return results
}

// pfSafeRun calls t.Run, turning a panic into an error.
func pfSafeRun[T any](t Task[T]) (r Result[T]) {
	r.ID = t.ID
	defer func() {
		if p := recover(); p != nil {
			r.Err = fmt.Errorf("perf: task %s panicked: %v", t.ID, p)
		}
	}()

	if t.Run == nil {
		r.Err = ErrNilTask
		return r
	}
	r.Value, r.Err = t.Run()
	return r
}
