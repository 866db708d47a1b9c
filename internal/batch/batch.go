// Package batch applies a function to many inputs with a bounded worker pool.
package batch

import (
	"fmt"
	"runtime"
	"sync"
)

// Options controls parallel processing and error handling.
type Options struct {
	// Parallel enables concurrent processing.
	Parallel bool

	// Workers is the number of goroutines. If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors continues past failed inputs and collects their errors.
	// When false, the first error stops processing and is returned alone.
	SkipErrors bool

	// Progress is called after each input is processed with (done, total).
	Progress func(done, total int)
}

// DefaultOptions returns parallel options that skip errors.
func DefaultOptions() Options {
	return Options{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// Item is one successful result and the index of its input.
type Item[T any] struct {
	Index int
	Value T
}

// Run calls fn for every input and returns the successes in input order.
//
// Each error is wrapped with the 1-based position of its input ("item 3: ...").
// fn must be safe for concurrent use when opts.Parallel is set.
func Run[In, Out any](inputs []In, fn func(In) (Out, error), opts Options) ([]Item[Out], []error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if !opts.Parallel {
		return runSerial(inputs, fn, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	type result struct {
		index int
		value Out
		err   error
	}

	jobs := make(chan int, len(inputs))
	results := make(chan result, len(inputs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				value, err := fn(inputs[index])
				results <- result{index: index, value: value, err: err}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	values := make(map[int]Out, len(inputs))
	failures := make(map[int]error)
	done := 0

	for r := range results {
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(inputs))
		}
		if r.err != nil {
			failures[r.index] = fmt.Errorf("item %d: %w", r.index+1, r.err)
			continue
		}
		values[r.index] = r.value
	}

	items := make([]Item[Out], 0, len(values))
	var errs []error
	for i := 0; i < len(inputs); i++ {
		if err, ok := failures[i]; ok {
			if !opts.SkipErrors {
				// Stop at the earliest failed input
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		items = append(items, Item[Out]{Index: i, Value: values[i]})
	}
	return items, errs
}

// runSerial processes inputs one at a time.
func runSerial[In, Out any](inputs []In, fn func(In) (Out, error), opts Options) ([]Item[Out], []error) {
	items := make([]Item[Out], 0, len(inputs))
	var errs []error

	for i, in := range inputs {
		value, err := fn(in)
		if opts.Progress != nil {
			opts.Progress(i+1, len(inputs))
		}
		if err != nil {
			err := fmt.Errorf("item %d: %w", i+1, err)
			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		items = append(items, Item[Out]{Index: i, Value: value})
	}
	return items, errs
}
