package service

import (
	"context"
	"errors"
	"sync"
)

// FetchError accumulates errors produced by concurrent graph fetches.
type FetchError struct {
	Errors []error
}

func (e *FetchError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *FetchError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *FetchError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// runWorkers fans total jobs out over a bounded worker pool and joins them.
// Job order is irrelevant; each job owns its own result slot, so workers
// never contend on shared output. Context errors take priority over
// accumulated job errors.
func runWorkers(ctx context.Context, workers, total int, jobFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	if workers <= 0 {
		workers = defaultFetchWorkers
	}

	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := jobFn(idx); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	var fetchErr FetchError
	for err := range errCh {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		fetchErr.append(err)
	}
	return fetchErr.asError()
}
