// Package runner fans independent render tasks across a bounded set of
// worker lanes and joins them before returning.
package runner

import "sync"

// Task renders one unit of work. Tasks must not share mutable state.
type Task func()

// Execute runs all tasks across at most lanes workers and blocks until
// every task has finished. A panic raised by a task is re-raised on the
// calling goroutine once all lanes have stopped, so a failing task never
// leaves workers behind.
func Execute(lanes int, tasks []Task) {
	if len(tasks) == 0 {
		return
	}
	if lanes <= 0 || lanes > len(tasks) {
		lanes = len(tasks)
	}

	jobs := make(chan Task)
	panics := make(chan interface{}, len(tasks))
	var wg sync.WaitGroup
	wg.Add(lanes)
	for i := 0; i < lanes; i++ {
		go func() {
			defer wg.Done()
			for t := range jobs {
				run(t, panics)
			}
		}()
	}

	for _, t := range tasks {
		jobs <- t
	}
	close(jobs)
	wg.Wait()

	select {
	case r := <-panics:
		panic(r)
	default:
	}
}

// run executes a single task, capturing its panic value.
func run(t Task, panics chan<- interface{}) {
	defer func() {
		if r := recover(); r != nil {
			panics <- r
		}
	}()
	t()
}
