package execution

import (
	"context"
	"sync"
	"time"

	"gtp/internal/config"
	"gtp/internal/domain"
	"gtp/internal/ui"
)

// WorkerPool manages a pool of workers for parallel case execution. Cases
// are independent: each invocation owns its own child process and capture
// buffers, so nothing is shared between workers beyond the queue.
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute executes cases in parallel using the worker pool (no fail-fast).
func (wp *WorkerPool) Execute(cases []domain.Case) ([]domain.CaseResult, time.Duration, error) {
	return wp.ExecuteWithOptions(cases, false)
}

// ExecuteWithOptions executes cases with optional fail-fast (stop on first failure).
func (wp *WorkerPool) ExecuteWithOptions(cases []domain.Case, failFast bool) ([]domain.CaseResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(cases)
	}
	return wp.executeFailFast(cases)
}

func (wp *WorkerPool) executeAll(cases []domain.Case) ([]domain.CaseResult, time.Duration, error) {
	caseQueue := make(chan domain.Case, len(cases))
	results := make(chan domain.CaseResult, len(cases))
	for _, c := range cases {
		caseQueue <- c
	}
	close(caseQueue)

	var mu sync.Mutex
	var passed, failed int
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range caseQueue {
				result := wp.runner.Run(c)
				results <- result
				mu.Lock()
				if result.Passed() {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(passed, failed)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CaseResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

func (wp *WorkerPool) executeFailFast(cases []domain.Case) ([]domain.CaseResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	caseQueue := make(chan domain.Case, 1)
	results := make(chan domain.CaseResult, len(cases))

	go func() {
		defer close(caseQueue)
		for _, c := range cases {
			select {
			case <-ctx.Done():
				return
			case caseQueue <- c:
			}
		}
	}()

	var mu sync.Mutex
	var passed, failed int
	var seenFailure bool
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range caseQueue {
				result := wp.runner.Run(c)
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- result
				mu.Lock()
				if result.Passed() {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(passed, failed)
				}
				if !result.Passed() {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CaseResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
