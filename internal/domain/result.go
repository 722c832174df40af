package domain

import "time"

// Execution captures everything one child process invocation produced.
// Built once after the process is reaped, never mutated.
type Execution struct {
	Stdout   string        // Captured standard output, byte for byte
	Stderr   string        // Captured standard error, kept for diagnostics
	ExitCode int           // Child exit status, -1 if the process never ran
	Duration time.Duration // Wall time from spawn to reap
	Err      error         // Launch or wait error, nil when the child ran to completion
}

// CaseResult is the outcome of running a single golden case
type CaseResult struct {
	Case      Case
	Execution Execution
	Kind      FailureKind // KindNone when the case passed
	Expected  string      // Resolved expected output the comparison used
	Diff      string      // Unified expected-vs-actual diff, set on mismatch
}

// Passed reports whether the captured output matched the golden output.
func (r CaseResult) Passed() bool {
	return r.Kind == KindNone
}

// RunMeta contains metadata about a suite run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	EnvErrors       int     `json:"env_errors"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Binary          string  `json:"binary"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted record of a suite run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}
