package domain

// FailureKind classifies why a case did not pass. Environment kinds mean
// the test setup is broken; mismatch kinds mean the program under test
// produced the wrong output.
type FailureKind string

const (
	// KindNone means the case passed.
	KindNone FailureKind = ""
	// KindOutputMismatch means captured stdout differed from the golden output.
	KindOutputMismatch FailureKind = "output-mismatch"
	// KindLaunchFailure means the executable could not be spawned.
	KindLaunchFailure FailureKind = "launch-failure"
	// KindInputMissing means the input artifact path did not resolve.
	KindInputMissing FailureKind = "input-missing"
	// KindGoldenMissing means the golden file could not be read.
	KindGoldenMissing FailureKind = "golden-missing"
	// KindTimeout means the child was killed after the bounded wait expired.
	KindTimeout FailureKind = "timeout"
	// KindExitStatus means the child exited nonzero and exit checking is on.
	KindExitStatus FailureKind = "exit-status"
)

// EnvError reports whether the kind indicates a broken test environment
// rather than wrong collaborator behavior.
func (k FailureKind) EnvError() bool {
	switch k {
	case KindLaunchFailure, KindInputMissing, KindGoldenMissing, KindTimeout:
		return true
	}
	return false
}

// Describe returns a short human-readable label for the kind.
func (k FailureKind) Describe() string {
	switch k {
	case KindNone:
		return "passed"
	case KindOutputMismatch:
		return "output mismatch"
	case KindLaunchFailure:
		return "launch failure"
	case KindInputMissing:
		return "input artifact missing"
	case KindGoldenMissing:
		return "golden file missing"
	case KindTimeout:
		return "timed out"
	case KindExitStatus:
		return "nonzero exit status"
	}
	return string(k)
}

// CaseFailure is the persisted record of one failed case
type CaseFailure struct {
	CaseName  string      `json:"case_name"`
	InputPath string      `json:"input_path"`
	Kind      FailureKind `json:"kind"`
	Message   string      `json:"message,omitempty"`
	Expected  string      `json:"expected,omitempty"`
	Actual    string      `json:"actual,omitempty"`
	Diff      string      `json:"diff,omitempty"`
	Stderr    string      `json:"stderr,omitempty"`
	ExitCode  int         `json:"exit_code"`
	Resolved  bool        `json:"resolved,omitempty"` // Track if failure is marked as resolved in the viewer
}
