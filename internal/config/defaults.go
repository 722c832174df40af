package config

import "time"

const (
	// DefaultSuitePath is the default golden suite directory
	DefaultSuitePath = "."
	// DefaultGoldenSuffix is the suffix pairing a golden file with its input artifact
	DefaultGoldenSuffix = ".golden"
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "golden-results.json"
	// DefaultOutputJSONDir is the default directory for run state, relative to the suite
	DefaultOutputJSONDir = ".gtp"
	// DefaultWorkers is the default number of parallel workers
	DefaultWorkers = 4
	// DefaultTimeout is the bounded wait for one collaborator invocation
	DefaultTimeout = 30 * time.Second
)

// DefaultPathsToIgnore are directories skipped when scanning a suite for golden files
var DefaultPathsToIgnore = []string{
	".gtp",
	".git",
	"vendor",
	"node_modules",
	"build",
	"bin",
}
