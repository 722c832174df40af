package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Suite settings
	SuitePath    string
	GoldenSuffix string

	// Executable under test. Always injected here, never hardcoded, so
	// multiple builds of the collaborator can be tested side by side.
	BinaryPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers   int
	Timeout   time.Duration
	CheckExit bool

	// Optional MySQL DSN for recording run history; empty disables it
	HistoryDSN string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags after cobra parsing
type Flags struct {
	Workers      int
	Binary       string
	SuitePath    string
	NameFilter   string
	Timeout      time.Duration
	FailFast     bool
	OnlyFailed   bool
	CheckExit    bool
	ShowFailures bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		SuitePath:      DefaultSuitePath,
		GoldenSuffix:   DefaultGoldenSuffix,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
		Timeout:        DefaultTimeout,
		Flags:          Flags{Workers: DefaultWorkers},
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, .env / environment, and flags,
// in increasing order of precedence.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.LoadEnv()
	cfg.ApplyFlags(flags)
	return cfg
}

// LoadEnv applies GTP_* environment variables, loading a .env file from
// the working directory first if one exists.
func (c *Config) LoadEnv() {
	// .env is optional
	_ = godotenv.Load()

	if v := os.Getenv("GTP_BIN"); v != "" {
		c.BinaryPath = v
	}
	if v := os.Getenv("GTP_SUITE"); v != "" {
		c.SuitePath = v
	}
	if v := os.Getenv("GTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timeout = d
		}
	}
	if v := os.Getenv("GTP_HISTORY_DSN"); v != "" {
		c.HistoryDSN = v
	}
}

// ApplyFlags copies parsed flags into the config, overriding env and defaults.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Binary != "" {
		c.BinaryPath = flags.Binary
	}
	if flags.SuitePath != "" {
		c.SuitePath = flags.SuitePath
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.CheckExit {
		c.CheckExit = true
	}
}

// GetSuitePath returns the suite directory, using the flag if provided
func (c *Config) GetSuitePath() string {
	if c.Flags.SuitePath != "" {
		if filepath.IsAbs(c.Flags.SuitePath) {
			return c.Flags.SuitePath
		}
		if abs, err := filepath.Abs(c.Flags.SuitePath); err == nil {
			return abs
		}
		return c.Flags.SuitePath
	}
	return c.SuitePath
}

// GetOutputPath returns the full path to the results JSON file (under the
// suite so run and failures always read/write the same file regardless of cwd).
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.GetSuitePath(), c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
