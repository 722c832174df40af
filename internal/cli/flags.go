package cli

import (
	"time"

	"gtp/internal/config"
)

// Flags holds command-line flags
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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:      f.Workers,
		Binary:       f.Binary,
		SuitePath:    f.SuitePath,
		NameFilter:   f.NameFilter,
		Timeout:      f.Timeout,
		FailFast:     f.FailFast,
		OnlyFailed:   f.OnlyFailed,
		CheckExit:    f.CheckExit,
		ShowFailures: f.ShowFailures,
	}
}
