package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_GetSuitePath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				SuitePath: ".",
				Flags:     Flags{},
			},
			expected: ".",
		},
		{
			name: "absolute suite flag",
			config: &Config{
				SuitePath: ".",
				Flags: Flags{
					SuitePath: "/absolute/suite",
				},
			},
			expected: "/absolute/suite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetSuitePath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}

	t.Run("relative suite flag becomes absolute", func(t *testing.T) {
		cfg := &Config{SuitePath: ".", Flags: Flags{SuitePath: "suite"}}
		result := cfg.GetSuitePath()
		if !filepath.IsAbs(result) {
			t.Errorf("expected absolute path, got %s", result)
		}
	})
}

func TestConfig_ApplyFlags(t *testing.T) {
	t.Run("flags override defaults", func(t *testing.T) {
		cfg := New()
		cfg.ApplyFlags(Flags{
			Workers:   8,
			Binary:    "/usr/local/bin/lox",
			Timeout:   5 * time.Second,
			CheckExit: true,
		})

		if cfg.Workers != 8 {
			t.Errorf("expected 8 workers, got %d", cfg.Workers)
		}
		if cfg.BinaryPath != "/usr/local/bin/lox" {
			t.Errorf("expected binary path to be set, got %s", cfg.BinaryPath)
		}
		if cfg.Timeout != 5*time.Second {
			t.Errorf("expected 5s timeout, got %s", cfg.Timeout)
		}
		if !cfg.CheckExit {
			t.Error("expected CheckExit to be set")
		}
	})

	t.Run("zero flags keep defaults", func(t *testing.T) {
		cfg := New()
		cfg.ApplyFlags(Flags{})

		if cfg.Workers != DefaultWorkers {
			t.Errorf("expected %d workers, got %d", DefaultWorkers, cfg.Workers)
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("expected default timeout, got %s", cfg.Timeout)
		}
	})
}

func TestConfig_LoadEnv(t *testing.T) {
	t.Setenv("GTP_BIN", "/opt/lox/bin/cpplox")
	t.Setenv("GTP_TIMEOUT", "2s")
	t.Setenv("GTP_HISTORY_DSN", "user:pass@tcp(127.0.0.1:3306)/gtp")

	cfg := New()
	cfg.LoadEnv()

	if cfg.BinaryPath != "/opt/lox/bin/cpplox" {
		t.Errorf("expected binary from env, got %s", cfg.BinaryPath)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout from env, got %s", cfg.Timeout)
	}
	if cfg.HistoryDSN == "" {
		t.Error("expected history DSN from env")
	}

	t.Run("flags win over env", func(t *testing.T) {
		cfg := Load(Flags{Binary: "/flag/bin"})
		if cfg.BinaryPath != "/flag/bin" {
			t.Errorf("expected flag binary to win, got %s", cfg.BinaryPath)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.SuitePath != DefaultSuitePath {
		t.Errorf("expected SuitePath %s, got %s", DefaultSuitePath, cfg.SuitePath)
	}
	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}
	if cfg.GoldenSuffix != DefaultGoldenSuffix {
		t.Errorf("expected GoldenSuffix %s, got %s", DefaultGoldenSuffix, cfg.GoldenSuffix)
	}
	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}
