package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gtp/internal/domain"
)

// Save writes run results and failures to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.CaseResult, failures []domain.CaseFailure, duration time.Duration, workers int) error {
	passed := 0
	failed := 0
	envErrors := 0
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
			if r.Kind.EnvError() {
				envErrors++
			}
		}
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalCases:      len(results),
			PassedCases:     passed,
			FailedCases:     failed,
			EnvErrors:       envErrors,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Binary:          s.cfg.BinaryPath,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after
// marking failures resolved in the viewer).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
