package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gtp/internal/domain"
)

// Pairer maps between input artifacts, golden files, and case names
type Pairer struct {
	suffix string
}

// NewPairer creates a Pairer for the given golden-file suffix (e.g. ".golden")
func NewPairer(suffix string) *Pairer {
	return &Pairer{suffix: suffix}
}

// IsGolden reports whether path names a golden file.
func (p *Pairer) IsGolden(path string) bool {
	return strings.HasSuffix(path, p.suffix)
}

// InputFor returns the input artifact path paired with a golden file
// (hello.lox.golden -> hello.lox).
func (p *Pairer) InputFor(goldenPath string) string {
	return strings.TrimSuffix(goldenPath, p.suffix)
}

// GoldenFor returns the golden file path paired with an input artifact.
func (p *Pairer) GoldenFor(inputPath string) string {
	return inputPath + p.suffix
}

// CaseName returns the display name for an input artifact: its path
// relative to the suite root, with forward slashes.
func (p *Pairer) CaseName(suiteRoot, inputPath string) string {
	if rel, err := filepath.Rel(suiteRoot, inputPath); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(inputPath)
}

// LoadExpected resolves the expected output for a case: the golden file
// contents when one is set, the inline literal otherwise. Golden bytes are
// returned exactly as stored, trailing newlines included.
func LoadExpected(c domain.Case) (string, error) {
	if c.GoldenPath == "" {
		return c.Expected, nil
	}
	data, err := os.ReadFile(c.GoldenPath)
	if err != nil {
		return "", fmt.Errorf("read golden file %s: %w", c.GoldenPath, err)
	}
	return string(data), nil
}
