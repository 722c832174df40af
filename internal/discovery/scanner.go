package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gtp/internal/domain"
)

// Scanner scans a suite directory for golden cases
type Scanner struct {
	pairer   *Pairer
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(pairer *Pairer, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{pairer: pairer, skipDirs: skipMap}
}

// Scan finds all golden cases under root. A case is a golden file plus the
// input artifact it is named after; binary is attached to every case so the
// executable under test travels with the case, not as shared state.
func (s *Scanner) Scan(root, binary string) ([]domain.Case, error) {
	var cases []domain.Case

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("suite path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("suite path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if s.pairer.IsGolden(path) {
			input := s.pairer.InputFor(path)
			cases = append(cases, domain.Case{
				Name:       s.pairer.CaseName(root, input),
				Binary:     binary,
				InputPath:  input,
				GoldenPath: path,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}
