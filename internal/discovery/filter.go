package discovery

import (
	"path/filepath"
	"strings"

	"gtp/internal/domain"
)

// Filter filters cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters cases by name pattern using wildcard matching.
// Supports patterns like "hello*" or "*string*"; a pattern without
// wildcards is a plain substring match.
func (f *Filter) FilterByName(cases []domain.Case, pattern string) []domain.Case {
	if pattern == "" {
		return cases
	}

	var filtered []domain.Case

	for _, c := range cases {
		name := filepath.Base(c.InputPath)

		// filepath.Match handles * and ? wildcards against the file name
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, c)
			continue
		}

		// Patterns like "*string*" fall back to matching every non-empty
		// part between wildcards as a substring
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allMatch := true
			hasNonEmpty := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmpty = true
				if !strings.Contains(name, part) {
					allMatch = false
					break
				}
			}
			if allMatch && hasNonEmpty {
				filtered = append(filtered, c)
			}
			continue
		}

		if !strings.Contains(pattern, "?") && strings.Contains(c.Name, pattern) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
