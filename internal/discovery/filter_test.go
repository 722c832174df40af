package discovery

import (
	"testing"

	"gtp/internal/domain"
)

func named(names ...string) []domain.Case {
	cases := make([]domain.Case, len(names))
	for i, n := range names {
		cases[i] = domain.Case{Name: n, InputPath: n}
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []domain.Case
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			cases:    named("hello.lox", "string.lox", "while.lox"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			cases:    named("hello.lox", "string.lox", "while.lox"),
			pattern:  "hello*",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			cases:    named("hello.lox", "string.lox", "string_concat.lox"),
			pattern:  "*string*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			cases:    named("hello.lox", "string.lox", "while.lox"),
			pattern:  "while",
			expected: 1,
		},
		{
			name:     "no matches",
			cases:    named("hello.lox", "string.lox"),
			pattern:  "*nonexistent*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			cases:    named("/suite/basic/hello.lox", "/suite/basic/string.lox"),
			pattern:  "hello*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.cases, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}
