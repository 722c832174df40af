package compare

import (
	"strings"
	"testing"
)

func TestExact(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		match    bool
	}{
		{
			name:     "identical including trailing newline",
			expected: "Hello World!\n",
			actual:   "Hello World!\n",
			match:    true,
		},
		{
			name:     "case differs",
			expected: "Hello World!\n",
			actual:   "hello world!\n",
			match:    false,
		},
		{
			name:     "missing trailing newline",
			expected: "Hello World!\n",
			actual:   "Hello World!",
			match:    false,
		},
		{
			name:     "extra trailing newline",
			expected: "Hello World!\n",
			actual:   "Hello World!\n\n",
			match:    false,
		},
		{
			name:     "missing punctuation",
			expected: "Hello World!\n",
			actual:   "Hello World\n",
			match:    false,
		},
		{
			name:     "no line-ending normalization",
			expected: "a\nb\n",
			actual:   "a\r\nb\r\n",
			match:    false,
		},
		{
			name:     "both empty",
			expected: "",
			actual:   "",
			match:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exact(tt.expected, tt.actual); got != tt.match {
				t.Errorf("Exact(%q, %q) = %v, want %v", tt.expected, tt.actual, got, tt.match)
			}
		})
	}
}

func TestUnifiedDiff(t *testing.T) {
	t.Run("contains both sides", func(t *testing.T) {
		diff := UnifiedDiff("Hello World!\n", "Hello World\n")
		if !strings.Contains(diff, "-Hello World!") {
			t.Errorf("diff missing expected line:\n%s", diff)
		}
		if !strings.Contains(diff, "+Hello World") {
			t.Errorf("diff missing actual line:\n%s", diff)
		}
	})

	t.Run("labels expected and actual", func(t *testing.T) {
		diff := UnifiedDiff("a\n", "b\n")
		if !strings.Contains(diff, "expected") || !strings.Contains(diff, "actual") {
			t.Errorf("diff missing file labels:\n%s", diff)
		}
	})

	t.Run("empty actual still renders", func(t *testing.T) {
		diff := UnifiedDiff("Hello World!\n", "")
		if diff == "" {
			t.Error("expected non-empty diff for empty actual output")
		}
	})
}
