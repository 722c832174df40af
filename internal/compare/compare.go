package compare

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Exact reports whether actual is character-for-character identical to
// expected, trailing newlines included. No trimming, no normalization.
func Exact(expected, actual string) bool {
	return expected == actual
}

// UnifiedDiff renders an expected-vs-actual unified diff for a mismatch.
// Falls back to printing both strings whole if the diff cannot be built.
func UnifiedDiff(expected, actual string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil || text == "" {
		return fmt.Sprintf("--- expected\n%q\n+++ actual\n%q\n", expected, actual)
	}
	return text
}
