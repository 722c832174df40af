package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"gtp/internal/domain"
)

func TestLoadExpected(t *testing.T) {
	t.Run("reads golden file bytes exactly", func(t *testing.T) {
		dir := t.TempDir()
		golden := filepath.Join(dir, "hello.lox.golden")
		if err := os.WriteFile(golden, []byte("Hello World!\n"), 0644); err != nil {
			t.Fatalf("failed to write golden: %v", err)
		}

		got, err := LoadExpected(domain.Case{GoldenPath: golden})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Hello World!\n" {
			t.Errorf("expected %q, got %q", "Hello World!\n", got)
		}
	})

	t.Run("inline literal when no golden file", func(t *testing.T) {
		got, err := LoadExpected(domain.Case{Expected: "42\n"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "42\n" {
			t.Errorf("expected %q, got %q", "42\n", got)
		}
	})

	t.Run("missing golden file is an error", func(t *testing.T) {
		_, err := LoadExpected(domain.Case{GoldenPath: "/non/existent.golden"})
		if err == nil {
			t.Error("expected error for missing golden file")
		}
	})
}
