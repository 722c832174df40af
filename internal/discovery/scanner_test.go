package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dirs := []string{
		"basic",
		"strings",
		".gtp",
		"vendor",
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	files := []string{
		"basic/hello.lox",
		"basic/hello.lox.golden",
		"strings/concat.lox",
		"strings/concat.lox.golden",
		"strings/notes.txt",
		".gtp/golden-results.json",
		"vendor/ignored.lox.golden",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.WriteFile(fullPath, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner(NewPairer(".golden"), []string{"vendor"})

	t.Run("pairs golden files with inputs", func(t *testing.T) {
		cases, err := scanner.Scan(tmpDir, "/bin/lox")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cases) != 2 {
			t.Fatalf("expected 2 cases, got %d", len(cases))
		}

		// Sorted by name
		if cases[0].Name != "basic/hello.lox" {
			t.Errorf("expected first case basic/hello.lox, got %s", cases[0].Name)
		}
		if cases[0].InputPath != filepath.Join(tmpDir, "basic", "hello.lox") {
			t.Errorf("unexpected input path %s", cases[0].InputPath)
		}
		if cases[0].GoldenPath != filepath.Join(tmpDir, "basic", "hello.lox.golden") {
			t.Errorf("unexpected golden path %s", cases[0].GoldenPath)
		}
		for _, c := range cases {
			if c.Binary != "/bin/lox" {
				t.Errorf("expected binary attached to case %s", c.Name)
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path", "/bin/lox")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "afile.txt")
		os.WriteFile(testFile, []byte("x"), 0644)
		_, err := scanner.Scan(testFile, "/bin/lox")
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}

func TestPairer(t *testing.T) {
	p := NewPairer(".golden")

	if !p.IsGolden("hello.lox.golden") {
		t.Error("expected hello.lox.golden to be a golden file")
	}
	if p.IsGolden("hello.lox") {
		t.Error("expected hello.lox not to be a golden file")
	}
	if got := p.InputFor("suite/hello.lox.golden"); got != "suite/hello.lox" {
		t.Errorf("InputFor = %s", got)
	}
	if got := p.GoldenFor("suite/hello.lox"); got != "suite/hello.lox.golden" {
		t.Errorf("GoldenFor = %s", got)
	}
	if got := p.CaseName("/suite", "/suite/basic/hello.lox"); got != "basic/hello.lox" {
		t.Errorf("CaseName = %s", got)
	}
}
