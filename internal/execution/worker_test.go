package execution

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"gtp/internal/config"
	"gtp/internal/domain"
)

func TestWorkerPool_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("collaborator scripts require a POSIX shell")
	}

	dir := t.TempDir()
	bin := writeScript(t, dir, "collab", `cat "$1"`)

	var cases []domain.Case
	for i := 0; i < 10; i++ {
		content := fmt.Sprintf("case %d output\n", i)
		input := writeFile(t, dir, fmt.Sprintf("case%d.lox", i), content)
		cases = append(cases, domain.Case{
			Name:      fmt.Sprintf("case%d.lox", i),
			Binary:    bin,
			InputPath: input,
			Expected:  content,
		})
	}

	cfg := config.New()
	cfg.Workers = 4
	cfg.Timeout = 10 * time.Second
	pool := NewWorkerPool(cfg, NewRunner(cfg), NewRoundRobinScheduler())

	t.Run("runs all cases in parallel without leaking output", func(t *testing.T) {
		results, duration, err := pool.Execute(cases)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(cases) {
			t.Fatalf("expected %d results, got %d", len(cases), len(results))
		}
		if duration <= 0 {
			t.Error("expected a positive duration")
		}
		for _, r := range results {
			if !r.Passed() {
				t.Errorf("case %s failed: kind %q, stdout %q", r.Case.Name, r.Kind, r.Execution.Stdout)
			}
			if r.Execution.Stdout != r.Expected {
				t.Errorf("case %s captured foreign output: %q", r.Case.Name, r.Execution.Stdout)
			}
		}
	})

	t.Run("empty case list", func(t *testing.T) {
		results, _, err := pool.Execute(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results != nil {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("one failure does not stop the others", func(t *testing.T) {
		mixed := make([]domain.Case, len(cases))
		copy(mixed, cases)
		mixed[3].Expected = "wrong\n"

		results, _, err := pool.Execute(mixed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(mixed) {
			t.Fatalf("expected %d results, got %d", len(mixed), len(results))
		}
		failed := 0
		for _, r := range results {
			if !r.Passed() {
				failed++
				if r.Kind != domain.KindOutputMismatch {
					t.Errorf("expected output mismatch, got %q", r.Kind)
				}
			}
		}
		if failed != 1 {
			t.Errorf("expected exactly 1 failure, got %d", failed)
		}
	})

	t.Run("fail fast stops after first failure", func(t *testing.T) {
		failing := make([]domain.Case, len(cases))
		copy(failing, cases)
		for i := range failing {
			failing[i].Expected = "wrong\n"
		}

		cfgFF := config.New()
		cfgFF.Workers = 1
		cfgFF.Timeout = 10 * time.Second
		poolFF := NewWorkerPool(cfgFF, NewRunner(cfgFF), NewRoundRobinScheduler())

		results, _, err := poolFF.ExecuteWithOptions(failing, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected at least one result")
		}
		if len(results) == len(failing) {
			t.Error("expected fail-fast to stop before running every case")
		}
	})
}

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	scheduler := NewRoundRobinScheduler()

	cases := make([]domain.Case, 7)
	for i := range cases {
		cases[i] = domain.Case{Name: fmt.Sprintf("c%d", i)}
	}

	t.Run("distributes evenly", func(t *testing.T) {
		dist := scheduler.Schedule(cases, 3)
		if len(dist) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(dist))
		}
		total := 0
		for _, bucket := range dist {
			total += len(bucket)
		}
		if total != len(cases) {
			t.Errorf("expected %d cases distributed, got %d", len(cases), total)
		}
		if len(dist[0]) != 3 || len(dist[1]) != 2 || len(dist[2]) != 2 {
			t.Errorf("uneven distribution: %d/%d/%d", len(dist[0]), len(dist[1]), len(dist[2]))
		}
	})

	t.Run("zero workers falls back to one", func(t *testing.T) {
		dist := scheduler.Schedule(cases, 0)
		if len(dist) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(dist))
		}
		if len(dist[0]) != len(cases) {
			t.Errorf("expected all cases in one bucket, got %d", len(dist[0]))
		}
	})
}
