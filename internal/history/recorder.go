package history

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"gtp/internal/config"
	"gtp/internal/domain"
)

// Recorder records run summaries for trend tracking across runs
type Recorder interface {
	Enabled() bool
	Record(meta domain.RunMeta) error
}

// MySQLRecorder appends one row per suite run to a MySQL table. The DSN
// comes from GTP_HISTORY_DSN (or .env); an empty DSN disables recording.
type MySQLRecorder struct {
	config *config.Config
}

// NewMySQLRecorder creates a new MySQLRecorder
func NewMySQLRecorder(cfg *config.Config) *MySQLRecorder {
	return &MySQLRecorder{config: cfg}
}

// Enabled reports whether a history DSN is configured.
func (r *MySQLRecorder) Enabled() bool {
	return r.config.HistoryDSN != ""
}

// Record inserts the run summary, creating the history table on first use.
func (r *MySQLRecorder) Record(meta domain.RunMeta) error {
	if !r.Enabled() {
		return nil
	}

	db, err := sql.Open("mysql", r.config.HistoryDSN)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect to history database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS gtp_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		binary_path VARCHAR(512) NOT NULL,
		total_cases INT NOT NULL,
		passed_cases INT NOT NULL,
		failed_cases INT NOT NULL,
		env_errors INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		workers INT NOT NULL,
		ran_at VARCHAR(64) NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create history table: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO gtp_runs
			(binary_path, total_cases, passed_cases, failed_cases, env_errors, duration_seconds, workers, ran_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.Binary, meta.TotalCases, meta.PassedCases, meta.FailedCases,
		meta.EnvErrors, meta.DurationSeconds, meta.Workers, meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
