package execution

import (
	"time"

	"gtp/internal/domain"
)

// Executor executes golden cases and returns results
type Executor interface {
	Execute(cases []domain.Case) ([]domain.CaseResult, time.Duration, error)
}
