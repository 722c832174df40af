package execution

import "gtp/internal/domain"

// Scheduler distributes cases across workers
type Scheduler interface {
	Schedule(cases []domain.Case, workerCount int) [][]domain.Case
}

// RoundRobinScheduler distributes cases evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes cases evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(cases []domain.Case, workerCount int) [][]domain.Case {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]domain.Case, workerCount)
	for i := range distribution {
		distribution[i] = make([]domain.Case, 0)
	}

	for i, c := range cases {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], c)
	}

	return distribution
}
