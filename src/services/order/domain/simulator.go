package domain

import "sync"

// RandSource abstracts the random draw so tests can force each outcome.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

type TransactionSimulator interface {
	Simulate() TransactionStatus
}

type transactionSimulator struct {
	mu   sync.Mutex
	rand RandSource
}

func NewTransactionSimulator(rand RandSource) TransactionSimulator {
	return &transactionSimulator{rand: rand}
}

// Simulate draws one uniform value in [0,1) and maps it to an outcome:
// 70% approved, 20% declined, 10% error. The draw is serialized because
// *rand.Rand is not safe for concurrent use across request goroutines.
func (s *transactionSimulator) Simulate() TransactionStatus {
	s.mu.Lock()
	value := s.rand.Float64()
	s.mu.Unlock()

	if value < 0.70 {
		return StatusApproved
	}
	if value < 0.90 {
		return StatusDeclined
	}
	return StatusError
}
