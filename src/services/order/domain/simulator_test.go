package domain

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedRand always returns the same value, forcing a specific simulator branch.
type fixedRand struct {
	value float64
}

func (r fixedRand) Float64() float64 {
	return r.value
}

func TestTransactionSimulator_Simulate(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected TransactionStatus
	}{
		{
			name:     "zero draw is approved",
			value:    0.0,
			expected: StatusApproved,
		},
		{
			name:     "just under approval threshold is approved",
			value:    0.6999,
			expected: StatusApproved,
		},
		{
			name:     "exactly 0.70 is declined",
			value:    0.70,
			expected: StatusDeclined,
		},
		{
			name:     "mid decline band is declined",
			value:    0.75,
			expected: StatusDeclined,
		},
		{
			name:     "just under error threshold is declined",
			value:    0.8999,
			expected: StatusDeclined,
		},
		{
			name:     "exactly 0.90 is error",
			value:    0.90,
			expected: StatusError,
		},
		{
			name:     "high draw is error",
			value:    0.95,
			expected: StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			simulator := NewTransactionSimulator(fixedRand{value: tt.value})
			assert.Equal(t, tt.expected, simulator.Simulate())
		})
	}
}

// Concurrent checkouts share one simulator over one *rand.Rand, as in main;
// the draw must be safe under the race detector.
func TestTransactionSimulator_ConcurrentSimulate(t *testing.T) {
	simulator := NewTransactionSimulator(rand.New(rand.NewSource(1)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				status := simulator.Simulate()
				assert.Contains(t, []TransactionStatus{StatusApproved, StatusDeclined, StatusError}, status)
			}
		}()
	}
	wg.Wait()
}

func TestTransactionSimulator_OnlyKnownStatuses(t *testing.T) {
	for value := 0.0; value < 1.0; value += 0.01 {
		simulator := NewTransactionSimulator(fixedRand{value: value})
		status := simulator.Simulate()
		assert.Contains(t, []TransactionStatus{StatusApproved, StatusDeclined, StatusError}, status)
	}
}
