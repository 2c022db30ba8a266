package usecase

import (
	"time"

	"github.com/iho/quickledger/internal/domain"
)

// TransactionParser converts utterances into transactions.
type TransactionParser interface {
	Parse(input string, now time.Time) (*domain.Transaction, error)
	ExpenseTable() *domain.ExpenseTable
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// MetricsRecorder receives parse outcomes.
type MetricsRecorder interface {
	ObserveParse(grammar string, postings int, elapsed time.Duration)
	ObserveError(grammar, errorType string)
	ObserveBatch(lines int)
}
