package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsInputError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("%w: 1 gbp cafe", ErrGrammarMismatch), true},
		{fmt.Errorf("%w: %w", ErrGrammarMismatch, ErrEmptyInput), true},
		{ErrMissingParticipant, true},
		{fmt.Errorf("%w: xyz", ErrUnknownCurrency), true},
		{ErrAmountMismatch, true},
		{fmt.Errorf("%w: 0 usd cafe", ErrNonPositiveAmount), true},
		{fmt.Errorf("%w: 1e30 USD", ErrAmountOutOfRange), true},
		{fmt.Errorf("line 3: %w", ErrBatchTooLarge), true},
		{ErrInvariantViolation, false},
		{errors.New("boom"), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := IsInputError(tt.err); got != tt.want {
			t.Fatalf("IsInputError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
