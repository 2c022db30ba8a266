package domain

import "errors"

var (
	// Input errors
	ErrEmptyInput         = errors.New("empty input")
	ErrGrammarMismatch    = errors.New("parse error")
	ErrMissingParticipant = errors.New("transfer needs at least one named participant")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrAmountMismatch     = errors.New("same-currency transfer amounts differ")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrAmountOutOfRange   = errors.New("amount out of range")

	// Batch errors
	ErrEmptyBatch    = errors.New("batch has no lines to parse")
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")

	// Logic errors
	ErrInvariantViolation = errors.New("invariant violation")
)

// IsInputError reports whether err was caused by the caller's text rather than a defect.
func IsInputError(err error) bool {
	switch {
	case errors.Is(err, ErrEmptyInput),
		errors.Is(err, ErrGrammarMismatch),
		errors.Is(err, ErrMissingParticipant),
		errors.Is(err, ErrUnknownCurrency),
		errors.Is(err, ErrAmountMismatch),
		errors.Is(err, ErrNonPositiveAmount),
		errors.Is(err, ErrAmountOutOfRange),
		errors.Is(err, ErrEmptyBatch),
		errors.Is(err, ErrBatchTooLarge):
		return true
	default:
		return false
	}
}
