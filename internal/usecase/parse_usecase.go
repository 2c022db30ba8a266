package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/quickledger/internal/domain"
	"github.com/iho/quickledger/internal/parser"
)

// ParseUseCase handles turning shorthand text into transactions.
type ParseUseCase struct {
	parser       TransactionParser
	clock        Clock
	idGen        IDGenerator
	metrics      MetricsRecorder
	logger       zerolog.Logger
	maxBatchSize int
}

// NewParseUseCase creates a new ParseUseCase.
func NewParseUseCase(
	p TransactionParser,
	clock Clock,
	idGen IDGenerator,
	metrics MetricsRecorder,
	logger zerolog.Logger,
	maxBatchSize int,
) *ParseUseCase {
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}

	return &ParseUseCase{
		parser:       p,
		clock:        clock,
		idGen:        idGen,
		metrics:      metrics,
		logger:       logger,
		maxBatchSize: maxBatchSize,
	}
}

// ParseInput represents input for parsing one utterance.
type ParseInput struct {
	At   *time.Time
	Text string
}

// ParseBatchInput represents input for parsing several utterances at once.
type ParseBatchInput struct {
	At    *time.Time
	Lines []string
}

// ParseResult is a parsed transaction with its generated ID.
type ParseResult struct {
	Transaction *domain.Transaction
	ID          string
	Grammar     parser.Grammar
	Input       string
}

// Parse parses a single utterance.
func (uc *ParseUseCase) Parse(ctx context.Context, input ParseInput) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return uc.parseOne(input.Text, uc.instant(input.At))
}

// ParseBatch parses every non-blank, non-comment line against the same instant.
// The first failing line aborts the whole batch.
func (uc *ParseUseCase) ParseBatch(ctx context.Context, input ParseBatchInput) ([]*ParseResult, error) {
	if len(input.Lines) > uc.maxBatchSize {
		return nil, fmt.Errorf("%w: %d lines, limit is %d", domain.ErrBatchTooLarge, len(input.Lines), uc.maxBatchSize)
	}

	now := uc.instant(input.At)
	results := make([]*ParseResult, 0, len(input.Lines))

	for i, line := range input.Lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, batchCommentPrefix) {
			continue
		}

		result, err := uc.parseOne(line, now)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	uc.metrics.ObserveBatch(len(results))

	return results, nil
}

// ExpenseTable returns the expense categories the parser resolves against.
func (uc *ParseUseCase) ExpenseTable() *domain.ExpenseTable {
	return uc.parser.ExpenseTable()
}

func (uc *ParseUseCase) parseOne(text string, now time.Time) (*ParseResult, error) {
	grammar := parser.Classify(text)
	start := time.Now()

	tx, err := uc.parser.Parse(text, now)
	if err != nil {
		uc.metrics.ObserveError(string(grammar), errorType(err))
		uc.logFailure(text, grammar, err)
		return nil, err
	}

	uc.metrics.ObserveParse(string(grammar), len(tx.Postings), time.Since(start))

	result := &ParseResult{
		ID:          uc.idGen.Generate(),
		Grammar:     grammar,
		Input:       text,
		Transaction: tx,
	}

	uc.logger.Debug().
		Str("id", result.ID).
		Str("grammar", string(grammar)).
		Str("input", text).
		Int("postings", len(tx.Postings)).
		Msg("transaction parsed")

	return result, nil
}

func (uc *ParseUseCase) logFailure(text string, grammar parser.Grammar, err error) {
	event := uc.logger.Warn()
	if !domain.IsInputError(err) {
		event = uc.logger.Error()
	}

	event.
		Err(err).
		Str("grammar", string(grammar)).
		Str("input", text).
		Msg("parse failed")
}

func (uc *ParseUseCase) instant(at *time.Time) time.Time {
	if at != nil {
		return *at
	}
	return uc.clock.Now()
}

// errorType maps an error to a low-cardinality metric label.
func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, domain.ErrGrammarMismatch):
		return "grammar_mismatch"
	case errors.Is(err, domain.ErrMissingParticipant):
		return "missing_participant"
	case errors.Is(err, domain.ErrUnknownCurrency):
		return "unknown_currency"
	case errors.Is(err, domain.ErrAmountMismatch):
		return "amount_mismatch"
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return "non_positive_amount"
	case errors.Is(err, domain.ErrAmountOutOfRange):
		return "amount_out_of_range"
	case errors.Is(err, domain.ErrInvariantViolation):
		return "invariant_violation"
	default:
		return "internal"
	}
}
