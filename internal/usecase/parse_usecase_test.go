package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/quickledger/internal/domain"
	"github.com/iho/quickledger/internal/parser"
	"github.com/iho/quickledger/internal/usecase"
	"github.com/iho/quickledger/internal/usecase/mocks"
)

var fixedNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func spendingTx() *domain.Transaction {
	return domain.NewTransaction(fixedNow, "Cafe", "", []domain.Posting{
		domain.NewPosting("Assets:Cash:Pavel:USD", decimal.NewFromInt(-120), domain.CurrencyUSD),
		domain.NewPosting("Expenses:Live:Restraunt:USD", decimal.NewFromInt(120), domain.CurrencyUSD),
	})
}

func TestParseUseCase_Parse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockTransactionParser(ctrl)
	clock := mocks.NewMockClock(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	rec := mocks.NewMockMetricsRecorder(ctrl)

	clock.EXPECT().Now().Return(fixedNow)
	p.EXPECT().Parse("120 usd cafe", fixedNow).Return(spendingTx(), nil)
	idGen.EXPECT().Generate().Return("tx-1")
	rec.EXPECT().ObserveParse("spending", 2, gomock.Any())

	uc := usecase.NewParseUseCase(p, clock, idGen, rec, zerolog.Nop(), 0)

	result, err := uc.Parse(context.Background(), usecase.ParseInput{Text: "120 usd cafe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ID != "tx-1" || result.Grammar != parser.GrammarSpending {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Transaction.Description != "Cafe" {
		t.Errorf("expected description Cafe, got %s", result.Transaction.Description)
	}
}

func TestParseUseCase_Parse_ExplicitInstantSkipsClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)

	p := mocks.NewMockTransactionParser(ctrl)
	clock := mocks.NewMockClock(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	rec := mocks.NewMockMetricsRecorder(ctrl)

	p.EXPECT().Parse(gomock.Any(), at).Return(spendingTx(), nil)
	idGen.EXPECT().Generate().Return("tx-2")
	rec.EXPECT().ObserveParse(gomock.Any(), gomock.Any(), gomock.Any())

	uc := usecase.NewParseUseCase(p, clock, idGen, rec, zerolog.Nop(), 0)

	if _, err := uc.Parse(context.Background(), usecase.ParseInput{Text: "120 usd cafe", At: &at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseUseCase_Parse_Error(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		err       error
		grammar   string
		errorType string
		level     string
	}{
		{
			name:      "grammar mismatch",
			text:      "hello",
			err:       fmt.Errorf("%w: hello", domain.ErrGrammarMismatch),
			grammar:   "spending",
			errorType: "grammar_mismatch",
			level:     `"level":"warn"`,
		},
		{
			name:      "missing participant",
			text:      "transfer 1 usd to 1 usd",
			err:       domain.ErrMissingParticipant,
			grammar:   "transfer",
			errorType: "missing_participant",
			level:     `"level":"warn"`,
		},
		{
			name:      "amount out of range",
			text:      "99999999999999999999 usd cafe",
			err:       domain.ErrAmountOutOfRange,
			grammar:   "spending",
			errorType: "amount_out_of_range",
			level:     `"level":"warn"`,
		},
		{
			name:      "invariant violation",
			text:      "120 usd cafe",
			err:       domain.ErrInvariantViolation,
			grammar:   "spending",
			errorType: "invariant_violation",
			level:     `"level":"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p := mocks.NewMockTransactionParser(ctrl)
			clock := mocks.NewMockClock(ctrl)
			idGen := mocks.NewMockIDGenerator(ctrl)
			rec := mocks.NewMockMetricsRecorder(ctrl)

			clock.EXPECT().Now().Return(fixedNow)
			p.EXPECT().Parse(tt.text, fixedNow).Return(nil, tt.err)
			rec.EXPECT().ObserveError(tt.grammar, tt.errorType)

			var logs bytes.Buffer
			uc := usecase.NewParseUseCase(p, clock, idGen, rec, zerolog.New(&logs), 0)

			_, err := uc.Parse(context.Background(), usecase.ParseInput{Text: tt.text})
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if !strings.Contains(logs.String(), tt.level) {
				t.Fatalf("expected log with %s, got %q", tt.level, logs.String())
			}
		})
	}
}

func TestParseUseCase_Parse_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewParseUseCase(
		mocks.NewMockTransactionParser(ctrl),
		mocks.NewMockClock(ctrl),
		mocks.NewMockIDGenerator(ctrl),
		mocks.NewMockMetricsRecorder(ctrl),
		zerolog.Nop(),
		0,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Parse(ctx, usecase.ParseInput{Text: "120 usd cafe"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseUseCase_ParseBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	rec := mocks.NewMockMetricsRecorder(ctrl)

	clock.EXPECT().Now().Return(fixedNow).Times(1)
	idGen.EXPECT().Generate().Return("id").Times(2)
	rec.EXPECT().ObserveParse(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	rec.EXPECT().ObserveBatch(2)

	uc := usecase.NewParseUseCase(parser.New(), clock, idGen, rec, zerolog.Nop(), 10)

	results, err := uc.ParseBatch(context.Background(), usecase.ParseBatchInput{
		Lines: []string{
			"# morning",
			"120 usd cafe",
			"",
			"transfer 100 busd crypto to 99 tether crypto",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Grammar != parser.GrammarTransfer || len(results[1].Transaction.Postings) != 4 {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
	for _, r := range results {
		if r.Transaction.Date != "2024-05-17" {
			t.Fatalf("expected shared batch date, got %s", r.Transaction.Date)
		}
	}
}

func TestParseUseCase_ParseBatch_FailsOnBadLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	rec := mocks.NewMockMetricsRecorder(ctrl)

	clock.EXPECT().Now().Return(fixedNow)
	idGen.EXPECT().Generate().Return("id")
	rec.EXPECT().ObserveParse(gomock.Any(), gomock.Any(), gomock.Any())
	rec.EXPECT().ObserveError("spending", "grammar_mismatch")

	uc := usecase.NewParseUseCase(parser.New(), clock, idGen, rec, zerolog.Nop(), 10)

	results, err := uc.ParseBatch(context.Background(), usecase.ParseBatchInput{
		Lines: []string{"120 usd cafe", "120 gbp cafe"},
	})
	if !errors.Is(err, domain.ErrGrammarMismatch) {
		t.Fatalf("expected ErrGrammarMismatch, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "line 2:") {
		t.Fatalf("expected line number in error, got %q", err.Error())
	}
	if results != nil {
		t.Fatalf("expected no partial results")
	}
}

func TestParseUseCase_ParseBatch_Limits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(fixedNow).AnyTimes()

	uc := usecase.NewParseUseCase(parser.New(), clock, mocks.NewMockIDGenerator(ctrl),
		mocks.NewMockMetricsRecorder(ctrl), zerolog.Nop(), 2)

	_, err := uc.ParseBatch(context.Background(), usecase.ParseBatchInput{Lines: []string{"a", "b", "c"}})
	if !errors.Is(err, domain.ErrBatchTooLarge) {
		t.Fatalf("expected ErrBatchTooLarge, got %v", err)
	}

	_, err = uc.ParseBatch(context.Background(), usecase.ParseBatchInput{Lines: []string{" ", "# only comments"}})
	if !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestParseUseCase_ExpenseTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := domain.DefaultExpenseTable()
	p := mocks.NewMockTransactionParser(ctrl)
	p.EXPECT().ExpenseTable().Return(table)

	uc := usecase.NewParseUseCase(p, mocks.NewMockClock(ctrl), mocks.NewMockIDGenerator(ctrl),
		mocks.NewMockMetricsRecorder(ctrl), zerolog.Nop(), 0)

	if uc.ExpenseTable() != table {
		t.Fatalf("expected parser's expense table")
	}
}
