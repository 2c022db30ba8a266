// Package parser turns shorthand such as "120 usd cafe" or
// "transfer 100 try pavel to 100 try alena" into balanced transactions.
//
// A Parser holds only read-only configuration, so one instance may be shared
// by concurrent callers.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/quickledger/internal/domain"
)

// TransferDescription is the description of every transfer transaction.
const TransferDescription = "Transfer"

// DefaultPayer is the from-hint assumed when a spending names no payer.
const DefaultPayer = "pavel"

// Parser converts utterances into transactions.
type Parser struct {
	expenses     *domain.ExpenseTable
	defaultPayer string
}

// Option configures a Parser.
type Option func(*Parser)

// WithExpenseTable replaces the built-in expense table.
func WithExpenseTable(table *domain.ExpenseTable) Option {
	return func(p *Parser) {
		if table != nil {
			p.expenses = table
		}
	}
}

// WithDefaultPayer sets the hint used for spendings without a from-hint.
func WithDefaultPayer(hint string) Option {
	return func(p *Parser) {
		p.defaultPayer = strings.ToLower(strings.TrimSpace(hint))
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		expenses:     domain.DefaultExpenseTable(),
		defaultPayer: DefaultPayer,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses input with the default configuration.
func Parse(input string, now time.Time) (*domain.Transaction, error) {
	return defaultParser.Parse(input, now)
}

// Parse converts input into a transaction dated at now.
func (p *Parser) Parse(input string, now time.Time) (*domain.Transaction, error) {
	normalized := normalize(input)
	if normalized == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrGrammarMismatch, domain.ErrEmptyInput)
	}

	switch dispatch(normalized) {
	case GrammarTransfer:
		return p.parseTransfer(normalized, now)
	default:
		return p.parseSpending(normalized, now)
	}
}

// ExpenseTable returns the table the parser resolves spendings against.
func (p *Parser) ExpenseTable() *domain.ExpenseTable {
	return p.expenses
}

func (p *Parser) parseSpending(input string, now time.Time) (*domain.Transaction, error) {
	fields, err := extractSpending(input)
	if err != nil {
		return nil, err
	}

	currency, err := domain.CanonicalCurrency(fields.currency)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(fields.amount, currency, input)
	if err != nil {
		return nil, err
	}

	fromHint := fields.fromAccount
	if strings.TrimSpace(fromHint) == "" {
		fromHint = p.defaultPayer
	}

	debit := domain.NewPosting(domain.AssetAccount(fromHint, currency), amount.Neg(), currency)
	if err := checkOutflow(debit, input); err != nil {
		return nil, err
	}

	credit := domain.NewPosting(p.expenses.Account(fields.toAccount, currency), amount, currency)

	tx := domain.NewTransaction(now, capitalize(strings.TrimSpace(fields.toAccount)), fields.comment,
		[]domain.Posting{credit, debit})

	if err := verify(tx, input); err != nil {
		return nil, err
	}

	return tx, nil
}

func (p *Parser) parseTransfer(input string, now time.Time) (*domain.Transaction, error) {
	fields, err := extractTransfer(input)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(fields.fromAccount) == "" && strings.TrimSpace(fields.toAccount) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingParticipant, input)
	}

	fromCurrency, err := domain.CanonicalCurrency(fields.fromCurrency)
	if err != nil {
		return nil, err
	}
	toCurrency, err := domain.CanonicalCurrency(fields.toCurrency)
	if err != nil {
		return nil, err
	}

	fromAmount, err := parseAmount(fields.fromAmount, fromCurrency, input)
	if err != nil {
		return nil, err
	}
	toAmount, err := parseAmount(fields.toAmount, toCurrency, input)
	if err != nil {
		return nil, err
	}

	exchange := !fromCurrency.Equal(toCurrency)
	if !exchange && !fromAmount.Equal(toAmount) {
		return nil, fmt.Errorf("%w: %s != %s: %s", domain.ErrAmountMismatch, fromAmount, toAmount, input)
	}

	source := domain.NewPosting(domain.AssetAccount(fields.fromAccount, fromCurrency), fromAmount.Neg(), fromCurrency)
	if err := checkOutflow(source, input); err != nil {
		return nil, err
	}
	destination := domain.NewPosting(domain.AssetAccount(fields.toAccount, toCurrency), toAmount, toCurrency)

	postings := []domain.Posting{source, destination}
	if exchange {
		postings = append(postings,
			domain.NewPosting(domain.ConversionAccount(fromCurrency), fromAmount, fromCurrency),
			domain.NewPosting(domain.ConversionAccount(toCurrency), toAmount.Neg(), toCurrency),
		)
	}

	tx := domain.NewTransaction(now, TransferDescription, fields.comment, postings)

	if err := verify(tx, input); err != nil {
		return nil, err
	}

	return tx, nil
}

// parseAmount reads a face amount that must be positive at the currency's
// precision and fit its fixed-point mantissa.
func parseAmount(text string, currency domain.Currency, input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, mismatch(input)
	}

	mantissa, err := domain.ScaledAmount(amount, currency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", err, input)
	}
	if mantissa <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s %s rounds to zero: %s", domain.ErrNonPositiveAmount, text, currency, input)
	}

	return amount, nil
}

func checkOutflow(p domain.Posting, input string) error {
	if !p.Amount.IsNegative() || p.DecimalMantissa >= 0 {
		return fmt.Errorf("%w: outflow %s (mantissa %d) on %s is not negative: %s",
			domain.ErrInvariantViolation, p.Amount, p.DecimalMantissa, p.Account, input)
	}
	return nil
}

// verify checks every posting path and the per-currency balance.
func verify(tx *domain.Transaction, input string) error {
	for _, p := range tx.Postings {
		if !domain.IsValidAccountPath(p.Account, p.Currency) {
			return fmt.Errorf("%w: invalid account %q: %s", domain.ErrInvariantViolation, p.Account, input)
		}
	}

	if !tx.IsBalanced() {
		return fmt.Errorf("%w: postings do not balance: %s", domain.ErrInvariantViolation, input)
	}

	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
