package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format of Transaction.Date.
const DateLayout = "2006-01-02"

// Posting is one signed line of a transaction.
type Posting struct {
	Account         string
	Amount          decimal.Decimal
	Currency        Currency
	DecimalPlaces   int32
	DecimalMantissa int64
}

// NewPosting builds a posting and derives its fixed-point representation.
func NewPosting(account string, amount decimal.Decimal, currency Currency) Posting {
	places := DecimalPlaces(currency)
	return Posting{
		Account:         account,
		Amount:          amount,
		Currency:        currency,
		DecimalPlaces:   places,
		DecimalMantissa: Mantissa(amount, places),
	}
}

// Transaction is a dated, balanced set of postings.
type Transaction struct {
	Date        string
	Description string
	Comment     string
	Postings    []Posting
}

// NewTransaction assembles a transaction with postings sorted by account path.
func NewTransaction(at time.Time, description, comment string, postings []Posting) *Transaction {
	sorted := make([]Posting, len(postings))
	copy(sorted, postings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Account < sorted[j].Account
	})

	return &Transaction{
		Date:        FormatDate(at),
		Description: description,
		Comment:     comment,
		Postings:    sorted,
	}
}

// HasComment reports whether a comment was given.
func (t *Transaction) HasComment() bool {
	return t.Comment != ""
}

// Balance sums posting mantissas per currency.
func (t *Transaction) Balance() map[Currency]int64 {
	sums := make(map[Currency]int64)
	for _, p := range t.Postings {
		sums[p.Currency] += p.DecimalMantissa
	}
	return sums
}

// IsBalanced reports whether every currency sums to zero.
func (t *Transaction) IsBalanced() bool {
	for _, sum := range t.Balance() {
		if sum != 0 {
			return false
		}
	}
	return len(t.Postings) > 0
}

// FormatDate renders the UTC calendar date of at.
func FormatDate(at time.Time) string {
	return at.UTC().Format(DateLayout)
}
