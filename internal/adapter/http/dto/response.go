package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/quickledger/internal/domain"
	"github.com/iho/quickledger/internal/usecase"
)

// PostingResponse represents a posting in API responses.
type PostingResponse struct {
	Account         string          `json:"account"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	DecimalPlaces   int32           `json:"decimal_places"`
	DecimalMantissa int64           `json:"decimal_mantissa"`
}

// TransactionResponse represents a parsed transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	Grammar     string            `json:"grammar"`
	Date        string            `json:"date"`
	Description string            `json:"description"`
	Comment     string            `json:"comment,omitempty"`
	Postings    []PostingResponse `json:"postings"`
	Balanced    bool              `json:"balanced"`
}

// TransactionFromResult converts a parse result to response.
func TransactionFromResult(r *usecase.ParseResult) *TransactionResponse {
	tx := r.Transaction
	postings := make([]PostingResponse, len(tx.Postings))
	for i, p := range tx.Postings {
		postings[i] = PostingFromDomain(p)
	}

	resp := &TransactionResponse{
		ID:          r.ID,
		Grammar:     string(r.Grammar),
		Date:        tx.Date,
		Description: tx.Description,
		Postings:    postings,
		Balanced:    tx.IsBalanced(),
	}
	if tx.HasComment() {
		resp.Comment = tx.Comment
	}

	return resp
}

// TransactionsFromResults converts parse results to responses.
func TransactionsFromResults(results []*usecase.ParseResult) []*TransactionResponse {
	out := make([]*TransactionResponse, len(results))
	for i, r := range results {
		out[i] = TransactionFromResult(r)
	}
	return out
}

// PostingFromDomain converts domain posting to response.
func PostingFromDomain(p domain.Posting) PostingResponse {
	return PostingResponse{
		Account:         p.Account,
		Amount:          p.Amount,
		Currency:        p.Currency.String(),
		DecimalPlaces:   p.DecimalPlaces,
		DecimalMantissa: p.DecimalMantissa,
	}
}

// BatchResponse represents the result of a batch parse.
type BatchResponse struct {
	Count        int                    `json:"count"`
	Transactions []*TransactionResponse `json:"transactions"`
}

// ExpenseMappingResponse represents one expense table row.
type ExpenseMappingResponse struct {
	Hint    string `json:"hint"`
	Account string `json:"account"`
}

// ExpenseTableResponse represents the expense table.
type ExpenseTableResponse struct {
	Fallback string                   `json:"fallback"`
	Mappings []ExpenseMappingResponse `json:"mappings"`
}

// ExpenseTableFromDomain converts the expense table to response.
func ExpenseTableFromDomain(t *domain.ExpenseTable) *ExpenseTableResponse {
	rows := t.Mappings()
	mappings := make([]ExpenseMappingResponse, len(rows))
	for i, m := range rows {
		mappings[i] = ExpenseMappingResponse{Hint: m.Hint, Account: m.Account}
	}
	return &ExpenseTableResponse{Fallback: t.Fallback(), Mappings: mappings}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
