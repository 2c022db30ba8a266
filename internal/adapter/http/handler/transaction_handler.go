package handler

import (
	"context"
	"net/http"

	"github.com/iho/quickledger/internal/adapter/http/dto"
	"github.com/iho/quickledger/internal/domain"
	"github.com/iho/quickledger/internal/usecase"
)

// ParseService is the use case behind TransactionHandler.
type ParseService interface {
	Parse(ctx context.Context, input usecase.ParseInput) (*usecase.ParseResult, error)
	ParseBatch(ctx context.Context, input usecase.ParseBatchInput) ([]*usecase.ParseResult, error)
	ExpenseTable() *domain.ExpenseTable
}

// TransactionHandler handles parse-related HTTP requests.
type TransactionHandler struct {
	parseUC ParseService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(parseUC ParseService) *TransactionHandler {
	return &TransactionHandler{parseUC: parseUC}
}

// Parse parses one utterance into a transaction.
func (h *TransactionHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req dto.ParseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.parseUC.Parse(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to parse transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromResult(result))
}

// ParseBatch parses several utterances; any failing line fails the request.
func (h *TransactionHandler) ParseBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.ParseBatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	results, err := h.parseUC.ParseBatch(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to parse batch", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BatchResponse{
		Count:        len(results),
		Transactions: dto.TransactionsFromResults(results),
	})
}

// ListExpenses returns the expense table used to resolve spendings.
func (h *TransactionHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ExpenseTableFromDomain(h.parseUC.ExpenseTable()))
}
