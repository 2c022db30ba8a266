package handler

import (
	"net/http"

	"github.com/iho/quickledger/internal/domain"
)

// ExpenseTableSource exposes the loaded expense table.
type ExpenseTableSource interface {
	ExpenseTable() *domain.ExpenseTable
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	expenses ExpenseTableSource
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(expenses ExpenseTableSource) *HealthHandler {
	return &HealthHandler{expenses: expenses}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once an expense table is available.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.expenses == nil || h.expenses.ExpenseTable() == nil {
		writeError(w, http.StatusServiceUnavailable, "expense table unavailable", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"expenses": "ok",
	})
}
