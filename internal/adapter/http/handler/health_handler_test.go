package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/quickledger/internal/domain"
)

type tableSourceStub struct {
	table *domain.ExpenseTable
}

func (s tableSourceStub) ExpenseTable() *domain.ExpenseTable { return s.table }

func TestHealthHandler_Liveness(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(nil).Liveness(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		source   ExpenseTableSource
		expected int
	}{
		{"ready", tableSourceStub{table: domain.DefaultExpenseTable()}, http.StatusOK},
		{"no table", tableSourceStub{}, http.StatusServiceUnavailable},
		{"no source", nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHealthHandler(tt.source).Readiness(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
