package parser

import (
	"errors"
	"testing"

	"github.com/iho/quickledger/internal/domain"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		input string
		want  Grammar
	}{
		{"transfer 100 try pavel to 100 try alena", GrammarTransfer},
		{"120 usd cafe", GrammarSpending},
		{"transfers 100 try cafe", GrammarSpending},
		{"pavel transfer 100 try", GrammarSpending},
		{"", GrammarSpending},
	}

	for _, tt := range tests {
		if got := dispatch(tt.input); got != tt.want {
			t.Fatalf("dispatch(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestClassify_Normalizes(t *testing.T) {
	if got := Classify("  TRANSFER 1 usd a to 1 usd b"); got != GrammarTransfer {
		t.Fatalf("expected transfer grammar, got %s", got)
	}
}

func TestExtractSpending(t *testing.T) {
	tests := []struct {
		input string
		want  spendingFields
	}{
		{
			input: "120 usd cafe",
			want:  spendingFields{amount: "120", currency: "usd", toAccount: "cafe"},
		},
		{
			input: "pavel cash 12.5 try yandex  plus ; monthly",
			want: spendingFields{
				fromAccount: "pavel cash",
				amount:      "12.5",
				currency:    "try",
				toAccount:   "yandex  plus",
				comment:     "monthly",
			},
		},
		{
			input: "7eur bar",
			want:  spendingFields{amount: "7", currency: "eur", toAccount: "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := extractSpending(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("extractSpending(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSpending_Mismatch(t *testing.T) {
	inputs := []string{
		"cafe",
		"120 cafe",
		"120 usd",
		"120 usd ; comment only",
		"120 btc cafe",
		"120 usdcafe",
		"120 usd cafe 2",
		"usd 120 cafe",
		"120 usd caf3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := extractSpending(input)
			if !errors.Is(err, domain.ErrGrammarMismatch) {
				t.Fatalf("expected ErrGrammarMismatch, got %v", err)
			}
		})
	}
}

func TestExtractTransfer(t *testing.T) {
	tests := []struct {
		input string
		want  transferFields
	}{
		{
			input: "transfer 100 try pavel to 100 try alena",
			want: transferFields{
				fromAmount: "100", fromCurrency: "try", fromAccount: "pavel",
				toAmount: "100", toCurrency: "try", toAccount: "alena",
			},
		},
		{
			input: "transfer 100 busd crypto to 99 tether crypto ; swap",
			want: transferFields{
				fromAmount: "100", fromCurrency: "busd", fromAccount: "crypto",
				toAmount: "99", toCurrency: "tether", toAccount: "crypto",
				comment: "swap",
			},
		},
		{
			input: "transfer 50 usd to 50 usd alena",
			want: transferFields{
				fromAmount: "50", fromCurrency: "usd",
				toAmount: "50", toCurrency: "usd", toAccount: "alena",
			},
		},
		{
			input: "transfer 50 usd pavel to 50 usd",
			want: transferFields{
				fromAmount: "50", fromCurrency: "usd", fromAccount: "pavel",
				toAmount: "50", toCurrency: "usd",
			},
		},
		{
			input: "transfer 50 usd pavel to papara to 50 usd alena",
			want: transferFields{
				fromAmount: "50", fromCurrency: "usd", fromAccount: "pavel to papara",
				toAmount: "50", toCurrency: "usd", toAccount: "alena",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := extractTransfer(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("extractTransfer(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTransfer_Mismatch(t *testing.T) {
	inputs := []string{
		"transfer",
		"transfer 100 try pavel",
		"transfer 100 try pavel 100 try alena",
		"transfer 100 eur pavel to 100 eur alena",
		"transfer 100 try pavel to alena",
		"transfer try 100 pavel to 100 try alena",
		"transfer 100 try pavel to 100 try alena 5",
		"transfer 100 try 5 to 100 try alena",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := extractTransfer(input)
			if !errors.Is(err, domain.ErrGrammarMismatch) {
				t.Fatalf("expected ErrGrammarMismatch, got %v", err)
			}
		})
	}
}
