// Package catalog loads expense-table overrides from YAML.
//
// Example file:
//
//	fallback: Inbox
//	expenses:
//	  - hint: cafe
//	    account: Live:Restraunt
//	  - hint: yandex plus
//	    account: Subscriptions:Yandex
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iho/quickledger/internal/domain"
)

// ErrInvalidCatalog is returned for structurally valid YAML with unusable rows.
var ErrInvalidCatalog = errors.New("invalid expense catalog")

// ExpenseMapping is one YAML row.
type ExpenseMapping struct {
	Hint    string `yaml:"hint"`
	Account string `yaml:"account"`
}

// ExpenseCatalog is the YAML document.
type ExpenseCatalog struct {
	Fallback string           `yaml:"fallback"`
	Expenses []ExpenseMapping `yaml:"expenses"`
}

// LoadExpenseTable reads path and builds an expense table from it.
func LoadExpenseTable(path string) (*domain.ExpenseTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read expense catalog: %w", err)
	}

	return ParseExpenseTable(data)
}

// ParseExpenseTable builds an expense table from YAML bytes.
func ParseExpenseTable(data []byte) (*domain.ExpenseTable, error) {
	var cat ExpenseCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	mappings := make([]domain.ExpenseMapping, 0, len(cat.Expenses))
	seen := make(map[string]bool, len(cat.Expenses))
	for i, row := range cat.Expenses {
		hint := strings.ToLower(strings.TrimSpace(row.Hint))
		if hint == "" || strings.TrimSpace(row.Account) == "" {
			return nil, fmt.Errorf("%w: row %d needs hint and account", ErrInvalidCatalog, i+1)
		}
		if seen[hint] {
			return nil, fmt.Errorf("%w: duplicate hint %q", ErrInvalidCatalog, hint)
		}
		if err := checkSubPath(row.Account); err != nil {
			return nil, err
		}
		seen[hint] = true
		mappings = append(mappings, domain.ExpenseMapping{Hint: hint, Account: row.Account})
	}

	if cat.Fallback != "" {
		if err := checkSubPath(cat.Fallback); err != nil {
			return nil, err
		}
	}

	return domain.NewExpenseTable(mappings, cat.Fallback), nil
}

// checkSubPath rejects accounts that would not form a valid Expenses path.
func checkSubPath(account string) error {
	if strings.HasPrefix(account, domain.AccountExpenses+":") {
		return fmt.Errorf("%w: account %q must not include the Expenses group", ErrInvalidCatalog, account)
	}

	sub := strings.Trim(account, ":")
	path := strings.Join([]string{domain.AccountExpenses, sub, domain.CurrencyUSD.String()}, ":")
	if !domain.IsValidAccountPath(path, domain.CurrencyUSD) {
		return fmt.Errorf("%w: account %q has an empty segment", ErrInvalidCatalog, account)
	}

	return nil
}

// Marshal renders table back to YAML.
func Marshal(table *domain.ExpenseTable) ([]byte, error) {
	cat := ExpenseCatalog{Fallback: table.Fallback()}
	for _, m := range table.Mappings() {
		cat.Expenses = append(cat.Expenses, ExpenseMapping{Hint: m.Hint, Account: m.Account})
	}
	return yaml.Marshal(cat)
}
