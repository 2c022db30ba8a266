package domain

import (
	"sort"
	"strings"
)

// ExpenseTable maps normalized spending hints to expense sub-paths (without the
// Expenses group and the currency segment), e.g. "cafe" -> "Live:Restraunt".
type ExpenseTable struct {
	entries  map[string]string
	fallback string
}

// ExpenseMapping is one row of an ExpenseTable.
type ExpenseMapping struct {
	Hint    string
	Account string
}

// DefaultExpenseFallback is used for hints missing from the table.
const DefaultExpenseFallback = "Inbox"

// NewExpenseTable builds a table. An empty fallback means DefaultExpenseFallback.
func NewExpenseTable(mappings []ExpenseMapping, fallback string) *ExpenseTable {
	if fallback == "" {
		fallback = DefaultExpenseFallback
	}

	t := &ExpenseTable{
		entries:  make(map[string]string, len(mappings)),
		fallback: fallback,
	}
	for _, m := range mappings {
		t.entries[normalizeHint(m.Hint)] = strings.Trim(m.Account, accountSeparator)
	}

	return t
}

// DefaultExpenseTable returns the built-in expense categories.
func DefaultExpenseTable() *ExpenseTable {
	return NewExpenseTable([]ExpenseMapping{
		{Hint: "medical", Account: "Occasional:Medical"},
		{Hint: "groceries", Account: "Live:Groceries"},
		{Hint: "cafe", Account: "Live:Restraunt"},
		{Hint: "bar", Account: "Fun:Bar"},
		{Hint: "taxi", Account: "Live:Transportation"},
		{Hint: "bus", Account: "Live:Transportation"},
		{Hint: "hookah", Account: "Fun:Hookah"},
		{Hint: "yandex plus", Account: "Subscriptions:Yandex"},
	}, DefaultExpenseFallback)
}

// Account resolves hint into a full Expenses path for currency.
func (t *ExpenseTable) Account(hint string, currency Currency) string {
	sub, ok := t.entries[normalizeHint(hint)]
	if !ok {
		sub = t.fallback
	}
	return joinAccount(AccountExpenses, sub, strings.ToUpper(string(currency)))
}

// Mappings returns the table rows sorted by hint.
func (t *ExpenseTable) Mappings() []ExpenseMapping {
	result := make([]ExpenseMapping, 0, len(t.entries))
	for hint, account := range t.entries {
		result = append(result, ExpenseMapping{Hint: hint, Account: account})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Hint < result[j].Hint })
	return result
}

// Fallback returns the sub-path used for unknown hints.
func (t *ExpenseTable) Fallback() string {
	return t.fallback
}

func normalizeHint(hint string) string {
	return strings.ToLower(strings.TrimSpace(hint))
}
