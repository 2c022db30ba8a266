package domain

import "strings"

// Top-level account groups.
const (
	AccountAssets   = "Assets"
	AccountExpenses = "Expenses"
	AccountEquity   = "Equity"
)

const accountSeparator = ":"

type keywordRule struct {
	keyword string
	token   string
}

// Checked in order; the first keyword found in the hint wins.
var assetCategoryRules = []keywordRule{
	{keyword: "crypto", token: "Crypto"},
	{keyword: "cash", token: "Cash"},
	{keyword: "deniz", token: "Deniz"},
	{keyword: "papara", token: "Papara"},
}

var assetPersonRules = []keywordRule{
	{keyword: "alena", token: "Alena"},
	{keyword: "pavel", token: "Pavel"},
}

const (
	defaultAssetCategory = "Cash"
	defaultCashTRYHolder = "Pavel"
)

// AssetAccount resolves a free-text hint into an Assets path ending in the currency.
func AssetAccount(hint string, currency Currency) string {
	hint = strings.ToLower(hint)

	category := matchKeyword(hint, assetCategoryRules, defaultAssetCategory)
	person := matchKeyword(hint, assetPersonRules, "")

	if person == "" && category == defaultAssetCategory && currency.Equal(CurrencyTRY) {
		person = defaultCashTRYHolder
	}

	return joinAccount(AccountAssets, category, person, strings.ToUpper(string(currency)))
}

// ConversionAccount returns the equity account that balances one leg of an exchange.
func ConversionAccount(currency Currency) string {
	return joinAccount(AccountEquity, "Conversion", strings.ToUpper(string(currency)))
}

// IsValidAccountPath checks the top-level group, the trailing currency
// segment and that no segment is blank.
func IsValidAccountPath(path string, currency Currency) bool {
	segments := strings.Split(path, accountSeparator)
	if len(segments) < 2 {
		return false
	}

	for _, s := range segments {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}

	switch segments[0] {
	case AccountAssets, AccountExpenses, AccountEquity:
	default:
		return false
	}

	return segments[len(segments)-1] == strings.ToUpper(string(currency))
}

func matchKeyword(hint string, rules []keywordRule, fallback string) string {
	for _, rule := range rules {
		if strings.Contains(hint, rule.keyword) {
			return rule.token
		}
	}
	return fallback
}

func joinAccount(segments ...string) string {
	nonEmpty := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, accountSeparator)
}
