package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a canonical upper-case commodity code.
type Currency string

const (
	CurrencyTRY    Currency = "TRY"
	CurrencyUSD    Currency = "USD"
	CurrencyEUR    Currency = "EUR"
	CurrencyRUB    Currency = "RUB"
	CurrencyTether Currency = "TETHER"
	CurrencyBTC    Currency = "BTC"
	CurrencyBUSD   Currency = "BUSD"
)

// Decimal places used for fixed-point mantissas.
const (
	FiatDecimalPlaces   int32 = 2
	CryptoDecimalPlaces int32 = 10
)

var currencyTokens = map[string]Currency{
	"try":    CurrencyTRY,
	"usd":    CurrencyUSD,
	"eur":    CurrencyEUR,
	"rub":    CurrencyRUB,
	"tether": CurrencyTether,
	"btc":    CurrencyBTC,
	"busd":   CurrencyBUSD,
}

// CanonicalCurrency maps a lower-case token to its currency code.
func CanonicalCurrency(token string) (Currency, error) {
	c, ok := currencyTokens[token]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCurrency, token)
	}
	return c, nil
}

// DecimalPlaces returns the fixed-point precision for a currency.
func DecimalPlaces(c Currency) int32 {
	switch Currency(strings.ToUpper(string(c))) {
	case CurrencyTether, CurrencyBTC, CurrencyBUSD:
		return CryptoDecimalPlaces
	default:
		return FiatDecimalPlaces
	}
}

// Mantissa scales amount by 10^places and rounds half away from zero.
// The result wraps when it does not fit in int64; use ScaledAmount for
// untrusted amounts.
func Mantissa(amount decimal.Decimal, places int32) int64 {
	return amount.Shift(places).Round(0).IntPart()
}

// ScaledAmount returns the mantissa of amount at the precision of currency,
// failing with ErrAmountOutOfRange when it does not fit in int64.
func ScaledAmount(amount decimal.Decimal, currency Currency) (int64, error) {
	scaled := amount.Shift(DecimalPlaces(currency)).Round(0)
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s %s", ErrAmountOutOfRange, amount, currency)
	}
	return scaled.IntPart(), nil
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// Equal compares currency codes case-insensitively.
func (c Currency) Equal(other Currency) bool {
	return strings.EqualFold(string(c), string(other))
}
