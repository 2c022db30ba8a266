package parser

import "strings"

// Grammar identifies the sentence shape of an utterance.
type Grammar string

const (
	GrammarSpending Grammar = "spending"
	GrammarTransfer Grammar = "transfer"
)

const (
	transferKeyword  = "transfer"
	transferToMarker = "to"
)

// Currency tokens accepted by each grammar. Spending accepts no crypto.
var (
	spendingCurrencies = map[string]bool{"try": true, "usd": true, "eur": true, "rub": true}
	transferCurrencies = map[string]bool{
		"usd": true, "try": true, "tether": true, "busd": true, "rub": true, "btc": true,
	}
)

// dispatch picks the grammar from the first whitespace-delimited field of normalized input.
func dispatch(input string) Grammar {
	fields := strings.Fields(input)
	if len(fields) > 0 && fields[0] == transferKeyword {
		return GrammarTransfer
	}
	return GrammarSpending
}

// Classify reports which grammar raw input would be parsed with.
func Classify(input string) Grammar {
	return dispatch(normalize(input))
}

type spendingFields struct {
	fromAccount string
	amount      string
	currency    string
	toAccount   string
	comment     string
}

// extractSpending matches `[from] amount currency to [; comment]`.
func extractSpending(input string) (spendingFields, error) {
	body, comment := splitComment(input)

	tokens, err := tokenize(body)
	if err != nil {
		return spendingFields{}, mismatch(input)
	}

	i := skipWords(tokens, 0)
	fromEnd := i

	if i >= len(tokens) || tokens[i].kind != tokenNumber {
		return spendingFields{}, mismatch(input)
	}
	amount := tokens[i].text
	i++

	if i >= len(tokens) || tokens[i].kind != tokenWord || !spendingCurrencies[tokens[i].text] {
		return spendingFields{}, mismatch(input)
	}
	currency := tokens[i].text
	i++

	toStart := i
	i = skipWords(tokens, i)
	if i == toStart || i != len(tokens) {
		return spendingFields{}, mismatch(input)
	}

	return spendingFields{
		fromAccount: span(body, tokens, 0, fromEnd),
		amount:      amount,
		currency:    currency,
		toAccount:   span(body, tokens, toStart, i),
		comment:     comment,
	}, nil
}

type transferFields struct {
	fromAmount   string
	fromCurrency string
	fromAccount  string
	toAmount     string
	toCurrency   string
	toAccount    string
	comment      string
}

// extractTransfer matches `transfer amount1 currency1 [from] to amount2 currency2 [to] [; comment]`.
func extractTransfer(input string) (transferFields, error) {
	body, comment := splitComment(input)

	tokens, err := tokenize(body)
	if err != nil {
		return transferFields{}, mismatch(input)
	}

	if len(tokens) == 0 || !tokens[0].is(tokenWord, transferKeyword) {
		return transferFields{}, mismatch(input)
	}

	fromAmount, fromCurrency, ok := amountWithCurrency(tokens, 1)
	if !ok {
		return transferFields{}, mismatch(input)
	}

	fromStart := 3
	marker := -1
	for k := fromStart; k < len(tokens); k++ {
		if tokens[k].kind != tokenWord {
			break
		}
		if tokens[k].text == transferToMarker && k+1 < len(tokens) && tokens[k+1].kind == tokenNumber {
			marker = k
			break
		}
	}
	if marker < 0 {
		return transferFields{}, mismatch(input)
	}

	toAmount, toCurrency, ok := amountWithCurrency(tokens, marker+1)
	if !ok {
		return transferFields{}, mismatch(input)
	}

	toStart := marker + 3
	if skipWords(tokens, toStart) != len(tokens) {
		return transferFields{}, mismatch(input)
	}

	return transferFields{
		fromAmount:   fromAmount,
		fromCurrency: fromCurrency,
		fromAccount:  span(body, tokens, fromStart, marker),
		toAmount:     toAmount,
		toCurrency:   toCurrency,
		toAccount:    span(body, tokens, toStart, len(tokens)),
		comment:      comment,
	}, nil
}

func amountWithCurrency(tokens []token, at int) (amount, currency string, ok bool) {
	if at+1 >= len(tokens) {
		return "", "", false
	}
	if tokens[at].kind != tokenNumber || tokens[at+1].kind != tokenWord {
		return "", "", false
	}
	if !transferCurrencies[tokens[at+1].text] {
		return "", "", false
	}
	return tokens[at].text, tokens[at+1].text, true
}

func skipWords(tokens []token, from int) int {
	i := from
	for i < len(tokens) && tokens[i].kind == tokenWord {
		i++
	}
	return i
}
