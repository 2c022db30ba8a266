package parser

import (
	"fmt"
	"strings"

	"github.com/iho/quickledger/internal/domain"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenNumber
)

// token is a lexeme of the utterance body; pos and end are byte offsets into it.
type token struct {
	kind tokenKind
	text string
	pos  int
	end  int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

// normalize lower-cases and trims raw input.
func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// splitComment cuts the utterance at the first ';'.
func splitComment(input string) (body, comment string) {
	idx := strings.IndexByte(input, ';')
	if idx < 0 {
		return input, ""
	}
	return input[:idx], strings.TrimSpace(input[idx+1:])
}

// tokenize splits body into words (ASCII letters) and numbers (digits with at
// most one fractional group). Anything else is a grammar mismatch.
func tokenize(body string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case isSpace(c):
			i++
		case isLetter(c):
			start := i
			for i < len(body) && isLetter(body[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenWord, text: body[start:i], pos: start, end: i})
		case isDigit(c):
			start := i
			for i < len(body) && isDigit(body[i]) {
				i++
			}
			if i+1 < len(body) && body[i] == '.' && isDigit(body[i+1]) {
				i++
				for i < len(body) && isDigit(body[i]) {
					i++
				}
			}
			tokens = append(tokens, token{kind: tokenNumber, text: body[start:i], pos: start, end: i})
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", c, i)
		}
	}

	return tokens, nil
}

// span returns the raw text covered by tokens[from:to].
func span(body string, tokens []token, from, to int) string {
	if from >= to {
		return ""
	}
	return body[tokens[from].pos:tokens[to-1].end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func mismatch(input string) error {
	return fmt.Errorf("%w: %s", domain.ErrGrammarMismatch, input)
}
