package normalization

import (
	"regexp"
	"strings"
	"unicode"
)

// TokenKind classifies one token of the working text.
type TokenKind int

const (
	// TokenWord is a regular word, the only kind later stages may modify.
	TokenWord TokenKind = iota
	// TokenPlaceholder is a scrubber placeholder such as <CITY_0001>.
	// Placeholders pass through every stage byte-identical.
	TokenPlaceholder
	// TokenWhitespace separates fields; always a single space after
	// pre-normalization.
	TokenWhitespace
	// TokenPunct is a field without letters or digits.
	TokenPunct
)

// Token is one unit of the working text. Stages return new token slices
// and never mutate a slice they received.
type Token struct {
	Text string
	Kind TokenKind
}

// placeholderPattern matches scrubber placeholders like <CITY_0001>.
var placeholderPattern = regexp.MustCompile(`^<[A-Z]+_[0-9]{4}>$`)

// Tokenize splits pre-normalized text into tokens. Fields are separated
// by single whitespace tokens and classified individually.
func Tokenize(text string) []Token {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(fields)*2-1)
	for i, field := range fields {
		if i > 0 {
			tokens = append(tokens, Token{Text: " ", Kind: TokenWhitespace})
		}
		tokens = append(tokens, Token{Text: field, Kind: ClassifyField(field)})
	}
	return tokens
}

// ClassifyField returns the token kind for one whitespace-free field.
func ClassifyField(field string) TokenKind {
	if placeholderPattern.MatchString(field) {
		return TokenPlaceholder
	}
	for _, r := range field {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return TokenWord
		}
	}
	return TokenPunct
}

// TokensFromFields builds a token slice from pre-split fields, inserting
// single whitespace tokens between them.
func TokensFromFields(fields []string) []Token {
	return Tokenize(strings.Join(fields, " "))
}

// Join reassembles tokens into text.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Fields returns the non-whitespace tokens in order.
func Fields(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens)/2+1)
	for _, t := range tokens {
		if t.Kind != TokenWhitespace {
			out = append(out, t)
		}
	}
	return out
}

// Words returns the texts of word tokens in order.
func Words(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Kind == TokenWord {
			out = append(out, t.Text)
		}
	}
	return out
}
