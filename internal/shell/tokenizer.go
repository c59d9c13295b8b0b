// Package shell splits command lines into quote- and operator-aware tokens.
// It is not a shell grammar: it only knows enough to tell quoted text apart
// from the exposed surface of a command.
package shell

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies how a token appeared in the command line.
type Kind int

const (
	Unquoted Kind = iota
	SingleQuoted
	DoubleQuoted
	Operator
)

func (k Kind) String() string {
	switch k {
	case Unquoted:
		return "unquoted"
	case SingleQuoted:
		return "single-quoted"
	case DoubleQuoted:
		return "double-quoted"
	case Operator:
		return "operator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token is a single lexical unit. Quoted tokens carry their content without
// the surrounding quotes.
type Token struct {
	Kind Kind
	Text string
}

// IsQuoted reports whether the token was enclosed in single or double quotes.
func (t Token) IsQuoted() bool {
	return t.Kind == SingleQuoted || t.Kind == DoubleQuoted
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}

// QuoteChar names the quote style left open by a command.
type QuoteChar int

const (
	SingleQuote QuoteChar = iota
	DoubleQuote
)

var (
	ErrUnclosedSingleQuote = errors.New("unclosed single quote")
	ErrUnclosedDoubleQuote = errors.New("unclosed double quote")
)

// ParseError is returned when input ends inside a quoted run.
type ParseError struct {
	Quote QuoteChar
}

func (e *ParseError) Error() string {
	return e.Unwrap().Error()
}

func (e *ParseError) Unwrap() error {
	if e.Quote == DoubleQuote {
		return ErrUnclosedDoubleQuote
	}
	return ErrUnclosedSingleQuote
}

// Tokenize scans command left to right. Backslashes outside single quotes
// stay in the token and only suppress quote toggling, splitting and operator
// detection for the next character.
func Tokenize(command string) ([]Token, error) {
	var (
		tokens   []Token
		current  strings.Builder
		inSingle bool
		inDouble bool
		escaped  bool
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, Token{Kind: Unquoted, Text: current.String()})
			current.Reset()
		}
	}

	runes := []rune(command)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if escaped {
			current.WriteRune(ch)
			escaped = false
			continue
		}

		switch {
		case ch == '\\' && !inSingle:
			escaped = true
			current.WriteRune(ch)

		case ch == '\'' && !inDouble:
			if inSingle {
				tokens = append(tokens, Token{Kind: SingleQuoted, Text: current.String()})
				current.Reset()
				inSingle = false
			} else {
				flush()
				inSingle = true
			}

		case ch == '"' && !inSingle:
			if inDouble {
				tokens = append(tokens, Token{Kind: DoubleQuoted, Text: current.String()})
				current.Reset()
				inDouble = false
			} else {
				flush()
				inDouble = true
			}

		case inSingle || inDouble:
			current.WriteRune(ch)

		case ch == ' ' || ch == '\t' || ch == '\n':
			flush()

		case isOperatorChar(ch):
			flush()
			op := string(ch)
			if i+1 < len(runes) && isDoubleOperator(ch, runes[i+1]) {
				op += string(runes[i+1])
				i++
			}
			tokens = append(tokens, Token{Kind: Operator, Text: op})

		default:
			current.WriteRune(ch)
		}
	}

	if inSingle {
		return nil, &ParseError{Quote: SingleQuote}
	}
	if inDouble {
		return nil, &ParseError{Quote: DoubleQuote}
	}
	flush()

	return tokens, nil
}

// Surface joins the text of every unquoted and operator token with single
// spaces. Quoted content never appears in the result.
func Surface(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsQuoted() {
			continue
		}
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

func isOperatorChar(ch rune) bool {
	switch ch {
	case '|', '&', ';', '>', '<':
		return true
	}
	return false
}

func isDoubleOperator(first, next rune) bool {
	return first == next && (first == '|' || first == '&' || first == '>' || first == '<')
}
