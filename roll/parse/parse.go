package parse

import (
	"context"
	"unicode"
	"unicode/utf8"

	"tlog.app/go/errors"

	"github.com/dicelang/dice/roll/ast"
)

// Parse failure classes. Errors returned by Parse match one of these
// with errors.Is.
var (
	ErrInvalidRollDefinition = errors.New("invalid roll definition")
	ErrMissingOperand        = errors.New("missing operand")
)

// Parse reads a full roll definition from text.
//
// Grammar, left to right, no precedence:
//
//	roll_def := ws* operand (ws* op ws* operand)* ws*
//	operand  := [digits]? 'd' [digits]? | digits
//	op       := '+' | '-'
//
// A die count defaults to 1 and sides default to 6, so "d" alone is a
// single six-sided die. Whitespace is any unicode space. The whole text
// must be consumed; no partial tree is returned on failure.
func Parse(ctx context.Context, text []byte) (ast.Expr, error) {
	i := skipSpaces(text, 0)

	x, i, ok := operand(text, i)
	if !ok {
		return nil, ErrInvalidRollDefinition
	}

	for {
		i = skipSpaces(text, i)
		if i == len(text) {
			return x, nil
		}

		op, w := utf8.DecodeRune(text[i:])
		i += w

		i = skipSpaces(text, i)

		r, j, ok := operand(text, i)
		if !ok {
			return nil, ErrMissingOperand
		}

		i = j

		switch op {
		case '+':
			x = ast.Add{Left: x, Right: r}
		case '-':
			x = ast.Sub{Left: x, Right: r}
		default:
			return nil, ErrInvalidRollDefinition
		}
	}
}

// ParseString is Parse for a string roll definition.
func ParseString(ctx context.Context, text string) (ast.Expr, error) {
	return Parse(ctx, []byte(text))
}

// operand reads one die roll or scalar term.
// ok is false if no operand starts at st; i is only advanced on success.
func operand(b []byte, st int) (x ast.Expr, i int, ok bool) {
	if st == len(b) {
		return nil, st, false
	}

	if c := b[st]; c != 'd' && (c < '0' || c > '9') {
		return nil, st, false
	}

	count, i, ok := number(b, st)
	if !ok {
		count = 1
	}

	if i == len(b) || b[i] != 'd' {
		// the entry guard ensured at least one digit here
		return ast.Scalar{Value: count}, i, true
	}

	i++

	sides, j, ok := number(b, i)
	if !ok {
		sides = 6
	}

	return ast.Roll{Count: count, Sides: sides}, j, true
}

// number reads a run of ascii digits as an unsigned base-10 int.
// Overflow is not checked.
func number(b []byte, st int) (n, i int, ok bool) {
	i = st

	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		n = n*10 + int(b[i]-'0')
		i++
	}

	return n, i, i != st
}

func skipSpaces(b []byte, i int) int {
	for i < len(b) {
		r, w := utf8.DecodeRune(b[i:])
		if !unicode.IsSpace(r) {
			break
		}

		i += w
	}

	return i
}
