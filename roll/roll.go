package roll

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/dicelang/dice/roll/ast"
	"github.com/dicelang/dice/roll/eval"
	"github.com/dicelang/dice/roll/format"
	"github.com/dicelang/dice/roll/parse"
)

// Parse parses a roll definition such as "3d12 - 8 + 10d8" into an
// expression tree.
func Parse(ctx context.Context, text string) (ast.Expr, error) {
	x, err := parse.ParseString(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse roll definition")
	}

	tlog.SpanFromContext(ctx).Printw("parsed roll definition", "size", len(text), "typ", tlog.NextAsType, x, "expr", x)

	return x, nil
}

// Format renders the tree back to its canonical textual form.
func Format(ctx context.Context, x ast.Expr) (string, error) {
	s, err := format.String(ctx, x)
	if err != nil {
		return "", errors.Wrap(err, "format expr")
	}

	return s, nil
}

// Eval evaluates the tree once with a fresh clock-seeded evaluator.
// For reproducible rolls use eval.New with an explicit source.
func Eval(ctx context.Context, x ast.Expr) (int, error) {
	v, err := eval.New(nil).Eval(ctx, x)
	if err != nil {
		return 0, errors.Wrap(err, "evaluate")
	}

	return v, nil
}

// Roll parses a roll definition and evaluates it once.
func Roll(ctx context.Context, text string) (int, error) {
	x, err := Parse(ctx, text)
	if err != nil {
		return 0, err
	}

	return Eval(ctx, x)
}

// RollFile rolls a definition kept in a file.
func RollFile(ctx context.Context, name string) (int, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return 0, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Roll(ctx, string(text))
}
