package format

import (
	"context"
	"strconv"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/dicelang/dice/roll/ast"
)

// Format appends the canonical rendering of x to b.
//
// Rendering never rolls dice. The canonical form collapses whitespace
// and spells out defaults, except that a count of one stays implicit:
// Roll{1, 6} renders as "d6" and Roll{3, 6} as "3d6".
func Format(ctx context.Context, b []byte, x ast.Expr) ([]byte, error) {
	switch x := x.(type) {
	case ast.Scalar:
		return strconv.AppendInt(b, int64(x.Value), 10), nil
	case ast.Roll:
		if x.Count == 1 {
			return hfmt.Appendf(b, "d%d", x.Sides), nil
		}

		return hfmt.Appendf(b, "%dd%d", x.Count, x.Sides), nil
	case ast.Add:
		return infix(ctx, b, x.Left, " + ", x.Right)
	case ast.Sub:
		return infix(ctx, b, x.Left, " - ", x.Right)
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}
}

// String renders x canonically into a new string.
func String(ctx context.Context, x ast.Expr) (string, error) {
	b, err := Format(ctx, nil, x)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func infix(ctx context.Context, b []byte, left ast.Expr, op string, right ast.Expr) (_ []byte, err error) {
	b, err = Format(ctx, b, left)
	if err != nil {
		return nil, errors.Wrap(err, "left")
	}

	b = append(b, op...)

	b, err = Format(ctx, b, right)
	if err != nil {
		return nil, errors.Wrap(err, "right")
	}

	return b, nil
}
