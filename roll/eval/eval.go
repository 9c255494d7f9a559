package eval

import (
	"context"
	"math/rand"
	"time"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/dicelang/dice/roll/ast"
)

type (
	// Evaluator computes the value of an expression tree, rolling dice
	// as it goes.
	//
	// It owns a single unsynchronized rand.Rand, so one Evaluator must
	// not be shared between goroutines. Create one per goroutine.
	Evaluator struct {
		rng *rand.Rand
	}
)

// ErrInvalidDie indicates a die with less than one side or a negative count.
var ErrInvalidDie = errors.New("invalid die")

// New creates an evaluator drawing from the given source.
// A nil source means a clock-seeded one.
func New(src rand.Source) *Evaluator {
	if src == nil {
		tlog.V("rand").Printw("evaluator seeded from clock", "from", loc.Caller(1))

		src = rand.NewSource(time.Now().UnixNano())
	}

	return &Evaluator{
		rng: rand.New(src),
	}
}

// Eval computes the value of x.
//
// Every call re-rolls every die in the tree, so two calls on the same
// tree may return different values. Trees without dice are pure.
//
// The grammar cannot produce a die with zero sides through defaults,
// but "d0" spells one explicitly; such dice fail with ErrInvalidDie
// instead of sampling a degenerate range.
func (e *Evaluator) Eval(ctx context.Context, x ast.Expr) (int, error) {
	switch x := x.(type) {
	case ast.Scalar:
		return x.Value, nil
	case ast.Roll:
		return e.roll(ctx, x)
	case ast.Add:
		l, r, err := e.pair(ctx, x.Left, x.Right)
		if err != nil {
			return 0, err
		}

		return l + r, nil
	case ast.Sub:
		l, r, err := e.pair(ctx, x.Left, x.Right)
		if err != nil {
			return 0, err
		}

		return l - r, nil
	default:
		return 0, errors.New("unsupported expr: %T", x)
	}
}

func (e *Evaluator) pair(ctx context.Context, left, right ast.Expr) (l, r int, err error) {
	l, err = e.Eval(ctx, left)
	if err != nil {
		return 0, 0, errors.Wrap(err, "left")
	}

	r, err = e.Eval(ctx, right)
	if err != nil {
		return 0, 0, errors.Wrap(err, "right")
	}

	return l, r, nil
}

func (e *Evaluator) roll(ctx context.Context, x ast.Roll) (sum int, err error) {
	if x.Sides < 1 || x.Count < 0 {
		return 0, errors.Wrap(ErrInvalidDie, "%dd%d", x.Count, x.Sides)
	}

	for i := 0; i < x.Count; i++ {
		sum += e.rng.Intn(x.Sides) + 1
	}

	tlog.V("roll").Printw("rolled", "count", x.Count, "sides", x.Sides, "sum", sum)

	return sum, nil
}
