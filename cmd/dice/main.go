package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/dicelang/dice/roll"
	"github.com/dicelang/dice/roll/eval"
	"github.com/dicelang/dice/roll/parse"
)

func main() {
	rollCmd := &cli.Command{
		Name:   "roll",
		Action: rollAct,
		Args:   cli.Args{},
	}

	parseCmd := &cli.Command{
		Name:   "parse",
		Action: parseAct,
		Args:   cli.Args{},
	}

	fmtCmd := &cli.Command{
		Name:   "fmt",
		Action: fmtAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "dice",
		Description: "dice rolls dice notation such as 3d12 - 8 + 10d8",
		Action:      rollAct,
		Args:        cli.Args{},
		Commands: []*cli.Command{
			rollCmd,
			parseCmd,
			fmtCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

// request joins the args into one roll definition.
// No args means a single plain die.
func request(c *cli.Command) string {
	if len(c.Args) == 0 {
		return "d"
	}

	return strings.Join(c.Args, " ")
}

func rollAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	x, err := parse.ParseString(ctx, request(c))
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	v, err := eval.New(nil).Eval(ctx, x)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(v)

	return nil
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	q := request(c)

	x, err := roll.Parse(ctx, q)
	if err != nil {
		return errors.Wrap(err, "parse %v", q)
	}

	fmt.Printf("ast: %+v\n", x)

	return nil
}

func fmtAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	q := request(c)

	x, err := roll.Parse(ctx, q)
	if err != nil {
		return errors.Wrap(err, "parse %v", q)
	}

	s, err := roll.Format(ctx, x)
	if err != nil {
		return errors.Wrap(err, "format %v", q)
	}

	fmt.Println(s)

	return nil
}
