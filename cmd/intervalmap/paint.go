package main

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/crystalix007/compressed-interval-map/intervalmap"
)

var (
	defaultValueFlag = cli.StringFlag{
		Name:  "default",
		Usage: "the value of every key not covered by an assignment",
		Value: ".",
	}
	assignFlag = cli.StringSliceFlag{
		Name:     "assign",
		Usage:    "paint value on [begin, end), written begin:end=value; applied in order",
		Required: true,
	}
	fromFlag = cli.IntFlag{
		Name:  "from",
		Usage: "the first key to print the value of",
		Value: -5,
	}
	toFlag = cli.IntFlag{
		Name:  "to",
		Usage: "the last key to print the value of",
		Value: 12,
	}
	boundsFlag = cli.IntSliceFlag{
		Name:  "bounds",
		Usage: "keys to print the surrounding boundaries of",
	}
)

var paintCommand = cli.Command{
	Action: runPaint,
	Name:   "paint",
	Usage:  "paints the given ranges over integer keys and string values",
	Flags: []cli.Flag{
		&defaultValueFlag,
		&assignFlag,
		&fromFlag,
		&toFlag,
		&boundsFlag,
	},
}

func runPaint(ctx *cli.Context) error {
	from, to := ctx.Int(fromFlag.Name), ctx.Int(toFlag.Name)
	if to < from {
		return errors.Newf("--to %d is before --from %d", to, from)
	}

	assignments, err := parseAssignments(ctx.StringSlice(assignFlag.Name))
	if err != nil {
		return err
	}

	m := paint(ctx.String(defaultValueFlag.Name), assignments)

	report(ctx.App.Writer, m, "s", from, to, ctx.IntSlice(boundsFlag.Name))

	return nil
}

// paint applies assignments in order to a fresh map. Empty and reversed
// ranges are passed through, and the map ignores them.
func paint(defaultValue string, assignments []assignment) *intervalmap.Map[int, string] {
	m := intervalmap.New[int](defaultValue)

	for _, a := range assignments {
		log.Printf("Assigning [%d, %d) = %s ...", a.begin, a.end, a.value)
		m.Assign(a.begin, a.end, a.value)
	}

	return m
}
