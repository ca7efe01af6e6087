package main

import (
	"log"

	"github.com/urfave/cli/v2"

	"github.com/crystalix007/compressed-interval-map/intervalmap"
)

var demoCommand = cli.Command{
	Action: runDemo,
	Name:   "demo",
	Usage:  "replays the reference scenario over integer keys and character values",
}

func runDemo(ctx *cli.Context) error {
	m := intervalmap.New[int]('A')

	for _, a := range []struct {
		begin, end int
		value      rune
	}{
		{0, 6, 'B'},
		{2, 5, 'C'},
		{4, 7, 'A'},
	} {
		log.Printf("Assigning [%d, %d) = %c ...", a.begin, a.end, a.value)
		m.Assign(a.begin, a.end, a.value)
	}

	report(ctx.App.Writer, m, "c", -5, 12, []int{3, 7})

	return nil
}
