package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run with `go run ./cmd/intervalmap`

func main() {
	app := &cli.App{
		Name:     "intervalmap",
		HelpName: "intervalmap",
		Usage:    "paints ranges onto a compressed interval map and prints the result",
		Commands: []*cli.Command{
			&demoCommand,
			&paintCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
