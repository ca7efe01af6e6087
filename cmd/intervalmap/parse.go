package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// assignment is one parsed --assign flag.
type assignment struct {
	begin, end int
	value      string
}

// parseAssignment parses "begin:end=value", painting value on [begin, end).
func parseAssignment(arg string) (assignment, error) {
	bounds, value, ok := strings.Cut(arg, "=")
	if !ok {
		return assignment{}, errors.Newf("assignment %q: expected begin:end=value", arg)
	}

	beginText, endText, ok := strings.Cut(bounds, ":")
	if !ok {
		return assignment{}, errors.Newf("assignment %q: range must be written begin:end", arg)
	}

	begin, err := strconv.Atoi(strings.TrimSpace(beginText))
	if err != nil {
		return assignment{}, errors.Wrapf(err, "assignment %q: invalid begin", arg)
	}

	end, err := strconv.Atoi(strings.TrimSpace(endText))
	if err != nil {
		return assignment{}, errors.Wrapf(err, "assignment %q: invalid end", arg)
	}

	return assignment{begin: begin, end: end, value: value}, nil
}

// parseAssignments parses every --assign flag, stopping at the first error.
func parseAssignments(args []string) ([]assignment, error) {
	assignments := make([]assignment, 0, len(args))

	for i, arg := range args {
		a, err := parseAssignment(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "--assign #%d", i+1)
		}

		assignments = append(assignments, a)
	}

	return assignments, nil
}
