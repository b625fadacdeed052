package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/utkarsh5026/rowblur/blur"
)

var errUsage = errors.New("usage")

// invocation holds the positional arguments.
type invocation struct {
	input   string
	output  string
	workers int
	cores   int
}

func parseInvocation(args []string) (invocation, error) {
	if len(args) != 4 {
		return invocation{}, fmt.Errorf("%w: expected 4 arguments, got %d", errUsage, len(args))
	}

	workers, err := strconv.Atoi(args[2])
	if err != nil || workers < 1 {
		return invocation{}, fmt.Errorf("%w: workers must be a positive integer, got %q", errUsage, args[2])
	}
	cores, err := strconv.Atoi(args[3])
	if err != nil || cores < 1 {
		return invocation{}, fmt.Errorf("%w: cores must be a positive integer, got %q", errUsage, args[3])
	}

	return invocation{input: args[0], output: args[1], workers: workers, cores: cores}, nil
}

// parsePriorityList parses the -p flag value, one priority per worker.
func parsePriorityList(s string, workers int) ([]blur.Priority, error) {
	fields := strings.Split(s, ",")
	if len(fields) != workers {
		return nil, fmt.Errorf("%w: %d priorities for %d workers", errUsage, len(fields), workers)
	}

	prios := make([]blur.Priority, len(fields))
	for i, f := range fields {
		p, err := blur.ParsePriority(f)
		if err != nil {
			return nil, fmt.Errorf("%w: worker %d: %w", errUsage, i+1, err)
		}
		prios[i] = p
	}
	return prios, nil
}

// promptPriorities asks for each worker's priority in turn, asking again
// after an unrecognized answer.
func promptPriorities(in io.Reader, out io.Writer, workers int) ([]blur.Priority, error) {
	sc := bufio.NewScanner(in)
	prios := make([]blur.Priority, 0, workers)

	for len(prios) < workers {
		fmt.Fprintf(out, "Priority for thread num %d: ", len(prios)+1)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}

		p, err := blur.ParsePriority(sc.Text())
		if err != nil {
			fmt.Fprintln(out, "  expected below_normal (1), normal (2) or above_normal (3)")
			continue
		}
		prios = append(prios, p)
	}
	return prios, nil
}
