package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", field)
		}
		out = append(out, value)
	}
	return out, nil
}

func parseIntList(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	return parseInts(strings.Split(list, ","))
}

func parseEdge(arg string) (src, dest int, _ error) {
	srcText, destText, found := strings.Cut(arg, "-")
	if !found {
		return 0, 0, errors.Errorf("edge %q must be in \"u-v\" format", arg)
	}

	endpoints, err := parseInts([]string{srcText, destText})
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid edge %q", arg)
	}
	return endpoints[0], endpoints[1], nil
}

func printInts(w io.Writer, values []int) error {
	fields := make([]string, 0, len(values))
	for _, value := range values {
		fields = append(fields, strconv.Itoa(value))
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, " "))
	return err
}

func intOrder(descending bool) func(a, b int) bool {
	if descending {
		return func(a, b int) bool { return a > b }
	}
	return func(a, b int) bool { return a < b }
}

func isSorted(values []int, order func(a, b int) bool) bool {
	for i := 1; i < len(values); i++ {
		if order(values[i], values[i-1]) {
			return false
		}
	}
	return true
}
