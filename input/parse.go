// Package input builds a measurement series from text entry: either one
// "fringe displacement" pair per line, or two parallel whitespace-separated
// columns. Validation stops here; the series handed to the analysis is
// already well formed.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"michelson/entity"
)

// ParsePairs reads lines of the form "fringe displacement" and builds a
// series. Blank lines are skipped. At least two data points are required.
func ParsePairs(r io.Reader) (entity.Series, error) {
	fringes := make([]float64, 0)
	displacements := make([]float64, 0)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return entity.Series{}, fmt.Errorf(
				"line %d: expected \"fringe displacement\", got %d fields", lineNo, len(fields),
			)
		}
		fringe, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return entity.Series{}, fmt.Errorf("line %d: invalid fringe count %q", lineNo, fields[0])
		}
		displacement, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return entity.Series{}, fmt.Errorf("line %d: invalid displacement %q", lineNo, fields[1])
		}
		fringes = append(fringes, fringe)
		displacements = append(displacements, displacement)
	}
	if err := scanner.Err(); err != nil {
		return entity.Series{}, fmt.Errorf("failed to read input: %w", err)
	}

	return build(fringes, displacements)
}

// ParseColumns reads two whitespace-separated lists, fringe counts on the
// first non-blank line and displacements on the second.
func ParseColumns(r io.Reader) (entity.Series, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, 2)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 2 {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return entity.Series{}, fmt.Errorf("failed to read input: %w", err)
	}
	if len(lines) < 2 {
		return entity.Series{}, fmt.Errorf("expected two lines (fringes, displacements), got %d", len(lines))
	}

	fringes, err := parseList(lines[0], "fringe count")
	if err != nil {
		return entity.Series{}, err
	}
	displacements, err := parseList(lines[1], "displacement")
	if err != nil {
		return entity.Series{}, err
	}

	return build(fringes, displacements)
}

func parseList(line, what string) ([]float64, error) {
	fields := strings.Fields(line)
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", what, field)
		}
		values[i] = v
	}
	return values, nil
}

func build(fringes, displacements []float64) (entity.Series, error) {
	if len(fringes) != len(displacements) {
		return entity.Series{}, fmt.Errorf(
			"fringe and displacement counts differ: %d vs %d",
			len(fringes), len(displacements),
		)
	}
	if len(fringes) < 2 {
		return entity.Series{}, fmt.Errorf("%d data points: %w", len(fringes), entity.ErrInsufficientData)
	}
	return entity.NewSeries(fringes, displacements)
}
