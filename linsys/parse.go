package linsys

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

var (
	varPattern = regexp.MustCompile(`[a-zA-Z_]\w*`)
	// termPattern splits a term into an optional numeric factor and an
	// optional variable: "2*x", "-x", "3.5*y", ".5z", "4".
	termPattern = regexp.MustCompile(`^([+-]?\d*\.?\d*)\*?([a-zA-Z_]\w*)?$`)
)

// constKey collects the free constants of a side; no variable name
// can collide with it because '*' is not a word character.
const constKey = "*const"

// parseSide reads one side of an equation into a coefficient map plus
// the accumulated constant under constKey. Whitespace is stripped and
// '-' is rewritten to '+-' so the expression splits on '+' alone.
func parseSide(expr string) (map[string]float64, error) {
	expr = strings.ReplaceAll(expr, " ", "")
	expr = strings.ReplaceAll(expr, "-", "+-")

	coeffs := map[string]float64{constKey: 0}
	for _, term := range strings.Split(expr, "+") {
		if term == "" {
			continue
		}
		m := termPattern.FindStringSubmatch(term)
		if m == nil {
			// Possibly a bare number in a shape the term pattern does
			// not cover, e.g. exponent notation.
			val, err := strconv.ParseFloat(term, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadTerm, term)
			}
			coeffs[constKey] += val

			continue
		}

		factorStr, varStr := m[1], m[2]
		var factor float64
		switch factorStr {
		case "", "+":
			factor = 1
		case "-":
			factor = -1
		default:
			val, err := strconv.ParseFloat(factorStr, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadTerm, term)
			}
			factor = val
		}

		if varStr == "" {
			coeffs[constKey] += factor
		} else {
			coeffs[varStr] += factor
		}
	}

	return coeffs, nil
}

// ParseEquations builds a LinearSystem from textual equations like
//
//	"2*x + 3*y + z = 5"
//	"x - y + 2*z = 4"
//
// Variables are collected from both sides, ordered alphabetically,
// and become the columns of A; terms on the right of '=' are moved
// left, so the right-hand side b is the negated residual constant of
// each equation. The '*' between factor and variable is optional.
//
// Errors: ErrMissingEquals, ErrBadTerm (wrapped with the offending
// term), ErrNoVariables.
func ParseEquations(equations []string) (*LinearSystem, error) {
	type pair struct{ left, right string }
	pairs := make([]pair, 0, len(equations))
	varSet := make(map[string]bool)
	for _, eq := range equations {
		left, right, ok := strings.Cut(eq, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingEquals, eq)
		}
		pairs = append(pairs, pair{left: strings.TrimSpace(left), right: strings.TrimSpace(right)})
		for _, v := range varPattern.FindAllString(eq, -1) {
			varSet[v] = true
		}
	}

	vars := make([]string, 0, len(varSet))
	for v := range varSet {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}

	rows := make([][]float64, 0, len(pairs))
	rhs := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		left, err := parseSide(p.left)
		if err != nil {
			return nil, err
		}
		right, err := parseSide(p.right)
		if err != nil {
			return nil, err
		}

		row := make([]float64, len(vars))
		for j, v := range vars {
			row[j] = left[v] - right[v]
		}
		rows = append(rows, row)
		rhs = append(rhs, -(left[constKey] - right[constKey]))
	}

	a, err := matrix.FromFloats(rows)
	if err != nil {
		return nil, err
	}
	b, err := vector.FromFloats(rhs)
	if err != nil {
		return nil, err
	}

	return &LinearSystem{a: a, b: b, vars: vars}, nil
}
