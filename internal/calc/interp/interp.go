// Package interp holds the table and log-ratio interpolation used by the
// exposure, size and dynamic factor stages.
package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Table is a piecewise linear lookup clamped to its first and last rows.
type Table struct {
	xs, ys []float64
	pl     interp.PiecewiseLinear
}

// NewTable builds a table from strictly increasing xs.
func NewTable(xs, ys []float64) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: %d keys but %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interp: need at least 2 rows, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("interp: keys not increasing at row %d", i)
		}
	}
	t := &Table{xs: xs, ys: ys}
	if err := t.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is NewTable for package-level constants.
func MustTable(xs, ys []float64) *Table {
	t, err := NewTable(xs, ys)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) At(x float64) float64 {
	if x <= t.xs[0] {
		return t.ys[0]
	}
	if x >= t.xs[len(t.xs)-1] {
		return t.ys[len(t.ys)-1]
	}
	return t.pl.Predict(x)
}

// LogFraction is ln(x/lo)/ln(hi/lo): 0 at lo, 1 at hi.
func LogFraction(x, lo, hi float64) float64 {
	return math.Log(x/lo) / math.Log(hi/lo)
}

// Lerp blends a toward b by f.
func Lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}
