// Package series models named sampled data series with optional gaps and
// loads them from YAML, JSON, and CSV files. A series is the input side of
// pkg/curve: positions must be strictly increasing and values may be absent.
package series

import (
	"fmt"

	"github.com/Sumatoshi-tech/rangecurve/pkg/curve"
)

// Series is one named sampled curve.
type Series struct {
	Name string
	Xs   []float64
	Ys   []curve.Value
}

// Validate checks the series against the curve construction contract:
// non-empty, equal lengths, strictly increasing positions.
func (s *Series) Validate() error {
	if len(s.Xs) == 0 {
		return fmt.Errorf("series %q: %w", s.Name, curve.ErrEmpty)
	}

	if len(s.Xs) != len(s.Ys) {
		return fmt.Errorf("series %q: %w", s.Name, curve.ErrLengthMismatch)
	}

	for i := 1; i < len(s.Xs); i++ {
		if s.Xs[i] <= s.Xs[i-1] {
			return fmt.Errorf("series %q at index %d: %w", s.Name, i, curve.ErrNotIncreasing)
		}
	}

	return nil
}

// Curve builds the range min/max index over the series.
func (s *Series) Curve() (*curve.Curve, error) {
	c, err := curve.New(s.Xs, s.Ys)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", s.Name, err)
	}

	return c, nil
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.Xs)
}

// Gaps returns the number of absent values.
func (s *Series) Gaps() int {
	gaps := 0

	for _, y := range s.Ys {
		if y.IsGap() {
			gaps++
		}
	}

	return gaps
}
