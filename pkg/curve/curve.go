// Package curve provides range min/max queries over a sampled curve
// y = f(x) whose y-values may be missing. Sample positions are strictly
// increasing; a precomputed complete binary tree over the sample indices
// answers arbitrary index-range extremes in O(log n) after an O(n) build.
//
// Domain queries take real x bounds rather than indices. A bound that falls
// strictly between two present samples contributes the linearly interpolated
// value of the curve at that bound; a gap on either side of the bound
// suppresses the contribution. Gap samples are excluded from aggregation and
// are never substituted by interpolation.
//
// A Curve is immutable after construction, so concurrent queries need no
// locking.
package curve

import (
	"errors"
	"fmt"
	"sort"
)

// Construction contract violations.
var (
	// ErrEmpty is returned when no samples are given.
	ErrEmpty = errors.New("curve: no samples")

	// ErrLengthMismatch is returned when the sample and value counts differ.
	ErrLengthMismatch = errors.New("curve: sample and value counts differ")

	// ErrNotIncreasing is returned when sample positions are not strictly increasing.
	ErrNotIncreasing = errors.New("curve: sample positions not strictly increasing")
)

// Curve is a range min/max index over one sampled single-valued curve.
type Curve struct {
	xs   []float64
	ys   []Value
	tree []node
}

// New builds a curve over the strictly increasing, non-empty sample
// positions xs and the positionally aligned values ys. Both slices are
// retained without copying; the caller must not mutate them while the curve
// is in use.
func New(xs []float64, ys []Value) (*Curve, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d positions, %d values", ErrLengthMismatch, len(xs), len(ys))
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs[%d]=%v, xs[%d]=%v", ErrNotIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}

	return &Curve{xs: xs, ys: ys, tree: buildTree(ys)}, nil
}

// MustNew is New for callers that treat invalid input as a programming
// error; it panics instead of returning the error.
func MustNew(xs []float64, ys []Value) *Curve {
	c, err := New(xs, ys)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of samples.
func (c *Curve) Len() int {
	return len(c.xs)
}

// Xs returns the sample positions. The slice is shared, not copied.
func (c *Curve) Xs() []float64 {
	return c.xs
}

// Ys returns the sample values. The slice is shared, not copied.
func (c *Curve) Ys() []Value {
	return c.ys
}

// Domain returns the first and last sample positions.
func (c *Curve) Domain() (float64, float64) {
	return c.xs[0], c.xs[len(c.xs)-1]
}

// MinMaxOver returns the extremes of the curve restricted to x in
// [xmin, xmax], treating the curve as piecewise-linear between consecutive
// present samples. The second return is false when no sampled or
// interpolated value falls in range; querying entirely outside the sample
// domain is a normal no-data outcome, not an error. Requires xmin <= xmax.
func (c *Curve) MinMaxOver(xmin, xmax float64) (MinMax, bool) {
	// First sample position >= xmin.
	loIdx := sort.SearchFloat64s(c.xs, xmin)
	if loIdx == len(c.xs) {
		return MinMax{}, false
	}

	// Last sample position <= xmax.
	hiIdx := sort.Search(len(c.xs), func(i int) bool { return c.xs[i] > xmax }) - 1
	if hiIdx < 0 {
		return MinMax{}, false
	}

	bounds, boundsOK := minMaxOf(c.interpolateBelow(loIdx, xmin), c.interpolateAbove(hiIdx, xmax))

	if hiIdx < loIdx {
		// No sample position inside [xmin, xmax]; only the interpolated
		// bounds contribute.
		return bounds, boundsOK
	}

	inner, innerOK := c.minMaxOverIndexRange(loIdx, hiIdx)

	return mergeMinMax(inner, innerOK, bounds, boundsOK)
}

// interpolateBelow estimates y at the lower query bound xmin when it falls
// strictly between samples loIdx-1 and loIdx and both carry values.
// Interpolation never reaches across a gap.
func (c *Curve) interpolateBelow(loIdx int, xmin float64) Value {
	if loIdx == 0 || c.xs[loIdx] <= xmin {
		return Gap()
	}

	y0, ok0 := c.ys[loIdx-1].Get()
	y1, ok1 := c.ys[loIdx].Get()

	if !ok0 || !ok1 || c.xs[loIdx-1] == c.xs[loIdx] {
		return Gap()
	}

	return Y(lerp(c.xs[loIdx-1], y0, c.xs[loIdx], y1, xmin))
}

// interpolateAbove estimates y at the upper query bound xmax when it falls
// strictly between samples hiIdx and hiIdx+1 and both carry values.
func (c *Curve) interpolateAbove(hiIdx int, xmax float64) Value {
	if hiIdx == len(c.xs)-1 || c.xs[hiIdx] == xmax || c.xs[hiIdx+1] <= xmax {
		return Gap()
	}

	y0, ok0 := c.ys[hiIdx].Get()
	y1, ok1 := c.ys[hiIdx+1].Get()

	if !ok0 || !ok1 || c.xs[hiIdx] == c.xs[hiIdx+1] {
		return Gap()
	}

	return Y(lerp(c.xs[hiIdx], y0, c.xs[hiIdx+1], y1, xmax))
}

// lerp linearly interpolates between (x0, y0) and (x1, y1) at x.
func lerp(x0, y0, x1, y1, x float64) float64 {
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}
