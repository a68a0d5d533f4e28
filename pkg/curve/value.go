package curve

import "math"

// Value is an optional sample value. The zero Value is a gap.
type Value struct {
	y  float64
	ok bool
}

// Y wraps a present sample value.
func Y(y float64) Value {
	return Value{y: y, ok: true}
}

// Gap returns the absent sample value.
func Gap() Value {
	return Value{}
}

// Get returns the sample value and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.y, v.ok
}

// IsGap reports whether the value is absent.
func (v Value) IsGap() bool {
	return !v.ok
}

// MinMax is an inclusive pair of extremes.
type MinMax struct {
	Min float64
	Max float64
}

// minMaxOf builds the extremes of up to two optional values.
// Both absent merges to absent.
func minMaxOf(a, b Value) (MinMax, bool) {
	switch {
	case a.ok && b.ok:
		return MinMax{Min: math.Min(a.y, b.y), Max: math.Max(a.y, b.y)}, true
	case a.ok:
		return MinMax{Min: a.y, Max: a.y}, true
	case b.ok:
		return MinMax{Min: b.y, Max: b.y}, true
	default:
		return MinMax{}, false
	}
}

// mergeMinMax combines two optional extreme pairs. Gaps are transparent to
// the aggregation: an absent operand leaves the other unchanged, and two
// absent operands merge to absent.
func mergeMinMax(a MinMax, aok bool, b MinMax, bok bool) (MinMax, bool) {
	mn, ok := pickExtreme(a.Min, aok, b.Min, bok, math.Min)
	if !ok {
		return MinMax{}, false
	}

	mx, _ := pickExtreme(a.Max, aok, b.Max, bok, math.Max)

	return MinMax{Min: mn, Max: mx}, true
}

// pickExtreme applies pick to whichever operands are present.
func pickExtreme(a float64, aok bool, b float64, bok bool, pick func(float64, float64) float64) (float64, bool) {
	switch {
	case aok && bok:
		return pick(a, b), true
	case aok:
		return a, true
	case bok:
		return b, true
	default:
		return 0, false
	}
}
