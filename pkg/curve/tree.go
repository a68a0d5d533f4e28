package curve

import "math/bits"

// node is one entry of the flat complete binary tree. The node at array
// index i has its children at 2i+1 and 2i+2. Every node records the
// inclusive dyadic index range [lo, hi] it covers, so queries can recognize
// exact matches without recomputation.
//
// With 8 samples (k = 3) the layout is:
//
//	layer 0, index 0:     (0,7)
//	layer 1, indices 1-2: (0,3), (4,7)
//	layer 2, indices 3-6: (0,1), (2,3), (4,5), (6,7)
//
// Each layer starts at 2^layer - 1 and holds 2^layer nodes; the lowest
// layer pairs up adjacent samples.
type node struct {
	lo, hi int
	mm     MinMax
	ok     bool
}

// ceilLog2 returns ⌈log2(n)⌉ for n ≥ 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// buildTree precomputes the extremes of every dyadic index range of ys.
// The root covers [0, 2^k-1] where k = ⌈log2(len(ys))⌉; dyadic indices past
// the last sample read as gaps. Returns nil for a single sample, which
// needs no tree.
func buildTree(ys []Value) []node {
	k := ceilLog2(len(ys))
	if k == 0 {
		return nil
	}

	tree := make([]node, (1<<k)-1)

	// The lowest layer depends directly on ys: each leaf covers a pair of
	// adjacent dyadic indices.
	layerStart := (1 << (k - 1)) - 1

	lo := 0
	for i := layerStart; i < layerStart+(1<<(k-1)); i++ {
		n := &tree[i]
		n.lo = lo
		n.hi = lo + 1
		n.mm, n.ok = minMaxOf(valueAt(ys, n.lo), valueAt(ys, n.hi))
		lo = n.hi + 1
	}

	// Higher layers combine their two children.
	for layer := k - 2; layer >= 0; layer-- {
		layerStart := (1 << layer) - 1
		span := 1 << (k - layer)

		lo := 0
		for i := layerStart; i < layerStart+(1<<layer); i++ {
			n := &tree[i]
			n.lo = lo
			n.hi = lo + span - 1
			lo = n.hi + 1

			c1, c2 := &tree[2*i+1], &tree[2*i+2]
			n.mm, n.ok = mergeMinMax(c1.mm, c1.ok, c2.mm, c2.ok)
		}
	}

	return tree
}

// valueAt reads ys at a dyadic index, treating indices past the end as gaps.
func valueAt(ys []Value, i int) Value {
	if i >= len(ys) {
		return Value{}
	}

	return ys[i]
}

// queryIndexRange returns the extremes of present values at sample indices
// [lo, hi], descending from the node at idx. The range splits at most once
// per layer, so the visit count is O(log n).
func (c *Curve) queryIndexRange(lo, hi, idx int) (MinMax, bool) {
	n := &c.tree[idx]

	if n.lo == lo && n.hi == hi {
		return n.mm, n.ok
	}

	if lo == hi {
		return c.minMaxAt(lo)
	}

	c1Idx, c2Idx := 2*idx+1, 2*idx+2
	c1, c2 := &c.tree[c1Idx], &c.tree[c2Idx]

	switch {
	case lo >= c1.lo && hi <= c1.hi:
		return c.queryIndexRange(lo, hi, c1Idx)
	case lo >= c2.lo && hi <= c2.hi:
		return c.queryIndexRange(lo, hi, c2Idx)
	default:
		// The range straddles both children.
		amm, aok := c.queryIndexRange(lo, c1.hi, c1Idx)
		bmm, bok := c.queryIndexRange(c2.lo, hi, c2Idx)

		return mergeMinMax(amm, aok, bmm, bok)
	}
}

// minMaxOverIndexRange answers a [lo, hi] index-range query, covering the
// treeless single-sample curve.
func (c *Curve) minMaxOverIndexRange(lo, hi int) (MinMax, bool) {
	if len(c.tree) == 0 {
		return c.minMaxAt(lo)
	}

	return c.queryIndexRange(lo, hi, 0)
}

// minMaxAt returns the degenerate extremes of the single sample at i.
func (c *Curve) minMaxAt(i int) (MinMax, bool) {
	y, ok := c.ys[i].Get()
	if !ok {
		return MinMax{}, false
	}

	return MinMax{Min: y, Max: y}, true
}
