package geom

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// interval is the span of a single tile along one axis.
type interval struct {
	lo, hi float64
}

// Split partitions b into disjoint sub-boxes that together cover
// exactly the same region as b. Every marker that lies strictly
// inside b along an axis becomes a boundary between sub-boxes along
// that axis. In other words,
//
//	b, _ := geom.NewBox(geom.Pt(0, 0), geom.Sz(4, 2), geom.Sz(1, 1))
//	tiles, _ := b.Split(geom.Pt(1, 1))
//
// will produce
//
//	---------------
//	|   |         |
//	---------------
//	|   |         |
//	---------------
//
// All of the sub-boxes share the canvas of b. Markers must have the
// same number of dimensions as b.
func (b Box) Split(markers ...Point) ([]Box, error) {
	for _, m := range markers {
		if len(m) != b.dim {
			return nil, fmt.Errorf("marker %v for %v-dimensional box: %w", m, b.dim, ErrDimension)
		}
	}

	axes := b.intervals(slices.Values(markers))
	tiles := make([]Box, numTiles(axes))
	insertTilesFromSeq(tiles, b.tiled(axes))
	return tiles, nil
}

// Tiles is the same as [Box.Split] except that it yields the
// sub-boxes from an iterator. Markers with a different number of
// dimensions than b are ignored.
func (b Box) Tiles(markers ...Point) iter.Seq[Box] {
	valid := xiter.Filter(slices.Values(markers), func(m Point) bool {
		return len(m) == b.dim
	})
	return b.tiled(b.intervals(valid))
}

// intervals returns, for each axis, the consecutive spans between the
// bounds of b and every marker coordinate strictly inside them.
func (b Box) intervals(markers iter.Seq[Point]) [][]interval {
	lo, hi := b.Anchor(), b.Distant()

	cuts := make([][]float64, b.dim)
	for m := range markers {
		for i, c := range m {
			if (lo[i] < c) && (c < hi[i]) {
				cuts[i] = append(cuts[i], c)
			}
		}
	}

	axes := make([][]interval, b.dim)
	for i, inner := range cuts {
		slices.Sort(inner)
		inner = slices.Compact(inner)

		start := lo[i]
		axes[i] = make([]interval, 0, len(inner)+1)
		for _, c := range inner {
			axes[i] = append(axes[i], interval{lo: start, hi: c})
			start = c
		}
		axes[i] = append(axes[i], interval{lo: start, hi: hi[i]})
	}
	return axes
}

func numTiles(axes [][]interval) int {
	n := 1
	for _, a := range axes {
		n *= len(a)
	}
	return n
}

// tiled yields one sub-box for every combination of per-axis
// intervals. The last axis varies fastest.
func (b Box) tiled(axes [][]interval) iter.Seq[Box] {
	return func(yield func(Box) bool) {
		idx := make([]int, len(axes))
		for {
			anchor := make(Point, len(axes))
			distant := make(Point, len(axes))
			for i, j := range idx {
				anchor[i], distant[i] = axes[i][j].lo, axes[i][j].hi
			}
			if !yield(b.sub(anchor, distant)) {
				return
			}

			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(axes[i]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// sub returns a box spanning from anchor to distant over the canvas
// of b.
func (b Box) sub(anchor, distant Point) Box {
	r := Box{dim: b.dim, set: true, canvas: b.canvas}
	r.setAnchor(anchor)
	r.setSides(Size(distant.Sub(anchor)))
	return r
}

func insertTilesFromSeq(tiles []Box, s iter.Seq[Box]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
