package geom

import (
	"fmt"
	"slices"
)

// Box is an axis-aligned region spanning Sides from Anchor, stored
// normalized against a canvas.
//
// The dimensionality of a Box is fixed by the first canvas assigned
// to it. Until they are set, the anchor is the origin and the sides
// are zero. Its anchor and sides are kept divided by the canvas extents,
// so replacing the canvas rescales the region without changing its
// relative geometry. Stored sides are never negative; see [Canon].
//
// Two boxes are Equal if their normalized anchors and sides are
// bit-identical. The canvas itself is not part of a box's identity.
type Box struct {
	dim    int
	set    bool
	canvas Size
	anchor Point
	sides  Size
}

// NewBox returns a Box spanning sides from anchor over canvas. A
// negative extent in sides extends the box backwards from anchor
// along that axis.
func NewBox(anchor Point, sides, canvas Size) (Box, error) {
	var b Box
	if err := b.SetCanvas(canvas); err != nil {
		return Box{}, err
	}
	if err := b.SetAnchor(anchor); err != nil {
		return Box{}, err
	}
	if err := b.SetSides(sides); err != nil {
		return Box{}, err
	}
	return b, nil
}

// Canon returns anchor and sides in canonical form: every negative
// extent is folded into the anchor so that all of the returned sides
// are non-negative and span the same region. The arguments are not
// modified.
func Canon(anchor Point, sides Size) (Point, Size) {
	anchor, sides = slices.Clone(anchor), slices.Clone(sides)
	for i, s := range sides {
		if s < 0 {
			anchor[i] += s
			sides[i] = -s
		}
	}
	return anchor, sides
}

// Dim returns the number of dimensions of b.
func (b Box) Dim() int { return b.dim }

// Canvas returns the canvas that b is normalized against.
func (b Box) Canvas() Size { return slices.Clone(b.canvas) }

// SetCanvas replaces the canvas of b. The normalized geometry of b is
// kept, so its anchor and sides scale with the new canvas.
func (b *Box) SetCanvas(canvas Size) error {
	if b.set && (len(canvas) != b.dim) {
		return fmt.Errorf("canvas %v for %v-dimensional box: %w", canvas, b.dim, ErrDimension)
	}
	if slices.Contains(canvas, 0) {
		return fmt.Errorf("canvas %v has a zero extent: %w", canvas, ErrCanvas)
	}

	b.dim, b.set = len(canvas), true
	b.canvas = slices.Clone(canvas)
	if len(b.anchor) != b.dim {
		b.anchor = make(Point, b.dim)
	}
	if len(b.sides) != b.dim {
		b.sides = make(Size, b.dim)
	}
	return nil
}

// Anchor returns the corner of b from which its sides extend.
func (b Box) Anchor() Point {
	return b.anchor.Mul(Point(b.canvas))
}

// SetAnchor moves b so that it extends from anchor.
func (b *Box) SetAnchor(anchor Point) error {
	if len(anchor) != b.dim {
		return fmt.Errorf("anchor %v for %v-dimensional box: %w", anchor, b.dim, ErrDimension)
	}
	b.setAnchor(anchor)
	return nil
}

func (b *Box) setAnchor(anchor Point) {
	b.anchor = anchor.Div(Point(b.canvas))
}

// Sides returns the extents of b. They are never negative.
func (b Box) Sides() Size {
	return Size(Point(b.sides).Mul(Point(b.canvas)))
}

// SetSides resizes b, keeping it in canonical form. Any negative
// extent in sides moves the anchor of b backwards along that axis.
func (b *Box) SetSides(sides Size) error {
	if len(sides) != b.dim {
		return fmt.Errorf("sides %v for %v-dimensional box: %w", sides, b.dim, ErrDimension)
	}
	b.setSides(sides)
	return nil
}

func (b *Box) setSides(sides Size) {
	anchor, canon := Canon(b.Anchor(), sides)

	moved := slices.Clone(b.anchor)
	for i, s := range sides {
		if s < 0 {
			moved[i] = anchor[i] / b.canvas[i]
		}
	}

	b.anchor = moved
	b.sides = Size(Point(canon).Div(Point(b.canvas)))
}

// Distant returns the corner of b opposite its anchor.
func (b Box) Distant() Point {
	return b.Anchor().Add(Point(b.Sides()))
}

// Centre returns the midpoint of b.
func (b Box) Centre() Point {
	return b.Anchor().Add(b.Distant()).Scale(0.5)
}

// Area returns the product of the sides of b.
func (b Box) Area() float64 {
	return b.Sides().Product()
}

// Contains reports whether p lies strictly inside b. Points on the
// boundary of b are not contained by it, and neither is a point with
// a different number of dimensions.
func (b Box) Contains(p Point) bool {
	if len(p) != b.dim {
		return false
	}

	lo, hi := b.Anchor(), b.Distant()
	for i, c := range p {
		if !((lo[i] < c) && (c < hi[i])) {
			return false
		}
	}
	return true
}

// Equal reports whether b and other cover the same normalized region
// bit for bit.
func (b Box) Equal(other Box) bool {
	return b.anchor.Equal(other.anchor) && b.sides.Equal(other.sides)
}

// Key returns a string that is identical for two boxes if and only if
// they are Equal.
func (b Box) Key() string {
	buf := appendBits(nil, b.anchor)
	return string(appendBits(buf, b.sides))
}

func (b Box) String() string {
	return fmt.Sprintf("Box[%v+>%v]", format(b.Anchor()), format(b.Sides()))
}
