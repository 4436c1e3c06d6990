package prop

import (
	"fmt"
	"slices"

	"deedles.dev/ece/geom"
)

// Point is a Property yielding a [geom.Point]. Each of its axes is a
// separate Property that is evaluated whenever the Point is.
type Point struct {
	axes []Property[float64]
}

// NewPoint returns a Point with the given axes.
func NewPoint(axes ...Property[float64]) *Point {
	return &Point{axes: slices.Clone(axes)}
}

// PointOf returns a Point whose axes are the constants coords.
func PointOf(coords ...float64) *Point {
	axes := make([]Property[float64], len(coords))
	for i, c := range coords {
		axes[i] = Const(c)
	}
	return &Point{axes: axes}
}

// AsPoint returns a Point that always yields a copy of p.
func AsPoint(p geom.Point) *Point {
	return PointOf(p...)
}

// Len returns the number of axes of p.
func (p *Point) Len() int { return len(p.axes) }

// Axis returns the Property for axis i.
func (p *Point) Axis(i int) Property[float64] { return p.axes[i] }

// Get evaluates every axis of p in order.
func (p *Point) Get() (geom.Point, error) {
	v := make(geom.Point, len(p.axes))
	for i, axis := range p.axes {
		c, err := axis.Get()
		if err != nil {
			return nil, fmt.Errorf("axis %v: %w", i, err)
		}
		v[i] = c
	}
	return v, nil
}

// Transform applies op to p, returning a new Point holding the
// result. A pivoting op must have been built with a pivot.
func (p *Point) Transform(op Operation) (*Point, error) {
	return p.TransformAbout(op, nil)
}

// TransformAbout is like Transform but pivots op about pivot instead
// of about whatever pivot op was built with. A nil pivot is the same
// as calling Transform.
func (p *Point) TransformAbout(op Operation, pivot geom.Point) (*Point, error) {
	m, err := op.Bind(pivot)
	if err != nil {
		return nil, err
	}

	v, err := p.Get()
	if err != nil {
		return nil, err
	}

	r, err := m(v)
	if err != nil {
		return nil, err
	}
	return AsPoint(r), nil
}
