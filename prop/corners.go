package prop

import (
	"fmt"

	"deedles.dev/ece/geom"
)

// Corners is a PointCloud that holds the vertices of an axis-aligned
// hyperrectangle: exactly 2^d points of d dimensions each. The count
// is checked every time the Corners is evaluated.
type Corners struct {
	PointCloud
}

// NewCorners returns Corners made of points.
func NewCorners(points ...*Point) *Corners {
	return &Corners{PointCloud: *NewPointCloud(points...)}
}

// CornersOf returns Corners whose points are the constants rows.
func CornersOf(rows ...geom.Point) *Corners {
	return &Corners{PointCloud: *PointCloudOf(rows...)}
}

// Product returns the corners of the hyperrectangle with one vertex
// at the origin and the opposite vertex at shape. Along each axis a
// corner is either 0 or the corresponding extent of shape. The first
// corner is the origin, the last is shape, and the last axis varies
// fastest in between. In other words,
//
//	prop.Product(1, 2)
//
// yields
//
//	[0 0] [0 2] [1 0] [1 2]
func Product[T geom.Scalar](shape ...T) *Corners {
	hi := geom.Pt(shape...)
	return CornersOf(vertices(make(geom.Point, len(hi)), hi)...)
}

// BoxCorners returns the corners of b in the coordinates of its
// canvas. The first corner is the anchor of b and the last is its
// distant corner.
func BoxCorners(b geom.Box) *Corners {
	return CornersOf(vertices(b.Anchor(), b.Distant())...)
}

// vertices returns every combination of picking each axis from either
// lo or hi, choosing lo for the combination's bit being 0. The first
// axis is the most significant bit.
func vertices(lo, hi geom.Point) []geom.Point {
	d := len(lo)
	rows := make([]geom.Point, 1<<d)
	for i := range rows {
		row := make(geom.Point, d)
		for k := range row {
			row[k] = lo[k]
			if i&(1<<(d-1-k)) != 0 {
				row[k] = hi[k]
			}
		}
		rows[i] = row
	}
	return rows
}

// Get evaluates c and checks that it holds exactly 2^d points of d
// dimensions.
func (c *Corners) Get() (Cloud, error) {
	v, err := c.PointCloud.Get()
	if err != nil {
		return nil, err
	}

	n, d := len(v), v.Dim()
	if (d >= 62) || (n != 1<<d) {
		return nil, fmt.Errorf("%v corners of %v dimensions: %w", n, d, ErrShape)
	}
	return v, nil
}

// Transform is the same as [PointCloud.Transform] except that c is
// validated before op is applied. The result is a plain PointCloud.
func (c *Corners) Transform(op Operation) (*PointCloud, error) {
	return c.TransformAbout(op, nil)
}

// TransformAbout is the same as [PointCloud.TransformAbout] except
// that c is validated before op is applied.
func (c *Corners) TransformAbout(op Operation, pivot geom.Point) (*PointCloud, error) {
	v, err := c.Get()
	if err != nil {
		return nil, err
	}
	return transformCloud(v, op, pivot)
}

// Dim returns the number of axes of the points of c without
// evaluating them.
func (c *Corners) Dim() int {
	if len(c.points) == 0 {
		return 0
	}
	return c.points[0].Len()
}

// Centre evaluates c and returns the mean of its corners.
func (c *Corners) Centre() (geom.Point, error) {
	v, err := c.Get()
	if err != nil {
		return nil, err
	}
	return v.Centroid(), nil
}

// Copy returns a Corners sharing the points of c.
func (c *Corners) Copy() *Corners {
	return NewCorners(c.points...)
}
