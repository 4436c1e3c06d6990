package prop

import (
	"fmt"
	"slices"

	"deedles.dev/ece/geom"
	"gonum.org/v1/gonum/floats"
)

// Cloud is the value of a PointCloud, one row per point.
type Cloud []geom.Point

// Dim returns the number of dimensions of the points in c.
func (c Cloud) Dim() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Centroid returns the mean of the points in c. The centroid of an
// empty cloud is an empty point.
func (c Cloud) Centroid() geom.Point {
	sum := make(geom.Point, c.Dim())
	if len(c) == 0 {
		return sum
	}

	for _, p := range c {
		floats.Add(sum, p)
	}
	for i := range sum {
		sum[i] /= float64(len(c))
	}
	return sum
}

// PointCloud is a Property yielding the values of a sequence of
// Points.
type PointCloud struct {
	points []*Point
}

// NewPointCloud returns a PointCloud of points.
func NewPointCloud(points ...*Point) *PointCloud {
	return &PointCloud{points: slices.Clone(points)}
}

// PointCloudOf returns a PointCloud whose points are the constants
// rows.
func PointCloudOf(rows ...geom.Point) *PointCloud {
	points := make([]*Point, len(rows))
	for i, row := range rows {
		points[i] = AsPoint(row)
	}
	return &PointCloud{points: points}
}

// Len returns the number of points in c.
func (c *PointCloud) Len() int { return len(c.points) }

// Points returns the points of c.
func (c *PointCloud) Points() []*Point { return slices.Clone(c.points) }

// Get evaluates every point of c in order. All of them must have the
// same number of dimensions.
func (c *PointCloud) Get() (Cloud, error) {
	v := make(Cloud, len(c.points))
	for i, p := range c.points {
		row, err := p.Get()
		if err != nil {
			return nil, fmt.Errorf("point %v: %w", i, err)
		}
		if (i > 0) && (len(row) != len(v[0])) {
			return nil, fmt.Errorf("point %v has %v dimensions, point 0 has %v: %w", i, len(row), len(v[0]), ErrDimension)
		}
		v[i] = row
	}
	return v, nil
}

// Transform applies op to every point of c, returning a new
// PointCloud holding the results. c is evaluated exactly once. If op
// pivots and was built without a pivot, it pivots about the centroid
// of that evaluation.
func (c *PointCloud) Transform(op Operation) (*PointCloud, error) {
	return c.TransformAbout(op, nil)
}

// TransformAbout is like Transform but pivots op about pivot. A nil
// pivot is the same as calling Transform.
func (c *PointCloud) TransformAbout(op Operation, pivot geom.Point) (*PointCloud, error) {
	v, err := c.Get()
	if err != nil {
		return nil, err
	}
	return transformCloud(v, op, pivot)
}

func transformCloud(v Cloud, op Operation, pivot geom.Point) (*PointCloud, error) {
	if pivot == nil {
		if p, ok := op.(Pivoting); ok && (p.Pivot() == nil) {
			pivot = v.Centroid()
		}
	}

	m, err := op.Bind(pivot)
	if err != nil {
		return nil, err
	}

	rows := make([]geom.Point, len(v))
	for i, row := range v {
		rows[i], err = m(row)
		if err != nil {
			return nil, fmt.Errorf("point %v: %w", i, err)
		}
	}
	return PointCloudOf(rows...), nil
}
