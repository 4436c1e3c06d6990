package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotation is a rotation in either two or three dimensions.
type Rotation struct {
	m *mat.Dense
}

// NewRotation returns the rotation described by angle. See
// [RotationMatrix] for details.
func NewRotation(angle ...float64) (Rotation, error) {
	m, err := RotationMatrix(angle...)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{m: m}, nil
}

// RotationMatrix builds a rotation matrix from angles in radians. A
// single angle produces a planar 2x2 rotation. Three angles produce
// the 3x3 matrix Rx(angle[0]) * Ry(angle[1]) * Rz(angle[2]). Any other
// number of angles is an error.
func RotationMatrix(angle ...float64) (*mat.Dense, error) {
	switch len(angle) {
	case 1:
		return rotationMatrix2D(angle[0]), nil
	case 3:
		return rotationMatrix3D(angle[0], angle[1], angle[2]), nil
	default:
		return nil, fmt.Errorf("%v angles: %w", len(angle), ErrAngleArity)
	}
}

func rotationMatrix2D(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(2, 2, []float64{
		cos, -sin,
		sin, cos,
	})
}

func rotationMatrix3D(ax, ay, az float64) *mat.Dense {
	sinx, cosx := math.Sincos(ax)
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cosx, -sinx,
		0, sinx, cosx,
	})

	siny, cosy := math.Sincos(ay)
	ry := mat.NewDense(3, 3, []float64{
		cosy, 0, siny,
		0, 1, 0,
		-siny, 0, cosy,
	})

	sinz, cosz := math.Sincos(az)
	rz := mat.NewDense(3, 3, []float64{
		cosz, -sinz, 0,
		sinz, cosz, 0,
		0, 0, 1,
	})

	var xy, xyz mat.Dense
	xy.Mul(rx, ry)
	xyz.Mul(&xy, rz)
	return &xyz
}

// Dim returns the number of dimensions that r rotates in.
func (r Rotation) Dim() int {
	if r.m == nil {
		return 0
	}
	n, _ := r.m.Dims()
	return n
}

// About rotates p around pivot.
func (r Rotation) About(pivot, p Point) (Point, error) {
	if len(pivot) != len(p) {
		return nil, fmt.Errorf("pivot %v, point %v: %w", pivot, p, ErrDimension)
	}
	if len(p) != r.Dim() {
		return nil, fmt.Errorf("%v-dimensional point for %v-dimensional rotation: %w", len(p), r.Dim(), ErrDimension)
	}

	d := p.Sub(pivot)
	var v mat.VecDense
	v.MulVec(r.m, mat.NewVecDense(len(d), d))
	return Point(v.RawVector().Data).Add(pivot), nil
}

// Rotate rotates p around pivot by angle. pivot and p must have the
// same number of dimensions, which must in turn agree with the number
// of angles given: one for two dimensions and three for three.
func Rotate(pivot, p Point, angle ...float64) (Point, error) {
	if len(pivot) != len(p) {
		return nil, fmt.Errorf("pivot %v, point %v: %w", pivot, p, ErrDimension)
	}

	r, err := NewRotation(angle...)
	if err != nil {
		return nil, err
	}
	return r.About(pivot, p)
}
