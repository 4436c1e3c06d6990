// Package geom provides exact arithmetic over axis-aligned boxes.
//
// Boxes are stored normalized against a canvas so that the same
// relative region can be reinterpreted at a different scale. Areas of
// unions and intersections of boxes are computed exactly by refining
// every box to a shared grid of boundaries rather than by clipping
// polygons.
package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that the generic constructors
// in this package can convert to coordinates. Defined types whose
// underlying type is a built-in integer or floating-point type are
// accepted too.
type Scalar interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrDimension indicates that two vectors that must agree in
	// length do not.
	ErrDimension = errors.New("dimension mismatch")

	// ErrCanvas indicates that boxes that must share a canvas do not,
	// or that a canvas can not be used for normalization.
	ErrCanvas = errors.New("canvas mismatch")

	// ErrAngleArity indicates that a rotation was requested with an
	// angle that has neither one nor three components.
	ErrAngleArity = errors.New("dimension must be 2 or 3")
)
