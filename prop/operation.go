package prop

import (
	"fmt"
	"math"
	"slices"

	"deedles.dev/ece/geom"
)

// Mapping maps a single materialized point to its transformed
// position.
type Mapping func(geom.Point) (geom.Point, error)

// Operation is a parametrized geometric transform. Operations hold no
// state of their own between applications; their parameters are
// Properties that are evaluated each time the operation is bound.
type Operation interface {
	// Bind evaluates the parameters of the operation once and returns
	// the resulting mapping. If pivot is not nil it takes precedence
	// over any pivot that the operation was built with. Operations
	// that do not pivot ignore it.
	Bind(pivot geom.Point) (Mapping, error)
}

// Pivoting is implemented by operations that transform about a pivot.
type Pivoting interface {
	Operation

	// Pivot returns the pivot that the operation was built with, or
	// nil if there is none.
	Pivot() *Point
}

func resolvePivot(pivot geom.Point, bound *Point) (geom.Point, error) {
	switch {
	case pivot != nil:
		return pivot, nil
	case bound != nil:
		p, err := bound.Get()
		if err != nil {
			return nil, fmt.Errorf("pivot: %w", err)
		}
		return p, nil
	default:
		return nil, ErrNoPivot
	}
}

// Shift translates points by a vector.
type Shift struct {
	shift *Point
}

// NewShift returns a Shift by shift.
func NewShift(shift *Point) *Shift {
	return &Shift{shift: shift}
}

func (s *Shift) Bind(geom.Point) (Mapping, error) {
	shift, err := s.shift.Get()
	if err != nil {
		return nil, fmt.Errorf("shift: %w", err)
	}

	return func(p geom.Point) (geom.Point, error) {
		if len(p) != len(shift) {
			return nil, fmt.Errorf("shift %v of %v: %w", shift, p, ErrDimension)
		}
		return p.Add(shift), nil
	}, nil
}

// Rotate rotates points about a pivot. Its angle has a single
// component for planar rotation or three for rotation in space. See
// [geom.RotationMatrix].
type Rotate struct {
	angle *Point
	pivot *Point
}

// NewRotate returns a Rotate by angle about pivot. pivot may be nil,
// in which case one must be supplied when the operation is applied.
func NewRotate(angle *Point, pivot *Point) *Rotate {
	return &Rotate{angle: angle, pivot: pivot}
}

func (r *Rotate) Pivot() *Point { return r.pivot }

func (r *Rotate) Bind(pivot geom.Point) (Mapping, error) {
	angle, err := r.angle.Get()
	if err != nil {
		return nil, fmt.Errorf("angle: %w", err)
	}
	for i, a := range angle {
		angle[i] = turn(a)
	}

	pivot, err = resolvePivot(pivot, r.pivot)
	if err != nil {
		return nil, err
	}

	rot, err := geom.NewRotation(angle...)
	if err != nil {
		return nil, err
	}

	return func(p geom.Point) (geom.Point, error) {
		return rot.About(pivot, p)
	}, nil
}

// turn reduces a to [0, 2π).
func turn(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Inflate scales points away from or towards a pivot.
type Inflate struct {
	factor Property[float64]
	pivot  *Point
}

// NewInflate returns an Inflate by factor about pivot. pivot may be
// nil, in which case one must be supplied when the operation is
// applied.
func NewInflate(factor Property[float64], pivot *Point) *Inflate {
	return &Inflate{factor: factor, pivot: pivot}
}

func (f *Inflate) Pivot() *Point { return f.pivot }

func (f *Inflate) Bind(pivot geom.Point) (Mapping, error) {
	factor, err := f.factor.Get()
	if err != nil {
		return nil, fmt.Errorf("factor: %w", err)
	}

	pivot, err = resolvePivot(pivot, f.pivot)
	if err != nil {
		return nil, err
	}

	return func(p geom.Point) (geom.Point, error) {
		if len(p) != len(pivot) {
			return nil, fmt.Errorf("pivot %v, point %v: %w", pivot, p, ErrDimension)
		}
		return pivot.Add(p.Sub(pivot).Scale(factor)), nil
	}, nil
}

// Transformable is implemented by values that operations can be
// applied to. Transform returns a new value and leaves the receiver
// untouched.
//
// *Corners does not satisfy Transformable[*Corners], as its Transform
// returns a *PointCloud. Use Corners.Transform directly, or hand
// &c.PointCloud to Apply or Transformer.PointCloud.
type Transformable[T any] interface {
	Transform(Operation) (T, error)
}

// Transformer applies a fixed sequence of operations in order. Every
// application evaluates the parameters of every operation afresh.
type Transformer struct {
	ops []Operation
}

// NewTransformer returns a Transformer that applies ops in the order
// given.
func NewTransformer(ops ...Operation) *Transformer {
	return &Transformer{ops: slices.Clone(ops)}
}

// Operations returns the operations of t in order.
func (t *Transformer) Operations() []Operation {
	return slices.Clone(t.ops)
}

// Point applies t to p.
func (t *Transformer) Point(p *Point) (*Point, error) {
	return Apply(t, p)
}

// PointCloud applies t to c.
func (t *Transformer) PointCloud(c *PointCloud) (*PointCloud, error) {
	return Apply(t, c)
}

// Apply applies every operation of t to v in turn, passing the result
// of each to the next.
func Apply[T Transformable[T]](t *Transformer, v T) (T, error) {
	for i, op := range t.ops {
		r, err := v.Transform(op)
		if err != nil {
			return r, fmt.Errorf("operation %v: %w", i, err)
		}
		v = r
	}
	return v, nil
}
