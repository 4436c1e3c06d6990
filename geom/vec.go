package geom

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is a position in an arbitrary number of dimensions.
//
// The arithmetic methods operate elementwise and always return a new
// Point. They panic if the lengths of the operands differ.
type Point []float64

// Pt is shorthand for building a Point from any numeric type.
func Pt[T Scalar](coords ...T) Point {
	p := make(Point, len(coords))
	for i, c := range coords {
		p[i] = float64(c)
	}
	return p
}

// Len returns the number of dimensions of p.
func (p Point) Len() int { return len(p) }

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return floats.AddTo(make(Point, len(p)), p, q)
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return floats.SubTo(make(Point, len(p)), p, q)
}

// Mul returns the elementwise product of p and q.
func (p Point) Mul(q Point) Point {
	return floats.MulTo(make(Point, len(p)), p, q)
}

// Div returns the elementwise quotient of p and q.
func (p Point) Div(q Point) Point {
	return floats.DivTo(make(Point, len(p)), p, q)
}

// Scale returns p with every coordinate multiplied by s.
func (p Point) Scale(s float64) Point {
	return floats.ScaleTo(make(Point, len(p)), s, p)
}

// Equal reports whether p and q hold bit-identical coordinates.
func (p Point) Equal(q Point) bool {
	return bitsEqual(p, q)
}

// Key returns a string that is identical for two points if and only
// if they are Equal. It is suitable for use as a map key.
func (p Point) Key() string {
	return string(appendBits(nil, p))
}

func (p Point) String() string {
	return "Point" + format(p)
}

// Size is a set of extents, one per dimension.
type Size []float64

// Sz is shorthand for building a Size from any numeric type.
func Sz[T Scalar](sides ...T) Size {
	return Size(Pt(sides...))
}

// Len returns the number of dimensions of s.
func (s Size) Len() int { return len(s) }

// Product returns the product of all extents of s. The product of a
// zero-dimensional Size is 1.
func (s Size) Product() float64 {
	return floats.Prod(s)
}

// Equal reports whether s and other hold bit-identical extents.
func (s Size) Equal(other Size) bool {
	return bitsEqual(s, other)
}

// Key returns a string that is identical for two sizes if and only if
// they are Equal.
func (s Size) Key() string {
	return string(appendBits(nil, s))
}

func (s Size) String() string {
	return "Size" + format(s)
}

func bitsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}

func appendBits(buf []byte, v []float64) []byte {
	for _, c := range v {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c))
	}
	return buf
}

func format(v []float64) string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, c := range v {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, c)
	}
	buf.WriteByte(']')
	return buf.String()
}
