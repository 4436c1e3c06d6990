// Package prop provides lazily evaluated values and the geometric
// transforms that can be composed over them.
//
// A [Property] is pull-based: nothing is computed until it is read,
// and nothing is cached once it has been. Every call to Get evaluates
// the property again, so nodes with side effects, such as an [Iter]
// advancing or a [RandomUniform] drawing, perform those effects once
// per read. Callers that need the same value more than once must keep
// the result of a single Get rather than reading the property again.
//
// Properties are not safe for concurrent use.
package prop

import (
	"errors"
	"iter"
	"slices"

	"deedles.dev/ece/geom"
	"golang.org/x/exp/rand"
)

var (
	// ErrShape indicates a Corners value whose number of points does
	// not match its number of dimensions.
	ErrShape = errors.New("malformed shape")

	// ErrNoPivot indicates a pivoting operation for which no pivot was
	// given either when it was built or when it was applied.
	ErrNoPivot = errors.New("no pivot")

	// ErrEmpty indicates a property with nothing to yield.
	ErrEmpty = errors.New("nothing to yield")

	// ErrDimension is the same as [geom.ErrDimension].
	ErrDimension = geom.ErrDimension
)

// Property is a lazily evaluated value.
type Property[T any] interface {
	// Get evaluates the property. It is called anew for every read and
	// may have side effects, so two calls can return different values.
	Get() (T, error)
}

// Constant is a Property that always yields the same value.
type Constant[T any] struct {
	v T
}

// Const returns a Constant yielding v.
func Const[T any](v T) Constant[T] {
	return Constant[T]{v: v}
}

func (c Constant[T]) Get() (T, error) { return c.v, nil }

// Source is a Property that calls a function on every read.
type Source[T any] struct {
	fn func() (T, error)
}

// NewSource returns a Source that yields the result of fn.
func NewSource[T any](fn func() (T, error)) *Source[T] {
	return &Source[T]{fn: fn}
}

// Func is like [NewSource] for functions that can not fail.
func Func[T any](fn func() T) *Source[T] {
	return NewSource(func() (T, error) { return fn(), nil })
}

func (s *Source[T]) Get() (T, error) { return s.fn() }

// Convert is a Property that applies a function to the value of
// another Property on every read.
type Convert[S, T any] struct {
	from Property[S]
	fn   func(S) (T, error)
}

// NewConvert returns a Convert yielding fn applied to the value of
// from.
func NewConvert[S, T any](from Property[S], fn func(S) (T, error)) *Convert[S, T] {
	return &Convert[S, T]{from: from, fn: fn}
}

func (c *Convert[S, T]) Get() (T, error) {
	v, err := c.from.Get()
	if err != nil {
		var zero T
		return zero, err
	}
	return c.fn(v)
}

// Iter is a Property that yields successive values of a sequence,
// one per read. When the sequence is exhausted it is started over
// from the beginning.
type Iter[T any] struct {
	items []T
	i     int

	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

// NewIter returns an Iter that cycles through items. It holds no
// resources, so it never needs to be stopped.
func NewIter[T any](items ...T) *Iter[T] {
	return &Iter[T]{items: slices.Clone(items)}
}

// NewIterSeq returns an Iter over seq. seq must be iterable more than
// once if it is finite. It may be infinite, in which case it is never
// restarted.
//
// Reads are driven by pulling from seq, so Stop must be called once
// the Iter is no longer needed.
func NewIterSeq[T any](seq iter.Seq[T]) *Iter[T] {
	return &Iter[T]{seq: seq}
}

func (it *Iter[T]) Get() (T, error) {
	if it.seq == nil {
		if len(it.items) == 0 {
			var zero T
			return zero, ErrEmpty
		}
		v := it.items[it.i%len(it.items)]
		it.i = (it.i + 1) % len(it.items)
		return v, nil
	}

	if it.next != nil {
		if v, ok := it.next(); ok {
			return v, nil
		}
		it.Stop()
	}

	it.next, it.stop = iter.Pull(it.seq)
	if v, ok := it.next(); ok {
		return v, nil
	}
	it.Stop()

	var zero T
	return zero, ErrEmpty
}

// Stop releases the resources held by the current pass over the
// underlying sequence. The next read starts from the beginning.
func (it *Iter[T]) Stop() {
	if it.stop != nil {
		it.stop()
	}
	it.next, it.stop = nil, nil
	it.i = 0
}

// RandomUniform is a Property that draws a value uniformly from
// [Low, High) on every read.
type RandomUniform struct {
	Low, High float64

	// Rand, if not nil, is used for drawing instead of the top-level
	// generator of golang.org/x/exp/rand.
	Rand *rand.Rand
}

// NewRandomUniform returns a RandomUniform over [low, high).
func NewRandomUniform(low, high float64) *RandomUniform {
	return &RandomUniform{Low: low, High: high}
}

func (u *RandomUniform) Get() (float64, error) {
	f := rand.Float64
	if u.Rand != nil {
		f = u.Rand.Float64
	}
	return u.Low + (u.High-u.Low)*f(), nil
}

// RandomChoice is a Property that picks one of a fixed set of items at
// random on every read.
type RandomChoice[T any] struct {
	items []T

	// Rand, if not nil, is used for drawing instead of the top-level
	// generator of golang.org/x/exp/rand.
	Rand *rand.Rand
}

// NewRandomChoice returns a RandomChoice over items.
func NewRandomChoice[T any](items ...T) *RandomChoice[T] {
	return &RandomChoice[T]{items: slices.Clone(items)}
}

func (c *RandomChoice[T]) Get() (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	intn := rand.Intn
	if c.Rand != nil {
		intn = c.Rand.Intn
	}
	return c.items[intn(len(c.items))], nil
}
