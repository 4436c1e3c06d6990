package prop_test

import (
	"testing"

	"deedles.dev/ece/geom"
	"deedles.dev/ece/prop"
	"github.com/stretchr/testify/require"
)

func TestProduct(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
	}{
		{name: "2D", shape: []int{1, 2}},
		{name: "3D", shape: []int{1, 2, 3}},
		{name: "4D", shape: []int{1, 2, 3, 4}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := prop.Product(test.shape...).Get()
			require.NoError(t, err)
			require.Len(t, v, 1<<len(test.shape))

			var sum, total float64
			values := make(map[float64]struct{})
			for _, row := range v {
				require.Len(t, row, len(test.shape))
				for _, c := range row {
					sum += c
					values[c] = struct{}{}
				}
			}
			for _, s := range test.shape {
				total += float64(s)
			}
			require.InDelta(t, total/float64(len(test.shape))/2, sum/float64(len(v)*len(test.shape)), 1e-12)

			require.Equal(t, make(geom.Point, len(test.shape)), v[0])
			require.Equal(t, geom.Pt(test.shape...), v[len(v)-1])

			expected := map[float64]struct{}{0: {}}
			for _, s := range test.shape {
				expected[float64(s)] = struct{}{}
			}
			require.Equal(t, expected, values)
		})
	}
}

func TestProductRows(t *testing.T) {
	v, err := prop.Product(1, 2).Get()
	require.NoError(t, err)
	require.Equal(t, prop.Cloud{
		geom.Pt(0, 0),
		geom.Pt(0, 2),
		geom.Pt(1, 0),
		geom.Pt(1, 2),
	}, v)
}

func TestCornersShape(t *testing.T) {
	rows := func(n, d int) []geom.Point {
		r := make([]geom.Point, n)
		for i := range r {
			r[i] = make(geom.Point, d)
		}
		return r
	}

	tests := []struct {
		name string
		n, d int
		ok   bool
	}{
		{name: "0D", n: 1, d: 0, ok: true},
		{name: "Empty", n: 0, d: 0},
		{name: "1x1", n: 1, d: 1},
		{name: "3x2", n: 3, d: 2},
		{name: "4x2", n: 4, d: 2, ok: true},
		{name: "8x2", n: 8, d: 2},
		{name: "8x3", n: 8, d: 3, ok: true},
		{name: "16x4", n: 16, d: 4, ok: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := prop.CornersOf(rows(test.n, test.d)...).Get()
			if !test.ok {
				require.ErrorIs(t, err, prop.ErrShape)
				return
			}
			require.NoError(t, err)
			require.Len(t, v, test.n)
			require.Equal(t, test.d, v.Dim())
		})
	}
}

func TestCornersValidatedOnTransform(t *testing.T) {
	c := prop.CornersOf(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2))
	_, err := c.Transform(prop.NewShift(prop.PointOf(1, 1)))
	require.ErrorIs(t, err, prop.ErrShape)
}

func TestCornersTransform(t *testing.T) {
	c := prop.Product(2, 2)
	require.Equal(t, 2, c.Dim())

	centre, err := c.Centre()
	require.NoError(t, err)
	require.Equal(t, geom.Pt(1, 1), centre)

	r, err := c.Transform(prop.NewInflate(prop.Const(2.0), nil))
	require.NoError(t, err)
	v, err := r.Get()
	require.NoError(t, err)
	require.Equal(t, prop.Cloud{
		geom.Pt(-1, -1),
		geom.Pt(-1, 3),
		geom.Pt(3, -1),
		geom.Pt(3, 3),
	}, v)

	r, err = prop.Apply(prop.NewTransformer(prop.NewShift(prop.PointOf(1, 0))), &c.PointCloud)
	require.NoError(t, err)
	v, err = r.Get()
	require.NoError(t, err)
	require.Equal(t, geom.Pt(1, 0), v[0])

	cp := c.Copy()
	v, err = cp.Get()
	require.NoError(t, err)
	require.Len(t, v, 4)
}

func TestBoxCorners(t *testing.T) {
	b, err := geom.NewBox(geom.Pt(1, 2, 3), geom.Sz(-1, 2, 4), geom.Sz(8, 8, 8))
	require.NoError(t, err)

	v, err := prop.BoxCorners(b).Get()
	require.NoError(t, err)
	require.Len(t, v, 8)
	require.Equal(t, b.Anchor(), v[0])
	require.Equal(t, b.Distant(), v[len(v)-1])
	require.Equal(t, b.Centre(), v.Centroid())

	for _, p := range v {
		require.False(t, b.Contains(p))
	}
}
