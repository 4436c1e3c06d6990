package geom_test

import (
	"testing"

	"deedles.dev/ece/geom"
	"github.com/stretchr/testify/require"
)

func TestNewBoxNegativeSides(t *testing.T) {
	b, err := geom.NewBox(geom.Pt(0, 0), geom.Sz(-2, 3), geom.Sz(1, 1))
	require.NoError(t, err)
	require.Equal(t, geom.Pt(-2, 0), b.Anchor())
	require.Equal(t, geom.Sz(2, 3), b.Sides())
	require.Equal(t, geom.Pt(0, 3), b.Distant())
	require.Equal(t, 6.0, b.Area())
}

func TestCanon(t *testing.T) {
	anchor, sides := geom.Pt(5, 5, 5), geom.Sz(-1, 2, -3)
	a, s := geom.Canon(anchor, sides)
	require.Equal(t, geom.Pt(4, 5, 2), a)
	require.Equal(t, geom.Sz(1, 2, 3), s)
	require.Equal(t, geom.Pt(5, 5, 5), anchor)
	require.Equal(t, geom.Sz(-1, 2, -3), sides)
}

func TestBoxDimension(t *testing.T) {
	_, err := geom.NewBox(geom.Pt(0, 0, 0), geom.Sz(1, 1), geom.Sz(1, 1))
	require.ErrorIs(t, err, geom.ErrDimension)

	_, err = geom.NewBox(geom.Pt(0, 0), geom.Sz(1, 1, 1), geom.Sz(1, 1))
	require.ErrorIs(t, err, geom.ErrDimension)

	b, err := geom.NewBox(geom.Pt(0, 0), geom.Sz(1, 1), geom.Sz(1, 1))
	require.NoError(t, err)
	require.Equal(t, 2, b.Dim())
	require.ErrorIs(t, b.SetCanvas(geom.Sz(1, 1, 1)), geom.ErrDimension)
	require.ErrorIs(t, b.SetAnchor(geom.Pt(1)), geom.ErrDimension)
	require.ErrorIs(t, b.SetSides(geom.Sz(1)), geom.ErrDimension)
}

func TestBoxZeroCanvas(t *testing.T) {
	_, err := geom.NewBox(geom.Pt(0, 0), geom.Sz(1, 1), geom.Sz(1, 0))
	require.ErrorIs(t, err, geom.ErrCanvas)
}

func TestBoxCanvasRescale(t *testing.T) {
	b, err := geom.NewBox(geom.Pt(2, 1), geom.Sz(4, 2), geom.Sz(8, 4))
	require.NoError(t, err)

	require.NoError(t, b.SetCanvas(geom.Sz(16, 2)))
	require.Equal(t, geom.Pt(4, 0.5), b.Anchor())
	require.Equal(t, geom.Sz(8, 1), b.Sides())
	require.Equal(t, geom.Sz(16, 2), b.Canvas())

	other, err := geom.NewBox(geom.Pt(4, 0.5), geom.Sz(8, 1), geom.Sz(16, 2))
	require.NoError(t, err)
	require.True(t, b.Equal(other))
	require.Equal(t, b.Key(), other.Key())
}

func TestBoxSetters(t *testing.T) {
	b, err := geom.NewBox(geom.Pt(1, 1), geom.Sz(2, 2), geom.Sz(1, 1))
	require.NoError(t, err)
	c := b

	require.NoError(t, b.SetSides(geom.Sz(2, -1)))
	require.Equal(t, geom.Pt(1, 0), b.Anchor())
	require.Equal(t, geom.Sz(2, 1), b.Sides())

	require.NoError(t, b.SetAnchor(geom.Pt(3, 3)))
	require.Equal(t, geom.Pt(5, 4), b.Distant())

	require.Equal(t, geom.Pt(1, 1), c.Anchor(), "copies must not observe mutation")
	require.Equal(t, geom.Sz(2, 2), c.Sides())
}

func TestBoxDerived(t *testing.T) {
	b, err := geom.NewBox(geom.Pt(1, 2, 3), geom.Sz(2, 4, 6), geom.Sz(1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, geom.Pt(3, 6, 9), b.Distant())
	require.Equal(t, geom.Pt(2, 4, 6), b.Centre())
	require.Equal(t, 48.0, b.Area())
	require.Equal(t, "Box[[1, 2, 3]+>[2, 4, 6]]", b.String())
}

func TestBoxContains(t *testing.T) {
	b, err := geom.NewBox(geom.Pt(0, 0), geom.Sz(2, 2), geom.Sz(1, 1))
	require.NoError(t, err)

	tests := []struct {
		name string
		p    geom.Point
		in   bool
	}{
		{name: "Inside", p: geom.Pt(1, 1), in: true},
		{name: "Anchor", p: geom.Pt(0, 0)},
		{name: "Distant", p: geom.Pt(2, 2)},
		{name: "Edge", p: geom.Pt(1, 0)},
		{name: "Outside", p: geom.Pt(3, 1)},
		{name: "Dimension", p: geom.Pt(1, 1, 1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.in, b.Contains(test.p))
		})
	}
}

func TestBoxZeroValueSetters(t *testing.T) {
	var b geom.Box
	require.NoError(t, b.SetCanvas(geom.Sz(2, 2)))
	require.Equal(t, geom.Pt(0, 0), b.Anchor())
	require.Zero(t, b.Area())
	require.False(t, b.Contains(geom.Pt(1, 1)))

	require.NoError(t, b.SetSides(geom.Sz(4, -2)))
	require.Equal(t, geom.Pt(0, -2), b.Anchor())
	require.Equal(t, geom.Sz(4, 2), b.Sides())
	require.Equal(t, 8.0, b.Area())
	require.True(t, b.Contains(geom.Pt(1, -1)))

	require.NoError(t, b.SetAnchor(geom.Pt(1, 1)))
	require.Equal(t, geom.Pt(5, 3), b.Distant())
}
