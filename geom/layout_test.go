package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestTileAlternating(t *testing.T) {
	tiles := make([]geom.Rect, 4)
	geom.TileAlternating(tiles, geom.Rt(0, 0, 8, 4))
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 4, 4),
		geom.Rt(4, 0, 4, 2),
		geom.Rt(4, 2, 2, 2),
		geom.Rt(6, 2, 2, 2),
	}, tiles)

	require.Equal(t, []geom.Rect{geom.Rt(0, 0, 8, 4)}, slices.Collect(geom.TiledAlternating(1, geom.Rt(0, 0, 8, 4))))
	require.Empty(t, slices.Collect(geom.TiledAlternating(0, geom.Rt(0, 0, 8, 4))))
}

func TestTileEvenly(t *testing.T) {
	tiles := make([]geom.Rect, 3)
	geom.TileEvenlyY(tiles, geom.Rt(0, 0, 3, 9))
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 3, 3),
		geom.Rt(0, 3, 3, 3),
		geom.Rt(0, 6, 3, 3),
	}, tiles)

	tiles = make([]geom.Rect, 4)
	geom.TileEvenlyX(tiles, geom.Rt(8, 1, -8, -1))
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 2, 1),
		geom.Rt(2, 0, 2, 1),
		geom.Rt(4, 0, 2, 1),
		geom.Rt(6, 0, 2, 1),
	}, tiles)

	var first []geom.Rect
	for tile := range geom.TiledEvenlyX(10, geom.Rt(0, 0, 10, 1)) {
		if len(first) == 2 {
			break
		}
		first = append(first, tile)
	}
	require.Equal(t, []geom.Rect{geom.Rt(0, 0, 1, 1), geom.Rt(1, 0, 1, 1)}, first)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rect, 5)
	geom.TileRows(tiles, geom.Rt(0, 0, 4, 6), 2)
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 2, 2),
		geom.Rt(2, 0, 2, 2),
		geom.Rt(0, 2, 2, 2),
		geom.Rt(2, 2, 2, 2),
		geom.Rt(0, 4, 4, 2),
	}, tiles)

	require.Empty(t, slices.Collect(geom.TiledRows(3, geom.Rt(0, 0, 4, 6), 0)))
}

func TestAlign(t *testing.T) {
	outer := geom.Rt(0, 0, 10, 10)
	inner := geom.Rt(0, 0, 2, 4)

	tests := []struct {
		edges    geom.Edges
		expected geom.Rect
	}{
		{geom.EdgeNone, geom.Rt(4, 3, 2, 4)},
		{geom.EdgeMinX, geom.Rt(0, 3, 2, 4)},
		{geom.EdgeMaxX | geom.EdgeMaxY, geom.Rt(8, 6, 2, 4)},
		{geom.EdgeMinX | geom.EdgeMaxX, geom.Rt(0, 3, 10, 4)},
		{geom.EdgeMinY | geom.EdgeMaxY, geom.Rt(4, 0, 2, 10)},
		{geom.EdgeMinX | geom.EdgeMinY | geom.EdgeMaxX | geom.EdgeMaxY, outer},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, geom.Align(outer, inner, test.edges), "%v", test.edges)
	}
}
