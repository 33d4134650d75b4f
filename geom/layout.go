package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// splitX splits r into two rectangles side by side, the first of which
// is w wide.
func splitX(r Rect, w float64) (first, rest Rect) {
	first = Rect{Origin: r.Origin, Size: Sz(w, r.Height())}
	rest = Rt(r.MinX()+w, r.MinY(), r.Width()-w, r.Height())
	return first, rest
}

func splitXHalf(r Rect) (first, rest Rect) {
	return splitX(r, r.Width()/2)
}

// splitY splits r into two rectangles stacked along the Y axis, the
// first of which is h high.
func splitY(r Rect, h float64) (first, rest Rect) {
	first = Rect{Origin: r.Origin, Size: Sz(r.Width(), h)}
	rest = Rt(r.MinX(), r.MinY()+h, r.Width(), r.Height()-h)
	return first, rest
}

func splitYHalf(r Rect) (first, rest Rect) {
	return splitY(r, r.Height()/2)
}

// TileAlternating fills tiles with a recursive split of r. The first
// tile takes half of r along the X axis, the next takes half of what
// is left along the Y axis, and so on, alternating, until the final
// tile takes whatever remains. In a y-down space,
//
//	tiles := make([]geom.Rect, 4)
//	geom.TileAlternating(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileAlternating(tiles []Rect, r Rect) {
	fillTiles(tiles, TiledAlternating(len(tiles), r))
}

// TiledAlternating is like TileAlternating but yields the tiles from
// an iterator instead of inserting them into a slice.
func TiledAlternating(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := splitXHalf, splitYHalf
		rest := r.Standardized()
		for range numtiles - 1 {
			var c Rect
			c, rest = split(rest)
			if !yield(c) {
				return
			}
			split, next = next, split
		}
		yield(rest)
	}
}

// TileEvenlyY fills tiles with an even split of r along the Y axis.
// In a y-down space,
//
//	tiles := make([]geom.Rect, 3)
//	geom.TileEvenlyY(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenlyY(tiles []Rect, r Rect) {
	fillTiles(tiles, TiledEvenlyY(len(tiles), r))
}

// TiledEvenlyY is like TileEvenlyY but yields the tiles from an
// iterator.
func TiledEvenlyY(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}

		r = r.Standardized()
		h := r.Height() / float64(numtiles)
		c, _ := splitY(r, h)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.OffsetBy(0, h)
		}
	}
}

// TileEvenlyX fills tiles with an even split of r along the X axis.
//
//	----------
//	|  |  |  |
//	----------
func TileEvenlyX(tiles []Rect, r Rect) {
	fillTiles(tiles, TiledEvenlyX(len(tiles), r))
}

func TiledEvenlyX(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}

		r = r.Standardized()
		w := r.Width() / float64(numtiles)
		c, _ := splitX(r, w)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.OffsetBy(w, 0)
		}
	}
}

// TileRows fills tiles with a table of rows and at most cols columns
// that covers r. Every row except the last has exactly cols columns.
// The last row is split evenly between however many tiles are left.
func TileRows(tiles []Rect, r Rect, cols int) {
	fillTiles(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is like TileRows but yields the tiles from an iterator.
func TiledRows(numtiles int, r Rect, cols int) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := (numtiles + cols - 1) / cols
		for row := range TiledEvenlyY(numrows, r) {
			numcols := min(numtiles, cols)
			for t := range TiledEvenlyX(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// Align moves inner so that the given edges line up with the
// corresponding edges of outer. Inner is centered in outer along any
// axis for which neither edge is given and is stretched along any axis
// for which both are. Both rectangles are standardized first.
func Align(outer, inner Rect, edges Edges) Rect {
	outer, inner = outer.Standardized(), inner.Standardized()
	c := outer.Center()
	inner.Origin = Pt(c.X-inner.Width()/2, c.Y-inner.Height()/2)

	switch {
	case edges&EdgeMinX != 0 && edges&EdgeMaxX != 0:
		inner.Origin.X, inner.Size.Width = outer.MinX(), outer.Width()
	case edges&EdgeMinX != 0:
		inner.Origin.X = outer.MinX()
	case edges&EdgeMaxX != 0:
		inner.Origin.X = outer.MaxX() - inner.Width()
	}

	switch {
	case edges&EdgeMinY != 0 && edges&EdgeMaxY != 0:
		inner.Origin.Y, inner.Size.Height = outer.MinY(), outer.Height()
	case edges&EdgeMinY != 0:
		inner.Origin.Y = outer.MinY()
	case edges&EdgeMaxY != 0:
		inner.Origin.Y = outer.MaxY() - inner.Height()
	}

	return inner
}

func fillTiles(tiles []Rect, s iter.Seq[Rect]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
