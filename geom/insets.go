package geom

// Insets are distances to move each edge of a rectangle inwards.
// Top and Left are applied to the minimum Y and X edges respectively.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// UniformInsets returns Insets with every edge set to n.
func UniformInsets(n float64) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// SymmetricInsets returns Insets with h on the left and right and v on
// the top and bottom.
func SymmetricInsets(h, v float64) Insets {
	return Insets{Top: v, Left: h, Bottom: v, Right: h}
}

// Horizontal returns the total inset along the X axis.
func (in Insets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns the total inset along the Y axis.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}

func (in Insets) Add(o Insets) Insets {
	return Insets{
		Top:    in.Top + o.Top,
		Left:   in.Left + o.Left,
		Bottom: in.Bottom + o.Bottom,
		Right:  in.Right + o.Right,
	}
}
