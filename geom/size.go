package geom

import (
	"fmt"
	"math"
)

// NoConstraint may be used as either dimension of the bounding Size
// passed to the aspect fitting methods to leave that dimension
// unconstrained.
const NoConstraint = -1.0

// Size is a width and a height. Negative values are allowed and are
// not normalized by the type itself.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// InfiniteSize returns a size that is infinite in both dimensions.
func InfiniteSize() Size {
	return Size{Width: math.Inf(1), Height: math.Inf(1)}
}

// Aspect returns the ratio of the width to the height.
func (s Size) Aspect() float64 {
	return s.Width / s.Height
}

// Bounds returns a rectangle of size s at the origin.
func (s Size) Bounds() Rect {
	return Rect{Size: s}
}

// IsEmpty returns true if either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Max returns the larger of the two dimensions.
func (s Size) Max() float64 {
	return max(s.Width, s.Height)
}

// Min returns the smaller of the two dimensions.
func (s Size) Min() float64 {
	return min(s.Width, s.Height)
}

func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

func (s Size) Vector() Vector {
	return Vector{DX: s.Width, DY: s.Height}
}

// ScaleForAspectFit returns the largest factor by which s can be
// scaled while still fitting within bounds. Either dimension of bounds
// may be NoConstraint, but not both.
func (s Size) ScaleForAspectFit(bounds Size) float64 {
	switch {
	case bounds.Width != NoConstraint && bounds.Height != NoConstraint:
		return min(bounds.Width/s.Width, bounds.Height/s.Height)
	case bounds.Width != NoConstraint:
		return bounds.Width / s.Width
	default:
		return bounds.Height / s.Height
	}
}

// ScaleForAspectFill returns the smallest factor by which s can be
// scaled while still covering bounds. Either dimension of bounds may
// be NoConstraint, but not both.
func (s Size) ScaleForAspectFill(bounds Size) float64 {
	switch {
	case bounds.Width != NoConstraint && bounds.Height != NoConstraint:
		return max(bounds.Width/s.Width, bounds.Height/s.Height)
	case bounds.Width != NoConstraint:
		return bounds.Width / s.Width
	default:
		return bounds.Height / s.Height
	}
}

// AspectFit scales s by ScaleForAspectFit.
func (s Size) AspectFit(bounds Size) Size {
	return s.Scale(s.ScaleForAspectFit(bounds))
}

// AspectFill scales s by ScaleForAspectFill.
func (s Size) AspectFill(bounds Size) Size {
	return s.Scale(s.ScaleForAspectFill(bounds))
}

func (s Size) Lerp(to Size, frac float64) Size {
	return Size{
		Width:  lerp(s.Width, to.Width, frac),
		Height: lerp(s.Height, to.Height, frac),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("Size(%v, %v)", s.Width, s.Height)
}
