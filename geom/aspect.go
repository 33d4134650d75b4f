package geom

// AspectRatio is the name of a common aspect ratio.
type AspectRatio string

const (
	AspectSquare     AspectRatio = "square"
	AspectRatio3to2  AspectRatio = "ratio3to2"
	AspectRatio5to3  AspectRatio = "ratio5to3"
	AspectRatio4to3  AspectRatio = "ratio4to3"
	AspectRatio5to4  AspectRatio = "ratio5to4"
	AspectRatio7to5  AspectRatio = "ratio7to5"
	AspectRatio16to9 AspectRatio = "ratio16to9"
)

var aspectSizes = map[AspectRatio]Size{
	AspectSquare:     {Width: 1, Height: 1},
	AspectRatio3to2:  {Width: 3, Height: 2},
	AspectRatio5to3:  {Width: 5, Height: 3},
	AspectRatio4to3:  {Width: 4, Height: 3},
	AspectRatio5to4:  {Width: 5, Height: 4},
	AspectRatio7to5:  {Width: 7, Height: 5},
	AspectRatio16to9: {Width: 16, Height: 9},
}

// Size returns a representative size with the named ratio, such as
// 16x9 for AspectRatio16to9. If the name is not known, ok is false.
func (a AspectRatio) Size() (s Size, ok bool) {
	s, ok = aspectSizes[a]
	return s, ok
}

// Aspect returns the width divided by the height of the named ratio,
// or 0 if the name is not known.
func (a AspectRatio) Aspect() float64 {
	s, ok := a.Size()
	if !ok {
		return 0
	}
	return s.Aspect()
}
