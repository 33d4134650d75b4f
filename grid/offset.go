package grid

import "fmt"

// Offset is a displacement between two cells of a grid.
type Offset struct {
	DX, DY int
}

// Offsets to the neighboring cell in each direction. Up is towards
// negative Y.
var (
	Up    = Offset{DX: 0, DY: -1}
	Left  = Offset{DX: -1, DY: 0}
	Down  = Offset{DX: 0, DY: 1}
	Right = Offset{DX: 1, DY: 0}
)

func (o Offset) Add(o2 Offset) Offset {
	return Offset{DX: o.DX + o2.DX, DY: o.DY + o2.DY}
}

func (o Offset) Neg() Offset {
	return Offset{DX: -o.DX, DY: -o.DY}
}

// Scale returns o repeated n times.
func (o Offset) Scale(n int) Offset {
	return Offset{DX: o.DX * n, DY: o.DY * n}
}

func (o Offset) String() string {
	return fmt.Sprintf("Offset(dx:%v dy:%v)", o.DX, o.DY)
}

// Heading is one of the four directions in which a neighboring cell
// can be found.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingLeft
	HeadingDown
	HeadingRight
)

// Offset returns the offset of the neighboring cell in direction h.
func (h Heading) Offset() Offset {
	switch h {
	case HeadingUp:
		return Up
	case HeadingLeft:
		return Left
	case HeadingDown:
		return Down
	case HeadingRight:
		return Right
	default:
		panic(fmt.Errorf("invalid heading %d", int(h)))
	}
}

// NextClockwise returns the heading a quarter turn clockwise from h.
func (h Heading) NextClockwise() Heading {
	return (h + 3) % 4
}

// NextCounterClockwise returns the heading a quarter turn
// counter-clockwise from h.
func (h Heading) NextCounterClockwise() Heading {
	return (h + 1) % 4
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingLeft:
		return "left"
	case HeadingDown:
		return "down"
	case HeadingRight:
		return "right"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}
