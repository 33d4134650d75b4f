// Package ease provides easing curves for animation and related
// interpolation helpers.
//
// Every curve maps the unit interval onto itself: it takes a time t,
// usually in [0, 1], and returns the eased progress at that time.
package ease

import (
	"math"

	"golang.org/x/exp/constraints"
)

// OutFaster decelerates along a parabola.
func OutFaster[T constraints.Float](t T) T {
	return 2*t - t*t
}

// InFaster accelerates along a parabola.
func InFaster[T constraints.Float](t T) T {
	return t * t
}

// InAndOutFaster accelerates and then decelerates along a Hermite
// curve.
func InAndOutFaster[T constraints.Float](t T) T {
	return t * t * (3 - 2*t)
}

// Out decelerates along a quarter sine wave. It is smoother than
// OutFaster but more expensive to compute.
func Out[T constraints.Float](t T) T {
	return T(math.Sin(float64(t) * math.Pi / 2))
}

// In accelerates along a quarter cosine wave.
func In[T constraints.Float](t T) T {
	return T(1 - math.Cos(float64(t)*math.Pi/2))
}

// InAndOut accelerates and then decelerates along half a sine wave.
func InAndOut[T constraints.Float](t T) T {
	return T(0.5 * (1 + math.Sin(math.Pi*(float64(t)-0.5))))
}

// TriangleUpThenDown rises linearly from 0 to 1 over the first half
// and falls back to 0 over the second.
func TriangleUpThenDown[T constraints.Float](t T) T {
	if t < 0.5 {
		return LerpRange(t, 0, 0.5, 0, 1)
	}
	return LerpRange(t, 0.5, 1, 1, 0)
}

// TriangleDownThenUp is the complement of TriangleUpThenDown.
func TriangleDownThenUp[T constraints.Float](t T) T {
	if t < 0.5 {
		return LerpRange(t, 0, 0.5, 1, 0)
	}
	return LerpRange(t, 0.5, 1, 0, 1)
}

func SawtoothUp[T constraints.Float](t T) T {
	return t
}

func SawtoothDown[T constraints.Float](t T) T {
	return 1 - t
}

// SineUpThenDown completes one full sine wave, scaled into [0, 1] and
// starting at 0.5 heading up.
func SineUpThenDown[T constraints.Float](t T) T {
	return T(math.Sin(float64(t)*math.Pi*2)*0.5 + 0.5)
}

// SineDownThenUp is the complement of SineUpThenDown.
func SineDownThenUp[T constraints.Float](t T) T {
	return 1 - SineUpThenDown(t)
}

// CosineDownThenUp completes one full cosine wave, scaled into [0, 1]
// and starting at 1.
func CosineDownThenUp[T constraints.Float](t T) T {
	return T(math.Cos(float64(t)*math.Pi*2)*0.5 + 0.5)
}

// CosineUpThenDown is the complement of CosineDownThenUp.
func CosineUpThenDown[T constraints.Float](t T) T {
	return 1 - CosineDownThenUp(t)
}

// Lerp interpolates linearly from a to b. A frac of 0 returns a and a
// frac of 1 returns b. Values outside of [0, 1] extrapolate.
func Lerp[T constraints.Float](a, b, frac T) T {
	return a + (b-a)*frac
}

// LerpRange maps v from the range [fromMin, fromMax] into the range
// [toMin, toMax].
func LerpRange[T constraints.Float](v, fromMin, fromMax, toMin, toMax T) T {
	return Lerp(toMin, toMax, (v-fromMin)/(fromMax-fromMin))
}
