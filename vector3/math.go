package vector3

import (
	"math"

	"github.com/chewxy/math32"
)

// Per-precision math. float32 components go through math32 so single
// precision vectors are not widened for every call.

func sqrt[F Float](x F) F {
	if f, ok := any(x).(float32); ok {
		return F(math32.Sqrt(f))
	}
	return F(math.Sqrt(float64(x)))
}

func acos[F Float](x F) F {
	if f, ok := any(x).(float32); ok {
		return F(math32.Acos(f))
	}
	return F(math.Acos(float64(x)))
}

func sincos[F Float](x F) (sin, cos F) {
	if f, ok := any(x).(float32); ok {
		return F(math32.Sin(f)), F(math32.Cos(f))
	}
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

func abs[F Float](x F) F {
	if f, ok := any(x).(float32); ok {
		return F(math32.Abs(f))
	}
	return F(math.Abs(float64(x)))
}

func isFinite[F Float](x F) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// limits returns the significant decimal digits and the largest finite
// value of F.
func limits[F Float]() (digits int, maxValue float64) {
	var f F
	if _, ok := any(f).(float32); ok {
		return 7, math.MaxFloat32
	}
	return 15, math.MaxFloat64
}

// round rounds half to even at the given number of fractional digits.
// Negative digits round to tens, hundreds and so on. NaN and ±Inf pass
// through, as does any x whose rounding would overflow and any x when
// digits is beyond the precision of F.
func round[F Float](x F, digits int) F {
	f := float64(x)
	maxDigits, maxValue := limits[F]()
	if !isFinite(x) || digits > maxDigits {
		return x
	}
	p := math.Pow10(digits)
	if p == 0 {
		return F(math.Copysign(0, f))
	}
	scaled := f * p
	if math.IsInf(scaled, 0) {
		return x
	}
	r := math.RoundToEven(scaled) / p
	if math.IsInf(r, 0) || math.Abs(r) > maxValue {
		return x
	}
	return F(r)
}
