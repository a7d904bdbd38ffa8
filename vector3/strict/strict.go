// Package strict is the checked counterpart of package vector3.
//
// Every function mirrors a vector3 operation but validates its inputs
// first. Where vector3 would hand back NaN or Inf components, these return
// an error wrapping one of the sentinel values below, so callers can test
// with errors.Is. Valid inputs produce exactly the vector3 result, except
// that Angle clamps the cosine into [-1, 1].
package strict

import (
	"errors"
	"fmt"
	"math"

	"vectors/vector3"
)

var (
	// ErrZeroVector is returned by Normalize, Angle, ProjectOnto and RejectFrom
	// for a zero-length operand.
	ErrZeroVector = errors.New("zero-length vector")
	// ErrDivideByZero is returned by Divide for a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
	// ErrNonUnitAxis is returned by AngleAxis and AngleAxisIn when the axis
	// length is off 1 by more than AxisTolerance.
	ErrNonUnitAxis = errors.New("rotation axis is not unit length")
	// ErrIndexOutOfRange is returned by Component for an index outside 0..2.
	ErrIndexOutOfRange = errors.New("component index out of range")
	// ErrNonFinite is returned by every function except Component when an
	// input vector, divisor or angle is NaN or infinite.
	ErrNonFinite = errors.New("non-finite component")
)

// AxisTolerance is how far the length of a rotation axis may be from 1.
// It is loose enough for axes normalized in single precision.
const AxisTolerance = 1e-5

func finite[F vector3.Float](vs ...vector3.Vec[F]) error {
	for _, v := range vs {
		if !v.IsFinite() {
			return fmt.Errorf("%w: %v", ErrNonFinite, v)
		}
	}
	return nil
}

func nonZero[F vector3.Float](op string, v vector3.Vec[F]) error {
	if v.SqrMag() == 0 {
		return fmt.Errorf("%s: %w", op, ErrZeroVector)
	}
	return nil
}

// Component returns component i of v, failing for indexes outside 0..2.
func Component[F vector3.Float](v vector3.Vec[F], i int) (F, error) {
	if i < 0 || i > 2 {
		return 0, fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange)
	}
	return v.At(i), nil
}

// Divide returns v / s.
func Divide[F vector3.Float](v vector3.Vec[F], s F) (vector3.Vec[F], error) {
	if err := finite(v); err != nil {
		return vector3.Vec[F]{}, err
	}
	if s == 0 {
		return vector3.Vec[F]{}, fmt.Errorf("divide %v: %w", v, ErrDivideByZero)
	}
	if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
		return vector3.Vec[F]{}, fmt.Errorf("%w: divisor %v", ErrNonFinite, s)
	}
	return v.Divide(s), nil
}

// Normalize returns the unit vector in the direction of v.
func Normalize[F vector3.Float](v vector3.Vec[F]) (vector3.Vec[F], error) {
	if err := finite(v); err != nil {
		return vector3.Vec[F]{}, err
	}
	if err := nonZero("normalize", v); err != nil {
		return vector3.Vec[F]{}, err
	}
	return v.Normalize(), nil
}

// Angle returns the angle between a and b in radians, in [0, π].
func Angle[F vector3.Float](a, b vector3.Vec[F]) (F, error) {
	if err := finite(a, b); err != nil {
		return 0, err
	}
	if err := nonZero("angle", a); err != nil {
		return 0, err
	}
	if err := nonZero("angle", b); err != nil {
		return 0, err
	}
	cos := float64(a.Dot(b)) / (float64(a.Mag()) * float64(b.Mag()))
	return F(math.Acos(math.Max(-1, math.Min(1, cos)))), nil
}

// ProjectOnto returns the component of v parallel to onto.
func ProjectOnto[F vector3.Float](v, onto vector3.Vec[F]) (vector3.Vec[F], error) {
	if err := finite(v, onto); err != nil {
		return vector3.Vec[F]{}, err
	}
	if err := nonZero("project", onto); err != nil {
		return vector3.Vec[F]{}, err
	}
	return v.ProjectOnto(onto), nil
}

// RejectFrom returns the component of v orthogonal to from.
func RejectFrom[F vector3.Float](v, from vector3.Vec[F]) (vector3.Vec[F], error) {
	if err := finite(v, from); err != nil {
		return vector3.Vec[F]{}, err
	}
	if err := nonZero("reject", from); err != nil {
		return vector3.Vec[F]{}, err
	}
	return v.RejectFrom(from), nil
}

// AngleAxis rotates v by angle radians about axis using the right-hand
// rule.
func AngleAxis[F vector3.Float](v, axis vector3.Vec[F], angle F) (vector3.Vec[F], error) {
	return AngleAxisIn(vector3.RightHanded, v, axis, angle)
}

// AngleAxisIn rotates v by angle radians about axis under handedness h.
// The axis must be unit length within AxisTolerance.
func AngleAxisIn[F vector3.Float](h vector3.Handedness, v, axis vector3.Vec[F], angle F) (vector3.Vec[F], error) {
	if err := finite(v, axis); err != nil {
		return vector3.Vec[F]{}, err
	}
	if math.IsNaN(float64(angle)) || math.IsInf(float64(angle), 0) {
		return vector3.Vec[F]{}, fmt.Errorf("%w: angle %v", ErrNonFinite, angle)
	}
	if m := float64(axis.Mag()); math.Abs(m-1) > AxisTolerance {
		return vector3.Vec[F]{}, fmt.Errorf("axis %v has length %v: %w", axis, m, ErrNonUnitAxis)
	}
	return vector3.AngleAxisIn(h, v, axis, angle), nil
}
