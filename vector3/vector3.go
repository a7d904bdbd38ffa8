// Package vector3 implements immutable 3D vectors in single and double
// precision.
//
// Degenerate inputs are not guarded: dividing by zero, normalizing the zero
// vector or measuring an angle against it yields NaN or Inf components under
// IEEE 754 rules. Package vector3/strict offers the same operations with
// explicit errors.
package vector3

import "fmt"

// Float is the set of component types a vector can have.
type Float interface {
	~float32 | ~float64
}

// Scalar is any numeric type a vector can be scaled by.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vec represents a 3D vector with components of type F
type Vec[F Float] struct {
	X F
	Y F
	Z F
}

// V is a double precision vector.
type V = Vec[float64]

// V32 is a single precision vector.
type V32 = Vec[float32]

// New returns the vector (x, y, z).
func New[F Float](x, y, z F) Vec[F] {
	return Vec[F]{X: x, Y: y, Z: z}
}

// New2 returns the vector (x, y, 0).
func New2[F Float](x, y F) Vec[F] {
	return Vec[F]{X: x, Y: y}
}

// Zero returns (0, 0, 0).
func Zero[F Float]() Vec[F] { return Vec[F]{} }

// One returns (1, 1, 1).
func One[F Float]() Vec[F] { return Vec[F]{1, 1, 1} }

// Forward returns the unit vector along X.
func Forward[F Float]() Vec[F] { return Vec[F]{X: 1} }

// Side returns the unit vector along Y.
func Side[F Float]() Vec[F] { return Vec[F]{Y: 1} }

// Up returns the unit vector along Z.
func Up[F Float]() Vec[F] { return Vec[F]{Z: 1} }

// At returns component i (0, 1, 2 for X, Y, Z). Any other index yields 0.
func (v Vec[F]) At(i int) F {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return 0
}

// With returns a copy of v with component i set to f. An index outside
// 0..2 leaves the copy unchanged.
func (v Vec[F]) With(i int, f F) Vec[F] {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	}
	return v
}

// Add returns the sum of two vectors
func (v Vec[F]) Add(other Vec[F]) Vec[F] {
	return Vec[F]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Negate returns v scaled by -1
func (v Vec[F]) Negate() Vec[F] {
	return v.Scale(-1)
}

// Subtract returns the difference between two vectors
func (v Vec[F]) Subtract(other Vec[F]) Vec[F] {
	return v.Add(other.Negate())
}

// Scale multiplies all components of the vector by a scalar
func (v Vec[F]) Scale(scalar F) Vec[F] {
	return Vec[F]{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Divide multiplies the vector by 1/scalar.
func (v Vec[F]) Divide(scalar F) Vec[F] {
	return v.Scale(1 / scalar)
}

// ScaleBy multiplies v by a scalar of any numeric type. The result keeps
// the precision of v; the scalar is converted to F first.
func ScaleBy[F Float, S Scalar](v Vec[F], s S) Vec[F] {
	return v.Scale(F(s))
}

// DivideBy divides v by a scalar of any numeric type. Division is always
// done in floating point, so integer divisors do not truncate.
func DivideBy[F Float, S Scalar](v Vec[F], s S) Vec[F] {
	return v.Divide(F(s))
}

// Mul is the vector-vector product, which is the dot product.
func (v Vec[F]) Mul(other Vec[F]) F {
	return v.Dot(other)
}

// Equal reports whether all components compare equal. As with ==, a NaN
// component never equals anything.
func (v Vec[F]) Equal(other Vec[F]) bool {
	return v == other
}

// ApproxEqual reports whether every component of v is within eps of the
// matching component of other.
func (v Vec[F]) ApproxEqual(other Vec[F], eps F) bool {
	return abs(v.X-other.X) <= eps &&
		abs(v.Y-other.Y) <= eps &&
		abs(v.Z-other.Z) <= eps
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec[F]) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// String formats v as V(x, y, z) or V32(x, y, z).
func (v Vec[F]) String() string {
	return fmt.Sprintf("%s(%v, %v, %v)", typeName[F](), v.X, v.Y, v.Z)
}

func typeName[F Float]() string {
	var f F
	switch any(f).(type) {
	case float32:
		return "V32"
	case float64:
		return "V"
	}
	return fmt.Sprintf("Vec[%T]", f)
}
