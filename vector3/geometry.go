package vector3

// Dot returns the dot product of two vectors
func (v Vec[F]) Dot(other Vec[F]) F {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// SqrMag returns the squared length of the vector.
func (v Vec[F]) SqrMag() F {
	return v.Dot(v)
}

// Mag returns the length of the vector.
func (v Vec[F]) Mag() F {
	return sqrt(v.SqrMag())
}

// Normalize returns the normalized vector. The zero vector normalizes to
// NaN components.
func (v Vec[F]) Normalize() Vec[F] {
	return v.Divide(v.Mag())
}

// Round rounds every component to the given number of fractional digits,
// ties to even.
func (v Vec[F]) Round(digits int) Vec[F] {
	return Vec[F]{
		X: round(v.X, digits),
		Y: round(v.Y, digits),
		Z: round(v.Z, digits),
	}
}

// Cross returns the right-handed cross product of two vectors
func (v Vec[F]) Cross(other Vec[F]) Vec[F] {
	return Vec[F]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Angle returns the angle between two vectors in radians. The cosine is
// not clamped, so rounding error on (anti)parallel inputs or a zero
// operand gives NaN.
func (v Vec[F]) Angle(other Vec[F]) F {
	return acos(v.Dot(other) / (v.Mag() * other.Mag()))
}

// ProjectOnto returns the component of v parallel to onto.
func (v Vec[F]) ProjectOnto(onto Vec[F]) Vec[F] {
	return onto.Scale(v.Dot(onto) / onto.SqrMag())
}

// RejectFrom returns the component of v orthogonal to from.
func (v Vec[F]) RejectFrom(from Vec[F]) Vec[F] {
	return v.Subtract(v.ProjectOnto(from))
}

// AngleAxis rotates v by angle radians about axis, counterclockwise when
// looking down the axis (right-hand rule). axis must already be unit
// length; it is not normalized here.
func (v Vec[F]) AngleAxis(axis Vec[F], angle F) Vec[F] {
	return AngleAxisIn(RightHanded, v, axis, angle)
}
