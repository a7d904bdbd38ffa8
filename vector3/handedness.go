package vector3

import "fmt"

// Handedness selects the orientation convention of the coordinate system.
// It fixes the sign of the cross product and so the direction of positive
// rotations. The zero value is RightHanded.
type Handedness int8

const (
	RightHanded Handedness = iota // x × y = z
	LeftHanded                    // x × y = -z
)

// Sign is -1 for LeftHanded and +1 otherwise.
func (h Handedness) Sign() int {
	if h == LeftHanded {
		return -1
	}
	return 1
}

// IsRightHanded reports whether h is anything but LeftHanded.
func (h Handedness) IsRightHanded() bool { return h != LeftHanded }

// Flip returns the opposite convention.
func (h Handedness) Flip() Handedness {
	if h == LeftHanded {
		return RightHanded
	}
	return LeftHanded
}

// String returns "right-handed" or "left-handed".
func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "right-handed"
	case LeftHanded:
		return "left-handed"
	}
	return fmt.Sprintf("Handedness(%d)", int8(h))
}

// CrossIn returns the cross product of a and b under handedness h. The
// left-handed result is the right-handed one negated.
func CrossIn[F Float](h Handedness, a, b Vec[F]) Vec[F] {
	c := a.Cross(b)
	if h == LeftHanded {
		return c.Negate()
	}
	return c
}

// AngleAxisIn rotates v by angle radians about the unit vector axis using
// Rodrigues' rotation formula:
//
//	v*cos(angle) + (axis × v)*sin(angle) + axis*(axis·v)*(1-cos(angle))
//
// The cross product follows h, so a positive angle turns counterclockwise
// in a right-handed system and clockwise in a left-handed one. A non-unit
// axis is used as given and produces a skewed result.
func AngleAxisIn[F Float](h Handedness, v, axis Vec[F], angle F) Vec[F] {
	sin, cos := sincos(angle)
	return v.Scale(cos).
		Add(CrossIn(h, axis, v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}
