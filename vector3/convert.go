package vector3

import (
	govec "github.com/deeean/go-vector/vector3"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Double widens v to double precision. Widening float32 is exact.
func (v Vec[F]) Double() V {
	return V{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Single narrows v to single precision, rounding each component to the
// nearest float32. Precision is lost silently; it never fails.
func (v Vec[F]) Single() V32 {
	return V32{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// R3 returns v as a gonum r3.Vec.
func (v Vec[F]) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum r3.Vec.
func FromR3(p r3.Vec) V {
	return V{X: p.X, Y: p.Y, Z: p.Z}
}

// F32 returns v as an x/image f32.Vec3, narrowing if v is double precision.
func (v Vec[F]) F32() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// FromF32 converts an x/image f32.Vec3.
func FromF32(a f32.Vec3) V32 {
	return V32{X: a[0], Y: a[1], Z: a[2]}
}

// GoVector returns v as a go-vector Vector3.
func (v Vec[F]) GoVector() *govec.Vector3 {
	return govec.New(float64(v.X), float64(v.Y), float64(v.Z))
}

// FromGoVector converts a go-vector Vector3. A nil pointer is the zero vector.
func FromGoVector(p *govec.Vector3) V {
	if p == nil {
		return V{}
	}
	return V{X: p.X, Y: p.Y, Z: p.Z}
}
