package vector3

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		got  V
		want V
	}{
		{"zero", Zero[float64](), V{0, 0, 0}},
		{"one", One[float64](), V{1, 1, 1}},
		{"forward", Forward[float64](), V{1, 0, 0}},
		{"side", Side[float64](), V{0, 1, 0}},
		{"up", Up[float64](), V{0, 0, 1}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if got := Up[float32](); got != (V32{0, 0, 1}) {
		t.Errorf("Up[float32]() = %v", got)
	}
	if got := New2(1.5, 2.5); got != (V{1.5, 2.5, 0}) {
		t.Errorf("New2 = %v", got)
	}
}

func TestAtWith(t *testing.T) {
	v := New[float64](1, 2, 3)
	for i, want := range []float64{1, 2, 3} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	for _, i := range []int{-1, 3, 100} {
		if got := v.At(i); got != 0 {
			t.Errorf("At(%d) = %v, want 0", i, got)
		}
	}

	if got := v.With(1, 9); got != (V{1, 9, 3}) {
		t.Errorf("With(1, 9) = %v", got)
	}
	if got := v.With(3, 9); got != v {
		t.Errorf("With(3, 9) = %v, want unchanged %v", got, v)
	}
	if v != (V{1, 2, 3}) {
		t.Errorf("With modified its receiver: %v", v)
	}
}

func TestArithmetic(t *testing.T) {
	a := V{1, 2, 3}
	b := V{4, 5, 6}

	tests := []struct {
		name string
		got  V
		want V
	}{
		{"add", a.Add(b), V{5, 7, 9}},
		{"subtract", a.Subtract(b), V{-3, -3, -3}},
		{"negate", a.Negate(), V{-1, -2, -3}},
		{"scale", a.Scale(2), V{2, 4, 6}},
		{"divide", b.Divide(2), V{2, 2.5, 3}},
		{"scale by int", ScaleBy(a, 3), V{3, 6, 9}},
		{"divide by int", DivideBy(a, 2), V{0.5, 1, 1.5}},
		{"divide by uint8", DivideBy(b, uint8(4)), V{1, 1.25, 1.5}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if got, want := a.Mul(b), a.Dot(b); got != want || got != 32 {
		t.Errorf("Mul = %v, Dot = %v, want 32", got, want)
	}
}

func TestScaleByKeepsPrecision(t *testing.T) {
	v := V32{1, 2, 4}
	got := ScaleBy(v, 0.5)
	if got != (V32{0.5, 1, 2}) {
		t.Errorf("ScaleBy(V32, float64) = %v", got)
	}
	if got := ScaleBy(v, int64(-2)); got != (V32{-2, -4, -8}) {
		t.Errorf("ScaleBy(V32, int64) = %v", got)
	}
}

func TestDivideByZero(t *testing.T) {
	got := V{1, 0, -1}.Divide(0)
	if !math.IsInf(got.X, 1) || !math.IsNaN(got.Y) || !math.IsInf(got.Z, -1) {
		t.Errorf("Divide(0) = %v, want (+Inf, NaN, -Inf)", got)
	}
	if got.IsFinite() {
		t.Error("IsFinite() = true for a divided-by-zero vector")
	}
}

func TestEqual(t *testing.T) {
	if !(V{1, 2, 3}).Equal(V{1, 2, 3}) {
		t.Error("equal vectors compare unequal")
	}
	if (V{1, 2, 3}).Equal(V{1, 2, 3.0000001}) {
		t.Error("distinct vectors compare equal")
	}
	n := V{math.NaN(), 0, 0}
	if n.Equal(n) {
		t.Error("NaN vector equals itself")
	}
	if !(V{0, 0, 0}).Equal(V{math.Copysign(0, -1), 0, 0}) {
		t.Error("-0 and 0 compare unequal")
	}
	if !(V{1, 2, 3}).ApproxEqual(V{1, 2, 3.0000001}, 1e-6) {
		t.Error("ApproxEqual rejected a vector within tolerance")
	}
	if n.ApproxEqual(n, 1) {
		t.Error("ApproxEqual accepted NaN")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{V{1, 2.5, -3}.String(), "V(1, 2.5, -3)"},
		{V32{1, 0.1, 3}.String(), "V32(1, 0.1, 3)"},
		{Zero[float64]().String(), "V(0, 0, 0)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func checkScaleRoundTrip[F Float](t *testing.T, eps F) {
	t.Helper()
	for _, a := range sampleVectors[F]() {
		for _, s := range []F{3, -0.5, 1e-3, 7} {
			if got := a.Scale(s).Divide(s); !got.ApproxEqual(a, eps) {
				t.Errorf("(%v * %v) / %v = %v", a, s, s, got)
			}
		}
	}
}

func TestScaleRoundTrip(t *testing.T) {
	checkScaleRoundTrip[float64](t, 1e-12)
	checkScaleRoundTrip[float32](t, 1e-5)
}

func sampleVectors[F Float]() []Vec[F] {
	return []Vec[F]{
		{1, 2, 3},
		{-4, 0.5, 2},
		{0.25, -3, 7},
		{10, 10, -1},
		{0, 0, 1},
	}
}
