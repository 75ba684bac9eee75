package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{400, 400, 400}
	view := LookAt(eye, Vec3{}, Vec3{Y: 1})
	got := view.TransformPoint(eye)
	if !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("eye should map to origin, got %v", got)
	}

	// the target lies straight ahead on -Z
	center := view.TransformPoint(Vec3{})
	if !approx(center.X, 0) || !approx(center.Y, 0) || center.Z >= 0 {
		t.Errorf("center should be on -Z, got %v", center)
	}
}

func TestNormalMatrixOfRotationIsRotation(t *testing.T) {
	view := LookAt(Vec3{3, 4, 5}, Vec3{}, Vec3{Y: 1})
	n := view.NormalMatrix()
	want := Mat3{
		view[0], view[1], view[2],
		view[4], view[5], view[6],
		view[8], view[9], view[10],
	}
	for i := range n {
		if !approx(n[i], want[i]) {
			t.Errorf("element %d: got %f, want %f", i, n[i], want[i])
		}
	}
}

func TestNormalMatrixOfScale(t *testing.T) {
	m := Identity()
	m[0], m[5], m[10] = 2, 4, 8
	n := m.NormalMatrix()
	want := Mat3{0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125}
	if n != want {
		t.Errorf("got %v, want %v", n, want)
	}
}

func TestNormalMatrixSingular(t *testing.T) {
	var m Mat4
	n := m.NormalMatrix()
	if n != (Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}) {
		t.Errorf("singular matrix should yield identity, got %v", n)
	}
}

func TestPerspectiveFocalLength(t *testing.T) {
	p := Perspective(math32.Pi/2, 2, 1, 100)
	// tan(45deg) = 1, so f = 1 and the x scale is f/aspect
	if !approx(p[5], 1) || !approx(p[0], 0.5) {
		t.Errorf("got f=%f x=%f, want 1 and 0.5", p[5], p[0])
	}
	if p[11] != -1 {
		t.Errorf("expected -1 at m11, got %f", p[11])
	}
}
