package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshease/pkg/math"
)

func TestInitialPosition(t *testing.T) {
	c := NewTrackballCamera(400, 1, 0.05)
	want := math.Vec3{X: 400, Y: 400, Z: 400}
	if got := c.Position(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	c.Update()
	if got := c.Position(); got != want {
		t.Errorf("expected no motion without input, got %v", got)
	}
}

func TestDragKeepsDistance(t *testing.T) {
	c := NewTrackballCamera(400, 1, 0.05)
	dist := c.Position().Length()

	c.BeginDrag()
	c.Drag(30, -12, 600)
	c.Update()

	if got := c.Position(); got == (math.Vec3{X: 400, Y: 400, Z: 400}) {
		t.Fatal("expected drag to rotate the camera")
	}
	if got := c.Position().Length(); math32.Abs(got-dist) > 1e-2 {
		t.Errorf("expected distance %v, got %v", dist, got)
	}
	if d := c.Up().Dot(c.Position().Normalize()); math32.Abs(d-c.Up().Dot(math.Vec3{X: 1, Y: 1, Z: 1}.Normalize())) > 1e-4 {
		t.Errorf("expected up and eye to rotate together, dot changed to %v", d)
	}
}

func TestDriftDecaysAfterRelease(t *testing.T) {
	c := NewTrackballCamera(400, 1, 0.05)
	c.BeginDrag()
	c.Drag(50, 0, 600)
	c.Update()
	c.EndDrag()

	prev := c.Position()
	c.Update()
	first := c.Drift()
	if first <= 0 {
		t.Fatal("expected drift after release")
	}
	if c.Position() == prev {
		t.Error("expected camera to keep moving after release")
	}

	for i := 0; i < 2000; i++ {
		c.Update()
	}
	if c.Drift() != 0 {
		t.Errorf("expected drift to settle, got %v", c.Drift())
	}
}

func TestHoldWithoutMovementStops(t *testing.T) {
	c := NewTrackballCamera(400, 1, 0.05)
	c.BeginDrag()
	c.Drag(20, 20, 600)
	c.Update()
	c.Update()

	pos := c.Position()
	c.Update()
	if c.Position() != pos {
		t.Error("expected no motion while the mouse is held still")
	}
}

func TestNoDamping(t *testing.T) {
	c := NewTrackballCamera(400, 1, 0)
	c.BeginDrag()
	c.Drag(20, 0, 600)
	c.Update()
	c.EndDrag()

	pos := c.Position()
	c.Update()
	if c.Position() != pos {
		t.Error("expected no drift with damping disabled")
	}
}
