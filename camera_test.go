package hedra

import (
	"math"
	"testing"
)

func TestCameraPosition(t *testing.T) {

	camera := NewCamera()
	camera.Theta = 90
	camera.Phi = 90

	// Azimuth 90, elevation 90: straight out along +Z at the full radius.
	if p := camera.Position(); !vectorsClose(p, NewVector(0, 0, 10)) {
		t.Fatal("camera position:", p)
	}

	// Elevation 0 would be the pole; near-zero elevation approaches straight up.
	camera.Phi = 1
	p := camera.Position()
	if p.Y < 9.9 {
		t.Fatal("near-pole camera should be almost straight up, got", p)
	}

	// The target offsets the whole orbit.
	camera.Phi = 90
	camera.Target = NewVector(5, 0, 0)
	if p := camera.Position(); !vectorsClose(p, NewVector(5, 0, 10)) {
		t.Fatal("camera position with target:", p)
	}

}

func TestCameraOrbitClamping(t *testing.T) {

	camera := NewCamera()

	camera.Orbit(0, 1000)
	if camera.Phi != 179 {
		t.Fatal("phi should clamp at 179, got", camera.Phi)
	}

	camera.Orbit(0, -1000)
	if camera.Phi != 1 {
		t.Fatal("phi should clamp at 1, got", camera.Phi)
	}

	camera.Orbit(400, 0)
	if camera.Theta < 0 || camera.Theta >= 360 {
		t.Fatal("theta should wrap within [0, 360), got", camera.Theta)
	}

}

func TestCameraZoomClamping(t *testing.T) {

	camera := NewCamera()

	for i := 0; i < 100; i++ {
		camera.Zoom(1)
	}
	if camera.Radius != 1 {
		t.Fatal("radius should clamp at 1, got", camera.Radius)
	}

	for i := 0; i < 100; i++ {
		camera.Zoom(-1)
	}
	if camera.Radius != 100 {
		t.Fatal("radius should clamp at 100, got", camera.Radius)
	}

}

func TestCameraPan(t *testing.T) {

	camera := NewCamera()
	camera.Theta = 90
	camera.Phi = 90

	// Panning moves the target in the view plane, never along the view axis.
	camera.Pan(10, 0)
	if !floatsClose(camera.Target.Z, 0) {
		t.Fatal("horizontal pan moved the target along the view axis:", camera.Target)
	}
	if floatsClose(camera.Target.X, 0) {
		t.Fatal("horizontal pan should move the target sideways:", camera.Target)
	}

}

func TestCameraProject(t *testing.T) {

	camera := NewCamera()
	camera.Theta = 90
	camera.Phi = 90

	// The target projects to the viewport center.
	sx, sy, ok := camera.Project(NewVectorZero(), 800, 600)
	if !ok {
		t.Fatal("target should be projectable")
	}
	if !floatsClose(sx, 400) || !floatsClose(sy, 300) {
		t.Fatal("target should project to the center, got", sx, sy)
	}

	// A point above the target lands higher on screen (smaller y).
	_, upY, ok := camera.Project(NewVector(0, 1, 0), 800, 600)
	if !ok || upY >= 300 {
		t.Fatal("raised point should land above the center, got", upY)
	}

	// Points behind the camera are rejected.
	if _, _, ok := camera.Project(NewVector(0, 0, 20), 800, 600); ok {
		t.Fatal("point behind the camera should not project")
	}

}

func TestCameraReset(t *testing.T) {

	camera := NewCamera()
	camera.Orbit(30, 20)
	camera.Zoom(3)
	camera.Pan(5, 5)

	camera.Reset()

	if camera.Radius != 10 || camera.Theta != 45 || camera.Phi != 45 {
		t.Fatal("reset should restore the default orbit")
	}
	if !vectorsClose(camera.Target, NewVectorZero()) {
		t.Fatal("reset should re-target the origin")
	}

}

func TestCameraFocusOn(t *testing.T) {

	camera := NewCamera()
	camera.FocusOn(NewVector(4, 4, 4), NewVector(6, 6, 6))

	if !vectorsClose(camera.Target, NewVector(5, 5, 5)) {
		t.Fatal("focus target:", camera.Target)
	}

	expected := math.Sqrt(12) * 1.5
	if !floatsClose(camera.Radius, expected) {
		t.Fatal("focus radius:", camera.Radius, "expected", expected)
	}

	// Tiny boxes still keep the radius at least 1.
	camera.FocusOn(NewVectorZero(), NewVector(0.01, 0.01, 0.01))
	if camera.Radius != 1 {
		t.Fatal("focus radius should clamp at 1, got", camera.Radius)
	}

}
