package hedra

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {

	if !NewMatrix4().IsIdentity() {
		t.Fatal("NewMatrix4 should be identity")
	}

	p := NewVector(1, 2, 3)
	if out := NewMatrix4().MultVec(p); !vectorsClose(out, p) {
		t.Fatal("identity transform changed the point:", out)
	}

}

func TestMatrixMultOrder(t *testing.T) {

	// Row-vector convention: the calling matrix applies first.
	m := NewMatrix4Translate(1, 0, 0).Mult(NewMatrix4Scale(2, 2, 2))

	if out := m.MultVec(NewVectorZero()); !vectorsClose(out, NewVector(2, 0, 0)) {
		t.Fatal("translate-then-scale should give (2, 0, 0), got", out)
	}

}

func TestMatrixRotate(t *testing.T) {

	// Rotating +X a quarter turn counter-clockwise about +Z gives +Y.
	m := NewMatrix4Rotate(0, 0, 1, math.Pi/2)
	if out := m.MultVec(VecX); !vectorsClose(out, VecY) {
		t.Fatal("rotation about Z:", out)
	}

	// Rotating +X a quarter turn about +Y gives -Z.
	m = NewMatrix4Rotate(0, 1, 0, math.Pi/2)
	if out := m.MultVec(VecX); !vectorsClose(out, VecZ.Invert()) {
		t.Fatal("rotation about Y:", out)
	}

}

func TestMatrixTransposed(t *testing.T) {

	m := NewMatrix4Translate(1, 2, 3)
	tr := m.Transposed()

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if m[r][c] != tr[c][r] {
				t.Fatal("transpose mismatch at", r, c)
			}
		}
	}

}

func TestLookAtMatrix(t *testing.T) {

	// A camera at (0, 0, 10) looking at the origin sees the origin straight
	// ahead, 10 units down its -Z axis.
	view := NewLookAtMatrix(NewVector(0, 0, 10), NewVectorZero(), VecY)

	out := view.MultVec(NewVectorZero())
	if !vectorsClose(out, NewVector(0, 0, -10)) {
		t.Fatal("view-space position of target:", out)
	}

}

func TestPerspectiveProjection(t *testing.T) {

	view := NewLookAtMatrix(NewVector(0, 0, 10), NewVectorZero(), VecY)
	proj := NewProjectionPerspective(60, 0.1, 1000, 1)

	// A point on the view axis projects to the center of the screen.
	clip := view.Mult(proj).MultVecW(NewVectorZero())
	if clip.W <= 0 {
		t.Fatal("point in front of the camera should have positive clip W, got", clip.W)
	}
	if math.Abs(clip.X/clip.W) > 1e-9 || math.Abs(clip.Y/clip.W) > 1e-9 {
		t.Fatal("view-axis point should project to NDC origin, got", clip.X/clip.W, clip.Y/clip.W)
	}

	// A point behind the camera has non-positive clip W.
	behind := view.Mult(proj).MultVecW(NewVector(0, 0, 20))
	if behind.W > 0 {
		t.Fatal("point behind the camera should have non-positive clip W, got", behind.W)
	}

}
