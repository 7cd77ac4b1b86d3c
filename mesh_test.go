package hedra

import (
	"math"
	"testing"
)

func TestMeshBoundingBoxAndCenter(t *testing.T) {

	mesh := NewCube(2)

	min, max := mesh.BoundingBox()
	if !vectorsClose(min, NewVector(-1, -1, -1)) || !vectorsClose(max, NewVector(1, 1, 1)) {
		t.Fatal("cube bounding box:", min, max)
	}

	if center := mesh.Center(); !vectorsClose(center, NewVectorZero()) {
		t.Fatal("cube center should be the origin, got", center)
	}

	empty := NewMesh()
	min, max = empty.BoundingBox()
	if !vectorsClose(min, NewVectorZero()) || !vectorsClose(max, NewVectorZero()) {
		t.Fatal("empty mesh bounding box should collapse to the origin")
	}

}

func TestMeshSurfaceArea(t *testing.T) {

	if area := NewCube(2).SurfaceArea(); !floatsClose(area, 24) {
		t.Fatal("cube surface area should be 24, got", area)
	}

	// The sphere's area approaches 4*pi*r^2 from below as subdivision deepens.
	area := NewSphere(1, 3).SurfaceArea()
	exact := 4 * math.Pi
	if area >= exact || area < exact*0.98 {
		t.Fatal("subdivided sphere area out of range:", area)
	}

}

func TestMeshVolume(t *testing.T) {

	size := 2.0

	if v := NewCube(size).Volume(); !floatsClose(v, size*size*size) {
		t.Fatal("cube volume:", v)
	}

	if v := NewTetrahedron(size).Volume(); !floatsClose(v, size*size*size/3) {
		t.Fatal("tetrahedron volume:", v)
	}

	r := size / math.Sqrt2
	if v := NewOctahedron(size).Volume(); !floatsClose(v, 4.0/3.0*r*r*r) {
		t.Fatal("octahedron volume:", v)
	}

	phi := (1 + math.Sqrt(5)) / 2
	edge := 2 * size / math.Sqrt(phi*phi+1)
	expected := 5.0 / 12.0 * (3 + math.Sqrt(5)) * edge * edge * edge
	if v := NewIcosahedron(size).Volume(); math.Abs(v-expected) > 1e-6 {
		t.Fatal("icosahedron volume:", v, "expected", expected)
	}

}

func TestMeshStatistics(t *testing.T) {

	stats := NewCylinder(1, 2, 8).Statistics()

	if stats.Vertices != 18 {
		t.Fatal("cylinder vertices:", stats.Vertices)
	}
	if stats.Faces != 24 {
		t.Fatal("cylinder faces:", stats.Faces)
	}
	if stats.Quads != 8 || stats.Triangles != 16 {
		t.Fatal("cylinder face breakdown:", stats.Quads, "quads,", stats.Triangles, "triangles")
	}

	// Euler's formula for a closed genus-0 surface: V - E + F = 2.
	if stats.Vertices-stats.Edges+stats.Faces != 2 {
		t.Fatal("cylinder should satisfy V - E + F = 2")
	}

}

func TestMeshClone(t *testing.T) {

	mesh := NewCube(2)
	clone := mesh.Clone()

	a := mesh.Statistics()
	b := clone.Statistics()
	if a != b {
		t.Fatal("clone statistics differ:", a, b)
	}

	// Mutating the clone leaves the original alone.
	clone.Vertices()[0].Position = NewVector(100, 0, 0)
	if vectorsClose(mesh.Vertices()[0].Position, NewVector(100, 0, 0)) {
		t.Fatal("clone shares vertex storage with the original")
	}

}

func TestMeshTransformed(t *testing.T) {

	mesh := NewCube(2)
	moved := mesh.Transformed(NewMatrix4Translate(5, 0, 0))

	if center := moved.Center(); !vectorsClose(center, NewVector(5, 0, 0)) {
		t.Fatal("translated cube center:", center)
	}
	if center := mesh.Center(); !vectorsClose(center, NewVectorZero()) {
		t.Fatal("original cube moved:", center)
	}

	scaled := mesh.Transformed(NewMatrix4Scale(2, 2, 2))
	if v := scaled.Volume(); !floatsClose(v, 64) {
		t.Fatal("scaled cube volume should be 64, got", v)
	}

}
