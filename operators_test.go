package hedra

import "testing"

func TestTriangulate(t *testing.T) {

	mesh := NewCube(2)

	split := mesh.Triangulate()
	if split != 6 {
		t.Fatal("triangulating a cube should split 6 faces, got", split)
	}

	stats := mesh.Statistics()
	if stats.Faces != 12 || stats.Triangles != 12 {
		t.Fatal("triangulated cube should be 12 triangles, got", stats)
	}
	if stats.Vertices != 8 {
		t.Fatal("triangulation should not add vertices, got", stats.Vertices)
	}

	// Fan triangulation preserves the enclosed volume.
	if v := mesh.Volume(); !floatsClose(v, 8) {
		t.Fatal("triangulated cube volume should stay 8, got", v)
	}

	// Already triangulated: a no-op that reports 0 splits.
	if split := mesh.Triangulate(); split != 0 {
		t.Fatal("second triangulation should split nothing, got", split)
	}

}

func TestSubdivideLinear(t *testing.T) {

	mesh := NewCube(2)

	if err := mesh.SubdivideLinear(); err != nil {
		t.Fatal(err)
	}

	// A face with n sides becomes n quads; the cube's 6 quads become 24. The new
	// vertices are the 12 edge midpoints and 6 face centroids, shared across faces.
	stats := mesh.Statistics()
	if stats.Faces != 24 || stats.Quads != 24 {
		t.Fatal("linear subdivision of a cube should give 24 quads, got", stats)
	}
	if stats.Vertices != 26 {
		t.Fatal("linear subdivision of a cube should give 26 vertices, got", stats.Vertices)
	}

	// No smoothing: the corners stay put and the surface is still the cube.
	min, max := mesh.BoundingBox()
	if !vectorsClose(min, NewVector(-1, -1, -1)) || !vectorsClose(max, NewVector(1, 1, 1)) {
		t.Fatal("linear subdivision should not move geometry:", min, max)
	}
	if v := mesh.Volume(); !floatsClose(v, 8) {
		t.Fatal("linear subdivision should preserve volume, got", v)
	}

}

func TestSubdivideLoop(t *testing.T) {

	mesh := NewTetrahedron(2)

	if err := mesh.SubdivideLoop(); err != nil {
		t.Fatal(err)
	}

	// Each triangle becomes four; each of the 6 edges contributes one new vertex.
	stats := mesh.Statistics()
	if stats.Faces != 16 || stats.Triangles != 16 {
		t.Fatal("loop subdivision of a tetrahedron should give 16 triangles, got", stats)
	}
	if stats.Vertices != 10 {
		t.Fatal("loop subdivision of a tetrahedron should give 10 vertices, got", stats.Vertices)
	}

	// Smoothing pulls the surface inside the original hull.
	if v := mesh.Volume(); v <= 0 || v >= 8.0/3.0 {
		t.Fatal("loop-subdivided tetrahedron volume out of range:", v)
	}

}

func TestSubdivideLoopRequiresTriangles(t *testing.T) {

	mesh := NewCube(2)
	before := mesh.Statistics()

	if err := mesh.SubdivideLoop(); err != ErrNotTriangulated {
		t.Fatal("loop subdivision of quads should fail, got", err)
	}

	// A rejected subdivision leaves the mesh exactly as it was.
	if after := mesh.Statistics(); after != before {
		t.Fatal("failed subdivision modified the mesh:", before, after)
	}

}

func TestSubdivideCatmullClark(t *testing.T) {

	mesh := NewCube(2)

	if err := mesh.SubdivideCatmullClark(); err != nil {
		t.Fatal(err)
	}

	stats := mesh.Statistics()
	if stats.Faces != 24 || stats.Quads != 24 {
		t.Fatal("catmull-clark subdivision of a cube should give 24 quads, got", stats)
	}
	if stats.Vertices != 26 {
		t.Fatal("catmull-clark subdivision of a cube should give 26 vertices, got", stats.Vertices)
	}

	// Smoothing shrinks the cube toward a sphere: everything stays strictly inside
	// the original bounds, and the volume drops below 8.
	min, max := mesh.BoundingBox()
	if min.X < -1 || min.Y < -1 || min.Z < -1 || max.X > 1 || max.Y > 1 || max.Z > 1 {
		t.Fatal("catmull-clark subdivision escaped the original bounds:", min, max)
	}
	if v := mesh.Volume(); v <= 0 || v >= 8 {
		t.Fatal("catmull-clark subdivided cube volume out of range:", v)
	}

	// Catmull-Clark output is all quads, so a second round subdivides cleanly.
	if err := mesh.SubdivideCatmullClark(); err != nil {
		t.Fatal(err)
	}
	if stats := mesh.Statistics(); stats.Faces != 96 {
		t.Fatal("second round should give 96 quads, got", stats.Faces)
	}

}

func TestSubdivideCatmullClarkWorksOnMixedMeshes(t *testing.T) {

	// The cylinder mixes quads and triangles; every n-gon becomes n quads.
	mesh := NewCylinder(1, 2, 8)

	if err := mesh.SubdivideCatmullClark(); err != nil {
		t.Fatal(err)
	}

	stats := mesh.Statistics()
	if expected := 8*4 + 16*3; stats.Faces != expected {
		t.Fatal("expected", expected, "faces, got", stats.Faces)
	}
	if stats.Quads != stats.Faces {
		t.Fatal("catmull-clark should emit only quads, got", stats)
	}

}

func TestSubdivideEmptyMesh(t *testing.T) {

	for _, subdivide := range []func(*Mesh) error{
		(*Mesh).SubdivideLinear,
		(*Mesh).SubdivideLoop,
		(*Mesh).SubdivideCatmullClark,
	} {
		if err := subdivide(NewMesh()); err != ErrNoFaces {
			t.Fatal("subdividing an empty mesh should return ErrNoFaces, got", err)
		}
	}

}

func TestSubdivideBoundaryEdgesUseMidpoints(t *testing.T) {

	mesh := singleTriangle()

	if err := mesh.SubdivideLoop(); err != nil {
		t.Fatal(err)
	}

	// All three edges are boundaries, so the new edge vertices sit at the plain
	// midpoints of the original (unsmoothed) edges.
	stats := mesh.Statistics()
	if stats.Faces != 4 || stats.Vertices != 6 {
		t.Fatal("loop subdivision of a lone triangle:", stats)
	}

	found := 0
	for _, v := range mesh.Vertices() {
		for _, want := range []Vector{
			NewVector(0.5, 0, 0),
			NewVector(0.5, 0.5, 0),
			NewVector(0, 0.5, 0),
		} {
			if vectorsClose(v.Position, want) {
				found++
			}
		}
	}
	if found != 3 {
		t.Fatal("expected 3 midpoint edge vertices, found", found)
	}

}

func BenchmarkSubdivideCatmullClark(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		mesh := NewCube(2)
		if err := mesh.SubdivideCatmullClark(); err != nil {
			b.Fatal(err)
		}
	}

}
