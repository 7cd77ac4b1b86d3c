package hedra

import "testing"

func TestVertexDegreeAndNeighbors(t *testing.T) {

	mesh := NewCube(2)

	for _, v := range mesh.Vertices() {

		if v.Degree() != 3 {
			t.Fatal("cube vertex degree should be 3, got", v.Degree())
		}

		neighbors := v.Neighbors()
		if len(neighbors) != 3 {
			t.Fatal("cube vertex should have 3 neighbors, got", len(neighbors))
		}
		for _, n := range neighbors {
			if n == v {
				t.Fatal("vertex listed as its own neighbor")
			}
			// Cube neighbors differ in exactly one coordinate, so the
			// edge length is always the cube's size.
			if !floatsClose(v.Position.Distance(n.Position), 2) {
				t.Fatal("cube neighbor at wrong distance:", v.Position.Distance(n.Position))
			}
		}

	}

}

func TestVertexAdjacentFaces(t *testing.T) {

	mesh := NewCube(2)

	for _, v := range mesh.Vertices() {

		faces := v.AdjacentFaces()
		if len(faces) != 3 {
			t.Fatal("cube vertex should touch 3 faces, got", len(faces))
		}
		for _, f := range faces {
			if f.Boundary() {
				t.Fatal("adjacent faces should not include boundary faces")
			}
		}

	}

}

func TestVertexNormal(t *testing.T) {

	mesh := NewCube(2)

	for _, v := range mesh.Vertices() {

		// Every cube corner normal points along the corner's diagonal.
		normal := v.Normal()
		expected := v.Position.Unit()
		if !vectorsClose(normal, expected) {
			t.Fatal("cube corner normal", normal, "expected", expected)
		}

	}

}

func TestDegenerateQueriesAreSafe(t *testing.T) {

	mesh := NewMesh()
	v := mesh.AddVertex(NewVector(1, 2, 3))

	// A fresh vertex has no connectivity yet; queries return empty results.
	if v.Degree() != 0 {
		t.Fatal("unconnected vertex degree should be 0")
	}
	if len(v.Neighbors()) != 0 {
		t.Fatal("unconnected vertex should have no neighbors")
	}
	if len(v.AdjacentFaces()) != 0 {
		t.Fatal("unconnected vertex should have no adjacent faces")
	}
	if !vectorsClose(v.Normal(), NewVector(0, 1, 0)) {
		t.Fatal("unconnected vertex normal should default to +Y")
	}

	face := &Face{mesh: mesh, halfedge: noHalfedge}
	if face.Area() != 0 {
		t.Fatal("unwired face area should be 0")
	}
	if len(face.Vertices()) != 0 {
		t.Fatal("unwired face should have no vertices")
	}
	if !vectorsClose(face.Normal(), NewVector(0, 0, 1)) {
		t.Fatal("unwired face normal should default to +Z")
	}

	edge := &Edge{mesh: mesh, halfedge: noHalfedge}
	if a, b := edge.Vertices(); a != nil || b != nil {
		t.Fatal("unwired edge endpoints should be nil")
	}

}

func TestEdgeVerticesAndMidpoint(t *testing.T) {

	mesh := singleTriangle()

	for _, e := range mesh.Edges() {

		a, b := e.Vertices()
		if a == nil || b == nil {
			t.Fatal("triangle edge with nil endpoint")
		}
		if a == b {
			t.Fatal("edge endpoints should differ")
		}

		mid := e.Midpoint()
		expected := a.Position.Add(b.Position).Scale(0.5)
		if !vectorsClose(mid, expected) {
			t.Fatal("edge midpoint", mid, "expected", expected)
		}

	}

}

func TestFaceQueries(t *testing.T) {

	mesh := NewCube(2)

	for _, f := range mesh.Faces() {

		if f.Boundary() {
			continue
		}

		if !f.IsQuad() || f.IsTriangle() {
			t.Fatal("cube faces should be quads")
		}
		if !floatsClose(f.Area(), 4) {
			t.Fatal("cube face area should be 4, got", f.Area())
		}

		// Each face centroid sits on the face plane, one unit from the center.
		centroid := f.Centroid()
		if !floatsClose(centroid.Magnitude(), 1) {
			t.Fatal("cube face centroid magnitude should be 1, got", centroid.Magnitude())
		}

		// Outward winding: the normal points the same way as the centroid.
		if f.Normal().Dot(centroid) <= 0 {
			t.Fatal("cube face normal should point outward")
		}

		if len(f.Edges()) != 4 {
			t.Fatal("cube face should have 4 edges")
		}

	}

}
