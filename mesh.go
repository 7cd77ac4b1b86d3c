package hedra

// Mesh is a halfedge polygon mesh. It owns its elements through four flat slices; every
// link between elements is an index into these slices, which makes the wholesale
// clear-and-rebuild strategy of the mesh operators cheap and free of dangling references.
//
// A Mesh is not safe for concurrent use. Operators discard and replace the element
// collections, so callers on multi-threaded hosts must serialize all access to a Mesh.
type Mesh struct {
	vertices  []*Vertex
	edges     []*Edge
	faces     []*Face
	halfedges []*Halfedge
}

// NewMesh returns a new, empty Mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex adds a new Vertex at the given position to the Mesh, returning it. The Vertex
// starts out isolated; connectivity comes from a later BuildConnectivity call.
func (mesh *Mesh) AddVertex(position Vector) *Vertex {
	v := &Vertex{
		mesh:     mesh,
		index:    VertexIndex(len(mesh.vertices)),
		Position: position,
		halfedge: noHalfedge,
	}
	mesh.vertices = append(mesh.vertices, v)
	return v
}

// Vertices returns the Mesh's Vertex slice, including lazily-deleted Vertices.
func (mesh *Mesh) Vertices() []*Vertex {
	return mesh.vertices
}

// Edges returns the Mesh's Edge slice, including lazily-deleted Edges.
func (mesh *Mesh) Edges() []*Edge {
	return mesh.edges
}

// Faces returns the Mesh's Face slice, including boundary and lazily-deleted Faces.
func (mesh *Mesh) Faces() []*Face {
	return mesh.faces
}

// Halfedges returns the Mesh's Halfedge slice, including lazily-deleted Halfedges.
func (mesh *Mesh) Halfedges() []*Halfedge {
	return mesh.halfedges
}

// HalfedgeCount returns the total number of Halfedges in the Mesh. Traversals use it as
// their iteration bound.
func (mesh *Mesh) HalfedgeCount() int {
	return len(mesh.halfedges)
}

func (mesh *Mesh) vertexAt(index VertexIndex) *Vertex {
	if index < 0 || int(index) >= len(mesh.vertices) {
		return nil
	}
	return mesh.vertices[index]
}

func (mesh *Mesh) edgeAt(index EdgeIndex) *Edge {
	if index < 0 || int(index) >= len(mesh.edges) {
		return nil
	}
	return mesh.edges[index]
}

func (mesh *Mesh) faceAt(index FaceIndex) *Face {
	if index < 0 || int(index) >= len(mesh.faces) {
		return nil
	}
	return mesh.faces[index]
}

func (mesh *Mesh) halfedgeAt(index HalfedgeIndex) *Halfedge {
	if index < 0 || int(index) >= len(mesh.halfedges) {
		return nil
	}
	return mesh.halfedges[index]
}

// rebuild replaces the Mesh's vertex collection with the kept Vertices (re-indexed and
// disconnected) and rebuilds all connectivity from the given face loops. Every operator
// that restructures the Mesh funnels through here.
func (mesh *Mesh) rebuild(kept []*Vertex, faces [][]*Vertex) {
	for i, v := range kept {
		v.mesh = mesh
		v.index = VertexIndex(i)
		v.halfedge = noHalfedge
	}
	mesh.vertices = kept
	mesh.BuildConnectivity(faces)
}

// BoundingBox returns the componentwise minimum and maximum corners over all non-deleted
// Vertex positions, or two zero Vectors if the Mesh has no Vertices.
func (mesh *Mesh) BoundingBox() (Vector, Vector) {

	first := true
	var min, max Vector

	for _, v := range mesh.vertices {
		if v.deleted {
			continue
		}
		p := v.Position
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	if first {
		return NewVectorZero(), NewVectorZero()
	}

	return min, max

}

// Center returns the mean position of all non-deleted Vertices, or a zero Vector if the
// Mesh has no Vertices.
func (mesh *Mesh) Center() Vector {

	center := NewVectorZero()
	count := 0

	for _, v := range mesh.vertices {
		if v.deleted {
			continue
		}
		center = center.Add(v.Position)
		count++
	}

	if count == 0 {
		return center
	}

	return center.Scale(1.0 / float64(count))

}

// Statistics counts the Mesh's live elements and breaks its real Faces down by shape.
type Statistics struct {
	Vertices  int // Non-deleted Vertices
	Edges     int // Non-deleted Edges
	Faces     int // Non-deleted, non-boundary Faces
	Halfedges int // Non-deleted Halfedges
	Triangles int // Faces with 3 sides
	Quads     int // Faces with 4 sides
	Others    int // Faces with more than 4 sides
}

// Statistics returns element counts for the Mesh, skipping deleted elements and boundary Faces.
func (mesh *Mesh) Statistics() Statistics {

	stats := Statistics{}

	for _, v := range mesh.vertices {
		if !v.deleted {
			stats.Vertices++
		}
	}
	for _, e := range mesh.edges {
		if !e.deleted {
			stats.Edges++
		}
	}
	for _, h := range mesh.halfedges {
		if !h.deleted {
			stats.Halfedges++
		}
	}

	for _, f := range mesh.faces {
		if f.deleted || f.boundary {
			continue
		}
		stats.Faces++
		switch len(f.Vertices()) {
		case 3:
			stats.Triangles++
		case 4:
			stats.Quads++
		default:
			stats.Others++
		}
	}

	return stats

}

// SurfaceArea returns the total area over the Mesh's non-deleted, non-boundary Faces.
func (mesh *Mesh) SurfaceArea() float64 {

	area := 0.0

	for _, f := range mesh.faces {
		if f.deleted || f.boundary {
			continue
		}
		area += f.Area()
	}

	return area

}

// Volume returns the volume enclosed by the Mesh, computed with the divergence theorem as
// the absolute value of the summed signed tetrahedron volumes of each Face's fan
// triangulation. The result is only physically meaningful for a closed, consistently
// oriented Mesh; no validation is performed.
func (mesh *Mesh) Volume() float64 {

	volume := 0.0

	for _, f := range mesh.faces {

		if f.deleted || f.boundary {
			continue
		}

		vertices := f.Vertices()
		if len(vertices) < 3 {
			continue
		}

		v0 := vertices[0].Position
		for i := 1; i < len(vertices)-1; i++ {
			v1 := vertices[i].Position
			v2 := vertices[i+1].Position
			volume += v0.Dot(v1.Cross(v2)) / 6.0
		}

	}

	if volume < 0 {
		volume = -volume
	}

	return volume

}

// Clone returns a deep copy of the Mesh: fresh Vertices at the same positions with the
// same face loops, rebuilt through the Connectivity Builder. Deleted elements are dropped.
func (mesh *Mesh) Clone() *Mesh {
	return mesh.cloneTransformed(NewMatrix4())
}

// Transformed returns a deep copy of the Mesh with every Vertex position transformed by
// the given Matrix4.
func (mesh *Mesh) Transformed(matrix Matrix4) *Mesh {
	return mesh.cloneTransformed(matrix)
}

func (mesh *Mesh) cloneTransformed(matrix Matrix4) *Mesh {

	clone := NewMesh()

	vertexMap := map[*Vertex]*Vertex{}
	for _, v := range mesh.vertices {
		if v.deleted {
			continue
		}
		vertexMap[v] = clone.AddVertex(matrix.MultVec(v.Position))
	}

	var faces [][]*Vertex
	for _, f := range mesh.faces {
		if f.deleted || f.boundary {
			continue
		}
		var loop []*Vertex
		for _, v := range f.Vertices() {
			if nv, ok := vertexMap[v]; ok {
				loop = append(loop, nv)
			}
		}
		if len(loop) >= 3 {
			faces = append(faces, loop)
		}
	}

	clone.BuildConnectivity(faces)

	return clone

}
