package hedra

// The four element kinds of the halfedge mesh. Every cross-reference between elements is a
// typed index into the owning Mesh's element slices, with -1 meaning "unset"; the Mesh is
// the only true owner of any element. Resolving a link goes through an exported method
// (Next, Twin, Halfedge, ...) that returns nil for unset links, so traversal code can
// nil-check instead of comparing indices.

// VertexIndex identifies a Vertex within its owning Mesh.
type VertexIndex int

// EdgeIndex identifies an Edge within its owning Mesh.
type EdgeIndex int

// FaceIndex identifies a Face within its owning Mesh.
type FaceIndex int

// HalfedgeIndex identifies a Halfedge within its owning Mesh.
type HalfedgeIndex int

const (
	noVertex   VertexIndex   = -1
	noEdge     EdgeIndex     = -1
	noFace     FaceIndex     = -1
	noHalfedge HalfedgeIndex = -1
)

// Vertex is a point of the mesh. It stores its position and a single outgoing Halfedge
// as a traversal handle; everything else about it is derived by walking connectivity.
type Vertex struct {
	mesh     *Mesh
	index    VertexIndex
	Position Vector
	halfedge HalfedgeIndex
	deleted  bool
}

// Index returns the Vertex's index within its owning Mesh.
func (vertex *Vertex) Index() VertexIndex {
	return vertex.index
}

// Halfedge returns the Vertex's outgoing Halfedge, or nil if the Vertex is isolated.
func (vertex *Vertex) Halfedge() *Halfedge {
	return vertex.mesh.halfedgeAt(vertex.halfedge)
}

// Deleted returns true if the Vertex has been lazily deleted.
func (vertex *Vertex) Deleted() bool {
	return vertex.deleted
}

// MarkDeleted marks the Vertex as lazily deleted. Queries and statistics skip deleted elements.
func (vertex *Vertex) MarkDeleted() {
	vertex.deleted = true
}

// Degree returns the valence of the Vertex (the number of edges incident to it).
// An isolated Vertex has a degree of 0.
func (vertex *Vertex) Degree() int {

	start := vertex.Halfedge()
	if start == nil {
		return 0
	}

	count := 0
	h := start

	// The walk is bounded by the total halfedge count so corrupted connectivity
	// can't hang the caller.
	for steps := vertex.mesh.HalfedgeCount(); steps > 0; steps-- {
		count++
		twin := h.Twin()
		if twin == nil {
			break
		}
		h = twin.Next()
		if h == nil || h == start {
			break
		}
	}

	return count

}

// Neighbors returns the Vertices connected to this Vertex by a single edge, found by
// walking h.Twin().Next() around the Vertex. An isolated Vertex has no neighbors.
func (vertex *Vertex) Neighbors() []*Vertex {

	start := vertex.Halfedge()
	if start == nil {
		return nil
	}

	var neighbors []*Vertex
	h := start

	for steps := vertex.mesh.HalfedgeCount(); steps > 0; steps-- {

		target := h.Target()
		if target == nil {
			break
		}
		neighbors = append(neighbors, target)

		twin := h.Twin()
		if twin == nil {
			break
		}
		h = twin.Next()
		if h == nil || h == start {
			break
		}

	}

	return neighbors

}

// AdjacentFaces returns the non-boundary Faces that share this Vertex.
func (vertex *Vertex) AdjacentFaces() []*Face {

	start := vertex.Halfedge()
	if start == nil {
		return nil
	}

	var faces []*Face
	h := start

	for steps := vertex.mesh.HalfedgeCount(); steps > 0; steps-- {

		if face := h.Face(); face != nil && !face.Boundary() {
			faces = append(faces, face)
		}

		twin := h.Twin()
		if twin == nil {
			break
		}
		h = twin.Next()
		if h == nil || h == start {
			break
		}

	}

	return faces

}

// Normal returns the Vertex's normal as the area-weighted average of the normals of its
// adjacent non-boundary Faces, normalized. If the Vertex has no valid adjacent Faces (or the
// weighted normals cancel out), it defaults to (0, 1, 0).
func (vertex *Vertex) Normal() Vector {

	normal := NewVectorZero()

	for _, face := range vertex.AdjacentFaces() {
		normal = normal.Add(face.Normal().Scale(face.Area()))
	}

	if normal.Magnitude() < 1e-9 {
		return NewVector(0, 1, 0)
	}

	return normal.Unit()

}

// Edge connects two Vertices. It references either one of its two Halfedges; the two are
// mutual twins and both reference the Edge back.
type Edge struct {
	mesh     *Mesh
	index    EdgeIndex
	halfedge HalfedgeIndex
	deleted  bool
}

// Index returns the Edge's index within its owning Mesh.
func (edge *Edge) Index() EdgeIndex {
	return edge.index
}

// Halfedge returns one of the Edge's two Halfedges.
func (edge *Edge) Halfedge() *Halfedge {
	return edge.mesh.halfedgeAt(edge.halfedge)
}

// Deleted returns true if the Edge has been lazily deleted.
func (edge *Edge) Deleted() bool {
	return edge.deleted
}

// MarkDeleted marks the Edge as lazily deleted.
func (edge *Edge) MarkDeleted() {
	edge.deleted = true
}

// Vertices returns the Edge's two endpoint Vertices - the targets of its two Halfedges.
// It returns (nil, nil) if the Edge has no Halfedge or its Halfedge has no twin.
func (edge *Edge) Vertices() (*Vertex, *Vertex) {

	h := edge.Halfedge()
	if h == nil {
		return nil, nil
	}
	twin := h.Twin()
	if twin == nil {
		return nil, nil
	}

	return twin.Target(), h.Target()

}

// Midpoint returns the position halfway along the Edge, or a zero Vector if either endpoint is missing.
func (edge *Edge) Midpoint() Vector {

	v1, v2 := edge.Vertices()
	if v1 == nil || v2 == nil {
		return NewVectorZero()
	}

	return v1.Position.Add(v2.Position).Scale(0.5)

}

// Face is a polygon of the mesh, represented by one of the Halfedges on its boundary loop.
// Synthetic boundary Faces cap the open boundaries of non-closed meshes and carry no geometry.
type Face struct {
	mesh     *Mesh
	index    FaceIndex
	halfedge HalfedgeIndex
	boundary bool
	deleted  bool
}

// Index returns the Face's index within its owning Mesh.
func (face *Face) Index() FaceIndex {
	return face.index
}

// Halfedge returns one of the Halfedges on the Face's boundary loop.
func (face *Face) Halfedge() *Halfedge {
	return face.mesh.halfedgeAt(face.halfedge)
}

// Boundary returns true if the Face is a synthetic boundary Face capping an open mesh boundary.
func (face *Face) Boundary() bool {
	return face.boundary
}

// Deleted returns true if the Face has been lazily deleted.
func (face *Face) Deleted() bool {
	return face.deleted
}

// MarkDeleted marks the Face as lazily deleted.
func (face *Face) MarkDeleted() {
	face.deleted = true
}

// Vertices returns the Face's Vertices in loop order, found by walking Next() around the Face.
func (face *Face) Vertices() []*Vertex {

	start := face.Halfedge()
	if start == nil {
		return nil
	}

	var vertices []*Vertex
	h := start

	for steps := face.mesh.HalfedgeCount(); steps > 0; steps-- {

		target := h.Target()
		if target == nil {
			break
		}
		vertices = append(vertices, target)

		h = h.Next()
		if h == nil || h == start {
			break
		}

	}

	return vertices

}

// Edges returns the Face's Edges in loop order.
func (face *Face) Edges() []*Edge {

	start := face.Halfedge()
	if start == nil {
		return nil
	}

	var edges []*Edge
	h := start

	for steps := face.mesh.HalfedgeCount(); steps > 0; steps-- {

		edge := h.Edge()
		if edge == nil {
			break
		}
		edges = append(edges, edge)

		h = h.Next()
		if h == nil || h == start {
			break
		}

	}

	return edges

}

// Normal returns the Face's normal computed with Newell's method over its ordered vertex
// loop, normalized. Degenerate Faces (fewer than 3 Vertices, or a near-zero accumulated
// normal) default to (0, 0, 1).
func (face *Face) Normal() Vector {

	vertices := face.Vertices()
	if len(vertices) < 3 {
		return NewVector(0, 0, 1)
	}

	normal := NewVectorZero()

	for i := range vertices {
		vi := vertices[i].Position
		vj := vertices[(i+1)%len(vertices)].Position
		normal.X += (vi.Y - vj.Y) * (vi.Z + vj.Z)
		normal.Y += (vi.Z - vj.Z) * (vi.X + vj.X)
		normal.Z += (vi.X - vj.X) * (vi.Y + vj.Y)
	}

	if normal.Magnitude() < 1e-9 {
		return NewVector(0, 0, 1)
	}

	return normal.Unit()

}

// Area returns the Face's area by fan-triangulating it from its first Vertex and summing the
// triangle areas. Faces with fewer than 3 Vertices have an area of 0.
func (face *Face) Area() float64 {

	vertices := face.Vertices()
	if len(vertices) < 3 {
		return 0
	}

	v0 := vertices[0].Position
	area := 0.0

	for i := 1; i < len(vertices)-1; i++ {
		a := vertices[i].Position.Sub(v0)
		b := vertices[i+1].Position.Sub(v0)
		area += 0.5 * a.Cross(b).Magnitude()
	}

	return area

}

// Centroid returns the mean position of the Face's Vertices, or a zero Vector for an empty Face.
func (face *Face) Centroid() Vector {

	vertices := face.Vertices()
	if len(vertices) == 0 {
		return NewVectorZero()
	}

	center := NewVectorZero()
	for _, v := range vertices {
		center = center.Add(v.Position)
	}

	return center.Scale(1.0 / float64(len(vertices)))

}

// IsTriangle returns true if the Face has exactly 3 Vertices.
func (face *Face) IsTriangle() bool {
	return len(face.Vertices()) == 3
}

// IsQuad returns true if the Face has exactly 4 Vertices.
func (face *Face) IsQuad() bool {
	return len(face.Vertices()) == 4
}

// Halfedge is one of the two oppositely-oriented directed references representing an edge
// from the perspective of one adjacent Face. Its vertex reference is the Halfedge's target
// (the Vertex it points to); its source is the target of its twin.
type Halfedge struct {
	mesh    *Mesh
	index   HalfedgeIndex
	next    HalfedgeIndex
	twin    HalfedgeIndex
	vertex  VertexIndex
	edge    EdgeIndex
	face    FaceIndex
	deleted bool
}

// Index returns the Halfedge's index within its owning Mesh.
func (halfedge *Halfedge) Index() HalfedgeIndex {
	return halfedge.index
}

// Next returns the next Halfedge around the Halfedge's Face.
func (halfedge *Halfedge) Next() *Halfedge {
	return halfedge.mesh.halfedgeAt(halfedge.next)
}

// Twin returns the oppositely-oriented Halfedge sharing the same Edge.
func (halfedge *Halfedge) Twin() *Halfedge {
	return halfedge.mesh.halfedgeAt(halfedge.twin)
}

// Target returns the Vertex the Halfedge points to.
func (halfedge *Halfedge) Target() *Vertex {
	return halfedge.mesh.vertexAt(halfedge.vertex)
}

// Source returns the Vertex the Halfedge points away from - the target of its twin - or nil
// if the Halfedge has no twin.
func (halfedge *Halfedge) Source() *Vertex {
	if twin := halfedge.Twin(); twin != nil {
		return twin.Target()
	}
	return nil
}

// Edge returns the Edge the Halfedge belongs to.
func (halfedge *Halfedge) Edge() *Edge {
	return halfedge.mesh.edgeAt(halfedge.edge)
}

// Face returns the Face the Halfedge borders.
func (halfedge *Halfedge) Face() *Face {
	return halfedge.mesh.faceAt(halfedge.face)
}

// Deleted returns true if the Halfedge has been lazily deleted.
func (halfedge *Halfedge) Deleted() bool {
	return halfedge.deleted
}

// MarkDeleted marks the Halfedge as lazily deleted.
func (halfedge *Halfedge) MarkDeleted() {
	halfedge.deleted = true
}
