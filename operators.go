package hedra

import (
	"errors"
	"math"
)

// ErrNoFaces is returned by the subdivision operators when the Mesh has no eligible faces
// to subdivide.
var ErrNoFaces = errors.New("mesh has no faces to subdivide")

// ErrNotTriangulated is returned by SubdivideLoop when the Mesh contains a non-triangular
// face; Loop subdivision requires a triangulated mesh.
var ErrNotTriangulated = errors.New("loop subdivision requires a triangulated mesh")

// liveVertices returns the non-deleted Vertices of the Mesh, in order.
func (mesh *Mesh) liveVertices() []*Vertex {
	var live []*Vertex
	for _, v := range mesh.vertices {
		if !v.deleted {
			live = append(live, v)
		}
	}
	return live
}

// liveFaces returns the non-deleted, non-boundary Faces of the Mesh, in order.
func (mesh *Mesh) liveFaces() []*Face {
	var live []*Face
	for _, f := range mesh.faces {
		if !f.deleted && !f.boundary {
			live = append(live, f)
		}
	}
	return live
}

// Triangulate fan-triangulates every face with more than 3 sides into triangles sharing
// the face's first Vertex, rebuilding the Mesh's connectivity. It returns the number of
// faces that required splitting; if every face was already a triangle, it returns 0 and
// leaves the Mesh untouched.
func (mesh *Mesh) Triangulate() int {

	kept := mesh.liveVertices()
	if len(kept) == 0 {
		return 0
	}

	var newFaces [][]*Vertex
	split := 0

	for _, f := range mesh.liveFaces() {

		vertices := f.Vertices()

		switch {
		case len(vertices) == 3:
			newFaces = append(newFaces, vertices)
		case len(vertices) > 3:
			split++
			v0 := vertices[0]
			for i := 1; i < len(vertices)-1; i++ {
				newFaces = append(newFaces, []*Vertex{v0, vertices[i], vertices[i+1]})
			}
		}
		// Faces with fewer than 3 vertices can't occur if the invariants hold; they
		// are dropped defensively.

	}

	if split == 0 {
		return 0
	}

	mesh.rebuild(kept, newFaces)

	return split

}

// positionKey quantizes a position so that Vertices created at the same place by different
// faces (shared edge midpoints, centroids) resolve to the same Vertex.
type positionKey struct {
	x, y, z int64
}

func newPositionKey(p Vector) positionKey {
	const scale = 1e6
	return positionKey{
		x: int64(math.Round(p.X * scale)),
		y: int64(math.Round(p.Y * scale)),
		z: int64(math.Round(p.Z * scale)),
	}
}

// SubdivideLinear splits every face with n sides into n quads, one per corner, using the
// face's centroid and its edge midpoints as the new Vertices. Positions are untouched (no
// smoothing). It returns ErrNoFaces, leaving the Mesh unchanged, if there are no eligible
// faces.
func (mesh *Mesh) SubdivideLinear() error {

	faces := mesh.liveFaces()
	if len(faces) == 0 {
		return ErrNoFaces
	}

	kept := mesh.liveVertices()

	// Fresh Vertices for centroids and edge midpoints, deduplicated by rounded position.
	created := map[positionKey]*Vertex{}
	var createdOrder []*Vertex
	vertexAt := func(p Vector) *Vertex {
		key := newPositionKey(p)
		if v, ok := created[key]; ok {
			return v
		}
		v := &Vertex{Position: p, halfedge: noHalfedge}
		created[key] = v
		createdOrder = append(createdOrder, v)
		return v
	}

	var newFaces [][]*Vertex

	for _, f := range faces {

		corners := f.Vertices()
		n := len(corners)
		if n < 3 {
			continue
		}

		centroid := vertexAt(f.Centroid())

		mids := make([]*Vertex, n)
		for i := 0; i < n; i++ {
			a := corners[i].Position
			b := corners[(i+1)%n].Position
			mids[i] = vertexAt(a.Add(b).Scale(0.5))
		}

		// One quad per corner: [corner, next edge midpoint, centroid, previous edge midpoint].
		for i := 0; i < n; i++ {
			newFaces = append(newFaces, []*Vertex{
				corners[i],
				mids[i],
				centroid,
				mids[(i-1+n)%n],
			})
		}

	}

	mesh.rebuild(append(kept, createdOrder...), newFaces)

	return nil

}

// SubdivideLoop applies one round of Loop subdivision, splitting every triangle into four.
// The Mesh must be fully triangulated: if any eligible face is not a triangle, it returns
// ErrNotTriangulated without modifying the Mesh, and ErrNoFaces if there is nothing to
// subdivide.
//
// Edge points use the standard Loop stencil (3/8 the endpoints plus 1/8 the opposite
// vertices for interior edges, the plain midpoint for boundary edges). Original vertices
// are repositioned with the interior beta rule regardless of whether they lie on a
// boundary; a strict Loop reference would use a separate boundary rule, but the uniform
// formula is kept deliberately.
func (mesh *Mesh) SubdivideLoop() error {

	faces := mesh.liveFaces()
	if len(faces) == 0 {
		return ErrNoFaces
	}

	loops := make([][]*Vertex, len(faces))
	for i, f := range faces {
		loops[i] = f.Vertices()
		if len(loops[i]) != 3 {
			return ErrNotTriangulated
		}
	}

	kept := mesh.liveVertices()

	// Edge adjacency: per undirected edge, its endpoints and the vertices opposite it in
	// each bordering triangle.
	type edgeInfo struct {
		v1, v2    *Vertex
		opposites []*Vertex
	}
	edgeMap := map[edgeKey]*edgeInfo{}
	var edgeOrder []edgeKey

	for _, corners := range loops {
		for i := 0; i < 3; i++ {
			a := corners[i]
			b := corners[(i+1)%3]
			opposite := corners[(i+2)%3]
			key := newEdgeKey(a.index, b.index)
			info, ok := edgeMap[key]
			if !ok {
				info = &edgeInfo{v1: a, v2: b}
				edgeMap[key] = info
				edgeOrder = append(edgeOrder, key)
			}
			info.opposites = append(info.opposites, opposite)
		}
	}

	// A fresh Vertex per edge, at the Loop edge-point position. Positions read the old
	// vertex positions, so everything is computed before any repositioning below.
	edgeVertices := map[edgeKey]*Vertex{}
	var edgeVertexOrder []*Vertex
	for _, key := range edgeOrder {
		info := edgeMap[key]
		var p Vector
		if len(info.opposites) >= 2 {
			p = info.v1.Position.Add(info.v2.Position).Scale(3.0 / 8.0).
				Add(info.opposites[0].Position.Add(info.opposites[1].Position).Scale(1.0 / 8.0))
		} else {
			p = info.v1.Position.Add(info.v2.Position).Scale(0.5)
		}
		v := &Vertex{Position: p, halfedge: noHalfedge}
		edgeVertices[key] = v
		edgeVertexOrder = append(edgeVertexOrder, v)
	}

	// New positions for the original vertices: (1 - n*beta)*S + beta*sum(neighbors).
	newPositions := make(map[*Vertex]Vector, len(kept))
	for _, v := range kept {
		neighbors := v.Neighbors()
		n := len(neighbors)
		if n == 0 {
			continue
		}
		var beta float64
		if n == 3 {
			beta = 3.0 / 16.0
		} else {
			beta = 3.0 / (8.0 * float64(n))
		}
		sum := NewVectorZero()
		for _, nb := range neighbors {
			sum = sum.Add(nb.Position)
		}
		newPositions[v] = v.Position.Scale(1 - float64(n)*beta).Add(sum.Scale(beta))
	}

	// Four triangles per original triangle: three corner triangles plus the central one.
	var newFaces [][]*Vertex
	for _, corners := range loops {
		e0 := edgeVertices[newEdgeKey(corners[0].index, corners[1].index)]
		e1 := edgeVertices[newEdgeKey(corners[1].index, corners[2].index)]
		e2 := edgeVertices[newEdgeKey(corners[2].index, corners[0].index)]
		newFaces = append(newFaces,
			[]*Vertex{corners[0], e0, e2},
			[]*Vertex{corners[1], e1, e0},
			[]*Vertex{corners[2], e2, e1},
			[]*Vertex{e0, e1, e2},
		)
	}

	for v, p := range newPositions {
		v.Position = p
	}

	mesh.rebuild(append(kept, edgeVertexOrder...), newFaces)

	return nil

}

// SubdivideCatmullClark applies one round of Catmull-Clark subdivision, splitting every
// face with n sides into n quads. It works on general polygon meshes and returns
// ErrNoFaces, leaving the Mesh unchanged, if there are no eligible faces.
//
// Face points are face centroids. Edge points average the edge's endpoints with its two
// adjacent face points for interior edges, and fall back to the plain midpoint on
// boundaries. Interior vertices move to (Q + 2R + (n-3)S)/n, with Q the average adjacent
// face point, R the average adjacent plain edge midpoint, and S the old position; boundary
// vertices move to 3/4*S + 1/8*(Vprev + Vnext) using their two boundary neighbors.
func (mesh *Mesh) SubdivideCatmullClark() error {

	faces := mesh.liveFaces()
	if len(faces) == 0 {
		return ErrNoFaces
	}

	loops := make([][]*Vertex, len(faces))
	for i, f := range faces {
		loops[i] = f.Vertices()
	}

	kept := mesh.liveVertices()

	// A face point (centroid) per original face.
	facePoints := make([]Vector, len(faces))
	faceVertices := make([]*Vertex, len(faces))
	for i, f := range faces {
		facePoints[i] = f.Centroid()
		faceVertices[i] = &Vertex{Position: facePoints[i], halfedge: noHalfedge}
	}

	// Edge adjacency: endpoints plus the original faces bordering each undirected edge.
	type edgeInfo struct {
		v1, v2 *Vertex
		faces  []int
	}
	edgeMap := map[edgeKey]*edgeInfo{}
	var edgeOrder []edgeKey

	for faceIndex, corners := range loops {
		n := len(corners)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a := corners[i]
			b := corners[(i+1)%n]
			key := newEdgeKey(a.index, b.index)
			info, ok := edgeMap[key]
			if !ok {
				info = &edgeInfo{v1: a, v2: b}
				edgeMap[key] = info
				edgeOrder = append(edgeOrder, key)
			}
			info.faces = append(info.faces, faceIndex)
		}
	}

	// Edge points: (v1 + v2 + f1 + f2)/4 for interior edges, the midpoint for boundary ones.
	edgeVertices := map[edgeKey]*Vertex{}
	var edgeVertexOrder []*Vertex
	for _, key := range edgeOrder {
		info := edgeMap[key]
		mid := info.v1.Position.Add(info.v2.Position).Scale(0.5)
		p := mid
		if len(info.faces) >= 2 {
			p = info.v1.Position.Add(info.v2.Position).
				Add(facePoints[info.faces[0]]).Add(facePoints[info.faces[1]]).Scale(0.25)
		}
		v := &Vertex{Position: p, halfedge: noHalfedge}
		edgeVertices[key] = v
		edgeVertexOrder = append(edgeVertexOrder, v)
	}

	// Per-vertex adjacency gathered from the edge map: incident edge midpoints, adjacent
	// face points, and boundary neighbors (the far endpoint of each boundary edge).
	type vertexInfo struct {
		edgeMidSum        Vector
		edgeCount         int
		boundaryNeighbors []*Vertex
	}
	vertexMap := map[*Vertex]*vertexInfo{}
	vinfo := func(v *Vertex) *vertexInfo {
		info, ok := vertexMap[v]
		if !ok {
			info = &vertexInfo{}
			vertexMap[v] = info
		}
		return info
	}

	for _, key := range edgeOrder {
		info := edgeMap[key]
		mid := info.v1.Position.Add(info.v2.Position).Scale(0.5)
		for _, v := range []*Vertex{info.v1, info.v2} {
			vi := vinfo(v)
			vi.edgeMidSum = vi.edgeMidSum.Add(mid)
			vi.edgeCount++
		}
		if len(info.faces) < 2 {
			vinfo(info.v1).boundaryNeighbors = append(vinfo(info.v1).boundaryNeighbors, info.v2)
			vinfo(info.v2).boundaryNeighbors = append(vinfo(info.v2).boundaryNeighbors, info.v1)
		}
	}

	facePointSums := map[*Vertex]Vector{}
	facePointCounts := map[*Vertex]int{}
	for faceIndex, corners := range loops {
		for _, v := range corners {
			facePointSums[v] = facePointSums[v].Add(facePoints[faceIndex])
			facePointCounts[v]++
		}
	}

	newPositions := make(map[*Vertex]Vector, len(kept))
	for _, v := range kept {

		info, ok := vertexMap[v]
		if !ok || info.edgeCount == 0 {
			continue
		}

		if len(info.boundaryNeighbors) >= 2 {
			prev := info.boundaryNeighbors[0].Position
			next := info.boundaryNeighbors[1].Position
			newPositions[v] = v.Position.Scale(3.0 / 4.0).Add(prev.Add(next).Scale(1.0 / 8.0))
			continue
		}

		n := float64(info.edgeCount)
		q := facePointSums[v].Scale(1.0 / float64(facePointCounts[v]))
		r := info.edgeMidSum.Scale(1.0 / n)
		newPositions[v] = q.Add(r.Scale(2)).Add(v.Position.Scale(n - 3)).Scale(1.0 / n)

	}

	// n quads per original n-gon: [corner, next edge point, face point, previous edge point].
	var newFaces [][]*Vertex
	for faceIndex, corners := range loops {
		n := len(corners)
		if n < 3 {
			continue
		}
		fp := faceVertices[faceIndex]
		for i := 0; i < n; i++ {
			eNext := edgeVertices[newEdgeKey(corners[i].index, corners[(i+1)%n].index)]
			ePrev := edgeVertices[newEdgeKey(corners[(i-1+n)%n].index, corners[i].index)]
			newFaces = append(newFaces, []*Vertex{corners[i], eNext, fp, ePrev})
		}
	}

	for v, p := range newPositions {
		v.Position = p
	}

	kept = append(kept, edgeVertexOrder...)
	kept = append(kept, faceVertices...)
	mesh.rebuild(kept, newFaces)

	return nil

}
