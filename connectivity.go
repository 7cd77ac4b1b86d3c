package hedra

// edgeKey identifies an undirected edge by the indices of its two endpoint Vertices.
type edgeKey struct {
	a, b VertexIndex
}

func newEdgeKey(v1, v2 VertexIndex) edgeKey {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return edgeKey{v1, v2}
}

// BuildConnectivity builds full halfedge connectivity from faces expressed as ordered
// Vertex loops. Every Vertex in the loops must already live in the Mesh's vertex
// collection; faces with fewer than 3 Vertices are skipped. Open boundaries are capped
// with synthetic boundary Halfedges and Faces.
//
// The replacement edge/face/halfedge collections are built fully off to the side and only
// installed on the Mesh at the end, so an abrupt failure mid-build leaves the Mesh as it was.
func (mesh *Mesh) BuildConnectivity(faces [][]*Vertex) {

	var (
		edges     []*Edge
		faceList  []*Face
		halfedges []*Halfedge
	)

	// Tracks the halfedge that first touched each undirected edge. While its twin link is
	// still unset, the edge is open; any left open after all faces are processed is a
	// mesh boundary. openOrder keeps boundary synthesis deterministic.
	open := map[edgeKey]*Halfedge{}
	var openOrder []edgeKey

	// First halfedge whose source is each Vertex; first touch wins.
	firstOutgoing := map[VertexIndex]HalfedgeIndex{}

	for _, loop := range faces {

		if len(loop) < 3 {
			continue
		}

		n := len(loop)
		base := len(halfedges)

		f := &Face{mesh: mesh, index: FaceIndex(len(faceList)), halfedge: HalfedgeIndex(base)}
		faceList = append(faceList, f)

		for i := 0; i < n; i++ {
			halfedges = append(halfedges, &Halfedge{
				mesh:   mesh,
				index:  HalfedgeIndex(base + i),
				next:   noHalfedge,
				twin:   noHalfedge,
				vertex: noVertex,
				edge:   noEdge,
				face:   noFace,
			})
		}

		for i := 0; i < n; i++ {

			h := halfedges[base+i]
			vCurr := loop[i]
			vNext := loop[(i+1)%n]

			h.vertex = vNext.index
			h.next = HalfedgeIndex(base + (i+1)%n)
			h.face = f.index

			key := newEdgeKey(vCurr.index, vNext.index)

			if other, ok := open[key]; !ok {
				e := &Edge{mesh: mesh, index: EdgeIndex(len(edges)), halfedge: h.index}
				edges = append(edges, e)
				h.edge = e.index
				open[key] = h
				openOrder = append(openOrder, key)
			} else if other.twin == noHalfedge {
				h.twin = other.index
				other.twin = h.index
				h.edge = other.edge
			} else {
				// Third or later halfedge on the same undirected edge: non-manifold
				// input. Share the Edge but leave the extra halfedge untwinned.
				h.edge = other.edge
			}

			if _, ok := firstOutgoing[vCurr.index]; !ok {
				firstOutgoing[vCurr.index] = h.index
			}

		}

	}

	// Any edge touched exactly once is a mesh boundary: cap it with a synthetic boundary
	// Halfedge on its own boundary Face. Boundary halfedges self-loop (next points to
	// themselves) rather than being stitched into a proper boundary cycle.
	for _, key := range openOrder {

		h := open[key]
		if h.twin != noHalfedge {
			continue
		}

		hb := &Halfedge{
			mesh:   mesh,
			index:  HalfedgeIndex(len(halfedges)),
			next:   noHalfedge,
			twin:   h.index,
			vertex: noVertex,
			edge:   h.edge,
			face:   noFace,
		}
		halfedges = append(halfedges, hb)
		h.twin = hb.index

		// The boundary halfedge runs opposite to h, so it targets h's source vertex:
		// the target of the halfedge preceding h in its face loop. The walk is bounded
		// in case the input produced a broken loop; the degenerate same-vertex fallback
		// keeps malformed meshes from hanging the build.
		hb.vertex = h.vertex
		prev := h
		for steps := len(halfedges); steps > 0; steps-- {
			if prev.next == h.index {
				hb.vertex = prev.vertex
				break
			}
			if prev.next < 0 || int(prev.next) >= len(halfedges) {
				break
			}
			prev = halfedges[prev.next]
		}

		hb.next = hb.index

		fb := &Face{mesh: mesh, index: FaceIndex(len(faceList)), halfedge: hb.index, boundary: true}
		faceList = append(faceList, fb)
		hb.face = fb.index

	}

	// Install the new collections and rewire the vertex handles.
	mesh.edges = edges
	mesh.faces = faceList
	mesh.halfedges = halfedges

	for _, v := range mesh.vertices {
		v.halfedge = noHalfedge
	}
	for index, h := range firstOutgoing {
		if v := mesh.vertexAt(index); v != nil {
			v.halfedge = h
		}
	}

}
