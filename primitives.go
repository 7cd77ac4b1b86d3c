package hedra

import "math"

// The primitive generators build an explicit vertex position list and face index list,
// then hand both to the Connectivity Builder. Vertex ordering and face winding are part
// of the contract: exported geometry stays comparable across versions.

func buildPrimitive(positions []Vector, faces [][]int) *Mesh {

	mesh := NewMesh()

	vertices := make([]*Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = mesh.AddVertex(p)
	}

	loops := make([][]*Vertex, len(faces))
	for i, face := range faces {
		loop := make([]*Vertex, len(face))
		for j, index := range face {
			loop[j] = vertices[index]
		}
		loops[i] = loop
	}

	mesh.BuildConnectivity(loops)

	return mesh

}

// NewCube returns a cube of the given side length, centered at the origin, made of 6 quads.
func NewCube(size float64) *Mesh {

	half := size / 2

	positions := []Vector{
		{-half, -half, -half, 0},
		{-half, -half, half, 0},
		{half, -half, half, 0},
		{half, -half, -half, 0},
		{-half, half, -half, 0},
		{-half, half, half, 0},
		{half, half, half, 0},
		{half, half, -half, 0},
	}

	faces := [][]int{
		{0, 3, 2, 1}, // Bottom
		{4, 5, 6, 7}, // Top
		{0, 1, 5, 4}, // Left
		{2, 3, 7, 6}, // Right
		{0, 4, 7, 3}, // Back
		{1, 2, 6, 5}, // Front
	}

	return buildPrimitive(positions, faces)

}

// NewTetrahedron returns a regular tetrahedron of the given size, centered at the origin.
func NewTetrahedron(size float64) *Mesh {

	a := size / math.Sqrt2

	positions := []Vector{
		{a, 0, -a / math.Sqrt2, 0},
		{-a, 0, -a / math.Sqrt2, 0},
		{0, a, a / math.Sqrt2, 0},
		{0, -a, a / math.Sqrt2, 0},
	}

	faces := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}

	return buildPrimitive(positions, faces)

}

// NewOctahedron returns a regular octahedron of the given size, with its 6 vertices on the
// coordinate axes.
func NewOctahedron(size float64) *Mesh {

	scale := size / math.Sqrt2

	positions := []Vector{
		{scale, 0, 0, 0},  // +X
		{-scale, 0, 0, 0}, // -X
		{0, scale, 0, 0},  // +Y
		{0, -scale, 0, 0}, // -Y
		{0, 0, scale, 0},  // +Z
		{0, 0, -scale, 0}, // -Z
	}

	faces := [][]int{
		// Upper half
		{0, 2, 4},
		{2, 1, 4},
		{1, 3, 4},
		{3, 0, 4},
		// Lower half
		{2, 0, 5},
		{1, 2, 5},
		{3, 1, 5},
		{0, 3, 5},
	}

	return buildPrimitive(positions, faces)

}

// NewIcosahedron returns a regular icosahedron (20 triangles) of the given size.
func NewIcosahedron(size float64) *Mesh {

	phi := (1.0 + math.Sqrt(5.0)) / 2.0
	scale := size / math.Sqrt(phi*phi+1)

	raw := []Vector{
		{-1, phi, 0, 0},
		{1, phi, 0, 0},
		{-1, -phi, 0, 0},
		{1, -phi, 0, 0},

		{0, -1, phi, 0},
		{0, 1, phi, 0},
		{0, -1, -phi, 0},
		{0, 1, -phi, 0},

		{phi, 0, -1, 0},
		{phi, 0, 1, 0},
		{-phi, 0, -1, 0},
		{-phi, 0, 1, 0},
	}

	positions := make([]Vector, len(raw))
	for i, p := range raw {
		positions[i] = p.Scale(scale)
	}

	faces := [][]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	return buildPrimitive(positions, faces)

}

// NewSphere returns a sphere approximated by linearly subdividing an icosahedron the given
// number of times and projecting the vertices onto the sphere of the given radius after
// each round.
func NewSphere(radius float64, subdivisions int) *Mesh {

	mesh := NewIcosahedron(radius)

	for i := 0; i < subdivisions; i++ {

		if err := mesh.SubdivideLinear(); err != nil {
			break
		}

		for _, v := range mesh.vertices {
			if v.deleted {
				continue
			}
			v.Position = v.Position.Unit().Scale(radius)
		}

	}

	return mesh

}

// NewCylinder returns a cylinder with the given radius and height, its axis along Y, with
// quad sides and triangle-fanned caps around center vertices.
func NewCylinder(radius, height float64, segments int) *Mesh {

	mesh := NewMesh()
	var rim []*Vertex

	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x := radius * math.Cos(angle)
		z := radius * math.Sin(angle)
		rim = append(rim, mesh.AddVertex(NewVector(x, -height/2, z)))
		rim = append(rim, mesh.AddVertex(NewVector(x, height/2, z)))
	}

	bottomCenter := mesh.AddVertex(NewVector(0, -height/2, 0))
	topCenter := mesh.AddVertex(NewVector(0, height/2, 0))

	var faces [][]*Vertex

	// Side quads.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		v0 := rim[i*2]        // bottom current
		v1 := rim[i*2+1]      // top current
		v2 := rim[next*2+1]   // top next
		v3 := rim[next*2]     // bottom next
		faces = append(faces, []*Vertex{v0, v3, v2, v1})
	}

	// Bottom cap.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		faces = append(faces, []*Vertex{rim[i*2], bottomCenter, rim[next*2]})
	}

	// Top cap.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		faces = append(faces, []*Vertex{rim[i*2+1], rim[next*2+1], topCenter})
	}

	mesh.BuildConnectivity(faces)

	return mesh

}

// NewCone returns a cone with the given base radius and height, its apex up along Y, made
// of triangles fanned from the apex and the base center.
func NewCone(radius, height float64, segments int) *Mesh {

	mesh := NewMesh()

	apex := mesh.AddVertex(NewVector(0, height/2, 0))
	baseCenter := mesh.AddVertex(NewVector(0, -height/2, 0))

	var rim []*Vertex
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x := radius * math.Cos(angle)
		z := radius * math.Sin(angle)
		rim = append(rim, mesh.AddVertex(NewVector(x, -height/2, z)))
	}

	var faces [][]*Vertex

	for i := 0; i < segments; i++ {
		v1 := rim[i]
		v2 := rim[(i+1)%segments]
		faces = append(faces, []*Vertex{apex, v2, v1})
	}

	for i := 0; i < segments; i++ {
		v1 := rim[i]
		v2 := rim[(i+1)%segments]
		faces = append(faces, []*Vertex{baseCenter, v1, v2})
	}

	mesh.BuildConnectivity(faces)

	return mesh

}

// NewTorus returns a torus with the given major (ring) and minor (tube) radii, made of
// majorSegments * minorSegments quads.
func NewTorus(majorRadius, minorRadius float64, majorSegments, minorSegments int) *Mesh {

	mesh := NewMesh()
	var vertices []*Vertex

	for i := 0; i < majorSegments; i++ {

		theta := 2 * math.Pi * float64(i) / float64(majorSegments)
		cosTheta := math.Cos(theta)
		sinTheta := math.Sin(theta)

		for j := 0; j < minorSegments; j++ {

			phi := 2 * math.Pi * float64(j) / float64(minorSegments)
			cosPhi := math.Cos(phi)
			sinPhi := math.Sin(phi)

			x := (majorRadius + minorRadius*cosPhi) * cosTheta
			y := minorRadius * sinPhi
			z := (majorRadius + minorRadius*cosPhi) * sinTheta

			vertices = append(vertices, mesh.AddVertex(NewVector(x, y, z)))

		}

	}

	var faces [][]*Vertex

	for i := 0; i < majorSegments; i++ {
		nextI := (i + 1) % majorSegments
		for j := 0; j < minorSegments; j++ {
			nextJ := (j + 1) % minorSegments
			faces = append(faces, []*Vertex{
				vertices[i*minorSegments+j],
				vertices[nextI*minorSegments+j],
				vertices[nextI*minorSegments+nextJ],
				vertices[i*minorSegments+nextJ],
			})
		}
	}

	mesh.BuildConnectivity(faces)

	return mesh

}
