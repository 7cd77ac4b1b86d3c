// Package hedra is an interactive polygon-mesh editing toolkit built around a halfedge
// mesh data structure.
//
// The core of the package is the Mesh type and its four element kinds (Vertex, Edge,
// Face, Halfedge), the Connectivity Builder that wires them together from raw face loops
// (BuildConnectivity), the per-element geometric queries (normals, areas, valence,
// volume), and the global remeshing operators: Triangulate, SubdivideLinear,
// SubdivideLoop, and SubdivideCatmullClark. Around the core sit thin collaborators: OBJ
// import/export, primitive generators, a Scene of transformed objects, and an orbit
// Camera with screen-space projection. The examples directory contains an interactive
// wireframe editor built on Ebitengine and a headless runner for the script package's
// Lisp DSL.
package hedra
