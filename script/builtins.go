package script

import (
	"fmt"
	"path/filepath"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/hedralab/hedra"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms hedra script source before passing it to zygomys:
//
//  1. Lisp line comments become zygomys line comments: ; -> //
//  2. Kebab-case identifiers become underscore form: subdivide-loop -> subdivide_loop
//     (zygomys interprets hyphens as the subtraction operator).
//
// Both transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// floatArg returns the float at position i of args, or the fallback if absent.
func floatArg(args []zygo.Sexp, i int, fallback float64) (float64, error) {
	if i >= len(args) {
		return fallback, nil
	}
	return toFloat64(args[i])
}

// intArg returns the integer at position i of args, or the fallback if absent.
func intArg(args []zygo.Sexp, i int, fallback int) (int, error) {
	if i >= len(args) {
		return fallback, nil
	}
	return toInt(args[i])
}

// ---------------------------------------------------------------------------
// Evaluation state
// ---------------------------------------------------------------------------

// evalState carries the scene being edited and the human-readable evaluation log across
// builtin calls within one evaluation.
type evalState struct {
	scene *hedra.Scene
	log   []string
}

func (st *evalState) logf(format string, args ...any) {
	st.log = append(st.log, fmt.Sprintf(format, args...))
}

// selected returns the currently selected object, or an error for scripts that invoke an
// operator with nothing selected.
func (st *evalState) selected(op string) (*hedra.SceneObject, error) {
	if object := st.scene.Selected(); object != nil {
		return object, nil
	}
	return nil, fmt.Errorf("%s: no object selected", op)
}

// addMesh wraps the mesh in a scene object, selects it, and logs its statistics.
func (st *evalState) addMesh(mesh *hedra.Mesh, kind string) {
	object := st.scene.AddObject(mesh, "")
	st.scene.Select(object)
	stats := mesh.Statistics()
	st.logf("%s: added %q (%d vertices, %d faces)", kind, object.Name, stats.Vertices, stats.Faces)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the hedra DSL builtins into a zygomys environment. All
// builtins take positional arguments and operate on the state's scene; most act on the
// selected object.
//
// Source code must be preprocessed with preprocessSource() before evaluation so that
// kebab-case forms like (subdivide-loop) resolve to the registered names.
func registerBuiltins(env *zygo.Zlisp, st *evalState) {

	// -----------------------------------------------------------------------
	// Primitives: each adds a new object to the scene and selects it.
	// -----------------------------------------------------------------------

	env.AddFunction("cube", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		size, err := floatArg(args, 0, 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cube: %w", err)
		}
		st.addMesh(hedra.NewCube(size), "cube")
		return zygo.SexpNull, nil
	})

	env.AddFunction("tetrahedron", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		size, err := floatArg(args, 0, 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("tetrahedron: %w", err)
		}
		st.addMesh(hedra.NewTetrahedron(size), "tetrahedron")
		return zygo.SexpNull, nil
	})

	env.AddFunction("octahedron", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		size, err := floatArg(args, 0, 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("octahedron: %w", err)
		}
		st.addMesh(hedra.NewOctahedron(size), "octahedron")
		return zygo.SexpNull, nil
	})

	env.AddFunction("icosahedron", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		size, err := floatArg(args, 0, 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("icosahedron: %w", err)
		}
		st.addMesh(hedra.NewIcosahedron(size), "icosahedron")
		return zygo.SexpNull, nil
	})

	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		radius, err := floatArg(args, 0, 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		subdivisions, err := intArg(args, 1, 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		st.addMesh(hedra.NewSphere(radius, subdivisions), "sphere")
		return zygo.SexpNull, nil
	})

	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		radius, err := floatArg(args, 0, 0.5)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		height, err := floatArg(args, 1, 2.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		segments, err := intArg(args, 2, 16)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		st.addMesh(hedra.NewCylinder(radius, height, segments), "cylinder")
		return zygo.SexpNull, nil
	})

	env.AddFunction("cone", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		radius, err := floatArg(args, 0, 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cone: %w", err)
		}
		height, err := floatArg(args, 1, 2.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cone: %w", err)
		}
		segments, err := intArg(args, 2, 16)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cone: %w", err)
		}
		st.addMesh(hedra.NewCone(radius, height, segments), "cone")
		return zygo.SexpNull, nil
	})

	env.AddFunction("torus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		major, err := floatArg(args, 0, 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		minor, err := floatArg(args, 1, 0.3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		majorSegments, err := intArg(args, 2, 16)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		minorSegments, err := intArg(args, 3, 8)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		st.addMesh(hedra.NewTorus(major, minor, majorSegments, minorSegments), "torus")
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// Mesh operators: act on the selected object's mesh.
	// -----------------------------------------------------------------------

	env.AddFunction("triangulate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("triangulate")
		if err != nil {
			return zygo.SexpNull, err
		}
		split := object.Mesh.Triangulate()
		stats := object.Mesh.Statistics()
		st.logf("triangulate: split %d faces, %q now has %d faces", split, object.Name, stats.Faces)
		return &zygo.SexpInt{Val: int64(split)}, nil
	})

	env.AddFunction("subdivide_linear", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("subdivide-linear")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := object.Mesh.SubdivideLinear(); err != nil {
			return zygo.SexpNull, fmt.Errorf("subdivide-linear: %w", err)
		}
		stats := object.Mesh.Statistics()
		st.logf("subdivide-linear: %q now has %d vertices, %d faces", object.Name, stats.Vertices, stats.Faces)
		return zygo.SexpNull, nil
	})

	env.AddFunction("subdivide_loop", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("subdivide-loop")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := object.Mesh.SubdivideLoop(); err != nil {
			return zygo.SexpNull, fmt.Errorf("subdivide-loop: %w", err)
		}
		stats := object.Mesh.Statistics()
		st.logf("subdivide-loop: %q now has %d vertices, %d faces", object.Name, stats.Vertices, stats.Faces)
		return zygo.SexpNull, nil
	})

	env.AddFunction("subdivide_catmull_clark", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("subdivide-catmull-clark")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := object.Mesh.SubdivideCatmullClark(); err != nil {
			return zygo.SexpNull, fmt.Errorf("subdivide-catmull-clark: %w", err)
		}
		stats := object.Mesh.Statistics()
		st.logf("subdivide-catmull-clark: %q now has %d vertices, %d faces", object.Name, stats.Vertices, stats.Faces)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// Transforms: adjust the selected object's transform.
	// -----------------------------------------------------------------------

	transformArgs := func(op string, args []zygo.Sexp) (hedra.Vector, error) {
		if len(args) != 3 {
			return hedra.Vector{}, fmt.Errorf("%s: expected 3 numbers, got %d arguments", op, len(args))
		}
		x, errX := toFloat64(args[0])
		y, errY := toFloat64(args[1])
		z, errZ := toFloat64(args[2])
		if errX != nil || errY != nil || errZ != nil {
			return hedra.Vector{}, fmt.Errorf("%s: expected 3 numbers", op)
		}
		return hedra.NewVector(x, y, z), nil
	}

	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("translate")
		if err != nil {
			return zygo.SexpNull, err
		}
		delta, err := transformArgs("translate", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		object.Transform.Position = object.Transform.Position.Add(delta)
		st.logf("translate: %q moved to %s", object.Name, object.Transform.Position)
		return zygo.SexpNull, nil
	})

	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("rotate")
		if err != nil {
			return zygo.SexpNull, err
		}
		degrees, err := transformArgs("rotate", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		object.Transform.Rotation = object.Transform.Rotation.Add(hedra.NewVector(
			hedra.ToRadians(degrees.X),
			hedra.ToRadians(degrees.Y),
			hedra.ToRadians(degrees.Z),
		))
		st.logf("rotate: %q rotated by (%.1f, %.1f, %.1f) degrees", object.Name, degrees.X, degrees.Y, degrees.Z)
		return zygo.SexpNull, nil
	})

	env.AddFunction("scale_by", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("scale-by")
		if err != nil {
			return zygo.SexpNull, err
		}
		factors, err := transformArgs("scale-by", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		s := object.Transform.Scale
		object.Transform.Scale = hedra.NewVector(s.X*factors.X, s.Y*factors.Y, s.Z*factors.Z)
		st.logf("scale-by: %q scale now %s", object.Name, object.Transform.Scale)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// Scene management.
	// -----------------------------------------------------------------------

	env.AddFunction("select", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("select: expected an object name")
		}
		objectName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("select: %w", err)
		}
		object := st.scene.ObjectByName(objectName)
		if object == nil {
			return zygo.SexpNull, fmt.Errorf("select: no object named %q", objectName)
		}
		st.scene.Select(object)
		st.logf("select: %q", object.Name)
		return zygo.SexpNull, nil
	})

	env.AddFunction("duplicate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if _, err := st.selected("duplicate"); err != nil {
			return zygo.SexpNull, err
		}
		copyObject := st.scene.DuplicateSelected()
		st.logf("duplicate: added %q", copyObject.Name)
		return zygo.SexpNull, nil
	})

	env.AddFunction("delete_object", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("delete-object")
		if err != nil {
			return zygo.SexpNull, err
		}
		st.scene.RemoveObject(object)
		st.logf("delete-object: removed %q", object.Name)
		return zygo.SexpNull, nil
	})

	env.AddFunction("clear_scene", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		st.scene.Clear()
		st.logf("clear-scene: removed all objects")
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// Queries.
	// -----------------------------------------------------------------------

	env.AddFunction("stats", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("stats")
		if err != nil {
			return zygo.SexpNull, err
		}
		s := object.Mesh.Statistics()
		st.logf("stats: %q: %d vertices, %d edges, %d faces (%d triangles, %d quads, %d others), %d halfedges",
			object.Name, s.Vertices, s.Edges, s.Faces, s.Triangles, s.Quads, s.Others, s.Halfedges)
		return zygo.SexpNull, nil
	})

	env.AddFunction("surface_area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("surface-area")
		if err != nil {
			return zygo.SexpNull, err
		}
		area := object.Mesh.SurfaceArea()
		st.logf("surface-area: %q: %.6f", object.Name, area)
		return &zygo.SexpFloat{Val: area}, nil
	})

	env.AddFunction("volume", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		object, err := st.selected("volume")
		if err != nil {
			return zygo.SexpNull, err
		}
		volume := object.Mesh.Volume()
		st.logf("volume: %q: %.6f", object.Name, volume)
		return &zygo.SexpFloat{Val: volume}, nil
	})

	// -----------------------------------------------------------------------
	// I/O.
	// -----------------------------------------------------------------------

	env.AddFunction("load_obj", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("load-obj: expected a file path")
		}
		path, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("load-obj: %w", err)
		}
		mesh, err := hedra.LoadOBJFile(path)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("load-obj: %w", err)
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		object := st.scene.AddObject(mesh, base)
		st.scene.Select(object)
		stats := mesh.Statistics()
		st.logf("load-obj: added %q (%d vertices, %d faces)", object.Name, stats.Vertices, stats.Faces)
		return zygo.SexpNull, nil
	})

	env.AddFunction("export_obj", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("export-obj: expected a file path")
		}
		path, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("export-obj: %w", err)
		}
		object, err := st.selected("export-obj")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := object.Mesh.ExportOBJFile(path); err != nil {
			return zygo.SexpNull, fmt.Errorf("export-obj: %w", err)
		}
		st.logf("export-obj: wrote %q to %s", object.Name, path)
		return zygo.SexpNull, nil
	})

}
