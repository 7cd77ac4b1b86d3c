package hedra

import (
	"fmt"
	"math"
)

// SceneObject pairs a Mesh with a Transform and display state inside a Scene.
type SceneObject struct {
	Name      string
	Mesh      *Mesh
	Transform Transform
	Visible   bool
	Wireframe bool
	Color     Color
}

// NewSceneObject returns a new visible SceneObject wrapping the given Mesh.
func NewSceneObject(mesh *Mesh, name string) *SceneObject {
	return &SceneObject{
		Name:      name,
		Mesh:      mesh,
		Transform: NewTransform(),
		Visible:   true,
		Color:     NewColor(0.7, 0.7, 0.7, 1),
	}
}

// TransformedMesh returns a copy of the object's Mesh with its Transform baked into the
// vertex positions, connectivity rebuilt.
func (object *SceneObject) TransformedMesh() *Mesh {
	return object.Mesh.Transformed(object.Transform.Matrix())
}

// BoundingBox returns the axis-aligned bounding box of the object's Mesh with its
// Transform applied.
func (object *SceneObject) BoundingBox() (Vector, Vector) {

	matrix := object.Transform.Matrix()
	first := true
	var min, max Vector

	for _, v := range object.Mesh.Vertices() {
		if v.Deleted() {
			continue
		}
		p := matrix.MultVec(v.Position)
		if first {
			min, max = p, p
			first = false
			continue
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	return min, max

}

// Scene holds an ordered collection of SceneObjects, a current selection, and the display
// flags the viewer consumes. It carries no ambient global state; everything the viewer
// needs is explicit here.
type Scene struct {
	objects     []*SceneObject
	selected    *SceneObject
	nameCounter int

	ShowGrid    bool
	ShowAxes    bool
	GridSize    int
	GridSpacing float64
}

// NewScene returns a new, empty Scene with grid and axes enabled.
func NewScene() *Scene {
	return &Scene{
		ShowGrid:    true,
		ShowAxes:    true,
		GridSize:    20,
		GridSpacing: 1.0,
	}
}

// Objects returns the Scene's objects in insertion order.
func (scene *Scene) Objects() []*SceneObject {
	return scene.objects
}

// AddObject wraps the Mesh in a new SceneObject and adds it to the Scene. An empty name
// auto-names the object Object_N.
func (scene *Scene) AddObject(mesh *Mesh, name string) *SceneObject {
	if name == "" {
		scene.nameCounter++
		name = fmt.Sprintf("Object_%d", scene.nameCounter)
	}
	object := NewSceneObject(mesh, name)
	scene.objects = append(scene.objects, object)
	return object
}

// RemoveObject removes the object from the Scene, clearing the selection if it was selected.
func (scene *Scene) RemoveObject(object *SceneObject) {
	for i, o := range scene.objects {
		if o == object {
			scene.objects = append(scene.objects[:i], scene.objects[i+1:]...)
			if scene.selected == object {
				scene.selected = nil
			}
			return
		}
	}
}

// Select makes the given object the Scene's selection. Passing nil clears the selection.
func (scene *Scene) Select(object *SceneObject) {
	scene.selected = object
}

// Selected returns the currently selected object, or nil.
func (scene *Scene) Selected() *SceneObject {
	return scene.selected
}

// ObjectByName returns the first object with the given name, or nil.
func (scene *Scene) ObjectByName(name string) *SceneObject {
	for _, o := range scene.objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Clear removes all objects from the Scene.
func (scene *Scene) Clear() {
	scene.objects = nil
	scene.selected = nil
}

// DuplicateSelected clones the selected object (mesh, transform, and color), names the
// copy with a _copy suffix, nudges it 2 units along X, and selects it. It returns nil if
// nothing is selected.
func (scene *Scene) DuplicateSelected() *SceneObject {

	source := scene.selected
	if source == nil {
		return nil
	}

	copyObject := scene.AddObject(source.Mesh.Clone(), source.Name+"_copy")
	copyObject.Transform = source.Transform.Clone()
	copyObject.Transform.Position = copyObject.Transform.Position.Add(NewVector(2, 0, 0))
	copyObject.Color = source.Color

	scene.Select(copyObject)

	return copyObject

}

// Bounds returns the union of the transformed bounding boxes of all visible objects. An
// empty Scene defaults to a box from (-5,-5,-5) to (5,5,5), and the result is grown to a
// minimum span of 10 about its center so the camera always has something to frame.
func (scene *Scene) Bounds() (Vector, Vector) {

	first := true
	var min, max Vector

	for _, object := range scene.objects {
		if !object.Visible {
			continue
		}
		objectMin, objectMax := object.BoundingBox()
		if first {
			min, max = objectMin, objectMax
			first = false
			continue
		}
		min.X = math.Min(min.X, objectMin.X)
		min.Y = math.Min(min.Y, objectMin.Y)
		min.Z = math.Min(min.Z, objectMin.Z)
		max.X = math.Max(max.X, objectMax.X)
		max.Y = math.Max(max.Y, objectMax.Y)
		max.Z = math.Max(max.Z, objectMax.Z)
	}

	if first {
		return NewVector(-5, -5, -5), NewVector(5, 5, 5)
	}

	size := max.Sub(min)
	span := math.Max(size.X, math.Max(size.Y, size.Z))
	const minSpan = 10.0
	if span < minSpan {
		center := min.Add(max).Scale(0.5)
		half := NewVector(minSpan/2, minSpan/2, minSpan/2)
		min = center.Sub(half)
		max = center.Add(half)
	}

	return min, max

}

// ObjectAt returns the visible object whose transformed bounding-box corner projects
// closest to the given screen position, within a 50-pixel margin, using the provided view
// and projection matrices and viewport size. It returns nil if nothing is close enough.
func (scene *Scene) ObjectAt(x, y float64, width, height int, view, proj Matrix4) *SceneObject {

	const margin = 50.0

	mvp := view.Mult(proj)

	var best *SceneObject
	bestDistance := math.Inf(1)

	for _, object := range scene.objects {

		if !object.Visible {
			continue
		}

		min, max := object.BoundingBox()

		for i := 0; i < 8; i++ {

			corner := NewVector(min.X, min.Y, min.Z)
			if i&1 != 0 {
				corner.X = max.X
			}
			if i&2 != 0 {
				corner.Y = max.Y
			}
			if i&4 != 0 {
				corner.Z = max.Z
			}

			clip := mvp.MultVecW(corner)
			if clip.W <= 1e-9 {
				continue
			}

			screenX := (clip.X/clip.W + 1) * float64(width) / 2
			screenY := (1 - clip.Y/clip.W) * float64(height) / 2

			dx := screenX - x
			dy := screenY - y
			if math.Abs(dx) < margin && math.Abs(dy) < margin {
				distance := dx*dx + dy*dy
				if distance < bestDistance {
					bestDistance = distance
					best = object
				}
			}

		}

	}

	return best

}
