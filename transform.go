package hedra

// Transform positions, rotates, and scales an object in the scene. Rotation is stored as
// Euler angles in radians and applied X, then Y, then Z.
type Transform struct {
	Position Vector
	Rotation Vector // Euler angles in radians, applied in X, Y, Z order
	Scale    Vector
}

// NewTransform returns a new identity Transform.
func NewTransform() Transform {
	return Transform{
		Scale: NewVector(1, 1, 1),
	}
}

// Matrix composes the Transform into a single Matrix4, applying scale first, then the
// three rotations, then translation.
func (transform Transform) Matrix() Matrix4 {
	return NewMatrix4Scale(transform.Scale.X, transform.Scale.Y, transform.Scale.Z).
		Mult(NewMatrix4Rotate(1, 0, 0, transform.Rotation.X)).
		Mult(NewMatrix4Rotate(0, 1, 0, transform.Rotation.Y)).
		Mult(NewMatrix4Rotate(0, 0, 1, transform.Rotation.Z)).
		Mult(NewMatrix4Translate(transform.Position.X, transform.Position.Y, transform.Position.Z))
}

// ApplyTo transforms the given point by the Transform's Matrix.
func (transform Transform) ApplyTo(point Vector) Vector {
	return transform.Matrix().MultVec(point)
}

// Clone returns a copy of the Transform.
func (transform Transform) Clone() Transform {
	return transform
}
