package hedra

import "math"

// Matrix4 represents a 4x4 matrix for translation, scale, rotation, and projection.
// A Matrix4 in hedra is row-major and uses the row-vector convention: a point is
// transformed as v * M, so A.Mult(B) applies A first, then B.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// The rotation is counter-clockwise when looking down the axis towards the origin.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	axis := NewVector(x, y, z).Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewLookAtMatrix returns a view Matrix4 for a camera at eye, looking at target, with the
// given up direction.
func NewLookAtMatrix(eye, target, up Vector) Matrix4 {

	f := target.Sub(eye).Unit()
	s := f.Cross(up).Unit()
	u := s.Cross(f)

	mat := NewMatrix4()

	mat[0][0] = s.X
	mat[0][1] = u.X
	mat[0][2] = -f.X

	mat[1][0] = s.Y
	mat[1][1] = u.Y
	mat[1][2] = -f.Y

	mat[2][0] = s.Z
	mat[2][1] = u.Z
	mat[2][2] = -f.Z

	mat[3][0] = -s.Dot(eye)
	mat[3][1] = -u.Dot(eye)
	mat[3][2] = f.Dot(eye)

	return mat

}

// NewProjectionPerspective returns a perspective projection Matrix4 with the given vertical
// field of view (in degrees), near and far clipping distances, and aspect ratio (width / height).
// Transformed points end up in clip space; dividing by the resulting W gives normalized device coordinates.
func NewProjectionPerspective(fovDegrees, near, far, aspect float64) Matrix4 {

	t := math.Tan(ToRadians(fovDegrees) / 2)

	mat := Matrix4{}

	mat[0][0] = 1 / (aspect * t)
	mat[1][1] = 1 / t
	mat[2][2] = (far + near) / (near - far)
	mat[2][3] = -1
	mat[3][2] = (2 * far * near) / (near - far)

	return mat

}

// Mult multiplies the calling Matrix4 by the other Matrix4 provided, returning the result.
// Under the row-vector convention this means the calling Matrix4's transformation is applied first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			newMat[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c] + matrix[r][3]*other[3][c]
		}
	}

	return newMat

}

// MultVec transforms the given Vector as a point (W assumed to be 1), discarding the resulting W.
func (matrix Matrix4) MultVec(vec Vector) Vector {

	return NewVector(
		matrix[0][0]*vec.X+matrix[1][0]*vec.Y+matrix[2][0]*vec.Z+matrix[3][0],
		matrix[0][1]*vec.X+matrix[1][1]*vec.Y+matrix[2][1]*vec.Z+matrix[3][1],
		matrix[0][2]*vec.X+matrix[1][2]*vec.Y+matrix[2][2]*vec.Z+matrix[3][2],
	)

}

// MultVecW transforms the given Vector as a point with an explicit homogeneous coordinate of 1,
// keeping the resulting W component (needed for the perspective divide).
func (matrix Matrix4) MultVecW(vec Vector) Vector {

	return Vector{
		matrix[0][0]*vec.X + matrix[1][0]*vec.Y + matrix[2][0]*vec.Z + matrix[3][0],
		matrix[0][1]*vec.X + matrix[1][1]*vec.Y + matrix[2][1]*vec.Z + matrix[3][1],
		matrix[0][2]*vec.X + matrix[1][2]*vec.Y + matrix[2][2]*vec.Z + matrix[3][2],
		matrix[0][3]*vec.X + matrix[1][3]*vec.Y + matrix[2][3]*vec.Z + matrix[3][3],
	}

}

// Transposed transposes the Matrix4, switching it from being row-major to being column-major.
func (matrix Matrix4) Transposed() Matrix4 {

	newMat := Matrix4{}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			newMat[c][r] = matrix[r][c]
		}
	}

	return newMat

}

// IsIdentity returns true if the Matrix4 is close enough to the identity Matrix4.
func (matrix Matrix4) IsIdentity() bool {

	identity := NewMatrix4()

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(matrix[r][c]-identity[r][c]) > 1e-8 {
				return false
			}
		}
	}

	return true

}
