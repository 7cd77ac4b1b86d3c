package hedra

import "math"

// Camera is an orbit camera: it circles a target point at a distance of Radius, with its
// position given by the spherical angles Theta (azimuth) and Phi (elevation), both in
// degrees. Phi is clamped away from the poles to avoid gimbal lock.
type Camera struct {
	Target Vector
	Radius float64
	Theta  float64 // Azimuth angle in degrees
	Phi    float64 // Elevation angle in degrees, clamped to [1, 179]

	FOV  float64 // Vertical field of view in degrees
	Near float64
	Far  float64
}

// NewCamera returns a new orbit Camera looking at the origin from a comfortable distance.
func NewCamera() *Camera {
	return &Camera{
		Radius: 10,
		Theta:  45,
		Phi:    45,
		FOV:    60,
		Near:   0.1,
		Far:    1000,
	}
}

// Position returns the Camera's position in world space, derived from its spherical
// coordinates about the Target.
func (camera *Camera) Position() Vector {

	theta := ToRadians(camera.Theta)
	phi := ToRadians(camera.Phi)

	return NewVector(
		camera.Radius*math.Sin(phi)*math.Cos(theta),
		camera.Radius*math.Cos(phi),
		camera.Radius*math.Sin(phi)*math.Sin(theta),
	).Add(camera.Target)

}

// Orbit rotates the Camera about its Target by the given angle deltas in degrees.
func (camera *Camera) Orbit(dTheta, dPhi float64) {
	camera.Theta = math.Mod(camera.Theta+dTheta, 360)
	camera.Phi = clamp(camera.Phi+dPhi, 1, 179)
}

// Zoom moves the Camera towards (positive delta) or away from (negative delta) its
// Target, keeping the Radius within [1, 100].
func (camera *Camera) Zoom(delta float64) {
	camera.Radius = clamp(camera.Radius*(1-delta*0.1), 1, 100)
}

// Pan slides the Camera's Target along the Camera's right and up directions,
// proportionally to the current Radius so panning feels consistent at any zoom.
func (camera *Camera) Pan(dx, dy float64) {

	forward := camera.Target.Sub(camera.Position()).Unit()
	right := forward.Cross(VecY).Unit()
	up := right.Cross(forward).Unit()

	camera.Target = camera.Target.
		Add(right.Scale(dx * 0.01 * camera.Radius)).
		Add(up.Scale(dy * 0.01 * camera.Radius))

}

// ViewMatrix returns the Camera's view Matrix4.
func (camera *Camera) ViewMatrix() Matrix4 {
	return NewLookAtMatrix(camera.Position(), camera.Target, VecY)
}

// ProjectionMatrix returns the Camera's perspective projection Matrix4 for the given
// viewport aspect ratio (width / height).
func (camera *Camera) ProjectionMatrix(aspect float64) Matrix4 {
	return NewProjectionPerspective(camera.FOV, camera.Near, camera.Far, aspect)
}

// Project maps the given world-space point to screen coordinates for a viewport of the
// given pixel size. ok is false if the point lies behind the near plane.
func (camera *Camera) Project(point Vector, width, height int) (sx, sy float64, ok bool) {

	mvp := camera.ViewMatrix().Mult(camera.ProjectionMatrix(float64(width) / float64(height)))

	clip := mvp.MultVecW(point)
	if clip.W <= 1e-9 {
		return 0, 0, false
	}

	sx = (clip.X/clip.W + 1) * float64(width) / 2
	sy = (1 - clip.Y/clip.W) * float64(height) / 2

	return sx, sy, true

}

// Reset restores the Camera's default orbit about the origin.
func (camera *Camera) Reset() {
	camera.Target = NewVectorZero()
	camera.Radius = 10
	camera.Theta = 45
	camera.Phi = 45
}

// FocusOn re-targets the Camera at the center of the given bounding box and backs it off
// far enough to frame the whole box.
func (camera *Camera) FocusOn(min, max Vector) {
	camera.Target = min.Add(max).Scale(0.5)
	camera.Radius = clamp(max.Sub(min).Magnitude()*1.5, 1, 100)
}
