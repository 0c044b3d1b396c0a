package transform

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

// Transform holds the position, XYZ Euler rotation, and scale of a scene node.
// It is safe for concurrent use.
type Transform struct {
	mu *sync.Mutex

	position common.Vec3
	rotation common.Vec3
	scale    common.Vec3
}

// New creates a Transform at the origin with no rotation and unit scale.
//
// Returns:
//   - *Transform: the newly created transform
func New() *Transform {
	return &Transform{
		mu:    &sync.Mutex{},
		scale: common.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Position returns the local translation.
func (t *Transform) Position() common.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

// SetPosition sets the local translation.
func (t *Transform) SetPosition(x, y, z float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = common.Vec3{X: x, Y: y, Z: z}
}

// Rotation returns the Euler rotation in radians.
func (t *Transform) Rotation() common.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotation
}

// SetRotation sets the Euler rotation in radians.
func (t *Transform) SetRotation(x, y, z float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rotation = common.Vec3{X: x, Y: y, Z: z}
}

// Scale returns the local scale.
func (t *Transform) Scale() common.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scale
}

// SetScale sets the local scale.
func (t *Transform) SetScale(x, y, z float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scale = common.Vec3{X: x, Y: y, Z: z}
}

// Component returns a single numeric field of the transform.
//
// Parameters:
//   - c: the field to read
//
// Returns:
//   - float32: the field value
func (t *Transform) Component(c Component) float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.vectorFor(c)
	if v == nil {
		return 0
	}
	return axis(v, c)
}

// SetComponent writes a single numeric field of the transform.
//
// Parameters:
//   - c: the field to write
//   - value: the new value
func (t *Transform) SetComponent(c Component, value float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.vectorFor(c)
	if v == nil {
		return
	}
	switch c % 3 {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	}
}

// Matrix builds the model matrix from the current position, rotation, and scale.
//
// Returns:
//   - common.Mat4: the model matrix
func (t *Transform) Matrix() common.Mat4 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return common.Compose(t.position, t.rotation, t.scale)
}

// vectorFor returns the vector a component lives in. Caller must hold the mutex.
func (t *Transform) vectorFor(c Component) *common.Vec3 {
	switch {
	case c >= PositionX && c <= PositionZ:
		return &t.position
	case c >= RotationX && c <= RotationZ:
		return &t.rotation
	case c >= ScaleX && c <= ScaleZ:
		return &t.scale
	}
	return nil
}

func axis(v *common.Vec3, c Component) float32 {
	switch c % 3 {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}
