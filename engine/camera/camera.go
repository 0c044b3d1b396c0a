package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	up       common.Vec3
	position common.Vec3
	target   common.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           common.Mat4
	projectionMatrix     common.Mat4
	viewProjectionMatrix common.Mat4

	controller CameraController
}

// Camera defines the interface for a perspective camera.
// The camera holds perspective settings and computes view/projection matrices.
// When a CameraController is attached, position and target are read from it on Update().
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec3: the eye position
	Position() common.Vec3

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - common.Vec3: the look-at point
	Target() common.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current view matrix (column-major).
	//
	// Returns:
	//   - common.Mat4: the view matrix
	ViewMatrix() common.Mat4

	// ProjectionMatrix returns the current projection matrix (column-major).
	//
	// Returns:
	//   - common.Mat4: the projection matrix
	ProjectionMatrix() common.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - common.Mat4: the combined matrix
	ViewProjectionMatrix() common.Mat4

	// Controller returns the attached CameraController, or nil.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// SetController attaches a CameraController. The controller is seeded with the camera's
	// current position and target.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)

	// SetPosition moves the camera. Ignored for the view while a controller is attached.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetTarget sets the look-at point. Ignored for the view while a controller is attached.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// SetFov sets the vertical field of view in radians and recomputes the projection.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio and recomputes the projection.
	// Non-positive values are ignored.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Update reads position and target from the controller (if any) and recomputes the view.
	// Should be called once per frame after the controller has been updated.
	Update()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new perspective Camera.
// Defaults: 50° vertical fov, aspect 1, near 0.1, far 100, position (0, 0, 1) looking at the origin.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		up:       common.Vec3{X: 0, Y: 1, Z: 0},
		position: common.Vec3{X: 0, Y: 0, Z: 1},
		fov:      50.0 * (math.Pi / 180.0),
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
	}
	for _, option := range options {
		option(c)
	}
	if c.controller != nil {
		c.controller.SetTarget(c.target.X, c.target.Y, c.target.Z)
		c.controller.SetPosition(c.position.X, c.position.Y, c.position.Z)
		c.controller.SetFov(c.fov)
	}
	c.updateProjection()
	c.updateView()
	return c
}

func (c *cameraImpl) Position() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Target() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	if ctrl == nil {
		return
	}
	ctrl.SetTarget(c.target.X, c.target.Y, c.target.Z)
	ctrl.SetPosition(c.position.X, c.position.Y, c.position.Z)
	ctrl.SetFov(c.fov)
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = common.Vec3{X: x, Y: y, Z: z}
	c.updateView()
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = common.Vec3{X: x, Y: y, Z: z}
	c.updateView()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	if c.controller != nil {
		c.controller.SetFov(fov)
	}
	c.updateProjection()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 || math.IsNaN(float64(aspect)) || math.IsInf(float64(aspect), 0) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller != nil {
		c.position = c.controller.Position()
		c.target = c.controller.Target()
	}
	c.updateView()
}

// updateProjection recomputes the projection and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = common.Mul(c.projectionMatrix, c.viewMatrix)
}

// updateView recomputes the view and view-projection matrices from position and target.
// Caller must hold the mutex.
func (c *cameraImpl) updateView() {
	c.viewMatrix = common.LookAt(c.position, c.target, c.up)
	c.viewProjectionMatrix = common.Mul(c.projectionMatrix, c.viewMatrix)
}
