package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

const (
	// polarEpsilon keeps the polar angle away from the poles so LookAt never degenerates.
	polarEpsilon = 1e-6
	// moveEpsilon is the squared distance below which Update reports no movement.
	moveEpsilon = 1e-12
)

type dragMode int

const (
	dragNone dragMode = iota
	dragRotate
	dragPan
)

// orbitControls is the implementation of CameraController.
// Keeps the camera on a sphere around the target. Angles follow the usual Y-up convention:
// theta is the azimuth measured from +Z toward +X, phi is the polar angle from +Y.
type orbitControls struct {
	mu *sync.Mutex

	position common.Vec3
	target   common.Vec3
	fov      float32

	viewportWidth  int
	viewportHeight int

	// pending motion, applied and decayed by Update
	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  common.Vec3

	enableDamping bool
	dampingFactor float32

	minDistance float32
	maxDistance float32

	rotateSpeed float32
	zoomSpeed   float32
	panSpeed    float32

	drag  dragMode
	lastX float32
	lastY float32
}

var _ CameraController = &orbitControls{}

// NewOrbitControls creates orbit controls with damping disabled.
// Defaults: damping factor 0.05, rotate/zoom/pan speed 1, distance range [0, +Inf).
//
// Parameters:
//   - options: functional options to configure the controls
//
// Returns:
//   - CameraController: the newly created controller
func NewOrbitControls(options ...CameraControllerOption) CameraController {
	oc := &orbitControls{
		mu:             &sync.Mutex{},
		position:       common.Vec3{X: 0, Y: 0, Z: 1},
		fov:            50.0 * (math.Pi / 180.0),
		viewportWidth:  1,
		viewportHeight: 1,
		scale:          1,
		dampingFactor:  0.05,
		minDistance:    0,
		maxDistance:    float32(math.Inf(1)),
		rotateSpeed:    1,
		zoomSpeed:      1,
		panSpeed:       1,
	}
	for _, option := range options {
		option(oc)
	}
	return oc
}

func (oc *orbitControls) Position() common.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.position
}

func (oc *orbitControls) Target() common.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControls) SetPosition(x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.position = common.Vec3{X: x, Y: y, Z: z}
}

func (oc *orbitControls) SetTarget(x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = common.Vec3{X: x, Y: y, Z: z}
}

func (oc *orbitControls) SetFov(fov float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.fov = fov
}

func (oc *orbitControls) SetViewportSize(width, height int) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.viewportWidth = max(width, 1)
	oc.viewportHeight = max(height, 1)
}

func (oc *orbitControls) Radius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.position.Sub(oc.target).Length()
}

func (oc *orbitControls) EnableDamping() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.enableDamping
}

func (oc *orbitControls) SetEnableDamping(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enableDamping = enabled
}

func (oc *orbitControls) DampingFactor() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.dampingFactor
}

// --- orbitCameraController implementation ---

func (oc *orbitControls) RotateLeft(angle float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.deltaTheta -= angle
}

func (oc *orbitControls) RotateUp(angle float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.deltaPhi -= angle
}

func (oc *orbitControls) Dolly(scale float32) {
	if scale <= 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.scale *= scale
}

func (oc *orbitControls) Pan(right, up float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.pan(right, up)
}

// pan adds a screen-space translation to the pending pan offset.
// Caller must hold the mutex.
func (oc *orbitControls) pan(right, up float32) {
	rx, ry, rz, ux, uy, uz := oc.screenAxes()
	oc.panOffset = oc.panOffset.Add(common.Vec3{X: rx, Y: ry, Z: rz}.Scale(right))
	oc.panOffset = oc.panOffset.Add(common.Vec3{X: ux, Y: uy, Z: uz}.Scale(up))
}

// screenAxes computes the camera's right and up axes consistent with the LookAt matrix.
// If position and target coincide, all returned components are zero.
// Caller must hold the mutex.
func (oc *orbitControls) screenAxes() (rx, ry, rz, ux, uy, uz float32) {
	back := oc.position.Sub(oc.target).Normalize()
	if back == (common.Vec3{}) {
		return
	}
	// right = normalize(cross(worldUp, backward)) where worldUp = (0, 1, 0)
	right := common.Vec3{X: back.Z, Y: 0, Z: -back.X}.Normalize()
	if right == (common.Vec3{}) {
		return
	}
	up := back.Cross(right)
	return right.X, right.Y, right.Z, up.X, up.Y, up.Z
}

// --- pointerCameraController implementation ---

func (oc *orbitControls) PointerDown(button int, x, y float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	switch button {
	case common.MouseButtonLeft:
		oc.drag = dragRotate
	case common.MouseButtonRight, common.MouseButtonMiddle:
		oc.drag = dragPan
	default:
		return
	}
	oc.lastX, oc.lastY = x, y
}

func (oc *orbitControls) PointerMove(x, y float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	dx, dy := x-oc.lastX, y-oc.lastY
	oc.lastX, oc.lastY = x, y
	height := float32(oc.viewportHeight)

	switch oc.drag {
	case dragRotate:
		oc.deltaTheta -= 2 * math.Pi * dx * oc.rotateSpeed / height
		oc.deltaPhi -= 2 * math.Pi * dy * oc.rotateSpeed / height
	case dragPan:
		// world units covered by one pixel at the target's distance
		distance := oc.position.Sub(oc.target).Length()
		perPixel := 2 * distance * float32(math.Tan(float64(oc.fov)/2)) / height
		oc.pan(-dx*perPixel*oc.panSpeed, dy*perPixel*oc.panSpeed)
	}
}

func (oc *orbitControls) PointerUp() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.drag = dragNone
}

func (oc *orbitControls) Wheel(delta float32) {
	if delta == 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	step := float32(math.Pow(0.95, float64(oc.zoomSpeed*absf(delta))))
	if delta > 0 {
		oc.scale *= step
	} else {
		oc.scale /= step
	}
}

// --- frame update ---

func (oc *orbitControls) Update() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	offset := oc.position.Sub(oc.target)
	radius := offset.Length()
	var theta, phi float64
	if radius > 0 {
		theta = math.Atan2(float64(offset.X), float64(offset.Z))
		phi = math.Acos(float64(common.Clamp(offset.Y/radius, -1, 1)))
	}

	factor := float32(1)
	if oc.enableDamping {
		factor = oc.dampingFactor
	}
	theta += float64(oc.deltaTheta * factor)
	phi += float64(oc.deltaPhi * factor)
	phi = common.Clamp(phi, polarEpsilon, math.Pi-polarEpsilon)

	radius = common.Clamp(radius*oc.scale, oc.minDistance, oc.maxDistance)

	target := oc.target.Add(oc.panOffset.Scale(factor))

	sinPhi := float32(math.Sin(phi))
	offset = common.Vec3{
		X: radius * sinPhi * float32(math.Sin(theta)),
		Y: radius * float32(math.Cos(phi)),
		Z: radius * sinPhi * float32(math.Cos(theta)),
	}
	position := target.Add(offset)

	if oc.enableDamping {
		oc.deltaTheta *= 1 - oc.dampingFactor
		oc.deltaPhi *= 1 - oc.dampingFactor
		oc.panOffset = oc.panOffset.Scale(1 - oc.dampingFactor)
	} else {
		oc.deltaTheta, oc.deltaPhi = 0, 0
		oc.panOffset = common.Vec3{}
	}
	oc.scale = 1

	moved := distanceSq(position, oc.position) > moveEpsilon || distanceSq(target, oc.target) > moveEpsilon
	oc.position = position
	oc.target = target
	return moved
}

func distanceSq(a, b common.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
