package camera

import "github.com/Carmen-Shannon/oxy-hello/common"

// CameraController defines the interface for camera control systems.
// Controllers own positional state (position, target). The camera reads from the controller
// and computes view/projection matrices. Input methods only accumulate pending motion;
// Update applies it, so all movement happens at one point in the frame.
type CameraController interface {
	orbitCameraController
	pointerCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec3: world-space camera position
	Position() common.Vec3

	// Target returns the look-at/pivot point.
	//
	// Returns:
	//   - common.Vec3: world-space target position
	Target() common.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetTarget sets the look-at/pivot point, keeping the current position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// SetFov tells the controller the camera's vertical field of view, used to scale panning.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetViewportSize sets the size of the element receiving pointer input, used to convert
	// pixel motion into angles and distances.
	//
	// Parameters:
	//   - width, height: size in pixels
	SetViewportSize(width, height int)

	// Update applies pending rotation, dolly, and pan to the position and target.
	// With damping enabled only a fraction of the pending motion is applied and the remainder decays,
	// so Update must be called every frame for the camera to settle.
	//
	// Returns:
	//   - bool: true if the position or target moved
	Update() bool
}

// orbitCameraController defines orbit-specific control methods around the target.
type orbitCameraController interface {
	// RotateLeft queues a rotation around the world up axis.
	//
	// Parameters:
	//   - angle: radians, positive rotates the camera to the left
	RotateLeft(angle float32)

	// RotateUp queues a rotation toward the top pole.
	//
	// Parameters:
	//   - angle: radians, positive tilts the camera upward
	RotateUp(angle float32)

	// Dolly queues a change of distance to the target.
	//
	// Parameters:
	//   - scale: distance multiplier, values below 1 move closer
	Dolly(scale float32)

	// Pan queues a translation of both position and target along the camera's screen axes.
	//
	// Parameters:
	//   - right: world units along the camera's right axis
	//   - up: world units along the camera's up axis
	Pan(right, up float32)

	// Radius returns the current distance from the target.
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// EnableDamping reports whether damping is enabled.
	//
	// Returns:
	//   - bool: true when pending motion is smoothed across frames
	EnableDamping() bool

	// SetEnableDamping toggles damping.
	//
	// Parameters:
	//   - enabled: true to smooth pending motion across frames
	SetEnableDamping(enabled bool)

	// DampingFactor returns the fraction of pending motion applied per Update.
	//
	// Returns:
	//   - float32: the damping factor in (0, 1]
	DampingFactor() float32
}

// pointerCameraController maps raw pointer input onto orbit operations.
type pointerCameraController interface {
	// PointerDown starts a drag. The left button rotates and the right button pans.
	//
	// Parameters:
	//   - button: mouse button identifier (common.MouseButtonLeft, ...)
	//   - x, y: pointer position in pixels
	PointerDown(button int, x, y float32)

	// PointerMove continues the active drag, if any.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	PointerMove(x, y float32)

	// PointerUp ends the active drag.
	PointerUp()

	// Wheel dollies in for positive deltas and out for negative deltas.
	//
	// Parameters:
	//   - delta: scroll amount in notches
	Wheel(delta float32)
}
