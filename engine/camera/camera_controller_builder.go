package camera

// CameraControllerOption is a functional option for configuring orbit controls.
type CameraControllerOption func(*orbitControls)

// WithDamping enables or disables damping.
//
// Parameters:
//   - enabled: true to smooth pending motion across frames
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithDamping(enabled bool) CameraControllerOption {
	return func(oc *orbitControls) {
		oc.enableDamping = enabled
	}
}

// WithDampingFactor sets the fraction of pending motion applied per Update.
// Values outside (0, 1] are ignored.
//
// Parameters:
//   - factor: the damping factor
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithDampingFactor(factor float32) CameraControllerOption {
	return func(oc *orbitControls) {
		if factor > 0 && factor <= 1 {
			oc.dampingFactor = factor
		}
	}
}

// WithDistanceLimits clamps the distance between camera and target.
//
// Parameters:
//   - minDistance: closest allowed distance
//   - maxDistance: farthest allowed distance
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithDistanceLimits(minDistance, maxDistance float32) CameraControllerOption {
	return func(oc *orbitControls) {
		if minDistance >= 0 && maxDistance >= minDistance {
			oc.minDistance = minDistance
			oc.maxDistance = maxDistance
		}
	}
}

// WithRotateSpeed scales pointer-driven rotation.
//
// Parameters:
//   - speed: rotation multiplier
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithRotateSpeed(speed float32) CameraControllerOption {
	return func(oc *orbitControls) {
		oc.rotateSpeed = speed
	}
}

// WithZoomSpeed scales wheel-driven dolly.
//
// Parameters:
//   - speed: zoom multiplier
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(oc *orbitControls) {
		oc.zoomSpeed = speed
	}
}

// WithPanSpeed scales pointer-driven panning.
//
// Parameters:
//   - speed: pan multiplier
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(oc *orbitControls) {
		oc.panSpeed = speed
	}
}
