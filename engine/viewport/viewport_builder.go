package viewport

// ManagerBuilderOption is a functional option for configuring a Manager.
type ManagerBuilderOption func(*Manager)

// WithCamera sets the target that receives the aspect ratio on resize.
//
// Parameters:
//   - camera: the camera to update
//
// Returns:
//   - ManagerBuilderOption: option function to apply
func WithCamera(camera AspectTarget) ManagerBuilderOption {
	return func(m *Manager) {
		m.camera = camera
	}
}

// WithRenderer sets the target that receives the output size and pixel ratio on resize.
//
// Parameters:
//   - renderer: the renderer to update
//
// Returns:
//   - ManagerBuilderOption: option function to apply
func WithRenderer(renderer SizeTarget) ManagerBuilderOption {
	return func(m *Manager) {
		m.renderer = renderer
	}
}
