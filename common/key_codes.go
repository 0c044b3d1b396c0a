package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32 // Spacebar (ASCII)
	KeyD     = 68 // D key (ASCII), toggles the debug panel
	KeyP     = 80 // P key (ASCII), toggles the profiler
	KeyR     = 82 // R key (ASCII), resets the selected control

	KeyEsc      = 256 // Escape key (GLFW)
	KeyEnter    = 257 // Enter key (GLFW)
	KeyTab      = 258 // Tab key (GLFW)
	KeyRight    = 262 // Right arrow (GLFW)
	KeyLeft     = 263 // Left arrow (GLFW)
	KeyDown     = 264 // Down arrow (GLFW)
	KeyUp       = 265 // Up arrow (GLFW)
	KeyPageUp   = 266 // Page Up (GLFW)
	KeyPageDown = 267 // Page Down (GLFW)
)

// Mouse button identifiers, matching GLFW's button numbering.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)
