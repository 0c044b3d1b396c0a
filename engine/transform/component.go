package transform

// Component names one numeric field of a Transform. Values are grouped in threes
// (X, Y, Z) so the axis is the value modulo 3.
type Component int

const (
	PositionX Component = iota
	PositionY
	PositionZ
	RotationX
	RotationY
	RotationZ
	ScaleX
	ScaleY
	ScaleZ
)

var componentNames = [...]string{
	"position.x", "position.y", "position.z",
	"rotation.x", "rotation.y", "rotation.z",
	"scale.x", "scale.y", "scale.z",
}

// String returns the dotted field name, e.g. "rotation.y".
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return "unknown"
	}
	return componentNames[c]
}

// Valid reports whether c names a real field.
func (c Component) Valid() bool {
	return c >= PositionX && c <= ScaleZ
}
