package common

import "math"

// Mat4 is a 4x4 matrix stored in column-major order (WebGPU convention).
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
//
// Returns:
//   - Mat4: the identity matrix
func Identity() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// Mul returns a * b. Both operands are column-major.
//
// Parameters:
//   - a: left-hand matrix
//   - b: right-hand matrix
//
// Returns:
//   - Mat4: the product a * b
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Perspective builds a right-handed perspective projection mapping depth into the WebGPU clip range [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height), must be > 0
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	var out Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// LookAt builds a view matrix placing the eye at eye and looking at center.
// Degenerate inputs (eye == center, or up parallel to the view direction) fall back to unit axes
// instead of producing NaNs.
//
// Parameters:
//   - eye: camera position in world space
//   - center: point the camera looks at
//   - up: world up direction, typically (0, 1, 0)
//
// Returns:
//   - Mat4: the view matrix
func LookAt(eye, center, up Vec3) Mat4 {
	z := eye.Sub(center).Normalize()
	if z == (Vec3{}) {
		z = Vec3{0, 0, 1}
	}
	x := up.Cross(z).Normalize()
	if x == (Vec3{}) {
		x = Vec3{1, 0, 0}
	}
	y := z.Cross(x)

	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// Compose builds a model matrix from a translation, an XYZ-order Euler rotation, and a scale.
//
// Parameters:
//   - position: translation in world space
//   - rotation: Euler angles in radians, applied in X, Y, Z order
//   - scale: scale factors along each local axis
//
// Returns:
//   - Mat4: the model matrix T * R * S
func Compose(position, rotation, scale Vec3) Mat4 {
	a := float32(math.Cos(float64(rotation.X)))
	b := float32(math.Sin(float64(rotation.X)))
	c := float32(math.Cos(float64(rotation.Y)))
	d := float32(math.Sin(float64(rotation.Y)))
	e := float32(math.Cos(float64(rotation.Z)))
	f := float32(math.Sin(float64(rotation.Z)))

	ae, af, be, bf := a*e, a*f, b*e, b*f

	var out Mat4
	out[0] = c * e * scale.X
	out[1] = (af + be*d) * scale.X
	out[2] = (bf - ae*d) * scale.X

	out[4] = -c * f * scale.Y
	out[5] = (ae - bf*d) * scale.Y
	out[6] = (be + af*d) * scale.Y

	out[8] = d * scale.Z
	out[9] = -b * c * scale.Z
	out[10] = a * c * scale.Z

	out[12] = position.X
	out[13] = position.Y
	out[14] = position.Z
	out[15] = 1
	return out
}

// Invert returns the inverse of m using cofactor expansion.
// The second return value is false when m is singular, in which case the identity is returned.
//
// Returns:
//   - Mat4: the inverse matrix
//   - bool: false if m is singular
func (m Mat4) Invert() (Mat4, bool) {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Identity(), false
	}
	inv := 1.0 / det

	return Mat4{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) * inv,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) * inv,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv,

		(-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) * inv,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) * inv,

		(m[4]*c4 - m[5]*c2 + m[7]*c0) * inv,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) * inv,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv,

		(-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) * inv,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) * inv,
	}, true
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of m, packed as three vec4 columns
// so it can be written straight into a WGSL mat3x3<f32> uniform.
//
// Returns:
//   - [12]float32: the padded normal matrix
func (m Mat4) NormalMatrix() [12]float32 {
	inv, ok := m.Invert()
	if !ok {
		return [12]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0}
	}
	// transpose(inv) upper 3x3: column j of the result is row j of inv.
	var out [12]float32
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*4+row] = inv[row*4+col]
		}
	}
	return out
}

// TransformPoint applies m to the point p (w = 1) and returns the resulting position.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}
