package common

import (
	"math"
	"unsafe"
)

// Normalize3 scales a 3-component vector to unit length.
// A zero-length input produces non-finite components (division by zero);
// callers must guarantee nonzero input.
//
// Parameters:
//   - x, y, z: vector components
//
// Returns:
//   - ox, oy, oz: the normalized vector components
func Normalize3(x, y, z float32) (ox, oy, oz float32) {
	invLen := 1.0 / float32(math.Sqrt(float64(x*x+y*y+z*z)))
	return x * invLen, y * invLen, z * invLen
}

// Sub3 subtracts vector b from vector a componentwise.
//
// Parameters:
//   - ax, ay, az: components of the left-hand vector
//   - bx, by, bz: components of the right-hand vector
//
// Returns:
//   - ox, oy, oz: the difference a - b
func Sub3(ax, ay, az, bx, by, bz float32) (ox, oy, oz float32) {
	return ax - bx, ay - by, az - bz
}

// Cross3 computes the cross product a x b. The result is orthogonal to both
// inputs; it degenerates to the zero vector when a and b are parallel.
//
// Parameters:
//   - ax, ay, az: components of the left-hand vector
//   - bx, by, bz: components of the right-hand vector
//
// Returns:
//   - ox, oy, oz: the cross product components
func Cross3(ax, ay, az, bx, by, bz float32) (ox, oy, oz float32) {
	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}

// Dot3 computes the dot product of two 3-component vectors.
//
// Parameters:
//   - ax, ay, az: components of the left-hand vector
//   - bx, by, bz: components of the right-hand vector
//
// Returns:
//   - float32: the dot product
func Dot3(ax, ay, az, bx, by, bz float32) float32 {
	return ax*bx + ay*by + az*bz
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Transform4 applies a 4x4 column-major matrix to a homogeneous point.
// No perspective divide is performed; callers divide by the returned w
// when they need normalized device coordinates.
//
// Parameters:
//   - m: the matrix (16 elements, column-major)
//   - x, y, z, w: the homogeneous point components
//
// Returns:
//   - ox, oy, oz, ow: the transformed point components
func Transform4(m []float32, x, y, z, w float32) (ox, oy, oz, ow float32) {
	ox = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	oy = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	oz = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	ow = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
// The rotation part is the orthonormal basis built from the eye->center
// direction and the up vector; it degenerates when up is parallel to the
// view axis. Callers must keep the two non-parallel.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	// zAxis = normalize(eye - center), pointing backward from the target.
	zx, zy, zz := Sub3(eyeX, eyeY, eyeZ, centerX, centerY, centerZ)
	zx, zy, zz = Normalize3(zx, zy, zz)

	// xAxis = normalize(up x zAxis)
	xx, xy, xz := Cross3(upX, upY, upZ, zx, zy, zz)
	xx, xy, xz = Normalize3(xx, xy, xz)

	// yAxis = zAxis x xAxis, already unit length.
	yx, yy, yz := Cross3(zx, zy, zz, xx, xy, xz)

	out[0], out[4], out[8], out[12] = xx, xy, xz, -Dot3(xx, xy, xz, eyeX, eyeY, eyeZ)
	out[1], out[5], out[9], out[13] = yx, yy, yz, -Dot3(yx, yy, yz, eyeX, eyeY, eyeZ)
	out[2], out[6], out[10], out[14] = zx, zy, zz, -Dot3(zx, zy, zz, eyeX, eyeY, eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// Ortho creates an orthographic projection matrix mapping the given box to
// the canonical [-1, 1] clip cube with no perspective foreshortening.
// Any zero extent (right-left, top-bottom, far-near) divides by zero and
// yields non-finite entries; callers must guarantee nondegenerate bounds.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, right: x bounds of the visible box
//   - bottom, top: y bounds of the visible box
//   - near, far: z bounds of the visible box
func Ortho(out []float32, left, right, bottom, top, near, far float32) {
	Identity(out)
	out[0] = 2.0 / (right - left)
	out[5] = 2.0 / (top - bottom)
	out[10] = 2.0 / (far - near)
	out[12] = -(right + left) / (right - left)
	out[13] = -(top + bottom) / (top - bottom)
	out[14] = -(far + near) / (far - near)
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
