package math3d

// Mat3 is a 3x3 matrix stored in column-major order, mirroring Mat4.
//
// Memory layout (indices):
// | 0 3 6 |
// | 1 4 7 |
// | 2 5 8 |
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromMat4 extracts the upper-left 3x3 block of a Mat4
// (the rotation/scale part of a transform).
func Mat3FromMat4(m Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of the matrix and whether it exists.
// A singular matrix returns (identity, false).
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Identity3(), false
	}

	invDet := 1.0 / det
	return Mat3{
		(m[4]*m[8] - m[7]*m[5]) * invDet,
		(m[7]*m[2] - m[1]*m[8]) * invDet,
		(m[1]*m[5] - m[4]*m[2]) * invDet,
		(m[6]*m[5] - m[3]*m[8]) * invDet,
		(m[0]*m[8] - m[6]*m[2]) * invDet,
		(m[3]*m[2] - m[0]*m[5]) * invDet,
		(m[3]*m[7] - m[6]*m[4]) * invDet,
		(m[6]*m[1] - m[0]*m[7]) * invDet,
		(m[0]*m[4] - m[3]*m[1]) * invDet,
	}, true
}

// MulVec3 transforms a Vec3.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}
