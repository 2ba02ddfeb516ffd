package math3d

import (
	"math"
	"testing"
)

func mat3Close(a, b Mat3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat3InverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
	}{
		{"identity", Identity3()},
		{"rotation", Mat3FromMat4(RotateY(0.7))},
		{"uniform scale", Mat3FromMat4(Scale(V3(2, 2, 2)))},
		{"non-uniform scale", Mat3FromMat4(Scale(V3(2, 3, 0.5)))},
		{"rotation and scale", Mat3FromMat4(RotateX(0.4).Mul(Scale(V3(1.5, 2, 3))))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, ok := tc.m.Inverse()
			if !ok {
				t.Fatal("Inverse reported singular for an invertible matrix")
			}

			var product Mat3
			// product = m * inv, column-major
			for col := 0; col < 3; col++ {
				for row := 0; row < 3; row++ {
					sum := 0.0
					for k := 0; k < 3; k++ {
						sum += tc.m[k*3+row] * inv[col*3+k]
					}
					product[col*3+row] = sum
				}
			}

			if !mat3Close(product, Identity3(), 1e-9) {
				t.Errorf("m * inv = %v, want identity", product)
			}
		})
	}
}

func TestMat3InverseSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
	}{
		{"zero matrix", Mat3{}},
		{"flattened scale", Mat3FromMat4(Scale(V3(1, 1, 0)))},
		{"duplicate columns", Mat3{1, 2, 3, 1, 2, 3, 0, 0, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, ok := tc.m.Inverse()
			if ok {
				t.Fatal("Inverse reported success for a singular matrix")
			}
			if inv != Identity3() {
				t.Errorf("singular fallback = %v, want identity", inv)
			}
		})
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	mt := m.Transpose()

	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if m[col*3+row] != mt[row*3+col] {
				t.Fatalf("transpose mismatch at col %d row %d", col, row)
			}
		}
	}

	if m.Transpose().Transpose() != m {
		t.Error("double transpose is not the original")
	}
}

func TestMat3FromMat4DropsTranslation(t *testing.T) {
	m4 := Translate(V3(10, 20, 30)).Mul(RotateZ(0.3))
	m3 := Mat3FromMat4(m4)

	want := Mat3FromMat4(RotateZ(0.3))
	if !mat3Close(m3, want, 1e-12) {
		t.Errorf("upper-left block = %v, want rotation only", m3)
	}
}

func TestMat3MulVec3(t *testing.T) {
	m := Mat3FromMat4(RotateY(math.Pi / 2))
	v := m.MulVec3(V3(1, 0, 0))

	// Rotating +X by 90 degrees about Y lands on -Z.
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y) > 1e-9 || math.Abs(v.Z+1) > 1e-9 {
		t.Errorf("rotated vector = %v, want (0,0,-1)", v)
	}
}

func TestMat3Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		want float64
	}{
		{"identity", Identity3(), 1},
		{"scale", Mat3FromMat4(Scale(V3(2, 3, 4))), 24},
		{"rotation", Mat3FromMat4(RotateX(1.1)), 1},
		{"singular", Mat3FromMat4(Scale(V3(1, 0, 1))), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := tc.m.Determinant(); math.Abs(d-tc.want) > 1e-9 {
				t.Errorf("Determinant = %v, want %v", d, tc.want)
			}
		})
	}
}
