package render

import "testing"

func TestFromHexRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hex  uint32
	}{
		{"black", 0x000000},
		{"white", 0xFFFFFF},
		{"scene background", 0x333355},
		{"mixed", 0x4A90D9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Hex(FromHex(tc.hex)); got != tc.hex {
				t.Errorf("round trip 0x%06X -> 0x%06X", tc.hex, got)
			}
		})
	}
}

func TestFromHexComponents(t *testing.T) {
	c := FromHex(0x123456)
	if c.R != 0x12 || c.G != 0x34 || c.B != 0x56 || c.A != 255 {
		t.Errorf("FromHex(0x123456) = %v", c)
	}
}

func TestLerpColor(t *testing.T) {
	a := RGB(0, 100, 200)
	b := RGB(100, 200, 0)

	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"at 0", 0, a},
		{"at 1", 1, b},
		{"midpoint", 0.5, RGB(50, 150, 100)},
		{"clamped below", -2, a},
		{"clamped above", 3, b},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LerpColor(a, b, tc.t); got != tc.want {
				t.Errorf("LerpColor(t=%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestScaleColorClamps(t *testing.T) {
	c := RGB(100, 200, 50)

	if got := ScaleColor(c, 0); got != RGB(0, 0, 0) {
		t.Errorf("scale by 0 = %v, want black", got)
	}
	if got := ScaleColor(c, 10); got != RGB(255, 255, 255) {
		t.Errorf("scale by 10 = %v, want saturated white", got)
	}
	if got := ScaleColor(c, 1); got != c {
		t.Errorf("scale by 1 = %v, want unchanged", got)
	}
	if got := ScaleColor(c, -1); got != RGB(0, 0, 0) {
		t.Errorf("negative scale = %v, want black", got)
	}
}

func TestAddColorSaturates(t *testing.T) {
	a := RGB(200, 10, 128)
	b := RGB(100, 20, 128)

	got := AddColor(a, b)
	if got != RGB(255, 30, 255) {
		t.Errorf("AddColor = %v, want per-channel saturating add", got)
	}
}

func TestFloatsRoundTrip(t *testing.T) {
	c := RGB(255, 128, 0)
	r, g, b := Floats(c)

	if r != 1.0 {
		t.Errorf("R = %v, want 1.0", r)
	}
	if b != 0.0 {
		t.Errorf("B = %v, want 0.0", b)
	}

	back := FromFloats(r, g, b)
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}
