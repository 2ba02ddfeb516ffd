package noise

import (
	"math"
	"testing"
)

func TestSampleDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	points := [][3]float64{
		{0, 0, 0},
		{1.5, -2.25, 0.75},
		{100, 100, -50},
		{-0.001, 0.001, 0},
	}

	for _, p := range points {
		if a.Sample2(p[0], p[1]) != b.Sample2(p[0], p[1]) {
			t.Errorf("Sample2(%v, %v) differs between equal seeds", p[0], p[1])
		}
		if a.Sample3(p[0], p[1], p[2]) != b.Sample3(p[0], p[1], p[2]) {
			t.Errorf("Sample3(%v, %v, %v) differs between equal seeds", p[0], p[1], p[2])
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	// A single coincidence is possible; all of them is not.
	same := 0
	total := 0
	for x := -2.0; x <= 2.0; x += 0.5 {
		for y := -2.0; y <= 2.0; y += 0.5 {
			total++
			if a.Sample2(x*10, y*10) == b.Sample2(x*10, y*10) {
				same++
			}
		}
	}
	if same == total {
		t.Error("different seeds produced an identical field")
	}
}

func TestSampleRange(t *testing.T) {
	f := New(7)

	for x := -5.0; x <= 5.0; x += 0.37 {
		for y := -5.0; y <= 5.0; y += 0.41 {
			n2 := f.Sample2(x*20, y*20)
			if n2 < -1 || n2 > 1 || math.IsNaN(n2) {
				t.Fatalf("Sample2(%v, %v) = %v, want within [-1, 1]", x, y, n2)
			}
			n3 := f.Sample3(x*20, y*20, (x+y)*20)
			if n3 < -1 || n3 > 1 || math.IsNaN(n3) {
				t.Fatalf("Sample3 = %v, want within [-1, 1]", n3)
			}
		}
	}
}

func TestSampleVaries(t *testing.T) {
	f := New(3)

	first := f.Sample2(0, 0)
	varies := false
	for x := 1.0; x < 50; x++ {
		if f.Sample2(x*25, x*25) != first {
			varies = true
			break
		}
	}
	if !varies {
		t.Error("field is constant across widely spaced samples")
	}
}

func TestOptions(t *testing.T) {
	base := New(9)
	custom := New(9, WithOctaves(1), WithLacunarity(3.0), WithGain(0.25))

	differs := false
	for x := 0.0; x < 10; x++ {
		if base.Sample2(x*30, 15) != custom.Sample2(x*30, 15) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("octave options had no effect on the field")
	}
}

func TestSingleOctaveRange(t *testing.T) {
	f := New(11, WithOctaves(1))
	for x := 0.0; x < 20; x++ {
		n := f.Sample2(x*40, x*17)
		if n < -1 || n > 1 {
			t.Fatalf("single octave sample = %v, want within [-1, 1]", n)
		}
	}
}
