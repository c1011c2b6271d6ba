package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	unit := Vec3{0.5, 0.5, 0.5}
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAround(Vec3{0, 0, 0}, unit),
			b:        BoxAround(Vec3{0.5, 0.5, 0.5}, unit),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        BoxAround(Vec3{0, 0, 0}, unit),
			b:        BoxAround(Vec3{2, 0, 0}, unit),
			expected: false,
		},
		{
			name:     "separated on y",
			a:        BoxAround(Vec3{0, 0, 0}, unit),
			b:        BoxAround(Vec3{0, 1.5, 0}, unit),
			expected: false,
		},
		{
			name:     "separated on z",
			a:        BoxAround(Vec3{0, 0, 0}, unit),
			b:        BoxAround(Vec3{0, 0, -3}, unit),
			expected: false,
		},
		{
			name:     "touching faces",
			a:        BoxAround(Vec3{0, 0, 0}, unit),
			b:        BoxAround(Vec3{1, 0, 0}, unit),
			expected: true,
		},
		{
			name:     "contained box",
			a:        BoxAround(Vec3{0, 0, 0}, Vec3{2, 2, 2}),
			b:        BoxAround(Vec3{0.2, 0.1, 0}, unit),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCenterSize(t *testing.T) {
	b := BoxAround(Vec3{1, 2, 3}, Vec3{0.5, 1, 1.5})

	if c := b.Center(); !c.ApproxEqual(Vec3{1, 2, 3}) {
		t.Errorf("Center() = %v, expected (1, 2, 3)", c)
	}
	if s := b.Size(); !s.ApproxEqual(Vec3{1, 2, 3}) {
		t.Errorf("Size() = %v, expected (1, 2, 3)", s)
	}
}

func TestRotatedExtentsY(t *testing.T) {
	half := Vec3{0.3, 0.05, 0.1}

	if got := RotatedExtentsY(half, 0); !got.ApproxEqual(half) {
		t.Errorf("RotatedExtentsY(0) = %v, expected %v", got, half)
	}

	quarter := RotatedExtentsY(half, math.Pi/2)
	if !quarter.ApproxEqualThreshold(Vec3{0.1, 0.05, 0.3}, 1e-9) {
		t.Errorf("RotatedExtentsY(pi/2) = %v, expected x and z swapped", quarter)
	}

	diag := RotatedExtentsY(Vec3{1, 1, 1}, math.Pi/4)
	if math.Abs(diag[0]-math.Sqrt2) > 1e-9 || math.Abs(diag[1]-1) > 1e-9 {
		t.Errorf("RotatedExtentsY(pi/4) = %v, expected sqrt2 on x", diag)
	}
}

func TestDampFramerateIndependent(t *testing.T) {
	oneStep := Damp(0, 2, 12, 0.5)

	chunked := 0.0
	for i := 0; i < 50; i++ {
		chunked = Damp(chunked, 2, 12, 0.01)
	}

	if math.Abs(oneStep-chunked) > 1e-9 {
		t.Errorf("Damp differs by step size: one=%f chunked=%f", oneStep, chunked)
	}
	if oneStep <= 1.9 || oneStep > 2 {
		t.Errorf("Damp(0, 2, 12, 0.5) = %f, expected close to 2", oneStep)
	}
	if Damp(2, 2, 12, 1) != 2 {
		t.Error("Damp at target should stay at target")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{1, 0, 2, 1},
		{-1, 0, 2, 0},
		{3, 0, 2, 2},
		{0, 0, 2, 0},
		{2, 0, 2, 2},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
}
