package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Axis aligned",
			vector:   NewVec3(0, 0, -5),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "Diagonal light direction",
			vector:   NewVec3(-1, -1, -1),
			expected: NewVec3(-1/math.Sqrt(3), -1/math.Sqrt(3), -1/math.Sqrt(3)),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-12
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.25, 3).Clamp(0, 1)
	expected := NewVec3(0, 0.25, 1)
	if v != expected {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %f", got)
	}
	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, -10, 18) {
		t.Errorf("MultiplyVec: expected (4,-10,18), got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("LengthSquared: expected 14, got %f", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -2))

	point := ray.At(1.5)
	expected := NewVec3(0, 0, 2)
	if point != expected {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
