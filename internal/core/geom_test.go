package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		angle    float64
		expected Vec2
	}{
		{"zero angle", V(1, 0), 0, V(1, 0)},
		{"quarter turn", V(1, 0), math.Pi / 2, V(0, 1)},
		{"half turn", V(0, -1), math.Pi, V(0, 1)},
		{"nose up rotated right", V(0, -1), math.Pi / 2, V(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("Rotate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !near(n.Len(), 1) {
		t.Errorf("Normalize().Len() = %v, expected 1", n.Len())
	}

	zero := Vec2{}.Normalize()
	if zero != (Vec2{}) {
		t.Errorf("Normalize() of zero = %v, expected zero vector", zero)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi, 2)
	if !near(v.X, -2) || !near(v.Y, 0) {
		t.Errorf("FromAngle(pi, 2) = %v, expected (-2, 0)", v)
	}
}

func TestVec2IsFinite(t *testing.T) {
	if !V(1, 2).IsFinite() {
		t.Error("V(1, 2) should be finite")
	}
	if V(math.NaN(), 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if V(0, math.Inf(1)).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{5, 5, true},
		{14, 14, true},
		{15, 15, false},
		{4, 5, false},
		{10, 10, true},
	}

	for _, tc := range tests {
		result := r.Contains(tc.x, tc.y)
		if result != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
