package mathutil

import (
	"math"
	"testing"
)

func TestEvaluateCurveStraight(t *testing.T) {
	got := EvaluateCurve(Vec3{}, Forward, 50, 0)
	if !got.Position.ApproxEqual(Vec3{0, 0, 50}, 1e-9) {
		t.Fatalf("position = %v, want (0,0,50)", got.Position)
	}
	if got.Tangent != Forward {
		t.Fatalf("tangent = %v, want unchanged", got.Tangent)
	}
}

func TestEvaluateCurveQuarterTurn(t *testing.T) {
	r := 100.0
	d := math.Pi / 2 * r

	right := EvaluateCurve(Vec3{}, Forward, d, r)
	if !right.Position.ApproxEqual(Vec3{r, 0, r}, 1e-6) {
		t.Fatalf("right turn position = %v", right.Position)
	}
	if !right.Tangent.ApproxEqual(Vec3{1, 0, 0}, 1e-6) {
		t.Fatalf("right turn tangent = %v", right.Tangent)
	}

	left := EvaluateCurve(Vec3{}, Forward, d, -r)
	if !left.Position.ApproxEqual(Vec3{-r, 0, r}, 1e-6) {
		t.Fatalf("left turn position = %v", left.Position)
	}
	if !left.Tangent.ApproxEqual(Vec3{-1, 0, 0}, 1e-6) {
		t.Fatalf("left turn tangent = %v", left.Tangent)
	}
}

func TestEvaluateCurveChained(t *testing.T) {
	r := 100.0
	d := math.Pi / 2 * r
	a := EvaluateCurve(Vec3{}, Forward, d, r)
	b := EvaluateCurve(a.Position, a.Tangent, d, r)
	if !b.Position.ApproxEqual(Vec3{2 * r, 0, 0}, 1e-6) {
		t.Fatalf("half circle position = %v", b.Position)
	}
	if !b.Tangent.ApproxEqual(Vec3{0, 0, -1}, 1e-6) {
		t.Fatalf("half circle tangent = %v", b.Tangent)
	}
}

func TestPositionFromOffsets(t *testing.T) {
	got := PositionFromOffsets(Vec3{1, 2, 3}, Forward, 4, 5)
	if !got.ApproxEqual(Vec3{5, 7, 3}, 1e-9) {
		t.Fatalf("got %v", got)
	}
	// Facing +X, "right" is -Z.
	got = PositionFromOffsets(Vec3{}, Vec3{1, 0, 0}, 2, 0)
	if !got.ApproxEqual(Vec3{0, 0, -2}, 1e-9) {
		t.Fatalf("got %v", got)
	}
}

func TestRadiusFromDistances(t *testing.T) {
	// A circle of radius 10 tangent to +Z at the origin passes through (10, 10).
	if r := RadiusFromDistances(10, 10); math.Abs(r-10) > 1e-9 {
		t.Fatalf("radius = %v, want 10", r)
	}
}

func TestAxisAngleMatchesRotY(t *testing.T) {
	a := AxisAngle(Vec3{0, 1, 0}, 0.7)
	b := RotY(0.7)
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Fatalf("element %d: %v != %v", i, a[i], b[i])
		}
	}
}
