package mathutil

import "math"

// CurveResult is the position and tangent reached after following a curve.
type CurveResult struct {
	Position Vec3
	Tangent  Vec3
}

// RadiusFromDistances returns the radius of the circle through the origin that
// is tangent to +Z there and passes through (dx, dz) on the XZ plane.
func RadiusFromDistances(dx, dz float64) float64 {
	angle := math.Atan2(dz, dx)
	num := math.Sqrt(dz*dz+dx*dx) * math.Sin(math.Pi/2-angle)
	denom := math.Sin(math.Pi - 2*(math.Pi/2-angle))
	return num / denom
}

// EvaluateCurve advances distance units from pos along dir, following a circle
// of the given radius (0 = straight, negative = curving left). The vertical
// component of dir is kept as a slope. The returned tangent has the same
// length as dir.
func EvaluateCurve(pos, dir Vec3, distance, radius float64) CurveResult {
	if distance == 0 {
		return CurveResult{pos, dir}
	}
	origLen := dir.Len()
	unit := dir.Normalize()
	if radius == 0 {
		return CurveResult{pos.Add(unit.Scale(distance)), dir}
	}

	vertical := unit[1] * distance
	horizontal := math.Sqrt(distance*distance - vertical*vertical)
	left := radius < 0
	radius = math.Abs(radius)

	// Work on a 2D plane where +x is forward (+Z) and +y is right (+X).
	px, py := unit[2], -unit[0]
	if left {
		py = -py
	}
	start := math.Atan2(py, px)
	if py < 0 {
		start += 2 * math.Pi
	}
	inputAngle := 2*math.Pi - start

	travel := horizontal/(2*math.Pi*radius)*2*math.Pi + inputAngle
	tx, ty := math.Sin(travel), math.Cos(travel)

	rx, ry := tx, ty
	var tanX, tanY float64
	if left {
		ry = -ry
		tanX, tanY = -ry, rx
	} else {
		tanX, tanY = ry, -rx
	}
	if l := math.Hypot(tanX, tanY); l > 0 {
		tanX, tanY = tanX/l, tanY/l
	}

	tx = (tx - math.Sin(inputAngle)) * radius
	ty = (ty - math.Cos(inputAngle)) * radius
	if left {
		ty = -ty
	}

	offset := Vec3{-ty, vertical, tx}
	tanX, tanY = tanX*horizontal, tanY*horizontal
	tangent := Vec3{-tanY, vertical, tanX}.Normalize().Scale(origLen)
	return CurveResult{pos.Add(offset), tangent}
}

// PositionFromOffsets moves x units to the right of the track (perpendicular
// to tangent on the XZ plane) and y units up.
func PositionFromOffsets(pos, tangent Vec3, x, y float64) Vec3 {
	l := math.Hypot(tangent[0], tangent[2])
	if l == 0 {
		return pos.Add(Vec3{x, y, 0})
	}
	dx, dz := tangent[0]/l, tangent[2]/l
	return pos.Add(Vec3{dz * x, y, -dx * x})
}
