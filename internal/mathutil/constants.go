package mathutil

var (
	// Forward is the initial track tangent at the route origin.
	Forward = Vec3{0, 0, 1}

	// DefaultLightDirection matches Route.LightDirection 60, -26.57.
	DefaultLightDirection = Vec3{-0.2236, -0.8660, 0.4472}

	// PreviewView looks at an object from the front-left, slightly above: Rx(-25°) @ Ry(35°).
	PreviewView = Mat3Mul(RotX(Deg2Rad(-25)), RotY(Deg2Rad(35)))
)

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
