package raster

import (
	"math"

	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/scene"
)

// Light is a single directional light plus ambient term. Direction points
// from the light into the scene; intensities are in 0..1.
type Light struct {
	Direction mathutil.Vec3
	Ambient   float64
	Diffuse   float64
}

// DefaultLight is the lighting a route uses before any Route.AmbientLight,
// Route.DirectionalLight or Route.LightDirection.
func DefaultLight() Light {
	l := scene.DefaultLighting()
	return Light{
		Direction: l.Direction.Normalize(),
		Ambient:   float64(l.Ambient.R) / 255,
		Diffuse:   float64(l.Directional.R) / 255,
	}
}

// Shade is the Lambert factor for a surface normal. Back-facing normals get
// the ambient term only.
func (l Light) Shade(n mathutil.Vec3) float64 {
	return l.Ambient + l.Diffuse*math.Max(0, -n.Dot(l.Direction))
}
