package raster

import (
	"image"
	"math"
)

// screenVertex is a projected vertex: pixel coordinates, depth (larger is
// nearer) and texture coordinates.
type screenVertex struct {
	x, y, z float64
	u, v    float64
}

// surface is the per-triangle material after lighting.
type surface struct {
	tex      *image.NRGBA
	color    [4]float64 // face colour times shade, straight alpha
	emissive [3]float64
	additive bool
}

// opaqueDepth is the alpha from which a fragment writes depth.
const opaqueDepth = 0.5

// drawTriangle fills a triangle with barycentric interpolation. Normal
// surfaces alpha-blend and write depth when mostly opaque; additive surfaces
// are depth-tested only and add their colour.
func drawTriangle(fb *FrameBuffer, t [3]screenVertex, s *surface) {
	a, b, c := t[0], t[1], t[2]
	det := (b.y-c.y)*(a.x-c.x) + (c.x-b.x)*(a.y-c.y)
	if math.Abs(det) < 1e-9 {
		return
	}
	inv := 1 / det

	minX := max(int(math.Floor(min(a.x, b.x, c.x))), 0)
	maxX := min(int(math.Ceil(max(a.x, b.x, c.x))), fb.Width-1)
	minY := max(int(math.Floor(min(a.y, b.y, c.y))), 0)
	maxY := min(int(math.Ceil(max(a.y, b.y, c.y))), fb.Height-1)

	for py := minY; py <= maxY; py++ {
		fy := float64(py) + 0.5 - c.y
		for px := minX; px <= maxX; px++ {
			fx := float64(px) + 0.5 - c.x
			w0 := ((b.y-c.y)*fx + (c.x-b.x)*fy) * inv
			w1 := ((c.y-a.y)*fx + (a.x-c.x)*fy) * inv
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			i := py*fb.Width + px
			z := w0*a.z + w1*b.z + w2*c.z
			if z <= fb.Depth[i] {
				continue
			}

			col := s.color
			if s.tex != nil {
				u := w0*a.u + w1*b.u + w2*c.u
				v := w0*a.v + w1*b.v + w2*c.v
				tx := Sample(s.tex, u, v)
				for k := range col {
					col[k] *= tx[k]
				}
			}
			if col[3] < 1.0/255 {
				continue
			}
			r := col[0] + s.emissive[0]
			g := col[1] + s.emissive[1]
			bl := col[2] + s.emissive[2]

			if s.additive {
				fb.add(i, r, g, bl, col[3])
				continue
			}
			fb.blend(i, r, g, bl, col[3])
			if col[3] >= opaqueDepth {
				fb.Depth[i] = z
			}
		}
	}
}
