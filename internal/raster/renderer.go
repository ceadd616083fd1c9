// Package raster renders compiled objects into small preview images.
package raster

import (
	"image"
	"image/color"
	"math"

	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/object"
	"bve-compiler/internal/texture"
)

// Options controls a preview render.
type Options struct {
	Size        int // output width and height in pixels
	Supersample int
	Background  color.NRGBA
	View        mathutil.Mat3
	Light       Light
}

// DefaultOptions renders 512 px previews at 2x supersampling from the
// front-left under the default route light.
func DefaultOptions() Options {
	return Options{
		Size:        512,
		Supersample: 2,
		View:        mathutil.PreviewView,
		Light:       DefaultLight(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Size <= 0 {
		o.Size = d.Size
	}
	if o.Supersample <= 0 {
		o.Supersample = 1
	}
	if o.View == (mathutil.Mat3{}) {
		o.View = d.View
	}
	if o.Light == (Light{}) {
		o.Light = d.Light
	}
	return o
}

// Turn rotates the object by yaw, pitch and roll (degrees) before the view
// is applied.
func (o *Options) Turn(yaw, pitch, roll float64) {
	if o.View == (mathutil.Mat3{}) {
		o.View = mathutil.PreviewView
	}
	o.View = mathutil.Mat3Mul(o.View, mathutil.YawPitchRoll(yaw, pitch, roll))
}

// RenderObject draws every mesh of obj with an orthographic projection
// fitted to its bounds. Normal meshes are drawn first, then additive ones.
// textures may be nil, in which case faces use their colour only.
func RenderObject(obj *object.Object, textures texture.Resolver, opts Options) *image.NRGBA {
	opts = opts.withDefaults()
	rs := opts.Size * opts.Supersample
	fb := NewFrameBuffer(rs, rs, opts.Background)

	lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, m := range obj.Meshes {
		for _, v := range m.Vertices {
			p := opts.View.MulVec3(v.Position)
			for k := range 3 {
				lo[k] = math.Min(lo[k], p[k])
				hi[k] = math.Max(hi[k], p[k])
			}
		}
	}
	if math.IsInf(lo[0], 1) {
		return finish(fb, opts)
	}

	center := lo.Add(hi).Scale(0.5)
	span := math.Max(math.Max(hi[0]-lo[0], hi[1]-lo[1]), 0.001)
	margin := 16 * opts.Supersample
	scale := float64(rs-2*margin) / span
	half := float64(rs) / 2

	project := func(v object.Vertex) screenVertex {
		p := opts.View.MulVec3(v.Position).Sub(center)
		return screenVertex{
			x: half + p[0]*scale,
			y: half - p[1]*scale,
			z: -p[2],
			u: v.UV[0],
			v: v.UV[1],
		}
	}

	for _, additive := range []bool{false, true} {
		for mi := range obj.Meshes {
			m := &obj.Meshes[mi]
			if (m.Blend == object.BlendAdditive) != additive {
				continue
			}
			var tex *image.NRGBA
			if textures != nil {
				tex = textures.Resolve(m.Texture)
			}
			pts := make([]screenVertex, len(m.Vertices))
			for i, v := range m.Vertices {
				pts[i] = project(v)
			}
			for k := range m.Triangles() {
				ia, ib, ic := m.Indices[3*k], m.Indices[3*k+1], m.Indices[3*k+2]
				shade := opts.Light.Shade(faceNormal(m, ia, ib, ic))
				fd := m.FaceData[k]
				s := surface{
					tex: tex,
					color: [4]float64{
						float64(fd.Color.R) / 255 * shade,
						float64(fd.Color.G) / 255 * shade,
						float64(fd.Color.B) / 255 * shade,
						float64(fd.Color.A) / 255,
					},
					emissive: [3]float64{
						float64(fd.Emissive.R) / 255,
						float64(fd.Emissive.G) / 255,
						float64(fd.Emissive.B) / 255,
					},
					additive: additive,
				}
				drawTriangle(fb, [3]screenVertex{pts[ia], pts[ib], pts[ic]}, &s)
			}
		}
	}
	return finish(fb, opts)
}

// faceNormal averages the vertex normals of a triangle, falling back to the
// geometric normal when they cancel out.
func faceNormal(m *object.Mesh, ia, ib, ic int) mathutil.Vec3 {
	n := m.Vertices[ia].Normal.Add(m.Vertices[ib].Normal).Add(m.Vertices[ic].Normal)
	if n.Len() < 1e-9 {
		a, b, c := m.Vertices[ia].Position, m.Vertices[ib].Position, m.Vertices[ic].Position
		n = b.Sub(a).Cross(c.Sub(a))
	}
	return n.Normalize()
}

func finish(fb *FrameBuffer, opts Options) *image.NRGBA {
	img := fb.Image()
	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size)
	}
	return img
}
