package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the render target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // NRGBA interleaved, len = W*H*4
	Depth  []float64 // larger is nearer, initialised to -inf
}

// NewFrameBuffer allocates a buffer cleared to bg.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  make([]float64, n),
	}
	for i := range n {
		fb.Depth[i] = math.Inf(-1)
		fb.Color[i*4] = bg.R
		fb.Color[i*4+1] = bg.G
		fb.Color[i*4+2] = bg.B
		fb.Color[i*4+3] = bg.A
	}
	return fb
}

// Image copies the colour buffer into a new image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// blend composites a straight-alpha colour over pixel i.
func (fb *FrameBuffer) blend(i int, r, g, b, a float64) {
	p := fb.Color[i*4 : i*4+4]
	if a >= 1 {
		p[0], p[1], p[2], p[3] = clamp255(r*255), clamp255(g*255), clamp255(b*255), 255
		return
	}
	da := float64(p[3]) / 255
	oa := a + da*(1-a)
	if oa <= 0 {
		return
	}
	mix := func(src float64, dst uint8) uint8 {
		return clamp255((src*a + float64(dst)/255*da*(1-a)) / oa * 255)
	}
	p[0], p[1], p[2], p[3] = mix(r, p[0]), mix(g, p[1]), mix(b, p[2]), clamp255(oa*255)
}

// add brightens pixel i by a colour weighted by its alpha.
func (fb *FrameBuffer) add(i int, r, g, b, a float64) {
	p := fb.Color[i*4 : i*4+4]
	p[0] = clamp255(float64(p[0]) + r*a*255)
	p[1] = clamp255(float64(p[1]) + g*a*255)
	p[2] = clamp255(float64(p[2]) + b*a*255)
	p[3] = max(p[3], clamp255(a*255))
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
