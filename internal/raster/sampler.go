package raster

import (
	"image"
	"math"
)

// Sample reads tex at (u, v) with bilinear filtering and repeat wrapping.
// v = 0 is the top row. Channels come back in 0..1.
func Sample(tex *image.NRGBA, u, v float64) [4]float64 {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	fx := (u-math.Floor(u))*float64(w) - 0.5
	fy := (v-math.Floor(v))*float64(h) - 0.5
	x0f, y0f := math.Floor(fx), math.Floor(fy)
	dx, dy := fx-x0f, fy-y0f
	x0, y0 := wrap(int(x0f), w), wrap(int(y0f), h)
	x1, y1 := wrap(x0+1, w), wrap(y0+1, h)

	i00 := y0*tex.Stride + x0*4
	i10 := y0*tex.Stride + x1*4
	i01 := y1*tex.Stride + x0*4
	i11 := y1*tex.Stride + x1*4
	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]float64
	for c := range out {
		p := tex.Pix
		out[c] = (float64(p[i00+c])*w00 + float64(p[i10+c])*w10 + float64(p[i01+c])*w01 + float64(p[i11+c])*w11) / 255
	}
	return out
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
