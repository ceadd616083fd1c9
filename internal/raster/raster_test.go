package raster

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/object"
)

func TestRenderCube(t *testing.T) {
	errs := diag.New()
	obj := object.Parse("CreateMeshBuilder\nCube,1,2,1\nSetColor,200,100,50\n", object.CSV, errs, "cube.csv")
	if errs.Len() != 0 {
		t.Fatalf("diagnostics: %v", errs)
	}
	img := RenderObject(obj, nil, Options{Size: 64, Supersample: 1})
	if img.Bounds().Dx() != 64 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if c := img.NRGBAAt(32, 32); c.A != 255 || c.R <= c.B {
		t.Errorf("center pixel = %v, want opaque orange-ish", c)
	}
	if c := img.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner pixel = %v, want background", c)
	}
}

func TestRenderEmptyObject(t *testing.T) {
	bg := color.NRGBA{1, 2, 3, 255}
	img := RenderObject(&object.Object{}, nil, Options{Size: 8, Supersample: 2, Background: bg})
	if img.Bounds().Dx() != 8 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	c := img.NRGBAAt(4, 4)
	if c.A < 254 || c.R > 2 || c.B < 2 || c.B > 4 {
		t.Errorf("pixel = %v, want about %v", c, bg)
	}
}

func TestTurnRotatesBeforeView(t *testing.T) {
	var o Options
	o.Turn(90, 0, 0)
	// the object's forward axis ends up where the view puts +X
	got := o.View.MulVec3(mathutil.Forward)
	want := mathutil.PreviewView.MulVec3(mathutil.Vec3{1, 0, 0})
	if !got.ApproxEqual(want, 1e-9) {
		t.Fatalf("turned forward = %v, want %v", got, want)
	}

	d := DefaultOptions()
	d.Turn(0, 0, 0)
	if d.View != mathutil.PreviewView {
		t.Fatalf("zero turn changed the view: %v", d.View)
	}
}

func TestDepthTestKeepsNearest(t *testing.T) {
	tri := func(z float64) [3]screenVertex {
		return [3]screenVertex{{x: 0, y: 0, z: z}, {x: 16, y: 0, z: z}, {x: 0, y: 16, z: z}}
	}
	near := &surface{color: [4]float64{1, 0, 0, 1}}
	far := &surface{color: [4]float64{0, 0, 1, 1}}
	for _, order := range [][2]bool{{true, false}, {false, true}} {
		fb := NewFrameBuffer(16, 16, color.NRGBA{})
		for _, first := range order {
			if first {
				drawTriangle(fb, tri(1), near)
			} else {
				drawTriangle(fb, tri(-1), far)
			}
		}
		if c := fb.Image().NRGBAAt(2, 2); c != (color.NRGBA{255, 0, 0, 255}) {
			t.Errorf("order %v: pixel = %v, want red", order, c)
		}
	}
}

func TestAdditiveAddsWithoutDepthWrite(t *testing.T) {
	fb := NewFrameBuffer(16, 16, color.NRGBA{100, 100, 100, 255})
	tri := [3]screenVertex{{x: 0, y: 0}, {x: 16, y: 0}, {x: 0, y: 16}}
	drawTriangle(fb, tri, &surface{color: [4]float64{0.2, 0, 0, 1}, additive: true})
	drawTriangle(fb, tri, &surface{color: [4]float64{0.2, 0, 0, 1}, additive: true})
	c := fb.Image().NRGBAAt(2, 2)
	if c.R != 202 || c.G != 100 {
		t.Errorf("pixel = %v, want R=202 G=100", c)
	}
}

func TestSampleWraps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})
	for _, u := range []float64{0.25, 1.25, -0.75} {
		if s := Sample(tex, u, 0.5); s[0] != 1 || s[2] != 0 {
			t.Errorf("Sample(%g) = %v, want pure red", u, s)
		}
	}
}

func TestLightShade(t *testing.T) {
	l := DefaultLight()
	toLight := l.Direction.Scale(-1)
	if got := l.Shade(toLight); got < l.Ambient+l.Diffuse-1e-9 {
		t.Errorf("lit face shade = %g", got)
	}
	if got := l.Shade(l.Direction); got != l.Ambient {
		t.Errorf("back face shade = %g, want ambient %g", got, l.Ambient)
	}
	if !l.Direction.ApproxEqual(mathutil.DefaultLightDirection.Normalize(), 1e-9) {
		t.Errorf("direction = %v", l.Direction)
	}
}

func TestDownsampleAndWriteWebP(t *testing.T) {
	big := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range big.Pix {
		big.Pix[i] = 200
	}
	small := Downsample(big, 4)
	if small.Bounds().Dx() != 4 {
		t.Fatalf("bounds %v", small.Bounds())
	}
	if c := small.NRGBAAt(2, 2); c.A < 195 || c.R < 195 {
		t.Errorf("pixel = %v", c)
	}

	path := filepath.Join(t.TempDir(), "sub", "p.webp")
	if err := WriteWebP(path, small); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		t.Errorf("not a WebP file: % x", data[:12])
	}
}
