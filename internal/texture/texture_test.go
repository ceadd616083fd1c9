package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/bmp"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/object"
)

func writeImage(t *testing.T, path string, enc func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 255, 255})
	img.Set(1, 0, color.RGBA{10, 20, 30, 255})
	img.Set(0, 1, color.RGBA{255, 0, 255, 255})
	img.Set(1, 1, color.RGBA{40, 50, 60, 255})
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := enc(f, img); err != nil {
		t.Fatal(err)
	}
}

func pngEnc(f *os.File, img image.Image) error { return png.Encode(f, img) }
func bmpEnc(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		name string
		enc  func(*os.File, image.Image) error
	}{
		{"a.png", pngEnc},
		{"b.bmp", bmpEnc},
	} {
		path := filepath.Join(dir, tc.name)
		writeImage(t, path, tc.enc)
		img, err := Load(path)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
			t.Fatalf("%s: bounds %v", tc.name, img.Bounds())
		}
		if got := img.NRGBAAt(1, 0); got != (color.NRGBA{10, 20, 30, 255}) {
			t.Errorf("%s: pixel (1,0) = %v", tc.name, got)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error")
	}
}

func TestApplyDecal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.png")
	writeImage(t, path, pngEnc)
	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	ApplyDecal(img, [3]uint8{255, 0, 255})
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("keyed pixel alpha = %d", a)
	}
	if a := img.NRGBAAt(1, 1).A; a != 255 {
		t.Errorf("other pixel alpha = %d", a)
	}
}

func TestCacheKeysOnDecal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.png")
	writeImage(t, path, pngEnc)
	c := NewCache(nil)

	plain := c.Resolve(object.Texture{File: path})
	keyed := c.Resolve(object.Texture{File: path, HasDecalColor: true, DecalColor: object.RGB{R: 255, B: 255}})
	if plain == nil || keyed == nil {
		t.Fatal("expected both images to load")
	}
	if plain.NRGBAAt(0, 0).A != 255 || keyed.NRGBAAt(0, 0).A != 0 {
		t.Errorf("decal leaked between entries: plain=%v keyed=%v", plain.NRGBAAt(0, 0), keyed.NRGBAAt(0, 0))
	}
	if again := c.Resolve(object.Texture{File: path}); again != plain {
		t.Error("second lookup did not hit the cache")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.png")
	writeImage(t, path, pngEnc)
	c := NewCache(nil)
	var wg sync.WaitGroup
	got := make([]*image.NRGBA, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = c.Resolve(object.Texture{File: path})
		}()
	}
	wg.Wait()
	for i := range got {
		if got[i] == nil {
			t.Fatalf("goroutine %d got nil", i)
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestIndexAndCheck(t *testing.T) {
	root := t.TempDir()
	writeImage(t, filepath.Join(root, "Textures", "Wall.PNG"), pngEnc)
	if err := os.WriteFile(filepath.Join(root, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	idx, err := BuildIndex(root)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", idx.Len())
	}
	if _, ok := idx.ResolvePath(`objects\wall.png`); !ok {
		t.Fatal("wall.png not resolved by base name")
	}

	errs := diag.New()
	paths := []string{
		filepath.Join(root, "elsewhere", "wall.png"),
		filepath.Join(root, "broken.png"),
		filepath.Join(root, "missing.png"),
		filepath.Join(root, "model.dds"),
	}
	if n := Check(paths, idx, errs, "obj.csv"); n != 3 {
		t.Fatalf("Check = %d, want 3; %v", n, errs.For("obj.csv"))
	}
	d := errs.For("obj.csv")
	want := []string{
		"Texture " + paths[1] + " could not be loaded",
		"Texture " + paths[2] + " could not be found",
		"Texture " + paths[3] + " has an unsupported format",
	}
	for i, w := range want {
		if len(d[i].Message) < len(w) || d[i].Message[:len(w)] != w {
			t.Errorf("diagnostic %d = %q, want prefix %q", i, d[i].Message, w)
		}
	}
}
