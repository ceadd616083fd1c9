package texture

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Load reads a texture file and returns it as NRGBA. The decoder is picked
// by extension for .bmp and .tga; everything else goes through the
// registered image formats (png, jpeg, gif).
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		img, err = bmp.Decode(r)
	case ".tga":
		img, err = tga.Decode(r)
	default:
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// ApplyDecal clears the alpha of every pixel matching key exactly. The image
// is modified in place and returned.
func ApplyDecal(img *image.NRGBA, key [3]uint8) *image.NRGBA {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] == key[0] && img.Pix[i+1] == key[1] && img.Pix[i+2] == key[2] {
			img.Pix[i+3] = 0
		}
	}
	return img
}

// toNRGBA converts src to a zero-origin NRGBA image. Opaque sources come out
// with alpha 255.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
