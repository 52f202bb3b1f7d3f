// Package texture loads scene texture images and maps human-readable tags
// to uploaded GL textures and their unit slots.
package texture

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Decode reads an image file and converts it to RGBA pixels with rows
// flipped so the first row is the bottom of the image, matching GL's
// UV origin. Images must natively carry 3 (RGB) or 4 (RGBA) channels;
// grayscale files are a reported failure, not a crash.
func Decode(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	if ch := channelCount(img); ch != 3 && ch != 4 {
		return nil, fmt.Errorf("texture %q: unsupported %d-channel %s image", path, ch, format)
	}

	return flipToRGBA(img), nil
}

// channelCount reports how many color channels the decoded image natively
// carries, as far as its Go color model exposes that.
func channelCount(img image.Image) int {
	switch im := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 2
	case *image.YCbCr:
		return 3
	case *image.NYCbCrA:
		return 4
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		// RGBA, NRGBA, their 64-bit variants, CMYK.
		return 4
	}
}

// flipToRGBA converts any image to RGBA, reversing the row order.
func flipToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcY := b.Min.Y + (h - 1 - y)
		for x := 0; x < w; x++ {
			out.Set(x, y, img.At(b.Min.X+x, srcY))
		}
	}
	return out
}
