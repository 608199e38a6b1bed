package colorextract

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/scanstudio/textstyle-mcp/internal/colorspace"
)

// pixels provides O(1) RGB reads over any decoded image by normalizing it to
// NRGBA once up front. The underlying buffer is never written.
type pixels struct {
	img *image.NRGBA
	w   int
	h   int
}

func newPixels(img image.Image) pixels {
	n := imaging.Clone(img)
	return pixels{img: n, w: n.Rect.Dx(), h: n.Rect.Dy()}
}

// at reads the pixel at (x, y), which must be inside the image.
func (p pixels) at(x, y int) colorspace.RGB {
	i := p.img.PixOffset(x, y)
	return colorspace.RGB{
		R: p.img.Pix[i],
		G: p.img.Pix[i+1],
		B: p.img.Pix[i+2],
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
