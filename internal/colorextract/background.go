package colorextract

import (
	"image"

	"github.com/scanstudio/textstyle-mcp/internal/colorspace"
	"github.com/scanstudio/textstyle-mcp/internal/imaging"
)

const (
	// pageMarginFrac excludes an outer band of the scan from background
	// sampling; scanner and camera captures commonly carry dark borders.
	pageMarginFrac = 0.05

	// backgroundGridSize is the number of sample points per axis.
	backgroundGridSize = 25

	// backgroundTrimDeltaE bounds which samples contribute to the final
	// average around the medoid. Empirical, paired with the interior
	// split threshold in classify.go.
	backgroundTrimDeltaE = 15.0
)

// PageBackground estimates a single page-level background color for img,
// skipping grid points that fall inside any exclusion box (detected text
// regions). The result is a lowercase "#rrggbb" string.
//
// Two passes: the medoid of the grid samples locates the background cluster,
// then the arithmetic per-channel mean of the samples within
// backgroundTrimDeltaE of that medoid smooths sensor noise without letting
// outliers (stray text, glare) bias the result. If every sample is an
// outlier the medoid itself is returned; if there are no valid samples at
// all the result is white.
func PageBackground(img image.Image, exclude []imaging.Bounds) string {
	px := newPixels(img)

	marginX := float64(px.w) * pageMarginFrac
	marginY := float64(px.h) * pageMarginFrac
	innerW := float64(px.w) - 2*marginX
	innerH := float64(px.h) - 2*marginY
	if innerW <= 0 || innerH <= 0 {
		return colorspace.Hex(colorspace.White)
	}

	canon := make([]imaging.Bounds, len(exclude))
	for i, b := range exclude {
		canon[i] = b.Canon()
	}

	samples := make([]colorspace.RGB, 0, backgroundGridSize*backgroundGridSize)
	for gy := 0; gy < backgroundGridSize; gy++ {
		fy := marginY + (float64(gy)+0.5)*innerH/backgroundGridSize
		for gx := 0; gx < backgroundGridSize; gx++ {
			fx := marginX + (float64(gx)+0.5)*innerW/backgroundGridSize
			if pointExcluded(fx, fy, canon) {
				continue
			}
			x := clampInt(int(fx), 0, px.w-1)
			y := clampInt(int(fy), 0, px.h-1)
			samples = append(samples, px.at(x, y))
		}
	}
	if len(samples) == 0 {
		return colorspace.Hex(colorspace.White)
	}

	center := Medoid(samples)
	centerLab := colorspace.ToLab(center)

	var sumR, sumG, sumB float64
	kept := 0
	for _, c := range samples {
		if colorspace.DeltaE(colorspace.ToLab(c), centerLab) < backgroundTrimDeltaE {
			sumR += float64(c.R)
			sumG += float64(c.G)
			sumB += float64(c.B)
			kept++
		}
	}
	if kept == 0 {
		return colorspace.Hex(center)
	}

	n := float64(kept)
	return colorspace.Hex(colorspace.RGB{
		R: uint8(sumR/n + 0.5),
		G: uint8(sumG/n + 0.5),
		B: uint8(sumB/n + 0.5),
	})
}

func pointExcluded(x, y float64, exclude []imaging.Bounds) bool {
	for _, b := range exclude {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}
