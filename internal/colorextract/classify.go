package colorextract

import (
	"image"

	"github.com/scanstudio/textstyle-mcp/internal/colorspace"
	"github.com/scanstudio/textstyle-mcp/internal/imaging"
)

const (
	// borderMargin is the width in pixels of the band sampled just outside
	// each edge of a region to estimate its background color.
	borderMargin = 2

	// sampleStride is the pixel step used for both border and interior
	// sampling. Text regions are locally uniform enough that every other
	// pixel carries the same information at a quarter of the cost.
	sampleStride = 2

	// backgroundSplitDeltaE separates interior pixels into background and
	// foreground clusters. 20 sits at the CIE76 "small perceptible
	// difference" boundary; empirical, do not re-derive.
	backgroundSplitDeltaE = 20.0

	// minForegroundSamples is the statistical floor below which the
	// foreground medoid is not trusted over the single farthest pixel.
	minForegroundSamples = 3
)

// RegionColors is the per-region classification result. Both fields are
// always populated as lowercase "#rrggbb" strings; the fallback policy never
// leaves one empty.
type RegionColors struct {
	TextColor string `json:"text_color"`
	BgColor   string `json:"bg_color"`
}

// fallbackRegionColors is returned for regions with no usable pixels, such as
// a box entirely outside the image.
var fallbackRegionColors = RegionColors{TextColor: "#000000", BgColor: "#ffffff"}

// ClassifyRegion estimates the text and background colors of the given
// bounding box in img.
//
// The box is clamped to the image first. The background is estimated from the
// border band outside the clamped box, interior pixels are then split by
// delta-E against that estimate, and each cluster is represented by its
// medoid. A region with too few foreground samples falls back to the single
// most distant pixel, and a completely flat region falls back to black or
// white, whichever contrasts more with the background.
func ClassifyRegion(img image.Image, box imaging.Bounds) RegionColors {
	px := newPixels(img)
	r := box.Clamp(px.w, px.h)
	if r.Empty() {
		return fallbackRegionColors
	}

	border := borderSamples(px, r)
	if len(border) == 0 {
		return fallbackRegionColors
	}
	bgSeed := Medoid(border)
	bgLab := colorspace.ToLab(bgSeed)

	var bgCluster, fgCluster []colorspace.RGB
	var farthest colorspace.RGB
	farthestDist := 0.0

	for y := r.Min.Y; y < r.Max.Y; y += sampleStride {
		for x := r.Min.X; x < r.Max.X; x += sampleStride {
			c := px.at(x, y)
			d := colorspace.DeltaE(colorspace.ToLab(c), bgLab)
			if d < backgroundSplitDeltaE {
				bgCluster = append(bgCluster, c)
			} else {
				fgCluster = append(fgCluster, c)
			}
			if d > farthestDist {
				farthestDist = d
				farthest = c
			}
		}
	}

	bg := bgSeed
	if len(bgCluster) > 0 {
		bg = Medoid(bgCluster)
	}

	var text colorspace.RGB
	switch {
	case len(fgCluster) >= minForegroundSamples:
		text = Medoid(fgCluster)
	case farthestDist > 0:
		// Too few samples to trust a medoid; the farthest pixel is the
		// best single witness of the foreground color.
		text = farthest
	default:
		// Flat region, no distinguishable text.
		text = colorspace.ContrastingMono(bg)
	}

	return RegionColors{
		TextColor: colorspace.Hex(text),
		BgColor:   colorspace.Hex(bg),
	}
}

// borderSamples collects pixels from a band borderMargin wide just outside
// each edge of r, at sampleStride spacing, with coordinates clamped to the
// image so boxes touching an image edge still sample something.
func borderSamples(px pixels, r image.Rectangle) []colorspace.RGB {
	samples := make([]colorspace.RGB, 0, 4*(r.Dx()+r.Dy())/sampleStride)

	for d := 1; d <= borderMargin; d++ {
		top := clampInt(r.Min.Y-d, 0, px.h-1)
		bottom := clampInt(r.Max.Y-1+d, 0, px.h-1)
		for x := r.Min.X; x < r.Max.X; x += sampleStride {
			samples = append(samples, px.at(x, top), px.at(x, bottom))
		}

		left := clampInt(r.Min.X-d, 0, px.w-1)
		right := clampInt(r.Max.X-1+d, 0, px.w-1)
		for y := r.Min.Y; y < r.Max.Y; y += sampleStride {
			samples = append(samples, px.at(left, y), px.at(right, y))
		}
	}

	return samples
}
