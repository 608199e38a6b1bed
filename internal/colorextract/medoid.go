package colorextract

import (
	"math"

	"github.com/scanstudio/textstyle-mcp/internal/colorspace"
)

// maxMedoidSamples caps the O(n²) pairwise distance cost. Larger inputs are
// subsampled at an even stride, which is deterministic and preserves the
// distribution shape of the input.
const maxMedoidSamples = 200

// Medoid returns the member of colors minimizing the total CIE76 distance to
// all other members: a real observed color, unlike a mean.
//
// An empty input returns white; a singleton returns its element.
func Medoid(colors []colorspace.RGB) colorspace.RGB {
	switch len(colors) {
	case 0:
		return colorspace.White
	case 1:
		return colors[0]
	}

	sample := colors
	if len(colors) > maxMedoidSamples {
		stride := (len(colors) + maxMedoidSamples - 1) / maxMedoidSamples
		sample = make([]colorspace.RGB, 0, maxMedoidSamples)
		for i := 0; i < len(colors); i += stride {
			sample = append(sample, colors[i])
		}
	}

	labs := make([]colorspace.Lab, len(sample))
	for i, c := range sample {
		labs[i] = colorspace.ToLab(c)
	}

	best := 0
	bestSum := math.Inf(1)
	for i := range labs {
		sum := 0.0
		for j := range labs {
			sum += colorspace.DeltaE(labs[i], labs[j])
		}
		if sum < bestSum {
			bestSum = sum
			best = i
		}
	}
	return sample[best]
}
