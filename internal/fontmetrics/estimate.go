// Package fontmetrics estimates the font size, family, and weight that best
// reproduce an OCR-detected text line inside its bounding box.
//
// Size estimation is driven by a TextMeasurer capability: any backend that
// can report the rendered width and vertical extent of a string at a given
// size satisfies it. The default backend renders with freetype faces on a
// private drawing context; tests substitute a linear fake.
package fontmetrics

import (
	"errors"
	"strings"

	"github.com/scanstudio/textstyle-mcp/internal/imaging"
)

const (
	// defaultSize is returned for boxes with no usable height.
	defaultSize = 16.0

	// emptyTextHeightFactor sizes whitespace-only lines relative to the
	// box, leaving breathing room above and below.
	emptyTextHeightFactor = 0.85

	// Binary-search window and round count for fit-by-width.
	minCandidateSize = 1.0
	maxCandidateSize = 200.0
	fitIterations    = 20

	// heightProbeSize is the size at which fit-by-height measures the
	// rendered ascent+descent before scaling linearly.
	heightProbeSize = 100.0

	// The final estimate always lands within this band of the box height,
	// whichever fitting path produced it.
	minSizeFactor = 0.4
	maxSizeFactor = 1.5

	// minWidthFitChars is the text length below which a width measurement
	// is too noisy to fit against and height fitting is used instead.
	minWidthFitChars = 3
)

// Estimator turns measured text extents into font size estimates.
type Estimator struct {
	measurer TextMeasurer
}

// NewEstimator wires an estimator to its measurement oracle. A nil measurer
// is a host configuration error, not an input edge case, and is rejected
// here rather than silently producing defaults later.
func NewEstimator(m TextMeasurer) (*Estimator, error) {
	if m == nil {
		return nil, errors.New("fontmetrics: no text measurer configured")
	}
	return &Estimator{measurer: m}, nil
}

// EstimateSize returns the font size in pixels at which text best fills box.
//
// Lines with at least three characters and a positive box width are fitted
// by width: a binary search converges on the largest size whose measured
// width does not exceed the box. Shorter lines are fitted by height from a
// single probe measurement. Either way the result is clamped to
// [0.4, 1.5] times the box height; a box without height yields a fixed
// default and a whitespace-only line yields 0.85 of the box height.
func (e *Estimator) EstimateSize(text string, box imaging.Bounds, family Family, weight Weight) float64 {
	box = box.Canon()
	boxHeight := box.Height()
	if boxHeight <= 0 {
		return defaultSize
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return emptyTextHeightFactor * boxHeight
	}

	var size float64
	boxWidth := box.Width()
	if len([]rune(trimmed)) >= minWidthFitChars && boxWidth > 0 {
		size = e.fitByWidth(trimmed, boxWidth, family, weight)
	} else {
		size = e.fitByHeight(trimmed, boxHeight, family, weight)
	}

	return clampSize(size, boxHeight)
}

// fitByWidth binary-searches for the largest candidate size whose measured
// width stays within boxWidth. Measured width is monotonic in size, so the
// fixed round count brackets the answer to well under a hundredth of a pixel.
func (e *Estimator) fitByWidth(text string, boxWidth float64, family Family, weight Weight) float64 {
	lo, hi := minCandidateSize, maxCandidateSize
	best := lo
	for i := 0; i < fitIterations; i++ {
		mid := (lo + hi) / 2
		if e.measurer.MeasureWidth(text, family, weight, mid) <= boxWidth {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}
	return best
}

// fitByHeight measures the rendered ascent+descent once at a probe size and
// scales linearly to the target height.
func (e *Estimator) fitByHeight(text string, boxHeight float64, family Family, weight Weight) float64 {
	ascent, descent := e.measurer.MeasureAscentDescent(text, family, weight, heightProbeSize)
	rendered := ascent + descent
	if rendered <= 0 {
		return emptyTextHeightFactor * boxHeight
	}
	return boxHeight / rendered * heightProbeSize
}

func clampSize(size, boxHeight float64) float64 {
	if lo := minSizeFactor * boxHeight; size < lo {
		return lo
	}
	if hi := maxSizeFactor * boxHeight; size > hi {
		return hi
	}
	return size
}
