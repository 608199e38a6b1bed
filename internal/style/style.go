// Package style assembles the per-line rendering parameters the downstream
// editor consumes: text and background colors, font size, family, and weight
// for each OCR-detected text line, plus one page-level background color.
package style

import (
	"fmt"
	"image"

	"github.com/scanstudio/textstyle-mcp/internal/colorextract"
	"github.com/scanstudio/textstyle-mcp/internal/fontmetrics"
	"github.com/scanstudio/textstyle-mcp/internal/imaging"
	"github.com/scanstudio/textstyle-mcp/internal/ocr"
)

// Line is the editor-facing record for one detected text line. Colors are
// lowercase "#rrggbb"; FontSize is in pixels.
type Line struct {
	ID         string             `json:"id"`
	Text       string             `json:"text"`
	Bounds     imaging.Bounds     `json:"bbox"`
	FontSize   float64            `json:"font_size"`
	TextColor  string             `json:"text_color"`
	BgColor    string             `json:"bg_color"`
	FontFamily fontmetrics.Family `json:"font_family"`
	FontWeight fontmetrics.Weight `json:"font_weight"`
	Confidence float64            `json:"confidence"`
}

// PageResult is the full extraction output for one image.
type PageResult struct {
	Lines []Line `json:"lines"`

	// PageBackground is the page-level fill fallback, estimated with every
	// line's box excluded from sampling.
	PageBackground string `json:"page_bg_color"`
}

// Extractor derives rendering parameters for detected text lines. It owns a
// font size estimator; color classification is stateless.
type Extractor struct {
	estimator *fontmetrics.Estimator
}

// NewExtractor builds an extractor over the given measurement oracle.
// A missing oracle is a host configuration error and fails here.
func NewExtractor(measurer fontmetrics.TextMeasurer) (*Extractor, error) {
	estimator, err := fontmetrics.NewEstimator(measurer)
	if err != nil {
		return nil, err
	}
	return &Extractor{estimator: estimator}, nil
}

// ExtractLine produces the rendering parameters for a single text line.
// Region classification and size estimation are independent; each resolves
// degenerate input to its own documented fallback, so the returned record is
// always fully populated.
func (e *Extractor) ExtractLine(img image.Image, id string, line ocr.Line) Line {
	colors := colorextract.ClassifyRegion(img, line.Bounds)

	hints := line.Hints()
	family := fontmetrics.InferFamily(hints)
	weight := fontmetrics.InferWeight(hints)

	return Line{
		ID:         id,
		Text:       line.Text,
		Bounds:     line.Bounds,
		FontSize:   e.estimator.EstimateSize(line.Text, line.Bounds, family, weight),
		TextColor:  colors.TextColor,
		BgColor:    colors.BgColor,
		FontFamily: family,
		FontWeight: weight,
		Confidence: line.Confidence,
	}
}

// ExtractPage runs ExtractLine over every detected line and estimates the
// page background with all line boxes excluded. Lines are independent; the
// caller may fan them out concurrently if a page is large, but sequential
// cost is already bounded by the fixed sampling strides.
func (e *Extractor) ExtractPage(img image.Image, lines []ocr.Line) PageResult {
	exclude := make([]imaging.Bounds, len(lines))
	for i, l := range lines {
		exclude[i] = l.Bounds
	}

	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = e.ExtractLine(img, fmt.Sprintf("line-%d", i+1), l)
	}

	return PageResult{
		Lines:          out,
		PageBackground: colorextract.PageBackground(img, exclude),
	}
}
