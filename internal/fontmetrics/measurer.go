package fontmetrics

import (
	"errors"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
)

// TextMeasurer is the measurement oracle the estimator depends on: given a
// string, a font selection, and a candidate size, it reports the rendered
// pixel extents. Any backend able to shape text (a rasterizer, a headless
// renderer) can satisfy it.
type TextMeasurer interface {
	// MeasureWidth returns the rendered pixel width of text at size.
	MeasureWidth(text string, family Family, weight Weight, size float64) float64

	// MeasureAscentDescent returns the rendered ascent and descent in
	// pixels of the face selected by family/weight at size.
	MeasureAscentDescent(text string, family Family, weight Weight, size float64) (ascent, descent float64)
}

// FaceMeasurer measures text with freetype faces on a private 1x1 drawing
// context. The context is owned by the measurer and released with it; there
// is no process-wide rendering singleton.
//
// FaceMeasurer is safe for concurrent use; the context is guarded because
// setting a face mutates it.
type FaceMeasurer struct {
	mu    sync.Mutex
	ctx   *gg.Context
	fonts *Provider
}

// NewFaceMeasurer builds a measurer over the given font provider.
func NewFaceMeasurer(fonts *Provider) (*FaceMeasurer, error) {
	if fonts == nil {
		return nil, errors.New("fontmetrics: no font provider configured")
	}
	return &FaceMeasurer{ctx: gg.NewContext(1, 1), fonts: fonts}, nil
}

// MeasureWidth implements TextMeasurer.
func (m *FaceMeasurer) MeasureWidth(text string, family Family, weight Weight, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	face := truetype.NewFace(m.fonts.font(family, weight), &truetype.Options{Size: size})
	defer face.Close()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx.SetFontFace(face)
	width, _ := m.ctx.MeasureString(text)
	return width
}

// MeasureAscentDescent implements TextMeasurer.
func (m *FaceMeasurer) MeasureAscentDescent(_ string, family Family, weight Weight, size float64) (float64, float64) {
	if size <= 0 {
		return 0, 0
	}
	face := truetype.NewFace(m.fonts.font(family, weight), &truetype.Options{Size: size})
	defer face.Close()

	metrics := face.Metrics()
	return float64(metrics.Ascent) / 64.0, float64(metrics.Descent) / 64.0
}
