// Package colorspace provides sRGB to CIELAB conversion and the CIE76
// perceptual color distance (delta-E).
//
// All classification in this project compares colors in CIELAB space rather
// than RGB: perceptual distance separates foreground text from background far
// more reliably than RGB Euclidean distance or luminance alone, especially
// under JPEG artifacts and anti-aliasing.
//
// # Units
//
// Lab values use the standard CIE ranges (L in [0,100], a and b roughly in
// [-128,128]). go-colorful normalizes its Lab output to [0,1]; this package
// rescales back to standard units so that delta-E thresholds can be stated
// in the familiar CIE76 scale (where ~2.3 is a just-noticeable difference).
package colorspace

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB color value. Immutable once produced; alpha is not
// part of color math anywhere in this project.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Lab is a color in CIELAB (D65), L in [0,100]. It exists only as an
// intermediate for distance computation and is never persisted.
type Lab struct {
	L float64
	A float64
	B float64
}

// White and Black are the neutral fallback colors used throughout the
// classifier fallback policy.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// Linearize applies the sRGB gamma decode to a single 8-bit channel,
// returning the linear intensity in [0,1].
func Linearize(channel uint8) float64 {
	c := float64(channel) / 255.0
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ToLab converts an sRGB color to CIELAB under the D65 reference white.
func ToLab(c RGB) Lab {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	// colorful returns L/100, a/100, b/100; rescale to standard CIE units.
	return Lab{L: l * 100.0, A: a * 100.0, B: b * 100.0}
}

// DeltaE returns the CIE76 color difference: Euclidean distance in Lab space.
// It is symmetric, non-negative, and zero iff the inputs are equal.
func DeltaE(x, y Lab) float64 {
	dl := x.L - y.L
	da := x.A - y.A
	db := x.B - y.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Luma returns the Rec.601 luminance of c in [0,255]. Used only for the
// black-or-white contrast fallback when a region has no distinguishable text.
func Luma(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ContrastingMono returns pure black for light backgrounds and pure white for
// dark ones, splitting at luma 128.
func ContrastingMono(background RGB) RGB {
	if Luma(background) >= 128 {
		return Black
	}
	return White
}

// Hex formats c as a lowercase "#rrggbb" string.
func Hex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
