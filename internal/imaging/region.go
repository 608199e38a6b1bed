package imaging

import (
	"fmt"
	"image"
	"math"
)

// Bounds is an axis-aligned bounding box in image-pixel space, as delivered
// by an OCR engine. Coordinates may be fractional and may extend outside the
// image; callers clamp before sampling.
type Bounds struct {
	X0 float64 `json:"x0"` // Left edge
	Y0 float64 `json:"y0"` // Top edge
	X1 float64 `json:"x1"` // Right edge
	Y1 float64 `json:"y1"` // Bottom edge
}

// Canon returns b with coordinates reordered so that X0 <= X1 and Y0 <= Y1.
func (b Bounds) Canon() Bounds {
	if b.X0 > b.X1 {
		b.X0, b.X1 = b.X1, b.X0
	}
	if b.Y0 > b.Y1 {
		b.Y0, b.Y1 = b.Y1, b.Y0
	}
	return b
}

// Width returns the horizontal extent of the box in pixels.
func (b Bounds) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box in pixels.
func (b Bounds) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains reports whether the point (x, y) lies inside the box.
// The right and bottom edges are exclusive, matching pixel-rect convention.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X0 && x < b.X1 && y >= b.Y0 && y < b.Y1
}

// Clamp converts b to an integer pixel rectangle intersected with the image
// area [0,width) x [0,height). The result is empty when the box lies entirely
// outside the image or has zero area.
func (b Bounds) Clamp(width, height int) image.Rectangle {
	b = b.Canon()
	r := image.Rect(
		int(math.Floor(b.X0)),
		int(math.Floor(b.Y0)),
		int(math.Ceil(b.X1)),
		int(math.Ceil(b.Y1)),
	)
	return r.Intersect(image.Rect(0, 0, width, height))
}

// BoundsFromRect converts an integer pixel rectangle to Bounds.
func BoundsFromRect(r image.Rectangle) Bounds {
	return Bounds{
		X0: float64(r.Min.X),
		Y0: float64(r.Min.Y),
		X1: float64(r.Max.X),
		Y1: float64(r.Max.Y),
	}
}

// FromRGBA wraps a decoded row-major RGBA pixel buffer (4 bytes per pixel) as
// an image without copying. This is the entry point for hosts that hand over
// raw pixels instead of an image file.
//
// The buffer is treated as read-only by every consumer in this module.
func FromRGBA(width, height int, pix []byte) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer dimensions %dx%d", width, height)
	}
	if need := width * height * 4; len(pix) < need {
		return nil, fmt.Errorf("pixel buffer too short: got %d bytes, need %d", len(pix), need)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}
