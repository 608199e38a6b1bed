// Package imaging provides image loading, caching, and the geometry types
// shared by the color and font analysis packages.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Bounding boxes use float64 coordinates because OCR engines report
// fractional box edges; Bounds.Clamp converts a box to an integer pixel
// rectangle intersected with the image area before any sampling happens.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Decoded images are never mutated by
// any package in this module, so a single cached image may be read by any
// number of concurrent analysis calls.
package imaging
