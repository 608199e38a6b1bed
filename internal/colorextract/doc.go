// Package colorextract estimates the text and background colors of rectangular
// text regions in a scanned image.
//
// The classifier is background-first: the background color is estimated from a
// thin band of pixels just outside the region before any interior pixel is
// classified, then interior pixels are split into background and foreground
// clusters by CIE76 delta-E against that estimate. Each cluster is represented
// by its medoid, a real observed pixel color. Averaging is avoided for cluster
// representatives because the mean of a black-and-white dithered pattern is
// gray, a color that never appears in the region.
//
// All functions are pure: they read the image and return values, with no
// shared mutable state. Distinct regions of the same image may be classified
// concurrently by the caller.
//
// The delta-E thresholds (20 for the interior split, 15 for the page
// background trim) and the 3-pixel foreground floor are empirical constants;
// they are load-bearing for behavioral compatibility and pinned by tests.
package colorextract
