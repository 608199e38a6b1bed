// Package ocr adapts the Tesseract engine (via gosseract) into the per-line
// text records the style extractor consumes: text, bounding box, confidence,
// and per-word style hints.
//
// Tesseract reports word-level boxes; GroupLines reassembles them into lines
// by baseline geometry before any color or font analysis runs. Style hints
// (bold/serif/monospace) default to all-false because the word iterator API
// does not expose font attributes; hosts with a richer OCR engine populate
// them when building Word values directly.
//
// Images are preprocessed (grayscale plus a mild contrast boost) before they
// reach Tesseract; scans with low-contrast ink benefit measurably and clean
// scans are unaffected.
package ocr
