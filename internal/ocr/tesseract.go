package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/scanstudio/textstyle-mcp/internal/imaging"
)

// ExtractLines runs OCR over an image and returns its text lines in reading
// order.
//
// The image is preprocessed (see Preprocess), handed to Tesseract at word
// granularity, and the resulting word boxes are grouped into lines. Empty
// words are dropped. Confidence values are Tesseract's, in [0,100].
//
// language is a Tesseract language code such as "eng"; the corresponding
// training data must be installed. An empty language keeps the engine
// default.
func ExtractLines(img image.Image, language string) ([]Line, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Preprocess(img)); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		if strings.TrimSpace(b.Word) == "" {
			continue
		}
		words = append(words, Word{
			Text:       b.Word,
			Bounds:     imaging.BoundsFromRect(b.Box),
			Confidence: float64(b.Confidence),
		})
	}

	return GroupLines(words), nil
}
