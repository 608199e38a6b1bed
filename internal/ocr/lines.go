package ocr

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/scanstudio/textstyle-mcp/internal/fontmetrics"
	"github.com/scanstudio/textstyle-mcp/internal/imaging"
)

// Word is a single recognized word with its box, confidence in [0,100], and
// optional style hints.
type Word struct {
	Text       string           `json:"text"`
	Bounds     imaging.Bounds   `json:"bbox"`
	Confidence float64          `json:"confidence"`
	Hint       fontmetrics.Hint `json:"hint"`
}

// Line is a baseline-grouped run of words: the unit the style extractor
// classifies and fits.
type Line struct {
	Text       string         `json:"text"`
	Bounds     imaging.Bounds `json:"bbox"`
	Confidence float64        `json:"confidence"`
	Words      []Word         `json:"words"`
}

// maxWordGapEm bounds the horizontal gap between neighbouring words on one
// line, in units of the wider word's mean character width.
const maxWordGapEm = 1.5

// GroupLines reassembles word boxes into text lines.
//
// Words are taken in engine reading order. A word joins the current line when
// its vertical midpoint falls inside the previous word's vertical span and
// the horizontal gap stays under maxWordGapEm character widths; anything else
// starts a new line. Lines are returned sorted top to bottom.
func GroupLines(words []Word) []Line {
	var groups [][]Word
	for _, w := range words {
		if n := len(groups); n > 0 {
			last := groups[n-1]
			if sameLine(last[len(last)-1], w) {
				groups[n-1] = append(last, w)
				continue
			}
		}
		groups = append(groups, []Word{w})
	}

	lines := make([]Line, len(groups))
	for i, g := range groups {
		lines[i] = assembleLine(g)
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Bounds.Y0 < lines[j].Bounds.Y0
	})
	return lines
}

func sameLine(previous, current Word) bool {
	if previous.Bounds.X0 > current.Bounds.X0 {
		return false
	}
	mid := (current.Bounds.Y0 + current.Bounds.Y1) / 2
	if mid <= previous.Bounds.Y0 || mid >= previous.Bounds.Y1 {
		return false
	}
	gap := math.Max(charWidth(previous), charWidth(current)) * maxWordGapEm
	return current.Bounds.X0-previous.Bounds.X1 <= gap
}

// charWidth estimates the mean character width of a word from its box,
// counting only letters and digits so punctuation does not skew the average.
func charWidth(w Word) float64 {
	count := 0
	for _, r := range w.Text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return w.Bounds.Width() / float64(count)
}

func assembleLine(words []Word) Line {
	bounds := words[0].Bounds
	texts := make([]string, len(words))
	confidence := 0.0
	for i, w := range words {
		texts[i] = w.Text
		confidence += w.Confidence
		bounds.X0 = math.Min(bounds.X0, w.Bounds.X0)
		bounds.Y0 = math.Min(bounds.Y0, w.Bounds.Y0)
		bounds.X1 = math.Max(bounds.X1, w.Bounds.X1)
		bounds.Y1 = math.Max(bounds.Y1, w.Bounds.Y1)
	}
	return Line{
		Text:       strings.Join(texts, " "),
		Bounds:     bounds,
		Confidence: confidence / float64(len(words)),
		Words:      words,
	}
}

// Hints extracts the per-word style hints of a line for majority voting.
func (l Line) Hints() []fontmetrics.Hint {
	hints := make([]fontmetrics.Hint, len(l.Words))
	for i, w := range l.Words {
		hints[i] = w.Hint
	}
	return hints
}
