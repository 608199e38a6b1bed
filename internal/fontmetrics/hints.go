package fontmetrics

// Family is a generic font family understood by the downstream editor.
type Family string

const (
	FamilySansSerif Family = "sans-serif"
	FamilySerif     Family = "serif"
	FamilyMonospace Family = "monospace"
)

// Weight is a rendering font weight.
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
)

// Hint carries the per-word style flags reported by the OCR engine.
// A word flagged monospace counts as monospace regardless of its serif flag.
type Hint struct {
	Bold      bool `json:"is_bold"`
	Serif     bool `json:"is_serif"`
	Monospace bool `json:"is_monospace"`
}

// InferFamily picks a font family for a text line by majority vote over its
// word hints. Monospace wins ties against both other families because a
// monospace flag is the strongest signal the OCR engine produces; otherwise
// serif must strictly beat sans-serif. No hints at all means sans-serif.
func InferFamily(hints []Hint) Family {
	if len(hints) == 0 {
		return FamilySansSerif
	}

	var mono, serif, sans int
	for _, h := range hints {
		switch {
		case h.Monospace:
			mono++
		case h.Serif:
			serif++
		default:
			sans++
		}
	}

	switch {
	case mono >= serif && mono >= sans:
		return FamilyMonospace
	case serif > sans:
		return FamilySerif
	default:
		return FamilySansSerif
	}
}

// InferWeight returns bold only when a strict majority of words is flagged
// bold. Ties and empty hint sets resolve to normal.
func InferWeight(hints []Hint) Weight {
	bold := 0
	for _, h := range hints {
		if h.Bold {
			bold++
		}
	}
	if bold*2 > len(hints) {
		return WeightBold
	}
	return WeightNormal
}
