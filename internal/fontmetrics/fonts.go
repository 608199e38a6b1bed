package fontmetrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Provider resolves a (family, weight) pair to a parsed TrueType font.
type Provider struct {
	fonts map[Family]map[Weight]*truetype.Font
}

// NewDefaultProvider builds a provider backed by the Go fonts embedded in
// golang.org/x/image, so measurement works with no font files installed.
// The Go family ships no serif face; the serif slots reuse the regular face,
// which is close enough for size estimation (widths differ by a few percent
// between serif and sans text at equal size).
func NewDefaultProvider() (*Provider, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded bold font: %w", err)
	}
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded mono font: %w", err)
	}
	monoBold, err := truetype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded mono bold font: %w", err)
	}

	return &Provider{
		fonts: map[Family]map[Weight]*truetype.Font{
			FamilySansSerif: {WeightNormal: regular, WeightBold: bold},
			FamilySerif:     {WeightNormal: regular, WeightBold: bold},
			FamilyMonospace: {WeightNormal: mono, WeightBold: monoBold},
		},
	}, nil
}

// fileNames maps provider slots to the TTF naming convention LoadDirectory
// expects: <Face>-<Weight>.ttf.
var fileNames = map[Family]string{
	FamilySansSerif: "SansSerif",
	FamilySerif:     "Serif",
	FamilyMonospace: "Monospace",
}

var fileWeights = map[Weight]string{
	WeightNormal: "Regular",
	WeightBold:   "Bold",
}

// LoadDirectory overrides individual faces from TTF files found in dir,
// named "<SansSerif|Serif|Monospace>-<Regular|Bold>.ttf". Missing files
// leave the corresponding embedded face in place; an unparsable file is a
// configuration error.
func (p *Provider) LoadDirectory(dir string) error {
	for family, faceName := range fileNames {
		for weight, weightName := range fileWeights {
			path := filepath.Join(dir, faceName+"-"+weightName+".ttf")
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return fmt.Errorf("failed to read font file: %w", err)
			}
			f, err := truetype.Parse(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			p.fonts[family][weight] = f
		}
	}
	return nil
}

// font returns the best available face for the pair, falling back to
// sans-serif regular. A constructed Provider always has that slot.
func (p *Provider) font(family Family, weight Weight) *truetype.Font {
	byWeight, ok := p.fonts[family]
	if !ok {
		byWeight = p.fonts[FamilySansSerif]
	}
	if f, ok := byWeight[weight]; ok {
		return f
	}
	return byWeight[WeightNormal]
}
