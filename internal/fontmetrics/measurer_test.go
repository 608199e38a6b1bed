package fontmetrics

import "testing"

func newDefaultMeasurer(t *testing.T) *FaceMeasurer {
	t.Helper()
	fonts, err := NewDefaultProvider()
	if err != nil {
		t.Fatalf("NewDefaultProvider failed: %v", err)
	}
	m, err := NewFaceMeasurer(fonts)
	if err != nil {
		t.Fatalf("NewFaceMeasurer failed: %v", err)
	}
	return m
}

func TestNewFaceMeasurer_NilProvider(t *testing.T) {
	if _, err := NewFaceMeasurer(nil); err == nil {
		t.Error("nil provider must be rejected")
	}
}

func TestFaceMeasurer_Width(t *testing.T) {
	m := newDefaultMeasurer(t)

	w := m.MeasureWidth("Hello, world", FamilySansSerif, WeightNormal, 24)
	if w <= 0 {
		t.Fatalf("width: got %.2f, want > 0", w)
	}

	// Width grows with size.
	w2 := m.MeasureWidth("Hello, world", FamilySansSerif, WeightNormal, 48)
	if w2 <= w {
		t.Errorf("width at 48px (%.2f) should exceed width at 24px (%.2f)", w2, w)
	}

	// Longer text is wider at equal size.
	short := m.MeasureWidth("Hi", FamilyMonospace, WeightNormal, 24)
	long := m.MeasureWidth("Hi there", FamilyMonospace, WeightNormal, 24)
	if long <= short {
		t.Errorf("longer text should measure wider: %.2f vs %.2f", long, short)
	}
}

func TestFaceMeasurer_WidthDegenerateInputs(t *testing.T) {
	m := newDefaultMeasurer(t)

	if w := m.MeasureWidth("", FamilySansSerif, WeightNormal, 24); w != 0 {
		t.Errorf("empty text: got %.2f, want 0", w)
	}
	if w := m.MeasureWidth("text", FamilySansSerif, WeightNormal, 0); w != 0 {
		t.Errorf("zero size: got %.2f, want 0", w)
	}
}

func TestFaceMeasurer_AscentDescent(t *testing.T) {
	m := newDefaultMeasurer(t)

	asc, desc := m.MeasureAscentDescent("Ag", FamilySansSerif, WeightNormal, 100)
	if asc <= 0 || desc <= 0 {
		t.Fatalf("extents: got ascent %.2f, descent %.2f, want both > 0", asc, desc)
	}
	// At 100px the total vertical extent should be in the vicinity of an em.
	if total := asc + desc; total < 50 || total > 200 {
		t.Errorf("ascent+descent %.2f implausible for a 100px face", total)
	}
}

func TestFaceMeasurer_AllFamilyWeightPairs(t *testing.T) {
	m := newDefaultMeasurer(t)

	for _, family := range []Family{FamilySansSerif, FamilySerif, FamilyMonospace} {
		for _, weight := range []Weight{WeightNormal, WeightBold} {
			if w := m.MeasureWidth("Sample", family, weight, 16); w <= 0 {
				t.Errorf("%s/%s: width %.2f, want > 0", family, weight, w)
			}
		}
	}
}

func TestProvider_UnknownSlotsFallBack(t *testing.T) {
	fonts, err := NewDefaultProvider()
	if err != nil {
		t.Fatalf("NewDefaultProvider failed: %v", err)
	}

	if fonts.font(Family("fantasy"), WeightNormal) == nil {
		t.Error("unknown family should fall back to sans-serif")
	}
	if fonts.font(FamilySansSerif, Weight("lighter")) == nil {
		t.Error("unknown weight should fall back to normal")
	}
}
