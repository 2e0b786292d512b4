package text

import "testing"

func testFace(t *testing.T, size float64) *Face {
	t.Helper()
	return NewFace(Default(), size)
}

func TestFaceMetrics(t *testing.T) {
	f := testFace(t, 32)
	m := f.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %v, want > 0 (absolute)", m.Descent)
	}
	if m.CapHeight <= 0 || m.CapHeight > m.Ascent {
		t.Errorf("CapHeight = %v, want in (0, %v]", m.CapHeight, m.Ascent)
	}
	if m.Height() < m.Ascent+m.Descent {
		t.Errorf("Height() = %v, want >= ascent+descent", m.Height())
	}
}

func TestFaceMetricsScaleWithSize(t *testing.T) {
	small := testFace(t, 16).Metrics()
	large := testFace(t, 32).Metrics()
	if large.Ascent <= small.Ascent {
		t.Errorf("ascent did not grow with size: %v <= %v", large.Ascent, small.Ascent)
	}
}

func TestFaceAdvance(t *testing.T) {
	f := testFace(t, 32)

	if got := f.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}

	m := f.Advance("M")
	if m <= 0 {
		t.Fatalf("Advance(M) = %v, want > 0", m)
	}

	// Advance sums nominal per-rune advances, so it is exactly additive.
	if got, want := f.Advance("MM"), 2*m; got != want {
		t.Errorf("Advance(MM) = %v, want %v", got, want)
	}
	if f.Advance("Mi") >= f.Advance("MM") {
		t.Errorf("narrow glyph not narrower: Mi=%v MM=%v", f.Advance("Mi"), f.Advance("MM"))
	}
}

func TestFaceAdvanceMonotonic(t *testing.T) {
	f := testFace(t, 24)
	prev := 0.0
	s := ""
	for _, r := range "console overlay" {
		s += string(r)
		cur := f.Advance(s)
		if cur < prev {
			t.Fatalf("Advance(%q) = %v < previous %v", s, cur, prev)
		}
		prev = cur
	}
}
