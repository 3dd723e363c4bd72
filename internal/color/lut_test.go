package color

import "testing"

func TestSRGBToLinearFastMatchesSlowReference(t *testing.T) {
	for s := 0; s <= 255; s++ {
		fast := SRGBToLinearFast(uint8(s))
		slow := SRGBToLinearSlow(uint8(s))
		if diff := fast - slow; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("SRGBToLinearFast(%d) = %v, SRGBToLinearSlow(%d) = %v, diverge by more than tolerance", s, fast, s, slow)
		}
	}
}

func TestLinearToSRGBFastMatchesSlowReference(t *testing.T) {
	for i := 0; i <= 255; i++ {
		l := float32(i) / 255
		fast := LinearToSRGBFast(l)
		slow := LinearToSRGBSlow(l)
		diff := int(fast) - int(slow)
		if diff > 1 || diff < -1 {
			t.Errorf("LinearToSRGBFast(%v) = %d, LinearToSRGBSlow(%v) = %d, diverge by more than 1", l, fast, l, slow)
		}
	}
}

func TestSRGBLinearRoundTrip(t *testing.T) {
	for s := 0; s <= 255; s++ {
		linear := SRGBToLinearFast(uint8(s))
		back := LinearToSRGBFast(linear)
		diff := int(back) - s
		if diff > 1 || diff < -1 {
			t.Errorf("round trip sRGB %d -> linear %v -> sRGB %d, want within 1", s, linear, back)
		}
	}
}

func TestSRGBToLinearFastIsMonotonic(t *testing.T) {
	prev := SRGBToLinearFast(0)
	for s := 1; s <= 255; s++ {
		v := SRGBToLinearFast(uint8(s))
		if v < prev {
			t.Errorf("SRGBToLinearFast not monotonic at %d: %v < %v", s, v, prev)
		}
		prev = v
	}
}

func TestSRGBToLinearFastEndpoints(t *testing.T) {
	if v := SRGBToLinearFast(0); v != 0 {
		t.Errorf("SRGBToLinearFast(0) = %v, want 0", v)
	}
	if v := SRGBToLinearFast(255); v < 0.999 || v > 1.0 {
		t.Errorf("SRGBToLinearFast(255) = %v, want ~1.0", v)
	}
}

func TestLinearToSRGBFastClampsOutOfRangeInput(t *testing.T) {
	if v := LinearToSRGBFast(-1); v != 0 {
		t.Errorf("LinearToSRGBFast(-1) = %d, want 0", v)
	}
	if v := LinearToSRGBFast(2); v != 255 {
		t.Errorf("LinearToSRGBFast(2) = %d, want 255", v)
	}
}
