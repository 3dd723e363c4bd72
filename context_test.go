package gg

import "testing"

func TestFillRectUsesDirectPath(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.SetFillColor(Red)
	c.FillRect(5, 5, 10, 10)

	if got := c.Pixmap().GetPixel(10, 10); got != Red {
		t.Errorf("pixel inside filled rect = %+v, want %+v", got, Red)
	}
	if got := c.Pixmap().GetPixel(1, 1); got != Transparent {
		t.Errorf("pixel outside filled rect = %+v, want transparent", got)
	}
	if c.SlowPathHits() != 0 {
		t.Errorf("SlowPathHits() = %d, want 0 (axis-aligned rect should take the direct path)", c.SlowPathHits())
	}
}

func TestFillRotatedRectUsesSlowPath(t *testing.T) {
	c, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.SetFillColor(Red)
	c.Rotate(0.3)
	c.Rectangle(2, 2, 5, 5)
	c.Fill()

	if c.SlowPathHits() != 1 {
		t.Errorf("SlowPathHits() = %d, want 1 (rotated transform can't use a direct rasterizer)", c.SlowPathHits())
	}
}

func TestFillCircleUsesDirectPath(t *testing.T) {
	c, err := NewContext(30, 30)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.SetFillColor(Blue)
	c.Arc(15, 15, 10, 0, 2*3.14159265, false)
	c.Fill()

	if got := c.Pixmap().GetPixel(15, 15); got != Blue {
		t.Errorf("pixel at circle center = %+v, want %+v", got, Blue)
	}
	if c.SlowPathHits() != 0 {
		t.Errorf("SlowPathHits() = %d, want 0 (axis-aligned circle should take the direct path)", c.SlowPathHits())
	}
}

func TestSaveRestoreRoundTripsState(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetFillColor(Red)
	c.Translate(5, 5)

	c.Save()
	c.SetFillColor(Blue)
	c.Translate(1, 1)
	c.Restore()

	if c.cur.fillPaint.(SolidPaint).Color != Red {
		t.Error("Restore did not bring back the saved fill color")
	}
	if c.Matrix() != Translate(5, 5) {
		t.Errorf("Restore did not bring back the saved transform, got %+v", c.Matrix())
	}
}

func TestRestoreWithEmptyStackIsNoop(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetFillColor(Green)
	c.Restore()
	if c.cur.fillPaint.(SolidPaint).Color != Green {
		t.Error("Restore with empty stack mutated state")
	}
}

func TestBeginPathClearsPath(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.MoveTo(1, 1)
	c.LineTo(2, 2)
	c.BeginPath()
	if len(c.Path().Elements()) != 0 {
		t.Error("BeginPath did not clear the path")
	}
}

func TestFillClearsPathButFillPreserveDoesNot(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.Rectangle(1, 1, 2, 2)
	c.FillPreserve()
	if len(c.Path().Elements()) == 0 {
		t.Error("FillPreserve should not clear the path")
	}
	c.Fill()
	if len(c.Path().Elements()) != 0 {
		t.Error("Fill should clear the path")
	}
}

func TestClipRestrictsSubsequentFills(t *testing.T) {
	c, _ := NewContext(20, 20)
	c.Rectangle(0, 0, 10, 20)
	c.Clip()

	c.SetFillColor(Red)
	c.FillRect(0, 0, 20, 20)

	if got := c.Pixmap().GetPixel(2, 2); got != Red {
		t.Errorf("pixel inside clip = %+v, want %+v", got, Red)
	}
	if got := c.Pixmap().GetPixel(15, 2); got != Transparent {
		t.Errorf("pixel outside clip = %+v, want transparent", got)
	}
}

func TestResetClipRemovesRestriction(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.Rectangle(0, 0, 2, 2)
	c.Clip()
	c.ResetClip()

	c.SetFillColor(Red)
	c.FillRect(0, 0, 10, 10)
	if got := c.Pixmap().GetPixel(8, 8); got != Red {
		t.Errorf("pixel after ResetClip = %+v, want %+v", got, Red)
	}
}

func TestClearRectIgnoresFillStyle(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetFillColor(Red)
	c.FillRect(0, 0, 10, 10)
	c.ClearRect(2, 2, 4, 4)

	if got := c.Pixmap().GetPixel(3, 3); got != Transparent {
		t.Errorf("pixel in cleared rect = %+v, want transparent", got)
	}
	if got := c.Pixmap().GetPixel(0, 0); got != Red {
		t.Errorf("pixel outside cleared rect = %+v, want %+v", got, Red)
	}
}

func TestIsPointInPathNonZeroVsEvenOdd(t *testing.T) {
	c, _ := NewContext(20, 20)
	c.Rectangle(0, 0, 10, 10)
	c.Rectangle(2, 2, 6, 6)

	c.SetFillRule(FillRuleNonZero)
	if !c.IsPointInPath(5, 5) {
		t.Error("non-zero: inner point should be inside (same winding doesn't cancel)")
	}

	c.SetFillRule(FillRuleEvenOdd)
	if c.IsPointInPath(5, 5) {
		t.Error("even-odd: inner point should be excluded (hole)")
	}
}

func TestGlobalAlphaDisablesDirectPath(t *testing.T) {
	c, _ := NewContext(10, 10)
	c.SetFillColor(Red)
	c.SetGlobalAlpha(0.5)
	c.FillRect(1, 1, 5, 5)
	if c.SlowPathHits() != 1 {
		t.Errorf("SlowPathHits() = %d, want 1 (partial alpha disables the direct path)", c.SlowPathHits())
	}
}

func TestCopyReplacesExistingPixel(t *testing.T) {
	c, _ := NewContext(5, 5)
	c.SetFillColor(RGBA8(255, 0, 0, 128))
	c.FillRect(0, 0, 5, 5)
	c.SetFillColor(RGBA8(0, 0, 255, 255))
	c.SetCompositeOperation(Copy)
	c.FillRect(0, 0, 5, 5)

	if got, want := c.Pixmap().GetPixel(2, 2), RGBA8(0, 0, 255, 255); got != want {
		t.Errorf("Copy operator result = %+v, want %+v", got, want)
	}
}
