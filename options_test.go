package gg

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestWithPixmapSuppliesBackingSurface(t *testing.T) {
	pm, err := NewPixmap(4, 4)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	pm.Clear(Red)

	c, err := NewContext(4, 4, WithPixmap(pm))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if c.Pixmap() != pm {
		t.Error("NewContext with WithPixmap should reuse the supplied Pixmap, not allocate a new one")
	}
	if got := c.Pixmap().GetPixel(0, 0); got != Red {
		t.Errorf("pixel from pre-filled pixmap = %+v, want %+v", got, Red)
	}
}

func TestNewContextRejectsInvalidDimensions(t *testing.T) {
	if _, err := NewContext(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewContext(0,10) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewContext(10, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewContext(10,-1) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestNewContextRejectsOversizedSurface(t *testing.T) {
	_, err := NewContext(100000, 100000)
	if !errors.Is(err, ErrSurfaceTooLarge) {
		t.Errorf("NewContext(oversized) error = %v, want ErrSurfaceTooLarge", err)
	}
}

func TestSetLoggerNilRestoresSilentDefault(t *testing.T) {
	defer SetLogger(nil)

	ctx := context.Background()

	real := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetLogger(real)
	if Logger() != real {
		t.Fatal("Logger() did not return the logger passed to SetLogger")
	}

	SetLogger(nil)
	if Logger().Handler().Enabled(ctx, slog.LevelError) {
		t.Error("Logger() after SetLogger(nil) should be silent at every level")
	}
}
