package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "frame")

	// Two rows, bottom row red, top row blue, as OpenGL returns them.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	name, err := c.Save(pixels, 2, 2)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(name), "frame_") {
		t.Errorf("expected frame_ prefix, got %s", name)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Errorf("expected blue top row, got r=%d b=%d", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r == 0 || b != 0 {
		t.Errorf("expected red bottom row, got r=%d b=%d", r, b)
	}
}

func TestSaveRejectsBadInput(t *testing.T) {
	c := New(t.TempDir(), "frame")

	tests := []struct {
		name          string
		pixels        []byte
		width, height int
	}{
		{"size mismatch", make([]byte, 10), 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Save(tt.pixels, tt.width, tt.height); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNamesAreUnique(t *testing.T) {
	c := New(t.TempDir(), "frame")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	first, err := c.Save(make([]byte, 4), 1, 1)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := c.Save(make([]byte, 4), 1, 1)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct names, got %s twice", first)
	}
	if !strings.Contains(first, "2024-05-01_12-00-00") {
		t.Errorf("expected timestamp in %s", first)
	}
}
