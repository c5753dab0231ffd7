package inspect

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid-color PNG and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createPatternImage builds a half red, half blue image in memory.
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func TestFile(t *testing.T) {
	path := createTestImage(t, 10, 20, color.RGBA{255, 128, 64, 255})

	info, img, err := File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}

	if info.Width != 10 || info.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 10x20", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorModel != "rgb" {
		t.Errorf("ColorModel: got %s, want rgb", info.ColorModel)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
	if img == nil {
		t.Fatal("expected decoded image alongside info")
	}
}

func TestFile_MissingFile(t *testing.T) {
	if _, _, err := File(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{200, 100, 0, 255})
	}

	stats := Channels(img)
	if len(stats) != 3 {
		t.Fatalf("got %d channels, want 3", len(stats))
	}

	// Solid color: every channel has a single occupied level.
	wants := []struct {
		channel string
		level   int
	}{
		{"red", 200},
		{"green", 100},
		{"blue", 0},
	}
	for i, want := range wants {
		s := stats[i]
		if s.Channel != want.channel {
			t.Errorf("channel %d: got %s, want %s", i, s.Channel, want.channel)
		}
		if s.Min != want.level || s.Max != want.level || s.Peak != want.level {
			t.Errorf("%s: got min=%d max=%d peak=%d, want all %d",
				want.channel, s.Min, s.Max, s.Peak, want.level)
		}
		if s.PeakCount != 4 {
			t.Errorf("%s: PeakCount got %d, want 4", want.channel, s.PeakCount)
		}
	}
}

func TestDominantColors(t *testing.T) {
	img := createPatternImage(10, 10)

	colors := DominantColors(img, 5)
	if len(colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(colors))
	}

	for _, c := range colors {
		if c.Percentage < 49 || c.Percentage > 51 {
			t.Errorf("%s: percentage %.1f, want ~50", c.Hex, c.Percentage)
		}
	}

	// 255 quantizes down to 240.
	hexes := map[string]bool{colors[0].Hex: true, colors[1].Hex: true}
	if !hexes["#f00000"] || !hexes["#0000f0"] {
		t.Errorf("unexpected dominant colors: %v", hexes)
	}
}

func TestDominantColors_CountLimit(t *testing.T) {
	img := createPatternImage(10, 10)

	colors := DominantColors(img, 1)
	if len(colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(colors))
	}
}
