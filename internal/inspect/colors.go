package inspect

import (
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorFrequency is one quantized color and how often it occurs.
type ColorFrequency struct {
	// Hex is the quantized color as "#rrggbb".
	Hex string `json:"hex"`

	// Percentage of pixels that quantize to this color (0-100).
	Percentage float64 `json:"percentage"`

	// H, S, L locate the color in HSL space: hue in degrees (0-360),
	// saturation and lightness in [0, 1].
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// DominantColors returns the count most frequent colors in the image,
// most frequent first.
//
// Colors are grouped by quantizing each 8-bit component down to a multiple
// of 16, so near-identical shades collapse into one bucket. Fewer than
// count colors may be returned if the image has fewer distinct buckets.
func DominantColors(img image.Image, count int) []ColorFrequency {
	bounds := img.Bounds()

	buckets := make(map[[3]uint8]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := [3]uint8{
				uint8(r>>8) / 16 * 16,
				uint8(g>>8) / 16 * 16,
				uint8(b>>8) / 16 * 16,
			}
			buckets[key]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	colors := make([]ColorFrequency, 0, len(buckets))
	for key, n := range buckets {
		c := colorful.Color{
			R: float64(key[0]) / 255,
			G: float64(key[1]) / 255,
			B: float64(key[2]) / 255,
		}
		h, s, l := c.Hsl()
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			H:          h,
			S:          s,
			L:          l,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return colors
}
