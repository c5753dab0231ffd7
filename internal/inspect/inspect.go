package inspect

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/pixpipe/pixpipe/internal/raster"
)

// Info contains metadata about an image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the container format guessed from the file extension:
	// "png", "bmp", "tiff", or "unknown".
	Format string `json:"format"`

	// ColorModel describes the decoded pixel layout: "rgb", "grayscale",
	// "paletted", or "ycbcr".
	ColorModel string `json:"color_model"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// File decodes the image at path and returns its metadata together with
// the decoded image, so callers can run further analysis without a second
// read.
func File(path string) (*Info, image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	}

	model := "rgb"
	depth := raster.DepthEight
	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		depth = raster.DepthSixteen
	case *image.Gray:
		model = "grayscale"
	case *image.Gray16:
		model = "grayscale"
		depth = raster.DepthSixteen
	case *image.Paletted:
		model = "paletted"
	case *image.YCbCr:
		model = "ycbcr"
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorModel:    model,
		ColorDepth:    depth.String(),
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, img, nil
}
