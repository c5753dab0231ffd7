package codec

import (
	"errors"
	"fmt"
	"image"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/disintegration/imaging"

	"github.com/pixpipe/pixpipe/internal/raster"
)

var (
	// ErrUnsupportedDepth reports channels deeper than 8 bits.
	ErrUnsupportedDepth = errors.New("unsupported bit depth")

	// ErrAlphaNotSupported reports an image carrying a real alpha channel.
	ErrAlphaNotSupported = errors.New("alpha channel not supported")

	// ErrUnsupportedLayout reports a pixel layout the pipeline cannot
	// represent, such as paletted or chroma-subsampled images.
	ErrUnsupportedLayout = errors.New("unsupported pixel layout")
)

// Decode reads the container at path and returns its pixels as a record.
//
// The decoder is selected by the file's magic bytes (PNG, BMP, TIFF, plus
// whatever the standard library registers). The returned metadata reflects
// what was actually decoded; Decode never coerces an unsupported image into
// a supported shape.
func Decode(path string) (raster.Record, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return raster.Record{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	rec, err := fromImage(img)
	if err != nil {
		return raster.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Encode validates the record and writes it to path, with the container
// format chosen by the file extension (.png, .bmp, .tif/.tiff).
func Encode(rec raster.Record, path string) error {
	if rec.Meta.Depth != raster.DepthEight {
		return fmt.Errorf("%w: cannot encode %s channels", ErrUnsupportedDepth, rec.Meta.Depth)
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := imaging.Save(toImage(rec), path); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// fromImage extracts a tightly packed buffer and accurate metadata from the
// concrete decoded type. PNG decodes 8-bit truecolor to *image.RGBA and
// 8-bit grayscale to *image.Gray; BMP and TIFF land on the same types or on
// *image.NRGBA.
func fromImage(img image.Image) (raster.Record, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		meta := raster.Metadata{
			Width:  uint32(w),
			Height: uint32(h),
			Color:  raster.Grayscale,
			Depth:  raster.DepthEight,
		}
		pix := make([]byte, 0, meta.BufferLen())
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+w]
			pix = append(pix, row...)
		}
		return raster.Record{Meta: meta, Pix: pix}, nil

	case *image.RGBA:
		if !src.Opaque() {
			return raster.Record{}, ErrAlphaNotSupported
		}
		return packRGB(w, h, src.Pix, src.Stride), nil

	case *image.NRGBA:
		if !src.Opaque() {
			return raster.Record{}, ErrAlphaNotSupported
		}
		return packRGB(w, h, src.Pix, src.Stride), nil

	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return raster.Record{}, fmt.Errorf("%w: image has %s channels, need %s",
			ErrUnsupportedDepth, raster.DepthSixteen, raster.DepthEight)

	default:
		return raster.Record{}, fmt.Errorf("%w: %T", ErrUnsupportedLayout, img)
	}
}

// packRGB drops the alpha byte from 4-byte opaque pixels, producing the
// pipeline's 3-byte RGB layout.
func packRGB(w, h int, src []byte, stride int) raster.Record {
	meta := raster.Metadata{
		Width:  uint32(w),
		Height: uint32(h),
		Color:  raster.RGB,
		Depth:  raster.DepthEight,
	}
	pix := make([]byte, 0, meta.BufferLen())
	for y := 0; y < h; y++ {
		row := src[y*stride : y*stride+w*4]
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return raster.Record{Meta: meta, Pix: pix}
}

// toImage rebuilds a standard image from the record for encoding. RGB
// records become fully opaque RGBA, which the PNG encoder writes back out
// as truecolor without alpha.
func toImage(rec raster.Record) image.Image {
	w := int(rec.Meta.Width)
	h := int(rec.Meta.Height)

	switch rec.Meta.Color {
	case raster.Grayscale:
		img := image.NewGray(image.Rect(0, 0, w, h))
		copy(img.Pix, rec.Pix)
		return img
	default:
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < len(rec.Pix)/3; i++ {
			img.Pix[i*4] = rec.Pix[i*3]
			img.Pix[i*4+1] = rec.Pix[i*3+1]
			img.Pix[i*4+2] = rec.Pix[i*3+2]
			img.Pix[i*4+3] = 0xFF
		}
		return img
	}
}
