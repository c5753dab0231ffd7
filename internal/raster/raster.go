package raster

import "fmt"

// ColorModel identifies the channel layout of a pixel buffer.
type ColorModel int

const (
	// RGB is three interleaved channels per pixel: red, green, blue.
	RGB ColorModel = iota

	// Grayscale is a single intensity channel per pixel.
	Grayscale
)

// Channels returns the number of bytes each pixel occupies under this model.
func (m ColorModel) Channels() int {
	switch m {
	case RGB:
		return 3
	case Grayscale:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable name for logging and diagnostics.
func (m ColorModel) String() string {
	switch m {
	case RGB:
		return "rgb"
	case Grayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// BitDepth is the number of bits per channel reported by the codec.
//
// Every transform requires DepthEight; other depths exist only so the codec
// can report what it actually found before rejecting the image.
type BitDepth int

const (
	DepthEight   BitDepth = 8
	DepthSixteen BitDepth = 16
)

// String returns the depth in the "8-bit" form used in diagnostics.
func (d BitDepth) String() string {
	return fmt.Sprintf("%d-bit", int(d))
}

// Metadata describes the shape of a pixel buffer. It is immutable by
// convention: transforms build a new Metadata rather than mutating one.
type Metadata struct {
	Width  uint32
	Height uint32
	Color  ColorModel
	Depth  BitDepth
}

// BufferLen returns the exact byte length a buffer with this metadata
// must have.
func (m Metadata) BufferLen() int {
	return int(m.Width) * int(m.Height) * m.Color.Channels()
}

// Record is one decoded image: metadata plus its pixel buffer.
//
// Ownership is linear. A transform consumes its input Record and returns a
// new one; the input must not be used afterwards.
type Record struct {
	Meta Metadata
	Pix  []byte
}

// Validate checks that the buffer length matches the declared dimensions
// and color model.
func (r Record) Validate() error {
	if want := r.Meta.BufferLen(); len(r.Pix) != want {
		return fmt.Errorf("pixel buffer is %d bytes, %dx%d %s requires %d",
			len(r.Pix), r.Meta.Width, r.Meta.Height, r.Meta.Color, want)
	}
	return nil
}
