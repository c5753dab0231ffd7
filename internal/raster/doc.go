// Package raster defines the in-memory image model shared by the codec and
// the transform pipeline.
//
// A Record pairs one Metadata value with one flat pixel buffer. The two move
// together: any operation that changes the buffer's channel layout replaces
// the metadata's color model in the same step, so a caller can never observe
// a buffer paired with the wrong model. Records are passed by value and each
// pipeline stage produces a fresh buffer; stages never share one.
//
// Buffers are row-major, top-left origin, with no padding between rows:
// length is always width * height * channels for the declared color model
// (3 channels for RGB, 1 for grayscale). All values are 8 bits per channel;
// deeper images are rejected at the codec boundary before a Record exists.
package raster
