// Package codec is the container boundary: it decodes an image file into a
// raster.Record and encodes a record back into a file.
//
// The container format is chosen by file extension. PNG is the reference
// format; BMP and TIFF are supported through the golang.org/x/image codecs.
// Decoding reports metadata truthfully from the concrete decoded type and
// rejects anything the pipeline cannot represent: 16-bit channels, images
// with a real alpha channel, and paletted or subsampled layouts. Those are
// distinct errors so the caller can tell a depth violation from an
// unsupported layout.
//
// Encoding is all-or-nothing. The output file is created only once the
// record has been validated; a failed transform never leaves a partial
// container behind.
package codec
