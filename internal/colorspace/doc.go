// Package colorspace implements the stateless per-pixel conversions used by
// the transform pipeline: RGB to grayscale, RGB to BGR, and the RGB/HSV
// round trip behind hue rotation.
//
// All functions operate on flat byte buffers (see package raster) and
// allocate a fresh output buffer; inputs are never mutated. Conversions are
// deterministic and keep the exact arithmetic of the original tool,
// including truncating float-to-byte casts, so outputs are reproducible
// byte for byte.
//
// # Error Handling
//
// Length preconditions (an RGB buffer must hold whole 3-byte triples) are
// reported as errors. Out-of-range intermediate values in the HSV round
// trip cannot occur for inputs produced by this package; if one is seen it
// is an internal defect and is reported as an error rather than clamped,
// so corrupted pixel data is never written silently.
package colorspace
