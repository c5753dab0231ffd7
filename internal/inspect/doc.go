// Package inspect reports advisory facts about an image file: container
// format, dimensions, color model and depth, per-channel histogram
// statistics, and dominant colors.
//
// Nothing here feeds the transform pipeline. Inspection accepts images the
// pipeline would reject (16-bit, alpha, paletted) because its whole point
// is telling the user what they have before a transform refuses it.
package inspect
