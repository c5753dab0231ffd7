// Package threshold builds intensity histograms from grayscale buffers and
// selects binarization thresholds, either fixed or computed with Otsu's
// method.
//
// The Otsu scoring preserves the exact arithmetic of the original tool,
// including its asymmetric right-hand weighted sum that never counts the
// top histogram bin. Changing that detail would shift the chosen threshold
// on real images, so it is kept bit-for-bit even though a textbook Otsu
// would include the bin. See the note on Otsu.
package threshold
