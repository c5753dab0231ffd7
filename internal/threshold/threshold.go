package threshold

// Histogram counts occurrences of each 8-bit intensity level.
type Histogram [256]uint64

// Build counts the intensity of every byte in a grayscale buffer.
func Build(gray []byte) Histogram {
	var h Histogram
	for _, v := range gray {
		h[v]++
	}
	return h
}

// Total returns the number of samples counted into the histogram.
func (h Histogram) Total() uint64 {
	var n uint64
	for _, c := range h {
		n += c
	}
	return n
}

// Binarize maps every intensity below level to 0 and everything else to
// 255, returning a new buffer. The rule is shared by the fixed and
// adaptive binarize transforms, and is idempotent: re-binarizing at the
// same or a lower level changes nothing.
func Binarize(gray []byte, level uint8) []byte {
	out := make([]byte, len(gray))
	for i, v := range gray {
		if v < level {
			out[i] = 0
		} else {
			out[i] = 255
		}
	}
	return out
}
