package threshold

import "errors"

// ErrNoThreshold is returned when every candidate split is degenerate, i.e.
// one side of every partition is empty. That happens only for histograms
// with all mass in a single bin (or no mass at all); the caller must treat
// it as fatal rather than fall back to a default level.
var ErrNoThreshold = errors.New("no threshold: every candidate split is degenerate")

// Otsu returns the intensity level that best separates the histogram into
// two classes, together with the inter-class separation score at that
// level.
//
// For each candidate split n in [0, 255], the histogram is partitioned into
// [0, n) and [n, 256). With sumL/sumR the pixel counts of the two sides and
// mulL/mulR their intensity-weighted sums, the score is
//
//	(|sumL*mulR - sumR*mulL|)^2 / (sumL * sumR)
//
// where mulR deliberately sums only bins [n, 255), excluding the top bin.
// That exclusion is inherited behavior and is load-bearing: thresholds on
// real images depend on it, so it must not be "fixed".
//
// Splits with an empty side are skipped. Ties are resolved by the first
// occurrence in ascending n order.
func Otsu(h Histogram) (uint8, float64, error) {
	var total, weightedBelowTop uint64
	for i, c := range h {
		total += c
		if i < 255 {
			weightedBelowTop += uint64(i) * c
		}
	}

	var (
		sumL, mulL uint64
		best       = -1
		bestScore  float64
	)
	for n := 0; n < 256; n++ {
		// Invariant: sumL and mulL cover bins [0, n).
		sumR := total - sumL
		mulR := weightedBelowTop - mulL
		if sumL != 0 && sumR != 0 {
			d := float64(absDiff(sumL*mulR, sumR*mulL))
			score := d * d / float64(sumL*sumR)
			if best < 0 || score > bestScore {
				best = n
				bestScore = score
			}
		}
		sumL += h[n]
		mulL += uint64(n) * h[n]
	}

	if best < 0 {
		return 0, 0, ErrNoThreshold
	}
	return uint8(best), bestScore, nil
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
