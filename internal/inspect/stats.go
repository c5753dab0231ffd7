package inspect

import (
	"image"

	"github.com/anthonynsimon/bild/histogram"
)

// ChannelStats summarizes the intensity histogram of one color channel.
type ChannelStats struct {
	Channel string `json:"channel"`

	// Min and Max are the lowest and highest intensity levels that occur
	// at least once. Both are -1 for an empty image.
	Min int `json:"min"`
	Max int `json:"max"`

	// Peak is the most populated intensity level and PeakCount its pixel
	// count. Ties go to the lowest level.
	Peak      int `json:"peak"`
	PeakCount int `json:"peak_count"`
}

// Channels computes per-channel histogram statistics for the red, green,
// and blue channels. Grayscale images report the same numbers on all
// three, which is itself a useful signal.
func Channels(img image.Image) []ChannelStats {
	h := histogram.NewRGBAHistogram(img)
	return []ChannelStats{
		channelStats("red", h.R.Bins),
		channelStats("green", h.G.Bins),
		channelStats("blue", h.B.Bins),
	}
}

func channelStats(name string, bins []int) ChannelStats {
	stats := ChannelStats{Channel: name, Min: -1, Max: -1, Peak: -1}
	for level, count := range bins {
		if count == 0 {
			continue
		}
		if stats.Min < 0 {
			stats.Min = level
		}
		stats.Max = level
		if count > stats.PeakCount {
			stats.Peak = level
			stats.PeakCount = count
		}
	}
	return stats
}
