package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/pixpipe/pixpipe/internal/colorspace"
	"github.com/pixpipe/pixpipe/internal/raster"
	"github.com/pixpipe/pixpipe/internal/threshold"
)

var (
	// ErrUnknownTransform reports a selection index outside the catalog.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrColorModel reports a transform applied to the wrong color model.
	ErrColorModel = errors.New("wrong color model")

	// ErrBitDepth reports a record whose channels are not 8-bit.
	ErrBitDepth = errors.New("unsupported bit depth")
)

// fixedLevel is the constant threshold used by FixedBinarize.
const fixedLevel = 128

// Transform identifies one entry in the fixed transform catalog. The zero
// value is Identity; ordinals match the external selection interface.
type Transform int

const (
	Identity Transform = iota
	ChannelSwap
	Grayscale
	FixedBinarize
	OtsuBinarize
	HueInvert

	numTransforms // keep last
)

// FromIndex maps an external ordinal selection onto the catalog.
func FromIndex(i int) (Transform, error) {
	if i < 0 || i >= int(numTransforms) {
		return 0, fmt.Errorf("%w: index %d (catalog has %d entries)",
			ErrUnknownTransform, i, int(numTransforms))
	}
	return Transform(i), nil
}

// Catalog returns all transforms in ordinal order.
func Catalog() []Transform {
	out := make([]Transform, int(numTransforms))
	for i := range out {
		out[i] = Transform(i)
	}
	return out
}

// Index returns the transform's ordinal in the catalog.
func (t Transform) Index() int { return int(t) }

// String returns the transform's catalog name.
func (t Transform) String() string {
	switch t {
	case Identity:
		return "identity"
	case ChannelSwap:
		return "channel-swap"
	case Grayscale:
		return "grayscale"
	case FixedBinarize:
		return "binarize-fixed"
	case OtsuBinarize:
		return "binarize-otsu"
	case HueInvert:
		return "hue-invert"
	default:
		return fmt.Sprintf("transform(%d)", int(t))
	}
}

// Apply runs the transform on a record and returns the resulting record.
//
// The input is consumed; on error no output record is produced. Apply
// validates the shared preconditions (8-bit channels, buffer/metadata
// consistency) before dispatching, and each case checks its own color-model
// requirement.
func (t Transform) Apply(rec raster.Record) (raster.Record, error) {
	if rec.Meta.Depth != raster.DepthEight {
		return raster.Record{}, fmt.Errorf("%w: %s input is %s, need %s",
			ErrBitDepth, t, rec.Meta.Depth, raster.DepthEight)
	}
	if err := rec.Validate(); err != nil {
		return raster.Record{}, fmt.Errorf("%s: %w", t, err)
	}

	switch t {
	case Identity:
		return rec, nil

	case ChannelSwap:
		if err := requireModel(t, rec, raster.RGB); err != nil {
			return raster.Record{}, err
		}
		pix, err := colorspace.RGBToBGR(rec.Pix)
		if err != nil {
			return raster.Record{}, fmt.Errorf("%s: %w", t, err)
		}
		return raster.Record{Meta: rec.Meta, Pix: pix}, nil

	case Grayscale:
		return toGrayscale(t, rec)

	case FixedBinarize:
		gray, err := toGrayscale(t, rec)
		if err != nil {
			return raster.Record{}, err
		}
		return raster.Record{Meta: gray.Meta, Pix: threshold.Binarize(gray.Pix, fixedLevel)}, nil

	case OtsuBinarize:
		gray, err := toGrayscale(t, rec)
		if err != nil {
			return raster.Record{}, err
		}
		histo := threshold.Build(gray.Pix)
		level, score, err := threshold.Otsu(histo)
		if err != nil {
			return raster.Record{}, fmt.Errorf("%s: %w", t, err)
		}
		// Advisory only; the chosen level is not part of the data contract.
		slog.Info("adaptive threshold selected", "level", level, "score", score)
		return raster.Record{Meta: gray.Meta, Pix: threshold.Binarize(gray.Pix, level)}, nil

	case HueInvert:
		if err := requireModel(t, rec, raster.RGB); err != nil {
			return raster.Record{}, err
		}
		samples, err := colorspace.RGBToHSV(rec.Pix)
		if err != nil {
			return raster.Record{}, fmt.Errorf("%s: %w", t, err)
		}
		for i := range samples {
			samples[i].H = math.Mod(samples[i].H+180, 360)
		}
		pix, err := colorspace.HSVToRGB(samples)
		if err != nil {
			return raster.Record{}, fmt.Errorf("%s: %w", t, err)
		}
		return raster.Record{Meta: rec.Meta, Pix: pix}, nil

	default:
		return raster.Record{}, fmt.Errorf("%w: index %d", ErrUnknownTransform, int(t))
	}
}

// toGrayscale is the shared RGB-to-grayscale step; it swaps the buffer and
// the metadata's color model together so the pairing is never inconsistent.
func toGrayscale(t Transform, rec raster.Record) (raster.Record, error) {
	if err := requireModel(t, rec, raster.RGB); err != nil {
		return raster.Record{}, err
	}
	pix, err := colorspace.RGBToGrayscale(rec.Pix)
	if err != nil {
		return raster.Record{}, fmt.Errorf("%s: %w", t, err)
	}
	meta := rec.Meta
	meta.Color = raster.Grayscale
	return raster.Record{Meta: meta, Pix: pix}, nil
}

func requireModel(t Transform, rec raster.Record, want raster.ColorModel) error {
	if rec.Meta.Color != want {
		return fmt.Errorf("%w: %s requires %s input, got %s",
			ErrColorModel, t, want, rec.Meta.Color)
	}
	return nil
}
