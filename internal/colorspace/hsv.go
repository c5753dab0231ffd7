package colorspace

import (
	"fmt"
	"math"
)

// HSV is a transient per-pixel sample in the cylindrical HSV model.
//
// H is degrees in [0, 360); S and V are normalized to [0, 1]. Note that S
// here is chroma (max - min of the normalized channels), not the usual
// saturation ratio; the reconstruction in RGB undoes exactly this encoding,
// so the pair round-trips, but the samples are not interchangeable with
// other HSV libraries' values.
type HSV struct {
	H float64
	S float64
	V float64
}

// RGBToHSV converts a flat RGB buffer into one HSV sample per pixel.
//
// Hue is derived from which channel is the minimum, using the standard
// six-region piecewise formula; a gray pixel (zero chroma) gets hue 0.
// The result always satisfies H in [0, 360); a value outside that range
// indicates an internal defect and is returned as an error.
func RGBToHSV(pix []byte) ([]HSV, error) {
	if len(pix)%3 != 0 {
		return nil, fmt.Errorf("rgb buffer length %d is not a multiple of 3", len(pix))
	}

	out := make([]HSV, 0, len(pix)/3)
	for i := 0; i < len(pix); i += 3 {
		s, err := hsvFromRGB(pix[i], pix[i+1], pix[i+2])
		if err != nil {
			return nil, fmt.Errorf("pixel %d: %w", i/3, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func hsvFromRGB(r8, g8, b8 byte) (HSV, error) {
	r := float64(r8) / 255
	g := float64(g8) / 255
	b := float64(b8) / 255

	v := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	s := v - min

	// One of the three channels is the minimum, so the switch is total.
	var h float64
	switch {
	case s == 0:
		h = 0
	case b == min:
		h = 60*((g-r)/s) + 60
	case r == min:
		h = 60*((b-g)/s) + 180
	case g == min:
		h = 60*((r-b)/s) + 300
	}

	if h < 0 || h >= 360 {
		return HSV{}, fmt.Errorf("hue %g out of [0,360) for rgb(%d,%d,%d)", h, r8, g8, b8)
	}
	return HSV{H: h, S: s, V: v}, nil
}

// HSVToRGB converts HSV samples back into a flat RGB buffer, three bytes
// per sample.
//
// Each sample selects a permutation of {S, chroma-derived x, 0} by the
// sixth of the hue circle it falls in, then shifts all three channels up by
// V-S and scales to bytes with truncation. Every intermediate channel value
// must land in [0, 1]; a violation means the sample was not produced by
// RGBToHSV (or a hue rotation of one) and is reported as an error.
func HSVToRGB(samples []HSV) ([]byte, error) {
	out := make([]byte, 0, len(samples)*3)
	for i, smp := range samples {
		r, g, b, err := smp.rgb()
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out = append(out, r, g, b)
	}
	return out, nil
}

func (c HSV) rgb() (byte, byte, byte, error) {
	hp := c.H / 60
	x := c.S * (1 - math.Abs(math.Mod(hp, 2)-1))

	var f [3]float64
	switch sector := int(hp); sector {
	case 0:
		f = [3]float64{c.S, x, 0}
	case 1:
		f = [3]float64{x, c.S, 0}
	case 2:
		f = [3]float64{0, c.S, x}
	case 3:
		f = [3]float64{0, x, c.S}
	case 4:
		f = [3]float64{x, 0, c.S}
	case 5:
		f = [3]float64{c.S, 0, x}
	default:
		return 0, 0, 0, fmt.Errorf("hue sector %d outside [0,6) for h=%g", sector, c.H)
	}

	m := c.V - c.S
	var out [3]byte
	for i, val := range f {
		val += m
		if val < 0 || val > 1 {
			return 0, 0, 0, fmt.Errorf("channel %d value %g out of [0,1] for hsv(%g,%g,%g)",
				i, val, c.H, c.S, c.V)
		}
		out[i] = byte(val * 255)
	}
	return out[0], out[1], out[2], nil
}
