package colorspace

import "fmt"

// lumaEps absorbs accumulated float error before truncation. The exact
// weighted sum is always a multiple of 1/10000, so the nearest it can
// legitimately sit below an integer is 0.0001; anything closer is rounding
// noise (pure white computes to 254.99999999999997 without this).
const lumaEps = 1e-9

// RGBToGrayscale collapses each RGB triple to a single luma byte using the
// ITU-R BT.709 weights (0.2126*R + 0.7152*G + 0.0722*B).
//
// The weighted sum is truncated to an unsigned byte, not rounded: 117.65
// becomes 117. The output buffer is one third the input length. The caller
// is responsible for switching the record's color model to grayscale
// together with the buffer.
func RGBToGrayscale(pix []byte) ([]byte, error) {
	if len(pix)%3 != 0 {
		return nil, fmt.Errorf("rgb buffer length %d is not a multiple of 3", len(pix))
	}

	out := make([]byte, len(pix)/3)
	for i := range out {
		r := float64(pix[3*i])
		g := float64(pix[3*i+1])
		b := float64(pix[3*i+2])
		lum := 0.2126*r + 0.7152*g + 0.0722*b + lumaEps
		if lum > 255 {
			lum = 255
		}
		out[i] = byte(lum)
	}
	return out, nil
}

// RGBToBGR reorders each triple from (r,g,b) to (b,g,r). Length and color
// model are unchanged; applying it twice restores the original buffer.
func RGBToBGR(pix []byte) ([]byte, error) {
	if len(pix)%3 != 0 {
		return nil, fmt.Errorf("rgb buffer length %d is not a multiple of 3", len(pix))
	}

	out := make([]byte, len(pix))
	for i := 0; i < len(pix); i += 3 {
		out[i], out[i+1], out[i+2] = pix[i+2], pix[i+1], pix[i]
	}
	return out, nil
}
