package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToGrayscale(t *testing.T) {
	tests := []struct {
		name string
		rgb  []byte
		want []byte
	}{
		{"white", []byte{255, 255, 255}, []byte{255}},
		{"black", []byte{0, 0, 0}, []byte{0}},
		{"pure red", []byte{255, 0, 0}, []byte{54}},
		{"pure green", []byte{0, 255, 0}, []byte{182}},
		{"pure blue", []byte{0, 0, 255}, []byte{18}},
		{"uniform gray maps to itself", []byte{100, 100, 100}, []byte{100}},
		{"truncates fractional luma", []byte{200, 100, 50}, []byte{117}}, // 117.65
		{"mixed dark", []byte{10, 20, 30}, []byte{18}}, // 18.596
		{"two pixels", []byte{255, 255, 255, 0, 0, 0}, []byte{255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RGBToGrayscale(tt.rgb)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBToGrayscale_BadLength(t *testing.T) {
	_, err := RGBToGrayscale([]byte{1, 2, 3, 4})
	assert.Error(t, err)
}

func TestRGBToBGR(t *testing.T) {
	in := []byte{10, 20, 30, 200, 100, 50}

	got, err := RGBToBGR(in)
	require.NoError(t, err)
	assert.Equal(t, []byte{30, 20, 10, 50, 100, 200}, got)

	// Swapping twice restores the original.
	back, err := RGBToBGR(got)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestRGBToBGR_DoesNotMutateInput(t *testing.T) {
	in := []byte{1, 2, 3}
	_, err := RGBToBGR(in)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, in)
}

func TestRGBToBGR_BadLength(t *testing.T) {
	_, err := RGBToBGR([]byte{1, 2})
	assert.Error(t, err)
}
