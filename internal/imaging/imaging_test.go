package imaging_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terragen/tectonic/internal/imaging"
)

// ramp builds a horizontal gradient field.
func ramp(w, h int) []float64 {
	field := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			field[y*w+x] = float64(x) / float64(w-1)
		}
	}
	return field
}

// TestEncodeDecodeRoundtrip pushes a gradient through the PNG data URL and
// back, within 16-bit quantization error.
func TestEncodeDecodeRoundtrip(t *testing.T) {
	field := ramp(32, 16)

	payload, err := imaging.EncodeField(field, 32, 16)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload, "data:image/png;base64,"))

	decoded, w, h, err := imaging.DecodeField(payload)
	require.NoError(t, err)
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
	require.Len(t, decoded, 32*16)
	for i := range field {
		assert.InDelta(t, field[i], decoded[i], 1e-4, "sample %d", i)
	}
}

// TestDecodeField_BarePayload accepts base64 without the data URL prefix.
func TestDecodeField_BarePayload(t *testing.T) {
	payload, err := imaging.EncodeField(ramp(8, 8), 8, 8)
	require.NoError(t, err)

	bare := strings.TrimPrefix(payload, "data:image/png;base64,")
	_, w, h, err := imaging.DecodeField(bare)
	require.NoError(t, err)
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}

// TestDecodeField_Rejects covers garbage base64 and non-image bytes.
func TestDecodeField_Rejects(t *testing.T) {
	_, _, _, err := imaging.DecodeField("!!not base64!!")
	assert.ErrorIs(t, err, imaging.ErrBadImagePayload)

	_, _, _, err = imaging.DecodeField("aGVsbG8gd29ybGQ=") // valid base64, not a PNG
	assert.ErrorIs(t, err, imaging.ErrBadImagePayload)
}

// TestEncodeField_RejectsMismatch enforces the length/dimension contract.
func TestEncodeField_RejectsMismatch(t *testing.T) {
	_, err := imaging.EncodeField(make([]float64, 10), 8, 8)
	assert.ErrorIs(t, err, imaging.ErrBadRaster)
}

// TestResize checks target dimensions, value range, and that a constant
// field stays constant through interpolation.
func TestResize(t *testing.T) {
	flat := make([]float64, 40*40)
	for i := range flat {
		flat[i] = 0.5
	}

	out, err := imaging.Resize(flat, 40, 40, 25, 30)
	require.NoError(t, err)
	require.Len(t, out, 25*30)
	for i, v := range out {
		assert.InDelta(t, 0.5, v, 1e-3, "sample %d drifted", i)
	}

	same, err := imaging.Resize(flat, 40, 40, 40, 40)
	require.NoError(t, err)
	assert.Equal(t, flat, same)

	_, err = imaging.Resize(flat, 40, 41, 25, 30)
	assert.ErrorIs(t, err, imaging.ErrBadRaster)
}

// TestRenderPlates draws a two-plate grid and decodes the result back to
// verify a well-formed PNG of the right size.
func TestRenderPlates(t *testing.T) {
	const w, h = 20, 10
	labels := make([]int, w*h)
	for i := range labels {
		if i%w >= w/2 {
			labels[i] = 1
		}
	}
	colors := map[int]string{0: "#8B7355", 1: "#6B8E5A"}

	payload, err := imaging.RenderPlates(labels, w, h, colors)
	require.NoError(t, err)

	_, dw, dh, err := imaging.DecodeField(payload)
	require.NoError(t, err)
	assert.Equal(t, w, dw)
	assert.Equal(t, h, dh)
}

// TestRenderPlates_RejectsBadColor surfaces an unparseable palette entry.
func TestRenderPlates_RejectsBadColor(t *testing.T) {
	labels := make([]int, 4)
	_, err := imaging.RenderPlates(labels, 2, 2, map[int]string{0: "teal-ish"})
	assert.Error(t, err)
}
