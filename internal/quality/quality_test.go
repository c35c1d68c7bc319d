package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treadscope/pkg/pixel"
)

func flatBuffer(t *testing.T, w, h int, v uint8) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.New(w, h)
	require.NoError(t, err)
	for i := 0; i < len(buf.Pix); i += 4 {
		buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2], buf.Pix[i+3] = v, v, v, 255
	}
	return buf
}

func checkerBuffer(t *testing.T, w, h int) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var v uint8
			if (x+y)%2 == 0 {
				v = 255
			}
			buf.SetRGBA(x, y, v, v, v, 255)
		}
	}
	return buf
}

func TestAssessRejectsInvalidBuffers(t *testing.T) {
	_, err := Assess(nil)
	assert.ErrorIs(t, err, pixel.ErrInvalidImage)

	_, err = Assess(&pixel.Buffer{})
	assert.ErrorIs(t, err, pixel.ErrInvalidImage)
}

func TestAssessFlatGrayIsUnacceptable(t *testing.T) {
	q, err := Assess(flatBuffer(t, 64, 64, 128))
	require.NoError(t, err)

	// Perfectly exposed but zero contrast and zero detail.
	assert.InDelta(t, 1.0, q.Brightness, 0.02)
	assert.InDelta(t, 0.0, q.Contrast, 0.001)
	assert.InDelta(t, 0.0, q.Blur, 0.001)
	assert.False(t, q.Acceptable)
	assert.InDelta(t, 0.25*q.Brightness, q.Overall, 0.001)
}

func TestAssessCheckerboardIsAcceptable(t *testing.T) {
	q, err := Assess(checkerBuffer(t, 64, 64))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, q.Contrast, 0.001)
	assert.InDelta(t, 1.0, q.Blur, 0.001)
	assert.True(t, q.Acceptable)
	assert.GreaterOrEqual(t, q.Overall, 0.75)
}

func TestAssessDarkFrameScoresLow(t *testing.T) {
	q, err := Assess(flatBuffer(t, 64, 64, 10))
	require.NoError(t, err)

	assert.Less(t, q.Brightness, 0.2)
	assert.False(t, q.Acceptable)
}

func TestBrightnessScoreBand(t *testing.T) {
	// Continuous at the band edges, peaked at mid-gray.
	assert.InDelta(t, 0.6, brightnessScore(0.15), 0.001)
	assert.InDelta(t, 0.6, brightnessScore(0.85), 0.001)
	assert.InDelta(t, 1.0, brightnessScore(0.5), 0.001)
	assert.Less(t, brightnessScore(0.05), brightnessScore(0.15))
	assert.Less(t, brightnessScore(0.95), brightnessScore(0.85))
}
