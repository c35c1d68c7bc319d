package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsZeroArea(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidImage, "%v", dims)
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	buf, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 4, buf.W)
	assert.Equal(t, 3, buf.H)

	r, g, b, a := buf.RGBAAt(1, 2)
	assert.Equal(t, [4]uint8{10, 20, 30, 255}, [4]uint8{r, g, b, a})

	out := buf.ToRGBA()
	assert.Equal(t, img.Pix, out.Pix)
}

func TestCloneIsIndependent(t *testing.T) {
	buf, err := New(2, 2)
	require.NoError(t, err)
	buf.SetRGBA(0, 0, 1, 2, 3, 4)

	cl := buf.Clone()
	cl.SetRGBA(0, 0, 9, 9, 9, 9)

	r, _, _, _ := buf.RGBAAt(0, 0)
	assert.Equal(t, uint8(1), r, "mutating the clone must not touch the source")
}

func TestLuminanceWeights(t *testing.T) {
	buf, err := New(1, 1)
	require.NoError(t, err)

	buf.SetRGBA(0, 0, 255, 0, 0, 255)
	assert.InDelta(t, 0.299*255, buf.Luminance(0, 0), 0.001)

	buf.SetRGBA(0, 0, 0, 255, 0, 255)
	assert.InDelta(t, 0.587*255, buf.Luminance(0, 0), 0.001)

	buf.SetRGBA(0, 0, 255, 255, 255, 255)
	assert.InDelta(t, 255, buf.Luminance(0, 0), 0.001)
}

func TestClamp8(t *testing.T) {
	assert.Equal(t, uint8(0), Clamp8(-12))
	assert.Equal(t, uint8(255), Clamp8(300))
	assert.Equal(t, uint8(128), Clamp8(127.6))
	assert.Equal(t, uint8(127), Clamp8(127.4))
}
