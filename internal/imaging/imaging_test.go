package imaging

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(i * 31)
		img.Pix[i+1] = uint8(i * 7)
		img.Pix[i+2] = uint8(i * 13)
		img.Pix[i+3] = 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeDownscalesLargePhotos(t *testing.T) {
	data := encodeTestPNG(t, 800, 600)

	buf, err := Decode(bytes.NewReader(data), 400)
	require.NoError(t, err)
	assert.Equal(t, 400, buf.W)
	assert.Equal(t, 300, buf.H)
}

func TestDecodeKeepsSmallPhotos(t *testing.T) {
	data := encodeTestPNG(t, 120, 90)

	buf, err := Decode(bytes.NewReader(data), 400)
	require.NoError(t, err)
	assert.Equal(t, 120, buf.W)
	assert.Equal(t, 90, buf.H)
}

func TestDecodePortraitOrientation(t *testing.T) {
	data := encodeTestPNG(t, 300, 900)

	buf, err := Decode(bytes.NewReader(data), 400)
	require.NoError(t, err)
	assert.Equal(t, 133, buf.W)
	assert.Equal(t, 400, buf.H)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")), 400)
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	data := encodeTestPNG(t, 64, 64)
	buf, err := Decode(bytes.NewReader(data), 400)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, EncodeJPEG(&out, buf, 0))
	assert.NotZero(t, out.Len())

	out.Reset()
	require.NoError(t, EncodePNG(&out, buf))
	reread, err := Decode(bytes.NewReader(out.Bytes()), 400)
	require.NoError(t, err)
	assert.Equal(t, buf.Pix, reread.Pix, "png round-trip is lossless")
}
