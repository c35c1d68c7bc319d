// Package pixel provides the owned RGBA buffer type shared by the analysis
// and deterioration pipelines.
package pixel

import (
	"errors"
	"image"
	"image/color"
)

// ErrInvalidImage indicates a zero-area or otherwise malformed buffer.
var ErrInvalidImage = errors.New("pixel: invalid image buffer")

// Luminance weights per ITU-R BT.601.
const (
	WeightR = 0.299
	WeightG = 0.587
	WeightB = 0.114
)

// Buffer is a w*h grid of 8-bit RGBA samples in row-major order.
// Callers own the buffer for the duration of any call that receives it.
type Buffer struct {
	W, H int
	Pix  []uint8 // 4 bytes per pixel: R, G, B, A
}

// New allocates a zeroed buffer of the given dimensions.
func New(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidImage
	}
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h*4)}, nil
}

// FromImage copies an image.Image into a new Buffer.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf, err := New(w, h)
	if err != nil {
		return nil, err
	}

	// Fast path for the decoder's native format.
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == w*4 && bounds.Min == (image.Point{}) {
		copy(buf.Pix, rgba.Pix[:w*h*4])
		return buf, nil
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf.Pix[i+0] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(b >> 8)
			buf.Pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return buf, nil
}

// Clone returns an independent deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{W: b.W, H: b.H, Pix: make([]uint8, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

// ToRGBA converts the buffer to a standard image for encoding.
func (b *Buffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	copy(img.Pix, b.Pix)
	return img
}

// Offset returns the index of pixel (x, y) in Pix.
func (b *Buffer) Offset(x, y int) int {
	return (y*b.W + x) * 4
}

// RGBAAt returns the channel values at (x, y). Bounds are the caller's
// responsibility.
func (b *Buffer) RGBAAt(x, y int) (r, g, bl, a uint8) {
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// SetRGBA writes the channel values at (x, y).
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) {
	i := b.Offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
}

// Luminance returns the BT.601 luminance at (x, y) in [0, 255].
func (b *Buffer) Luminance(x, y int) float64 {
	i := b.Offset(x, y)
	return WeightR*float64(b.Pix[i]) + WeightG*float64(b.Pix[i+1]) + WeightB*float64(b.Pix[i+2])
}

// Clamp8 clamps a float sample into the valid 8-bit channel range.
func Clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Gray returns a flat gray color, handy for tests and overlays.
func Gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
