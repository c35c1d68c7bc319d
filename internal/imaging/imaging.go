// Package imaging handles decoding uploaded photos and scaling them down to
// analysis resolution. Encoders for the frame endpoint live here too so the
// core packages never touch wire formats.
package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"treadscope/pkg/pixel"
)

// DefaultMaxDim is the longest side after downscale. The deterioration
// pipeline re-renders on every slider move, so analysis resolution is kept
// small enough for sub-frame render times.
const DefaultMaxDim = 400

// DefaultJPEGQuality is the encode quality for rendered frames.
const DefaultJPEGQuality = 85

// Decode reads a JPEG or PNG photo and returns it as a pixel buffer,
// downscaled so its longest side is at most maxDim.
func Decode(r io.Reader, maxDim int) (*pixel.Buffer, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDim
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imaging: decoding photo: %w", err)
	}

	img = downscale(img, maxDim)
	return pixel.FromImage(img)
}

// downscale resizes img so its longest side is maxDim, preserving aspect
// ratio. Images already small enough pass through untouched.
func downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = maxDim
		nh = h * maxDim / w
	} else {
		nh = maxDim
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// EncodeJPEG writes the buffer as a JPEG frame.
func EncodeJPEG(w io.Writer, buf *pixel.Buffer, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	if err := jpeg.Encode(w, buf.ToRGBA(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imaging: encoding jpeg: %w", err)
	}
	return nil
}

// EncodePNG writes the buffer as a lossless PNG, used by the agetest tool.
func EncodePNG(w io.Writer, buf *pixel.Buffer) error {
	if err := png.Encode(w, buf.ToRGBA()); err != nil {
		return fmt.Errorf("imaging: encoding png: %w", err)
	}
	return nil
}
