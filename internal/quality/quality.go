// Package quality scores the photographic usability of a tread photo.
//
// The scores are cheap signal heuristics, not calibrated measurements: they
// exist to tell the classifier (and the caller) how much to trust the rest
// of the pipeline, and to reject photos too dark, flat, or blurry to carry
// any tread signal at all.
package quality

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"treadscope/pkg/pixel"
)

// Quality holds the per-signal and combined scores for one photo.
// All scores are in [0, 1]; higher is better. Blur is a sharpness score
// (1 = crisp focus), kept under its historical name.
type Quality struct {
	Blur       float64
	Brightness float64
	Contrast   float64
	Overall    float64
	Acceptable bool
}

const (
	// Usable mean-luminance band, as a fraction of full scale.
	brightLow  = 0.15
	brightHigh = 0.85

	contrastNorm  = 60  // luminance stddev that counts as full contrast
	sharpnessNorm = 500 // Laplacian variance that counts as fully sharp

	acceptableFloor = 0.35
)

// Assess computes the quality scores for a buffer.
// A nil or zero-area buffer returns pixel.ErrInvalidImage.
func Assess(buf *pixel.Buffer) (Quality, error) {
	if buf == nil || buf.W <= 0 || buf.H <= 0 || buf.W*buf.H == 0 {
		return Quality{}, pixel.ErrInvalidImage
	}

	lum := make([]float64, 0, buf.W*buf.H)
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			lum = append(lum, buf.Luminance(x, y))
		}
	}

	mean := stat.Mean(lum, nil)
	sd := stat.StdDev(lum, nil)
	if math.IsNaN(sd) {
		sd = 0 // single-pixel buffer
	}

	q := Quality{
		Brightness: brightnessScore(mean / 255),
		Contrast:   math.Min(1, sd/contrastNorm),
		Blur:       sharpnessScore(buf),
	}
	q.Overall = 0.25*q.Brightness + 0.35*q.Contrast + 0.40*q.Blur
	q.Acceptable = q.Overall >= acceptableFloor
	return q, nil
}

// brightnessScore peaks at mid-gray and falls off hard outside the usable
// exposure band.
func brightnessScore(mean float64) float64 {
	switch {
	case mean < brightLow:
		return mean / brightLow * 0.6
	case mean > brightHigh:
		return (1 - mean) / (1 - brightHigh) * 0.6
	default:
		// 1.0 at 0.5, 0.6 at either band edge.
		return 1 - math.Abs(mean-0.5)/(0.5-brightLow)*0.4
	}
}

// sharpnessScore estimates focus via the variance of a 4-neighbor discrete
// Laplacian, sampled on a stride-3 grid to keep the pass cheap.
func sharpnessScore(buf *pixel.Buffer) float64 {
	if buf.W < 3 || buf.H < 3 {
		return 0
	}

	var lap []float64
	for y := 1; y < buf.H-1; y += 3 {
		for x := 1; x < buf.W-1; x += 3 {
			center := buf.Luminance(x, y)
			v := 4*center - buf.Luminance(x-1, y) - buf.Luminance(x+1, y) -
				buf.Luminance(x, y-1) - buf.Luminance(x, y+1)
			lap = append(lap, v)
		}
	}
	if len(lap) < 2 {
		return 0
	}

	return math.Min(1, stat.Variance(lap, nil)/sharpnessNorm)
}
