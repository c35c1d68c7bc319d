package tread

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"treadscope/internal/quality"
	"treadscope/pkg/pixel"
)

// Estimate is the classifier's verdict for one photo.
type Estimate struct {
	Bucket     Bucket
	Depth      DepthRange
	Confidence float64 // [0.55, 0.90], deliberately capped
}

// Signal combination weights and bucket cut-offs. Tuned against a small
// set of tire photos; these are heuristics, not calibration.
const (
	edgeWeight     = 0.45
	textureWeight  = 0.35
	contrastWeight = 0.20

	gradientThreshold = 30   // luminance delta that counts as an edge
	edgeScale         = 2.5  // edge density is sparse even on new tires
	textureNorm       = 1200 // block variance for a fully-siped tread

	confidenceFloor = 0.55
	confidenceCeil  = 0.90
)

// Classify scores the tread signals of a photo and maps them to a bucket.
// The quality score feeds the confidence, not the bucket choice.
func Classify(buf *pixel.Buffer, q quality.Quality) (Estimate, error) {
	if buf == nil || buf.W <= 0 || buf.H <= 0 {
		return Estimate{}, pixel.ErrInvalidImage
	}

	signal := edgeWeight*edgeDensity(buf) +
		textureWeight*textureVariance(buf) +
		contrastWeight*contrastRatio(buf)

	b := bucketForSignal(signal)

	// Confidence rewards a good photo and a signal far from the ambiguous
	// midpoint; it never leaves the [0.55, 0.90] band.
	conf := confidenceFloor + 0.30*q.Overall + 0.05*math.Abs(signal-0.5)*2
	if conf > confidenceCeil {
		conf = confidenceCeil
	}
	if conf < confidenceFloor {
		conf = confidenceFloor
	}

	return Estimate{Bucket: b, Depth: b.DepthRange(), Confidence: conf}, nil
}

func bucketForSignal(signal float64) Bucket {
	switch {
	case signal >= 0.70:
		return BucketNew
	case signal >= 0.50:
		return BucketHealthy
	case signal >= 0.35:
		return BucketModerate
	case signal >= 0.20:
		return BucketLow
	default:
		return BucketCritical
	}
}

// edgeDensity measures how much of the frame carries strong luminance
// gradients. Deep tread grooves read as dense edges; worn slicks do not.
// Sampled on a stride-2 grid.
func edgeDensity(buf *pixel.Buffer) float64 {
	if buf.W < 3 || buf.H < 3 {
		return 0
	}

	edges, samples := 0, 0
	for y := 1; y < buf.H-1; y += 2 {
		for x := 1; x < buf.W-1; x += 2 {
			gx := buf.Luminance(x+1, y) - buf.Luminance(x-1, y)
			gy := buf.Luminance(x, y+1) - buf.Luminance(x, y-1)
			if math.Sqrt(gx*gx+gy*gy) > gradientThreshold {
				edges++
			}
			samples++
		}
	}
	if samples == 0 {
		return 0
	}

	return math.Min(1, float64(edges)/float64(samples)*edgeScale)
}

// textureVariance averages per-block luminance variance over non-overlapping
// 8x8 blocks placed every 16 pixels.
func textureVariance(buf *pixel.Buffer) float64 {
	if buf.W < 8 || buf.H < 8 {
		return 0
	}

	var blockVars []float64
	block := make([]float64, 0, 64)
	for by := 0; by+8 <= buf.H; by += 16 {
		for bx := 0; bx+8 <= buf.W; bx += 16 {
			block = block[:0]
			for y := by; y < by+8; y++ {
				for x := bx; x < bx+8; x++ {
					block = append(block, buf.Luminance(x, y))
				}
			}
			blockVars = append(blockVars, stat.Variance(block, nil))
		}
	}
	if len(blockVars) == 0 {
		return 0
	}

	return math.Min(1, stat.Mean(blockVars, nil)/textureNorm)
}

// contrastRatio is the normalized luminance span, sampled every 4th pixel.
func contrastRatio(buf *pixel.Buffer) float64 {
	minL, maxL := math.MaxFloat64, -math.MaxFloat64
	n := buf.W * buf.H
	for i := 0; i < n; i += 4 {
		l := buf.Luminance(i%buf.W, i/buf.W)
		if l < minL {
			minL = l
		}
		if l > maxL {
			maxL = l
		}
	}
	if maxL < minL {
		return 0
	}

	return (maxL - minL) / 255
}
