// Package age renders a synthetically worn version of a tread photo.
//
// The pipeline is a fixed, ordered sequence of mask-weighted passes over a
// private working copy of the photo. Every pass reads from one buffer and
// writes to the other, so no pass ever observes its own partial output.
// Output is byte-identical for identical (source, T, UnevenWear, Seed).
package age

import (
	"math"

	"treadscope/pkg/geometry"
	"treadscope/pkg/pixel"
)

// DefaultSeed is the crack generator seed used when Options.Seed is zero.
const DefaultSeed = 42

// Options is the input contract for one render. No state survives a call.
type Options struct {
	T          float64 // normalized position on the wear timeline, [0,1]
	UnevenWear bool    // boost shoulder wear
	Seed       int64   // crack RNG seed; 0 means DefaultSeed
}

// Effect gates: each pass switches on as t crosses its threshold.
const (
	minEffectT  = 0.01
	smoothGateT = 0.10
	erodeGateT  = 0.25
	softenGateT = 0.35
	crackGateT  = 0.45

	vignetteGateT = 0.30
	tintGateT     = 0.60
)

// Render returns an aged copy of src at time t. The source buffer is never
// mutated. Below minEffectT the photo is returned unchanged (as a copy).
func Render(src *pixel.Buffer, opts Options) *pixel.Buffer {
	t := geometry.Clamp(opts.T, 0, 1)
	if t < minEffectT {
		return src.Clone()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	mask := treadMask(src.W, src.H, opts.UnevenWear)

	read := src.Clone()
	write := src.Clone()
	flip := func() { read, write = write, read }

	reduceContrast(write, read, mask, t)
	flip()

	if t > smoothGateT {
		smooth(write, read, mask, t)
		flip()
	}
	if t > erodeGateT {
		erodeGrooves(write, read, mask, t)
		flip()
	}
	if t > softenGateT {
		softenEdges(write, read, mask, t)
		flip()
	}
	if t > crackGateT {
		drawCracks(write, read, mask, t, newCrackRNG(seed))
		flip()
	}

	applyOverlays(read, t)
	return read
}

// reduceContrast pulls each pixel toward its own luminance gray. Worn
// rubber loses the deep shadow of fresh grooves first.
func reduceContrast(dst, src *pixel.Buffer, mask []float64, t float64) {
	strength := 0.45 * t
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			i := src.Offset(x, y)
			f := strength * mask[y*src.W+x]
			l := src.Luminance(x, y)
			for c := 0; c < 3; c++ {
				v := float64(src.Pix[i+c])
				dst.Pix[i+c] = pixel.Clamp8(v + (l-v)*f)
			}
			dst.Pix[i+3] = src.Pix[i+3]
		}
	}
}

// smooth applies a Gaussian-weighted blur whose radius grows with t. The
// kernel samples a stride-2 neighborhood so the pass stays frame-budget
// cheap at full resolution.
func smooth(dst, src *pixel.Buffer, mask []float64, t float64) {
	radius := 1 + int(t*2)
	sigma := float64(radius)

	type tap struct {
		dx, dy int
		w      float64
	}
	var taps []tap
	var sum float64
	for dy := -radius; dy <= radius; dy += 2 {
		for dx := -radius; dx <= radius; dx += 2 {
			w := math.Exp(-float64(dx*dx+dy*dy) / (2 * sigma * sigma))
			taps = append(taps, tap{dx, dy, w})
			sum += w
		}
	}
	for i := range taps {
		taps[i].w /= sum
	}

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			i := src.Offset(x, y)
			f := mask[y*src.W+x] * t
			if f == 0 {
				copy(dst.Pix[i:i+4], src.Pix[i:i+4])
				continue
			}

			var acc [3]float64
			for _, tp := range taps {
				sx := clampInt(x+tp.dx, 0, src.W-1)
				sy := clampInt(y+tp.dy, 0, src.H-1)
				j := src.Offset(sx, sy)
				acc[0] += float64(src.Pix[j]) * tp.w
				acc[1] += float64(src.Pix[j+1]) * tp.w
				acc[2] += float64(src.Pix[j+2]) * tp.w
			}
			for c := 0; c < 3; c++ {
				v := float64(src.Pix[i+c])
				dst.Pix[i+c] = pixel.Clamp8(v + (acc[c]-v)*f)
			}
			dst.Pix[i+3] = src.Pix[i+3]
		}
	}
}

// Groove-erosion tuning: dark pixels are groove floors that fill in as the
// tread wears; high-variance pixels are sipe edges that round off.
const (
	grooveLumCeil    = 110
	edgeVarianceGate = 15
	grooveLift       = 18.0
	edgeLift         = 10.0
)

// erodeGrooves brightens groove floors and sipe edges, visually shallowing
// the tread pattern.
func erodeGrooves(dst, src *pixel.Buffer, mask []float64, t float64) {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			i := src.Offset(x, y)
			f := mask[y*src.W+x] * t

			lift := 0.0
			if f > 0 {
				l := src.Luminance(x, y)
				if l < grooveLumCeil {
					lift = grooveLift * f
				} else if neighborVariance(src, x, y) > edgeVarianceGate {
					lift = edgeLift * f
				}
			}

			if lift == 0 {
				copy(dst.Pix[i:i+4], src.Pix[i:i+4])
				continue
			}
			for c := 0; c < 3; c++ {
				dst.Pix[i+c] = pixel.Clamp8(float64(src.Pix[i+c]) + lift)
			}
			dst.Pix[i+3] = src.Pix[i+3]
		}
	}
}

// neighborVariance is the luminance variance over the 3x3 neighborhood.
func neighborVariance(buf *pixel.Buffer, x, y int) float64 {
	var sum, sumSq float64
	n := 0.0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			sx := clampInt(x+dx, 0, buf.W-1)
			sy := clampInt(y+dy, 0, buf.H-1)
			l := buf.Luminance(sx, sy)
			sum += l
			sumSq += l * l
			n++
		}
	}
	mean := sum / n
	return sumSq/n - mean*mean
}

const softenGradientGate = 25

// softenEdges blends high-gradient pixels toward a 3-sample horizontal
// average, strength scaled by the gradient magnitude.
func softenEdges(dst, src *pixel.Buffer, mask []float64, t float64) {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			i := src.Offset(x, y)
			f := mask[y*src.W+x] * t

			grad := 0.0
			if f > 0 && x > 0 && x < src.W-1 && y > 0 && y < src.H-1 {
				grad = math.Abs(src.Luminance(x+1, y)-src.Luminance(x-1, y)) +
					math.Abs(src.Luminance(x, y+1)-src.Luminance(x, y-1))
			}
			if grad <= softenGradientGate {
				copy(dst.Pix[i:i+4], src.Pix[i:i+4])
				continue
			}

			strength := math.Min(1, grad/255) * f
			left := src.Offset(x-1, y)
			right := src.Offset(x+1, y)
			for c := 0; c < 3; c++ {
				avg := (float64(src.Pix[left+c]) + float64(src.Pix[i+c]) + float64(src.Pix[right+c])) / 3
				v := float64(src.Pix[i+c])
				dst.Pix[i+c] = pixel.Clamp8(v + (avg-v)*strength)
			}
			dst.Pix[i+3] = src.Pix[i+3]
		}
	}
}

// Crack tuning.
const (
	crackCellProb    = 0.035
	crackGradGate    = 20
	crackAngleJitter = 0.3
	crackDarkenLo    = 25
	crackDarkenHi    = 60
)

// drawCracks scatters short dark micro-cracks over the tread region. Crack
// direction follows the local luminance gradient where it is strong, so
// cracks align with the tread pattern instead of cutting across it.
func drawCracks(dst, src *pixel.Buffer, mask []float64, t float64, rng *crackRNG) {
	copy(dst.Pix, src.Pix)

	for y := 0; y < src.H; y += 2 {
		for x := 0; x < src.W; x += 2 {
			p := crackCellProb * t * mask[y*src.W+x]
			if rng.Float64() >= p {
				continue
			}

			length := 2 + int(rng.Range(0, 5))

			var angle float64
			gx, gy := 0.0, 0.0
			if x > 0 && x < src.W-1 && y > 0 && y < src.H-1 {
				gx = src.Luminance(x+1, y) - src.Luminance(x-1, y)
				gy = src.Luminance(x, y+1) - src.Luminance(x, y-1)
			}
			if math.Hypot(gx, gy) > crackGradGate {
				angle = math.Atan2(gy, gx)
			} else {
				angle = rng.Range(0, 2*math.Pi)
			}
			angle += rng.Range(-crackAngleJitter, crackAngleJitter)

			darken := rng.Range(crackDarkenLo, crackDarkenHi)
			dx, dy := math.Cos(angle), math.Sin(angle)

			for step := 0; step < length; step++ {
				px := x + int(dx*float64(step))
				py := y + int(dy*float64(step))
				if px < 0 || px >= dst.W || py < 0 || py >= dst.H {
					break
				}
				i := dst.Offset(px, py)
				for c := 0; c < 3; c++ {
					dst.Pix[i+c] = pixel.Clamp8(float64(dst.Pix[i+c]) - darken)
				}
			}
		}
	}
}

// Overlay colors: a warm wash for sun-aged rubber, then a vignette and a
// deeper tint once the timeline is well past its midpoint.
var (
	washColor = [3]float64{205, 170, 125}
	tintColor = [3]float64{185, 130, 80}
)

// applyOverlays composites the analytic full-frame overlays in place.
func applyOverlays(buf *pixel.Buffer, t float64) {
	washAlpha := 0.10 * t

	vignetteAlpha := 0.0
	if t > vignetteGateT {
		vignetteAlpha = 0.25 * (t - vignetteGateT) / (1 - vignetteGateT)
	}
	tintAlpha := 0.0
	if t > tintGateT {
		tintAlpha = 0.12 * (t - tintGateT) / (1 - tintGateT)
	}

	cx, cy := float64(buf.W)/2, float64(buf.H)/2
	maxDist := math.Hypot(cx, cy)

	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			i := buf.Offset(x, y)

			radial := 0.0
			if vignetteAlpha > 0 {
				dn := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
				radial = vignetteAlpha * geometry.Smoothstep(0.55, 1.0, dn)
			}

			for c := 0; c < 3; c++ {
				v := float64(buf.Pix[i+c])
				v = v*(1-washAlpha) + washColor[c]*washAlpha
				if radial > 0 {
					v *= 1 - radial
				}
				if tintAlpha > 0 {
					v = v*(1-tintAlpha) + tintColor[c]*tintAlpha
				}
				buf.Pix[i+c] = pixel.Clamp8(v)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
