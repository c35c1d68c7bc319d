package age

import "treadscope/pkg/geometry"

// Mask weighting constants. The contact patch sits in the lower-middle of
// a typical tread photo, so the ellipse is centered below the frame middle
// with radii of 35% width and 40% height (70%/80% diameters).
const (
	maskCenterY  = 0.60
	maskRadiusX  = 0.35
	maskRadiusY  = 0.40
	maskInner    = 0.70 // full weight inside this normalized distance
	shoulderBand = 0.25 // outer 50% of the width, split across both sides
	shoulderGain = 1.35
)

// treadMask builds a per-pixel weight map in [0,1] confining deterioration
// to the tread region. When uneven wear is requested the outer shoulder
// bands are boosted so the edges age faster than the center rib.
func treadMask(w, h int, unevenWear bool) []float64 {
	ellipse := geometry.Ellipse{
		Center: geometry.Point2D{X: float64(w) / 2, Y: float64(h) * maskCenterY},
		RX:     float64(w) * maskRadiusX,
		RY:     float64(h) * maskRadiusY,
	}

	mask := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := ellipse.NormDist(geometry.Point2D{X: float64(x), Y: float64(y)})
			weight := 1 - geometry.Smoothstep(maskInner, 1.0, d)

			if unevenWear {
				fx := float64(x) / float64(w)
				if fx < shoulderBand || fx > 1-shoulderBand {
					weight = geometry.Clamp(weight*shoulderGain, 0, 1)
				}
			}

			mask[y*w+x] = weight
		}
	}
	return mask
}
