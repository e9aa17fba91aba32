package stats

import (
	"math"
)

// SphericalVariogram evaluates the spherical model at lag h: the nugget
// plus a cubic rise to the sill, flat beyond the range parameter.
func SphericalVariogram(h, nugget, sill, rangeParam float64) float64 {
	if h > rangeParam {
		return nugget + sill
	}
	ratio := h / rangeParam
	return nugget + sill*(1.5*ratio-0.5*ratio*ratio*ratio)
}

// SphericalVariogramSlice evaluates the spherical model at each lag
func SphericalVariogramSlice(h []float64, nugget, sill, rangeParam float64) []float64 {
	out := make([]float64, len(h))
	for i, lag := range h {
		out[i] = SphericalVariogram(lag, nugget, sill, rangeParam)
	}
	return out
}

// ExponentialVariogram evaluates the exponential model at lag h; the sill
// is approached asymptotically with practical range rangeParam.
func ExponentialVariogram(h, nugget, sill, rangeParam float64) float64 {
	return nugget + sill*(1-math.Exp(-3*h/rangeParam))
}

// ExponentialVariogramSlice evaluates the exponential model at each lag
func ExponentialVariogramSlice(h []float64, nugget, sill, rangeParam float64) []float64 {
	out := make([]float64, len(h))
	for i, lag := range h {
		out[i] = ExponentialVariogram(lag, nugget, sill, rangeParam)
	}
	return out
}
