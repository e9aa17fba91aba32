package spectral

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"gorain/internal/errors"
	"gorain/stats"
)

// Values at or below this threshold never count as part of the central
// anisotropy region.
const conditionalThreshold = 0.01

// Correlation floor applied to positive zero levels; percentile zero levels
// below it are not meaningful for autocorrelation fields.
const autocorrelationFloor = 0.2

// AnisotropyConfig tunes the inertial-axis decomposition of a centered 2D
// spectrum or autocorrelation field. Negative values select the defaults.
type AnisotropyConfig struct {
	// SubdomainHalfSize is the half-width of the centered zoom window;
	// -1 uses half the field height.
	SubdomainHalfSize int `json:"subdomain_half_size"`
	// ZeroPercentile shifts the field so the given conditional percentile
	// becomes the zero level; -1 shifts by the field minimum instead.
	ZeroPercentile float64 `json:"zero_percentile"`
	// Rotate turns the subdomain 90 degrees counterclockwise. Fourier
	// spectra need it; autocorrelation fields do not.
	Rotate bool `json:"rotate"`
	// MaskRadius zeroes everything beyond this many pixels from the
	// center before the decomposition; -1 disables the mask.
	MaskRadius float64 `json:"mask_radius"`
	// SmoothingSigma is the Gaussian bandwidth applied before
	// thresholding; -1 skips smoothing (autocorrelations are already
	// smooth).
	SmoothingSigma float64 `json:"smoothing_sigma"`
}

// DefaultAnisotropyConfig rotates, zeroes at the minimum and applies
// neither mask nor smoothing.
func DefaultAnisotropyConfig() AnisotropyConfig {
	return AnisotropyConfig{
		SubdomainHalfSize: -1,
		ZeroPercentile:    -1,
		Rotate:            true,
		MaskRadius:        -1,
		SmoothingSigma:    -1,
	}
}

// AnisotropyResult describes the elliptical anisotropy of the central
// region of a spectrum or autocorrelation field. Eigenvalues are ascending;
// Eigenvectors columns match them, in (x, y) components per row.
type AnisotropyResult struct {
	Subdomain    [][]float64   `json:"-"`
	Smoothed     [][]float64   `json:"-"`
	Eccentricity float64       `json:"eccentricity"`
	Orientation  float64       `json:"orientation"`
	CenterX      float64       `json:"center_x"`
	CenterY      float64       `json:"center_y"`
	Eigenvalues  [2]float64    `json:"eigenvalues"`
	Eigenvectors [2][2]float64 `json:"eigenvectors"`
	ZeroLevel    float64       `json:"zero_level"`
	RegionPixels int           `json:"region_pixels"`
}

// EstimateAnisotropy measures the eccentricity and orientation of the
// central lobe of a centered 2D power spectrum or autocorrelation field.
//
// The field is zoomed to a centered subdomain, optionally masked, rotated
// and smoothed, shifted so a chosen zero level drops out, segmented to
// isolate the component containing the center, and finally decomposed into
// its inertial axes. Eccentricity is sqrt(1 - eigMin/eigMax); orientation
// is the angle of the principal axis in degrees, trigonometric convention
// (0 East, 90 North).
func EstimateAnisotropy(psd [][]float64, cfg AnisotropyConfig) (*AnisotropyResult, error) {
	rows, cols, err := gridDims(psd)
	if err != nil {
		return nil, err
	}
	if rows%2 != 0 || cols%2 != 0 {
		return nil, errors.Newf(errors.CodeSpectrumSize,
			"anisotropy needs even dimensions, got %dx%d", rows, cols)
	}

	midY, midX := rows/2, cols/2
	half := cfg.SubdomainHalfSize
	if half <= 0 {
		half = midY
	}
	if half > midY || half > midX {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"subdomain half-size %d exceeds the %dx%d field", half, rows, cols)
	}

	size := 2 * half
	sub := make([][]float64, size)
	for i := 0; i < size; i++ {
		sub[i] = append([]float64(nil), psd[midY-half+i][midX-half:midX+half]...)
	}

	if cfg.MaskRadius > 0 {
		r2 := cfg.MaskRadius * cfg.MaskRadius
		for i := 0; i < size; i++ {
			y := float64(i - half)
			for j := 0; j < size; j++ {
				x := float64(j - half)
				if x*x+y*y > r2 {
					sub[i][j] = 0
				}
			}
		}
	}

	if cfg.Rotate {
		sub = rot90(sub)
	}

	smoothed := GaussianSmooth(sub, cfg.SmoothingSigma)

	zero := zeroLevel(smoothed, cfg.ZeroPercentile)
	if math.IsNaN(zero) {
		zero = 0
	}
	if zero > 0 && zero < autocorrelationFloor {
		zero = autocorrelationFloor
	}

	shifted := make([][]float64, size)
	binary := make([][]bool, size)
	for i := range smoothed {
		shifted[i] = make([]float64, size)
		binary[i] = make([]bool, size)
		for j, v := range smoothed[i] {
			s := v - zero
			if s < 0 {
				s = 0
			}
			shifted[i][j] = s
			binary[i][j] = s > conditionalThreshold
		}
	}

	labels, _ := LabelComponents(binary)
	centerLabel := labels[size/2][size/2]
	if centerLabel == 0 {
		return nil, errors.DegenerateInput("center of the field fell below the segmentation threshold")
	}

	weighted := make([][]float64, size)
	regionPixels := 0
	for i := range shifted {
		weighted[i] = make([]float64, size)
		for j, v := range shifted[i] {
			if labels[i][j] == centerLabel {
				weighted[i][j] = v
				regionPixels++
			}
		}
	}

	xbar, ybar, cov, err := inertialAxis(weighted)
	if err != nil {
		return nil, err
	}

	sym := mat.NewSymDense(2, []float64{cov[0][0], cov[0][1], cov[0][1], cov[1][1]})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, errors.InternalError("eigendecomposition of the inertial covariance failed")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	minVal, maxVal := vals[0], vals[1]
	if maxVal <= 0 {
		return nil, errors.DegenerateInput("inertial covariance has no spread")
	}
	eccentricity := math.Sqrt(1 - minVal/maxVal)
	// Orientation follows the minor-variance eigenvector, which points
	// across the elongation.
	orientation := radToDeg(math.Atan(vecs.At(0, 0) / vecs.At(1, 0)))

	return &AnisotropyResult{
		Subdomain:    sub,
		Smoothed:     smoothed,
		Eccentricity: eccentricity,
		Orientation:  orientation,
		CenterX:      xbar,
		CenterY:      ybar,
		Eigenvalues:  [2]float64{vals[0], vals[1]},
		Eigenvectors: [2][2]float64{
			{vecs.At(0, 0), vecs.At(0, 1)},
			{vecs.At(1, 0), vecs.At(1, 1)},
		},
		ZeroLevel:    zero,
		RegionPixels: regionPixels,
	}, nil
}

// zeroLevel picks the shift that moves the background to zero: a
// conditional percentile of the values above the threshold, or the field
// minimum when no percentile is requested.
func zeroLevel(smoothed [][]float64, percentile float64) float64 {
	if percentile > 0 {
		var conditional []float64
		for _, row := range smoothed {
			for _, v := range row {
				if v > conditionalThreshold {
					conditional = append(conditional, v)
				}
			}
		}
		if len(conditional) == 0 {
			return math.NaN()
		}
		q, err := stats.Quantile(conditional, percentile)
		if err != nil {
			return math.NaN()
		}
		return q
	}

	minVal := math.Inf(1)
	for _, row := range smoothed {
		for _, v := range row {
			if math.IsNaN(v) {
				return math.NaN()
			}
			if v < minVal {
				minVal = v
			}
		}
	}
	return minVal
}

// rot90 rotates a grid 90 degrees counterclockwise
func rot90(m [][]float64) [][]float64 {
	rows := len(m)
	if rows == 0 {
		return nil
	}
	cols := len(m[0])
	out := make([][]float64, cols)
	for i := 0; i < cols; i++ {
		out[i] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = m[j][cols-1-i]
		}
	}
	return out
}

// inertialAxis computes the weighted centroid and covariance of an image
// treated as a mass distribution, from its raw moments. x runs along
// columns, y along rows.
func inertialAxis(data [][]float64) (xbar, ybar float64, cov [2][2]float64, err error) {
	var sum, m10, m01, m11, m20, m02 float64
	for i, row := range data {
		y := float64(i)
		for j, v := range row {
			x := float64(j)
			sum += v
			m10 += v * x
			m01 += v * y
			m11 += v * x * y
			m20 += v * x * x
			m02 += v * y * y
		}
	}
	if sum == 0 {
		return 0, 0, cov, errors.DegenerateInput("region carries no mass")
	}

	xbar = m10 / sum
	ybar = m01 / sum
	u11 := (m11 - xbar*m01) / sum
	u20 := (m20 - xbar*m10) / sum
	u02 := (m02 - ybar*m01) / sum
	cov = [2][2]float64{{u20, u11}, {u11, u02}}
	return xbar, ybar, cov, nil
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
