package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"gorain/internal/errors"
)

// FitResult holds a straight-line fit y = Intercept + Slope*x
type FitResult struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	Correlation float64 `json:"correlation"`
}

func validateXY(x, y []float64) error {
	if len(x) != len(y) {
		return errors.Newf(errors.CodeInvalidInput, "x and y lengths differ: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return errors.DegenerateInput("need at least two points for a line fit")
	}
	return nil
}

// FitOLS fits by ordinary least squares. Correlation is the Pearson
// coefficient between x and y.
func FitOLS(x, y []float64) (FitResult, error) {
	if err := validateXY(x, y); err != nil {
		return FitResult{}, err
	}
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return FitResult{
		Slope:       slope,
		Intercept:   intercept,
		Correlation: stat.Correlation(x, y, nil),
	}, nil
}

// FitWeightedPolyfit fits y = a + b*x minimizing the squared weight-scaled
// residuals (each residual multiplies its weight before squaring), after
// normalizing the weights to unit sum. The correlation derives from the
// weighted regression and total sums of squares about the weighted mean
// and carries the slope's sign.
func FitWeightedPolyfit(x, y, w []float64) (FitResult, error) {
	if err := validateXY(x, y); err != nil {
		return FitResult{}, err
	}
	if len(w) != len(x) {
		return FitResult{}, errors.Newf(errors.CodeInvalidInput, "weights length %d does not match %d points", len(w), len(x))
	}

	wsum := 0.0
	for _, v := range w {
		wsum += v
	}
	if wsum == 0 {
		return FitResult{}, errors.DegenerateInput("weights sum to zero")
	}
	norm := make([]float64, len(w))
	for i, v := range w {
		norm[i] = v / wsum
	}

	// Least squares on the weight-scaled design matrix
	n := len(x)
	design := mat.NewDense(n, 2, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, norm[i])
		design.Set(i, 1, norm[i]*x[i])
		rhs.SetVec(i, norm[i]*y[i])
	}
	var coef mat.VecDense
	if err := coef.SolveVec(design, rhs); err != nil {
		return FitResult{}, errors.Wrap(err, "weighted polyfit solve failed")
	}
	intercept := coef.AtVec(0)
	slope := coef.AtVec(1)

	// Weighted mean of the predictand; weights already sum to one
	ybar := 0.0
	for i := range y {
		ybar += norm[i] * y[i]
	}
	ssreg := 0.0
	sstot := 0.0
	for i := range y {
		yhat := intercept + slope*x[i]
		ssreg += norm[i] * (yhat - ybar) * (yhat - ybar)
		sstot += norm[i] * (y[i] - ybar) * (y[i] - ybar)
	}
	r := math.Sqrt(ssreg / sstot)
	if slope < 0 {
		r = -r
	}

	return FitResult{Slope: slope, Intercept: intercept, Correlation: r}, nil
}

// FitWLS fits weighted least squares where each weight scales its squared
// residual; nil weights reduce to ordinary least squares. Correlation is
// sign(slope) times the square root of the coefficient of determination.
func FitWLS(x, y, w []float64) (FitResult, error) {
	if err := validateXY(x, y); err != nil {
		return FitResult{}, err
	}
	if w != nil && len(w) != len(x) {
		return FitResult{}, errors.Newf(errors.CodeInvalidInput, "weights length %d does not match %d points", len(w), len(x))
	}

	intercept, slope := stat.LinearRegression(x, y, w, false)
	r := math.Sqrt(stat.RSquared(x, y, w, intercept, slope))
	if slope < 0 {
		r = -r
	}

	return FitResult{Slope: slope, Intercept: intercept, Correlation: r}, nil
}
