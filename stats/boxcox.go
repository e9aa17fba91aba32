package stats

import (
	"math"

	montana "github.com/montanaflynn/stats"

	"gorain/internal/errors"
)

// BoxCox applies the Box-Cox transform: ln(x) when lambda is zero,
// (x^lambda - 1)/lambda otherwise. Values must be positive for the
// transform to stay finite; callers shift their data beforehand.
func BoxCox(data []float64, lambda float64) []float64 {
	out := make([]float64, len(data))
	if lambda == 0 {
		for i, v := range data {
			out[i] = math.Log(v)
		}
		return out
	}
	for i, v := range data {
		out[i] = (math.Pow(v, lambda) - 1) / lambda
	}
	return out
}

// BoxCoxLambda describes one standardized candidate transform
type BoxCoxLambda struct {
	Lambda      float64   `json:"lambda"`
	Skewness    float64   `json:"skewness"`
	Transformed []float64 `json:"transformed"`
}

// DefaultBoxCoxLambdas returns the 11 candidate exponents evenly spaced
// on [-1, 1]
func DefaultBoxCoxLambdas() []float64 {
	lambdas := make([]float64, 11)
	for i := range lambdas {
		lambdas[i] = -1 + float64(i)*0.2
	}
	return lambdas
}

// BoxCoxSweep standardizes the transform at each candidate lambda and
// reports its skewness; the lambda with the flattest skewness marks the
// best normalizing exponent. Pass nil lambdas for the default sweep.
func BoxCoxSweep(data []float64, lambdas []float64) ([]BoxCoxLambda, error) {
	if len(data) == 0 {
		return nil, errors.EmptyDomain("box-cox input")
	}
	if len(lambdas) == 0 {
		lambdas = DefaultBoxCoxLambdas()
	}

	out := make([]BoxCoxLambda, 0, len(lambdas))
	for _, lambda := range lambdas {
		transformed := BoxCox(data, lambda)

		mean, err := montana.Mean(transformed)
		if err != nil {
			return nil, errors.Wrapf(err, "box-cox sweep at lambda %v", lambda)
		}
		std, err := montana.StandardDeviation(transformed)
		if err != nil {
			return nil, errors.Wrapf(err, "box-cox sweep at lambda %v", lambda)
		}
		for i, v := range transformed {
			transformed[i] = (v - mean) / std
		}

		out = append(out, BoxCoxLambda{
			Lambda:      lambda,
			Skewness:    Skewness(transformed),
			Transformed: transformed,
		})
	}
	return out, nil
}
