package field

import (
	"math"
)

// MinObservableRainRate stands in for the minimum observed rain rate when a
// field has too few rain pixels to estimate its own.
const MinObservableRainRate = 0.012

// ToDB converts a linear value to decibels: 10*log10(x+offset).
// Pass offset -1 to take the logarithm of the raw value.
func ToDB(value, offset float64) float64 {
	if offset != -1 {
		return 10.0 * math.Log10(value+offset)
	}
	return 10.0 * math.Log10(value)
}

// ToDBSlice converts a slice of linear values to decibels
func ToDBSlice(values []float64, offset float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = ToDB(v, offset)
	}
	return out
}

// ToDBGrid converts a grid of linear values to decibels
func ToDBGrid(data [][]float64, offset float64) [][]float64 {
	out := make([][]float64, len(data))
	for y, row := range data {
		out[y] = ToDBSlice(row, offset)
	}
	return out
}

// RainRateToReflectivity converts rain rates (mm/h) to reflectivity (dBZ)
// as dBZ = 10*log10(a*R + b). Zero-rain pixels receive the minimum observed
// reflectivity so the dry area stays flat in dB space; negative and
// non-finite pixels keep the no-data marker.
func RainRateToReflectivity(rain [][]float64, a, b float64) ([][]float64, error) {
	if err := ValidateGrid(rain); err != nil {
		return nil, err
	}

	// Estimate the minimum rain rate from the field itself when it has
	// at least 10 rain pixels, otherwise fall back to the fixed floor.
	minRain := math.Inf(1)
	rainPixels := 0
	for _, row := range rain {
		for _, v := range row {
			if v > 0 {
				rainPixels++
				if v < minRain {
					minRain = v
				}
			}
		}
	}
	if rainPixels < 10 {
		minRain = MinObservableRainRate
	}
	minDBZ := 10.0 * math.Log10(a*minRain+b)

	dbz := make([][]float64, len(rain))
	for y, row := range rain {
		dbz[y] = make([]float64, len(row))
		for x, v := range row {
			switch {
			case v > 0:
				dbz[y][x] = 10.0 * math.Log10(a*v+b)
			case v == 0:
				dbz[y][x] = minDBZ
			default:
				dbz[y][x] = DefaultNoData
			}
		}
	}
	return dbz, nil
}

// ReflectivityToRainRate inverts the Z = a*R^b power law:
// R = (10^(dBZ/10)/a)^(1/b). No-data pixels stay no-data.
func ReflectivityToRainRate(dbz [][]float64, a, b float64) ([][]float64, error) {
	if err := ValidateGrid(dbz); err != nil {
		return nil, err
	}

	rain := make([][]float64, len(dbz))
	for y, row := range dbz {
		rain[y] = make([]float64, len(row))
		for x, v := range row {
			if v == DefaultNoData || math.IsNaN(v) {
				rain[y][x] = DefaultNoData
				continue
			}
			rain[y][x] = math.Pow(math.Pow(10, v/10.0)/a, 1.0/b)
		}
	}
	return rain, nil
}

// RainfallLookupTable maps 8-bit radar codes to rain rates in mm/h.
// Codes below 2 and the reserved 251-254 band decode to zero, 255 to the
// no-data marker.
func RainfallLookupTable(noData float64) [256]float64 {
	const precipIdxFactor = 71.5
	var lut [256]float64
	for i := 0; i < 256; i++ {
		switch {
		case i < 2 || (i > 250 && i < 255):
			lut[i] = 0.0
		case i == 255:
			lut[i] = noData
		default:
			lut[i] = math.Pow(math.Pow(10, (float64(i)-precipIdxFactor)/20.0)/316.0, 0.6666667)
		}
	}
	return lut
}
