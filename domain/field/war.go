package field

// WARInvalid is returned when the radar domain has no valid pixels.
const WARInvalid = -1.0

// WAR computes the wet area ratio: the percentage of valid radar pixels at
// or above the rain threshold. Pixels at or below noData+1 are outside the
// radar domain and count toward neither side of the ratio.
func WAR(rain [][]float64, rainThreshold, noData float64) float64 {
	rainPixels := 0
	domainPixels := 0
	for _, row := range rain {
		for _, v := range row {
			if v >= rainThreshold {
				rainPixels++
			}
			if v > noData+1 {
				domainPixels++
			}
		}
	}
	if domainPixels == 0 || rainPixels > domainPixels {
		return WARInvalid
	}
	return 100.0 * float64(rainPixels) / float64(domainPixels)
}

// WARSeries computes the WAR of each field in a sequence
func WARSeries(fields [][][]float64, rainThreshold, noData float64) []float64 {
	out := make([]float64, len(fields))
	for i, f := range fields {
		out[i] = WAR(f, rainThreshold, noData)
	}
	return out
}

// ConditionalMean averages the rainy pixels (at or above the threshold)
// inside the valid radar domain; -1 when no pixel qualifies.
func ConditionalMean(rain [][]float64, rainThreshold, noData float64) float64 {
	sum := 0.0
	n := 0
	for _, row := range rain {
		for _, v := range row {
			if v > noData+1 && v >= rainThreshold {
				sum += v
				n++
			}
		}
	}
	if n == 0 {
		return -1
	}
	return sum / float64(n)
}
