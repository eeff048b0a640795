package rank

import "math"

// Display size bounds, in the marker-area units of the renderer.
const (
	DefaultMinSize = 5.0
	DefaultMaxSize = 300.0

	// logEpsilon keeps log10 finite for exactly-zero scores.
	logEpsilon = 1e-9
)

// Scale maps raw scores to display sizes: log10(score+ε), min–max
// normalized to [0,1], then affinely mapped to [minSize, maxSize].
// The result is monotonically non-decreasing in score.
//
// When every score is equal the normalization has zero variance; all
// stations then map to the midpoint of the display range instead of
// dividing by zero.
func Scale(scores map[string]float64, minSize, maxSize float64) map[string]float64 {
	sizes := make(map[string]float64, len(scores))
	if len(scores) == 0 {
		return sizes
	}

	logs := make(map[string]float64, len(scores))
	minLog := math.Inf(1)
	maxLog := math.Inf(-1)
	for name, s := range scores {
		l := math.Log10(s + logEpsilon)
		logs[name] = l
		minLog = math.Min(minLog, l)
		maxLog = math.Max(maxLog, l)
	}

	span := maxLog - minLog
	if span == 0 {
		mid := minSize + (maxSize-minSize)/2
		for name := range scores {
			sizes[name] = mid
		}
		return sizes
	}

	for name, l := range logs {
		norm := (l - minLog) / span
		sizes[name] = minSize + norm*(maxSize-minSize)
	}
	return sizes
}
