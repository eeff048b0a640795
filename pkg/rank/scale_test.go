package rank

import (
	"math"
	"testing"
)

func TestScaleRange(t *testing.T) {
	scores := map[string]float64{
		"A": 0.5,
		"B": 0.3,
		"C": 0.15,
		"D": 0.05,
	}

	sizes := Scale(scores, DefaultMinSize, DefaultMaxSize)

	for name, size := range sizes {
		if size < DefaultMinSize || size > DefaultMaxSize {
			t.Errorf("size[%s] = %v, want within [%v, %v]", name, size, DefaultMinSize, DefaultMaxSize)
		}
	}
	if sizes["A"] != DefaultMaxSize {
		t.Errorf("highest score should map to maxSize, got %v", sizes["A"])
	}
	if sizes["D"] != DefaultMinSize {
		t.Errorf("lowest score should map to minSize, got %v", sizes["D"])
	}
}

func TestScaleMonotonic(t *testing.T) {
	scores := map[string]float64{
		"tiny": 0.001, "small": 0.01, "mid": 0.1, "big": 0.5,
	}
	sizes := Scale(scores, DefaultMinSize, DefaultMaxSize)

	orderOK := sizes["tiny"] < sizes["small"] &&
		sizes["small"] < sizes["mid"] &&
		sizes["mid"] < sizes["big"]
	if !orderOK {
		t.Errorf("sizes not monotonic in score: %v", sizes)
	}
}

func TestScaleDegenerate(t *testing.T) {
	scores := map[string]float64{"A": 0.25, "B": 0.25, "C": 0.25, "D": 0.25}

	sizes := Scale(scores, DefaultMinSize, DefaultMaxSize)

	mid := DefaultMinSize + (DefaultMaxSize-DefaultMinSize)/2
	for name, size := range sizes {
		if math.Abs(size-mid) > 1e-9 {
			t.Errorf("size[%s] = %v, want midpoint %v for all-equal input", name, size, mid)
		}
	}
}

func TestScaleZeroScore(t *testing.T) {
	sizes := Scale(map[string]float64{"A": 0, "B": 0.5}, DefaultMinSize, DefaultMaxSize)

	if math.IsInf(sizes["A"], 0) || math.IsNaN(sizes["A"]) {
		t.Fatalf("size for zero score must stay finite, got %v", sizes["A"])
	}
	if sizes["A"] != DefaultMinSize {
		t.Errorf("zero score should map to minSize, got %v", sizes["A"])
	}
}

func TestScaleEmpty(t *testing.T) {
	if got := Scale(nil, DefaultMinSize, DefaultMaxSize); len(got) != 0 {
		t.Errorf("Scale(nil) = %v, want empty", got)
	}
}
