package rank

import "testing"

func TestTop(t *testing.T) {
	scores := map[string]float64{"A": 0.1, "B": 0.4, "C": 0.2, "D": 0.3}
	order := []string{"A", "B", "C", "D"}

	got := Top(scores, order, 3)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantNames := []string{"B", "D", "C"}
	for i, want := range wantNames {
		if got[i].Name != want {
			t.Errorf("rank %d = %s, want %s", i+1, got[i].Name, want)
		}
	}
	if got[0].Score != 0.4 {
		t.Errorf("top score = %v, want 0.4 unaltered", got[0].Score)
	}
}

func TestTopKExceedsCount(t *testing.T) {
	scores := map[string]float64{"A": 0.6, "B": 0.4}
	got := Top(scores, []string{"A", "B"}, DefaultTopK)

	if len(got) != 2 {
		t.Errorf("len = %d, want min(k, nodeCount) = 2", len(got))
	}
}

func TestTopStableTies(t *testing.T) {
	scores := map[string]float64{"X": 0.25, "Y": 0.25, "Z": 0.25, "W": 0.25}
	order := []string{"Z", "X", "W", "Y"}

	got := Top(scores, order, 4)

	for i, want := range order {
		if got[i].Name != want {
			t.Errorf("tie order broken at %d: got %s, want %s", i, got[i].Name, want)
		}
	}
}

func TestTopIgnoresUnscored(t *testing.T) {
	scores := map[string]float64{"A": 1}
	got := Top(scores, []string{"A", "ghost"}, 5)

	if len(got) != 1 || got[0].Name != "A" {
		t.Errorf("Top() = %v, want only scored stations", got)
	}
}
