package rank

import (
	"math"
	"testing"

	"github.com/stationrank/stationrank/pkg/railway"
)

func scoresByName(net *railway.Network, res Result) map[string]float64 {
	out := make(map[string]float64, len(res.Scores))
	for id, s := range res.Scores {
		out[net.NameOf(id)] = s
	}
	return out
}

func sum(m map[string]float64) float64 {
	var t float64
	for _, v := range m {
		t += v
	}
	return t
}

func TestComputeDistribution(t *testing.T) {
	net := railway.New()
	net.AddEdge("A", "B")
	net.AddEdge("B", "C")

	res := Compute(net.Directed(), DefaultConfig())
	scores := scoresByName(net, res)

	if got := sum(scores); math.Abs(got-1) > 1e-6 {
		t.Errorf("sum of scores = %v, want 1 within 1e-6", got)
	}
	for name, s := range scores {
		if s < 0 {
			t.Errorf("score[%s] = %v, want non-negative", name, s)
		}
	}
	if !res.Converged {
		t.Errorf("chain A→B→C should converge within %d iterations", DefaultConfig().MaxIter)
	}
}

func TestComputeTeleportGivesSourcesMass(t *testing.T) {
	net := railway.New()
	net.AddEdge("A", "B")
	net.AddEdge("C", "B")

	res := Compute(net.Directed(), DefaultConfig())
	scores := scoresByName(net, res)

	// A and C have no incoming edges but still earn the teleport share.
	if scores["A"] <= 0 || scores["C"] <= 0 {
		t.Errorf("sources must keep positive score: A=%v C=%v", scores["A"], scores["C"])
	}
	if scores["B"] <= scores["A"] {
		t.Errorf("sink of both edges should outrank a source: B=%v A=%v", scores["B"], scores["A"])
	}
}

func TestComputeDanglingMassNotLost(t *testing.T) {
	// B is dangling: without redistribution the total mass would decay.
	net := railway.New()
	net.AddEdge("A", "B")

	res := Compute(net.Directed(), DefaultConfig())
	scores := scoresByName(net, res)

	if got := sum(scores); math.Abs(got-1) > 1e-6 {
		t.Errorf("sum with dangling node = %v, want 1 within 1e-6", got)
	}
	if scores["B"] <= scores["A"] {
		t.Errorf("B receives A's mass and should outrank it: B=%v A=%v", scores["B"], scores["A"])
	}
}

func TestComputeDirectedness(t *testing.T) {
	// Influence flows A→B only; B must rank strictly higher.
	net := railway.New()
	net.AddEdge("A", "B")
	net.AddEdge("C", "A")
	net.AddEdge("C", "B")

	res := Compute(net.Directed(), DefaultConfig())
	scores := scoresByName(net, res)

	if !(scores["B"] > scores["A"] && scores["A"] > scores["C"]) {
		t.Errorf("expected B > A > C, got %v", scores)
	}
}

func TestComputeSymmetricCycle(t *testing.T) {
	net := railway.New()
	net.AddEdge("A", "B")
	net.AddEdge("B", "C")
	net.AddEdge("C", "A")

	res := Compute(net.Directed(), DefaultConfig())
	scores := scoresByName(net, res)

	third := 1.0 / 3.0
	for name, s := range scores {
		if math.Abs(s-third) > 1e-4 {
			t.Errorf("score[%s] = %v, want ≈1/3 on a symmetric cycle", name, s)
		}
	}
}

func TestComputeIterationCap(t *testing.T) {
	net := railway.New()
	net.AddEdge("A", "B")
	net.AddEdge("B", "A")

	cfg := DefaultConfig()
	cfg.MaxIter = 2
	cfg.Tol = 0 // force the cap

	res := Compute(net.Directed(), cfg)
	if res.Converged {
		t.Error("Converged = true with zero tolerance")
	}
	if res.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", res.Iterations)
	}
}

func TestComputeEmptyGraph(t *testing.T) {
	net := railway.New()
	res := Compute(net.Directed(), DefaultConfig())
	if len(res.Scores) != 0 {
		t.Errorf("Scores = %v, want empty", res.Scores)
	}
	if !res.Converged {
		t.Error("empty graph should report converged")
	}
}

func TestComputeSingleNode(t *testing.T) {
	net := railway.New()
	net.AddNode("A")

	res := Compute(net.Directed(), DefaultConfig())
	scores := scoresByName(net, res)
	if math.Abs(scores["A"]-1) > 1e-9 {
		t.Errorf("score[A] = %v, want 1", scores["A"])
	}
}
