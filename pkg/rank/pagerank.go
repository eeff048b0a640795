// Package rank computes the station importance scores and their display
// transforms: the PageRank-style stationary distribution, the log-scaled
// display sizes, and the top-K label selection.
package rank

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
)

// Config holds the ranking parameters. The defaults mirror the commonly
// documented PageRank settings; all three are tunable from the CLI.
type Config struct {
	// Damping is the probability of following an outgoing edge instead of
	// teleporting to a uniformly random station.
	Damping float64
	// Tol is the L1 convergence tolerance between successive score vectors.
	Tol float64
	// MaxIter bounds the number of power iterations when convergence is slow.
	MaxIter int
}

// DefaultConfig returns damping 0.85, tolerance 1e-6, and a cap of 100
// iterations.
func DefaultConfig() Config {
	return Config{Damping: 0.85, Tol: 1e-6, MaxIter: 100}
}

// Result is the outcome of a ranking run.
type Result struct {
	// Scores maps gonum node ids to their stationary probability.
	// The values are non-negative and sum to 1.
	Scores map[int64]float64
	// Iterations is the number of power iterations performed.
	Iterations int
	// Converged reports whether the L1 delta fell below Tol before the
	// iteration cap was reached.
	Converged bool
}

// Compute runs power iteration over the directed graph.
//
// Each round redistributes every station's mass equally across its outgoing
// edges, damped by cfg.Damping, with the remaining mass spread uniformly.
// Stations with no outgoing edges (dangling) contribute their mass uniformly
// to all stations, so no probability is lost. Influence flows along edge
// direction only.
func Compute(g graph.Directed, cfg Config) Result {
	var ids []int64
	it := g.Nodes()
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	n := len(ids)
	if n == 0 {
		return Result{Scores: map[int64]float64{}, Converged: true}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Dense successor lists, as in the usual gonum re-indexing pattern.
	succ := make([][]int, n)
	for i, id := range ids {
		to := g.From(id)
		for to.Next() {
			succ[i] = append(succ[i], index[to.Node().ID()])
		}
	}

	inv := 1.0 / float64(n)
	base := (1 - cfg.Damping) * inv

	rankVec := make([]float64, n)
	next := make([]float64, n)
	for i := range rankVec {
		rankVec[i] = inv
	}

	res := Result{}
	for res.Iterations < cfg.MaxIter {
		res.Iterations++

		var dangling float64
		for i, out := range succ {
			if len(out) == 0 {
				dangling += rankVec[i]
			}
		}

		floor := base + cfg.Damping*dangling*inv
		for i := range next {
			next[i] = floor
		}
		for i, out := range succ {
			if len(out) == 0 {
				continue
			}
			share := cfg.Damping * rankVec[i] / float64(len(out))
			for _, j := range out {
				next[j] += share
			}
		}

		delta := floats.Distance(next, rankVec, 1)
		rankVec, next = next, rankVec
		if delta < cfg.Tol {
			res.Converged = true
			break
		}
	}

	res.Scores = make(map[int64]float64, n)
	for i, id := range ids {
		res.Scores[id] = rankVec[i]
	}
	return res
}
