package rank

import "sort"

// DefaultTopK is the number of stations annotated on the map.
const DefaultTopK = 15

// Ranked pairs a station name with its raw score, for labeling and for the
// console report.
type Ranked struct {
	Name  string
	Score float64
}

// Top returns the k highest-scoring stations in descending score order.
// order supplies the stable tie-break: stations with equal scores keep
// their relative position in order (the graph's insertion order).
// Stations in order without a score are ignored.
func Top(scores map[string]float64, order []string, k int) []Ranked {
	ranked := make([]Ranked, 0, len(order))
	for _, name := range order {
		if s, ok := scores[name]; ok {
			ranked = append(ranked, Ranked{Name: name, Score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}
