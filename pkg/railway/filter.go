package railway

import (
	stkerrors "github.com/stationrank/stationrank/pkg/errors"
)

// Filter intersects the network's stations with the coordinate keys and
// returns the induced subgraph together with the restricted coordinate map.
// Every station in the result has both topology and a position.
//
// Returns EMPTY_INTERSECTION when the line list and the coordinate table
// share no station; the pipeline cannot continue in that case.
func Filter(net *Network, coords CoordinateMap) (*Network, CoordinateMap, error) {
	valid := make(map[string]bool)
	for _, name := range net.Nodes() {
		if _, ok := coords[name]; ok {
			valid[name] = true
		}
	}
	if len(valid) == 0 {
		return nil, nil, stkerrors.New(stkerrors.ErrCodeEmptyIntersection,
			"line stations and coordinate stations have no overlap")
	}

	sub := net.Induced(valid)
	restricted := make(CoordinateMap, len(valid))
	for name := range valid {
		restricted[name] = coords[name]
	}
	return sub, restricted, nil
}
