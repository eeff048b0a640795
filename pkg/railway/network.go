// Package railway models the station network: a directed simple graph over
// station names, the station coordinate table, and the join between them.
//
// The graph topology is stored in a gonum simple.DirectedGraph; this package
// adds the name↔id index and deterministic insertion-ordered views that the
// ranking and rendering stages rely on.
package railway

import (
	"github.com/umahmood/haversine"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lon float64
	Lat float64
}

// CoordinateMap maps a normalized station name to its position.
type CoordinateMap map[string]Coordinate

// Edge is a directed connection between two stations.
type Edge struct {
	From string
	To   string
}

// Network is a directed simple graph whose nodes are station names.
// Duplicate edges collapse to one and self-loops are rejected, so the
// structure matches the "simple directed graph" contract of the pipeline.
//
// The zero value is not usable; use New.
type Network struct {
	g     *simple.DirectedGraph
	ids   map[string]int64
	names map[int64]string
	order []string // insertion order, the stable tie-break for ranking
	edges []Edge   // insertion order, deterministic rendering
}

// New creates an empty network.
func New() *Network {
	return &Network{
		g:     simple.NewDirectedGraph(),
		ids:   make(map[string]int64),
		names: make(map[int64]string),
	}
}

// AddNode ensures a station exists in the network and returns its internal id.
// Adding a station that already exists is a no-op.
func (n *Network) AddNode(name string) int64 {
	if id, ok := n.ids[name]; ok {
		return id
	}
	node := n.g.NewNode()
	n.g.AddNode(node)
	id := node.ID()
	n.ids[name] = id
	n.names[id] = name
	n.order = append(n.order, name)
	return id
}

// AddEdge adds a directed edge between two stations, creating the endpoint
// nodes as needed. Re-adding an existing edge is a no-op. Edges with an
// empty endpoint or identical endpoints are rejected; simple.DirectedGraph
// does not admit self-loops and a station linked to itself carries no
// ranking information.
func (n *Network) AddEdge(from, to string) bool {
	if from == "" || to == "" || from == to {
		return false
	}
	fid := n.AddNode(from)
	tid := n.AddNode(to)
	if n.g.HasEdgeFromTo(fid, tid) {
		return false
	}
	n.g.SetEdge(n.g.NewEdge(n.g.Node(fid), n.g.Node(tid)))
	n.edges = append(n.edges, Edge{From: from, To: to})
	return true
}

// HasNode reports whether the station exists in the network.
func (n *Network) HasNode(name string) bool {
	_, ok := n.ids[name]
	return ok
}

// HasEdge reports whether the directed edge exists.
func (n *Network) HasEdge(from, to string) bool {
	fid, ok := n.ids[from]
	if !ok {
		return false
	}
	tid, ok := n.ids[to]
	if !ok {
		return false
	}
	return n.g.HasEdgeFromTo(fid, tid)
}

// NodeCount returns the number of stations.
func (n *Network) NodeCount() int { return len(n.order) }

// EdgeCount returns the number of distinct directed edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Nodes returns the station names in insertion order.
func (n *Network) Nodes() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Edges returns the directed edges in insertion order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// Directed exposes the underlying gonum graph for algorithms that operate
// on graph.Directed, such as the ranking engine.
func (n *Network) Directed() graph.Directed { return n.g }

// NameOf maps an internal node id back to its station name.
func (n *Network) NameOf(id int64) string { return n.names[id] }

// IDOf maps a station name to its internal node id.
// The second return value is false if the station is unknown.
func (n *Network) IDOf(name string) (int64, bool) {
	id, ok := n.ids[name]
	return id, ok
}

// Induced returns the subgraph induced by keep: the stations present in keep
// and every edge whose both endpoints are kept. Insertion order of the
// original network is preserved, including stations left without edges.
func (n *Network) Induced(keep map[string]bool) *Network {
	sub := New()
	for _, name := range n.order {
		if keep[name] {
			sub.AddNode(name)
		}
	}
	for _, e := range n.edges {
		if keep[e.From] && keep[e.To] {
			sub.AddEdge(e.From, e.To)
		}
	}
	return sub
}

// TrackLength sums the great-circle length of every edge in kilometers,
// using the given coordinates. Edges with an endpoint missing from coords
// contribute nothing.
func (n *Network) TrackLength(coords CoordinateMap) float64 {
	var km float64
	for _, e := range n.edges {
		from, ok := coords[e.From]
		if !ok {
			continue
		}
		to, ok := coords[e.To]
		if !ok {
			continue
		}
		_, segKM := haversine.Distance(
			haversine.Coord{Lat: from.Lat, Lon: from.Lon},
			haversine.Coord{Lat: to.Lat, Lon: to.Lon},
		)
		km += segKM
	}
	return km
}
