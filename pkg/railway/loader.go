package railway

import (
	"math"
	"strconv"
	"strings"

	stkerrors "github.com/stationrank/stationrank/pkg/errors"
	"github.com/stationrank/stationrank/pkg/tabular"
)

// Designator is the trailing character stripped from raw station names in
// the coordinate source ("站", "station"). The line source names stations
// without it, so stripping maximizes join hits between the two inputs.
const Designator = '站'

// Column names of the two tabular inputs.
const (
	ColSrc  = "src"
	ColDst  = "dst"
	ColName = "站名"
	ColLon  = "WGS84_Lng"
	ColLat  = "WGS84_Lat"
)

// LoadEdges builds the directed station network from a line list CSV with
// src/dst header columns. Rows missing either endpoint are skipped;
// duplicate pairs collapse to a single edge.
//
// Returns INPUT_NOT_FOUND if the file is missing and PARSE_ERROR on
// structural failure. A file that yields zero edges is not an error here;
// the caller reports the empty graph and the join stage fails instead.
func LoadEdges(path string) (*Network, error) {
	pairs, err := tabular.Load(path, func(r tabular.Row) (Edge, bool) {
		e := Edge{From: r.Field(ColSrc), To: r.Field(ColDst)}
		if e.From == "" || e.To == "" {
			return Edge{}, false
		}
		return e, true
	})
	if err != nil {
		return nil, err
	}

	net := New()
	for _, e := range pairs {
		net.AddEdge(e.From, e.To)
	}
	return net, nil
}

// CoordinateOptions configures LoadCoordinates.
type CoordinateOptions struct {
	NameColumn string
	LonColumn  string
	LatColumn  string
	Designator rune // trailing character stripped from names; 0 disables
}

// DefaultCoordinateOptions returns the column names and designator of the
// reference station export.
func DefaultCoordinateOptions() CoordinateOptions {
	return CoordinateOptions{
		NameColumn: ColName,
		LonColumn:  ColLon,
		LatColumn:  ColLat,
		Designator: Designator,
	}
}

// LoadCoordinates reads the station coordinate CSV into a CoordinateMap.
// A row is included only when the name and both coordinate fields are
// present and the coordinates parse as finite decimals; anything else is
// skipped silently. A single trailing designator rune is stripped from the
// name before insertion.
//
// Returns INPUT_NOT_FOUND if the file is missing, PARSE_ERROR on structural
// failure, and EMPTY_RESULT when no valid row was found, which aborts the
// pipeline.
func LoadCoordinates(path string, opts CoordinateOptions) (CoordinateMap, error) {
	type entry struct {
		name  string
		coord Coordinate
	}

	rows, err := tabular.Load(path, func(r tabular.Row) (entry, bool) {
		name := r.Field(opts.NameColumn)
		lonText := r.Field(opts.LonColumn)
		latText := r.Field(opts.LatColumn)
		if name == "" || lonText == "" || latText == "" {
			return entry{}, false
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonText), 64)
		if err != nil || math.IsInf(lon, 0) || math.IsNaN(lon) {
			return entry{}, false
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
		if err != nil || math.IsInf(lat, 0) || math.IsNaN(lat) {
			return entry{}, false
		}
		return entry{name: stripDesignator(name, opts.Designator), coord: Coordinate{Lon: lon, Lat: lat}}, true
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, stkerrors.New(stkerrors.ErrCodeEmptyResult, "no usable coordinate rows in %s", path)
	}

	coords := make(CoordinateMap, len(rows))
	for _, e := range rows {
		coords[e.name] = e.coord
	}
	return coords, nil
}

// stripDesignator removes a single trailing designator rune. This is a
// naming normalization, not a general trim: "北京站" becomes "北京" while
// "北京南" is left untouched.
func stripDesignator(name string, designator rune) string {
	if designator == 0 {
		return name
	}
	runes := []rune(name)
	if len(runes) > 0 && runes[len(runes)-1] == designator {
		return string(runes[:len(runes)-1])
	}
	return name
}
