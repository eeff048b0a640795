package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/stationrank/stationrank/pkg/railway"
	"github.com/stationrank/stationrank/pkg/rank"
)

// Scene is everything the renderer needs: the filtered network with its
// coordinates and the derived score, size, and label data. All maps are
// keyed by station name.
type Scene struct {
	Nodes  []string
	Edges  []railway.Edge
	Coords railway.CoordinateMap
	Scores map[string]float64
	Sizes  map[string]float64
	Labels []rank.Ranked
}

// GeoOption configures the geographic SVG renderer.
type GeoOption func(*geoRenderer)

type geoRenderer struct {
	style   Style
	basemap *Basemap
}

// WithStyle overrides the default rendering style.
func WithStyle(s Style) GeoOption { return func(r *geoRenderer) { r.style = s } }

// WithBasemap adds the background boundary layer.
func WithBasemap(b *Basemap) GeoOption { return func(r *geoRenderer) { r.basemap = b } }

// RenderGeoSVG composes the figure back-to-front: basemap polygons, edges,
// markers, labels. The canvas has no background fill, so the SVG (and a PNG
// converted from it) keeps a transparent background.
func RenderGeoSVG(scene Scene, opts ...GeoOption) ([]byte, error) {
	r := geoRenderer{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&r)
	}
	if !r.style.Bounds.Valid() {
		return nil, fmt.Errorf("invalid bounds: %+v", r.style.Bounds)
	}
	cmap, err := ColormapByName(r.style.Colormap)
	if err != nil {
		return nil, err
	}

	p := newProjector(r.style.Bounds, r.style.FigureSize)
	// Marker radii and font sizes track the canvas so the figure looks the
	// same at any FigureSize.
	unit := r.style.FigureSize / 1500

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		p.width, p.height, p.width, p.height)

	if r.basemap != nil {
		renderBasemap(&buf, r.basemap, p)
	}
	renderEdges(&buf, scene, p, unit)
	renderMarkers(&buf, scene, p, cmap, unit)
	renderLabels(&buf, scene, p, r.style, unit)
	renderTitle(&buf, r.style, p, unit)

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderBasemap(buf *bytes.Buffer, bm *Basemap, p projector) {
	buf.WriteString(`  <g fill="#DDDDDD" stroke="#999999" stroke-width="0.8">` + "\n")
	for _, poly := range bm.Polygons {
		var d bytes.Buffer
		for _, ring := range poly {
			for i, pt := range ring {
				x, y := p.point(pt[0], pt[1])
				if i == 0 {
					fmt.Fprintf(&d, "M%.1f %.1f", x, y)
				} else {
					fmt.Fprintf(&d, "L%.1f %.1f", x, y)
				}
			}
			d.WriteString("Z")
		}
		fmt.Fprintf(buf, `    <path d="%s" fill-rule="evenodd"/>`+"\n", d.String())
	}
	buf.WriteString("  </g>\n")
}

func renderEdges(buf *bytes.Buffer, scene Scene, p projector, unit float64) {
	buf.WriteString(`  <g stroke="#777777" stroke-opacity="0.3">` + "\n")
	for _, e := range scene.Edges {
		from, ok := scene.Coords[e.From]
		if !ok {
			continue
		}
		to, ok := scene.Coords[e.To]
		if !ok {
			continue
		}
		x1, y1 := p.point(from.Lon, from.Lat)
		x2, y2 := p.point(to.Lon, to.Lat)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="%.2f"/>`+"\n",
			x1, y1, x2, y2, 0.6*unit)
	}
	buf.WriteString("  </g>\n")
}

func renderMarkers(buf *bytes.Buffer, scene Scene, p projector, cmap Colormap, unit float64) {
	minScore, maxScore := scoreRange(scene.Scores)

	buf.WriteString(`  <g fill-opacity="0.6" stroke="#000000">` + "\n")
	for _, name := range scene.Nodes {
		c, ok := scene.Coords[name]
		if !ok {
			continue
		}
		x, y := p.point(c.Lon, c.Lat)
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" stroke-width="%.2f"/>`+"\n",
			x, y, markerRadius(scene.Sizes[name], unit), cmap.Hex(colorPos(scene.Scores[name], minScore, maxScore)), 0.5*unit)
	}
	buf.WriteString("  </g>\n")
}

func renderLabels(buf *bytes.Buffer, scene Scene, p projector, style Style, unit float64) {
	if len(scene.Labels) == 0 {
		return
	}
	fontSize := 16 * unit

	labels := make([]*Label, 0, len(scene.Labels))
	obstacles := make([]Box, 0, len(scene.Labels))
	for _, lr := range scene.Labels {
		c, ok := scene.Coords[lr.Name]
		if !ok {
			continue
		}
		x, y := p.point(c.Lon, c.Lat)
		labels = append(labels, NewLabel(lr.Name, x, y, fontSize))
		r := markerRadius(scene.Sizes[lr.Name], unit)
		obstacles = append(obstacles, Box{X: x, Y: y, W: 2 * r, H: 2 * r})
	}
	PlaceLabels(labels, obstacles, p.width, p.height)

	buf.WriteString("  <g>\n")
	for _, l := range labels {
		if l.Displaced() {
			fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#666666" stroke-width="%.2f"/>`+"\n",
				l.AnchorX, l.AnchorY, l.Box.X, l.Box.Y, 0.5*unit)
		}
	}
	for _, l := range labels {
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="#FFFFFF" fill-opacity="0.6"/>`+"\n",
			l.Box.X-l.Box.W/2, l.Box.Y-l.Box.H/2, l.Box.W, l.Box.H)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			l.Box.X, l.Box.Y, escapeXML(style.Font), l.FontSize, escapeXML(l.Text))
	}
	buf.WriteString("  </g>\n")
}

func renderTitle(buf *bytes.Buffer, style Style, p projector, unit float64) {
	if style.Title == "" {
		return
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="#000000" text-anchor="middle">%s</text>`+"\n",
		p.width/2, 40*unit, escapeXML(style.Font), 30*unit, escapeXML(style.Title))
}

// markerRadius converts a display size (an area, matplotlib-style) to a
// pixel radius on the canvas.
func markerRadius(size, unit float64) float64 {
	if size <= 0 {
		size = rank.DefaultMinSize
	}
	return math.Sqrt(size/math.Pi) * 2 * unit
}

func scoreRange(scores map[string]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range scores {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	return lo, hi
}

// colorPos normalizes a raw score onto the color scale. A degenerate range
// maps everything to the middle of the scale.
func colorPos(score, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (score - lo) / (hi - lo)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
