// Package render draws the ranked station network.
//
// The native artifact is SVG, composed back-to-front: basemap polygons,
// semi-transparent edge segments, score-sized and score-colored station
// markers, and de-overlapped text labels with leader lines for the top
// ranked stations. The canvas is bounded to a fixed geographic extent and
// has no background fill, so the output stays transparent-capable.
//
// PNG output converts the SVG through rsvg-convert. A schematic (non
// geographic) node-link view of the same network is available through the
// DOT exporter, rendered in-process with Graphviz.
package render
