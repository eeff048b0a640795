package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the scene to Graphviz DOT for the schematic (non
// geographic) view. Stations in the label set are drawn as named ellipses;
// everything else collapses to a point, which keeps large networks legible.
//
// The layout engine is set in the graph attributes: neato with overlap
// removal, since a railway network is cyclic and has no meaningful rank
// direction.
func ToDOT(scene Scene) string {
	labeled := make(map[string]bool, len(scene.Labels))
	for _, l := range scene.Labels {
		labeled[l.Name] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph railway {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.05, color=\"#555555\"];\n")
	buf.WriteString("  edge [color=\"#77777755\", arrowsize=0.3];\n")
	buf.WriteString("\n")

	for _, name := range scene.Nodes {
		if labeled[name] {
			fmt.Fprintf(&buf, "  %q [shape=ellipse, style=filled, fillcolor=\"#fca636\", fontsize=12, label=%q];\n",
				name, name)
		}
	}

	buf.WriteString("\n")
	for _, e := range scene.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using the in-process Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using the in-process Graphviz.
func RenderDOTPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
