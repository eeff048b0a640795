package cli

import (
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/stationrank/stationrank/pkg/errors"
	"github.com/stationrank/stationrank/pkg/railway"
	"github.com/stationrank/stationrank/pkg/rank"
	"github.com/stationrank/stationrank/pkg/render"
)

// rankOptions collects every flag of the rank command.
type rankOptions struct {
	output     string
	format     string
	view       string
	basemap    string
	country    string
	styleFile  string
	designator string
	topK       int
	damping    float64
	tol        float64
	maxIter    int
	width      float64
	bounds     []float64
	title      string
	pngScale   float64
}

// Output formats and view modes accepted by the rank command.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"

	viewGeo       = "geo"
	viewSchematic = "schematic"
)

func newRankCmd() *cobra.Command {
	opts := rankOptions{
		format:     formatSVG,
		view:       viewGeo,
		country:    "China",
		designator: string(railway.Designator),
		damping:    0.85,
		tol:        1e-6,
		maxIter:    100,
		pngScale:   2.0,
	}

	cmd := &cobra.Command{
		Use:   "rank <lines.csv> <stations.csv>",
		Short: "Rank stations and render the network map",
		Long: `Rank builds the directed station graph from the line list, joins it with
the coordinate table, scores every station with PageRank, and renders the
network over a map with the highest-ranked stations labeled.

The line list needs src/dst columns; the coordinate table needs a station
name column plus WGS84 longitude and latitude columns. Stations without
coordinates are dropped before ranking.`,
		Example: `  stationrank rank lines.csv stations.csv
  stationrank rank lines.csv stations.csv -o map.png --basemap world.geojson
  stationrank rank lines.csv stations.csv --view schematic -f dot -o network.dot`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stationrank.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, or dot")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "figure type: geo (map) or schematic (graphviz)")
	cmd.Flags().StringVar(&opts.basemap, "basemap", "", "GeoJSON boundary file for the background layer")
	cmd.Flags().StringVar(&opts.country, "country", opts.country, "country to keep from the basemap (empty keeps all)")
	cmd.Flags().StringVar(&opts.styleFile, "style", "", "TOML style file")
	cmd.Flags().StringVar(&opts.designator, "designator", opts.designator, "trailing character stripped from coordinate names (empty disables)")
	cmd.Flags().IntVar(&opts.topK, "top", 0, fmt.Sprintf("number of stations to label (default %d)", rank.DefaultTopK))
	cmd.Flags().Float64Var(&opts.damping, "damping", opts.damping, "PageRank damping factor")
	cmd.Flags().Float64Var(&opts.tol, "tol", opts.tol, "PageRank L1 convergence tolerance")
	cmd.Flags().IntVar(&opts.maxIter, "max-iter", opts.maxIter, "PageRank iteration cap")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64SliceVar(&opts.bounds, "bounds", nil, "map extent: min lon, max lon, min lat, max lat")
	cmd.Flags().StringVar(&opts.title, "title", "", "figure title")
	cmd.Flags().Float64Var(&opts.pngScale, "scale", opts.pngScale, "raster scale factor for png output")

	return cmd
}

func runRank(cmd *cobra.Command, linesPath, coordsPath string, opts rankOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx).With("run", uuid.NewString()[:8])

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	// Stage 1: line list.
	p := newProgress(logger)
	net, err := railway.LoadEdges(linesPath)
	if err != nil {
		return err
	}
	if net.NodeCount() == 0 {
		printWarning("line list %s produced an empty graph", linesPath)
	}
	p.done("loaded line list", "stations", net.NodeCount(), "edges", net.EdgeCount())

	// Stage 2: coordinates.
	p = newProgress(logger)
	coordOpts := railway.DefaultCoordinateOptions()
	coordOpts.Designator = designatorRune(opts.designator)
	coords, err := railway.LoadCoordinates(coordsPath, coordOpts)
	if err != nil {
		return err
	}
	p.done("loaded coordinates", "stations", len(coords))

	// Stage 3: join.
	p = newProgress(logger)
	sub, subCoords, err := railway.Filter(net, coords)
	if err != nil {
		return err
	}
	dropped := net.NodeCount() - sub.NodeCount()
	if dropped > 0 {
		logger.Debug("dropped stations without coordinates", "count", dropped)
	}
	p.done("joined network with coordinates",
		"stations", sub.NodeCount(),
		"edges", sub.EdgeCount(),
		"track_km", fmt.Sprintf("%.0f", sub.TrackLength(subCoords)))

	// Stage 4: ranking.
	p = newProgress(logger)
	sp := newSpinner(ctx, "ranking stations...")
	res := rank.Compute(sub.Directed(), rank.Config{
		Damping: opts.damping,
		Tol:     opts.tol,
		MaxIter: opts.maxIter,
	})
	sp.Stop()
	if !res.Converged {
		printWarning("ranking did not converge within %d iterations", opts.maxIter)
	}
	p.done("ranked stations", "iterations", res.Iterations, "converged", res.Converged)

	scores := make(map[string]float64, len(res.Scores))
	for id, s := range res.Scores {
		scores[sub.NameOf(id)] = s
	}

	sizes := rank.Scale(scores, cfg.MinSize, cfg.MaxSize)
	top := rank.Top(scores, sub.Nodes(), cfg.TopK)
	printTopStations(top)

	scene := render.Scene{
		Nodes:  sub.Nodes(),
		Edges:  sub.Edges(),
		Coords: subCoords,
		Scores: scores,
		Sizes:  sizes,
		Labels: top,
	}

	// Stage 5: figure.
	p = newProgress(logger)
	sp = newSpinner(ctx, "rendering figure...")
	data, err := renderScene(cmd, scene, cfg, opts, logger)
	sp.Stop()
	if err != nil {
		return err
	}
	p.done("rendered figure", "format", opts.format, "view", opts.view)

	out := outputPath(opts)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Println(styleDim.Render("wrote " + out))
	return nil
}

// resolveConfig layers the style sources: defaults, then the TOML style
// file, then individual flags.
func resolveConfig(opts rankOptions) (renderConfig, error) {
	cfg := defaultRenderConfig()
	if opts.styleFile != "" {
		var err error
		cfg, err = loadStyleFile(opts.styleFile, cfg)
		if err != nil {
			return cfg, err
		}
	}
	if opts.topK > 0 {
		cfg.TopK = opts.topK
	}
	if opts.width > 0 {
		cfg.Style.FigureSize = opts.width
	}
	if opts.title != "" {
		cfg.Style.Title = opts.title
	}
	if len(opts.bounds) > 0 {
		b, err := parseBounds(opts.bounds)
		if err != nil {
			return cfg, err
		}
		cfg.Style.Bounds = b
	}

	switch opts.format {
	case formatSVG, formatPNG, formatDOT:
	default:
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, png, or dot)", opts.format)
	}
	switch opts.view {
	case viewGeo, viewSchematic:
	default:
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown view %q (want geo or schematic)", opts.view)
	}
	if opts.format == formatDOT && opts.view != viewSchematic {
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "dot output requires --view schematic")
	}
	return cfg, nil
}

func renderScene(cmd *cobra.Command, scene render.Scene, cfg renderConfig, opts rankOptions, logger *charmlog.Logger) ([]byte, error) {
	if opts.view == viewSchematic {
		dot := render.ToDOT(scene)
		switch opts.format {
		case formatDOT:
			return []byte(dot), nil
		case formatPNG:
			return render.RenderDOTPNG(cmd.Context(), dot)
		default:
			return render.RenderDOTSVG(cmd.Context(), dot)
		}
	}

	geoOpts := []render.GeoOption{render.WithStyle(cfg.Style)}
	if opts.basemap != "" {
		bm, err := render.LoadBasemap(opts.basemap, opts.country)
		if err != nil {
			// The background layer is decoration; the figure is still useful
			// without it.
			printWarning("skipping basemap: %s", errors.UserMessage(err))
		} else {
			logger.Debug("loaded basemap", "polygons", len(bm.Polygons))
			geoOpts = append(geoOpts, render.WithBasemap(bm))
		}
	}

	svg, err := render.RenderGeoSVG(scene, geoOpts...)
	if err != nil {
		return nil, err
	}
	if opts.format == formatPNG {
		return render.ToPNG(svg, opts.pngScale)
	}
	return svg, nil
}

// outputPath returns the explicit -o value or a default named after the
// format.
func outputPath(opts rankOptions) string {
	if opts.output != "" {
		return opts.output
	}
	return "stationrank." + opts.format
}

// designatorRune converts the flag value to the single rune the loader
// strips. Empty disables stripping; longer values keep only the first rune.
func designatorRune(s string) rune {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return []rune(s)[0]
}
