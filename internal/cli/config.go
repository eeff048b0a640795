package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/stationrank/stationrank/pkg/errors"
	"github.com/stationrank/stationrank/pkg/rank"
	"github.com/stationrank/stationrank/pkg/render"
)

// styleConfig is the on-disk TOML representation of the figure style. All
// fields are optional; unset fields keep their defaults.
type styleConfig struct {
	Font       string    `toml:"font"`
	Colormap   string    `toml:"colormap"`
	FigureSize float64   `toml:"figure_size"`
	Bounds     []float64 `toml:"bounds"` // min lon, max lon, min lat, max lat
	MinSize    float64   `toml:"min_size"`
	MaxSize    float64   `toml:"max_size"`
	TopK       int       `toml:"top_k"`
	Title      string    `toml:"title"`
}

// renderConfig holds everything the rank command needs to style its output.
type renderConfig struct {
	Style   render.Style
	MinSize float64
	MaxSize float64
	TopK    int
}

// defaultRenderConfig returns the built-in style and scaling parameters.
func defaultRenderConfig() renderConfig {
	return renderConfig{
		Style:   render.DefaultStyle(),
		MinSize: rank.DefaultMinSize,
		MaxSize: rank.DefaultMaxSize,
		TopK:    rank.DefaultTopK,
	}
}

// loadStyleFile reads a TOML style file and merges it over cfg. Unset fields
// are left untouched.
func loadStyleFile(path string, cfg renderConfig) (renderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeInputNotFound, err, "style file %q not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInputNotFound, err, "read style file %s", path)
	}

	var sc styleConfig
	if err := toml.Unmarshal(data, &sc); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeParse, err, "decode style file %s", path)
	}

	if sc.Font != "" {
		cfg.Style.Font = sc.Font
	}
	if sc.Colormap != "" {
		cfg.Style.Colormap = sc.Colormap
	}
	if sc.FigureSize > 0 {
		cfg.Style.FigureSize = sc.FigureSize
	}
	if sc.Title != "" {
		cfg.Style.Title = sc.Title
	}
	if len(sc.Bounds) > 0 {
		b, err := parseBounds(sc.Bounds)
		if err != nil {
			return cfg, err
		}
		cfg.Style.Bounds = b
	}
	if sc.MinSize > 0 {
		cfg.MinSize = sc.MinSize
	}
	if sc.MaxSize > 0 {
		cfg.MaxSize = sc.MaxSize
	}
	if sc.TopK > 0 {
		cfg.TopK = sc.TopK
	}

	if cfg.MinSize >= cfg.MaxSize {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "min_size must be smaller than max_size")
	}
	return cfg, nil
}

// parseBounds converts a four-element slice into map bounds.
func parseBounds(v []float64) (render.Bounds, error) {
	if len(v) != 4 {
		return render.Bounds{}, errors.New(errors.ErrCodeInvalidConfig, "bounds must have exactly four values: min lon, max lon, min lat, max lat")
	}
	b := render.Bounds{MinLon: v[0], MaxLon: v[1], MinLat: v[2], MaxLat: v[3]}
	if !b.Valid() {
		return render.Bounds{}, errors.New(errors.ErrCodeInvalidConfig, "bounds must describe a non-empty lon/lat window")
	}
	return b, nil
}
