package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	stkerrors "github.com/stationrank/stationrank/pkg/errors"
)

// Colormap is a continuous color scale sampled by a parameter in [0,1].
// Interpolation runs in Lab space so the perceived gradient stays even.
type Colormap struct {
	name  string
	stops []colorful.Color
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("colormap: bad hex stop " + s)
	}
	return c
}

// Control points lifted from the matplotlib scales of the same names.
var colormaps = map[string][]colorful.Color{
	"plasma": {
		hex("#0d0887"), hex("#6a00a8"), hex("#b12a90"),
		hex("#e16462"), hex("#fca636"), hex("#f0f921"),
	},
	"viridis": {
		hex("#440154"), hex("#414487"), hex("#2a788e"),
		hex("#22a884"), hex("#7ad151"), hex("#fde725"),
	},
}

// ColormapByName returns the named scale, or INVALID_CONFIG for an unknown
// name.
func ColormapByName(name string) (Colormap, error) {
	stops, ok := colormaps[name]
	if !ok {
		return Colormap{}, stkerrors.New(stkerrors.ErrCodeInvalidConfig,
			"unknown colormap %q (available: plasma, viridis)", name)
	}
	return Colormap{name: name, stops: stops}, nil
}

// Name returns the colormap's registered name.
func (c Colormap) Name() string { return c.name }

// At samples the scale at t, clamped to [0,1].
func (c Colormap) At(t float64) colorful.Color {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))

	segments := len(c.stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		return c.stops[segments]
	}
	return c.stops[i].BlendLab(c.stops[i+1], pos-float64(i)).Clamped()
}

// Hex samples the scale at t and formats it as "#rrggbb".
func (c Colormap) Hex(t float64) string {
	return c.At(t).Hex()
}
