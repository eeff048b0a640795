package render

// Bounds is a geographic extent in degrees.
type Bounds struct {
	MinLon float64
	MaxLon float64
	MinLat float64
	MaxLat float64
}

// DefaultBounds covers the Chinese railway network of the reference data.
func DefaultBounds() Bounds {
	return Bounds{MinLon: 70, MaxLon: 140, MinLat: 15, MaxLat: 55}
}

// LonSpan returns the longitudinal extent in degrees.
func (b Bounds) LonSpan() float64 { return b.MaxLon - b.MinLon }

// LatSpan returns the latitudinal extent in degrees.
func (b Bounds) LatSpan() float64 { return b.MaxLat - b.MinLat }

// Valid reports whether both spans are positive.
func (b Bounds) Valid() bool { return b.LonSpan() > 0 && b.LatSpan() > 0 }

// Style is the explicit rendering configuration: one value, built once,
// passed into the renderer. There is no process-wide plotting state.
type Style struct {
	// Font is the CSS font-family stack for labels and the title. The
	// default leads with CJK-capable families so station names render.
	Font string
	// Colormap names the continuous color scale for marker colors.
	Colormap string
	// FigureSize is the canvas width in pixels; the height follows from
	// the aspect ratio of Bounds.
	FigureSize float64
	// Bounds fixes the geographic extent of the canvas.
	Bounds Bounds
	// Title is drawn centered at the top; empty omits it.
	Title string
}

// DefaultStyle returns the reference look: plasma colormap, CJK font stack,
// 1500px canvas over the default bounds.
func DefaultStyle() Style {
	return Style{
		Font:       "Noto Sans CJK SC, SimHei, PingFang SC, sans-serif",
		Colormap:   "plasma",
		FigureSize: 1500,
		Bounds:     DefaultBounds(),
		Title:      "Railway Network PageRank",
	}
}
