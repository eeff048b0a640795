package render

// projector maps lon/lat to canvas pixels with an equirectangular
// projection: x grows east, y grows south, the extent fills the canvas.
type projector struct {
	b      Bounds
	width  float64
	height float64
}

func newProjector(b Bounds, figureSize float64) projector {
	return projector{
		b:      b,
		width:  figureSize,
		height: figureSize * b.LatSpan() / b.LonSpan(),
	}
}

func (p projector) point(lon, lat float64) (x, y float64) {
	x = (lon - p.b.MinLon) / p.b.LonSpan() * p.width
	y = p.height - (lat-p.b.MinLat)/p.b.LatSpan()*p.height
	return x, y
}
