package render

import "math"

// Box is an axis-aligned rectangle identified by its center point.
type Box struct {
	X, Y float64 // center
	W, H float64
}

// penetration returns how far b and o interpenetrate on each axis,
// including pad spacing. ok is false when the boxes are clear of each other.
func (b Box) penetration(o Box, pad float64) (penX, penY float64, ok bool) {
	penX = (b.W+o.W)/2 + pad - math.Abs(b.X-o.X)
	penY = (b.H+o.H)/2 + pad - math.Abs(b.Y-o.Y)
	if penX <= 0 || penY <= 0 {
		return 0, 0, false
	}
	return penX, penY, true
}

// Label is a station annotation: the text box and the true coordinate it
// belongs to. The box starts just above the anchor and is moved by
// PlaceLabels when it collides with neighbors or markers.
type Label struct {
	Text     string
	AnchorX  float64
	AnchorY  float64
	FontSize float64
	Box      Box
}

// NewLabel creates a label anchored at (x, y) with its box sized from the
// text metrics and positioned slightly above the anchor.
func NewLabel(text string, x, y, fontSize float64) *Label {
	return &Label{
		Text:     text,
		AnchorX:  x,
		AnchorY:  y,
		FontSize: fontSize,
		Box: Box{
			X: x,
			Y: y - fontSize*1.1,
			W: textWidth(text, fontSize) + fontSize*0.4,
			H: fontSize * 1.3,
		},
	}
}

// Displaced reports whether the box moved far enough from its anchor that a
// leader line is needed to tie it back to the true coordinate.
func (l *Label) Displaced() bool {
	return math.Hypot(l.Box.X-l.AnchorX, l.Box.Y-l.AnchorY) > l.FontSize*2
}

// textWidth estimates the rendered width of s. CJK runes are full-width;
// everything else uses the usual narrow-glyph ratio.
func textWidth(s string, fontSize float64) float64 {
	var w float64
	for _, r := range s {
		if r >= 0x2E80 {
			w += fontSize
		} else {
			w += fontSize * 0.58
		}
	}
	return w
}

// Relaxation parameters. The pass is a small force simulation: overlapping
// boxes repel each other and the marker obstacles, a weak spring keeps each
// box near its anchor.
const (
	labelIterations = 80
	labelPad        = 2.0
	labelSpring     = 0.06
)

// PlaceLabels relaxes label positions so they avoid each other and the
// given obstacles while staying near their anchors and inside the
// width×height canvas. Labels are mutated in place.
func PlaceLabels(labels []*Label, obstacles []Box, width, height float64) {
	for iter := 0; iter < labelIterations; iter++ {
		// Weak pull toward the preferred spot above the anchor.
		for _, l := range labels {
			tx := l.AnchorX
			ty := l.AnchorY - l.FontSize*1.1
			l.Box.X += (tx - l.Box.X) * labelSpring
			l.Box.Y += (ty - l.Box.Y) * labelSpring
		}

		// Pairwise repulsion between labels: resolve the full penetration
		// along the cheaper axis, split between both boxes.
		for i := range labels {
			for j := i + 1; j < len(labels); j++ {
				a, b := labels[i], labels[j]
				penX, penY, ok := a.Box.penetration(b.Box, labelPad)
				if !ok {
					continue
				}
				if penX < penY {
					dir := sign(a.Box.X - b.Box.X)
					a.Box.X += dir * penX / 2
					b.Box.X -= dir * penX / 2
				} else {
					dir := sign(a.Box.Y - b.Box.Y)
					a.Box.Y += dir * penY / 2
					b.Box.Y -= dir * penY / 2
				}
			}
		}

		// Push labels off markers; only the label moves.
		for _, l := range labels {
			for _, o := range obstacles {
				penX, penY, ok := l.Box.penetration(o, labelPad/2)
				if !ok {
					continue
				}
				if penX < penY {
					l.Box.X += sign(l.Box.X-o.X) * penX
				} else {
					l.Box.Y += sign(l.Box.Y-o.Y) * penY
				}
			}
		}

		for _, l := range labels {
			l.Box.X = clamp(l.Box.X, l.Box.W/2, width-l.Box.W/2)
			l.Box.Y = clamp(l.Box.Y, l.Box.H/2, height-l.Box.H/2)
		}
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
