package render

import (
	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
	"github.com/mdziemianko/amp-panel-designer/pkg/render/sink"
)

// Dash patterns per border style.
const (
	dashDotted = "2,2"
	dashDashed = "5,5"
)

// drawBorder emits the group outline. A group without both width and
// height declared never draws a border. The gap, when present, is
// subtracted from the edge it names so an inline label interrupts the
// line it sits on.
func (r *Renderer) drawBorder(g *panel.Group, x, y float64, gap *Gap) {
	b := g.Border
	if b == nil || b.Type == panel.BorderNone {
		return
	}
	if g.Width <= 0 || g.Height <= 0 {
		return
	}

	style := sink.Style{
		Stroke:      b.Color,
		StrokeWidth: b.Thickness,
		Opacity:     r.glyphOpacity(),
	}
	switch b.Style {
	case panel.BorderDotted:
		style.Dash = dashDotted
	case panel.BorderDashed:
		style.Dash = dashDashed
	}

	// A solid, uninterrupted full border collapses to a single rect.
	if b.Type == panel.BorderFull && style.Dash == "" && gap == nil {
		r.snk.Rect(x, y, g.Width, g.Height, style)
		return
	}

	edges := []string{string(b.Type)}
	if b.Type == panel.BorderFull {
		edges = []string{"top", "bottom", "left", "right"}
	}
	for _, edge := range edges {
		r.drawEdge(edge, x, y, g.Width, g.Height, gap, style)
	}
}

// drawEdge emits one border edge, split around the gap interval when the
// gap sits on this edge. Segments shorter than zero after subtraction are
// dropped.
func (r *Renderer) drawEdge(edge string, x, y, w, h float64, gap *Gap, style sink.Style) {
	var x1, y1, x2, y2 float64
	switch edge {
	case "top":
		x1, y1, x2, y2 = x, y, x+w, y
	case "bottom":
		x1, y1, x2, y2 = x, y+h, x+w, y+h
	case "left":
		x1, y1, x2, y2 = x, y, x, y+h
	case "right":
		x1, y1, x2, y2 = x+w, y, x+w, y+h
	default:
		return
	}

	horizontal := edge == "top" || edge == "bottom"
	from, to := x1, x2
	if !horizontal {
		from, to = y1, y2
	}

	var g *Gap
	if gap != nil && gap.Side == edge {
		g = gap
	}
	for _, seg := range splitInterval(from, to, g) {
		if horizontal {
			r.snk.Line(seg[0], y1, seg[1], y2, style)
		} else {
			r.snk.Line(x1, seg[0], x2, seg[1], style)
		}
	}
}

// splitInterval subtracts gap from [a, b], returning the surviving
// sub-intervals with positive length.
func splitInterval(a, b float64, gap *Gap) [][2]float64 {
	if gap == nil {
		return [][2]float64{{a, b}}
	}
	var segs [][2]float64
	if gap.From > a {
		segs = append(segs, [2]float64{a, min(gap.From, b)})
	}
	if gap.To < b {
		segs = append(segs, [2]float64{max(gap.To, a), b})
	}
	out := segs[:0]
	for _, s := range segs {
		if s[1]-s[0] > 0 {
			out = append(out, s)
		}
	}
	return out
}
