package render

import (
	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
	"github.com/mdziemianko/amp-panel-designer/pkg/render/sink"
)

// crosshairOverhang is how far the drill crosshair extends past the mount
// shape's edge, in mm.
const crosshairOverhang = 3.0

// drawDrill emits the manufacturing template for a component mount: the
// unfilled mount shape plus a centered crosshair. The drill layer is always
// drawn opaque so the template stays usable under semi-transparent glyphs.
func (r *Renderer) drawDrill(m *panel.Mount, x, y float64) {
	if m == nil {
		return
	}

	style := sink.Style{
		Stroke:      r.theme.DrillColor,
		StrokeWidth: r.theme.StrokeWidth,
	}

	if m.IsCircular() {
		r.snk.Circle(x, y, m.Diameter/2, style)
	} else {
		r.snk.Rect(x-m.Width/2, y-m.Height/2, m.Width, m.Height, style)
	}

	hx := m.HalfWidth() + crosshairOverhang
	hy := m.HalfHeight() + crosshairOverhang
	r.snk.Line(x-hx, y, x+hx, y, style)
	r.snk.Line(x, y-hy, x, y+hy, style)
}
