package render

import (
	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
	"github.com/mdziemianko/amp-panel-designer/pkg/render/sink"
)

// Fixed label clearances in mm.
const (
	socketLabelPad = 5.0
	switchLabelPad = 5.0
	switchSidePad  = 8.0
	customLabelPad = 5.0
	potLabelPad    = 2.0
)

// fillStyle paints a filled shape without an outline.
func fillStyle(color string, opacity float64) sink.Style {
	return sink.Style{Fill: color, Opacity: opacity}
}

func (r *Renderer) tickLabelStyle(opacity float64) sink.TextStyle {
	return sink.TextStyle{
		Family:  r.theme.FontFamily,
		Size:    r.theme.FontSize,
		Anchor:  "middle",
		Opacity: opacity,
	}
}

func (r *Renderer) renderPotentiometer(p *panel.Potentiometer, x, y float64) {
	if r.showDrills() {
		r.drawDrill(p.Mount, x, y)
	}
	if !r.showGlyphs() {
		return
	}
	op := r.glyphOpacity()

	borderR := p.BorderDiameter / 2
	knobR := p.KnobDiameter / 2

	if p.BorderThickness > 0 {
		ring := sink.Style{
			Stroke:      r.theme.Stroke,
			StrokeWidth: p.BorderThickness,
			Opacity:     op,
		}
		r.snk.Circle(x, y, borderR, ring)
	}
	if p.Scale != nil {
		r.drawTicks(x, y, borderR, p.Scale, p.AngleStart, p.AngleWidth, op)
	}

	r.snk.Circle(x, y, knobR, r.stroke(op))
	// Static position marker pointing at the user zero direction
	// (straight down). This is a schematic, not a live gauge.
	mx, my := pointAt(x, y, knobR, 0)
	r.snk.Line(x, y, mx, my, r.stroke(op))

	r.drawComponentLabel(p.Label, p.Font, x, y, func(string) float64 {
		d := max(borderR, knobR) + potLabelPad
		if p.Scale != nil {
			d += p.Scale.TickSize + 2
		}
		return d
	})
}

func (r *Renderer) renderSocket(s *panel.Socket, x, y float64) {
	if r.showDrills() {
		r.drawDrill(s.Mount, x, y)
	}
	if !r.showGlyphs() {
		return
	}
	op := r.glyphOpacity()

	body := sink.Style{
		Fill:        "#333333",
		Stroke:      r.theme.Stroke,
		StrokeWidth: r.theme.StrokeWidth,
		Opacity:     op,
	}
	r.snk.Circle(x, y, s.Radius, body)
	// Inner bore at half the outer radius.
	r.snk.Circle(x, y, s.Radius/2, fillStyle(r.theme.Stroke, op))

	r.drawComponentLabel(s.Label, s.Font, x, y, func(string) float64 {
		return s.Radius + socketLabelPad
	})
}

func (r *Renderer) renderSwitch(sw *panel.Switch, x, y float64) {
	if r.showDrills() {
		r.drawDrill(sw.Mount, x, y)
	}
	if !r.showGlyphs() {
		return
	}
	switch sw.Type {
	case panel.SwitchRotary:
		r.renderRotarySwitch(sw, x, y)
	default:
		r.renderToggleSwitch(sw, x, y)
	}
}

func (r *Renderer) renderToggleSwitch(sw *panel.Switch, x, y float64) {
	op := r.glyphOpacity()

	body := sink.Style{
		Fill:        "#cccccc",
		Stroke:      r.theme.Stroke,
		StrokeWidth: r.theme.StrokeWidth,
		Opacity:     op,
	}
	r.snk.Rect(x-sw.Width/2, y-sw.Height/2, sw.Width, sw.Height, body)

	if lever := sw.Width/2 - 2; lever > 0 {
		r.snk.Circle(x, y, lever, fillStyle(r.theme.Stroke, op))
	}

	// Three independent labels, each with its own font/distance override.
	dist := func(side string) float64 {
		if side == "left" || side == "right" {
			return sw.Width/2 + switchSidePad
		}
		return sw.Height/2 + switchLabelPad
	}
	r.drawComponentLabel(sw.LabelTop, sw.Font, x, y, dist)
	r.drawComponentLabel(sw.LabelCenter, sw.Font, x, y, dist)
	r.drawComponentLabel(sw.LabelBottom, sw.Font, x, y, dist)
	r.drawComponentLabel(sw.Label, sw.Font, x, y, dist)
}

// renderRotarySwitch mirrors the potentiometer tick math but keyed off the
// knob diameter, with optional per-tick labels.
func (r *Renderer) renderRotarySwitch(sw *panel.Switch, x, y float64) {
	op := r.glyphOpacity()
	knobR := sw.KnobDiameter / 2

	if sw.Scale != nil {
		r.drawTicks(x, y, knobR, sw.Scale, sw.AngleStart, sw.AngleWidth, op)
	}

	r.snk.Circle(x, y, knobR, r.stroke(op))
	mx, my := pointAt(x, y, knobR, 0)
	r.snk.Line(x, y, mx, my, r.stroke(op))

	r.drawComponentLabel(sw.Label, sw.Font, x, y, func(string) float64 {
		d := knobR + potLabelPad
		if sw.Scale != nil {
			d += sw.Scale.TickSize + 2
		}
		return d
	})
}

func (r *Renderer) renderCustom(c *panel.Custom, x, y float64) {
	if r.showDrills() {
		r.drawDrill(c.Mount, x, y)
	}
	if !r.showGlyphs() {
		return
	}
	op := r.glyphOpacity()
	style := r.stroke(op)

	// Generic glyph: the mount shape with a diagonal cross marking an
	// unspecified component type.
	if c.Mount != nil {
		if c.Mount.IsCircular() {
			radius := c.Mount.Diameter / 2
			r.snk.Circle(x, y, radius, style)
			x1, y1 := pointAt(x, y, radius, 45)
			x2, y2 := pointAt(x, y, radius, 225)
			r.snk.Line(x1, y1, x2, y2, style)
			x1, y1 = pointAt(x, y, radius, 135)
			x2, y2 = pointAt(x, y, radius, 315)
			r.snk.Line(x1, y1, x2, y2, style)
		} else {
			hw, hh := c.Mount.Width/2, c.Mount.Height/2
			r.snk.Rect(x-hw, y-hh, c.Mount.Width, c.Mount.Height, style)
			r.snk.Line(x-hw, y-hh, x+hw, y+hh, style)
			r.snk.Line(x-hw, y+hh, x+hw, y-hh, style)
		}
	}

	r.drawComponentLabel(c.Label, c.Font, x, y, func(string) float64 {
		if c.Mount != nil {
			return c.Mount.HalfExtent() + customLabelPad
		}
		return customLabelPad
	})
}
