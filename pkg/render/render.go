package render

import (
	"github.com/mdziemianko/amp-panel-designer/pkg/errors"
	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
	"github.com/mdziemianko/amp-panel-designer/pkg/render/sink"
	"github.com/mdziemianko/amp-panel-designer/pkg/theme"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMode overrides the panel's declared render mode.
func WithMode(m panel.RenderMode) Option {
	return func(r *Renderer) { r.mode = m }
}

// Renderer performs one depth-first pass over an immutable panel tree,
// emitting drawing primitives into a sink. A renderer is single-use and
// not safe for concurrent use; rendering is strictly synchronous.
type Renderer struct {
	panel *panel.Panel
	theme theme.Theme
	snk   sink.Sink
	mode  panel.RenderMode
}

// New creates a renderer for the given panel, theme and sink.
func New(p *panel.Panel, t theme.Theme, s sink.Sink, opts ...Option) *Renderer {
	r := &Renderer{panel: p, theme: t, snk: s, mode: p.RenderMode}
	for _, opt := range opts {
		opt(r)
	}
	if r.mode == "" {
		r.mode = panel.ModeShow
	}
	return r
}

// Render walks the tree and emits all primitives. The traversal is purely
// additive: each child's absolute position is the parent origin plus the
// child's declared offset.
func (r *Renderer) Render() error {
	return r.renderElements(r.panel.Elements, 0, 0)
}

func (r *Renderer) renderElements(els []panel.Element, originX, originY float64) error {
	for _, el := range els {
		base := el.Base()
		x, y := originX+base.X, originY+base.Y

		switch e := el.(type) {
		case *panel.Group:
			if err := r.renderGroup(e, x, y); err != nil {
				return err
			}
		case *panel.Potentiometer:
			r.renderPotentiometer(e, x, y)
		case *panel.Socket:
			r.renderSocket(e, x, y)
		case *panel.Switch:
			r.renderSwitch(e, x, y)
		case *panel.Custom:
			r.renderCustom(e, x, y)
		default:
			return errors.New(errors.ErrCodeInternal, "unhandled element variant %T", el)
		}
	}
	return nil
}

func (r *Renderer) renderGroup(g *panel.Group, x, y float64) error {
	if r.showGlyphs() {
		var gap *Gap
		var placed *placedLabel
		if g.Label != nil && g.Width > 0 && g.Height > 0 {
			placed = r.placeGroupLabel(g, x, y)
			gap = placed.gap
		}
		r.drawBorder(g, x, y, gap)
		if placed != nil {
			r.snk.Text(g.Label.Text, placed.p.X, placed.p.Y, placed.style)
		}
	}
	return r.renderElements(g.Elements, x, y)
}

// showGlyphs reports whether finished-component artwork is drawn.
func (r *Renderer) showGlyphs() bool {
	return r.mode == panel.ModeShow || r.mode == panel.ModeBoth
}

// showDrills reports whether the manufacturing drill layer is drawn.
func (r *Renderer) showDrills() bool {
	return r.mode == panel.ModeHide || r.mode == panel.ModeBoth
}

// glyphOpacity is the opacity applied to component glyphs: reduced in
// "both" mode so drill marks stay visible underneath, opaque otherwise.
func (r *Renderer) glyphOpacity() float64 {
	if r.mode == panel.ModeBoth {
		return r.theme.GlyphOpacity
	}
	return 0
}

// stroke is the standard outline style at the given opacity.
func (r *Renderer) stroke(opacity float64) sink.Style {
	return sink.Style{
		Stroke:      r.theme.Stroke,
		StrokeWidth: r.theme.StrokeWidth,
		Opacity:     opacity,
	}
}

// placedLabel bundles a computed label placement with its resolved text
// style and the border gap it causes, if inline.
type placedLabel struct {
	p     Placement
	style sink.TextStyle
	gap   *Gap
}

// placeGroupLabel anchors the group label on the midpoint of the edge its
// side descriptor names. Callers must ensure the group has a declared size.
func (r *Renderer) placeGroupLabel(g *panel.Group, x, y float64) *placedLabel {
	side, mode := parsePosition(g.Label.Position)
	style := r.textStyle(g.Label, g.Font, true, r.glyphOpacity())

	refX, refY := x+g.Width/2, y
	switch side {
	case "bottom":
		refY = y + g.Height
	case "left":
		refX, refY = x, y+g.Height/2
	case "right":
		refX, refY = x+g.Width, y+g.Height/2
	case "center":
		refY = y + g.Height/2
	}

	distance := defaultGroupLabelDistance
	if g.Label.Distance != nil {
		distance = *g.Label.Distance
	}

	p, gap := placeLabel(refX, refY, side, mode, distance, style.Size, g.Label.Text)
	return &placedLabel{p: p, style: style, gap: gap}
}

// defaultGroupLabelDistance is the offset of a group label from its edge
// when the document does not override it.
const defaultGroupLabelDistance = 2.0

// drawComponentLabel emits a component label anchored on the component
// center. defaultDistance resolves the type-specific offset for the parsed
// side when the label carries no explicit distance.
func (r *Renderer) drawComponentLabel(l *panel.Label, elemFont *panel.Font, cx, cy float64, defaultDistance func(side string) float64) {
	if l == nil || l.Text == "" {
		return
	}
	side, mode := parsePosition(l.Position)
	style := r.textStyle(l, elemFont, false, r.glyphOpacity())

	distance := defaultDistance(side)
	if l.Distance != nil {
		distance = *l.Distance
	}

	p, _ := placeLabel(cx, cy, side, mode, distance, style.Size, l.Text)
	r.snk.Text(l.Text, p.X, p.Y, style)
}

// textStyle resolves the font cascade: per-label override, then the
// element-level font, then the theme default.
func (r *Renderer) textStyle(l *panel.Label, elemFont *panel.Font, group bool, opacity float64) sink.TextStyle {
	ts := sink.TextStyle{
		Family:  r.theme.FontFamily,
		Size:    r.theme.FontSize,
		Anchor:  "middle",
		Opacity: opacity,
	}
	if group {
		ts.Size = r.theme.GroupFontSize
		ts.Weight = r.theme.GroupWeight
	}
	for _, f := range []*panel.Font{elemFont, l.Font} {
		if f == nil {
			continue
		}
		if f.Family != "" {
			ts.Family = f.Family
		}
		if f.Size > 0 {
			ts.Size = f.Size
		}
		if f.Weight != "" {
			ts.Weight = f.Weight
		}
	}
	return ts
}
