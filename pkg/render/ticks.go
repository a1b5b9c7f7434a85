package render

import (
	"math"

	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
)

// Clearance between the reference radius and the start of a tick.
const tickClearance = 1.0

// pointAt converts a user-convention angle (0 degrees = straight down,
// clockwise positive) to a point at the given radius. The +90 degree
// rotation maps the user frame onto the screen atan2 frame (0 = +x,
// clockwise because y grows downward).
func pointAt(cx, cy, radius, userDeg float64) (float64, float64) {
	rad := (userDeg + 90) * math.Pi / 180
	return cx + radius*math.Cos(rad), cy + radius*math.Sin(rad)
}

// drawTicks emits the scale ticks around a rotary component. baseR is the
// reference radius (border radius for potentiometers, knob radius for
// rotary switches). Ticks are spaced evenly over angleWidth starting at
// angleStart; a single tick gets no angular step. Per-tick labels, when
// present, align by index and ticks beyond the label list get none.
func (r *Renderer) drawTicks(cx, cy, baseR float64, sc *panel.Scale, angleStart, angleWidth, opacity float64) {
	if sc == nil || sc.NumTicks < 1 {
		return
	}

	step := 0.0
	if sc.NumTicks > 1 {
		step = angleWidth / float64(sc.NumTicks-1)
	}

	style := r.stroke(opacity)
	for i := 0; i < sc.NumTicks; i++ {
		angle := angleStart + float64(i)*step
		length := sc.TickSize
		if !sc.IsMajor(i) {
			length /= 2
		}

		inner, outer := tickSpan(baseR, length, sc.Position)
		if sc.TickStyle == panel.TickDot {
			// Dot radius scales with the same minor/major ratio as line
			// tick lengths.
			dx, dy := pointAt(cx, cy, (inner+outer)/2, angle)
			r.snk.Circle(dx, dy, length/2, fillStyle(r.theme.Stroke, opacity))
		} else {
			x1, y1 := pointAt(cx, cy, inner, angle)
			x2, y2 := pointAt(cx, cy, outer, angle)
			r.snk.Line(x1, y1, x2, y2, style)
		}

		if i < len(sc.Labels) && sc.Labels[i] != "" {
			r.drawTickLabel(cx, cy, baseR, sc, angle, sc.Labels[i], opacity)
		}
	}
}

// tickSpan computes the radial interval a full-length tick occupies for
// the given scale position: outside ticks start one clearance unit beyond
// the reference radius, inside ticks end one unit short of it, and inline
// ticks straddle it.
func tickSpan(baseR, length float64, pos panel.ScalePosition) (inner, outer float64) {
	switch pos {
	case panel.ScaleInside:
		return baseR - tickClearance - length, baseR - tickClearance
	case panel.ScaleInline:
		return baseR - length/2, baseR + length/2
	default: // outside
		return baseR + tickClearance, baseR + tickClearance + length
	}
}

// drawTickLabel places a per-tick label just beyond the outermost tick
// extent, centered on the tick's radial direction.
func (r *Renderer) drawTickLabel(cx, cy, baseR float64, sc *panel.Scale, angle float64, text string, opacity float64) {
	var outward float64
	switch sc.Position {
	case panel.ScaleInside:
		outward = 0
	case panel.ScaleInline:
		outward = sc.TickSize / 2
	default:
		outward = tickClearance + sc.TickSize
	}

	ts := r.theme
	labelR := baseR + outward + gapPadding + ts.FontSize/2
	x, y := pointAt(cx, cy, labelR, angle)
	r.snk.Text(text, x, y+baselineCenter*ts.FontSize, r.tickLabelStyle(opacity))
}
