package render

import (
	"math"
	"testing"

	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
	"github.com/mdziemianko/amp-panel-designer/pkg/render/sink"
	"github.com/mdziemianko/amp-panel-designer/pkg/theme"
)

func testRenderer(mode panel.RenderMode) (*Renderer, *sink.Recorder) {
	rec := sink.NewRecorder()
	return &Renderer{theme: theme.Default(), snk: rec, mode: mode}, rec
}

func TestPointAt(t *testing.T) {
	tests := []struct {
		deg          float64
		wantX, wantY float64
	}{
		{0, 0, 10},    // straight down
		{90, -10, 0},  // quarter turn clockwise lands on the left
		{180, 0, -10}, // straight up
		{270, 10, 0},
	}
	for _, tt := range tests {
		x, y := pointAt(0, 0, 10, tt.deg)
		if !near(x, tt.wantX) || !near(y, tt.wantY) {
			t.Errorf("pointAt(0, 0, 10, %g) = (%g, %g), want (%g, %g)", tt.deg, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestTickSpan(t *testing.T) {
	tests := []struct {
		pos                  panel.ScalePosition
		wantInner, wantOuter float64
	}{
		{panel.ScaleOutside, 13.5, 15.5},
		{panel.ScaleInside, 9.5, 10.5},
		{panel.ScaleInline, 11.5, 13.5},
	}
	for _, tt := range tests {
		inner, outer := tickSpan(12.5, 2, tt.pos)
		if !near(inner, tt.wantInner) || !near(outer, tt.wantOuter) {
			t.Errorf("tickSpan(12.5, 2, %s) = (%g, %g), want (%g, %g)",
				tt.pos, inner, outer, tt.wantInner, tt.wantOuter)
		}
	}
}

func TestDrawTicksCountAndLengths(t *testing.T) {
	r, rec := testRenderer(panel.ModeShow)
	sc := &panel.Scale{NumTicks: 11, MajorTickInterval: 2, TickStyle: panel.TickLine, TickSize: 2, Position: panel.ScaleOutside}

	r.drawTicks(50, 50, 12.5, sc, 135, 270, 0)

	lines := rec.CountKind(sink.KindLine)
	if lines != 11 {
		t.Fatalf("line count = %d, want 11", lines)
	}

	// Even indices are major (full tick_size), odd are half length.
	major, minor := 0, 0
	for _, p := range rec.Primitives() {
		l := math.Hypot(p.X2-p.X, p.Y2-p.Y)
		switch {
		case near(l, 2):
			major++
		case near(l, 1):
			minor++
		}
	}
	if major != 6 || minor != 5 {
		t.Errorf("major/minor = %d/%d, want 6/5", major, minor)
	}
}

func TestDrawTicksSingleTick(t *testing.T) {
	r, rec := testRenderer(panel.ModeShow)
	sc := &panel.Scale{NumTicks: 1, MajorTickInterval: 1, TickStyle: panel.TickLine, TickSize: 2, Position: panel.ScaleOutside}

	// One tick sits exactly at angle_start regardless of angle_width.
	r.drawTicks(0, 0, 10, sc, 0, 270, 0)

	prims := rec.Primitives()
	if len(prims) != 1 {
		t.Fatalf("primitive count = %d, want 1", len(prims))
	}
	p := prims[0]
	if !near(p.X, 0) || !near(p.Y, 11) || !near(p.X2, 0) || !near(p.Y2, 13) {
		t.Errorf("tick at angle 0 = (%g,%g)-(%g,%g), want (0,11)-(0,13)", p.X, p.Y, p.X2, p.Y2)
	}
}

func TestDrawTicksDotStyle(t *testing.T) {
	r, rec := testRenderer(panel.ModeShow)
	sc := &panel.Scale{NumTicks: 5, MajorTickInterval: 2, TickStyle: panel.TickDot, TickSize: 2, Position: panel.ScaleOutside}

	r.drawTicks(0, 0, 10, sc, 135, 270, 0)

	if got := rec.CountKind(sink.KindCircle); got != 5 {
		t.Fatalf("dot count = %d, want 5", got)
	}
	// Dot radius scales with the minor/major length ratio.
	var radii []float64
	for _, p := range rec.Primitives() {
		radii = append(radii, p.R)
	}
	for i, got := range radii {
		want := 1.0
		if i%2 != 0 {
			want = 0.5
		}
		if !near(got, want) {
			t.Errorf("dot %d radius = %g, want %g", i, got, want)
		}
	}
}

func TestDrawTicksLabels(t *testing.T) {
	r, rec := testRenderer(panel.ModeShow)
	sc := &panel.Scale{
		NumTicks:          5,
		MajorTickInterval: 1,
		TickStyle:         panel.TickLine,
		TickSize:          2,
		Position:          panel.ScaleOutside,
		Labels:            []string{"0", "", "5"},
	}

	r.drawTicks(0, 0, 10, sc, 135, 270, 0)

	// Only non-empty labels within the tick count are drawn; ticks past the
	// list end get none.
	if got := rec.CountKind(sink.KindText); got != 2 {
		t.Errorf("label count = %d, want 2", got)
	}
}
