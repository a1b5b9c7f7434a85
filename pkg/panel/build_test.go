package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdziemianko/amp-panel-designer/pkg/errors"
)

func TestBuildMinimalPanel(t *testing.T) {
	p, err := Build(map[string]any{
		"name":   "Test",
		"width":  300.0,
		"height": 100.0,
	})
	require.NoError(t, err)

	assert.Equal(t, "Test", p.Name)
	assert.Equal(t, 300.0, p.Width)
	assert.Equal(t, 100.0, p.Height)
	assert.Equal(t, "#ffffff", p.BackgroundColor)
	assert.Equal(t, ModeShow, p.RenderMode)
	assert.Empty(t, p.Elements)
}

func TestBuildNormalizesUnits(t *testing.T) {
	p, err := Build(map[string]any{
		"width":  "30cm",
		"height": `4"`,
		"elements": []any{
			map[string]any{"type": "potentiometer", "x": "1in", "y": 10},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 300.0, p.Width, 1e-9)
	assert.InDelta(t, 101.6, p.Height, 1e-9)
	assert.InDelta(t, 25.4, p.Elements[0].Base().X, 1e-9)
}

func TestBuildRequiresSize(t *testing.T) {
	_, err := Build(map[string]any{"width": 100.0})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidDimension, errors.GetCode(err))
}

func TestBuildRejectsBadDimension(t *testing.T) {
	_, err := Build(map[string]any{
		"width":  100.0,
		"height": 50.0,
		"elements": []any{
			map[string]any{"type": "socket", "x": "abcmm"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidDimension, errors.GetCode(err))
}

func TestBuildUnknownElementType(t *testing.T) {
	_, err := Build(map[string]any{
		"width":  100.0,
		"height": 50.0,
		"elements": []any{
			map[string]any{"type": "dial"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownElementType, errors.GetCode(err))
}

func TestBuildRenderMode(t *testing.T) {
	p, err := Build(map[string]any{"width": 10.0, "height": 10.0, "render_mode": "both"})
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, p.RenderMode)

	_, err = Build(map[string]any{"width": 10.0, "height": 10.0, "render_mode": "ghost"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRenderMode, errors.GetCode(err))
}

func TestBuildPotentiometerDefaults(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{"type": "potentiometer", "x": 50, "y": 50},
		},
	})
	require.NoError(t, err)

	pot, ok := p.Elements[0].(*Potentiometer)
	require.True(t, ok)
	assert.Equal(t, DefaultKnobDiameter, pot.KnobDiameter)
	assert.Equal(t, DefaultBorderDiameter, pot.BorderDiameter)
	assert.Zero(t, pot.BorderThickness)
	assert.Equal(t, DefaultAngleStart, pot.AngleStart)
	assert.Equal(t, DefaultAngleWidth, pot.AngleWidth)
	assert.Nil(t, pot.Scale)
	require.NotNil(t, pot.Mount)
	assert.Equal(t, DefaultPotMountDiameter, pot.Mount.Diameter)
	assert.NotEmpty(t, pot.ID)
}

func TestBuildLegacyRadiusMigration(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{"type": "potentiometer", "radius": 15},
		},
	})
	require.NoError(t, err)

	pot := p.Elements[0].(*Potentiometer)
	assert.Equal(t, 30.0, pot.KnobDiameter, "legacy radius doubles into knob_diameter")
}

func TestBuildKnobDiameterWinsOverRadius(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{"type": "potentiometer", "knob_diameter": 22, "radius": 15},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 22.0, p.Elements[0].(*Potentiometer).KnobDiameter)
}

func TestBuildLabelShorthand(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{"type": "socket", "label": "INPUT"},
		},
	})
	require.NoError(t, err)

	l := p.Elements[0].(*Socket).Label
	require.NotNil(t, l)
	assert.Equal(t, "INPUT", l.Text)
	assert.Equal(t, DefaultComponentLabelPosition, l.Position)
	assert.Nil(t, l.Distance)
}

func TestBuildStructuredLabel(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{
				"type": "socket",
				"label": map[string]any{
					"text":     "OUT",
					"position": "right-outside",
					"distance": "1cm",
					"font":     map[string]any{"family": "Futura", "size": 6, "weight": "bold"},
				},
			},
		},
	})
	require.NoError(t, err)

	l := p.Elements[0].(*Socket).Label
	require.NotNil(t, l)
	assert.Equal(t, "OUT", l.Text)
	assert.Equal(t, "right-outside", l.Position)
	require.NotNil(t, l.Distance)
	assert.InDelta(t, 10.0, *l.Distance, 1e-9)
	require.NotNil(t, l.Font)
	assert.Equal(t, "Futura", l.Font.Family)
	assert.Equal(t, 6.0, l.Font.Size)
	assert.Equal(t, "bold", l.Font.Weight)
}

func TestBuildLegacyLabelPosition(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{"type": "socket", "label": "A", "label_position": "top-outside"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "top-outside", p.Elements[0].(*Socket).Label.Position)
}

func TestBuildLegacyLabelPositionLosesToExplicit(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{
				"type":           "socket",
				"label":          map[string]any{"text": "A", "position": "left-outside"},
				"label_position": "top-outside",
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "left-outside", p.Elements[0].(*Socket).Label.Position)
}

func TestBuildGroupNesting(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 300.0, "height": 100.0,
		"elements": []any{
			map[string]any{
				"type": "group", "x": 10, "y": 10, "width": 150, "height": 60,
				"label":  "PREAMP",
				"border": map[string]any{"type": "full", "style": "dashed", "thickness": 0.5},
				"elements": []any{
					map[string]any{"type": "potentiometer", "x": 30, "y": 30},
					map[string]any{
						"type": "group",
						"elements": []any{
							map[string]any{"type": "socket"},
						},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	g := p.Elements[0].(*Group)
	assert.Equal(t, 150.0, g.Width)
	require.NotNil(t, g.Border)
	assert.Equal(t, BorderFull, g.Border.Type)
	assert.Equal(t, BorderDashed, g.Border.Style)
	assert.Equal(t, 0.5, g.Border.Thickness)
	assert.Equal(t, DefaultGroupLabelPosition, g.Label.Position)
	require.Len(t, g.Elements, 2)

	inner := g.Elements[1].(*Group)
	assert.Zero(t, inner.Width, "undeclared group size stays zero")
	require.Len(t, inner.Elements, 1)
}

func TestBuildToggleSwitchLabels(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{
				"type":         "switch",
				"label_top":    "ON",
				"label_center": map[string]any{"text": "MID", "distance": 4},
				"label_bottom": "OFF",
			},
		},
	})
	require.NoError(t, err)

	sw := p.Elements[0].(*Switch)
	assert.Equal(t, SwitchToggle, sw.Type)
	assert.Equal(t, DefaultSwitchWidth, sw.Width)
	assert.Equal(t, DefaultSwitchHeight, sw.Height)
	require.NotNil(t, sw.LabelTop)
	assert.Equal(t, "top-outside", sw.LabelTop.Position)
	require.NotNil(t, sw.LabelCenter)
	assert.Equal(t, "center", sw.LabelCenter.Position)
	require.NotNil(t, sw.LabelBottom)
	assert.Equal(t, "bottom-outside", sw.LabelBottom.Position)
}

func TestBuildRotarySwitchScale(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{
				"type":        "switch",
				"switch_type": "rotary",
				"angle_start": 90,
				"angle_width": 180,
				"scale": map[string]any{
					"num_ticks":           3,
					"major_tick_interval": 1,
					"labels":              []any{"LO", "MID", "HI"},
				},
			},
		},
	})
	require.NoError(t, err)

	sw := p.Elements[0].(*Switch)
	assert.Equal(t, SwitchRotary, sw.Type)
	assert.Equal(t, DefaultKnobDiameter, sw.KnobDiameter)
	assert.Equal(t, 90.0, sw.AngleStart)
	assert.Equal(t, 180.0, sw.AngleWidth)
	require.NotNil(t, sw.Scale)
	assert.Equal(t, 3, sw.Scale.NumTicks)
	assert.Equal(t, []string{"LO", "MID", "HI"}, sw.Scale.Labels)
}

func TestBuildUnknownSwitchType(t *testing.T) {
	_, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{"type": "switch", "switch_type": "slider"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownElementType, errors.GetCode(err))
}

func TestBuildScaleDefaults(t *testing.T) {
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{
			map[string]any{"type": "potentiometer", "scale": map[string]any{}},
		},
	})
	require.NoError(t, err)

	sc := p.Elements[0].(*Potentiometer).Scale
	require.NotNil(t, sc)
	assert.Equal(t, DefaultNumTicks, sc.NumTicks)
	assert.Equal(t, 1, sc.MajorTickInterval)
	assert.Equal(t, TickLine, sc.TickStyle)
	assert.Equal(t, DefaultTickSize, sc.TickSize)
	assert.Equal(t, ScaleOutside, sc.Position)
}

func TestScaleIsMajor(t *testing.T) {
	s := &Scale{MajorTickInterval: 5}
	assert.True(t, s.IsMajor(0))
	assert.False(t, s.IsMajor(3))
	assert.True(t, s.IsMajor(5))
	assert.True(t, s.IsMajor(10))
}
