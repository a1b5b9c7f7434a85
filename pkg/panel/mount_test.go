package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdziemianko/amp-panel-designer/pkg/errors"
)

func buildSingle(t *testing.T, elem map[string]any) (Element, error) {
	t.Helper()
	p, err := Build(map[string]any{
		"width": 100.0, "height": 100.0,
		"elements": []any{elem},
	})
	if err != nil {
		return nil, err
	}
	return p.Elements[0], nil
}

func TestMountExplicitBlockWins(t *testing.T) {
	// An explicit mount block shadows the legacy flat fields entirely.
	el, err := buildSingle(t, map[string]any{
		"type":             "potentiometer",
		"install_diameter": 8,
		"mount":            map[string]any{"diameter": 12},
	})
	require.NoError(t, err)

	m := el.(*Potentiometer).Mount
	require.NotNil(t, m)
	assert.Equal(t, 12.0, m.Diameter)
}

func TestMountLegacyFlatFields(t *testing.T) {
	el, err := buildSingle(t, map[string]any{
		"type":             "socket",
		"install_diameter": 9,
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, el.(*Socket).Mount.Diameter)

	el, err = buildSingle(t, map[string]any{
		"type":         "switch",
		"mount_width":  6,
		"mount_height": 12,
	})
	require.NoError(t, err)

	m := el.(*Switch).Mount
	require.NotNil(t, m)
	assert.False(t, m.IsCircular())
	assert.Equal(t, 6.0, m.Width)
	assert.Equal(t, 12.0, m.Height)
}

func TestMountTypeDefaults(t *testing.T) {
	tests := []struct {
		typ  string
		want float64
	}{
		{"potentiometer", DefaultPotMountDiameter},
		{"socket", DefaultSocketMountDiameter},
		{"switch", DefaultSwitchMountDiameter},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			el, err := buildSingle(t, map[string]any{"type": tt.typ})
			require.NoError(t, err)

			var m *Mount
			switch e := el.(type) {
			case *Potentiometer:
				m = e.Mount
			case *Socket:
				m = e.Mount
			case *Switch:
				m = e.Mount
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.want, m.Diameter)
		})
	}
}

func TestMountCustomHasNoDefault(t *testing.T) {
	el, err := buildSingle(t, map[string]any{"type": "custom"})
	require.NoError(t, err)
	assert.Nil(t, el.(*Custom).Mount)
}

func TestMountInvariantDiameterAndSize(t *testing.T) {
	_, err := buildSingle(t, map[string]any{
		"type":  "potentiometer",
		"mount": map[string]any{"diameter": 5, "width": 3},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeMountInvariant, errors.GetCode(err))
}

func TestMountInvariantHalfRectangle(t *testing.T) {
	_, err := buildSingle(t, map[string]any{
		"type":  "switch",
		"mount": map[string]any{"width": 6},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeMountInvariant, errors.GetCode(err))
}

func TestMountEmptyBlockFallsToDefault(t *testing.T) {
	// An empty mount block on a type with a default diameter is fine.
	el, err := buildSingle(t, map[string]any{
		"type":  "socket",
		"mount": map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultSocketMountDiameter, el.(*Socket).Mount.Diameter)
}

func TestMountEmptyBlockOnCustomFails(t *testing.T) {
	// Custom has no default, so an empty block declares nothing drillable.
	_, err := buildSingle(t, map[string]any{
		"type":  "custom",
		"mount": map[string]any{},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeMountInvariant, errors.GetCode(err))
}

func TestMountHalfExtent(t *testing.T) {
	assert.Equal(t, 5.0, (&Mount{Diameter: 10}).HalfExtent())
	assert.Equal(t, 6.0, (&Mount{Width: 8, Height: 12}).HalfExtent())
	assert.Equal(t, 4.0, (&Mount{Width: 8, Height: 12}).HalfWidth())
	assert.Equal(t, 6.0, (&Mount{Width: 8, Height: 12}).HalfHeight())
	assert.True(t, (&Mount{Diameter: 10}).IsCircular())
	assert.False(t, (&Mount{Width: 8, Height: 12}).IsCircular())
}
