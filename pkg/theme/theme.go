// Package theme holds the drawing defaults (colors, stroke widths, fonts)
// and loads user overrides from a TOML file.
package theme

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mdziemianko/amp-panel-designer/pkg/errors"
)

// Theme collects every stylistic constant the renderer needs. All lengths
// are millimeters.
type Theme struct {
	Stroke        string  `toml:"stroke"`
	StrokeWidth   float64 `toml:"stroke_width"`
	FontFamily    string  `toml:"font_family"`
	FontSize      float64 `toml:"font_size"`       // component labels
	GroupFontSize float64 `toml:"group_font_size"` // group labels
	GroupWeight   string  `toml:"group_weight"`
	DrillColor    string  `toml:"drill_color"`
	GlyphOpacity  float64 `toml:"glyph_opacity"` // glyph opacity in "both" mode
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Stroke:        "black",
		StrokeWidth:   1,
		FontFamily:    "sans-serif",
		FontSize:      4,
		GroupFontSize: 5,
		GroupWeight:   "bold",
		DrillColor:    "#cc0000",
		GlyphOpacity:  0.5,
	}
}

// Load reads a TOML theme file and overlays it on the defaults; keys absent
// from the file keep their built-in values.
func Load(path string) (Theme, error) {
	t := Default()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		if os.IsNotExist(err) {
			return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "could not find theme file %s", path)
		}
		return Theme{}, errors.Wrap(errors.ErrCodeParse, err, "parse theme file %s", path)
	}
	return t, nil
}
