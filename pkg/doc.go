// Package pkg provides the core libraries for the amp panel designer.
//
// # Overview
//
// The panel designer turns a declarative YAML description of an instrument
// front panel into a to-scale SVG drawing suitable for fabrication. The pkg
// directory is organized by pipeline stage:
//
//  1. [units] - Dimension literal normalization into canonical millimeters
//  2. [panel] - Typed document model and the tree builder
//  3. [theme] - TOML drawing theme (colors, strokes, fonts)
//  4. [render] - Geometry renderers, label placement, coordinate resolution
//  5. [render/sink] - Drawing sinks (SVG, primitive recorder, JSON, PDF/PNG)
//  6. [errors] - Structured error codes shared by CLI and pipeline
//
// # Architecture
//
// The data flow for a render:
//
//	YAML document (nested mapping)
//	         ↓
//	    [panel] package (normalize units, build typed tree)
//	         ↓
//	    [render] package (resolve coordinates, place labels, emit geometry)
//	         ↓
//	    [render/sink] package (SVG/JSON/PDF/PNG output)
//
// Construction and rendering are strictly sequential phases: a build failure
// aborts before any drawing primitive is emitted, so no partial output file
// is ever written.
//
// # Quick Start
//
//	doc := map[string]any{}
//	_ = yaml.Unmarshal(data, &doc)
//
//	p, err := panel.Build(doc)
//	if err != nil {
//	    return err
//	}
//
//	svg := sink.NewSVG(p.Width, p.Height, p.BackgroundColor)
//	if err := render.New(p, theme.Default(), svg).Render(); err != nil {
//	    return err
//	}
//	out := svg.Bytes()
//
// [units]: https://pkg.go.dev/github.com/mdziemianko/amp-panel-designer/pkg/units
// [panel]: https://pkg.go.dev/github.com/mdziemianko/amp-panel-designer/pkg/panel
// [theme]: https://pkg.go.dev/github.com/mdziemianko/amp-panel-designer/pkg/theme
// [render]: https://pkg.go.dev/github.com/mdziemianko/amp-panel-designer/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/mdziemianko/amp-panel-designer/pkg/render/sink
// [errors]: https://pkg.go.dev/github.com/mdziemianko/amp-panel-designer/pkg/errors
package pkg
