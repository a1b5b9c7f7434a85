package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdziemianko/amp-panel-designer/pkg/errors"
	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
	"github.com/mdziemianko/amp-panel-designer/pkg/render"
	"github.com/mdziemianko/amp-panel-designer/pkg/render/sink"
	"github.com/mdziemianko/amp-panel-designer/pkg/theme"
)

// pngScale is the rasterization factor for PNG export. At 2x a 300mm panel
// comes out around 2270px wide, enough for print proofs.
const pngScale = 2.0

func newRenderCmd() *cobra.Command {
	var (
		output    string
		formats   []string
		themePath string
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "render [input] [output]",
		Short: "Render a panel document to a drawing",
		Long: `Render reads a YAML panel document and produces a to-scale drawing.

Output formats (repeat -f or comma-separate):
  svg   Scalable vector graphics (default)
  json  Flat list of drawing primitives
  pdf   Via rsvg-convert (requires librsvg)
  png   Via rsvg-convert (requires librsvg)

When no output path is given the input path with a swapped extension is
used. With multiple formats the output path only contributes its base name.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				output = args[1]
			}
			fmts, err := normalizeFormats(formats)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], output, fmts, themePath, mode)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{"svg"}, "output formats: svg, json, pdf, png")
	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "TOML theme file overriding drawing defaults")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "render mode override: show, hide, both")

	return cmd
}

func runRender(ctx context.Context, input, output string, formats []string, themePath, mode string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, err := loadPanel(input)
	if err != nil {
		return err
	}
	logger.Debug("built document tree", "elements", len(p.Elements), "width", p.Width, "height", p.Height)

	th := theme.Default()
	if themePath != "" {
		th, err = theme.Load(themePath)
		if err != nil {
			return err
		}
	}

	var opts []render.Option
	if mode != "" {
		m := panel.RenderMode(mode)
		if m != panel.ModeShow && m != panel.ModeHide && m != panel.ModeBoth {
			return errors.New(errors.ErrCodeInvalidRenderMode, "invalid render mode %q: want show, hide or both", mode)
		}
		opts = append(opts, render.WithMode(m))
	}

	for _, format := range formats {
		path := outputPath(output, input, format, len(formats) > 1)
		data, err := renderAs(p, th, format, opts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
		}
		successLine("Rendered", path)
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	return nil
}

// renderAs runs one full render pass and encodes the result in the given
// format. Renderers are single-use, so each format gets a fresh pass.
func renderAs(p *panel.Panel, th theme.Theme, format string, opts []render.Option) ([]byte, error) {
	if format == "json" {
		rec := sink.NewRecorder()
		if err := render.New(p, th, rec, opts...).Render(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := sink.WriteJSON(&buf, p.Width, p.Height, p.BackgroundColor, rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding json")
		}
		return buf.Bytes(), nil
	}

	svg := sink.NewSVG(p.Width, p.Height, p.BackgroundColor)
	if err := render.New(p, th, svg, opts...).Render(); err != nil {
		return nil, err
	}

	switch format {
	case "svg":
		return svg.Bytes(), nil
	case "pdf":
		return sink.ToPDF(svg.Bytes())
	case "png":
		return sink.ToPNG(svg.Bytes(), pngScale)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q: want svg, json, pdf or png", format)
	}
}

// loadPanel reads, parses and builds a panel document.
func loadPanel(path string) (*panel.Panel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "could not find file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parsing %s", path)
	}
	return panel.Build(doc)
}

// normalizeFormats splits comma-separated format values and validates each
// against the supported set.
func normalizeFormats(raw []string) ([]string, error) {
	valid := map[string]bool{"svg": true, "json": true, "pdf": true, "png": true}

	var formats []string
	seen := map[string]bool{}
	for _, v := range raw {
		for _, f := range strings.Split(v, ",") {
			f = strings.ToLower(strings.TrimSpace(f))
			if f == "" {
				continue
			}
			if !valid[f] {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q: want svg, json, pdf or png", f)
			}
			if !seen[f] {
				seen[f] = true
				formats = append(formats, f)
			}
		}
	}
	if len(formats) == 0 {
		formats = []string{"svg"}
	}
	return formats, nil
}

// outputPath derives the output file path for one format. An explicit
// single-format output path is used as-is; otherwise the extension is
// swapped on the output base name (or the input's, if none was given).
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := input
	if output != "" {
		base = output
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}
