package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdziemianko/amp-panel-designer/pkg/panel"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input]",
		Short: "Check a panel document without rendering",
		Long: `Validate parses the document, normalizes units and builds the full
element tree, reporting the first construction error it hits. On success it
prints a summary of the document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPanel(args[0])
			if err != nil {
				return err
			}

			successLine("Valid panel document", args[0])
			fmt.Println(styleTitle.Render(displayName(p)))
			summaryLine("size", fmt.Sprintf("%g x %g mm", p.Width, p.Height))
			counts := countElements(p.Elements, map[string]int{})
			for _, kind := range []string{"groups", "potentiometers", "sockets", "switches", "custom"} {
				if counts[kind] > 0 {
					summaryLine(kind, counts[kind])
				}
			}
			return nil
		},
	}
}

func displayName(p *panel.Panel) string {
	if p.Name != "" {
		return p.Name
	}
	return "(unnamed panel)"
}

// countElements tallies elements by kind, recursing into groups.
func countElements(els []panel.Element, counts map[string]int) map[string]int {
	for _, el := range els {
		switch e := el.(type) {
		case *panel.Group:
			counts["groups"]++
			countElements(e.Elements, counts)
		case *panel.Potentiometer:
			counts["potentiometers"]++
		case *panel.Socket:
			counts["sockets"]++
		case *panel.Switch:
			counts["switches"]++
		case *panel.Custom:
			counts["custom"]++
		}
	}
	return counts
}
