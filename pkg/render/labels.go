package render

import (
	"strings"
)

// Placement is the computed absolute anchor point and alignment for a
// label.
type Placement struct {
	X, Y   float64
	Anchor string // SVG text-anchor: start, middle, end
}

// Gap is the interval an inline label carves out of the border edge it
// sits on. For horizontal edges From/To are x coordinates, for vertical
// edges y coordinates.
type Gap struct {
	Side     string
	From, To float64
}

const (
	// baselineDrop approximates the cap-height-to-baseline offset so the
	// visual gap from the reference edge is even top vs bottom.
	baselineDrop = 0.7
	// baselineCenter approximates vertical centering of the baseline.
	baselineCenter = 0.35
	// charWidthRatio is the monospace-average text width heuristic. Not a
	// text-shaping engine; adequate for schematic labels.
	charWidthRatio = 0.6
	// gapPadding is the clearance either side of an inline label, in mm.
	gapPadding = 2.0
)

// estimateTextWidth returns the heuristic width of text at fontSize.
func estimateTextWidth(text string, fontSize float64) float64 {
	return float64(len(text)) * fontSize * charWidthRatio
}

var validSides = map[string]bool{"top": true, "bottom": true, "left": true, "right": true, "center": true}
var validModes = map[string]bool{"outside": true, "inside": true, "inline": true}

// parsePosition splits a "{side}-{mode}" descriptor. A bare "center" is
// accepted; anything malformed falls back to bottom-outside.
func parsePosition(desc string) (side, mode string) {
	side, mode = "bottom", "outside"
	parts := strings.SplitN(desc, "-", 2)
	switch len(parts) {
	case 1:
		if parts[0] == "center" {
			side = "center"
		}
	case 2:
		if validSides[parts[0]] && validModes[parts[1]] {
			side, mode = parts[0], parts[1]
		}
	}
	return side, mode
}

// placeLabel computes the absolute anchor for a label relative to a
// reference point (edge midpoint for groups, component center otherwise).
// distance is the resolved offset in mm. For inline mode the returned Gap
// describes the border interval the label interrupts; every other mode
// returns a nil Gap.
func placeLabel(refX, refY float64, side, mode string, distance, fontSize float64, text string) (Placement, *Gap) {
	p := Placement{X: refX, Y: refY, Anchor: "middle"}

	switch side {
	case "center":
		p.Y = refY + baselineCenter*fontSize
		return p, nil
	case "top":
		switch mode {
		case "inside":
			p.Y = refY + distance + baselineDrop*fontSize
		case "inline":
			p.Y = refY + baselineCenter*fontSize
			return p, horizontalGap("top", refX, fontSize, text)
		default:
			p.Y = refY - distance
		}
	case "bottom":
		switch mode {
		case "inside":
			p.Y = refY - distance
		case "inline":
			p.Y = refY + baselineCenter*fontSize
			return p, horizontalGap("bottom", refX, fontSize, text)
		default:
			p.Y = refY + distance + baselineDrop*fontSize
		}
	case "left":
		p.Y = refY + baselineCenter*fontSize
		switch mode {
		case "inside":
			p.Anchor = "start"
			p.X = refX + distance
		case "inline":
			return p, verticalGap("left", refY, fontSize)
		default:
			p.Anchor = "end"
			p.X = refX - distance
		}
	case "right":
		p.Y = refY + baselineCenter*fontSize
		switch mode {
		case "inside":
			p.Anchor = "end"
			p.X = refX - distance
		case "inline":
			return p, verticalGap("right", refY, fontSize)
		default:
			p.Anchor = "start"
			p.X = refX + distance
		}
	}
	return p, nil
}

func horizontalGap(side string, center, fontSize float64, text string) *Gap {
	half := estimateTextWidth(text, fontSize)/2 + gapPadding
	return &Gap{Side: side, From: center - half, To: center + half}
}

// verticalGap sizes the carve-out on a vertical edge by font height rather
// than text width, since the text runs across the edge.
func verticalGap(side string, center, fontSize float64) *Gap {
	half := fontSize/2 + gapPadding
	return &Gap{Side: side, From: center - half, To: center + half}
}
