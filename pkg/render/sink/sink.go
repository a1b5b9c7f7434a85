package sink

// Style describes how a shape primitive is painted. The zero value means
// no fill, no stroke, fully opaque.
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Dash        string  `json:"dash,omitempty"`    // stroke-dasharray, "" = solid
	Opacity     float64 `json:"opacity,omitempty"` // 0 means default (opaque)
}

// TextStyle describes how a text primitive is painted. Anchor follows SVG
// text-anchor semantics: start, middle or end.
type TextStyle struct {
	Family  string  `json:"family,omitempty"`
	Size    float64 `json:"size,omitempty"`
	Weight  string  `json:"weight,omitempty"`
	Anchor  string  `json:"anchor,omitempty"`
	Fill    string  `json:"fill,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Sink accepts primitive drawing calls in emission order. Coordinates are
// absolute panel millimeters.
type Sink interface {
	Circle(cx, cy, r float64, s Style)
	Rect(x, y, w, h float64, s Style)
	Line(x1, y1, x2, y2 float64, s Style)
	Text(text string, x, y float64, s TextStyle)
}
