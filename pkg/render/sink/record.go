package sink

// Kind identifies a primitive variant.
type Kind string

const (
	KindCircle Kind = "circle"
	KindRect   Kind = "rect"
	KindLine   Kind = "line"
	KindText   Kind = "text"
)

// Primitive is one recorded drawing call. Fields not used by the kind are
// zero: circles use X/Y/R, rects X/Y/W/H, lines X/Y/X2/Y2, text X/Y/Text.
type Primitive struct {
	Kind Kind    `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	X2   float64 `json:"x2,omitempty"`
	Y2   float64 `json:"y2,omitempty"`
	R    float64 `json:"r,omitempty"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`
	Text string  `json:"text,omitempty"`

	Style *Style     `json:"style,omitempty"`
	Font  *TextStyle `json:"font,omitempty"`
}

// Recorder is a Sink that appends every primitive to a list. It backs the
// JSON export and the geometry tests.
type Recorder struct {
	prims []Primitive
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Circle(cx, cy, radius float64, s Style) {
	r.prims = append(r.prims, Primitive{Kind: KindCircle, X: cx, Y: cy, R: radius, Style: &s})
}

func (r *Recorder) Rect(x, y, w, h float64, s Style) {
	r.prims = append(r.prims, Primitive{Kind: KindRect, X: x, Y: y, W: w, H: h, Style: &s})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, s Style) {
	r.prims = append(r.prims, Primitive{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, Style: &s})
}

func (r *Recorder) Text(text string, x, y float64, s TextStyle) {
	r.prims = append(r.prims, Primitive{Kind: KindText, X: x, Y: y, Text: text, Font: &s})
}

// Primitives returns the recorded list in emission order.
func (r *Recorder) Primitives() []Primitive { return r.prims }

// CountKind returns how many primitives of the given kind were recorded.
func (r *Recorder) CountKind(k Kind) int {
	n := 0
	for _, p := range r.prims {
		if p.Kind == k {
			n++
		}
	}
	return n
}
