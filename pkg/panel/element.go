package panel

// Common holds the fields shared by every element variant. X and Y are
// offsets in millimeters relative to the enclosing parent's origin, not to
// the panel root.
type Common struct {
	ID    string
	X, Y  float64
	Label *Label // nil when the element is unlabeled
	Font  *Font  // element-level default font, nil = theme default
}

// Base returns the shared element fields.
func (c *Common) Base() *Common { return c }

// Element is the closed set of panel node variants: Group, Potentiometer,
// Socket, Switch and Custom. Renderers switch exhaustively on the concrete
// type.
type Element interface {
	Base() *Common
}

// Group is a container element. Width and Height are optional (zero means
// undeclared); a group with a border or box-anchored label but no declared
// size silently skips drawing the parts that need it.
type Group struct {
	Common
	Width    float64
	Height   float64
	Border   *Border
	Elements []Element
}

// Potentiometer is a rotary control with an optional printed scale.
// Angles follow the user convention: 0 degrees points straight down and
// positive angles run clockwise.
type Potentiometer struct {
	Common
	Mount           *Mount
	KnobDiameter    float64
	BorderDiameter  float64
	BorderThickness float64 // 0 = no border ring drawn
	AngleStart      float64
	AngleWidth      float64
	Scale           *Scale
}

// Socket is a jack socket drawn as two concentric circles.
type Socket struct {
	Common
	Mount  *Mount
	Radius float64
}

// SwitchType discriminates the two switch renderings.
type SwitchType string

const (
	SwitchToggle SwitchType = "toggle"
	SwitchRotary SwitchType = "rotary"
)

// Switch is either a toggle (rectangular body, up to three independent
// labels) or a rotary switch (knob with ticks, analogous to a
// potentiometer but keyed off the knob diameter).
type Switch struct {
	Common
	Mount *Mount
	Type  SwitchType

	// Toggle fields
	Width       float64
	Height      float64
	LabelTop    *Label
	LabelCenter *Label
	LabelBottom *Label

	// Rotary fields
	KnobDiameter float64
	AngleStart   float64
	AngleWidth   float64
	Scale        *Scale
}

// Custom is a component of unspecified type, drawn as its mount shape with
// a diagonal cross overlay. Mount may be nil when the document declares
// neither mount data nor legacy fields.
type Custom struct {
	Common
	Mount *Mount
}
