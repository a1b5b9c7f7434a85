package panel

// RenderMode selects which layers of the drawing are emitted.
type RenderMode string

const (
	// ModeShow draws only the finished-component glyphs.
	ModeShow RenderMode = "show"
	// ModeHide draws only the manufacturing drill patterns.
	ModeHide RenderMode = "hide"
	// ModeBoth draws drill patterns plus component glyphs at 50% opacity.
	ModeBoth RenderMode = "both"
)

// Panel is the document root. Width and Height define the output viewport
// in millimeters.
type Panel struct {
	Name            string
	Width           float64
	Height          float64
	BackgroundColor string
	RenderMode      RenderMode
	Elements        []Element
}
