package panel

// BorderType selects which edges of a group box are drawn.
type BorderType string

const (
	BorderNone   BorderType = "none"
	BorderFull   BorderType = "full"
	BorderTop    BorderType = "top"
	BorderBottom BorderType = "bottom"
)

// BorderStyle selects the line pattern of a group border.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "full"
	BorderDotted BorderStyle = "dotted"
	BorderDashed BorderStyle = "dashed"
)

// Border describes the outline of a group box. Drawing it requires the
// group to declare both width and height; otherwise the border step is a
// silent no-op.
type Border struct {
	Type      BorderType
	Thickness float64
	Style     BorderStyle
	Color     string
}
