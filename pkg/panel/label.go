package panel

// Label positions and default descriptors.
const (
	// DefaultComponentLabelPosition applies to component labels without an
	// explicit position descriptor.
	DefaultComponentLabelPosition = "bottom-outside"
	// DefaultGroupLabelPosition applies to group labels without an explicit
	// position descriptor.
	DefaultGroupLabelPosition = "top-outside"
)

// Label is a piece of text attached to an element. Position is a
// "{side}-{mode}" descriptor (side: top, bottom, left, right, center;
// mode: outside, inside, inline). A bare "center" is also accepted.
type Label struct {
	Text     string
	Position string
	Font     *Font    // per-label override, nil = element/theme font
	Distance *float64 // explicit offset in mm, nil = type-computed default
}

// Font describes text styling. Zero-valued fields fall back to the theme
// defaults at render time.
type Font struct {
	Family string
	Size   float64 // mm
	Weight string
}
