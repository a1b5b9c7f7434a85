package panel

// TickStyle selects how scale ticks are drawn.
type TickStyle string

const (
	TickLine TickStyle = "line"
	TickDot  TickStyle = "dot"
)

// ScalePosition places ticks relative to the component's reference radius.
type ScalePosition string

const (
	ScaleOutside ScalePosition = "outside"
	ScaleInside  ScalePosition = "inside"
	ScaleInline  ScalePosition = "inline"
)

// Scale describes the printed tick scale around a rotary component.
// Ticks at index%MajorTickInterval == 0 are major (full TickSize), the
// rest minor (half size). Labels, when present, align to ticks by index;
// ticks beyond the list get no label.
type Scale struct {
	NumTicks          int
	MajorTickInterval int
	TickStyle         TickStyle
	TickSize          float64 // mm, major tick length
	Position          ScalePosition
	Labels            []string
}

// IsMajor reports whether the tick at index i is a major tick.
func (s *Scale) IsMajor(i int) bool {
	return i%s.MajorTickInterval == 0
}
