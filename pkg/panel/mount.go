package panel

// Mount describes the drill hole or cutout for a component: either a single
// circular diameter or a rectangular width/height pair, never both. The
// builder enforces the invariant at construction time.
type Mount struct {
	Diameter float64 // circular mount; 0 when rectangular
	Width    float64
	Height   float64
}

// IsCircular reports whether the mount is a circular drill hole.
func (m *Mount) IsCircular() bool { return m.Diameter > 0 }

// HalfWidth returns half the horizontal extent of the mount shape.
func (m *Mount) HalfWidth() float64 {
	if m.IsCircular() {
		return m.Diameter / 2
	}
	return m.Width / 2
}

// HalfHeight returns half the vertical extent of the mount shape.
func (m *Mount) HalfHeight() float64 {
	if m.IsCircular() {
		return m.Diameter / 2
	}
	return m.Height / 2
}

// HalfExtent returns the larger of the two half extents, used for default
// label distances.
func (m *Mount) HalfExtent() float64 {
	return max(m.HalfWidth(), m.HalfHeight())
}
