// Package render walks a constructed panel tree and emits drawing
// primitives for every element into a [sink.Sink].
//
// # Coordinate frame
//
// The panel root defines the only global frame: origin at the top-left,
// x growing right, y growing down, units in millimeters. Each element's
// declared offset is relative to its enclosing parent's origin; the
// traversal accumulates offsets additively. There is no rotation or
// scaling of child frames.
//
// Rotary angles follow the user convention 0 degrees = straight down with
// positive angles clockwise; the geometry code rotates by +90 degrees onto
// the standard screen atan2 frame for coordinate math.
//
// # Render modes
//
// The panel's render mode selects the emitted layers: "show" draws the
// finished-component glyphs, "hide" draws the manufacturing drill patterns,
// and "both" draws drill patterns plus glyphs at reduced opacity so the
// drill marks stay visible underneath.
//
// [sink.Sink]: github.com/mdziemianko/amp-panel-designer/pkg/render/sink.Sink
package render
