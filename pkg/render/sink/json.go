package sink

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the JSON export shape: viewport plus the recorded primitives
// in emission order.
type Document struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Background string      `json:"background,omitempty"`
	Primitives []Primitive `json:"primitives"`
}

// WriteJSON encodes the recorded primitives as indented JSON. The export is
// intended for external tools and for diffing renders in tests.
func WriteJSON(w io.Writer, width, height float64, background string, rec *Recorder) error {
	doc := Document{
		Width:      width,
		Height:     height,
		Background: background,
		Primitives: rec.Primitives(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
