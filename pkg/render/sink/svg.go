package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVG is a Sink that serializes primitives into an SVG document. The
// physical size is expressed in millimeters with a matching logical
// viewBox, so one user unit equals one millimeter.
type SVG struct {
	buf    bytes.Buffer
	width  float64
	height float64
}

// NewSVG opens an SVG document of width x height millimeters and paints
// the background rect first.
func NewSVG(width, height float64, background string) *SVG {
	s := &SVG{width: width, height: height}
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %s %s">`+"\n",
		ftoa(width), ftoa(height), ftoa(width), ftoa(height))
	fmt.Fprintf(&s.buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		ftoa(width), ftoa(height), escape(background))
	return s
}

func (s *SVG) Circle(cx, cy, r float64, st Style) {
	fmt.Fprintf(&s.buf, `  <circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
		ftoa(cx), ftoa(cy), ftoa(r), styleAttrs(st))
}

func (s *SVG) Rect(x, y, w, h float64, st Style) {
	fmt.Fprintf(&s.buf, `  <rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		ftoa(x), ftoa(y), ftoa(w), ftoa(h), styleAttrs(st))
}

func (s *SVG) Line(x1, y1, x2, y2 float64, st Style) {
	fmt.Fprintf(&s.buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2), styleAttrs(st))
}

func (s *SVG) Text(text string, x, y float64, st TextStyle) {
	var attrs strings.Builder
	if st.Family != "" {
		fmt.Fprintf(&attrs, ` font-family="%s"`, escape(st.Family))
	}
	if st.Size > 0 {
		fmt.Fprintf(&attrs, ` font-size="%s"`, ftoa(st.Size))
	}
	if st.Weight != "" {
		fmt.Fprintf(&attrs, ` font-weight="%s"`, escape(st.Weight))
	}
	if st.Anchor != "" {
		fmt.Fprintf(&attrs, ` text-anchor="%s"`, escape(st.Anchor))
	}
	fill := st.Fill
	if fill == "" {
		fill = "black"
	}
	fmt.Fprintf(&attrs, ` fill="%s"`, escape(fill))
	if st.Opacity > 0 && st.Opacity < 1 {
		fmt.Fprintf(&attrs, ` opacity="%s"`, ftoa(st.Opacity))
	}
	fmt.Fprintf(&s.buf, `  <text x="%s" y="%s"%s>%s</text>`+"\n",
		ftoa(x), ftoa(y), attrs.String(), escape(text))
}

// Bytes returns the complete SVG document. The sink remains usable; later
// primitives are included in subsequent calls.
func (s *SVG) Bytes() []byte {
	out := make([]byte, 0, s.buf.Len()+8)
	out = append(out, s.buf.Bytes()...)
	return append(out, []byte("</svg>\n")...)
}

// WriteTo writes the complete document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

func styleAttrs(st Style) string {
	var b strings.Builder
	fill := st.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&b, ` fill="%s"`, escape(fill))
	if st.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s"`, escape(st.Stroke))
		fmt.Fprintf(&b, ` stroke-width="%s"`, ftoa(st.StrokeWidth))
	}
	if st.Dash != "" {
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, escape(st.Dash))
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, ftoa(st.Opacity))
	}
	return b.String()
}

// ftoa formats a coordinate rounded to 1/1000 mm without trailing zeros.
func ftoa(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
