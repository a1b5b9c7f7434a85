// Package sink provides drawing sinks for panel rendering.
//
// # Overview
//
// A sink receives the renderer's drawing primitives (circle, rect, line,
// text) in emission order and turns them into a final artifact:
//
//   - SVG: scalable vector graphics sized in millimeters
//   - Recorder: an append-only primitive list for tests and JSON export
//   - JSON: data export of the recorded primitives
//   - PDF/PNG: conversion of the SVG output via rsvg-convert
//
// # SVG Output
//
// [NewSVG] opens a document with a millimeter viewport and matching logical
// viewBox, and paints the background rect first:
//
//	svg := sink.NewSVG(300, 120, "#f5f0e6")
//	r := render.New(p, theme.Default(), svg)
//	if err := r.Render(); err != nil { ... }
//	os.WriteFile("panel.svg", svg.Bytes(), 0o644)
//
// # PDF and PNG Output
//
// [ToPDF] and [ToPNG] convert finished SVG bytes using rsvg-convert.
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package sink
