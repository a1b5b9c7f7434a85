// Package panel defines the typed document model for an instrument front
// panel and the builder that constructs it from a raw nested mapping.
//
// # Overview
//
// A panel document is a tree: the [Panel] root owns an ordered list of
// elements, and [Group] elements nest further elements. Every position is an
// offset relative to the enclosing parent's origin; nothing in this package
// computes absolute coordinates (that is the render traversal's job).
//
// All lengths are canonical millimeters. [Build] runs the unit normalizer
// over every nesting level before typed construction, so a constructed tree
// never carries unit suffixes.
//
// # Construction
//
// [Build] is a pure function from the raw mapping to the typed tree. The
// tree is immutable after construction: build errors abort before any
// element is returned, and the renderer never mutates nodes.
//
// Unknown mapping keys are silently ignored (permissive schema evolution).
// Unknown element type tags, mount invariant violations and non-numeric
// dimension literals are fatal construction errors carrying the element id.
package panel
