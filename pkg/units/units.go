// Package units normalizes heterogeneous dimension literals into canonical
// millimeters.
//
// Input documents may express lengths as bare numbers (already millimeters)
// or as strings with a unit suffix ("2.5cm", "1in", `0.25"`, "72pt", "96px").
// The normalizer runs once per nesting level of the document, immediately
// before typed construction, so all downstream geometry operates purely in
// millimeters.
//
// A string that fails numeric parsing after suffix stripping is passed
// through unchanged rather than rejected here; the tree builder decides
// whether such a value is fatal for the field it lands in.
package units

import (
	"strconv"
	"strings"
)

// Conversion factors to millimeters.
const (
	MMPerCM    = 10.0
	MMPerInch  = 25.4
	MMPerPoint = 25.4 / 72.0
	MMPerPixel = 25.4 / 96.0
)

// suffixes maps a unit suffix to its factor. Order matters: longer suffixes
// are checked first so "mm" is not mistaken for a bare trailing "m".
var suffixes = []struct {
	unit   string
	factor float64
}{
	{"mm", 1},
	{"cm", MMPerCM},
	{"in", MMPerInch},
	{`"`, MMPerInch},
	{"pt", MMPerPoint},
	{"px", MMPerPixel},
}

// DimensionKeys is the closed set of mapping keys whose values carry a
// length. Only these keys are rewritten by Normalize; everything else
// passes through untouched.
var DimensionKeys = map[string]bool{
	"x":                true,
	"y":                true,
	"width":            true,
	"height":           true,
	"radius":           true,
	"thickness":        true,
	"size":             true,
	"font_size":        true,
	"distance":         true,
	"knob_diameter":    true,
	"border_diameter":  true,
	"border_thickness": true,
	"tick_size":        true,
	"install_diameter": true,
	"mount_width":      true,
	"mount_height":     true,
	"diameter":         true,
}

// ToMM converts a single dimension literal to a canonical float64 millimeter
// value. Numbers are taken as millimeters already. Strings are parsed after
// optional unit-suffix stripping; unsuffixed numeric strings are millimeters.
// Values that cannot be interpreted are returned unchanged.
func ToMM(v any) any {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return stringToMM(n)
	default:
		return v
	}
}

func stringToMM(s string) any {
	trimmed := strings.TrimSpace(s)
	factor := 1.0
	for _, suf := range suffixes {
		if strings.HasSuffix(trimmed, suf.unit) {
			trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, suf.unit))
			factor = suf.factor
			break
		}
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// Soft-fail: hand the raw value back for downstream validation.
		return s
	}
	return f * factor
}

// Normalize rewrites every dimension-bearing key of m in place with its
// canonical millimeter value. Nested mappings are not descended into; the
// builder calls Normalize once per nesting level.
func Normalize(m map[string]any) {
	for k, v := range m {
		if DimensionKeys[k] {
			m[k] = ToMM(v)
		}
	}
}
