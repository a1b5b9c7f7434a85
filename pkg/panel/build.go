package panel

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mdziemianko/amp-panel-designer/pkg/errors"
	"github.com/mdziemianko/amp-panel-designer/pkg/units"
)

// Default dimensions in millimeters.
const (
	DefaultKnobDiameter   = 20.0
	DefaultBorderDiameter = 25.0
	DefaultSocketRadius   = 10.0
	DefaultSwitchWidth    = 10.0
	DefaultSwitchHeight   = 20.0
	DefaultAngleStart     = 135.0
	DefaultAngleWidth     = 270.0
	DefaultNumTicks       = 11
	DefaultTickSize       = 2.0
)

// Default mount drill diameters per component type. Custom components have
// no default and may end up without a mount entirely.
const (
	DefaultPotMountDiameter    = 6.0
	DefaultSocketMountDiameter = 10.0
	DefaultSwitchMountDiameter = 5.0
)

// Build constructs the typed panel tree from a raw nested mapping.
//
// Per node it normalizes dimension literals, builds nested structured
// fields (label, font, mount, scale), migrates legacy flat fields onto the
// structured equivalents, then recurses into children. The first
// construction error aborts the build; no partial tree is returned.
func Build(doc map[string]any) (*Panel, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeParse, "document is empty")
	}
	units.Normalize(doc)

	p := &Panel{
		Name:            stringField(doc, "name"),
		BackgroundColor: "#ffffff",
		RenderMode:      ModeShow,
	}

	var err error
	if p.Width, err = requiredFloat(doc, "width", "panel"); err != nil {
		return nil, err
	}
	if p.Height, err = requiredFloat(doc, "height", "panel"); err != nil {
		return nil, err
	}
	if bg := stringField(doc, "background_color"); bg != "" {
		p.BackgroundColor = bg
	}
	if mode := stringField(doc, "render_mode"); mode != "" {
		switch RenderMode(mode) {
		case ModeShow, ModeHide, ModeBoth:
			p.RenderMode = RenderMode(mode)
		default:
			return nil, errors.New(errors.ErrCodeInvalidRenderMode,
				"render_mode must be show, hide or both, got %q", mode)
		}
	}

	if p.Elements, err = buildElements(doc); err != nil {
		return nil, err
	}
	return p, nil
}

// buildElements constructs the ordered child list of a panel or group.
func buildElements(m map[string]any) ([]Element, error) {
	raw, ok := m["elements"].([]any)
	if !ok {
		return nil, nil
	}
	elements := make([]Element, 0, len(raw))
	for i, entry := range raw {
		em, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "element %d is not a mapping", i)
		}
		el, err := buildElement(em)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// buildElement dispatches on the type discriminator. Any value outside the
// closed set is a fatal construction error.
func buildElement(m map[string]any) (Element, error) {
	units.Normalize(m)
	t := stringField(m, "type")
	switch t {
	case "group":
		return buildGroup(m)
	case "potentiometer":
		return buildPotentiometer(m)
	case "socket":
		return buildSocket(m)
	case "switch":
		return buildSwitch(m)
	case "custom":
		return buildCustom(m)
	default:
		return nil, errors.New(errors.ErrCodeUnknownElementType, "unknown element type: %q", t)
	}
}

func buildGroup(m map[string]any) (*Group, error) {
	common, err := buildCommon(m, "group", DefaultGroupLabelPosition)
	if err != nil {
		return nil, err
	}
	g := &Group{Common: common}

	if g.Width, _, err = optionalFloat(m, "width", g.ID); err != nil {
		return nil, err
	}
	if g.Height, _, err = optionalFloat(m, "height", g.ID); err != nil {
		return nil, err
	}
	if g.Border, err = buildBorder(m, g.ID); err != nil {
		return nil, err
	}
	if g.Elements, err = buildElements(m); err != nil {
		return nil, err
	}
	return g, nil
}

func buildBorder(m map[string]any, elemID string) (*Border, error) {
	bm := mapField(m, "border")
	if bm == nil {
		return nil, nil
	}
	units.Normalize(bm)

	b := &Border{
		Type:      BorderNone,
		Thickness: 1,
		Style:     BorderSolid,
		Color:     "black",
	}
	if t := stringField(bm, "type"); t != "" {
		b.Type = BorderType(t)
	}
	if s := stringField(bm, "style"); s != "" {
		b.Style = BorderStyle(s)
	}
	if c := stringField(bm, "color"); c != "" {
		b.Color = c
	}
	if th, ok, err := optionalFloat(bm, "thickness", elemID); err != nil {
		return nil, err
	} else if ok {
		b.Thickness = th
	}
	return b, nil
}

func buildPotentiometer(m map[string]any) (*Potentiometer, error) {
	common, err := buildCommon(m, "potentiometer", DefaultComponentLabelPosition)
	if err != nil {
		return nil, err
	}
	p := &Potentiometer{
		Common:         common,
		BorderDiameter: DefaultBorderDiameter,
		AngleStart:     DefaultAngleStart,
		AngleWidth:     DefaultAngleWidth,
	}

	if p.Mount, err = resolveMount(m, p.ID, DefaultPotMountDiameter); err != nil {
		return nil, err
	}
	if p.KnobDiameter, err = knobDiameter(m, p.ID); err != nil {
		return nil, err
	}
	if v, ok, err := optionalFloat(m, "border_diameter", p.ID); err != nil {
		return nil, err
	} else if ok {
		p.BorderDiameter = v
	}
	if v, _, err := optionalFloat(m, "border_thickness", p.ID); err != nil {
		return nil, err
	} else {
		p.BorderThickness = v
	}
	if v, ok := numberField(m, "angle_start"); ok {
		p.AngleStart = v
	}
	if v, ok := numberField(m, "angle_width"); ok {
		p.AngleWidth = v
	}
	if p.Scale, err = buildScale(m, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// knobDiameter resolves the knob size with the legacy migration chain:
// knob_diameter wins over the deprecated radius field.
func knobDiameter(m map[string]any, elemID string) (float64, error) {
	if v, ok, err := optionalFloat(m, "knob_diameter", elemID); err != nil {
		return 0, err
	} else if ok {
		return v, nil
	}
	if v, ok, err := optionalFloat(m, "radius", elemID); err != nil {
		return 0, err
	} else if ok {
		return 2 * v, nil
	}
	return DefaultKnobDiameter, nil
}

func buildSocket(m map[string]any) (*Socket, error) {
	common, err := buildCommon(m, "socket", DefaultComponentLabelPosition)
	if err != nil {
		return nil, err
	}
	s := &Socket{Common: common, Radius: DefaultSocketRadius}

	if s.Mount, err = resolveMount(m, s.ID, DefaultSocketMountDiameter); err != nil {
		return nil, err
	}
	if v, ok, err := optionalFloat(m, "radius", s.ID); err != nil {
		return nil, err
	} else if ok {
		s.Radius = v
	}
	return s, nil
}

func buildSwitch(m map[string]any) (*Switch, error) {
	common, err := buildCommon(m, "switch", DefaultComponentLabelPosition)
	if err != nil {
		return nil, err
	}
	sw := &Switch{Common: common, Type: SwitchToggle}

	if sw.Mount, err = resolveMount(m, sw.ID, DefaultSwitchMountDiameter); err != nil {
		return nil, err
	}
	if t := stringField(m, "switch_type"); t != "" {
		switch SwitchType(t) {
		case SwitchToggle, SwitchRotary:
			sw.Type = SwitchType(t)
		default:
			return nil, errors.New(errors.ErrCodeUnknownElementType,
				"element %q: unknown switch type: %q", sw.ID, t)
		}
	}

	switch sw.Type {
	case SwitchToggle:
		sw.Width = DefaultSwitchWidth
		sw.Height = DefaultSwitchHeight
		if v, ok, err := optionalFloat(m, "width", sw.ID); err != nil {
			return nil, err
		} else if ok {
			sw.Width = v
		}
		if v, ok, err := optionalFloat(m, "height", sw.ID); err != nil {
			return nil, err
		} else if ok {
			sw.Height = v
		}
		if sw.LabelTop, err = buildLabelValue(m["label_top"], "top-outside", sw.ID); err != nil {
			return nil, err
		}
		if sw.LabelCenter, err = buildLabelValue(m["label_center"], "center", sw.ID); err != nil {
			return nil, err
		}
		if sw.LabelBottom, err = buildLabelValue(m["label_bottom"], "bottom-outside", sw.ID); err != nil {
			return nil, err
		}
	case SwitchRotary:
		sw.AngleStart = DefaultAngleStart
		sw.AngleWidth = DefaultAngleWidth
		if sw.KnobDiameter, err = knobDiameter(m, sw.ID); err != nil {
			return nil, err
		}
		if v, ok := numberField(m, "angle_start"); ok {
			sw.AngleStart = v
		}
		if v, ok := numberField(m, "angle_width"); ok {
			sw.AngleWidth = v
		}
		if sw.Scale, err = buildScale(m, sw.ID); err != nil {
			return nil, err
		}
	}
	return sw, nil
}

func buildCustom(m map[string]any) (*Custom, error) {
	common, err := buildCommon(m, "custom", DefaultComponentLabelPosition)
	if err != nil {
		return nil, err
	}
	c := &Custom{Common: common}
	if c.Mount, err = resolveMount(m, c.ID, 0); err != nil {
		return nil, err
	}
	return c, nil
}

// buildCommon extracts the shared element fields: id (generated when
// absent), parent-relative offset, label and element-level font.
func buildCommon(m map[string]any, typeName, defaultLabelPos string) (Common, error) {
	c := Common{ID: stringField(m, "id")}
	if c.ID == "" {
		c.ID = fmt.Sprintf("%s-%s", typeName, uuid.NewString()[:8])
	}

	var err error
	if c.X, _, err = optionalFloat(m, "x", c.ID); err != nil {
		return Common{}, err
	}
	if c.Y, _, err = optionalFloat(m, "y", c.ID); err != nil {
		return Common{}, err
	}

	if c.Label, err = buildLabelValue(m["label"], defaultLabelPos, c.ID); err != nil {
		return Common{}, err
	}
	// Legacy flat label_position overrides the default but not an explicit
	// structured position.
	if c.Label != nil && c.Label.Position == defaultLabelPos {
		if pos := stringField(m, "label_position"); pos != "" {
			c.Label.Position = pos
		}
	}

	if fm := mapField(m, "font_style"); fm != nil {
		if c.Font, err = buildFont(fm, c.ID); err != nil {
			return Common{}, err
		}
	}
	return c, nil
}

// buildLabelValue accepts either a bare string (shorthand for the text) or
// a structured mapping with text, position, font and distance.
func buildLabelValue(v any, defaultPos, elemID string) (*Label, error) {
	switch lv := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &Label{Text: lv, Position: defaultPos}, nil
	case map[string]any:
		units.Normalize(lv)
		l := &Label{
			Text:     stringField(lv, "text"),
			Position: defaultPos,
		}
		if pos := stringField(lv, "position"); pos != "" {
			l.Position = pos
		}
		if fm := mapField(lv, "font"); fm != nil {
			f, err := buildFont(fm, elemID)
			if err != nil {
				return nil, err
			}
			l.Font = f
		}
		if d, ok, err := optionalFloat(lv, "distance", elemID); err != nil {
			return nil, err
		} else if ok {
			l.Distance = &d
		}
		return l, nil
	default:
		return nil, errors.New(errors.ErrCodeParse,
			"element %q: label must be a string or a mapping", elemID)
	}
}

func buildFont(m map[string]any, elemID string) (*Font, error) {
	units.Normalize(m)
	f := &Font{
		Family: stringField(m, "family"),
		Weight: stringField(m, "weight"),
	}
	if v, ok, err := optionalFloat(m, "size", elemID); err != nil {
		return nil, err
	} else if ok {
		f.Size = v
	}
	return f, nil
}

func buildScale(m map[string]any, elemID string) (*Scale, error) {
	sm := mapField(m, "scale")
	if sm == nil {
		return nil, nil
	}
	units.Normalize(sm)

	s := &Scale{
		NumTicks:          DefaultNumTicks,
		MajorTickInterval: 1,
		TickStyle:         TickLine,
		TickSize:          DefaultTickSize,
		Position:          ScaleOutside,
	}
	if n, ok := intField(sm, "num_ticks"); ok {
		s.NumTicks = max(1, n)
	}
	if n, ok := intField(sm, "major_tick_interval"); ok {
		s.MajorTickInterval = max(1, n)
	}
	if t := stringField(sm, "tick_style"); t != "" {
		s.TickStyle = TickStyle(t)
	}
	if p := stringField(sm, "position"); p != "" {
		s.Position = ScalePosition(p)
	}
	if v, ok, err := optionalFloat(sm, "tick_size", elemID); err != nil {
		return nil, err
	} else if ok {
		s.TickSize = v
	}
	if raw, ok := sm["labels"].([]any); ok {
		s.Labels = make([]string, len(raw))
		for i, lv := range raw {
			s.Labels[i] = fmt.Sprint(lv)
		}
	}
	return s, nil
}

// resolveMount applies the mount precedence chain: an explicit mount block
// wins over legacy flat fields (install_diameter, mount_width+mount_height),
// which win over the type default diameter. defaultDiameter 0 means the
// type has no default (custom).
//
// The circular/rectangular invariant is checked after the merge, so an
// empty mount block on a type with a default is valid while the same block
// on a defaultless type fails.
func resolveMount(m map[string]any, elemID string, defaultDiameter float64) (*Mount, error) {
	var d, w, h float64
	var hasD, hasW, hasH bool
	var err error

	if mm := mapField(m, "mount"); mm != nil {
		units.Normalize(mm)
		if d, hasD, err = optionalFloat(mm, "diameter", elemID); err != nil {
			return nil, err
		}
		if w, hasW, err = optionalFloat(mm, "width", elemID); err != nil {
			return nil, err
		}
		if h, hasH, err = optionalFloat(mm, "height", elemID); err != nil {
			return nil, err
		}
	} else {
		if d, hasD, err = optionalFloat(m, "install_diameter", elemID); err != nil {
			return nil, err
		}
		if w, hasW, err = optionalFloat(m, "mount_width", elemID); err != nil {
			return nil, err
		}
		if h, hasH, err = optionalFloat(m, "mount_height", elemID); err != nil {
			return nil, err
		}
		if !hasD && !hasW && !hasH && defaultDiameter == 0 {
			return nil, nil // no mount at all (custom without drill data)
		}
	}

	if hasD && (hasW || hasH) {
		return nil, errors.New(errors.ErrCodeMountInvariant,
			"element %q: mount declares both diameter and width/height", elemID)
	}
	if hasW != hasH {
		return nil, errors.New(errors.ErrCodeMountInvariant,
			"element %q: mount width and height must both be set", elemID)
	}
	if !hasD && !hasW {
		if defaultDiameter == 0 {
			return nil, errors.New(errors.ErrCodeMountInvariant,
				"element %q: mount requires either diameter or width and height", elemID)
		}
		d = defaultDiameter
	}

	if hasW {
		return &Mount{Width: w, Height: h}, nil
	}
	return &Mount{Diameter: d}, nil
}

// --- raw mapping accessors ---

func mapField(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

// optionalFloat reads a dimension field that has already been through
// units.Normalize. A present value that is still not numeric is a fatal
// construction error naming the element and key.
func optionalFloat(m map[string]any, key, elemID string) (float64, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		return n, true, nil
	case int:
		return float64(n), true, nil
	}
	return 0, false, errors.New(errors.ErrCodeInvalidDimension,
		"element %q: field %q: cannot interpret %v as a length", elemID, key, v)
}

func requiredFloat(m map[string]any, key, owner string) (float64, error) {
	v, ok, err := optionalFloat(m, key, owner)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidDimension, "%s: field %q is required", owner, key)
	}
	return v, nil
}

// numberField reads a unitless numeric field (angles, counts as float).
func numberField(m map[string]any, key string) (float64, bool) {
	switch n := m[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func intField(m map[string]any, key string) (int, bool) {
	switch n := m[key].(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}
