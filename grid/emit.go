package grid

import (
	"slices"

	"gridgen/css"
)

// Modifier tokens accepted by emission operations.
const (
	ParamCenter = "center" // column: centered, no float
	ParamRight  = "right"  // column: float right; offset: offset from the right
	ParamFull   = "full"   // row: never width constrained; column: no gutter padding
)

// Properties is an emitted set of style property/value pairs.
type Properties = map[string]css.Value

// Row emits row container properties. Negative side margins compensate for
// the gutter padding of the columns inside.
//
// When row behavior is set to wrapper the row doubles as a width constrained
// centered container - unless compilation is inside an explicit breakpoint
// block or the "full" token is present. Deprecated, reproduced for old grid
// definitions.
func Row(ctx *Context, params ...string) Properties {
	props := Properties{
		"overflow": css.Keyword("hidden"),
	}

	full := slices.Contains(params, ParamFull)
	if ctx.RowBehavior.IsWrapper() && !ctx.ActiveMedia() && !full {
		props["margin-left"] = css.Keyword("auto")
		props["margin-right"] = css.Keyword("auto")
		props["max-width"] = ctx.WrapperWidth
		return props
	}

	half := ctx.halfGutter()
	props["margin-left"] = css.Dim(-half.Value, half.Unit)
	props["margin-right"] = css.Dim(-half.Value, half.Unit)
	return props
}

// Wrapper emits a centered container constrained to maxWidth.
func Wrapper(ctx *Context, maxWidth css.Value) Properties {
	half := ctx.halfGutter()
	return Properties{
		"margin-left":   css.Keyword("auto"),
		"margin-right":  css.Keyword("auto"),
		"max-width":     maxWidth,
		"padding-left":  half,
		"padding-right": half,
	}
}

// Column emits column properties for the given width specification. The
// gutter is reserved as padding, half on each side, so widths stay exact
// percentages of the row.
func Column(ctx *Context, spec WidthSpec, params ...string) (Properties, error) {
	ratio, err := Resolve(spec, ctx.TotalColumns)
	if err != nil {
		return nil, err
	}

	half := ctx.halfGutter()
	props := Properties{
		"box-sizing":    css.Keyword("border-box"),
		"float":         css.Keyword("left"),
		"padding-left":  half,
		"padding-right": half,
		"width":         css.Percent(ratio * 100),
	}

	for _, param := range params {
		switch param {
		case ParamCenter:
			delete(props, "float")
			props["margin-left"] = css.Keyword("auto")
			props["margin-right"] = css.Keyword("auto")
		case ParamRight:
			props["float"] = css.Keyword("right")
		case ParamFull:
			delete(props, "padding-left")
			delete(props, "padding-right")
		}
	}
	return props, nil
}

// Offset emits a margin pushing a column away from the row edge by the
// resolved width. The "right" token offsets from the right edge instead.
func Offset(ctx *Context, spec WidthSpec, params ...string) (Properties, error) {
	ratio, err := Resolve(spec, ctx.TotalColumns)
	if err != nil {
		return nil, err
	}

	side := "margin-left"
	if slices.Contains(params, ParamRight) {
		side = "margin-right"
	}
	return Properties{side: css.Percent(ratio * 100)}, nil
}

// Push emits a relative shift of a column towards the end of the row.
func Push(ctx *Context, spec WidthSpec) (Properties, error) {
	ratio, err := Resolve(spec, ctx.TotalColumns)
	if err != nil {
		return nil, err
	}
	return Properties{
		"left":     css.Percent(ratio * 100),
		"position": css.Keyword("relative"),
	}, nil
}

// Pull emits a relative shift of a column towards the start of the row.
func Pull(ctx *Context, spec WidthSpec) (Properties, error) {
	ratio, err := Resolve(spec, ctx.TotalColumns)
	if err != nil {
		return nil, err
	}
	return Properties{
		"position": css.Keyword("relative"),
		"right":    css.Percent(ratio * 100),
	}, nil
}
