package generate

import (
	"fmt"
	"maps"
	"sort"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gridgen/css"
	"gridgen/grid"
)

// Builder compiles a grid definition into a stylesheet.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a stylesheet builder.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("builder")}
}

// Build runs a single compilation pass. Authoring errors (bad width
// specifications, unknown breakpoints) are accumulated across the whole
// definition so the author sees all of them at once, and fail the build -
// nothing is silently defaulted.
func (b *Builder) Build(ctx *grid.Context, def *Definition) (*css.Stylesheet, error) {
	reg := grid.NewRegistry(b.log)

	var errs error
	for _, bd := range def.Breakpoints {
		if err := registerBreakpoint(reg, bd); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	sheet := &css.Stylesheet{}

	// Container roles.
	sheet.AddRule(css.Rule{Selector: ".wrapper", Properties: grid.Wrapper(ctx, ctx.WrapperWidth)})
	sheet.AddRule(css.Rule{Selector: ".row", Properties: grid.Row(ctx)})
	sheet.AddRule(css.Rule{Selector: ".row.full", Properties: grid.Row(ctx, grid.ParamFull)})

	// Numeric column classes with offset/push/pull companions.
	for n := 1; n <= ctx.TotalColumns; n++ {
		if err := b.appendSpanRules(sheet, ctx, "", n); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	// Author-named classes, in natural order.
	classes := make([]ClassDefinition, len(def.Classes))
	copy(classes, def.Classes)
	sort.SliceStable(classes, func(i, j int) bool {
		return natural.Less(classes[i].Name, classes[j].Name)
	})
	for _, class := range classes {
		if err := b.appendClassRules(sheet, ctx, "", class); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	// One @media block per breakpoint prefix, in first registration order.
	seen := make(map[string]bool)
	for _, bp := range reg.All() {
		if seen[bp.Prefix] {
			continue
		}
		seen[bp.Prefix] = true

		if err := b.appendMediaBlock(sheet, ctx, reg, bp.Prefix, classes); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		return nil, errs
	}

	b.log.Debug("Stylesheet built",
		zap.Int("items", len(sheet.Items)), zap.Int("columns", ctx.TotalColumns), zap.Int("breakpoints", reg.Len()))
	return sheet, nil
}

// registerBreakpoint validates a breakpoint definition and registers it.
func registerBreakpoint(reg *grid.Registry, bd BreakpointDefinition) error {
	if bd.Prefix == "" {
		return fmt.Errorf("breakpoint without a prefix")
	}

	minWidth := css.Px(0)
	if bd.MinWidth != "" {
		v, err := css.ParseLength(bd.MinWidth)
		if err != nil {
			return fmt.Errorf("breakpoint %q: bad min width: %w", bd.Prefix, err)
		}
		minWidth = v
	}

	if bd.MaxWidth == "" {
		reg.Register(bd.Prefix, minWidth)
		return nil
	}
	maxWidth, err := css.ParseLength(bd.MaxWidth)
	if err != nil {
		return fmt.Errorf("breakpoint %q: bad max width: %w", bd.Prefix, err)
	}
	reg.Register(bd.Prefix, minWidth, maxWidth)
	return nil
}

// appendSpanRules emits .col-N, .offset-N, .push-N and .pull-N rules for a
// single span, optionally under a breakpoint class prefix.
func (b *Builder) appendSpanRules(sheet *css.Stylesheet, ctx *grid.Context, prefix string, n int) error {
	spec := grid.Columns(float64(n))
	suffix := strconv.Itoa(n)

	col, err := grid.Column(ctx, spec)
	if err != nil {
		return err
	}
	sheet.AddRule(css.Rule{Selector: "." + prefix + "col-" + suffix, Properties: col})

	offset, err := grid.Offset(ctx, spec)
	if err != nil {
		return err
	}
	sheet.AddRule(css.Rule{Selector: "." + prefix + "offset-" + suffix, Properties: offset})

	push, err := grid.Push(ctx, spec)
	if err != nil {
		return err
	}
	sheet.AddRule(css.Rule{Selector: "." + prefix + "push-" + suffix, Properties: push})

	pull, err := grid.Pull(ctx, spec)
	if err != nil {
		return err
	}
	sheet.AddRule(css.Rule{Selector: "." + prefix + "pull-" + suffix, Properties: pull})
	return nil
}

// appendClassRules emits rules for one author-named class.
func (b *Builder) appendClassRules(sheet *css.Stylesheet, ctx *grid.Context, prefix string, class ClassDefinition) error {
	if class.Name == "" {
		return fmt.Errorf("class without a name")
	}
	if class.Width == "" {
		return fmt.Errorf("class %q: no width specification", class.Name)
	}
	name := "." + prefix + slug.Make(class.Name)

	props, err := grid.Column(ctx, grid.ParseSpec(class.Width), class.Params...)
	if err != nil {
		return fmt.Errorf("class %q: %w", class.Name, err)
	}

	if class.Offset != "" {
		extra, err := grid.Offset(ctx, grid.ParseSpec(class.Offset), class.Params...)
		if err != nil {
			return fmt.Errorf("class %q: %w", class.Name, err)
		}
		maps.Copy(props, extra)
	}
	if class.Push != "" {
		extra, err := grid.Push(ctx, grid.ParseSpec(class.Push))
		if err != nil {
			return fmt.Errorf("class %q: %w", class.Name, err)
		}
		maps.Copy(props, extra)
	}
	if class.Pull != "" {
		extra, err := grid.Pull(ctx, grid.ParseSpec(class.Pull))
		if err != nil {
			return fmt.Errorf("class %q: %w", class.Name, err)
		}
		maps.Copy(props, extra)
	}

	sheet.AddRule(css.Rule{Selector: name, Properties: props})
	return nil
}

// appendMediaBlock emits the @media block for one breakpoint prefix. Rules
// inside carry the prefix in their class names ("sm-col-3").
func (b *Builder) appendMediaBlock(sheet *css.Stylesheet, ctx *grid.Context, reg *grid.Registry, prefix string, classes []ClassDefinition) error {
	return reg.WithActiveMedia(ctx, prefix, func(bp grid.Breakpoint) error {
		inner := &css.Stylesheet{}

		if bp.HasWrapperWidth {
			inner.AddRule(css.Rule{Selector: ".wrapper", Properties: grid.Properties{
				"max-width": bp.MaxWrapperWidth,
			}})
		}

		for n := 1; n <= ctx.TotalColumns; n++ {
			if err := b.appendSpanRules(inner, ctx, prefix+"-", n); err != nil {
				return err
			}
		}
		for _, class := range classes {
			if err := b.appendClassRules(inner, ctx, prefix+"-", class); err != nil {
				return err
			}
		}

		rules := make([]css.Rule, 0, len(inner.Items))
		for _, item := range inner.Items {
			if item.Rule != nil {
				rules = append(rules, *item.Rule)
			}
		}
		sheet.AddMediaBlock(css.MediaBlock{Query: css.MinWidthQuery(bp.MinWidth), Rules: rules})
		return nil
	})
}
