package grid

import (
	"fmt"

	"gridgen/config"
	"gridgen/css"
)

// Compilation defaults - used when generator configuration does not say
// otherwise.
const (
	DefaultTotalColumns = 12
	DefaultGutterPx     = 20
	DefaultWrapperPx    = 960
)

// Context carries the state of a single stylesheet compilation pass. What
// used to be ambient globals in old preprocessor implementations (active
// media flag, row behavior) are explicit fields here. A Context must not be
// shared between concurrent compilations.
type Context struct {
	TotalColumns int
	Gutter       css.Value
	WrapperWidth css.Value
	RowBehavior  config.RowBehavior

	activeMedia bool
}

// NewContext creates a compilation context with default settings.
func NewContext() *Context {
	return &Context{
		TotalColumns: DefaultTotalColumns,
		Gutter:       css.Px(DefaultGutterPx),
		WrapperWidth: css.Px(DefaultWrapperPx),
		RowBehavior:  config.RowBehaviorDefault,
	}
}

// NewContextFromConfig creates a compilation context from generator
// configuration.
func NewContextFromConfig(conf *config.GeneratorConfig) (*Context, error) {
	ctx := NewContext()
	if conf == nil {
		return ctx, nil
	}

	if conf.Columns > 0 {
		ctx.TotalColumns = conf.Columns
	}
	if conf.Gutter != "" {
		gutter, err := css.ParseLength(conf.Gutter)
		if err != nil {
			return nil, fmt.Errorf("bad gutter in configuration: %w", err)
		}
		ctx.Gutter = gutter
	}
	ctx.RowBehavior = conf.RowBehavior
	return ctx, nil
}

// ActiveMedia reports whether compilation is currently inside an explicit
// breakpoint block. Row emission uses it to suppress the deprecated
// "row behaves like wrapper" fallback.
func (c *Context) ActiveMedia() bool {
	return c.activeMedia
}

// halfGutter returns half of the gutter preserving its unit - columns carve
// the gutter as padding, half on each side.
func (c *Context) halfGutter() css.Value {
	return css.Dim(c.Gutter.Value/2, c.Gutter.Unit)
}
