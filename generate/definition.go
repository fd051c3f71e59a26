package generate

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"gridgen/config"
	"gridgen/css"
	"gridgen/grid"
)

type (
	// GridDefaults overrides generator configuration for a single
	// definition.
	GridDefaults struct {
		Columns     int                 `yaml:"columns"`
		Gutter      string              `yaml:"gutter"`
		RowBehavior *config.RowBehavior `yaml:"row_behavior"`
	}

	// WrapperDefinition describes the top level wrapper container.
	WrapperDefinition struct {
		MaxWidth string `yaml:"max_width"`
	}

	// BreakpointDefinition describes a single responsive breakpoint.
	BreakpointDefinition struct {
		Prefix   string `yaml:"prefix"`
		MinWidth string `yaml:"min_width"`
		MaxWidth string `yaml:"max_width"`
	}

	// ClassDefinition describes an author-named column class. Width takes
	// any supported specification shape - a column count, a keyword or a
	// free-form phrase.
	ClassDefinition struct {
		Name   string   `yaml:"name"`
		Width  string   `yaml:"width"`
		Params []string `yaml:"params"`
		Offset string   `yaml:"offset"`
		Push   string   `yaml:"push"`
		Pull   string   `yaml:"pull"`
	}

	// Definition is a single grid definition file - the input of one
	// generation pass.
	Definition struct {
		Grid            GridDefaults           `yaml:"grid"`
		Wrapper         WrapperDefinition      `yaml:"wrapper"`
		Breakpoints     []BreakpointDefinition `yaml:"breakpoints"`
		Classes         []ClassDefinition      `yaml:"classes"`
		ExtraStylesheet string                 `yaml:"extra_stylesheet"`
	}
)

// LoadDefinition reads and decodes a grid definition file. Unknown fields
// are authoring mistakes and fail decoding.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read grid definition: %w", err)
	}

	def := &Definition{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(def); err != nil {
		return nil, fmt.Errorf("unable to decode grid definition (%s): %w", path, err)
	}
	return def, nil
}

// buildContext prepares a compilation context from generator configuration
// with definition level overrides applied on top.
func buildContext(conf *config.GeneratorConfig, def *Definition) (*grid.Context, error) {
	ctx, err := grid.NewContextFromConfig(conf)
	if err != nil {
		return nil, err
	}

	if def.Grid.Columns != 0 {
		if def.Grid.Columns < 0 {
			return nil, fmt.Errorf("bad column count in definition: %d", def.Grid.Columns)
		}
		ctx.TotalColumns = def.Grid.Columns
	}
	if def.Grid.Gutter != "" {
		gutter, err := css.ParseLength(def.Grid.Gutter)
		if err != nil {
			return nil, fmt.Errorf("bad gutter in definition: %w", err)
		}
		ctx.Gutter = gutter
	}
	if def.Grid.RowBehavior != nil {
		ctx.RowBehavior = *def.Grid.RowBehavior
	}
	if def.Wrapper.MaxWidth != "" {
		width, err := css.ParseLength(def.Wrapper.MaxWidth)
		if err != nil {
			return nil, fmt.Errorf("bad wrapper max width in definition: %w", err)
		}
		ctx.WrapperWidth = width
	}
	return ctx, nil
}
