package grid_test

import (
	"testing"

	"gridgen/config"
	"gridgen/css"
	"gridgen/grid"
)

func wrapperContext() *grid.Context {
	ctx := grid.NewContext()
	ctx.RowBehavior = config.RowBehaviorWrapper
	return ctx
}

func TestRow_Default(t *testing.T) {
	ctx := grid.NewContext()
	props := grid.Row(ctx)

	if got := props["overflow"]; got.Keyword != "hidden" {
		t.Errorf("overflow = %v, want hidden", got)
	}
	// Negative half gutter margins compensate for column padding.
	for _, side := range []string{"margin-left", "margin-right"} {
		got, ok := props[side]
		if !ok {
			t.Fatalf("%s missing", side)
		}
		if got.Value != -10 || got.Unit != "px" {
			t.Errorf("%s = %v%s, want -10px", side, got.Value, got.Unit)
		}
	}
	if _, ok := props["max-width"]; ok {
		t.Error("default row emitted max-width")
	}
}

func TestRow_WrapperFallback(t *testing.T) {
	ctx := wrapperContext()
	props := grid.Row(ctx)

	got, ok := props["max-width"]
	if !ok {
		t.Fatal("wrapper-behaving row emitted no max-width")
	}
	if got != ctx.WrapperWidth {
		t.Errorf("max-width = %v, want %v", got, ctx.WrapperWidth)
	}
	for _, side := range []string{"margin-left", "margin-right"} {
		if props[side].Keyword != "auto" {
			t.Errorf("%s = %v, want auto", side, props[side])
		}
	}
}

func TestRow_WrapperFallbackSuppressedByFull(t *testing.T) {
	// "full" disables the width constraint no matter what the flag says.
	ctx := wrapperContext()

	check := func(props grid.Properties, label string) {
		t.Helper()
		if _, ok := props["max-width"]; ok {
			t.Errorf("%s: row with full token emitted max-width", label)
		}
	}
	check(grid.Row(ctx, grid.ParamFull), "outside media")

	reg := grid.NewRegistry(nil)
	reg.Register("sm", css.Px(768))
	err := reg.WithActiveMedia(ctx, "sm", func(grid.Breakpoint) error {
		check(grid.Row(ctx, grid.ParamFull), "inside media")
		return nil
	})
	if err != nil {
		t.Fatalf("WithActiveMedia() error = %v", err)
	}
}

func TestRow_WrapperFallbackSuppressedInsideMedia(t *testing.T) {
	ctx := wrapperContext()
	reg := grid.NewRegistry(nil)
	reg.Register("sm", css.Px(768))

	err := reg.WithActiveMedia(ctx, "sm", func(grid.Breakpoint) error {
		props := grid.Row(ctx)
		if _, ok := props["max-width"]; ok {
			t.Error("row inside breakpoint block emitted max-width")
		}
		if props["margin-left"].Value != -10 {
			t.Errorf("margin-left = %v, want -10", props["margin-left"].Value)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithActiveMedia() error = %v", err)
	}
}

func TestWrapper(t *testing.T) {
	ctx := grid.NewContext()
	props := grid.Wrapper(ctx, css.Px(1140))

	if props["max-width"].Value != 1140 {
		t.Errorf("max-width = %v, want 1140", props["max-width"].Value)
	}
	for _, side := range []string{"margin-left", "margin-right"} {
		if props[side].Keyword != "auto" {
			t.Errorf("%s = %v, want auto", side, props[side])
		}
	}
	for _, side := range []string{"padding-left", "padding-right"} {
		if props[side].Value != 10 || props[side].Unit != "px" {
			t.Errorf("%s = %v%s, want 10px", side, props[side].Value, props[side].Unit)
		}
	}
}

func TestColumn(t *testing.T) {
	ctx := grid.NewContext()
	props, err := grid.Column(ctx, grid.Columns(3))
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}

	if props["width"].Value != 25 || props["width"].Unit != "%" {
		t.Errorf("width = %v%s, want 25%%", props["width"].Value, props["width"].Unit)
	}
	if props["float"].Keyword != "left" {
		t.Errorf("float = %v, want left", props["float"])
	}
	if props["box-sizing"].Keyword != "border-box" {
		t.Errorf("box-sizing = %v, want border-box", props["box-sizing"])
	}
	for _, side := range []string{"padding-left", "padding-right"} {
		if props[side].Value != 10 {
			t.Errorf("%s = %v, want 10", side, props[side].Value)
		}
	}
}

func TestColumn_Params(t *testing.T) {
	ctx := grid.NewContext()

	props, err := grid.Column(ctx, grid.Keyword("half"), grid.ParamCenter)
	if err != nil {
		t.Fatalf("Column(center) error = %v", err)
	}
	if _, ok := props["float"]; ok {
		t.Error("centered column still floats")
	}
	if props["margin-left"].Keyword != "auto" || props["margin-right"].Keyword != "auto" {
		t.Error("centered column margins are not auto")
	}

	props, err = grid.Column(ctx, grid.Columns(4), grid.ParamRight)
	if err != nil {
		t.Fatalf("Column(right) error = %v", err)
	}
	if props["float"].Keyword != "right" {
		t.Errorf("float = %v, want right", props["float"])
	}

	props, err = grid.Column(ctx, grid.Columns(4), grid.ParamFull)
	if err != nil {
		t.Fatalf("Column(full) error = %v", err)
	}
	if _, ok := props["padding-left"]; ok {
		t.Error("full column still has left padding")
	}
	if _, ok := props["padding-right"]; ok {
		t.Error("full column still has right padding")
	}
}

func TestColumn_BadSpec(t *testing.T) {
	ctx := grid.NewContext()
	if _, err := grid.Column(ctx, grid.Keyword("bogus")); err == nil {
		t.Error("Column with unknown keyword did not fail")
	}
}

func TestOffset(t *testing.T) {
	ctx := grid.NewContext()

	props, err := grid.Offset(ctx, grid.Columns(3))
	if err != nil {
		t.Fatalf("Offset() error = %v", err)
	}
	if props["margin-left"].Value != 25 || props["margin-left"].Unit != "%" {
		t.Errorf("margin-left = %v%s, want 25%%", props["margin-left"].Value, props["margin-left"].Unit)
	}
	if _, ok := props["margin-right"]; ok {
		t.Error("left offset emitted margin-right")
	}

	props, err = grid.Offset(ctx, grid.Columns(3), grid.ParamRight)
	if err != nil {
		t.Fatalf("Offset(right) error = %v", err)
	}
	if props["margin-right"].Value != 25 {
		t.Errorf("margin-right = %v, want 25", props["margin-right"].Value)
	}
	if _, ok := props["margin-left"]; ok {
		t.Error("right offset emitted margin-left")
	}
}

func TestPushPull(t *testing.T) {
	ctx := grid.NewContext()

	props, err := grid.Push(ctx, grid.Columns(2))
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if props["position"].Keyword != "relative" {
		t.Errorf("push position = %v, want relative", props["position"])
	}
	if !almostEqual(props["left"].Value, 100.0/6.0) {
		t.Errorf("push left = %v, want %v", props["left"].Value, 100.0/6.0)
	}

	props, err = grid.Pull(ctx, grid.Columns(2))
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if props["position"].Keyword != "relative" {
		t.Errorf("pull position = %v, want relative", props["position"])
	}
	if !almostEqual(props["right"].Value, 100.0/6.0) {
		t.Errorf("pull right = %v, want %v", props["right"].Value, 100.0/6.0)
	}
}
