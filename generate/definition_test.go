package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridgen/config"
)

const sampleDefinition = `
grid:
  columns: 16
  gutter: 24px
  row_behavior: wrapper
wrapper:
  max_width: 1140px
breakpoints:
  - prefix: sm
    min_width: 768px
    max_width: 700px
  - prefix: lg
    min_width: 1200px
classes:
  - name: sidebar
    width: third
  - name: main
    width: 2 of 3
    params: [right]
    offset: 1
extra_stylesheet: extra.css
`

func writeDefinition(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefinition(t *testing.T) {
	def, err := LoadDefinition(writeDefinition(t, sampleDefinition))
	if err != nil {
		t.Fatalf("LoadDefinition() error = %v", err)
	}

	if def.Grid.Columns != 16 || def.Grid.Gutter != "24px" {
		t.Errorf("grid = %+v", def.Grid)
	}
	if def.Grid.RowBehavior == nil || !def.Grid.RowBehavior.IsWrapper() {
		t.Error("row_behavior was not decoded as wrapper")
	}
	if def.Wrapper.MaxWidth != "1140px" {
		t.Errorf("wrapper max_width = %q", def.Wrapper.MaxWidth)
	}
	if len(def.Breakpoints) != 2 || def.Breakpoints[0].Prefix != "sm" || def.Breakpoints[1].MaxWidth != "" {
		t.Errorf("breakpoints = %+v", def.Breakpoints)
	}
	if len(def.Classes) != 2 || def.Classes[1].Offset != "1" || len(def.Classes[1].Params) != 1 {
		t.Errorf("classes = %+v", def.Classes)
	}
	if def.ExtraStylesheet != "extra.css" {
		t.Errorf("extra_stylesheet = %q", def.ExtraStylesheet)
	}
}

func TestLoadDefinition_UnknownField(t *testing.T) {
	_, err := LoadDefinition(writeDefinition(t, "grid:\n  colums: 12\n"))
	if err == nil {
		t.Fatal("LoadDefinition() accepted misspelled field")
	}
}

func TestLoadDefinition_BadRowBehavior(t *testing.T) {
	_, err := LoadDefinition(writeDefinition(t, "grid:\n  row_behavior: sideways\n"))
	if err == nil {
		t.Fatal("LoadDefinition() accepted unknown row behavior")
	}
}

func TestBuildContext_Overrides(t *testing.T) {
	conf := &config.GeneratorConfig{Columns: 12, Gutter: "20px"}

	def, err := LoadDefinition(writeDefinition(t, sampleDefinition))
	if err != nil {
		t.Fatal(err)
	}

	ctx, err := buildContext(conf, def)
	if err != nil {
		t.Fatalf("buildContext() error = %v", err)
	}
	if ctx.TotalColumns != 16 {
		t.Errorf("TotalColumns = %d, want definition override 16", ctx.TotalColumns)
	}
	if ctx.Gutter.Value != 24 || ctx.Gutter.Unit != "px" {
		t.Errorf("Gutter = %v%s, want 24px", ctx.Gutter.Value, ctx.Gutter.Unit)
	}
	if ctx.WrapperWidth.Value != 1140 {
		t.Errorf("WrapperWidth = %v, want 1140", ctx.WrapperWidth.Value)
	}
	if !ctx.RowBehavior.IsWrapper() {
		t.Error("RowBehavior override lost")
	}
}

func TestBuildContext_ConfigOnly(t *testing.T) {
	conf := &config.GeneratorConfig{Columns: 10, Gutter: "16px", RowBehavior: config.RowBehaviorDefault}

	ctx, err := buildContext(conf, &Definition{})
	if err != nil {
		t.Fatalf("buildContext() error = %v", err)
	}
	if ctx.TotalColumns != 10 || ctx.Gutter.Value != 16 {
		t.Errorf("context = %+v", ctx)
	}
}

func TestBuildContext_BadValues(t *testing.T) {
	conf := &config.GeneratorConfig{}

	if _, err := buildContext(conf, &Definition{Grid: GridDefaults{Columns: -3}}); err == nil {
		t.Error("negative column count accepted")
	}
	if _, err := buildContext(conf, &Definition{Grid: GridDefaults{Gutter: "wide"}}); err == nil {
		t.Error("bad gutter accepted")
	}
	if _, err := buildContext(conf, &Definition{Wrapper: WrapperDefinition{MaxWidth: "wide"}}); err == nil {
		t.Error("bad wrapper width accepted")
	}
}

func TestOutputPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := outputPath("/tmp/defs/grid.yaml", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(wd, "grid.css") {
		t.Errorf("outputPath with empty destination = %q", got)
	}

	got, err = outputPath("/tmp/defs/grid.yaml", "/tmp/out/site.css")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/out/site.css" {
		t.Errorf("outputPath with file destination = %q", got)
	}

	got, err = outputPath("/tmp/defs/grid.yaml", "/tmp/out")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/out/grid.css" {
		t.Errorf("outputPath with directory destination = %q", got)
	}
}

func TestPreviewToXHTML(t *testing.T) {
	def := &Definition{Classes: []ClassDefinition{{Name: "Main Story", Width: "half"}}}

	ctx, err := buildContext(&config.GeneratorConfig{Columns: 2}, def)
	if err != nil {
		t.Fatal(err)
	}

	doc := previewToXHTML("Demo", "grid.css", ctx, def)
	text, err := doc.WriteToString()
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`<title>Demo</title>`,
		`href="grid.css"`,
		`class="wrapper"`,
		`class="col-2"`,
		`class="main-story"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("preview page is missing %s", want)
		}
	}
}
