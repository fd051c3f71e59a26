package css_test

import (
	"strings"
	"testing"

	"gridgen/css"
)

func TestParse_SimpleRule(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`.col { width: 50%; float: left; }`))

	rules := sheet.RulesBySelector(".col")
	if len(rules) != 1 {
		t.Fatalf("got %d rules for .col, want 1", len(rules))
	}

	w, ok := rules[0].GetProperty("width")
	if !ok {
		t.Fatal("width property missing")
	}
	if w.Value != 50 || w.Unit != "%" {
		t.Errorf("width = %v%s, want 50%%", w.Value, w.Unit)
	}

	f, ok := rules[0].GetProperty("float")
	if !ok {
		t.Fatal("float property missing")
	}
	if f.Keyword != "left" {
		t.Errorf("float = %q, want left", f.Keyword)
	}
}

func TestParse_GroupedSelectors(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`.a, .b, .c > span { color: red; }`))

	for _, sel := range []string{".a", ".b", ".c > span"} {
		rules := sheet.RulesBySelector(sel)
		if len(rules) != 1 {
			t.Errorf("got %d rules for %q, want 1", len(rules), sel)
			continue
		}
		if v, _ := rules[0].GetProperty("color"); v.Keyword != "red" {
			t.Errorf("%q color = %q, want red", sel, v.Keyword)
		}
	}
}

func TestParse_MediaBlock(t *testing.T) {
	src := `
@media (min-width: 768px) {
  .sm-half { width: 50%; }
  .sm-full { width: 100%; }
}
`
	sheet := css.NewParser(nil).Parse([]byte(src))

	var mb *css.MediaBlock
	for _, item := range sheet.Items {
		if item.MediaBlock != nil {
			mb = item.MediaBlock
		}
	}
	if mb == nil {
		t.Fatal("no media block parsed")
	}
	if mb.Query.Raw != "(min-width: 768px)" {
		t.Errorf("query raw = %q", mb.Query.Raw)
	}
	if mb.Query.MinWidth.Value != 768 || mb.Query.MinWidth.Unit != "px" {
		t.Errorf("min-width = %v%s, want 768px", mb.Query.MinWidth.Value, mb.Query.MinWidth.Unit)
	}
	if len(mb.Rules) != 2 {
		t.Fatalf("got %d rules in media block, want 2", len(mb.Rules))
	}
	if mb.Rules[0].Selector != ".sm-half" || mb.Rules[1].Selector != ".sm-full" {
		t.Errorf("selectors = %q, %q", mb.Rules[0].Selector, mb.Rules[1].Selector)
	}
}

func TestParse_MediaBlockUnrecognizedQuery(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`@media print { .a { color: red; } }`))

	var mb *css.MediaBlock
	for _, item := range sheet.Items {
		if item.MediaBlock != nil {
			mb = item.MediaBlock
		}
	}
	if mb == nil {
		t.Fatal("no media block parsed")
	}
	if mb.Query.Raw != "print" {
		t.Errorf("query raw = %q, want print", mb.Query.Raw)
	}
	if mb.Query.MinWidth.Raw != "" {
		t.Errorf("min-width recognized for print query: %v", mb.Query.MinWidth)
	}
}

func TestParse_Imports(t *testing.T) {
	src := `
@import "plain.css";
@import url(bare.css);
@import url("quoted.css");
`
	sheet := css.NewParser(nil).Parse([]byte(src))

	got := sheet.Imports()
	want := []string{"plain.css", "bare.css", "quoted.css"}
	if len(got) != len(want) {
		t.Fatalf("Imports() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("import %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_Comments(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`/* keep me */ .a { color: red; }`))

	var comments []string
	for _, item := range sheet.Items {
		if item.Comment != nil {
			comments = append(comments, *item.Comment)
		}
	}
	if len(comments) != 1 || comments[0] != "keep me" {
		t.Errorf("comments = %v, want [keep me]", comments)
	}
}

func TestParse_SkippedAtRules(t *testing.T) {
	src := `
@font-face { font-family: "X"; src: url(x.woff); }
.a { color: red; }
`
	sheet := css.NewParser(nil).Parse([]byte(src))

	found := false
	for _, w := range sheet.Warnings {
		if strings.Contains(w, "@font-face") {
			found = true
		}
	}
	if !found {
		t.Errorf("no warning about skipped @font-face, warnings = %v", sheet.Warnings)
	}
	// Skipping the block must not eat the following rule.
	if len(sheet.RulesBySelector(".a")) != 1 {
		t.Error("rule after skipped at-rule was lost")
	}
}

func TestParse_CustomProperty(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`:root { --gutter: 20px; }`))

	rules := sheet.RulesBySelector(":root")
	if len(rules) != 1 {
		t.Fatalf("got %d rules for :root, want 1", len(rules))
	}
	v, ok := rules[0].GetProperty("--gutter")
	if !ok {
		t.Fatal("--gutter property missing")
	}
	if v.Value != 20 || v.Unit != "px" {
		t.Errorf("--gutter = %v%s, want 20px", v.Value, v.Unit)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  string
	}{
		{"20px", 20, "px"},
		{"1.5em", 1.5, "em"},
		{"50%", 50, "%"},
		{"15", 15, "px"}, // bare number defaults to pixels
		{" 10px ", 10, "px"},
	}
	for _, tc := range tests {
		got, err := css.ParseLength(tc.in)
		if err != nil {
			t.Errorf("ParseLength(%q) error = %v", tc.in, err)
			continue
		}
		if got.Value != tc.value || got.Unit != tc.unit {
			t.Errorf("ParseLength(%q) = %v%s, want %v%s", tc.in, got.Value, got.Unit, tc.value, tc.unit)
		}
	}

	for _, in := range []string{"auto", "", "px"} {
		if _, err := css.ParseLength(in); err == nil {
			t.Errorf("ParseLength(%q) did not fail", in)
		}
	}
}
