package css_test

import (
	"strings"
	"testing"

	"gridgen/css"
)

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		val     css.Value
		raw     string
		numeric bool
		keyword bool
	}{
		{css.Px(20), "20px", true, false},
		{css.Px(-10), "-10px", true, false},
		{css.Percent(50), "50%", true, false},
		{css.Percent(100.0 / 3.0), "33.33333%", true, false},
		{css.Percent(100.0 / 12.0), "8.33333%", true, false},
		{css.Dim(1.5, "em"), "1.5em", true, false},
		{css.Keyword("auto"), "auto", false, true},
	}
	for _, tc := range tests {
		if tc.val.Raw != tc.raw {
			t.Errorf("Raw = %q, want %q", tc.val.Raw, tc.raw)
		}
		if tc.val.IsNumeric() != tc.numeric {
			t.Errorf("%q IsNumeric() = %v, want %v", tc.raw, tc.val.IsNumeric(), tc.numeric)
		}
		if tc.val.IsKeyword() != tc.keyword {
			t.Errorf("%q IsKeyword() = %v, want %v", tc.raw, tc.val.IsKeyword(), tc.keyword)
		}
	}
}

func TestMinWidthQuery(t *testing.T) {
	mq := css.MinWidthQuery(css.Px(768))
	if mq.Raw != "(min-width: 768px)" {
		t.Errorf("Raw = %q, want (min-width: 768px)", mq.Raw)
	}
	if mq.MinWidth.Value != 768 || mq.MinWidth.Unit != "px" {
		t.Errorf("MinWidth = %v%s, want 768px", mq.MinWidth.Value, mq.MinWidth.Unit)
	}
}

func TestStylesheetWrite(t *testing.T) {
	sheet := &css.Stylesheet{}
	sheet.AddComment("banner")
	sheet.AddRule(css.NewRule(".row").
		Set("overflow", css.Keyword("hidden")).
		Set("margin-left", css.Dim(-10, "px")))
	sheet.AddMediaBlock(css.MediaBlock{
		Query: css.MinWidthQuery(css.Px(768)),
		Rules: []css.Rule{
			css.NewRule(".sm-col-1").Set("width", css.Percent(100.0 / 12.0)),
		},
	})

	want := `/* banner */

.row {
  margin-left: -10px;
  overflow: hidden;
}

@media (min-width: 768px) {
  .sm-col-1 {
    width: 8.33333%;
  }
}
`
	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheetImportEscaping(t *testing.T) {
	sheet := &css.Stylesheet{}
	sheet.AddImport(`we"ird.css`)

	got := sheet.String()
	if !strings.Contains(got, `@import url("we\"ird.css");`) {
		t.Errorf("import was not escaped: %s", got)
	}
}

func TestStylesheetAppend(t *testing.T) {
	a := &css.Stylesheet{}
	a.AddRule(css.NewRule(".a"))

	b := &css.Stylesheet{Warnings: []string{"boo"}}
	b.AddRule(css.NewRule(".b"))

	a.Append(b)
	a.Append(nil)

	if len(a.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(a.Items))
	}
	if len(a.Warnings) != 1 || a.Warnings[0] != "boo" {
		t.Errorf("Warnings = %v, want [boo]", a.Warnings)
	}
}

func TestStylesheetQueries(t *testing.T) {
	sheet := &css.Stylesheet{}
	sheet.AddImport("one.css")
	sheet.AddRule(css.NewRule(".col").Set("width", css.Percent(25)))
	sheet.AddRule(css.NewRule(".col").Set("float", css.Keyword("left")))
	sheet.AddRule(css.NewRule(".row"))
	sheet.AddImport("two.css")

	if got := sheet.Imports(); len(got) != 2 || got[0] != "one.css" || got[1] != "two.css" {
		t.Errorf("Imports() = %v", got)
	}

	rules := sheet.RulesBySelector(".col")
	if len(rules) != 2 {
		t.Fatalf("RulesBySelector(.col) = %d rules, want 2", len(rules))
	}
	if v, ok := rules[0].GetProperty("width"); !ok || v.Value != 25 {
		t.Errorf("first .col width = %v, %v", v, ok)
	}
	if _, ok := rules[1].GetProperty("float"); !ok {
		t.Error("second .col has no float")
	}
	if got := sheet.RulesBySelector(".nope"); got != nil {
		t.Errorf("RulesBySelector(.nope) = %v, want nil", got)
	}
}
